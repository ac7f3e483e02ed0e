package entities

import "time"

// CampaignStatus tracks where a campaign is in its lifecycle.
type CampaignStatus string

// Campaign lifecycle states. Transition into InProgress is gated by the
// client once crew-completion preconditions hold; the server applies the
// requested status as-is.
const (
	CampaignNotStarted CampaignStatus = "NO_STARTED"
	CampaignInProgress CampaignStatus = "IN_PROGRESS"
	CampaignCompleted  CampaignStatus = "COMPLETED"
	CampaignAbandoned  CampaignStatus = "ABANDONED"
)

// Campaign is the root aggregate. It owns exactly one crew and carries the
// shared story-point counter that crew resource grants can route to.
type Campaign struct {
	ID                    string         `json:"id"`
	Name                  string         `json:"name"`
	Description           string         `json:"description,omitempty"`
	Status                CampaignStatus `json:"status"`
	CrewID                string         `json:"crewId"`
	CrewSize              int            `json:"crewSize"`
	CrewCompositionMethod string         `json:"crewCompositionMethod,omitempty"`
	StoryPoints           int            `json:"storyPoints"`
	ShipName              string         `json:"shipName,omitempty"`
	CreatedAt             time.Time      `json:"createdAt"`
	UpdatedAt             time.Time      `json:"updatedAt"`
}
