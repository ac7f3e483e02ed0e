package campaign

import (
	"context"

	"github.com/fiveparsecs/campaign-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_service.go -package=campaignmock github.com/fiveparsecs/campaign-api/internal/orchestrators/campaign Service

// Service defines the campaign orchestrator interface
type Service interface {
	// CreateCampaign creates a campaign and its empty crew
	CreateCampaign(ctx context.Context, input *CreateCampaignInput) (*CreateCampaignOutput, error)

	// GetCampaign retrieves a campaign by ID
	GetCampaign(ctx context.Context, input *GetCampaignInput) (*GetCampaignOutput, error)

	// ListCampaigns retrieves all campaigns
	ListCampaigns(ctx context.Context, input *ListCampaignsInput) (*ListCampaignsOutput, error)

	// UpdateCampaign merge-patches campaign fields
	UpdateCampaign(ctx context.Context, input *UpdateCampaignInput) (*UpdateCampaignOutput, error)

	// DeleteCampaign removes a campaign, its crew, and the crew's characters
	DeleteCampaign(ctx context.Context, input *DeleteCampaignInput) (*DeleteCampaignOutput, error)
}

// CreateCampaignInput defines the request for creating a campaign
type CreateCampaignInput struct {
	Name                  string
	Description           string
	CrewSize              int
	CrewCompositionMethod string
	ShipName              string
}

// CreateCampaignOutput defines the response for creating a campaign
type CreateCampaignOutput struct {
	Campaign *entities.Campaign
	Crew     *entities.CampaignCrew
}

// GetCampaignInput defines the request for getting a campaign
type GetCampaignInput struct {
	ID string
}

// GetCampaignOutput defines the response for getting a campaign
type GetCampaignOutput struct {
	Campaign *entities.Campaign
}

// ListCampaignsInput defines the request for listing campaigns
type ListCampaignsInput struct{}

// ListCampaignsOutput defines the response for listing campaigns
type ListCampaignsOutput struct {
	Campaigns []*entities.Campaign
}

// UpdateCampaignInput defines the merge-patch for a campaign. Nil fields are
// left unchanged. Status is applied as requested; completion preconditions
// are enforced by the client.
type UpdateCampaignInput struct {
	ID string

	Name                  *string
	Description           *string
	Status                *entities.CampaignStatus
	CrewSize              *int
	CrewCompositionMethod *string
	StoryPoints           *int
	ShipName              *string
}

// UpdateCampaignOutput defines the response for updating a campaign
type UpdateCampaignOutput struct {
	Campaign *entities.Campaign
}

// DeleteCampaignInput defines the request for deleting a campaign
type DeleteCampaignInput struct {
	ID string
}

// DeleteCampaignOutput defines the response for deleting a campaign
type DeleteCampaignOutput struct{}
