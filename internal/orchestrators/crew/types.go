package crew

import (
	"context"

	"github.com/fiveparsecs/campaign-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_service.go -package=crewmock github.com/fiveparsecs/campaign-api/internal/orchestrators/crew Service

// Service defines the crew orchestrator interface
type Service interface {
	// GetCrew retrieves a crew by ID
	GetCrew(ctx context.Context, input *GetCrewInput) (*GetCrewOutput, error)

	// ListCrews retrieves all crews
	ListCrews(ctx context.Context, input *ListCrewsInput) (*ListCrewsOutput, error)

	// UpdateCrew merge-patches crew fields. Used by the equip/unequip and
	// pending-roll-resolution flows to commit their deltas.
	UpdateCrew(ctx context.Context, input *UpdateCrewInput) (*UpdateCrewOutput, error)
}

// GetCrewInput defines the request for getting a crew
type GetCrewInput struct {
	ID string
}

// GetCrewOutput defines the response for getting a crew
type GetCrewOutput struct {
	Crew *entities.CampaignCrew
}

// ListCrewsInput defines the request for listing crews
type ListCrewsInput struct{}

// ListCrewsOutput defines the response for listing crews
type ListCrewsOutput struct {
	Crews []*entities.CampaignCrew
}

// UpdateCrewInput defines the merge-patch for a crew. Nil fields are left
// unchanged; set fields replace the stored value as-is.
type UpdateCrewInput struct {
	ID string

	Credits     *int
	Reputation  *int
	Patrons     *int
	Rivals      *int
	QuestRumors *int
	Rumors      *int

	GadgetCount         *int
	GearCount           *int
	LowTechWeaponCount  *int
	MilitaryWeaponCount *int
	HighTechWeaponCount *int

	Weapons *[]string
	Gear    *[]string
	Gadgets *[]string

	Ship *entities.CrewShip

	WeMetThrough   *string
	CaracterizedAs *string
}

// UpdateCrewOutput defines the response for updating a crew
type UpdateCrewOutput struct {
	Crew *entities.CampaignCrew
}
