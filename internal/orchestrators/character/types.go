package character

import (
	"context"

	"github.com/fiveparsecs/campaign-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/fiveparsecs/campaign-api/internal/orchestrators/character Service

// Service defines the character orchestrator interface
type Service interface {
	// CreateCharacter generates a character from the chosen reference
	// records and applies the crew and campaign side effects
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)

	// GetCharacter retrieves a character by ID
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)

	// ListCharacters retrieves characters, optionally filtered by crew
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// UpdateCharacter merge-patches mutable character fields
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)

	// DeleteCharacter removes a character and its crew back-reference
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// SelectLeader marks a character as crew leader, granting the luck
	// bonus unless the species is a bot type
	SelectLeader(ctx context.Context, input *SelectLeaderInput) (*SelectLeaderOutput, error)
}

// CreateCharacterInput defines the request for generating a character. The
// four reference IDs are optional; an absent or dangling ID contributes
// nothing.
type CreateCharacterInput struct {
	CrewID           string
	Name             string
	SpeciesID        string
	BackgroundID     string
	MotivationID     string
	CharacterClassID string
	IsLeader         bool
}

// CreateCharacterOutput defines the response for generating a character
type CreateCharacterOutput struct {
	Character *entities.CampaignCharacter
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	ID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *entities.CampaignCharacter
}

// ListCharactersInput defines the request for listing characters. CrewID is
// optional; when set only that crew's characters are returned.
type ListCharactersInput struct {
	CrewID string
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*entities.CampaignCharacter
}

// UpdateCharacterInput defines the merge-patch for a character. Nil fields
// are left unchanged. The reference IDs recorded at creation are not
// patchable.
type UpdateCharacterInput struct {
	ID string

	Name *string

	Reactions *int
	Speed     *int
	Combat    *int
	Toughness *int
	Savvy     *int
	Luck      *int
	XP        *int

	IsActive  *bool
	IsDead    *bool
	IsInjured *bool

	Injuries *[]string

	Weapons *[]string
	Gear    *[]string
	Gadgets *[]string
	Armor   *[]string
}

// UpdateCharacterOutput defines the response for updating a character
type UpdateCharacterOutput struct {
	Character *entities.CampaignCharacter
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	ID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}

// SelectLeaderInput defines the request for selecting a crew leader
type SelectLeaderInput struct {
	ID string
}

// SelectLeaderOutput defines the response for selecting a crew leader
type SelectLeaderOutput struct {
	Character *entities.CampaignCharacter
}
