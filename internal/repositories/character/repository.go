// Package character provides persistence for campaign character records.
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/fiveparsecs/campaign-api/internal/repositories/character Repository

import (
	"context"

	"github.com/fiveparsecs/campaign-api/internal/entities"
)

// Repository defines the interface for campaign character storage.
type Repository interface {
	// Create stores a new character
	// Returns errors.AlreadyExists if a character with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.NotFound if the character doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces the stored character
	// Returns errors.NotFound if the character doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a character by ID
	// Returns errors.NotFound if the character doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves all characters
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// ListByCrewID retrieves all characters belonging to a crew
	ListByCrewID(ctx context.Context, input ListByCrewIDInput) (*ListByCrewIDOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *entities.CampaignCharacter
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *entities.CampaignCharacter
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.CampaignCharacter
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *entities.CampaignCharacter
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *entities.CampaignCharacter
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListInput defines the input for listing characters
type ListInput struct{}

// ListOutput defines the output for listing characters
type ListOutput struct {
	Characters []*entities.CampaignCharacter
}

// ListByCrewIDInput defines the input for listing characters by crew
type ListByCrewIDInput struct {
	CrewID string
}

// ListByCrewIDOutput defines the output for listing characters by crew
type ListByCrewIDOutput struct {
	Characters []*entities.CampaignCharacter
}
