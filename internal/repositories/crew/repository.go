// Package crew provides persistence for campaign crew records.
package crew

//go:generate mockgen -destination=mock/mock_repository.go -package=crewmock github.com/fiveparsecs/campaign-api/internal/repositories/crew Repository

import (
	"context"

	"github.com/fiveparsecs/campaign-api/internal/entities"
)

// Repository defines the interface for campaign crew storage.
type Repository interface {
	// Create stores a new crew
	// Returns errors.AlreadyExists if a crew with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a crew by ID
	// Returns errors.NotFound if the crew doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces the stored crew
	// Returns errors.NotFound if the crew doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a crew by ID
	// Returns errors.NotFound if the crew doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves all crews
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a crew
type CreateInput struct {
	Crew *entities.CampaignCrew
}

// CreateOutput defines the output for creating a crew
type CreateOutput struct {
	Crew *entities.CampaignCrew
}

// GetInput defines the input for getting a crew
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a crew
type GetOutput struct {
	Crew *entities.CampaignCrew
}

// UpdateInput defines the input for updating a crew
type UpdateInput struct {
	Crew *entities.CampaignCrew
}

// UpdateOutput defines the output for updating a crew
type UpdateOutput struct {
	Crew *entities.CampaignCrew
}

// DeleteInput defines the input for deleting a crew
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a crew
type DeleteOutput struct{}

// ListInput defines the input for listing crews
type ListInput struct{}

// ListOutput defines the output for listing crews
type ListOutput struct {
	Crews []*entities.CampaignCrew
}
