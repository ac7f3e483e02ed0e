// Package reference provides read access to the rule reference tables:
// species, species abilities, backgrounds, motivations, and character
// classes.
package reference

//go:generate mockgen -destination=mock/mock_repository.go -package=referencemock github.com/fiveparsecs/campaign-api/internal/repositories/reference Repository

import (
	"context"

	"github.com/fiveparsecs/campaign-api/internal/entities"
)

// Repository defines the interface for reference-data lookups.
type Repository interface {
	// GetSpecies retrieves a species by ID
	// Returns errors.NotFound if the species doesn't exist
	GetSpecies(ctx context.Context, input GetSpeciesInput) (*GetSpeciesOutput, error)

	// ListSpecies retrieves all species
	ListSpecies(ctx context.Context, input ListSpeciesInput) (*ListSpeciesOutput, error)

	// GetSpeciesAbility retrieves a species stat template by ID
	// Returns errors.NotFound if the ability record doesn't exist
	GetSpeciesAbility(ctx context.Context, input GetSpeciesAbilityInput) (*GetSpeciesAbilityOutput, error)

	// GetBackground retrieves a background by ID
	// Returns errors.NotFound if the background doesn't exist
	GetBackground(ctx context.Context, input GetBackgroundInput) (*GetBackgroundOutput, error)

	// ListBackgrounds retrieves all backgrounds
	ListBackgrounds(ctx context.Context, input ListBackgroundsInput) (*ListBackgroundsOutput, error)

	// GetMotivation retrieves a motivation by ID
	// Returns errors.NotFound if the motivation doesn't exist
	GetMotivation(ctx context.Context, input GetMotivationInput) (*GetMotivationOutput, error)

	// ListMotivations retrieves all motivations
	ListMotivations(ctx context.Context, input ListMotivationsInput) (*ListMotivationsOutput, error)

	// GetCharacterClass retrieves a character class by ID
	// Returns errors.NotFound if the class doesn't exist
	GetCharacterClass(ctx context.Context, input GetCharacterClassInput) (*GetCharacterClassOutput, error)

	// ListCharacterClasses retrieves all character classes
	ListCharacterClasses(ctx context.Context, input ListCharacterClassesInput) (*ListCharacterClassesOutput, error)
}

// GetSpeciesInput defines the input for getting a species
type GetSpeciesInput struct {
	ID string
}

// GetSpeciesOutput defines the output for getting a species
type GetSpeciesOutput struct {
	Species *entities.Species
}

// ListSpeciesInput defines the input for listing species
type ListSpeciesInput struct{}

// ListSpeciesOutput defines the output for listing species
type ListSpeciesOutput struct {
	Species []entities.Species
}

// GetSpeciesAbilityInput defines the input for getting a species ability
type GetSpeciesAbilityInput struct {
	ID string
}

// GetSpeciesAbilityOutput defines the output for getting a species ability
type GetSpeciesAbilityOutput struct {
	Ability *entities.SpeciesAbility
}

// GetBackgroundInput defines the input for getting a background
type GetBackgroundInput struct {
	ID string
}

// GetBackgroundOutput defines the output for getting a background
type GetBackgroundOutput struct {
	Background *entities.Background
}

// ListBackgroundsInput defines the input for listing backgrounds
type ListBackgroundsInput struct{}

// ListBackgroundsOutput defines the output for listing backgrounds
type ListBackgroundsOutput struct {
	Backgrounds []entities.Background
}

// GetMotivationInput defines the input for getting a motivation
type GetMotivationInput struct {
	ID string
}

// GetMotivationOutput defines the output for getting a motivation
type GetMotivationOutput struct {
	Motivation *entities.Motivation
}

// ListMotivationsInput defines the input for listing motivations
type ListMotivationsInput struct{}

// ListMotivationsOutput defines the output for listing motivations
type ListMotivationsOutput struct {
	Motivations []entities.Motivation
}

// GetCharacterClassInput defines the input for getting a character class
type GetCharacterClassInput struct {
	ID string
}

// GetCharacterClassOutput defines the output for getting a character class
type GetCharacterClassOutput struct {
	CharacterClass *entities.CharacterClass
}

// ListCharacterClassesInput defines the input for listing character classes
type ListCharacterClassesInput struct{}

// ListCharacterClassesOutput defines the output for listing character classes
type ListCharacterClassesOutput struct {
	CharacterClasses []entities.CharacterClass
}
