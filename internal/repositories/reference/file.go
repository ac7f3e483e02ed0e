package reference

import (
	"context"

	"github.com/fiveparsecs/campaign-api/internal/errors"
	"github.com/fiveparsecs/campaign-api/internal/storage/document"
)

const errIDEmpty = "id cannot be empty"

type fileRepository struct {
	store *document.Store
}

// FileConfig contains configuration for the file-backed reference repository.
type FileConfig struct {
	Store *document.Store
}

// Validate validates the FileConfig.
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Store == nil {
		return errors.InvalidArgument("store cannot be nil")
	}
	return nil
}

// NewFile creates a reference repository backed by the JSON document store.
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &fileRepository{store: cfg.Store}, nil
}

func (r *fileRepository) GetSpecies(_ context.Context, input GetSpeciesInput) (*GetSpeciesOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	var out *GetSpeciesOutput
	err := r.store.View(func(s *document.Schema) error {
		for i := range s.Species {
			if s.Species[i].ID == input.ID {
				species := s.Species[i]
				out = &GetSpeciesOutput{Species: &species}
				return nil
			}
		}
		return errors.NotFoundf("species with ID %s not found", input.ID)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fileRepository) ListSpecies(_ context.Context, _ ListSpeciesInput) (*ListSpeciesOutput, error) {
	out := &ListSpeciesOutput{}
	err := r.store.View(func(s *document.Schema) error {
		out.Species = append(out.Species, s.Species...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fileRepository) GetSpeciesAbility(_ context.Context, input GetSpeciesAbilityInput) (*GetSpeciesAbilityOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	var out *GetSpeciesAbilityOutput
	err := r.store.View(func(s *document.Schema) error {
		for i := range s.SpeciesAbilities {
			if s.SpeciesAbilities[i].ID == input.ID {
				ability := s.SpeciesAbilities[i]
				out = &GetSpeciesAbilityOutput{Ability: &ability}
				return nil
			}
		}
		return errors.NotFoundf("species ability with ID %s not found", input.ID)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fileRepository) GetBackground(_ context.Context, input GetBackgroundInput) (*GetBackgroundOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	var out *GetBackgroundOutput
	err := r.store.View(func(s *document.Schema) error {
		for i := range s.Backgrounds {
			if s.Backgrounds[i].ID == input.ID {
				background := s.Backgrounds[i]
				out = &GetBackgroundOutput{Background: &background}
				return nil
			}
		}
		return errors.NotFoundf("background with ID %s not found", input.ID)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fileRepository) ListBackgrounds(_ context.Context, _ ListBackgroundsInput) (*ListBackgroundsOutput, error) {
	out := &ListBackgroundsOutput{}
	err := r.store.View(func(s *document.Schema) error {
		out.Backgrounds = append(out.Backgrounds, s.Backgrounds...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fileRepository) GetMotivation(_ context.Context, input GetMotivationInput) (*GetMotivationOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	var out *GetMotivationOutput
	err := r.store.View(func(s *document.Schema) error {
		for i := range s.Motivations {
			if s.Motivations[i].ID == input.ID {
				motivation := s.Motivations[i]
				out = &GetMotivationOutput{Motivation: &motivation}
				return nil
			}
		}
		return errors.NotFoundf("motivation with ID %s not found", input.ID)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fileRepository) ListMotivations(_ context.Context, _ ListMotivationsInput) (*ListMotivationsOutput, error) {
	out := &ListMotivationsOutput{}
	err := r.store.View(func(s *document.Schema) error {
		out.Motivations = append(out.Motivations, s.Motivations...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fileRepository) GetCharacterClass(_ context.Context, input GetCharacterClassInput) (*GetCharacterClassOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	var out *GetCharacterClassOutput
	err := r.store.View(func(s *document.Schema) error {
		for i := range s.CharacterClasses {
			if s.CharacterClasses[i].ID == input.ID {
				class := s.CharacterClasses[i]
				out = &GetCharacterClassOutput{CharacterClass: &class}
				return nil
			}
		}
		return errors.NotFoundf("character class with ID %s not found", input.ID)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fileRepository) ListCharacterClasses(_ context.Context, _ ListCharacterClassesInput) (*ListCharacterClassesOutput, error) {
	out := &ListCharacterClassesOutput{}
	err := r.store.View(func(s *document.Schema) error {
		out.CharacterClasses = append(out.CharacterClasses, s.CharacterClasses...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
