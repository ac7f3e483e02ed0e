package character

import (
	"context"

	"github.com/fiveparsecs/campaign-api/internal/entities"
	"github.com/fiveparsecs/campaign-api/internal/errors"
	"github.com/fiveparsecs/campaign-api/internal/storage/document"
)

type fileRepository struct {
	store *document.Store
}

// FileConfig contains configuration for the file-backed character repository.
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

// NewFile creates a character repository backed by the JSON document store.
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &fileRepository{store: cfg.Store}, nil
}

func (r *fileRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	err := r.store.Update(func(s *document.Schema) error {
		for i := range s.CampaignCharacters {
			if s.CampaignCharacters[i].ID == input.Character.ID {
				return errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
			}
		}
		s.CampaignCharacters = append(s.CampaignCharacters, *input.Character)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateOutput{Character: input.Character}, nil
}

func (r *fileRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	var out *GetOutput
	err := r.store.View(func(s *document.Schema) error {
		for i := range s.CampaignCharacters {
			if s.CampaignCharacters[i].ID == input.ID {
				character := s.CampaignCharacters[i]
				out = &GetOutput{Character: &character}
				return nil
			}
		}
		return errors.NotFoundf("character with ID %s not found", input.ID)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fileRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	err := r.store.Update(func(s *document.Schema) error {
		for i := range s.CampaignCharacters {
			if s.CampaignCharacters[i].ID == input.Character.ID {
				s.CampaignCharacters[i] = *input.Character
				return nil
			}
		}
		return errors.NotFoundf("character with ID %s not found", input.Character.ID)
	})
	if err != nil {
		return nil, err
	}

	return &UpdateOutput{Character: input.Character}, nil
}

func (r *fileRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	err := r.store.Update(func(s *document.Schema) error {
		for i := range s.CampaignCharacters {
			if s.CampaignCharacters[i].ID == input.ID {
				s.CampaignCharacters = append(s.CampaignCharacters[:i], s.CampaignCharacters[i+1:]...)
				return nil
			}
		}
		return errors.NotFoundf("character with ID %s not found", input.ID)
	})
	if err != nil {
		return nil, err
	}

	return &DeleteOutput{}, nil
}

func (r *fileRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	out := &ListOutput{}
	err := r.store.View(func(s *document.Schema) error {
		out.Characters = make([]*entities.CampaignCharacter, 0, len(s.CampaignCharacters))
		for i := range s.CampaignCharacters {
			character := s.CampaignCharacters[i]
			out.Characters = append(out.Characters, &character)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fileRepository) ListByCrewID(_ context.Context, input ListByCrewIDInput) (*ListByCrewIDOutput, error) {
	if input.CrewID == "" {
		return nil, errors.InvalidArgument(errCrewIDEmpty)
	}

	out := &ListByCrewIDOutput{Characters: []*entities.CampaignCharacter{}}
	err := r.store.View(func(s *document.Schema) error {
		for i := range s.CampaignCharacters {
			if s.CampaignCharacters[i].CrewID == input.CrewID {
				character := s.CampaignCharacters[i]
				out.Characters = append(out.Characters, &character)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
