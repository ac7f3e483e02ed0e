package crew

import (
	"context"

	"github.com/fiveparsecs/campaign-api/internal/entities"
	"github.com/fiveparsecs/campaign-api/internal/errors"
	"github.com/fiveparsecs/campaign-api/internal/storage/document"
)

type fileRepository struct {
	store *document.Store
}

// FileConfig contains configuration for the file-backed crew repository.
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

// NewFile creates a crew repository backed by the JSON document store.
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &fileRepository{store: cfg.Store}, nil
}

func (r *fileRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Crew == nil {
		return nil, errors.InvalidArgument(errCrewNil)
	}
	if input.Crew.ID == "" {
		return nil, errors.InvalidArgument(errCrewIDEmpty)
	}

	err := r.store.Update(func(s *document.Schema) error {
		for i := range s.CampaignCrews {
			if s.CampaignCrews[i].ID == input.Crew.ID {
				return errors.AlreadyExistsf("crew with ID %s already exists", input.Crew.ID)
			}
		}
		s.CampaignCrews = append(s.CampaignCrews, *input.Crew)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateOutput{Crew: input.Crew}, nil
}

func (r *fileRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCrewIDEmpty)
	}

	var out *GetOutput
	err := r.store.View(func(s *document.Schema) error {
		for i := range s.CampaignCrews {
			if s.CampaignCrews[i].ID == input.ID {
				crew := s.CampaignCrews[i]
				out = &GetOutput{Crew: &crew}
				return nil
			}
		}
		return errors.NotFoundf("crew with ID %s not found", input.ID)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fileRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Crew == nil {
		return nil, errors.InvalidArgument(errCrewNil)
	}
	if input.Crew.ID == "" {
		return nil, errors.InvalidArgument(errCrewIDEmpty)
	}

	err := r.store.Update(func(s *document.Schema) error {
		for i := range s.CampaignCrews {
			if s.CampaignCrews[i].ID == input.Crew.ID {
				s.CampaignCrews[i] = *input.Crew
				return nil
			}
		}
		return errors.NotFoundf("crew with ID %s not found", input.Crew.ID)
	})
	if err != nil {
		return nil, err
	}

	return &UpdateOutput{Crew: input.Crew}, nil
}

func (r *fileRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCrewIDEmpty)
	}

	err := r.store.Update(func(s *document.Schema) error {
		for i := range s.CampaignCrews {
			if s.CampaignCrews[i].ID == input.ID {
				s.CampaignCrews = append(s.CampaignCrews[:i], s.CampaignCrews[i+1:]...)
				return nil
			}
		}
		return errors.NotFoundf("crew with ID %s not found", input.ID)
	})
	if err != nil {
		return nil, err
	}

	return &DeleteOutput{}, nil
}

func (r *fileRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	out := &ListOutput{}
	err := r.store.View(func(s *document.Schema) error {
		out.Crews = make([]*entities.CampaignCrew, 0, len(s.CampaignCrews))
		for i := range s.CampaignCrews {
			crew := s.CampaignCrews[i]
			out.Crews = append(out.Crews, &crew)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
