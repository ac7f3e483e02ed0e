package campaign

import (
	"context"

	"github.com/fiveparsecs/campaign-api/internal/entities"
	"github.com/fiveparsecs/campaign-api/internal/errors"
	"github.com/fiveparsecs/campaign-api/internal/storage/document"
)

type fileRepository struct {
	store *document.Store
}

// FileConfig contains configuration for the file-backed campaign repository.
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

// NewFile creates a campaign repository backed by the JSON document store.
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &fileRepository{store: cfg.Store}, nil
}

func (r *fileRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Campaign == nil {
		return nil, errors.InvalidArgument(errCampaignNil)
	}
	if input.Campaign.ID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	err := r.store.Update(func(s *document.Schema) error {
		for i := range s.Campaigns {
			if s.Campaigns[i].ID == input.Campaign.ID {
				return errors.AlreadyExistsf("campaign with ID %s already exists", input.Campaign.ID)
			}
		}
		s.Campaigns = append(s.Campaigns, *input.Campaign)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateOutput{Campaign: input.Campaign}, nil
}

func (r *fileRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	var out *GetOutput
	err := r.store.View(func(s *document.Schema) error {
		for i := range s.Campaigns {
			if s.Campaigns[i].ID == input.ID {
				campaign := s.Campaigns[i]
				out = &GetOutput{Campaign: &campaign}
				return nil
			}
		}
		return errors.NotFoundf("campaign with ID %s not found", input.ID)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fileRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Campaign == nil {
		return nil, errors.InvalidArgument(errCampaignNil)
	}
	if input.Campaign.ID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	err := r.store.Update(func(s *document.Schema) error {
		for i := range s.Campaigns {
			if s.Campaigns[i].ID == input.Campaign.ID {
				s.Campaigns[i] = *input.Campaign
				return nil
			}
		}
		return errors.NotFoundf("campaign with ID %s not found", input.Campaign.ID)
	})
	if err != nil {
		return nil, err
	}

	return &UpdateOutput{Campaign: input.Campaign}, nil
}

func (r *fileRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCampaignIDEmpty)
	}

	err := r.store.Update(func(s *document.Schema) error {
		for i := range s.Campaigns {
			if s.Campaigns[i].ID == input.ID {
				s.Campaigns = append(s.Campaigns[:i], s.Campaigns[i+1:]...)
				return nil
			}
		}
		return errors.NotFoundf("campaign with ID %s not found", input.ID)
	})
	if err != nil {
		return nil, err
	}

	return &DeleteOutput{}, nil
}

func (r *fileRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	out := &ListOutput{}
	err := r.store.View(func(s *document.Schema) error {
		out.Campaigns = make([]*entities.Campaign, 0, len(s.Campaigns))
		for i := range s.Campaigns {
			campaign := s.Campaigns[i]
			out.Campaigns = append(out.Campaigns, &campaign)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
