// Package campaign implements the campaign lifecycle orchestrator
package campaign

import (
	"context"
	"log/slog"

	"github.com/fiveparsecs/campaign-api/internal/entities"
	"github.com/fiveparsecs/campaign-api/internal/errors"
	"github.com/fiveparsecs/campaign-api/internal/pkg/clock"
	"github.com/fiveparsecs/campaign-api/internal/pkg/idgen"
	campaignrepo "github.com/fiveparsecs/campaign-api/internal/repositories/campaign"
	characterrepo "github.com/fiveparsecs/campaign-api/internal/repositories/character"
	crewrepo "github.com/fiveparsecs/campaign-api/internal/repositories/crew"
)

// Config holds the dependencies for the campaign orchestrator
type Config struct {
	CampaignRepo  campaignrepo.Repository
	CrewRepo      crewrepo.Repository
	CharacterRepo characterrepo.Repository
	CampaignIDGen idgen.Generator
	CrewIDGen     idgen.Generator
	Clock         clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CampaignRepo == nil {
		vb.RequiredField("CampaignRepo")
	}
	if c.CrewRepo == nil {
		vb.RequiredField("CrewRepo")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}

	return vb.Build()
}

// Orchestrator implements the campaign Service interface
type Orchestrator struct {
	campaignRepo  campaignrepo.Repository
	crewRepo      crewrepo.Repository
	characterRepo characterrepo.Repository
	campaignIDGen idgen.Generator
	crewIDGen     idgen.Generator
	clock         clock.Clock
}

// New creates a new campaign orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	campaignIDGen := cfg.CampaignIDGen
	if campaignIDGen == nil {
		campaignIDGen = idgen.NewPrefixed("campaign")
	}
	crewIDGen := cfg.CrewIDGen
	if crewIDGen == nil {
		crewIDGen = idgen.NewPrefixed("crew")
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &Orchestrator{
		campaignRepo:  cfg.CampaignRepo,
		crewRepo:      cfg.CrewRepo,
		characterRepo: cfg.CharacterRepo,
		campaignIDGen: campaignIDGen,
		crewIDGen:     crewIDGen,
		clock:         clk,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// CreateCampaign creates a campaign together with its empty crew. The two
// records reference each other by ID.
func (o *Orchestrator) CreateCampaign(ctx context.Context, input *CreateCampaignInput) (*CreateCampaignOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Name == "" {
		vb.RequiredField("name")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := o.clock.Now()
	campaignID := o.campaignIDGen.Generate()
	crewID := o.crewIDGen.Generate()

	crew := &entities.CampaignCrew{
		ID:           crewID,
		CampaignID:   campaignID,
		Weapons:      []string{},
		Gear:         []string{},
		Gadgets:      []string{},
		CharacterIDs: []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	campaign := &entities.Campaign{
		ID:                    campaignID,
		Name:                  input.Name,
		Description:           input.Description,
		Status:                entities.CampaignNotStarted,
		CrewID:                crewID,
		CrewSize:              input.CrewSize,
		CrewCompositionMethod: input.CrewCompositionMethod,
		ShipName:              input.ShipName,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if _, err := o.crewRepo.Create(ctx, crewrepo.CreateInput{Crew: crew}); err != nil {
		return nil, err
	}

	if _, err := o.campaignRepo.Create(ctx, campaignrepo.CreateInput{Campaign: campaign}); err != nil {
		// Don't leave an orphaned crew behind.
		if _, delErr := o.crewRepo.Delete(ctx, crewrepo.DeleteInput{ID: crewID}); delErr != nil {
			slog.ErrorContext(ctx, "failed to clean up crew after campaign create failure",
				"crew_id", crewID,
				"error", delErr.Error())
		}
		return nil, err
	}

	return &CreateCampaignOutput{Campaign: campaign, Crew: crew}, nil
}

// GetCampaign retrieves a campaign by ID
func (o *Orchestrator) GetCampaign(ctx context.Context, input *GetCampaignInput) (*GetCampaignOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	output, err := o.campaignRepo.Get(ctx, campaignrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	return &GetCampaignOutput{Campaign: output.Campaign}, nil
}

// ListCampaigns retrieves all campaigns
func (o *Orchestrator) ListCampaigns(ctx context.Context, input *ListCampaignsInput) (*ListCampaignsOutput, error) {
	output, err := o.campaignRepo.List(ctx, campaignrepo.ListInput{})
	if err != nil {
		return nil, err
	}

	return &ListCampaignsOutput{Campaigns: output.Campaigns}, nil
}

// UpdateCampaign merge-patches campaign fields
func (o *Orchestrator) UpdateCampaign(ctx context.Context, input *UpdateCampaignInput) (*UpdateCampaignOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	getOutput, err := o.campaignRepo.Get(ctx, campaignrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}
	campaign := getOutput.Campaign

	if input.Name != nil {
		campaign.Name = *input.Name
	}
	if input.Description != nil {
		campaign.Description = *input.Description
	}
	if input.Status != nil {
		campaign.Status = *input.Status
	}
	if input.CrewSize != nil {
		campaign.CrewSize = *input.CrewSize
	}
	if input.CrewCompositionMethod != nil {
		campaign.CrewCompositionMethod = *input.CrewCompositionMethod
	}
	if input.StoryPoints != nil {
		campaign.StoryPoints = *input.StoryPoints
	}
	if input.ShipName != nil {
		campaign.ShipName = *input.ShipName
	}
	campaign.UpdatedAt = o.clock.Now()

	updateOutput, err := o.campaignRepo.Update(ctx, campaignrepo.UpdateInput{Campaign: campaign})
	if err != nil {
		return nil, err
	}

	return &UpdateCampaignOutput{Campaign: updateOutput.Campaign}, nil
}

// DeleteCampaign removes a campaign along with its crew and the crew's
// characters. Missing crew or characters are skipped, not errors.
func (o *Orchestrator) DeleteCampaign(ctx context.Context, input *DeleteCampaignInput) (*DeleteCampaignOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	getOutput, err := o.campaignRepo.Get(ctx, campaignrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}
	campaign := getOutput.Campaign

	if campaign.CrewID != "" {
		o.deleteCrewCascade(ctx, campaign.CrewID)
	}

	if _, err := o.campaignRepo.Delete(ctx, campaignrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, err
	}

	return &DeleteCampaignOutput{}, nil
}

func (o *Orchestrator) deleteCrewCascade(ctx context.Context, crewID string) {
	characters, err := o.characterRepo.ListByCrewID(ctx, characterrepo.ListByCrewIDInput{CrewID: crewID})
	if err == nil {
		for _, c := range characters.Characters {
			if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: c.ID}); err != nil {
				slog.WarnContext(ctx, "failed to delete character during campaign cascade",
					"character_id", c.ID,
					"error", err.Error())
			}
		}
	}

	if _, err := o.crewRepo.Delete(ctx, crewrepo.DeleteInput{ID: crewID}); err != nil && !errors.IsNotFound(err) {
		slog.WarnContext(ctx, "failed to delete crew during campaign cascade",
			"crew_id", crewID,
			"error", err.Error())
	}
}
