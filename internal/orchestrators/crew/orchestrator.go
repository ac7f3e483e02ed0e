// Package crew implements the crew orchestrator
package crew

import (
	"context"

	"github.com/fiveparsecs/campaign-api/internal/errors"
	"github.com/fiveparsecs/campaign-api/internal/pkg/clock"
	"github.com/fiveparsecs/campaign-api/internal/pkg/lockmap"
	crewrepo "github.com/fiveparsecs/campaign-api/internal/repositories/crew"
)

// Config holds the dependencies for the crew orchestrator
type Config struct {
	CrewRepo  crewrepo.Repository
	Clock     clock.Clock
	CrewLocks *lockmap.LockMap
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CrewRepo == nil {
		vb.RequiredField("CrewRepo")
	}

	return vb.Build()
}

// Orchestrator implements the crew Service interface
type Orchestrator struct {
	crewRepo  crewrepo.Repository
	clock     clock.Clock
	crewLocks *lockmap.LockMap
}

// New creates a new crew orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	locks := cfg.CrewLocks
	if locks == nil {
		locks = lockmap.New()
	}

	return &Orchestrator{
		crewRepo:  cfg.CrewRepo,
		clock:     clk,
		crewLocks: locks,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// GetCrew retrieves a crew by ID
func (o *Orchestrator) GetCrew(ctx context.Context, input *GetCrewInput) (*GetCrewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	output, err := o.crewRepo.Get(ctx, crewrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	return &GetCrewOutput{Crew: output.Crew}, nil
}

// ListCrews retrieves all crews
func (o *Orchestrator) ListCrews(ctx context.Context, input *ListCrewsInput) (*ListCrewsOutput, error) {
	output, err := o.crewRepo.List(ctx, crewrepo.ListInput{})
	if err != nil {
		return nil, err
	}

	return &ListCrewsOutput{Crews: output.Crews}, nil
}

// UpdateCrew merge-patches crew fields under the crew's lock so external
// flows cannot interleave with character generation against the same crew.
func (o *Orchestrator) UpdateCrew(ctx context.Context, input *UpdateCrewInput) (*UpdateCrewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("id is required")
	}

	unlock := o.crewLocks.Lock(input.ID)
	defer unlock()

	getOutput, err := o.crewRepo.Get(ctx, crewrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}
	crew := getOutput.Crew

	if input.Credits != nil {
		crew.Credits = *input.Credits
	}
	if input.Reputation != nil {
		crew.Reputation = *input.Reputation
	}
	if input.Patrons != nil {
		crew.Patrons = *input.Patrons
	}
	if input.Rivals != nil {
		crew.Rivals = *input.Rivals
	}
	if input.QuestRumors != nil {
		crew.QuestRumors = *input.QuestRumors
	}
	if input.Rumors != nil {
		crew.Rumors = *input.Rumors
	}
	if input.GadgetCount != nil {
		crew.GadgetCount = *input.GadgetCount
	}
	if input.GearCount != nil {
		crew.GearCount = *input.GearCount
	}
	if input.LowTechWeaponCount != nil {
		crew.LowTechWeaponCount = *input.LowTechWeaponCount
	}
	if input.MilitaryWeaponCount != nil {
		crew.MilitaryWeaponCount = *input.MilitaryWeaponCount
	}
	if input.HighTechWeaponCount != nil {
		crew.HighTechWeaponCount = *input.HighTechWeaponCount
	}
	if input.Weapons != nil {
		crew.Weapons = *input.Weapons
	}
	if input.Gear != nil {
		crew.Gear = *input.Gear
	}
	if input.Gadgets != nil {
		crew.Gadgets = *input.Gadgets
	}
	if input.Ship != nil {
		crew.Ship = input.Ship
	}
	if input.WeMetThrough != nil {
		crew.WeMetThrough = *input.WeMetThrough
	}
	if input.CaracterizedAs != nil {
		crew.CaracterizedAs = *input.CaracterizedAs
	}
	crew.UpdatedAt = o.clock.Now()

	updateOutput, err := o.crewRepo.Update(ctx, crewrepo.UpdateInput{Crew: crew})
	if err != nil {
		return nil, err
	}

	return &UpdateCrewOutput{Crew: updateOutput.Crew}, nil
}
