// Package character implements the character generation orchestrator
package character

import (
	"context"
	"log/slog"

	"github.com/fiveparsecs/campaign-api/internal/engine"
	"github.com/fiveparsecs/campaign-api/internal/entities"
	"github.com/fiveparsecs/campaign-api/internal/errors"
	"github.com/fiveparsecs/campaign-api/internal/pkg/clock"
	"github.com/fiveparsecs/campaign-api/internal/pkg/idgen"
	"github.com/fiveparsecs/campaign-api/internal/pkg/lockmap"
	campaignrepo "github.com/fiveparsecs/campaign-api/internal/repositories/campaign"
	characterrepo "github.com/fiveparsecs/campaign-api/internal/repositories/character"
	crewrepo "github.com/fiveparsecs/campaign-api/internal/repositories/crew"
	referencerepo "github.com/fiveparsecs/campaign-api/internal/repositories/reference"
)

// Base stats used when the species or its stat template cannot be resolved.
var fallbackBaseStats = entities.StatBlock{
	Reactions: 1,
	Speed:     4,
	Combat:    0,
	Toughness: 3,
	Savvy:     0,
}

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	CrewRepo      crewrepo.Repository
	CampaignRepo  campaignrepo.Repository
	ReferenceRepo referencerepo.Repository
	Engine        engine.Engine
	IDGenerator   idgen.Generator
	Clock         clock.Clock
	CrewLocks     *lockmap.LockMap
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.CrewRepo == nil {
		vb.RequiredField("CrewRepo")
	}
	if c.CampaignRepo == nil {
		vb.RequiredField("CampaignRepo")
	}
	if c.ReferenceRepo == nil {
		vb.RequiredField("ReferenceRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}

	return vb.Build()
}

// Orchestrator implements the character Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	crewRepo      crewrepo.Repository
	campaignRepo  campaignrepo.Repository
	referenceRepo referencerepo.Repository
	engine        engine.Engine
	idGen         idgen.Generator
	clock         clock.Clock
	crewLocks     *lockmap.LockMap
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewPrefixed("char")
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
		characterRepo: cfg.CharacterRepo,
		crewRepo:      cfg.CrewRepo,
		campaignRepo:  cfg.CampaignRepo,
		referenceRepo: cfg.ReferenceRepo,
		engine:        cfg.Engine,
		idGen:         idGen,
		clock:         clk,
		crewLocks:     locks,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// contributions is the combined effect/resource/starting-roll payload from
// the background, motivation, and class records, in that order.
type contributions struct {
	effects       []entities.Effect
	resources     []entities.ResourceEffect
	startingRolls []entities.StartingItem
}

// CreateCharacter generates a character and applies its crew and campaign
// side effects as one logical unit under the crew's lock.
func (o *Orchestrator) CreateCharacter(
	ctx context.Context,
	input *CreateCharacterInput,
) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CrewID == "" {
		return nil, errors.InvalidArgument("crewID is required")
	}

	unlock := o.crewLocks.Lock(input.CrewID)
	defer unlock()

	crewOutput, err := o.crewRepo.Get(ctx, crewrepo.GetInput{ID: input.CrewID})
	if err != nil {
		return nil, err
	}
	crew := crewOutput.Crew

	base := o.resolveBaseStats(ctx, input.SpeciesID)
	contrib := o.resolveContributions(ctx, input)

	stats := o.engine.ApplyEffects(base, contrib.effects)

	deltas, err := o.engine.ResolveResources(contrib.resources)
	if err != nil {
		return nil, err
	}

	counts := o.engine.AccumulateStartingItems(contrib.startingRolls)

	now := o.clock.Now()
	character := &entities.CampaignCharacter{
		ID:               o.idGen.Generate(),
		CrewID:           input.CrewID,
		Name:             input.Name,
		SpeciesID:        input.SpeciesID,
		BackgroundID:     input.BackgroundID,
		MotivationID:     input.MotivationID,
		CharacterClassID: input.CharacterClassID,
		IsActive:         true,
		IsLeader:         input.IsLeader,
		Injuries:         []string{},
		Weapons:          []string{},
		Gear:             []string{},
		Gadgets:          []string{},
		Armor:            []string{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	character.SetStats(stats)

	if _, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: character}); err != nil {
		return nil, err
	}

	crew.CharacterIDs = append(crew.CharacterIDs, character.ID)
	deltas.Crew.ApplyTo(crew)
	counts.ApplyTo(crew)
	crew.UpdatedAt = now

	if _, err := o.crewRepo.Update(ctx, crewrepo.UpdateInput{Crew: crew}); err != nil {
		return nil, err
	}

	if !deltas.Campaign.IsZero() {
		o.applyCampaignDelta(ctx, crew.CampaignID, deltas.Campaign)
	}

	return &CreateCharacterOutput{Character: character}, nil
}

// resolveBaseStats seeds the stat block from the species' stat template,
// falling back to the fixed defaults when the species or template
// cannot be resolved.
func (o *Orchestrator) resolveBaseStats(ctx context.Context, speciesID string) entities.StatBlock {
	if speciesID == "" {
		return fallbackBaseStats
	}

	speciesOutput, err := o.referenceRepo.GetSpecies(ctx, referencerepo.GetSpeciesInput{ID: speciesID})
	if err != nil {
		return fallbackBaseStats
	}
	if speciesOutput.Species.AbilitiesID == "" {
		return fallbackBaseStats
	}

	abilityOutput, err := o.referenceRepo.GetSpeciesAbility(ctx, referencerepo.GetSpeciesAbilityInput{
		ID: speciesOutput.Species.AbilitiesID,
	})
	if err != nil {
		return fallbackBaseStats
	}

	ability := abilityOutput.Ability
	return entities.StatBlock{
		Reactions: ability.Reactions,
		Speed:     ability.Speed,
		Combat:    ability.Combat,
		Toughness: ability.Toughness,
		Savvy:     ability.Savvy,
		Luck:      ability.Luck,
	}
}

// resolveContributions gathers effects, resources, and starting rolls from
// the background, motivation, and class records in that order. Missing or
// dangling IDs contribute nothing.
func (o *Orchestrator) resolveContributions(ctx context.Context, input *CreateCharacterInput) contributions {
	var contrib contributions

	if input.BackgroundID != "" {
		output, err := o.referenceRepo.GetBackground(ctx, referencerepo.GetBackgroundInput{ID: input.BackgroundID})
		if err == nil {
			contrib.effects = append(contrib.effects, output.Background.Effect...)
			contrib.resources = append(contrib.resources, output.Background.Resources...)
			contrib.startingRolls = append(contrib.startingRolls, output.Background.StartingRolls...)
		}
	}

	if input.MotivationID != "" {
		output, err := o.referenceRepo.GetMotivation(ctx, referencerepo.GetMotivationInput{ID: input.MotivationID})
		if err == nil {
			contrib.effects = append(contrib.effects, output.Motivation.Effect...)
			contrib.resources = append(contrib.resources, output.Motivation.Resources...)
			contrib.startingRolls = append(contrib.startingRolls, output.Motivation.StartingRolls...)
		}
	}

	if input.CharacterClassID != "" {
		output, err := o.referenceRepo.GetCharacterClass(ctx, referencerepo.GetCharacterClassInput{ID: input.CharacterClassID})
		if err == nil {
			contrib.effects = append(contrib.effects, output.CharacterClass.Effect...)
			contrib.resources = append(contrib.resources, output.CharacterClass.Resources...)
			contrib.startingRolls = append(contrib.startingRolls, output.CharacterClass.StartingRolls...)
		}
	}

	return contrib
}

// applyCampaignDelta routes story-point grants to the owning campaign. A
// dangling campaign reference drops the grant.
func (o *Orchestrator) applyCampaignDelta(ctx context.Context, campaignID string, delta engine.CampaignResourceDelta) {
	if campaignID == "" {
		return
	}

	campaignOutput, err := o.campaignRepo.Get(ctx, campaignrepo.GetInput{ID: campaignID})
	if err != nil {
		slog.DebugContext(ctx, "dropping campaign resource delta",
			"campaign_id", campaignID,
			"story_points", delta.StoryPoints,
			"error", err.Error())
		return
	}

	campaign := campaignOutput.Campaign
	delta.ApplyTo(campaign)
	campaign.UpdatedAt = o.clock.Now()

	if _, err := o.campaignRepo.Update(ctx, campaignrepo.UpdateInput{Campaign: campaign}); err != nil {
		slog.ErrorContext(ctx, "failed to persist campaign resource delta",
			"campaign_id", campaignID,
			"error", err.Error())
	}
}

// GetCharacter retrieves a character by ID
func (o *Orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	output, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	return &GetCharacterOutput{Character: output.Character}, nil
}

// ListCharacters retrieves characters, filtered by crew when CrewID is set
func (o *Orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil {
		input = &ListCharactersInput{}
	}

	if input.CrewID != "" {
		output, err := o.characterRepo.ListByCrewID(ctx, characterrepo.ListByCrewIDInput{CrewID: input.CrewID})
		if err != nil {
			return nil, err
		}
		return &ListCharactersOutput{Characters: output.Characters}, nil
	}

	output, err := o.characterRepo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, err
	}
	return &ListCharactersOutput{Characters: output.Characters}, nil
}

// UpdateCharacter merge-patches mutable character fields
func (o *Orchestrator) UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}
	character := getOutput.Character

	if input.Name != nil {
		character.Name = *input.Name
	}
	if input.Reactions != nil {
		character.Reactions = *input.Reactions
	}
	if input.Speed != nil {
		character.Speed = *input.Speed
	}
	if input.Combat != nil {
		character.Combat = *input.Combat
	}
	if input.Toughness != nil {
		character.Toughness = *input.Toughness
	}
	if input.Savvy != nil {
		character.Savvy = *input.Savvy
	}
	if input.Luck != nil {
		character.Luck = *input.Luck
	}
	if input.XP != nil {
		character.XP = *input.XP
	}
	if input.IsActive != nil {
		character.IsActive = *input.IsActive
	}
	if input.IsDead != nil {
		character.IsDead = *input.IsDead
	}
	if input.IsInjured != nil {
		character.IsInjured = *input.IsInjured
	}
	if input.Injuries != nil {
		character.Injuries = *input.Injuries
	}
	if input.Weapons != nil {
		character.Weapons = *input.Weapons
	}
	if input.Gear != nil {
		character.Gear = *input.Gear
	}
	if input.Gadgets != nil {
		character.Gadgets = *input.Gadgets
	}
	if input.Armor != nil {
		character.Armor = *input.Armor
	}
	character.UpdatedAt = o.clock.Now()

	updateOutput, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: character})
	if err != nil {
		return nil, err
	}

	return &UpdateCharacterOutput{Character: updateOutput.Character}, nil
}

// DeleteCharacter removes a character and drops its crew back-reference
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}
	character := getOutput.Character

	unlock := o.crewLocks.Lock(character.CrewID)
	defer unlock()

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, err
	}

	crewOutput, err := o.crewRepo.Get(ctx, crewrepo.GetInput{ID: character.CrewID})
	if err != nil {
		// The character is gone; a dangling crew reference just means
		// there is no back-reference to clean up.
		if errors.IsNotFound(err) {
			return &DeleteCharacterOutput{}, nil
		}
		return nil, err
	}

	crew := crewOutput.Crew
	crew.RemoveCharacter(input.ID)
	crew.UpdatedAt = o.clock.Now()

	if _, err := o.crewRepo.Update(ctx, crewrepo.UpdateInput{Crew: crew}); err != nil {
		return nil, err
	}

	return &DeleteCharacterOutput{}, nil
}

// SelectLeader marks a character as crew leader. Bot-type species get the
// flag but not the luck bonus. Repeated calls grant luck repeatedly; the
// caller guards against double selection.
func (o *Orchestrator) SelectLeader(ctx context.Context, input *SelectLeaderInput) (*SelectLeaderOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	getOutput, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}
	character := getOutput.Character

	grantLuck := true
	if character.SpeciesID != "" {
		speciesOutput, err := o.referenceRepo.GetSpecies(ctx, referencerepo.GetSpeciesInput{ID: character.SpeciesID})
		if err == nil && speciesOutput.Species.BotType {
			grantLuck = false
		}
	}

	if grantLuck {
		character.Luck++
	}
	character.IsLeader = true
	character.UpdatedAt = o.clock.Now()

	updateOutput, err := o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: character})
	if err != nil {
		return nil, err
	}

	return &SelectLeaderOutput{Character: updateOutput.Character}, nil
}
