package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/fiveparsecs/campaign-api/internal/entities"
	"github.com/fiveparsecs/campaign-api/internal/errors"
)

type engine struct {
	roller   dice.Roller
	eventBus events.EventBus
}

// Config contains configuration for creating a new Engine.
type Config struct {
	DiceRoller dice.Roller
	EventBus   events.EventBus
}

// Validate checks that all required dependencies are provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	if cfg.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	return nil
}

// New creates an Engine from the given config.
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{
		roller:   cfg.DiceRoller,
		eventBus: cfg.EventBus,
	}, nil
}

func (e *engine) ApplyEffects(base entities.StatBlock, effects []entities.Effect) entities.StatBlock {
	stats := base
	for _, effect := range effects {
		switch effect.AbilityID {
		case entities.AbilityReactions:
			stats.Reactions += effect.Amount
		case entities.AbilitySpeed:
			stats.Speed += effect.Amount
		case entities.AbilityCombat:
			stats.Combat += effect.Amount
		case entities.AbilityToughness:
			stats.Toughness += effect.Amount
		case entities.AbilitySavvy:
			stats.Savvy += effect.Amount
		case entities.AbilityLuck:
			stats.Luck += effect.Amount
		case entities.AbilityXP:
			stats.XP += effect.Amount
		default:
			// Unrecognized ability IDs contribute nothing.
		}
	}
	return stats
}

func (e *engine) RollExpression(expr entities.DiceExpression) (int, error) {
	if expr.NumDice < 1 {
		return 0, errors.InvalidArgumentf("numDice must be at least 1, got %d", expr.NumDice)
	}
	if expr.DiceSize < 1 {
		return 0, errors.InvalidArgumentf("diceSize must be at least 1, got %d", expr.DiceSize)
	}

	rolls, err := e.roller.RollN(expr.NumDice, expr.DiceSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll dice")
	}

	total := expr.Modifier
	for _, roll := range rolls {
		total += roll
	}
	return total, nil
}

func (e *engine) ResolveResources(resources []entities.ResourceEffect) (*ResourceDeltas, error) {
	deltas := &ResourceDeltas{}

	for _, resource := range resources {
		amount := resource.Amount
		if resource.Dice != nil {
			rolled, err := e.RollExpression(*resource.Dice)
			if err != nil {
				return nil, err
			}
			amount = rolled
		}

		switch resource.ResourceType {
		case entities.ResourceCredits:
			deltas.Crew.Credits += amount
		case entities.ResourceReputation:
			deltas.Crew.Reputation += amount
		case entities.ResourcePatrons:
			deltas.Crew.Patrons += amount
		case entities.ResourceRivals:
			deltas.Crew.Rivals += amount
		case entities.ResourceQuestRumors:
			deltas.Crew.QuestRumors += amount
		case entities.ResourceRumor:
			deltas.Crew.Rumors += amount
		case entities.ResourceStoryPoints:
			deltas.Campaign.StoryPoints += amount
		default:
			// Unrecognized resource types contribute nothing.
		}
	}

	return deltas, nil
}

func (e *engine) AccumulateStartingItems(items []entities.StartingItem) ItemCounts {
	counts := ItemCounts{}

	for _, item := range items {
		switch item.ItemType {
		case entities.ItemWeapon:
			switch item.Subtype {
			case entities.SubtypeMilitary:
				counts.MilitaryWeapons += item.Amount
			case entities.SubtypeLowTech:
				counts.LowTechWeapons += item.Amount
			case entities.SubtypeHighTech:
				counts.HighTechWeapons += item.Amount
			default:
				// "any" and unrecognized subtypes have no counter.
			}
		case entities.ItemGear:
			counts.Gear += item.Amount
		case entities.ItemGadget:
			counts.Gadgets += item.Amount
		default:
			// Armor and unrecognized item types have no counter.
		}
	}

	return counts
}
