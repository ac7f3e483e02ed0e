// Package engine implements the character-generation rules: effect
// interpretation, dice evaluation, resource resolution, and starting-item
// accumulation.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/fiveparsecs/campaign-api/internal/engine Engine

import (
	"github.com/fiveparsecs/campaign-api/internal/entities"
)

// Engine provides the game-rule calculations used during character
// generation. All methods are in-memory and CPU-bound.
type Engine interface {
	// ApplyEffects folds a list of stat modifiers into a base stat block.
	// Unrecognized ability IDs are ignored. Pure function.
	ApplyEffects(base entities.StatBlock, effects []entities.Effect) entities.StatBlock

	// RollExpression evaluates numDice rolls of a diceSize-sided die plus
	// the modifier. Returns errors.InvalidArgument when numDice or
	// diceSize is below one.
	RollExpression(expr entities.DiceExpression) (int, error)

	// ResolveResources turns a list of resource grants into summed deltas,
	// rolling any dice-valued amounts. Unrecognized resource types are
	// ignored.
	ResolveResources(resources []entities.ResourceEffect) (*ResourceDeltas, error)

	// AccumulateStartingItems tallies pending equipment-roll counts by
	// item type and weapon subtype. Armor grants and weapons with an
	// unrecognized or "any" subtype have no accumulation target and are
	// ignored.
	AccumulateStartingItems(items []entities.StartingItem) ItemCounts
}
