package engine_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/fiveparsecs/campaign-api/internal/engine"
	"github.com/fiveparsecs/campaign-api/internal/entities"
	"github.com/fiveparsecs/campaign-api/internal/errors"
	"github.com/fiveparsecs/campaign-api/internal/testutils"
)

type EngineTestSuite struct {
	suite.Suite
	roller *testutils.FixedRoller
	engine engine.Engine
}

func (s *EngineTestSuite) SetupTest() {
	s.roller = testutils.NewFixedRoller()

	eng, err := engine.New(&engine.Config{
		DiceRoller: s.roller,
		EventBus:   events.NewBus(),
	})
	s.Require().NoError(err)
	s.engine = eng
}

func (s *EngineTestSuite) TestConfigValidation() {
	_, err := engine.New(&engine.Config{EventBus: events.NewBus()})
	s.True(errors.IsInvalidArgument(err))

	_, err = engine.New(&engine.Config{DiceRoller: dice.DefaultRoller})
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestApplyEffects() {
	base := entities.StatBlock{Reactions: 1, Speed: 4, Combat: 0, Toughness: 3, Savvy: 0}

	stats := s.engine.ApplyEffects(base, []entities.Effect{
		{AbilityID: entities.AbilitySavvy, Amount: 1},
		{AbilityID: entities.AbilityCombat, Amount: 1},
	})

	s.Equal(entities.StatBlock{Reactions: 1, Speed: 4, Combat: 1, Toughness: 3, Savvy: 1}, stats)
}

func (s *EngineTestSuite) TestApplyEffectsOrderIndependent() {
	base := entities.StatBlock{Reactions: 1, Speed: 4, Toughness: 3}
	effects := []entities.Effect{
		{AbilityID: entities.AbilityCombat, Amount: 2},
		{AbilityID: entities.AbilitySavvy, Amount: 1},
		{AbilityID: entities.AbilityCombat, Amount: -1},
		{AbilityID: entities.AbilityLuck, Amount: 1},
	}
	reversed := []entities.Effect{effects[3], effects[2], effects[1], effects[0]}

	s.Equal(s.engine.ApplyEffects(base, effects), s.engine.ApplyEffects(base, reversed))
}

func (s *EngineTestSuite) TestApplyEffectsUnknownAbilityIgnored() {
	base := entities.StatBlock{Speed: 4}

	stats := s.engine.ApplyEffects(base, []entities.Effect{
		{AbilityID: "charisma", Amount: 5},
	})

	s.Equal(base, stats)
}

func (s *EngineTestSuite) TestRollExpressionBounds() {
	eng, err := engine.New(&engine.Config{
		DiceRoller: dice.DefaultRoller,
		EventBus:   events.NewBus(),
	})
	s.Require().NoError(err)

	for i := 0; i < 50; i++ {
		total, err := eng.RollExpression(entities.DiceExpression{NumDice: 2, DiceSize: 6, Modifier: 3})
		s.Require().NoError(err)
		s.GreaterOrEqual(total, 5)
		s.LessOrEqual(total, 15)
	}
}

func (s *EngineTestSuite) TestRollExpressionDeterministic() {
	s.roller.SetRolls([]int{4, 2})

	total, err := s.engine.RollExpression(entities.DiceExpression{NumDice: 2, DiceSize: 6, Modifier: 1})
	s.Require().NoError(err)
	s.Equal(7, total)
}

func (s *EngineTestSuite) TestRollExpressionRejectsInvalidCounts() {
	_, err := s.engine.RollExpression(entities.DiceExpression{NumDice: -1, DiceSize: 6})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.RollExpression(entities.DiceExpression{NumDice: 1, DiceSize: 0})
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestResolveResourcesRouting() {
	deltas, err := s.engine.ResolveResources([]entities.ResourceEffect{
		{ResourceType: entities.ResourceCredits, Amount: 5},
		{ResourceType: entities.ResourceStoryPoints, Amount: 3},
	})
	s.Require().NoError(err)

	s.Equal(5, deltas.Crew.Credits)
	s.Equal(3, deltas.Campaign.StoryPoints)
	s.Equal(engine.CrewResourceDelta{Credits: 5}, deltas.Crew)
}

func (s *EngineTestSuite) TestResolveResourcesSumsSameField() {
	deltas, err := s.engine.ResolveResources([]entities.ResourceEffect{
		{ResourceType: entities.ResourceCredits, Amount: 5},
		{ResourceType: entities.ResourceCredits, Amount: -2},
	})
	s.Require().NoError(err)
	s.Equal(3, deltas.Crew.Credits)
}

func (s *EngineTestSuite) TestResolveResourcesRollsDice() {
	s.roller.SetRolls([]int{4})

	deltas, err := s.engine.ResolveResources([]entities.ResourceEffect{
		{
			ResourceType: entities.ResourceCredits,
			Dice:         &entities.DiceExpression{NumDice: 1, DiceSize: 6},
		},
	})
	s.Require().NoError(err)
	s.Equal(4, deltas.Crew.Credits)
}

func (s *EngineTestSuite) TestResolveResourcesUnknownTypeIgnored() {
	deltas, err := s.engine.ResolveResources([]entities.ResourceEffect{
		{ResourceType: "fuel", Amount: 10},
	})
	s.Require().NoError(err)
	s.True(deltas.Crew.IsZero())
	s.True(deltas.Campaign.IsZero())
}

func (s *EngineTestSuite) TestAccumulateStartingItems() {
	counts := s.engine.AccumulateStartingItems([]entities.StartingItem{
		{ItemType: entities.ItemGear, Amount: 1},
		{ItemType: entities.ItemWeapon, Subtype: entities.SubtypeLowTech, Amount: 3},
	})

	s.Equal(engine.ItemCounts{Gear: 1, LowTechWeapons: 3}, counts)
}

func (s *EngineTestSuite) TestAccumulateStartingItemsMilitaryWeapons() {
	counts := s.engine.AccumulateStartingItems([]entities.StartingItem{
		{ItemType: entities.ItemWeapon, Subtype: entities.SubtypeMilitary, Amount: 2},
	})

	s.Equal(engine.ItemCounts{MilitaryWeapons: 2}, counts)
}

func (s *EngineTestSuite) TestAccumulateStartingItemsNoTargetIgnored() {
	counts := s.engine.AccumulateStartingItems([]entities.StartingItem{
		{ItemType: entities.ItemArmor, Amount: 1},
		{ItemType: entities.ItemWeapon, Subtype: entities.SubtypeAny, Amount: 2},
		{ItemType: "vehicle", Amount: 4},
	})

	s.True(counts.IsZero())
}

func (s *EngineTestSuite) TestDeltaApplyTo() {
	crew := &entities.CampaignCrew{Credits: 10, GearCount: 1}
	campaign := &entities.Campaign{StoryPoints: 1}

	engine.CrewResourceDelta{Credits: 4, Rivals: 1}.ApplyTo(crew)
	engine.CampaignResourceDelta{StoryPoints: 2}.ApplyTo(campaign)
	engine.ItemCounts{Gear: 2, HighTechWeapons: 1}.ApplyTo(crew)

	s.Equal(14, crew.Credits)
	s.Equal(1, crew.Rivals)
	s.Equal(3, crew.GearCount)
	s.Equal(1, crew.HighTechWeaponCount)
	s.Equal(3, campaign.StoryPoints)
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}
