package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/fiveparsecs/campaign-api/internal/engine"
	"github.com/fiveparsecs/campaign-api/internal/entities"
	"github.com/fiveparsecs/campaign-api/internal/errors"
	"github.com/fiveparsecs/campaign-api/internal/orchestrators/character"
	"github.com/fiveparsecs/campaign-api/internal/pkg/clock"
	"github.com/fiveparsecs/campaign-api/internal/pkg/idgen"
	campaignrepo "github.com/fiveparsecs/campaign-api/internal/repositories/campaign"
	campaignmock "github.com/fiveparsecs/campaign-api/internal/repositories/campaign/mock"
	characterrepo "github.com/fiveparsecs/campaign-api/internal/repositories/character"
	charrepomock "github.com/fiveparsecs/campaign-api/internal/repositories/character/mock"
	crewrepo "github.com/fiveparsecs/campaign-api/internal/repositories/crew"
	crewmock "github.com/fiveparsecs/campaign-api/internal/repositories/crew/mock"
	referencerepo "github.com/fiveparsecs/campaign-api/internal/repositories/reference"
	referencemock "github.com/fiveparsecs/campaign-api/internal/repositories/reference/mock"
	"github.com/fiveparsecs/campaign-api/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockCharRepo *charrepomock.MockRepository
	mockCrewRepo *crewmock.MockRepository
	mockCampRepo *campaignmock.MockRepository
	mockRefRepo  *referencemock.MockRepository
	roller       *testutils.FixedRoller
	orchestrator *character.Orchestrator
	ctx          context.Context
	now          time.Time
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharRepo = charrepomock.NewMockRepository(s.ctrl)
	s.mockCrewRepo = crewmock.NewMockRepository(s.ctrl)
	s.mockCampRepo = campaignmock.NewMockRepository(s.ctrl)
	s.mockRefRepo = referencemock.NewMockRepository(s.ctrl)
	s.roller = testutils.NewFixedRoller()
	s.ctx = context.Background()
	s.now = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	eng, err := engine.New(&engine.Config{
		DiceRoller: s.roller,
		EventBus:   events.NewBus(),
	})
	s.Require().NoError(err)

	orchestrator, err := character.New(&character.Config{
		CharacterRepo: s.mockCharRepo,
		CrewRepo:      s.mockCrewRepo,
		CampaignRepo:  s.mockCampRepo,
		ReferenceRepo: s.mockRefRepo,
		Engine:        eng,
		IDGenerator:   idgen.NewSequential("char"),
		Clock:         &clock.Fixed{T: s.now},
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectCrew(crew *entities.CampaignCrew) {
	s.mockCrewRepo.EXPECT().
		Get(s.ctx, crewrepo.GetInput{ID: crew.ID}).
		Return(&crewrepo.GetOutput{Crew: crew}, nil)
}

func (s *OrchestratorTestSuite) TestCreateCharacterMissingCrewFails() {
	s.mockCrewRepo.EXPECT().
		Get(s.ctx, crewrepo.GetInput{ID: "crew_missing"}).
		Return(nil, errors.NotFound("crew with ID crew_missing not found"))

	_, err := s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		CrewID: "crew_missing",
		Name:   "Vela",
	})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCreateCharacterDanglingReferencesDefault() {
	crew := &entities.CampaignCrew{ID: "crew_1", CampaignID: "campaign_1"}
	s.expectCrew(crew)

	s.mockRefRepo.EXPECT().
		GetSpecies(s.ctx, referencerepo.GetSpeciesInput{ID: "species_missing"}).
		Return(nil, errors.NotFound("species with ID species_missing not found"))
	s.mockRefRepo.EXPECT().
		GetBackground(s.ctx, referencerepo.GetBackgroundInput{ID: "background_missing"}).
		Return(nil, errors.NotFound("background with ID background_missing not found"))

	s.mockCharRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
			return &characterrepo.CreateOutput{Character: input.Character}, nil
		})
	s.mockCrewRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input crewrepo.UpdateInput) (*crewrepo.UpdateOutput, error) {
			return &crewrepo.UpdateOutput{Crew: input.Crew}, nil
		})

	output, err := s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		CrewID:       "crew_1",
		Name:         "Vela",
		SpeciesID:    "species_missing",
		BackgroundID: "background_missing",
	})
	s.Require().NoError(err)

	// Fallback base stats, no contributions.
	s.Equal(entities.StatBlock{Reactions: 1, Speed: 4, Combat: 0, Toughness: 3, Savvy: 0}, output.Character.Stats())
	s.True(output.Character.IsActive)
	s.False(output.Character.IsLeader)
	s.Equal([]string{output.Character.ID}, crew.CharacterIDs)
}

func (s *OrchestratorTestSuite) TestCreateCharacterComposesSources() {
	crew := &entities.CampaignCrew{ID: "crew_1", CampaignID: "campaign_1", Credits: 10}
	s.expectCrew(crew)

	s.mockRefRepo.EXPECT().
		GetSpecies(s.ctx, referencerepo.GetSpeciesInput{ID: "species_1"}).
		Return(&referencerepo.GetSpeciesOutput{
			Species: &entities.Species{ID: "species_1", AbilitiesID: "ability_1"},
		}, nil)
	s.mockRefRepo.EXPECT().
		GetSpeciesAbility(s.ctx, referencerepo.GetSpeciesAbilityInput{ID: "ability_1"}).
		Return(&referencerepo.GetSpeciesAbilityOutput{
			Ability: &entities.SpeciesAbility{ID: "ability_1", Reactions: 1, Speed: 4, Toughness: 3},
		}, nil)
	s.mockRefRepo.EXPECT().
		GetBackground(s.ctx, referencerepo.GetBackgroundInput{ID: "background_1"}).
		Return(&referencerepo.GetBackgroundOutput{
			Background: &entities.Background{
				ID:     "background_1",
				Effect: []entities.Effect{{AbilityID: entities.AbilitySavvy, Amount: 1}},
				Resources: []entities.ResourceEffect{
					{ResourceType: entities.ResourceCredits, Dice: &entities.DiceExpression{NumDice: 1, DiceSize: 6}},
				},
			},
		}, nil)
	s.mockRefRepo.EXPECT().
		GetMotivation(s.ctx, referencerepo.GetMotivationInput{ID: "motivation_1"}).
		Return(&referencerepo.GetMotivationOutput{
			Motivation: &entities.Motivation{
				ID:     "motivation_1",
				Effect: []entities.Effect{{AbilityID: entities.AbilityCombat, Amount: 1}},
				Resources: []entities.ResourceEffect{
					{ResourceType: entities.ResourceStoryPoints, Amount: 3},
				},
			},
		}, nil)
	s.mockRefRepo.EXPECT().
		GetCharacterClass(s.ctx, referencerepo.GetCharacterClassInput{ID: "class_1"}).
		Return(&referencerepo.GetCharacterClassOutput{
			CharacterClass: &entities.CharacterClass{
				ID: "class_1",
				StartingRolls: []entities.StartingItem{
					{ItemType: entities.ItemGear, Amount: 1},
					{ItemType: entities.ItemWeapon, Subtype: entities.SubtypeLowTech, Amount: 3},
				},
			},
		}, nil)

	// Mocked d6 for the credits grant.
	s.roller.SetRolls([]int{4})

	s.mockCharRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
			return &characterrepo.CreateOutput{Character: input.Character}, nil
		})

	var updatedCrew *entities.CampaignCrew
	s.mockCrewRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input crewrepo.UpdateInput) (*crewrepo.UpdateOutput, error) {
			updatedCrew = input.Crew
			return &crewrepo.UpdateOutput{Crew: input.Crew}, nil
		})

	campaign := &entities.Campaign{ID: "campaign_1", StoryPoints: 1}
	s.mockCampRepo.EXPECT().
		Get(s.ctx, campaignrepo.GetInput{ID: "campaign_1"}).
		Return(&campaignrepo.GetOutput{Campaign: campaign}, nil)
	s.mockCampRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input campaignrepo.UpdateInput) (*campaignrepo.UpdateOutput, error) {
			return &campaignrepo.UpdateOutput{Campaign: input.Campaign}, nil
		})

	output, err := s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		CrewID:           "crew_1",
		Name:             "Vela",
		SpeciesID:        "species_1",
		BackgroundID:     "background_1",
		MotivationID:     "motivation_1",
		CharacterClassID: "class_1",
	})
	s.Require().NoError(err)

	s.Equal(entities.StatBlock{Reactions: 1, Speed: 4, Combat: 1, Toughness: 3, Savvy: 1}, output.Character.Stats())
	s.Equal(s.now, output.Character.CreatedAt)

	s.Require().NotNil(updatedCrew)
	s.Equal(14, updatedCrew.Credits)
	s.Equal(1, updatedCrew.GearCount)
	s.Equal(3, updatedCrew.LowTechWeaponCount)
	s.Equal(0, updatedCrew.MilitaryWeaponCount)
	s.Equal([]string{output.Character.ID}, updatedCrew.CharacterIDs)
	s.Equal(s.now, updatedCrew.UpdatedAt)

	s.Equal(4, campaign.StoryPoints)
}

func (s *OrchestratorTestSuite) TestCreateCharacterDropsStoryPointsWhenCampaignMissing() {
	crew := &entities.CampaignCrew{ID: "crew_1", CampaignID: "campaign_missing"}
	s.expectCrew(crew)

	s.mockRefRepo.EXPECT().
		GetMotivation(s.ctx, referencerepo.GetMotivationInput{ID: "motivation_1"}).
		Return(&referencerepo.GetMotivationOutput{
			Motivation: &entities.Motivation{
				ID: "motivation_1",
				Resources: []entities.ResourceEffect{
					{ResourceType: entities.ResourceStoryPoints, Amount: 2},
				},
			},
		}, nil)

	s.mockCharRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.CreateInput) (*characterrepo.CreateOutput, error) {
			return &characterrepo.CreateOutput{Character: input.Character}, nil
		})
	s.mockCrewRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input crewrepo.UpdateInput) (*crewrepo.UpdateOutput, error) {
			return &crewrepo.UpdateOutput{Crew: input.Crew}, nil
		})
	s.mockCampRepo.EXPECT().
		Get(s.ctx, campaignrepo.GetInput{ID: "campaign_missing"}).
		Return(nil, errors.NotFound("campaign with ID campaign_missing not found"))

	_, err := s.orchestrator.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		CrewID:       "crew_1",
		MotivationID: "motivation_1",
	})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestSelectLeaderGrantsLuck() {
	char := &entities.CampaignCharacter{ID: "char_1", CrewID: "crew_1", SpeciesID: "species_1", Luck: 0}

	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: "char_1"}).
		Return(&characterrepo.GetOutput{Character: char}, nil)
	s.mockRefRepo.EXPECT().
		GetSpecies(s.ctx, referencerepo.GetSpeciesInput{ID: "species_1"}).
		Return(&referencerepo.GetSpeciesOutput{
			Species: &entities.Species{ID: "species_1"},
		}, nil)
	s.mockCharRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			return &characterrepo.UpdateOutput{Character: input.Character}, nil
		})

	output, err := s.orchestrator.SelectLeader(s.ctx, &character.SelectLeaderInput{ID: "char_1"})
	s.Require().NoError(err)
	s.True(output.Character.IsLeader)
	s.Equal(1, output.Character.Luck)
}

func (s *OrchestratorTestSuite) TestSelectLeaderBotGetsNoLuck() {
	char := &entities.CampaignCharacter{ID: "char_1", CrewID: "crew_1", SpeciesID: "species_bot", Luck: 0}

	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: "char_1"}).
		Return(&characterrepo.GetOutput{Character: char}, nil)
	s.mockRefRepo.EXPECT().
		GetSpecies(s.ctx, referencerepo.GetSpeciesInput{ID: "species_bot"}).
		Return(&referencerepo.GetSpeciesOutput{
			Species: &entities.Species{ID: "species_bot", BotType: true},
		}, nil)
	s.mockCharRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			return &characterrepo.UpdateOutput{Character: input.Character}, nil
		})

	output, err := s.orchestrator.SelectLeader(s.ctx, &character.SelectLeaderInput{ID: "char_1"})
	s.Require().NoError(err)
	s.True(output.Character.IsLeader)
	s.Equal(0, output.Character.Luck)
}

func (s *OrchestratorTestSuite) TestSelectLeaderRepeatedGrantsAgain() {
	char := &entities.CampaignCharacter{ID: "char_1", IsLeader: true, Luck: 1}

	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: "char_1"}).
		Return(&characterrepo.GetOutput{Character: char}, nil)
	s.mockCharRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			return &characterrepo.UpdateOutput{Character: input.Character}, nil
		})

	output, err := s.orchestrator.SelectLeader(s.ctx, &character.SelectLeaderInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal(2, output.Character.Luck)
}

func (s *OrchestratorTestSuite) TestUpdateCharacterMergePatch() {
	char := &entities.CampaignCharacter{ID: "char_1", Name: "Vela", XP: 2, IsActive: true}

	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: "char_1"}).
		Return(&characterrepo.GetOutput{Character: char}, nil)
	s.mockCharRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			return &characterrepo.UpdateOutput{Character: input.Character}, nil
		})

	xp := 5
	dead := true
	output, err := s.orchestrator.UpdateCharacter(s.ctx, &character.UpdateCharacterInput{
		ID:     "char_1",
		XP:     &xp,
		IsDead: &dead,
	})
	s.Require().NoError(err)
	s.Equal("Vela", output.Character.Name)
	s.Equal(5, output.Character.XP)
	s.True(output.Character.IsDead)
	s.Equal(s.now, output.Character.UpdatedAt)
}

func (s *OrchestratorTestSuite) TestDeleteCharacterRemovesCrewBackReference() {
	char := &entities.CampaignCharacter{ID: "char_1", CrewID: "crew_1"}
	crew := &entities.CampaignCrew{ID: "crew_1", CharacterIDs: []string{"char_1", "char_2"}}

	s.mockCharRepo.EXPECT().
		Get(s.ctx, characterrepo.GetInput{ID: "char_1"}).
		Return(&characterrepo.GetOutput{Character: char}, nil)
	s.mockCharRepo.EXPECT().
		Delete(s.ctx, characterrepo.DeleteInput{ID: "char_1"}).
		Return(&characterrepo.DeleteOutput{}, nil)
	s.mockCrewRepo.EXPECT().
		Get(s.ctx, crewrepo.GetInput{ID: "crew_1"}).
		Return(&crewrepo.GetOutput{Crew: crew}, nil)

	var updatedCrew *entities.CampaignCrew
	s.mockCrewRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input crewrepo.UpdateInput) (*crewrepo.UpdateOutput, error) {
			updatedCrew = input.Crew
			return &crewrepo.UpdateOutput{Crew: input.Crew}, nil
		})

	_, err := s.orchestrator.DeleteCharacter(s.ctx, &character.DeleteCharacterInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal([]string{"char_2"}, updatedCrew.CharacterIDs)
}

func (s *OrchestratorTestSuite) TestListCharactersByCrew() {
	s.mockCharRepo.EXPECT().
		ListByCrewID(s.ctx, characterrepo.ListByCrewIDInput{CrewID: "crew_1"}).
		Return(&characterrepo.ListByCrewIDOutput{
			Characters: []*entities.CampaignCharacter{{ID: "char_1"}},
		}, nil)

	output, err := s.orchestrator.ListCharacters(s.ctx, &character.ListCharactersInput{CrewID: "crew_1"})
	s.Require().NoError(err)
	s.Len(output.Characters, 1)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
