package campaign_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/fiveparsecs/campaign-api/internal/entities"
	"github.com/fiveparsecs/campaign-api/internal/errors"
	"github.com/fiveparsecs/campaign-api/internal/orchestrators/campaign"
	"github.com/fiveparsecs/campaign-api/internal/pkg/clock"
	"github.com/fiveparsecs/campaign-api/internal/pkg/idgen"
	campaignrepo "github.com/fiveparsecs/campaign-api/internal/repositories/campaign"
	campaignrepomock "github.com/fiveparsecs/campaign-api/internal/repositories/campaign/mock"
	characterrepo "github.com/fiveparsecs/campaign-api/internal/repositories/character"
	charrepomock "github.com/fiveparsecs/campaign-api/internal/repositories/character/mock"
	crewrepo "github.com/fiveparsecs/campaign-api/internal/repositories/crew"
	crewrepomock "github.com/fiveparsecs/campaign-api/internal/repositories/crew/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockCampRepo *campaignrepomock.MockRepository
	mockCrewRepo *crewrepomock.MockRepository
	mockCharRepo *charrepomock.MockRepository
	orchestrator *campaign.Orchestrator
	ctx          context.Context
	now          time.Time
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCampRepo = campaignrepomock.NewMockRepository(s.ctrl)
	s.mockCrewRepo = crewrepomock.NewMockRepository(s.ctrl)
	s.mockCharRepo = charrepomock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	orchestrator, err := campaign.New(&campaign.Config{
		CampaignRepo:  s.mockCampRepo,
		CrewRepo:      s.mockCrewRepo,
		CharacterRepo: s.mockCharRepo,
		CampaignIDGen: idgen.NewSequential("campaign"),
		CrewIDGen:     idgen.NewSequential("crew"),
		Clock:         &clock.Fixed{T: s.now},
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestCreateCampaignCreatesLinkedCrew() {
	s.mockCrewRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input crewrepo.CreateInput) (*crewrepo.CreateOutput, error) {
			return &crewrepo.CreateOutput{Crew: input.Crew}, nil
		})
	s.mockCampRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input campaignrepo.CreateInput) (*campaignrepo.CreateOutput, error) {
			return &campaignrepo.CreateOutput{Campaign: input.Campaign}, nil
		})

	output, err := s.orchestrator.CreateCampaign(s.ctx, &campaign.CreateCampaignInput{
		Name:     "Rim Worlds Run",
		CrewSize: 6,
	})
	s.Require().NoError(err)

	s.Equal(entities.CampaignNotStarted, output.Campaign.Status)
	s.Equal(output.Crew.ID, output.Campaign.CrewID)
	s.Equal(output.Campaign.ID, output.Crew.CampaignID)
	s.Empty(output.Crew.CharacterIDs)
	s.Equal(s.now, output.Campaign.CreatedAt)
}

func (s *OrchestratorTestSuite) TestCreateCampaignRequiresName() {
	_, err := s.orchestrator.CreateCampaign(s.ctx, &campaign.CreateCampaignInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateCampaignCleansUpCrewOnFailure() {
	s.mockCrewRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input crewrepo.CreateInput) (*crewrepo.CreateOutput, error) {
			return &crewrepo.CreateOutput{Crew: input.Crew}, nil
		})
	s.mockCampRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("write failed"))
	s.mockCrewRepo.EXPECT().
		Delete(s.ctx, gomock.Any()).
		Return(&crewrepo.DeleteOutput{}, nil)

	_, err := s.orchestrator.CreateCampaign(s.ctx, &campaign.CreateCampaignInput{Name: "Doomed"})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestUpdateCampaignStatus() {
	stored := &entities.Campaign{ID: "campaign_1", Status: entities.CampaignNotStarted}

	s.mockCampRepo.EXPECT().
		Get(s.ctx, campaignrepo.GetInput{ID: "campaign_1"}).
		Return(&campaignrepo.GetOutput{Campaign: stored}, nil)
	s.mockCampRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input campaignrepo.UpdateInput) (*campaignrepo.UpdateOutput, error) {
			return &campaignrepo.UpdateOutput{Campaign: input.Campaign}, nil
		})

	status := entities.CampaignInProgress
	output, err := s.orchestrator.UpdateCampaign(s.ctx, &campaign.UpdateCampaignInput{
		ID:     "campaign_1",
		Status: &status,
	})
	s.Require().NoError(err)
	s.Equal(entities.CampaignInProgress, output.Campaign.Status)
	s.Equal(s.now, output.Campaign.UpdatedAt)
}

func (s *OrchestratorTestSuite) TestDeleteCampaignCascades() {
	stored := &entities.Campaign{ID: "campaign_1", CrewID: "crew_1"}

	s.mockCampRepo.EXPECT().
		Get(s.ctx, campaignrepo.GetInput{ID: "campaign_1"}).
		Return(&campaignrepo.GetOutput{Campaign: stored}, nil)
	s.mockCharRepo.EXPECT().
		ListByCrewID(s.ctx, characterrepo.ListByCrewIDInput{CrewID: "crew_1"}).
		Return(&characterrepo.ListByCrewIDOutput{
			Characters: []*entities.CampaignCharacter{{ID: "char_1"}, {ID: "char_2"}},
		}, nil)
	s.mockCharRepo.EXPECT().
		Delete(s.ctx, characterrepo.DeleteInput{ID: "char_1"}).
		Return(&characterrepo.DeleteOutput{}, nil)
	s.mockCharRepo.EXPECT().
		Delete(s.ctx, characterrepo.DeleteInput{ID: "char_2"}).
		Return(&characterrepo.DeleteOutput{}, nil)
	s.mockCrewRepo.EXPECT().
		Delete(s.ctx, crewrepo.DeleteInput{ID: "crew_1"}).
		Return(&crewrepo.DeleteOutput{}, nil)
	s.mockCampRepo.EXPECT().
		Delete(s.ctx, campaignrepo.DeleteInput{ID: "campaign_1"}).
		Return(&campaignrepo.DeleteOutput{}, nil)

	_, err := s.orchestrator.DeleteCampaign(s.ctx, &campaign.DeleteCampaignInput{ID: "campaign_1"})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestGetCampaignNotFound() {
	s.mockCampRepo.EXPECT().
		Get(s.ctx, campaignrepo.GetInput{ID: "campaign_missing"}).
		Return(nil, errors.NotFound("campaign with ID campaign_missing not found"))

	_, err := s.orchestrator.GetCampaign(s.ctx, &campaign.GetCampaignInput{ID: "campaign_missing"})
	s.True(errors.IsNotFound(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
