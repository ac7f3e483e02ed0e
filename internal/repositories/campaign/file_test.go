package campaign_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fiveparsecs/campaign-api/internal/entities"
	"github.com/fiveparsecs/campaign-api/internal/errors"
	"github.com/fiveparsecs/campaign-api/internal/repositories/campaign"
	"github.com/fiveparsecs/campaign-api/internal/storage/document"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	repo campaign.Repository
	ctx  context.Context
}

func (s *FileRepositoryTestSuite) SetupTest() {
	store, err := document.Open(&document.Config{
		Path: filepath.Join(s.T().TempDir(), "db.json"),
	})
	s.Require().NoError(err)

	repo, err := campaign.NewFile(&campaign.FileConfig{Store: store})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *FileRepositoryTestSuite) TestCreateAndGet() {
	_, err := s.repo.Create(s.ctx, campaign.CreateInput{
		Campaign: &entities.Campaign{
			ID:     "campaign_1",
			Name:   "Rim Worlds Run",
			Status: entities.CampaignNotStarted,
			CrewID: "crew_1",
		},
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, campaign.GetInput{ID: "campaign_1"})
	s.Require().NoError(err)
	s.Equal("Rim Worlds Run", got.Campaign.Name)
	s.Equal(entities.CampaignNotStarted, got.Campaign.Status)
}

func (s *FileRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, campaign.GetInput{ID: "campaign_missing"})
	s.True(errors.IsNotFound(err))
}

func (s *FileRepositoryTestSuite) TestUpdate() {
	_, err := s.repo.Create(s.ctx, campaign.CreateInput{
		Campaign: &entities.Campaign{ID: "campaign_1", StoryPoints: 2},
	})
	s.Require().NoError(err)

	_, err = s.repo.Update(s.ctx, campaign.UpdateInput{
		Campaign: &entities.Campaign{
			ID:          "campaign_1",
			Status:      entities.CampaignInProgress,
			StoryPoints: 3,
		},
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, campaign.GetInput{ID: "campaign_1"})
	s.Require().NoError(err)
	s.Equal(entities.CampaignInProgress, got.Campaign.Status)
	s.Equal(3, got.Campaign.StoryPoints)
}

func (s *FileRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, campaign.CreateInput{
		Campaign: &entities.Campaign{ID: "campaign_1"},
	})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, campaign.DeleteInput{ID: "campaign_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, campaign.GetInput{ID: "campaign_1"})
	s.True(errors.IsNotFound(err))
}

func (s *FileRepositoryTestSuite) TestList() {
	for _, c := range []*entities.Campaign{
		{ID: "campaign_1"},
		{ID: "campaign_2"},
	} {
		_, err := s.repo.Create(s.ctx, campaign.CreateInput{Campaign: c})
		s.Require().NoError(err)
	}

	output, err := s.repo.List(s.ctx, campaign.ListInput{})
	s.Require().NoError(err)
	s.Len(output.Campaigns, 2)
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}
