package crew_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fiveparsecs/campaign-api/internal/entities"
	"github.com/fiveparsecs/campaign-api/internal/errors"
	"github.com/fiveparsecs/campaign-api/internal/repositories/crew"
	"github.com/fiveparsecs/campaign-api/internal/storage/document"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	repo crew.Repository
	ctx  context.Context
}

func (s *FileRepositoryTestSuite) SetupTest() {
	store, err := document.Open(&document.Config{
		Path: filepath.Join(s.T().TempDir(), "db.json"),
	})
	s.Require().NoError(err)

	repo, err := crew.NewFile(&crew.FileConfig{Store: store})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *FileRepositoryTestSuite) TestCreateAndGet() {
	_, err := s.repo.Create(s.ctx, crew.CreateInput{
		Crew: &entities.CampaignCrew{
			ID:         "crew_1",
			CampaignID: "campaign_1",
			Credits:    20,
		},
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, crew.GetInput{ID: "crew_1"})
	s.Require().NoError(err)
	s.Equal("campaign_1", got.Crew.CampaignID)
	s.Equal(20, got.Crew.Credits)
}

func (s *FileRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, crew.GetInput{ID: "crew_missing"})
	s.True(errors.IsNotFound(err))
}

func (s *FileRepositoryTestSuite) TestUpdate() {
	_, err := s.repo.Create(s.ctx, crew.CreateInput{
		Crew: &entities.CampaignCrew{ID: "crew_1", Credits: 5},
	})
	s.Require().NoError(err)

	_, err = s.repo.Update(s.ctx, crew.UpdateInput{
		Crew: &entities.CampaignCrew{ID: "crew_1", Credits: 9, Rivals: 1},
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, crew.GetInput{ID: "crew_1"})
	s.Require().NoError(err)
	s.Equal(9, got.Crew.Credits)
	s.Equal(1, got.Crew.Rivals)
}

func (s *FileRepositoryTestSuite) TestUpdateNotFound() {
	_, err := s.repo.Update(s.ctx, crew.UpdateInput{
		Crew: &entities.CampaignCrew{ID: "crew_missing"},
	})
	s.True(errors.IsNotFound(err))
}

func (s *FileRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, crew.CreateInput{
		Crew: &entities.CampaignCrew{ID: "crew_1"},
	})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, crew.DeleteInput{ID: "crew_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, crew.GetInput{ID: "crew_1"})
	s.True(errors.IsNotFound(err))
}

func (s *FileRepositoryTestSuite) TestList() {
	for _, c := range []*entities.CampaignCrew{
		{ID: "crew_1"},
		{ID: "crew_2"},
	} {
		_, err := s.repo.Create(s.ctx, crew.CreateInput{Crew: c})
		s.Require().NoError(err)
	}

	output, err := s.repo.List(s.ctx, crew.ListInput{})
	s.Require().NoError(err)
	s.Len(output.Crews, 2)
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}
