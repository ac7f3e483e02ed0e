package crew_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fiveparsecs/campaign-api/internal/entities"
	"github.com/fiveparsecs/campaign-api/internal/errors"
	"github.com/fiveparsecs/campaign-api/internal/repositories/crew"
	"github.com/fiveparsecs/campaign-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    crew.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := crew.NewRedis(&crew.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestCreateGetUpdateDelete() {
	_, err := s.repo.Create(s.ctx, crew.CreateInput{
		Crew: &entities.CampaignCrew{ID: "crew_1", CampaignID: "campaign_1", Credits: 7},
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, crew.GetInput{ID: "crew_1"})
	s.Require().NoError(err)
	s.Equal(7, got.Crew.Credits)

	got.Crew.Credits = 11
	_, err = s.repo.Update(s.ctx, crew.UpdateInput{Crew: got.Crew})
	s.Require().NoError(err)

	got, err = s.repo.Get(s.ctx, crew.GetInput{ID: "crew_1"})
	s.Require().NoError(err)
	s.Equal(11, got.Crew.Credits)

	_, err = s.repo.Delete(s.ctx, crew.DeleteInput{ID: "crew_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, crew.GetInput{ID: "crew_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	input := crew.CreateInput{Crew: &entities.CampaignCrew{ID: "crew_1"}}

	_, err := s.repo.Create(s.ctx, input)
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, input)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestList() {
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

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
