package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fiveparsecs/campaign-api/internal/entities"
	"github.com/fiveparsecs/campaign-api/internal/errors"
	"github.com/fiveparsecs/campaign-api/internal/repositories/character"
	"github.com/fiveparsecs/campaign-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    character.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := character.NewRedis(&character.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{
		Character: &entities.CampaignCharacter{
			ID:     "char_1",
			CrewID: "crew_1",
			Name:   "Dax Imura",
			Speed:  4,
		},
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal("Dax Imura", got.Character.Name)
	s.Equal(4, got.Character.Speed)
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	input := character.CreateInput{
		Character: &entities.CampaignCharacter{ID: "char_1", CrewID: "crew_1"},
	}

	_, err := s.repo.Create(s.ctx, input)
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, input)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_missing"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateMovesCrewIndex() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{
		Character: &entities.CampaignCharacter{ID: "char_1", CrewID: "crew_1"},
	})
	s.Require().NoError(err)

	_, err = s.repo.Update(s.ctx, character.UpdateInput{
		Character: &entities.CampaignCharacter{ID: "char_1", CrewID: "crew_2"},
	})
	s.Require().NoError(err)

	old, err := s.repo.ListByCrewID(s.ctx, character.ListByCrewIDInput{CrewID: "crew_1"})
	s.Require().NoError(err)
	s.Empty(old.Characters)

	moved, err := s.repo.ListByCrewID(s.ctx, character.ListByCrewIDInput{CrewID: "crew_2"})
	s.Require().NoError(err)
	s.Len(moved.Characters, 1)
}

func (s *RedisRepositoryTestSuite) TestDeleteRemovesFromIndexes() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{
		Character: &entities.CampaignCharacter{ID: "char_1", CrewID: "crew_1"},
	})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.True(errors.IsNotFound(err))

	byCrew, err := s.repo.ListByCrewID(s.ctx, character.ListByCrewIDInput{CrewID: "crew_1"})
	s.Require().NoError(err)
	s.Empty(byCrew.Characters)

	all, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Empty(all.Characters)
}

func (s *RedisRepositoryTestSuite) TestListByCrewID() {
	for _, c := range []*entities.CampaignCharacter{
		{ID: "char_1", CrewID: "crew_1"},
		{ID: "char_2", CrewID: "crew_1"},
		{ID: "char_3", CrewID: "crew_2"},
	} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
		s.Require().NoError(err)
	}

	output, err := s.repo.ListByCrewID(s.ctx, character.ListByCrewIDInput{CrewID: "crew_1"})
	s.Require().NoError(err)
	s.Len(output.Characters, 2)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
