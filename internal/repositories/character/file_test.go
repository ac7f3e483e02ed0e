package character_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fiveparsecs/campaign-api/internal/entities"
	"github.com/fiveparsecs/campaign-api/internal/errors"
	"github.com/fiveparsecs/campaign-api/internal/repositories/character"
	"github.com/fiveparsecs/campaign-api/internal/storage/document"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	repo character.Repository
	ctx  context.Context
}

func (s *FileRepositoryTestSuite) SetupTest() {
	store, err := document.Open(&document.Config{
		Path: filepath.Join(s.T().TempDir(), "db.json"),
	})
	s.Require().NoError(err)

	repo, err := character.NewFile(&character.FileConfig{Store: store})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *FileRepositoryTestSuite) testCharacter(id, crewID string) *entities.CampaignCharacter {
	return &entities.CampaignCharacter{
		ID:        id,
		CrewID:    crewID,
		Name:      "Riker Voss",
		Reactions: 2,
		Speed:     4,
		Combat:    1,
		Toughness: 3,
		Savvy:     1,
		IsActive:  true,
	}
}

func (s *FileRepositoryTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, character.CreateInput{
		Character: s.testCharacter("char_1", "crew_1"),
	})
	s.Require().NoError(err)
	s.Require().NotNil(created)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal("Riker Voss", got.Character.Name)
	s.Equal("crew_1", got.Character.CrewID)
}

func (s *FileRepositoryTestSuite) TestCreateDuplicate() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{
		Character: s.testCharacter("char_1", "crew_1"),
	})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, character.CreateInput{
		Character: s.testCharacter("char_1", "crew_1"),
	})
	s.True(errors.IsAlreadyExists(err))
}

func (s *FileRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_missing"})
	s.True(errors.IsNotFound(err))
}

func (s *FileRepositoryTestSuite) TestUpdate() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{
		Character: s.testCharacter("char_1", "crew_1"),
	})
	s.Require().NoError(err)

	updated := s.testCharacter("char_1", "crew_1")
	updated.Name = "Riker the Bold"
	updated.XP = 3

	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: updated})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	s.Equal("Riker the Bold", got.Character.Name)
	s.Equal(3, got.Character.XP)
}

func (s *FileRepositoryTestSuite) TestUpdateNotFound() {
	_, err := s.repo.Update(s.ctx, character.UpdateInput{
		Character: s.testCharacter("char_missing", "crew_1"),
	})
	s.True(errors.IsNotFound(err))
}

func (s *FileRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{
		Character: s.testCharacter("char_1", "crew_1"),
	})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: "char_1"})
	s.True(errors.IsNotFound(err))
}

func (s *FileRepositoryTestSuite) TestDeleteNotFound() {
	_, err := s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_missing"})
	s.True(errors.IsNotFound(err))
}

func (s *FileRepositoryTestSuite) TestListByCrewID() {
	for _, c := range []*entities.CampaignCharacter{
		s.testCharacter("char_1", "crew_1"),
		s.testCharacter("char_2", "crew_1"),
		s.testCharacter("char_3", "crew_2"),
	} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
		s.Require().NoError(err)
	}

	output, err := s.repo.ListByCrewID(s.ctx, character.ListByCrewIDInput{CrewID: "crew_1"})
	s.Require().NoError(err)
	s.Len(output.Characters, 2)

	output, err = s.repo.ListByCrewID(s.ctx, character.ListByCrewIDInput{CrewID: "crew_3"})
	s.Require().NoError(err)
	s.Empty(output.Characters)
}

func (s *FileRepositoryTestSuite) TestList() {
	for _, c := range []*entities.CampaignCharacter{
		s.testCharacter("char_1", "crew_1"),
		s.testCharacter("char_2", "crew_2"),
	} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
		s.Require().NoError(err)
	}

	output, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Len(output.Characters, 2)
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}
