package document_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiveparsecs/campaign-api/internal/entities"
	"github.com/fiveparsecs/campaign-api/internal/storage/document"
)

func openTestStore(t *testing.T) (*document.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "db.json")
	store, err := document.Open(&document.Config{Path: path})
	require.NoError(t, err)
	return store, path
}

func TestOpen_MissingFileStartsEmpty(t *testing.T) {
	store, _ := openTestStore(t)

	err := store.View(func(s *document.Schema) error {
		assert.Empty(t, s.CampaignCrews)
		assert.Empty(t, s.CampaignCharacters)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdate_PersistsAcrossReopen(t *testing.T) {
	store, path := openTestStore(t)

	err := store.Update(func(s *document.Schema) error {
		s.CampaignCrews = append(s.CampaignCrews, entities.CampaignCrew{
			ID:         "crew_1",
			CampaignID: "campaign_1",
			Credits:    12,
		})
		return nil
	})
	require.NoError(t, err)

	reopened, err := document.Open(&document.Config{Path: path})
	require.NoError(t, err)

	err = reopened.View(func(s *document.Schema) error {
		require.Len(t, s.CampaignCrews, 1)
		assert.Equal(t, "crew_1", s.CampaignCrews[0].ID)
		assert.Equal(t, 12, s.CampaignCrews[0].Credits)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdate_FailedFnRollsBack(t *testing.T) {
	store, _ := openTestStore(t)

	require.NoError(t, store.Update(func(s *document.Schema) error {
		s.Campaigns = append(s.Campaigns, entities.Campaign{ID: "campaign_1"})
		return nil
	}))

	err := store.Update(func(s *document.Schema) error {
		s.Campaigns = nil
		return fmt.Errorf("boom")
	})
	require.Error(t, err)

	err = store.View(func(s *document.Schema) error {
		require.Len(t, s.Campaigns, 1)
		return nil
	})
	require.NoError(t, err)
}

func TestOpen_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := document.Open(&document.Config{Path: path})
	assert.Error(t, err)
}
