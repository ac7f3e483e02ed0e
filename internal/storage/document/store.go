// Package document implements the flat JSON document store backing the file
// storage adapters. The whole document lives in memory; every update rewrites
// the file. A single RWMutex scopes each read or read-modify-write, so there
// is exactly one writer at a time.
package document

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/fiveparsecs/campaign-api/internal/entities"
	"github.com/fiveparsecs/campaign-api/internal/errors"
)

// Schema is the persisted document layout: one top-level array per entity
// collection.
type Schema struct {
	Species            []entities.Species           `json:"species"`
	SpeciesAbilities   []entities.SpeciesAbility    `json:"speciesAbilities"`
	Backgrounds        []entities.Background        `json:"backgrounds"`
	Motivations        []entities.Motivation        `json:"motivations"`
	CharacterClasses   []entities.CharacterClass    `json:"characterClasses"`
	Campaigns          []entities.Campaign          `json:"campaigns"`
	CampaignCrews      []entities.CampaignCrew      `json:"campaignCrews"`
	CampaignCharacters []entities.CampaignCharacter `json:"campaignCharacters"`
}

func emptySchema() *Schema {
	return &Schema{
		Species:            []entities.Species{},
		SpeciesAbilities:   []entities.SpeciesAbility{},
		Backgrounds:        []entities.Background{},
		Motivations:        []entities.Motivation{},
		CharacterClasses:   []entities.CharacterClass{},
		Campaigns:          []entities.Campaign{},
		CampaignCrews:      []entities.CampaignCrew{},
		CampaignCharacters: []entities.CampaignCharacter{},
	}
}

// Store is a single-file JSON document store.
type Store struct {
	path string

	mu   sync.RWMutex
	data *Schema
}

// Config contains configuration for the document store.
type Config struct {
	// Path is the JSON document file. Created on first write if absent.
	Path string
}

// Validate validates the Config.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Path == "" {
		return errors.InvalidArgument("path cannot be empty")
	}
	return nil
}

// Open loads the document at cfg.Path, starting from an empty schema when
// the file does not exist yet.
func Open(cfg *Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Store{
		path: cfg.Path,
		data: emptySchema(),
	}

	raw, err := os.ReadFile(cfg.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.Wrapf(err, "failed to read document %s", cfg.Path)
	}

	if err := json.Unmarshal(raw, s.data); err != nil {
		return nil, errors.Wrapf(err, "failed to parse document %s", cfg.Path)
	}

	return s, nil
}

// View runs fn with shared access to the document. fn must not retain or
// mutate the schema.
func (s *Store) View(fn func(*Schema) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.data)
}

// Update runs fn with exclusive access to the document and rewrites the
// whole file afterwards. If fn returns an error nothing is persisted and the
// in-memory document is restored, so a failed update never leaves partial
// state behind.
func (s *Store) Update(fn func(*Schema) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := cloneSchema(s.data)
	if err != nil {
		return errors.Wrap(err, "failed to snapshot document")
	}

	if err := fn(s.data); err != nil {
		s.data = snapshot
		return err
	}

	if err := s.flush(); err != nil {
		s.data = snapshot
		return err
	}

	return nil
}

// flush rewrites the whole document via a temp file and rename. Callers must
// hold the write lock.
func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal document")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create document directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".db-*.json")
	if err != nil {
		return errors.Wrap(err, "failed to create temp document")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "failed to write document")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "failed to close document")
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrap(err, "failed to replace document")
	}

	return nil
}

// cloneSchema deep-copies the schema through JSON, which is cheap at the
// document sizes a single campaign produces.
func cloneSchema(in *Schema) (*Schema, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	out := emptySchema()
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}
