package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/fiveparsecs/campaign-api/internal/config"
	"github.com/fiveparsecs/campaign-api/internal/entities"
	"github.com/fiveparsecs/campaign-api/internal/storage/document"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load reference data into the document store",
	Long:  `Load species, backgrounds, motivations, and character classes from a reference JSON file into the document store, replacing any reference data already present. Campaign state is left untouched.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "data/reference.json", "reference data JSON file")
}

// seedData is the shape of the reference file: the reference collections of
// the document schema, without the campaign state.
type seedData struct {
	Species          []entities.Species        `json:"species"`
	SpeciesAbilities []entities.SpeciesAbility `json:"speciesAbilities"`
	Backgrounds      []entities.Background     `json:"backgrounds"`
	Motivations      []entities.Motivation     `json:"motivations"`
	CharacterClasses []entities.CharacterClass `json:"characterClasses"`
}

func runSeed(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	raw, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", seedFile, err)
	}

	var seed seedData
	if err := json.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("failed to parse seed file %s: %w", seedFile, err)
	}

	store, err := document.Open(&document.Config{Path: cfg.DatabasePath})
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}

	err = store.Update(func(s *document.Schema) error {
		s.Species = seed.Species
		s.SpeciesAbilities = seed.SpeciesAbilities
		s.Backgrounds = seed.Backgrounds
		s.Motivations = seed.Motivations
		s.CharacterClasses = seed.CharacterClasses
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write reference data: %w", err)
	}

	slog.Info("reference data seeded",
		"database", cfg.DatabasePath,
		"species", len(seed.Species),
		"speciesAbilities", len(seed.SpeciesAbilities),
		"backgrounds", len(seed.Backgrounds),
		"motivations", len(seed.Motivations),
		"characterClasses", len(seed.CharacterClasses),
	)

	return nil
}
