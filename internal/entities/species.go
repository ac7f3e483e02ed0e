// Package entities defines the domain model for Five Parsecs campaigns:
// reference rule data (species, backgrounds, motivations, classes) and the
// mutable campaign aggregates (campaign, crew, character).
package entities

// SpeciesAbility is the base stat template associated with a species.
// Immutable reference data.
type SpeciesAbility struct {
	ID        string `json:"id"`
	Reactions int    `json:"reactions"`
	Speed     int    `json:"speed"`
	Combat    int    `json:"combat"`
	Toughness int    `json:"toughness"`
	Savvy     int    `json:"savvy"`
	Luck      int    `json:"luck,omitempty"`
}

// Species is a playable species or species-type.
type Species struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	AbilitiesID string `json:"abilitiesId,omitempty"`
	// BotType marks bot-like species, which never receive the leader luck bonus.
	BotType  bool   `json:"botType,omitempty"`
	ModuleID string `json:"moduleId,omitempty"`
}

// StatBlock is the set of derived character statistics produced by
// character generation.
type StatBlock struct {
	Reactions int `json:"reactions"`
	Speed     int `json:"speed"`
	Combat    int `json:"combat"`
	Toughness int `json:"toughness"`
	Savvy     int `json:"savvy"`
	Luck      int `json:"luck"`
	XP        int `json:"xp"`
}
