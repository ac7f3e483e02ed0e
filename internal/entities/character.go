package entities

import "time"

// CampaignCharacter is a generated crew member. The derived stat fields are
// fixed at creation time; later changes to reference records never trigger a
// recomputation. The four reference IDs record provenance and are immutable
// after creation.
type CampaignCharacter struct {
	ID     string `json:"id"`
	CrewID string `json:"crewId"`
	Name   string `json:"name"`

	SpeciesID        string `json:"speciesId,omitempty"`
	BackgroundID     string `json:"backgroundId,omitempty"`
	MotivationID     string `json:"motivationId,omitempty"`
	CharacterClassID string `json:"characterClassId,omitempty"`

	// Derived stats.
	Reactions int `json:"reactions"`
	Speed     int `json:"speed"`
	Combat    int `json:"combat"`
	Toughness int `json:"toughness"`
	Savvy     int `json:"savvy"`
	Luck      int `json:"luck"`
	XP        int `json:"xp"`

	// Lifecycle flags.
	IsActive  bool `json:"isActive"`
	IsDead    bool `json:"isDead"`
	IsInjured bool `json:"isInjured"`
	IsLeader  bool `json:"isLeader"`

	Injuries []string `json:"injuries"`

	// Equipped item IDs.
	Weapons []string `json:"weapons"`
	Gear    []string `json:"gear"`
	Gadgets []string `json:"gadgets"`
	Armor   []string `json:"armor"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Stats returns the character's derived stat fields as a StatBlock.
func (c *CampaignCharacter) Stats() StatBlock {
	return StatBlock{
		Reactions: c.Reactions,
		Speed:     c.Speed,
		Combat:    c.Combat,
		Toughness: c.Toughness,
		Savvy:     c.Savvy,
		Luck:      c.Luck,
		XP:        c.XP,
	}
}

// SetStats copies a resolved stat block onto the character's derived fields.
func (c *CampaignCharacter) SetStats(stats StatBlock) {
	c.Reactions = stats.Reactions
	c.Speed = stats.Speed
	c.Combat = stats.Combat
	c.Toughness = stats.Toughness
	c.Savvy = stats.Savvy
	c.Luck = stats.Luck
	c.XP = stats.XP
}
