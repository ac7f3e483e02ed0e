package entities

import "time"

// CrewShip is the crew's vessel, rolled during campaign setup.
type CrewShip struct {
	Name       string `json:"name"`
	ShipTypeID string `json:"shipTypeId,omitempty"`
	Debt       int    `json:"debt,omitempty"`
	HullPoints int    `json:"hullPoints,omitempty"`
}

// CampaignCrew is the shared roster and resource pool for one campaign.
// The pending-roll counters record equipment grants that have not yet been
// resolved into concrete items; the item-pool arrays hold rolled items not
// yet assigned to a character.
type CampaignCrew struct {
	ID         string `json:"id"`
	CampaignID string `json:"campaignId"`

	// Resource pool.
	Credits     int `json:"credits"`
	Reputation  int `json:"reputation"`
	Patrons     int `json:"patrons"`
	Rivals      int `json:"rivals"`
	QuestRumors int `json:"questRumors"`
	Rumors      int `json:"rumors"`

	// Pending equipment-roll counters.
	GadgetCount         int `json:"gadgetCount"`
	GearCount           int `json:"gearCount"`
	LowTechWeaponCount  int `json:"lowTechWeaponCount"`
	MilitaryWeaponCount int `json:"militaryWeaponCount"`
	HighTechWeaponCount int `json:"highTechWeaponCount"`

	// Rolled but unassigned item pools.
	Weapons []string `json:"weapons"`
	Gear    []string `json:"gear"`
	Gadgets []string `json:"gadgets"`

	// Back-references to CampaignCharacter records.
	CharacterIDs []string `json:"characterIds"`

	Ship *CrewShip `json:"ship,omitempty"`

	// Flavor fields. The caracterizedAs spelling matches the persisted
	// document layout.
	WeMetThrough   string `json:"weMetThrough,omitempty"`
	CaracterizedAs string `json:"caracterizedAs,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasCharacter reports whether id is already in the crew's roster.
func (c *CampaignCrew) HasCharacter(id string) bool {
	for _, existing := range c.CharacterIDs {
		if existing == id {
			return true
		}
	}
	return false
}

// RemoveCharacter drops id from the crew's roster if present.
func (c *CampaignCrew) RemoveCharacter(id string) {
	filtered := c.CharacterIDs[:0]
	for _, existing := range c.CharacterIDs {
		if existing != id {
			filtered = append(filtered, existing)
		}
	}
	c.CharacterIDs = filtered
}
