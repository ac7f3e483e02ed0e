package engine

import (
	"github.com/fiveparsecs/campaign-api/internal/entities"
)

// CrewResourceDelta is the summed change to a crew's resource pool produced
// by one generation pass.
type CrewResourceDelta struct {
	Credits     int
	Reputation  int
	Patrons     int
	Rivals      int
	QuestRumors int
	Rumors      int
}

// ApplyTo adds the delta onto a crew's resource fields.
func (d CrewResourceDelta) ApplyTo(crew *entities.CampaignCrew) {
	crew.Credits += d.Credits
	crew.Reputation += d.Reputation
	crew.Patrons += d.Patrons
	crew.Rivals += d.Rivals
	crew.QuestRumors += d.QuestRumors
	crew.Rumors += d.Rumors
}

// IsZero reports whether the delta changes nothing.
func (d CrewResourceDelta) IsZero() bool {
	return d == CrewResourceDelta{}
}

// CampaignResourceDelta is the summed change routed to the owning campaign.
type CampaignResourceDelta struct {
	StoryPoints int
}

// ApplyTo adds the delta onto a campaign.
func (d CampaignResourceDelta) ApplyTo(campaign *entities.Campaign) {
	campaign.StoryPoints += d.StoryPoints
}

// IsZero reports whether the delta changes nothing.
func (d CampaignResourceDelta) IsZero() bool {
	return d == CampaignResourceDelta{}
}

// ResourceDeltas splits resolved resource grants by their destination
// aggregate.
type ResourceDeltas struct {
	Crew     CrewResourceDelta
	Campaign CampaignResourceDelta
}

// ItemCounts is the summed pending equipment-roll counters produced by
// starting-item grants.
type ItemCounts struct {
	Gadgets         int
	Gear            int
	LowTechWeapons  int
	MilitaryWeapons int
	HighTechWeapons int
}

// ApplyTo adds the counts onto a crew's pending-roll counters.
func (c ItemCounts) ApplyTo(crew *entities.CampaignCrew) {
	crew.GadgetCount += c.Gadgets
	crew.GearCount += c.Gear
	crew.LowTechWeaponCount += c.LowTechWeapons
	crew.MilitaryWeaponCount += c.MilitaryWeapons
	crew.HighTechWeaponCount += c.HighTechWeapons
}

// IsZero reports whether the counts change nothing.
func (c ItemCounts) IsZero() bool {
	return c == ItemCounts{}
}
