package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// Entity type names used for log fields and ID prefixes.
const (
	TypeCampaign  = "campaign"
	TypeCrew      = "campaignCrew"
	TypeCharacter = "campaignCharacter"
)

// GetID returns the campaign's ID.
func (c *Campaign) GetID() string { return c.ID }

// GetType returns the entity type for rpg-toolkit.
func (c *Campaign) GetType() string { return TypeCampaign }

// GetID returns the crew's ID.
func (c *CampaignCrew) GetID() string { return c.ID }

// GetType returns the entity type for rpg-toolkit.
func (c *CampaignCrew) GetType() string { return TypeCrew }

// GetID returns the character's ID.
func (c *CampaignCharacter) GetID() string { return c.ID }

// GetType returns the entity type for rpg-toolkit.
func (c *CampaignCharacter) GetType() string { return TypeCharacter }

var (
	_ core.Entity = (*Campaign)(nil)
	_ core.Entity = (*CampaignCrew)(nil)
	_ core.Entity = (*CampaignCharacter)(nil)
)
