package entities

import (
	"encoding/json"
	"fmt"
)

// AbilityID names the stat a character-generation effect modifies.
type AbilityID string

// Known ability identifiers. Unrecognized values are accepted and ignored
// during generation.
const (
	AbilityReactions AbilityID = "reactions"
	AbilitySpeed     AbilityID = "speed"
	AbilityCombat    AbilityID = "combat"
	AbilityToughness AbilityID = "toughness"
	AbilitySavvy     AbilityID = "savvy"
	AbilityLuck      AbilityID = "luck"
	AbilityXP        AbilityID = "xp"
)

// Effect is a flat stat-block modifier applied once during character
// generation.
type Effect struct {
	ID          string    `json:"id,omitempty"`
	AbilityID   AbilityID `json:"abilityId"`
	Amount      int       `json:"amount"`
	Description string    `json:"description,omitempty"`
}

// ResourceType names the crew or campaign pool a resource grant targets.
type ResourceType string

// Known resource types. StoryPoints routes to the owning campaign; all
// other types route to the crew.
const (
	ResourceCredits     ResourceType = "credits"
	ResourceReputation  ResourceType = "reputation"
	ResourcePatrons     ResourceType = "patrons"
	ResourceRivals      ResourceType = "rivals"
	ResourceQuestRumors ResourceType = "questRumors"
	ResourceRumor       ResourceType = "rumor"
	ResourceStoryPoints ResourceType = "storyPoints"
)

// DiceExpression is a dice-rolled amount: numDice rolls of a diceSize-sided
// die plus a flat modifier.
type DiceExpression struct {
	NumDice  int `json:"numDice"`
	DiceSize int `json:"diceSize"`
	Modifier int `json:"modifier,omitempty"`
}

// ResourceEffect grants a fixed or dice-rolled amount to a resource pool.
// Exactly one of Amount and Dice is meaningful; Dice wins when set.
type ResourceEffect struct {
	ID           string          `json:"id,omitempty"`
	ResourceType ResourceType    `json:"resourceType"`
	Amount       int             `json:"-"`
	Dice         *DiceExpression `json:"-"`
	Description  string          `json:"description,omitempty"`
}

// resourceEffectJSON mirrors ResourceEffect on the wire, where amount is
// either a plain number or a DiceExpression object.
type resourceEffectJSON struct {
	ID           string          `json:"id,omitempty"`
	ResourceType ResourceType    `json:"resourceType"`
	Amount       json.RawMessage `json:"amount,omitempty"`
	Description  string          `json:"description,omitempty"`
}

// UnmarshalJSON accepts the amount field as either a signed integer or a
// DiceExpression object.
func (r *ResourceEffect) UnmarshalJSON(data []byte) error {
	var raw resourceEffectJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.ID = raw.ID
	r.ResourceType = raw.ResourceType
	r.Description = raw.Description
	r.Amount = 0
	r.Dice = nil

	if len(raw.Amount) == 0 || string(raw.Amount) == "null" {
		return nil
	}

	var amount int
	if err := json.Unmarshal(raw.Amount, &amount); err == nil {
		r.Amount = amount
		return nil
	}

	var expr DiceExpression
	if err := json.Unmarshal(raw.Amount, &expr); err != nil {
		return fmt.Errorf("resource effect amount must be a number or dice expression: %w", err)
	}
	r.Dice = &expr
	return nil
}

// MarshalJSON writes the amount field back in the same number-or-object form.
func (r ResourceEffect) MarshalJSON() ([]byte, error) {
	raw := resourceEffectJSON{
		ID:           r.ID,
		ResourceType: r.ResourceType,
		Description:  r.Description,
	}

	var err error
	if r.Dice != nil {
		raw.Amount, err = json.Marshal(r.Dice)
	} else {
		raw.Amount, err = json.Marshal(r.Amount)
	}
	if err != nil {
		return nil, err
	}

	return json.Marshal(raw)
}

// ItemType classifies a starting-item grant.
type ItemType string

// Known item types.
const (
	ItemWeapon ItemType = "weapon"
	ItemGear   ItemType = "gear"
	ItemGadget ItemType = "gadget"
	ItemArmor  ItemType = "armor"
)

// WeaponSubtype narrows a weapon starting roll to one of the weapon tables.
type WeaponSubtype string

// Known weapon subtypes. SubtypeAny has no accumulation target and is
// treated as a no-op.
const (
	SubtypeMilitary WeaponSubtype = "military"
	SubtypeLowTech  WeaponSubtype = "lowTech"
	SubtypeHighTech WeaponSubtype = "highTech"
	SubtypeAny      WeaponSubtype = "any"
)

// StartingItem is a pending equipment-roll count, not a concrete item. The
// counters it produces are resolved later by the roll-pending-items flow.
type StartingItem struct {
	ID          string        `json:"id,omitempty"`
	ItemType    ItemType      `json:"itemType"`
	Subtype     WeaponSubtype `json:"subtype,omitempty"`
	Amount      int           `json:"amount"`
	Description string        `json:"description,omitempty"`
}

// Background is a character origin story. Contributes effects, resources
// and starting rolls during generation.
type Background struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	ModuleID      string           `json:"moduleId,omitempty"`
	RollMin       int              `json:"rollMin,omitempty"`
	RollMax       int              `json:"rollMax,omitempty"`
	Effect        []Effect         `json:"effect"`
	Resources     []ResourceEffect `json:"resources"`
	StartingRolls []StartingItem   `json:"startingRolls"`
}

// Motivation is a character drive. Same contribution shape as Background.
type Motivation struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	ModuleID      string           `json:"moduleId,omitempty"`
	RollMin       int              `json:"rollMin,omitempty"`
	RollMax       int              `json:"rollMax,omitempty"`
	Effect        []Effect         `json:"effect"`
	Resources     []ResourceEffect `json:"resources"`
	StartingRolls []StartingItem   `json:"startingRolls"`
}

// CharacterClass is a character profession. Same contribution shape as
// Background.
type CharacterClass struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	ModuleID      string           `json:"moduleId,omitempty"`
	RollMin       int              `json:"rollMin,omitempty"`
	RollMax       int              `json:"rollMax,omitempty"`
	Effect        []Effect         `json:"effect"`
	Resources     []ResourceEffect `json:"resources"`
	StartingRolls []StartingItem   `json:"startingRolls"`
}
