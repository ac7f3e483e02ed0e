package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiveparsecs/campaign-api/internal/entities"
)

func TestResourceEffectUnmarshal_PlainAmount(t *testing.T) {
	var effect entities.ResourceEffect
	err := json.Unmarshal([]byte(`{"resourceType":"credits","amount":5,"description":"+5 credits"}`), &effect)
	require.NoError(t, err)

	assert.Equal(t, entities.ResourceCredits, effect.ResourceType)
	assert.Equal(t, 5, effect.Amount)
	assert.Nil(t, effect.Dice)
}

func TestResourceEffectUnmarshal_DiceAmount(t *testing.T) {
	var effect entities.ResourceEffect
	err := json.Unmarshal([]byte(`{"resourceType":"credits","amount":{"numDice":1,"diceSize":6}}`), &effect)
	require.NoError(t, err)

	require.NotNil(t, effect.Dice)
	assert.Equal(t, 1, effect.Dice.NumDice)
	assert.Equal(t, 6, effect.Dice.DiceSize)
	assert.Equal(t, 0, effect.Dice.Modifier)
}

func TestResourceEffectUnmarshal_InvalidAmount(t *testing.T) {
	var effect entities.ResourceEffect
	err := json.Unmarshal([]byte(`{"resourceType":"credits","amount":"1D6"}`), &effect)
	assert.Error(t, err)
}

func TestResourceEffectMarshal_RoundTrip(t *testing.T) {
	original := entities.ResourceEffect{
		ResourceType: entities.ResourceStoryPoints,
		Dice:         &entities.DiceExpression{NumDice: 2, DiceSize: 6, Modifier: 1},
		Description:  "+2D6+1 story points",
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded entities.ResourceEffect
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}
