package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/hexrealm/internal/errors"
)

func decode(t *testing.T, s string) interface{} {
	t.Helper()
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestLoad(t *testing.T) {
	require.NoError(t, Load())
	assert.Len(t, compiled, 3)
}

func TestStatModifiers(t *testing.T) {
	assert.NoError(t, Validate(StatModifiers, "stat_modifiers", decode(t, `{"strength": 5, "health": -2.5}`)))
	assert.NoError(t, Validate(StatModifiers, "stat_modifiers", decode(t, `{}`)))

	err := Validate(StatModifiers, "stat_modifiers", decode(t, `{"strength": "five"}`))
	require.Error(t, err)
	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrInvalidParam, appErr.Code)
	assert.Equal(t, "stat_modifiers['strength'] must be a number", appErr.PublicMessage())

	err = Validate(StatModifiers, "stat_modifiers", decode(t, `[1, 2]`))
	appErr, _ = errors.As(err)
	assert.Equal(t, "stat_modifiers must be a dictionary", appErr.PublicMessage())
}

func TestLootTable(t *testing.T) {
	assert.NoError(t, Validate(LootTable, "loot_table",
		decode(t, `[{"item_id": "gold", "quantity": 3, "probability": 0.5}]`)))

	assert.Error(t, Validate(LootTable, "loot_table",
		decode(t, `[{"item_id": "gold", "quantity": 0, "probability": 0.5}]`)))
	assert.Error(t, Validate(LootTable, "loot_table",
		decode(t, `[{"item_id": "gold", "quantity": 1, "probability": 2}]`)))
	assert.Error(t, Validate(LootTable, "loot_table", decode(t, `{"item_id": "gold"}`)))
}

func TestUnknownSchema(t *testing.T) {
	err := Validate("missing.json", "x", map[string]interface{}{})
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}
