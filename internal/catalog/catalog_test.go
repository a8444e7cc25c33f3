package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seed = `
items:
  - name: Iron Sword
    type: weapon
    rarity: common
    category: equipment
    sub_category: sword
    durability: 100
    stat_modifiers:
      strength: 5
      agility: 1.5
  - name: Healing Potion
    type: consumable
    rarity: rare
    stack_size: 20
    cooldown: 30
    effect: Heals 50 HP over 10 seconds
    is_active: false
`

func TestLoad(t *testing.T) {
	file, err := Load(strings.NewReader(seed))
	require.NoError(t, err)
	require.Len(t, file.Items, 2)

	sword := file.Items[0].ToModel()
	assert.Equal(t, "Iron Sword", sword.Name)
	assert.Equal(t, 1, sword.StackSize)
	assert.True(t, sword.IsActive)
	require.NotNil(t, sword.Durability)
	assert.Equal(t, 100, *sword.Durability)
	assert.Equal(t, map[string]float64{"strength": 5, "agility": 1.5}, sword.StatModifiers.Data())
	assert.Equal(t, map[string]interface{}{"strength": float64(5), "agility": 1.5}, file.Items[0].RawStatModifiers())

	potion := file.Items[1].ToModel()
	assert.Equal(t, 20, potion.StackSize)
	assert.False(t, potion.IsActive)
	assert.Nil(t, potion.StatModifiers.Data())
	assert.Nil(t, file.Items[1].RawStatModifiers())
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("items:\n  - name: x\n    colour: red\n"))
	assert.Error(t, err)
}

func TestLoadEmpty(t *testing.T) {
	file, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, file.Items)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	file, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, file.Items, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
