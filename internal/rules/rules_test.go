package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/models"
	"gorm.io/datatypes"
)

func intPtr(v int) *int { return &v }

func newInventory(entries ...models.InventoryEntry) datatypes.JSONType[[]models.InventoryEntry] {
	return datatypes.NewJSONType(entries)
}

func TestValidateColor(t *testing.T) {
	for _, c := range []string{"#FF0000", "#00ff00", "#a1B2c3"} {
		assert.NoError(t, ValidateColor(c), c)
	}
	for _, c := range []string{"FF0000", "#FFF", "#GG0000", "#FF00000", ""} {
		err := ValidateColor(c)
		require.Error(t, err, c)
		assert.True(t, errors.Is(err, errors.ErrInvalidParam))
	}
}

func TestGameBounds(t *testing.T) {
	assert.NoError(t, ValidateMapWidth(10))
	assert.NoError(t, ValidateMapWidth(200))
	assert.EqualError(t, ValidateMapWidth(9), "[1001] 无效的参数: Map width must be between 10 and 200")
	assert.Error(t, ValidateMapHeight(201))

	assert.NoError(t, ValidateTickDuration(1))
	assert.NoError(t, ValidateTickDuration(1440))
	assert.Error(t, ValidateTickDuration(0))
	assert.Error(t, ValidateTickDuration(1441))

	assert.Error(t, ValidateMaxPlayers(0))
	assert.NoError(t, ValidateMaxPlayers(1))
}

func TestEnumerations(t *testing.T) {
	assert.NoError(t, ValidateTerrain(models.TerrainSwamp))
	assert.Error(t, ValidateTerrain("lava"))

	assert.NoError(t, ValidateMapItemRarity("epic"))
	assert.Error(t, ValidateItemRarity("epic"))

	err := ValidateItemRarity("mythic")
	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, "Rarity must be one of: common, rare, legendary", appErr.PublicMessage())
}

func TestTransition(t *testing.T) {
	tests := []struct {
		status, action string
		want           string
		ok             bool
	}{
		{models.GameStatusWaiting, ActionStart, models.GameStatusActive, true},
		{models.GameStatusActive, ActionStart, "", false},
		{models.GameStatusActive, ActionPause, models.GameStatusPaused, true},
		{models.GameStatusWaiting, ActionPause, "", false},
		{models.GameStatusPaused, ActionResume, models.GameStatusActive, true},
		{models.GameStatusActive, ActionResume, "", false},
		{models.GameStatusActive, ActionFinish, models.GameStatusFinished, true},
		{models.GameStatusPaused, ActionFinish, models.GameStatusFinished, true},
		{models.GameStatusWaiting, ActionFinish, "", false},
		{models.GameStatusFinished, ActionFinish, "", false},
		{models.GameStatusFinished, ActionResume, "", false},
	}
	for _, tt := range tests {
		got, err := Transition(tt.status, tt.action)
		if tt.ok {
			assert.NoError(t, err, "%s -> %s", tt.status, tt.action)
			assert.Equal(t, tt.want, got)
		} else {
			assert.Error(t, err, "%s -> %s", tt.status, tt.action)
		}
	}

	_, err := Transition(models.GameStatusActive, ActionStart)
	appErr, _ := errors.As(err)
	assert.Equal(t, "Game must be in 'waiting' status to start", appErr.PublicMessage())
}

func TestCanJoin(t *testing.T) {
	game := &models.Game{Status: models.GameStatusWaiting, MaxPlayers: 2}
	assert.NoError(t, CanJoin(game, 1))

	err := CanJoin(game, 2)
	assert.True(t, errors.Is(err, errors.ErrGameFull))

	game.Status = models.GameStatusPaused
	err = CanJoin(game, 0)
	appErr, _ := errors.As(err)
	assert.Equal(t, "Cannot join a finished or paused game", appErr.PublicMessage())

	game.Status = models.GameStatusActive
	assert.NoError(t, CanJoin(game, 0))
}

func TestCheckMoveTarget(t *testing.T) {
	c := &models.Character{Status: models.CharacterStatusIdle}

	assert.True(t, errors.Is(CheckMoveTarget(c, nil), errors.ErrInvalidParam))
	assert.True(t, errors.Is(CheckMoveTarget(c, &models.HexTile{IsPassable: false}), errors.ErrTileImpassable))
	assert.NoError(t, CheckMoveTarget(c, &models.HexTile{IsPassable: true}))

	c.Status = models.CharacterStatusDead
	assert.True(t, errors.Is(CheckMoveTarget(c, &models.HexTile{IsPassable: true}), errors.ErrCharacterDead))
}

func TestCheckStats(t *testing.T) {
	assert.NoError(t, CheckStats(100, 100, 50, 100))
	assert.True(t, errors.Is(CheckStats(101, 100, 50, 100), errors.ErrStatOutOfRange))
	assert.True(t, errors.Is(CheckStats(10, 100, 101, 100), errors.ErrStatOutOfRange))

	assert.NoError(t, CheckStatusChange(models.CharacterStatusIdle, models.CharacterStatusDead))
	assert.NoError(t, CheckStatusChange(models.CharacterStatusDead, models.CharacterStatusDead))
	assert.Error(t, CheckStatusChange(models.CharacterStatusDead, models.CharacterStatusIdle))
}

func TestCheckInventoryCapacity(t *testing.T) {
	c := &models.Character{InventoryCapacity: 2}
	c.Inventory = newInventory(models.InventoryEntry{ItemID: "a", Quantity: 2})

	assert.NoError(t, CheckInventoryCapacity(c, 1, false))
	assert.True(t, errors.Is(CheckInventoryCapacity(c, 1, true), errors.ErrInventoryFull))

	c.InventoryCapacity = 3
	assert.NoError(t, CheckInventoryCapacity(c, 1, true))
}

func TestCanUse(t *testing.T) {
	it := &models.Interactable{IsActive: true, MaxUses: 2}
	assert.True(t, CanUse(it, 0))

	it.CurrentUses = 2
	assert.False(t, CanUse(it, 0))

	it.MaxUses = 0
	assert.True(t, CanUse(it, 0), "max_uses 0 means unlimited")

	it.CooldownTicks = 5
	it.LastUsedTick = intPtr(10)
	assert.False(t, CanUse(it, 14))
	assert.True(t, CanUse(it, 15))

	it.IsActive = false
	assert.False(t, CanUse(it, 100))
}

func TestCheckInteract(t *testing.T) {
	it := &models.Interactable{IsActive: true, MaxUses: 1, PositionQ: 2, PositionR: 3}
	c := &models.Character{PositionQ: 2, PositionR: 4, Status: models.CharacterStatusIdle}

	err := CheckInteract(it, c)
	assert.True(t, errors.Is(err, errors.ErrNotColocated))

	c.PositionR = 3
	assert.NoError(t, CheckInteract(it, c))

	it.IsActive = false
	assert.True(t, errors.Is(CheckInteract(it, c), errors.ErrInteractableLocked))

	it.IsActive = true
	it.CurrentUses = 1
	assert.True(t, errors.Is(CheckInteract(it, c), errors.ErrUseLimitReached))

	// 冷却中仍可交互，只有 CanUse 为 false
	it.MaxUses = 0
	it.CooldownTicks = 15
	it.LastUsedTick = intPtr(0)
	assert.NoError(t, CheckInteract(it, c))
	assert.True(t, OnCooldown(it, 14))
	assert.False(t, CanUse(it, 14))
	assert.False(t, OnCooldown(it, 15))
}

func TestValidateItem(t *testing.T) {
	valid := func() *models.Item {
		return &models.Item{Name: "  Sword ", Type: "weapon", Rarity: "rare", StackSize: 1}
	}

	item := valid()
	require.NoError(t, ValidateItem(item))
	assert.Equal(t, "Sword", item.Name)

	cases := map[string]func(*models.Item){
		"empty name":     func(i *models.Item) { i.Name = "   " },
		"rarity":         func(i *models.Item) { i.Rarity = "epic" },
		"stack low":      func(i *models.Item) { i.StackSize = 0 },
		"stack high":     func(i *models.Item) { i.StackSize = 10000 },
		"cooldown":       func(i *models.Item) { i.Cooldown = -1 },
		"upgrade high":   func(i *models.Item) { i.UpgradeLevel = 101 },
		"drop rate":      func(i *models.Item) { i.DropRate = 1.5 },
		"durability neg": func(i *models.Item) { i.Durability = intPtr(-1) },
	}
	for name, mutate := range cases {
		item := valid()
		mutate(item)
		assert.Error(t, ValidateItem(item), name)
	}
}
