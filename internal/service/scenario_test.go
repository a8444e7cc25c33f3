package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/models"
	"github.com/wfunc/hexrealm/internal/repository"
)

// 从建局到拾取的完整流程，只通过服务层接口完成
func TestGameFlowFromCreateToLoot(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	auth, err := services.Auth.Register(ctx, &RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hexrealm2024",
	})
	require.NoError(t, err)

	game, err := services.Game.Create(ctx, &CreateGameRequest{
		Name:      "Flow",
		MapName:   "valley",
		MapWidth:  ptr(50),
		MapHeight: ptr(50),
	})
	require.NoError(t, err)
	assert.Equal(t, models.GameStatusWaiting, game.Status)

	player, err := services.Player.Join(ctx, auth.User.ID, &JoinGameRequest{
		Game:       game.ID,
		PlayerName: "Alice",
		Color:      "#FF0000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", player.PlayerName)

	tile, err := services.Map.CreateTile(ctx, &CreateTileRequest{
		Game:        game.ID,
		Q:           0,
		R:           0,
		TerrainType: "plains",
		IsPassable:  ptr(true),
	})
	require.NoError(t, err)
	assert.True(t, tile.IsPassable)

	character, err := services.Character.Create(ctx, &CreateCharacterRequest{
		Game:          game.ID,
		Owner:         player.ID,
		CharacterType: "scout",
		Name:          "Pathfinder",
		MaxHealth:     ptr(100),
	})
	require.NoError(t, err)
	assert.Equal(t, 100, character.Health)

	moved, err := services.Character.Move(ctx, character.ID, &MoveRequest{Q: ptr(0), R: ptr(0)})
	require.NoError(t, err)
	assert.Equal(t, models.CharacterStatusIdle, moved.Status)
	assert.Equal(t, 0, moved.PositionQ)
	assert.Equal(t, 0, moved.PositionR)

	item, err := services.MapItem.Create(ctx, &CreateMapItemRequest{
		Game:      game.ID,
		ItemType:  "weapon",
		ItemID:    "iron-sword",
		PositionQ: 0,
		PositionR: 0,
	})
	require.NoError(t, err)
	assert.True(t, item.IsAvailable)

	looted, err := services.Character.Loot(ctx, character.ID, &LootRequest{ItemID: &item.ID})
	require.NoError(t, err)
	inventory := looted.Inventory.Data()
	require.Len(t, inventory, 1)
	assert.Equal(t, "iron-sword", inventory[0].ItemID)
	assert.Equal(t, "weapon", inventory[0].ItemType)

	collected, err := services.MapItem.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, collected.IsAvailable)
	require.NotNil(t, collected.CollectedByID)
	assert.Equal(t, character.ID, *collected.CollectedByID)

	// 同一物品只能被拾取一次
	_, err = services.Character.Loot(ctx, character.ID, &LootRequest{ItemID: &item.ID})
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	available, err := services.MapItem.List(ctx, repository.MapItemFilter{GameID: game.ID, Available: ptr(true)}, nil)
	require.NoError(t, err)
	assert.Empty(t, available)
}
