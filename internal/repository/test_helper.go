package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wfunc/hexrealm/internal/config"
	"github.com/wfunc/hexrealm/internal/database"
	"github.com/wfunc/hexrealm/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SetupTestDB 创建迁移完成的内存数据库，每次调用都是独立的库
func SetupTestDB() *gorm.DB {
	db, err := database.Open(&config.DatabaseConfig{
		Driver:   "sqlite",
		DSN:      ":memory:",
		LogLevel: "silent",
	})
	if err != nil {
		panic(err)
	}
	if err := database.Migrate(db); err != nil {
		panic(err)
	}
	return db
}

// CleanupTestDB 清理测试数据库
func CleanupTestDB(db *gorm.DB) {
	sqlDB, _ := db.DB()
	if sqlDB != nil {
		sqlDB.Close()
	}
}

// SeedGame 创建测试游戏
func SeedGame(t testing.TB, db *gorm.DB, status string) *models.Game {
	t.Helper()
	game := &models.Game{
		Name:                fmt.Sprintf("game-%s", status),
		Status:              status,
		MaxPlayers:          4,
		TickDurationMinutes: 15,
		MapName:             "test-map",
		MapWidth:            20,
		MapHeight:           20,
		Settings:            datatypes.JSONMap{},
	}
	require.NoError(t, NewGameRepository(db).Create(context.Background(), game))
	return game
}

// SeedUser 创建测试用户
func SeedUser(t testing.TB, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

// SeedPlayer 创建测试玩家，同时创建所属用户
func SeedPlayer(t testing.TB, db *gorm.DB, gameID uint, name string) *models.Player {
	t.Helper()
	user := SeedUser(t, db, fmt.Sprintf("%s-%d", name, gameID))
	player := &models.Player{
		GameID:     gameID,
		UserID:     user.ID,
		PlayerName: name,
		Color:      "#FF0000",
		IsActive:   true,
	}
	require.NoError(t, NewPlayerRepository(db).Create(context.Background(), player))
	return player
}

// SeedTile 创建测试地块
func SeedTile(t testing.TB, db *gorm.DB, gameID uint, q, r int, passable bool) *models.HexTile {
	t.Helper()
	tile := &models.HexTile{
		GameID:      gameID,
		Q:           q,
		R:           r,
		TerrainType: models.TerrainPlains,
		IsPassable:  passable,
	}
	require.NoError(t, NewHexTileRepository(db).Create(context.Background(), tile))
	return tile
}

// SeedCharacter 创建位于指定坐标的测试角色
func SeedCharacter(t testing.TB, db *gorm.DB, player *models.Player, q, r int) *models.Character {
	t.Helper()
	character := &models.Character{
		GameID:            player.GameID,
		OwnerID:           player.ID,
		CharacterType:     "scout",
		Name:              fmt.Sprintf("%s-scout", player.PlayerName),
		Health:            100,
		MaxHealth:         100,
		Stamina:           100,
		MaxStamina:        100,
		Level:             1,
		PositionQ:         q,
		PositionR:         r,
		Status:            models.CharacterStatusIdle,
		MovementPoints:    3,
		MaxMovementPoints: 3,
		InventoryCapacity: 20,
	}
	require.NoError(t, NewCharacterRepository(db).Create(context.Background(), character))
	return character
}

// SeedMapItem 创建可拾取的测试物品
func SeedMapItem(t testing.TB, db *gorm.DB, gameID uint, q, r int) *models.MapItem {
	t.Helper()
	item := &models.MapItem{
		GameID:      gameID,
		ItemType:    "weapon",
		ItemID:      fmt.Sprintf("sword-%d-%d", q, r),
		PositionQ:   q,
		PositionR:   r,
		Quantity:    1,
		Rarity:      "common",
		IsAvailable: true,
	}
	require.NoError(t, NewMapItemRepository(db).Create(context.Background(), item))
	return item
}

// SeedInteractable 创建测试交互对象
func SeedInteractable(t testing.TB, db *gorm.DB, gameID uint, q, r, maxUses int) *models.Interactable {
	t.Helper()
	it := &models.Interactable{
		GameID:           gameID,
		InteractableType: "chest",
		InteractableID:   fmt.Sprintf("chest-%d-%d", q, r),
		Name:             "Old Chest",
		PositionQ:        q,
		PositionR:        r,
		State:            "active",
		IsActive:         true,
		MaxUses:          maxUses,
		Data:             datatypes.JSONMap{},
	}
	require.NoError(t, NewInteractableRepository(db).Create(context.Background(), it))
	return it
}
