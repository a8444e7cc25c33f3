package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/models"
)

func TestPlayerUniquePerGameAndUser(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	ctx := context.Background()
	repo := NewPlayerRepository(db)

	game := SeedGame(t, db, models.GameStatusWaiting)
	player := SeedPlayer(t, db, game.ID, "alice")

	exists, err := repo.ExistsForUser(ctx, game.ID, player.UserID)
	require.NoError(t, err)
	assert.True(t, exists)

	dup := &models.Player{GameID: game.ID, UserID: player.UserID, PlayerName: "again", Color: "#00FF00", IsActive: true}
	err = repo.Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAlreadyExists))

	// 同一用户可以加入其他游戏
	other := SeedGame(t, db, models.GameStatusWaiting)
	require.NoError(t, repo.Create(ctx, &models.Player{GameID: other.ID, UserID: player.UserID, PlayerName: "alice", Color: "#00FF00", IsActive: true}))
}

func TestPlayerCounts(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	ctx := context.Background()
	repo := NewPlayerRepository(db)

	game := SeedGame(t, db, models.GameStatusActive)
	empty := SeedGame(t, db, models.GameStatusActive)
	alice := SeedPlayer(t, db, game.ID, "alice")
	bob := SeedPlayer(t, db, game.ID, "bob")

	bob.IsActive = false
	require.NoError(t, repo.Update(ctx, bob))

	active, err := repo.CountActive(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)

	byGame, err := repo.CountActiveByGames(ctx, []uint{game.ID, empty.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), byGame[game.ID])
	assert.Zero(t, byGame[empty.ID])

	SeedTile(t, db, game.ID, 0, 0, true)
	SeedCharacter(t, db, alice, 0, 0)
	dead := SeedCharacter(t, db, alice, 0, 0)
	dead.Status = models.CharacterStatusDead
	require.NoError(t, NewCharacterRepository(db).Update(ctx, dead))

	alive, err := repo.CountAliveCharacters(ctx, []uint{alice.ID, bob.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), alive[alice.ID])
	assert.Zero(t, alive[bob.ID])

	players, err := repo.ListByGame(ctx, game.ID)
	require.NoError(t, err)
	assert.Len(t, players, 2)
}

func TestPlayerDeleteRemovesCharacters(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	ctx := context.Background()
	repo := NewPlayerRepository(db)

	game := SeedGame(t, db, models.GameStatusActive)
	SeedTile(t, db, game.ID, 0, 0, true)
	alice := SeedPlayer(t, db, game.ID, "alice")
	bob := SeedPlayer(t, db, game.ID, "bob")
	scout := SeedCharacter(t, db, alice, 0, 0)
	SeedCharacter(t, db, bob, 0, 0)

	item := SeedMapItem(t, db, game.ID, 0, 0)
	ok, err := NewMapItemRepository(db).MarkCollected(ctx, item.ID, scout.ID, time.Now())
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, repo.Delete(ctx, alice.ID))

	_, err = repo.FindByID(ctx, alice.ID)
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	remaining, err := NewCharacterRepository(db).List(ctx, CharacterFilter{GameID: game.ID, IncludeDead: true}, nil)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, bob.ID, remaining[0].OwnerID)

	collected, err := NewMapItemRepository(db).FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, collected.CollectedByID)
	assert.False(t, collected.IsAvailable)

	err = repo.Delete(ctx, alice.ID)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}
