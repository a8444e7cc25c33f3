package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/hexrealm/internal/models"
)

func TestInteractableRecordUse(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	ctx := context.Background()
	repo := NewInteractableRepository(db)

	game := SeedGame(t, db, models.GameStatusActive)
	it := SeedInteractable(t, db, game.ID, 0, 0, 2)
	record := models.InteractionRecord{CharacterID: 7, CharacterName: "scout", Tick: 3, Timestamp: time.Now(), Result: "success"}

	ok, err := repo.RecordUse(ctx, it, 3, record)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, it.CurrentUses)
	require.NotNil(t, it.LastUsedTick)
	assert.Equal(t, 3, *it.LastUsedTick)

	found, err := repo.FindByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.CurrentUses)
	history := found.Interactions.Data()
	require.Len(t, history, 1)
	assert.Equal(t, uint(7), history[0].CharacterID)
	assert.Equal(t, "success", history[0].Result)
}

func TestInteractableRecordUseStaleRead(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	ctx := context.Background()
	repo := NewInteractableRepository(db)

	game := SeedGame(t, db, models.GameStatusActive)
	it := SeedInteractable(t, db, game.ID, 0, 0, 1)

	a, err := repo.FindByID(ctx, it.ID)
	require.NoError(t, err)
	b, err := repo.FindByID(ctx, it.ID)
	require.NoError(t, err)

	ok, err := repo.RecordUse(ctx, a, 0, models.InteractionRecord{CharacterID: 1, Result: "success"})
	require.NoError(t, err)
	assert.True(t, ok)

	// b 读到的 current_uses 已过期
	ok, err = repo.RecordUse(ctx, b, 0, models.InteractionRecord{CharacterID: 2, Result: "success"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, b.CurrentUses)

	found, err := repo.FindByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.CurrentUses)
	assert.Len(t, found.Interactions.Data(), 1)
}

func TestInteractableUpdateKeepsUsage(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	ctx := context.Background()
	repo := NewInteractableRepository(db)

	game := SeedGame(t, db, models.GameStatusActive)
	it := SeedInteractable(t, db, game.ID, 0, 0, 3)

	stale, err := repo.FindByID(ctx, it.ID)
	require.NoError(t, err)

	ok, err := repo.RecordUse(ctx, it, 4, models.InteractionRecord{CharacterID: 1, Tick: 4, Result: "success"})
	require.NoError(t, err)
	require.True(t, ok)

	// 旧读取的 current_uses=0，保存时不能抹掉刚记录的使用
	stale.Name = "Renamed Chest"
	require.NoError(t, repo.Update(ctx, stale))

	found, err := repo.FindByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Chest", found.Name)
	assert.Equal(t, 1, found.CurrentUses)
	require.NotNil(t, found.LastUsedTick)
	assert.Equal(t, 4, *found.LastUsedTick)
	assert.Len(t, found.Interactions.Data(), 1)
}

func TestInteractableListFilters(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	ctx := context.Background()
	repo := NewInteractableRepository(db)

	game := SeedGame(t, db, models.GameStatusActive)
	SeedInteractable(t, db, game.ID, 0, 0, 1)
	inactive := SeedInteractable(t, db, game.ID, 1, 1, 1)
	inactive.IsActive = false
	require.NoError(t, repo.Update(ctx, inactive))

	active := true
	list, err := repo.List(ctx, InteractableFilter{GameID: game.ID, Active: &active}, nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	q, r := 1, 1
	list, err = repo.List(ctx, InteractableFilter{GameID: game.ID, CoordFilter: CoordFilter{Q: &q, R: &r}}, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].IsActive)
}
