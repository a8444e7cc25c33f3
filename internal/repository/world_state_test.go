package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/models"
)

func TestWorldStateCurrentFlag(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	ctx := context.Background()
	repo := NewWorldStateRepository(db)
	game := SeedGame(t, db, models.GameStatusActive)

	_, err := repo.FindCurrent(ctx, game.ID)
	require.Error(t, err)
	appErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
	assert.Equal(t, "No current world state found", appErr.PublicMessage())

	first := &models.WorldState{GameID: game.ID, Tick: 0, StateHash: "a"}
	require.NoError(t, repo.CreateCurrent(ctx, first))
	second := &models.WorldState{GameID: game.ID, Tick: 1, StateHash: "b"}
	require.NoError(t, repo.CreateCurrent(ctx, second))

	current, err := repo.FindCurrent(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)

	old, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, old.IsCurrent)

	exists, err := repo.ExistsAt(ctx, game.ID, 1)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestWorldStateDuplicateTickKeepsCurrent(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	ctx := context.Background()
	repo := NewWorldStateRepository(db)
	game := SeedGame(t, db, models.GameStatusActive)

	original := &models.WorldState{GameID: game.ID, Tick: 0}
	require.NoError(t, repo.CreateCurrent(ctx, original))

	dup := &models.WorldState{GameID: game.ID, Tick: 0}
	err := repo.CreateCurrent(ctx, dup)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAlreadyExists))
	assert.False(t, dup.IsCurrent)

	// 失败的写入整体回滚，旧的当前标记仍在
	current, err := repo.FindCurrent(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, original.ID, current.ID)
}

func TestWorldStateListSkipsSnapshotData(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	ctx := context.Background()
	repo := NewWorldStateRepository(db)
	game := SeedGame(t, db, models.GameStatusActive)
	other := SeedGame(t, db, models.GameStatusActive)

	require.NoError(t, repo.CreateCurrent(ctx, &models.WorldState{GameID: game.ID, Tick: 0, SnapshotData: []byte("x")}))
	require.NoError(t, repo.CreateCurrent(ctx, &models.WorldState{GameID: game.ID, Tick: 1, SnapshotData: []byte("y")}))
	require.NoError(t, repo.CreateCurrent(ctx, &models.WorldState{GameID: other.ID, Tick: 0}))

	states, err := repo.List(ctx, WorldStateFilter{GameID: game.ID}, nil)
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, 1, states[0].Tick)
	assert.Empty(t, states[0].SnapshotData)

	all, err := repo.List(ctx, WorldStateFilter{}, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
