package repository

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/hexrealm/internal/models"
)

func TestTransactionManager_BeginCommit(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	ctx := context.Background()
	manager := NewManager(db)
	game := SeedGame(t, db, models.GameStatusWaiting)

	tx, err := manager.Transaction().Begin(ctx)
	require.NoError(t, err)
	SeedTile(t, tx.GetDB(), game.ID, 0, 0, true)
	require.NoError(t, tx.Commit())

	assert.Error(t, tx.Commit())
	assert.Error(t, tx.Rollback())

	tiles, err := manager.HexTile().List(ctx, HexTileFilter{GameID: game.ID}, nil)
	require.NoError(t, err)
	assert.Len(t, tiles, 1)
}

func TestTransactionManager_WithTransactionRollback(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	ctx := context.Background()
	manager := NewManager(db)
	game := SeedGame(t, db, models.GameStatusWaiting)

	boom := stderrors.New("boom")
	err := manager.WithTransaction(ctx, func(tx *Transaction) error {
		if err := tx.HexTile().Create(ctx, &models.HexTile{GameID: game.ID, TerrainType: models.TerrainPlains}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	tiles, err := manager.HexTile().List(ctx, HexTileFilter{GameID: game.ID}, nil)
	require.NoError(t, err)
	assert.Empty(t, tiles)
}

func TestTransactionManager_ReadOnlyOnSQLite(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	ctx := context.Background()
	manager := NewManager(db)
	game := SeedGame(t, db, models.GameStatusWaiting)

	// SQLite 忽略只读选项
	err := manager.WithReadOnlyTransaction(ctx, func(tx *Transaction) error {
		_, err := tx.Game().FindByID(ctx, game.ID)
		return err
	})
	assert.NoError(t, err)
}

func TestTransactionHelper_RunWithRetry(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	ctx := context.Background()
	helper := NewTransactionHelper(NewTransactionManager(db))
	helper.backoff = 0

	attempts := 0
	err := helper.RunWithRetry(ctx, 3, func(tx *Transaction) error {
		attempts++
		if attempts < 3 {
			return fmt.Errorf("interact: %w", ErrConflict)
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)

	// 不可重试的错误立即返回
	attempts = 0
	err = helper.RunWithRetry(ctx, 3, func(tx *Transaction) error {
		attempts++
		return stderrors.New("validation failed")
	})
	assert.Error(t, err)
	assert.Equal(t, 1, attempts)

	attempts = 0
	err = helper.RunWithRetry(ctx, 2, func(tx *Transaction) error {
		attempts++
		return ErrConflict
	})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 2, attempts)
}
