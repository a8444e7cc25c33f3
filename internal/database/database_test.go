package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/hexrealm/internal/config"
	"github.com/wfunc/hexrealm/internal/models"
)

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestMigrateInMemory(t *testing.T) {
	db, err := Open(&config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))
	for _, m := range models.AllModels() {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}

	// 部分唯一索引：同一游戏只能有一个当前世界状态
	require.NoError(t, db.Create(&models.WorldState{GameID: 1, Tick: 0, IsCurrent: true}).Error)
	require.NoError(t, db.Create(&models.WorldState{GameID: 1, Tick: 1, IsCurrent: false}).Error)
	assert.Error(t, db.Create(&models.WorldState{GameID: 1, Tick: 2, IsCurrent: true}).Error)
	assert.NoError(t, db.Create(&models.WorldState{GameID: 2, Tick: 0, IsCurrent: true}).Error)

	// (game, tick) 唯一
	assert.Error(t, db.Create(&models.WorldState{GameID: 1, Tick: 1}).Error)

	require.NoError(t, DropAllTables(db))
	assert.False(t, db.Migrator().HasTable(&models.Game{}))
}

func TestMigrateFileUsesLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexrealm.db")
	db, err := Open(&config.DatabaseConfig{Driver: "sqlite", DSN: path, LogLevel: "silent"})
	require.NoError(t, err)

	assert.NotEmpty(t, sqliteFilePath(db))
	require.NoError(t, Migrate(db))
	assert.NoFileExists(t, path+".migration.lock")

	// 已被占用的锁在等待耗尽后返回错误
	lockAttempts = 1
	lockInterval = 0
	defer func() { lockAttempts, lockInterval = 30, time.Second }()
	held, err := acquireMigrationLock(path)
	require.NoError(t, err)
	defer releaseMigrationLock(held)
	_, err = acquireMigrationLock(path)
	assert.Error(t, err)
}
