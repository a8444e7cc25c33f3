package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/hexrealm/internal/config"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("info"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
}

func TestBuildWithFileOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.LogConfig{
		Level:  "debug",
		Format: "console",
		Output: "file",
		File: config.LogFileConfig{
			Path:     dir,
			Filename: "test.log",
			MaxSize:  1,
		},
		Modules: map[string]string{ModuleGame: "warn"},
	}

	root, modules, err := build(cfg)
	require.NoError(t, err)
	require.NotNil(t, root)
	assert.Contains(t, modules, ModuleGame)
	assert.False(t, modules[ModuleGame].Core().Enabled(zapcore.InfoLevel))
	assert.True(t, root.Core().Enabled(zapcore.DebugLevel))

	root.Info("hello")
	require.NoError(t, root.Sync())
	assert.FileExists(t, dir+"/test.log")
}

func TestHelpersWithoutInit(t *testing.T) {
	// 未初始化时所有便捷方法都不应 panic
	assert.NotPanics(t, func() {
		Info("info")
		LogGameEvent("tick_advanced", 1)
		LogRequest("rid", "GET", "/health", 200, 0, "127.0.0.1")
		LogDatabaseOperation("select", "games", 0, nil)
	})
}
