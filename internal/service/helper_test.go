package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wfunc/hexrealm/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newTestServices 基于内存数据库创建完整的服务集合
func newTestServices(t testing.TB) (*Services, *gorm.DB) {
	t.Helper()
	db := repository.SetupTestDB()
	services, err := NewServices(db, DefaultConfig(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() {
		services.Close()
		repository.CleanupTestDB(db)
	})
	return services, db
}

func ptr[T any](v T) *T {
	return &v
}
