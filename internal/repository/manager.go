package repository

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

// Manager 仓储管理器，提供所有仓储的统一访问接口
type Manager struct {
	db *gorm.DB

	// 事务管理器
	txManager TransactionManager

	// 用户相关
	userOnce        sync.Once
	user            UserRepository
	userAuthOnce    sync.Once
	userAuth        UserAuthRepository
	userSessionOnce sync.Once
	userSession     UserSessionRepository

	// 游戏相关
	gameOnce         sync.Once
	game             GameRepository
	worldStateOnce   sync.Once
	worldState       WorldStateRepository
	playerOnce       sync.Once
	player           PlayerRepository
	hexTileOnce      sync.Once
	hexTile          HexTileRepository
	characterOnce    sync.Once
	character        CharacterRepository
	mapItemOnce      sync.Once
	mapItem          MapItemRepository
	interactableOnce sync.Once
	interactable     InteractableRepository

	// 物品目录
	itemOnce sync.Once
	item     ItemRepository
}

// NewManager 创建仓储管理器
func NewManager(db *gorm.DB) *Manager {
	return &Manager{
		db:        db,
		txManager: NewTransactionManager(db),
	}
}

// GetDB 获取数据库实例
func (m *Manager) GetDB() *gorm.DB {
	return m.db
}

// Transaction 获取事务管理器
func (m *Manager) Transaction() TransactionManager {
	return m.txManager
}

// User 获取用户仓储
func (m *Manager) User() UserRepository {
	m.userOnce.Do(func() {
		m.user = NewUserRepository(m.db)
	})
	return m.user
}

// UserAuth 获取用户认证仓储
func (m *Manager) UserAuth() UserAuthRepository {
	m.userAuthOnce.Do(func() {
		m.userAuth = NewUserAuthRepository(m.db)
	})
	return m.userAuth
}

// UserSession 获取用户会话仓储
func (m *Manager) UserSession() UserSessionRepository {
	m.userSessionOnce.Do(func() {
		m.userSession = NewUserSessionRepository(m.db)
	})
	return m.userSession
}

// Game 获取游戏仓储
func (m *Manager) Game() GameRepository {
	m.gameOnce.Do(func() {
		m.game = NewGameRepository(m.db)
	})
	return m.game
}

// WorldState 获取世界状态仓储
func (m *Manager) WorldState() WorldStateRepository {
	m.worldStateOnce.Do(func() {
		m.worldState = NewWorldStateRepository(m.db)
	})
	return m.worldState
}

// Player 获取玩家仓储
func (m *Manager) Player() PlayerRepository {
	m.playerOnce.Do(func() {
		m.player = NewPlayerRepository(m.db)
	})
	return m.player
}

// HexTile 获取地块仓储
func (m *Manager) HexTile() HexTileRepository {
	m.hexTileOnce.Do(func() {
		m.hexTile = NewHexTileRepository(m.db)
	})
	return m.hexTile
}

// Character 获取角色仓储
func (m *Manager) Character() CharacterRepository {
	m.characterOnce.Do(func() {
		m.character = NewCharacterRepository(m.db)
	})
	return m.character
}

// MapItem 获取地图物品仓储
func (m *Manager) MapItem() MapItemRepository {
	m.mapItemOnce.Do(func() {
		m.mapItem = NewMapItemRepository(m.db)
	})
	return m.mapItem
}

// Interactable 获取交互对象仓储
func (m *Manager) Interactable() InteractableRepository {
	m.interactableOnce.Do(func() {
		m.interactable = NewInteractableRepository(m.db)
	})
	return m.interactable
}

// Item 获取物品目录仓储
func (m *Manager) Item() ItemRepository {
	m.itemOnce.Do(func() {
		m.item = NewItemRepository(m.db)
	})
	return m.item
}

// WithTransaction 在事务中执行操作
func (m *Manager) WithTransaction(ctx context.Context, fn func(tx *Transaction) error) error {
	return m.txManager.WithTransaction(ctx, fn)
}

// WithReadOnlyTransaction 在只读事务中执行操作
func (m *Manager) WithReadOnlyTransaction(ctx context.Context, fn func(tx *Transaction) error) error {
	opts := &TxOptions{
		ReadOnly: true,
	}
	return m.txManager.WithTransactionOptions(ctx, opts, fn)
}
