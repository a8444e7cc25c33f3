package repository

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ErrConflict 条件更新未命中，说明数据已被并发请求修改，可重新读取后重试
var ErrConflict = stderrors.New("concurrent update conflict")

// TransactionManager 事务管理器接口
type TransactionManager interface {
	// Begin 开始事务
	Begin(ctx context.Context) (*Transaction, error)
	// BeginWithOptions 使用选项开始事务
	BeginWithOptions(ctx context.Context, opts *TxOptions) (*Transaction, error)
	// WithTransaction 在事务中执行函数
	WithTransaction(ctx context.Context, fn func(tx *Transaction) error) error
	// WithTransactionOptions 使用选项在事务中执行函数
	WithTransactionOptions(ctx context.Context, opts *TxOptions, fn func(tx *Transaction) error) error
}

// TxOptions 事务选项
type TxOptions struct {
	// IsolationLevel 事务隔离级别
	IsolationLevel sql.IsolationLevel
	// ReadOnly 是否只读事务
	ReadOnly bool
	// Timeout 事务超时时间
	Timeout time.Duration
}

// Transaction 事务包装器
type Transaction struct {
	tx         *gorm.DB
	ctx        context.Context
	cancel     context.CancelFunc
	committed  bool
	rolledback bool

	// 事务中的仓储实例
	user         UserRepository
	userAuth     UserAuthRepository
	userSession  UserSessionRepository
	game         GameRepository
	worldState   WorldStateRepository
	player       PlayerRepository
	hexTile      HexTileRepository
	character    CharacterRepository
	mapItem      MapItemRepository
	interactable InteractableRepository
	item         ItemRepository
}

// txManager 事务管理器实现
type txManager struct {
	db *gorm.DB
}

// NewTransactionManager 创建事务管理器
func NewTransactionManager(db *gorm.DB) TransactionManager {
	return &txManager{db: db}
}

// Begin 开始事务
func (m *txManager) Begin(ctx context.Context) (*Transaction, error) {
	return m.BeginWithOptions(ctx, nil)
}

// BeginWithOptions 使用选项开始事务
func (m *txManager) BeginWithOptions(ctx context.Context, opts *TxOptions) (*Transaction, error) {
	var cancel context.CancelFunc
	if opts != nil && opts.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
	}

	// SQLite 不支持设置隔离级别和只读事务，选项只在 MySQL/PostgreSQL 上生效
	var sqlOpts *sql.TxOptions
	if opts != nil && m.db.Dialector.Name() != "sqlite" {
		sqlOpts = &sql.TxOptions{
			Isolation: opts.IsolationLevel,
			ReadOnly:  opts.ReadOnly,
		}
	}

	var tx *gorm.DB
	if sqlOpts != nil {
		tx = m.db.WithContext(ctx).Begin(sqlOpts)
	} else {
		tx = m.db.WithContext(ctx).Begin()
	}
	if tx.Error != nil {
		if cancel != nil {
			cancel()
		}
		return nil, tx.Error
	}

	return &Transaction{
		tx:     tx,
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// WithTransaction 在事务中执行函数
func (m *txManager) WithTransaction(ctx context.Context, fn func(tx *Transaction) error) error {
	return m.WithTransactionOptions(ctx, nil, fn)
}

// WithTransactionOptions 使用选项在事务中执行函数
func (m *txManager) WithTransactionOptions(ctx context.Context, opts *TxOptions, fn func(tx *Transaction) error) (err error) {
	tx, err := m.BeginWithOptions(ctx, opts)
	if err != nil {
		return err
	}

	// 确保事务被处理，panic 时回滚后继续向上抛出
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
		if !tx.committed && !tx.rolledback {
			tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// Context 事务上下文
func (t *Transaction) Context() context.Context {
	return t.ctx
}

// Commit 提交事务
func (t *Transaction) Commit() error {
	if t.committed {
		return fmt.Errorf("事务已提交")
	}
	if t.rolledback {
		return fmt.Errorf("事务已回滚")
	}
	defer t.release()

	if err := t.tx.Commit().Error; err != nil {
		t.rolledback = true
		return err
	}

	t.committed = true
	return nil
}

// Rollback 回滚事务
func (t *Transaction) Rollback() error {
	if t.committed {
		return fmt.Errorf("事务已提交，无法回滚")
	}
	if t.rolledback {
		return fmt.Errorf("事务已回滚")
	}
	defer t.release()

	t.rolledback = true
	return t.tx.Rollback().Error
}

func (t *Transaction) release() {
	if t.cancel != nil {
		t.cancel()
	}
}

// GetDB 获取事务中的数据库实例
func (t *Transaction) GetDB() *gorm.DB {
	return t.tx
}

// User 获取事务中的用户仓储
func (t *Transaction) User() UserRepository {
	if t.user == nil {
		t.user = &userRepo{BaseRepo: &BaseRepo{db: t.tx}}
	}
	return t.user
}

// UserAuth 获取事务中的用户认证仓储
func (t *Transaction) UserAuth() UserAuthRepository {
	if t.userAuth == nil {
		t.userAuth = &userAuthRepo{BaseRepo: &BaseRepo{db: t.tx}}
	}
	return t.userAuth
}

// UserSession 获取事务中的用户会话仓储
func (t *Transaction) UserSession() UserSessionRepository {
	if t.userSession == nil {
		t.userSession = &userSessionRepo{BaseRepo: &BaseRepo{db: t.tx}}
	}
	return t.userSession
}

// Game 获取事务中的游戏仓储
func (t *Transaction) Game() GameRepository {
	if t.game == nil {
		t.game = &gameRepo{BaseRepo: &BaseRepo{db: t.tx}}
	}
	return t.game
}

// WorldState 获取事务中的世界状态仓储
func (t *Transaction) WorldState() WorldStateRepository {
	if t.worldState == nil {
		t.worldState = &worldStateRepo{BaseRepo: &BaseRepo{db: t.tx}}
	}
	return t.worldState
}

// Player 获取事务中的玩家仓储
func (t *Transaction) Player() PlayerRepository {
	if t.player == nil {
		t.player = &playerRepo{BaseRepo: &BaseRepo{db: t.tx}}
	}
	return t.player
}

// HexTile 获取事务中的地块仓储
func (t *Transaction) HexTile() HexTileRepository {
	if t.hexTile == nil {
		t.hexTile = &hexTileRepo{BaseRepo: &BaseRepo{db: t.tx}}
	}
	return t.hexTile
}

// Character 获取事务中的角色仓储
func (t *Transaction) Character() CharacterRepository {
	if t.character == nil {
		t.character = &characterRepo{BaseRepo: &BaseRepo{db: t.tx}}
	}
	return t.character
}

// MapItem 获取事务中的地图物品仓储
func (t *Transaction) MapItem() MapItemRepository {
	if t.mapItem == nil {
		t.mapItem = &mapItemRepo{BaseRepo: &BaseRepo{db: t.tx}}
	}
	return t.mapItem
}

// Interactable 获取事务中的交互对象仓储
func (t *Transaction) Interactable() InteractableRepository {
	if t.interactable == nil {
		t.interactable = &interactableRepo{BaseRepo: &BaseRepo{db: t.tx}}
	}
	return t.interactable
}

// Item 获取事务中的物品目录仓储
func (t *Transaction) Item() ItemRepository {
	if t.item == nil {
		t.item = &itemRepo{BaseRepo: &BaseRepo{db: t.tx}}
	}
	return t.item
}

// TransactionHelper 事务辅助函数
type TransactionHelper struct {
	manager TransactionManager
	backoff time.Duration
}

// NewTransactionHelper 创建事务辅助器
func NewTransactionHelper(manager TransactionManager) *TransactionHelper {
	return &TransactionHelper{manager: manager, backoff: 10 * time.Millisecond}
}

// RunWithRetry 带重试的事务执行，只重试冲突、死锁等可重试错误
func (h *TransactionHelper) RunWithRetry(ctx context.Context, maxRetries int, fn func(tx *Transaction) error) error {
	var lastErr error

	for i := 0; i < maxRetries; i++ {
		err := h.manager.WithTransaction(ctx, fn)
		if err == nil {
			return nil
		}

		lastErr = err
		if !isRetryableError(err) {
			return err
		}

		// 指数退避
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(h.backoff << i):
		}
	}

	return fmt.Errorf("事务执行失败，已重试%d次: %w", maxRetries, lastErr)
}

// isRetryableError 判断错误是否可重试
func isRetryableError(err error) bool {
	if stderrors.Is(err, ErrConflict) {
		return true
	}

	errStr := err.Error()
	switch {
	case strings.Contains(errStr, "Deadlock"):
		// MySQL
		return true
	case strings.Contains(errStr, "deadlock detected"):
		// PostgreSQL
		return true
	case strings.Contains(errStr, "database is locked"):
		// SQLite
		return true
	}
	return false
}
