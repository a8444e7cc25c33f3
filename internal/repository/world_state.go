package repository

import (
	"context"
	stderrors "errors"

	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/models"
	"gorm.io/gorm"
)

// WorldStateFilter 世界状态过滤条件
type WorldStateFilter struct {
	GameID uint
}

// WorldStateRepository 世界状态仓储接口
type WorldStateRepository interface {
	BaseRepository
	CreateCurrent(ctx context.Context, state *models.WorldState) error
	FindByID(ctx context.Context, id uint) (*models.WorldState, error)
	FindCurrent(ctx context.Context, gameID uint) (*models.WorldState, error)
	ExistsAt(ctx context.Context, gameID uint, tick int) (bool, error)
	List(ctx context.Context, filter WorldStateFilter, pagination *Pagination) ([]*models.WorldState, error)
}

// worldStateRepo 世界状态仓储实现
type worldStateRepo struct {
	*BaseRepo
}

// NewWorldStateRepository 创建世界状态仓储
func NewWorldStateRepository(db *gorm.DB) WorldStateRepository {
	return &worldStateRepo{
		BaseRepo: &BaseRepo{db: db},
	}
}

// CreateCurrent 写入新快照并设为当前，同一事务内先清除旧的当前标记
func (r *worldStateRepo) CreateCurrent(ctx context.Context, state *models.WorldState) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.WorldState{}).
			Where("game_id = ? AND is_current = ?", state.GameID, true).
			Update("is_current", false).Error
		if err != nil {
			return err
		}
		state.IsCurrent = true
		return tx.Create(state).Error
	})
	if err != nil {
		state.IsCurrent = false
	}
	return writeErr(err, errors.ErrDatabaseInsert, "A world state already exists for this tick")
}

// FindByID 根据ID查找世界状态
func (r *worldStateRepo) FindByID(ctx context.Context, id uint) (*models.WorldState, error) {
	var state models.WorldState
	if err := r.db.WithContext(ctx).First(&state, id).Error; err != nil {
		return nil, findErr(err, "World state")
	}
	return &state, nil
}

// FindCurrent 查找游戏的当前世界状态
func (r *worldStateRepo) FindCurrent(ctx context.Context, gameID uint) (*models.WorldState, error) {
	var state models.WorldState
	err := r.db.WithContext(ctx).
		Where("game_id = ? AND is_current = ?", gameID, true).
		Order("tick DESC").
		First(&state).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NotFound("No current world state found")
	}
	if err != nil {
		return nil, findErr(err, "World state")
	}
	return &state, nil
}

// ExistsAt 指定回合是否已有快照
func (r *worldStateRepo) ExistsAt(ctx context.Context, gameID uint, tick int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WorldState{}).
		Where("game_id = ? AND tick = ?", gameID, tick).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, errors.ErrDatabaseQuery)
	}
	return count > 0, nil
}

// List 世界状态列表，不加载快照正文
func (r *worldStateRepo) List(ctx context.Context, filter WorldStateFilter, pagination *Pagination) ([]*models.WorldState, error) {
	query := r.db.WithContext(ctx).Model(&models.WorldState{})
	if filter.GameID != 0 {
		query = query.Where("game_id = ?", filter.GameID)
	}

	if pagination != nil {
		if err := query.Count(&pagination.Total).Error; err != nil {
			return nil, errors.Wrap(err, errors.ErrDatabaseQuery)
		}
	}

	var states []*models.WorldState
	err := query.Scopes(Paginate(pagination)).
		Omit("snapshot_data").
		Order("game_id ASC").
		Order("tick DESC").
		Find(&states).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDatabaseQuery)
	}
	return states, nil
}

// WithTx 使用事务
func (r *worldStateRepo) WithTx(tx *gorm.DB) BaseRepository {
	return &worldStateRepo{
		BaseRepo: &BaseRepo{db: tx},
	}
}
