package repository

import (
	"context"
	"time"

	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/models"
	"gorm.io/gorm"
)

// GameFilter 游戏列表过滤条件
type GameFilter struct {
	Status string
}

// GameRepository 游戏仓储接口
type GameRepository interface {
	BaseRepository
	Create(ctx context.Context, game *models.Game) error
	Update(ctx context.Context, game *models.Game) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Game, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*models.Game, error)
	List(ctx context.Context, filter GameFilter, pagination *Pagination) ([]*models.Game, error)
	TransitionStatus(ctx context.Context, id uint, from, to string, fields map[string]interface{}) (bool, error)
	AdvanceTick(ctx context.Context, id uint, fromTick int, nextTickAt time.Time) (bool, error)
}

// gameRepo 游戏仓储实现
type gameRepo struct {
	*BaseRepo
}

// NewGameRepository 创建游戏仓储
func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepo{
		BaseRepo: &BaseRepo{db: db},
	}
}

// Create 创建游戏
func (r *gameRepo) Create(ctx context.Context, game *models.Game) error {
	return writeErr(r.db.WithContext(ctx).Create(game).Error, errors.ErrDatabaseInsert, "Game already exists")
}

// Update 保存游戏的可编辑字段，状态与回合只能由状态流转和 AdvanceTick 写入
func (r *gameRepo) Update(ctx context.Context, game *models.Game) error {
	err := r.db.WithContext(ctx).
		Omit("status", "current_tick", "started_at", "next_tick_at", "finished_at", "created_at").
		Save(game).Error
	return writeErr(err, errors.ErrDatabaseUpdate, "Game already exists")
}

// Delete 删除游戏及其全部从属数据
func (r *gameRepo) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var game models.Game
		if err := tx.Select("id").First(&game, id).Error; err != nil {
			return findErr(err, "Game")
		}

		owned := []interface{}{
			&models.WorldState{},
			&models.MapItem{},
			&models.Interactable{},
			&models.Character{},
			&models.Player{},
			&models.HexTile{},
		}
		for _, m := range owned {
			if err := tx.Where("game_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Game{}, id).Error
	})
	// findErr 产生的 AppError 会原样保留
	return writeErr(err, errors.ErrDatabaseDelete, "")
}

// FindByID 根据ID查找游戏
func (r *gameRepo) FindByID(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	if err := r.db.WithContext(ctx).First(&game, id).Error; err != nil {
		return nil, findErr(err, "Game")
	}
	return &game, nil
}

// FindByIDForUpdate 加行锁读取游戏，需在事务中调用
func (r *gameRepo) FindByIDForUpdate(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	if err := forUpdate(r.db.WithContext(ctx)).First(&game, id).Error; err != nil {
		return nil, findErr(err, "Game")
	}
	return &game, nil
}

// List 游戏列表，按创建时间倒序
func (r *gameRepo) List(ctx context.Context, filter GameFilter, pagination *Pagination) ([]*models.Game, error) {
	query := r.db.WithContext(ctx).Model(&models.Game{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if pagination != nil {
		if err := query.Count(&pagination.Total).Error; err != nil {
			return nil, findErr(err, "Game")
		}
	}

	var games []*models.Game
	err := query.Scopes(Paginate(pagination)).
		Order("created_at DESC").
		Order("id DESC").
		Find(&games).Error
	if err != nil {
		return nil, findErr(err, "Game")
	}
	return games, nil
}

// TransitionStatus 条件更新状态，只有当前状态为 from 时才会生效
func (r *gameRepo) TransitionStatus(ctx context.Context, id uint, from, to string, fields map[string]interface{}) (bool, error) {
	updates := map[string]interface{}{"status": to}
	for k, v := range fields {
		updates[k] = v
	}

	result := r.db.WithContext(ctx).
		Model(&models.Game{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, errors.ErrDatabaseUpdate)
	}
	return result.RowsAffected == 1, nil
}

// AdvanceTick 条件推进回合，并发推进时只有一个请求成功
func (r *gameRepo) AdvanceTick(ctx context.Context, id uint, fromTick int, nextTickAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Game{}).
		Where("id = ? AND current_tick = ?", id, fromTick).
		Updates(map[string]interface{}{
			"current_tick": fromTick + 1,
			"next_tick_at": nextTickAt,
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, errors.ErrDatabaseUpdate)
	}
	return result.RowsAffected == 1, nil
}

// WithTx 使用事务
func (r *gameRepo) WithTx(tx *gorm.DB) BaseRepository {
	return &gameRepo{
		BaseRepo: &BaseRepo{db: tx},
	}
}
