package repository

import (
	"context"
	"time"

	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/hexgrid"
	"github.com/wfunc/hexrealm/internal/models"
	"gorm.io/gorm"
)

// MapItemFilter 地图物品过滤条件
type MapItemFilter struct {
	GameID    uint
	Available *bool
	CoordFilter
}

// MapItemRepository 地图物品仓储接口
type MapItemRepository interface {
	BaseRepository
	Create(ctx context.Context, item *models.MapItem) error
	Update(ctx context.Context, item *models.MapItem) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.MapItem, error)
	FindAvailableAt(ctx context.Context, id, gameID uint, at hexgrid.Coord) (*models.MapItem, error)
	MarkCollected(ctx context.Context, id, characterID uint, at time.Time) (bool, error)
	List(ctx context.Context, filter MapItemFilter, pagination *Pagination) ([]*models.MapItem, error)
}

// mapItemRepo 地图物品仓储实现
type mapItemRepo struct {
	*BaseRepo
}

// NewMapItemRepository 创建地图物品仓储
func NewMapItemRepository(db *gorm.DB) MapItemRepository {
	return &mapItemRepo{
		BaseRepo: &BaseRepo{db: db},
	}
}

// Create 创建地图物品
func (r *mapItemRepo) Create(ctx context.Context, item *models.MapItem) error {
	return writeErr(r.db.WithContext(ctx).Create(item).Error, errors.ErrDatabaseInsert, "Map item already exists")
}

// Update 保存地图物品，可用状态和拾取信息只能由 MarkCollected 写入
func (r *mapItemRepo) Update(ctx context.Context, item *models.MapItem) error {
	err := r.db.WithContext(ctx).
		Omit("is_available", "collected_at", "collected_by_id", "created_at").
		Save(item).Error
	return writeErr(err, errors.ErrDatabaseUpdate, "Map item already exists")
}

// Delete 删除地图物品
func (r *mapItemRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.MapItem{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrDatabaseDelete)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("Map item not found")
	}
	return nil
}

// FindByID 根据ID查找地图物品
func (r *mapItemRepo) FindByID(ctx context.Context, id uint) (*models.MapItem, error) {
	var item models.MapItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, findErr(err, "Map item")
	}
	return &item, nil
}

// FindAvailableAt 查找位于指定坐标且可拾取的物品
func (r *mapItemRepo) FindAvailableAt(ctx context.Context, id, gameID uint, at hexgrid.Coord) (*models.MapItem, error) {
	var item models.MapItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND game_id = ?", id, gameID).
		Where("position_q = ? AND position_r = ?", at.Q, at.R).
		Where("is_available = ?", true).
		First(&item).Error
	if err != nil {
		return nil, findErr(err, "Item")
	}
	return &item, nil
}

// MarkCollected 标记物品已被拾取，物品已不可用时返回 false
func (r *mapItemRepo) MarkCollected(ctx context.Context, id, characterID uint, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.MapItem{}).
		Where("id = ? AND is_available = ?", id, true).
		Updates(map[string]interface{}{
			"is_available":    false,
			"collected_at":    at,
			"collected_by_id": characterID,
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, errors.ErrDatabaseUpdate)
	}
	return result.RowsAffected == 1, nil
}

// List 地图物品列表
func (r *mapItemRepo) List(ctx context.Context, filter MapItemFilter, pagination *Pagination) ([]*models.MapItem, error) {
	query := r.db.WithContext(ctx).Model(&models.MapItem{})
	if filter.GameID != 0 {
		query = query.Where("game_id = ?", filter.GameID)
	}
	if filter.Available != nil {
		query = query.Where("is_available = ?", *filter.Available)
	}
	query = filter.apply(query, "position_q", "position_r")

	if pagination != nil {
		if err := query.Count(&pagination.Total).Error; err != nil {
			return nil, errors.Wrap(err, errors.ErrDatabaseQuery)
		}
	}

	var items []*models.MapItem
	err := query.Scopes(Paginate(pagination)).Order("id ASC").Find(&items).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDatabaseQuery)
	}
	return items, nil
}

// WithTx 使用事务
func (r *mapItemRepo) WithTx(tx *gorm.DB) BaseRepository {
	return &mapItemRepo{
		BaseRepo: &BaseRepo{db: tx},
	}
}
