package repository

import (
	"context"

	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// InteractableFilter 交互对象过滤条件
type InteractableFilter struct {
	GameID uint
	Active *bool
	CoordFilter
}

// InteractableRepository 交互对象仓储接口
type InteractableRepository interface {
	BaseRepository
	Create(ctx context.Context, it *models.Interactable) error
	Update(ctx context.Context, it *models.Interactable) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Interactable, error)
	List(ctx context.Context, filter InteractableFilter, pagination *Pagination) ([]*models.Interactable, error)
	RecordUse(ctx context.Context, it *models.Interactable, tick int, record models.InteractionRecord) (bool, error)
}

// interactableRepo 交互对象仓储实现
type interactableRepo struct {
	*BaseRepo
}

// NewInteractableRepository 创建交互对象仓储
func NewInteractableRepository(db *gorm.DB) InteractableRepository {
	return &interactableRepo{
		BaseRepo: &BaseRepo{db: db},
	}
}

// Create 创建交互对象
func (r *interactableRepo) Create(ctx context.Context, it *models.Interactable) error {
	return writeErr(r.db.WithContext(ctx).Create(it).Error, errors.ErrDatabaseInsert, "Interactable already exists")
}

// Update 保存交互对象，使用次数与交互历史只能由 RecordUse 写入
func (r *interactableRepo) Update(ctx context.Context, it *models.Interactable) error {
	err := r.db.WithContext(ctx).
		Omit("current_uses", "last_used_tick", "interactions").
		Save(it).Error
	return writeErr(err, errors.ErrDatabaseUpdate, "Interactable already exists")
}

// Delete 删除交互对象
func (r *interactableRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Interactable{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrDatabaseDelete)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("Interactable not found")
	}
	return nil
}

// FindByID 根据ID查找交互对象
func (r *interactableRepo) FindByID(ctx context.Context, id uint) (*models.Interactable, error) {
	var it models.Interactable
	if err := r.db.WithContext(ctx).First(&it, id).Error; err != nil {
		return nil, findErr(err, "Interactable")
	}
	return &it, nil
}

// List 交互对象列表
func (r *interactableRepo) List(ctx context.Context, filter InteractableFilter, pagination *Pagination) ([]*models.Interactable, error) {
	query := r.db.WithContext(ctx).Model(&models.Interactable{})
	if filter.GameID != 0 {
		query = query.Where("game_id = ?", filter.GameID)
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}
	query = filter.apply(query, "position_q", "position_r")

	if pagination != nil {
		if err := query.Count(&pagination.Total).Error; err != nil {
			return nil, errors.Wrap(err, errors.ErrDatabaseQuery)
		}
	}

	var list []*models.Interactable
	err := query.Scopes(Paginate(pagination)).Order("id ASC").Find(&list).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDatabaseQuery)
	}
	return list, nil
}

// RecordUse 记录一次使用。以读取时的 current_uses 作为条件，
// 期间被其他请求抢先使用时返回 false，调用方应重新读取后再判断
func (r *interactableRepo) RecordUse(ctx context.Context, it *models.Interactable, tick int, record models.InteractionRecord) (bool, error) {
	history := append(it.Interactions.Data(), record)
	interactions := datatypes.NewJSONType(history)

	result := r.db.WithContext(ctx).
		Model(&models.Interactable{}).
		Where("id = ? AND current_uses = ?", it.ID, it.CurrentUses).
		Updates(map[string]interface{}{
			"current_uses":   it.CurrentUses + 1,
			"last_used_tick": tick,
			"interactions":   interactions,
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, errors.ErrDatabaseUpdate)
	}
	if result.RowsAffected != 1 {
		return false, nil
	}

	it.CurrentUses++
	it.LastUsedTick = &tick
	it.Interactions = interactions
	return true, nil
}

// WithTx 使用事务
func (r *interactableRepo) WithTx(tx *gorm.DB) BaseRepository {
	return &interactableRepo{
		BaseRepo: &BaseRepo{db: tx},
	}
}
