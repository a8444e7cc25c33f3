package repository

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/models"
	"gorm.io/gorm"
)

// 名称冲突时返回的错误信息
const itemNameConflict = "An item with this name already exists"

// ItemFilter 物品目录过滤条件
type ItemFilter struct {
	Type        string
	Rarity      string
	Category    string
	SubCategory string
	IsActive    *bool
	Search      string
}

// ItemRepository 物品目录仓储接口
type ItemRepository interface {
	BaseRepository
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Item, error)
	FindByName(ctx context.Context, name string) (*models.Item, error)
	NameTaken(ctx context.Context, name string, excludeID uint) (bool, error)
	List(ctx context.Context, filter ItemFilter, pagination *Pagination) ([]*models.Item, error)
	SetActive(ctx context.Context, id uint, active bool) error
}

// itemRepo 物品目录仓储实现
type itemRepo struct {
	*BaseRepo
}

// NewItemRepository 创建物品目录仓储
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{
		BaseRepo: &BaseRepo{db: db},
	}
}

// Create 创建物品
func (r *itemRepo) Create(ctx context.Context, item *models.Item) error {
	return writeErr(r.db.WithContext(ctx).Create(item).Error, errors.ErrDatabaseInsert, itemNameConflict)
}

// Update 保存物品
func (r *itemRepo) Update(ctx context.Context, item *models.Item) error {
	return writeErr(r.db.WithContext(ctx).Save(item).Error, errors.ErrDatabaseUpdate, itemNameConflict)
}

// Delete 删除物品
func (r *itemRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Item{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrDatabaseDelete)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("Item not found")
	}
	return nil
}

// FindByID 根据ID查找物品
func (r *itemRepo) FindByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, findErr(err, "Item")
	}
	return &item, nil
}

// FindByName 根据名称查找物品，不存在时返回 nil, nil
func (r *itemRepo) FindByName(ctx context.Context, name string) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&item).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDatabaseQuery)
	}
	return &item, nil
}

// NameTaken 名称是否已被其他物品使用
func (r *itemRepo) NameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.Item{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, errors.ErrDatabaseQuery)
	}
	return count > 0, nil
}

// List 物品列表，按名称排序
func (r *itemRepo) List(ctx context.Context, filter ItemFilter, pagination *Pagination) ([]*models.Item, error) {
	query := r.db.WithContext(ctx).Model(&models.Item{})
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Rarity != "" {
		query = query.Where("rarity = ?", filter.Rarity)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.SubCategory != "" {
		query = query.Where("sub_category = ?", filter.SubCategory)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	if pagination != nil {
		if err := query.Count(&pagination.Total).Error; err != nil {
			return nil, errors.Wrap(err, errors.ErrDatabaseQuery)
		}
	}

	var items []*models.Item
	err := query.Scopes(Paginate(pagination)).Order("name ASC").Find(&items).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDatabaseQuery)
	}
	return items, nil
}

// SetActive 设置物品启用状态
func (r *itemRepo) SetActive(ctx context.Context, id uint, active bool) error {
	err := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ?", id).
		Update("is_active", active).Error
	if err != nil {
		return errors.Wrap(err, errors.ErrDatabaseUpdate)
	}
	return nil
}

// WithTx 使用事务
func (r *itemRepo) WithTx(tx *gorm.DB) BaseRepository {
	return &itemRepo{
		BaseRepo: &BaseRepo{db: tx},
	}
}
