package repository

import (
	"context"

	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/models"
	"gorm.io/gorm"
)

// CharacterFilter 角色过滤条件，默认不含死亡角色
type CharacterFilter struct {
	GameID      uint
	OwnerID     uint
	IncludeDead bool
	CoordFilter
}

// CharacterRepository 角色仓储接口
type CharacterRepository interface {
	BaseRepository
	Create(ctx context.Context, character *models.Character) error
	Update(ctx context.Context, character *models.Character) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Character, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*models.Character, error)
	FindInGame(ctx context.Context, id, gameID uint) (*models.Character, error)
	List(ctx context.Context, filter CharacterFilter, pagination *Pagination) ([]*models.Character, error)
}

// characterRepo 角色仓储实现
type characterRepo struct {
	*BaseRepo
}

// NewCharacterRepository 创建角色仓储
func NewCharacterRepository(db *gorm.DB) CharacterRepository {
	return &characterRepo{
		BaseRepo: &BaseRepo{db: db},
	}
}

// Create 创建角色
func (r *characterRepo) Create(ctx context.Context, character *models.Character) error {
	return writeErr(r.db.WithContext(ctx).Create(character).Error, errors.ErrDatabaseInsert, "Character already exists")
}

// Update 保存角色
func (r *characterRepo) Update(ctx context.Context, character *models.Character) error {
	return writeErr(r.db.WithContext(ctx).Save(character).Error, errors.ErrDatabaseUpdate, "Character already exists")
}

// Delete 删除角色，已拾取物品的 collected_by 置空
func (r *characterRepo) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.MapItem{}).
			Where("collected_by_id = ?", id).
			Update("collected_by_id", nil).Error
		if err != nil {
			return err
		}

		result := tx.Delete(&models.Character{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.NotFound("Character not found")
		}
		return nil
	})
	return writeErr(err, errors.ErrDatabaseDelete, "")
}

// FindByID 根据ID查找角色
func (r *characterRepo) FindByID(ctx context.Context, id uint) (*models.Character, error) {
	var character models.Character
	if err := r.db.WithContext(ctx).First(&character, id).Error; err != nil {
		return nil, findErr(err, "Character")
	}
	return &character, nil
}

// FindByIDForUpdate 加行锁读取角色，需在事务中调用
func (r *characterRepo) FindByIDForUpdate(ctx context.Context, id uint) (*models.Character, error) {
	var character models.Character
	if err := forUpdate(r.db.WithContext(ctx)).First(&character, id).Error; err != nil {
		return nil, findErr(err, "Character")
	}
	return &character, nil
}

// FindInGame 查找指定游戏中的角色
func (r *characterRepo) FindInGame(ctx context.Context, id, gameID uint) (*models.Character, error) {
	var character models.Character
	err := r.db.WithContext(ctx).
		Where("id = ? AND game_id = ?", id, gameID).
		First(&character).Error
	if err != nil {
		return nil, findErr(err, "Character")
	}
	return &character, nil
}

// List 角色列表
func (r *characterRepo) List(ctx context.Context, filter CharacterFilter, pagination *Pagination) ([]*models.Character, error) {
	query := r.db.WithContext(ctx).Model(&models.Character{})
	if filter.GameID != 0 {
		query = query.Where("game_id = ?", filter.GameID)
	}
	if filter.OwnerID != 0 {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if !filter.IncludeDead {
		query = query.Where("status <> ?", models.CharacterStatusDead)
	}
	query = filter.apply(query, "position_q", "position_r")

	if pagination != nil {
		if err := query.Count(&pagination.Total).Error; err != nil {
			return nil, errors.Wrap(err, errors.ErrDatabaseQuery)
		}
	}

	var characters []*models.Character
	err := query.Scopes(Paginate(pagination)).Order("id ASC").Find(&characters).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDatabaseQuery)
	}
	return characters, nil
}

// WithTx 使用事务
func (r *characterRepo) WithTx(tx *gorm.DB) BaseRepository {
	return &characterRepo{
		BaseRepo: &BaseRepo{db: tx},
	}
}
