package repository

import (
	"context"
	stderrors "errors"

	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/hexgrid"
	"github.com/wfunc/hexrealm/internal/models"
	"gorm.io/gorm"
)

// 坐标冲突时返回的错误信息
const tileConflict = "A tile already exists at these coordinates"

// HexTileFilter 地块过滤条件
type HexTileFilter struct {
	GameID  uint
	Terrain string
	CoordFilter
}

// HexTileRepository 地块仓储接口
type HexTileRepository interface {
	BaseRepository
	Create(ctx context.Context, tile *models.HexTile) error
	Update(ctx context.Context, tile *models.HexTile) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.HexTile, error)
	FindAt(ctx context.Context, gameID uint, at hexgrid.Coord) (*models.HexTile, error)
	ExistsAt(ctx context.Context, gameID uint, at hexgrid.Coord, excludeID uint) (bool, error)
	List(ctx context.Context, filter HexTileFilter, pagination *Pagination) ([]*models.HexTile, error)
	InBox(ctx context.Context, gameID uint, center hexgrid.Coord, radius int) ([]*models.HexTile, error)
}

// hexTileRepo 地块仓储实现
type hexTileRepo struct {
	*BaseRepo
}

// NewHexTileRepository 创建地块仓储
func NewHexTileRepository(db *gorm.DB) HexTileRepository {
	return &hexTileRepo{
		BaseRepo: &BaseRepo{db: db},
	}
}

// Create 创建地块
func (r *hexTileRepo) Create(ctx context.Context, tile *models.HexTile) error {
	return writeErr(r.db.WithContext(ctx).Create(tile).Error, errors.ErrDatabaseInsert, tileConflict)
}

// Update 保存地块
func (r *hexTileRepo) Update(ctx context.Context, tile *models.HexTile) error {
	return writeErr(r.db.WithContext(ctx).Save(tile).Error, errors.ErrDatabaseUpdate, tileConflict)
}

// Delete 删除地块
func (r *hexTileRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.HexTile{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrDatabaseDelete)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("Hex tile not found")
	}
	return nil
}

// FindByID 根据ID查找地块
func (r *hexTileRepo) FindByID(ctx context.Context, id uint) (*models.HexTile, error) {
	var tile models.HexTile
	if err := r.db.WithContext(ctx).First(&tile, id).Error; err != nil {
		return nil, findErr(err, "Hex tile")
	}
	return &tile, nil
}

// FindAt 按坐标查找地块，不存在时返回 nil, nil
func (r *hexTileRepo) FindAt(ctx context.Context, gameID uint, at hexgrid.Coord) (*models.HexTile, error) {
	var tile models.HexTile
	err := r.db.WithContext(ctx).
		Where("game_id = ? AND q = ? AND r = ?", gameID, at.Q, at.R).
		First(&tile).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDatabaseQuery)
	}
	return &tile, nil
}

// ExistsAt 坐标上是否已有地块，excludeID 非零时排除该地块自身
func (r *hexTileRepo) ExistsAt(ctx context.Context, gameID uint, at hexgrid.Coord, excludeID uint) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&models.HexTile{}).
		Where("game_id = ? AND q = ? AND r = ?", gameID, at.Q, at.R)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, errors.ErrDatabaseQuery)
	}
	return count > 0, nil
}

// List 地块列表，按坐标排序
func (r *hexTileRepo) List(ctx context.Context, filter HexTileFilter, pagination *Pagination) ([]*models.HexTile, error) {
	query := r.db.WithContext(ctx).Model(&models.HexTile{})
	if filter.GameID != 0 {
		query = query.Where("game_id = ?", filter.GameID)
	}
	if filter.Terrain != "" {
		query = query.Where("terrain_type = ?", filter.Terrain)
	}
	query = filter.apply(query, "q", "r")

	if pagination != nil {
		if err := query.Count(&pagination.Total).Error; err != nil {
			return nil, errors.Wrap(err, errors.ErrDatabaseQuery)
		}
	}

	var tiles []*models.HexTile
	err := query.Scopes(Paginate(pagination)).
		Order("game_id ASC").
		Order("q ASC").
		Order("r ASC").
		Find(&tiles).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDatabaseQuery)
	}
	return tiles, nil
}

// InBox 以 center 为中心、|Δq|<=radius 且 |Δr|<=radius 的地块
func (r *hexTileRepo) InBox(ctx context.Context, gameID uint, center hexgrid.Coord, radius int) ([]*models.HexTile, error) {
	var tiles []*models.HexTile
	err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Where("q BETWEEN ? AND ?", center.Q-radius, center.Q+radius).
		Where("r BETWEEN ? AND ?", center.R-radius, center.R+radius).
		Order("q ASC").
		Order("r ASC").
		Find(&tiles).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDatabaseQuery)
	}
	return tiles, nil
}

// WithTx 使用事务
func (r *hexTileRepo) WithTx(tx *gorm.DB) BaseRepository {
	return &hexTileRepo{
		BaseRepo: &BaseRepo{db: tx},
	}
}
