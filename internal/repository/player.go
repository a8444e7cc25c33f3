package repository

import (
	"context"

	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/models"
	"gorm.io/gorm"
)

// PlayerFilter 玩家列表过滤条件
type PlayerFilter struct {
	GameID uint
	UserID uint
}

// PlayerRepository 玩家仓储接口
type PlayerRepository interface {
	BaseRepository
	Create(ctx context.Context, player *models.Player) error
	Update(ctx context.Context, player *models.Player) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Player, error)
	ExistsForUser(ctx context.Context, gameID, userID uint) (bool, error)
	List(ctx context.Context, filter PlayerFilter, pagination *Pagination) ([]*models.Player, error)
	ListByGame(ctx context.Context, gameID uint) ([]*models.Player, error)
	CountActive(ctx context.Context, gameID uint) (int64, error)
	CountActiveByGames(ctx context.Context, gameIDs []uint) (map[uint]int64, error)
	CountAliveCharacters(ctx context.Context, playerIDs []uint) (map[uint]int64, error)
}

// playerRepo 玩家仓储实现
type playerRepo struct {
	*BaseRepo
}

// NewPlayerRepository 创建玩家仓储
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepo{
		BaseRepo: &BaseRepo{db: db},
	}
}

// Create 创建玩家，同一用户在同一游戏只能有一个玩家
func (r *playerRepo) Create(ctx context.Context, player *models.Player) error {
	return writeErr(r.db.WithContext(ctx).Create(player).Error, errors.ErrDatabaseInsert, "You already have a player in this game")
}

// Update 保存玩家
func (r *playerRepo) Update(ctx context.Context, player *models.Player) error {
	return writeErr(r.db.WithContext(ctx).Save(player).Error, errors.ErrDatabaseUpdate, "You already have a player in this game")
}

// Delete 删除玩家及其角色
func (r *playerRepo) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		characters := tx.Model(&models.Character{}).Select("id").Where("owner_id = ?", id)
		err := tx.Model(&models.MapItem{}).
			Where("collected_by_id IN (?)", characters).
			Update("collected_by_id", nil).Error
		if err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", id).Delete(&models.Character{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Player{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.NotFound("Player not found")
		}
		return nil
	})
	return writeErr(err, errors.ErrDatabaseDelete, "")
}

// FindByID 根据ID查找玩家
func (r *playerRepo) FindByID(ctx context.Context, id uint) (*models.Player, error) {
	var player models.Player
	if err := r.db.WithContext(ctx).First(&player, id).Error; err != nil {
		return nil, findErr(err, "Player")
	}
	return &player, nil
}

// ExistsForUser 用户在游戏中是否已有玩家
func (r *playerRepo) ExistsForUser(ctx context.Context, gameID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Player{}).
		Where("game_id = ? AND user_id = ?", gameID, userID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, errors.ErrDatabaseQuery)
	}
	return count > 0, nil
}

// List 玩家列表
func (r *playerRepo) List(ctx context.Context, filter PlayerFilter, pagination *Pagination) ([]*models.Player, error) {
	query := r.db.WithContext(ctx).Model(&models.Player{})
	if filter.GameID != 0 {
		query = query.Where("game_id = ?", filter.GameID)
	}
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}

	if pagination != nil {
		if err := query.Count(&pagination.Total).Error; err != nil {
			return nil, errors.Wrap(err, errors.ErrDatabaseQuery)
		}
	}

	var players []*models.Player
	err := query.Scopes(Paginate(pagination)).Order("id ASC").Find(&players).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDatabaseQuery)
	}
	return players, nil
}

// ListByGame 游戏内全部玩家
func (r *playerRepo) ListByGame(ctx context.Context, gameID uint) ([]*models.Player, error) {
	return r.List(ctx, PlayerFilter{GameID: gameID}, nil)
}

// CountActive 游戏内活跃玩家数
func (r *playerRepo) CountActive(ctx context.Context, gameID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Player{}).
		Where("game_id = ? AND is_active = ?", gameID, true).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrDatabaseQuery)
	}
	return count, nil
}

type groupCount struct {
	GroupID uint
	Total   int64
}

// CountActiveByGames 批量统计活跃玩家数，没有玩家的游戏不出现在结果中
func (r *playerRepo) CountActiveByGames(ctx context.Context, gameIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(gameIDs))
	if len(gameIDs) == 0 {
		return counts, nil
	}

	var rows []groupCount
	err := r.db.WithContext(ctx).
		Model(&models.Player{}).
		Select("game_id AS group_id, COUNT(*) AS total").
		Where("game_id IN ? AND is_active = ?", gameIDs, true).
		Group("game_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDatabaseQuery)
	}
	for _, row := range rows {
		counts[row.GroupID] = row.Total
	}
	return counts, nil
}

// CountAliveCharacters 批量统计玩家的存活角色数
func (r *playerRepo) CountAliveCharacters(ctx context.Context, playerIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(playerIDs))
	if len(playerIDs) == 0 {
		return counts, nil
	}

	var rows []groupCount
	err := r.db.WithContext(ctx).
		Model(&models.Character{}).
		Select("owner_id AS group_id, COUNT(*) AS total").
		Where("owner_id IN ? AND status <> ?", playerIDs, models.CharacterStatusDead).
		Group("owner_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDatabaseQuery)
	}
	for _, row := range rows {
		counts[row.GroupID] = row.Total
	}
	return counts, nil
}

// WithTx 使用事务
func (r *playerRepo) WithTx(tx *gorm.DB) BaseRepository {
	return &playerRepo{
		BaseRepo: &BaseRepo{db: tx},
	}
}
