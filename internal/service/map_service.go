package service

import (
	"context"

	"github.com/wfunc/hexrealm/internal/config"
	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/hexgrid"
	"github.com/wfunc/hexrealm/internal/models"
	"github.com/wfunc/hexrealm/internal/repository"
	"github.com/wfunc/hexrealm/internal/rules"
	"gorm.io/datatypes"
)

// mapService 地图服务实现
type mapService struct {
	repos *repository.Manager
	rules *gameRules
}

// NewMapService 创建地图服务
func NewMapService(repos *repository.Manager, rules *gameRules) MapService {
	return &mapService{repos: repos, rules: rules}
}

// CreateTile 创建地块，同一游戏内坐标唯一
func (s *mapService) CreateTile(ctx context.Context, req *CreateTileRequest) (*models.HexTile, error) {
	game, err := requireGame(ctx, s.repos.Game(), req.Game)
	if err != nil {
		return nil, err
	}
	if err := rules.ValidateTerrain(req.TerrainType); err != nil {
		return nil, err
	}

	at := hexgrid.Coord{Q: req.Q, R: req.R}
	if err := s.checkFree(ctx, game.ID, at, 0); err != nil {
		return nil, err
	}

	tile := &models.HexTile{
		GameID:      game.ID,
		Q:           req.Q,
		R:           req.R,
		TerrainType: req.TerrainType,
		Elevation:   req.Elevation,
		IsPassable:  true,
		Visibility:  datatypes.NewJSONType(map[uint]models.TileVisibility{}),
		Structure:   datatypes.NewJSONType(req.Structure),
		Effects:     datatypes.NewJSONType([]models.TileEffect{}),
	}
	if req.IsPassable != nil {
		tile.IsPassable = *req.IsPassable
	}
	if req.Visibility != nil {
		tile.Visibility = datatypes.NewJSONType(req.Visibility)
	}
	if req.Effects != nil {
		tile.Effects = datatypes.NewJSONType(req.Effects)
	}

	if err := s.repos.HexTile().Create(ctx, tile); err != nil {
		return nil, err
	}
	return tile, nil
}

// GetTile 获取地块
func (s *mapService) GetTile(ctx context.Context, id uint) (*models.HexTile, error) {
	return s.repos.HexTile().FindByID(ctx, id)
}

// ListTiles 地块列表
func (s *mapService) ListTiles(ctx context.Context, filter repository.HexTileFilter, pagination *repository.Pagination) ([]*models.HexTile, error) {
	return s.repos.HexTile().List(ctx, filter, pagination)
}

// UpdateTile 更新地块，移动到已占用的坐标会失败
func (s *mapService) UpdateTile(ctx context.Context, id uint, req *UpdateTileRequest) (*models.HexTile, error) {
	tile, err := s.repos.HexTile().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	moved := false
	if req.Q != nil && *req.Q != tile.Q {
		tile.Q = *req.Q
		moved = true
	}
	if req.R != nil && *req.R != tile.R {
		tile.R = *req.R
		moved = true
	}
	if moved {
		if err := s.checkFree(ctx, tile.GameID, hexgrid.Coord{Q: tile.Q, R: tile.R}, tile.ID); err != nil {
			return nil, err
		}
	}

	if req.TerrainType != nil {
		if err := rules.ValidateTerrain(*req.TerrainType); err != nil {
			return nil, err
		}
		tile.TerrainType = *req.TerrainType
	}
	if req.Elevation != nil {
		tile.Elevation = *req.Elevation
	}
	if req.IsPassable != nil {
		tile.IsPassable = *req.IsPassable
	}
	if req.Visibility != nil {
		tile.Visibility = datatypes.NewJSONType(req.Visibility)
	}
	if req.Structure != nil {
		tile.Structure = datatypes.NewJSONType(req.Structure)
	}
	if req.Effects != nil {
		tile.Effects = datatypes.NewJSONType(*req.Effects)
	}

	if err := s.repos.HexTile().Update(ctx, tile); err != nil {
		return nil, err
	}
	return tile, nil
}

// DeleteTile 删除地块
func (s *mapService) DeleteTile(ctx context.Context, id uint) error {
	return s.repos.HexTile().Delete(ctx, id)
}

// Nearby 查询中心坐标附近的地块
//
// box 模式按 |Δq|<=radius 且 |Δr|<=radius 过滤；hex 模式先用包围盒缩小范围，
// 再按六边形距离过滤。
func (s *mapService) Nearby(ctx context.Context, query NearbyQuery) ([]*models.HexTile, error) {
	if query.Game == nil || query.Q == nil || query.R == nil {
		return nil, errors.Validation("game, q, and r parameters are required")
	}

	cfg := s.rules.get()
	radius := intOr(query.Radius, cfg.DefaultRadius)
	if radius < 0 {
		return nil, errors.Validation("radius must be a non-negative integer")
	}
	if cfg.MaxRadius > 0 && radius > cfg.MaxRadius {
		return nil, errors.Newf(errors.ErrInvalidParam, "radius cannot exceed %d", cfg.MaxRadius)
	}

	center := hexgrid.Coord{Q: *query.Q, R: *query.R}
	tiles, err := s.repos.HexTile().InBox(ctx, *query.Game, center, radius)
	if err != nil {
		return nil, err
	}
	if cfg.NearbyMode != config.NearbyModeHex {
		return tiles, nil
	}

	result := tiles[:0]
	for _, tile := range tiles {
		if hexgrid.Within(center, hexgrid.Coord{Q: tile.Q, R: tile.R}, radius) {
			result = append(result, tile)
		}
	}
	return result, nil
}

// checkFree 坐标上不能已有其他地块
func (s *mapService) checkFree(ctx context.Context, gameID uint, at hexgrid.Coord, excludeID uint) error {
	exists, err := s.repos.HexTile().ExistsAt(ctx, gameID, at, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return errors.New(errors.ErrTileOccupied, "A tile already exists at these coordinates")
	}
	return nil
}
