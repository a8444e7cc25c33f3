package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/models"
	"github.com/wfunc/hexrealm/internal/repository"
	"github.com/wfunc/hexrealm/internal/rules"
	"gorm.io/datatypes"
)

// mapItemService 地图物品服务实现
type mapItemService struct {
	repos *repository.Manager
}

// NewMapItemService 创建地图物品服务
func NewMapItemService(repos *repository.Manager) MapItemService {
	return &mapItemService{repos: repos}
}

// Create 在地块上放置物品
func (s *mapItemService) Create(ctx context.Context, req *CreateMapItemRequest) (*models.MapItem, error) {
	game, err := requireGame(ctx, s.repos.Game(), req.Game)
	if err != nil {
		return nil, err
	}
	if req.ItemType == "" {
		return nil, errors.Validation("Item type is required")
	}

	rarity := req.Rarity
	if rarity == "" {
		rarity = "common"
	}
	if err := rules.ValidateMapItemRarity(rarity); err != nil {
		return nil, err
	}
	quantity := intOr(req.Quantity, 1)
	if quantity < 1 {
		return nil, errors.Validation("Quantity must be at least 1")
	}

	at := models.Coord{Q: req.PositionQ, R: req.PositionR}
	if _, err := requireTile(ctx, s.repos.HexTile(), game.ID, at, "Item must be placed on a valid tile"); err != nil {
		return nil, err
	}

	itemID := req.ItemID
	if itemID == "" {
		itemID = uuid.NewString()
	}
	var data models.ItemData
	if req.ItemData != nil {
		data = *req.ItemData
	}

	item := &models.MapItem{
		GameID:        game.ID,
		ItemType:      req.ItemType,
		ItemID:        itemID,
		PositionQ:     at.Q,
		PositionR:     at.R,
		Quantity:      quantity,
		Rarity:        rarity,
		IsAvailable:   true,
		IsLocked:      req.IsLocked,
		SpawnedAtTick: intOr(req.SpawnedAtTick, game.CurrentTick),
		DespawnAtTick: req.DespawnAtTick,
		SourceType:    req.SourceType,
		SourceID:      req.SourceID,
		ItemData:      datatypes.NewJSONType(data),
	}
	if err := s.repos.MapItem().Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Get 获取地图物品
func (s *mapItemService) Get(ctx context.Context, id uint) (*models.MapItem, error) {
	return s.repos.MapItem().FindByID(ctx, id)
}

// List 地图物品列表
func (s *mapItemService) List(ctx context.Context, filter repository.MapItemFilter, pagination *repository.Pagination) ([]*models.MapItem, error) {
	return s.repos.MapItem().List(ctx, filter, pagination)
}

// Update 更新地图物品，可用状态与拾取信息不可修改
func (s *mapItemService) Update(ctx context.Context, id uint, req *UpdateMapItemRequest) (*models.MapItem, error) {
	item, err := s.repos.MapItem().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PositionQ != nil || req.PositionR != nil {
		at := models.Coord{Q: intOr(req.PositionQ, item.PositionQ), R: intOr(req.PositionR, item.PositionR)}
		if _, err := requireTile(ctx, s.repos.HexTile(), item.GameID, at, "Item must be placed on a valid tile"); err != nil {
			return nil, err
		}
		item.PositionQ = at.Q
		item.PositionR = at.R
	}
	if req.ItemType != nil {
		if *req.ItemType == "" {
			return nil, errors.Validation("Item type is required")
		}
		item.ItemType = *req.ItemType
	}
	if req.Quantity != nil {
		if *req.Quantity < 1 {
			return nil, errors.Validation("Quantity must be at least 1")
		}
		item.Quantity = *req.Quantity
	}
	if req.Rarity != nil {
		if err := rules.ValidateMapItemRarity(*req.Rarity); err != nil {
			return nil, err
		}
		item.Rarity = *req.Rarity
	}
	if req.IsLocked != nil {
		item.IsLocked = *req.IsLocked
	}
	if req.DespawnAtTick != nil {
		item.DespawnAtTick = req.DespawnAtTick
	}
	if req.SourceType != nil {
		item.SourceType = *req.SourceType
	}
	if req.SourceID != nil {
		item.SourceID = *req.SourceID
	}
	if req.ItemData != nil {
		item.ItemData = datatypes.NewJSONType(*req.ItemData)
	}

	if err := s.repos.MapItem().Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete 删除地图物品
func (s *mapItemService) Delete(ctx context.Context, id uint) error {
	return s.repos.MapItem().Delete(ctx, id)
}
