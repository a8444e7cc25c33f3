package service

import (
	"context"
	"strings"
	"time"

	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/logger"
	"github.com/wfunc/hexrealm/internal/models"
	"github.com/wfunc/hexrealm/internal/repository"
	"github.com/wfunc/hexrealm/internal/rules"
	"github.com/wfunc/hexrealm/internal/schema"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// interactResultSuccess 交互成功时写入历史的结果
const interactResultSuccess = "success"

// interactableService 交互对象服务实现
type interactableService struct {
	repos  *repository.Manager
	helper *repository.TransactionHelper
	log    *zap.Logger
}

// NewInteractableService 创建交互对象服务
func NewInteractableService(repos *repository.Manager, helper *repository.TransactionHelper, log *zap.Logger) InteractableService {
	return &interactableService{repos: repos, helper: helper, log: log}
}

// Create 在地块上创建交互对象
func (s *interactableService) Create(ctx context.Context, req *CreateInteractableRequest) (*models.Interactable, error) {
	game, err := requireGame(ctx, s.repos.Game(), req.Game)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.Validation("Interactable name is required")
	}
	if err := rules.ValidateInteractableType(req.InteractableType); err != nil {
		return nil, err
	}
	state := req.State
	if state == "" {
		state = "active"
	}
	if err := rules.ValidateInteractableState(state); err != nil {
		return nil, err
	}

	lootTable := req.LootTable
	if lootTable == nil {
		lootTable = []models.LootEntry{}
	}
	if err := validateJSON(schema.LootTable, "loot_table", lootTable); err != nil {
		return nil, err
	}

	maxUses := intOr(req.MaxUses, 1)
	if maxUses < 0 || req.CooldownTicks < 0 || req.RequiredLevel < 0 {
		return nil, errors.Validation("max_uses, cooldown_ticks and required_level cannot be negative")
	}

	at := models.Coord{Q: req.PositionQ, R: req.PositionR}
	if _, err := requireTile(ctx, s.repos.HexTile(), game.ID, at, "Interactable must be placed on a valid tile"); err != nil {
		return nil, err
	}

	requiredItems := req.RequiredItems
	if requiredItems == nil {
		requiredItems = []string{}
	}
	data := datatypes.JSONMap{}
	for k, v := range req.Data {
		data[k] = v
	}

	it := &models.Interactable{
		GameID:           game.ID,
		InteractableType: req.InteractableType,
		InteractableID:   req.InteractableID,
		Name:             name,
		PositionQ:        at.Q,
		PositionR:        at.R,
		State:            state,
		IsActive:         true,
		RequiredLevel:    req.RequiredLevel,
		MaxUses:          maxUses,
		CooldownTicks:    req.CooldownTicks,
		RequiredItems:    datatypes.NewJSONType(requiredItems),
		LootTable:        datatypes.NewJSONType(lootTable),
		Interactions:     datatypes.NewJSONType([]models.InteractionRecord{}),
		Data:             data,
	}
	if req.IsActive != nil {
		it.IsActive = *req.IsActive
	}
	if err := s.repos.Interactable().Create(ctx, it); err != nil {
		return nil, err
	}

	it.CanUse = rules.CanUse(it, game.CurrentTick)
	return it, nil
}

// Get 获取交互对象，can_use 按所属游戏的当前回合计算
func (s *interactableService) Get(ctx context.Context, id uint) (*models.Interactable, error) {
	it, err := s.repos.Interactable().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.fillCanUse(ctx, []*models.Interactable{it}); err != nil {
		return nil, err
	}
	return it, nil
}

// List 交互对象列表
func (s *interactableService) List(ctx context.Context, filter repository.InteractableFilter, pagination *repository.Pagination) ([]*models.Interactable, error) {
	list, err := s.repos.Interactable().List(ctx, filter, pagination)
	if err != nil {
		return nil, err
	}
	if err := s.fillCanUse(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Update 更新交互对象
func (s *interactableService) Update(ctx context.Context, id uint, req *UpdateInteractableRequest) (*models.Interactable, error) {
	it, err := s.repos.Interactable().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PositionQ != nil || req.PositionR != nil {
		at := models.Coord{Q: intOr(req.PositionQ, it.PositionQ), R: intOr(req.PositionR, it.PositionR)}
		if _, err := requireTile(ctx, s.repos.HexTile(), it.GameID, at, "Interactable must be placed on a valid tile"); err != nil {
			return nil, err
		}
		it.PositionQ = at.Q
		it.PositionR = at.R
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.Validation("Interactable name is required")
		}
		it.Name = name
	}
	if req.State != nil {
		if err := rules.ValidateInteractableState(*req.State); err != nil {
			return nil, err
		}
		it.State = *req.State
	}
	if req.IsActive != nil {
		it.IsActive = *req.IsActive
	}
	if req.RequiredItems != nil {
		it.RequiredItems = datatypes.NewJSONType(*req.RequiredItems)
	}
	if req.LootTable != nil {
		if err := validateJSON(schema.LootTable, "loot_table", *req.LootTable); err != nil {
			return nil, err
		}
		it.LootTable = datatypes.NewJSONType(*req.LootTable)
	}
	it.RequiredLevel = intOr(req.RequiredLevel, it.RequiredLevel)
	it.MaxUses = intOr(req.MaxUses, it.MaxUses)
	it.CooldownTicks = intOr(req.CooldownTicks, it.CooldownTicks)
	if it.MaxUses < 0 || it.CooldownTicks < 0 || it.RequiredLevel < 0 {
		return nil, errors.Validation("max_uses, cooldown_ticks and required_level cannot be negative")
	}
	if req.Data != nil {
		it.Data = datatypes.JSONMap(req.Data)
	}

	if err := s.repos.Interactable().Update(ctx, it); err != nil {
		return nil, err
	}
	if err := s.fillCanUse(ctx, []*models.Interactable{it}); err != nil {
		return nil, err
	}
	return it, nil
}

// Delete 删除交互对象
func (s *interactableService) Delete(ctx context.Context, id uint) error {
	return s.repos.Interactable().Delete(ctx, id)
}

// Interact 角色与交互对象交互
//
// 使用次数按读取时的 current_uses 条件更新，被并发请求抢先时重新读取并再次校验，
// 因此不会超过 max_uses。
func (s *interactableService) Interact(ctx context.Context, id uint, req *InteractRequest) (*models.Interactable, error) {
	if req.CharacterID == nil {
		return nil, errors.Validation("character_id is required")
	}

	var (
		it   *models.Interactable
		tick int
	)
	err := s.helper.RunWithRetry(ctx, maxConflictRetries, func(tx *repository.Transaction) error {
		var err error
		it, err = tx.Interactable().FindByID(ctx, id)
		if err != nil {
			return err
		}
		game, err := tx.Game().FindByID(ctx, it.GameID)
		if err != nil {
			return err
		}
		character, err := tx.Character().FindInGame(ctx, *req.CharacterID, it.GameID)
		if err != nil {
			return err
		}

		tick = game.CurrentTick
		if err := rules.CheckInteract(it, character); err != nil {
			return err
		}

		ok, err := tx.Interactable().RecordUse(ctx, it, tick, models.InteractionRecord{
			CharacterID:   character.ID,
			CharacterName: character.Name,
			Tick:          tick,
			Timestamp:     time.Now(),
			Result:        interactResultSuccess,
		})
		if err != nil {
			return err
		}
		if !ok {
			return repository.ErrConflict
		}
		return nil
	})
	if err != nil {
		return nil, conflictErr(err, "Interactable was used by another request")
	}

	it.CanUse = rules.CanUse(it, tick)
	logger.LogGameEvent("interacted", it.GameID,
		zap.Uint("interactable_id", it.ID),
		zap.Uint("character_id", *req.CharacterID),
		zap.Int("tick", tick),
	)
	return it, nil
}

// fillCanUse 按各自游戏的当前回合填充 can_use
func (s *interactableService) fillCanUse(ctx context.Context, list []*models.Interactable) error {
	ticks := make(map[uint]int)
	for _, gameID := range uniqueIDs(list, func(it *models.Interactable) uint { return it.GameID }) {
		game, err := s.repos.Game().FindByID(ctx, gameID)
		if err != nil {
			return err
		}
		ticks[gameID] = game.CurrentTick
	}
	for _, it := range list {
		it.CanUse = rules.CanUse(it, ticks[it.GameID])
	}
	return nil
}
