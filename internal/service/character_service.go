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
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// 角色默认属性
const (
	defaultMaxHealth         = 100
	defaultMaxStamina        = 100
	defaultLevel             = 1
	defaultMovementPoints    = 3
	defaultInventoryCapacity = 20
)

// 拾取失败时的统一提示，物品不存在、不在脚下或已被拾取都返回该信息
const lootMissing = "Item not found at this position"

// characterService 角色服务实现
type characterService struct {
	repos *repository.Manager
	rules *gameRules
	log   *zap.Logger
}

// NewCharacterService 创建角色服务
func NewCharacterService(repos *repository.Manager, rules *gameRules, log *zap.Logger) CharacterService {
	return &characterService{repos: repos, rules: rules, log: log}
}

// Create 创建角色，生命、体力、行动力初始为上限值
func (s *characterService) Create(ctx context.Context, req *CreateCharacterRequest) (*models.Character, error) {
	game, err := requireGame(ctx, s.repos.Game(), req.Game)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.Validation("Character name is required")
	}
	if req.CharacterType == "" {
		return nil, errors.Validation("Character type is required")
	}

	if req.Owner == 0 {
		return nil, errors.Validation("owner is required")
	}
	owner, err := s.repos.Player().FindByID(ctx, req.Owner)
	if errors.Is(err, errors.ErrNotFound) || (err == nil && owner.GameID != game.ID) {
		return nil, errors.Validation("Owner must belong to the same game")
	}
	if err != nil {
		return nil, err
	}

	at := models.Coord{Q: req.PositionQ, R: req.PositionR}
	if _, err := requireTile(ctx, s.repos.HexTile(), game.ID, at, "Starting position must be a valid tile"); err != nil {
		return nil, err
	}

	maxHealth := intOr(req.MaxHealth, defaultMaxHealth)
	maxStamina := intOr(req.MaxStamina, defaultMaxStamina)
	maxMP := intOr(req.MaxMovementPoints, defaultMovementPoints)
	if maxHealth < 1 || maxStamina < 0 || maxMP < 0 {
		return nil, errors.New(errors.ErrStatOutOfRange, "Max stats must be positive")
	}

	attributes := req.Attributes
	if attributes == nil {
		attributes = map[string]int{}
	}
	skills := req.Skills
	if skills == nil {
		skills = []models.Skill{}
	}

	character := &models.Character{
		GameID:            game.ID,
		OwnerID:           owner.ID,
		CharacterType:     req.CharacterType,
		Name:              name,
		IsHero:            req.IsHero,
		Health:            maxHealth,
		MaxHealth:         maxHealth,
		Stamina:           maxStamina,
		MaxStamina:        maxStamina,
		Experience:        req.Experience,
		Level:             intOr(req.Level, defaultLevel),
		PositionQ:         at.Q,
		PositionR:         at.R,
		Status:            models.CharacterStatusIdle,
		MovementPoints:    maxMP,
		MaxMovementPoints: maxMP,
		InventoryCapacity: intOr(req.InventoryCapacity, defaultInventoryCapacity),
		MovementPath:      datatypes.NewJSONType([]models.Coord{}),
		Inventory:         datatypes.NewJSONType([]models.InventoryEntry{}),
		Attributes:        datatypes.NewJSONType(attributes),
		Skills:            datatypes.NewJSONType(skills),
	}
	if err := s.repos.Character().Create(ctx, character); err != nil {
		return nil, err
	}
	return character, nil
}

// Get 获取角色
func (s *characterService) Get(ctx context.Context, id uint) (*models.Character, error) {
	return s.repos.Character().FindByID(ctx, id)
}

// List 角色列表，默认不包含已死亡角色
func (s *characterService) List(ctx context.Context, filter repository.CharacterFilter, pagination *repository.Pagination) ([]*models.Character, error) {
	return s.repos.Character().List(ctx, filter, pagination)
}

// Update 更新角色属性，位置只能通过 Move 修改
func (s *characterService) Update(ctx context.Context, id uint, req *UpdateCharacterRequest) (*models.Character, error) {
	var character *models.Character
	err := s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		var err error
		character, err = tx.Character().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := applyCharacterUpdate(character, req); err != nil {
			return err
		}
		return tx.Character().Update(ctx, character)
	})
	if err != nil {
		return nil, err
	}
	return character, nil
}

// applyCharacterUpdate 合并部分更新字段并校验
func applyCharacterUpdate(c *models.Character, req *UpdateCharacterRequest) error {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return errors.Validation("Character name is required")
		}
		c.Name = name
	}
	if req.CharacterType != nil {
		c.CharacterType = *req.CharacterType
	}
	if req.IsHero != nil {
		c.IsHero = *req.IsHero
	}
	c.Health = intOr(req.Health, c.Health)
	c.MaxHealth = intOr(req.MaxHealth, c.MaxHealth)
	c.Stamina = intOr(req.Stamina, c.Stamina)
	c.MaxStamina = intOr(req.MaxStamina, c.MaxStamina)
	if err := rules.CheckStats(c.Health, c.MaxHealth, c.Stamina, c.MaxStamina); err != nil {
		return err
	}

	if req.Status != nil {
		if err := rules.ValidateCharacterStatus(*req.Status); err != nil {
			return err
		}
		if err := rules.CheckStatusChange(c.Status, *req.Status); err != nil {
			return err
		}
		if *req.Status == models.CharacterStatusDead && c.DiedAt == nil {
			now := time.Now()
			c.DiedAt = &now
		}
		c.Status = *req.Status
	}

	c.Experience = intOr(req.Experience, c.Experience)
	c.Level = intOr(req.Level, c.Level)
	c.MovementPoints = intOr(req.MovementPoints, c.MovementPoints)
	c.MaxMovementPoints = intOr(req.MaxMovementPoints, c.MaxMovementPoints)
	c.InventoryCapacity = intOr(req.InventoryCapacity, c.InventoryCapacity)
	if req.InCombat != nil {
		c.InCombat = *req.InCombat
	}
	if req.CombatID != nil {
		c.CombatID = *req.CombatID
	}
	if req.MovementPath != nil {
		c.MovementPath = datatypes.NewJSONType(*req.MovementPath)
	}
	if req.Inventory != nil {
		c.Inventory = datatypes.NewJSONType(*req.Inventory)
	}
	if req.CurrentOrders != nil {
		c.CurrentOrders = datatypes.NewJSONType(*req.CurrentOrders)
	}
	if req.Attributes != nil {
		c.Attributes = datatypes.NewJSONType(req.Attributes)
	}
	if req.Skills != nil {
		c.Skills = datatypes.NewJSONType(*req.Skills)
	}
	return nil
}

// Delete 删除角色，已拾取物品的 collected_by 置空
func (s *characterService) Delete(ctx context.Context, id uint) error {
	return s.repos.Character().Delete(ctx, id)
}

// Move 移动到目标地块，不消耗行动力
func (s *characterService) Move(ctx context.Context, id uint, req *MoveRequest) (*models.Character, error) {
	if req.Q == nil || req.R == nil {
		return nil, errors.Validation("q and r coordinates are required")
	}
	target := models.Coord{Q: *req.Q, R: *req.R}

	var character *models.Character
	err := s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		var err error
		character, err = tx.Character().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		tile, err := tx.HexTile().FindAt(ctx, character.GameID, target)
		if err != nil {
			return err
		}
		if err := rules.CheckMoveTarget(character, tile); err != nil {
			return err
		}

		character.PositionQ = target.Q
		character.PositionR = target.R
		character.Status = models.CharacterStatusIdle
		return tx.Character().Update(ctx, character)
	})
	if err != nil {
		return nil, err
	}
	return character, nil
}

// Loot 拾取脚下的地图物品
//
// 物品的可用标记通过条件更新翻转，与背包写入处于同一事务；
// 并发请求中只有一个能成功，其余返回物品不存在。
func (s *characterService) Loot(ctx context.Context, id uint, req *LootRequest) (*models.Character, error) {
	if req.ItemID == nil {
		return nil, errors.Validation("item_id is required")
	}

	var (
		character *models.Character
		item      *models.MapItem
	)
	err := s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		var err error
		character, err = tx.Character().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if character.IsDead() {
			return errors.New(errors.ErrCharacterDead, "Dead characters cannot loot")
		}

		item, err = tx.MapItem().FindAvailableAt(ctx, *req.ItemID, character.GameID, character.Position())
		if errors.Is(err, errors.ErrNotFound) {
			return errors.NotFound(lootMissing)
		}
		if err != nil {
			return err
		}
		if err := rules.CheckInventoryCapacity(character, item.Quantity, s.rules.get().EnforceInventoryCapacity); err != nil {
			return err
		}

		now := time.Now()
		ok, err := tx.MapItem().MarkCollected(ctx, item.ID, character.ID, now)
		if err != nil {
			return err
		}
		if !ok {
			return errors.NotFound(lootMissing)
		}

		inventory := append(character.Inventory.Data(), models.InventoryEntry{
			ItemID:   item.ItemID,
			ItemType: item.ItemType,
			Quantity: item.Quantity,
			LootedAt: &now,
		})
		character.Inventory = datatypes.NewJSONType(inventory)
		return tx.Character().Update(ctx, character)
	})
	if err != nil {
		return nil, err
	}

	logger.LogGameEvent("item_looted", character.GameID,
		zap.Uint("character_id", character.ID),
		zap.Uint("map_item_id", item.ID),
		zap.Int("quantity", item.Quantity),
	)
	return character, nil
}
