package service

import (
	"context"
	"fmt"

	"github.com/wfunc/hexrealm/internal/catalog"
	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/models"
	"github.com/wfunc/hexrealm/internal/repository"
	"github.com/wfunc/hexrealm/internal/rules"
	"github.com/wfunc/hexrealm/internal/schema"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// itemNameTaken 物品名称重复时的提示
const itemNameTaken = "An item with this name already exists"

// itemService 物品目录服务实现
type itemService struct {
	repos *repository.Manager
	log   *zap.Logger
}

// NewItemService 创建物品目录服务
func NewItemService(repos *repository.Manager, log *zap.Logger) ItemService {
	return &itemService{repos: repos, log: log}
}

// Create 创建物品
func (s *itemService) Create(ctx context.Context, req *ItemRequest) (*models.Item, error) {
	item := &models.Item{IsActive: true, StackSize: 1}
	if err := applyItemRequest(item, req); err != nil {
		return nil, err
	}
	if err := s.checkName(ctx, s.repos.Item(), item.Name, 0); err != nil {
		return nil, err
	}
	if err := s.repos.Item().Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Get 获取物品
func (s *itemService) Get(ctx context.Context, id uint) (*models.Item, error) {
	return s.repos.Item().FindByID(ctx, id)
}

// List 物品列表，按名称排序
func (s *itemService) List(ctx context.Context, filter repository.ItemFilter, pagination *repository.Pagination) ([]*models.Item, error) {
	return s.repos.Item().List(ctx, filter, pagination)
}

// Update 更新物品，未提供的字段保持不变
func (s *itemService) Update(ctx context.Context, id uint, req *ItemRequest) (*models.Item, error) {
	item, err := s.repos.Item().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyItemRequest(item, req); err != nil {
		return nil, err
	}
	if err := s.checkName(ctx, s.repos.Item(), item.Name, item.ID); err != nil {
		return nil, err
	}
	if err := s.repos.Item().Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete 删除物品
func (s *itemService) Delete(ctx context.Context, id uint) error {
	return s.repos.Item().Delete(ctx, id)
}

// SetActive 启用或停用物品
func (s *itemService) SetActive(ctx context.Context, id uint, active bool) (*models.Item, error) {
	item, err := s.repos.Item().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repos.Item().SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	item.IsActive = active
	return item, nil
}

// ByRarity 按稀有度查询
func (s *itemService) ByRarity(ctx context.Context, filter repository.ItemFilter) ([]*models.Item, error) {
	if filter.Rarity == "" {
		return nil, errors.Validation("rarity parameter is required")
	}
	return s.repos.Item().List(ctx, filter, nil)
}

// ByType 按类型查询
func (s *itemService) ByType(ctx context.Context, filter repository.ItemFilter) ([]*models.Item, error) {
	if filter.Type == "" {
		return nil, errors.Validation("type parameter is required")
	}
	return s.repos.Item().List(ctx, filter, nil)
}

// Import 在一个事务中导入种子文件，任一条目校验失败则整体回滚
func (s *itemService) Import(ctx context.Context, file *catalog.File) (*ImportResult, error) {
	result := &ImportResult{}
	err := s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		seen := make(map[string]int, len(file.Items))
		for i, entry := range file.Items {
			item, err := importEntry(entry)
			if err != nil {
				return entryErr(i, err)
			}
			if prev, ok := seen[item.Name]; ok {
				return entryErr(i, errors.Validation(fmt.Sprintf("duplicate of items[%d]", prev)))
			}
			seen[item.Name] = i

			existing, err := tx.Item().FindByName(ctx, item.Name)
			if err != nil {
				return err
			}
			if existing == nil {
				if err := tx.Item().Create(ctx, item); err != nil {
					return entryErr(i, err)
				}
				result.Created++
				continue
			}

			item.ID = existing.ID
			item.CreatedAt = existing.CreatedAt
			if err := tx.Item().Update(ctx, item); err != nil {
				return entryErr(i, err)
			}
			result.Updated++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Item catalog imported",
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
	)
	return result, nil
}

func (s *itemService) checkName(ctx context.Context, repo repository.ItemRepository, name string, excludeID uint) error {
	taken, err := repo.NameTaken(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return errors.New(errors.ErrAlreadyExists, itemNameTaken)
	}
	return nil
}

// applyItemRequest 合并请求字段并校验
func applyItemRequest(item *models.Item, req *ItemRequest) error {
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Type != nil {
		item.Type = *req.Type
	}
	if req.Rarity != nil {
		item.Rarity = *req.Rarity
	}
	if req.Icon != nil {
		item.Icon = req.Icon
	}
	if req.Effect != nil {
		item.Effect = req.Effect
	}
	if req.Durability != nil {
		item.Durability = req.Durability
	}
	if req.Category != nil {
		item.Category = req.Category
	}
	if req.SubCategory != nil {
		item.SubCategory = req.SubCategory
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	item.StackSize = intOr(req.StackSize, item.StackSize)
	item.Cooldown = intOr(req.Cooldown, item.Cooldown)
	item.UpgradeLevel = intOr(req.UpgradeLevel, item.UpgradeLevel)
	if req.DropRate != nil {
		item.DropRate = *req.DropRate
	}
	if req.StatModifiers != nil {
		if err := schema.Validate(schema.StatModifiers, "stat_modifiers", req.StatModifiers); err != nil {
			return err
		}
		mods := make(map[string]float64, len(req.StatModifiers))
		for k, v := range req.StatModifiers {
			if n, ok := v.(float64); ok {
				mods[k] = n
			}
		}
		item.StatModifiers = datatypes.NewJSONType(mods)
	}
	return rules.ValidateItem(item)
}

// importEntry 校验并转换种子文件条目
func importEntry(entry catalog.Entry) (*models.Item, error) {
	if raw := entry.RawStatModifiers(); raw != nil {
		if err := schema.Validate(schema.StatModifiers, "stat_modifiers", raw); err != nil {
			return nil, err
		}
	}
	item := entry.ToModel()
	if err := rules.ValidateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// entryErr 在错误信息前加上条目序号
func entryErr(i int, err error) error {
	appErr, ok := errors.As(err)
	if !ok {
		return errors.Wrapf(err, errors.ErrInvalidParam, "items[%d]", i)
	}
	return errors.Newf(appErr.Code, "items[%d]: %s", i, appErr.PublicMessage())
}
