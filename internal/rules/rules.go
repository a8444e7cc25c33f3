// Package rules 游戏规则校验
//
// 这里只放纯函数：输入实体当前状态，返回是否允许操作以及拒绝原因。
// 读取与写入由 service 层在事务中完成。
package rules

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/hexgrid"
	"github.com/wfunc/hexrealm/internal/models"
)

// 地图与回合限制
const (
	MinMapSize         = 10
	MaxMapSize         = 200
	MinTickDuration    = 1
	MaxTickDuration    = 1440
	DefaultTickMinutes = 15
	DefaultMaxPlayers  = 32
	DefaultMapSize     = 50
)

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateColor 颜色必须是 #RRGGBB
func ValidateColor(color string) error {
	if !colorPattern.MatchString(color) {
		return errors.Validation("Color must be in hex format (#RRGGBB)")
	}
	return nil
}

// ValidateTickDuration 回合时长（分钟）
func ValidateTickDuration(minutes int) error {
	if minutes < MinTickDuration {
		return errors.Validation("Tick duration must be at least 1 minute")
	}
	if minutes > MaxTickDuration {
		return errors.Validation("Tick duration cannot exceed 1440 minutes (24 hours)")
	}
	return nil
}

// ValidateMapWidth 地图宽度
func ValidateMapWidth(width int) error {
	if width < MinMapSize || width > MaxMapSize {
		return errors.Validation("Map width must be between 10 and 200")
	}
	return nil
}

// ValidateMapHeight 地图高度
func ValidateMapHeight(height int) error {
	if height < MinMapSize || height > MaxMapSize {
		return errors.Validation("Map height must be between 10 and 200")
	}
	return nil
}

// ValidateMaxPlayers 最大玩家数
func ValidateMaxPlayers(n int) error {
	if n < 1 {
		return errors.Validation("Max players must be at least 1")
	}
	return nil
}

// ValidateTerrain 地形必须是已知类型
func ValidateTerrain(terrain string) error {
	return oneOf("Terrain type", terrain, models.Terrains)
}

// ValidateCharacterStatus 角色状态必须是已知类型
func ValidateCharacterStatus(status string) error {
	return oneOf("Status", status, models.CharacterStatuses)
}

// ValidateMapItemRarity 地图物品稀有度
func ValidateMapItemRarity(rarity string) error {
	return oneOf("Rarity", rarity, models.MapItemRarities)
}

// ValidateItemRarity 物品目录稀有度
func ValidateItemRarity(rarity string) error {
	return oneOf("Rarity", rarity, models.ItemRarities)
}

// ValidateInteractableType 交互对象类型
func ValidateInteractableType(t string) error {
	return oneOf("Interactable type", t, models.InteractableTypes)
}

// ValidateInteractableState 交互对象状态
func ValidateInteractableState(state string) error {
	return oneOf("State", state, models.InteractableStates)
}

func oneOf(field, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return errors.Validation(fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")))
}

// 游戏状态迁移动作
const (
	ActionStart  = "start"
	ActionPause  = "pause"
	ActionResume = "resume"
	ActionFinish = "finish"
)

// Transition 根据当前状态与动作返回目标状态，finished 之后不允许任何迁移
func Transition(status, action string) (string, error) {
	switch action {
	case ActionStart:
		if status == models.GameStatusWaiting {
			return models.GameStatusActive, nil
		}
		return "", errors.New(errors.ErrGameStateError, "Game must be in 'waiting' status to start")
	case ActionPause:
		if status == models.GameStatusActive {
			return models.GameStatusPaused, nil
		}
		return "", errors.New(errors.ErrGameStateError, "Game must be in 'active' status to pause")
	case ActionResume:
		if status == models.GameStatusPaused {
			return models.GameStatusActive, nil
		}
		return "", errors.New(errors.ErrGameStateError, "Game must be in 'paused' status to resume")
	case ActionFinish:
		if status == models.GameStatusActive || status == models.GameStatusPaused {
			return models.GameStatusFinished, nil
		}
		return "", errors.New(errors.ErrGameStateError, "Only an active or paused game can be finished")
	}
	return "", errors.Validation("unknown game action: " + action)
}

// CanAdvanceTick 只有进行中的游戏可以推进回合
func CanAdvanceTick(game *models.Game) error {
	if game.Status != models.GameStatusActive {
		return errors.New(errors.ErrGameStateError, "Game must be in 'active' status to advance tick")
	}
	return nil
}

// CanJoin 玩家加入校验：游戏状态与人数上限
func CanJoin(game *models.Game, activePlayers int64) error {
	if !game.IsJoinable() {
		return errors.New(errors.ErrGameStateError, "Cannot join a finished or paused game")
	}
	if activePlayers >= int64(game.MaxPlayers) {
		return errors.New(errors.ErrGameFull, "Game is full")
	}
	return nil
}

// CheckMoveTarget 目标地块必须存在且可通行，tile 为 nil 表示坐标上没有地块
func CheckMoveTarget(character *models.Character, tile *models.HexTile) error {
	if character.IsDead() {
		return errors.New(errors.ErrCharacterDead, "Dead characters cannot move")
	}
	if tile == nil {
		return errors.Validation("Invalid tile coordinates")
	}
	if !tile.IsPassable {
		return errors.New(errors.ErrTileImpassable, "Tile is not passable")
	}
	return nil
}

// CheckColocated 两个坐标必须完全相同
func CheckColocated(a, b hexgrid.Coord, msg string) error {
	if a != b {
		return errors.New(errors.ErrNotColocated, msg)
	}
	return nil
}

// CheckStats 生命与体力不能超过上限
func CheckStats(health, maxHealth, stamina, maxStamina int) error {
	if health > maxHealth {
		return errors.New(errors.ErrStatOutOfRange, "Health cannot exceed max_health")
	}
	if stamina > maxStamina {
		return errors.New(errors.ErrStatOutOfRange, "Stamina cannot exceed max_stamina")
	}
	return nil
}

// CheckStatusChange 死亡不可逆
func CheckStatusChange(current, next string) error {
	if current == models.CharacterStatusDead && next != models.CharacterStatusDead {
		return errors.New(errors.ErrCharacterDead, "A dead character cannot be revived")
	}
	return nil
}

// CheckInventoryCapacity 开启容量限制时，拾取后的总数量不能超过容量
func CheckInventoryCapacity(character *models.Character, incoming int, enforce bool) error {
	if !enforce {
		return nil
	}
	if character.InventoryCount()+incoming > character.InventoryCapacity {
		return errors.New(errors.ErrInventoryFull, "Inventory is full")
	}
	return nil
}

// CanUse 交互对象在当前回合是否可用，在 CheckInteract 的基础上还要求冷却结束
func CanUse(it *models.Interactable, currentTick int) bool {
	if checkUsable(it) != nil {
		return false
	}
	return !OnCooldown(it, currentTick)
}

// OnCooldown 距上次使用不足 cooldown_ticks 个回合
func OnCooldown(it *models.Interactable, currentTick int) bool {
	return it.LastUsedTick != nil && currentTick-*it.LastUsedTick < it.CooldownTicks
}

// CheckInteract 角色与交互对象的交互校验，按位置、激活、次数的顺序判断。
// 冷却只影响 can_use 的展示，不阻止交互
func CheckInteract(it *models.Interactable, character *models.Character) error {
	if err := CheckColocated(character.Position(), it.Position(),
		"Character must be at the same position as the interactable"); err != nil {
		return err
	}
	if character.IsDead() {
		return errors.New(errors.ErrCharacterDead, "Dead characters cannot interact")
	}
	return checkUsable(it)
}

func checkUsable(it *models.Interactable) error {
	if !it.IsActive {
		return errors.New(errors.ErrInteractableLocked, "Interactable is not active")
	}
	if it.MaxUses > 0 && it.CurrentUses >= it.MaxUses {
		return errors.New(errors.ErrUseLimitReached, "Interactable has been used maximum times")
	}
	return nil
}

// ValidateItem 物品目录字段校验，name 会被去除首尾空白
func ValidateItem(item *models.Item) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return errors.Validation("Item name cannot be empty")
	}
	if item.Type == "" {
		return errors.Validation("Item type is required")
	}
	if err := ValidateItemRarity(item.Rarity); err != nil {
		return err
	}
	switch {
	case item.StackSize < 1:
		return errors.Validation("Stack size must be at least 1")
	case item.StackSize > 9999:
		return errors.Validation("Stack size cannot exceed 9999")
	case item.Cooldown < 0:
		return errors.Validation("Cooldown cannot be negative")
	case item.UpgradeLevel < 0:
		return errors.Validation("Upgrade level cannot be negative")
	case item.UpgradeLevel > 100:
		return errors.Validation("Upgrade level cannot exceed 100")
	case item.DropRate < 0 || item.DropRate > 1:
		return errors.Validation("Drop rate must be between 0.0 and 1.0")
	case item.Durability != nil && *item.Durability < 0:
		return errors.Validation("Durability cannot be negative")
	}
	return nil
}
