package models

import (
	"time"

	"gorm.io/datatypes"
)

// 角色状态
const (
	CharacterStatusIdle        = "idle"
	CharacterStatusMoving      = "moving"
	CharacterStatusLooting     = "looting"
	CharacterStatusInteracting = "interacting"
	CharacterStatusInCombat    = "in_combat"
	CharacterStatusDead        = "dead"
)

// CharacterStatuses 全部合法角色状态
var CharacterStatuses = []string{
	CharacterStatusIdle, CharacterStatusMoving, CharacterStatusLooting,
	CharacterStatusInteracting, CharacterStatusInCombat, CharacterStatusDead,
}

// Character 地图上的角色/单位
type Character struct {
	BaseModel
	GameID            uint       `gorm:"not null;index:idx_character_game_owner;index:idx_character_game_pos;index:idx_character_game_status" json:"game"`
	OwnerID           uint       `gorm:"not null;index:idx_character_game_owner" json:"owner"`
	CharacterType     string     `gorm:"size:50;not null" json:"character_type"`
	Name              string     `gorm:"size:100;not null" json:"name"`
	IsHero            bool       `gorm:"not null" json:"is_hero"`
	Health            int        `gorm:"not null" json:"health"`
	MaxHealth         int        `gorm:"not null" json:"max_health"`
	Stamina           int        `gorm:"not null" json:"stamina"`
	MaxStamina        int        `gorm:"not null" json:"max_stamina"`
	Experience        int        `gorm:"not null" json:"experience"`
	Level             int        `gorm:"not null" json:"level"`
	PositionQ         int        `gorm:"not null;index:idx_character_game_pos" json:"position_q"`
	PositionR         int        `gorm:"not null;index:idx_character_game_pos" json:"position_r"`
	Status            string     `gorm:"size:20;not null;index:idx_character_game_status" json:"status"`
	MovementPoints    int        `gorm:"not null" json:"movement_points"`
	MaxMovementPoints int        `gorm:"not null" json:"max_movement_points"`
	InventoryCapacity int        `gorm:"not null" json:"inventory_capacity"`
	InCombat          bool       `gorm:"not null" json:"in_combat"`
	CombatID          string     `gorm:"size:50" json:"combat_id"`
	DiedAt            *time.Time `json:"died_at"`

	MovementPath  datatypes.JSONType[[]Coord]          `json:"movement_path"`
	Inventory     datatypes.JSONType[[]InventoryEntry] `json:"inventory"`
	CurrentOrders datatypes.JSONType[Orders]           `json:"current_orders"`
	Attributes    datatypes.JSONType[map[string]int]   `json:"attributes"`
	Skills        datatypes.JSONType[[]Skill]          `json:"skills"`
}

// TableName 表名
func (Character) TableName() string {
	return "characters"
}

// IsDead 是否已死亡
func (c *Character) IsDead() bool {
	return c.Status == CharacterStatusDead
}

// Position 当前坐标
func (c *Character) Position() Coord {
	return Coord{Q: c.PositionQ, R: c.PositionR}
}

// InventoryCount 背包中的物品总数量
func (c *Character) InventoryCount() int {
	total := 0
	for _, entry := range c.Inventory.Data() {
		total += entry.Quantity
	}
	return total
}
