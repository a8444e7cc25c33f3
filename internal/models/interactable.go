package models

import (
	"gorm.io/datatypes"
)

// InteractableTypes 交互对象类型
var InteractableTypes = []string{
	"chest", "door", "npc", "portal", "shrine", "trap", "resource_node", "puzzle",
}

// InteractableStates 交互对象状态
var InteractableStates = []string{"active", "used", "destroyed", "locked", "unlocked"}

// Interactable 地图上的交互对象（宝箱、门、NPC 等）
type Interactable struct {
	BaseModel
	GameID           uint   `gorm:"not null;index:idx_interactable_game_pos;index:idx_interactable_game_active" json:"game"`
	InteractableType string `gorm:"size:50;not null" json:"interactable_type"`
	InteractableID   string `gorm:"size:100;not null" json:"interactable_id"`
	Name             string `gorm:"size:100;not null" json:"name"`
	PositionQ        int    `gorm:"not null;index:idx_interactable_game_pos" json:"position_q"`
	PositionR        int    `gorm:"not null;index:idx_interactable_game_pos" json:"position_r"`
	State            string `gorm:"size:20;not null" json:"state"`
	IsActive         bool   `gorm:"not null;index:idx_interactable_game_active" json:"is_active"`
	RequiredLevel    int    `gorm:"not null" json:"required_level"`
	MaxUses          int    `gorm:"not null" json:"max_uses"` // 0 表示不限次数
	CurrentUses      int    `gorm:"not null" json:"current_uses"`
	CooldownTicks    int    `gorm:"not null" json:"cooldown_ticks"`
	LastUsedTick     *int   `json:"last_used_tick"`

	RequiredItems datatypes.JSONType[[]string]            `json:"required_items"`
	LootTable     datatypes.JSONType[[]LootEntry]         `json:"loot_table"`
	Interactions  datatypes.JSONType[[]InteractionRecord] `json:"interactions"`
	Data          datatypes.JSONMap                       `json:"data"`

	// 按游戏当前回合计算，查询时填充
	CanUse bool `gorm:"-" json:"can_use"`
}

// TableName 表名
func (Interactable) TableName() string {
	return "interactables"
}

// Position 当前坐标
func (i *Interactable) Position() Coord {
	return Coord{Q: i.PositionQ, R: i.PositionR}
}
