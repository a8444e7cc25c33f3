package models

import (
	"time"

	"github.com/wfunc/hexrealm/internal/hexgrid"
)

// 以下结构体以 JSON 列的形式保存在实体表中（datatypes.JSONType）

// Coord 轴向坐标
type Coord = hexgrid.Coord

// InventoryEntry 背包条目
type InventoryEntry struct {
	ItemID   string     `json:"item_id"`
	ItemType string     `json:"item_type,omitempty"`
	Quantity int        `json:"quantity"`
	Equipped bool       `json:"equipped"`
	LootedAt *time.Time `json:"looted_at,omitempty"`
}

// ResearchProgress 当前研究进度
type ResearchProgress struct {
	TechID      string `json:"tech_id,omitempty"`
	Progress    int    `json:"progress"`
	StartedTick int    `json:"started_tick"`
}

// DiplomacyRelation 外交关系
type DiplomacyRelation struct {
	Status    string `json:"status"` // peace, war, alliance
	SinceTick int    `json:"since_tick"`
}

// TileVisibility 某玩家对地块的可见性
type TileVisibility struct {
	Visible      bool `json:"visible"`
	LastSeenTick int  `json:"last_seen_tick"`
}

// Structure 地块上的建筑
type Structure struct {
	Type    string `json:"type"`
	OwnerID uint   `json:"owner_id,omitempty"`
	Health  int    `json:"health"`
	Level   int    `json:"level"`
}

// TileEffect 地块环境效果
type TileEffect struct {
	EffectType string             `json:"effect_type"`
	Duration   int                `json:"duration"`
	Parameters map[string]float64 `json:"parameters,omitempty"`
}

// Orders 角色当前指令
type Orders struct {
	OrderType  string            `json:"order_type,omitempty"`
	Target     *Coord            `json:"target,omitempty"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

// Skill 技能
type Skill struct {
	SkillID  string `json:"skill_id"`
	Level    int    `json:"level"`
	Cooldown int    `json:"cooldown"`
}

// ItemData 地图物品实例数据
type ItemData struct {
	Durability   *int     `json:"durability,omitempty"`
	Enchantments []string `json:"enchantments,omitempty"`
}

// LootEntry 掉落表条目
type LootEntry struct {
	ItemID      string  `json:"item_id"`
	Quantity    int     `json:"quantity"`
	Probability float64 `json:"probability"`
}

// InteractionRecord 交互历史
type InteractionRecord struct {
	CharacterID   uint      `json:"character_id"`
	CharacterName string    `json:"character_name"`
	Tick          int       `json:"tick"`
	Timestamp     time.Time `json:"timestamp"`
	Result        string    `json:"result"`
}

// WorldEvent 某一回合内发生的全局事件
type WorldEvent struct {
	Type string            `json:"type"`
	Tick int               `json:"tick"`
	Data map[string]string `json:"data,omitempty"`
}

// WorldSnapshot 某一回合的完整反规范化世界状态
type WorldSnapshot struct {
	GameID        uint                   `json:"game_id"`
	Tick          int                    `json:"tick"`
	Status        string                 `json:"status"`
	Players       []PlayerSnapshot       `json:"players"`
	Tiles         []TileSnapshot         `json:"tiles"`
	Characters    []CharacterSnapshot    `json:"characters"`
	MapItems      []MapItemSnapshot      `json:"map_items"`
	Interactables []InteractableSnapshot `json:"interactables"`
}

// PlayerSnapshot 快照中的玩家
type PlayerSnapshot struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	Color     string         `json:"color"`
	IsActive  bool           `json:"is_active"`
	Score     int            `json:"score"`
	Resources map[string]int `json:"resources,omitempty"`
}

// TileSnapshot 快照中的地块
type TileSnapshot struct {
	Q          int        `json:"q"`
	R          int        `json:"r"`
	Terrain    string     `json:"terrain"`
	Elevation  int        `json:"elevation"`
	IsPassable bool       `json:"is_passable"`
	Structure  *Structure `json:"structure,omitempty"`
}

// CharacterSnapshot 快照中的角色
type CharacterSnapshot struct {
	ID        uint   `json:"id"`
	OwnerID   uint   `json:"owner_id"`
	Name      string `json:"name"`
	Q         int    `json:"q"`
	R         int    `json:"r"`
	Status    string `json:"status"`
	Health    int    `json:"health"`
	Stamina   int    `json:"stamina"`
	Inventory int    `json:"inventory"`
}

// MapItemSnapshot 快照中的地图物品
type MapItemSnapshot struct {
	ItemID   string `json:"item_id"`
	ItemType string `json:"item_type"`
	Q        int    `json:"q"`
	R        int    `json:"r"`
	Quantity int    `json:"quantity"`
}

// InteractableSnapshot 快照中的交互对象
type InteractableSnapshot struct {
	ID          uint   `json:"id"`
	Type        string `json:"type"`
	Q           int    `json:"q"`
	R           int    `json:"r"`
	State       string `json:"state"`
	CurrentUses int    `json:"current_uses"`
}
