package models

import (
	"time"

	"gorm.io/datatypes"
)

// MapItemRarities 地图物品稀有度
var MapItemRarities = []string{"common", "uncommon", "rare", "epic", "legendary"}

// MapItem 地图上可被拾取的物品
type MapItem struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	GameID        uint       `gorm:"not null;index:idx_map_item_game_pos;index:idx_map_item_game_available" json:"game"`
	ItemType      string     `gorm:"size:50;not null" json:"item_type"`
	ItemID        string     `gorm:"size:100;not null;index" json:"item_id"`
	PositionQ     int        `gorm:"not null;index:idx_map_item_game_pos" json:"position_q"`
	PositionR     int        `gorm:"not null;index:idx_map_item_game_pos" json:"position_r"`
	Quantity      int        `gorm:"not null" json:"quantity"`
	Rarity        string     `gorm:"size:20;not null" json:"rarity"`
	IsAvailable   bool       `gorm:"not null;index:idx_map_item_game_available" json:"is_available"`
	IsLocked      bool       `gorm:"not null" json:"is_locked"`
	SpawnedAtTick int        `gorm:"not null" json:"spawned_at_tick"`
	DespawnAtTick *int       `json:"despawn_at_tick"`
	SourceType    string     `gorm:"size:50" json:"source_type"`
	SourceID      string     `gorm:"size:100" json:"source_id"`
	CreatedAt     time.Time  `json:"created_at"`
	CollectedAt   *time.Time `json:"collected_at"`
	CollectedByID *uint      `gorm:"index" json:"collected_by"`

	ItemData datatypes.JSONType[ItemData] `json:"item_data"`
}

// TableName 表名
func (MapItem) TableName() string {
	return "map_items"
}
