package models

import (
	"time"

	"gorm.io/datatypes"
)

// 地形类型
const (
	TerrainPlains   = "plains"
	TerrainForest   = "forest"
	TerrainMountain = "mountain"
	TerrainWater    = "water"
	TerrainDesert   = "desert"
	TerrainSwamp    = "swamp"
	TerrainSnow     = "snow"
	TerrainUrban    = "urban"
)

// Terrains 全部合法地形
var Terrains = []string{
	TerrainPlains, TerrainForest, TerrainMountain, TerrainWater,
	TerrainDesert, TerrainSwamp, TerrainSnow, TerrainUrban,
}

// HexTile 六边形地块，使用轴向坐标 (q, r)
type HexTile struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	GameID      uint      `gorm:"not null;uniqueIndex:idx_hex_tile_game_qr;index:idx_hex_tile_game_terrain" json:"game"`
	Q           int       `gorm:"not null;uniqueIndex:idx_hex_tile_game_qr" json:"q"`
	R           int       `gorm:"not null;uniqueIndex:idx_hex_tile_game_qr" json:"r"`
	TerrainType string    `gorm:"size:50;not null;index:idx_hex_tile_game_terrain" json:"terrain_type"`
	Elevation   int       `gorm:"not null" json:"elevation"`
	IsPassable  bool      `gorm:"not null" json:"is_passable"`
	UpdatedAt   time.Time `json:"updated_at"`

	Visibility datatypes.JSONType[map[uint]TileVisibility] `json:"visibility"`
	Structure  datatypes.JSONType[*Structure]              `json:"structure"`
	Effects    datatypes.JSONType[[]TileEffect]            `json:"effects"`
}

// TableName 表名
func (HexTile) TableName() string {
	return "hex_tiles"
}

// HasStructure 地块上是否有建筑
func (t *HexTile) HasStructure() bool {
	s := t.Structure.Data()
	return s != nil && s.Type != ""
}
