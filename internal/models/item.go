package models

import (
	"gorm.io/datatypes"
)

// ItemRarities 物品目录稀有度
var ItemRarities = []string{"common", "rare", "legendary"}

// Item 物品目录定义，与具体游戏无关
type Item struct {
	BaseModel
	Name         string  `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description  *string `gorm:"type:text" json:"description"`
	Type         string  `gorm:"size:50;not null;index" json:"type"`
	Rarity       string  `gorm:"size:50;not null;index" json:"rarity"`
	Icon         *string `gorm:"size:255" json:"icon"`
	Effect       *string `gorm:"type:text" json:"effect"`
	Durability   *int    `json:"durability"`
	Category     *string `gorm:"size:50" json:"category"`
	SubCategory  *string `gorm:"size:50" json:"sub_category"`
	IsActive     bool    `gorm:"not null" json:"is_active"`
	StackSize    int     `gorm:"not null" json:"stack_size"`
	Cooldown     int     `gorm:"not null" json:"cooldown"`
	UpgradeLevel int     `gorm:"not null" json:"upgrade_level"`
	DropRate     float64 `gorm:"not null" json:"drop_rate"`

	StatModifiers datatypes.JSONType[map[string]float64] `json:"stat_modifiers"`
}

// TableName 表名
func (Item) TableName() string {
	return "items"
}
