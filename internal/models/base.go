package models

import (
	"time"
)

// BaseModel 公共字段
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AllModels 需要自动迁移的全部模型
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&UserAuth{},
		&UserSession{},
		&Game{},
		&WorldState{},
		&Player{},
		&HexTile{},
		&Character{},
		&MapItem{},
		&Interactable{},
		&Item{},
	}
}
