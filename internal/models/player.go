package models

import (
	"time"

	"gorm.io/datatypes"
)

// Player 用户在某个游戏中的身份，同一用户在一个游戏里只能有一个
type Player struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	GameID       uint       `gorm:"not null;uniqueIndex:idx_player_game_user;index:idx_player_game_active" json:"game"`
	UserID       uint       `gorm:"not null;uniqueIndex:idx_player_game_user" json:"user"`
	PlayerName   string     `gorm:"size:100;not null" json:"player_name"`
	Color        string     `gorm:"size:7;not null" json:"color"`
	Avatar       string     `gorm:"size:255" json:"avatar"`
	IsActive     bool       `gorm:"not null;index:idx_player_game_active" json:"is_active"`
	IsAI         bool       `gorm:"not null" json:"is_ai"`
	DefeatedAt   *time.Time `json:"defeated_at"`
	Score        int        `gorm:"not null" json:"score"`
	JoinedAt     time.Time  `json:"joined_at"`
	LastActiveAt time.Time  `json:"last_active_at"`

	Resources              datatypes.JSONType[map[string]int]             `json:"resources"`
	ResearchedTechnologies datatypes.JSONType[[]string]                   `json:"researched_technologies"`
	CurrentResearch        datatypes.JSONType[ResearchProgress]           `json:"current_research"`
	Diplomacy              datatypes.JSONType[map[uint]DiplomacyRelation] `json:"diplomacy"`

	// 存活角色数，查询时填充
	CharacterCount int64 `gorm:"-" json:"character_count"`
}

// TableName 表名
func (Player) TableName() string {
	return "players"
}
