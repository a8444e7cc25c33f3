package models

import (
	"time"

	"gorm.io/datatypes"
)

// 游戏状态
const (
	GameStatusWaiting  = "waiting"
	GameStatusActive   = "active"
	GameStatusPaused   = "paused"
	GameStatusFinished = "finished"
)

// Game 游戏实例，所有地图与实体都挂在某个游戏下
type Game struct {
	BaseModel
	Name                string            `gorm:"size:255;not null" json:"name"`
	Status              string            `gorm:"size:20;not null;index" json:"status"` // waiting, active, paused, finished
	MaxPlayers          int               `gorm:"not null" json:"max_players"`
	CurrentTick         int               `gorm:"not null" json:"current_tick"`
	TickDurationMinutes int               `gorm:"not null" json:"tick_duration_minutes"`
	MapName             string            `gorm:"size:100;not null" json:"map_name"`
	MapWidth            int               `gorm:"not null" json:"map_width"`
	MapHeight           int               `gorm:"not null" json:"map_height"`
	StartedAt           *time.Time        `json:"started_at"`
	NextTickAt          *time.Time        `json:"next_tick_at"`
	FinishedAt          *time.Time        `json:"finished_at"`
	Settings            datatypes.JSONMap `json:"settings"`

	// 活跃玩家数，查询时填充
	PlayerCount int64 `gorm:"-" json:"player_count"`
}

// TableName 表名
func (Game) TableName() string {
	return "games"
}

// IsJoinable 是否允许新玩家加入
func (g *Game) IsJoinable() bool {
	return g.Status == GameStatusWaiting || g.Status == GameStatusActive
}

// WorldState 某一回合的不可变世界快照
type WorldState struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	GameID            uint      `gorm:"not null;uniqueIndex:idx_world_state_game_tick;index:idx_world_state_current" json:"game"`
	Tick              int       `gorm:"not null;uniqueIndex:idx_world_state_game_tick" json:"tick"`
	IsCurrent         bool      `gorm:"not null;index:idx_world_state_current" json:"is_current"`
	ActivePlayers     int       `json:"active_players"`
	TotalCharacters   int       `json:"total_characters"`
	CommandsProcessed int       `json:"commands_processed"`
	StateHash         string    `gorm:"size:64" json:"state_hash"`
	Compression       string    `gorm:"size:10" json:"-"`
	SnapshotData      []byte    `json:"-"`
	CreatedAt         time.Time `json:"created_at"`

	Events datatypes.JSONType[[]WorldEvent] `json:"events"`

	// 解码后的快照，读取时填充
	StateSnapshot *WorldSnapshot `gorm:"-" json:"state_snapshot,omitempty"`
}

// TableName 表名
func (WorldState) TableName() string {
	return "world_states"
}
