package service

import (
	"github.com/wfunc/hexrealm/internal/models"
)

// CreateGameRequest 创建游戏请求
type CreateGameRequest struct {
	Name                string                 `json:"name"`
	MaxPlayers          *int                   `json:"max_players"`
	TickDurationMinutes *int                   `json:"tick_duration_minutes"`
	MapName             string                 `json:"map_name"`
	MapWidth            *int                   `json:"map_width"`
	MapHeight           *int                   `json:"map_height"`
	Settings            map[string]interface{} `json:"settings"`
}

// UpdateGameRequest 更新游戏请求，status 与 current_tick 只能通过动作修改
type UpdateGameRequest struct {
	Name                *string                `json:"name"`
	MaxPlayers          *int                   `json:"max_players"`
	TickDurationMinutes *int                   `json:"tick_duration_minutes"`
	MapName             *string                `json:"map_name"`
	MapWidth            *int                   `json:"map_width"`
	MapHeight           *int                   `json:"map_height"`
	Settings            map[string]interface{} `json:"settings"`
}

// TickResult 推进回合的结果
type TickResult struct {
	Game  *models.Game       `json:"game"`
	State *models.WorldState `json:"world_state"`
}

// JoinGameRequest 加入游戏请求
type JoinGameRequest struct {
	Game       uint   `json:"game"`
	PlayerName string `json:"player_name"`
	Color      string `json:"color"`
	Avatar     string `json:"avatar"`
	IsAI       bool   `json:"is_ai"`
}

// UpdatePlayerRequest 更新玩家请求
type UpdatePlayerRequest struct {
	PlayerName             *string                           `json:"player_name"`
	Color                  *string                           `json:"color"`
	Avatar                 *string                           `json:"avatar"`
	IsActive               *bool                             `json:"is_active"`
	Score                  *int                              `json:"score"`
	Resources              map[string]int                    `json:"resources"`
	ResearchedTechnologies *[]string                         `json:"researched_technologies"`
	CurrentResearch        *models.ResearchProgress          `json:"current_research"`
	Diplomacy              map[uint]models.DiplomacyRelation `json:"diplomacy"`
}

// CreateTileRequest 创建地块请求
type CreateTileRequest struct {
	Game        uint                           `json:"game"`
	Q           int                            `json:"q"`
	R           int                            `json:"r"`
	TerrainType string                         `json:"terrain_type"`
	Elevation   int                            `json:"elevation"`
	IsPassable  *bool                          `json:"is_passable"`
	Visibility  map[uint]models.TileVisibility `json:"visibility"`
	Structure   *models.Structure              `json:"structure"`
	Effects     []models.TileEffect            `json:"effects"`
}

// UpdateTileRequest 更新地块请求
type UpdateTileRequest struct {
	Q           *int                           `json:"q"`
	R           *int                           `json:"r"`
	TerrainType *string                        `json:"terrain_type"`
	Elevation   *int                           `json:"elevation"`
	IsPassable  *bool                          `json:"is_passable"`
	Visibility  map[uint]models.TileVisibility `json:"visibility"`
	Structure   *models.Structure              `json:"structure"`
	Effects     *[]models.TileEffect           `json:"effects"`
}

// NearbyQuery 附近地块查询，game、q、r 必填
type NearbyQuery struct {
	Game   *uint
	Q      *int
	R      *int
	Radius *int
}

// CreateCharacterRequest 创建角色请求
type CreateCharacterRequest struct {
	Game              uint           `json:"game"`
	Owner             uint           `json:"owner"`
	CharacterType     string         `json:"character_type"`
	Name              string         `json:"name"`
	IsHero            bool           `json:"is_hero"`
	MaxHealth         *int           `json:"max_health"`
	MaxStamina        *int           `json:"max_stamina"`
	Experience        int            `json:"experience"`
	Level             *int           `json:"level"`
	PositionQ         int            `json:"position_q"`
	PositionR         int            `json:"position_r"`
	MaxMovementPoints *int           `json:"max_movement_points"`
	InventoryCapacity *int           `json:"inventory_capacity"`
	Attributes        map[string]int `json:"attributes"`
	Skills            []models.Skill `json:"skills"`
}

// UpdateCharacterRequest 更新角色请求，位置只能通过移动修改
type UpdateCharacterRequest struct {
	Name              *string                  `json:"name"`
	CharacterType     *string                  `json:"character_type"`
	IsHero            *bool                    `json:"is_hero"`
	Health            *int                     `json:"health"`
	MaxHealth         *int                     `json:"max_health"`
	Stamina           *int                     `json:"stamina"`
	MaxStamina        *int                     `json:"max_stamina"`
	Experience        *int                     `json:"experience"`
	Level             *int                     `json:"level"`
	Status            *string                  `json:"status"`
	MovementPoints    *int                     `json:"movement_points"`
	MaxMovementPoints *int                     `json:"max_movement_points"`
	InventoryCapacity *int                     `json:"inventory_capacity"`
	InCombat          *bool                    `json:"in_combat"`
	CombatID          *string                  `json:"combat_id"`
	MovementPath      *[]models.Coord          `json:"movement_path"`
	Inventory         *[]models.InventoryEntry `json:"inventory"`
	CurrentOrders     *models.Orders           `json:"current_orders"`
	Attributes        map[string]int           `json:"attributes"`
	Skills            *[]models.Skill          `json:"skills"`
}

// MoveRequest 移动请求
type MoveRequest struct {
	Q *int `json:"q"`
	R *int `json:"r"`
}

// LootRequest 拾取请求，item_id 为地图物品的主键
type LootRequest struct {
	ItemID *uint `json:"item_id"`
}

// CreateMapItemRequest 放置地图物品请求
type CreateMapItemRequest struct {
	Game          uint             `json:"game"`
	ItemType      string           `json:"item_type"`
	ItemID        string           `json:"item_id"`
	PositionQ     int              `json:"position_q"`
	PositionR     int              `json:"position_r"`
	Quantity      *int             `json:"quantity"`
	Rarity        string           `json:"rarity"`
	IsLocked      bool             `json:"is_locked"`
	SpawnedAtTick *int             `json:"spawned_at_tick"`
	DespawnAtTick *int             `json:"despawn_at_tick"`
	SourceType    string           `json:"source_type"`
	SourceID      string           `json:"source_id"`
	ItemData      *models.ItemData `json:"item_data"`
}

// UpdateMapItemRequest 更新地图物品请求，拾取相关字段只读
type UpdateMapItemRequest struct {
	ItemType      *string          `json:"item_type"`
	PositionQ     *int             `json:"position_q"`
	PositionR     *int             `json:"position_r"`
	Quantity      *int             `json:"quantity"`
	Rarity        *string          `json:"rarity"`
	IsLocked      *bool            `json:"is_locked"`
	DespawnAtTick *int             `json:"despawn_at_tick"`
	SourceType    *string          `json:"source_type"`
	SourceID      *string          `json:"source_id"`
	ItemData      *models.ItemData `json:"item_data"`
}

// CreateInteractableRequest 创建交互对象请求
type CreateInteractableRequest struct {
	Game             uint                   `json:"game"`
	InteractableType string                 `json:"interactable_type"`
	InteractableID   string                 `json:"interactable_id"`
	Name             string                 `json:"name"`
	PositionQ        int                    `json:"position_q"`
	PositionR        int                    `json:"position_r"`
	State            string                 `json:"state"`
	IsActive         *bool                  `json:"is_active"`
	RequiredItems    []string               `json:"required_items"`
	RequiredLevel    int                    `json:"required_level"`
	LootTable        []models.LootEntry     `json:"loot_table"`
	MaxUses          *int                   `json:"max_uses"`
	CooldownTicks    int                    `json:"cooldown_ticks"`
	Data             map[string]interface{} `json:"data"`
}

// UpdateInteractableRequest 更新交互对象请求
type UpdateInteractableRequest struct {
	Name          *string                `json:"name"`
	PositionQ     *int                   `json:"position_q"`
	PositionR     *int                   `json:"position_r"`
	State         *string                `json:"state"`
	IsActive      *bool                  `json:"is_active"`
	RequiredItems *[]string              `json:"required_items"`
	RequiredLevel *int                   `json:"required_level"`
	LootTable     *[]models.LootEntry    `json:"loot_table"`
	MaxUses       *int                   `json:"max_uses"`
	CooldownTicks *int                   `json:"cooldown_ticks"`
	Data          map[string]interface{} `json:"data"`
}

// InteractRequest 交互请求
type InteractRequest struct {
	CharacterID *uint `json:"character_id"`
}

// ItemRequest 物品目录创建/更新请求，更新时未提供的字段保持不变
type ItemRequest struct {
	Name          *string                `json:"name"`
	Description   *string                `json:"description"`
	Type          *string                `json:"type"`
	Rarity        *string                `json:"rarity"`
	Icon          *string                `json:"icon"`
	Effect        *string                `json:"effect"`
	Durability    *int                   `json:"durability"`
	Category      *string                `json:"category"`
	SubCategory   *string                `json:"sub_category"`
	IsActive      *bool                  `json:"is_active"`
	StackSize     *int                   `json:"stack_size"`
	Cooldown      *int                   `json:"cooldown"`
	UpgradeLevel  *int                   `json:"upgrade_level"`
	DropRate      *float64               `json:"drop_rate"`
	StatModifiers map[string]interface{} `json:"stat_modifiers"`
}

// ImportResult 物品目录导入结果
type ImportResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Nickname string `json:"nickname"`
	IP       string `json:"-"` // 客户端IP，由handler设置
}

// LoginRequest 登录请求
type LoginRequest struct {
	Account   string `json:"account" binding:"required"` // 用户名或邮箱
	Password  string `json:"password" binding:"required"`
	IP        string `json:"-"`
	UserAgent string `json:"-"`
}

// RefreshRequest 刷新令牌请求
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// AuthResponse 认证响应
type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
	TokenType    string       `json:"token_type"`
}

// TokenClaims 已验证的令牌信息
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	SessionID string `json:"session_id"`
	ExpiresAt int64  `json:"exp"`
}
