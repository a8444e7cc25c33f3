package service

//go:generate go run go.uber.org/mock/mockgen@v0.5.0 -source=interfaces.go -destination=mocks/services_mock.go -package=mocks

import (
	"context"

	"github.com/wfunc/hexrealm/internal/catalog"
	"github.com/wfunc/hexrealm/internal/models"
	"github.com/wfunc/hexrealm/internal/repository"
)

// GameService 游戏生命周期服务
type GameService interface {
	Create(ctx context.Context, req *CreateGameRequest) (*models.Game, error)
	Get(ctx context.Context, id uint) (*models.Game, error)
	List(ctx context.Context, filter repository.GameFilter, pagination *repository.Pagination) ([]*models.Game, error)
	Update(ctx context.Context, id uint, req *UpdateGameRequest) (*models.Game, error)
	Delete(ctx context.Context, id uint) error

	// Transition 执行 start/pause/resume/finish 动作
	Transition(ctx context.Context, id uint, action string) (*models.Game, error)
	// AdvanceTick 推进一个回合并保存新回合的世界快照
	AdvanceTick(ctx context.Context, id uint) (*TickResult, error)
	// CaptureState 为当前回合保存世界快照
	CaptureState(ctx context.Context, id uint) (*models.WorldState, error)
	// CurrentState 当前世界快照
	CurrentState(ctx context.Context, id uint) (*models.WorldState, error)
}

// WorldStateService 世界快照查询服务
type WorldStateService interface {
	Get(ctx context.Context, id uint) (*models.WorldState, error)
	List(ctx context.Context, filter repository.WorldStateFilter, pagination *repository.Pagination) ([]*models.WorldState, error)
}

// PlayerService 玩家服务
type PlayerService interface {
	// Join 以 userID 的身份加入游戏
	Join(ctx context.Context, userID uint, req *JoinGameRequest) (*models.Player, error)
	Get(ctx context.Context, id uint) (*models.Player, error)
	List(ctx context.Context, filter repository.PlayerFilter, pagination *repository.Pagination) ([]*models.Player, error)
	Update(ctx context.Context, id uint, req *UpdatePlayerRequest) (*models.Player, error)
	Delete(ctx context.Context, id uint) error
}

// MapService 地图服务
type MapService interface {
	CreateTile(ctx context.Context, req *CreateTileRequest) (*models.HexTile, error)
	GetTile(ctx context.Context, id uint) (*models.HexTile, error)
	ListTiles(ctx context.Context, filter repository.HexTileFilter, pagination *repository.Pagination) ([]*models.HexTile, error)
	UpdateTile(ctx context.Context, id uint, req *UpdateTileRequest) (*models.HexTile, error)
	DeleteTile(ctx context.Context, id uint) error
	Nearby(ctx context.Context, query NearbyQuery) ([]*models.HexTile, error)
}

// CharacterService 角色服务
type CharacterService interface {
	Create(ctx context.Context, req *CreateCharacterRequest) (*models.Character, error)
	Get(ctx context.Context, id uint) (*models.Character, error)
	List(ctx context.Context, filter repository.CharacterFilter, pagination *repository.Pagination) ([]*models.Character, error)
	Update(ctx context.Context, id uint, req *UpdateCharacterRequest) (*models.Character, error)
	Delete(ctx context.Context, id uint) error
	Move(ctx context.Context, id uint, req *MoveRequest) (*models.Character, error)
	Loot(ctx context.Context, id uint, req *LootRequest) (*models.Character, error)
}

// MapItemService 地图物品服务
type MapItemService interface {
	Create(ctx context.Context, req *CreateMapItemRequest) (*models.MapItem, error)
	Get(ctx context.Context, id uint) (*models.MapItem, error)
	List(ctx context.Context, filter repository.MapItemFilter, pagination *repository.Pagination) ([]*models.MapItem, error)
	Update(ctx context.Context, id uint, req *UpdateMapItemRequest) (*models.MapItem, error)
	Delete(ctx context.Context, id uint) error
}

// InteractableService 交互对象服务
type InteractableService interface {
	Create(ctx context.Context, req *CreateInteractableRequest) (*models.Interactable, error)
	Get(ctx context.Context, id uint) (*models.Interactable, error)
	List(ctx context.Context, filter repository.InteractableFilter, pagination *repository.Pagination) ([]*models.Interactable, error)
	Update(ctx context.Context, id uint, req *UpdateInteractableRequest) (*models.Interactable, error)
	Delete(ctx context.Context, id uint) error
	Interact(ctx context.Context, id uint, req *InteractRequest) (*models.Interactable, error)
}

// ItemService 物品目录服务
type ItemService interface {
	Create(ctx context.Context, req *ItemRequest) (*models.Item, error)
	Get(ctx context.Context, id uint) (*models.Item, error)
	List(ctx context.Context, filter repository.ItemFilter, pagination *repository.Pagination) ([]*models.Item, error)
	Update(ctx context.Context, id uint, req *ItemRequest) (*models.Item, error)
	Delete(ctx context.Context, id uint) error
	SetActive(ctx context.Context, id uint, active bool) (*models.Item, error)
	// ByRarity 与 List 相同，但 rarity 必填
	ByRarity(ctx context.Context, filter repository.ItemFilter) ([]*models.Item, error)
	// ByType 与 List 相同，但 type 必填
	ByType(ctx context.Context, filter repository.ItemFilter) ([]*models.Item, error)
	// Import 从种子文件批量导入，同名物品覆盖
	Import(ctx context.Context, file *catalog.File) (*ImportResult, error)
}

// AuthService 认证服务
type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error)
	Logout(ctx context.Context, sessionID string) error
	// LogoutAll 注销用户的全部会话
	LogoutAll(ctx context.Context, userID uint) error
	// ChangePassword 修改密码，成功后全部会话失效
	ChangePassword(ctx context.Context, userID uint, req *ChangePasswordRequest) error
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
	Profile(ctx context.Context, userID uint) (*models.User, error)
}
