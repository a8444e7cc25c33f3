package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/wfunc/hexrealm/internal/config"
	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/hexgrid"
	"github.com/wfunc/hexrealm/internal/models"
	"github.com/wfunc/hexrealm/internal/repository"
	"github.com/wfunc/hexrealm/internal/schema"
	"github.com/wfunc/hexrealm/internal/snapshot"
	"github.com/wfunc/hexrealm/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// maxConflictRetries 条件更新冲突时的最大尝试次数
const maxConflictRetries = 3

// Config 服务配置
type Config struct {
	JWTSecret          string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	Game               config.GameConfig
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return ConfigFrom(config.Default())
}

// ConfigFrom 从全局配置构造服务配置
func ConfigFrom(cfg *config.Config) *Config {
	return &Config{
		JWTSecret:          cfg.Security.JWT.Secret,
		AccessTokenExpiry:  cfg.Security.JWT.AccessExpiry,
		RefreshTokenExpiry: cfg.Security.JWT.RefreshExpiry,
		Game:               cfg.Game,
	}
}

// Services 服务集合
type Services struct {
	Auth         AuthService
	Game         GameService
	WorldState   WorldStateService
	Player       PlayerService
	Map          MapService
	Character    CharacterService
	MapItem      MapItemService
	Interactable InteractableService
	Item         ItemService

	rules *gameRules
	codec *snapshot.Codec
}

// NewServices 创建服务集合
func NewServices(db *gorm.DB, cfg *Config, log *zap.Logger) (*Services, error) {
	codec, err := snapshot.NewCodec(cfg.Game.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("创建快照编解码器失败: %w", err)
	}

	repos := repository.NewManager(db)
	helper := repository.NewTransactionHelper(repos.Transaction())
	rules := newGameRules(cfg.Game)

	jwtManager := utils.NewJWTManager(
		cfg.JWTSecret,
		cfg.AccessTokenExpiry,
		cfg.RefreshTokenExpiry,
	)

	return &Services{
		Auth:         NewAuthService(repos, jwtManager, log),
		Game:         NewGameService(repos, helper, codec, log),
		WorldState:   NewWorldStateService(repos, codec, log),
		Player:       NewPlayerService(repos, log),
		Map:          NewMapService(repos, rules),
		Character:    NewCharacterService(repos, rules, log),
		MapItem:      NewMapItemService(repos),
		Interactable: NewInteractableService(repos, helper, log),
		Item:         NewItemService(repos, log),
		rules:        rules,
		codec:        codec,
	}, nil
}

// ApplyGameConfig 热更新游戏规则配置，快照压缩方式需要重启生效
func (s *Services) ApplyGameConfig(cfg config.GameConfig) {
	s.rules.store(cfg)
}

// Close 释放资源
func (s *Services) Close() {
	s.codec.Close()
}

// gameRules 可热更新的游戏规则配置
type gameRules struct {
	cfg atomic.Pointer[config.GameConfig]
}

func newGameRules(cfg config.GameConfig) *gameRules {
	r := &gameRules{}
	r.store(cfg)
	return r
}

func (r *gameRules) store(cfg config.GameConfig) {
	r.cfg.Store(&cfg)
}

func (r *gameRules) get() config.GameConfig {
	return *r.cfg.Load()
}

// conflictErr 重试耗尽后仍然冲突时返回可读的校验错误
func conflictErr(err error, msg string) error {
	if stderrors.Is(err, repository.ErrConflict) {
		return errors.New(errors.ErrGameStateError, msg)
	}
	return err
}

// requireGame 引用的游戏必须存在，不存在属于请求参数错误
func requireGame(ctx context.Context, repo repository.GameRepository, id uint) (*models.Game, error) {
	if id == 0 {
		return nil, errors.Validation("game is required")
	}
	game, err := repo.FindByID(ctx, id)
	if errors.Is(err, errors.ErrNotFound) {
		return nil, errors.Validation(fmt.Sprintf("Game %d does not exist", id))
	}
	return game, err
}

// requireTile 坐标上必须有地块
func requireTile(ctx context.Context, repo repository.HexTileRepository, gameID uint, at hexgrid.Coord, msg string) (*models.HexTile, error) {
	tile, err := repo.FindAt(ctx, gameID, at)
	if err != nil {
		return nil, err
	}
	if tile == nil {
		return nil, errors.Validation(msg)
	}
	return tile, nil
}

// validateJSON 将类型化的值转换为通用 JSON 值后按 schema 校验
func validateJSON(name, field string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidParam)
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return errors.Wrap(err, errors.ErrInvalidParam)
	}
	return schema.Validate(name, field, doc)
}

func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

// uniqueIDs 按出现顺序去重提取 ID
func uniqueIDs[T any](rows []*T, id func(*T) uint) []uint {
	seen := make(map[uint]bool, len(rows))
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		v := id(row)
		if !seen[v] {
			seen[v] = true
			ids = append(ids, v)
		}
	}
	return ids
}
