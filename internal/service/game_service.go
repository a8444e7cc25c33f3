package service

import (
	"context"
	"strings"
	"time"

	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/logger"
	"github.com/wfunc/hexrealm/internal/models"
	"github.com/wfunc/hexrealm/internal/repository"
	"github.com/wfunc/hexrealm/internal/rules"
	"github.com/wfunc/hexrealm/internal/snapshot"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// 世界事件类型
const (
	EventStateCaptured = "state_captured"
	EventTickAdvanced  = "tick_advanced"
)

// gameService 游戏服务实现
type gameService struct {
	repos  *repository.Manager
	helper *repository.TransactionHelper
	codec  *snapshot.Codec
	states *stateReader
	log    *zap.Logger
}

// NewGameService 创建游戏服务
func NewGameService(
	repos *repository.Manager,
	helper *repository.TransactionHelper,
	codec *snapshot.Codec,
	log *zap.Logger,
) GameService {
	return &gameService{
		repos:  repos,
		helper: helper,
		codec:  codec,
		states: &stateReader{codec: codec, log: log},
		log:    log,
	}
}

// Create 创建游戏，初始状态为 waiting
func (s *gameService) Create(ctx context.Context, req *CreateGameRequest) (*models.Game, error) {
	game := &models.Game{
		Name:                strings.TrimSpace(req.Name),
		Status:              models.GameStatusWaiting,
		MaxPlayers:          intOr(req.MaxPlayers, rules.DefaultMaxPlayers),
		TickDurationMinutes: intOr(req.TickDurationMinutes, rules.DefaultTickMinutes),
		MapName:             strings.TrimSpace(req.MapName),
		MapWidth:            intOr(req.MapWidth, rules.DefaultMapSize),
		MapHeight:           intOr(req.MapHeight, rules.DefaultMapSize),
		Settings:            datatypes.JSONMap(req.Settings),
	}
	if game.Settings == nil {
		game.Settings = datatypes.JSONMap{}
	}
	if err := validateGame(game); err != nil {
		return nil, err
	}

	if err := s.repos.Game().Create(ctx, game); err != nil {
		s.log.Error("Failed to create game", zap.Error(err))
		return nil, err
	}

	logger.LogGameEvent("game_created", game.ID, zap.String("name", game.Name))
	return game, nil
}

// Get 获取游戏并填充活跃玩家数
func (s *gameService) Get(ctx context.Context, id uint) (*models.Game, error) {
	game, err := s.repos.Game().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if game.PlayerCount, err = s.repos.Player().CountActive(ctx, id); err != nil {
		return nil, err
	}
	return game, nil
}

// List 游戏列表
func (s *gameService) List(ctx context.Context, filter repository.GameFilter, pagination *repository.Pagination) ([]*models.Game, error) {
	games, err := s.repos.Game().List(ctx, filter, pagination)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return games, nil
	}

	ids := uniqueIDs(games, func(g *models.Game) uint { return g.ID })
	counts, err := s.repos.Player().CountActiveByGames(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, g := range games {
		g.PlayerCount = counts[g.ID]
	}
	return games, nil
}

// Update 更新游戏配置，与状态迁移互斥
func (s *gameService) Update(ctx context.Context, id uint, req *UpdateGameRequest) (*models.Game, error) {
	var game *models.Game
	err := s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		var err error
		game, err = tx.Game().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if req.Name != nil {
			game.Name = strings.TrimSpace(*req.Name)
		}
		if req.MaxPlayers != nil {
			game.MaxPlayers = *req.MaxPlayers
		}
		if req.TickDurationMinutes != nil {
			game.TickDurationMinutes = *req.TickDurationMinutes
		}
		if req.MapName != nil {
			game.MapName = strings.TrimSpace(*req.MapName)
		}
		if req.MapWidth != nil {
			game.MapWidth = *req.MapWidth
		}
		if req.MapHeight != nil {
			game.MapHeight = *req.MapHeight
		}
		if req.Settings != nil {
			game.Settings = datatypes.JSONMap(req.Settings)
		}
		if err := validateGame(game); err != nil {
			return err
		}

		if err := tx.Game().Update(ctx, game); err != nil {
			return err
		}
		game.PlayerCount, err = tx.Player().CountActive(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

// Delete 删除游戏及其全部数据
func (s *gameService) Delete(ctx context.Context, id uint) error {
	if err := s.repos.Game().Delete(ctx, id); err != nil {
		return err
	}
	logger.LogGameEvent("game_deleted", id)
	return nil
}

// Transition 状态迁移，使用条件更新避免并发请求覆盖彼此的结果
func (s *gameService) Transition(ctx context.Context, id uint, action string) (*models.Game, error) {
	var game *models.Game
	err := s.helper.RunWithRetry(ctx, maxConflictRetries, func(tx *repository.Transaction) error {
		current, err := tx.Game().FindByID(ctx, id)
		if err != nil {
			return err
		}
		to, err := rules.Transition(current.Status, action)
		if err != nil {
			return err
		}

		now := time.Now()
		fields := map[string]interface{}{}
		switch action {
		case rules.ActionStart:
			fields["started_at"] = now
			fields["next_tick_at"] = now.Add(tickDuration(current))
		case rules.ActionResume:
			fields["next_tick_at"] = now.Add(tickDuration(current))
		case rules.ActionFinish:
			fields["finished_at"] = now
			fields["next_tick_at"] = nil
		}

		ok, err := tx.Game().TransitionStatus(ctx, id, current.Status, to, fields)
		if err != nil {
			return err
		}
		if !ok {
			return repository.ErrConflict
		}

		game, err = tx.Game().FindByID(ctx, id)
		if err != nil {
			return err
		}
		game.PlayerCount, err = tx.Player().CountActive(ctx, id)
		return err
	})
	if err != nil {
		return nil, conflictErr(err, "Game status was changed by another request")
	}

	logger.LogGameEvent("game_"+action, id, zap.String("status", game.Status))
	return game, nil
}

// AdvanceTick 推进回合，并发推进时只有一个请求成功，其余返回错误而不会重复推进
func (s *gameService) AdvanceTick(ctx context.Context, id uint) (*TickResult, error) {
	result := &TickResult{}
	err := s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		game, err := tx.Game().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := rules.CanAdvanceTick(game); err != nil {
			return err
		}

		next := time.Now().Add(tickDuration(game))
		ok, err := tx.Game().AdvanceTick(ctx, id, game.CurrentTick, next)
		if err != nil {
			return err
		}
		if !ok {
			return repository.ErrConflict
		}
		game.CurrentTick++
		game.NextTickAt = &next

		state, err := s.capture(ctx, tx, game, EventTickAdvanced)
		if err != nil {
			return err
		}
		if game.PlayerCount, err = tx.Player().CountActive(ctx, id); err != nil {
			return err
		}
		result.Game = game
		result.State = state
		return nil
	})
	if err != nil {
		return nil, conflictErr(err, "Tick was advanced by another request")
	}

	logger.LogGameEvent("tick_advanced", id,
		zap.Int("tick", result.Game.CurrentTick),
		zap.String("state_hash", result.State.StateHash),
	)
	return result, nil
}

// CaptureState 保存当前回合的世界快照
func (s *gameService) CaptureState(ctx context.Context, id uint) (*models.WorldState, error) {
	var state *models.WorldState
	err := s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		game, err := tx.Game().FindByID(ctx, id)
		if err != nil {
			return err
		}
		state, err = s.capture(ctx, tx, game, EventStateCaptured)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.LogGameEvent("state_captured", id,
		zap.Int("tick", state.Tick),
		zap.String("state_hash", state.StateHash),
	)
	return state, nil
}

// CurrentState 当前世界快照
func (s *gameService) CurrentState(ctx context.Context, id uint) (*models.WorldState, error) {
	var state *models.WorldState
	err := s.repos.WithReadOnlyTransaction(ctx, func(tx *repository.Transaction) error {
		if _, err := tx.Game().FindByID(ctx, id); err != nil {
			return err
		}
		var err error
		state, err = tx.WorldState().FindCurrent(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := s.states.hydrate(state); err != nil {
		return nil, err
	}
	return state, nil
}

// capture 在事务内构建快照并设为当前
func (s *gameService) capture(ctx context.Context, tx *repository.Transaction, game *models.Game, event string) (*models.WorldState, error) {
	exists, err := tx.WorldState().ExistsAt(ctx, game.ID, game.CurrentTick)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Validation("A world state already exists for this tick")
	}

	snap, err := buildSnapshot(ctx, tx, game)
	if err != nil {
		return nil, err
	}
	encoded, err := s.codec.Encode(snap)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDataIntegrity)
	}

	state := &models.WorldState{
		GameID:       game.ID,
		Tick:         game.CurrentTick,
		StateHash:    encoded.Hash,
		Compression:  encoded.Compression,
		SnapshotData: encoded.Data,
		Events: datatypes.NewJSONType([]models.WorldEvent{
			{Type: event, Tick: game.CurrentTick},
		}),
	}
	for _, p := range snap.Players {
		if p.IsActive {
			state.ActivePlayers++
		}
	}
	for _, c := range snap.Characters {
		if c.Status != models.CharacterStatusDead {
			state.TotalCharacters++
		}
	}

	if err := tx.WorldState().CreateCurrent(ctx, state); err != nil {
		return nil, err
	}
	state.StateSnapshot = snap
	return state, nil
}

// buildSnapshot 读取游戏下的全部实体，生成反规范化快照
func buildSnapshot(ctx context.Context, tx *repository.Transaction, game *models.Game) (*models.WorldSnapshot, error) {
	snap := &models.WorldSnapshot{
		GameID: game.ID,
		Tick:   game.CurrentTick,
		Status: game.Status,
	}

	players, err := tx.Player().ListByGame(ctx, game.ID)
	if err != nil {
		return nil, err
	}
	for _, p := range players {
		snap.Players = append(snap.Players, models.PlayerSnapshot{
			ID:        p.ID,
			Name:      p.PlayerName,
			Color:     p.Color,
			IsActive:  p.IsActive,
			Score:     p.Score,
			Resources: p.Resources.Data(),
		})
	}

	tiles, err := tx.HexTile().List(ctx, repository.HexTileFilter{GameID: game.ID}, nil)
	if err != nil {
		return nil, err
	}
	for _, t := range tiles {
		snap.Tiles = append(snap.Tiles, models.TileSnapshot{
			Q:          t.Q,
			R:          t.R,
			Terrain:    t.TerrainType,
			Elevation:  t.Elevation,
			IsPassable: t.IsPassable,
			Structure:  t.Structure.Data(),
		})
	}

	characters, err := tx.Character().List(ctx, repository.CharacterFilter{GameID: game.ID, IncludeDead: true}, nil)
	if err != nil {
		return nil, err
	}
	for _, c := range characters {
		snap.Characters = append(snap.Characters, models.CharacterSnapshot{
			ID:        c.ID,
			OwnerID:   c.OwnerID,
			Name:      c.Name,
			Q:         c.PositionQ,
			R:         c.PositionR,
			Status:    c.Status,
			Health:    c.Health,
			Stamina:   c.Stamina,
			Inventory: c.InventoryCount(),
		})
	}

	available := true
	items, err := tx.MapItem().List(ctx, repository.MapItemFilter{GameID: game.ID, Available: &available}, nil)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		snap.MapItems = append(snap.MapItems, models.MapItemSnapshot{
			ItemID:   it.ItemID,
			ItemType: it.ItemType,
			Q:        it.PositionQ,
			R:        it.PositionR,
			Quantity: it.Quantity,
		})
	}

	interactables, err := tx.Interactable().List(ctx, repository.InteractableFilter{GameID: game.ID}, nil)
	if err != nil {
		return nil, err
	}
	for _, it := range interactables {
		snap.Interactables = append(snap.Interactables, models.InteractableSnapshot{
			ID:          it.ID,
			Type:        it.InteractableType,
			Q:           it.PositionQ,
			R:           it.PositionR,
			State:       it.State,
			CurrentUses: it.CurrentUses,
		})
	}

	return snap, nil
}

func tickDuration(game *models.Game) time.Duration {
	return time.Duration(game.TickDurationMinutes) * time.Minute
}

// validateGame 创建与更新共用的字段校验
func validateGame(game *models.Game) error {
	if game.Name == "" {
		return errors.Validation("Game name is required")
	}
	if game.MapName == "" {
		return errors.Validation("Map name is required")
	}
	if err := rules.ValidateMaxPlayers(game.MaxPlayers); err != nil {
		return err
	}
	if err := rules.ValidateTickDuration(game.TickDurationMinutes); err != nil {
		return err
	}
	if err := rules.ValidateMapWidth(game.MapWidth); err != nil {
		return err
	}
	if err := rules.ValidateMapHeight(game.MapHeight); err != nil {
		return err
	}
	return nil
}
