package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/logger"
	"github.com/wfunc/hexrealm/internal/models"
	"github.com/wfunc/hexrealm/internal/repository"
	"github.com/wfunc/hexrealm/internal/rules"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// playerService 玩家服务实现
type playerService struct {
	repos *repository.Manager
	log   *zap.Logger
}

// NewPlayerService 创建玩家服务
func NewPlayerService(repos *repository.Manager, log *zap.Logger) PlayerService {
	return &playerService{repos: repos, log: log}
}

// Join 加入游戏，人数检查与写入在同一事务中完成，游戏行加锁
func (s *playerService) Join(ctx context.Context, userID uint, req *JoinGameRequest) (*models.Player, error) {
	name := strings.TrimSpace(req.PlayerName)
	if name == "" {
		return nil, errors.Validation("Player name is required")
	}
	if err := rules.ValidateColor(req.Color); err != nil {
		return nil, err
	}
	if req.Game == 0 {
		return nil, errors.Validation("game is required")
	}

	var player *models.Player
	err := s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		game, err := tx.Game().FindByIDForUpdate(ctx, req.Game)
		if errors.Is(err, errors.ErrNotFound) {
			return errors.Validation(fmt.Sprintf("Game %d does not exist", req.Game))
		}
		if err != nil {
			return err
		}

		active, err := tx.Player().CountActive(ctx, game.ID)
		if err != nil {
			return err
		}
		if err := rules.CanJoin(game, active); err != nil {
			return err
		}

		exists, err := tx.Player().ExistsForUser(ctx, game.ID, userID)
		if err != nil {
			return err
		}
		if exists {
			return errors.Validation("You already have a player in this game")
		}

		now := time.Now()
		player = &models.Player{
			GameID:                 game.ID,
			UserID:                 userID,
			PlayerName:             name,
			Color:                  req.Color,
			Avatar:                 req.Avatar,
			IsActive:               true,
			IsAI:                   req.IsAI,
			JoinedAt:               now,
			LastActiveAt:           now,
			Resources:              datatypes.NewJSONType(startingResources(game)),
			ResearchedTechnologies: datatypes.NewJSONType([]string{}),
			Diplomacy:              datatypes.NewJSONType(map[uint]models.DiplomacyRelation{}),
		}
		return tx.Player().Create(ctx, player)
	})
	if err != nil {
		return nil, err
	}

	logger.LogGameEvent("player_joined", player.GameID,
		zap.Uint("player_id", player.ID),
		zap.Uint("user_id", userID),
	)
	return player, nil
}

// Get 获取玩家并填充存活角色数
func (s *playerService) Get(ctx context.Context, id uint) (*models.Player, error) {
	player, err := s.repos.Player().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	counts, err := s.repos.Player().CountAliveCharacters(ctx, []uint{id})
	if err != nil {
		return nil, err
	}
	player.CharacterCount = counts[id]
	return player, nil
}

// List 玩家列表
func (s *playerService) List(ctx context.Context, filter repository.PlayerFilter, pagination *repository.Pagination) ([]*models.Player, error) {
	players, err := s.repos.Player().List(ctx, filter, pagination)
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return players, nil
	}

	ids := uniqueIDs(players, func(p *models.Player) uint { return p.ID })
	counts, err := s.repos.Player().CountAliveCharacters(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range players {
		p.CharacterCount = counts[p.ID]
	}
	return players, nil
}

// Update 更新玩家
func (s *playerService) Update(ctx context.Context, id uint, req *UpdatePlayerRequest) (*models.Player, error) {
	player, err := s.repos.Player().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PlayerName != nil {
		name := strings.TrimSpace(*req.PlayerName)
		if name == "" {
			return nil, errors.Validation("Player name is required")
		}
		player.PlayerName = name
	}
	if req.Color != nil {
		if err := rules.ValidateColor(*req.Color); err != nil {
			return nil, err
		}
		player.Color = *req.Color
	}
	if req.Avatar != nil {
		player.Avatar = *req.Avatar
	}
	if req.IsActive != nil {
		player.IsActive = *req.IsActive
		if !player.IsActive && player.DefeatedAt == nil {
			now := time.Now()
			player.DefeatedAt = &now
		}
	}
	if req.Score != nil {
		player.Score = *req.Score
	}
	if req.Resources != nil {
		player.Resources = datatypes.NewJSONType(req.Resources)
	}
	if req.ResearchedTechnologies != nil {
		player.ResearchedTechnologies = datatypes.NewJSONType(*req.ResearchedTechnologies)
	}
	if req.CurrentResearch != nil {
		player.CurrentResearch = datatypes.NewJSONType(*req.CurrentResearch)
	}
	if req.Diplomacy != nil {
		player.Diplomacy = datatypes.NewJSONType(req.Diplomacy)
	}
	player.LastActiveAt = time.Now()

	if err := s.repos.Player().Update(ctx, player); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete 删除玩家及其角色
func (s *playerService) Delete(ctx context.Context, id uint) error {
	player, err := s.repos.Player().FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repos.Player().Delete(ctx, id); err != nil {
		return err
	}
	logger.LogGameEvent("player_removed", player.GameID, zap.Uint("player_id", id))
	return nil
}

// startingResources 游戏设置中的初始资源
func startingResources(game *models.Game) map[string]int {
	resources := map[string]int{}
	raw, ok := game.Settings["starting_resources"].(map[string]interface{})
	if !ok {
		return resources
	}
	// settings 不做校验，非数字或负数的条目忽略
	for name, v := range raw {
		if n, ok := v.(float64); ok && n >= 0 {
			resources[name] = int(n)
		}
	}
	return resources
}
