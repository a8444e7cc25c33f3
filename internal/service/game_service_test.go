package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/models"
	"github.com/wfunc/hexrealm/internal/repository"
	"github.com/wfunc/hexrealm/internal/rules"
	"gorm.io/gorm"
)

// GameServiceTestSuite 游戏服务测试套件
type GameServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	db       *gorm.DB
	services *Services
}

func (s *GameServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.services, s.db = newTestServices(s.T())
}

func (s *GameServiceTestSuite) create() *models.Game {
	game, err := s.services.Game.Create(s.ctx, &CreateGameRequest{
		Name:    "Skirmish",
		MapName: "isles",
	})
	s.Require().NoError(err)
	return game
}

func (s *GameServiceTestSuite) TestCreateDefaults() {
	game := s.create()

	s.Equal(models.GameStatusWaiting, game.Status)
	s.Equal(rules.DefaultMaxPlayers, game.MaxPlayers)
	s.Equal(rules.DefaultTickMinutes, game.TickDurationMinutes)
	s.Equal(rules.DefaultMapSize, game.MapWidth)
	s.Equal(0, game.CurrentTick)
	s.NotNil(game.Settings)
}

func (s *GameServiceTestSuite) TestCreateValidation() {
	cases := []struct {
		name string
		req  *CreateGameRequest
	}{
		{"missing name", &CreateGameRequest{MapName: "m"}},
		{"missing map name", &CreateGameRequest{Name: "g"}},
		{"width too small", &CreateGameRequest{Name: "g", MapName: "m", MapWidth: ptr(9)}},
		{"height too large", &CreateGameRequest{Name: "g", MapName: "m", MapHeight: ptr(201)}},
		{"tick too long", &CreateGameRequest{Name: "g", MapName: "m", TickDurationMinutes: ptr(1441)}},
		{"no players", &CreateGameRequest{Name: "g", MapName: "m", MaxPlayers: ptr(0)}},
	}
	for _, tc := range cases {
		_, err := s.services.Game.Create(s.ctx, tc.req)
		s.Error(err, tc.name)
		s.True(errors.IsClientError(err), tc.name)
	}
}

func (s *GameServiceTestSuite) TestSettingsAreOpaque() {
	game, err := s.services.Game.Create(s.ctx, &CreateGameRequest{
		Name:    "g",
		MapName: "m",
		Settings: map[string]interface{}{
			"fog_of_war":        "yes",
			"victory_condition": "vibes",
			"house_rules":       []interface{}{"no diagonals", 3},
		},
	})
	s.Require().NoError(err)

	loaded, err := s.services.Game.Get(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal("yes", loaded.Settings["fog_of_war"])
	s.Equal("vibes", loaded.Settings["victory_condition"])
	s.Len(loaded.Settings["house_rules"], 2)

	updated, err := s.services.Game.Update(s.ctx, game.ID, &UpdateGameRequest{
		Settings: map[string]interface{}{"starting_resources": "plenty"},
	})
	s.Require().NoError(err)
	s.Equal("plenty", updated.Settings["starting_resources"])
}

func (s *GameServiceTestSuite) TestUpdateRechecksBounds() {
	game := s.create()

	_, err := s.services.Game.Update(s.ctx, game.ID, &UpdateGameRequest{MapWidth: ptr(500)})
	s.Error(err)

	updated, err := s.services.Game.Update(s.ctx, game.ID, &UpdateGameRequest{Name: ptr("Renamed"), MapWidth: ptr(80)})
	s.Require().NoError(err)
	s.Equal("Renamed", updated.Name)
	s.Equal(80, updated.MapWidth)
	s.Equal(models.GameStatusWaiting, updated.Status)
}

func (s *GameServiceTestSuite) TestLifecycle() {
	game := s.create()

	_, err := s.services.Game.Transition(s.ctx, game.ID, rules.ActionPause)
	s.True(errors.Is(err, errors.ErrGameStateError))

	started, err := s.services.Game.Transition(s.ctx, game.ID, rules.ActionStart)
	s.Require().NoError(err)
	s.Equal(models.GameStatusActive, started.Status)
	s.NotNil(started.StartedAt)
	s.NotNil(started.NextTickAt)

	_, err = s.services.Game.Transition(s.ctx, game.ID, rules.ActionStart)
	s.Require().Error(err)
	appErr, ok := errors.As(err)
	s.Require().True(ok)
	s.Equal("Game must be in 'waiting' status to start", appErr.PublicMessage())

	paused, err := s.services.Game.Transition(s.ctx, game.ID, rules.ActionPause)
	s.Require().NoError(err)
	s.Equal(models.GameStatusPaused, paused.Status)

	resumed, err := s.services.Game.Transition(s.ctx, game.ID, rules.ActionResume)
	s.Require().NoError(err)
	s.Equal(models.GameStatusActive, resumed.Status)

	finished, err := s.services.Game.Transition(s.ctx, game.ID, rules.ActionFinish)
	s.Require().NoError(err)
	s.Equal(models.GameStatusFinished, finished.Status)
	s.NotNil(finished.FinishedAt)
	s.Nil(finished.NextTickAt)

	_, err = s.services.Game.Transition(s.ctx, game.ID, rules.ActionResume)
	s.Error(err)
}

func (s *GameServiceTestSuite) TestAdvanceTickCapturesState() {
	game := repository.SeedGame(s.T(), s.db, models.GameStatusActive)
	player := repository.SeedPlayer(s.T(), s.db, game.ID, "alice")
	repository.SeedTile(s.T(), s.db, game.ID, 0, 0, true)
	repository.SeedCharacter(s.T(), s.db, player, 0, 0)
	repository.SeedMapItem(s.T(), s.db, game.ID, 0, 0)

	result, err := s.services.Game.AdvanceTick(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(1, result.Game.CurrentTick)
	s.Equal(1, result.State.Tick)
	s.True(result.State.IsCurrent)
	s.Equal(1, result.State.ActivePlayers)
	s.Equal(1, result.State.TotalCharacters)
	s.Len(result.State.StateHash, 64)

	current, err := s.services.Game.CurrentState(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(result.State.ID, current.ID)
	s.Require().NotNil(current.StateSnapshot)
	s.Len(current.StateSnapshot.Tiles, 1)
	s.Len(current.StateSnapshot.Characters, 1)
	s.Len(current.StateSnapshot.MapItems, 1)

	second, err := s.services.Game.AdvanceTick(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(2, second.Game.CurrentTick)

	states, err := s.services.WorldState.List(s.ctx, repository.WorldStateFilter{GameID: game.ID}, nil)
	s.Require().NoError(err)
	s.Len(states, 2)
	currents := 0
	for _, st := range states {
		if st.IsCurrent {
			currents++
			s.Equal(2, st.Tick)
		}
	}
	s.Equal(1, currents)
}

func (s *GameServiceTestSuite) TestAdvanceTickRequiresActive() {
	game := s.create()

	_, err := s.services.Game.AdvanceTick(s.ctx, game.ID)
	s.True(errors.Is(err, errors.ErrGameStateError))
}

func (s *GameServiceTestSuite) TestCaptureStateOncePerTick() {
	game := s.create()

	_, err := s.services.Game.CurrentState(s.ctx, game.ID)
	s.True(errors.Is(err, errors.ErrNotFound))

	state, err := s.services.Game.CaptureState(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(0, state.Tick)

	_, err = s.services.Game.CaptureState(s.ctx, game.ID)
	s.True(errors.Is(err, errors.ErrInvalidParam))

	loaded, err := s.services.WorldState.Get(s.ctx, state.ID)
	s.Require().NoError(err)
	s.Require().NotNil(loaded.StateSnapshot)
	s.Equal(game.ID, loaded.StateSnapshot.GameID)
}

func (s *GameServiceTestSuite) TestListFillsPlayerCount() {
	game := s.create()
	repository.SeedPlayer(s.T(), s.db, game.ID, "alice")
	repository.SeedPlayer(s.T(), s.db, game.ID, "bob")

	games, err := s.services.Game.List(s.ctx, repository.GameFilter{}, nil)
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.Equal(int64(2), games[0].PlayerCount)
}

func (s *GameServiceTestSuite) TestDeleteCascades() {
	game := repository.SeedGame(s.T(), s.db, models.GameStatusActive)
	repository.SeedTile(s.T(), s.db, game.ID, 0, 0, true)

	s.Require().NoError(s.services.Game.Delete(s.ctx, game.ID))

	_, err := s.services.Game.Get(s.ctx, game.ID)
	s.True(errors.Is(err, errors.ErrNotFound))
	tiles, err := s.services.Map.ListTiles(s.ctx, repository.HexTileFilter{GameID: game.ID}, nil)
	s.Require().NoError(err)
	s.Empty(tiles)
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}
