package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/models"
	"github.com/wfunc/hexrealm/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PlayerServiceTestSuite 玩家服务测试套件
type PlayerServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	db       *gorm.DB
	services *Services
	game     *models.Game
	user     *models.User
}

func (s *PlayerServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.services, s.db = newTestServices(s.T())
	s.game = repository.SeedGame(s.T(), s.db, models.GameStatusWaiting)
	s.user = repository.SeedUser(s.T(), s.db, "alice")
}

func (s *PlayerServiceTestSuite) join(userID uint, color string) (*models.Player, error) {
	return s.services.Player.Join(s.ctx, userID, &JoinGameRequest{
		Game:       s.game.ID,
		PlayerName: "Alice",
		Color:      color,
	})
}

func (s *PlayerServiceTestSuite) message(err error) string {
	appErr, ok := errors.As(err)
	s.Require().True(ok, "expected an application error, got %v", err)
	return appErr.PublicMessage()
}

func (s *PlayerServiceTestSuite) TestJoin() {
	player, err := s.join(s.user.ID, "#00FF00")
	s.Require().NoError(err)
	s.Equal(s.game.ID, player.GameID)
	s.Equal(s.user.ID, player.UserID)
	s.True(player.IsActive)
	s.False(player.JoinedAt.IsZero())
}

func (s *PlayerServiceTestSuite) TestJoinStartingResources() {
	s.Require().NoError(s.db.Model(s.game).Update("settings", datatypes.JSONMap{
		"starting_resources": map[string]interface{}{"gold": 100, "wood": 50},
	}).Error)

	player, err := s.join(s.user.ID, "#00FF00")
	s.Require().NoError(err)
	s.Equal(map[string]int{"gold": 100, "wood": 50}, player.Resources.Data())
}

func (s *PlayerServiceTestSuite) TestJoinIgnoresMalformedStartingResources() {
	s.Require().NoError(s.db.Model(s.game).Update("settings", datatypes.JSONMap{
		"starting_resources": map[string]interface{}{"gold": -5, "wood": "lots", "stone": 30},
	}).Error)

	player, err := s.join(s.user.ID, "#00FF00")
	s.Require().NoError(err)
	s.Equal(map[string]int{"stone": 30}, player.Resources.Data())
}

func (s *PlayerServiceTestSuite) TestJoinRejectsBadColor() {
	_, err := s.join(s.user.ID, "green")
	s.Equal("Color must be in hex format (#RRGGBB)", s.message(err))
}

func (s *PlayerServiceTestSuite) TestJoinTwice() {
	_, err := s.join(s.user.ID, "#00FF00")
	s.Require().NoError(err)

	_, err = s.join(s.user.ID, "#0000FF")
	s.Equal("You already have a player in this game", s.message(err))
}

func (s *PlayerServiceTestSuite) TestJoinFullGame() {
	for i := 0; i < s.game.MaxPlayers; i++ {
		repository.SeedPlayer(s.T(), s.db, s.game.ID, "filler"+string(rune('a'+i)))
	}

	_, err := s.join(s.user.ID, "#00FF00")
	s.True(errors.Is(err, errors.ErrGameFull))
	s.Equal("Game is full", s.message(err))
}

func (s *PlayerServiceTestSuite) TestJoinClosedGame() {
	for _, status := range []string{models.GameStatusPaused, models.GameStatusFinished} {
		s.Require().NoError(s.db.Model(s.game).Update("status", status).Error)
		_, err := s.join(s.user.ID, "#00FF00")
		s.Equal("Cannot join a finished or paused game", s.message(err), status)
	}
}

func (s *PlayerServiceTestSuite) TestJoinUnknownGame() {
	_, err := s.services.Player.Join(s.ctx, s.user.ID, &JoinGameRequest{
		Game:       9999,
		PlayerName: "Alice",
		Color:      "#00FF00",
	})
	s.True(errors.Is(err, errors.ErrInvalidParam))
	s.Equal("Game 9999 does not exist", s.message(err))
}

func (s *PlayerServiceTestSuite) TestGetCountsAliveCharacters() {
	player := repository.SeedPlayer(s.T(), s.db, s.game.ID, "bob")
	repository.SeedCharacter(s.T(), s.db, player, 0, 0)
	dead := repository.SeedCharacter(s.T(), s.db, player, 1, 0)
	s.Require().NoError(s.db.Model(dead).Update("status", models.CharacterStatusDead).Error)

	loaded, err := s.services.Player.Get(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), loaded.CharacterCount)

	list, err := s.services.Player.List(s.ctx, repository.PlayerFilter{GameID: s.game.ID}, nil)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(int64(1), list[0].CharacterCount)
}

func (s *PlayerServiceTestSuite) TestUpdate() {
	player, err := s.join(s.user.ID, "#00FF00")
	s.Require().NoError(err)

	_, err = s.services.Player.Update(s.ctx, player.ID, &UpdatePlayerRequest{Color: ptr("#12345")})
	s.Error(err)

	updated, err := s.services.Player.Update(s.ctx, player.ID, &UpdatePlayerRequest{
		Score:     ptr(42),
		IsActive:  ptr(false),
		Resources: map[string]int{"gold": 7},
	})
	s.Require().NoError(err)
	s.Equal(42, updated.Score)
	s.False(updated.IsActive)
	s.NotNil(updated.DefeatedAt)
	s.Equal(7, updated.Resources.Data()["gold"])
}

func (s *PlayerServiceTestSuite) TestDeleteRemovesCharacters() {
	player := repository.SeedPlayer(s.T(), s.db, s.game.ID, "bob")
	character := repository.SeedCharacter(s.T(), s.db, player, 0, 0)

	s.Require().NoError(s.services.Player.Delete(s.ctx, player.ID))

	_, err := s.services.Character.Get(s.ctx, character.ID)
	s.True(errors.Is(err, errors.ErrNotFound))
}

func TestPlayerServiceSuite(t *testing.T) {
	suite.Run(t, new(PlayerServiceTestSuite))
}
