package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/wfunc/hexrealm/internal/config"
	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/models"
	"github.com/wfunc/hexrealm/internal/repository"
	"gorm.io/gorm"
)

// MapServiceTestSuite 地图服务测试套件
type MapServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	db       *gorm.DB
	services *Services
	game     *models.Game
}

func (s *MapServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.services, s.db = newTestServices(s.T())
	s.game = repository.SeedGame(s.T(), s.db, models.GameStatusActive)
}

func (s *MapServiceTestSuite) tile(q, r int) *models.HexTile {
	tile, err := s.services.Map.CreateTile(s.ctx, &CreateTileRequest{
		Game:        s.game.ID,
		Q:           q,
		R:           r,
		TerrainType: models.TerrainPlains,
	})
	s.Require().NoError(err)
	return tile
}

func (s *MapServiceTestSuite) TestCreateTile() {
	tile := s.tile(2, -1)
	s.True(tile.IsPassable)
	s.False(tile.HasStructure())

	_, err := s.services.Map.CreateTile(s.ctx, &CreateTileRequest{
		Game:        s.game.ID,
		Q:           2,
		R:           -1,
		TerrainType: models.TerrainForest,
	})
	s.True(errors.Is(err, errors.ErrTileOccupied))

	_, err = s.services.Map.CreateTile(s.ctx, &CreateTileRequest{
		Game:        s.game.ID,
		TerrainType: "lava",
	})
	s.True(errors.Is(err, errors.ErrInvalidParam))
}

func (s *MapServiceTestSuite) TestUpdateTileOntoOccupied() {
	s.tile(0, 0)
	other := s.tile(1, 0)

	_, err := s.services.Map.UpdateTile(s.ctx, other.ID, &UpdateTileRequest{Q: ptr(0)})
	s.True(errors.Is(err, errors.ErrTileOccupied))

	updated, err := s.services.Map.UpdateTile(s.ctx, other.ID, &UpdateTileRequest{
		R:          ptr(5),
		IsPassable: ptr(false),
		Structure:  &models.Structure{Type: "tower", Level: 1},
	})
	s.Require().NoError(err)
	s.Equal(5, updated.R)
	s.False(updated.IsPassable)
	s.True(updated.HasStructure())
}

func (s *MapServiceTestSuite) TestNearbyRequiresParameters() {
	_, err := s.services.Map.Nearby(s.ctx, NearbyQuery{Game: &s.game.ID, Q: ptr(0)})
	s.Require().Error(err)
	appErr, _ := errors.As(err)
	s.Equal("game, q, and r parameters are required", appErr.PublicMessage())

	_, err = s.services.Map.Nearby(s.ctx, NearbyQuery{Game: &s.game.ID, Q: ptr(0), R: ptr(0), Radius: ptr(-1)})
	s.True(errors.Is(err, errors.ErrInvalidParam))
}

func (s *MapServiceTestSuite) TestNearbyModes() {
	for q := -2; q <= 2; q++ {
		for r := -2; r <= 2; r++ {
			repository.SeedTile(s.T(), s.db, s.game.ID, q, r, true)
		}
	}
	query := NearbyQuery{Game: &s.game.ID, Q: ptr(0), R: ptr(0)}

	// 默认半径 1 的包围盒是 3x3
	tiles, err := s.services.Map.Nearby(s.ctx, query)
	s.Require().NoError(err)
	s.Len(tiles, 9)

	cfg := config.Default().Game
	cfg.NearbyMode = config.NearbyModeHex
	s.services.ApplyGameConfig(cfg)

	tiles, err = s.services.Map.Nearby(s.ctx, query)
	s.Require().NoError(err)
	s.Len(tiles, 7)

	query.Radius = ptr(2)
	tiles, err = s.services.Map.Nearby(s.ctx, query)
	s.Require().NoError(err)
	s.Len(tiles, 19)
}

func (s *MapServiceTestSuite) TestNearbyMaxRadius() {
	cfg := config.Default().Game
	cfg.MaxRadius = 3
	s.services.ApplyGameConfig(cfg)

	_, err := s.services.Map.Nearby(s.ctx, NearbyQuery{Game: &s.game.ID, Q: ptr(0), R: ptr(0), Radius: ptr(4)})
	s.True(errors.Is(err, errors.ErrInvalidParam))
}

func (s *MapServiceTestSuite) TestNearbyRadiusUnlimitedByDefault() {
	repository.SeedTile(s.T(), s.db, s.game.ID, 0, 0, true)
	repository.SeedTile(s.T(), s.db, s.game.ID, 120, 0, true)

	tiles, err := s.services.Map.Nearby(s.ctx, NearbyQuery{Game: &s.game.ID, Q: ptr(0), R: ptr(0), Radius: ptr(120)})
	s.Require().NoError(err)
	s.Len(tiles, 2)
}

func TestMapServiceSuite(t *testing.T) {
	suite.Run(t, new(MapServiceTestSuite))
}
