package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/wfunc/hexrealm/internal/config"
	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/models"
	"github.com/wfunc/hexrealm/internal/repository"
	"gorm.io/gorm"
)

// CharacterServiceTestSuite 角色服务测试套件
type CharacterServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	db       *gorm.DB
	services *Services
	game     *models.Game
	player   *models.Player
}

func (s *CharacterServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.services, s.db = newTestServices(s.T())
	s.game = repository.SeedGame(s.T(), s.db, models.GameStatusActive)
	s.player = repository.SeedPlayer(s.T(), s.db, s.game.ID, "alice")
	repository.SeedTile(s.T(), s.db, s.game.ID, 0, 0, true)
	repository.SeedTile(s.T(), s.db, s.game.ID, 1, 0, true)
	repository.SeedTile(s.T(), s.db, s.game.ID, 0, 1, false)
}

func (s *CharacterServiceTestSuite) message(err error) string {
	appErr, ok := errors.As(err)
	s.Require().True(ok, "expected an application error, got %v", err)
	return appErr.PublicMessage()
}

func (s *CharacterServiceTestSuite) TestCreate() {
	character, err := s.services.Character.Create(s.ctx, &CreateCharacterRequest{
		Game:          s.game.ID,
		Owner:         s.player.ID,
		CharacterType: "knight",
		Name:          "Sir Hex",
		MaxHealth:     ptr(150),
	})
	s.Require().NoError(err)
	s.Equal(150, character.Health)
	s.Equal(150, character.MaxHealth)
	s.Equal(character.MaxStamina, character.Stamina)
	s.Equal(3, character.MaxMovementPoints)
	s.Equal(3, character.MovementPoints)
	s.Equal(20, character.InventoryCapacity)
	s.Equal(models.CharacterStatusIdle, character.Status)
}

func (s *CharacterServiceTestSuite) TestCreateRequiresOwnerInGame() {
	other := repository.SeedGame(s.T(), s.db, models.GameStatusWaiting)
	stranger := repository.SeedPlayer(s.T(), s.db, other.ID, "bob")

	_, err := s.services.Character.Create(s.ctx, &CreateCharacterRequest{
		Game:          s.game.ID,
		Owner:         stranger.ID,
		CharacterType: "scout",
		Name:          "Spy",
	})
	s.Equal("Owner must belong to the same game", s.message(err))
}

func (s *CharacterServiceTestSuite) TestCreateRequiresTile() {
	_, err := s.services.Character.Create(s.ctx, &CreateCharacterRequest{
		Game:          s.game.ID,
		Owner:         s.player.ID,
		CharacterType: "scout",
		Name:          "Lost",
		PositionQ:     9,
		PositionR:     9,
	})
	s.Equal("Starting position must be a valid tile", s.message(err))
}

func (s *CharacterServiceTestSuite) TestMove() {
	character := repository.SeedCharacter(s.T(), s.db, s.player, 0, 0)

	_, err := s.services.Character.Move(s.ctx, character.ID, &MoveRequest{Q: ptr(1)})
	s.Equal("q and r coordinates are required", s.message(err))

	_, err = s.services.Character.Move(s.ctx, character.ID, &MoveRequest{Q: ptr(5), R: ptr(5)})
	s.Equal("Invalid tile coordinates", s.message(err))

	_, err = s.services.Character.Move(s.ctx, character.ID, &MoveRequest{Q: ptr(0), R: ptr(1)})
	s.Equal("Tile is not passable", s.message(err))

	moved, err := s.services.Character.Move(s.ctx, character.ID, &MoveRequest{Q: ptr(1), R: ptr(0)})
	s.Require().NoError(err)
	s.Equal(models.Coord{Q: 1, R: 0}, moved.Position())
	s.Equal(models.CharacterStatusIdle, moved.Status)
	s.Equal(character.MovementPoints, moved.MovementPoints)
}

func (s *CharacterServiceTestSuite) TestDeadCannotMove() {
	character := repository.SeedCharacter(s.T(), s.db, s.player, 0, 0)
	_, err := s.services.Character.Update(s.ctx, character.ID, &UpdateCharacterRequest{Status: ptr(models.CharacterStatusDead)})
	s.Require().NoError(err)

	_, err = s.services.Character.Move(s.ctx, character.ID, &MoveRequest{Q: ptr(1), R: ptr(0)})
	s.True(errors.Is(err, errors.ErrCharacterDead))
}

func (s *CharacterServiceTestSuite) TestLoot() {
	character := repository.SeedCharacter(s.T(), s.db, s.player, 0, 0)
	item := repository.SeedMapItem(s.T(), s.db, s.game.ID, 0, 0)
	far := repository.SeedMapItem(s.T(), s.db, s.game.ID, 1, 0)

	_, err := s.services.Character.Loot(s.ctx, character.ID, &LootRequest{})
	s.Equal("item_id is required", s.message(err))

	_, err = s.services.Character.Loot(s.ctx, character.ID, &LootRequest{ItemID: &far.ID})
	s.True(errors.Is(err, errors.ErrNotFound))
	s.Equal("Item not found at this position", s.message(err))

	looted, err := s.services.Character.Loot(s.ctx, character.ID, &LootRequest{ItemID: &item.ID})
	s.Require().NoError(err)
	inventory := looted.Inventory.Data()
	s.Require().Len(inventory, 1)
	s.Equal(item.ItemID, inventory[0].ItemID)
	s.Equal(item.ItemType, inventory[0].ItemType)
	s.NotNil(inventory[0].LootedAt)

	stored, err := s.services.MapItem.Get(s.ctx, item.ID)
	s.Require().NoError(err)
	s.False(stored.IsAvailable)
	s.NotNil(stored.CollectedAt)
	s.Require().NotNil(stored.CollectedByID)
	s.Equal(character.ID, *stored.CollectedByID)

	_, err = s.services.Character.Loot(s.ctx, character.ID, &LootRequest{ItemID: &item.ID})
	s.Equal("Item not found at this position", s.message(err))
}

func (s *CharacterServiceTestSuite) TestLootConcurrent() {
	first := repository.SeedCharacter(s.T(), s.db, s.player, 0, 0)
	second := repository.SeedCharacter(s.T(), s.db, s.player, 0, 0)
	item := repository.SeedMapItem(s.T(), s.db, s.game.ID, 0, 0)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, c := range []*models.Character{first, second} {
		wg.Add(1)
		go func(i int, id uint) {
			defer wg.Done()
			_, errs[i] = s.services.Character.Loot(s.ctx, id, &LootRequest{ItemID: &item.ID})
		}(i, c.ID)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.True(errors.Is(err, errors.ErrNotFound))
	}
	s.Equal(1, succeeded)
}

func (s *CharacterServiceTestSuite) TestLootInventoryCapacity() {
	character := repository.SeedCharacter(s.T(), s.db, s.player, 0, 0)
	s.Require().NoError(s.db.Model(character).Update("inventory_capacity", 0).Error)
	item := repository.SeedMapItem(s.T(), s.db, s.game.ID, 0, 0)

	cfg := config.Default().Game
	cfg.EnforceInventoryCapacity = true
	s.services.ApplyGameConfig(cfg)

	_, err := s.services.Character.Loot(s.ctx, character.ID, &LootRequest{ItemID: &item.ID})
	s.Equal("Inventory is full", s.message(err))

	cfg.EnforceInventoryCapacity = false
	s.services.ApplyGameConfig(cfg)

	_, err = s.services.Character.Loot(s.ctx, character.ID, &LootRequest{ItemID: &item.ID})
	s.NoError(err)
}

func (s *CharacterServiceTestSuite) TestUpdateStats() {
	character := repository.SeedCharacter(s.T(), s.db, s.player, 0, 0)

	_, err := s.services.Character.Update(s.ctx, character.ID, &UpdateCharacterRequest{Health: ptr(101)})
	s.Equal("Health cannot exceed max_health", s.message(err))

	_, err = s.services.Character.Update(s.ctx, character.ID, &UpdateCharacterRequest{Stamina: ptr(200)})
	s.Equal("Stamina cannot exceed max_stamina", s.message(err))

	updated, err := s.services.Character.Update(s.ctx, character.ID, &UpdateCharacterRequest{
		Health:    ptr(150),
		MaxHealth: ptr(200),
	})
	s.Require().NoError(err)
	s.Equal(150, updated.Health)
}

func (s *CharacterServiceTestSuite) TestDeathIsFinal() {
	character := repository.SeedCharacter(s.T(), s.db, s.player, 0, 0)

	dead, err := s.services.Character.Update(s.ctx, character.ID, &UpdateCharacterRequest{Status: ptr(models.CharacterStatusDead)})
	s.Require().NoError(err)
	s.Require().NotNil(dead.DiedAt)
	diedAt := *dead.DiedAt

	again, err := s.services.Character.Update(s.ctx, character.ID, &UpdateCharacterRequest{
		Status: ptr(models.CharacterStatusDead),
		Name:   ptr("Ghost"),
	})
	s.Require().NoError(err)
	s.True(diedAt.Equal(*again.DiedAt))

	_, err = s.services.Character.Update(s.ctx, character.ID, &UpdateCharacterRequest{Status: ptr(models.CharacterStatusIdle)})
	s.True(errors.Is(err, errors.ErrCharacterDead))

	_, err = s.services.Character.Update(s.ctx, character.ID, &UpdateCharacterRequest{Status: ptr("sleeping")})
	s.True(errors.Is(err, errors.ErrInvalidParam))
}

func (s *CharacterServiceTestSuite) TestListExcludesDead() {
	alive := repository.SeedCharacter(s.T(), s.db, s.player, 0, 0)
	dead := repository.SeedCharacter(s.T(), s.db, s.player, 0, 0)
	_, err := s.services.Character.Update(s.ctx, dead.ID, &UpdateCharacterRequest{Status: ptr(models.CharacterStatusDead)})
	s.Require().NoError(err)

	list, err := s.services.Character.List(s.ctx, repository.CharacterFilter{GameID: s.game.ID}, nil)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(alive.ID, list[0].ID)

	list, err = s.services.Character.List(s.ctx, repository.CharacterFilter{GameID: s.game.ID, IncludeDead: true}, nil)
	s.Require().NoError(err)
	s.Len(list, 2)
}

func TestCharacterServiceSuite(t *testing.T) {
	suite.Run(t, new(CharacterServiceTestSuite))
}
