package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/hexrealm/internal/errors"
	"github.com/wfunc/hexrealm/internal/models"
)

func TestCharacterListExcludesDead(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	ctx := context.Background()
	repo := NewCharacterRepository(db)

	game := SeedGame(t, db, models.GameStatusActive)
	alice := SeedPlayer(t, db, game.ID, "alice")
	bob := SeedPlayer(t, db, game.ID, "bob")
	SeedCharacter(t, db, alice, 0, 0)
	SeedCharacter(t, db, bob, 1, 0)
	dead := SeedCharacter(t, db, alice, 1, 0)
	dead.Status = models.CharacterStatusDead
	require.NoError(t, repo.Update(ctx, dead))

	list, err := repo.List(ctx, CharacterFilter{GameID: game.ID}, nil)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = repo.List(ctx, CharacterFilter{GameID: game.ID, IncludeDead: true}, nil)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	list, err = repo.List(ctx, CharacterFilter{OwnerID: alice.ID, IncludeDead: true}, nil)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	q, r := 1, 0
	list, err = repo.List(ctx, CharacterFilter{GameID: game.ID, CoordFilter: CoordFilter{Q: &q, R: &r}}, nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, bob.ID, list[0].OwnerID)
}

func TestCharacterFindInGame(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	ctx := context.Background()
	repo := NewCharacterRepository(db)

	game := SeedGame(t, db, models.GameStatusActive)
	other := SeedGame(t, db, models.GameStatusActive)
	c := SeedCharacter(t, db, SeedPlayer(t, db, game.ID, "alice"), 0, 0)

	found, err := repo.FindInGame(ctx, c.ID, game.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Name, found.Name)

	_, err = repo.FindInGame(ctx, c.ID, other.ID)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestCharacterDeleteClearsCollector(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	ctx := context.Background()
	repo := NewCharacterRepository(db)
	items := NewMapItemRepository(db)

	game := SeedGame(t, db, models.GameStatusActive)
	c := SeedCharacter(t, db, SeedPlayer(t, db, game.ID, "alice"), 0, 0)
	item := SeedMapItem(t, db, game.ID, 0, 0)

	ok, err := items.MarkCollected(ctx, item.ID, c.ID, time.Now())
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, repo.Delete(ctx, c.ID))

	found, err := items.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, found.CollectedByID)
	assert.NotNil(t, found.CollectedAt)
	assert.False(t, found.IsAvailable)

	assert.True(t, errors.Is(repo.Delete(ctx, c.ID), errors.ErrNotFound))
}
