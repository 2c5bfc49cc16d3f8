package savestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/appengine-ltd/trailbound/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testRun(t *testing.T, seed int64) *game.GameState {
	t.Helper()
	catalog, err := game.NewCatalog(game.BuiltinEncounters())
	require.NoError(t, err)
	g, err := game.New(game.RunConfig{
		Seed:          seed,
		GameMode:      game.ModeStandard,
		Pace:          game.PaceSteady,
		Diet:          game.DietMeager,
		Persona:       game.PersonaDrifter,
		StartingCents: 50000,
	}, catalog, game.DefaultPolicy(), zap.NewNop())
	require.NoError(t, err)
	return g
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	g := testRun(t, 7)
	id := NewRunID()

	require.NoError(t, s.Save(ctx, id, "first run", g))

	loaded, err := s.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, g.Seed, loaded.Seed)
	assert.Equal(t, g.Day, loaded.Day)
	assert.Equal(t, g.BudgetCents, loaded.BudgetCents)
	assert.Equal(t, g.Stats, loaded.Stats)

	catalog, err := game.NewCatalog(game.BuiltinEncounters())
	require.NoError(t, err)
	require.NoError(t, loaded.Rehydrate(catalog, game.DefaultPolicy(), zap.NewNop()))
}

func TestSaveUpsertsOnSameID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	g := testRun(t, 7)
	id := NewRunID()

	require.NoError(t, s.Save(ctx, id, "run", g))
	g.Day = 12
	require.NoError(t, s.Save(ctx, id, "run", g))

	loaded, err := s.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 12, loaded.Day)

	runs, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
	assert.Equal(t, 12, runs[0].Day)
}

func TestLoadMissingRun(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrdersAndSummarizes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a := testRun(t, 1)
	b := testRun(t, 2)
	b.Day = 9
	require.NoError(t, s.Save(ctx, NewRunID(), "run a", a))
	require.NoError(t, s.Save(ctx, NewRunID(), "run b", b))

	runs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	for _, summary := range runs {
		assert.NotEmpty(t, summary.ID)
		assert.NotEmpty(t, summary.Name)
		assert.False(t, summary.UpdatedAt.IsZero())
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	id := NewRunID()
	require.NoError(t, s.Save(ctx, id, "run", testRun(t, 3)))

	require.NoError(t, s.Delete(ctx, id))
	assert.ErrorIs(t, s.Delete(ctx, id), ErrNotFound)

	_, err := s.Load(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}
