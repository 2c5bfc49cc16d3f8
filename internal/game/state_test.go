package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewValidatesConfig(t *testing.T) {
	catalog, err := NewCatalog(BuiltinEncounters())
	require.NoError(t, err)

	bad := testConfig(1)
	bad.Pace = Pace("sprint")
	_, err = New(bad, catalog, DefaultPolicy(), zap.NewNop())
	require.Error(t, err)

	_, err = New(testConfig(1), nil, DefaultPolicy(), zap.NewNop())
	require.Error(t, err)

	_, err = New(testConfig(1), catalog, Policy{}, zap.NewNop())
	require.Error(t, err)
}

func TestNewReplacesZeroSeed(t *testing.T) {
	catalog, err := NewCatalog(BuiltinEncounters())
	require.NoError(t, err)

	g, err := New(testConfig(0), catalog, DefaultPolicy(), zap.NewNop())
	require.NoError(t, err)
	assert.NotZero(t, g.Seed, "a zero seed must be replaced with a wall-clock seed")
}

func TestStateDocumentFieldNames(t *testing.T) {
	g := newTestState(t, 7)
	doc, err := json.Marshal(g)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc, &fields))

	for _, key := range []string{
		"seed", "mode", "pace", "diet", "persona",
		"day", "phase",
		"budget_cents", "budget_dollars", "stats", "inventory",
		"vehicle", "breakdown", "breakdown_count",
		"order", "weather", "encounters", "crossing",
		"malnutrition", "distance_miles", "detour_days",
		"travel_days", "rest_days", "boss_ready", "ending",
	} {
		assert.Contains(t, fields, key)
	}

	// Dollars are display only: the exact balance rides in cents.
	var cents int64
	require.NoError(t, json.Unmarshal(fields["budget_cents"], &cents))
	var dollars float64
	require.NoError(t, json.Unmarshal(fields["budget_dollars"], &dollars))
	assert.Equal(t, float64(cents)/100, dollars)
}

func TestRehydratedRunKeepsPlaying(t *testing.T) {
	g := newTestState(t, 42)
	driveRun(t, g, 5)

	doc, err := json.Marshal(g)
	require.NoError(t, err)

	var loaded GameState
	require.NoError(t, json.Unmarshal(doc, &loaded))

	catalog, err := NewCatalog(BuiltinEncounters())
	require.NoError(t, err)
	require.NoError(t, loaded.Rehydrate(catalog, DefaultPolicy(), zap.NewNop()))

	assert.Equal(t, g.Day, loaded.Day)
	assert.Equal(t, g.BudgetCents, loaded.BudgetCents)
	assert.Equal(t, g.Stats, loaded.Stats)
	assert.Equal(t, g.DistanceMiles, loaded.DistanceMiles)

	// The loaded run must be able to keep advancing days.
	driveRun(t, &loaded, 3)
	assert.GreaterOrEqual(t, loaded.Day, g.Day)
}

func TestRehydrateRejectsMissingCollaborators(t *testing.T) {
	g := newTestState(t, 1)
	require.Error(t, g.Rehydrate(nil, DefaultPolicy(), zap.NewNop()))

	catalog, err := NewCatalog(BuiltinEncounters())
	require.NoError(t, err)
	require.Error(t, g.Rehydrate(catalog, Policy{}, zap.NewNop()))
}

func TestRehydrateRestoresSparesMap(t *testing.T) {
	var loaded GameState
	require.NoError(t, json.Unmarshal([]byte(`{"seed":3,"day":1,"inventory":{}}`), &loaded))

	catalog, err := NewCatalog(BuiltinEncounters())
	require.NoError(t, err)
	require.NoError(t, loaded.Rehydrate(catalog, DefaultPolicy(), zap.NewNop()))
	assert.NotNil(t, loaded.Inventory.Spares)
}
