package game

import (
	"testing"

	"go.uber.org/zap"
)

func testConfig(seed int64) RunConfig {
	return RunConfig{
		Seed:          seed,
		GameMode:      ModeStandard,
		Pace:          PaceSteady,
		Diet:          DietMeager,
		Persona:       PersonaDrifter,
		StartingCents: 50000,
	}
}

func newTestState(t *testing.T, seed int64) *GameState {
	t.Helper()
	catalog, err := NewCatalog(BuiltinEncounters())
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}
	g, err := New(testConfig(seed), catalog, DefaultPolicy(), zap.NewNop())
	if err != nil {
		t.Fatalf("building state: %v", err)
	}
	return g
}

// stubRNG replays scripted draws so subsystem tests can hit exact branches.
// IntN pops from ints (modulo n for safety); Float64 pops from floats.
// Exhausted scripts repeat their final value.
type stubRNG struct {
	ints   []int
	floats []float64
}

func (s *stubRNG) IntN(n int) int {
	v := 0
	if len(s.ints) > 0 {
		v = s.ints[0]
		if len(s.ints) > 1 {
			s.ints = s.ints[1:]
		}
	}
	if n <= 0 {
		return 0
	}
	return v % n
}

func (s *stubRNG) Float64() float64 {
	v := 0.0
	if len(s.floats) > 0 {
		v = s.floats[0]
		if len(s.floats) > 1 {
			s.floats = s.floats[1:]
		}
	}
	return v
}
