package game

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DayPhase is the day-lifecycle state machine position.
type DayPhase string

const (
	PhaseNotStarted      DayPhase = "not_started"
	PhaseInitialized     DayPhase = "initialized"
	PhaseTravelAttempted DayPhase = "travel_attempted"
)

// GameState is the single mutable aggregate root for one run. The RNG,
// content catalog, policy, and logger are attached at construction and never
// serialized; Rehydrate re-attaches them after a load.
type GameState struct {
	Seed     int64    `json:"seed"`
	GameMode GameMode `json:"mode"`
	Pace     Pace     `json:"pace"`
	Diet     Diet     `json:"diet"`
	Persona  Persona  `json:"persona"`

	Day   int      `json:"day"`
	Phase DayPhase `json:"phase"`

	BudgetCents int64     `json:"budget_cents"`
	Stats       Stats     `json:"stats"`
	Inventory   Inventory `json:"inventory"`

	Vehicle        Vehicle   `json:"vehicle"`
	Breakdown      Breakdown `json:"breakdown"`
	BreakdownCount int       `json:"breakdown_count"`

	Order      Order            `json:"order"`
	Weather    WeatherBlock     `json:"weather"`
	Encounters EncounterBook    `json:"encounters"`
	Current    *ActiveEncounter `json:"current_encounter,omitempty"`
	Crossing   Crossing         `json:"crossing"`

	Malnutrition int         `json:"malnutrition"`
	LastDamage   DamageCause `json:"last_damage,omitempty"`

	DistanceMiles int  `json:"distance_miles"`
	DetourDays    int  `json:"detour_days"`
	TraveledToday bool `json:"traveled_today"`
	TravelDays    int  `json:"travel_days"`
	RestDays      int  `json:"rest_days"`
	BossReady     bool `json:"boss_ready"`

	Receipts []string `json:"receipts,omitempty"`
	Log      []string `json:"log,omitempty"`
	Ending   Ending   `json:"ending"`

	rng     rngSource
	catalog *Catalog
	policy  Policy
	logger  *zap.Logger
	debug   bool
}

// New builds a fresh run. A zero seed is replaced with the wall clock; pass
// an explicit seed for reproducible runs. A nil logger falls back to a nop.
func New(cfg RunConfig, catalog *Catalog, policy Policy, logger *zap.Logger) (*GameState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if len(policy.Itinerary) == 0 {
		return nil, fmt.Errorf("policy has no itinerary")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g := &GameState{
		Seed:     cfg.Seed,
		GameMode: cfg.GameMode,
		Pace:     cfg.Pace,
		Diet:     cfg.Diet,
		Persona:  cfg.Persona,

		Day:   1,
		Phase: PhaseNotStarted,

		BudgetCents: cfg.StartingCents,
		Stats: Stats{
			Supplies:    100,
			HitPoints:   MaxHitPoints,
			Sanity:      80,
			Credibility: 50,
			Morale:      70,
			Allies:      2,
		},
		Inventory: newInventory(),
		Vehicle:   Vehicle{Health: 100},

		rng:     seededRNG(cfg.Seed),
		catalog: catalog,
		policy:  policy,
		logger:  logger,
		debug:   cfg.Debug,
	}

	for _, tag := range policy.Personas[cfg.Persona].StartTags {
		g.Inventory.AddTag(tag)
	}

	return g, nil
}

// Rehydrate re-attaches the non-persisted collaborators after a load. The
// RNG stream restarts from the stored seed, not from the point the run was
// saved; callers needing exact mid-run replay must persist draws consumed
// separately.
func (g *GameState) Rehydrate(catalog *Catalog, policy Policy, logger *zap.Logger) error {
	if catalog == nil {
		return fmt.Errorf("catalog is required")
	}
	if len(policy.Itinerary) == 0 {
		return fmt.Errorf("policy has no itinerary")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if g.Inventory.Spares == nil {
		g.Inventory.Spares = make(map[PartKind]int)
	}

	g.rng = seededRNG(g.Seed)
	g.catalog = catalog
	g.policy = policy
	g.logger = logger
	g.Stats.Clamp()
	return nil
}

// Region is the itinerary region for the current day.
func (g *GameState) Region() Region {
	return g.policy.RegionForDay(g.Day)
}

// Season is the season for the current day.
func (g *GameState) Season() Season {
	return g.policy.SeasonForDay(g.Day)
}

// BudgetDollars is the display form of the exact cent balance.
func (g *GameState) BudgetDollars() float64 {
	return float64(g.BudgetCents) / 100
}

// MarshalJSON emits the persisted document with the display-dollar field
// derived from the exact cents.
func (g *GameState) MarshalJSON() ([]byte, error) {
	type alias GameState
	return json.Marshal(struct {
		*alias
		BudgetDollars float64 `json:"budget_dollars"`
	}{(*alias)(g), g.BudgetDollars()})
}

// logKey appends an opaque event key to the run log.
func (g *GameState) logKey(key string) {
	g.Log = append(g.Log, key)
	if g.debug {
		g.logger.Debug("event", zap.String("key", key), zap.Int("day", g.Day))
	}
}
