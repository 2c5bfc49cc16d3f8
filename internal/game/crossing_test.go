package game

import (
	"encoding/json"
	"testing"
)

func TestCrossingArmsAtRegionBoundary(t *testing.T) {
	g := newTestState(t, 1)

	g.Day = 8
	g.queueCrossingIfBoundary(RegionHeartland)
	if g.Crossing.Status != CrossingNone {
		t.Fatalf("same region must not arm a checkpoint")
	}

	g.Day = 9
	g.queueCrossingIfBoundary(RegionHeartland)
	if g.Crossing.Status != CrossingPending {
		t.Fatalf("expected a pending checkpoint at the boundary, got %q", g.Crossing.Status)
	}
	if g.Crossing.Into != RegionRustBelt {
		t.Fatalf("expected the checkpoint into rust_belt, got %s", g.Crossing.Into)
	}
}

func TestResolveCrossingOutcomeThresholds(t *testing.T) {
	cases := []struct {
		roll   int
		status CrossingStatus
		detour bool
	}{
		{0, CrossingNone, false},
		{49, CrossingNone, false},
		{50, CrossingNone, true},
		{79, CrossingNone, true},
		{80, CrossingBribeWindow, false},
		{99, CrossingBribeWindow, false},
	}
	for _, tc := range cases {
		g := newTestState(t, 1)
		g.Crossing = Crossing{Status: CrossingPending, Into: RegionRustBelt}
		g.rng = &stubRNG{ints: []int{tc.roll, 0}}

		g.resolveCrossing()
		if g.Crossing.Status != tc.status {
			t.Fatalf("roll %d: expected status %q, got %q", tc.roll, tc.status, g.Crossing.Status)
		}
		if tc.detour && g.DetourDays == 0 {
			t.Fatalf("roll %d: expected a detour assigned", tc.roll)
		}
		if !tc.detour && g.DetourDays != 0 {
			t.Fatalf("roll %d: unexpected detour of %d days", tc.roll, g.DetourDays)
		}
	}
}

func TestDetourLengthStaysInBounds(t *testing.T) {
	g := newTestState(t, 1)
	cp := g.policy.Crossing
	for i := 0; i < 50; i++ {
		days := rollRange(g.rng, cp.DetourMinDays, cp.DetourMaxDays)
		if days < cp.DetourMinDays || days > cp.DetourMaxDays {
			t.Fatalf("detour %d outside [%d,%d]", days, cp.DetourMinDays, cp.DetourMaxDays)
		}
	}
}

func TestBribeQuoteAppliesPersonaDiscount(t *testing.T) {
	g := newTestState(t, 1)
	if got := g.BribeQuoteCents(); got != 5000 {
		t.Fatalf("drifter pays list price, got %d", got)
	}

	g.Persona = PersonaFixer
	if got := g.BribeQuoteCents(); got != 3750 {
		t.Fatalf("fixer expects 25%% off 5000, got %d", got)
	}

	g.Persona = PersonaInsider
	if got := g.BribeQuoteCents(); got != 4500 {
		t.Fatalf("insider expects 10%% off 5000, got %d", got)
	}
}

func TestPayBribeRejectsInsufficientFunds(t *testing.T) {
	g := newTestState(t, 1)
	g.Crossing = Crossing{Status: CrossingBribeWindow, Into: RegionRustBelt}
	g.BudgetCents = 100

	before, _ := json.Marshal(g)
	err := g.PayBribe()
	if err == nil {
		t.Fatalf("expected a funds rejection")
	}
	after, _ := json.Marshal(g)
	if string(before) != string(after) {
		t.Fatalf("a rejected bribe must not mutate the run")
	}

	g.BudgetCents = 5000
	if err := g.PayBribe(); err != nil {
		t.Fatalf("pay bribe: %v", err)
	}
	if g.BudgetCents != 0 || g.Crossing.Status != CrossingNone {
		t.Fatalf("expected the bribe settled and window closed")
	}
}

func TestShowPermitRequiresTag(t *testing.T) {
	g := newTestState(t, 1)
	g.Crossing = Crossing{Status: CrossingBribeWindow, Into: RegionRustBelt}

	if err := g.ShowPermit(); err == nil {
		t.Fatalf("expected rejection without a permit")
	}
	if g.Crossing.Status != CrossingBribeWindow {
		t.Fatalf("rejection must leave the window open")
	}

	g.Inventory.AddTag(TagTransitPermit)
	if err := g.ShowPermit(); err != nil {
		t.Fatalf("show permit: %v", err)
	}
	if g.Crossing.Status != CrossingNone {
		t.Fatalf("expected the window closed")
	}
}

func TestInsiderStartsWithPermit(t *testing.T) {
	cfg := testConfig(1)
	cfg.Persona = PersonaInsider
	catalog, err := NewCatalog(BuiltinEncounters())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	g, err := New(cfg, catalog, DefaultPolicy(), nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !g.Inventory.HasTag(TagTransitPermit) {
		t.Fatalf("insider persona should start with the transit permit")
	}
}

func TestRefuseBribeCostsStandingAndTime(t *testing.T) {
	g := newTestState(t, 1)
	g.Crossing = Crossing{Status: CrossingBribeWindow, Into: RegionRustBelt}
	credBefore := g.Stats.Credibility
	panicBefore := g.Stats.Panic

	if err := g.RefuseBribe(); err != nil {
		t.Fatalf("refuse: %v", err)
	}
	if g.Stats.Credibility != credBefore-5 {
		t.Fatalf("expected credibility -5, got %d -> %d", credBefore, g.Stats.Credibility)
	}
	if g.Stats.Panic != panicBefore+1 {
		t.Fatalf("expected panic +1, got %d -> %d", panicBefore, g.Stats.Panic)
	}
	if g.DetourDays != g.policy.Crossing.DetourMinDays {
		t.Fatalf("expected the minimum detour, got %d", g.DetourDays)
	}
	if g.Crossing.Status != CrossingNone {
		t.Fatalf("expected the window closed")
	}
}

func TestCrossingActionsRequireOpenWindow(t *testing.T) {
	g := newTestState(t, 1)
	if err := g.PayBribe(); err == nil {
		t.Fatalf("pay with no window should error")
	}
	if err := g.ShowPermit(); err == nil {
		t.Fatalf("permit with no window should error")
	}
	if err := g.RefuseBribe(); err == nil {
		t.Fatalf("refuse with no window should error")
	}
}
