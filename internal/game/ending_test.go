package game

import "testing"

func TestFirstEndingWins(t *testing.T) {
	g := newTestState(t, 1)

	g.setEnding(EndingSanityLoss)
	if g.Ending.Kind != EndingSanityLoss {
		t.Fatalf("expected the first ending recorded")
	}
	day := g.Ending.Day
	score := g.Ending.Score

	g.Day += 5
	g.setEnding(EndingVehicleLost)
	if g.Ending.Kind != EndingSanityLoss || g.Ending.Day != day || g.Ending.Score != score {
		t.Fatalf("a later ending must not overwrite the first: %+v", g.Ending)
	}
}

func TestCheckTerminalPriorityOrder(t *testing.T) {
	// Vehicle loss outranks everything else.
	g := newTestState(t, 1)
	g.Vehicle.Health = 0
	g.BreakdownCount = 10
	g.BudgetCents = 0
	g.Stats.Panic = MaxPanic
	g.Stats.HitPoints = 0
	g.Stats.Sanity = 0
	if !g.checkTerminal() || g.Ending.Kind != EndingVehicleLost {
		t.Fatalf("expected vehicle loss first, got %s", g.Ending.Kind)
	}

	// Panic outranks hit points and sanity.
	g = newTestState(t, 1)
	g.Stats.Panic = MaxPanic
	g.Stats.HitPoints = 0
	g.Stats.Sanity = 0
	if !g.checkTerminal() || g.Ending.Kind != EndingPanicCollapse {
		t.Fatalf("expected panic collapse, got %s", g.Ending.Kind)
	}

	// Hit points outrank sanity.
	g = newTestState(t, 1)
	g.Stats.HitPoints = 0
	g.Stats.Sanity = 0
	if !g.checkTerminal() || g.Ending.Kind != EndingStarvation {
		t.Fatalf("expected a hit-point ending, got %s", g.Ending.Kind)
	}

	g = newTestState(t, 1)
	g.Stats.Sanity = 0
	if !g.checkTerminal() || g.Ending.Kind != EndingSanityLoss {
		t.Fatalf("expected sanity loss, got %s", g.Ending.Kind)
	}
}

func TestHitPointCollapseMapsThroughLastDamage(t *testing.T) {
	cases := []struct {
		cause DamageCause
		want  EndingKind
	}{
		{DamageExposureCold, EndingExposureCold},
		{DamageExposureHeat, EndingExposureHeat},
		{DamageStarvation, EndingStarvation},
		{DamageMisadventure, EndingStarvation},
		{DamageNone, EndingStarvation},
	}
	for _, tc := range cases {
		g := newTestState(t, 1)
		g.Stats.HitPoints = 0
		g.LastDamage = tc.cause
		g.checkTerminal()
		if g.Ending.Kind != tc.want {
			t.Fatalf("cause %q: expected %s, got %s", tc.cause, tc.want, g.Ending.Kind)
		}
	}
}

func TestCheckTerminalLiveRun(t *testing.T) {
	g := newTestState(t, 1)
	if g.checkTerminal() {
		t.Fatalf("a healthy run must not end")
	}
	if g.Ended() {
		t.Fatalf("no ending should be recorded")
	}
}

func TestScoreWeightsAndPenaltyCap(t *testing.T) {
	g := newTestState(t, 1)
	g.Stats = Stats{Supplies: 10, HitPoints: 20, Morale: 30, Credibility: 40, Allies: 3}
	g.Day = 12
	g.Encounters.Resolved = 4
	g.Receipts = []string{"a", "b"}
	g.BreakdownCount = 0

	sp := g.policy.Score
	want := 10*sp.SuppliesWeight + 20*sp.HitPointsWeight + 30*sp.MoraleWeight +
		40*sp.CredibilityWeight + 3*sp.AlliesWeight + 12*sp.DayWeight +
		4*sp.EncounterWeight + 2*sp.ReceiptWeight
	if got := g.computeScore(EndingSanityLoss); got != want {
		t.Fatalf("expected score %d, got %d", want, got)
	}

	// Ten breakdowns would cost 150; the penalty caps at 60.
	g.BreakdownCount = 10
	if got := g.computeScore(EndingSanityLoss); got != want-sp.BreakdownPenaltyCap {
		t.Fatalf("expected the capped penalty, got %d", got)
	}

	// Victory adds the flat bonus.
	if got := g.computeScore(EndingBossVictory); got != want-sp.BreakdownPenaltyCap+sp.BossVictoryBonus {
		t.Fatalf("expected the victory bonus, got %d", got)
	}
}

func TestScoreFloorsAtZero(t *testing.T) {
	g := newTestState(t, 1)
	g.Stats = Stats{}
	g.Day = 0
	g.BreakdownCount = 100
	if got := g.computeScore(EndingVehicleLost); got != 0 {
		t.Fatalf("expected the score floored at zero, got %d", got)
	}
}
