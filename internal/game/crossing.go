package game

import "fmt"

// CrossingStatus is the checkpoint state machine: none, an unresolved
// checkpoint ahead, or an open bribe window awaiting a player decision.
type CrossingStatus string

const (
	CrossingNone        CrossingStatus = ""
	CrossingPending     CrossingStatus = "pending"
	CrossingBribeWindow CrossingStatus = "bribe_window"
)

type Crossing struct {
	Status CrossingStatus `json:"status"`
	Into   Region         `json:"into,omitempty"`
}

func (c Crossing) blocksTravel() bool {
	return c.Status != CrossingNone
}

// queueCrossingIfBoundary arms a checkpoint when the itinerary moves into a
// new region. Called from end-of-day after the day counter advances.
func (g *GameState) queueCrossingIfBoundary(previousRegion Region) {
	next := g.policy.RegionForDay(g.Day)
	if next == previousRegion || g.Crossing.Status != CrossingNone {
		return
	}
	g.Crossing = Crossing{Status: CrossingPending, Into: next}
	g.logKey("crossing.checkpoint")
}

// resolveCrossing maps a single uniform draw through the cumulative outcome
// thresholds: pass, a detour of a uniformly drawn length, or an open bribe
// window that blocks travel until the player pays, shows a permit, or
// refuses.
func (g *GameState) resolveCrossing() {
	if g.Crossing.Status != CrossingPending {
		return
	}
	cp := g.policy.Crossing

	total := cp.PassWeight + cp.DetourWeight + cp.BribeWeight
	if total <= 0 {
		g.Crossing = Crossing{}
		return
	}

	roll := g.rng.IntN(total)
	switch {
	case roll < cp.PassWeight:
		g.Crossing = Crossing{}
		g.logKey("crossing.pass")
	case roll < cp.PassWeight+cp.DetourWeight:
		days := rollRange(g.rng, cp.DetourMinDays, cp.DetourMaxDays)
		g.DetourDays += days
		g.Crossing = Crossing{}
		g.logKey("crossing.detour")
	default:
		g.Crossing.Status = CrossingBribeWindow
		g.logKey("crossing.bribe_window")
	}
}

// BribeQuoteCents prices the bribe after the persona's percentage discount.
func (g *GameState) BribeQuoteCents() int64 {
	cents := g.policy.Crossing.BribeCents
	discount := int64(g.policy.Personas[g.Persona].BribeDiscountPct)
	return cents * (100 - discount) / 100
}

// PayBribe settles an open bribe window. Insufficient funds reject the
// payment without mutating anything.
func (g *GameState) PayBribe() error {
	if g.Crossing.Status != CrossingBribeWindow {
		return fmt.Errorf("no bribe window open")
	}
	cost := g.BribeQuoteCents()
	if cost > g.BudgetCents {
		return &FundsError{RequiredCents: cost, AvailableCents: g.BudgetCents}
	}
	g.BudgetCents -= cost
	g.Crossing = Crossing{}
	g.logKey("crossing.bribe_paid")
	return nil
}

// ShowPermit clears an open bribe window with the transit permit tag.
// Without the tag the action is rejected and nothing changes.
func (g *GameState) ShowPermit() error {
	if g.Crossing.Status != CrossingBribeWindow {
		return fmt.Errorf("no bribe window open")
	}
	if !g.Inventory.HasTag(g.policy.Crossing.PermitTag) {
		return fmt.Errorf("no %s held", g.policy.Crossing.PermitTag)
	}
	g.Crossing = Crossing{}
	g.logKey("crossing.permit")
	return nil
}

// RefuseBribe walks away from the window: a credibility hit, a panic tick,
// and the minimum detour.
func (g *GameState) RefuseBribe() error {
	if g.Crossing.Status != CrossingBribeWindow {
		return fmt.Errorf("no bribe window open")
	}
	cp := g.policy.Crossing
	g.Stats.Credibility += cp.RefuseCredibility
	g.Stats.Panic += cp.RefusePanic
	g.Stats.Clamp()
	g.DetourDays += cp.DetourMinDays
	g.Crossing = Crossing{}
	g.logKey("crossing.refused")
	return nil
}
