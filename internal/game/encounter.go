package game

import "fmt"

// EncounterBook is the persisted encounter bookkeeping: today's count, the
// last day anything fired, the rolling per-day window, and recently seen ids
// for rotation.
type EncounterBook struct {
	TodayCount int      `json:"today_count"`
	LastDay    int      `json:"last_day"`
	Window     []int    `json:"window,omitempty"`
	Recent     []string `json:"recent,omitempty"`
	// Resolved counts encounters whose choice has been applied; every third
	// trigger forces a rotation pick.
	Resolved int `json:"resolved"`
}

// ActiveEncounter is the clone of a catalog entry held while the player
// decides. ID == "" means no encounter is pending.
type ActiveEncounter struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Choices     []Choice `json:"choices"`
}

func (a *ActiveEncounter) active() bool {
	return a != nil && a.ID != ""
}

// rolloverEncounterWindow pushes a fresh day onto the rolling window and
// trims it to the configured length. Called once per day.
func (g *GameState) rolloverEncounterWindow() {
	g.Encounters.Window = append(g.Encounters.Window, 0)
	if extra := len(g.Encounters.Window) - g.policy.Encounter.WindowDays; extra > 0 {
		g.Encounters.Window = g.Encounters.Window[extra:]
	}
	g.Encounters.TodayCount = 0
}

func (g *GameState) encounterWindowSum() int {
	sum := 0
	for _, n := range g.Encounters.Window {
		sum += n
	}
	return sum
}

// encounterAllowed enforces the hard caps: the per-day maximum and the
// minimum-day cooldown before a fresh day can fire again.
func (g *GameState) encounterAllowed() bool {
	ep := g.policy.Encounter
	if g.Encounters.TodayCount >= ep.MaxPerDay {
		return false
	}
	if g.Encounters.TodayCount == 0 && g.Encounters.LastDay > 0 &&
		g.Day-g.Encounters.LastDay < ep.CooldownDays {
		return false
	}
	return true
}

// rollEncounter draws against the daily chance (halved once the rolling
// window crosses the soft cap) and, on a hit, clones the selected catalog
// entry into the run. Returns true when an encounter triggered.
func (g *GameState) rollEncounter() bool {
	if g.Current.active() || !g.encounterAllowed() {
		return false
	}

	ep := g.policy.Encounter
	chance := ep.BaseChance
	if g.encounterWindowSum() >= ep.SoftCap {
		chance /= 2
	}
	if g.rng.Float64() >= chance {
		return false
	}

	force := g.Encounters.Resolved > 0 && g.Encounters.Resolved%3 == 2
	picked, ok := g.selectEncounter(force)
	if !ok {
		return false
	}

	g.triggerEncounter(picked)
	return true
}

// selectEncounter makes the weighted draw over eligible catalog entries.
// When force is set and any candidate has not been recently seen, the pool
// is restricted to those, guaranteeing content rotation.
func (g *GameState) selectEncounter(force bool) (Encounter, bool) {
	region := g.policy.RegionForDay(g.Day)

	eligible := make([]Encounter, 0, len(g.catalog.Encounters()))
	fresh := make([]Encounter, 0, len(g.catalog.Encounters()))
	for _, e := range g.catalog.Encounters() {
		if !e.appliesToRegion(region) || !e.appliesToMode(g.GameMode) {
			continue
		}
		if e.RequiresStarving && g.Malnutrition == 0 {
			continue
		}
		eligible = append(eligible, e)
		if !g.recentlySeen(e.ID) {
			fresh = append(fresh, e)
		}
	}
	if len(eligible) == 0 {
		return Encounter{}, false
	}

	pool := eligible
	if force && len(fresh) > 0 {
		pool = fresh
	}

	total := 0
	for _, e := range pool {
		total += e.Weight
	}
	roll := g.rng.IntN(total)
	cumulative := 0
	for _, e := range pool {
		cumulative += e.Weight
		if roll < cumulative {
			return e, true
		}
	}
	return pool[len(pool)-1], true
}

func (g *GameState) recentlySeen(id string) bool {
	for _, seen := range g.Encounters.Recent {
		if seen == id {
			return true
		}
	}
	return false
}

func (g *GameState) triggerEncounter(e Encounter) {
	choices := make([]Choice, len(e.Choices))
	copy(choices, e.Choices)
	g.Current = &ActiveEncounter{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Choices:     choices,
	}

	g.Encounters.TodayCount++
	g.Encounters.LastDay = g.Day
	if len(g.Encounters.Window) > 0 {
		g.Encounters.Window[len(g.Encounters.Window)-1]++
	}
	g.Encounters.Recent = append(g.Encounters.Recent, e.ID)
	if extra := len(g.Encounters.Recent) - g.policy.Encounter.RecentWindow; extra > 0 {
		g.Encounters.Recent = g.Encounters.Recent[extra:]
	}
	g.logKey("encounter." + e.ID)
}

// ChooseEncounter applies one of the active encounter's choices. Choosing
// with no active encounter is a no-op; an unknown choice id is an error and
// leaves the encounter pending. A landed choice reopens the day so the
// interrupted leg, and a further encounter under the daily cap, can still
// happen.
func (g *GameState) ChooseEncounter(choiceID string) error {
	if !g.Current.active() {
		return nil
	}

	var choice Choice
	found := false
	for _, c := range g.Current.Choices {
		if c.ID == choiceID {
			choice = c
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("encounter %s has no choice %q", g.Current.ID, choiceID)
	}

	if choice.Deltas.HitPoints < 0 {
		g.LastDamage = DamageMisadventure
	}
	g.Stats.Apply(choice.Deltas)
	if choice.GrantBullets > 0 {
		g.Inventory.Bullets += choice.GrantBullets
	}
	if choice.GrantTag != "" {
		g.Inventory.AddTag(choice.GrantTag)
	}
	if choice.GrantReceipt != "" {
		g.Receipts = append(g.Receipts, choice.GrantReceipt)
	}
	if choice.LogKey != "" {
		g.logKey(choice.LogKey)
	}

	g.Current = nil
	g.Encounters.Resolved++

	// The encounter interrupted the leg before any miles were booked;
	// hand the day back so travel can resume.
	if g.Phase == PhaseTravelAttempted && !g.TraveledToday && !g.Ended() {
		g.Phase = PhaseInitialized
	}
	return nil
}
