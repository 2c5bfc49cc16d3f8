package game

import "math"

// LegResult is the outcome tuple of one travel attempt.
type LegResult struct {
	Ended            bool   `json:"ended"`
	LogKey           string `json:"log_key"`
	BreakdownStarted bool   `json:"breakdown_started"`

	EncounterPending bool `json:"encounter_pending"`
	BribeWindow      bool `json:"bribe_window"`
	VotePending      bool `json:"vote_pending"`
	Miles            int  `json:"miles"`
}

// DayRecord is the richer per-day output consumed by presentation layers.
type DayRecord struct {
	Day     int         `json:"day"`
	Region  Region      `json:"region"`
	Season  Season      `json:"season"`
	Weather WeatherKind `json:"weather"`

	Miles            int      `json:"miles"`
	BreakdownStarted bool     `json:"breakdown_started"`
	EncounterPending bool     `json:"encounter_pending"`
	BribeWindow      bool     `json:"bribe_window"`
	VotePending      bool     `json:"vote_pending"`
	LogKeys          []string `json:"log_keys"`

	Ended  bool       `json:"ended"`
	Ending EndingKind `json:"ending,omitempty"`
}

// StartOfDay runs the fixed start-of-day sequence exactly once per day:
// per-day counter rollover, executive-order aging, ration drain and
// starvation ticks, weather selection, a stat clamp, and daily vehicle wear.
// Calling it again on an initialized day is a no-op.
func (g *GameState) StartOfDay() error {
	if g.Ended() || g.Phase != PhaseNotStarted {
		return nil
	}

	g.rolloverEncounterWindow()
	g.TraveledToday = false

	g.tickOrder()

	g.Stats.Supplies -= g.policy.Diet[g.Diet].SuppliesPerDay
	g.Stats.Clamp()
	g.tickStarvation()

	if err := g.selectWeather(); err != nil {
		return err
	}
	g.applyWeatherEffects()

	g.Stats.Clamp()
	g.applyDailyWear()

	g.Phase = PhaseInitialized
	g.logKey("day.start")
	return nil
}

// TravelNextLeg is the single per-day advance entry point. Draw order within
// a day is fixed: ally attrition, breakdown roll, breakdown resolution,
// crossing resolution, encounter roll. A pending boss vote blocks travel
// outright.
func (g *GameState) TravelNextLeg() (LegResult, error) {
	if g.Ended() {
		return LegResult{Ended: true, LogKey: "run.ended"}, nil
	}
	if err := g.StartOfDay(); err != nil {
		return LegResult{}, err
	}
	if g.Phase == PhaseTravelAttempted {
		return LegResult{LogKey: "day.already_traveled"}, nil
	}

	if g.BossReady {
		return LegResult{LogKey: "boss.pending", VotePending: true}, nil
	}

	g.rollAllyAttrition()

	if g.checkTerminal() {
		g.Phase = PhaseTravelAttempted
		return LegResult{Ended: true, LogKey: "ending." + string(g.Ending.Kind)}, nil
	}

	result := LegResult{}
	result.BreakdownStarted = g.rollBreakdown()

	if g.checkTerminal() {
		g.Phase = PhaseTravelAttempted
		result.Ended = true
		result.LogKey = "ending." + string(g.Ending.Kind)
		return result, nil
	}

	if !g.resolveBreakdown() {
		g.Phase = PhaseTravelAttempted
		result.LogKey = "breakdown.blocked"
		return result, nil
	}

	if g.Crossing.Status == CrossingPending {
		g.resolveCrossing()
	}
	if g.Crossing.Status == CrossingBribeWindow {
		g.Phase = PhaseTravelAttempted
		result.BribeWindow = true
		result.LogKey = "crossing.bribe_window"
		return result, nil
	}

	if g.DetourDays > 0 {
		g.DetourDays--
		g.Phase = PhaseTravelAttempted
		result.LogKey = "travel.detour"
		g.logKey("travel.detour")
		return result, nil
	}

	if g.rollEncounter() {
		g.Phase = PhaseTravelAttempted
		result.EncounterPending = true
		result.LogKey = "encounter." + g.Current.ID
		return result, nil
	}

	miles := g.legMiles()
	g.DistanceMiles += miles
	g.TraveledToday = true
	g.markBossReady()

	g.Phase = PhaseTravelAttempted
	result.Miles = miles
	result.LogKey = "travel.leg"
	g.logKey("travel.leg")
	return result, nil
}

// legMiles scales the base leg by pace and today's weather.
func (g *GameState) legMiles() int {
	miles := float64(g.policy.BaseLegMiles)
	miles *= g.policy.Pace[g.Pace].MilesFactor
	miles *= travelFactorForWeather(g.Weather.Today)
	return int(math.Round(miles))
}

// rollAllyAttrition loses one ally on a 10% draw while morale is low.
func (g *GameState) rollAllyAttrition() {
	if g.Stats.Allies == 0 || g.Stats.Morale >= 30 {
		return
	}
	if g.rng.Float64() < 0.10 {
		g.Stats.Allies--
		g.Stats.Clamp()
		g.logKey("allies.lost")
	}
}

// EndOfDay finalizes the day's tally, advances the day counter and its
// derived region/season, arms a checkpoint on region boundaries, and resets
// the day-initialized flag. Mirror-guarded: it only runs after a travel
// attempt, only once, and never while an encounter choice or bribe window
// is still waiting on the player.
func (g *GameState) EndOfDay() {
	if g.Phase != PhaseTravelAttempted {
		return
	}
	if g.Current.active() || g.Crossing.Status == CrossingBribeWindow {
		return
	}

	if g.TraveledToday {
		g.TravelDays++
		pace := g.policy.Pace[g.Pace]
		g.Stats.Morale += pace.MoraleDelta
		g.Stats.Sanity += pace.SanityDelta
	} else {
		g.RestDays++
	}
	g.Stats.Morale += g.policy.Diet[g.Diet].MoraleDelta
	g.Stats.Clamp()

	previous := g.policy.RegionForDay(g.Day)
	g.Day++
	g.queueCrossingIfBoundary(previous)

	g.Phase = PhaseNotStarted
	g.logKey("day.end")
}

// AdvanceDay composes the full lifecycle for callers that drive whole days.
// When the leg leaves a decision pending (encounter choice, bribe window,
// boss vote) the day stays open; repeat calls re-report the pending decision
// instead of closing over it.
func (g *GameState) AdvanceDay() (DayRecord, error) {
	record := DayRecord{}

	if err := g.StartOfDay(); err != nil {
		return record, err
	}

	before := len(g.Log)
	leg, err := g.TravelNextLeg()
	if err != nil {
		return record, err
	}

	record.Day = g.Day
	record.Region = g.Region()
	record.Season = g.Season()
	record.Weather = g.Weather.Today
	record.Miles = leg.Miles
	record.BreakdownStarted = leg.BreakdownStarted
	record.EncounterPending = leg.EncounterPending || g.Current.active()
	record.BribeWindow = leg.BribeWindow || g.Crossing.Status == CrossingBribeWindow
	record.VotePending = leg.VotePending

	if !record.EncounterPending && !record.BribeWindow && !record.VotePending {
		g.EndOfDay()
	}

	record.LogKeys = append(record.LogKeys, g.Log[before:]...)
	record.Ended = g.Ended()
	record.Ending = g.Ending.Kind
	return record, nil
}
