package game

import "fmt"

const (
	huntBulletCost   = 10
	huntBaseYield    = 15
	huntRollMax      = 25
	campHitPointGain = 5
	campSanityGain   = 3
	campMoraleGain   = 1
)

// Camp spends the whole day resting instead of traveling: hit points,
// sanity, and morale recover. The start-of-day ration drain still applies.
func (g *GameState) Camp() (DayRecord, error) {
	record := DayRecord{}
	if g.Ended() {
		record.Ended = true
		record.Ending = g.Ending.Kind
		return record, nil
	}
	if g.Phase == PhaseTravelAttempted {
		return record, fmt.Errorf("the day's travel attempt is already spent")
	}

	if err := g.StartOfDay(); err != nil {
		return record, err
	}
	before := len(g.Log)

	g.Stats.HitPoints += campHitPointGain
	g.Stats.Sanity += campSanityGain
	g.Stats.Morale += campMoraleGain
	g.Stats.Clamp()
	g.logKey("camp.rest")

	g.checkTerminal()
	g.Phase = PhaseTravelAttempted
	g.EndOfDay()

	record.Day = g.Day - 1
	record.Region = g.policy.RegionForDay(record.Day)
	record.Season = g.policy.SeasonForDay(record.Day)
	record.Weather = g.Weather.Today
	record.LogKeys = append(record.LogKeys, g.Log[before:]...)
	record.Ended = g.Ended()
	record.Ending = g.Ending.Kind
	return record, nil
}

// Hunt spends the day and a box worth of bullets for a rolled supplies
// yield. Rejected without mutation when bullets run short.
func (g *GameState) Hunt() (DayRecord, error) {
	record := DayRecord{}
	if g.Ended() {
		record.Ended = true
		record.Ending = g.Ending.Kind
		return record, nil
	}
	if g.Phase == PhaseTravelAttempted {
		return record, fmt.Errorf("the day's travel attempt is already spent")
	}
	if g.Inventory.Bullets < huntBulletCost {
		return record, fmt.Errorf("hunting needs %d bullets, have %d", huntBulletCost, g.Inventory.Bullets)
	}

	if err := g.StartOfDay(); err != nil {
		return record, err
	}
	before := len(g.Log)

	g.Inventory.Bullets -= huntBulletCost
	yield := huntBaseYield + g.rng.IntN(huntRollMax+1)
	g.Stats.Supplies += yield
	g.Stats.Clamp()
	g.logKey("camp.hunt")

	g.checkTerminal()
	g.Phase = PhaseTravelAttempted
	g.EndOfDay()

	record.Day = g.Day - 1
	record.Region = g.policy.RegionForDay(record.Day)
	record.Season = g.policy.SeasonForDay(record.Day)
	record.Weather = g.Weather.Today
	record.LogKeys = append(record.LogKeys, g.Log[before:]...)
	record.Ended = g.Ended()
	record.Ending = g.Ending.Kind
	return record, nil
}

// SetPace changes the travel pace for subsequent days.
func (g *GameState) SetPace(pace Pace) error {
	if _, ok := g.policy.Pace[pace]; !ok {
		return fmt.Errorf("invalid pace: %s", pace)
	}
	g.Pace = pace
	return nil
}

// SetDiet changes the ration level for subsequent days.
func (g *GameState) SetDiet(diet Diet) error {
	if _, ok := g.policy.Diet[diet]; !ok {
		return fmt.Errorf("invalid diet: %s", diet)
	}
	g.Diet = diet
	return nil
}

// UseMedkit consumes one medkit for a hit-point recovery outside the day
// cycle. Using one with none held is a no-op.
func (g *GameState) UseMedkit() {
	if g.Inventory.Medkits <= 0 {
		return
	}
	g.Inventory.Medkits--
	g.Stats.HitPoints += 20
	g.Stats.Clamp()
	g.logKey("medkit.used")
}
