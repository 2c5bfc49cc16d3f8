package game

import "fmt"

type WeatherKind string

const (
	WeatherClear     WeatherKind = "clear"
	WeatherRain      WeatherKind = "rain"
	WeatherStorm     WeatherKind = "storm"
	WeatherHeatWave  WeatherKind = "heat_wave"
	WeatherColdSnap  WeatherKind = "cold_snap"
	WeatherSnow      WeatherKind = "snow"
	WeatherDustStorm WeatherKind = "dust_storm"
)

type WeightedWeather struct {
	Kind   WeatherKind
	Weight int
}

// WeatherBlock is the persisted weather bookkeeping: today's kind, the prior
// day's kind, and how many consecutive days today's kind has held.
type WeatherBlock struct {
	Today      WeatherKind `json:"today"`
	Yesterday  WeatherKind `json:"yesterday"`
	StreakDays int         `json:"streak_days"`
}

// selectWeather rolls today's weather from the region/season table and rolls
// the streak bookkeeping forward. Sustained heat waves and cold snaps are
// broken by a forced clear day once the streak hits the configured limit.
func (g *GameState) selectWeather() error {
	region := g.policy.RegionForDay(g.Day)
	season := g.policy.SeasonForDay(g.Day)

	kind, err := drawWeather(g.rng, g.policy.Weather, region, season)
	if err != nil {
		return err
	}

	if isExtremeStreakKind(g.Weather.Today) && g.Weather.StreakDays >= g.policy.Weather.ExtremeStreakLimit {
		kind = WeatherClear
	}

	g.Weather.Yesterday = g.Weather.Today
	if kind == g.Weather.Today {
		g.Weather.StreakDays++
	} else {
		g.Weather.StreakDays = 1
	}
	g.Weather.Today = kind

	g.logKey("weather." + string(kind))
	return nil
}

func drawWeather(rng rngSource, policy WeatherPolicy, region Region, season Season) (WeatherKind, error) {
	seasons, ok := policy.Tables[region]
	if !ok {
		return "", fmt.Errorf("no weather table for region %q", region)
	}
	weights, ok := seasons[season]
	if !ok || len(weights) == 0 {
		return "", fmt.Errorf("no weather table for region %q season %q", region, season)
	}

	total := 0
	for _, entry := range weights {
		if entry.Weight > 0 {
			total += entry.Weight
		}
	}
	if total <= 0 {
		return "", fmt.Errorf("weather table for region %q season %q has no positive weights", region, season)
	}

	roll := rng.IntN(total)
	cumulative := 0
	for _, entry := range weights {
		if entry.Weight <= 0 {
			continue
		}
		cumulative += entry.Weight
		if roll < cumulative {
			return entry.Kind, nil
		}
	}

	return weights[len(weights)-1].Kind, nil
}

// applyWeatherEffects damages stats for exposure weather. Clothing or a
// blanket shields the cold kinds; a water jug shields heat waves.
func (g *GameState) applyWeatherEffects() {
	switch g.Weather.Today {
	case WeatherHeatWave:
		if !g.Inventory.HasTag(TagWaterJug) {
			g.Stats.HitPoints -= 2
			g.LastDamage = DamageExposureHeat
		}
		g.Stats.Sanity--
	case WeatherColdSnap:
		if !g.hasColdProtection() {
			g.Stats.HitPoints -= 2
			g.LastDamage = DamageExposureCold
		}
		g.Stats.Morale--
	case WeatherSnow:
		if !g.hasColdProtection() {
			g.Stats.HitPoints--
			g.LastDamage = DamageExposureCold
		}
	case WeatherStorm:
		g.Stats.Morale -= 2
		g.Stats.Panic++
	case WeatherDustStorm:
		g.Stats.Sanity--
		g.Stats.Supplies -= 2
	}
	g.Stats.Clamp()
}

func (g *GameState) hasColdProtection() bool {
	return g.Inventory.Clothes > 0 || g.Inventory.HasTag(TagBlanket)
}

func travelFactorForWeather(kind WeatherKind) float64 {
	switch kind {
	case WeatherRain:
		return 0.8
	case WeatherStorm:
		return 0.5
	case WeatherHeatWave, WeatherColdSnap:
		return 0.9
	case WeatherSnow:
		return 0.6
	case WeatherDustStorm:
		return 0.7
	default:
		return 1.0
	}
}

func isExtremeWeather(kind WeatherKind) bool {
	switch kind {
	case WeatherStorm, WeatherHeatWave, WeatherColdSnap, WeatherSnow, WeatherDustStorm:
		return true
	default:
		return false
	}
}

func isExtremeStreakKind(kind WeatherKind) bool {
	return kind == WeatherHeatWave || kind == WeatherColdSnap
}

func defaultWeatherTables() map[Region]map[Season][]WeightedWeather {
	tables := make(map[Region]map[Season][]WeightedWeather, 5)
	tables[RegionHeartland] = map[Season][]WeightedWeather{
		SeasonSummer: {{WeatherClear, 55}, {WeatherRain, 20}, {WeatherStorm, 10}, {WeatherHeatWave, 15}},
		SeasonAutumn: {{WeatherClear, 55}, {WeatherRain, 30}, {WeatherStorm, 10}, {WeatherColdSnap, 5}},
		SeasonWinter: {{WeatherClear, 40}, {WeatherRain, 10}, {WeatherSnow, 30}, {WeatherColdSnap, 20}},
		SeasonSpring: {{WeatherClear, 50}, {WeatherRain, 35}, {WeatherStorm, 15}},
	}
	tables[RegionRustBelt] = map[Season][]WeightedWeather{
		SeasonSummer: {{WeatherClear, 50}, {WeatherRain, 25}, {WeatherStorm, 15}, {WeatherHeatWave, 10}},
		SeasonAutumn: {{WeatherClear, 45}, {WeatherRain, 35}, {WeatherStorm, 10}, {WeatherColdSnap, 10}},
		SeasonWinter: {{WeatherClear, 30}, {WeatherSnow, 40}, {WeatherColdSnap, 25}, {WeatherRain, 5}},
		SeasonSpring: {{WeatherClear, 45}, {WeatherRain, 40}, {WeatherStorm, 15}},
	}
	tables[RegionGreatPlains] = map[Season][]WeightedWeather{
		SeasonSummer: {{WeatherClear, 45}, {WeatherStorm, 20}, {WeatherHeatWave, 25}, {WeatherDustStorm, 10}},
		SeasonAutumn: {{WeatherClear, 55}, {WeatherRain, 20}, {WeatherStorm, 10}, {WeatherDustStorm, 10}, {WeatherColdSnap, 5}},
		SeasonWinter: {{WeatherClear, 35}, {WeatherSnow, 30}, {WeatherColdSnap, 30}, {WeatherDustStorm, 5}},
		SeasonSpring: {{WeatherClear, 45}, {WeatherRain, 25}, {WeatherStorm, 25}, {WeatherDustStorm, 5}},
	}
	tables[RegionHighDesert] = map[Season][]WeightedWeather{
		SeasonSummer: {{WeatherClear, 40}, {WeatherHeatWave, 35}, {WeatherDustStorm, 20}, {WeatherStorm, 5}},
		SeasonAutumn: {{WeatherClear, 60}, {WeatherHeatWave, 15}, {WeatherDustStorm, 15}, {WeatherColdSnap, 10}},
		SeasonWinter: {{WeatherClear, 50}, {WeatherColdSnap, 30}, {WeatherSnow, 15}, {WeatherDustStorm, 5}},
		SeasonSpring: {{WeatherClear, 55}, {WeatherDustStorm, 20}, {WeatherRain, 15}, {WeatherHeatWave, 10}},
	}
	tables[RegionWestCoast] = map[Season][]WeightedWeather{
		SeasonSummer: {{WeatherClear, 65}, {WeatherRain, 15}, {WeatherHeatWave, 15}, {WeatherStorm, 5}},
		SeasonAutumn: {{WeatherClear, 55}, {WeatherRain, 35}, {WeatherStorm, 10}},
		SeasonWinter: {{WeatherClear, 35}, {WeatherRain, 45}, {WeatherStorm, 15}, {WeatherColdSnap, 5}},
		SeasonSpring: {{WeatherClear, 55}, {WeatherRain, 35}, {WeatherStorm, 10}},
	}
	return tables
}
