package game

// DamageCause records what last hurt the party, so a hit-point collapse maps
// to the right ending.
type DamageCause string

const (
	DamageNone         DamageCause = ""
	DamageStarvation   DamageCause = "starvation"
	DamageExposureCold DamageCause = "exposure_cold"
	DamageExposureHeat DamageCause = "exposure_heat"
	DamageMisadventure DamageCause = "misadventure"
)

const maxMalnutrition = 5

// tickStarvation applies the escalating starvation damage while supplies sit
// at zero. Each tick raises the malnutrition level by one (capped), and the
// hit-point loss is the base point plus the level capped at three. The level
// clears instantly once supplies recover.
func (g *GameState) tickStarvation() {
	if g.Stats.Supplies > 0 {
		g.Malnutrition = 0
		return
	}

	g.Malnutrition = clamp(g.Malnutrition+1, 0, maxMalnutrition)

	loss := 1 + min(g.Malnutrition, 3)
	g.Stats.HitPoints -= loss
	g.Stats.Sanity--
	g.Stats.Panic++
	g.LastDamage = DamageStarvation
	g.Stats.Clamp()
	g.logKey("starvation.tick")
}
