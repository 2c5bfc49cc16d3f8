package game

// PartKind identifies the four vehicle parts that can fail on the road.
type PartKind string

const (
	PartNone       PartKind = ""
	PartTire       PartKind = "tire"
	PartBattery    PartKind = "battery"
	PartAlternator PartKind = "alternator"
	PartFuelPump   PartKind = "fuel_pump"
)

var breakdownParts = []PartKind{PartTire, PartBattery, PartAlternator, PartFuelPump}

func partForItem(item ItemKind) PartKind {
	switch item {
	case ItemTire:
		return PartTire
	case ItemBattery:
		return PartBattery
	case ItemAlternator:
		return PartAlternator
	case ItemFuelPump:
		return PartFuelPump
	default:
		return PartNone
	}
}

type Vehicle struct {
	Health int `json:"health"`
	Wear   int `json:"wear"`
}

// Breakdown is the active vehicle failure. Part == PartNone means the
// vehicle is running; any other part blocks travel until resolved.
type Breakdown struct {
	Part PartKind `json:"part"`
	Day  int      `json:"day"`
}

func (b Breakdown) Active() bool {
	return b.Part != PartNone
}

// breakdownChance sums the base rate, a wear-proportional term, the pace
// term, an extreme-weather bonus, and a critical-health bonus.
func (g *GameState) breakdownChance() float64 {
	vp := g.policy.Vehicle
	chance := vp.BaseChance
	chance += float64(g.Vehicle.Wear) * vp.WearFactor
	chance += g.policy.Pace[g.Pace].BreakdownBonus
	if isExtremeWeather(g.Weather.Today) {
		chance += vp.ExtremeWeatherBonus
	}
	if g.Vehicle.Health < vp.CriticalHealth {
		chance += vp.CriticalBonus
	}
	if g.Order.Kind == OrderFuelRationing {
		chance += orderBreakdownBonus
	}
	return clampFloat(chance, 0, 1)
}

// rollBreakdown draws against the summed chance and, on a hit, starts a
// breakdown on a uniformly chosen part with instant health damage and wear.
// Returns true when a new breakdown started.
func (g *GameState) rollBreakdown() bool {
	if g.Breakdown.Active() {
		return false
	}
	if g.rng.Float64() >= g.breakdownChance() {
		return false
	}

	vp := g.policy.Vehicle
	part := breakdownParts[g.rng.IntN(len(breakdownParts))]
	g.Breakdown = Breakdown{Part: part, Day: g.Day}
	g.BreakdownCount++
	g.Vehicle.Health = clamp(g.Vehicle.Health-vp.BreakdownDamage, 0, 100)
	g.Vehicle.Wear += vp.BreakdownWear
	g.logKey("breakdown." + string(part))
	return true
}

// resolveBreakdown walks the repair precedence: a matching spare, then an
// emergency cash repair when no spares of any kind remain, then a jury-rig
// once a full day has passed. Returns true when the breakdown cleared and
// travel can continue.
func (g *GameState) resolveBreakdown() bool {
	if !g.Breakdown.Active() {
		return true
	}
	vp := g.policy.Vehicle
	part := g.Breakdown.Part

	if g.Inventory.Spares[part] > 0 {
		g.Inventory.Spares[part]--
		g.repair(vp.SpareRepair, vp.SpareWearCredit)
		g.Breakdown = Breakdown{}
		g.logKey("breakdown.repaired_spare")
		return true
	}

	if g.Inventory.spareCount() == 0 && g.BudgetCents >= vp.EmergencyFeeCents {
		g.BudgetCents -= vp.EmergencyFeeCents
		g.repair(vp.EmergencyRepair, vp.EmergencyWearCredit)
		g.Breakdown = Breakdown{}
		g.logKey("breakdown.repaired_emergency")
		return true
	}

	if g.Day-g.Breakdown.Day >= vp.JuryRigDelayDays {
		g.repair(vp.JuryRigRepair, 0)
		g.Breakdown = Breakdown{}
		g.logKey("breakdown.jury_rigged")
		return true
	}

	g.logKey("breakdown.blocked")
	return false
}

func (g *GameState) repair(health, wearCredit int) {
	g.Vehicle.Health = clamp(g.Vehicle.Health+health, 0, 100)
	g.Vehicle.Wear = clamp(g.Vehicle.Wear-wearCredit, 0, 1<<30)
}

// vehicleDestroyed is the terminal check: health fully depleted, more
// breakdowns than the run can tolerate (spares on hand raise the tolerance),
// and no way left to pay or patch.
func (g *GameState) vehicleDestroyed() bool {
	if g.Vehicle.Health > 0 {
		return false
	}
	vp := g.policy.Vehicle
	tolerance := vp.ToleranceFloor + g.Inventory.spareCount()
	if g.BreakdownCount <= tolerance {
		return false
	}
	return g.Inventory.spareCount() == 0 && g.BudgetCents < vp.EmergencyFeeCents
}

func (g *GameState) applyDailyWear() {
	wear := g.policy.Vehicle.DailyWear + g.policy.Pace[g.Pace].ExtraWear
	g.Vehicle.Wear += wear
}
