package game

// OrderKind tags the active executive order. OrderNone means no order is in
// effect; the cooldown counter keeps a fresh one from triggering immediately.
type OrderKind string

const (
	OrderNone          OrderKind = ""
	OrderRationFreeze  OrderKind = "ration_freeze"
	OrderFuelRationing OrderKind = "fuel_rationing"
	OrderMediaBlitz    OrderKind = "media_blitz"
	OrderCurfew        OrderKind = "curfew"
)

var orderKinds = []OrderKind{OrderRationFreeze, OrderFuelRationing, OrderMediaBlitz, OrderCurfew}

const (
	orderRationExtraDrain = 2
	orderBreakdownBonus   = 0.02
)

type Order struct {
	Kind     OrderKind `json:"kind"`
	DaysLeft int       `json:"days_left"`
	Cooldown int       `json:"cooldown"`
}

func (o Order) Active() bool {
	return o.Kind != OrderNone
}

// tickOrder ages the active executive order, applies its per-day effect, and
// rolls for a new one once the cooldown has drained. Draw order is fixed:
// trigger roll, then kind, then duration.
func (g *GameState) tickOrder() {
	if g.Order.Active() {
		g.applyOrderEffect()
		g.Order.DaysLeft--
		if g.Order.DaysLeft <= 0 {
			op := g.policy.Order
			g.Order = Order{Cooldown: rollRange(g.rng, op.CooldownMin, op.CooldownMax)}
			g.logKey("order.expired")
		}
		return
	}

	if g.Order.Cooldown > 0 {
		g.Order.Cooldown--
		return
	}

	op := g.policy.Order
	if g.rng.Float64() >= op.Chance {
		return
	}
	kind := orderKinds[g.rng.IntN(len(orderKinds))]
	g.Order = Order{
		Kind:     kind,
		DaysLeft: rollRange(g.rng, op.DurationMin, op.DurationMax),
	}
	g.logKey("order." + string(kind))
}

func (g *GameState) applyOrderEffect() {
	switch g.Order.Kind {
	case OrderRationFreeze:
		g.Stats.Supplies -= orderRationExtraDrain
	case OrderMediaBlitz:
		g.Stats.Credibility++
	case OrderCurfew:
		g.Stats.Morale--
		g.Stats.Panic++
	}
	// OrderFuelRationing is applied inside breakdownChance.
	g.Stats.Clamp()
}
