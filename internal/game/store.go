package game

import "fmt"

type ItemKind string

const (
	ItemOxen       ItemKind = "oxen"
	ItemFood       ItemKind = "food"
	ItemAmmo       ItemKind = "ammo"
	ItemClothes    ItemKind = "clothes"
	ItemTire       ItemKind = "tire"
	ItemBattery    ItemKind = "battery"
	ItemAlternator ItemKind = "alternator"
	ItemFuelPump   ItemKind = "fuel_pump"
	ItemMedkit     ItemKind = "medkit"
)

// Inventory tags gate weather mitigation and crossing permits.
const (
	TagBlanket       = "blanket"
	TagWaterJug      = "water_jug"
	TagTransitPermit = "transit_permit"
)

type Inventory struct {
	Oxen    int              `json:"oxen"`
	Bullets int              `json:"bullets"`
	Clothes int              `json:"clothes"`
	Medkits int              `json:"medkits"`
	Spares  map[PartKind]int `json:"spares"`
	Tags    []string         `json:"tags,omitempty"`
}

func newInventory() Inventory {
	return Inventory{Spares: make(map[PartKind]int)}
}

func (inv *Inventory) HasTag(tag string) bool {
	for _, t := range inv.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (inv *Inventory) AddTag(tag string) {
	if tag == "" || inv.HasTag(tag) {
		return
	}
	inv.Tags = append(inv.Tags, tag)
}

func (inv *Inventory) spareCount() int {
	total := 0
	for _, n := range inv.Spares {
		total += n
	}
	return total
}

// PurchaseLine is one requested store line; lines of the same kind are
// aggregated before validation.
type PurchaseLine struct {
	Item ItemKind `json:"item"`
	Qty  int      `json:"qty"`
}

type ReceiptLine struct {
	Item      ItemKind `json:"item"`
	Qty       int      `json:"qty"`
	CostCents int64    `json:"cost_cents"`
}

// Receipt aggregates the validated lines of one purchase.
type Receipt struct {
	Node       int           `json:"node"`
	Lines      []ReceiptLine `json:"lines"`
	TotalCents int64         `json:"total_cents"`
}

// PriceCents is the per-unit price at the given trail node. Prices inflate by
// the configured markup percentage per node along the route.
func (p Policy) PriceCents(item ItemKind, node int) (int64, error) {
	base, ok := p.Store.BasePriceCents[item]
	if !ok {
		return 0, fmt.Errorf("no price configured for item %q", item)
	}
	if node < 0 {
		node = 0
	}
	markup := int64(100 + p.Store.NodeMarkupPct*node)
	return base * markup / 100, nil
}

// remainingCapacity computes how many more units of an item the party can
// hold. Ammunition capacity is counted in boxes, with partially-used boxes
// rounding up against the cap.
func (g *GameState) remainingCapacity(item ItemKind) int {
	limit, ok := g.policy.Store.Caps[item]
	if !ok {
		return 0
	}

	held := 0
	switch item {
	case ItemOxen:
		held = g.Inventory.Oxen
	case ItemFood:
		held = g.Stats.Supplies
	case ItemAmmo:
		perBox := g.policy.Store.BulletsPerBox
		if perBox <= 0 {
			perBox = 1
		}
		held = (g.Inventory.Bullets + perBox - 1) / perBox
	case ItemClothes:
		held = g.Inventory.Clothes
	case ItemMedkit:
		held = g.Inventory.Medkits
	case ItemTire, ItemBattery, ItemAlternator, ItemFuelPump:
		held = g.Inventory.Spares[partForItem(item)]
	}

	remaining := limit - held
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// QuotePurchase validates a purchase against an immutable snapshot of the
// run and prices it without mutating anything. Lines are aggregated by kind;
// any line past remaining capacity rejects the whole quote, as does a total
// beyond available cents.
func (g *GameState) QuotePurchase(lines []PurchaseLine) (*Receipt, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("purchase has no lines")
	}

	merged := make(map[ItemKind]int)
	order := make([]ItemKind, 0, len(lines))
	for _, line := range lines {
		if line.Qty <= 0 {
			return nil, fmt.Errorf("quantity for %s must be positive, got %d", line.Item, line.Qty)
		}
		if _, seen := merged[line.Item]; !seen {
			order = append(order, line.Item)
		}
		merged[line.Item] += line.Qty
	}

	node := g.policy.TrailNode(g.Day)
	receipt := &Receipt{Node: node}

	for _, item := range order {
		qty := merged[item]
		remaining := g.remainingCapacity(item)
		if qty > remaining {
			return nil, &CapacityError{Item: item, Requested: qty, Remaining: remaining}
		}

		price, err := g.policy.PriceCents(item, node)
		if err != nil {
			return nil, err
		}
		cost := satMulCents(price, qty)
		receipt.Lines = append(receipt.Lines, ReceiptLine{Item: item, Qty: qty, CostCents: cost})
		receipt.TotalCents = satAddCents(receipt.TotalCents, cost)
	}

	if receipt.TotalCents > g.BudgetCents {
		return nil, &FundsError{RequiredCents: receipt.TotalCents, AvailableCents: g.BudgetCents}
	}

	return receipt, nil
}

// Purchase quotes and, only if the whole quote validates, atomically applies
// every grant and the deduction. A failed quote leaves state untouched.
func (g *GameState) Purchase(lines []PurchaseLine) (*Receipt, error) {
	receipt, err := g.QuotePurchase(lines)
	if err != nil {
		return nil, err
	}

	for _, line := range receipt.Lines {
		g.grantItem(line.Item, line.Qty)
	}
	g.BudgetCents -= receipt.TotalCents
	if g.BudgetCents < 0 {
		g.BudgetCents = 0
	}
	g.Stats.Clamp()
	g.logKey("store.purchase")

	return receipt, nil
}

func (g *GameState) grantItem(item ItemKind, qty int) {
	switch item {
	case ItemOxen:
		g.Inventory.Oxen += qty
	case ItemFood:
		g.Stats.Supplies += qty
	case ItemAmmo:
		perBox := g.policy.Store.BulletsPerBox
		if perBox <= 0 {
			perBox = 1
		}
		g.Inventory.Bullets += qty * perBox
	case ItemClothes:
		g.Inventory.Clothes += qty
	case ItemMedkit:
		g.Inventory.Medkits += qty
	case ItemTire, ItemBattery, ItemAlternator, ItemFuelPump:
		g.Inventory.Spares[partForItem(item)] += qty
	}
}
