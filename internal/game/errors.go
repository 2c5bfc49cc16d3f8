package game

import "fmt"

// CapacityError rejects a purchase line that would push holdings past the
// per-item cap. The caller must not apply any part of the purchase.
type CapacityError struct {
	Item      ItemKind
	Requested int
	Remaining int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: requested %d exceeds remaining capacity %d", e.Item, e.Requested, e.Remaining)
}

// FundsError rejects a spend that exceeds available cents. No partial
// deduction occurs.
type FundsError struct {
	RequiredCents  int64
	AvailableCents int64
}

func (e *FundsError) Error() string {
	return fmt.Sprintf("insufficient funds: need %d cents, have %d cents", e.RequiredCents, e.AvailableCents)
}
