package game

import "math"

// Stat clamp bounds. Every mutation path must call Clamp afterwards so no
// field is ever observed outside its range.
const (
	MaxSupplies    = 500
	MaxHitPoints   = 100
	MaxSanity      = 100
	MaxCredibility = 100
	MaxMorale      = 100
	MaxAllies      = 10
	MaxPanic       = 10
)

type Stats struct {
	Supplies    int `json:"supplies"`
	HitPoints   int `json:"hit_points"`
	Sanity      int `json:"sanity"`
	Credibility int `json:"credibility"`
	Morale      int `json:"morale"`
	Allies      int `json:"allies"`
	Panic       int `json:"panic"`
}

// StatDelta is an additive change applied to Stats, clamped on apply.
type StatDelta struct {
	Supplies    int `json:"supplies,omitempty"`
	HitPoints   int `json:"hit_points,omitempty"`
	Sanity      int `json:"sanity,omitempty"`
	Credibility int `json:"credibility,omitempty"`
	Morale      int `json:"morale,omitempty"`
	Allies      int `json:"allies,omitempty"`
	Panic       int `json:"panic,omitempty"`
}

func (s *Stats) Clamp() {
	s.Supplies = clamp(s.Supplies, 0, MaxSupplies)
	s.HitPoints = clamp(s.HitPoints, 0, MaxHitPoints)
	s.Sanity = clamp(s.Sanity, 0, MaxSanity)
	s.Credibility = clamp(s.Credibility, 0, MaxCredibility)
	s.Morale = clamp(s.Morale, 0, MaxMorale)
	s.Allies = clamp(s.Allies, 0, MaxAllies)
	s.Panic = clamp(s.Panic, 0, MaxPanic)
}

func (s *Stats) Apply(d StatDelta) {
	s.Supplies += d.Supplies
	s.HitPoints += d.HitPoints
	s.Sanity += d.Sanity
	s.Credibility += d.Credibility
	s.Morale += d.Morale
	s.Allies += d.Allies
	s.Panic += d.Panic
	s.Clamp()
}

func clamp(number, min, max int) int {
	if number < min {
		return min
	}

	if number > max {
		return max
	}

	return number
}

func clampFloat(number, min, max float64) float64 {
	if number < min {
		return min
	}

	if number > max {
		return max
	}

	return number
}

// satAddCents adds two cent amounts without wrapping. Overflow saturates at
// MaxInt64; results below zero floor at zero.
func satAddCents(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	sum := a + b
	if sum < 0 {
		return 0
	}
	return sum
}

// satMulCents multiplies a unit price by a quantity, saturating at MaxInt64.
func satMulCents(price int64, qty int) int64 {
	if price <= 0 || qty <= 0 {
		return 0
	}
	q := int64(qty)
	if price > math.MaxInt64/q {
		return math.MaxInt64
	}
	return price * q
}
