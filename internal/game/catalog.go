package game

import "fmt"

// Choice is one way out of an encounter: stat deltas plus optional inventory
// and narrative side effects.
type Choice struct {
	ID     string    `json:"id"`
	Label  string    `json:"label"`
	Deltas StatDelta `json:"deltas"`

	GrantBullets int    `json:"grant_bullets,omitempty"`
	GrantTag     string `json:"grant_tag,omitempty"`
	// GrantReceipt pushes a collectible receipt token onto the run's stack.
	GrantReceipt string `json:"grant_receipt,omitempty"`
	LogKey       string `json:"log_key,omitempty"`
}

// Encounter is a read-only catalog entry. Empty Regions or Modes means the
// encounter applies everywhere.
type Encounter struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Weight      int        `json:"weight"`
	Regions     []Region   `json:"regions,omitempty"`
	Modes       []GameMode `json:"modes,omitempty"`
	// RequiresStarving gates the encounter behind an active malnutrition
	// level.
	RequiresStarving bool     `json:"requires_starving,omitempty"`
	Choices          []Choice `json:"choices"`
}

func (e Encounter) appliesToRegion(region Region) bool {
	if len(e.Regions) == 0 {
		return true
	}
	for _, r := range e.Regions {
		if r == region {
			return true
		}
	}
	return false
}

func (e Encounter) appliesToMode(mode GameMode) bool {
	if len(e.Modes) == 0 {
		return true
	}
	for _, m := range e.Modes {
		if m == mode {
			return true
		}
	}
	return false
}

// Catalog is the externally-loaded encounter content. The engine never
// mutates it and it is excluded from serialization; Rehydrate re-attaches it.
type Catalog struct {
	encounters []Encounter
	byID       map[string]Encounter
}

func NewCatalog(encounters []Encounter) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]Encounter, len(encounters))}
	for _, e := range encounters {
		if e.ID == "" {
			return nil, fmt.Errorf("encounter with empty id")
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("duplicate encounter id %q", e.ID)
		}
		if e.Weight <= 0 {
			return nil, fmt.Errorf("encounter %q: weight must be positive, got %d", e.ID, e.Weight)
		}
		if len(e.Choices) == 0 {
			return nil, fmt.Errorf("encounter %q has no choices", e.ID)
		}
		c.byID[e.ID] = e
		c.encounters = append(c.encounters, e)
	}
	return c, nil
}

func (c *Catalog) Encounters() []Encounter {
	return c.encounters
}

func (c *Catalog) Get(id string) (Encounter, bool) {
	e, ok := c.byID[id]
	return e, ok
}
