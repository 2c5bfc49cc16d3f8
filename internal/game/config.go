package game

import "fmt"

type GameMode string

const (
	ModeStandard GameMode = "standard"
	ModeIronman  GameMode = "ironman"
)

type Pace string

const (
	PaceSteady    Pace = "steady"
	PaceStrenuous Pace = "strenuous"
	PaceGrueling  Pace = "grueling"
)

type Diet string

const (
	DietGenerous Diet = "generous"
	DietMeager   Diet = "meager"
	DietBare     Diet = "bare"
)

type Persona string

const (
	PersonaDrifter Persona = "drifter"
	PersonaFixer   Persona = "fixer"
	PersonaInsider Persona = "insider"
)

// RunConfig is the player-facing setup for one run.
type RunConfig struct {
	Seed     int64
	GameMode GameMode
	Pace     Pace
	Diet     Diet
	Persona  Persona

	StartingCents int64
	// Debug routes verbose engine logging through the injected logger.
	// There is no environment-variable fallback inside the engine.
	Debug bool
}

func (c RunConfig) Validate() error {
	switch c.GameMode {
	case ModeStandard:
	case ModeIronman:
	default:
		return fmt.Errorf("invalid game mode: %s", c.GameMode)
	}

	switch c.Pace {
	case PaceSteady, PaceStrenuous, PaceGrueling:
	default:
		return fmt.Errorf("invalid pace: %s", c.Pace)
	}

	switch c.Diet {
	case DietGenerous, DietMeager, DietBare:
	default:
		return fmt.Errorf("invalid diet: %s", c.Diet)
	}

	switch c.Persona {
	case PersonaDrifter, PersonaFixer, PersonaInsider:
	default:
		return fmt.Errorf("invalid persona: %s", c.Persona)
	}

	if c.StartingCents < 0 {
		return fmt.Errorf("starting cents must not be negative, got %d", c.StartingCents)
	}

	return nil
}
