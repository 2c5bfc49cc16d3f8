package game

import "go.uber.org/zap"

// EndingKind is the closed set of terminal outcomes.
type EndingKind string

const (
	EndingNone           EndingKind = ""
	EndingStarvation     EndingKind = "starvation_collapse"
	EndingVehicleLost    EndingKind = "vehicle_lost"
	EndingExposureCold   EndingKind = "exposure_cold"
	EndingExposureHeat   EndingKind = "exposure_heat"
	EndingSanityLoss     EndingKind = "sanity_loss"
	EndingPanicCollapse  EndingKind = "panic_collapse"
	EndingBossVoteFailed EndingKind = "boss_vote_failed"
	EndingBossVictory    EndingKind = "boss_victory"
)

// Ending records the single terminal outcome of a run. Kind == EndingNone
// means the run is still live.
type Ending struct {
	Kind  EndingKind `json:"kind"`
	Day   int        `json:"day"`
	Score int        `json:"score"`
}

func (g *GameState) Ended() bool {
	return g.Ending.Kind != EndingNone
}

// setEnding records the terminal outcome. First writer wins: once an ending
// exists, later writes are ignored so contradictory terminal states can
// never be observed.
func (g *GameState) setEnding(kind EndingKind) {
	if g.Ended() || kind == EndingNone {
		return
	}
	g.Ending = Ending{
		Kind:  kind,
		Day:   g.Day,
		Score: g.computeScore(kind),
	}
	g.logKey("ending." + string(kind))
	g.logger.Info("run ended",
		zap.String("ending", string(kind)),
		zap.Int("day", g.Day),
		zap.Int("score", g.Ending.Score))
}

// checkTerminal scans the stat state for collapse conditions in priority
// order: vehicle, panic, hit points (mapped through the last damage cause),
// then sanity. Returns true when the run is over.
func (g *GameState) checkTerminal() bool {
	if g.Ended() {
		return true
	}

	if g.vehicleDestroyed() {
		g.setEnding(EndingVehicleLost)
		return true
	}
	if g.Stats.Panic >= MaxPanic {
		g.setEnding(EndingPanicCollapse)
		return true
	}
	if g.Stats.HitPoints <= 0 {
		switch g.LastDamage {
		case DamageExposureCold:
			g.setEnding(EndingExposureCold)
		case DamageExposureHeat:
			g.setEnding(EndingExposureHeat)
		default:
			g.setEnding(EndingStarvation)
		}
		return true
	}
	if g.Stats.Sanity <= 0 {
		g.setEnding(EndingSanityLoss)
		return true
	}

	return false
}

// computeScore is the weighted linear combination over non-negative stat
// contributions minus the capped breakdown penalty, floored at zero.
func (g *GameState) computeScore(kind EndingKind) int {
	sp := g.policy.Score

	score := g.Stats.Supplies * sp.SuppliesWeight
	score += g.Stats.HitPoints * sp.HitPointsWeight
	score += g.Stats.Morale * sp.MoraleWeight
	score += g.Stats.Credibility * sp.CredibilityWeight
	score += g.Stats.Allies * sp.AlliesWeight
	score += g.Day * sp.DayWeight
	score += g.Encounters.Resolved * sp.EncounterWeight
	score += len(g.Receipts) * sp.ReceiptWeight

	penalty := g.BreakdownCount * sp.BreakdownPenalty
	if penalty > sp.BreakdownPenaltyCap {
		penalty = sp.BreakdownPenaltyCap
	}
	score -= penalty

	if kind == EndingBossVictory {
		score += sp.BossVictoryBonus
	}

	if score < 0 {
		score = 0
	}
	return score
}
