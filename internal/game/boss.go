package game

import "fmt"

// markBossReady flips the boss flag the first time the trail distance is
// reached. The flag is one-way; travel blocks until the vote resolves.
func (g *GameState) markBossReady() {
	if g.BossReady || g.DistanceMiles < g.policy.TrailMiles {
		return
	}
	g.BossReady = true
	g.logKey("boss.ready")
}

// ResolveBossVote runs the end-of-trail vote. Support is credibility plus
// weighted allies and morale plus one final roll; meeting the threshold is
// the victory ending, anything less is the failed-vote ending. Calling with
// no pending vote is a no-op.
func (g *GameState) ResolveBossVote() (EndingKind, error) {
	if g.Ended() {
		return g.Ending.Kind, nil
	}
	if !g.BossReady {
		return EndingNone, fmt.Errorf("the vote is not ready: %d of %d miles", g.DistanceMiles, g.policy.TrailMiles)
	}

	bp := g.policy.Boss
	support := g.Stats.Credibility + g.Stats.Allies*5 + g.Stats.Morale/2
	support += g.rng.IntN(bp.RollMax + 1)

	if support >= bp.VoteThreshold {
		g.setEnding(EndingBossVictory)
	} else {
		g.setEnding(EndingBossVoteFailed)
	}
	return g.Ending.Kind, nil
}
