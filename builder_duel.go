package tourney

import "github.com/adarqui/tourney/internal/seeding"

// buildDuel materializes a single- or double-elimination duel bracket per
// the round-1 perfect seeding plus walkover-propagation algorithm.
func buildDuel(r DuelRules, np int, m *Metrics) (map[MatchId]Match, error) {
	if np < 4 {
		return nil, newError(TooFewPlayers, nil, "duel requires at least 4 players")
	}

	p := ceilLog2(np)
	matches := make(map[MatchId]Match)
	n1 := 1 << uint(p-1)

	// WB round 1: perfect seeding, walkovers auto-scored.
	for i := 1; i <= n1; i++ {
		a, b := seeding.Seeds(p, i)
		mt := Match{Players: []int{markWO(a, np), markWO(b, np)}}
		applyWalkoverScore(&mt)
		matches[MatchId{WB, 1, i}] = mt
		m.MatchBuilt(bracketLabel(WB))
	}

	// WB round 2 (and, for Double, LB round 1) prefilled from consecutive
	// WB round-1 pairs.
	for g := 1; g <= n1/2; g++ {
		m1 := matches[MatchId{WB, 1, 2*g - 1}]
		m2 := matches[MatchId{WB, 1, 2 * g}]

		wb2 := Match{Players: []int{winnerOrEmpty(m1), winnerOrEmpty(m2)}}
		applyWalkoverScore(&wb2)
		matches[MatchId{WB, 2, g}] = wb2
		m.MatchBuilt(bracketLabel(WB))

		if r.Elimination == Double {
			lb1 := Match{Players: []int{loserOrEmpty(m1), loserOrEmpty(m2)}}
			applyWalkoverScore(&lb1)
			matches[MatchId{LB, 1, g}] = lb1
			m.MatchBuilt(bracketLabel(LB))
		}
	}

	// Remaining WB rounds are empty shells.
	for rr := 3; rr <= p; rr++ {
		cnt := 1 << uint(p-rr)
		for i := 1; i <= cnt; i++ {
			matches[MatchId{WB, rr, i}] = Match{Players: []int{Empty, Empty}}
			m.MatchBuilt(bracketLabel(WB))
		}
	}

	if r.Elimination != Double {
		return matches, nil
	}

	// LB round 2 is prefilled from LB round-1 winners; no score yet.
	for g := 1; g <= n1/2; g++ {
		w := winnerOrEmpty(matches[MatchId{LB, 1, g}])
		var players []int
		if g%2 == 1 {
			players = []int{Empty, w}
		} else {
			players = []int{w, Empty}
		}
		matches[MatchId{LB, 2, g}] = Match{Players: players}
		m.MatchBuilt(bracketLabel(LB))
	}

	// Remaining LB rounds (3..2p-2) are empty shells.
	for rr := 3; rr <= 2*p-2; rr++ {
		cnt := 1 << uint(p-1-(rr+1)/2)
		for i := 1; i <= cnt; i++ {
			matches[MatchId{LB, rr, i}] = Match{Players: []int{Empty, Empty}}
			m.MatchBuilt(bracketLabel(LB))
		}
	}

	// Grand final (GF1) and bracket-reset game (GF2).
	matches[MatchId{LB, 2*p - 1, 1}] = Match{Players: []int{Empty, Empty}}
	matches[MatchId{LB, 2 * p, 1}] = Match{Players: []int{Empty, Empty}}
	m.MatchBuilt(bracketLabel(LB))
	m.MatchBuilt(bracketLabel(LB))

	return matches, nil
}

// winnerOrEmpty returns the match's winner, or Empty if the match has not
// been decided yet.
func winnerOrEmpty(m Match) int {
	if w, ok := m.Winner(); ok {
		return w
	}
	return Empty
}

// loserOrEmpty returns the match's loser, or Empty if the match has not
// been decided yet.
func loserOrEmpty(m Match) int {
	if l, ok := m.Loser(); ok {
		return l
	}
	return Empty
}

// ceilLog2 returns the smallest p such that 2^p >= n.
func ceilLog2(n int) int {
	p := 0
	for (1 << uint(p)) < n {
		p++
	}
	return p
}
