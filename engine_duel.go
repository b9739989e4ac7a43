package tourney

// advanceDuel performs the winner/loser progression and walkover cascade
// for a duel match that was just scored at mid.
func advanceDuel(t *Tournament, mid MatchId) error {
	r := t.rules.(DuelRules)
	p := ceilLog2(t.size)
	match := t.matches[mid]
	winner, _ := match.Winner()

	target, pos, terminal, err := mRight(mid, p, r.Elimination, match.Scores, false)
	if err != nil {
		return err
	}
	if !terminal {
		cascaded := writePosition(t, target, pos, winner)
		if cascaded {
			t.metrics.MatchScored(bracketLabel(target.Bracket), "walkover")
			if err := propagateRight(t, target, p, r.Elimination, 1); err != nil {
				return err
			}
		}
	}

	if r.Elimination == Double {
		if dtarget, dpos, ok := mDown(mid, p, r.Elimination); ok {
			if loser, hasLoser := match.Loser(); hasLoser && loser > 0 {
				cascaded := writePosition(t, dtarget, dpos, loser)
				if cascaded {
					t.metrics.MatchScored(bracketLabel(dtarget.Bracket), "walkover")
					if err := propagateRight(t, dtarget, p, r.Elimination, 1); err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}

// propagateRight advances the winner of a match that just became decided by
// an automatic walkover (not a direct report), recursing into further
// cascades. depth is recorded against the cascade-depth histogram once the
// chain terminates.
func propagateRight(t *Tournament, mid MatchId, p int, elim EliminationKind, depth int) error {
	match := t.matches[mid]
	winner, ok := match.Winner()
	if !ok {
		t.metrics.CascadeDepth(depth - 1)
		return nil
	}

	target, pos, terminal, err := mRight(mid, p, elim, match.Scores, true)
	if err != nil {
		return err
	}
	if terminal {
		t.metrics.CascadeDepth(depth)
		return nil
	}

	cascaded := writePosition(t, target, pos, winner)
	if !cascaded {
		t.metrics.CascadeDepth(depth)
		return nil
	}
	t.metrics.MatchScored(bracketLabel(target.Bracket), "walkover")
	return propagateRight(t, target, p, elim, depth+1)
}

// writePosition writes seed into players[pos] of the match at mid,
// re-applies the walkover scoring rule, and reports whether that write
// newly decided the match (it was unplayed before, played after).
func writePosition(t *Tournament, mid MatchId, pos, seed int) bool {
	m := t.matches[mid]
	wasPlayed := m.Played()

	players := append([]int(nil), m.Players...)
	players[pos] = seed
	updated := Match{Players: players, Scores: m.Scores}
	applyWalkoverScore(&updated)
	t.matches[mid] = updated

	return !wasPlayed && updated.Played()
}

// mRight computes the "advance winner" target for mid, per the right-
// progression rule: WB feeds WB (or LB at the WB final), LB feeds LB.
// inhibit suppresses the GF1-victory termination so a walkover cascade into
// a pending grand final still completes.
func mRight(mid MatchId, p int, elim EliminationKind, scores []int, inhibit bool) (MatchId, int, bool, error) {
	r, g := mid.Round, mid.Game
	if r < 1 || g < 1 {
		return MatchId{}, 0, false, newError(BadMatchId, &mid, "non-positive round or game")
	}

	switch {
	case r >= 2*p:
		return MatchId{}, 0, true, nil
	case mid.Bracket == WB && r > p:
		return MatchId{}, 0, true, nil
	case mid.Bracket == WB && elim == Single && r == p:
		return MatchId{}, 0, true, nil
	case mid.Bracket == LB && r == 2*p-1 && !inhibit && len(scores) > 0 && maxScore(scores) == scores[0]:
		return MatchId{}, 0, true, nil
	}

	var target MatchId
	switch {
	case mid.Bracket == LB && r%2 == 1:
		// Odd LB rounds feed the next round one-to-one: it has the same
		// number of games, each also taking one WB loser.
		target = MatchId{LB, r + 1, g}
	case mid.Bracket == LB:
		target = MatchId{LB, r + 1, ceilHalf(g)}
	case mid.Bracket == WB && r == p:
		target = MatchId{LB, 2*p - 1, ceilHalf(g)}
	default:
		target = MatchId{WB, r + 1, ceilHalf(g)}
	}

	return target, positionRight(mid, p), false, nil
}

func positionRight(mid MatchId, p int) int {
	r, g := mid.Round, mid.Game
	if mid.Bracket == WB {
		if g%2 == 1 {
			return 0
		}
		return 1
	}
	switch {
	case r == 2*p-2:
		return 1
	case r == 2*p-1:
		return 0
	case (r == 1 && g%2 == 1) || (r > 1 && r%2 == 1):
		return 1
	case r == 1:
		return 0
	case g%2 == 1:
		return 0
	default:
		return 1
	}
}

// mDown computes the "drop loser" target for mid, or ok=false if the loser
// does not descend anywhere (single elimination, the bracket final stretch,
// or an LB-origin match other than GF1, whose loser drops into GF2).
func mDown(mid MatchId, p int, elim EliminationKind) (MatchId, int, bool) {
	if elim != Double {
		return MatchId{}, 0, false
	}
	r, g := mid.Round, mid.Game
	if r == 2*p-1 {
		return MatchId{LB, 2 * p, 1}, 1, true
	}
	if mid.Bracket == LB || r > p {
		return MatchId{}, 0, false
	}

	var target MatchId
	if r == 1 {
		target = MatchId{LB, 1, ceilHalf(g)}
	} else {
		target = MatchId{LB, 2 * (r - 1), g}
	}
	pos := 0
	if !(r > 2 || g%2 == 1) {
		pos = 1
	}
	return target, pos, true
}

func ceilHalf(g int) int {
	return (g + 1) / 2
}

func maxScore(scores []int) int {
	best := scores[0]
	for _, s := range scores[1:] {
		if s > best {
			best = s
		}
	}
	return best
}
