package tourney

// Score records scores for the match at mid and propagates the outcome
// (winner/loser advancement, walkover cascades) through the bracket,
// returning a new Tournament snapshot. The receiver is never mutated.
func Score(mid MatchId, scores []int, t Tournament) (Tournament, error) {
	match, ok := t.matches[mid]
	if !ok {
		return Tournament{}, newError(UnknownMatch, &mid, "no such match")
	}
	if !match.Scorable() {
		return Tournament{}, newError(MatchNotReady, &mid, "a player slot is unresolved")
	}
	if len(scores) != len(match.Players) {
		return Tournament{}, newError(ScoreArityMismatch, &mid, "wrong number of scores")
	}
	if len(match.Players) == 2 && scores[0] == scores[1] {
		return Tournament{}, newError(TieNotPermitted, &mid, "duel matches cannot end in a tie")
	}

	next := t.clone()
	match = match.clone()
	match.Scores = append([]int(nil), scores...)
	next.matches[mid] = match
	next.metrics.MatchScored(bracketLabel(mid.Bracket), "scored")

	switch next.rules.(type) {
	case DuelRules:
		if err := advanceDuel(&next, mid); err != nil {
			return Tournament{}, err
		}
	case FFARules:
		if err := advanceFFA(&next, mid); err != nil {
			return Tournament{}, err
		}
	}

	next.results = computeResults(next)
	return next, nil
}
