package tourney

// NewTournament materializes a bracket for the given rules and player count.
// opts is optional: the zero Options builds exactly the bracket the bare
// rules/size describe, with no roster resolution and no metrics.
func NewTournament(rules Rules, np int, opts Options) (Tournament, error) {
	t := Tournament{
		rules:   rules,
		size:    np,
		roster:  opts.Roster,
		metrics: opts.Metrics,
		logger:  opts.Logger,
	}

	var matches map[MatchId]Match
	var err error

	switch r := rules.(type) {
	case DuelRules:
		matches, err = buildDuel(r, np, t.metrics)
	case FFARules:
		matches, err = buildFFA(r, np, t.metrics)
	default:
		return Tournament{}, newError(BadMatchId, nil, "unrecognized rules type")
	}
	if err != nil {
		return Tournament{}, err
	}

	t.matches = matches
	t.keys = sortedKeys(matches)
	t.logf("tourney: built %d matches for %T size=%d", len(matches), rules, np)
	return t, nil
}

func markWO(seed, np int) int {
	if seed > np {
		return Walkover
	}
	return seed
}

func bracketLabel(b Bracket) string {
	return b.String()
}
