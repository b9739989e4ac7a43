package tourney

import "sort"

// advanceFFA checks whether every match in mid's round now has scores and,
// if so, binds the top finishers of each match into the next round's
// already-materialized group slots.
func advanceFFA(t *Tournament, mid MatchId) error {
	rules := t.rules.(FFARules)
	round := mid.Round

	roundMatches := matchesInRound(t.matches, round)
	for _, m := range roundMatches {
		if !m.m.Played() {
			return nil
		}
	}

	nextMatches := matchesInRound(t.matches, round+1)
	if len(nextMatches) == 0 {
		return nil
	}

	minSize := len(roundMatches[0].m.Players)
	for _, rm := range roundMatches {
		if n := len(rm.m.Players); n < minSize {
			minSize = n
		}
	}
	advp := rules.Advance - (rules.GroupSize - minSize)
	if advp < 1 {
		advp = 1
	}

	var advancers []int
	for _, rm := range roundMatches {
		advancers = append(advancers, topFinishers(rm.m, advp)...)
	}

	for _, nm := range nextMatches {
		players := make([]int, len(nm.m.Players))
		for i, placeholder := range nm.m.Players {
			if placeholder >= 1 && placeholder <= len(advancers) {
				players[i] = advancers[placeholder-1]
			} else {
				players[i] = placeholder
			}
		}
		t.matches[nm.id] = Match{Players: players}
	}

	return nil
}

type roundMatch struct {
	id MatchId
	m  Match
}

// matchesInRound returns every WB match for the given round, sorted by
// game number ascending.
func matchesInRound(matches map[MatchId]Match, round int) []roundMatch {
	var out []roundMatch
	for id, m := range matches {
		if id.Bracket == WB && id.Round == round {
			out = append(out, roundMatch{id: id, m: m})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id.Game < out[j].id.Game })
	return out
}

// topFinishers returns the top n players of m by descending score, in that
// finishing order. Ties keep the players' original slot order.
func topFinishers(m Match, n int) []int {
	type entry struct {
		seed  int
		score int
		pos   int
	}
	entries := make([]entry, len(m.Players))
	for i, seed := range m.Players {
		entries[i] = entry{seed: seed, score: m.Scores[i], pos: i}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].score > entries[j].score })

	if n > len(entries) {
		n = len(entries)
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = entries[i].seed
	}
	return out
}
