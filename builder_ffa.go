package tourney

import "github.com/adarqui/tourney/internal/groups"

// buildFFA materializes a free-for-all elimination bracket by repeatedly
// partitioning the surviving player count into balanced groups until only
// one group remains; that last group is the final.
func buildFFA(r FFARules, np int, m *Metrics) (map[MatchId]Match, error) {
	gs, adv := r.GroupSize, r.Advance

	switch {
	case np <= 2:
		return nil, newError(TooFewPlayers, nil, "ffa requires more than 2 players")
	case gs <= 2:
		return nil, newError(GroupTooSmall, nil, "ffa group size must be greater than 2")
	case np <= gs:
		return nil, newError(TooFewGroups, nil, "not enough players to form more than one group")
	case adv >= gs:
		return nil, newError(AdvanceTooLarge, nil, "advance count must be less than the group size")
	case adv <= 0:
		return nil, newError(AdvanceTooSmall, nil, "advance count must be positive")
	}

	matches := make(map[MatchId]Match)
	round := 1
	grps := groups.Groups(gs, np)

	for {
		for i, grp := range grps {
			matches[MatchId{WB, round, i + 1}] = Match{Players: append([]int(nil), grp...)}
			m.MatchBuilt(bracketLabel(WB))
		}
		if len(grps) == 1 {
			return matches, nil
		}

		minSize := len(grps[0])
		for _, g := range grps {
			if len(g) < minSize {
				minSize = len(g)
			}
		}
		advp := adv - (gs - minSize)
		if advp < 1 {
			advp = 1
		}

		grps = groups.Groups(gs, len(grps)*advp)
		round++
	}
}
