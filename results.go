package tourney

import "sort"

// Result is one player's final standing: their seed, placement (1 = first
// place; tied players share a placement), total wins, and total score.
// When a non-nil Roster was supplied to NewTournament, Participant also
// resolves the seed to its registered entrant.
type Result struct {
	Seed        int
	Participant *Participant
	Placement   int
	Wins        int
	ScoreSum    int
}

func computeResults(t Tournament) []Result {
	var results []Result
	switch t.rules.(type) {
	case DuelRules:
		results = computeDuelResults(t)
	case FFARules:
		results = computeFFAResults(t)
	}
	if results == nil {
		return nil
	}
	if !t.roster.empty() {
		for i := range results {
			if p, ok := t.roster.Participant(results[i].Seed); ok {
				results[i].Participant = &p
			}
		}
	}
	return results
}

type playerStat struct {
	wins     int
	scoreSum int
	maxR     int
}

func computeDuelResults(t Tournament) []Result {
	r := t.rules.(DuelRules)
	p := ceilLog2(t.size)

	var decisive Match
	switch r.Elimination {
	case Single:
		final, ok := t.matches[MatchId{WB, p, 1}]
		if !ok || !final.Played() {
			return nil
		}
		decisive = final
	default:
		gf1, ok := t.matches[MatchId{LB, 2*p - 1, 1}]
		if !ok || !gf1.Played() {
			return nil
		}
		if maxScore(gf1.Scores) == gf1.Scores[0] {
			decisive = gf1
		} else {
			gf2, ok := t.matches[MatchId{LB, 2 * p, 1}]
			if !ok || !gf2.Played() {
				return nil
			}
			decisive = gf2
		}
	}

	terminalBracket := WB
	if r.Elimination == Double {
		terminalBracket = LB
	}

	stats := map[int]*playerStat{}
	stat := func(seed int) *playerStat {
		s, ok := stats[seed]
		if !ok {
			s = &playerStat{}
			stats[seed] = s
		}
		return s
	}

	for id, m := range t.matches {
		if id.Bracket == terminalBracket {
			for _, seed := range m.Players {
				if seed > 0 && id.Round > stat(seed).maxR {
					stat(seed).maxR = id.Round
				}
			}
		}
		if !m.Scorable() || !m.Played() {
			continue
		}
		for i, seed := range m.Players {
			stat(seed).scoreSum += m.Scores[i]
		}
		if w, ok := m.Winner(); ok {
			stat(w).wins++
		}
	}

	results := make([]Result, 0, len(stats))
	for seed, st := range stats {
		results = append(results, Result{
			Seed:      seed,
			Placement: duelPlacement(r.Elimination, p, st.maxR),
			Wins:      st.wins,
			ScoreSum:  st.scoreSum,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Placement != results[j].Placement {
			return results[i].Placement < results[j].Placement
		}
		return results[i].Seed < results[j].Seed
	})

	champion, _ := decisive.Winner()
	otherFinalist, _ := decisive.Loser()
	swapToFront(results, champion, 0)
	swapToFront(results, otherFinalist, 1)
	results[0].Placement = 1
	results[1].Placement = 2

	return results
}

func swapToFront(results []Result, seed int, idx int) {
	for i := idx; i < len(results); i++ {
		if results[i].Seed == seed {
			results[idx], results[i] = results[i], results[idx]
			return
		}
	}
}

func duelPlacement(e EliminationKind, p, maxR int) int {
	if e == Single {
		metric := p + 1 - maxR
		if metric <= 1 {
			return metric
		}
		return pow2(metric-1) + 1
	}

	metric := 2*p + 1 - maxR
	if metric <= 4 {
		return metric
	}
	rPrime := metric - 4
	k := (rPrime + 1 + 1) / 2 // ceil((r'+1)/2)
	oddExtra := 0
	if rPrime%2 == 0 {
		oddExtra = pow2(k)
	}
	return pow2(k+1) + 1 + oddExtra
}

func pow2(n int) int {
	if n <= 0 {
		return 1
	}
	return 1 << uint(n)
}

func computeFFAResults(t Tournament) []Result {
	maxRound := 0
	for id := range t.matches {
		if id.Bracket == WB && id.Round > maxRound {
			maxRound = id.Round
		}
	}
	final := matchesInRound(t.matches, maxRound)
	if len(final) != 1 || !final[0].m.Played() {
		return nil
	}

	type entry struct {
		seed  int
		score int
	}
	wins := map[int]int{}
	scoreSum := map[int]int{}
	lastRound := map[int]int{}

	for id, m := range t.matches {
		if id.Bracket != WB || !m.Played() {
			continue
		}
		maxS := m.Scores[0]
		for _, s := range m.Scores {
			if s > maxS {
				maxS = s
			}
		}
		for i, seed := range m.Players {
			scoreSum[seed] += m.Scores[i]
			if m.Scores[i] == maxS {
				wins[seed]++
			}
			if id.Round > lastRound[seed] {
				lastRound[seed] = id.Round
			}
		}
	}

	finalMatch := final[0].m
	finalists := make([]entry, len(finalMatch.Players))
	for i, seed := range finalMatch.Players {
		finalists[i] = entry{seed: seed, score: finalMatch.Scores[i]}
	}
	sort.SliceStable(finalists, func(i, j int) bool { return finalists[i].score > finalists[j].score })

	results := make([]Result, 0, len(lastRound))
	finalSeeds := map[int]bool{}
	for i, f := range finalists {
		finalSeeds[f.seed] = true
		results = append(results, Result{
			Seed:      f.seed,
			Placement: i + 1,
			Wins:      wins[f.seed],
			ScoreSum:  scoreSum[f.seed],
		})
	}

	type elim struct {
		seed, round, score int
	}
	var eliminated []elim
	for seed, lr := range lastRound {
		if !finalSeeds[seed] {
			eliminated = append(eliminated, elim{seed: seed, round: lr, score: scoreSum[seed]})
		}
	}
	sort.Slice(eliminated, func(i, j int) bool {
		if eliminated[i].round != eliminated[j].round {
			return eliminated[i].round > eliminated[j].round
		}
		if eliminated[i].score != eliminated[j].score {
			return eliminated[i].score > eliminated[j].score
		}
		return eliminated[i].seed < eliminated[j].seed
	})

	i := 0
	for i < len(eliminated) {
		j := i
		for j < len(eliminated) && eliminated[j].round == eliminated[i].round {
			j++
		}
		placement := len(finalists) + i + 1
		for k := i; k < j; k++ {
			results = append(results, Result{
				Seed:      eliminated[k].seed,
				Placement: placement,
				Wins:      wins[eliminated[k].seed],
				ScoreSum:  scoreSum[eliminated[k].seed],
			})
		}
		i = j
	}

	return results
}
