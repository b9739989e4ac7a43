package tourney

import (
	"log"
	"sort"
)

// Tournament is an immutable snapshot of a bracket and every match recorded
// in it so far. Every method that advances a tournament (Score) returns a
// new Tournament; the receiver is never mutated.
type Tournament struct {
	rules   Rules
	size    int
	matches map[MatchId]Match
	keys    []MatchId
	results []Result
	roster  Roster
	metrics *Metrics
	logger  *log.Logger
}

// Rules returns the rules this tournament was built with.
func (t Tournament) Rules() Rules {
	return t.rules
}

// Size returns the number of players the tournament was built for.
func (t Tournament) Size() int {
	return t.size
}

// Match returns the match stored at mid, if any.
func (t Tournament) Match(mid MatchId) (Match, bool) {
	m, ok := t.matches[mid]
	if !ok {
		return Match{}, false
	}
	return m.clone(), true
}

// Keys returns every MatchId in the tournament, sorted in canonical order
// (Bracket, then Round, then Game).
func (t Tournament) Keys() []MatchId {
	out := make([]MatchId, len(t.keys))
	copy(out, t.keys)
	return out
}

// Results returns the tournament's final standings, or (nil, false) if the
// tournament has not yet terminated.
func (t Tournament) Results() ([]Result, bool) {
	if t.results == nil {
		return nil, false
	}
	out := make([]Result, len(t.results))
	copy(out, t.results)
	return out, true
}

func (t Tournament) clone() Tournament {
	matches := make(map[MatchId]Match, len(t.matches))
	for k, v := range t.matches {
		matches[k] = v.clone()
	}
	return Tournament{
		rules:   t.rules,
		size:    t.size,
		matches: matches,
		keys:    t.keys,
		results: t.results,
		roster:  t.roster,
		metrics: t.metrics,
		logger:  t.logger,
	}
}

func sortedKeys(matches map[MatchId]Match) []MatchId {
	keys := make([]MatchId, 0, len(matches))
	for k := range matches {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

func (t Tournament) logf(format string, args ...interface{}) {
	if t.logger == nil {
		return
	}
	t.logger.Printf(format, args...)
}
