package tourney

import "github.com/adarqui/tourney/internal/robin"

// Pair is an unordered match-up between two players.
type Pair = robin.Pair

// Robin returns the round-robin schedule for n players.
func Robin(n int) [][]Pair {
	return robin.Robin(n)
}
