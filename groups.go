package tourney

import "github.com/adarqui/tourney/internal/groups"

// Groups partitions [1..n] into ceil(n/s) groups of size at most s,
// balancing the sum of seeds across groups.
func Groups(s, n int) [][]int {
	return groups.Groups(s, n)
}
