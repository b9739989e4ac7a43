// Package groups partitions the seed space [1..n] into groups of size at
// most s, balancing the sum of seeds across groups using the same
// pair-against-the-mirror-seed technique the seeding package uses for duel
// brackets.
package groups

import "sort"

// Groups partitions [1..n] into ceil(n/s) groups of size <= s, optimizing
// for near-equal sum of seeds across groups.
func Groups(s, n int) [][]int {
	if n <= 0 || s <= 0 {
		return nil
	}

	ngrps := ceilDiv(n, s)

	gs := s
	for gs > 1 && gs*ngrps-n >= ngrps {
		gs--
	}

	modl := ngrps * gs
	npairs := ngrps * (gs / 2)

	result := make([][]int, ngrps)
	for i := 1; i <= ngrps; i++ {
		var members []int

		if gs%2 == 1 {
			members = append(members, npairs+i)
		}
		for k := 0; i+k*ngrps <= npairs; k++ {
			j := i + k*ngrps
			members = append(members, j, modl-j+1)
		}

		filtered := members[:0]
		for _, m := range members {
			if m <= n {
				filtered = append(filtered, m)
			}
		}
		sort.Ints(filtered)
		result[i-1] = filtered
	}
	return result
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
