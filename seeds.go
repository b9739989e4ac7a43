package tourney

import "github.com/adarqui/tourney/internal/seeding"

// Seeds returns the ordered pair (lo, hi) of seeds meeting in match i of WB
// round 1 of a bracket sized 2^p, where p > 0 and 0 < i <= 2^(p-1). lo is
// always odd and hi always even; lo is not always the better seed.
func Seeds(p, i int) (int, int) {
	return seeding.Seeds(p, i)
}

// DuelExpected reports whether (a, b) is a valid perfect-seeding pair for a
// bracket of size 2^p.
func DuelExpected(p, a, b int) bool {
	return seeding.DuelExpected(p, a, b)
}
