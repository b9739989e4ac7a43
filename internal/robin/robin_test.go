package robin

import "testing"

// TestRobinS4 pins the spec's worked example.
func TestRobinS4(t *testing.T) {
	rounds := Robin(4)
	if len(rounds) != 3 {
		t.Fatalf("got %d rounds, want 3", len(rounds))
	}
	seen := make(map[Pair]bool)
	for _, round := range rounds {
		if len(round) != 2 {
			t.Errorf("round %v has %d pairs, want 2", round, len(round))
		}
		for _, p := range round {
			if p.A > p.B {
				p.A, p.B = p.B, p.A
			}
			seen[p] = true
		}
	}
	want := []Pair{{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}}
	if len(seen) != len(want) {
		t.Fatalf("got %d distinct pairs, want %d", len(seen), len(want))
	}
	for _, p := range want {
		if !seen[p] {
			t.Errorf("missing pair %v", p)
		}
	}
}

// TestRobinCount is testable property #4.
func TestRobinCount(t *testing.T) {
	for n := 2; n <= 40; n++ {
		rounds := Robin(n)
		want := n - 1
		if n%2 != 0 {
			want = n
		}
		if len(rounds) != want {
			t.Errorf("Robin(%d): got %d rounds, want %d", n, len(rounds), want)
		}
	}
}

// TestRobinPerRound is testable property #5.
func TestRobinPerRound(t *testing.T) {
	for n := 2; n <= 40; n++ {
		for _, round := range Robin(n) {
			if len(round) != n/2 {
				t.Errorf("Robin(%d): round has %d pairs, want %d", n, len(round), n/2)
			}
		}
	}
}

// TestRobinUniqueness is testable property #6.
func TestRobinUniqueness(t *testing.T) {
	for n := 2; n <= 40; n++ {
		rounds := Robin(n)
		allPairs := make(map[Pair]int)
		for _, round := range rounds {
			appeared := make(map[int]bool)
			for _, p := range round {
				if appeared[p.A] || appeared[p.B] {
					t.Fatalf("Robin(%d): player appears twice in round %v", n, round)
				}
				appeared[p.A] = true
				appeared[p.B] = true

				key := p
				if key.A > key.B {
					key.A, key.B = key.B, key.A
				}
				allPairs[key]++
			}
		}
		for pair, count := range allPairs {
			if count != 1 {
				t.Errorf("Robin(%d): pair %v met %d times, want 1", n, pair, count)
			}
		}
		wantPairs := n * (n - 1) / 2
		if len(allPairs) != wantPairs {
			t.Errorf("Robin(%d): %d distinct pairs, want %d", n, len(allPairs), wantPairs)
		}
	}
}
