// Package roster maps tournament seeds to named participants. It mirrors
// the Participant shape carried by the bracket service's domain layer
// (ID, Name, Seed), but assigns identity locally with a UUID instead of
// referencing an external participant store.
package roster

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrEmptyName is returned by New when a participant name is blank.
var ErrEmptyName = errors.New("roster: participant name must not be empty")

// Participant is a named tournament entrant.
type Participant struct {
	ID   uuid.UUID
	Name string
	Seed int
}

// Roster maps a seed to its participant. A nil Roster is valid and resolves
// nothing; callers fall back to the bare seed number.
type Roster map[int]Participant

// New builds a Roster from names ordered by seed: names[0] is seed 1,
// names[1] is seed 2, and so on. Every name is assigned a fresh UUID.
func New(names []string) (Roster, error) {
	r := make(Roster, len(names))
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("seed %d: %w", i+1, ErrEmptyName)
		}
		seed := i + 1
		r[seed] = Participant{ID: uuid.New(), Name: name, Seed: seed}
	}
	return r, nil
}

// Lookup returns the participant for seed, if present. Walkover markers
// (-1) and unfilled slots (0) never resolve.
func (r Roster) Lookup(seed int) (Participant, bool) {
	if r == nil || seed <= 0 {
		return Participant{}, false
	}
	p, ok := r[seed]
	return p, ok
}
