package tourney

import (
	"log"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/adarqui/tourney/internal/metrics"
	"github.com/adarqui/tourney/internal/roster"
)

// Participant is a named tournament entrant, resolved from a Roster.
type Participant struct {
	ID   uuid.UUID
	Name string
	Seed int
}

// Roster maps a seed to its participant. It is built once via NewRoster and
// never required: omitting it changes nothing about the materialized
// bracket or score propagation, it only enriches Results entries with a
// resolved Participant when present.
type Roster struct {
	inner roster.Roster
}

// NewRoster builds a Roster from names ordered by seed: names[0] is seed 1,
// and so on. Each participant is assigned a fresh UUID.
func NewRoster(names []string) (Roster, error) {
	r, err := roster.New(names)
	if err != nil {
		return Roster{}, err
	}
	return Roster{inner: r}, nil
}

// Participant returns the participant registered for seed, if any.
func (r Roster) Participant(seed int) (Participant, bool) {
	p, ok := r.inner.Lookup(seed)
	if !ok {
		return Participant{}, false
	}
	return Participant{ID: p.ID, Name: p.Name, Seed: p.Seed}, true
}

func (r Roster) empty() bool {
	return r.inner == nil
}

// Metrics is an optional Prometheus collector tracking build/score call
// volume. It never affects scoring semantics; every Options field below
// that accepts a nil value disables the corresponding instrumentation.
type Metrics = metrics.Metrics

// NewMetrics registers the engine's collectors against reg and returns a
// Metrics ready to be passed in Options. A nil reg registers against a
// fresh, unexposed registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return metrics.New(reg)
}

// Options configures optional, non-semantic collaborators for
// NewTournament and Score. The zero Options behaves exactly like calling
// the bare tournament(rules, size)/score(mid, scores, t) described in the
// spec's external interface.
type Options struct {
	Roster  Roster
	Metrics *Metrics
	Logger  *log.Logger
}
