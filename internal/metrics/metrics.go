// Package metrics instruments the bracket builder and score engine with
// optional Prometheus counters and a histogram, following the
// client_golang idiom replay-api uses for its own domain services.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics collects counts of matches built and scored. A nil *Metrics is
// valid everywhere: every method is a no-op on a nil receiver, so
// instrumentation is entirely opt-in.
type Metrics struct {
	matchesBuilt  *prometheus.CounterVec
	matchesScored *prometheus.CounterVec
	cascadeDepth  prometheus.Histogram
}

// New registers the engine's collectors against reg and returns a Metrics
// ready to instrument a tournament. Passing a nil Registerer is equivalent
// to calling New(prometheus.NewRegistry()): the collectors exist but are
// not exposed anywhere.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		matchesBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tourney_matches_built_total",
			Help: "Number of match shells materialized by the bracket builder.",
		}, []string{"bracket"}),
		matchesScored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tourney_matches_scored_total",
			Help: "Number of matches decided, by Score call or by walkover.",
		}, []string{"bracket", "outcome"}),
		cascadeDepth: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tourney_walkover_cascade_depth",
			Help:    "Number of hops in one walkover cascade chain.",
			Buckets: prometheus.LinearBuckets(0, 1, 8),
		}),
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	reg.MustRegister(m.matchesBuilt, m.matchesScored, m.cascadeDepth)
	return m
}

// MatchBuilt records one materialized match shell for the given bracket
// label ("WB" or "LB").
func (m *Metrics) MatchBuilt(bracket string) {
	if m == nil {
		return
	}
	m.matchesBuilt.WithLabelValues(bracket).Inc()
}

// MatchScored records one decided match: outcome "scored" for a Score call,
// "walkover" for a match decided automatically during propagation.
func (m *Metrics) MatchScored(bracket, outcome string) {
	if m == nil {
		return
	}
	m.matchesScored.WithLabelValues(bracket, outcome).Inc()
}

// CascadeDepth records how many walkover hops one cascade chain took. A
// Score call observes it once per chain it starts: zero, one or two times.
func (m *Metrics) CascadeDepth(depth int) {
	if m == nil {
		return
	}
	m.cascadeDepth.Observe(float64(depth))
}
