// Package metrics collects run counters for the lesson programs in a
// private Prometheus registry. The registry is local to one application
// run, so concurrent runs and tests never share state.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics aggregates the counters the lessons feed during a run: recursion
// call volumes, memo cache effectiveness and sequence reallocations.
type Metrics struct {
	registry *prometheus.Registry

	lessonRuns     *prometheus.CounterVec
	recursionCalls *prometheus.CounterVec
	memoHits       prometheus.Counter
	memoMisses     prometheus.Counter
	seqGrowths     prometheus.Counter
}

// New creates a Metrics instance backed by a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		lessonRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "funclab_lesson_runs_total",
			Help: "Number of lesson executions by outcome.",
		}, []string{"lesson", "outcome"}),
		recursionCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "funclab_recursion_calls_total",
			Help: "Recursive function invocations by algorithm.",
		}, []string{"algorithm"}),
		memoHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "funclab_memo_cache_hits_total",
			Help: "Memoized Fibonacci lookups answered from the cache.",
		}),
		memoMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "funclab_memo_cache_misses_total",
			Help: "Memoized Fibonacci lookups that had to compute.",
		}),
		seqGrowths: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "funclab_seq_reallocations_total",
			Help: "Capacity growths performed by sequence containers.",
		}),
	}

	m.registry.MustRegister(
		m.lessonRuns,
		m.recursionCalls,
		m.memoHits,
		m.memoMisses,
		m.seqGrowths,
	)
	return m
}

// ObserveLessonRun records one lesson execution and its outcome.
func (m *Metrics) ObserveLessonRun(lesson string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.lessonRuns.WithLabelValues(lesson, outcome).Inc()
}

// AddRecursionCalls accumulates call counts for the given algorithm label
// ("naive" or "memoized").
func (m *Metrics) AddRecursionCalls(algorithm string, calls uint64) {
	m.recursionCalls.WithLabelValues(algorithm).Add(float64(calls))
}

// AddMemoStats accumulates memo cache hit and miss counts.
func (m *Metrics) AddMemoStats(hits, misses uint64) {
	m.memoHits.Add(float64(hits))
	m.memoMisses.Add(float64(misses))
}

// SeqGrowthHook returns a callback suitable for seq.OnGrow that counts
// every capacity growth.
func (m *Metrics) SeqGrowthHook() func(oldCap, newCap int) {
	return func(oldCap, newCap int) {
		m.seqGrowths.Inc()
	}
}

// WriteSummary gathers all registered metrics and writes them to w in the
// Prometheus text exposition format. Used by the -details flag.
func (m *Metrics) WriteSummary(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("encoding metric family %s: %w", family.GetName(), err)
		}
	}
	return nil
}
