// SPDX-License-Identifier: MIT

package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/kpaths/ksp"
)

// Outcome labels for kpaths_search_total.
const (
	OutcomeOK            = "ok"
	OutcomeEmpty         = "empty"
	OutcomeInvalid       = "invalid"
	OutcomeCancelled     = "cancelled"
	OutcomeFrontierLimit = "frontier_limit"
	OutcomeError         = "error"
)

// Recorder holds the collectors. Safe for concurrent use.
type Recorder struct {
	searches *prometheus.CounterVec
	duration prometheus.Histogram
	peak     prometheus.Histogram
	accepted prometheus.Counter
	frontier prometheus.Gauge
}

// NewRecorder registers the collectors on reg. Registering twice on the same
// registry panics, as promauto does.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "kpaths_search_total",
			Help: "Finished k-shortest searches by outcome",
		}, []string{"outcome"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "kpaths_search_duration_seconds",
			Help:    "k-shortest search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
		}),
		peak: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "kpaths_frontier_peak",
			Help:    "Largest frontier size per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12), // 1 to ~4M
		}),
		accepted: f.NewCounter(prometheus.CounterOpts{
			Name: "kpaths_paths_accepted_total",
			Help: "Paths accepted across all searches",
		}),
		frontier: f.NewGauge(prometheus.GaugeOpts{
			Name: "kpaths_frontier_size",
			Help: "Frontier size at the most recent pop",
		}),
	}
}

// SearchOptions returns the engine hooks feeding the live collectors.
func (r *Recorder) SearchOptions() []ksp.Option {
	return []ksp.Option{
		ksp.WithOnPop(func(s ksp.Step) { r.frontier.Set(float64(s.Frontier)) }),
		ksp.WithOnAccept(func(ksp.Path) { r.accepted.Inc() }),
	}
}

// Observe records one finished search.
func (r *Recorder) Observe(_ ksp.Query, paths []ksp.Path, err error, d time.Duration, st ksp.Stats) {
	r.searches.WithLabelValues(Outcome(paths, err)).Inc()
	r.duration.Observe(d.Seconds())
	r.peak.Observe(float64(st.PeakFrontier))
}

// Outcome classifies a search result into a kpaths_search_total label.
func Outcome(paths []ksp.Path, err error) string {
	switch {
	case err == nil && len(paths) == 0:
		return OutcomeEmpty
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ksp.ErrInvalidArgument):
		return OutcomeInvalid
	case errors.Is(err, ksp.ErrSearchCancelled):
		return OutcomeCancelled
	case errors.Is(err, ksp.ErrFrontierLimit):
		return OutcomeFrontierLimit
	default:
		return OutcomeError
	}
}

// Handler serves the metrics in g in the Prometheus exposition format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
