package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/utakatalp/fixture-generator/internal/league"
)

const namespace = "league"

// Outcome labels for recorded results.
const (
	OutcomeHomeWin = "home_win"
	OutcomeAwayWin = "away_win"
	OutcomeDraw    = "draw"
)

// Recorder counts tournament activity on its own Prometheus registry.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry
	seasons  prometheus.Counter
	results  *prometheus.CounterVec
	rejected *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		seasons: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seasons_generated_total",
			Help:      "Double round-robin schedules generated.",
		}),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_recorded_total",
			Help:      "Match results applied to the table, by outcome.",
		}, []string{"outcome"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_inputs_total",
			Help:      "Rosters and results rejected, by reason.",
		}, []string{"reason"}),
	}
	r.registry.MustRegister(r.seasons, r.results, r.rejected)
	return r
}

// RecordSeason counts one generated schedule.
func (r *Recorder) RecordSeason() {
	if r == nil {
		return
	}
	r.seasons.Inc()
}

// RecordResult counts one applied result under its outcome.
func (r *Recorder) RecordResult(res league.MatchResult) {
	if r == nil {
		return
	}
	r.results.WithLabelValues(Outcome(res)).Inc()
}

// RecordRejected counts one rejected input.
func (r *Recorder) RecordRejected(reason string) {
	if r == nil {
		return
	}
	r.rejected.WithLabelValues(reason).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Outcome classifies a result from the home side's point of view.
func Outcome(res league.MatchResult) string {
	switch {
	case res.HomeGoals > res.AwayGoals:
		return OutcomeHomeWin
	case res.HomeGoals < res.AwayGoals:
		return OutcomeAwayWin
	default:
		return OutcomeDraw
	}
}
