// Package metrics records formation runs as Prometheus metrics.
//
// Every Recorder owns a private registry, so several sessions in one process
// never collide on registration. A nil *Recorder is valid and records nothing.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/groupformer/formation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const (
	metricsNamespace = "groupformer"
	formSubsystem    = "formation"
)

// Run outcomes used as the status label.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Group kinds used as the kind label.
const (
	KindGreedy   = "greedy"
	KindResidual = "residual"
)

// Recorder holds the formation metrics.
type Recorder struct {
	reg *prometheus.Registry

	// RunsTotal counts FormGroups calls. Labels: status.
	RunsTotal *prometheus.CounterVec

	// GroupsTotal counts committed groups. Labels: kind.
	GroupsTotal *prometheus.CounterVec

	// ParticipantsPlaced counts participants placed in any group.
	ParticipantsPlaced prometheus.Counter

	// PreferenceUpdates counts accepted preference submissions.
	PreferenceUpdates prometheus.Counter

	// CandidatesEvaluated observes candidate subsets scanned per run.
	CandidatesEvaluated prometheus.Histogram

	// RunDurationSeconds observes wall time per run.
	RunDurationSeconds prometheus.Histogram

	// GroupScore observes the score of every greedy group.
	GroupScore prometheus.Histogram
}

// New creates a Recorder registered on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		RunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: formSubsystem,
			Name:      "runs_total",
			Help:      "Formation runs by outcome",
		}, []string{"status"}),
		GroupsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: formSubsystem,
			Name:      "groups_total",
			Help:      "Groups formed by kind",
		}, []string{"kind"}),
		ParticipantsPlaced: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: formSubsystem,
			Name:      "participants_placed_total",
			Help:      "Participants placed in a group",
		}),
		PreferenceUpdates: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "roster",
			Name:      "preference_updates_total",
			Help:      "Accepted preference submissions",
		}),
		CandidatesEvaluated: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: formSubsystem,
			Name:      "candidates_evaluated",
			Help:      "Candidate subsets evaluated per run",
			Buckets:   prometheus.ExponentialBuckets(10, 4, 8),
		}),
		RunDurationSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: formSubsystem,
			Name:      "run_duration_seconds",
			Help:      "Wall time of a formation run in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		GroupScore: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: formSubsystem,
			Name:      "group_score",
			Help:      "Score of each greedy group",
			Buckets:   []float64{0, 5, 10, 20, 40, 80, 160},
		}),
	}
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}

	return r.reg
}

// ObserveRun records a successful formation run.
func (r *Recorder) ObserveRun(res formation.Result, d time.Duration) {
	if r == nil {
		return
	}
	r.RunsTotal.WithLabelValues(StatusSuccess).Inc()
	r.GroupsTotal.WithLabelValues(KindGreedy).Add(float64(res.Stats.Greedy))
	r.GroupsTotal.WithLabelValues(KindResidual).Add(float64(res.Stats.Residual))
	r.ParticipantsPlaced.Add(float64(res.Stats.Placed))
	r.CandidatesEvaluated.Observe(float64(res.Stats.Candidates))
	r.RunDurationSeconds.Observe(d.Seconds())
	for _, g := range res.Groups {
		if !g.Residual {
			r.GroupScore.Observe(g.Score)
		}
	}
}

// ObserveFailure records a run that returned an error.
func (r *Recorder) ObserveFailure() {
	if r == nil {
		return
	}
	r.RunsTotal.WithLabelValues(StatusError).Inc()
}

// ObservePreferenceUpdate records one accepted preference submission.
func (r *Recorder) ObservePreferenceUpdate() {
	if r == nil {
		return
	}
	r.PreferenceUpdates.Inc()
}

// WriteText writes every metric family in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	if r == nil {
		return nil
	}
	families, err := r.reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
