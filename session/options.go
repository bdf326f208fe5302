package session

import (
	"github.com/katalvlaran/groupformer/formation"
	"github.com/katalvlaran/groupformer/internal/logging"
	"github.com/katalvlaran/groupformer/internal/metrics"
	"github.com/katalvlaran/groupformer/scoring"
)

const (
	panicNilLogger = "session: WithLogger: nil logger"
	panicNilScorer = "session: WithScorer: nil scorer"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *logging.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(s *Session) { s.log = l }
}

// WithMetrics attaches a metrics recorder. A nil recorder disables metrics.
func WithMetrics(r *metrics.Recorder) Option {
	return func(s *Session) { s.metrics = r }
}

// WithScorer replaces the default scoring.DefaultRanked scorer.
func WithScorer(p scoring.PairScorer) Option {
	if p == nil {
		panic(panicNilScorer)
	}

	return func(s *Session) { s.scorer = p }
}

// WithFormationOptions sets the options passed to formation.Form.
// Repeated use appends.
func WithFormationOptions(opts ...formation.Option) Option {
	return func(s *Session) { s.formOpts = append(s.formOpts, opts...) }
}
