package session

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/groupformer/formation"
	"github.com/katalvlaran/groupformer/internal/logging"
	"github.com/katalvlaran/groupformer/internal/metrics"
	"github.com/katalvlaran/groupformer/roster"
	"github.com/katalvlaran/groupformer/scoring"
)

// Session is one formation exercise over a fixed roster.
type Session struct {
	id       string
	roster   *roster.Roster
	scorer   scoring.PairScorer
	formOpts []formation.Option
	log      *logging.Logger
	metrics  *metrics.Recorder

	formMu sync.Mutex // serializes FormGroups

	subMu     sync.Mutex
	submitted map[int]struct{}
}

// New creates a session with a fresh roster built from names and topics.
//
// Errors: anything roster.New reports.
func New(names, topics []string, opts ...Option) (*Session, error) {
	r, err := roster.New(names, topics)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s := &Session{
		id:        uuid.NewString(),
		roster:    r,
		scorer:    scoring.DefaultRanked(),
		log:       logging.NopLogger(),
		submitted: make(map[int]struct{}, len(names)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithSession(s.id)
	s.log.Debug("session created", "participants", r.Len(), "topics", len(r.Topics()))

	return s, nil
}

// ID returns the session's UUID.
func (s *Session) ID() string { return s.id }

// Roster returns the underlying roster for read access.
func (s *Session) Roster() *roster.Roster { return s.roster }

// Scorer returns the configured pair scorer.
func (s *Session) Scorer() scoring.PairScorer { return s.scorer }

// SetPreferences records participant id's choices and marks id as submitted.
// On error nothing changes.
func (s *Session) SetPreferences(id int, partners []int, primary, secondary string) error {
	if err := s.roster.SetPreferences(id, partners, primary, secondary); err != nil {
		s.log.Warn("preferences rejected", "participant", id, "error", err)
		return err
	}

	s.subMu.Lock()
	s.submitted[id] = struct{}{}
	s.subMu.Unlock()

	s.metrics.ObservePreferenceUpdate()
	s.log.Debug("preferences set", "participant", id, "partners", partners,
		"primary", primary, "secondary", secondary)

	return nil
}

// ResetPreferences clears every participant's choices and the submitted set.
func (s *Session) ResetPreferences() {
	s.roster.ResetPreferences()

	s.subMu.Lock()
	clear(s.submitted)
	s.subMu.Unlock()

	s.log.Info("preferences reset")
}

// Submitted returns the ids that have submitted preferences, ascending.
func (s *Session) Submitted() []int {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	out := make([]int, 0, len(s.submitted))
	for id := range s.submitted {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// Progress reports how many participants have submitted out of the roster size.
func (s *Session) Progress() (done, total int) {
	s.subMu.Lock()
	done = len(s.submitted)
	s.subMu.Unlock()

	return done, s.roster.Len()
}

// BuildScoreMatrix scores every pair of the current roster snapshot.
func (s *Session) BuildScoreMatrix() (*scoring.ScoreMatrix, error) {
	m, err := scoring.Build(s.roster.Participants(), s.scorer)
	if err != nil {
		return nil, fmt.Errorf("session: build score matrix: %w", err)
	}

	return m, nil
}

// FormGroups partitions the current roster snapshot using m.
//
// Errors: formation.ErrNilMatrix, formation.ErrDimensionMismatch when m
// was not built from this roster.
func (s *Session) FormGroups(m *scoring.ScoreMatrix) (formation.Result, error) {
	s.formMu.Lock()
	defer s.formMu.Unlock()

	start := time.Now()
	res, err := formation.Form(s.roster.Participants(), s.roster.Topics(), m, s.formOpts...)
	if err != nil {
		s.metrics.ObserveFailure()
		s.log.Error("formation failed", "error", err)
		return formation.Result{}, fmt.Errorf("session: form groups: %w", err)
	}
	elapsed := time.Since(start)
	s.metrics.ObserveRun(res, elapsed)

	s.log.Info("groups formed",
		"groups", res.Stats.Groups,
		"greedy", res.Stats.Greedy,
		"residual", res.Stats.Residual,
		"placed", res.Stats.Placed,
		"candidates", res.Stats.Candidates,
		"duration", elapsed)
	if res.Stats.Unplaced > 0 {
		s.log.Warn("participants could not be placed", "count", res.Stats.Unplaced)
	}

	return res, nil
}

// Run builds a fresh score matrix and forms groups from it.
func (s *Session) Run() (formation.Result, *scoring.ScoreMatrix, error) {
	m, err := s.BuildScoreMatrix()
	if err != nil {
		return formation.Result{}, nil, err
	}
	res, err := s.FormGroups(m)
	if err != nil {
		return formation.Result{}, nil, err
	}

	return res, m, nil
}
