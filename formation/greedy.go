package formation

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/groupformer/combin"
	"github.com/katalvlaran/groupformer/roster"
	"github.com/katalvlaran/groupformer/scoring"
)

// candidate is the best subset found so far in one round.
type candidate struct {
	members []int // roster positions, ascending
	topic   string
	score   float64
	found   bool
}

// selector carries the state of one Form call.
type selector struct {
	opts       Options
	ps         []roster.Participant
	sm         *scoring.ScoreMatrix
	topics     []string
	configured map[string]struct{}
	claimed    map[string]struct{}
	pool       []int // unassigned roster positions, ascending
	groups     []Group
	candidates int
}

// Form partitions participants into groups using the score matrix sm.
//
// Contract:
//   - sm must have been built from participants: same size, and row i must
//     belong to participants[i].
//   - topics is the configured topic list; topic choices outside it are
//     ignored.
//
// Form never mutates its inputs. See the package documentation for the
// algorithm and its guarantees.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(R · Σ_{k=2..K} C(m,k) · K²) for R rounds, pool size m and
// K = MaxGroupSize.
func Form(participants []roster.Participant, topics []string, sm *scoring.ScoreMatrix, opts ...Option) (Result, error) {
	if sm == nil {
		return Result{}, ErrNilMatrix
	}
	if err := checkMatrix(participants, sm); err != nil {
		return Result{}, err
	}

	s := &selector{
		opts:       NewOptions(opts...),
		ps:         participants,
		sm:         sm,
		topics:     slices.Clone(topics),
		configured: make(map[string]struct{}, len(topics)),
		claimed:    make(map[string]struct{}, len(topics)),
		pool:       make([]int, len(participants)),
	}
	for _, t := range topics {
		s.configured[t] = struct{}{}
	}
	for i := range s.pool {
		s.pool[i] = i
	}

	if err := s.runGreedy(); err != nil {
		return Result{}, err
	}
	greedy := len(s.groups)
	s.assignLeftovers()

	return Result{Groups: s.groups, Stats: s.stats(greedy)}, nil
}

// checkMatrix verifies that sm rows line up with participants.
func checkMatrix(ps []roster.Participant, sm *scoring.ScoreMatrix) error {
	ids := sm.IDs()
	if len(ids) != len(ps) {
		return fmt.Errorf("matrix %d, participants %d: %w", len(ids), len(ps), ErrDimensionMismatch)
	}
	for i := range ps {
		if ids[i] != ps[i].ID {
			return fmt.Errorf("row %d: matrix id %d, participant id %d: %w", i, ids[i], ps[i].ID, ErrDimensionMismatch)
		}
	}

	return nil
}

// runGreedy commits the best candidate per round until no candidate is
// left, the pool is empty, or (Exclusive) every topic is claimed.
func (s *selector) runGreedy() error {
	for len(s.pool) > 0 && s.topicsRemain() {
		best, err := s.bestCandidate()
		if err != nil {
			return err
		}
		if !best.found {
			break
		}
		s.commit(best)
	}

	return nil
}

func (s *selector) topicsRemain() bool {
	if s.opts.topicPolicy == Reuse {
		return true
	}

	return len(s.claimed) < len(s.topics)
}

// bestCandidate scans every subset of size 2..min(K, |pool|) of the pool.
func (s *selector) bestCandidate() (candidate, error) {
	var (
		best    candidate
		scanErr error
		maxK    = min(s.opts.maxGroupSize, len(s.pool))
	)
	for k := MinGroupSize; k <= maxK; k++ {
		combin.Each(s.pool, k, func(sub []int) bool {
			s.candidates++
			topic, ok := majorityTopic(s.ps, sub, s.topicAllowed)
			if !ok {
				return true
			}
			score, err := s.sm.GroupScore(sub)
			if err != nil {
				scanErr = err
				return false
			}
			if s.better(score, len(sub), best) {
				best = candidate{members: slices.Clone(sub), topic: topic, score: score, found: true}
			}

			return true
		})
		if scanErr != nil {
			return candidate{}, scanErr
		}
	}

	return best, nil
}

// topicAllowed admits configured topics that are not claimed (Exclusive) or
// all configured topics (Reuse).
func (s *selector) topicAllowed(t string) bool {
	if _, ok := s.configured[t]; !ok {
		return false
	}
	if s.opts.topicPolicy == Exclusive {
		_, taken := s.claimed[t]
		return !taken
	}

	return true
}

// better reports whether (score, size) beats the current best.
func (s *selector) better(score float64, size int, best candidate) bool {
	if !best.found || score > best.score {
		return true
	}

	return score == best.score && s.opts.tieBreak == PreferLarger && size > len(best.members)
}

func (s *selector) commit(c candidate) {
	s.groups = append(s.groups, Group{
		Members: s.members(c.members),
		Topic:   c.topic,
		Score:   c.score,
	})
	if s.opts.topicPolicy == Exclusive {
		s.claimed[c.topic] = struct{}{}
	}
	// Both slices are ascending; drop c.members from the pool in one pass.
	kept := s.pool[:0]
	j := 0
	for _, p := range s.pool {
		if j < len(c.members) && c.members[j] == p {
			j++
			continue
		}
		kept = append(kept, p)
	}
	s.pool = kept
}

// members resolves positions to participant copies.
func (s *selector) members(pos []int) []roster.Participant {
	out := make([]roster.Participant, len(pos))
	for i, p := range pos {
		out[i] = s.ps[p]
		out[i].Partners = slices.Clone(s.ps[p].Partners)
	}

	return out
}

func (s *selector) stats(greedy int) Stats {
	st := Stats{
		Groups:     len(s.groups),
		Greedy:     greedy,
		Residual:   len(s.groups) - greedy,
		Total:      len(s.ps),
		Candidates: s.candidates,
	}
	var sum float64
	for _, g := range s.groups {
		st.Placed += g.Size()
		sum += g.Score
	}
	st.Unplaced = st.Total - st.Placed
	if st.Groups > 0 {
		st.MeanScore = sum / float64(st.Groups)
	}

	return st
}
