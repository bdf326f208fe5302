package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/groupformer/roster"
)

// Default weights. The tier orderings below are required by Validate.
const (
	DefaultMutualFirst    = 10.0
	DefaultMutual         = 5.0
	DefaultOneSided       = 2.0
	DefaultReciprocity    = 4.0
	DefaultPrimaryMatch   = 5.0
	DefaultSecondaryMatch = 2.0
)

// DefaultRankWeights returns the rank-decay table used by DefaultRanked:
// 1st choice 5, 2nd 3, 3rd 1, later ranks 0.
func DefaultRankWeights() []float64 { return []float64{5, 3, 1} }

// PairScorer computes a symmetric, non-negative compatibility score.
type PairScorer interface {
	Score(a, b roster.Participant) float64
}

// Scheme names a pair-scoring scheme.
type Scheme string

const (
	// SchemeRanked selects Ranked (the default).
	SchemeRanked Scheme = "ranked"
	// SchemeTiered selects Tiered.
	SchemeTiered Scheme = "tiered"
)

// ParseScheme maps a case-insensitive name to a Scheme.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(strings.ToLower(strings.TrimSpace(s))) {
	case SchemeRanked:
		return SchemeRanked, nil
	case SchemeTiered:
		return SchemeTiered, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownScheme)
	}
}

// NewScorer returns the default-weighted scorer for scheme.
func NewScorer(scheme Scheme) (PairScorer, error) {
	switch scheme {
	case SchemeRanked:
		return DefaultRanked(), nil
	case SchemeTiered:
		return DefaultTiered(), nil
	default:
		return nil, fmt.Errorf("%q: %w", scheme, ErrUnknownScheme)
	}
}

// TopicWeights scores topic overlap. PrimaryMatch must exceed SecondaryMatch.
type TopicWeights struct {
	PrimaryMatch   float64
	SecondaryMatch float64
}

// DefaultTopicWeights returns the default topic bonuses.
func DefaultTopicWeights() TopicWeights {
	return TopicWeights{PrimaryMatch: DefaultPrimaryMatch, SecondaryMatch: DefaultSecondaryMatch}
}

// Validate checks 0 ≤ SecondaryMatch < PrimaryMatch.
func (w TopicWeights) Validate() error {
	if !finiteNonNeg(w.PrimaryMatch, w.SecondaryMatch) || w.PrimaryMatch <= w.SecondaryMatch {
		return fmt.Errorf("topic weights %+v: %w", w, ErrInvalidWeights)
	}

	return nil
}

// score returns the topic component for a and b.
func (w TopicWeights) score(a, b roster.Participant) float64 {
	if a.PrimaryTopic != "" && a.PrimaryTopic == b.PrimaryTopic {
		return w.PrimaryMatch
	}
	if a.PrimaryTopic != "" && a.PrimaryTopic == b.SecondaryTopic {
		return w.SecondaryMatch
	}
	if a.SecondaryTopic != "" && a.SecondaryTopic == b.PrimaryTopic {
		return w.SecondaryMatch
	}

	return 0
}

// Tiered awards flat partner bonuses.
//
//	both list each other first  → MutualFirst
//	both list each other        → Mutual
//	only one lists the other    → OneSided
//	neither                     → 0
type Tiered struct {
	MutualFirst float64
	Mutual      float64
	OneSided    float64
	Topic       TopicWeights
}

var _ PairScorer = Tiered{}

// DefaultTiered returns Tiered with the default weights (10/5/2, topics 5/2).
func DefaultTiered() Tiered {
	return Tiered{
		MutualFirst: DefaultMutualFirst,
		Mutual:      DefaultMutual,
		OneSided:    DefaultOneSided,
		Topic:       DefaultTopicWeights(),
	}
}

// Validate checks MutualFirst > Mutual > OneSided ≥ 0 and the topic weights.
func (t Tiered) Validate() error {
	if !finiteNonNeg(t.MutualFirst, t.Mutual, t.OneSided) ||
		t.MutualFirst <= t.Mutual || t.Mutual <= t.OneSided {
		return fmt.Errorf("tiered weights %v/%v/%v: %w", t.MutualFirst, t.Mutual, t.OneSided, ErrInvalidWeights)
	}

	return t.Topic.Validate()
}

// Score implements PairScorer.
func (t Tiered) Score(a, b roster.Participant) float64 {
	ra, rb := a.Rank(b.ID), b.Rank(a.ID)

	var partner float64
	switch {
	case ra == 0 && rb == 0:
		partner = t.MutualFirst
	case ra >= 0 && rb >= 0:
		partner = t.Mutual
	case ra >= 0 || rb >= 0:
		partner = t.OneSided
	}

	return partner + t.Topic.score(a, b)
}

// Ranked awards rank-decayed partner weights plus a reciprocity bonus.
//
//	partner = RankWeights[rankA] + RankWeights[rankB]
//	        + Reciprocity / (1 + |rankA − rankB|)   (only when both list each other)
//
// A rank past the end of RankWeights contributes 0.
type Ranked struct {
	RankWeights []float64
	Reciprocity float64
	Topic       TopicWeights
}

var _ PairScorer = Ranked{}

// DefaultRanked returns Ranked with weights [5 3 1], reciprocity 4, topics 5/2.
func DefaultRanked() Ranked {
	return Ranked{
		RankWeights: DefaultRankWeights(),
		Reciprocity: DefaultReciprocity,
		Topic:       DefaultTopicWeights(),
	}
}

// Validate checks finite non-negative weights with a non-increasing rank table.
func (r Ranked) Validate() error {
	if !finiteNonNeg(r.RankWeights...) || !finiteNonNeg(r.Reciprocity) {
		return fmt.Errorf("ranked weights: %w", ErrInvalidWeights)
	}
	for i := 1; i < len(r.RankWeights); i++ {
		if r.RankWeights[i] > r.RankWeights[i-1] {
			return fmt.Errorf("rank weight %d increases: %w", i, ErrInvalidWeights)
		}
	}

	return r.Topic.Validate()
}

// Score implements PairScorer.
func (r Ranked) Score(a, b roster.Participant) float64 {
	ra, rb := a.Rank(b.ID), b.Rank(a.ID)

	partner := r.rankWeight(ra) + r.rankWeight(rb)
	if ra >= 0 && rb >= 0 {
		diff := ra - rb
		if diff < 0 {
			diff = -diff
		}
		partner += r.Reciprocity / float64(1+diff)
	}

	return partner + r.Topic.score(a, b)
}

func (r Ranked) rankWeight(rank int) float64 {
	if rank < 0 || rank >= len(r.RankWeights) {
		return 0
	}

	return r.RankWeights[rank]
}

func finiteNonNeg(vs ...float64) bool {
	for _, v := range vs {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
