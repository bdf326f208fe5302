package scoring

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/groupformer/matrix"
	"github.com/katalvlaran/groupformer/roster"
)

// ScoreMatrix is the dense symmetric matrix of pairwise scores over one
// roster snapshot. Row i belongs to the participant at roster position i.
//
// A ScoreMatrix is immutable once built.
type ScoreMatrix struct {
	m   *matrix.Dense
	ids []int
}

// validator is implemented by scorers with configurable weights.
type validator interface{ Validate() error }

// Build scores every unordered pair of participants exactly once and mirrors
// the value, producing an n×n symmetric matrix with a zero diagonal.
//
// Errors: ErrNoParticipants, ErrNilScorer, ErrInvalidWeights, ErrNegativeScore.
//
// Complexity: O(n²) scorer calls, O(n²) memory.
func Build(participants []roster.Participant, scorer PairScorer) (*ScoreMatrix, error) {
	n := len(participants)
	if n == 0 {
		return nil, ErrNoParticipants
	}
	if scorer == nil {
		return nil, ErrNilScorer
	}
	if v, ok := scorer.(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}

	m, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	ids := make([]int, n)

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		ids[i] = participants[i].ID
		for j = i + 1; j < n; j++ {
			v = scorer.Score(participants[i], participants[j])
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("pair (%d,%d) = %v: %w", participants[i].ID, participants[j].ID, v, ErrNegativeScore)
			}
			if err = m.SetSymmetric(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return &ScoreMatrix{m: m, ids: ids}, nil
}

// FromMatrix wraps an existing matrix, e.g. one computed elsewhere or
// hand-written in a test. ids[i] names the participant of row i.
//
// The matrix is copied and must be square, symmetric, zero on the diagonal
// and non-negative.
//
// Errors: ErrDimensionMismatch, or the matrix package sentinels.
func FromMatrix(m matrix.Matrix, ids []int) (*ScoreMatrix, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, err
	}
	if len(ids) != m.Rows() || len(ids) == 0 {
		return nil, fmt.Errorf("%d ids for %d rows: %w", len(ids), m.Rows(), ErrDimensionMismatch)
	}
	if err := matrix.ValidateSymmetric(m, 0); err != nil {
		return nil, err
	}
	if err := matrix.ValidateZeroDiagonal(m); err != nil {
		return nil, err
	}
	if err := matrix.ValidateNonNegative(m); err != nil {
		return nil, err
	}

	d, err := matrix.NewSquare(m.Rows())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return &ScoreMatrix{m: d, ids: slices.Clone(ids)}, nil
}

// Size returns n.
func (s *ScoreMatrix) Size() int { return s.m.Rows() }

// At returns the score of the participants at positions i and j.
func (s *ScoreMatrix) At(i, j int) (float64, error) { return s.m.At(i, j) }

// IDs returns the participant id of every row.
func (s *ScoreMatrix) IDs() []int { return slices.Clone(s.ids) }

// Matrix returns a copy of the underlying matrix.
func (s *ScoreMatrix) Matrix() matrix.Matrix { return s.m.Clone() }

// String renders the matrix rows.
func (s *ScoreMatrix) String() string { return s.m.String() }

// GroupScore sums the pair scores over all unordered pairs of positions in
// idx, reading the precomputed matrix.
//
// Complexity: O(k²) for k = len(idx).
func (s *ScoreMatrix) GroupScore(idx []int) (float64, error) {
	return matrix.PairSum(s.m, idx)
}
