package scoring_test

import (
	"testing"

	"github.com/katalvlaran/groupformer/matrix"
	"github.com/katalvlaran/groupformer/roster"
	"github.com/katalvlaran/groupformer/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingScorer records how often each unordered pair is scored.
type countingScorer struct {
	calls map[[2]int]int
}

func (c *countingScorer) Score(a, b roster.Participant) float64 {
	key := [2]int{min(a.ID, b.ID), max(a.ID, b.ID)}
	c.calls[key]++

	return float64(a.ID + b.ID)
}

type negativeScorer struct{}

func (negativeScorer) Score(roster.Participant, roster.Participant) float64 { return -1 }

func TestBuild_ScoresEachPairOnceAndMirrors(t *testing.T) {
	ps := randomParticipants(6, []string{"Math"}, 1)
	cs := &countingScorer{calls: map[[2]int]int{}}

	sm, err := scoring.Build(ps, cs)
	require.NoError(t, err)
	require.Equal(t, 6, sm.Size())
	require.Len(t, cs.calls, 15) // C(6,2)
	for pair, n := range cs.calls {
		require.Equal(t, 1, n, "pair %v", pair)
	}

	m := sm.Matrix()
	require.NoError(t, matrix.ValidateSymmetric(m, 0))
	require.NoError(t, matrix.ValidateZeroDiagonal(m))

	v, err := sm.At(1, 4)
	require.NoError(t, err)
	assert.Equal(t, float64(2+5), v)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, sm.IDs())
}

func TestBuild_MatchesScorer(t *testing.T) {
	ps := randomParticipants(10, []string{"Math", "History"}, 3)
	for name, s := range scorers() {
		t.Run(name, func(t *testing.T) {
			sm, err := scoring.Build(ps, s)
			require.NoError(t, err)
			for i := range ps {
				for j := range ps {
					got, err := sm.At(i, j)
					require.NoError(t, err)
					if i == j {
						require.Zero(t, got)
						continue
					}
					require.Equal(t, s.Score(ps[i], ps[j]), got)
				}
			}
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	_, err := scoring.Build(nil, scoring.DefaultRanked())
	require.ErrorIs(t, err, scoring.ErrNoParticipants)

	ps := randomParticipants(3, []string{"Math"}, 2)
	_, err = scoring.Build(ps, nil)
	require.ErrorIs(t, err, scoring.ErrNilScorer)

	_, err = scoring.Build(ps, negativeScorer{})
	require.ErrorIs(t, err, scoring.ErrNegativeScore)

	bad := scoring.DefaultTiered()
	bad.Mutual = bad.MutualFirst
	_, err = scoring.Build(ps, bad)
	require.ErrorIs(t, err, scoring.ErrInvalidWeights)
}

func TestBuild_SingleParticipant(t *testing.T) {
	sm, err := scoring.Build([]roster.Participant{p(1, nil, "", "")}, scoring.DefaultRanked())
	require.NoError(t, err)
	assert.Equal(t, 1, sm.Size())
	v, _ := sm.At(0, 0)
	assert.Zero(t, v)
}

func TestGroupScore(t *testing.T) {
	sm := mustFromRows(t, [][]float64{
		{0, 1, 2, 4},
		{1, 0, 8, 16},
		{2, 8, 0, 32},
		{4, 16, 32, 0},
	})

	got, err := sm.GroupScore([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 8.0+16+32, got)

	got, err = sm.GroupScore([]int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 63.0, got)

	_, err = sm.GroupScore([]int{0, 9})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestFromMatrix_Validation(t *testing.T) {
	asym, _ := matrix.NewSquare(2)
	_ = asym.Set(0, 1, 1)
	_, err := scoring.FromMatrix(asym, []int{1, 2})
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	diag, _ := matrix.NewSquare(2)
	_ = diag.Set(1, 1, 3)
	_, err = scoring.FromMatrix(diag, []int{1, 2})
	require.ErrorIs(t, err, matrix.ErrNonZeroDiagonal)

	neg, _ := matrix.NewSquare(2)
	_ = neg.SetSymmetric(0, 1, -2)
	_, err = scoring.FromMatrix(neg, []int{1, 2})
	require.ErrorIs(t, err, matrix.ErrNegative)

	ok, _ := matrix.NewSquare(2)
	_, err = scoring.FromMatrix(ok, []int{1})
	require.ErrorIs(t, err, scoring.ErrDimensionMismatch)

	rect, _ := matrix.NewDense(2, 3)
	_, err = scoring.FromMatrix(rect, []int{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestFromMatrix_CopiesInput(t *testing.T) {
	src, _ := matrix.NewSquare(2)
	_ = src.SetSymmetric(0, 1, 3)
	sm, err := scoring.FromMatrix(src, []int{7, 9})
	require.NoError(t, err)

	_ = src.SetSymmetric(0, 1, 100)
	v, _ := sm.At(0, 1)
	assert.Equal(t, 3.0, v)
	assert.Equal(t, []int{7, 9}, sm.IDs())
}

// mustFromRows wraps literal rows as a ScoreMatrix with ids 1..n.
func mustFromRows(t *testing.T, rows [][]float64) *scoring.ScoreMatrix {
	t.Helper()
	m, err := matrix.NewSquare(len(rows))
	require.NoError(t, err)
	ids := make([]int, len(rows))
	for i := range rows {
		ids[i] = i + 1
		for j := range rows[i] {
			require.NoError(t, m.Set(i, j, rows[i][j]))
		}
	}
	sm, err := scoring.FromMatrix(m, ids)
	require.NoError(t, err)

	return sm
}
