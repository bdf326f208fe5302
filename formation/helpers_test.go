package formation_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/groupformer/formation"
	"github.com/katalvlaran/groupformer/matrix"
	"github.com/katalvlaran/groupformer/roster"
	"github.com/katalvlaran/groupformer/scoring"
	"github.com/stretchr/testify/require"
)

// prefs is one SetPreferences call.
type prefs struct {
	id        int
	partners  []int
	primary   string
	secondary string
}

// mkRoster builds a roster named P1..Pn and applies the given preferences.
func mkRoster(t *testing.T, n int, topics []string, ps ...prefs) *roster.Roster {
	t.Helper()
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("P%d", i+1)
	}
	r, err := roster.New(names, topics)
	require.NoError(t, err)
	for _, p := range ps {
		require.NoError(t, r.SetPreferences(p.id, p.partners, p.primary, p.secondary))
	}

	return r
}

// randomRoster fills every participant with reproducible random preferences.
func randomRoster(t *testing.T, n int, topics []string, seed int64) *roster.Roster {
	t.Helper()
	r := mkRoster(t, n, topics)
	rng := rand.New(rand.NewSource(seed))
	for id := 1; id <= n; id++ {
		var partners []int
		for _, c := range rng.Perm(n) {
			if c+1 != id && len(partners) < 3 && rng.Intn(2) == 0 {
				partners = append(partners, c+1)
			}
		}
		var primary, secondary string
		if len(topics) > 0 && rng.Intn(5) > 0 {
			primary = topics[rng.Intn(len(topics))]
		}
		if len(topics) > 0 && rng.Intn(2) == 0 {
			secondary = topics[rng.Intn(len(topics))]
		}
		require.NoError(t, r.SetPreferences(id, partners, primary, secondary))
	}

	return r
}

// form builds the matrix with scorer and runs Form on r.
func form(t *testing.T, r *roster.Roster, scorer scoring.PairScorer, opts ...formation.Option) (formation.Result, *scoring.ScoreMatrix) {
	t.Helper()
	ps := r.Participants()
	sm, err := scoring.Build(ps, scorer)
	require.NoError(t, err)
	res, err := formation.Form(ps, r.Topics(), sm, opts...)
	require.NoError(t, err)

	return res, sm
}

// constMatrix returns an n×n ScoreMatrix with v off the diagonal.
func constMatrix(t *testing.T, n int, v float64) *scoring.ScoreMatrix {
	t.Helper()
	m, err := matrix.NewSquare(n)
	require.NoError(t, err)
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = i + 1
		for j := i + 1; j < n; j++ {
			require.NoError(t, m.SetSymmetric(i, j, v))
		}
	}
	sm, err := scoring.FromMatrix(m, ids)
	require.NoError(t, err)

	return sm
}

// requirePartition checks that groups cover ids 1..n exactly once.
func requirePartition(t *testing.T, n int, groups []formation.Group) {
	t.Helper()
	seen := make(map[int]int, n)
	for gi, g := range groups {
		for _, id := range g.IDs() {
			prev, dup := seen[id]
			require.False(t, dup, "participant %d in groups %d and %d", id, prev, gi)
			seen[id] = gi
		}
	}
	require.Len(t, seen, n)
	for id := 1; id <= n; id++ {
		require.Contains(t, seen, id)
	}
}
