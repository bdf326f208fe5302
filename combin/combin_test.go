package combin_test

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/groupformer/combin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect drains g into owned copies of every subset.
func collect(g *combin.Generator) [][]int {
	var out [][]int
	for g.Next() {
		out = append(out, slices.Clone(g.Indices()))
	}

	return out
}

func TestGenerator_LexicographicOrder(t *testing.T) {
	g, err := combin.New(4, 2)
	require.NoError(t, err)

	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	require.Equal(t, want, collect(g))
	assert.False(t, g.Next(), "exhausted generator stays exhausted")
}

func TestGenerator_CountsMatchBinomialWithoutDuplicates(t *testing.T) {
	for n := 1; n <= 10; n++ {
		for k := 1; k <= min(4, n); k++ {
			t.Run(fmt.Sprintf("n=%d/k=%d", n, k), func(t *testing.T) {
				g, err := combin.New(n, k)
				require.NoError(t, err)

				seen := map[string]struct{}{}
				for _, s := range collect(g) {
					require.Len(t, s, k)
					require.True(t, slices.IsSorted(s))
					require.Less(t, s[k-1], n)
					key := fmt.Sprint(s)
					_, dup := seen[key]
					require.False(t, dup, "duplicate subset %v", s)
					seen[key] = struct{}{}
				}
				require.Len(t, seen, combin.Binomial(n, k))
			})
		}
	}
}

func TestGenerator_FullSubset(t *testing.T) {
	g, err := combin.New(3, 3)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1, 2}}, collect(g))
}

func TestGenerator_Reset(t *testing.T) {
	g, _ := combin.New(3, 2)
	first := collect(g)
	g.Reset()
	require.Equal(t, first, collect(g))
}

func TestNew_InvalidSize(t *testing.T) {
	for _, tc := range []struct{ n, k int }{{3, 0}, {3, 4}, {-1, 1}} {
		_, err := combin.New(tc.n, tc.k)
		require.ErrorIs(t, err, combin.ErrInvalidSize)
	}
}

func TestEach_MapsPoolValues(t *testing.T) {
	pool := []int{2, 5, 9}
	var got [][]int
	combin.Each(pool, 2, func(s []int) bool {
		got = append(got, slices.Clone(s))
		return true
	})
	require.Equal(t, [][]int{{2, 5}, {2, 9}, {5, 9}}, got)
}

func TestEach_StopsEarlyAndIgnoresBadSizes(t *testing.T) {
	calls := 0
	combin.Each([]int{0, 1, 2, 3}, 2, func([]int) bool {
		calls++
		return calls < 3
	})
	assert.Equal(t, 3, calls)

	combin.Each([]int{0, 1}, 3, func([]int) bool {
		t.Fatal("k > len(pool) must yield nothing")
		return false
	})
}

func TestBinomial(t *testing.T) {
	cases := []struct{ n, k, want int }{
		{0, 0, 1},
		{5, 0, 1},
		{5, 2, 10},
		{10, 4, 210},
		{35, 4, 52360},
		{4, 5, 0},
		{4, -1, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, combin.Binomial(tc.n, tc.k), "C(%d,%d)", tc.n, tc.k)
	}
	assert.Equal(t, math.MaxInt, combin.Binomial(200, 100))
}
