package combin

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSize is returned when k is outside [1, n] or n is negative.
var ErrInvalidSize = errors.New("combin: invalid subset size")

// Generator walks the k-subsets of {0..n-1} in lexicographic order.
//
// Usage:
//
//	g, _ := combin.New(5, 3)
//	for g.Next() {
//		use(g.Indices())
//	}
//
// The zero value is not usable; construct with New.
type Generator struct {
	n, k    int
	idx     []int
	started bool
	done    bool
}

// New returns a generator over the k-subsets of {0..n-1}.
//
// Errors: ErrInvalidSize when n<0, k<1 or k>n.
func New(n, k int) (*Generator, error) {
	if n < 0 || k < 1 || k > n {
		return nil, fmt.Errorf("n=%d k=%d: %w", n, k, ErrInvalidSize)
	}

	return &Generator{n: n, k: k, idx: make([]int, k)}, nil
}

// Next advances to the next subset and reports whether one exists.
//
// Complexity: amortized O(1), worst case O(k) per call.
func (g *Generator) Next() bool {
	if g.done {
		return false
	}
	if !g.started {
		g.started = true
		for i := range g.idx {
			g.idx[i] = i
		}

		return true
	}

	// Rightmost position that can still move right.
	i := g.k - 1
	for i >= 0 && g.idx[i] == g.n-g.k+i {
		i--
	}
	if i < 0 {
		g.done = true

		return false
	}
	g.idx[i]++
	for j := i + 1; j < g.k; j++ {
		g.idx[j] = g.idx[j-1] + 1
	}

	return true
}

// Indices returns the current subset. The slice is reused by the next call
// to Next; copy it to retain it.
func (g *Generator) Indices() []int { return g.idx }

// Reset rewinds the generator to before the first subset.
func (g *Generator) Reset() {
	g.started = false
	g.done = false
}

// Each calls fn with every k-subset of pool, mapping positions to pool
// values. Within a subset, values keep their pool order. The slice passed to
// fn is a scratch buffer reused across calls. Returning false from fn stops
// the enumeration.
//
// A k outside [1, len(pool)] yields no subsets.
func Each(pool []int, k int, fn func(subset []int) bool) {
	g, err := New(len(pool), k)
	if err != nil {
		return
	}
	buf := make([]int, k)
	for g.Next() {
		for i, pos := range g.idx {
			buf[i] = pool[pos]
		}
		if !fn(buf) {
			return
		}
	}
}

// Binomial returns C(n,k), or 0 when k<0 or k>n. Results that do not fit in
// an int saturate at math.MaxInt.
func Binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	res := 1
	for i := 1; i <= k; i++ {
		// res*(n-k+i) is divisible by i at every step.
		num := n - k + i
		if res > math.MaxInt/num {
			return math.MaxInt
		}
		res = res * num / i
	}

	return res
}
