// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// PairSum returns Σ A[idx[a], idx[b]] over all a<b, i.e. the sum of the
// upper-triangle entries restricted to the index subset idx.
//
// Contract:
//   - m must be square; every index must lie in [0, n).
//   - Duplicate indices are not rejected; callers pass distinct subsets.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrOutOfRange.
// Complexity: O(k²) for k = len(idx).
func PairSum(m Matrix, idx []int) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, validatorErrorf("PairSum", err)
	}
	n := m.Rows()
	for _, i := range idx {
		if i < 0 || i >= n {
			return 0, fmt.Errorf("PairSum(%d): %w", i, ErrOutOfRange)
		}
	}

	// Fast path: read the flat buffer directly.
	if d, ok := m.(*Dense); ok {
		return d.pairSum(idx), nil
	}

	var (
		sum  float64
		v    float64
		a, b int
	)
	for a = 0; a < len(idx); a++ {
		for b = a + 1; b < len(idx); b++ {
			v, _ = m.At(idx[a], idx[b])
			sum += v
		}
	}

	return sum, nil
}

// pairSum assumes idx was bounds-checked by the caller.
func (m *Dense) pairSum(idx []int) float64 {
	var (
		sum  float64
		base int
		a, b int
	)
	for a = 0; a < len(idx); a++ {
		base = idx[a] * m.c
		for b = a + 1; b < len(idx); b++ {
			sum += m.data[base+idx[b]]
		}
	}

	return sum
}
