// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major numeric storage behind
// compatibility score matrices.
//
// The package is deliberately small:
//   - Matrix: the minimal read/write interface (Rows, Cols, At, Set, Clone).
//   - Dense: a contiguous row-major implementation with bounds-checked
//     accessors and an optional finite-only numeric policy.
//   - Validators: shape, symmetry, diagonal and sign checks used to guard
//     freshly built score matrices.
//   - PairSum: the upper-triangle sum over an index subset, the primitive
//     behind group scoring.
//
// Determinism:
//
//	All loops run in fixed i→j order; no map iteration, no randomness.
//
// Errors:
//
//	Public accessors never panic on user input. They return the sentinels
//	from errors.go, wrapped with the method name and coordinates; match them
//	with errors.Is.
//
// Quick example:
//
//	m, _ := matrix.NewDense(3, 3)
//	_ = m.SetSymmetric(0, 1, 12.5) // writes (0,1) and (1,0)
//	v, _ := m.At(1, 0)             // 12.5
package matrix
