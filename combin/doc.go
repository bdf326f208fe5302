// Package combin enumerates k-subsets (combinations) of small index pools.
//
// The generator is iterative and index-based: it keeps one k-length index
// buffer and advances it in place, so enumerating C(n,k) subsets allocates
// O(k) memory once instead of materializing every subset.
//
// Order:
//
//	Subsets are produced in lexicographic order of positions, e.g. for n=4,
//	k=2: [0 1] [0 2] [0 3] [1 2] [1 3] [2 3]. Each subset is produced exactly
//	once; positions within a subset are strictly increasing.
//
// Cost:
//
//	C(n,k) grows combinatorially. Callers must bound k (the formation engine
//	caps it at its maximum group size) and can use Binomial to estimate the
//	work before enumerating.
package combin
