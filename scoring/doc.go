// Package scoring turns participant preferences into pairwise compatibility
// scores and collects them into a symmetric ScoreMatrix.
//
// Two pair-scoring schemes are provided; both add a partner component and a
// topic component and never return a negative value:
//
//   - Tiered: flat bonuses, mutual first choice > mutual choice > one-sided
//     choice > nothing.
//
//   - Ranked: each direction earns a weight that decays with the rank of the
//     partner in the list (ranks past the weight table earn nothing), plus a
//     reciprocity bonus when both list each other, inversely proportional to
//     1 + |rankA − rankB|.
//
// The topic component is shared: equal primary topics beat a primary/secondary
// cross match, which beats no overlap. Empty topics never match.
//
// Build computes every unordered pair exactly once and mirrors it, so the
// result is symmetric with a zero diagonal by construction; the matrix
// validators re-check both before the matrix is handed out.
//
// GroupScore sums the precomputed pair scores of a subset; it never calls the
// scorer again.
package scoring
