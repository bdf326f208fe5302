// Package formation partitions a roster into topic-bound groups using a
// precomputed score matrix.
//
// Algorithm (greedy, per round):
//
//  1. For every size k in 2..min(MaxGroupSize, |pool|), enumerate all
//     k-subsets of the unassigned pool in lexicographic order.
//  2. Resolve each candidate's topic by majority vote over its members'
//     primary topics; candidates without a topic are skipped.
//  3. Keep the candidate with the strictly highest score (sum of pair
//     scores). On an exact tie the TieBreak policy decides: PreferLarger
//     keeps the larger group, FirstSeen keeps the earlier candidate.
//  4. Commit the winner, remove its members from the pool and, under the
//     Exclusive topic policy, claim its topic.
//
// The loop stops when the pool is empty, when a round finds no candidate,
// or (Exclusive only) when every configured topic is claimed. Whoever is
// left goes through the leftover policy: Chunked (default) cuts the pool
// into groups of at most MaxGroupSize with a majority-vote topic, Single
// puts everyone into one group with the first unclaimed topic. Residual
// groups score 0.
//
// Guarantees:
//   - Every participant lands in exactly one group.
//   - Greedy groups have 2..MaxGroupSize members; Chunked residual groups
//     never exceed MaxGroupSize.
//   - Identical inputs give identical output: the pool is kept sorted,
//     enumeration and topic tallies follow ascending roster position, and
//     no map is iterated where order matters.
//
// The result is a heuristic, not a global optimum.
//
// Topic policy forks:
//
//	Exclusive + PreferLarger   - a topic is assigned to at most one greedy
//	                             group; ties favor consolidation. (default)
//	Reuse     + FirstSeen      - topics may repeat; ties keep the first
//	                             candidate found.
//
// TieBreak defaults to the pairing above unless set explicitly.
//
// Topics that are not configured are ignored by every tally, so a roster
// with zero topics forms no greedy groups and its residual groups receive
// the placeholder topic.
package formation
