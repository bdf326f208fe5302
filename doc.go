// Package groupformer partitions a roster of participants into small,
// topic-bound groups that maximize mutual compatibility.
//
// Compatibility comes from stated partner preferences (who each participant
// wants to work with, in order) and topic preferences (a primary and an
// optional secondary topic). The engine scores every pair, enumerates
// candidate groups of 2..MaxGroupSize members, and greedily commits the
// best-scoring group whose majority topic is still available. Whoever the
// greedy loop cannot place is grouped by the leftover policy.
//
// The module is organized as flat packages, leaves first:
//
//	roster/     : participants, topics, preference updates
//	matrix/     : dense symmetric numeric storage
//	scoring/    : pair scorers (ranked, tiered) and the score matrix
//	combin/     : iterative k-combination enumeration
//	formation/  : topic vote, greedy selection, leftover assignment
//	session/    : one owned exercise (roster, submissions, options)
//	rosterfile/ : YAML roster documents
//	cmd/groupformer : command-line caller
//
// Quick example:
//
//	s, _ := session.New([]string{"Ann", "Bob", "Cid"}, []string{"Math"})
//	_ = s.SetPreferences(1, []int{2}, "Math", "")
//	_ = s.SetPreferences(2, []int{1}, "Math", "")
//	res, _, _ := s.Run()
//	for _, g := range res.Groups {
//		fmt.Println(g) // Topic: Math, Score: 19.00, Members: Ann (ID: 1), Bob (ID: 2), Cid (ID: 3)
//	}
//
// The greedy heuristic is not globally optimal; it is deterministic for a
// fixed roster, topic list and option set.
package groupformer
