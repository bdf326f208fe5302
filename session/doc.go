// Package session owns one group-formation exercise: the roster, the set of
// participants who have submitted preferences, the pair scorer and the
// formation options.
//
// A Session is created with New and is safe for concurrent use. Preference
// updates go through the roster's lock; FormGroups calls are serialized so
// two runs never overlap on one session.
//
// Typical flow:
//
//	s, err := session.New(names, topics)
//	...
//	err = s.SetPreferences(1, []int{3, 2}, "Math", "History")
//	m, err := s.BuildScoreMatrix()
//	res, err := s.FormGroups(m)
package session
