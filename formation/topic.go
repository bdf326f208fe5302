package formation

import "github.com/katalvlaran/groupformer/roster"

// majorityTopic tallies the primary topics of members (positions into ps) in
// the given order and returns the most frequent one. Members without a
// primary topic, or whose topic is rejected by allowed, do not vote.
//
// Ties go to the topic that entered the tally first. ok is false when nobody
// voted.
//
// Complexity: O(k²) for k = len(members); no allocation for k ≤ MaxGroupSizeLimit.
func majorityTopic(ps []roster.Participant, members []int, allowed func(string) bool) (topic string, ok bool) {
	var (
		topicBuf [MaxGroupSizeLimit]string
		countBuf [MaxGroupSizeLimit]int
		topics   = topicBuf[:0]
		counts   = countBuf[:0]
	)
	for _, m := range members {
		t := ps[m].PrimaryTopic
		if t == "" || !allowed(t) {
			continue
		}
		found := false
		for i := range topics {
			if topics[i] == t {
				counts[i]++
				found = true

				break
			}
		}
		if !found {
			topics = append(topics, t)
			counts = append(counts, 1)
		}
	}
	if len(topics) == 0 {
		return "", false
	}

	best := 0
	for i := 1; i < len(topics); i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}

	return topics[best], true
}
