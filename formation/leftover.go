package formation

// assignLeftovers places everyone still in the pool according to the
// leftover policy. Residual groups always score 0.
func (s *selector) assignLeftovers() {
	if len(s.pool) == 0 {
		return
	}

	switch s.opts.leftover {
	case Single:
		s.groups = append(s.groups, Group{
			Members:  s.members(s.pool),
			Topic:    s.firstUnclaimedTopic(),
			Residual: true,
		})
	default:
		k := s.opts.maxGroupSize
		for start := 0; start < len(s.pool); start += k {
			chunk := s.pool[start:min(start+k, len(s.pool))]
			s.groups = append(s.groups, Group{
				Members:  s.members(chunk),
				Topic:    s.chunkTopic(chunk),
				Residual: true,
			})
		}
	}
	s.pool = s.pool[:0]
}

// chunkTopic votes without exclusivity; falls back to the first configured
// topic, then to the placeholder.
func (s *selector) chunkTopic(chunk []int) string {
	if t, ok := majorityTopic(s.ps, chunk, s.isConfigured); ok {
		return t
	}
	if len(s.topics) > 0 {
		return s.topics[0]
	}

	return s.opts.placeholder
}

func (s *selector) firstUnclaimedTopic() string {
	for _, t := range s.topics {
		if _, taken := s.claimed[t]; !taken {
			return t
		}
	}

	return s.opts.placeholder
}

func (s *selector) isConfigured(t string) bool {
	_, ok := s.configured[t]
	return ok
}
