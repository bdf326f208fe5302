package roster

import (
	"fmt"
	"slices"
	"strings"
)

// New creates a roster with one participant per name and the given topics.
// Participant i (0-based) receives id i+1.
//
// Zero topics is legal: such a roster can never resolve a topic, and the
// formation engine falls back to its placeholder.
//
// Errors: ErrEmptyRoster, ErrEmptyName, ErrEmptyTopic, ErrDuplicateTopic.
//
// Complexity: O(n + t).
func New(names []string, topics []string) (*Roster, error) {
	if len(names) == 0 {
		return nil, ErrEmptyRoster
	}

	r := &Roster{
		participants: make([]Participant, len(names)),
		topics:       make([]string, 0, len(topics)),
		topicSet:     make(map[string]struct{}, len(topics)),
	}
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("name #%d: %w", i+1, ErrEmptyName)
		}
		r.participants[i] = Participant{ID: i + 1, Name: name}
	}
	for _, topic := range topics {
		if strings.TrimSpace(topic) == "" {
			return nil, ErrEmptyTopic
		}
		if _, dup := r.topicSet[topic]; dup {
			return nil, fmt.Errorf("%q: %w", topic, ErrDuplicateTopic)
		}
		r.topicSet[topic] = struct{}{}
		r.topics = append(r.topics, topic)
	}

	return r, nil
}

// Len returns the number of participants.
func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.participants)
}

// Topics returns a copy of the configured topics in configuration order.
func (r *Roster) Topics() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.topics)
}

// HasTopic reports whether topic is configured.
func (r *Roster) HasTopic(topic string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.topicSet[topic]

	return ok
}

// Participants returns a deep-copied snapshot of all participants in id order.
// Later preference updates do not affect the snapshot.
func (r *Roster) Participants() []Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Participant, len(r.participants))
	for i := range r.participants {
		out[i] = r.participants[i].clone()
	}

	return out
}

// Participant returns a copy of the participant with the given id.
func (r *Roster) Participant(id int) (Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, err := r.indexOf(id)
	if err != nil {
		return Participant{}, err
	}

	return r.participants[i].clone(), nil
}

// IndexOf returns the 0-based position of id.
func (r *Roster) IndexOf(id int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.indexOf(id)
}

// indexOf assumes the caller holds r.mu.
func (r *Roster) indexOf(id int) (int, error) {
	if id < 1 || id > len(r.participants) {
		return 0, fmt.Errorf("id %d: %w", id, ErrParticipantNotFound)
	}

	return id - 1, nil
}

// SetPreferences overwrites the preference fields of participant id.
//
// Contract:
//   - id and every partner id must belong to the roster.
//   - partners must not contain id itself or any repeated id.
//   - non-empty topics must be configured; "" means "no preference".
//
// The whole update is validated before anything is written; on error the
// roster is unchanged. The partners slice is copied.
//
// Errors: ErrParticipantNotFound, ErrSelfPreference, ErrDuplicatePartner,
// ErrUnknownTopic (wrapped with context).
func (r *Roster) SetPreferences(id int, partners []int, primary, secondary string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, err := r.indexOf(id)
	if err != nil {
		return err
	}
	if err = r.validatePartners(id, partners); err != nil {
		return err
	}
	if err = r.validateTopic(primary); err != nil {
		return fmt.Errorf("primary: %w", err)
	}
	if err = r.validateTopic(secondary); err != nil {
		return fmt.Errorf("secondary: %w", err)
	}

	p := &r.participants[i]
	p.Partners = slices.Clone(partners)
	p.PrimaryTopic = primary
	p.SecondaryTopic = secondary

	return nil
}

// ResetPreferences clears every participant's preferences, keeping ids and
// names in their original order.
func (r *Roster) ResetPreferences() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.participants {
		r.participants[i] = Participant{ID: r.participants[i].ID, Name: r.participants[i].Name}
	}
}

// validatePartners assumes the caller holds r.mu.
func (r *Roster) validatePartners(id int, partners []int) error {
	seen := make(map[int]struct{}, len(partners))
	for _, pid := range partners {
		if pid == id {
			return fmt.Errorf("id %d: %w", id, ErrSelfPreference)
		}
		if _, err := r.indexOf(pid); err != nil {
			return fmt.Errorf("partner: %w", err)
		}
		if _, dup := seen[pid]; dup {
			return fmt.Errorf("partner %d: %w", pid, ErrDuplicatePartner)
		}
		seen[pid] = struct{}{}
	}

	return nil
}

// validateTopic assumes the caller holds r.mu.
func (r *Roster) validateTopic(topic string) error {
	if topic == "" {
		return nil
	}
	if _, ok := r.topicSet[topic]; !ok {
		return fmt.Errorf("%q: %w", topic, ErrUnknownTopic)
	}

	return nil
}
