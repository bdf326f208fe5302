package roster

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Sentinel errors for roster operations.
var (
	// ErrEmptyRoster indicates that a roster was requested with no participants.
	ErrEmptyRoster = errors.New("roster: no participants")

	// ErrEmptyName indicates a blank participant name.
	ErrEmptyName = errors.New("roster: participant name is empty")

	// ErrEmptyTopic indicates a blank configured topic.
	ErrEmptyTopic = errors.New("roster: topic is empty")

	// ErrDuplicateTopic indicates that a configured topic appears more than once.
	ErrDuplicateTopic = errors.New("roster: duplicate topic")

	// ErrParticipantNotFound indicates an id that does not belong to the roster.
	ErrParticipantNotFound = errors.New("roster: participant not found")

	// ErrSelfPreference indicates a participant listing itself as partner.
	ErrSelfPreference = errors.New("roster: participant cannot prefer itself")

	// ErrDuplicatePartner indicates a partner id listed twice.
	ErrDuplicatePartner = errors.New("roster: duplicate partner")

	// ErrUnknownTopic indicates a topic choice outside the configured topics.
	ErrUnknownTopic = errors.New("roster: unknown topic")
)

// Participant is one member of the roster.
//
// PrimaryTopic and SecondaryTopic use the empty string for "no preference".
type Participant struct {
	// ID is stable, unique and 1-based.
	ID int

	// Name is the display name.
	Name string

	// Partners lists preferred partner ids, most preferred first.
	Partners []int

	// PrimaryTopic is the preferred topic, or "".
	PrimaryTopic string

	// SecondaryTopic is the fallback topic, or "".
	SecondaryTopic string
}

// HasPreferences reports whether any preference field is set.
func (p Participant) HasPreferences() bool {
	return len(p.Partners) > 0 || p.PrimaryTopic != "" || p.SecondaryTopic != ""
}

// Rank returns the position of id in p's partner list, or -1.
func (p Participant) Rank(id int) int {
	return slices.Index(p.Partners, id)
}

// String implements fmt.Stringer.
func (p Participant) String() string {
	return fmt.Sprintf("%s (ID: %d)", p.Name, p.ID)
}

// clone returns a copy that shares no memory with p.
func (p Participant) clone() Participant {
	p.Partners = slices.Clone(p.Partners)

	return p
}

// Roster is the participant list of one formation session.
//
// The zero value is not usable; construct with New.
type Roster struct {
	mu           sync.RWMutex
	participants []Participant // index i holds id i+1
	topics       []string
	topicSet     map[string]struct{}
}
