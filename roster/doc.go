// Package roster holds the participants of a formation session together with
// their stated preferences.
//
// A Roster is created once with a fixed list of names and configured topics.
// Participant ids are 1-based and follow the order of the names. After
// creation only the preference fields change: SetPreferences overwrites one
// participant's partner list and topic choices, ResetPreferences clears them
// for everybody while preserving ids and names.
//
// The roster performs no scoring. It validates every preference update in
// full before mutating anything, so a failed call leaves the roster exactly
// as it was.
//
// Concurrency:
//
//	All methods are safe for concurrent use. Reads take a shared lock and
//	return deep copies; writes take an exclusive lock.
//
// Errors:
//
//	ErrEmptyRoster         - no names were given.
//	ErrEmptyName           - a name is blank.
//	ErrEmptyTopic          - a configured topic is blank.
//	ErrDuplicateTopic      - a configured topic appears twice.
//	ErrParticipantNotFound - an id does not belong to the roster.
//	ErrSelfPreference      - a participant listed itself as partner.
//	ErrDuplicatePartner    - a partner id appears twice in one list.
//	ErrUnknownTopic        - a topic choice is not among the configured topics.
package roster
