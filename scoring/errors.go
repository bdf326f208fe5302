package scoring

import "errors"

var (
	// ErrNoParticipants is returned when a matrix is requested for zero participants.
	ErrNoParticipants = errors.New("scoring: no participants")

	// ErrNilScorer is returned when Build receives a nil PairScorer.
	ErrNilScorer = errors.New("scoring: nil pair scorer")

	// ErrInvalidWeights signals negative, non-finite or mis-ordered weights.
	ErrInvalidWeights = errors.New("scoring: invalid weights")

	// ErrNegativeScore signals a scorer that produced a negative or non-finite value.
	ErrNegativeScore = errors.New("scoring: negative or non-finite pair score")

	// ErrDimensionMismatch signals a matrix whose size disagrees with its id list.
	ErrDimensionMismatch = errors.New("scoring: dimension mismatch")

	// ErrUnknownScheme is returned by ParseScheme for unrecognized names.
	ErrUnknownScheme = errors.New("scoring: unknown scheme")
)
