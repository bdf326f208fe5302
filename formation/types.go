package formation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/groupformer/roster"
)

var (
	// ErrNilMatrix is returned when Form receives a nil score matrix.
	ErrNilMatrix = errors.New("formation: nil score matrix")

	// ErrDimensionMismatch is returned when the score matrix does not
	// describe the given participants (size or id order differs).
	ErrDimensionMismatch = errors.New("formation: score matrix does not match participants")

	// ErrUnknownPolicy is returned by the Parse* helpers.
	ErrUnknownPolicy = errors.New("formation: unknown policy")
)

// Group is one committed group.
type Group struct {
	// Members in ascending roster position.
	Members []roster.Participant

	// Topic is the assigned topic or the placeholder.
	Topic string

	// Score is the sum of intra-group pair scores; 0 for residual groups.
	Score float64

	// Residual marks groups formed by the leftover policy.
	Residual bool
}

// Size returns the number of members.
func (g Group) Size() int { return len(g.Members) }

// IDs returns the member ids in member order.
func (g Group) IDs() []int {
	out := make([]int, len(g.Members))
	for i, m := range g.Members {
		out[i] = m.ID
	}

	return out
}

// String implements fmt.Stringer.
func (g Group) String() string {
	names := make([]string, len(g.Members))
	for i, m := range g.Members {
		names[i] = m.String()
	}

	return fmt.Sprintf("Topic: %s, Score: %.2f, Members: %s", g.Topic, g.Score, strings.Join(names, ", "))
}

// Stats summarizes one formation run.
type Stats struct {
	// Groups is the total number of groups.
	Groups int `json:"groups"`
	// Greedy is the number of groups committed by the greedy loop.
	Greedy int `json:"greedy"`
	// Residual is the number of leftover groups.
	Residual int `json:"residual"`
	// Placed counts participants in any group.
	Placed int `json:"placed"`
	// Total is the roster size.
	Total int `json:"total"`
	// Unplaced is Total - Placed; zero unless the partition is broken.
	Unplaced int `json:"unplaced"`
	// MeanScore is the mean group score over all groups (0 with no groups).
	MeanScore float64 `json:"mean_score"`
	// Candidates counts candidate subsets evaluated by the greedy loop.
	Candidates int `json:"candidates"`
}

// Result is the outcome of Form.
type Result struct {
	Groups []Group
	Stats  Stats
}
