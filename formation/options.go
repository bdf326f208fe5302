package formation

import (
	"fmt"
	"strings"
)

// TopicPolicy controls whether a topic may be assigned to several groups.
type TopicPolicy int

const (
	// Exclusive assigns each topic to at most one greedy group and stops the
	// greedy loop once every topic is claimed.
	Exclusive TopicPolicy = iota
	// Reuse lets any number of groups share a topic.
	Reuse
)

// TieBreak decides between candidates with exactly equal scores.
type TieBreak int

const (
	// PreferLarger keeps the candidate with more members.
	PreferLarger TieBreak = iota
	// FirstSeen keeps the candidate found first.
	FirstSeen
)

// LeftoverPolicy decides how participants the greedy loop could not place
// are grouped.
type LeftoverPolicy int

const (
	// Chunked cuts the leftovers into groups of at most MaxGroupSize.
	Chunked LeftoverPolicy = iota
	// Single puts all leftovers into one group.
	Single
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxGroupSize is the largest group the engine forms.
	DefaultMaxGroupSize = 4

	// MinGroupSize is the smallest greedy group.
	MinGroupSize = 2

	// MaxGroupSizeLimit bounds WithMaxGroupSize. Enumeration per round is
	// Σ C(n,k) for k ≤ MaxGroupSize, so the bound keeps rounds polynomial.
	MaxGroupSizeLimit = 6

	// DefaultTopicPolicy is Exclusive.
	DefaultTopicPolicy = Exclusive

	// DefaultLeftoverPolicy is Chunked.
	DefaultLeftoverPolicy = Chunked

	// DefaultPlaceholderTopic labels groups when no topic is available.
	DefaultPlaceholderTopic = "no topic available"
)

// ---------- Internal panic messages ----------

const (
	panicMaxGroupSize = "formation: WithMaxGroupSize: size must be in [2, 6]"
	panicPlaceholder  = "formation: WithPlaceholderTopic: placeholder must be non-empty"
	panicTopicPolicy  = "formation: WithTopicPolicy: unknown policy"
	panicTieBreak     = "formation: WithTieBreak: unknown tie-break"
	panicLeftover     = "formation: WithLeftoverPolicy: unknown policy"
)

// Option configures Form. Constructors panic on nonsensical values
// (programmer error); everything else is reported through errors.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	maxGroupSize int
	topicPolicy  TopicPolicy
	tieBreak     TieBreak
	tieBreakSet  bool // false ⇒ derive from topicPolicy
	leftover     LeftoverPolicy
	placeholder  string
}

// WithMaxGroupSize sets the largest group size, 2 ≤ k ≤ MaxGroupSizeLimit.
func WithMaxGroupSize(k int) Option {
	if k < MinGroupSize || k > MaxGroupSizeLimit {
		panic(panicMaxGroupSize)
	}

	return func(o *Options) { o.maxGroupSize = k }
}

// WithTopicPolicy selects Exclusive or Reuse.
func WithTopicPolicy(p TopicPolicy) Option {
	if p != Exclusive && p != Reuse {
		panic(panicTopicPolicy)
	}

	return func(o *Options) { o.topicPolicy = p }
}

// WithTieBreak overrides the tie-break derived from the topic policy.
func WithTieBreak(t TieBreak) Option {
	if t != PreferLarger && t != FirstSeen {
		panic(panicTieBreak)
	}

	return func(o *Options) {
		o.tieBreak = t
		o.tieBreakSet = true
	}
}

// WithLeftoverPolicy selects Chunked or Single.
func WithLeftoverPolicy(p LeftoverPolicy) Option {
	if p != Chunked && p != Single {
		panic(panicLeftover)
	}

	return func(o *Options) { o.leftover = p }
}

// WithPlaceholderTopic sets the label used when no topic is available.
func WithPlaceholderTopic(s string) Option {
	if strings.TrimSpace(s) == "" {
		panic(panicPlaceholder)
	}

	return func(o *Options) { o.placeholder = s }
}

// NewOptions resolves opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{
		maxGroupSize: DefaultMaxGroupSize,
		topicPolicy:  DefaultTopicPolicy,
		leftover:     DefaultLeftoverPolicy,
		placeholder:  DefaultPlaceholderTopic,
	}
	for _, set := range opts {
		set(&o) // last writer wins
	}
	if !o.tieBreakSet {
		o.tieBreak = DefaultTieBreak(o.topicPolicy)
	}

	return o
}

// DefaultTieBreak returns the tie-break paired with a topic policy:
// PreferLarger for Exclusive, FirstSeen for Reuse.
func DefaultTieBreak(p TopicPolicy) TieBreak {
	if p == Reuse {
		return FirstSeen
	}

	return PreferLarger
}

// MaxGroupSize returns the configured maximum group size.
func (o Options) MaxGroupSize() int { return o.maxGroupSize }

// TopicPolicy returns the configured topic policy.
func (o Options) TopicPolicy() TopicPolicy { return o.topicPolicy }

// TieBreak returns the effective tie-break.
func (o Options) TieBreak() TieBreak { return o.tieBreak }

// LeftoverPolicy returns the configured leftover policy.
func (o Options) LeftoverPolicy() LeftoverPolicy { return o.leftover }

// PlaceholderTopic returns the placeholder label.
func (o Options) PlaceholderTopic() string { return o.placeholder }

// ---------- String forms (config files, logs) ----------

func (p TopicPolicy) String() string {
	switch p {
	case Exclusive:
		return "exclusive"
	case Reuse:
		return "reuse"
	default:
		return fmt.Sprintf("TopicPolicy(%d)", int(p))
	}
}

func (t TieBreak) String() string {
	switch t {
	case PreferLarger:
		return "prefer-larger"
	case FirstSeen:
		return "first-seen"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(t))
	}
}

func (p LeftoverPolicy) String() string {
	switch p {
	case Chunked:
		return "chunked"
	case Single:
		return "single"
	default:
		return fmt.Sprintf("LeftoverPolicy(%d)", int(p))
	}
}

// ParseTopicPolicy maps "exclusive" or "reuse" (case-insensitive).
func ParseTopicPolicy(s string) (TopicPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exclusive":
		return Exclusive, nil
	case "reuse":
		return Reuse, nil
	}

	return 0, fmt.Errorf("topic policy %q: %w", s, ErrUnknownPolicy)
}

// ParseTieBreak maps "prefer-larger" or "first-seen" (case-insensitive).
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prefer-larger":
		return PreferLarger, nil
	case "first-seen":
		return FirstSeen, nil
	}

	return 0, fmt.Errorf("tie-break %q: %w", s, ErrUnknownPolicy)
}

// ParseLeftoverPolicy maps "chunked" or "single" (case-insensitive).
func ParseLeftoverPolicy(s string) (LeftoverPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chunked":
		return Chunked, nil
	case "single":
		return Single, nil
	}

	return 0, fmt.Errorf("leftover policy %q: %w", s, ErrUnknownPolicy)
}
