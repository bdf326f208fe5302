package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/groupformer/formation"
	"github.com/katalvlaran/groupformer/internal/logging"
)

// ValidationError is a single invalid setting.
type ValidationError struct {
	Field   string // config key, e.g. "formation.max_group_size"
	Value   any
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects every invalid setting.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}

	return sb.String()
}

// ValidOutputFormats returns the accepted output.format values.
func ValidOutputFormats() []string {
	return []string{"text", "json"}
}

// Validate returns every problem found in c.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError
	errs = append(errs, c.validateFormation()...)
	errs = append(errs, c.validateScoring()...)
	errs = append(errs, c.validateLogging()...)
	errs = append(errs, c.validateOutput()...)

	return errs
}

func (c *Config) validateFormation() []ValidationError {
	var errs []ValidationError
	f := c.Formation

	if f.MaxGroupSize < formation.MinGroupSize || f.MaxGroupSize > formation.MaxGroupSizeLimit {
		errs = append(errs, ValidationError{
			Field:   "formation.max_group_size",
			Value:   f.MaxGroupSize,
			Message: fmt.Sprintf("must be between %d and %d", formation.MinGroupSize, formation.MaxGroupSizeLimit),
		})
	}
	if _, err := formation.ParseTopicPolicy(f.TopicPolicy); err != nil {
		errs = append(errs, ValidationError{
			Field: "formation.topic_policy", Value: f.TopicPolicy,
			Message: "must be one of: exclusive, reuse",
		})
	}
	if strings.TrimSpace(f.TieBreak) != "" {
		if _, err := formation.ParseTieBreak(f.TieBreak); err != nil {
			errs = append(errs, ValidationError{
				Field: "formation.tie_break", Value: f.TieBreak,
				Message: "must be empty or one of: prefer-larger, first-seen",
			})
		}
	}
	if _, err := formation.ParseLeftoverPolicy(f.Leftover); err != nil {
		errs = append(errs, ValidationError{
			Field: "formation.leftover", Value: f.Leftover,
			Message: "must be one of: chunked, single",
		})
	}

	return errs
}

func (c *Config) validateScoring() []ValidationError {
	if _, err := c.Scorer(); err != nil {
		return []ValidationError{{
			Field:   "scoring",
			Value:   c.Scoring.Scheme,
			Message: err.Error(),
		}}
	}

	return nil
}

func (c *Config) validateLogging() []ValidationError {
	var errs []ValidationError
	if !slices.Contains(logging.ValidLevels(), strings.ToUpper(strings.TrimSpace(c.Logging.Level))) {
		errs = append(errs, ValidationError{
			Field: "logging.level", Value: c.Logging.Level,
			Message: "must be one of: debug, info, warn, error",
		})
	}
	if !slices.Contains(logging.ValidFormats(), strings.ToLower(c.Logging.Format)) {
		errs = append(errs, ValidationError{
			Field: "logging.format", Value: c.Logging.Format,
			Message: "must be one of: text, json",
		})
	}

	return errs
}

func (c *Config) validateOutput() []ValidationError {
	if !slices.Contains(ValidOutputFormats(), strings.ToLower(c.Output.Format)) {
		return []ValidationError{{
			Field: "output.format", Value: c.Output.Format,
			Message: "must be one of: text, json",
		}}
	}

	return nil
}
