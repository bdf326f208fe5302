// Package logging wraps log/slog for groupformer.
//
// A Logger writes either JSON or logfmt-style text records. Child loggers
// created with With or WithSession carry their attributes into every record.
// Libraries default to NopLogger so that nothing is written unless the
// caller opts in.
package logging
