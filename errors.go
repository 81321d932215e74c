// File: strata/errors.go
package strata

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSources is returned by Build when no sources were added. An empty
	// builder is a programming mistake, not a runtime condition to tolerate.
	ErrNoSources = errors.New("strata: no configuration sources configured")

	// ErrBuilderConsumed is returned when Build is called on a builder that
	// has already produced a Config.
	ErrBuilderConsumed = errors.New("strata: builder already consumed by Build")
)

// NotFoundError reports a required configuration file that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("strata: configuration file not found at %s", e.Path)
}

// InterpolationError reports a reference token that could not be resolved and
// had no fallback. Reference holds the environment variable name or file
// path; Err carries the underlying read error for file references and is nil
// for environment references.
type InterpolationError struct {
	Reference string
	Err       error
}

func (e *InterpolationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("strata: failed to read file %q: %v", e.Reference, e.Err)
	}
	return fmt.Sprintf("strata: environment variable %q not found", e.Reference)
}

func (e *InterpolationError) Unwrap() error { return e.Err }

// ParseError reports interpolated text that is not well-formed TOML. Source
// identifies the origin (file path or "inline TOML").
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("strata: failed to parse TOML from %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// KeyNotFoundError reports a typed lookup for a top-level section key that is
// absent from the merged table.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("strata: configuration key %q not found", e.Key)
}

// ValidationError reports a section that deserialized but failed struct-tag
// validation.
type ValidationError struct {
	Key string
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("strata: validation failed for section %q: %v", e.Key, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
