// File: strata/source.go
package strata

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// source is one origin of configuration data. Sources are created by the
// Builder, never mutated after creation, and consumed exactly once by Build.
type source interface {
	// load returns the source's parsed table. An optional file source that
	// does not exist returns (nil, nil) and contributes nothing.
	load(log zerolog.Logger) (map[string]any, error)
}

// fileSource reads a TOML file from disk.
type fileSource struct {
	path     string
	required bool
}

func (s fileSource) load(log zerolog.Logger) (map[string]any, error) {
	raw, err := os.ReadFile(s.path)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist) && !s.required:
		log.Warn().Str("path", s.path).Msg("config file not found (optional), skipping")
		return nil, nil
	case errors.Is(err, os.ErrNotExist):
		log.Error().Str("path", s.path).Msg("config file not found (required)")
		return nil, &NotFoundError{Path: s.path}
	default:
		return nil, fmt.Errorf("strata: failed to read config file %q: %w", s.path, err)
	}

	return parseSource(string(raw), s.path, log)
}

// inlineSource carries literal TOML text supplied by the caller.
type inlineSource struct {
	content string
}

func (s inlineSource) load(log zerolog.Logger) (map[string]any, error) {
	return parseSource(s.content, "inline TOML", log)
}

// parseSource interpolates raw text and parses the result into a table.
// Malformed TOML is always fatal, even for an optional source: a missing file
// and a broken file are different failure classes.
func parseSource(raw, origin string, log zerolog.Logger) (map[string]any, error) {
	expanded, err := Interpolate(raw)
	if err != nil {
		log.Error().Str("source", origin).Err(err).Msg("interpolation failed")
		return nil, err
	}

	table := make(map[string]any)
	if err := toml.Unmarshal([]byte(expanded), &table); err != nil {
		log.Error().Str("source", origin).Err(err).Msg("failed to parse TOML")
		return nil, &ParseError{Source: origin, Err: err}
	}

	return table, nil
}
