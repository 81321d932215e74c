// File: strata/interpolate.go
package strata

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Token patterns, compiled once. NAME follows shell identifier rules; file
// paths and defaults stop at colons, quotes, whitespace, and closing brackets
// so tokens can sit inside TOML string values. The fallback forms must be
// scanned before their strict counterparts: the strict patterns would match a
// prefix of a token that carries a default.
var (
	envFallbackRe  = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*):([^}]*)\}`)
	envStrictRe    = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)
	fileFallbackRe = regexp.MustCompile("file:([^:\"'\\s]+):([^:\\s\"'`\\])]+)")
	fileStrictRe   = regexp.MustCompile("file:([^:\\s\"'`\\])]+)")
)

// Interpolate resolves external references in raw configuration text before
// TOML parsing. Environment expansion runs first, over the whole input; file
// expansion then runs over its result. An environment value may therefore
// itself contain a file: token, but not the other way around.
//
// Bare $NAME tokens are not a reference syntax and pass through unchanged.
//
// The first unresolvable reference without a fallback aborts the whole
// interpolation; no partially substituted text is ever returned.
func Interpolate(content string) (string, error) {
	expanded, err := interpolateEnv(content)
	if err != nil {
		return "", err
	}
	return interpolateFiles(expanded)
}

func interpolateEnv(content string) (string, error) {
	result := content

	// ${VAR:default} never fails; an empty default is still a default.
	for _, m := range envFallbackRe.FindAllStringSubmatch(content, -1) {
		replacement, ok := os.LookupEnv(m[1])
		if !ok {
			replacement = m[2]
		}
		result = strings.ReplaceAll(result, m[0], replacement)
	}

	// ${VAR} is strict: a missing variable aborts the whole load.
	snapshot := result
	for _, m := range envStrictRe.FindAllStringSubmatch(snapshot, -1) {
		value, ok := os.LookupEnv(m[1])
		if !ok {
			return "", &InterpolationError{Reference: m[1]}
		}
		result = strings.ReplaceAll(result, m[0], value)
	}

	return result, nil
}

func interpolateFiles(content string) (string, error) {
	result := content

	// file:PATH:DEFAULT substitutes the default on any read failure.
	for _, m := range fileFallbackRe.FindAllStringSubmatch(content, -1) {
		replacement := m[2]
		if data, err := os.ReadFile(m[1]); err == nil {
			replacement = escapeTOMLString(string(data))
		}
		result = strings.ReplaceAll(result, m[0], replacement)
	}

	// file:PATH is strict: a read failure aborts the whole load.
	snapshot := result
	for _, m := range fileStrictRe.FindAllStringSubmatch(snapshot, -1) {
		data, err := os.ReadFile(m[1])
		if err != nil {
			return "", &InterpolationError{Reference: m[1], Err: err}
		}
		result = strings.ReplaceAll(result, m[0], escapeTOMLString(string(data)))
	}

	return result, nil
}

// escapeTOMLString escapes s so it is safe to embed inside a TOML basic
// (double-quoted) string literal.
func escapeTOMLString(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}

	return b.String()
}
