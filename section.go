// File: strata/section.go
package strata

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Section binds a configuration struct to its top-level table key. The key is
// fixed per type, so call sites never spell the section name:
//
//	type DatabaseConfig struct {
//	    Host string `toml:"host"`
//	    Port int    `toml:"port"`
//	}
//
//	func (DatabaseConfig) ConfigKey() string { return "database" }
//
// Implement ConfigKey on the value type, not a pointer, so the zero value
// carries the key.
type Section interface {
	ConfigKey() string
}

// Get extracts and deserializes the section for T from the merged table.
// A missing section is reported as a KeyNotFoundError; decode failures are
// reported here, at extraction time, never at build time.
func Get[T Section](c *Config) (T, error) {
	var out T
	key := out.ConfigKey()

	value, ok := c.table[key]
	if !ok {
		return out, &KeyNotFoundError{Key: key}
	}

	if err := decodeValue(key, value, &out); err != nil {
		var zero T
		return zero, err
	}

	return out, nil
}

// MustGet is like Get but panics when the section is missing or malformed.
func MustGet[T Section](c *Config) T {
	out, err := Get[T](c)
	if err != nil {
		panic(fmt.Sprintf("strata: failed to load configuration for key %q: %v", out.ConfigKey(), err))
	}
	return out
}

// GetOrDefault returns the section for T, or T's zero value when the section
// is missing or fails to decode.
func GetOrDefault[T Section](c *Config) T {
	out, err := Get[T](c)
	if err != nil {
		var zero T
		return zero
	}
	return out
}

// sectionValidator is shared across calls; validator.Validate caches struct
// metadata and is safe for concurrent use.
var sectionValidator = validator.New(validator.WithRequiredStructEnabled())

// GetValidated extracts the section for T and runs `validate` struct-tag
// validation on the result. A validation failure is reported as a
// ValidationError wrapping the validator diagnostics.
func GetValidated[T Section](c *Config) (T, error) {
	out, err := Get[T](c)
	if err != nil {
		return out, err
	}

	if err := sectionValidator.Struct(out); err != nil {
		var zero T
		return zero, &ValidationError{Key: out.ConfigKey(), Err: err}
	}

	return out, nil
}
