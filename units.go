// File: strata/units.go
package strata

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// ByteSize is a configuration value holding a human-readable byte quantity
// such as "10MB" or "4KiB". Both the parsed size and the raw string survive
// decoding:
//
//	max_size = "5MB"
type ByteSize struct {
	Bytes uint64
	Raw   string
}

// UnmarshalText implements encoding.TextUnmarshaler so ByteSize fields decode
// from TOML strings through the section decode hook.
func (b *ByteSize) UnmarshalText(text []byte) error {
	raw := string(text)
	parsed, err := humanize.ParseBytes(raw)
	if err != nil {
		return fmt.Errorf("strata: invalid byte size %q: %w", raw, err)
	}
	b.Bytes = parsed
	b.Raw = raw
	return nil
}

// Duration is a configuration value holding a human-readable duration such as
// "30s" or "2m 30s". Spaces between components are tolerated:
//
//	timeout = "2m 30s"
type Duration struct {
	Value time.Duration
	Raw   string
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	raw := string(text)
	parsed, err := time.ParseDuration(strings.ReplaceAll(raw, " ", ""))
	if err != nil {
		return fmt.Errorf("strata: invalid duration %q: %w", raw, err)
	}
	d.Value = parsed
	d.Raw = raw
	return nil
}
