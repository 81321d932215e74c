// File: strata/config.go
package strata

import (
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Config is an immutable snapshot of the merged configuration table. Share it
// by pointer: it is never mutated after Build, so concurrent readers always
// observe a consistent table and holding a handle is O(1) regardless of table
// size. Replacing configuration means building a new handle and swapping the
// pointer, never editing in place.
type Config struct {
	table map[string]any
}

// Get returns the raw value stored at a top-level section key. The second
// return reports whether the key exists. Deserializing the value into a
// concrete type is the caller's concern; see Decode and the generic section
// helpers.
func (c *Config) Get(key string) (any, bool) {
	value, ok := c.table[key]
	return value, ok
}

// Has reports whether a top-level section key exists.
func (c *Config) Has(key string) bool {
	_, ok := c.table[key]
	return ok
}

// Keys returns the top-level section keys in sorted order.
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(c.table))
	for key := range c.table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Table returns a detached copy of the whole merged table. Edits to the copy
// never affect the shared snapshot.
func (c *Config) Table() map[string]any {
	return copyTable(c.table)
}

// Decode deserializes the section at key into target, which must be a
// non-nil pointer. Struct fields map through `toml` tags. A missing key is
// reported as a KeyNotFoundError.
func (c *Config) Decode(key string, target any) error {
	value, ok := c.table[key]
	if !ok {
		return &KeyNotFoundError{Key: key}
	}
	return decodeValue(key, value, target)
}

// decodeValue is the single authoritative decode path; all typed section
// helpers delegate to it.
func decodeValue(key string, value any, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("strata: decode target must be a non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("strata: decoder creation failed: %w", err)
	}

	if err := decoder.Decode(value); err != nil {
		return fmt.Errorf("strata: decode failed for section %q: %w", key, err)
	}

	return nil
}

// decodeHook composes the conversions applied while decoding sections: any
// encoding.TextUnmarshaler implementor (ByteSize, Duration), duration and
// RFC3339 time strings, and comma-separated slices.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		mapstructure.StringToSliceHookFunc(","),
	)
}
