// File: strata/config_test.go
package strata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serverSection struct {
	Host    string        `toml:"host"`
	Port    int           `toml:"port"`
	Timeout time.Duration `toml:"timeout"`
}

func (serverSection) ConfigKey() string { return "server" }

type validatedServerSection struct {
	Host string `toml:"host" validate:"min=1"`
	Port int    `toml:"port" validate:"min=1024,max=65535"`
}

func (validatedServerSection) ConfigKey() string { return "server" }

func testConfig(t *testing.T) *Config {
	t.Helper()

	cfg, err := NewBuilder().AddTOMLString(`
[server]
host = "localhost"
port = 8080
timeout = "30s"

[log]
level = "info"
`).Build()
	require.NoError(t, err)
	return cfg
}

// TestConfigHandle covers raw lookup on the immutable snapshot
func TestConfigHandle(t *testing.T) {
	cfg := testConfig(t)

	t.Run("GetPresentKey", func(t *testing.T) {
		value, ok := cfg.Get("log")
		require.True(t, ok)
		assert.Equal(t, map[string]any{"level": "info"}, value)
	})

	t.Run("GetAbsentKey", func(t *testing.T) {
		value, ok := cfg.Get("missing")
		assert.False(t, ok)
		assert.Nil(t, value)
	})

	t.Run("KeysAreSorted", func(t *testing.T) {
		assert.Equal(t, []string{"log", "server"}, cfg.Keys())
	})

	t.Run("TableIsDetached", func(t *testing.T) {
		table := cfg.Table()
		table["log"].(map[string]any)["level"] = "debug"

		value, _ := cfg.Get("log")
		assert.Equal(t, "info", value.(map[string]any)["level"])
	})
}

// TestDecode covers untyped section decoding
func TestDecode(t *testing.T) {
	cfg := testConfig(t)

	t.Run("IntoStruct", func(t *testing.T) {
		var server serverSection
		require.NoError(t, cfg.Decode("server", &server))

		assert.Equal(t, "localhost", server.Host)
		assert.Equal(t, 8080, server.Port)
		assert.Equal(t, 30*time.Second, server.Timeout)
	})

	t.Run("IntoMap", func(t *testing.T) {
		target := make(map[string]string)
		require.NoError(t, cfg.Decode("log", &target))
		assert.Equal(t, map[string]string{"level": "info"}, target)
	})

	t.Run("MissingKey", func(t *testing.T) {
		var server serverSection
		err := cfg.Decode("absent", &server)

		var knfErr *KeyNotFoundError
		require.ErrorAs(t, err, &knfErr)
		assert.Equal(t, "absent", knfErr.Key)
	})

	t.Run("NonPointerTarget", func(t *testing.T) {
		var server serverSection
		assert.Error(t, cfg.Decode("server", server))
	})
}

// TestSections covers the typed, key-bound extraction helpers
func TestSections(t *testing.T) {
	cfg := testConfig(t)

	t.Run("Get", func(t *testing.T) {
		server, err := Get[serverSection](cfg)
		require.NoError(t, err)
		assert.Equal(t, "localhost", server.Host)
		assert.Equal(t, 8080, server.Port)
	})

	t.Run("GetMissingSection", func(t *testing.T) {
		_, err := Get[absentSection](cfg)
		var knfErr *KeyNotFoundError
		require.ErrorAs(t, err, &knfErr)
		assert.Equal(t, "cache", knfErr.Key)
	})

	t.Run("MustGetPanicsOnMissing", func(t *testing.T) {
		assert.Panics(t, func() {
			MustGet[absentSection](cfg)
		})
	})

	t.Run("MustGetReturnsSection", func(t *testing.T) {
		server := MustGet[serverSection](cfg)
		assert.Equal(t, 8080, server.Port)
	})

	t.Run("GetOrDefaultZeroOnMissing", func(t *testing.T) {
		section := GetOrDefault[absentSection](cfg)
		assert.Zero(t, section.TTL)
	})

	t.Run("GetOrDefaultPresent", func(t *testing.T) {
		server := GetOrDefault[serverSection](cfg)
		assert.Equal(t, "localhost", server.Host)
	})

	t.Run("GetValidatedPasses", func(t *testing.T) {
		server, err := GetValidated[validatedServerSection](cfg)
		require.NoError(t, err)
		assert.Equal(t, 8080, server.Port)
	})

	t.Run("GetValidatedFails", func(t *testing.T) {
		bad, err := NewBuilder().AddTOMLString(`
[server]
host = "localhost"
port = 80
`).Build()
		require.NoError(t, err)

		_, err = GetValidated[validatedServerSection](bad)
		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "server", valErr.Key)
	})

	t.Run("DeserializationErrorsSurfaceAtExtraction", func(t *testing.T) {
		// A malformed-but-unused section never blocks the build; the failure
		// is reported when the typed section is requested.
		cfg, err := NewBuilder().AddTOMLString(`
[server]
host = "localhost"
port = "not-a-number"
`).Build()
		require.NoError(t, err)

		_, err = Get[serverSection](cfg)
		assert.Error(t, err)
	})
}

type absentSection struct {
	TTL int `toml:"ttl"`
}

func (absentSection) ConfigKey() string { return "cache" }
