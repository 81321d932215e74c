// File: strata/builder.go
package strata

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Builder accumulates configuration sources in override order: sources added
// later override earlier ones during the merge. A Builder is single-use;
// Build consumes the accumulated sources and a second call fails with
// ErrBuilderConsumed.
type Builder struct {
	sources []source
	log     zerolog.Logger
	built   bool
}

// NewBuilder creates an empty configuration builder.
func NewBuilder() *Builder {
	return &Builder{log: zerolog.Nop()}
}

// WithLogger routes build diagnostics (skipped optional files, interpolation
// and parse failures) to the given logger. The default logger discards
// everything.
func (b *Builder) WithLogger(log zerolog.Logger) *Builder {
	b.log = log
	return b
}

// AddFile adds an optional file source. A missing file is skipped with a
// warning; a present but malformed file still fails the build.
func (b *Builder) AddFile(path string) *Builder {
	b.sources = append(b.sources, fileSource{path: path})
	return b
}

// AddRequiredFile adds a file source that must exist. A missing file fails
// the build with a NotFoundError.
func (b *Builder) AddRequiredFile(path string) *Builder {
	b.sources = append(b.sources, fileSource{path: path, required: true})
	return b
}

// AddTOMLString adds literal TOML text as a source. The text is interpolated
// exactly like file contents.
func (b *Builder) AddTOMLString(content string) *Builder {
	b.sources = append(b.sources, inlineSource{content: content})
	return b
}

// AddDotenvFile loads environment variables from the named file following the
// dotenv convention, making them visible to later ${VAR} interpolation.
// Best effort: a missing or unreadable file is ignored.
func (b *Builder) AddDotenvFile(path string) *Builder {
	_ = godotenv.Load(path)
	return b
}

// AddDotenv loads environment variables from ".env" in the working directory.
// Best effort, like AddDotenvFile.
func (b *Builder) AddDotenv() *Builder {
	_ = godotenv.Load()
	return b
}

// Build loads every source in addition order and folds the resulting tables
// into one immutable Config. Any failure aborts the whole build: no partial
// or degraded handle is ever returned.
func (b *Builder) Build() (*Config, error) {
	if b.built {
		return nil, ErrBuilderConsumed
	}
	if len(b.sources) == 0 {
		return nil, ErrNoSources
	}
	b.built = true

	merged := make(map[string]any)
	for _, src := range b.sources {
		table, err := src.load(b.log)
		if err != nil {
			return nil, err
		}
		if table == nil {
			continue
		}
		mergeTables(merged, table)
	}

	return &Config{table: merged}, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("strata: config build failed: %v", err))
	}
	return cfg
}
