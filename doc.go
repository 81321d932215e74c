// File: strata/doc.go

// Package strata loads layered TOML configuration for service processes.
//
// Configuration is assembled from an ordered list of sources (files or inline
// TOML), each of which is read, interpolated, and parsed, then deep-merged
// into one immutable table. Later sources override earlier ones at the leaf
// level while nested tables combine key by key.
//
// Before parsing, every source passes through two interpolation phases:
// environment variables first (${VAR} and ${VAR:default}), then file contents
// (file:/path and file:/path:default). A ${VAR} or file:/path reference with
// no fallback fails the whole build when it cannot be resolved.
//
// Quick Start:
//
//	type ServerConfig struct {
//	    Host string `toml:"host"`
//	    Port int    `toml:"port"`
//	}
//
//	func (ServerConfig) ConfigKey() string { return "server" }
//
//	cfg, err := strata.NewBuilder().
//	    AddFile("config/defaults.toml").
//	    AddRequiredFile("config/config.toml").
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	server, err := strata.Get[ServerConfig](cfg)
//
// Sources layer in addition order (last added wins):
//
//	defaults.toml  ->  config.toml  ->  inline overrides
//
// Thread Safety:
// A built *Config is an immutable snapshot and safe to share across
// goroutines without copying. Rebuilding produces a new handle; existing
// holders keep observing the snapshot they were given.
package strata
