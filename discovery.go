// File: strata/discovery.go
package strata

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvConfigPath names the environment variable consulted by Load for an
// explicit configuration file path.
const EnvConfigPath = "CONFIG_FILE_PATH"

const defaultConfigPath = "config/config.toml"

// Load builds configuration from the default file locations, in priority
// order:
//
//  1. the file named by CONFIG_FILE_PATH, when set and present
//  2. config/config.toml relative to the working directory
//  3. config/config.toml relative to the executable directory
//
// The discovered file is loaded as required; Load fails with a NotFoundError
// when none of the locations exist.
func Load() (*Config, error) {
	path, err := discoverConfigFile()
	if err != nil {
		return nil, err
	}
	return NewBuilder().AddRequiredFile(path).Build()
}

// LoadPath builds configuration from a single required file, skipping
// discovery entirely.
func LoadPath(path string) (*Config, error) {
	return NewBuilder().AddRequiredFile(path).Build()
}

func discoverConfigFile() (string, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		if fileExists(envPath) {
			return envPath, nil
		}
		fmt.Fprintf(os.Stderr,
			"warning: %s is set to %q but the file does not exist, falling back to default paths\n",
			EnvConfigPath, envPath)
	}

	if fileExists(defaultConfigPath) {
		return defaultConfigPath, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", &NotFoundError{Path: defaultConfigPath}
	}
	fallback := filepath.Join(filepath.Dir(exe), defaultConfigPath)
	if fileExists(fallback) {
		return fallback, nil
	}

	return "", &NotFoundError{Path: fallback}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
