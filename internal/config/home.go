package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnvVar overrides the configuration directory.
const HomeEnvVar = "DIFFERENT_HOME"

// GetHome returns the directory holding config.yaml.
// Priority order:
//  1. DIFFERENT_HOME environment variable (if set)
//  2. .different under the current working directory
//
// The directory is not created; a missing directory means defaults.
func GetHome() (string, error) {
	if home := os.Getenv(HomeEnvVar); home != "" {
		return home, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return filepath.Join(cwd, ".different"), nil
}

// LoadDefault loads config.yaml from GetHome.
func LoadDefault() (*Config, error) {
	home, err := GetHome()
	if err != nil {
		return nil, err
	}
	return LoadConfig(filepath.Join(home, "config.yaml"))
}
