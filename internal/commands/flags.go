// Package commands contains the CLI subcommands.
package commands

import (
	"os"
	"path/filepath"

	"github.com/reelmood/reelmood/internal/core/config"
	"github.com/reelmood/reelmood/internal/core/predict"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Endpoint   string
	Theme      string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Client talks to the sentiment backend
	Client *predict.Client
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "reelmood", "config.yml")
}
