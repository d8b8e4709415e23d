// Package config loads cratefetch settings from defaults, an optional YAML
// file, the environment and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/matzehuels/cratefetch/pkg/registry"
)

// SimulateEnv marks a simulated test run when set to any value.
const SimulateEnv = "CARGO_IS_TEST"

// Config holds all configuration options for cratefetch.
type Config struct {
	CargoHome       string `mapstructure:"cargo_home"`       // Root of the registry mirrors
	Git             string `mapstructure:"git"`              // git executable used to fetch
	InitialBranch   string `mapstructure:"initial_branch"`   // Fetched into a mirror that tracks no branch yet
	AllowPrerelease bool   `mapstructure:"allow_prerelease"` // Default for --allow-prerelease
	Simulate        bool   `mapstructure:"simulate"`         // Answer with fixed test versions
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	home, err := registry.DefaultCargoHome()
	if err != nil {
		home = ".cargo"
	}
	return Config{
		CargoHome:     home,
		Git:           "git",
		InitialBranch: registry.DefaultBranch,
	}
}

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"cargo-home":       "cargo_home",
	"allow-prerelease": "allow_prerelease",
}

// Load reads the configuration. An empty file uses DefaultPath when it
// exists; an explicitly named file must exist. flags may be nil.
func Load(file string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault("cargo_home", defaults.CargoHome)
	v.SetDefault("git", defaults.Git)
	v.SetDefault("initial_branch", defaults.InitialBranch)
	v.SetDefault("allow_prerelease", defaults.AllowPrerelease)
	v.SetDefault("simulate", defaults.Simulate)

	_ = v.BindEnv("cargo_home", "CARGO_HOME")
	_ = v.BindEnv("git", "CRATEFETCH_GIT")
	_ = v.BindEnv("initial_branch", "CRATEFETCH_INITIAL_BRANCH")

	if flags != nil {
		for flag, key := range flagKeys {
			if f := flags.Lookup(flag); f != nil {
				_ = v.BindPFlag(key, f)
			}
		}
	}

	if file == "" {
		if p, err := DefaultPath(); err == nil {
			if _, err := os.Stat(p); err == nil {
				file = p
			}
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if _, ok := os.LookupEnv(SimulateEnv); ok {
		cfg.Simulate = true
	}
	if cfg.CargoHome == "" {
		return Config{}, errors.New("cargo_home must not be empty")
	}
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/cratefetch/config.yaml, falling back
// to ~/.config/cratefetch/config.yaml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "cratefetch", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cratefetch", "config.yaml"), nil
}
