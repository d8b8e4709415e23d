// Package cli implements the cratefetch command-line interface.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/matzehuels/cratefetch/internal/config"
	"github.com/matzehuels/cratefetch/pkg/errors"
	"github.com/matzehuels/cratefetch/pkg/index"
	"github.com/matzehuels/cratefetch/pkg/registry"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "cratefetch"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configFile string
	config     config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig reads the configuration, letting the flags of cmd override it.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	c.config = cfg
	c.Logger.Debug("configuration loaded", "cargo_home", cfg.CargoHome, "git", cfg.Git, "simulate", cfg.Simulate)
	return nil
}

// =============================================================================
// Registry Selection
// =============================================================================

// registryFlags mirror Cargo's --registry and --index options.
type registryFlags struct {
	name string
	url  string
}

func (f *registryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "registry", "", "registry name from Cargo configuration")
	cmd.Flags().StringVar(&f.url, "index", "", "registry index URL")
	cmd.MarkFlagsMutuallyExclusive("registry", "index")
}

func (f *registryFlags) resolve(cargoHome string) (registry.Index, error) {
	return registry.Resolve(registry.Req{Name: f.name, URL: f.url}, cargoHome)
}

// syncIndex brings the mirror of idx up to date and returns its path.
func (c *CLI) syncIndex(ctx context.Context, idx registry.Index) (string, error) {
	dir, err := idx.CachePath(c.config.CargoHome)
	if err != nil {
		return "", err
	}
	s := &index.Synchronizer{Git: c.config.Git, InitialBranch: c.config.InitialBranch}
	if err := s.Sync(ctx, idx, dir); err != nil {
		return "", err
	}
	return dir, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// validateCrateName applies crates.io naming rules to the default registry and
// the generic safety checks to any other index.
func validateCrateName(name string, idx registry.Index) error {
	if idx == registry.Default() {
		return errors.ValidateCratesPackageName(name)
	}
	return errors.ValidatePackageName(name)
}
