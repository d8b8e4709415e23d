package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cratefetch/pkg/buildinfo"
	"github.com/matzehuels/cratefetch/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "cratefetch looks up crates in Cargo registry indexes",
		Long: `cratefetch keeps a local mirror of a Cargo git registry index and answers
questions about the crates in it: the newest usable version of a crate, every
published version, or the name a repository's Cargo.toml declares.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(cmd); err != nil {
				return err
			}
			observability.SetIndexHooks(newStatusHooks(cmd.ErrOrStderr(), c.Logger))
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/cratefetch/config.yaml)")
	root.PersistentFlags().String("cargo-home", "", "Cargo home holding the registry mirrors (default $CARGO_HOME or ~/.cargo)")

	// Register all subcommands
	root.AddCommand(c.latestCommand())
	root.AddCommand(c.versionsCommand())
	root.AddCommand(c.updateIndexCommand())
	root.AddCommand(c.nameCommand())
	root.AddCommand(c.completionCommand())

	return root
}
