package cli

import (
	"github.com/spf13/cobra"
)

// updateIndexCommand creates the update-index command.
func (c *CLI) updateIndexCommand() *cobra.Command {
	var reg registryFlags

	cmd := &cobra.Command{
		Use:   "update-index",
		Short: "Create or update the local mirror of a registry index",
		Long: `Create or update the local mirror of a registry index.

The mirror lives below $CARGO_HOME/registry/index/. A missing mirror is created
as a bare git repository; an existing one is updated with "git fetch".

Examples:
  cratefetch update-index                          # crates.io
  cratefetch update-index --registry my-registry   # named in Cargo config
  cratefetch update-index --index https://example.com/git/index`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := reg.resolve(c.config.CargoHome)
			if err != nil {
				return err
			}

			dir, err := c.syncIndex(cmd.Context(), idx)
			if err != nil {
				return err
			}
			printSuccess(cmd.ErrOrStderr(), "Synchronized '%s' index", idx)
			printDetail(cmd.ErrOrStderr(), "Mirror: %s", dir)
			return nil
		},
	}

	reg.register(cmd)
	return cmd
}
