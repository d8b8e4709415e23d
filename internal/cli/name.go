package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cratefetch/pkg/integrations"
	"github.com/matzehuels/cratefetch/pkg/resolve"
)

// nameCommand creates the name command.
func (c *CLI) nameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "name <repository-url|path>",
		Short: "Print the crate name declared by a repository's Cargo.toml",
		Long: `Print the package.name declared by a Cargo.toml.

GitHub and GitLab repository URLs are read from the master branch over HTTPS;
anything else is treated as a local directory containing Cargo.toml.

Examples:
  cratefetch name https://github.com/killercup/cargo-edit
  cratefetch name https://gitlab.com/owner/repo.git
  cratefetch name ./vendor/my-crate`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := resolve.NewNameResolver(integrations.NewClient(map[string]string{"User-Agent": appName}))
			name, err := n.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("resolved crate name", "target", args[0], "name", name)
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}
