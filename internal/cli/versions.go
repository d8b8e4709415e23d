package cli

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/matzehuels/cratefetch/pkg/errors"
	"github.com/matzehuels/cratefetch/pkg/index"
)

// versionsCommand creates the versions command.
func (c *CLI) versionsCommand() *cobra.Command {
	var (
		reg      registryFlags
		noUpdate bool
	)

	cmd := &cobra.Command{
		Use:   "versions <crate>",
		Short: "List every published version of a crate",
		Long: `List every published version of a crate, oldest first, including yanked
versions and prereleases.

Examples:
  cratefetch versions serde
  cratefetch versions parking-lot --no-update`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			idx, err := reg.resolve(c.config.CargoHome)
			if err != nil {
				return err
			}
			if err := validateCrateName(name, idx); err != nil {
				return err
			}

			dir, err := idx.CachePath(c.config.CargoHome)
			if err != nil {
				return err
			}
			if !noUpdate {
				if dir, err = c.syncIndex(cmd.Context(), idx); err != nil {
					return err
				}
			}

			records, err := index.NewReader().Lookup(name, dir)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				return errors.New(errors.ErrCodeNoVersionsAvailable, "crate `%s` has no published versions", name)
			}
			if records[0].Name != name {
				loggerFromContext(cmd.Context()).Warnf("Showing `%s` instead of `%s`", records[0].Name, name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderVersions(records))
			return nil
		},
	}

	reg.register(cmd)
	cmd.Flags().BoolVar(&noUpdate, "no-update", false, "use the local mirror without fetching")
	return cmd
}

// renderVersions renders records as a table sorted by version precedence.
func renderVersions(records []index.VersionRecord) string {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b index.VersionRecord) int {
		return semver.Compare(index.Canonical(a.Version), index.Canonical(b.Version))
	})

	rows := make([][]string, 0, len(sorted))
	for _, r := range sorted {
		rows = append(rows, []string{r.Name, r.Version, yesNo(r.Prerelease()), yesNo(r.Yanked)})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Crate", "Version", "Prerelease", "Yanked").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			if sorted[row].Yanked {
				return base.Inherit(styleYanked)
			}
			if col == 1 {
				return base.Inherit(StyleValue)
			}
			return base.Inherit(StyleDim)
		}).
		String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
