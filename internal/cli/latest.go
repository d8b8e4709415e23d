package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cratefetch/pkg/index"
	"github.com/matzehuels/cratefetch/pkg/manifest"
	"github.com/matzehuels/cratefetch/pkg/registry"
	"github.com/matzehuels/cratefetch/pkg/resolve"
)

type latestOpts struct {
	reg          registryFlags
	noUpdate     bool
	manifestPath string
}

// latestCommand creates the latest command.
func (c *CLI) latestCommand() *cobra.Command {
	var opts latestOpts

	cmd := &cobra.Command{
		Use:   "latest [crate...]",
		Short: "Print the newest version of crates",
		Long: `Print the newest version of each crate, one Cargo.toml line per crate.

Yanked versions are never chosen and prereleases only with --allow-prerelease.
"-" and "_" are interchangeable in crate names; when the index spells a crate
differently than requested, a warning names the substitution.

Without crate arguments the dependencies of a Cargo.toml are resolved.

Examples:
  cratefetch latest serde tokio
  cratefetch latest --allow-prerelease clap
  cratefetch latest --manifest-path ./Cargo.toml --no-update`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLatest(cmd, args, &opts)
		},
	}

	opts.reg.register(cmd)
	cmd.Flags().Bool("allow-prerelease", false, "consider prerelease versions")
	cmd.Flags().BoolVar(&opts.noUpdate, "no-update", false, "use the local mirror without fetching")
	cmd.Flags().StringVar(&opts.manifestPath, "manifest-path", "", "Cargo.toml to read dependencies from when no crates are given")

	return cmd
}

func (c *CLI) runLatest(cmd *cobra.Command, names []string, opts *latestOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if len(names) == 0 {
		m, err := manifest.Open(opts.manifestPath)
		if err != nil {
			return err
		}
		names = m.DependencyNames()
		if len(names) == 0 {
			printInfo(cmd.ErrOrStderr(), "%s has no dependencies", m.Path)
			return nil
		}
		logger.Debug("resolving manifest dependencies", "manifest", m.Path, "count", len(names))
	}

	idx, err := opts.reg.resolve(c.config.CargoHome)
	if err != nil {
		return err
	}
	resolver, err := c.versionResolver(ctx, idx, names, opts.noUpdate)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	for _, name := range names {
		dep, err := resolver.LatestDependency(ctx, name, c.config.AllowPrerelease, idx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), dep.String())
	}
	prog.done(fmt.Sprintf("Resolved %d crates from '%s' index", len(names), idx))
	return nil
}

// versionResolver returns the resolver for this run. Simulated runs never
// touch the index; real runs validate names and refresh the mirror first.
func (c *CLI) versionResolver(ctx context.Context, idx registry.Index, names []string, noUpdate bool) (resolve.VersionResolver, error) {
	if c.config.Simulate {
		return resolve.Simulated{}, nil
	}
	for _, name := range names {
		if err := validateCrateName(name, idx); err != nil {
			return nil, err
		}
	}
	if !noUpdate {
		if _, err := c.syncIndex(ctx, idx); err != nil {
			return nil, err
		}
	}
	return &resolve.Registry{
		CargoHome: c.config.CargoHome,
		Reader:    index.NewReader(),
		Logger:    loggerFromContext(ctx),
	}, nil
}
