package resolve

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cratefetch/pkg/errors"
	"github.com/matzehuels/cratefetch/pkg/index"
	"github.com/matzehuels/cratefetch/pkg/observability"
	"github.com/matzehuels/cratefetch/pkg/registry"
)

// VersionResolver finds the newest usable version of a crate.
type VersionResolver interface {
	LatestDependency(ctx context.Context, name string, allowPrerelease bool, idx registry.Index) (Dependency, error)
}

// Registry resolves versions from the local mirror of a registry index.
// The mirror is read as-is; call index.Synchronizer.Sync first to refresh it.
type Registry struct {
	CargoHome string        // Root of the mirrors, usually ~/.cargo
	Reader    *index.Reader // Defaults to index.NewReader()
	Logger    *log.Logger   // Receives the substitution warning; may be nil
}

// LatestDependency looks name up in the mirror of idx and selects its newest
// version. A fuzzy match is logged as a warning and returned under the name
// the index uses.
//
// Errors:
//   - ErrCodeEmptyCrateName before any I/O
//   - any error from index.Reader.Lookup
//   - ErrCodeNoVersionsAvailable if every version is yanked or filtered out
func (r *Registry) LatestDependency(ctx context.Context, name string, allowPrerelease bool, idx registry.Index) (Dependency, error) {
	if name == "" {
		return Dependency{}, errors.New(errors.ErrCodeEmptyCrateName, "found empty crate name")
	}
	dir, err := idx.CachePath(r.CargoHome)
	if err != nil {
		return Dependency{}, err
	}

	logger := r.logger()
	logger.Debug("looking up crate", "name", name, "index", idx.String(), "path", dir)

	start := time.Now()
	records, err := r.reader().Lookup(name, dir)
	matched := ""
	if len(records) > 0 {
		matched = records[0].Name
	}
	observability.Index().OnLookup(ctx, name, matched, len(records), time.Since(start), err)
	if err != nil {
		return Dependency{}, err
	}

	dep, err := Select(records, allowPrerelease)
	if err != nil {
		return Dependency{}, errors.New(errors.GetCode(err), "crate `%s`: %s", name, errors.UserMessage(err))
	}
	if dep.Substitutes(name) {
		logger.Warnf("Added `%s` instead of `%s`", dep.Name, name)
	}
	logger.Debug("selected version", "name", dep.Name, "version", dep.Version, "candidates", len(records))
	return dep, nil
}

func (r *Registry) reader() *index.Reader {
	if r.Reader == nil {
		return index.NewReader()
	}
	return r.Reader
}

func (r *Registry) logger() *log.Logger {
	if r.Logger == nil {
		return log.New(io.Discard)
	}
	return r.Logger
}

// Simulated answers with fixed, recognizable versions and never touches a
// registry. It backs end-to-end tests of commands that add dependencies.
type Simulated struct{}

// LatestDependency returns:
//   - "<name>--PRERELEASE_VERSION_TEST" when allowPrerelease is set
//   - "0.2.0" for test_breaking and "0.1.1" for test_nonbreaking
//   - "<name>--CURRENT_VERSION_TEST" otherwise
func (Simulated) LatestDependency(_ context.Context, name string, allowPrerelease bool, _ registry.Index) (Dependency, error) {
	var version string
	switch {
	case allowPrerelease:
		version = name + "--PRERELEASE_VERSION_TEST"
	case name == "test_breaking":
		version = "0.2.0"
	case name == "test_nonbreaking":
		version = "0.1.1"
	default:
		version = name + "--CURRENT_VERSION_TEST"
	}
	return Dependency{Name: name, Version: version}, nil
}

var (
	_ VersionResolver = (*Registry)(nil)
	_ VersionResolver = Simulated{}
)
