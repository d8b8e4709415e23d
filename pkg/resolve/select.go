package resolve

import (
	"golang.org/x/mod/semver"

	"github.com/matzehuels/cratefetch/pkg/errors"
	"github.com/matzehuels/cratefetch/pkg/index"
)

// Select picks the highest version among records.
//
// Yanked records are never selected. Prereleases are only considered when
// allowPrerelease is set; at equal major.minor.patch a release outranks any
// prerelease. When two records compare equal the later one wins, which is not
// part of the contract.
//
// Errors:
//   - ErrCodeNoVersionsAvailable if every record was filtered out
func Select(records []index.VersionRecord, allowPrerelease bool) (Dependency, error) {
	var (
		best  index.VersionRecord
		found bool
	)
	for _, r := range records {
		if r.Yanked || (!allowPrerelease && r.Prerelease()) {
			continue
		}
		if !found || compare(r.Version, best.Version) >= 0 {
			best, found = r, true
		}
	}
	if !found {
		return Dependency{}, errors.New(errors.ErrCodeNoVersionsAvailable, "no available versions exist")
	}
	return Dependency{Name: best.Name, Version: best.Version}, nil
}

func compare(a, b string) int {
	return semver.Compare(index.Canonical(a), index.Canonical(b))
}
