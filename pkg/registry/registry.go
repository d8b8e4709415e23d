package registry

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/cratefetch/pkg/errors"
)

const (
	// CratesIOName is the name Cargo gives the default registry.
	CratesIOName = "crates-io"

	// CratesIOIndexURL is the git index of crates.io.
	CratesIOIndexURL = "https://github.com/rust-lang/crates.io-index"

	// DefaultBranch is the branch git registry indexes publish on.
	DefaultBranch = "master"

	// cratesIOIdent is the directory Cargo itself mirrors the crates.io git
	// index into, so an existing Cargo checkout is reused.
	cratesIOIdent = "github.com-1ecc6299db9ec823"
)

// Index identifies a git registry index.
//
// The zero value is not valid; use Default, FromURL or Resolve.
type Index struct {
	Name string // Registry name ("crates-io", a Cargo config name, or empty for an ad-hoc URL)
	URL  string // Git URL of the index repository
}

// Default returns the crates.io index.
func Default() Index {
	return Index{Name: CratesIOName, URL: CratesIOIndexURL}
}

// FromURL returns an unnamed index served from rawURL.
func FromURL(rawURL string) (Index, error) {
	rawURL = normalizeURL(rawURL)
	if err := errors.ValidateURL(rawURL); err != nil {
		return Index{}, errors.Wrap(errors.ErrCodeInvalidRegistry, err, "invalid index URL %q", rawURL)
	}
	if rawURL == CratesIOIndexURL {
		return Default(), nil
	}
	return Index{URL: rawURL}, nil
}

// String returns the registry name, or its URL when it has none.
func (i Index) String() string {
	if i.Name != "" {
		return i.Name
	}
	return i.URL
}

// Ident returns the directory name the index is mirrored under:
// "<host>-<16 hex digits>", stable for a given URL.
func (i Index) Ident() string {
	if i.URL == CratesIOIndexURL {
		return cratesIOIdent
	}
	host := "local"
	if u, err := url.Parse(i.URL); err == nil && u.Hostname() != "" {
		host = u.Hostname()
	}
	return host + "-" + shortHash(i.URL)
}

// CachePath returns where the index is mirrored below cargoHome:
// <cargoHome>/registry/index/<ident>.
func (i Index) CachePath(cargoHome string) (string, error) {
	if i.URL == "" {
		return "", errors.New(errors.ErrCodeInvalidRegistry, "registry %q has no index URL", i.Name)
	}
	if cargoHome == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "cargo home is not set")
	}
	return filepath.Join(cargoHome, "registry", "index", i.Ident()), nil
}

// DefaultCargoHome returns $CARGO_HOME, falling back to ~/.cargo.
func DefaultCargoHome() (string, error) {
	if home := os.Getenv("CARGO_HOME"); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cargo"), nil
}

// shortHash returns the first 16 hex digits of the SHA-256 of s.
func shortHash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:16]
}

// normalizeURL trims a trailing slash so equivalent spellings share a mirror.
func normalizeURL(raw string) string {
	return strings.TrimSuffix(strings.TrimSpace(raw), "/")
}
