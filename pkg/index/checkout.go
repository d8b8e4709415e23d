package index

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/matzehuels/cratefetch/pkg/errors"
)

// remotesPrefix is where the index branch is tracked inside the mirror.
const remotesPrefix = "refs/remotes/origin/"

// CheckoutName returns the branch the mirror at dir tracks, read from the
// first entry under refs/remotes/origin/. Both a repository with a work tree
// (dir/.git/refs/...) and a bare repository (dir/refs/...) are supported.
//
// Only loose refs are consulted. A mirror whose remote ref lives solely in
// packed-refs reports ErrCodeMissingCheckout.
func CheckoutName(dir string) (string, error) {
	checkoutDir := filepath.Join(dir, ".git", filepath.FromSlash(remotesPrefix))
	bareCheckoutDir := filepath.Join(dir, filepath.FromSlash(remotesPrefix))

	entries, err := os.ReadDir(checkoutDir)
	if err != nil {
		entries, err = os.ReadDir(bareCheckoutDir)
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeMissingCheckout, err, "no registry checkout at %s", checkoutDir)
	}
	if len(entries) == 0 {
		return "", errors.New(errors.ErrCodeMissingCheckout, "no registry checkout at %s", checkoutDir)
	}

	name := entries[0].Name()
	if !utf8.ValidString(name) {
		return "", errors.New(errors.ErrCodeNonUnicodeGitPath, "branch name %q is not valid UTF-8", name)
	}
	return name, nil
}

// RemoteRef returns the fully qualified reference tracking branch.
func RemoteRef(branch string) string {
	return remotesPrefix + branch
}
