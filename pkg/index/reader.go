package index

import (
	"github.com/matzehuels/cratefetch/pkg/errors"
)

// Reader locates and parses crate entries in a synchronized index mirror.
//
// The zero value is not usable; create readers with NewReader, or set both
// hooks to read from something other than a git mirror.
type Reader struct {
	// Open returns the Store for the mirror at dir.
	Open func(dir string) (Store, error)
	// Branch returns the branch the mirror at dir tracks.
	Branch func(dir string) (string, error)
}

// NewReader returns a Reader backed by the git mirror on disk.
func NewReader() *Reader {
	return &Reader{
		Open:   func(dir string) (Store, error) { return OpenGit(dir) },
		Branch: CheckoutName,
	}
}

// Lookup returns every version record of name from the mirror at dir.
//
// Spellings from FuzzyNames are tried in order (exact name first) and the
// first one present in the index wins, so the returned records may carry a
// name that differs from the query in case or separators.
//
// Errors:
//   - ErrCodeMissingCheckout / ErrCodeNonUnicodeGitPath if the tracked branch can't be determined
//   - ErrCodeGit if the mirror or its branch can't be read
//   - ErrCodeNoCrate if no spelling is present
//   - ErrCodeInvalidSummaryJSON if the entry is malformed
func (r *Reader) Lookup(name, dir string) ([]VersionRecord, error) {
	if name == "" {
		return nil, errors.New(errors.ErrCodeEmptyCrateName, "found empty crate name")
	}
	branch, err := r.Branch(dir)
	if err != nil {
		return nil, err
	}
	store, err := r.Open(dir)
	if err != nil {
		return nil, err
	}
	tree, err := store.Tree(RemoteRef(branch))
	if err != nil {
		return nil, err
	}
	return LookupTree(tree, name)
}

// LookupTree is the tree-level part of Lookup.
func LookupTree(tree Tree, name string) ([]VersionRecord, error) {
	for _, candidate := range FuzzyNames(name) {
		data, ok, err := tree.Blob(PathFor(candidate))
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		return ParseSummary(data)
	}
	return nil, errors.New(errors.ErrCodeNoCrate, "the crate `%s` could not be found in registry index", name)
}
