package index

import (
	"path"
	"strings"
)

// Store is the narrow view of a registry index repository the Reader needs.
type Store interface {
	// Tree resolves a fully qualified reference (e.g., "refs/remotes/origin/master")
	// and peels it to the tree of the commit it points at.
	Tree(ref string) (Tree, error)
}

// Tree is a read-only snapshot of the index files at one commit.
type Tree interface {
	// Blob returns the content of the file at path. ok is false when nothing
	// exists there; err is reserved for failures reading an existing file.
	Blob(path string) (data []byte, ok bool, err error)
}

// MemStore is an in-memory Store keyed by reference name.
// It backs tests and tools that work on an index without a git mirror.
type MemStore map[string]MemTree

// Tree implements Store.
func (s MemStore) Tree(ref string) (Tree, error) {
	t, ok := s[ref]
	if !ok {
		return nil, errNoReference(ref)
	}
	return t, nil
}

// MemTree maps slash-separated file paths to their content.
type MemTree map[string][]byte

// Blob implements Tree.
func (t MemTree) Blob(p string) ([]byte, bool, error) {
	data, ok := t[strings.TrimPrefix(path.Clean(p), "/")]
	return data, ok, nil
}

// Add stores the version lines for a crate at its derived index path.
func (t MemTree) Add(name string, lines ...string) MemTree {
	t[PathFor(name)] = []byte(strings.Join(lines, "\n") + "\n")
	return t
}
