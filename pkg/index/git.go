package index

import (
	"errors"
	"io"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	cferrors "github.com/matzehuels/cratefetch/pkg/errors"
)

// GitStore serves index trees from a local git mirror (bare or with a work tree).
type GitStore struct {
	repo *git.Repository
}

// OpenGit opens the git mirror at dir.
func OpenGit(dir string) (*GitStore, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil, cferrors.Wrap(cferrors.ErrCodeGit, err, "open registry index at %s", dir)
	}
	return &GitStore{repo: repo}, nil
}

// Tree implements Store.
func (s *GitStore) Tree(ref string) (Tree, error) {
	r, err := s.repo.Reference(plumbing.ReferenceName(ref), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, errNoReference(ref)
		}
		return nil, cferrors.Wrap(cferrors.ErrCodeGit, err, "resolve %s", ref)
	}
	commit, err := s.repo.CommitObject(r.Hash())
	if err != nil {
		return nil, cferrors.Wrap(cferrors.ErrCodeGit, err, "peel %s to commit", ref)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, cferrors.Wrap(cferrors.ErrCodeGit, err, "peel %s to tree", ref)
	}
	return gitTree{tree}, nil
}

type gitTree struct {
	tree *object.Tree
}

func (t gitTree) Blob(path string) ([]byte, bool, error) {
	f, err := t.tree.File(path)
	if err != nil {
		// Missing files, missing directories and paths that cross a blob all
		// mean the crate is not stored here.
		return nil, false, nil
	}
	r, err := f.Reader()
	if err != nil {
		return nil, false, cferrors.Wrap(cferrors.ErrCodeGit, err, "read blob %s", path)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, false, cferrors.Wrap(cferrors.ErrCodeGit, err, "read blob %s", path)
	}
	return data, true, nil
}

func errNoReference(ref string) error {
	return cferrors.New(cferrors.ErrCodeGit, "reference %s not found in registry index", ref)
}
