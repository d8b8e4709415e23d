package index

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"

	cferrors "github.com/matzehuels/cratefetch/pkg/errors"
	"github.com/matzehuels/cratefetch/pkg/observability"
	"github.com/matzehuels/cratefetch/pkg/registry"
)

// repoLocationVars override which repository git operates on. They are
// removed before running git so a fetch started from inside another
// repository (e.g., a git hook or `git rebase --exec`) still targets the mirror.
var repoLocationVars = []string{
	"GIT_DIR",
	"GIT_WORK_TREE",
	"GIT_INDEX_FILE",
	"GIT_OBJECT_DIRECTORY",
	"GIT_ALTERNATE_OBJECT_DIRECTORIES",
}

// Synchronizer keeps a local mirror of a registry index up to date.
//
// Mirrors are created in-process as bare repositories; updates shell out to
// the git binary so that credential helpers, proxies and SSH configuration
// behave exactly as they do for the user's own git.
type Synchronizer struct {
	// Git is the git executable. Defaults to "git" looked up in PATH.
	Git string

	// InitialBranch, when set, is fetched right after a mirror is created
	// and whenever the mirror does not track a branch yet.
	InitialBranch string
}

// Sync creates the mirror at dir if it does not exist, and otherwise fetches
// the tracked branch from idx. It is safe to call repeatedly.
//
// Errors:
//   - ErrCodeGit if the mirror can't be created or opened
//   - ErrCodeMissingCheckout if the mirror tracks no branch and InitialBranch is empty
//   - ErrCodeIO if git can't be run or exits with a failure
func (s *Synchronizer) Sync(ctx context.Context, idx registry.Index, dir string) error {
	hooks := observability.Index()

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		start := time.Now()
		hooks.OnSyncStart(ctx, observability.ActionInitializing, idx.String())
		err := s.initialize(ctx, idx, dir)
		hooks.OnSyncComplete(ctx, observability.ActionInitializing, idx.String(), time.Since(start), err)
		return err
	}

	if _, err := git.PlainOpen(dir); err != nil {
		return cferrors.Wrap(cferrors.ErrCodeGit, err, "open registry index at %s", dir)
	}

	start := time.Now()
	hooks.OnSyncStart(ctx, observability.ActionUpdating, idx.String())
	err := s.update(ctx, idx, dir)
	hooks.OnSyncComplete(ctx, observability.ActionUpdating, idx.String(), time.Since(start), err)
	return err
}

func (s *Synchronizer) initialize(ctx context.Context, idx registry.Index, dir string) error {
	if err := os.MkdirAll(filepath.Dir(dir), 0o755); err != nil {
		return cferrors.Wrap(cferrors.ErrCodeIO, err, "create %s", filepath.Dir(dir))
	}
	if _, err := git.PlainInit(dir, true); err != nil {
		return cferrors.Wrap(cferrors.ErrCodeGit, err, "initialize registry index at %s", dir)
	}
	if s.InitialBranch == "" {
		return nil
	}
	return s.fetch(ctx, dir, idx.URL, s.InitialBranch)
}

func (s *Synchronizer) update(ctx context.Context, idx registry.Index, dir string) error {
	branch, err := CheckoutName(dir)
	if err != nil {
		if s.InitialBranch == "" || !cferrors.Is(err, cferrors.ErrCodeMissingCheckout) {
			return err
		}
		branch = s.InitialBranch
	}
	return s.fetch(ctx, dir, idx.URL, branch)
}

// fetch runs `git fetch` for branch into refs/remotes/origin/<branch>.
func (s *Synchronizer) fetch(ctx context.Context, dir, url, branch string) error {
	refspec := fmt.Sprintf("refs/heads/%s:%s", branch, RemoteRef(branch))

	cmd := exec.CommandContext(ctx, s.git(),
		"fetch",
		"--tags",           // fetch all tags
		"--force",          // accept force pushes
		"--update-head-ok", // the tracked branch may be checked out
		url,
		refspec,
	)
	cmd.Dir = dir
	cmd.Env = SanitizedEnv(os.Environ())

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return cferrors.Wrap(cferrors.ErrCodeIO, err, "git fetch %s: %s", url, strings.TrimSpace(stderr.String()))
		}
		return cferrors.Wrap(cferrors.ErrCodeIO, err, "run %s", s.git())
	}
	return nil
}

func (s *Synchronizer) git() string {
	if s.Git == "" {
		return "git"
	}
	return s.Git
}

// SanitizedEnv returns environ without the variables that redirect git to a
// different repository.
func SanitizedEnv(environ []string) []string {
	result := make([]string, 0, len(environ))
	for _, e := range environ {
		name, _, _ := strings.Cut(e, "=")
		if slices.Contains(repoLocationVars, name) {
			continue
		}
		result = append(result, e)
	}
	return result
}
