package resolve

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/matzehuels/cratefetch/pkg/errors"
	"github.com/matzehuels/cratefetch/pkg/integrations"
	"github.com/matzehuels/cratefetch/pkg/integrations/github"
	"github.com/matzehuels/cratefetch/pkg/integrations/gitlab"
	"github.com/matzehuels/cratefetch/pkg/manifest"
)

// NameResolver finds the crate name declared by a repository's Cargo.toml.
type NameResolver struct {
	GitHub *github.Client
	GitLab *gitlab.Client
}

// NewNameResolver returns a NameResolver that reaches both hosts through hc.
func NewNameResolver(hc *integrations.Client) *NameResolver {
	return &NameResolver{
		GitHub: github.NewClient(hc),
		GitLab: gitlab.NewClient(hc),
	}
}

// Resolve dispatches on the form of target: GitHub and GitLab repository URLs
// are fetched remotely, anything else is treated as a local directory.
func (n *NameResolver) Resolve(ctx context.Context, target string) (string, error) {
	switch {
	case strings.HasPrefix(target, "https://github.com"):
		return n.FromGitHub(ctx, target)
	case strings.HasPrefix(target, "https://gitlab.com"):
		return n.FromGitLab(ctx, target)
	default:
		return n.FromPath(target)
	}
}

// FromGitHub reads package.name from Cargo.toml on the master branch of the
// GitHub repository at repoURL.
func (n *NameResolver) FromGitHub(ctx context.Context, repoURL string) (string, error) {
	owner, repo, ok := github.ParseRepoURL(repoURL)
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidRepoURL, "unable to parse git repo URL: %s", repoURL)
	}
	text, err := n.GitHub.FetchManifest(ctx, owner, repo)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFetch, err, "unable to fetch Cargo.toml of %s/%s", owner, repo)
	}
	return nameFromText(text)
}

// FromGitLab is FromGitHub for gitlab.com repositories.
func (n *NameResolver) FromGitLab(ctx context.Context, repoURL string) (string, error) {
	owner, repo, ok := gitlab.ParseRepoURL(repoURL)
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidRepoURL, "unable to parse git repo URL: %s", repoURL)
	}
	text, err := n.GitLab.FetchManifest(ctx, owner, repo)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFetch, err, "unable to fetch Cargo.toml of %s/%s", owner, repo)
	}
	return nameFromText(text)
}

// FromPath reads package.name from <dir>/Cargo.toml without any network access.
func (n *NameResolver) FromPath(dir string) (string, error) {
	m, err := manifest.Open(filepath.Join(dir, manifest.FileName))
	if err != nil {
		return "", err
	}
	return m.PackageName()
}

func nameFromText(text string) (string, error) {
	m, err := manifest.Parse(text)
	if err != nil {
		return "", err
	}
	return m.PackageName()
}
