package github

import (
	"context"
	"fmt"
	"regexp"

	"github.com/matzehuels/cratefetch/pkg/integrations"
)

// RawBaseURL serves raw file contents of public GitHub repositories.
const RawBaseURL = "https://raw.githubusercontent.com"

var repoURLPattern = regexp.MustCompile(`^https://github.com/([-_0-9a-zA-Z]+)/([-_0-9a-zA-Z]+)(/|.git)?$`)

// Client downloads files from GitHub repositories.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a Client reading from RawBaseURL.
func NewClient(hc *integrations.Client) *Client {
	return &Client{Client: hc, baseURL: RawBaseURL}
}

// WithBaseURL returns a copy of c that reads from baseURL instead of RawBaseURL.
func (c *Client) WithBaseURL(baseURL string) *Client {
	return &Client{Client: c.Client, baseURL: baseURL}
}

// ParseRepoURL extracts owner and repository from a URL of the form
// https://github.com/<owner>/<repo>, optionally followed by "/" or ".git".
func ParseRepoURL(url string) (owner, repo string, ok bool) {
	m := repoURLPattern.FindStringSubmatch(url)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// ManifestURL returns where the Cargo.toml on the master branch of
// owner/repo is served below baseURL.
func ManifestURL(baseURL, owner, repo string) string {
	return fmt.Sprintf("%s/%s/%s/master/Cargo.toml", baseURL, owner, repo)
}

// FetchManifest downloads the Cargo.toml on the master branch of owner/repo.
func (c *Client) FetchManifest(ctx context.Context, owner, repo string) (string, error) {
	return c.GetText(ctx, ManifestURL(c.baseURL, owner, repo))
}
