// Package github reads Cargo manifests from GitHub repositories.
//
// # Usage
//
//	owner, repo, ok := github.ParseRepoURL("https://github.com/killercup/cargo-edit")
//	if !ok {
//	    return errors.New("not a GitHub repository")
//	}
//
//	client := github.NewClient(integrations.NewClient(nil))
//	text, err := client.FetchManifest(ctx, owner, repo)
//
// Only https://github.com/<owner>/<repo> URLs are recognized. Owner and
// repository may contain ASCII letters, digits, "-" and "_"; a trailing "/" or
// ".git" is accepted.
package github
