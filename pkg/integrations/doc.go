// Package integrations provides the HTTP client used to reach source hosting
// services.
//
// # Overview
//
// Each hosting service has its own subpackage that knows how to recognize a
// repository URL and where the raw Cargo.toml of that repository is served:
//
//   - [github]: github.com repositories
//   - [gitlab]: gitlab.com repositories
//
// # Client
//
// [Client.GetText] issues a single GET with a 10 second timeout and proxy
// settings from the environment. There is no retry and no response cache:
//
//	client := integrations.NewClient(nil)
//	body, err := client.GetText(ctx, github.ManifestURL(github.RawBaseURL, "owner", "repo"))
//
// Non-200 responses wrap [ErrNotFound] (404) or [ErrNetwork].
//
// [github]: github.com/matzehuels/cratefetch/pkg/integrations/github
// [gitlab]: github.com/matzehuels/cratefetch/pkg/integrations/gitlab
package integrations
