// Package pkg holds the cratefetch libraries.
//
// # Overview
//
// cratefetch answers one question for a Cargo project: what is the newest
// acceptable version of a crate? It reads the registry's git index directly,
// the same flat-file database Cargo mirrors under $CARGO_HOME.
//
//	[registry]      which index, and where its mirror lives on disk
//	     ↓
//	[index]         synchronize the mirror, locate and parse an index entry
//	     ↓
//	[resolve]       pick the newest non-yanked version
//	     ↓
//	name = "1.2.3"
//
// Crate names can also be recovered from a project's Cargo.toml, locally
// through [manifest] or remotely through the GitHub and GitLab clients in
// [integrations].
//
// # Supporting Packages
//
// [errors] carries the error codes every package returns. [observability]
// lets the CLI render synchronization progress without the libraries
// writing to the terminal. [buildinfo] holds version metadata set at link
// time.
//
// # Quick Start
//
//	home, _ := registry.DefaultCargoHome()
//	idx := registry.Default()
//	dir, _ := idx.CachePath(home)
//
//	sync := &index.Synchronizer{InitialBranch: registry.DefaultBranch}
//	if err := sync.Sync(ctx, idx, dir); err != nil {
//	    return err
//	}
//
//	r := &resolve.Registry{CargoHome: home}
//	dep, err := r.LatestDependency(ctx, "serde", false, idx)
//	fmt.Println(dep) // serde = "1.0.219"
//
// [registry]: https://pkg.go.dev/github.com/matzehuels/cratefetch/pkg/registry
// [index]: https://pkg.go.dev/github.com/matzehuels/cratefetch/pkg/index
// [resolve]: https://pkg.go.dev/github.com/matzehuels/cratefetch/pkg/resolve
// [manifest]: https://pkg.go.dev/github.com/matzehuels/cratefetch/pkg/manifest
// [integrations]: https://pkg.go.dev/github.com/matzehuels/cratefetch/pkg/integrations
// [errors]: https://pkg.go.dev/github.com/matzehuels/cratefetch/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/cratefetch/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/cratefetch/pkg/buildinfo
package pkg
