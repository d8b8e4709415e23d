// Package registry identifies Cargo git registry indexes and where they are
// mirrored on disk.
//
// # Overview
//
// An [Index] names a registry and the git URL of its index repository. The
// default is crates.io; other registries come from an explicit URL or from a
// name declared in Cargo configuration:
//
//	# $CARGO_HOME/config.toml
//	[registries.my-registry]
//	index = "https://example.com/git/index"
//
// # Mirror Location
//
// [Index.CachePath] is deterministic for a given index URL:
//
//	<cargo home>/registry/index/<host>-<hash>
//
// The crates.io index maps to the directory Cargo uses for its own git
// mirror (github.com-1ecc6299db9ec823), so an existing Cargo checkout is
// read in place.
//
// # Usage
//
//	home, _ := registry.DefaultCargoHome()
//	idx, err := registry.Resolve(registry.Req{Name: "my-registry"}, home)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dir, _ := idx.CachePath(home)
package registry
