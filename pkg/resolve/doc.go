// Package resolve turns a crate name into a concrete dependency.
//
// # Version Resolution
//
// [Registry] reads a crate's records from a registry index mirror and
// [Select] keeps the newest one that is neither yanked nor, unless allowed, a
// prerelease:
//
//	r := &resolve.Registry{CargoHome: home, Logger: logger}
//	dep, err := r.LatestDependency(ctx, "serde", false, registry.Default())
//	fmt.Println(dep) // serde = "1.0.210"
//
// [Simulated] implements the same [VersionResolver] interface with fixed
// answers for end-to-end tests.
//
// # Crate Names
//
// [NameResolver] reads package.name from the Cargo.toml of a GitHub or GitLab
// repository, or of a local directory.
package resolve
