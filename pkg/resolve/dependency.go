package resolve

// Dependency is a crate pinned to the version selected for it.
type Dependency struct {
	Name    string // Name as spelled in the registry index
	Version string // Semantic version without a "v" prefix
}

// Substitutes reports whether d was found under a different spelling than
// requested (e.g. "parking_lot" for "parking-lot").
func (d Dependency) Substitutes(requested string) bool {
	return d.Name != requested
}

// String renders d the way it appears in a Cargo manifest.
func (d Dependency) String() string {
	return d.Name + ` = "` + d.Version + `"`
}
