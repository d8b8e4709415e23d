// Package index reads crate entries from a local mirror of a Cargo git
// registry index and keeps that mirror up to date.
//
// # Layout
//
// Every crate has one file in the index tree, placed by [PathFor]. Each line
// of the file is a JSON object describing one published version:
//
//	{"name":"serde","vers":"1.0.0","deps":[],"cksum":"...","features":{},"yanked":false}
//
// Only name, vers and yanked are read; other fields are ignored.
//
// # Lookup
//
// Crate names on crates.io treat "-" and "_" as equivalent, so [Reader.Lookup]
// tries every spelling from [FuzzyNames], exact spelling first:
//
//	r := index.NewReader()
//	records, err := r.Lookup("parking-lot", dir)
//	// records[0].Name == "parking_lot"
//
// # Synchronization
//
// [Synchronizer.Sync] creates a bare mirror on first use and fetches the
// tracked branch with the git binary afterwards. Progress is reported through
// the observability index hooks.
package index
