// Package manifest reads Cargo.toml files.
package manifest

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cratefetch/pkg/errors"
)

// FileName is the manifest file Cargo looks for in a package directory.
const FileName = "Cargo.toml"

// Manifest is the subset of a Cargo manifest cratefetch reads.
type Manifest struct {
	Path string `toml:"-"` // Where the manifest was read from; empty when parsed from text

	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
	Dependencies      map[string]any `toml:"dependencies"`
	DevDependencies   map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
}

// Parse decodes a manifest from its TOML text.
func Parse(text string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.Decode(text, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParseManifest, err, "unable to parse Cargo.toml")
	}
	return &m, nil
}

// Open reads the manifest at path. An empty path searches for Cargo.toml in
// the working directory and its parents.
func Open(path string) (*Manifest, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeIO, err, "determine working directory")
		}
		if path, err = Find(wd); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}
	m, err := Parse(string(data))
	if err != nil {
		return nil, err
	}
	m.Path = path
	return m, nil
}

// Find returns the Cargo.toml in dir or the closest parent directory.
func Find(dir string) (string, error) {
	for d := dir; ; {
		p := filepath.Join(d, FileName)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
		parent := filepath.Dir(d)
		if parent == d {
			return "", errors.New(errors.ErrCodeIO, "could not find %s in %s or any parent directory", FileName, dir)
		}
		d = parent
	}
}

// PackageName returns package.name.
func (m *Manifest) PackageName() (string, error) {
	if m.Package.Name == "" {
		return "", errors.New(errors.ErrCodeParseManifest, "Cargo.toml missing package.name field")
	}
	return m.Package.Name, nil
}

// DependencyNames returns the keys of every dependency table, sorted and
// without duplicates. Renamed dependencies are reported under their
// package name.
func (m *Manifest) DependencyNames() []string {
	var names []string
	for _, table := range []map[string]any{m.Dependencies, m.DevDependencies, m.BuildDependencies} {
		for key, spec := range table {
			names = append(names, packageName(key, spec))
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}

func packageName(key string, spec any) string {
	if t, ok := spec.(map[string]any); ok {
		if pkg, ok := t["package"].(string); ok && pkg != "" {
			return pkg
		}
	}
	return key
}
