package manifest

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/cratefetch/pkg/errors"
)

const sample = `
[package]
name = "cargo-edit"
version = "0.3.0"

[dependencies]
serde = "1.0"
toml_edit = { version = "0.1", optional = true }
json = { version = "1", package = "serde_json" }

[dev-dependencies]
pretty_assertions = "0.5"
serde = "1.0"

[build-dependencies]
cc = "1"
`

func TestParse(t *testing.T) {
	m, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	name, err := m.PackageName()
	if err != nil {
		t.Fatalf("PackageName: %v", err)
	}
	if name != "cargo-edit" {
		t.Errorf("PackageName = %q, want cargo-edit", name)
	}
	if m.Package.Version != "0.3.0" {
		t.Errorf("Version = %q, want 0.3.0", m.Package.Version)
	}

	want := []string{"cc", "pretty_assertions", "serde", "serde_json", "toml_edit"}
	if got := m.DependencyNames(); !slices.Equal(got, want) {
		t.Errorf("DependencyNames = %v, want %v", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("[package\nname ="); !errors.Is(err, errors.ErrCodeParseManifest) {
		t.Errorf("expected %s for bad TOML, got %v", errors.ErrCodeParseManifest, err)
	}

	m, err := Parse("[workspace]\nmembers = [\"a\"]\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := m.PackageName(); !errors.Is(err, errors.ErrCodeParseManifest) {
		t.Errorf("expected %s for missing name, got %v", errors.ErrCodeParseManifest, err)
	}
}

func TestOpenAndFind(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, FileName)
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "src", "bin")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	found, err := Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if found != path {
		t.Errorf("Find = %q, want %q", found, path)
	}

	m, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if m.Path != path || m.Package.Name != "cargo-edit" {
		t.Errorf("unexpected manifest %+v", m)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(nested); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	m, err = Open("")
	if err != nil {
		t.Fatalf("Open(\"\"): %v", err)
	}
	if m.Package.Name != "cargo-edit" {
		t.Errorf("Open(\"\") name = %q", m.Package.Name)
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), FileName)); !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("expected %s, got %v", errors.ErrCodeIO, err)
	}
}
