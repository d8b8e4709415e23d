package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/cratefetch/pkg/errors"
)

func TestDefaultCachePath(t *testing.T) {
	got, err := Default().CachePath("/home/u/.cargo")
	if err != nil {
		t.Fatalf("CachePath: %v", err)
	}
	want := filepath.Join("/home/u/.cargo", "registry", "index", "github.com-1ecc6299db9ec823")
	if got != want {
		t.Errorf("CachePath = %q, want %q", got, want)
	}
}

func TestCachePathDeterministic(t *testing.T) {
	a, _ := FromURL("https://example.com/git/index")
	b, _ := FromURL("https://example.com/git/index/")
	c, _ := FromURL("https://example.com/other/index")

	pa, err := a.CachePath("/cargo")
	if err != nil {
		t.Fatalf("CachePath: %v", err)
	}
	pb, _ := b.CachePath("/cargo")
	pc, _ := c.CachePath("/cargo")

	if pa != pb {
		t.Errorf("trailing slash should not change the mirror: %q vs %q", pa, pb)
	}
	if pa == pc {
		t.Errorf("different URLs should not share a mirror: %q", pa)
	}
	if base := filepath.Base(pa); !strings.HasPrefix(base, "example.com-") || len(base) != len("example.com-")+16 {
		t.Errorf("unexpected ident %q", base)
	}
}

func TestCachePathErrors(t *testing.T) {
	if _, err := (Index{Name: "x"}).CachePath("/cargo"); !errors.Is(err, errors.ErrCodeInvalidRegistry) {
		t.Errorf("expected %s for missing URL, got %v", errors.ErrCodeInvalidRegistry, err)
	}
	if _, err := Default().CachePath(""); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected %s for empty cargo home, got %v", errors.ErrCodeInvalidInput, err)
	}
}

func TestFromURL(t *testing.T) {
	idx, err := FromURL(CratesIOIndexURL)
	if err != nil {
		t.Fatalf("FromURL: %v", err)
	}
	if idx != Default() {
		t.Errorf("crates.io URL should resolve to the default index, got %+v", idx)
	}

	if _, err := FromURL("not a url"); !errors.Is(err, errors.ErrCodeInvalidRegistry) {
		t.Errorf("expected %s, got %v", errors.ErrCodeInvalidRegistry, err)
	}
}

func TestString(t *testing.T) {
	if got := Default().String(); got != CratesIOName {
		t.Errorf("String() = %q, want %q", got, CratesIOName)
	}
	idx := Index{URL: "https://example.com/index"}
	if got := idx.String(); got != idx.URL {
		t.Errorf("String() = %q, want %q", got, idx.URL)
	}
}

func TestResolve(t *testing.T) {
	home := t.TempDir()
	config := `
[registries.internal]
index = "https://git.example.com/index"

[registries.empty]
`
	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}
	legacy := `
[registries.legacy]
index = "ssh://git@example.com/legacy-index"
`
	if err := os.WriteFile(filepath.Join(home, "config"), []byte(legacy), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		req     Req
		want    Index
		wantErr errors.Code
	}{
		{"default", Req{}, Default(), ""},
		{"crates-io by name", Req{Name: "crates-io"}, Default(), ""},
		{"explicit url", Req{URL: "https://example.com/index"}, Index{URL: "https://example.com/index"}, ""},
		{"config.toml", Req{Name: "internal"}, Index{Name: "internal", URL: "https://git.example.com/index"}, ""},
		{"legacy config", Req{Name: "legacy"}, Index{Name: "legacy", URL: "ssh://git@example.com/legacy-index"}, ""},
		{"no index key", Req{Name: "empty"}, Index{}, errors.ErrCodeInvalidRegistry},
		{"unknown", Req{Name: "nope"}, Index{}, errors.ErrCodeInvalidRegistry},
		{"both set", Req{Name: "internal", URL: "https://example.com"}, Index{}, errors.ErrCodeInvalidRegistry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.req, home)
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %s, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveFromEnvironment(t *testing.T) {
	t.Setenv("CARGO_REGISTRIES_MY_REGISTRY_INDEX", "https://env.example.com/index")

	got, err := Resolve(Req{Name: "my-registry"}, t.TempDir())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := Index{Name: "my-registry", URL: "https://env.example.com/index"}
	if got != want {
		t.Errorf("Resolve = %+v, want %+v", got, want)
	}
}

func TestResolveInvalidConfig(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte("[registries\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve(Req{Name: "internal"}, home); !errors.Is(err, errors.ErrCodeInvalidRegistry) {
		t.Errorf("expected %s, got %v", errors.ErrCodeInvalidRegistry, err)
	}
}

func TestDefaultCargoHome(t *testing.T) {
	t.Setenv("CARGO_HOME", "/opt/cargo")
	got, err := DefaultCargoHome()
	if err != nil {
		t.Fatalf("DefaultCargoHome: %v", err)
	}
	if got != "/opt/cargo" {
		t.Errorf("DefaultCargoHome = %q, want /opt/cargo", got)
	}
}
