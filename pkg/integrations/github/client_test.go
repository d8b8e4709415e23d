package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matzehuels/cratefetch/pkg/integrations"
)

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		url       string
		wantOwner string
		wantRepo  string
		wantOK    bool
	}{
		{"https://github.com/killercup/cargo-edit", "killercup", "cargo-edit", true},
		{"https://github.com/killercup/cargo-edit/", "killercup", "cargo-edit", true},
		{"https://github.com/killercup/cargo-edit.git", "killercup", "cargo-edit", true},
		{"https://github.com/rust_lang/regex_2", "rust_lang", "regex_2", true},
		{"http://github.com/killercup/cargo-edit", "", "", false},
		{"https://GitHub.com/killercup/cargo-edit", "", "", false},
		{"https://github.com/killercup", "", "", false},
		{"https://github.com/killercup/cargo-edit/tree/master", "", "", false},
		{"https://github.com/killercup/cargo.edit", "", "", false},
		{"https://gitlab.com/killercup/cargo-edit", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			owner, repo, ok := ParseRepoURL(tt.url)
			if ok != tt.wantOK || owner != tt.wantOwner || repo != tt.wantRepo {
				t.Errorf("ParseRepoURL(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.url, owner, repo, ok, tt.wantOwner, tt.wantRepo, tt.wantOK)
			}
		})
	}
}

func TestManifestURL(t *testing.T) {
	got := ManifestURL(RawBaseURL, "killercup", "cargo-edit")
	want := "https://raw.githubusercontent.com/killercup/cargo-edit/master/Cargo.toml"
	if got != want {
		t.Errorf("ManifestURL = %q, want %q", got, want)
	}
}

func TestFetchManifest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/killercup/cargo-edit/master/Cargo.toml" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("[package]\nname = \"cargo-edit\"\n"))
	}))
	defer server.Close()

	hc := integrations.NewClient(nil).WithHTTPClient(server.Client())
	client := NewClient(hc).WithBaseURL(server.URL)

	text, err := client.FetchManifest(context.Background(), "killercup", "cargo-edit")
	if err != nil {
		t.Fatalf("FetchManifest: %v", err)
	}
	if text != "[package]\nname = \"cargo-edit\"\n" {
		t.Errorf("FetchManifest = %q", text)
	}
}
