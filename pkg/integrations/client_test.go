package integrations

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/cratefetch/pkg/observability"
)

func TestNewClient(t *testing.T) {
	headers := map[string]string{"User-Agent": "cratefetch"}
	client := NewClient(headers)

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.http == nil {
		t.Fatal("NewClient() http client is nil")
	}
	if client.http.Timeout != httpTimeout {
		t.Errorf("timeout = %v, want %v", client.http.Timeout, httpTimeout)
	}
	if client.headers["User-Agent"] != "cratefetch" {
		t.Error("NewClient() headers not set correctly")
	}
}

func TestNewHTTPClientUsesEnvironmentProxy(t *testing.T) {
	t.Setenv("HTTPS_PROXY", "http://proxy.example.com:3128")

	transport, ok := NewHTTPClient().Transport.(*http.Transport)
	if !ok {
		t.Fatal("expected *http.Transport")
	}
	req, _ := http.NewRequest(http.MethodGet, "https://raw.githubusercontent.com/a/b/master/Cargo.toml", nil)
	proxy, err := transport.Proxy(req)
	if err != nil {
		t.Fatalf("Proxy: %v", err)
	}
	if proxy == nil || proxy.Host != "proxy.example.com:3128" {
		t.Errorf("proxy = %v, want proxy.example.com:3128", proxy)
	}
}

func TestClientGetText(t *testing.T) {
	var gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		gotHeader = r.Header.Get("X-Default")
		w.Write([]byte("[package]\nname = \"demo\"\n"))
	}))
	defer server.Close()

	client := NewClient(map[string]string{"X-Default": "default"}).WithHTTPClient(server.Client())
	body, err := client.GetText(context.Background(), server.URL+"/Cargo.toml")
	if err != nil {
		t.Fatalf("GetText() error: %v", err)
	}
	if body != "[package]\nname = \"demo\"\n" {
		t.Errorf("GetText() = %q", body)
	}
	if gotHeader != "default" {
		t.Errorf("default header = %q, want %q", gotHeader, "default")
	}
}

func TestClientGetTextStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"not found", http.StatusNotFound, ErrNotFound},
		{"server error", http.StatusInternalServerError, ErrNetwork},
		{"forbidden", http.StatusForbidden, ErrNetwork},
		{"no content", http.StatusNoContent, ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewClient(nil).WithHTTPClient(server.Client())
			_, err := client.GetText(context.Background(), server.URL)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if calls != 1 {
				t.Errorf("server called %d times, want exactly 1 (no retry)", calls)
			}
		})
	}
}

func TestClientGetTextNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(nil).GetText(context.Background(), url)
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("expected ErrNetwork, got %v", err)
	}
}

type recordingHTTPHooks struct {
	mu        sync.Mutex
	requests  []string
	responses []int
	errors    int
}

func (h *recordingHTTPHooks) OnRequest(_ context.Context, method, host, path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requests = append(h.requests, method+" "+path)
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.responses = append(h.responses, status)
}

func (h *recordingHTTPHooks) OnError(context.Context, string, string, string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors++
}

func TestClientReportsHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, _ = NewClient(nil).WithHTTPClient(server.Client()).GetText(context.Background(), server.URL+"/u/r/master/Cargo.toml")

	if len(hooks.requests) != 1 || hooks.requests[0] != "GET /u/r/master/Cargo.toml" {
		t.Errorf("requests = %v", hooks.requests)
	}
	if len(hooks.responses) != 1 || hooks.responses[0] != http.StatusNotFound {
		t.Errorf("responses = %v", hooks.responses)
	}
	if hooks.errors != 0 {
		t.Errorf("errors = %d, want 0", hooks.errors)
	}
}
