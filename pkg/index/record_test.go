package index

import (
	"testing"

	"github.com/matzehuels/cratefetch/pkg/errors"
)

func TestParseSummary(t *testing.T) {
	data := []byte(`{"name":"treexml","vers":"0.3.1","deps":[],"cksum":"abc","features":{},"yanked":true}
{"name":"treexml","vers":"0.3.0","deps":[],"cksum":"def","features":{},"yanked":false}

{"name":"treexml","vers":"0.4.0-alpha.1+build.5","deps":[],"cksum":"ghi","features":{},"yanked":false}
`)

	got, err := ParseSummary(data)
	if err != nil {
		t.Fatalf("ParseSummary: %v", err)
	}
	want := []VersionRecord{
		{Name: "treexml", Version: "0.3.1", Yanked: true},
		{Name: "treexml", Version: "0.3.0", Yanked: false},
		{Name: "treexml", Version: "0.4.0-alpha.1+build.5", Yanked: false},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseSummaryCRLF(t *testing.T) {
	got, err := ParseSummary([]byte("{\"name\":\"a\",\"vers\":\"1.0.0\",\"yanked\":false}\r\n"))
	if err != nil {
		t.Fatalf("ParseSummary: %v", err)
	}
	if len(got) != 1 || got[0].Version != "1.0.0" {
		t.Errorf("unexpected records %+v", got)
	}
}

func TestParseSummaryInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not utf8", "\xff\xfe"},
		{"not json", "name=foo"},
		{"missing name", `{"vers":"1.0.0","yanked":false}`},
		{"missing vers", `{"name":"foo","yanked":false}`},
		{"missing yanked", `{"name":"foo","vers":"1.0.0"}`},
		{"wrong type", `{"name":"foo","vers":"1.0.0","yanked":"no"}`},
		{"bad version", `{"name":"foo","vers":"one","yanked":false}`},
		{"short version", `{"name":"foo","vers":"1.0","yanked":false}`},
		{"prefixed version", `{"name":"foo","vers":"v1.0.0","yanked":false}`},
		{"one bad line", "{\"name\":\"foo\",\"vers\":\"1.0.0\",\"yanked\":false}\n{oops}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSummary([]byte(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidSummaryJSON) {
				t.Errorf("expected %s, got %v", errors.ErrCodeInvalidSummaryJSON, err)
			}
		})
	}
}

func TestVersionRecordPrerelease(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"1.0.0", false},
		{"1.0.0+build", false},
		{"0.6.0-alpha", true},
		{"1.0.0-rc.1+build", true},
	}
	for _, tt := range tests {
		if got := (VersionRecord{Version: tt.version}).Prerelease(); got != tt.want {
			t.Errorf("Prerelease(%q) = %v, want %v", tt.version, got, tt.want)
		}
	}
}
