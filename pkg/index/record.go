package index

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"golang.org/x/mod/semver"

	"github.com/matzehuels/cratefetch/pkg/errors"
)

// VersionRecord is one published version of a crate, as stored on a single
// line of its index entry.
type VersionRecord struct {
	Name    string // Crate name as published (casing and separators may differ from the query)
	Version string // Semantic version without a "v" prefix (e.g., "1.0.193")
	Yanked  bool   // Whether the version was withdrawn from resolution
}

// Prerelease reports whether the version carries a pre-release tag.
func (r VersionRecord) Prerelease() bool {
	return semver.Prerelease(Canonical(r.Version)) != ""
}

// Canonical converts a registry version ("1.2.3") into the "v"-prefixed form
// the semver package compares.
func Canonical(version string) string {
	return "v" + version
}

// recordLine is the wire form of an index line. Pointer fields make the three
// keys required; every other key on the line is ignored.
type recordLine struct {
	Name   *string `json:"name"`
	Vers   *string `json:"vers"`
	Yanked *bool   `json:"yanked"`
}

// ParseSummary decodes an index entry: UTF-8 text holding one JSON object per
// published version. Empty lines are skipped; no ordering is assumed.
//
// Any line that is not valid JSON, lacks name/vers/yanked, or carries a
// version that is not a full semantic version fails the whole entry with
// ErrCodeInvalidSummaryJSON.
func ParseSummary(data []byte) ([]VersionRecord, error) {
	if !utf8.Valid(data) {
		return nil, errors.New(errors.ErrCodeInvalidSummaryJSON, "registry index entry is not valid UTF-8")
	}

	var records []VersionRecord
	for n, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSuffix(line, []byte("\r"))
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSummaryJSON, err, "line %d", n+1)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseLine(line []byte) (VersionRecord, error) {
	var raw recordLine
	if err := json.Unmarshal(line, &raw); err != nil {
		return VersionRecord{}, err
	}
	switch {
	case raw.Name == nil:
		return VersionRecord{}, errors.New(errors.ErrCodeInvalidSummaryJSON, "missing field `name`")
	case raw.Vers == nil:
		return VersionRecord{}, errors.New(errors.ErrCodeInvalidSummaryJSON, "missing field `vers`")
	case raw.Yanked == nil:
		return VersionRecord{}, errors.New(errors.ErrCodeInvalidSummaryJSON, "missing field `yanked`")
	}
	if !isFullVersion(*raw.Vers) {
		return VersionRecord{}, errors.New(errors.ErrCodeInvalidSummaryJSON, "invalid version %q", *raw.Vers)
	}
	return VersionRecord{Name: *raw.Name, Version: *raw.Vers, Yanked: *raw.Yanked}, nil
}

// isFullVersion accepts MAJOR.MINOR.PATCH with optional pre-release and build
// metadata. The semver package also accepts "v1" and "v1.2" shorthands,
// which registries never publish.
func isFullVersion(v string) bool {
	c := Canonical(v)
	if !semver.IsValid(c) {
		return false
	}
	core := semver.Canonical(c)
	if pre := semver.Prerelease(core); pre != "" {
		core = core[:len(core)-len(pre)]
	}
	shorthand := v
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		shorthand = v[:i]
	}
	return "v"+shorthand == core
}
