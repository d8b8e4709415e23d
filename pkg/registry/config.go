package registry

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cratefetch/pkg/errors"
)

// Req selects a registry the way Cargo's --registry and --index flags do.
// At most one field should be set; an empty Req selects crates.io.
type Req struct {
	Name string // Registry name from Cargo configuration
	URL  string // Explicit index URL
}

// Resolve turns a request into an Index. Named registries are looked up in
// the CARGO_REGISTRIES_<NAME>_INDEX environment variable first, then in
// <cargoHome>/config.toml and the legacy <cargoHome>/config.
func Resolve(req Req, cargoHome string) (Index, error) {
	switch {
	case req.Name != "" && req.URL != "":
		return Index{}, errors.New(errors.ErrCodeInvalidRegistry, "registry name and index URL are mutually exclusive")
	case req.URL != "":
		return FromURL(req.URL)
	case req.Name == "" || req.Name == CratesIOName:
		return Default(), nil
	}

	if u := os.Getenv(registryEnvKey(req.Name)); u != "" {
		idx, err := FromURL(u)
		if err != nil {
			return Index{}, err
		}
		idx.Name = req.Name
		return idx, nil
	}

	for _, file := range []string{"config.toml", "config"} {
		u, ok, err := indexFromConfig(filepath.Join(cargoHome, file), req.Name)
		if err != nil {
			return Index{}, err
		}
		if ok {
			idx, err := FromURL(u)
			if err != nil {
				return Index{}, err
			}
			idx.Name = req.Name
			return idx, nil
		}
	}
	return Index{}, errors.New(errors.ErrCodeInvalidRegistry, "no index found for registry: `%s`", req.Name)
}

type cargoConfig struct {
	Registries map[string]struct {
		Index string `toml:"index"`
	} `toml:"registries"`
}

func indexFromConfig(path, name string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(errors.ErrCodeIO, err, "read %s", path)
	}

	var cfg cargoConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return "", false, errors.Wrap(errors.ErrCodeInvalidRegistry, err, "parse %s", path)
	}
	reg, ok := cfg.Registries[name]
	if !ok || reg.Index == "" {
		return "", false, nil
	}
	return reg.Index, true, nil
}

func registryEnvKey(name string) string {
	return "CARGO_REGISTRIES_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_")) + "_INDEX"
}
