package rules

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Tables bundles every rule table
type Tables struct {
	Progression *Progression
	Catalog     *Catalog
	Defaults    *Defaults
}

var (
	loadOnce sync.Once
	loaded   *Tables
	loadErr  error
)

// Load decodes the embedded tables. The result is shared and must be
// treated as read-only.
func Load() (*Tables, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(
			mustRead("data/progression.yaml"),
			mustRead("data/catalog.yaml"),
			mustRead("data/defaults.yaml"),
		)
	})
	return loaded, loadErr
}

// MustLoad is Load for program start-up
func MustLoad() *Tables {
	t, err := Load()
	if err != nil {
		panic(fmt.Sprintf("rules: %v", err))
	}
	return t
}

func mustRead(name string) []byte {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("rules: embedded %s missing: %v", name, err))
	}
	return data
}

// Parse decodes and validates the three YAML documents
func Parse(progression, catalog, defaults []byte) (*Tables, error) {
	t := &Tables{
		Progression: &Progression{},
		Catalog:     &Catalog{},
		Defaults:    &Defaults{},
	}

	if err := yaml.Unmarshal(progression, t.Progression); err != nil {
		return nil, fmt.Errorf("decode progression: %w", err)
	}
	if err := t.Progression.validate(); err != nil {
		return nil, fmt.Errorf("progression: %w", err)
	}

	if err := yaml.Unmarshal(catalog, t.Catalog); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	t.Catalog.stamp()
	if err := t.Catalog.validate(); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	if err := yaml.Unmarshal(defaults, t.Defaults); err != nil {
		return nil, fmt.Errorf("decode defaults: %w", err)
	}
	for _, g := range t.Defaults.Gear {
		if g.CatalogKey == "" {
			continue
		}
		if _, ok := t.Catalog.Lookup(g.CatalogKey); !ok {
			return nil, fmt.Errorf("default gear %q references unknown catalog key %q", g.Name, g.CatalogKey)
		}
	}

	return t, nil
}
