package garden

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultRegistryPath is the conventional location for the garden registry.
const DefaultRegistryPath = "gardens.toml"

// ErrDuplicateID indicates two registry entries share an ID.
var ErrDuplicateID = errors.New("duplicate garden ID")

// Registry is the on-disk catalog of registered gardens.
type Registry struct {
	Gardens []Garden `toml:"gardens"`
}

// LoadRegistry reads the garden registry from path. A missing file is
// not an error; it yields an empty registry so a fresh checkout works.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Registry{}, nil
		}
		return nil, fmt.Errorf("garden: reading %s: %w", path, err)
	}

	var reg Registry
	if err := toml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("garden: parsing %s: %w", path, err)
	}

	seen := make(map[string]bool, len(reg.Gardens))
	for _, g := range reg.Gardens {
		if seen[g.ID] {
			return nil, fmt.Errorf("garden: %w: %q", ErrDuplicateID, g.ID)
		}
		seen[g.ID] = true
	}
	return &reg, nil
}

// SaveRegistry writes the registry to path, creating parent directories
// as needed.
func SaveRegistry(path string, reg *Registry) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("garden: creating directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(reg)
	if err != nil {
		return fmt.Errorf("garden: marshaling registry: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("garden: writing %s: %w", path, err)
	}
	return nil
}

// Find returns the garden with the given ID.
func (r *Registry) Find(id string) (Garden, bool) {
	for _, g := range r.Gardens {
		if g.ID == id {
			return g, true
		}
	}
	return Garden{}, false
}
