package workspace

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest is the subset of a package.json document the workspace needs.
type Manifest struct {
	Name                 string            `json:"name"`
	Version              string            `json:"version,omitempty"`
	Dependencies         map[string]string `json:"dependencies,omitempty"`
	DevDependencies      map[string]string `json:"devDependencies,omitempty"`
	PeerDependencies     map[string]string `json:"peerDependencies,omitempty"`
	OptionalDependencies map[string]string `json:"optionalDependencies,omitempty"`
	Workspaces           Workspaces        `json:"workspaces,omitempty"`
}

// Sections returns the dependency sections of the manifest in lookup order:
// peer, dev, optional, then direct dependencies.
func (m *Manifest) Sections() []map[string]string {
	return []map[string]string{
		m.PeerDependencies,
		m.DevDependencies,
		m.OptionalDependencies,
		m.Dependencies,
	}
}

// DependsOn reports whether name is declared in any dependency section.
func (m *Manifest) DependsOn(name string) bool {
	for _, section := range m.Sections() {
		if _, ok := section[name]; ok {
			return true
		}
	}
	return false
}

// Workspaces holds the member patterns of a workspace root. package.json
// accepts either a plain array or an object with a "packages" array.
type Workspaces []string

// UnmarshalJSON implements json.Unmarshaler.
func (w *Workspaces) UnmarshalJSON(data []byte) error {
	var patterns []string
	if err := json.Unmarshal(data, &patterns); err == nil {
		*w = patterns
		return nil
	}

	var object struct {
		Packages []string `json:"packages"`
	}
	if err := json.Unmarshal(data, &object); err != nil {
		return fmt.Errorf("workspaces must be an array or an object with packages: %w", err)
	}
	*w = object.Packages
	return nil
}

// Package is a workspace member: its manifest and the absolute directory
// holding it.
type Package struct {
	Manifest *Manifest
	Dir      string
}

// ReadManifest reads and decodes the package.json file at path.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return &m, nil
}
