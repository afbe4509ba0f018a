// Package store persists the project map at ~/.proj/projects.json
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ProjectMap maps project names to absolute directory paths.
// Names are case-sensitive and unique; assigning to an existing
// name replaces its path.
type ProjectMap map[string]string

// projDir returns the path to ~/.proj/, creating it if needed
func projDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	dir := filepath.Join(home, ".proj")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create ~/.proj directory: %w", err)
	}

	return dir, nil
}

// DefaultPath returns the path to ~/.proj/projects.json
func DefaultPath() (string, error) {
	dir, err := projDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "projects.json"), nil
}

// Load reads the project map from the given path.
// Returns an empty map if the file doesn't exist.
func Load(path string) (ProjectMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ProjectMap{}, nil
		}
		return nil, fmt.Errorf("read projects: %w", err)
	}

	var m ProjectMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse projects: %w", err)
	}
	if m == nil {
		m = ProjectMap{}
	}

	return m, nil
}

// Save writes the project map to the given path atomically.
func Save(path string, m ProjectMap) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal projects: %w", err)
	}

	// Write to temp file first for atomic operation
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write projects: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // Clean up temp file on failure
		return fmt.Errorf("save projects: %w", err)
	}

	return nil
}

// Remove deletes the store file. Used by reset.
func Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove projects: %w", err)
	}
	return nil
}

// Names returns all project names in ascending order.
func (m ProjectMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Match returns the sub-map of entries whose name contains query as a
// case-sensitive substring. Paths are copied unchanged.
func (m ProjectMap) Match(query string) ProjectMap {
	matches := ProjectMap{}
	for name, path := range m {
		if strings.Contains(name, query) {
			matches[name] = path
		}
	}
	return matches
}
