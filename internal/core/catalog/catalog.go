// Package catalog loads registry manifests and expands bundle entries into
// the concrete skills and workflows they name.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrPathEscapes is returned for an item path that leads outside the
// registry root.
var ErrPathEscapes = errors.New("item path escapes the registry")

// Kind is the type of a catalog entry.
type Kind string

const (
	KindSkill    Kind = "skill"
	KindWorkflow Kind = "workflow"
	KindBundle   Kind = "bundle"
)

// Item is a single entry in a registry manifest.
type Item struct {
	Name        string   `json:"name"`
	Path        string   `json:"path,omitempty"`
	Kind        Kind     `json:"type"`
	Description string   `json:"description,omitempty"`
	Includes    []string `json:"includes,omitempty"` // only meaningful for bundles
	Version     string   `json:"version,omitempty"`
}

// IsBundle reports whether the item is a composite entry.
func (i Item) IsBundle() bool { return i.Kind == KindBundle }

// Catalog is the ordered list of entries read from one manifest. It is not
// modified after loading.
type Catalog struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Items       []Item `json:"items"`

	// Root is the directory item paths are relative to.
	Root string `json:"-"`
	// File is the manifest path it was read from.
	File string `json:"-"`
}

// Find returns the first item with the given name. Duplicate names are not
// rejected at load time, so later duplicates are unreachable by name.
func (c *Catalog) Find(name string) (Item, bool) {
	for _, it := range c.Items {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

// Select returns the items matching names, in catalog order, and the names
// that matched nothing.
func (c *Catalog) Select(names []string) (found []Item, unknown []string) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	seen := make(map[string]bool, len(names))
	for _, it := range c.Items {
		if want[it.Name] && !seen[it.Name] {
			found = append(found, it)
			seen[it.Name] = true
		}
	}
	for _, n := range names {
		if !seen[n] {
			unknown = append(unknown, n)
			seen[n] = true
		}
	}
	return found, unknown
}

// ItemPath returns where it lives on disk. The path must stay inside Root.
func (c *Catalog) ItemPath(it Item) (string, error) {
	root := filepath.Clean(c.Root)
	p := filepath.Join(root, filepath.FromSlash(it.Path))
	if p != root && !strings.HasPrefix(p, root+string(os.PathSeparator)) {
		return "", fmt.Errorf("%q: %w", it.Path, ErrPathEscapes)
	}
	return p, nil
}
