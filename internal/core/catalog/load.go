package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// ManifestFiles lists recognized manifest names in lookup order.
var ManifestFiles = []string{"registry.json", "registry.yaml", "registry.yml"}

// FindManifest returns the path of the first manifest present in dir.
func FindManifest(fsys afero.Fs, dir string) (string, bool) {
	for _, name := range ManifestFiles {
		p := filepath.Join(dir, name)
		info, err := fsys.Stat(p)
		if err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

// HasManifest reports whether dir contains a registry manifest.
func HasManifest(fsys afero.Fs, dir string) bool {
	_, ok := FindManifest(fsys, dir)
	return ok
}

// Load reads and validates the manifest in dir. Returns ErrNoManifest if
// there is none.
func Load(fsys afero.Fs, dir string) (*Catalog, error) {
	path, ok := FindManifest(fsys, dir)
	if !ok {
		return nil, fmt.Errorf("%w in %s", ErrNoManifest, dir)
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w in %s", ErrNoManifest, dir)
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	cat, err := Parse(path, data)
	if err != nil {
		return nil, err
	}
	cat.Root = dir
	return cat, nil
}

// Parse decodes manifest bytes. The file name selects the format: ".yaml" and
// ".yml" are YAML, anything else is JSON with comments and trailing commas
// allowed.
func Parse(file string, data []byte) (*Catalog, error) {
	std, err := toJSON(file, data)
	if err != nil {
		return nil, &ValidationError{File: file, Issues: []Issue{{Message: err.Error()}}}
	}

	issues, err := Validate(std)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", file, err)
	}
	if len(issues) > 0 {
		return nil, &ValidationError{File: file, Issues: issues}
	}

	var cat Catalog
	if err := json.Unmarshal(std, &cat); err != nil {
		return nil, &ValidationError{File: file, Issues: []Issue{{Message: err.Error()}}}
	}
	if issues := validateVersions(cat.Items); len(issues) > 0 {
		return nil, &ValidationError{File: file, Issues: issues}
	}

	cat.File = file
	return &cat, nil
}

// toJSON converts manifest bytes of either format to standard JSON.
func toJSON(file string, data []byte) ([]byte, error) {
	switch filepath.Ext(file) {
	case ".yaml", ".yml":
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
		out, err := json.Marshal(normalizeYAML(raw))
		if err != nil {
			return nil, fmt.Errorf("converting to JSON: %w", err)
		}
		return out, nil
	default:
		out, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
		return out, nil
	}
}

// normalizeYAML converts YAML-decoded values to JSON-compatible types.
// Non-string map keys are formatted as strings.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, v := range val {
			m[k] = normalizeYAML(v)
		}
		return m
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, v := range val {
			m[fmt.Sprint(k)] = normalizeYAML(v)
		}
		return m
	case []any:
		a := make([]any, len(val))
		for i, v := range val {
			a[i] = normalizeYAML(v)
		}
		return a
	default:
		return val
	}
}
