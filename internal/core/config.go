package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"github.com/tailscale/hujson"
)

// ConfigFileName is the project install-state file name.
const ConfigFileName = ".mountdrc.json"

// ErrNotInstalled is returned when removing a record that does not exist.
var ErrNotInstalled = errors.New("not installed")

// ConfigManager reads and writes the install-state document of one project.
// Every mutation is a whole-document read, modify and write.
type ConfigManager struct {
	fs  afero.Fs
	dir string
	mu  sync.RWMutex
}

// NewConfigManager creates a ConfigManager for the project at dir.
func NewConfigManager(fsys afero.Fs, dir string) *ConfigManager {
	return &ConfigManager{fs: fsys, dir: dir}
}

// Dir returns the project directory.
func (cm *ConfigManager) Dir() string {
	return cm.dir
}

// ConfigPath returns the full path to the config file.
func (cm *ConfigManager) ConfigPath() string {
	return filepath.Join(cm.dir, ConfigFileName)
}

// Load reads the config from disk. Returns an empty config if the file
// doesn't exist. Comments and trailing commas are accepted.
func (cm *ConfigManager) Load() (*Config, error) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.load()
}

func (cm *ConfigManager) load() (*Config, error) {
	data, err := afero.ReadFile(cm.fs, cm.ConfigPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(std, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config to disk.
func (cm *ConfigManager) Save(cfg *Config) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.save(cfg)
}

func (cm *ConfigManager) save(cfg *Config) error {
	if err := cm.fs.MkdirAll(cm.dir, 0o755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append(data, '\n')

	// Write atomically: write to temp file then rename
	path := cm.ConfigPath()
	tmpPath := path + ".tmp"
	if err := afero.WriteFile(cm.fs, tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := cm.fs.Rename(tmpPath, path); err != nil {
		_ = cm.fs.Remove(tmpPath) // clean up on failure
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

// update applies fn to the current document and saves the result.
func (cm *ConfigManager) update(fn func(*Config) error) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	cfg, err := cm.load()
	if err != nil {
		return err
	}
	if err := fn(cfg); err != nil {
		return err
	}
	return cm.save(cfg)
}

// SetAgents replaces the preferred agent list.
func (cm *ConfigManager) SetAgents(names []string) error {
	return cm.update(func(cfg *Config) error {
		cfg.Agents = append([]string(nil), names...)
		return nil
	})
}

// AddInstalled upserts a record by name: an existing record with the same
// name is replaced in place, otherwise the record is appended.
func (cm *ConfigManager) AddInstalled(rec InstalledSkill) error {
	return cm.update(func(cfg *Config) error {
		for i, s := range cfg.Installed {
			if s.Name == rec.Name {
				cfg.Installed[i] = rec
				return nil
			}
		}
		cfg.Installed = append(cfg.Installed, rec)
		return nil
	})
}

// RemoveInstalled deletes the record with the given name and returns it.
// Returns ErrNotInstalled if there is no such record.
func (cm *ConfigManager) RemoveInstalled(name string) (InstalledSkill, error) {
	var removed InstalledSkill
	err := cm.update(func(cfg *Config) error {
		idx := -1
		for i, s := range cfg.Installed {
			if s.Name == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%q: %w", name, ErrNotInstalled)
		}
		removed = cfg.Installed[idx]
		cfg.Installed = append(cfg.Installed[:idx], cfg.Installed[idx+1:]...)
		return nil
	})
	return removed, err
}

// InstalledNames returns the set of recorded names.
func (c *Config) InstalledNames() map[string]bool {
	names := make(map[string]bool, len(c.Installed))
	for _, s := range c.Installed {
		names[s.Name] = true
	}
	return names
}
