package core

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/mountd-cli/mountd/internal/core/catalog"
)

func TestConfigManager_DefaultConfig(t *testing.T) {
	cm := NewConfigManager(afero.NewMemMapFs(), "/proj")

	cfg, err := cm.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
	if len(cfg.Agents) != 0 || len(cfg.Installed) != 0 {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestConfigManager_SaveAndLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()
	cm := NewConfigManager(fsys, "/proj")

	cfg := &Config{
		Agents:   []string{"claude", "cursor"},
		Paths:    &Paths{Skills: "custom/skills"},
		Defaults: &Defaults{Overwrite: true, Validate: true},
		Installed: []InstalledSkill{
			{Name: "lint", Source: "./lint", Kind: catalog.KindSkill, InstalledAt: "2026-01-02T03:04:05Z"},
		},
	}
	if err := cm.Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if ok, _ := afero.Exists(fsys, cm.ConfigPath()); !ok {
		t.Fatal("config file not created")
	}
	if ok, _ := afero.Exists(fsys, cm.ConfigPath()+".tmp"); ok {
		t.Error("temp file left behind")
	}

	loaded, err := cm.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(loaded.Agents) != 2 || loaded.Agents[1] != "cursor" {
		t.Errorf("Agents = %v", loaded.Agents)
	}
	if loaded.Paths == nil || loaded.Paths.Skills != "custom/skills" {
		t.Errorf("Paths = %+v", loaded.Paths)
	}
	if loaded.Defaults == nil || !loaded.Defaults.Overwrite || !loaded.Defaults.Validate {
		t.Errorf("Defaults = %+v", loaded.Defaults)
	}
	if len(loaded.Installed) != 1 || loaded.Installed[0].Kind != catalog.KindSkill {
		t.Errorf("Installed = %+v", loaded.Installed)
	}
}

func TestConfigManager_LoadLenient(t *testing.T) {
	fsys := afero.NewMemMapFs()
	content := `{
  // hand-edited
  "agents": ["gemini",],
  "installed": [
    {"name": "old", "source": "x", "installedAt": "2024-01-01T00:00:00Z"},
  ],
}`
	if err := afero.WriteFile(fsys, filepath.Join("/proj", ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewConfigManager(fsys, "/proj").Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(cfg.Agents) != 1 || cfg.Agents[0] != "gemini" {
		t.Errorf("Agents = %v", cfg.Agents)
	}
	if cfg.Installed[0].IsWorkflow() {
		t.Error("record without type should be a skill")
	}
}

func TestConfigManager_LoadCorrupt(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, filepath.Join("/proj", ConfigFileName), []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewConfigManager(fsys, "/proj").Load()
	if err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("Load() error = %v, want parsing error", err)
	}
}

func TestConfigManager_AddInstalledUpsert(t *testing.T) {
	cm := NewConfigManager(afero.NewMemMapFs(), "/proj")

	for _, rec := range []InstalledSkill{
		{Name: "a", Source: "s1"},
		{Name: "b", Source: "s2"},
		{Name: "a", Source: "s3", Version: "1.0.0"},
	} {
		if err := cm.AddInstalled(rec); err != nil {
			t.Fatalf("AddInstalled(%s) error: %v", rec.Name, err)
		}
	}

	cfg, err := cm.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Installed) != 2 {
		t.Fatalf("expected 2 records, got %d", len(cfg.Installed))
	}
	if cfg.Installed[0].Name != "a" || cfg.Installed[0].Source != "s3" || cfg.Installed[0].Version != "1.0.0" {
		t.Errorf("Installed[0] = %+v, want replaced in place", cfg.Installed[0])
	}
}

func TestConfigManager_SetAgentsPreservesInstalled(t *testing.T) {
	cm := NewConfigManager(afero.NewMemMapFs(), "/proj")
	if err := cm.AddInstalled(InstalledSkill{Name: "a", Source: "s"}); err != nil {
		t.Fatal(err)
	}
	if err := cm.SetAgents([]string{"windsurf"}); err != nil {
		t.Fatal(err)
	}

	cfg, _ := cm.Load()
	if len(cfg.Installed) != 1 {
		t.Errorf("SetAgents dropped installed records: %+v", cfg)
	}
	if len(cfg.Agents) != 1 || cfg.Agents[0] != "windsurf" {
		t.Errorf("Agents = %v", cfg.Agents)
	}
}

func TestConfigManager_RemoveInstalled(t *testing.T) {
	cm := NewConfigManager(afero.NewMemMapFs(), "/proj")
	_ = cm.AddInstalled(InstalledSkill{Name: "a", Source: "s", Kind: catalog.KindWorkflow})
	_ = cm.AddInstalled(InstalledSkill{Name: "b", Source: "s"})

	rec, err := cm.RemoveInstalled("a")
	if err != nil {
		t.Fatalf("RemoveInstalled() error: %v", err)
	}
	if !rec.IsWorkflow() {
		t.Errorf("removed record = %+v", rec)
	}

	cfg, _ := cm.Load()
	if len(cfg.Installed) != 1 || cfg.Installed[0].Name != "b" {
		t.Errorf("Installed = %+v", cfg.Installed)
	}

	if _, err := cm.RemoveInstalled("a"); !errors.Is(err, ErrNotInstalled) {
		t.Errorf("second RemoveInstalled() error = %v, want ErrNotInstalled", err)
	}
}
