package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davvil/pdfpc/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Paths.SidecarExtension != ".pdfpc" {
		t.Fatalf("unexpected sidecar extension: %q", cfg.Paths.SidecarExtension)
	}
	if cfg.Defaults.LastMinutes != nil || cfg.Defaults.CurrentSize != nil {
		t.Fatal("defaults section should be empty without a config file")
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "config.toml")
	content := `
[logging]
level = "debug"
format = "json"

[paths]
rc_file = "~/settings/pdfpcrc"
sidecar_extension = "notes"

[defaults]
last_minutes = 3
current_size = 70
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
	if want := filepath.Join(home, "settings", "pdfpcrc"); cfg.Paths.RCFile != want {
		t.Fatalf("rc_file not expanded: got %q want %q", cfg.Paths.RCFile, want)
	}
	if cfg.Paths.SidecarExtension != ".notes" {
		t.Fatalf("sidecar extension not normalized: %q", cfg.Paths.SidecarExtension)
	}
	if cfg.Defaults.LastMinutes == nil || *cfg.Defaults.LastMinutes != 3 {
		t.Fatalf("defaults.last_minutes not parsed: %v", cfg.Defaults.LastMinutes)
	}
	if cfg.Defaults.CurrentSize == nil || *cfg.Defaults.CurrentSize != 70 {
		t.Fatalf("defaults.current_size not parsed: %v", cfg.Defaults.CurrentSize)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []string{
		"[logging]\nlevel = \"loud\"\n",
		"[logging]\nformat = \"xml\"\n",
		"[defaults]\nlast_minutes = -1\n",
		"[defaults]\ncurrent_size = 150\n",
		"[defaults]\noverview_min_size = 0\n",
	}
	for _, content := range cases {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, _, _, err := config.Load(path); err == nil {
			t.Errorf("content %q: expected validation error", content)
		}
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if !exists {
		t.Fatal("sample config should exist")
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected sample level: %q", cfg.Logging.Level)
	}
}
