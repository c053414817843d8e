package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "brsdoc.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
dest = "./docs-src"
src = ["*.bs"]
parser = ["bsc", "--emit-ast"]
log_level = "debug"
jobs = 2
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Dest != filepath.Join(dir, "docs-src") {
		t.Errorf("Dest = %q, want it normalized under %q", cfg.Dest, dir)
	}
	if len(cfg.Src) != 1 || cfg.Src[0] != "*.bs" {
		t.Errorf("Src = %v", cfg.Src)
	}
	if len(cfg.Parser) != 2 || cfg.Parser[0] != "bsc" {
		t.Errorf("Parser = %v", cfg.Parser)
	}
	if cfg.Jobs != 2 {
		t.Errorf("Jobs = %d, want 2", cfg.Jobs)
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `dest = "out"`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Src) != 2 {
		t.Errorf("default Src = %v, want the .bs/.brs globs", cfg.Src)
	}
	if cfg.Jobs <= 0 {
		t.Errorf("default Jobs = %d, want positive", cfg.Jobs)
	}
}

func TestLoadSearchesUpward(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `dest = "out"`)

	nested := filepath.Join(dir, "src", "components")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	cfg, err := Load(nested)
	if err != nil {
		t.Fatalf("Load from nested dir failed: %v", err)
	}
	if cfg.Dest != filepath.Join(dir, "out") {
		t.Errorf("Dest = %q, want it relative to the config file's dir", cfg.Dest)
	}
}

func TestLoadMissingDest(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `src = ["*.bs"]`)

	if _, err := Load(dir); err == nil {
		t.Fatal("expected error when dest is missing")
	}
}

func TestLoadMissingConfig(t *testing.T) {
	// A fresh temp dir has no brsdoc.toml anywhere above it that we create.
	dir := t.TempDir()
	if _, err := Load(dir); err == nil {
		t.Skip("a brsdoc.toml exists above the temp dir")
	}
}

func TestGetMarkers(t *testing.T) {
	cfg := &Config{}
	m := cfg.GetMarkers()
	if len(m.Sigils) == 0 || m.Sigils[0] != "'" {
		t.Errorf("default markers = %+v", m)
	}

	cfg = &Config{Markers: []string{"'", "#", "REM", "NOTE"}}
	m = cfg.GetMarkers()
	if len(m.Sigils) != 2 || len(m.Words) != 2 {
		t.Errorf("markers not split into sigils/words: %+v", m)
	}
}
