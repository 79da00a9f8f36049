package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}

	if cfg.ContentDir != "content" {
		t.Errorf("ContentDir = %q, want content", cfg.ContentDir)
	}
	if cfg.Seed != 0 || cfg.Plain || cfg.DebugLog != "" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streakcore.yaml")
	data := "content_dir: games/words\nseed: 1234\nplain: true\ndebug_log: debug.log\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ContentDir != "games/words" {
		t.Errorf("ContentDir = %q", cfg.ContentDir)
	}
	if cfg.Seed != 1234 {
		t.Errorf("Seed = %d", cfg.Seed)
	}
	if !cfg.Plain {
		t.Error("Plain should be true")
	}
	if cfg.DebugLog != "debug.log" {
		t.Errorf("DebugLog = %q", cfg.DebugLog)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streakcore.yaml")
	if err := os.WriteFile(path, []byte("seed: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Seed != 9 {
		t.Errorf("Seed = %d, want 9", cfg.Seed)
	}
	if cfg.ContentDir != "content" {
		t.Errorf("unset field should keep its default, got %q", cfg.ContentDir)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "streakcore.yaml")
	if err := os.WriteFile(path, []byte("seed: [not a number\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("malformed yaml should error")
	}
}
