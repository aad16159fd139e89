package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	if cfg.Port != "3457" {
		t.Errorf("Port = %q, want %q", cfg.Port, "3457")
	}
	if cfg.LogLevel != "INFO" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "INFO")
	}
	if len(cfg.HiddenKinds) != 0 {
		t.Errorf("HiddenKinds = %v, want empty", cfg.HiddenKinds)
	}
}

func TestLoadDisplayOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "display_overrides.yaml")
	content := "hidden_kinds:\n  - debug\n  - utility\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := GetDefaultConfig()
	if err := cfg.LoadDisplayOverrides(path); err != nil {
		t.Fatalf("LoadDisplayOverrides() error = %v", err)
	}

	if len(cfg.HiddenKinds) != 2 || cfg.HiddenKinds[0] != "debug" || cfg.HiddenKinds[1] != "utility" {
		t.Errorf("HiddenKinds = %v", cfg.HiddenKinds)
	}
}

func TestLoadDisplayOverrides_MissingFileIsFine(t *testing.T) {
	cfg := GetDefaultConfig()
	if err := cfg.LoadDisplayOverrides(filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
		t.Errorf("missing file should not error, got %v", err)
	}
}

func TestLoadDisplayOverrides_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "display_overrides.yaml")
	if err := os.WriteFile(path, []byte("hidden_kinds: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := GetDefaultConfig()
	if err := cfg.LoadDisplayOverrides(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadConfigWithEnv_EnvFilePrecedence(t *testing.T) {
	dir := t.TempDir()
	envFile := "PORT=9999\nLOG_LEVEL=DEBUG\n# comment line\nQUOTED=\"value\"\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(envFile), 0644); err != nil {
		t.Fatal(err)
	}

	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(oldWD)

	// Process env beats the .env file.
	t.Setenv("PORT", "4000")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadConfigWithEnv()
	if err != nil {
		t.Fatalf("LoadConfigWithEnv() error = %v", err)
	}

	if cfg.Port != "4000" {
		t.Errorf("Port = %q, want %q (process env wins)", cfg.Port, "4000")
	}
	if cfg.LogLevel != "DEBUG" {
		t.Errorf("LogLevel = %q, want %q (.env fallback)", cfg.LogLevel, "DEBUG")
	}
}
