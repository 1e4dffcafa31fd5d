package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func envOf(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := parse(nil, envOf(nil))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIBase != DefaultAPIBase || cfg.Bounds.MaxWidth != 800 || cfg.Bounds.MaxHeight != 600 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Timeout != DefaultTimeout || cfg.LogLevel != slog.LevelWarn {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseEnvironmentThenFlags(t *testing.T) {
	env := envOf(map[string]string{
		"API_URL":              "http://render.internal:9000/",
		"MEMEFORGE_MAX_WIDTH":  "1024",
		"MEMEFORGE_MAX_HEIGHT": "768",
		"MEMEFORGE_TIMEOUT":    "5s",
		"MEMEFORGE_LOG_LEVEL":  "debug",
	})
	cfg, err := parse(nil, env)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIBase != "http://render.internal:9000" {
		t.Fatalf("unexpected api base %q", cfg.APIBase)
	}
	if cfg.Bounds.MaxWidth != 1024 || cfg.Bounds.MaxHeight != 768 || cfg.Timeout != 5*time.Second || cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("environment not applied: %+v", cfg)
	}

	cfg, err = parse([]string{"-api", "http://flag:1", "-max-width", "640", "-log-level", "error", "-image", "cat.png"}, env)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIBase != "http://flag:1" || cfg.Bounds.MaxWidth != 640 || cfg.Bounds.MaxHeight != 768 {
		t.Fatalf("flags must override the environment: %+v", cfg)
	}
	if cfg.LogLevel != slog.LevelError || cfg.ImagePath != "cat.png" {
		t.Fatalf("unexpected flag values: %+v", cfg)
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	bad := []map[string]string{
		{"MEMEFORGE_MAX_WIDTH": "0"},
		{"MEMEFORGE_MAX_HEIGHT": "tall"},
		{"MEMEFORGE_TIMEOUT": "-1s"},
		{"MEMEFORGE_LOG_LEVEL": "loud"},
	}
	for _, m := range bad {
		if _, err := parse(nil, envOf(m)); err == nil {
			t.Fatalf("expected error for %v", m)
		}
	}
	if _, err := parse([]string{"-max-height", "-3"}, envOf(nil)); err == nil {
		t.Fatalf("expected error for negative flag bound")
	}
	if _, err := parse([]string{"-api", " "}, envOf(nil)); err == nil {
		t.Fatalf("expected error for empty api base")
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("API_URL=http://from-dotenv:7000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv("API_URL", "")
	os.Unsetenv("API_URL")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIBase != "http://from-dotenv:7000" {
		t.Fatalf("expected .env value, got %q", cfg.APIBase)
	}
}
