package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	if runtime.GOOS == "linux" {
		// Keep a developer machine's real config out of the test.
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Swaymsg != "swaymsg" {
		t.Errorf("expected default swaymsg, got %q", cfg.Swaymsg)
	}
	if cfg.File != "" {
		t.Errorf("expected empty default file, got %q", cfg.File)
	}
	if cfg.History.Enabled {
		t.Error("expected history disabled by default")
	}
	if cfg.History.Keep != 168*time.Hour {
		t.Errorf("expected 168h retention, got %v", cfg.History.Keep)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected info level, got %q", cfg.Log.Level)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
swaymsg: /usr/local/bin/swaymsg
history:
  enabled: true
  keep: 72h
log:
  level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Swaymsg != "/usr/local/bin/swaymsg" {
		t.Errorf("expected file swaymsg, got %q", cfg.Swaymsg)
	}
	if !cfg.History.Enabled {
		t.Error("expected history enabled from file")
	}
	if cfg.History.Keep != 72*time.Hour {
		t.Errorf("expected 72h retention, got %v", cfg.History.Keep)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %q", cfg.Log.Level)
	}
	// Keys the file does not mention keep their defaults.
	if cfg.File != "" {
		t.Errorf("expected empty default file key, got %q", cfg.File)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
history:
  enabled: true
log:
  level: debug
`)
	t.Setenv("SWAY_SESSION_LOG_LEVEL", "trace")
	t.Setenv("SWAY_SESSION_HISTORY_KEEP", "24h")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Log.Level != "trace" {
		t.Errorf("expected env to win, got %q", cfg.Log.Level)
	}
	if cfg.History.Keep != 24*time.Hour {
		t.Errorf("expected 24h retention from env, got %v", cfg.History.Keep)
	}
	if !cfg.History.Enabled {
		t.Error("expected file's history.enabled to survive")
	}
}

func TestLoad_EnvAlone(t *testing.T) {
	if runtime.GOOS == "linux" {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	}
	t.Setenv("SWAY_SESSION_FILE", "/tmp/elsewhere.json")
	t.Setenv("SWAY_SESSION_SWAYMSG", "i3-msg")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.File != "/tmp/elsewhere.json" {
		t.Errorf("expected env file path, got %q", cfg.File)
	}
	if cfg.Swaymsg != "i3-msg" {
		t.Errorf("expected env swaymsg, got %q", cfg.Swaymsg)
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a named config file that does not exist")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "log: [unclosed")
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a malformed config file")
	}
}
