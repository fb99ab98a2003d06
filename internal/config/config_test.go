package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "tracker.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadDefaults verifies that running without a config file reproduces the stock setup.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Path != "workout_log.csv" {
		t.Errorf("log.path = %q, want %q", cfg.Log.Path, "workout_log.csv")
	}
	if cfg.Background != "gym_background.gif" {
		t.Errorf("background = %q, want %q", cfg.Background, "gym_background.gif")
	}
	if cfg.Window.Width != 720 || cfg.Window.Height != 520 {
		t.Errorf("window = %vx%v, want 720x520", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging.level = %q, want info", cfg.Logging.Level)
	}
}

// TestLoadYAMLOverlaysDefaults verifies partial files keep defaults for unset keys.
func TestLoadYAMLOverlaysDefaults(t *testing.T) {
	cfg, err := Load(writeTemp(t, `
log:
  path: /data/lifts.csv
logging:
  level: debug
  json: true
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Path != "/data/lifts.csv" {
		t.Errorf("log.path = %q", cfg.Log.Path)
	}
	if cfg.Logging.Level != "debug" || !cfg.Logging.JSON {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if cfg.Window.MinWidth != 620 {
		t.Errorf("window.min_width = %v, want default 620", cfg.Window.MinWidth)
	}
}

// TestEnvOverride verifies TRACKER_ env vars take precedence over YAML values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("TRACKER_LOG_PATH", "/tmp/env.csv")
	t.Setenv("TRACKER_BACKGROUND", "")
	t.Setenv("TRACKER_LOG_LEVEL", "warn")
	t.Setenv("TRACKER_JSON_LOGS", "true")

	cfg, err := Load(writeTemp(t, "log:\n  path: file.csv\nbackground: bg.png\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Path != "/tmp/env.csv" {
		t.Errorf("log.path = %q", cfg.Log.Path)
	}
	if cfg.Background != "" {
		t.Errorf("background = %q, want empty (disabled by env)", cfg.Background)
	}
	if cfg.Logging.Level != "warn" || !cfg.Logging.JSON {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestValidationRejectsBadLevel(t *testing.T) {
	_, err := Load(writeTemp(t, "logging:\n  level: chatty\n"))
	if err == nil {
		t.Fatal("expected validation error for unknown level")
	}
}

func TestValidationRejectsEmptyLogPath(t *testing.T) {
	_, err := Load(writeTemp(t, "log:\n  path: \"  \"\n"))
	if err == nil {
		t.Fatal("expected validation error for empty log path")
	}
}

func TestValidationRejectsMinAboveSize(t *testing.T) {
	_, err := Load(writeTemp(t, "window:\n  width: 500\n  height: 400\n"))
	if err == nil {
		t.Fatal("expected validation error when min size exceeds size")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/tracker.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeTemp(t, "log: [unclosed"))
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestEnvOverrideRejectsBadBool(t *testing.T) {
	t.Setenv("TRACKER_JSON_LOGS", "sometimes")

	_, err := Load("")
	if err == nil {
		t.Fatal("expected error for unparseable TRACKER_JSON_LOGS")
	}
}
