package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/simonhull/flactag/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent")
	}
	if !strings.HasSuffix(resolved, filepath.Join("flactag", "config.toml")) {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if *cfg != config.Default() {
		t.Fatalf("expected defaults, got %+v", *cfg)
	}
	if cfg.Level() != slog.LevelInfo {
		t.Fatalf("expected info level, got %v", cfg.Level())
	}
	if got := len(cfg.SaveOptions()); got != 1 {
		t.Fatalf("expected only the padding option by default, got %d options", got)
	}
}

func TestLoadFromXDGConfigHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	if err := config.CreateSample(filepath.Join(home, "flactag", "config.toml")); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected the sample config to be found")
	}
	if *cfg != config.Default() {
		t.Fatalf("sample config should match defaults, got %+v", *cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
[save]
backup_suffix = ".orig"
preserve_mod_time = true
validate = true
padding = 0
lock = true

[logging]
level = " DEBUG "
`)

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected %q to be loaded, got %q (exists=%v)", path, resolved, exists)
	}
	if cfg.Save.BackupSuffix != ".orig" || !cfg.Save.PreserveModTime || !cfg.Save.Validate || !cfg.Save.Lock {
		t.Fatalf("unexpected save section: %+v", cfg.Save)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.Level())
	}
	// backup, mod time, validation, lock; zero padding adds nothing
	if got := len(cfg.SaveOptions()); got != 4 {
		t.Fatalf("expected 4 save options, got %d", got)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"negative padding", "[save]\npadding = -1\n", "save.padding"},
		{"padding too large", "[save]\npadding = 16777216\n", "save.padding"},
		{"unknown level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
		{"unknown key", "[save]\nbackup = true\n", "parse config"},
		{"malformed", "[save\n", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := config.Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultMarshalsToSampleKeys(t *testing.T) {
	data, err := toml.Marshal(config.Default())
	if err != nil {
		t.Fatalf("marshal defaults: %v", err)
	}
	for _, key := range []string{"backup_suffix", "preserve_mod_time", "validate", "padding", "lock", "level"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("marshaled defaults missing %q:\n%s", key, data)
		}
	}
}
