package config

import (
	_ "embed"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"go4.org/xdgdir"

	"github.com/simonhull/flactag/internal/flac"
)

//go:embed sample_config.toml
var sampleConfig string

// Save contains defaults applied whenever the command rewrites a file.
type Save struct {
	BackupSuffix    string `toml:"backup_suffix"`
	PreserveModTime bool   `toml:"preserve_mod_time"`
	Validate        bool   `toml:"validate"`
	Padding         int64  `toml:"padding"`
	Lock            bool   `toml:"lock"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level string `toml:"level"`
}

// Config encapsulates all configuration values for the flactag command.
type Config struct {
	Save    Save    `toml:"save"`
	Logging Logging `toml:"logging"`
}

// DefaultPath returns the default configuration file location, or "" if
// no XDG config directory can be determined.
func DefaultPath() string {
	dir := xdgdir.Config.Path()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "flactag", "config.toml")
}

// Load locates, parses, and validates a configuration file. An empty path
// means DefaultPath. A missing file is not an error: the defaults are
// returned and exists is false.
func Load(path string) (cfg *Config, resolved string, exists bool, err error) {
	c := Default()

	resolved = path
	if resolved == "" {
		resolved = DefaultPath()
	}

	if resolved != "" {
		file, err := os.Open(resolved)
		switch {
		case err == nil:
			defer file.Close() //nolint:errcheck // read-only handle
			exists = true
			decoder := toml.NewDecoder(file).DisallowUnknownFields()
			if err := decoder.Decode(&c); err != nil {
				return nil, "", false, errors.Wrapf(err, "parse config %s", resolved)
			}
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, "", false, errors.Wrap(err, "open config")
		}
	}

	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, "", false, err
	}
	return &c, resolved, exists, nil
}

func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// SaveOptions converts the [save] section into options for Tag.Save.
func (c *Config) SaveOptions() []flac.SaveOption {
	var opts []flac.SaveOption
	if c.Save.BackupSuffix != "" {
		opts = append(opts, flac.WithBackup(c.Save.BackupSuffix))
	}
	if c.Save.PreserveModTime {
		opts = append(opts, flac.WithPreserveModTime())
	}
	if c.Save.Validate {
		opts = append(opts, flac.WithValidation())
	}
	if c.Save.Lock {
		opts = append(opts, flac.WithLock())
	}
	if c.Save.Padding > 0 {
		opts = append(opts, flac.WithPadding(uint32(c.Save.Padding)))
	}
	return opts
}

// Level returns the configured log level. Validate guarantees it parses.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// CreateSample writes a sample configuration file to the specified
// location, creating its directory.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "create config directory")
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return errors.Wrap(err, "write sample config")
	}
	return nil
}
