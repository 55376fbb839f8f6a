// Package config loads the optional rasterlab.yml settings file.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/rasterlab"
	"github.com/go-theft-auto/rasterlab/internal/capture"
)

const (
	// Filename is looked up in the working directory when EnvPath is unset.
	Filename = "rasterlab.yml"

	EnvPath  = "RASTERLAB_CONFIG"
	EnvLevel = "RASTERLAB_LOG"
)

const maxConfigSize = 1 << 20

// GLVersion is the requested OpenGL context version.
type GLVersion struct {
	Major int `yaml:"major"`
	Minor int `yaml:"minor"`
}

// WindowOverride replaces parts of an activity's window. Zero fields keep
// the built-in value.
type WindowOverride struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type Config struct {
	LogLevel         string                 `yaml:"log_level"`
	VSync            *bool                  `yaml:"vsync"` // nil means on
	GL               GLVersion              `yaml:"gl_version"`
	ScreenshotDir    string                 `yaml:"screenshot_dir"`
	ScreenshotFormat string                 `yaml:"screenshot_format"`
	Activities       map[int]WindowOverride `yaml:"activities"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		LogLevel:         "info",
		GL:               GLVersion{Major: 4, Minor: 1},
		ScreenshotDir:    "screenshots",
		ScreenshotFormat: string(capture.PNG),
	}
}

// Path returns the config file location, honoring EnvPath.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return Filename
}

// Load reads path over the defaults. A missing file is not an error; an
// unreadable or invalid one is logged and ignored. A valid EnvLevel replaces
// the file's log level and an invalid one is logged and ignored.
func Load(path string, logger *slog.Logger) Config {
	if logger == nil {
		logger = slog.Default()
	}
	cfg := loadFile(path, logger)
	if env := os.Getenv(EnvLevel); env != "" {
		if _, err := ParseLevel(env); err != nil {
			logger.Warn("ignoring log level from environment", "env", EnvLevel, "error", err)
		} else {
			cfg.LogLevel = env
		}
	}
	return cfg
}

// Setup builds the shared logger on w and makes it the default, then loads
// the config from Path through it and applies the configured level.
func Setup(w io.Writer) (*slog.Logger, Config) {
	logger := rasterlab.NewLogger(w)
	slog.SetDefault(logger)
	cfg := Load(Path(), logger)
	rasterlab.SetLogLevel(cfg.Level())
	return logger, cfg
}

func loadFile(path string, logger *slog.Logger) Config {
	cfg := Default()

	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to stat config", "path", path, "error", err)
		}
		return cfg
	}
	if info.Size() > maxConfigSize {
		logger.Warn("config file too large", "path", path, "size", info.Size())
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("failed to read config", "path", path, "error", err)
		return cfg
	}

	loaded := cfg
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		logger.Warn("failed to parse config", "path", path, "error", err)
		return cfg
	}
	if err := loaded.validate(); err != nil {
		logger.Warn("invalid config", "path", path, "error", err)
		return cfg
	}

	logger.Debug("loaded config", "path", path, "size", info.Size())
	return loaded
}

func (c Config) validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := capture.ParseFormat(c.ScreenshotFormat); err != nil {
		return err
	}
	if c.GL.Major < 3 || (c.GL.Major == 3 && c.GL.Minor < 3) {
		return fmt.Errorf("gl_version %d.%d: core profile needs 3.3 or newer", c.GL.Major, c.GL.Minor)
	}
	for n, o := range c.Activities {
		if o.Width < 0 || o.Height < 0 {
			return fmt.Errorf("activity %d: negative window size %dx%d", n, o.Width, o.Height)
		}
	}
	return nil
}

// VSyncEnabled reports whether buffer swaps wait for vertical blank.
func (c Config) VSyncEnabled() bool {
	return c.VSync == nil || *c.VSync
}

// Level returns the log level, falling back to info.
func (c Config) Level() slog.Level {
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Format returns the screenshot format, falling back to PNG.
func (c Config) Format() capture.Format {
	f, err := capture.ParseFormat(c.ScreenshotFormat)
	if err != nil {
		return capture.PNG
	}
	return f
}

// Window applies the override for activity n to base.
func (c Config) Window(n int, base rasterlab.WindowSpec) rasterlab.WindowSpec {
	o, ok := c.Activities[n]
	if !ok {
		return base
	}
	if o.Title != "" {
		base.Title = o.Title
	}
	if o.Width > 0 {
		base.Width = o.Width
	}
	if o.Height > 0 {
		base.Height = o.Height
	}
	return base
}

// ParseLevel accepts debug, info, warn/warning and error, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
