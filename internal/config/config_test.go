package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-theft-auto/rasterlab"
	"github.com/go-theft-auto/rasterlab/internal/capture"
)

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), Filename)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(EnvLevel, "")
	logger, buf := bufferLogger()
	cfg := Load(filepath.Join(t.TempDir(), "absent.yml"), logger)
	if cfg.GL != (GLVersion{4, 1}) || !cfg.VSyncEnabled() || cfg.Format() != capture.PNG {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if strings.Contains(buf.String(), "WARN") {
		t.Errorf("a missing file should not warn: %s", buf.String())
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
vsync: false
gl_version:
  major: 3
  minor: 3
screenshot_dir: /tmp/shots
screenshot_format: tiff
activities:
  4:
    title: Target
    width: 400
`)
	t.Setenv(EnvLevel, "")
	cfg := Load(path, nil)

	if cfg.Level() != slog.LevelDebug {
		t.Errorf("level %v, want debug", cfg.Level())
	}
	if cfg.VSyncEnabled() {
		t.Error("vsync should be off")
	}
	if cfg.GL != (GLVersion{3, 3}) {
		t.Errorf("gl version %+v", cfg.GL)
	}
	if cfg.ScreenshotDir != "/tmp/shots" || cfg.Format() != capture.TIFF {
		t.Errorf("screenshot settings %q/%q", cfg.ScreenshotDir, cfg.Format())
	}

	base := rasterlab.WindowSpec{Title: "Bull's Eye", Width: 800, Height: 800}
	got := cfg.Window(4, base)
	want := rasterlab.WindowSpec{Title: "Target", Width: 400, Height: 800}
	if got != want {
		t.Errorf("override %+v, want %+v", got, want)
	}
	if cfg.Window(1, base) != base {
		t.Error("activities without an override keep their window")
	}
}

func TestLoadInvalidFallsBack(t *testing.T) {
	cases := map[string]string{
		"syntax":     "log_level: [unterminated",
		"level":      "log_level: loud",
		"format":     "screenshot_format: gif",
		"gl":         "gl_version: {major: 2, minor: 1}",
		"window":     "activities: {1: {width: -4}}",
		"type":       "vsync: maybe",
		"activities": "activities: [1, 2]",
	}
	t.Setenv(EnvLevel, "")
	for name, body := range cases {
		logger, buf := bufferLogger()
		cfg := Load(writeConfig(t, body), logger)
		if cfg.LogLevel != "info" || cfg.ScreenshotFormat != "png" || cfg.GL != (GLVersion{4, 1}) || len(cfg.Activities) != 0 {
			t.Errorf("%s: expected defaults, got %+v", name, cfg)
		}
		if !strings.Contains(buf.String(), "level=WARN") {
			t.Errorf("%s: expected a warning, got %q", name, buf.String())
		}
	}
}

func TestLevelFromEnvironment(t *testing.T) {
	path := writeConfig(t, "log_level: warn")

	t.Setenv(EnvLevel, "error")
	logger, buf := bufferLogger()
	if lvl := Load(path, logger).Level(); lvl != slog.LevelError {
		t.Errorf("level %v, want error", lvl)
	}
	if strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("a valid env level should not warn: %q", buf.String())
	}

	t.Setenv(EnvLevel, "nonsense")
	logger, buf = bufferLogger()
	if lvl := Load(path, logger).Level(); lvl != slog.LevelWarn {
		t.Errorf("bad env level should fall back to the file, got %v", lvl)
	}
	if out := buf.String(); !strings.Contains(out, "level=WARN") || !strings.Contains(out, EnvLevel) {
		t.Errorf("bad env level not reported: %q", out)
	}

	logger, buf = bufferLogger()
	if lvl := Load(filepath.Join(t.TempDir(), "absent.yml"), logger).Level(); lvl != slog.LevelInfo {
		t.Errorf("bad env level without a file should fall back to info, got %v", lvl)
	}
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("bad env level not reported without a file: %q", buf.String())
	}
}

func TestSetupLogsThroughSharedLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		rasterlab.SetLogLevel(slog.LevelInfo)
	})

	t.Setenv(EnvPath, writeConfig(t, "log_level: error"))
	t.Setenv(EnvLevel, "loud")
	var buf bytes.Buffer
	logger, cfg := Setup(&buf)

	if cfg.Level() != slog.LevelError {
		t.Errorf("level %v, want error", cfg.Level())
	}
	if slog.Default() != logger {
		t.Error("Setup should install its logger as the default")
	}
	if out := buf.String(); !strings.Contains(out, "level=WARN") || !strings.Contains(out, EnvLevel) {
		t.Errorf("env warning missing from the shared logger: %q", out)
	}

	buf.Reset()
	logger.Warn("dropped")
	if buf.Len() != 0 {
		t.Errorf("configured level not applied: %q", buf.String())
	}
}

func TestPathFromEnvironment(t *testing.T) {
	t.Setenv(EnvPath, "")
	if Path() != Filename {
		t.Errorf("default path %q", Path())
	}
	t.Setenv(EnvPath, "/etc/rasterlab.yml")
	if Path() != "/etc/rasterlab.yml" {
		t.Errorf("env path %q", Path())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"DEBUG":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		" warn":   slog.LevelWarn,
		"Error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("trace"); err == nil {
		t.Error("expected an error for trace")
	}
}
