package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "logdiary init") {
		t.Errorf("error should suggest init: %v", err)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("document: story.json\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Document != "story.json" {
		t.Errorf("document = %q", cfg.Document)
	}
	if cfg.Server.Addr != "127.0.0.1:8780" {
		t.Errorf("server.addr = %q", cfg.Server.Addr)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" || cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("logging defaults = %+v", cfg.Logging)
	}
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v", errs)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("document: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.SetPath(path)
	cfg.Output = "out/diary.html"
	cfg.Server.Addr = ":9000"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Output != "out/diary.html" || loaded.Server.Addr != ":9000" {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if loaded.Path() != path {
		t.Errorf("Path() = %q", loaded.Path())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   int
	}{
		{"default", func(*Config) {}, 0},
		{"no document", func(c *Config) { c.Document = "" }, 1},
		{"bad addr", func(c *Config) { c.Server.Addr = "nope" }, 1},
		{"bad levels", func(c *Config) {
			c.Logging.ConsoleLogger.Level = "loud"
			c.Logging.FileLogger.Level = "verbose"
		}, 3},
		{"file without destination", func(c *Config) { c.Logging.FileLogger.Level = "debug" }, 1},
		{"bad mode", func(c *Config) { c.Logging.FileLogger.Mode = "rotate" }, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if errs := cfg.Validate(); len(errs) != tc.want {
				t.Errorf("Validate() returned %d errors, want %d: %v", len(errs), tc.want, errs)
			}
		})
	}
}

func TestPaths(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.SetPath(filepath.Join(dir, FileName))

	if got := cfg.DocumentPath(); got != filepath.Join(dir, "diary.json") {
		t.Errorf("DocumentPath() = %q", got)
	}
	if got := cfg.OutputPath("Yuzu Diary"); got != filepath.Join(dir, "yuzu-diary.html") {
		t.Errorf("OutputPath() = %q", got)
	}

	cfg.Output = "/abs/out.html"
	if got := cfg.OutputPath("ignored"); got != "/abs/out.html" {
		t.Errorf("OutputPath() = %q", got)
	}

	cfg.StateDir = "state"
	state, err := cfg.StatePath()
	if err != nil {
		t.Fatalf("StatePath failed: %v", err)
	}
	if filepath.Dir(state) != filepath.Join(dir, "state") || !strings.HasSuffix(state, ".json") {
		t.Errorf("StatePath() = %q", state)
	}
}

func TestExportName(t *testing.T) {
	if got := ExportName("  "); got != "logdiary.html" {
		t.Errorf("ExportName(blank) = %q", got)
	}
	if got := ExportName("Rainy Night"); got != "rainy-night.html" {
		t.Errorf("ExportName = %q", got)
	}
}

func TestPrepare_FileLogger(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "run.log")
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "debug", Destination: dest, Mode: "overwrite"},
	}

	log, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	log.Debug("hello file")
	_ = log.Sync()

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Errorf("log file = %q", data)
	}
}
