// Package config manages the YAML configuration of a log diary workspace.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"
)

// FileName is the workspace config file looked up in the current directory.
const FileName = ".logdiary.yaml"

// ErrNotFound is returned by Load when the config file does not exist.
var ErrNotFound = errors.New("config file not found")

// HomeDir returns the path to the global data directory (~/.logdiary/).
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".logdiary"), nil
}

// Config is the workspace configuration.
type Config struct {
	Version  string        `yaml:"version"`
	Document string        `yaml:"document"`
	Output   string        `yaml:"output"`
	StateDir string        `yaml:"state_dir"`
	Server   ServerConfig  `yaml:"server"`
	Logging  LoggingConfig `yaml:"logging"`

	path string
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns a configuration with every field set.
func Default() *Config {
	return &Config{
		Version:  "1.0",
		Document: "diary.json",
		Server:   ServerConfig{Addr: "127.0.0.1:8780"},
		Logging: LoggingConfig{
			ConsoleLogger: LoggerConfig{Level: "normal"},
			FileLogger:    LoggerConfig{Level: "none", Mode: "overwrite"},
		},
		path: FileName,
	}
}

// Load reads the config from path and fills in defaults for blank fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s. Run 'logdiary init' first", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.path = path
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Version == "" {
		c.Version = def.Version
	}
	if c.Document == "" {
		c.Document = def.Document
	}
	if c.Server.Addr == "" {
		c.Server.Addr = def.Server.Addr
	}
	if c.Logging.ConsoleLogger.Level == "" {
		c.Logging.ConsoleLogger.Level = def.Logging.ConsoleLogger.Level
	}
	if c.Logging.FileLogger.Level == "" {
		c.Logging.FileLogger.Level = def.Logging.FileLogger.Level
	}
	if c.Logging.FileLogger.Mode == "" {
		c.Logging.FileLogger.Mode = def.Logging.FileLogger.Mode
	}
}

// Path returns the file the config was loaded from or will be saved to.
func (c *Config) Path() string {
	return c.path
}

// SetPath changes where Save writes.
func (c *Config) SetPath(path string) {
	c.path = path
}

// Save writes the config to its file.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = FileName
	}

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the config for errors.
func (c *Config) Validate() []error {
	var errs []error

	if c.Document == "" {
		errs = append(errs, fmt.Errorf("document is required"))
	}

	if c.Server.Addr != "" {
		if _, _, err := net.SplitHostPort(c.Server.Addr); err != nil {
			errs = append(errs, fmt.Errorf("invalid server.addr %q: %w", c.Server.Addr, err))
		}
	}

	validLevel := map[string]bool{"none": true, "normal": true, "debug": true}
	if !validLevel[c.Logging.ConsoleLogger.Level] {
		errs = append(errs, fmt.Errorf("invalid logging.console.level: %s", c.Logging.ConsoleLogger.Level))
	}
	if !validLevel[c.Logging.FileLogger.Level] {
		errs = append(errs, fmt.Errorf("invalid logging.file.level: %s", c.Logging.FileLogger.Level))
	}

	validMode := map[string]bool{"": true, "append": true, "overwrite": true}
	if !validMode[c.Logging.FileLogger.Mode] {
		errs = append(errs, fmt.Errorf("invalid logging.file.mode: %s", c.Logging.FileLogger.Mode))
	}

	if c.Logging.FileLogger.Level != "none" && c.Logging.FileLogger.Destination == "" {
		errs = append(errs, fmt.Errorf("logging.file.destination is required when file logging is on"))
	}

	return errs
}

// DocumentPath returns the document path resolved against the config's
// directory.
func (c *Config) DocumentPath() string {
	return c.resolve(c.Document)
}

// OutputPath returns the export path. A blank output falls back to a file
// named after title in the config's directory.
func (c *Config) OutputPath(title string) string {
	if c.Output != "" {
		return c.resolve(c.Output)
	}
	return c.resolve(ExportName(title))
}

// ExportName turns a cover title into an .html file name.
func ExportName(title string) string {
	name := slug.Make(strings.TrimSpace(title))
	if name == "" {
		name = "logdiary"
	}
	return name + ".html"
}

// StatePath returns the export state file for the configured document.
func (c *Config) StatePath() (string, error) {
	dir := c.StateDir
	if dir == "" {
		home, err := HomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, "state")
	} else {
		dir = c.resolve(dir)
	}

	abs, err := filepath.Abs(c.DocumentPath())
	if err != nil {
		return "", fmt.Errorf("failed to resolve document path: %w", err)
	}
	return filepath.Join(dir, slug.Make(abs)+".json"), nil
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(c.path), p)
}
