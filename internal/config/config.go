// Package config loads the viewer's settings from defaults, an optional YAML
// file and PERIODIC_* environment variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"periodic-tutor/internal/logger"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDataPath  = "data/elements.rdf"
	DefaultNamespace = "http://periodic.org/ontology#"
)

// Config is the complete viewer configuration
type Config struct {
	Data   DataConfig   `yaml:"data"`
	Log    LogConfig    `yaml:"log"`
	Window WindowConfig `yaml:"window"`
}

// DataConfig locates the element data file
type DataConfig struct {
	// Path to the RDF file; the extension selects the syntax
	Path string `yaml:"path"`
	// Namespace of the Element class and its predicates
	Namespace string `yaml:"namespace"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Path:      DefaultDataPath,
			Namespace: DefaultNamespace,
		},
		Log: LogConfig{
			Level: "info",
		},
		Window: WindowConfig{
			Width:  1200,
			Height: 800,
		},
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Data.Path) == "" {
		return fmt.Errorf("data.path is required")
	}
	if c.Data.Namespace == "" {
		return fmt.Errorf("data.namespace is required")
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %.0fx%.0f", c.Window.Width, c.Window.Height)
	}
	return nil
}

// LoadFromFile reads a YAML file over the defaults
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Load builds the effective configuration. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays PERIODIC_* variables using lookup, normally os.LookupEnv
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PERIODIC_DATA"); ok && v != "" {
		c.Data.Path = v
	}
	if v, ok := lookup("PERIODIC_NAMESPACE"); ok && v != "" {
		c.Data.Namespace = v
	}
	if v, ok := lookup("PERIODIC_LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup("PERIODIC_JSON_LOGS"); ok && v != "" {
		useJSON, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PERIODIC_JSON_LOGS: %w", err)
		}
		c.Log.JSON = useJSON
	}
	return nil
}
