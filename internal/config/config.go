// Package config loads and finalizes the auditor's configuration: a base
// TOML file, an optional per-environment overlay, and AUDITOR_* environment
// overrides. All values are explicit constructor-time configuration; there
// are no process-wide singletons.
package config

import (
	"fmt"
	"os"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
	"github.com/pelletier/go-toml/v2"

	"github.com/clientops/auditor/internal/sources"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvAuditorEnv     = "AUDITOR_ENV"
	EnvAuditorVersion = "AUDITOR_VERSION"
)

var sourcesEnv = &sources.Env{
	Dir:       "AUDITOR_SOURCES_DIR",
	Extension: "AUDITOR_SOURCES_EXTENSION",
}

// Config is the root configuration for the auditor.
type Config struct {
	Pipeline PipelineConfig       `toml:"pipeline"`
	Agent    gaconfig.AgentConfig `toml:"agent"`
	Sources  sources.Config       `toml:"sources"`
	Version  string               `toml:"version"`
}

// Env returns the AUDITOR_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvAuditorEnv); env != "" {
		return env
	}
	return "local"
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and
// environment variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Pipeline.Merge(&overlay.Pipeline)
	c.Sources.Merge(&overlay.Sources)
	mergeAgent(&c.Agent, &overlay.Agent)
}

// Finalize applies defaults, environment variable overrides, and validation
// across all sub-configs.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.Pipeline.Finalize(); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if err := c.Sources.Finalize(sourcesEnv); err != nil {
		return fmt.Errorf("sources: %w", err)
	}
	if err := FinalizeAgent(&c.Agent); err != nil {
		return fmt.Errorf("agent: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvAuditorVersion); v != "" {
		c.Version = v
	}
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvAuditorEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
