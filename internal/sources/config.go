package sources

import (
	"fmt"
	"os"
	"strings"
)

// Config holds Document Text Source parameters.
type Config struct {
	Dir       string `toml:"dir"`
	Extension string `toml:"extension"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Dir       string
	Extension string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Dir != "" {
		c.Dir = overlay.Dir
	}
	if overlay.Extension != "" {
		c.Extension = overlay.Extension
	}
}

func (c *Config) loadDefaults() {
	if c.Extension == "" {
		c.Extension = ".txt"
	}
}

func (c *Config) loadEnv(env *Env) {
	if v := os.Getenv(env.Dir); v != "" {
		c.Dir = v
	}
	if v := os.Getenv(env.Extension); v != "" {
		c.Extension = v
	}
}

func (c *Config) validate() error {
	if !strings.HasPrefix(c.Extension, ".") {
		return fmt.Errorf("extension must start with a dot: %q", c.Extension)
	}
	return nil
}
