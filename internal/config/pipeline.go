package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvPipelineMaxSummaryEvents  = "AUDITOR_PIPELINE_MAX_SUMMARY_EVENTS"
	EnvPipelineSummaryCharBudget = "AUDITOR_PIPELINE_SUMMARY_CHAR_BUDGET"
	EnvPipelineEventBodyLimit    = "AUDITOR_PIPELINE_EVENT_BODY_LIMIT"
	EnvPipelineWorkers           = "AUDITOR_PIPELINE_WORKERS"
	EnvPipelineOracleTimeout     = "AUDITOR_PIPELINE_ORACLE_TIMEOUT"
	EnvPipelineOracleRetries     = "AUDITOR_PIPELINE_ORACLE_RETRIES"
)

// PipelineConfig holds the extraction and classification pipeline bounds:
// summary size caps, event body cap, batch worker count, and oracle request
// parameters.
type PipelineConfig struct {
	MaxSummaryEvents  int    `toml:"max_summary_events"`
	SummaryCharBudget int    `toml:"summary_char_budget"`
	EventBodyLimit    int    `toml:"event_body_limit"`
	Workers           int    `toml:"workers"`
	OracleTimeout     string `toml:"oracle_timeout"`
	OracleRetries     int    `toml:"oracle_retries"`
}

// OracleTimeoutDuration returns OracleTimeout as a time.Duration.
func (c *PipelineConfig) OracleTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.OracleTimeout)
	return d
}

// Merge overwrites non-zero fields from overlay.
func (c *PipelineConfig) Merge(overlay *PipelineConfig) {
	if overlay.MaxSummaryEvents != 0 {
		c.MaxSummaryEvents = overlay.MaxSummaryEvents
	}
	if overlay.SummaryCharBudget != 0 {
		c.SummaryCharBudget = overlay.SummaryCharBudget
	}
	if overlay.EventBodyLimit != 0 {
		c.EventBodyLimit = overlay.EventBodyLimit
	}
	if overlay.Workers != 0 {
		c.Workers = overlay.Workers
	}
	if overlay.OracleTimeout != "" {
		c.OracleTimeout = overlay.OracleTimeout
	}
	if overlay.OracleRetries != 0 {
		c.OracleRetries = overlay.OracleRetries
	}
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *PipelineConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

func (c *PipelineConfig) loadDefaults() {
	if c.MaxSummaryEvents == 0 {
		c.MaxSummaryEvents = 15
	}
	if c.SummaryCharBudget == 0 {
		c.SummaryCharBudget = 12000
	}
	if c.EventBodyLimit == 0 {
		c.EventBodyLimit = 500
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
	if c.OracleTimeout == "" {
		c.OracleTimeout = "2m"
	}
	if c.OracleRetries == 0 {
		c.OracleRetries = 2
	}
}

func (c *PipelineConfig) loadEnv() {
	setInt := func(envVar string, target *int) {
		if v := os.Getenv(envVar); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*target = n
			}
		}
	}

	setInt(EnvPipelineMaxSummaryEvents, &c.MaxSummaryEvents)
	setInt(EnvPipelineSummaryCharBudget, &c.SummaryCharBudget)
	setInt(EnvPipelineEventBodyLimit, &c.EventBodyLimit)
	setInt(EnvPipelineWorkers, &c.Workers)
	setInt(EnvPipelineOracleRetries, &c.OracleRetries)

	if v := os.Getenv(EnvPipelineOracleTimeout); v != "" {
		c.OracleTimeout = v
	}
}

func (c *PipelineConfig) validate() error {
	if c.MaxSummaryEvents < 1 {
		return fmt.Errorf("max_summary_events must be positive: %d", c.MaxSummaryEvents)
	}
	if c.SummaryCharBudget < 1 {
		return fmt.Errorf("summary_char_budget must be positive: %d", c.SummaryCharBudget)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive: %d", c.Workers)
	}
	if c.OracleRetries < 0 {
		return fmt.Errorf("oracle_retries must not be negative: %d", c.OracleRetries)
	}
	if _, err := time.ParseDuration(c.OracleTimeout); err != nil {
		return fmt.Errorf("invalid oracle_timeout: %w", err)
	}
	return nil
}
