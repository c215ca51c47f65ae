package config

import (
	"fmt"
	"os"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

const (
	EnvAgentProviderName = "AUDITOR_AGENT_PROVIDER_NAME"
	EnvAgentBaseURL      = "AUDITOR_AGENT_BASE_URL"
	EnvAgentToken        = "AUDITOR_AGENT_TOKEN"
	EnvAgentDeployment   = "AUDITOR_AGENT_DEPLOYMENT"
	EnvAgentAPIVersion   = "AUDITOR_AGENT_API_VERSION"
	EnvAgentAuthType     = "AUDITOR_AGENT_AUTH_TYPE"
	EnvAgentModelName    = "AUDITOR_AGENT_MODEL_NAME"
	EnvAgentTemperature  = "AUDITOR_AGENT_TEMPERATURE"
)

// FinalizeAgent applies the three-phase finalize pattern to a go-agents
// AgentConfig: defaults from DefaultAgentConfig, environment variable
// overrides, and validation. Temperature defaults low to bias the oracle
// toward consistent analysis.
func FinalizeAgent(c *gaconfig.AgentConfig) error {
	loadAgentDefaults(c)
	loadAgentEnv(c)
	return validateAgent(c)
}

func mergeAgent(base, overlay *gaconfig.AgentConfig) {
	if overlay.Name != "" {
		base.Name = overlay.Name
	}
	if overlay.Provider != nil {
		base.Provider = overlay.Provider
	}
	if overlay.Model != nil {
		base.Model = overlay.Model
	}
}

func loadAgentDefaults(c *gaconfig.AgentConfig) {
	defaults := gaconfig.DefaultAgentConfig()
	defaults.Merge(c)
	*c = defaults

	if c.Provider == nil {
		c.Provider = &gaconfig.ProviderConfig{}
	}
	if c.Provider.Options == nil {
		c.Provider.Options = make(map[string]any)
	}

	// Low temperature biases the oracle toward consistent analysis.
	if _, ok := c.Provider.Options["temperature"]; !ok {
		c.Provider.Options["temperature"] = 0.3
	}
}

func loadAgentEnv(c *gaconfig.AgentConfig) {
	if c.Provider == nil {
		c.Provider = &gaconfig.ProviderConfig{}
	}
	if c.Provider.Options == nil {
		c.Provider.Options = make(map[string]any)
	}
	if c.Model == nil {
		c.Model = &gaconfig.ModelConfig{}
	}
	if v := os.Getenv(EnvAgentProviderName); v != "" {
		c.Provider.Name = v
	}
	if v := os.Getenv(EnvAgentBaseURL); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv(EnvAgentModelName); v != "" {
		c.Model.Name = v
	}

	setOption := func(envVar, key string) {
		if v := os.Getenv(envVar); v != "" {
			c.Provider.Options[key] = v
		}
	}

	setOption(EnvAgentToken, "token")
	setOption(EnvAgentDeployment, "deployment")
	setOption(EnvAgentAPIVersion, "api_version")
	setOption(EnvAgentAuthType, "auth_type")
	setOption(EnvAgentTemperature, "temperature")
}

func validateAgent(c *gaconfig.AgentConfig) error {
	if c.Name == "" {
		return fmt.Errorf("name required")
	}
	if c.Provider == nil {
		return fmt.Errorf("provider required")
	}
	if c.Provider.Name == "" {
		return fmt.Errorf("provider name required")
	}
	if c.Model == nil {
		return fmt.Errorf("model required")
	}
	return nil
}
