// Package oracle wraps the external free-text reasoning service the
// classifier consults as its primary signal source.
package oracle

import (
	"context"
	"fmt"
	"strings"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// Oracle is the external reasoning collaborator. Implementations send a
// bounded prompt and return the plain-text reply; no structured schema is
// enforced by the service, so callers must parse tolerantly.
type Oracle interface {
	Consult(ctx context.Context, prompt string) (string, error)
	Model() string
	Provider() string
}

// Agent is an Oracle backed by a go-agents chat agent. A fresh agent is
// created per consultation, matching how workflow nodes use agents
// elsewhere; the config itself is immutable after construction.
type Agent struct {
	cfg gaconfig.AgentConfig
}

// NewAgent creates an agent-backed Oracle from a finalized AgentConfig.
func NewAgent(cfg gaconfig.AgentConfig) *Agent {
	return &Agent{cfg: cfg}
}

// Consult sends the prompt as a single chat turn and returns the reply text.
// Transport and provider failures surface as ErrUnavailable; a blank reply
// surfaces as ErrEmptyReply.
func (o *Agent) Consult(ctx context.Context, prompt string) (string, error) {
	a, err := agent.New(&o.cfg)
	if err != nil {
		return "", fmt.Errorf("%w: create agent: %w", ErrUnavailable, err)
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: chat call: %w", ErrUnavailable, err)
	}

	content := resp.Content()
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyReply
	}

	return content, nil
}

// Model returns the configured model name.
func (o *Agent) Model() string {
	if o.cfg.Model == nil {
		return ""
	}
	return o.cfg.Model.Name
}

// Provider returns the configured provider name.
func (o *Agent) Provider() string {
	if o.cfg.Provider == nil {
		return ""
	}
	return o.cfg.Provider.Name
}
