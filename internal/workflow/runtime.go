package workflow

import (
	"log/slog"

	"github.com/clientops/auditor/internal/config"
	"github.com/clientops/auditor/internal/indicators"
	"github.com/clientops/auditor/internal/oracle"
	"github.com/clientops/auditor/internal/timeline"
)

// Runtime bundles the dependencies that workflow nodes require.
// It is constructed once per batch and shared read-only across cases.
type Runtime struct {
	Oracle   oracle.Oracle
	Engine   *indicators.Engine
	Scorer   *timeline.Scorer
	Pipeline config.PipelineConfig
	Logger   *slog.Logger
}
