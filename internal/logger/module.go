package logger

import (
	"log/slog"

	"github.com/polkiloo/careerpath/internal/config"
	"go.uber.org/fx"
)

// Module wires slog logger for dependency injection.
var Module = fx.Provide(newFromConfig)

func newFromConfig(cfg *config.Config) *slog.Logger {
	return NewWithLevel(cfg.LogLevel)
}
