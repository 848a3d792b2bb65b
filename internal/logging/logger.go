package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/inkwellapp/streak-service/internal/envconfig"
)

// NewLogger returns a slog logger emitting JSON for Cloud Logging, tagged with
// the service name. LOG_LEVEL (debug|info|warn|error) controls verbosity and
// defaults to info.
func NewLogger(service string) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     levelFromEnv(),
	})
	return slog.New(handler).With(slog.String("service", service))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(envconfig.Get("LOG_LEVEL", "info")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
