package logger

import (
	"os"

	"golang.org/x/exp/slog"

	"inotebook/internal/app/server/config"
	"inotebook/internal/utils/logger/handlers/slogpretty"
)

// New builds the process-wide logger for the given environment: colored
// human-readable output locally, JSON elsewhere.
func New(env string) *slog.Logger {
	switch env {
	case config.EnvLocal:
		return setupPrettySlog()
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.HandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
	}
	return slog.New(opts.NewHandler(os.Stdout))
}
