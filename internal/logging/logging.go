package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/config"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init initializes the logging system, writing logs to
// ~/.plannex/logs/plannex.log. Uses text format for human readability.
func Init(level string) error {
	logDir := filepath.Join(config.Dir(), "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, "plannex.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: parseLevel(level),
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
