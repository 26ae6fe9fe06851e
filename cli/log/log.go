package log

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/kenny8zeng/autoclear-backup/cli/flags"
)

// Base is a bare logger without attributes
var Base *slog.Logger

// logger is the tool logger with default attributes
var logger *slog.Logger

func Init() error {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(viper.GetString(flags.LogLevel))); err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	options := slog.HandlerOptions{
		AddSource: viper.GetBool(flags.LogSource),
		Level:     logLevel,
	}

	// Logs go to stderr: stdout belongs to the command output.
	switch format := viper.GetString(flags.LogFormat); format {
	case "json":
		Base = slog.New(slog.NewJSONHandler(os.Stderr, &options))
	case "text":
		Base = slog.New(slog.NewTextHandler(os.Stderr, &options))
	default:
		return fmt.Errorf("unknown log format '%s'", format)
	}

	logger = Base.With("component", "autoclear")
	return nil
}

// Proxies for slog.Logger methods

func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}

func With(args ...any) *slog.Logger {
	return logger.With(args...)
}
