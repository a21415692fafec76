package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ironsheep/cardprep/internal/config"
)

// newLogger builds the application logger. Log level precedence (highest to
// lowest):
//  1. --log-level flag (explicit always wins)
//  2. -v/--verbose flag (shortcut for debug)
//  3. -q/--quiet flag (shortcut for warn)
//  4. CARDPREP_LOG_LEVEL environment / config file
//  5. Default (info)
func newLogger(flagLevel string, cfg *config.Config) zerolog.Logger {
	level := determineLogLevel(flagLevel, cfg)

	var w = zerolog.ConsoleWriter{Out: os.Stderr}
	logger := zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()
	if cfg.LogFormat == "json" {
		logger = zerolog.New(os.Stderr).Level(parseLevel(level)).With().Timestamp().Logger()
	}
	return logger
}

func determineLogLevel(flagLevel string, cfg *config.Config) string {
	if flagLevel != "" {
		return validateLogLevel(flagLevel)
	}

	if cfg.Verbose && cfg.Quiet {
		fmt.Fprintln(os.Stderr, "Warning: both --verbose and --quiet specified, using --quiet")
		return "warn"
	}
	if cfg.Verbose {
		return "debug"
	}
	if cfg.Quiet {
		return "warn"
	}

	if cfg.LogLevel != "" {
		return validateLogLevel(cfg.LogLevel)
	}
	return "info"
}

// validateLogLevel returns a valid level, falling back to "info" for
// unrecognized input.
func validateLogLevel(level string) string {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return level
	}
	fmt.Fprintf(os.Stderr, "Warning: invalid log level %q, using \"info\"\n", level)
	return "info"
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
