// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Results of the calculator go to standard output, so the package default
// logger writes to standard error.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("input opened", slog.String("source", "-"))
//	logger.Error("read failed", slog.Any("error", err))
//
// # Configuration
//
// Configure a logger using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// The package default logger used by [Debug], [Info], etc. is reconfigured
// with [Config].
//
// # Supported Levels
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Messages below the configured level are
// discarded.
//
// # Output Formats
//
// Two output formats are supported: [FormatText] (default) and [FormatJSON].
// With [WithPretty], text output is colorized and unquoted.
package log
