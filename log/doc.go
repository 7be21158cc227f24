// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// A [Logger] is configured at creation time with functional options for
// level, output format, timestamp layout, caller info, and colorized
// pretty printing:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText))
//	logger.Info("started", slog.String("source", path))
//
// The zero Logger discards all messages, so library code can accept a
// Logger value without nil checks.
//
// The package also maintains a default logger writing to stderr,
// reachable through the package-level functions and reconfigured with
// [Config]. Command-line flag handling uses this to apply logging flags
// before the rest of the CLI finishes parsing.
package log
