// Package logging provides structured logging utilities for craftplan components.
//
// # Overview
//
// This package wraps the standard library slog package with craftplan defaults
// so the CLI, the planning service and the search engine all emit the same
// JSON records to stderr. The level comes from an explicit flag or, failing
// that, from the LOG_LEVEL environment variable. Every record carries the
// module name and version; debug loggers also record the source location.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: per-search progress, cache hits, request tracing
//   - INFO: plans found, server lifecycle (default)
//   - WARN/WARNING: searches that ended without a plan
//   - ERROR: failures requiring attention
//
// # Usage
//
// Setting the default logger:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("craftpland", version)
//	    slog.Info("starting", "port", 8080)
//	}
//
// Setting an explicit level, as the CLI does for --log-level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("craftplan", version, "debug")
//
// Creating a standalone logger, e.g. to hand to search.WithLogger:
//
//	logger := logging.NewStructuredLogger("craftplan", version, "warn")
//
// # Output Format
//
//	{
//	    "time": "2026-01-15T10:30:00.123Z",
//	    "level": "WARN",
//	    "msg": "failed to find a plan within time limit",
//	    "module": "craftplan",
//	    "version": "v1.0.0",
//	    "elapsed": "5.000012s",
//	    "discovered": 81234
//	}
package logging
