// Package logging provides structured logging for emoti.
//
// This package wraps a zap logger with package-level convenience functions.
// Logging is silent by default so the picker flow and the list/path commands
// produce no noise; set EMOTI_LOG_LEVEL (or pass --log-level) to enable it.
//
// # Log Levels
//
//   - Debug: dropped mapping entries, picker command lines, raw picker output
//   - Info: resolved config path, pipeline stage transitions
//   - Warn: non-fatal issues (picker fallback)
//   - Error: stage failures
//
// # Usage
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
//	logging.Info("Resolved config path", zap.String("path", path))
//
// Logs are written to stderr in console format so stdout stays usable for
// command output.
package logging
