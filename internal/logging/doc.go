// Package logging provides structured logging for the padmap CLI.
//
// This package wraps zap logger with convenience functions for the logging
// patterns used throughout the tool. Logging is silent by default so the
// curated report output stays clean; set the PADMAP_LOG_LEVEL environment
// variable to "debug", "info", "warn", or "error" to enable output.
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Debug("command complete",
//	    zap.Strings("args", args),
//	    zap.String("output", output),
//	)
//
// Debug level records every external command invocation and every rule
// comparison, which is the primary tool for diagnosing why a mapping does
// not converge.
//
// # Configuration
//
// Initialize logging at command startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
