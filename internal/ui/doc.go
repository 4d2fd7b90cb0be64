// Package ui provides terminal output styling and prompts for the padmap CLI.
//
// The package wraps Lipgloss styles for the audit report (green matched
// rows, red mismatched rows, summary banners) and provides the blocking y/n
// confirmation prompt used by the reconcile loop. Output degrades cleanly
// when stdout is not a terminal.
//
// # Logging Integration
//
// This package expects logging to be controlled via the PADMAP_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent, allowing
// the curated report output to be displayed cleanly.
package ui
