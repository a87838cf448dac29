// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports a human-friendly console
// encoding for interactive runs and JSON for scheduled ones.
//
// # Run Correlation
//
// Every sync run gets a run ID. WithRunID attaches it to the logger so all
// entries written during one run (directory read, planning, each mutation)
// can be correlated afterwards.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, logger.NewRunID())
//	log.Info("Starting sync")
package logger
