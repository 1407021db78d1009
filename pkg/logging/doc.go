// Package logging provides structured logging configuration for igdmock.
//
// It wraps log/slog so every component logs the same way. Components
// accept a *slog.Logger in their constructor or options; when logging is
// unwanted, pass logging.Nop().
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatText,
//	})
//
//	logger.Info("server started", "addr", addr)
//
// Text output is meant for terminals, JSON for log aggregation.
package logging
