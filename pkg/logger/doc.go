// Package logger builds configured *slog.Logger instances with sensible
// defaults for this codebase: JSON output for production, text output and
// debug level for development.
//
//	log := logger.New(logger.WithDevelopment("mailwright"))
//	log.Info("server started", "addr", addr)
package logger
