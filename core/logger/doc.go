// Package logger provides slog attribute helpers shared across the module.
//
// Helpers return an empty slog.Attr for nil or zero inputs, so call sites
// never need explicit nil checks:
//
//	log.Info("request finished", logger.Error(err), logger.StatusCode(code))
package logger
