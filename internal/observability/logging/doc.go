// Package logging builds the slog loggers used across the service.
//
// Output is JSON by default (NewTextLogger exists for local runs), the level
// comes from LOG_LEVEL, and helpers attach request IDs and shared fields so
// handlers and infra log with consistent keys:
//
//	logger := logging.WithRequestID(ctx, slog.Default())
//	logger.Info("summary computed", slog.Int("sentences", n))
//
// A logger can also ride the context (WithLogger/FromContext) through the
// analysis pipeline.
package logging
