// Package observability provides logging and metrics.
package observability

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Logger wraps slog.Logger to provide specialized logging methods.
type Logger struct {
	*slog.Logger
}

// NewLogger returns a JSON logger at the given level ("debug", "info",
// "warn", "error"; anything else means info).
func NewLogger(level string) *Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	return &Logger{Logger: slog.New(handler)}
}

// GlobalLogger is the default logger instance for the application.
var GlobalLogger = NewLogger("info")

// LogContextKey is a type for context keys used by the logging package.
type LogContextKey string

// CorrelationID is the context key carrying the per-request correlation id.
const CorrelationID LogContextKey = "correlation_id"

// WithCorrelationID returns a new context with the given correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationID, id)
}

// ExtractCorrelationID retrieves the correlation ID from the context.
func ExtractCorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(CorrelationID).(string); ok {
		return id
	}
	return ""
}

// StoreLogger provides structured logging for store operations and records
// the mutation metric as a side effect, so stores log and count in one call.
type StoreLogger struct {
	storeName string
	logger    *Logger
}

// NewStoreLogger creates a new StoreLogger for the given store.
func NewStoreLogger(storeName string, logger *Logger) *StoreLogger {
	if logger == nil {
		logger = GlobalLogger
	}
	return &StoreLogger{storeName: storeName, logger: logger}
}

// LogMutation logs a store mutation, increments its counter and attaches the
// mutation as an event to the active trace span, if any.
func (l *StoreLogger) LogMutation(ctx context.Context, operation string, fields map[string]interface{}) {
	StoreMutationsTotal.WithLabelValues(l.storeName, operation).Inc()
	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.AddEvent("store."+operation, trace.WithAttributes(
			attribute.String("store.name", l.storeName),
		))
	}
	attrs := []any{
		slog.String("store", l.storeName),
		slog.String("operation", operation),
		slog.String("correlation_id", ExtractCorrelationID(ctx)),
	}
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	l.logger.InfoContext(ctx, "store mutation", attrs...)
}

// LogNoop logs a mutation call that changed nothing (missing id, idempotent
// repeat). Noops are logged at debug and not counted as mutations.
func (l *StoreLogger) LogNoop(ctx context.Context, operation string, fields map[string]interface{}) {
	attrs := []any{
		slog.String("store", l.storeName),
		slog.String("operation", operation),
		slog.String("correlation_id", ExtractCorrelationID(ctx)),
	}
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	l.logger.DebugContext(ctx, "store noop", attrs...)
}
