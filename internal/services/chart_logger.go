package services

import (
	"context"
	"log/slog"
	"time"

	"finance-dashboard/internal/models"
)

// RequestIDContextKey is the context key the HTTP layer stores the request trace id under
const RequestIDContextKey = "request_id"

// ChartLogger provides structured logging for chart and dashboard operations
type ChartLogger struct {
	logger *slog.Logger
}

// NewChartLogger creates a new chart logger
func NewChartLogger(logger *slog.Logger) ChartLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChartLogger{
		logger: logger,
	}
}

// LogChartServed logs a chart response, from cache or freshly computed
func (cl *ChartLogger) LogChartServed(ctx context.Context, chartType models.ChartType, cacheHit bool, durationMs int64) {
	eventType := "chart_served"
	if cacheHit {
		eventType = "chart_cache_hit"
	}
	cl.logger.InfoContext(ctx, "chart served",
		slog.String("event_type", eventType),
		slog.String("chart_type", string(chartType)),
		slog.Bool("cache_hit", cacheHit),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogChartFailed logs an unexpected failure while computing a chart
func (cl *ChartLogger) LogChartFailed(ctx context.Context, chartType models.ChartType, params map[string]string, errorMsg string, durationMs int64) {
	cl.logger.ErrorContext(ctx, "chart failed",
		slog.String("event_type", "chart_failed"),
		slog.String("chart_type", string(chartType)),
		slog.Any("params", params),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *ChartLogger) LogMetricFallback(ctx context.Context, chartType models.ChartType, requested string) {
	cl.logger.WarnContext(ctx, "unknown metric, falling back to revenue",
		slog.String("event_type", "chart_metric_fallback"),
		slog.String("chart_type", string(chartType)),
		slog.String("requested_metric", requested),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *ChartLogger) LogCacheReadFailed(ctx context.Context, key string, errorMsg string) {
	cl.logger.WarnContext(ctx, "cache read failed",
		slog.String("event_type", "chart_cache_read_failed"),
		slog.String("cache_key", key),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *ChartLogger) LogCacheWriteFailed(ctx context.Context, key string, errorMsg string) {
	cl.logger.WarnContext(ctx, "cache write failed",
		slog.String("event_type", "chart_cache_write_failed"),
		slog.String("cache_key", key),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogDashboardSummaryServed logs a dashboard summary response
func (cl *ChartLogger) LogDashboardSummaryServed(ctx context.Context, cacheHit bool, durationMs int64) {
	cl.logger.InfoContext(ctx, "dashboard summary served",
		slog.String("event_type", "dashboard_summary_served"),
		slog.Bool("cache_hit", cacheHit),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (cl *ChartLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	cl.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// Helper functions

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(RequestIDContextKey).(string); ok {
		return requestID
	}
	return ""
}
