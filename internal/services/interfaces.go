package services

import (
	"context"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
)

// ChartStrategy turns the common chart request into one chart type's payload
type ChartStrategy interface {
	Type() models.ChartType
	CanHandle(req *models.ChartRequest) bool
	// Validate returns one message per unsupported parameter; empty means valid
	Validate(req *models.ChartRequest) []string
	Execute(ctx context.Context, req *models.ChartRequest) (dto.ChartResponse, error)
	Metadata() dto.ChartMetadata
}

// ChartServiceInterface is the single entry point the HTTP layer calls for charts
type ChartServiceInterface interface {
	GetChart(ctx context.Context, req models.ChartRequest) (*ChartResult, error)
	ValidateRequest(ctx context.Context, req models.ChartRequest) (models.ChartRequest, error)
	ETag(req models.ChartRequest) string
	CacheControlHeader(chartType models.ChartType) string
	TTL(chartType models.ChartType) time.Duration
	Metadata(chartType models.ChartType) (dto.ChartMetadata, error)
	ListTypes() []dto.ChartMetadata
}

// DashboardSummaryServiceInterface computes the summary cards
type DashboardSummaryServiceInterface interface {
	GetSummary(ctx context.Context, req models.DashboardRequest) (*dto.DashboardSummaryResponse, error)
}

// OptionsServiceInterface lists filter dropdown values
type OptionsServiceInterface interface {
	ListOptions(ctx context.Context, dimension, search, cursor string, limit int) (*dto.OptionsResponse, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

type ChartLoggerInterface interface {
	LogChartServed(ctx context.Context, chartType models.ChartType, cacheHit bool, durationMs int64)
	LogChartFailed(ctx context.Context, chartType models.ChartType, params map[string]string, errorMsg string, durationMs int64)
	LogMetricFallback(ctx context.Context, chartType models.ChartType, requested string)
	LogCacheReadFailed(ctx context.Context, key string, errorMsg string)
	LogCacheWriteFailed(ctx context.Context, key string, errorMsg string)
	LogDashboardSummaryServed(ctx context.Context, cacheHit bool, durationMs int64)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}

// DataGeneratorInterface produces realistic lookup rows and transactions for local environments
type DataGeneratorInterface interface {
	GenerateLookups(products, customers int) *Lookups
	GenerateTransactions(lookups *Lookups, start, end, now time.Time, count int) []*models.Transaction
}
