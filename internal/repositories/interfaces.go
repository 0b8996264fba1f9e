package repositories

import (
	"context"
	"time"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/pagination"
)

// ChartRepositoryInterface defines the aggregation queries behind charts and the dashboard summary
type ChartRepositoryInterface interface {
	Aggregate(ctx context.Context, query AggregateQuery) ([]models.AggregateRow, error)
	PeriodMetrics(ctx context.Context, scope Scope, now time.Time) (*models.PeriodMetrics, error)
	DashboardTotals(ctx context.Context, scope Scope, now time.Time) (*models.DashboardTotals, error)
	ListTransactions(ctx context.Context, scope Scope, offset, limit int) ([]models.TransactionRow, int64, error)
	SummarizeByDimension(ctx context.Context, scope Scope, dimension string, offset, limit int) (*models.DimensionSummaryPage, error)
}

// OptionsRepositoryInterface defines the lookup listing behind filter dropdowns
type OptionsRepositoryInterface interface {
	ListOptions(ctx context.Context, dimension, search string, after *pagination.Cursor, limit int) ([]models.OptionItem, error)
}
