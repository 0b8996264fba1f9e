package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Scope is the date window and dimension filters every chart query runs under.
// Start and End are inclusive instants.
type Scope struct {
	Start   time.Time
	End     time.Time
	Filters models.ChartFilters
}

// AggregateQuery groups the scoped transactions by Group (and optionally Series)
// and aggregates Metric per cell
type AggregateQuery struct {
	Scope  Scope
	Metric string
	Group  string
	Series string
}

// chartRepository implements ChartRepositoryInterface
type chartRepository struct {
	db       *gorm.DB
	resolver *DimensionResolver
}

// NewChartRepository creates a new chart repository for the dialect of db
func NewChartRepository(db *gorm.DB) ChartRepositoryInterface {
	return &chartRepository{
		db:       db,
		resolver: NewDimensionResolver(db.Dialector.Name()),
	}
}

// Aggregate runs a grouped aggregation. Unknown metrics aggregate revenue.
func (r *chartRepository) Aggregate(ctx context.Context, query AggregateQuery) ([]models.AggregateRow, error) {
	metric, _ := r.resolver.ResolveMetric(query.Metric)

	group, err := r.resolver.ResolveGrouping(query.Group)
	if err != nil {
		return nil, err
	}

	selects := []string{
		group.KeyExpr + " AS group_key",
		group.LabelExpr + " AS group_label",
	}
	groupBy := []string{group.KeyExpr, group.LabelExpr}
	joins := append([]string{}, group.Joins...)

	if query.Series != "" {
		series, err := r.resolver.ResolveGrouping(query.Series)
		if err != nil {
			return nil, err
		}
		selects = append(selects, series.KeyExpr+" AS series_key", series.LabelExpr+" AS series_label")
		groupBy = append(groupBy, series.KeyExpr, series.LabelExpr)
		joins = append(joins, series.Joins...)
	} else {
		selects = append(selects, "'' AS series_key", "'' AS series_label")
	}
	selects = append(selects, metric.Expr+" AS value")

	q := r.scoped(ctx, query.Scope).Select(strings.Join(selects, ", "))
	q = withJoins(q, joins)

	var rows []models.AggregateRow
	if err := q.Group(strings.Join(unique(groupBy), ", ")).
		Order("group_key ASC").
		Order("series_key ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate %s by %s: %w", metric.Name, group.Name, err)
	}

	return rows, nil
}

// PeriodMetrics computes the KPI sums for one period.
// Overdue: due before now, unpaid, PENDING or OVERDUE. Pending: due at or after now, PENDING, unpaid.
func (r *chartRepository) PeriodMetrics(ctx context.Context, scope Scope, now time.Time) (*models.PeriodMetrics, error) {
	now = now.UTC()

	selectSQL := strings.Join([]string{
		metricExprs[MetricRevenue] + " AS revenue",
		metricExprs[MetricExpense] + " AS expense",
		"COUNT(t.id) AS transaction_count",
		"COALESCE(SUM(CASE WHEN t.transaction_type = 'REVENUE' THEN 1 ELSE 0 END), 0) AS revenue_count",
		"COUNT(DISTINCT t.customer_id) AS distinct_customers",
		"COUNT(DISTINCT t.product_id) AS distinct_products",
		"COALESCE(SUM(CASE WHEN t.transaction_type = 'REVENUE' AND t.due_date < ? AND t.paid_at IS NULL AND t.payment_status IN ('PENDING', 'OVERDUE') THEN t.amount ELSE 0 END), 0) AS overdue_receivables",
		"COALESCE(SUM(CASE WHEN t.transaction_type = 'EXPENSE' AND t.due_date < ? AND t.paid_at IS NULL AND t.payment_status IN ('PENDING', 'OVERDUE') THEN t.amount ELSE 0 END), 0) AS overdue_payables",
		"COALESCE(SUM(CASE WHEN t.transaction_type = 'REVENUE' AND t.due_date >= ? AND t.paid_at IS NULL AND t.payment_status = 'PENDING' THEN t.amount ELSE 0 END), 0) AS pending_receivables",
		"COALESCE(SUM(CASE WHEN t.transaction_type = 'EXPENSE' AND t.due_date >= ? AND t.paid_at IS NULL AND t.payment_status = 'PENDING' THEN t.amount ELSE 0 END), 0) AS pending_payables",
	}, ", ")

	var result models.PeriodMetrics
	if err := r.scoped(ctx, scope).
		Select(selectSQL, now, now, now, now).
		Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("failed to compute period metrics: %w", err)
	}

	return &result, nil
}

// DashboardTotals computes the six summary-card sums.
// Overdue: due before now and OVERDUE, or PENDING and unpaid. Upcoming: due strictly after now, PENDING, unpaid.
func (r *chartRepository) DashboardTotals(ctx context.Context, scope Scope, now time.Time) (*models.DashboardTotals, error) {
	now = now.UTC()

	selectSQL := strings.Join([]string{
		metricExprs[MetricRevenue] + " AS revenue",
		metricExprs[MetricExpense] + " AS expense",
		"COALESCE(SUM(CASE WHEN t.transaction_type = 'REVENUE' AND t.due_date < ? AND (t.payment_status = 'OVERDUE' OR (t.payment_status = 'PENDING' AND t.paid_at IS NULL)) THEN t.amount ELSE 0 END), 0) AS overdue_receivable",
		"COALESCE(SUM(CASE WHEN t.transaction_type = 'EXPENSE' AND t.due_date < ? AND (t.payment_status = 'OVERDUE' OR (t.payment_status = 'PENDING' AND t.paid_at IS NULL)) THEN t.amount ELSE 0 END), 0) AS overdue_payable",
		"COALESCE(SUM(CASE WHEN t.transaction_type = 'REVENUE' AND t.due_date > ? AND t.payment_status = 'PENDING' AND t.paid_at IS NULL THEN t.amount ELSE 0 END), 0) AS upcoming_receivable",
		"COALESCE(SUM(CASE WHEN t.transaction_type = 'EXPENSE' AND t.due_date > ? AND t.payment_status = 'PENDING' AND t.paid_at IS NULL THEN t.amount ELSE 0 END), 0) AS upcoming_payable",
	}, ", ")

	var result models.DashboardTotals
	if err := r.scoped(ctx, scope).
		Select(selectSQL, now, now, now, now).
		Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("failed to compute dashboard totals: %w", err)
	}

	return &result, nil
}

// ListTransactions returns one page of raw transactions, newest first, and the total row count
func (r *chartRepository) ListTransactions(ctx context.Context, scope Scope, offset, limit int) ([]models.TransactionRow, int64, error) {
	var total int64
	if err := r.scoped(ctx, scope).
		Joins(joinCategories).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	var rows []models.TransactionRow
	if err := r.scoped(ctx, scope).
		Select(`CAST(t.id AS TEXT) AS id, t.occurred_at AS occurred_at, t.transaction_type AS type,
			c.name AS category_name, p.name AS product_name, cu.name AS customer_name,
			t.description AS description, t.quantity AS quantity, t.amount AS amount,
			t.payment_status AS payment_status`).
		Joins(joinCategories).
		Joins("LEFT JOIN products p ON p.id = t.product_id").
		Joins("LEFT JOIN customers cu ON cu.id = t.customer_id").
		Order("t.occurred_at DESC").
		Order("t.id DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return rows, total, nil
}

// SummarizeByDimension returns one page of per-lookup-row revenue/expense/count, highest revenue first
func (r *chartRepository) SummarizeByDimension(ctx context.Context, scope Scope, dimension string, offset, limit int) (*models.DimensionSummaryPage, error) {
	switch dimension {
	case GroupCategory, GroupProduct, GroupCustomer:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedGrouping, dimension)
	}

	group, err := r.resolver.ResolveGrouping(dimension)
	if err != nil {
		return nil, err
	}

	var totals struct {
		GroupCount   int64
		RevenueTotal decimal.Decimal
	}
	if err := withJoins(r.scoped(ctx, scope), group.Joins).
		Select(fmt.Sprintf("COUNT(DISTINCT %s) AS group_count, %s AS revenue_total", group.KeyExpr, metricExprs[MetricRevenue])).
		Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to count %s groups: %w", dimension, err)
	}

	var rows []models.DimensionSummary
	if err := withJoins(r.scoped(ctx, scope), group.Joins).
		Select(fmt.Sprintf("%s AS id, %s AS name, %s AS revenue, %s AS expense, COUNT(t.id) AS transaction_count",
			group.KeyExpr, group.LabelExpr, metricExprs[MetricRevenue], metricExprs[MetricExpense])).
		Group(group.KeyExpr + ", " + group.LabelExpr).
		Order("revenue DESC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to summarize by %s: %w", dimension, err)
	}

	return &models.DimensionSummaryPage{
		Rows:         rows,
		GroupCount:   totals.GroupCount,
		RevenueTotal: totals.RevenueTotal,
	}, nil
}

// scoped starts a query over transactions t restricted to the scope
func (r *chartRepository) scoped(ctx context.Context, scope Scope) *gorm.DB {
	q := r.db.WithContext(ctx).
		Table("transactions t").
		Where("t.occurred_at BETWEEN ? AND ?", scope.Start.UTC(), scope.End.UTC())

	f := scope.Filters
	if f.CategoryID != nil {
		q = q.Where("t.category_id = ?", *f.CategoryID)
	}
	if f.ProductID != nil {
		q = q.Where("t.product_id = ?", *f.ProductID)
	}
	if f.CustomerID != nil {
		q = q.Where("t.customer_id = ?", *f.CustomerID)
	}
	if f.Region != "" {
		q = q.Where("t.customer_id IN (SELECT id FROM customers WHERE region = ?)", f.Region)
	}

	return q
}

func withJoins(q *gorm.DB, joins []string) *gorm.DB {
	for _, join := range unique(joins) {
		q = q.Joins(join)
	}
	return q
}

func unique(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
