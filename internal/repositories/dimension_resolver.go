package repositories

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnsupportedGrouping = errors.New("unsupported grouping")

const (
	MetricRevenue  = "revenue"
	MetricExpense  = "expense"
	MetricProfit   = "profit"
	MetricQuantity = "quantity"
	MetricCount    = "count"
)

const (
	GroupCategory = "category"
	GroupProduct  = "product"
	GroupCustomer = "customer"
	GroupRegion   = "region"
	GroupDay      = "day"
	GroupWeek     = "week"
	GroupMonth    = "month"
	GroupQuarter  = "quarter"
	GroupYear     = "year"
	GroupType     = "type"
	GroupStatus   = "status"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// Granularity is the truncation unit of a time-based grouping
type Granularity string

const (
	GranularityNone    Granularity = ""
	GranularityDay     Granularity = "day"
	GranularityWeek    Granularity = "week"
	GranularityMonth   Granularity = "month"
	GranularityQuarter Granularity = "quarter"
	GranularityYear    Granularity = "year"
)

// MetricExpr is the aggregation expression behind a logical metric
type MetricExpr struct {
	Name string
	Expr string
}

// Grouping is the group/label expression pair behind a logical grouping key,
// plus the lookup join it needs. Joins reference the transactions table as "t".
type Grouping struct {
	Name        string
	KeyExpr     string
	LabelExpr   string
	Joins       []string
	TimeBased   bool
	Granularity Granularity
}

const (
	joinCategories = "INNER JOIN categories c ON c.id = t.category_id"
	joinProducts   = "INNER JOIN products p ON p.id = t.product_id"
	joinCustomers  = "INNER JOIN customers cu ON cu.id = t.customer_id"
)

var metricExprs = map[string]string{
	MetricRevenue:  "COALESCE(SUM(CASE WHEN t.transaction_type = 'REVENUE' THEN t.amount ELSE 0 END), 0)",
	MetricExpense:  "COALESCE(SUM(CASE WHEN t.transaction_type = 'EXPENSE' THEN t.amount ELSE 0 END), 0)",
	MetricProfit:   "COALESCE(SUM(CASE WHEN t.transaction_type = 'REVENUE' THEN t.amount WHEN t.transaction_type = 'EXPENSE' THEN -t.amount ELSE 0 END), 0)",
	MetricQuantity: "COALESCE(SUM(t.quantity), 0)",
	MetricCount:    "COUNT(t.id)",
}

var dimensionGroupings = map[string]Grouping{
	GroupCategory: {Name: GroupCategory, KeyExpr: "CAST(c.id AS TEXT)", LabelExpr: "c.name", Joins: []string{joinCategories}},
	GroupProduct:  {Name: GroupProduct, KeyExpr: "CAST(p.id AS TEXT)", LabelExpr: "p.name", Joins: []string{joinProducts}},
	GroupCustomer: {Name: GroupCustomer, KeyExpr: "CAST(cu.id AS TEXT)", LabelExpr: "cu.name", Joins: []string{joinCustomers}},
	GroupRegion:   {Name: GroupRegion, KeyExpr: "cu.region", LabelExpr: "cu.region", Joins: []string{joinCustomers}},
	GroupType:     {Name: GroupType, KeyExpr: "t.transaction_type", LabelExpr: "t.transaction_type"},
	GroupStatus:   {Name: GroupStatus, KeyExpr: "t.payment_status", LabelExpr: "t.payment_status"},
}

var bucketExprs = map[string]map[Granularity]string{
	DialectPostgres: {
		GranularityDay:     "to_char(t.occurred_at, 'YYYY-MM-DD')",
		GranularityWeek:    "to_char(date_trunc('week', t.occurred_at), 'YYYY-MM-DD')",
		GranularityMonth:   "to_char(t.occurred_at, 'YYYY-MM')",
		GranularityQuarter: `to_char(t.occurred_at, 'YYYY-"Q"Q')`,
		GranularityYear:    "to_char(t.occurred_at, 'YYYY')",
	},
	DialectSQLite: {
		GranularityDay:     "strftime('%Y-%m-%d', t.occurred_at)",
		GranularityWeek:    "date(t.occurred_at, 'weekday 0', '-6 days')",
		GranularityMonth:   "strftime('%Y-%m', t.occurred_at)",
		GranularityQuarter: "(strftime('%Y', t.occurred_at) || '-Q' || ((CAST(strftime('%m', t.occurred_at) AS INTEGER) + 2) / 3))",
		GranularityYear:    "strftime('%Y', t.occurred_at)",
	},
}

// DimensionResolver maps logical metric and grouping names to SQL for one dialect
type DimensionResolver struct {
	dialect string
}

// NewDimensionResolver creates a resolver; any dialect other than sqlite is treated as postgres
func NewDimensionResolver(dialect string) *DimensionResolver {
	if dialect != DialectSQLite {
		dialect = DialectPostgres
	}
	return &DimensionResolver{dialect: dialect}
}

func (r *DimensionResolver) Dialect() string {
	return r.dialect
}

// ResolveMetric returns the aggregation for name. Unknown names resolve to revenue with ok=false.
func (r *DimensionResolver) ResolveMetric(name string) (MetricExpr, bool) {
	if expr, ok := metricExprs[name]; ok {
		return MetricExpr{Name: name, Expr: expr}, true
	}
	return MetricExpr{Name: MetricRevenue, Expr: metricExprs[MetricRevenue]}, false
}

// ResolveGrouping returns the group/label/join triple for name
func (r *DimensionResolver) ResolveGrouping(name string) (Grouping, error) {
	if g, ok := dimensionGroupings[name]; ok {
		return g, nil
	}

	granularity := Granularity(name)
	if expr, ok := bucketExprs[r.dialect][granularity]; ok {
		return Grouping{
			Name:        name,
			KeyExpr:     expr,
			LabelExpr:   expr,
			TimeBased:   true,
			Granularity: granularity,
		}, nil
	}

	return Grouping{}, fmt.Errorf("%w: %q", ErrUnsupportedGrouping, name)
}

// SupportedMetrics lists the metric names in display order
func SupportedMetrics() []string {
	return []string{MetricRevenue, MetricExpense, MetricProfit, MetricQuantity, MetricCount}
}

func IsKnownMetric(name string) bool {
	_, ok := metricExprs[name]
	return ok
}

// TimeGroupings lists the time-bucket grouping keys from finest to coarsest
func TimeGroupings() []string {
	return []string{GroupDay, GroupWeek, GroupMonth, GroupQuarter, GroupYear}
}

// DimensionGroupings lists the categorical grouping keys
func DimensionGroupings() []string {
	return []string{GroupCategory, GroupProduct, GroupCustomer, GroupRegion, GroupType, GroupStatus}
}

func IsTimeGrouping(name string) bool {
	for _, g := range TimeGroupings() {
		if g == name {
			return true
		}
	}
	return false
}

// BucketKey formats t the way the SQL bucket expressions do
func BucketKey(g Granularity, t time.Time) string {
	t = t.UTC()
	switch g {
	case GranularityWeek:
		return weekStart(t).Format("2006-01-02")
	case GranularityMonth:
		return t.Format("2006-01")
	case GranularityQuarter:
		return fmt.Sprintf("%d-Q%d", t.Year(), (int(t.Month())+2)/3)
	case GranularityYear:
		return t.Format("2006")
	default:
		return t.Format("2006-01-02")
	}
}

// BucketKeys returns every bucket key touching [start, end] in ascending order, one per bucket
func BucketKeys(g Granularity, start, end time.Time) []string {
	start = truncateDay(start)
	end = truncateDay(end)
	if end.Before(start) {
		return []string{}
	}

	var cursor time.Time
	switch g {
	case GranularityWeek:
		cursor = weekStart(start)
	case GranularityMonth:
		cursor = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	case GranularityQuarter:
		firstMonth := time.Month((int(start.Month())-1)/3*3 + 1)
		cursor = time.Date(start.Year(), firstMonth, 1, 0, 0, 0, 0, time.UTC)
	case GranularityYear:
		cursor = time.Date(start.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	default:
		cursor = start
	}

	keys := make([]string, 0)
	for !cursor.After(end) {
		keys = append(keys, BucketKey(g, cursor))
		switch g {
		case GranularityWeek:
			cursor = cursor.AddDate(0, 0, 7)
		case GranularityMonth:
			cursor = cursor.AddDate(0, 1, 0)
		case GranularityQuarter:
			cursor = cursor.AddDate(0, 3, 0)
		case GranularityYear:
			cursor = cursor.AddDate(1, 0, 0)
		default:
			cursor = cursor.AddDate(0, 0, 1)
		}
	}
	return keys
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// weekStart returns the Monday of t's week
func weekStart(t time.Time) time.Time {
	day := truncateDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
