package services

import (
	"fmt"
	"sort"
	"strings"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/shopspring/decimal"
)

// chartPalette is assigned to series and slices by index
var chartPalette = []string{
	"#2563EB", "#16A34A", "#DC2626", "#F59E0B", "#7C3AED",
	"#0891B2", "#DB2777", "#65A30D", "#EA580C", "#475569",
}

func paletteColor(i int) string {
	return chartPalette[i%len(chartPalette)]
}

var hundred = decimal.NewFromInt(100)

// scopeOf expands the request's calendar days into the instant bounds the store filters on
func scopeOf(req *models.ChartRequest) repositories.Scope {
	return repositories.Scope{
		Start:   req.RangeStart(),
		End:     req.RangeEnd(),
		Filters: req.Filters,
	}
}

// roundMoney rounds half away from zero on cents
func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// toFloat converts an aggregated value to the JSON payload number
func toFloat(d decimal.Decimal) float64 {
	return roundMoney(d).InexactFloat64()
}

// percentageOf returns round(part/total*10000)/100, or 0 when total is zero
func percentageOf(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(decimal.NewFromInt(10000)).Round(0).Div(hundred)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func unsupportedParam(param, value string, chartType models.ChartType, allowed []string) string {
	return fmt.Sprintf("%s %q is not supported for %s charts; allowed values: %s",
		param, value, chartType, strings.Join(allowed, ", "))
}

// validateMetricAndGroupBy checks the two parameters every aggregating strategy shares
func validateMetricAndGroupBy(req *models.ChartRequest, metrics, groupings []string) []string {
	var problems []string
	if req.Metric != "" && !contains(metrics, req.Metric) {
		problems = append(problems, unsupportedParam("metric", req.Metric, req.ChartType, metrics))
	}
	if req.GroupBy != "" && !contains(groupings, req.GroupBy) {
		problems = append(problems, unsupportedParam("groupBy", req.GroupBy, req.ChartType, groupings))
	}
	return problems
}

func validateTopN(req *models.ChartRequest, limit int) []string {
	if req.TopN < 0 || req.TopN > limit {
		return []string{fmt.Sprintf("topN must be between 1 and %d for %s charts", limit, req.ChartType)}
	}
	return nil
}

// displayLabel turns raw enum labels into their display names
func displayLabel(grouping, label string) string {
	if grouping == repositories.GroupType {
		return models.TransactionTypeLabel(label)
	}
	return label
}

// rawStats summarizes aggregated values before any post-processing
type rawStats struct {
	total decimal.Decimal
	min   decimal.Decimal
	max   decimal.Decimal
	count int
}

func (s *rawStats) add(v decimal.Decimal) {
	if s.count == 0 || v.LessThan(s.min) {
		s.min = v
	}
	if s.count == 0 || v.GreaterThan(s.max) {
		s.max = v
	}
	s.total = s.total.Add(v)
	s.count++
}

func (s *rawStats) average() decimal.Decimal {
	if s.count == 0 {
		return decimal.Zero
	}
	return s.total.Div(decimal.NewFromInt(int64(s.count)))
}

// labeledValue is a label/value pair ranked by value descending, label ascending
type labeledValue struct {
	key   string
	label string
	value decimal.Decimal
}

func sortByValueDesc(values []labeledValue) {
	sort.SliceStable(values, func(i, j int) bool {
		if !values[i].value.Equal(values[j].value) {
			return values[i].value.GreaterThan(values[j].value)
		}
		return values[i].label < values[j].label
	})
}
