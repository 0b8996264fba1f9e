package main

import (
	"bytes"
	"testing"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderChart_Line(t *testing.T) {
	var buf bytes.Buffer
	resp := &dto.LineChartResponse{
		Type: models.ChartTypeLine,
		Series: []dto.LineSeries{
			{Name: "revenue", Data: []dto.LinePoint{{X: "2024-01", Y: 1200.5}, {X: "2024-02", Y: 800}}},
		},
		Metadata: dto.LineMetadata{Metric: "revenue", GroupBy: "month", Total: 2000.5, Average: 1000.25, Min: 800, Max: 1200.5},
	}

	require.NoError(t, renderChart(&buf, resp))

	out := buf.String()
	assert.Contains(t, out, "month")
	assert.Contains(t, out, "2024-02")
	assert.Contains(t, out, "1200.50")
	assert.Contains(t, out, "total 2000.50, average 1000.25")
}

func TestRenderChart_PieAndKPI(t *testing.T) {
	var buf bytes.Buffer
	pie := &dto.PieChartResponse{
		Slices: []dto.PieSlice{
			{Label: "Consulting", Value: 750, Percentage: 75},
			{Label: "Others", Value: 250, Percentage: 25},
		},
		Metadata: dto.PieMetadata{Metric: "revenue", GroupBy: "category", Total: 1000},
	}
	require.NoError(t, renderChart(&buf, pie))
	assert.Contains(t, buf.String(), "Consulting")
	assert.Contains(t, buf.String(), "75.00")

	buf.Reset()
	kpi := &dto.KPIChartResponse{
		Metrics: []dto.KPIMetric{{Key: "revenue", Label: "Revenue", Current: 120, Previous: 100, Change: 20, ChangePercentage: 20, Trend: dto.TrendUp}},
		Periods: dto.KPIPeriods{
			Current:  dto.Period{Start: "2024-02-01", End: "2024-02-29"},
			Previous: dto.Period{Start: "2024-01-03", End: "2024-01-31"},
		},
	}
	require.NoError(t, renderChart(&buf, kpi))
	assert.Contains(t, buf.String(), "2024-02-01..2024-02-29 vs 2024-01-03..2024-01-31")
	assert.Contains(t, buf.String(), "up")
}

func TestRenderChart_TableShowsCursor(t *testing.T) {
	var buf bytes.Buffer
	resp := &dto.TableChartResponse{
		Columns: []dto.TableColumn{
			{Key: "description", Label: "Description", Type: dto.ColumnTypeString},
			{Key: "amount", Label: "Amount", Type: dto.ColumnTypeCurrency},
		},
		Rows:    []map[string]interface{}{{"description": "Rent", "amount": 1500.0}},
		HasMore: true,
		Total:   42,
		Cursor:  "abc123",
	}

	require.NoError(t, renderChart(&buf, resp))

	assert.Contains(t, buf.String(), "1500.00")
	assert.Contains(t, buf.String(), "42 rows total, next cursor: abc123")
}

func TestRenderSummaryAndTypes(t *testing.T) {
	var buf bytes.Buffer
	renderSummary(&buf, &dto.DashboardSummaryResponse{
		TotalRevenue: 10000.01,
		LiquidProfit: -50,
		Metadata:     dto.DashboardMetadata{Period: dto.Period{Start: "2024-03-01", End: "2024-03-31"}},
	})
	assert.Contains(t, buf.String(), "10000.01")
	assert.Contains(t, buf.String(), "-50.00")

	buf.Reset()
	renderChartTypes(&buf, []dto.ChartMetadata{{Name: "table", SupportedMetrics: []string{"amount"}, SupportsPagination: true, CacheMaxAge: 120}})
	assert.Contains(t, buf.String(), "120s")
	assert.Contains(t, buf.String(), "true")
}

func TestChartArgsValidation(t *testing.T) {
	valid := chartArgs{ChartType: "pie", Output: "table"}
	valid.Start, valid.End = "2024-01-01", "2024-01-31"
	assert.NoError(t, validation.GetValidator().Struct(valid))

	invalid := chartArgs{ChartType: "radar", Output: "yaml"}
	invalid.Start, invalid.End = "2024-01-01", "31/01/2024"
	errs := validation.FormatErrors(validation.GetValidator().Struct(invalid))
	assert.Contains(t, errs, "type must be one of: line, bar, pie, table, kpi")
	assert.Contains(t, errs, "output must be one of: table json")
	assert.Contains(t, errs, "end must be a date in YYYY-MM-DD format")
}
