package services

import (
	"testing"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestPercentageOf(t *testing.T) {
	tests := []struct {
		name     string
		part     string
		total    string
		expected string
	}{
		{"half", "50", "100", "50"},
		{"one third rounds down", "1", "3", "33.33"},
		{"two thirds rounds up", "2", "3", "66.67"},
		{"zero total", "10", "0", "0"},
		{"whole", "42.5", "42.5", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := percentageOf(d(tt.part), d(tt.total))
			assert.True(t, got.Equal(d(tt.expected)), "got %s", got)
		})
	}
}

func TestSlicePercentages_FollowRoundedShare(t *testing.T) {
	values := []labeledValue{
		{label: "A", value: d("1")},
		{label: "B", value: d("1")},
		{label: "C", value: d("1")},
	}

	percentages := slicePercentages(values, d("3"))

	sum := 0.0
	for _, p := range percentages {
		assert.True(t, p.Equal(d("33.33")), "got %s", p)
		sum += toFloat(p)
	}
	assert.InDelta(t, 100, sum, 0.01)
}

func TestSlicePercentages_ZeroTotal(t *testing.T) {
	values := []labeledValue{{label: "A"}, {label: "B"}}

	percentages := slicePercentages(values, decimal.Zero)

	require.Len(t, percentages, 2)
	for _, p := range percentages {
		assert.True(t, p.IsZero())
	}
}

func TestCollapseTail(t *testing.T) {
	ranked := []labeledValue{
		{key: "a", label: "A", value: d("50")},
		{key: "b", label: "B", value: d("30")},
		{key: "c", label: "C", value: d("15")},
		{key: "e", label: "E", value: d("5")},
	}

	t.Run("keeps top N and merges the rest", func(t *testing.T) {
		collapsed := collapseTail(ranked, 2)
		require.Len(t, collapsed, 3)
		assert.Equal(t, "A", collapsed[0].label)
		assert.Equal(t, "B", collapsed[1].label)
		assert.Equal(t, OthersLabel, collapsed[2].label)
		assert.True(t, collapsed[2].value.Equal(d("20")))
	})

	t.Run("no collapse when topN covers every slice", func(t *testing.T) {
		assert.Len(t, collapseTail(ranked, 4), 4)
		assert.Len(t, collapseTail(ranked, 10), 4)
	})

	t.Run("no collapse without topN", func(t *testing.T) {
		assert.Len(t, collapseTail(ranked, 0), 4)
	})
}

func TestSortByValueDesc_TieBreaksOnLabel(t *testing.T) {
	values := []labeledValue{
		{label: "Zeta", value: d("10")},
		{label: "Alpha", value: d("10")},
		{label: "Beta", value: d("20")},
	}

	sortByValueDesc(values)

	assert.Equal(t, []string{"Beta", "Alpha", "Zeta"}, []string{values[0].label, values[1].label, values[2].label})
}

func TestRawStats(t *testing.T) {
	var stats rawStats
	assert.True(t, stats.average().IsZero())

	for _, v := range []string{"10", "-5", "25"} {
		stats.add(d(v))
	}

	assert.True(t, stats.total.Equal(d("30")))
	assert.True(t, stats.min.Equal(d("-5")))
	assert.True(t, stats.max.Equal(d("25")))
	assert.True(t, stats.average().Equal(d("10")))
}

func TestRoundMoney_HalfAwayFromZero(t *testing.T) {
	assert.True(t, roundMoney(d("2.345")).Equal(d("2.35")))
	assert.True(t, roundMoney(d("-2.345")).Equal(d("-2.35")))
	assert.Equal(t, 1.01, toFloat(d("1.005")))
}

func TestPreviousPeriod(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		prevStart  string
		prevEnd    string
	}{
		{"single day", "2024-03-10", "2024-03-10", "2024-03-09", "2024-03-09"},
		{"full month", "2024-03-01", "2024-03-31", "2024-01-30", "2024-02-29"},
		{"week", "2024-01-08", "2024-01-14", "2024-01-01", "2024-01-07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prevStart, prevEnd := PreviousPeriod(day(tt.start), day(tt.end))
			assert.Equal(t, tt.prevStart, prevStart.Format(models.DateLayout))
			assert.Equal(t, tt.prevEnd, prevEnd.Format(models.DateLayout))
		})
	}
}

func TestChangePercentage(t *testing.T) {
	tests := []struct {
		name              string
		current, previous string
		expected          string
	}{
		{"growth", "150", "100", "50"},
		{"decline", "75", "100", "-25"},
		{"from zero with growth", "10", "0", "100"},
		{"zero to zero", "0", "0", "0"},
		{"rounded to cents", "1", "3", "-66.67"},
		{"negative base", "-50", "-100", "-50"},
		{"profit turning positive from a loss", "50", "-100", "-150"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := changePercentage(d(tt.current), d(tt.previous))
			assert.True(t, got.Equal(d(tt.expected)), "got %s", got)
		})
	}
}

func TestCompareKPI(t *testing.T) {
	metric := compareKPI("revenue", "Revenue", kpiFormatCurrency, d("120.005"), d("100"))

	assert.Equal(t, 120.01, metric.Current)
	assert.Equal(t, 100.0, metric.Previous)
	assert.Equal(t, 20.01, metric.Change)
	assert.Equal(t, 20.01, metric.ChangePercentage)
	assert.Equal(t, dto.TrendUp, metric.Trend)

	assert.Equal(t, dto.TrendDown, compareKPI("x", "X", kpiFormatNumber, d("1"), d("2")).Trend)
	assert.Equal(t, dto.TrendStable, compareKPI("x", "X", kpiFormatNumber, d("2"), d("2")).Trend)
}

func TestCacheKey_DeterministicAndSorted(t *testing.T) {
	categoryID := uuid.MustParse("a0000000-0000-4000-8000-000000000001")
	req := models.ChartRequest{
		ChartType: models.ChartTypePie,
		Start:     day("2024-01-01"),
		End:       day("2024-01-31"),
		Metric:    "revenue",
		GroupBy:   "category",
		TopN:      5,
		Filters:   models.ChartFilters{CategoryID: &categoryID, Region: "North"},
	}

	key := CacheKey(req)

	assert.Equal(t,
		"chart:pie:categoryId=a0000000-0000-4000-8000-000000000001&end=2024-01-31&groupBy=category&metric=revenue&region=North&start=2024-01-01&topN=5",
		key)
	assert.Equal(t, key, CacheKey(req))

	other := req
	other.TopN = 6
	assert.NotEqual(t, key, CacheKey(other))
}

func TestETagForKey(t *testing.T) {
	etag := ETagForKey("chart:kpi:end=2024-01-31&start=2024-01-01")

	assert.Len(t, etag, 34)
	assert.Equal(t, byte('"'), etag[0])
	assert.Equal(t, byte('"'), etag[len(etag)-1])
	assert.Equal(t, etag, ETagForKey("chart:kpi:end=2024-01-31&start=2024-01-01"))
	assert.NotEqual(t, etag, ETagForKey("chart:kpi:end=2024-02-01&start=2024-01-01"))
}

func TestNormalizeForChart(t *testing.T) {
	req := models.ChartRequest{
		ChartType: models.ChartTypeKPI,
		Metric:    "profit",
		GroupBy:   "month",
		Dimension: "type",
		TopN:      3,
		Limit:     10,
		Cursor:    "abc",
	}

	normalized := normalizeForChart(req, NewKPIChartStrategy(nil).Metadata())

	assert.Empty(t, normalized.Metric)
	assert.Empty(t, normalized.GroupBy)
	assert.Empty(t, normalized.Dimension)
	assert.Zero(t, normalized.TopN)
	assert.Zero(t, normalized.Limit)
	assert.Empty(t, normalized.Cursor)

	table := normalizeForChart(models.ChartRequest{ChartType: models.ChartTypeTable, Limit: 10, Cursor: "abc", Metric: "x"},
		NewTableChartStrategy(nil).Metadata())
	assert.Equal(t, 10, table.Limit)
	assert.Equal(t, "abc", table.Cursor)
	assert.Empty(t, table.Metric)
}

func TestValidateDateRange(t *testing.T) {
	assert.NoError(t, validateDateRange(day("2024-01-01"), day("2024-01-01"), 365))
	assert.NoError(t, validateDateRange(day("2024-01-01"), day("2024-12-31"), 365))

	err := validateDateRange(day("2024-02-01"), day("2024-01-01"), 365)
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, ValidationKindDateRange, ve.Kind)

	_, ok = AsValidationError(validateDateRange(day("2024-01-01"), day("2025-01-02"), 365))
	assert.True(t, ok)

	_, ok = AsValidationError(validateDateRange(time.Time{}, day("2024-01-01"), 365))
	assert.True(t, ok)
}
