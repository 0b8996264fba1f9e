package services

import (
	"context"
	"fmt"
	"sort"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/shopspring/decimal"
)

const maxBarTopN = 50

var (
	barGroupings  = append(repositories.DimensionGroupings(), repositories.TimeGroupings()...)
	barDimensions = repositories.DimensionGroupings()
)

// BarChartStrategy crosses a category axis (groupBy) with a series axis (dimension) into a dense matrix
type BarChartStrategy struct {
	repo repositories.ChartRepositoryInterface
}

func NewBarChartStrategy(repo repositories.ChartRepositoryInterface) ChartStrategy {
	return &BarChartStrategy{repo: repo}
}

func (s *BarChartStrategy) Type() models.ChartType {
	return models.ChartTypeBar
}

func (s *BarChartStrategy) CanHandle(req *models.ChartRequest) bool {
	return req.ChartType == models.ChartTypeBar
}

func (s *BarChartStrategy) Validate(req *models.ChartRequest) []string {
	problems := validateMetricAndGroupBy(req, repositories.SupportedMetrics(), barGroupings)
	if req.Dimension != "" && !contains(barDimensions, req.Dimension) {
		problems = append(problems, unsupportedParam("dimension", req.Dimension, req.ChartType, barDimensions))
	}
	if orDefault(req.GroupBy, repositories.GroupCategory) == orDefault(req.Dimension, repositories.GroupType) {
		problems = append(problems, "dimension must differ from groupBy for bar charts")
	}
	return append(problems, validateTopN(req, maxBarTopN)...)
}

func (s *BarChartStrategy) Metadata() dto.ChartMetadata {
	return dto.ChartMetadata{
		Name:                string(models.ChartTypeBar),
		Description:         "Dense category by series matrix with optional top-N categories",
		SupportedMetrics:    repositories.SupportedMetrics(),
		SupportedGroupBy:    barGroupings,
		SupportedDimensions: barDimensions,
		SupportsTopN:        true,
		MaxTopN:             maxBarTopN,
	}
}

func (s *BarChartStrategy) Execute(ctx context.Context, req *models.ChartRequest) (dto.ChartResponse, error) {
	metric := orDefault(req.Metric, repositories.MetricRevenue)
	groupBy := orDefault(req.GroupBy, repositories.GroupCategory)
	dimension := orDefault(req.Dimension, repositories.GroupType)

	rows, err := s.repo.Aggregate(ctx, repositories.AggregateQuery{
		Scope:  scopeOf(req),
		Metric: metric,
		Group:  groupBy,
		Series: dimension,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate bar matrix: %w", err)
	}

	categoryIndex := make(map[string]int)
	var categories []labeledValue
	seriesLabels := make(map[string]string)
	cells := make(map[string]map[string]decimal.Decimal)

	var stats rawStats
	for _, row := range rows {
		stats.add(row.Value)

		idx, ok := categoryIndex[row.GroupKey]
		if !ok {
			idx = len(categories)
			categoryIndex[row.GroupKey] = idx
			categories = append(categories, labeledValue{key: row.GroupKey, label: displayLabel(groupBy, row.GroupLabel)})
			cells[row.GroupKey] = make(map[string]decimal.Decimal)
		}
		categories[idx].value = categories[idx].value.Add(row.Value)
		cells[row.GroupKey][row.SeriesKey] = cells[row.GroupKey][row.SeriesKey].Add(row.Value)
		seriesLabels[row.SeriesKey] = displayLabel(dimension, row.SeriesLabel)
	}

	if req.TopN > 0 && req.TopN < len(categories) {
		sortByValueDesc(categories)
		categories = categories[:req.TopN]
	} else {
		sort.SliceStable(categories, func(i, j int) bool {
			return categories[i].label < categories[j].label
		})
	}

	seriesKeys := make([]string, 0, len(seriesLabels))
	for key := range seriesLabels {
		seriesKeys = append(seriesKeys, key)
	}
	sort.Slice(seriesKeys, func(i, j int) bool {
		if seriesLabels[seriesKeys[i]] != seriesLabels[seriesKeys[j]] {
			return seriesLabels[seriesKeys[i]] < seriesLabels[seriesKeys[j]]
		}
		return seriesKeys[i] < seriesKeys[j]
	})

	labels := make([]string, len(categories))
	for i, c := range categories {
		labels[i] = c.label
	}

	series := make([]dto.BarSeries, 0, len(seriesKeys))
	for i, key := range seriesKeys {
		data := make([]float64, len(categories))
		for j, c := range categories {
			data[j] = toFloat(cells[c.key][key])
		}
		series = append(series, dto.BarSeries{
			Name:  seriesLabels[key],
			Color: paletteColor(i),
			Data:  data,
		})
	}

	return &dto.BarChartResponse{
		Type:       models.ChartTypeBar,
		Categories: labels,
		Series:     series,
		Metadata: dto.BarMetadata{
			Metric:    metric,
			GroupBy:   groupBy,
			Dimension: dimension,
			Total:     toFloat(stats.total),
			Average:   toFloat(stats.average()),
		},
	}, nil
}
