package services

import (
	"context"
	"fmt"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/shopspring/decimal"
)

var lineGroupings = append(repositories.TimeGroupings(),
	repositories.GroupCategory, repositories.GroupProduct, repositories.GroupCustomer, repositories.GroupRegion)

// LineChartStrategy plots a metric over time buckets (one series per transaction type)
// or over a dimension (one series per dimension value)
type LineChartStrategy struct {
	repo repositories.ChartRepositoryInterface
}

func NewLineChartStrategy(repo repositories.ChartRepositoryInterface) ChartStrategy {
	return &LineChartStrategy{repo: repo}
}

func (s *LineChartStrategy) Type() models.ChartType {
	return models.ChartTypeLine
}

func (s *LineChartStrategy) CanHandle(req *models.ChartRequest) bool {
	return req.ChartType == models.ChartTypeLine
}

func (s *LineChartStrategy) Validate(req *models.ChartRequest) []string {
	return validateMetricAndGroupBy(req, repositories.SupportedMetrics(), lineGroupings)
}

func (s *LineChartStrategy) Metadata() dto.ChartMetadata {
	return dto.ChartMetadata{
		Name:             string(models.ChartTypeLine),
		Description:      "Metric over time buckets, gap-filled per transaction type, or per dimension value",
		SupportedMetrics: repositories.SupportedMetrics(),
		SupportedGroupBy: lineGroupings,
	}
}

func (s *LineChartStrategy) Execute(ctx context.Context, req *models.ChartRequest) (dto.ChartResponse, error) {
	metric := orDefault(req.Metric, repositories.MetricRevenue)
	groupBy := orDefault(req.GroupBy, repositories.GroupDay)

	if repositories.IsTimeGrouping(groupBy) {
		return s.timeSeries(ctx, req, metric, groupBy)
	}
	return s.dimensionSeries(ctx, req, metric, groupBy)
}

// seriesTypes lists the transaction types that contribute to metric
func seriesTypes(metric string) []string {
	switch metric {
	case repositories.MetricRevenue:
		return []string{models.TransactionTypeRevenue}
	case repositories.MetricExpense:
		return []string{models.TransactionTypeExpense}
	default:
		return []string{models.TransactionTypeRevenue, models.TransactionTypeExpense}
	}
}

func (s *LineChartStrategy) timeSeries(ctx context.Context, req *models.ChartRequest, metric, groupBy string) (dto.ChartResponse, error) {
	rows, err := s.repo.Aggregate(ctx, repositories.AggregateQuery{
		Scope:  scopeOf(req),
		Metric: metric,
		Group:  groupBy,
		Series: repositories.GroupType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate line series: %w", err)
	}

	types := seriesTypes(metric)
	values := make(map[string]map[string]decimal.Decimal, len(types))
	for _, t := range types {
		values[t] = make(map[string]decimal.Decimal)
	}

	var stats rawStats
	for _, row := range rows {
		byBucket, ok := values[row.SeriesKey]
		if !ok {
			continue
		}
		byBucket[row.GroupKey] = byBucket[row.GroupKey].Add(row.Value)
		stats.add(row.Value)
	}

	buckets := repositories.BucketKeys(repositories.Granularity(groupBy), req.RangeStart(), req.RangeEnd())
	series := make([]dto.LineSeries, 0, len(types))
	for i, t := range types {
		points := make([]dto.LinePoint, len(buckets))
		for j, bucket := range buckets {
			points[j] = dto.LinePoint{X: bucket, Y: toFloat(values[t][bucket])}
		}
		series = append(series, dto.LineSeries{
			Name:  models.TransactionTypeLabel(t),
			Color: paletteColor(i),
			Data:  points,
		})
	}

	return &dto.LineChartResponse{
		Type:     models.ChartTypeLine,
		Series:   series,
		Metadata: lineMetadata(metric, groupBy, &stats),
	}, nil
}

func (s *LineChartStrategy) dimensionSeries(ctx context.Context, req *models.ChartRequest, metric, groupBy string) (dto.ChartResponse, error) {
	rows, err := s.repo.Aggregate(ctx, repositories.AggregateQuery{
		Scope:  scopeOf(req),
		Metric: metric,
		Group:  groupBy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate line series: %w", err)
	}

	var stats rawStats
	series := make([]dto.LineSeries, 0, len(rows))
	for i, row := range rows {
		stats.add(row.Value)
		label := displayLabel(groupBy, row.GroupLabel)
		series = append(series, dto.LineSeries{
			Name:  label,
			Color: paletteColor(i),
			Data:  []dto.LinePoint{{X: label, Y: toFloat(row.Value)}},
		})
	}

	return &dto.LineChartResponse{
		Type:     models.ChartTypeLine,
		Series:   series,
		Metadata: lineMetadata(metric, groupBy, &stats),
	}, nil
}

func lineMetadata(metric, groupBy string, stats *rawStats) dto.LineMetadata {
	return dto.LineMetadata{
		Metric:  metric,
		GroupBy: groupBy,
		Total:   toFloat(stats.total),
		Average: toFloat(stats.average()),
		Min:     toFloat(stats.min),
		Max:     toFloat(stats.max),
	}
}
