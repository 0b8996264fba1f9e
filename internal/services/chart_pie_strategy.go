package services

import (
	"context"
	"fmt"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/shopspring/decimal"
)

const (
	maxPieTopN = 20

	// OthersLabel names the slice the collapsed tail of a top-N pie is merged into
	OthersLabel = "Outros"
)

var (
	pieMetrics = []string{
		repositories.MetricRevenue, repositories.MetricExpense,
		repositories.MetricQuantity, repositories.MetricCount,
	}
	pieGroupings = repositories.DimensionGroupings()
)

// PieChartStrategy splits a non-negative metric across the values of one dimension
type PieChartStrategy struct {
	repo repositories.ChartRepositoryInterface
}

func NewPieChartStrategy(repo repositories.ChartRepositoryInterface) ChartStrategy {
	return &PieChartStrategy{repo: repo}
}

func (s *PieChartStrategy) Type() models.ChartType {
	return models.ChartTypePie
}

func (s *PieChartStrategy) CanHandle(req *models.ChartRequest) bool {
	return req.ChartType == models.ChartTypePie
}

func (s *PieChartStrategy) Validate(req *models.ChartRequest) []string {
	problems := validateMetricAndGroupBy(req, pieMetrics, pieGroupings)
	return append(problems, validateTopN(req, maxPieTopN)...)
}

func (s *PieChartStrategy) Metadata() dto.ChartMetadata {
	return dto.ChartMetadata{
		Name:             string(models.ChartTypePie),
		Description:      "Share of a metric per dimension value, with the tail collapsed into Outros when topN is set",
		SupportedMetrics: pieMetrics,
		SupportedGroupBy: pieGroupings,
		SupportsTopN:     true,
		MaxTopN:          maxPieTopN,
	}
}

func (s *PieChartStrategy) Execute(ctx context.Context, req *models.ChartRequest) (dto.ChartResponse, error) {
	metric := orDefault(req.Metric, repositories.MetricRevenue)
	groupBy := orDefault(req.GroupBy, repositories.GroupCategory)

	rows, err := s.repo.Aggregate(ctx, repositories.AggregateQuery{
		Scope:  scopeOf(req),
		Metric: metric,
		Group:  groupBy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate pie slices: %w", err)
	}

	values := make([]labeledValue, 0, len(rows))
	for _, row := range rows {
		values = append(values, labeledValue{
			key:   row.GroupKey,
			label: displayLabel(groupBy, row.GroupLabel),
			value: row.Value,
		})
	}
	sortByValueDesc(values)
	values = collapseTail(values, req.TopN)

	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v.value)
	}

	percentages := slicePercentages(values, total)
	slices := make([]dto.PieSlice, len(values))
	for i, v := range values {
		slices[i] = dto.PieSlice{
			Label:      v.label,
			Value:      toFloat(v.value),
			Percentage: percentages[i].InexactFloat64(),
			Color:      paletteColor(i),
		}
	}

	return &dto.PieChartResponse{
		Type:   models.ChartTypePie,
		Slices: slices,
		Metadata: dto.PieMetadata{
			Metric:  metric,
			GroupBy: groupBy,
			Total:   toFloat(total),
		},
	}, nil
}

// collapseTail keeps the first topN ranked values and merges the rest into one Outros entry
func collapseTail(ranked []labeledValue, topN int) []labeledValue {
	if topN <= 0 || topN >= len(ranked) {
		return ranked
	}

	others := labeledValue{key: OthersLabel, label: OthersLabel}
	for _, v := range ranked[topN:] {
		others.value = others.value.Add(v.value)
	}

	collapsed := make([]labeledValue, 0, topN+1)
	collapsed = append(collapsed, ranked[:topN]...)
	return append(collapsed, others)
}

// slicePercentages computes round(value/total*10000)/100 per slice; the sum may differ from 100 by rounding
func slicePercentages(values []labeledValue, total decimal.Decimal) []decimal.Decimal {
	percentages := make([]decimal.Decimal, len(values))
	for i, v := range values {
		if total.IsZero() {
			percentages[i] = decimal.Zero
			continue
		}
		percentages[i] = percentageOf(v.value, total)
	}
	return percentages
}
