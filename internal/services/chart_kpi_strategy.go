package services

import (
	"context"
	"fmt"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/shopspring/decimal"
)

const (
	kpiFormatCurrency = "currency"
	kpiFormatNumber   = "number"
)

// KPIChartStrategy compares the requested period with the previous period of equal length
type KPIChartStrategy struct {
	repo repositories.ChartRepositoryInterface
	now  func() time.Time
}

func NewKPIChartStrategy(repo repositories.ChartRepositoryInterface) ChartStrategy {
	return &KPIChartStrategy{repo: repo, now: time.Now}
}

// NewKPIChartStrategyWithClock fixes the instant overdue and pending amounts are measured against
func NewKPIChartStrategyWithClock(repo repositories.ChartRepositoryInterface, now func() time.Time) ChartStrategy {
	return &KPIChartStrategy{repo: repo, now: now}
}

func (s *KPIChartStrategy) Type() models.ChartType {
	return models.ChartTypeKPI
}

func (s *KPIChartStrategy) CanHandle(req *models.ChartRequest) bool {
	return req.ChartType == models.ChartTypeKPI
}

func (s *KPIChartStrategy) Validate(req *models.ChartRequest) []string {
	return nil
}

func (s *KPIChartStrategy) Metadata() dto.ChartMetadata {
	return dto.ChartMetadata{
		Name:             string(models.ChartTypeKPI),
		Description:      "Headline figures for the period compared with the previous period of equal duration",
		SupportedMetrics: []string{},
		SupportedGroupBy: []string{},
	}
}

// PreviousPeriod returns the calendar-day range of equal length ending the day before start
func PreviousPeriod(start, end time.Time) (time.Time, time.Time) {
	start, end = models.StartOfDay(start), models.StartOfDay(end)
	prevEnd := start.AddDate(0, 0, -1)
	return prevEnd.Add(-end.Sub(start)), prevEnd
}

func (s *KPIChartStrategy) Execute(ctx context.Context, req *models.ChartRequest) (dto.ChartResponse, error) {
	now := s.now().UTC()
	prevStart, prevEnd := PreviousPeriod(req.Start, req.End)

	current, err := s.repo.PeriodMetrics(ctx, scopeOf(req), now)
	if err != nil {
		return nil, fmt.Errorf("failed to load current period metrics: %w", err)
	}

	previousScope := repositories.Scope{
		Start:   models.StartOfDay(prevStart),
		End:     models.EndOfDay(prevEnd),
		Filters: req.Filters,
	}
	previous, err := s.repo.PeriodMetrics(ctx, previousScope, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load previous period metrics: %w", err)
	}

	return &dto.KPIChartResponse{
		Type:    models.ChartTypeKPI,
		Metrics: kpiMetrics(current, previous),
		Periods: dto.KPIPeriods{
			Current:  dto.Period{Start: req.Start.UTC().Format(models.DateLayout), End: req.End.UTC().Format(models.DateLayout)},
			Previous: dto.Period{Start: prevStart.Format(models.DateLayout), End: prevEnd.Format(models.DateLayout)},
		},
	}, nil
}

func kpiMetrics(current, previous *models.PeriodMetrics) []dto.KPIMetric {
	return []dto.KPIMetric{
		compareKPI("revenue", "Revenue", kpiFormatCurrency, current.Revenue, previous.Revenue),
		compareKPI("expense", "Expense", kpiFormatCurrency, current.Expense, previous.Expense),
		compareKPI("profit", "Profit", kpiFormatCurrency,
			current.Revenue.Sub(current.Expense), previous.Revenue.Sub(previous.Expense)),
		compareKPI("transactionCount", "Transactions", kpiFormatNumber,
			decimal.NewFromInt(current.TransactionCount), decimal.NewFromInt(previous.TransactionCount)),
		compareKPI("averageTicket", "Average Ticket", kpiFormatCurrency, averageTicket(current), averageTicket(previous)),
		compareKPI("distinctCustomers", "Customers", kpiFormatNumber,
			decimal.NewFromInt(current.DistinctCustomers), decimal.NewFromInt(previous.DistinctCustomers)),
		compareKPI("distinctProducts", "Products", kpiFormatNumber,
			decimal.NewFromInt(current.DistinctProducts), decimal.NewFromInt(previous.DistinctProducts)),
		compareKPI("overdueReceivables", "Overdue Receivables", kpiFormatCurrency,
			current.OverdueReceivables, previous.OverdueReceivables),
		compareKPI("overduePayables", "Overdue Payables", kpiFormatCurrency,
			current.OverduePayables, previous.OverduePayables),
		compareKPI("pendingReceivables", "Pending Receivables", kpiFormatCurrency,
			current.PendingReceivables, previous.PendingReceivables),
		compareKPI("pendingPayables", "Pending Payables", kpiFormatCurrency,
			current.PendingPayables, previous.PendingPayables),
	}
}

// averageTicket is revenue per revenue transaction
func averageTicket(m *models.PeriodMetrics) decimal.Decimal {
	if m.RevenueCount == 0 {
		return decimal.Zero
	}
	return m.Revenue.Div(decimal.NewFromInt(m.RevenueCount))
}

// compareKPI builds the comparison tuple. Change is computed on the rounded figures so that
// current - previous == change holds exactly in the payload.
func compareKPI(key, label, format string, current, previous decimal.Decimal) dto.KPIMetric {
	current, previous = roundMoney(current), roundMoney(previous)
	change := current.Sub(previous)

	return dto.KPIMetric{
		Key:              key,
		Label:            label,
		Format:           format,
		Current:          current.InexactFloat64(),
		Previous:         previous.InexactFloat64(),
		Change:           change.InexactFloat64(),
		ChangePercentage: changePercentage(current, previous).InexactFloat64(),
		Trend:            trendOf(change),
	}
}

// changePercentage is change/previous*100 rounded to cents; from a zero base it is 100 for growth and 0 otherwise
func changePercentage(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(2)
}

func trendOf(change decimal.Decimal) string {
	switch change.Sign() {
	case 1:
		return dto.TrendUp
	case -1:
		return dto.TrendDown
	default:
		return dto.TrendStable
	}
}
