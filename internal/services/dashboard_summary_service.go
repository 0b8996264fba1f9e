package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"finance-dashboard/internal/cache"
	"finance-dashboard/internal/config"
	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/shopspring/decimal"
)

type dashboardSummaryService struct {
	repo    repositories.ChartRepositoryInterface
	store   cache.Store
	metrics MetricsRecorderInterface
	logger  ChartLoggerInterface
	ttl     time.Duration
	maxDays int
	now     func() time.Time
}

func NewDashboardSummaryService(
	repo repositories.ChartRepositoryInterface,
	store cache.Store,
	metrics MetricsRecorderInterface,
	logger ChartLoggerInterface,
	cacheCfg config.CacheConfig,
	chartsCfg config.ChartsConfig,
) DashboardSummaryServiceInterface {
	return NewDashboardSummaryServiceWithClock(repo, store, metrics, logger, cacheCfg, chartsCfg, time.Now)
}

// NewDashboardSummaryServiceWithClock fixes the instant that splits overdue from upcoming accounts
func NewDashboardSummaryServiceWithClock(
	repo repositories.ChartRepositoryInterface,
	store cache.Store,
	metrics MetricsRecorderInterface,
	logger ChartLoggerInterface,
	cacheCfg config.CacheConfig,
	chartsCfg config.ChartsConfig,
	now func() time.Time,
) DashboardSummaryServiceInterface {
	if store == nil {
		store = cache.NoopStore{}
	}
	return &dashboardSummaryService{
		repo:    repo,
		store:   store,
		metrics: metrics,
		logger:  logger,
		ttl:     config.ClampDashboardTTL(cacheCfg.DashboardTTL),
		maxDays: chartsCfg.MaxRangeDays,
		now:     now,
	}
}

func (s *dashboardSummaryService) GetSummary(ctx context.Context, req models.DashboardRequest) (*dto.DashboardSummaryResponse, error) {
	startTime := time.Now()

	if err := validateDateRange(req.Start, req.End, s.maxDays); err != nil {
		return nil, err
	}

	key := DashboardCacheKey(req)
	if cached, ok := s.readCache(ctx, key); ok {
		s.metrics.IncrementCounter("dashboard.summary", map[string]string{"status": "hit"})
		s.logger.LogDashboardSummaryServed(ctx, true, time.Since(startTime).Milliseconds())
		return cached, nil
	}

	now := s.now().UTC()
	totals, err := s.repo.DashboardTotals(ctx, repositories.Scope{
		Start:   req.RangeStart(),
		End:     req.RangeEnd(),
		Filters: req.Filters,
	}, now)
	if err != nil {
		s.metrics.IncrementCounter("dashboard.summary", map[string]string{"status": "failed"})
		return nil, fmt.Errorf("failed to load dashboard totals: %w", err)
	}

	summary := BuildDashboardSummary(totals)
	summary.Metadata = dto.DashboardMetadata{
		Period: dto.Period{
			Start: req.Start.UTC().Format(models.DateLayout),
			End:   req.End.UTC().Format(models.DateLayout),
		},
		GeneratedAt: now,
	}

	s.writeCache(ctx, key, summary)

	duration := time.Since(startTime)
	s.metrics.RecordProcessingTime("dashboard.summary", duration)
	s.metrics.IncrementCounter("dashboard.summary", map[string]string{"status": "miss"})
	s.logger.LogDashboardSummaryServed(ctx, false, duration.Milliseconds())
	return summary, nil
}

// BuildDashboardSummary rounds each sum to cents on its own; derived figures are computed from the rounded parts
func BuildDashboardSummary(t *models.DashboardTotals) *dto.DashboardSummaryResponse {
	revenue := roundMoney(t.Revenue)
	expense := roundMoney(t.Expense)

	return &dto.DashboardSummaryResponse{
		TotalRevenue:     revenue.InexactFloat64(),
		TotalExpense:     expense.InexactFloat64(),
		LiquidProfit:     revenue.Sub(expense).InexactFloat64(),
		OverdueAccounts:  accountsBucket(t.OverdueReceivable, t.OverduePayable),
		UpcomingAccounts: accountsBucket(t.UpcomingReceivable, t.UpcomingPayable),
	}
}

func accountsBucket(receivable, payable decimal.Decimal) dto.AccountsBucket {
	receivable, payable = roundMoney(receivable), roundMoney(payable)
	return dto.AccountsBucket{
		Receivable: receivable.InexactFloat64(),
		Payable:    payable.InexactFloat64(),
		Total:      receivable.Add(payable).InexactFloat64(),
	}
}

// DashboardCacheKey serializes the summary request the same way chart keys are built
func DashboardCacheKey(req models.DashboardRequest) string {
	return "dashboard:summary:" + encodeParams(requestParams(models.ChartRequest{
		Start:   req.Start,
		End:     req.End,
		Filters: req.Filters,
	}))
}

func (s *dashboardSummaryService) readCache(ctx context.Context, key string) (*dto.DashboardSummaryResponse, bool) {
	data, found, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.LogCacheReadFailed(ctx, key, err.Error())
		return nil, false
	}
	if !found {
		return nil, false
	}

	var summary dto.DashboardSummaryResponse
	if err := json.Unmarshal(data, &summary); err != nil {
		s.logger.LogCacheReadFailed(ctx, key, err.Error())
		return nil, false
	}
	return &summary, true
}

func (s *dashboardSummaryService) writeCache(ctx context.Context, key string, summary *dto.DashboardSummaryResponse) {
	data, err := json.Marshal(summary)
	if err != nil {
		s.logger.LogCacheWriteFailed(ctx, key, err.Error())
		return
	}
	if err := s.store.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.LogCacheWriteFailed(ctx, key, err.Error())
	}
}
