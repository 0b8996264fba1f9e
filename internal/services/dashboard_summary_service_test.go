package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"finance-dashboard/internal/cache"
	"finance-dashboard/internal/config"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"
	"finance-dashboard/internal/repositories/repository_mocks"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// recordingStore wraps a real store and remembers the TTL of the last write
type recordingStore struct {
	cache.Store
	lastTTL time.Duration
	writes  int
}

func (r *recordingStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	r.lastTTL = ttl
	r.writes++
	return r.Store.Set(ctx, key, value, ttl)
}

type DashboardSummaryServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	ctrl    *gomock.Controller
	repo    *repository_mocks.MockChartRepositoryInterface
	metrics *service_mocks.MockMetricsRecorderInterface
	logger  *service_mocks.MockChartLoggerInterface
	store   *recordingStore
	now     time.Time
}

func TestDashboardSummaryServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardSummaryServiceTestSuite))
}

func (s *DashboardSummaryServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockChartRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.logger = service_mocks.NewMockChartLoggerInterface(s.ctrl)
	s.store = &recordingStore{Store: cache.NewLRUStore(10)}
	s.now = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
}

func (s *DashboardSummaryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DashboardSummaryServiceTestSuite) newService(dashboardTTL time.Duration) services.DashboardSummaryServiceInterface {
	return services.NewDashboardSummaryServiceWithClock(
		s.repo, s.store, s.metrics, s.logger,
		config.CacheConfig{DashboardTTL: dashboardTTL},
		config.ChartsConfig{MaxRangeDays: 365},
		func() time.Time { return s.now },
	)
}

func dashboardRequest() models.DashboardRequest {
	return models.DashboardRequest{
		Start: mustDay("2024-03-01"),
		End:   mustDay("2024-03-31"),
	}
}

func dashboardTotals() *models.DashboardTotals {
	return &models.DashboardTotals{
		Revenue:            dec("10000.005"),
		Expense:            dec("4000.004"),
		OverdueReceivable:  dec("1200.505"),
		OverduePayable:     dec("300.104"),
		UpcomingReceivable: dec("800"),
		UpcomingPayable:    dec("0"),
	}
}

func (s *DashboardSummaryServiceTestSuite) TestGetSummary_ComputesCardsFromRoundedSums() {
	service := s.newService(30 * time.Second)
	s.logger.EXPECT().LogDashboardSummaryServed(gomock.Any(), false, gomock.Any())
	s.repo.EXPECT().DashboardTotals(gomock.Any(), gomock.Any(), s.now).DoAndReturn(
		func(_ context.Context, scope repositories.Scope, _ time.Time) (*models.DashboardTotals, error) {
			s.Equal(mustDay("2024-03-01"), scope.Start)
			s.Equal(models.EndOfDay(mustDay("2024-03-31")), scope.End)
			return dashboardTotals(), nil
		})

	summary, err := service.GetSummary(s.ctx, dashboardRequest())

	s.Require().NoError(err)
	s.Equal(10000.01, summary.TotalRevenue)
	s.Equal(4000.0, summary.TotalExpense)
	s.Equal(6000.01, summary.LiquidProfit)
	s.Equal(1200.51, summary.OverdueAccounts.Receivable)
	s.Equal(300.1, summary.OverdueAccounts.Payable)
	s.Equal(1500.61, summary.OverdueAccounts.Total)
	s.Equal(800.0, summary.UpcomingAccounts.Total)
	s.Equal("2024-03-01", summary.Metadata.Period.Start)
	s.Equal("2024-03-31", summary.Metadata.Period.End)
	s.Equal(s.now, summary.Metadata.GeneratedAt)
}

func (s *DashboardSummaryServiceTestSuite) TestGetSummary_NegativeProfit() {
	summary := services.BuildDashboardSummary(&models.DashboardTotals{
		Revenue: dec("100"),
		Expense: dec("250.50"),
	})

	s.Equal(-150.5, summary.LiquidProfit)
	s.Zero(summary.OverdueAccounts.Total)
}

func (s *DashboardSummaryServiceTestSuite) TestGetSummary_SecondCallServedFromCache() {
	service := s.newService(30 * time.Second)
	s.repo.EXPECT().DashboardTotals(gomock.Any(), gomock.Any(), gomock.Any()).Return(dashboardTotals(), nil).Times(1)
	s.logger.EXPECT().LogDashboardSummaryServed(gomock.Any(), false, gomock.Any()).Times(1)
	s.logger.EXPECT().LogDashboardSummaryServed(gomock.Any(), true, gomock.Any()).Times(1)

	first, err := service.GetSummary(s.ctx, dashboardRequest())
	s.Require().NoError(err)
	second, err := service.GetSummary(s.ctx, dashboardRequest())
	s.Require().NoError(err)

	s.Equal(first.TotalRevenue, second.TotalRevenue)
	s.Equal(first.OverdueAccounts, second.OverdueAccounts)
	s.True(first.Metadata.GeneratedAt.Equal(second.Metadata.GeneratedAt))
	s.Equal(1, s.store.writes)
}

func (s *DashboardSummaryServiceTestSuite) TestGetSummary_TTLIsClamped() {
	tests := []struct {
		configured time.Duration
		expected   time.Duration
	}{
		{time.Second, config.DashboardTTLMin},
		{45 * time.Second, 45 * time.Second},
		{10 * time.Minute, config.DashboardTTLMax},
	}

	for _, tt := range tests {
		s.store = &recordingStore{Store: cache.NewLRUStore(10)}
		service := s.newService(tt.configured)
		s.repo.EXPECT().DashboardTotals(gomock.Any(), gomock.Any(), gomock.Any()).Return(dashboardTotals(), nil)
		s.logger.EXPECT().LogDashboardSummaryServed(gomock.Any(), false, gomock.Any())

		_, err := service.GetSummary(s.ctx, dashboardRequest())

		s.Require().NoError(err)
		s.Equal(tt.expected, s.store.lastTTL)
	}
}

func (s *DashboardSummaryServiceTestSuite) TestGetSummary_InvalidRange() {
	service := s.newService(30 * time.Second)
	req := dashboardRequest()
	req.Start, req.End = req.End, req.Start

	_, err := service.GetSummary(s.ctx, req)

	ve, ok := services.AsValidationError(err)
	s.Require().True(ok)
	s.Equal(services.ValidationKindDateRange, ve.Kind)
}

func (s *DashboardSummaryServiceTestSuite) TestGetSummary_StoreError() {
	service := s.newService(30 * time.Second)
	s.repo.EXPECT().DashboardTotals(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := service.GetSummary(s.ctx, dashboardRequest())

	s.Error(err)
	s.Contains(err.Error(), "failed to load dashboard totals")
	s.Zero(s.store.writes)
}

func (s *DashboardSummaryServiceTestSuite) TestDashboardCacheKey_IncludesFilters() {
	req := dashboardRequest()
	filtered := req
	filtered.Filters.Region = "South"

	s.Equal("dashboard:summary:end=2024-03-31&start=2024-03-01", services.DashboardCacheKey(req))
	s.NotEqual(services.DashboardCacheKey(req), services.DashboardCacheKey(filtered))
}
