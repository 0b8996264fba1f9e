package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/database"
	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ServerTestSuite struct {
	suite.Suite
	server *Server
	svc    *Services
	db     *database.DB
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:             "0",
			Environment:      "testing",
			CORSAllowOrigins: []string{"http://localhost:3000"},
		},
		Cache: config.CacheConfig{
			Enabled:         true,
			MaxEntries:      100,
			CleanupInterval: time.Minute,
			DefaultTTL:      5 * time.Minute,
			TableTTL:        2 * time.Minute,
			KPITTL:          time.Minute,
			DashboardTTL:    30 * time.Second,
			SingleFlight:    true,
		},
		Charts:         config.ChartsConfig{MaxRangeDays: 365},
		Security:       config.SecurityConfig{RateLimitPerSecond: 100, RateLimitBurst: 100},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, ResetTimeout: 30 * time.Second, HalfOpenMaxSucc: 3},
	}
}

func (s *ServerTestSuite) SetupTest() {
	cfg := testConfig()
	db := database.SetupTestDB(s.T())
	s.db = db
	reg := prometheus.NewRegistry()

	svc, err := NewServices(cfg, db.DB, reg, nil)
	s.Require().NoError(err)
	s.svc = svc
	s.server = New(cfg, db.DB, svc, reg)
}

func (s *ServerTestSuite) TearDownTest() {
	s.svc.Close()
	s.server.rateLimiter.Stop()
}

func (s *ServerTestSuite) do(path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.server.Echo.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decodeData(rec *httptest.ResponseRecorder, into interface{}) {
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	body := struct {
		Data interface{} `json:"data"`
	}{Data: into}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
}

func (s *ServerTestSuite) seedRevenue(category models.Category, amount int64, occurredAt time.Time) {
	tx := models.Transaction{
		TransactionType: models.TransactionTypeRevenue,
		CategoryID:      category.ID,
		Amount:          decimal.NewFromInt(amount),
		Quantity:        1,
		OccurredAt:      occurredAt,
		PaymentStatus:   models.PaymentStatusPaid,
		PaidAt:          &occurredAt,
	}
	s.Require().NoError(s.db.Create(&tx).Error)
}

// Charts served over HTTP from the sqlite store: line totals, pie tail collapse and table paging
func (s *ServerTestSuite) TestChartsOverSeededStore() {
	categories := make([]models.Category, 8)
	for i := range categories {
		categories[i] = models.Category{Name: fmt.Sprintf("Category %d", i+1), IsActive: true}
		s.Require().NoError(s.db.Create(&categories[i]).Error)
	}

	// January: one revenue row per day
	var januaryTotal int64
	for day := 1; day <= 31; day++ {
		amount := int64(100 + day)
		januaryTotal += amount
		s.seedRevenue(categories[0], amount, time.Date(2024, 1, day, 12, 0, 0, 0, time.UTC))
	}

	// February: eight categories with distinct revenue
	for i, category := range categories {
		s.seedRevenue(category, int64(1000-i*100), time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC))
	}

	// March: exactly two rows
	s.seedRevenue(categories[1], 70, time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC))
	s.seedRevenue(categories[2], 30, time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC))

	s.Run("line sums to the inserted revenue", func() {
		var line dto.LineChartResponse
		s.decodeData(s.do("/api/v1/charts/line?start=2024-01-01&end=2024-01-31&metric=revenue&groupBy=day", nil), &line)

		s.Require().Len(line.Series, 1)
		s.Len(line.Series[0].Data, 31)
		var sum float64
		for _, point := range line.Series[0].Data {
			sum += point.Y
		}
		s.InDelta(float64(januaryTotal), sum, 0.001)
		s.InDelta(float64(januaryTotal), line.Metadata.Total, 0.001)
	})

	s.Run("pie collapses the tail past topN", func() {
		var pie dto.PieChartResponse
		s.decodeData(s.do("/api/v1/charts/pie?start=2024-02-01&end=2024-02-29&metric=revenue&groupBy=category&topN=5", nil), &pie)

		s.Require().Len(pie.Slices, 6)
		s.Equal("Category 1", pie.Slices[0].Label)
		s.Equal(services.OthersLabel, pie.Slices[5].Label)
		s.InDelta(1200, pie.Slices[5].Value, 0.001)
		s.InDelta(5200, pie.Metadata.Total, 0.001)

		var percentages float64
		for _, slice := range pie.Slices {
			percentages += slice.Percentage
		}
		s.InDelta(100, percentages, 0.01)
	})

	s.Run("table pages until hasMore is false", func() {
		base := "/api/v1/charts/table?start=2024-03-01&end=2024-03-31&limit=1"

		var first dto.TableChartResponse
		s.decodeData(s.do(base, nil), &first)
		s.Len(first.Rows, 1)
		s.True(first.HasMore)
		s.Equal(int64(2), first.Total)
		s.Require().NotEmpty(first.Cursor)

		var second dto.TableChartResponse
		s.decodeData(s.do(base+"&cursor="+url.QueryEscape(first.Cursor), nil), &second)
		s.Len(second.Rows, 1)
		s.False(second.HasMore)
		s.Equal(int64(2), second.Total)
		s.Empty(second.Cursor)
	})
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.do("/health", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"circuitBreaker":"closed"`)
	s.NotEmpty(rec.Header().Get("X-Trace-ID"))
}

func (s *ServerTestSuite) TestChartTypes() {
	rec := s.do("/api/v1/charts/types", nil)

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Data struct {
			Types []struct {
				Name string `json:"name"`
			} `json:"types"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Len(body.Data.Types, 5)
}

func (s *ServerTestSuite) TestKPIChartAndConditionalRequest() {
	path := "/api/v1/charts/kpi?start=2024-01-01&end=2024-01-31"

	first := s.do(path, nil)
	s.Require().Equal(http.StatusOK, first.Code, first.Body.String())
	etag := first.Header().Get("ETag")
	s.NotEmpty(etag)
	s.Equal("private, max-age=60", first.Header().Get("Cache-Control"))
	s.Equal("nosniff", first.Header().Get("X-Content-Type-Options"))

	second := s.do(path, map[string]string{"If-None-Match": etag})
	s.Equal(http.StatusNotModified, second.Code)
	s.Empty(second.Body.String())
}

func (s *ServerTestSuite) TestUnknownChartType() {
	rec := s.do("/api/v1/charts/radar?start=2024-01-01&end=2024-01-31", nil)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(errors.ProblemContentType, rec.Header().Get("Content-Type"))
	s.Contains(rec.Body.String(), "CHART_001")
}

func (s *ServerTestSuite) TestUnknownRoute() {
	rec := s.do("/api/v1/nothing-here", nil)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_007")
}

func (s *ServerTestSuite) TestDashboardSummary() {
	rec := s.do("/api/v1/dashboard/summary?start=2024-03-01&end=2024-03-31", nil)

	s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Contains(rec.Body.String(), `"totalRevenue":0`)
}

func (s *ServerTestSuite) TestOptionsUnknownDimension() {
	rec := s.do("/api/v1/options/planets", nil)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "OPTIONS_001")
}

func (s *ServerTestSuite) TestMetricsEndpoint() {
	s.do("/api/v1/charts/kpi?start=2024-01-01&end=2024-01-31", nil)

	rec := s.do("/metrics", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "chart_requests_total")
}

func (s *ServerTestSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/charts/types", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()

	s.server.Echo.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal("http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
