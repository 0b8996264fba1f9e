package services

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"finance-dashboard/internal/cache"
	"finance-dashboard/internal/config"
	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/pagination"
	"finance-dashboard/internal/repositories"

	"golang.org/x/sync/singleflight"
)

const breakerServiceName = "chart_store"

// ChartResult is a served chart plus what the HTTP layer needs for conditional requests
type ChartResult struct {
	Response dto.ChartResponse
	CacheKey string
	ETag     string
	CacheHit bool
}

type chartService struct {
	registry  *ChartRegistry
	store     cache.Store
	breaker   CircuitBreakerInterface
	metrics   MetricsRecorderInterface
	logger    ChartLoggerInterface
	cacheCfg  config.CacheConfig
	chartsCfg config.ChartsConfig
	flights   singleflight.Group
}

func NewChartService(
	registry *ChartRegistry,
	store cache.Store,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger ChartLoggerInterface,
	cacheCfg config.CacheConfig,
	chartsCfg config.ChartsConfig,
) ChartServiceInterface {
	if store == nil {
		store = cache.NoopStore{}
	}
	return &chartService{
		registry:  registry,
		store:     store,
		breaker:   breaker,
		metrics:   metrics,
		logger:    logger,
		cacheCfg:  cacheCfg,
		chartsCfg: chartsCfg,
	}
}

func (s *chartService) GetChart(ctx context.Context, req models.ChartRequest) (*ChartResult, error) {
	startTime := time.Now()

	req, err := s.ValidateRequest(ctx, req)
	if err != nil {
		if !errors.Is(err, ErrChartTypeNotFound) {
			s.countRequest(req.ChartType, "rejected")
		}
		return nil, err
	}
	strategy, err := s.registry.Resolve(&req)
	if err != nil {
		return nil, err
	}

	key := CacheKey(req)
	result := &ChartResult{CacheKey: key, ETag: ETagForKey(key)}

	if cached, ok := s.readCache(ctx, key, req.ChartType); ok {
		result.Response = cached
		result.CacheHit = true
		s.countRequest(req.ChartType, "hit")
		s.logger.LogChartServed(ctx, req.ChartType, true, time.Since(startTime).Milliseconds())
		return result, nil
	}

	response, err := s.load(ctx, key, strategy, req)
	duration := time.Since(startTime)
	s.metrics.RecordProcessingTime("chart.render."+string(req.ChartType), duration)
	if err != nil {
		s.countRequest(req.ChartType, "failed")
		if !errors.Is(err, ErrStoreUnavailable) {
			s.logger.LogChartFailed(ctx, req.ChartType, requestParams(req), err.Error(), duration.Milliseconds())
		}
		return nil, err
	}

	result.Response = response
	s.countRequest(req.ChartType, "miss")
	s.logger.LogChartServed(ctx, req.ChartType, false, duration.Milliseconds())
	return result, nil
}

// ValidateRequest runs every check that must pass before the store is touched and returns the
// request with fields the chart type ignores cleared
func (s *chartService) ValidateRequest(ctx context.Context, req models.ChartRequest) (models.ChartRequest, error) {
	strategy, err := s.registry.Resolve(&req)
	if err != nil {
		return req, err
	}

	if err := validateDateRange(req.Start, req.End, s.chartsCfg.MaxRangeDays); err != nil {
		return req, err
	}

	meta := strategy.Metadata()
	req = normalizeForChart(req, meta)

	if req.Metric != "" && !repositories.IsKnownMetric(req.Metric) {
		if s.chartsCfg.StrictMetrics {
			return req, newParameterError(unsupportedParam("metric", req.Metric, req.ChartType, meta.SupportedMetrics))
		}
		s.logger.LogMetricFallback(ctx, req.ChartType, req.Metric)
		req.Metric = repositories.MetricRevenue
	}

	if problems := strategy.Validate(&req); len(problems) > 0 {
		return req, newParameterError(problems...)
	}

	if req.Cursor != "" {
		if _, err := pagination.DecodeOffset(req.Cursor); err != nil {
			return req, err
		}
	}

	return req, nil
}

// validateDateRange checks start <= end and the span limit on calendar days
func validateDateRange(start, end time.Time, maxDays int) error {
	if start.IsZero() || end.IsZero() {
		return newDateRangeError("start and end are required")
	}
	start, end = models.StartOfDay(start), models.StartOfDay(end)
	if end.Before(start) {
		return newDateRangeError("end must not be before start")
	}
	if days := int(end.Sub(start).Hours() / 24); maxDays > 0 && days > maxDays {
		return newDateRangeError(fmt.Sprintf("date range must not exceed %d days", maxDays))
	}
	return nil
}

// normalizeForChart drops parameters the chart type does not read so they cannot split the cache
func normalizeForChart(req models.ChartRequest, meta dto.ChartMetadata) models.ChartRequest {
	if len(meta.SupportedMetrics) == 0 {
		req.Metric = ""
	}
	if len(meta.SupportedGroupBy) == 0 {
		req.GroupBy = ""
	}
	if len(meta.SupportedDimensions) == 0 {
		req.Dimension = ""
	}
	if !meta.SupportsTopN {
		req.TopN = 0
	}
	if !meta.SupportsPagination {
		req.Limit = 0
		req.Cursor = ""
	}
	return req
}

func (s *chartService) readCache(ctx context.Context, key string, chartType models.ChartType) (dto.ChartResponse, bool) {
	data, found, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.LogCacheReadFailed(ctx, key, err.Error())
		return nil, false
	}
	if !found {
		return nil, false
	}

	response, err := dto.NewChartResponse(chartType)
	if err != nil {
		return nil, false
	}
	if err := json.Unmarshal(data, response); err != nil {
		s.logger.LogCacheReadFailed(ctx, key, err.Error())
		return nil, false
	}
	return response, true
}

// load runs the strategy behind the circuit breaker. Concurrent misses on the same key share one execution
// when single flight is enabled; the first caller's context governs the shared store call.
func (s *chartService) load(ctx context.Context, key string, strategy ChartStrategy, req models.ChartRequest) (dto.ChartResponse, error) {
	if !s.cacheCfg.SingleFlight {
		return s.execute(ctx, key, strategy, req)
	}

	v, err, _ := s.flights.Do(key, func() (interface{}, error) {
		return s.execute(ctx, key, strategy, req)
	})
	if err != nil {
		return nil, err
	}
	return v.(dto.ChartResponse), nil
}

func (s *chartService) execute(ctx context.Context, key string, strategy ChartStrategy, req models.ChartRequest) (dto.ChartResponse, error) {
	if s.breaker.IsOpen() {
		s.metrics.IncrementCounter("circuit_breaker.open", map[string]string{
			"service": breakerServiceName,
		})
		return nil, ErrStoreUnavailable
	}

	before := s.breaker.GetState()
	response, err := strategy.Execute(ctx, &req)
	if err != nil {
		if ctx.Err() == nil {
			s.breaker.RecordFailure()
		}
	} else {
		s.breaker.RecordSuccess()
	}
	s.trackBreaker(ctx, before)

	if err != nil {
		return nil, err
	}

	s.writeCache(ctx, key, req.ChartType, response)
	return response, nil
}

func (s *chartService) trackBreaker(ctx context.Context, before models.CircuitBreakerState) {
	after := s.breaker.GetState()
	s.metrics.RecordGauge("circuit_breaker.state", float64(after), map[string]string{
		"service": breakerServiceName,
	})
	if after != before {
		s.logger.LogCircuitBreakerStateChange(ctx, breakerServiceName, before.String(), after.String())
	}
}

func (s *chartService) writeCache(ctx context.Context, key string, chartType models.ChartType, response dto.ChartResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		s.logger.LogCacheWriteFailed(ctx, key, err.Error())
		return
	}
	if err := s.store.Set(ctx, key, data, s.TTL(chartType)); err != nil {
		s.metrics.IncrementCounter("chart.cache.write_failed", map[string]string{
			"chart_type": string(chartType),
		})
		s.logger.LogCacheWriteFailed(ctx, key, err.Error())
	}
}

func (s *chartService) countRequest(chartType models.ChartType, status string) {
	s.metrics.IncrementCounter("chart.request", map[string]string{
		"chart_type": string(chartType),
		"status":     status,
	})
}

func (s *chartService) ETag(req models.ChartRequest) string {
	return ETagForKey(CacheKey(req))
}

func (s *chartService) TTL(chartType models.ChartType) time.Duration {
	switch chartType {
	case models.ChartTypeKPI:
		return s.cacheCfg.KPITTL
	case models.ChartTypeTable:
		return s.cacheCfg.TableTTL
	default:
		return s.cacheCfg.DefaultTTL
	}
}

func (s *chartService) CacheControlHeader(chartType models.ChartType) string {
	return fmt.Sprintf("private, max-age=%d", int(s.TTL(chartType).Seconds()))
}

func (s *chartService) Metadata(chartType models.ChartType) (dto.ChartMetadata, error) {
	strategy, err := s.registry.Get(chartType)
	if err != nil {
		return dto.ChartMetadata{}, err
	}
	meta := strategy.Metadata()
	meta.CacheMaxAge = int(s.TTL(chartType).Seconds())
	return meta, nil
}

func (s *chartService) ListTypes() []dto.ChartMetadata {
	types := s.registry.Types()
	out := make([]dto.ChartMetadata, 0, len(types))
	for _, t := range types {
		meta, err := s.Metadata(t)
		if err != nil {
			continue
		}
		out = append(out, meta)
	}
	return out
}

// requestParams lists the defined request fields by their query parameter names
func requestParams(req models.ChartRequest) map[string]string {
	params := make(map[string]string)
	set := func(k, v string) {
		if v != "" {
			params[k] = v
		}
	}

	if !req.Start.IsZero() {
		set("start", req.Start.UTC().Format(models.DateLayout))
	}
	if !req.End.IsZero() {
		set("end", req.End.UTC().Format(models.DateLayout))
	}
	set("metric", req.Metric)
	set("groupBy", req.GroupBy)
	set("dimension", req.Dimension)
	if req.TopN > 0 {
		set("topN", strconv.Itoa(req.TopN))
	}
	if req.Limit > 0 {
		set("limit", strconv.Itoa(req.Limit))
	}
	set("cursor", req.Cursor)
	if req.Filters.CategoryID != nil {
		set("categoryId", req.Filters.CategoryID.String())
	}
	if req.Filters.ProductID != nil {
		set("productId", req.Filters.ProductID.String())
	}
	if req.Filters.CustomerID != nil {
		set("customerId", req.Filters.CustomerID.String())
	}
	set("region", req.Filters.Region)
	return params
}

// CacheKey serializes the chart type and the defined request fields in sorted order,
// so equal requests always produce equal keys
func CacheKey(req models.ChartRequest) string {
	return "chart:" + string(req.ChartType) + ":" + encodeParams(requestParams(req))
}

func encodeParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + params[k]
	}
	return strings.Join(pairs, "&")
}

// ETagForKey returns the quoted MD5 hex digest of a cache key
func ETagForKey(key string) string {
	sum := md5.Sum([]byte(key))
	return `"` + hex.EncodeToString(sum[:]) + `"`
}
