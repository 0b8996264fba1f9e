package server

import (
	"fmt"
	"log/slog"

	"finance-dashboard/internal/cache"
	"finance-dashboard/internal/config"
	"finance-dashboard/internal/repositories"
	"finance-dashboard/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Services holds the wired application services shared by the HTTP server and the CLI tools
type Services struct {
	Charts    services.ChartServiceInterface
	Dashboard services.DashboardSummaryServiceInterface
	Options   services.OptionsServiceInterface
	Breaker   services.CircuitBreakerInterface
	Cache     *cache.Manager
}

// NewServices builds repositories, the chart registry and the cache-aside layer on top of db.
// Call Close when done to stop the cache cleanup routine.
func NewServices(cfg *config.Config, db *gorm.DB, reg prometheus.Registerer, logger *slog.Logger) (*Services, error) {
	if logger == nil {
		logger = slog.Default()
	}

	chartRepo := repositories.NewChartRepository(db)
	optionsRepo := repositories.NewOptionsRepository(db)

	registry, err := services.NewChartRegistry(
		services.NewLineChartStrategy(chartRepo),
		services.NewBarChartStrategy(chartRepo),
		services.NewPieChartStrategy(chartRepo),
		services.NewTableChartStrategy(chartRepo),
		services.NewKPIChartStrategy(chartRepo),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build chart registry: %w", err)
	}

	manager := cache.NewManager(logger)
	var store cache.Store = cache.NoopStore{}
	if cfg.Cache.Enabled {
		lru := cache.NewLRUStore(cfg.Cache.MaxEntries)
		manager.Register(lru)
		if cfg.Cache.CleanupInterval > 0 {
			manager.StartCleanup(cfg.Cache.CleanupInterval)
		}
		store = lru
	}

	metrics := services.NewPrometheusMetrics(reg)
	chartLogger := services.NewChartLogger(logger)
	breaker := services.NewCircuitBreaker(cfg.CircuitBreaker)

	return &Services{
		Charts:    services.NewChartService(registry, store, breaker, metrics, chartLogger, cfg.Cache, cfg.Charts),
		Dashboard: services.NewDashboardSummaryService(chartRepo, store, metrics, chartLogger, cfg.Cache, cfg.Charts),
		Options:   services.NewOptionsService(optionsRepo),
		Breaker:   breaker,
		Cache:     manager,
	}, nil
}

func (s *Services) Close() {
	s.Cache.Stop()
}
