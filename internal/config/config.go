package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server         ServerConfig
	Database       DatabaseConfig
	Cache          CacheConfig
	Charts         ChartsConfig
	Security       SecurityConfig
	CircuitBreaker CircuitBreakerConfig
	Log            LogConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// CacheConfig controls the chart and dashboard cache-aside layer.
// KPI and table charts are "live" views and keep shorter lifetimes than line, bar and pie.
type CacheConfig struct {
	Enabled         bool
	MaxEntries      int
	CleanupInterval time.Duration
	DefaultTTL      time.Duration
	TableTTL        time.Duration
	KPITTL          time.Duration
	DashboardTTL    time.Duration
	SingleFlight    bool
}

type ChartsConfig struct {
	StrictMetrics bool
	MaxRangeDays  int
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

type LogConfig struct {
	Level  string
	Format string
}

const (
	// DashboardTTLMin and DashboardTTLMax bound the summary cache lifetime regardless of configuration.
	DashboardTTLMin = 10 * time.Second
	DashboardTTLMax = 60 * time.Second
)

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "dashboard_user"),
			Password:        getEnv("DB_PASSWORD", "dashboard_password"),
			Name:            getEnv("DB_NAME", "dashboard_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Cache: CacheConfig{
			Enabled:         getBoolEnv("CACHE_ENABLED", true),
			MaxEntries:      getIntEnv("CACHE_MAX_ENTRIES", 1000),
			CleanupInterval: getDurationEnv("CACHE_CLEANUP_INTERVAL", time.Minute),
			DefaultTTL:      getDurationEnv("CHART_CACHE_TTL", 5*time.Minute),
			TableTTL:        getDurationEnv("CHART_CACHE_TTL_TABLE", 2*time.Minute),
			KPITTL:          getDurationEnv("CHART_CACHE_TTL_KPI", time.Minute),
			DashboardTTL:    getDurationEnv("DASHBOARD_CACHE_TTL", 30*time.Second),
			SingleFlight:    getBoolEnv("CHART_SINGLE_FLIGHT", true),
		},
		Charts: ChartsConfig{
			StrictMetrics: getBoolEnv("CHART_STRICT_METRICS", false),
			MaxRangeDays:  getIntEnv("CHART_MAX_RANGE_DAYS", 365),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		CircuitBreaker: CircuitBreakerConfig{
			MaxFailures:     getIntEnv("CIRCUIT_BREAKER_MAX_FAILURES", 5),
			ResetTimeout:    getDurationEnv("CIRCUIT_BREAKER_RESET_TIMEOUT", 30*time.Second),
			HalfOpenMaxSucc: getIntEnv("CIRCUIT_BREAKER_HALF_OPEN_SUCCESSES", 3),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()
	config.Cache.DashboardTTL = ClampDashboardTTL(config.Cache.DashboardTTL)

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL returns the connection string in the form golang-migrate and lib/pq expect
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// ClampDashboardTTL keeps the dashboard summary lifetime inside [DashboardTTLMin, DashboardTTLMax]
func ClampDashboardTTL(ttl time.Duration) time.Duration {
	if ttl < DashboardTTLMin {
		return DashboardTTLMin
	}
	if ttl > DashboardTTLMax {
		return DashboardTTLMax
	}
	return ttl
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting the dashboard origin explicitly.")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
