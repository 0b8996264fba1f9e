package handlers

import (
	"context"
	"net/http"
	"time"

	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db      *gorm.DB
	breaker services.CircuitBreakerInterface
}

// NewHealthCheckHandler creates a new health check handler; breaker may be nil
func NewHealthCheckHandler(db *gorm.DB, breaker services.CircuitBreakerInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, breaker: breaker}
}

// HealthCheck reports store connectivity and the chart store breaker state
//
// Method: GET /health
//
// Success Response: 200 OK {status, time, circuitBreaker}
// Error Responses:
//   - 503: SYSTEM_003 database unreachable
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	body := map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}
	if h.breaker != nil {
		body["circuitBreaker"] = h.breaker.GetState().String()
	}
	return c.JSON(http.StatusOK, body)
}
