package handlers

import (
	"log/slog"
	"net/http"

	"finance-dashboard/internal/errors"

	"github.com/labstack/echo/v4"
)

// ERROR RESPONSES
//
// Handlers answer failures with one of two helpers:
//
// 1. SendError - client errors (4xx) and the 503 returned while the store is guarded
//    - SendError(c, errors.ValidationInvalidDate, errors.WithDetails("end must not be before start"))
//    - SendError(c, errors.ChartTypeNotFound)
//
// 2. SendSystemError - anything unexpected (500). The cause is logged, never returned to the client.
//
// Both write application/problem+json bodies carrying the request path and trace id.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a problem details response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	opts = append([]errors.ErrorOption{errors.WithInstance(c.Request().URL.Path)}, opts...)
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return sendProblem(c, errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)
	errorResponse.Instance = c.Request().URL.Path

	slog.ErrorContext(c.Request().Context(), "request failed",
		slog.String("trace_id", traceID),
		slog.String("path", c.Request().URL.Path),
		slog.String("error", internal.Error()),
	)
	return sendProblem(c, errorResponse)
}

func sendProblem(c echo.Context, errorResponse *errors.ErrorResponse) error {
	c.Response().Header().Set(echo.HeaderContentType, errors.ProblemContentType)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// sendData wraps payload in the success envelope
func sendData(c echo.Context, payload interface{}) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: payload})
}
