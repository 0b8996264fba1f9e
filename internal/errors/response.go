package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ProblemContentType is the media type of every error body
const ProblemContentType = "application/problem+json"

const problemTypeBase = "https://errors.finance-dashboard.local/"

// ErrorResponse is a problem details document extended with an error code, detail list and trace id
type ErrorResponse struct {
	Type     string   `json:"type"`
	Title    string   `json:"title"`
	Status   int      `json:"status"`
	Detail   string   `json:"detail"`
	Code     string   `json:"code"`
	Errors   []string `json:"errors"`
	Instance string   `json:"instance,omitempty"`
	TraceID  string   `json:"traceId"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Errors = details
	}
}

// WithMessage overrides the default detail for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Detail = message
	}
}

// WithInstance sets the request path the problem occurred on
func WithInstance(instance string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Instance = instance
	}
}

// NewErrorResponse creates a problem details response with the given error code and trace ID
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	status := GetHTTPStatus(code)
	response := &ErrorResponse{
		Type:    problemTypeBase + strings.ToLower(string(code)),
		Title:   http.StatusText(status),
		Status:  status,
		Detail:  GetErrorMessage(code),
		Code:    string(code),
		Errors:  []string{},
		TraceID: traceID,
	}

	for _, opt := range opts {
		opt(response)
	}
	if response.Errors == nil {
		response.Errors = []string{}
	}

	return response
}

// NewValidationErrorFromList creates a validation error from a list of detail messages
func NewValidationErrorFromList(details []string, traceID string) *ErrorResponse {
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError hides an internal error behind a generic system error.
// The internal error is returned separately for server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// WrapDatabaseError hides a database error behind a generic system error
func WrapDatabaseError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemDatabaseError, traceID), err
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	// 400 Bad Request - Validation errors, malformed requests
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, ValidationInvalidID, ValidationInvalidQuery,
		ValidationInvalidDate, ChartUnsupportedParam, ChartInvalidCursor:
		return http.StatusBadRequest

	// 404 Not Found - Unknown chart type, options dimension or route
	case ChartTypeNotFound, OptionsDimensionNotFound, SystemRouteNotFound:
		return http.StatusNotFound

	// 429 Too Many Requests - Rate limiting
	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	// 503 Service Unavailable - Store guarded by an open circuit breaker
	case SystemServiceUnavailable:
		return http.StatusServiceUnavailable

	// 500 Internal Server Error - System errors (default)
	case SystemInternalError, SystemDatabaseError, SystemConfigurationError,
		SystemUnexpectedError:
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetHTTPStatus returns the HTTP status code for the error response
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Code))
}

// IsClientError returns true if the error is a 4xx client error
func (er *ErrorResponse) IsClientError() bool {
	status := er.GetHTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError returns true if the error is a 5xx server error
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= 500
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Code, er.Detail, er.TraceID)
}
