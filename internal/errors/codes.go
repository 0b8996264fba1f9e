package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidID     ErrorCode = "VALIDATION_005"
	ValidationInvalidQuery  ErrorCode = "VALIDATION_006"
	ValidationInvalidDate   ErrorCode = "VALIDATION_007"
)

// Chart error codes (CHART_*)
const (
	ChartTypeNotFound     ErrorCode = "CHART_001"
	ChartUnsupportedParam ErrorCode = "CHART_002"
	ChartInvalidCursor    ErrorCode = "CHART_003"
)

// Options error codes (OPTIONS_*)
const (
	OptionsDimensionNotFound ErrorCode = "OPTIONS_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidID:     "Invalid identifier format",
	ValidationInvalidQuery:  "Invalid query parameters",
	ValidationInvalidDate:   "Invalid date format or range",

	// Chart errors
	ChartTypeNotFound:     "Chart type not found",
	ChartUnsupportedParam: "Unsupported chart parameter",
	ChartInvalidCursor:    "Invalid pagination cursor",

	// Options errors
	OptionsDimensionNotFound: "Options dimension not found",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Route not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
