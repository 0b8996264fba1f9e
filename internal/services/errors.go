package services

import (
	"errors"
	"strings"
)

var (
	ErrChartTypeNotFound       = errors.New("chart type not found")
	ErrStoreUnavailable        = errors.New("chart store unavailable")
	ErrUnknownOptionsDimension = errors.New("unknown options dimension")
	ErrDuplicateChartStrategy  = errors.New("duplicate chart strategy")
)

// ValidationKind tells the HTTP layer which error code a ValidationError maps to
type ValidationKind string

const (
	ValidationKindDateRange ValidationKind = "date_range"
	ValidationKindParameter ValidationKind = "parameter"
)

// ValidationError is returned before any store query runs when a request is rejected
type ValidationError struct {
	Kind    ValidationKind
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

func newDateRangeError(details ...string) *ValidationError {
	return &ValidationError{Kind: ValidationKindDateRange, Details: details}
}

func newParameterError(details ...string) *ValidationError {
	return &ValidationError{Kind: ValidationKindParameter, Details: details}
}

// AsValidationError unwraps err into a *ValidationError
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
