package handlers

import (
	stderrors "errors"
	"strings"

	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/pagination"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const (
	headerETag         = "ETag"
	headerIfNoneMatch  = "If-None-Match"
	headerCacheControl = "Cache-Control"
)

// bindQuery binds and validates query parameters; a non-nil result is the problem to send back
func bindQuery(c echo.Context, dst interface{}) *errors.ErrorResponse {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, dst); err != nil {
		return problem(c, errors.ValidationInvalidQuery, "query parameters could not be parsed")
	}

	if err := c.Validate(dst); err != nil {
		return problem(c, validationCode(err), validation.FormatErrors(err)...)
	}
	return nil
}

// validationCode picks the most specific code for a failed struct validation
func validationCode(err error) errors.ErrorCode {
	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		return errors.ValidationGeneral
	}

	code := errors.ValidationInvalidQuery
	for _, fe := range validationErrs {
		switch fe.Tag() {
		case "iso_date":
			return errors.ValidationInvalidDate
		case "required":
			code = errors.ValidationRequiredField
		case "uuid":
			if code == errors.ValidationInvalidQuery {
				code = errors.ValidationInvalidID
			}
		}
	}
	return code
}

func problem(c echo.Context, code errors.ErrorCode, details ...string) *errors.ErrorResponse {
	return errors.NewErrorResponse(code, getTraceID(c),
		errors.WithInstance(c.Request().URL.Path),
		errors.WithDetails(details...),
	)
}

// handleServiceError maps errors returned by the chart, dashboard and options services
func handleServiceError(c echo.Context, err error) error {
	if ve, ok := services.AsValidationError(err); ok {
		if ve.Kind == services.ValidationKindDateRange {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(ve.Details...))
		}
		return SendError(c, errors.ChartUnsupportedParam, errors.WithDetails(ve.Details...))
	}

	switch {
	case stderrors.Is(err, pagination.ErrInvalidCursor):
		return SendError(c, errors.ChartInvalidCursor, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrChartTypeNotFound):
		return SendError(c, errors.ChartTypeNotFound, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrUnknownOptionsDimension):
		return SendError(c, errors.OptionsDimensionNotFound, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrStoreUnavailable):
		return SendError(c, errors.SystemServiceUnavailable)
	}

	return SendSystemError(c, err)
}

// etagMatches reports whether an If-None-Match header value names etag
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}
