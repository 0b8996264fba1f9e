package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"finance-dashboard/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("chart_type", validateChartType)

	// report fields by their wire name: query parameter, then path parameter, then JSON key
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"query", "param", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return ""
	})

	return &Validator{validate: v}
}

// Struct validates s against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateISODate accepts calendar dates in YYYY-MM-DD form
func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateLayout, fl.Field().String())
	return err == nil
}

func validateChartType(fl validator.FieldLevel) bool {
	return models.IsValidChartType(fl.Field().String())
}

// FormatErrors flattens validator errors into "field message" strings; other errors pass through as one entry
func FormatErrors(err error) []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		details = append(details, fe.Field()+" "+formatFieldError(fe))
	}
	return details
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "iso_date":
		return "must be a date in YYYY-MM-DD format"
	case "chart_type":
		return "must be one of: line, bar, pie, table, kpi"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
