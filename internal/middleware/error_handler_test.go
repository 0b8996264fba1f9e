package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "finance-dashboard/internal/errors"
	"finance-dashboard/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// ErrorHandlerTestSuite defines the test suite for error handler middleware
type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

// TestErrorHandlerTestSuite runs the test suite
func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_EchoHTTPError() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nothing", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	echoErr := echo.NewHTTPError(http.StatusNotFound, "Resource not found")
	CustomHTTPErrorHandler(echoErr, c)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(apierrors.ProblemContentType, rec.Header().Get(echo.HeaderContentType))

	var problem apierrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &problem))
	s.Equal("SYSTEM_007", problem.Code)
	s.Equal("Resource not found", problem.Detail)
	s.Equal("test-trace-id", problem.TraceID)
	s.Equal("/api/v1/nothing", problem.Instance)
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_GenericError() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	CustomHTTPErrorHandler(errors.New("generic error"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
	s.Contains(rec.Body.String(), "test-trace-id")
	s.NotContains(rec.Body.String(), "generic error")
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_ValidationErrors() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	type query struct {
		Start string `query:"start" validate:"required,iso_date"`
	}
	err := validation.NewValidator().Struct(query{Start: "yesterday"})
	s.Require().Error(err)

	CustomHTTPErrorHandler(err, c)

	s.Equal(http.StatusBadRequest, rec.Code)
	var problem apierrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &problem))
	s.Equal("VALIDATION_001", problem.Code)
	s.Equal([]string{"start must be a date in YYYY-MM-DD format"}, problem.Errors)
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_NoTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	CustomHTTPErrorHandler(errors.New("test error"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "unknown")
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_CommittedResponse() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})

	CustomHTTPErrorHandler(errors.New("test error"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
}

func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode_AllStatuses() {
	testCases := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, "VALIDATION_001"},
		{http.StatusNotFound, "SYSTEM_007"},
		{http.StatusMethodNotAllowed, "VALIDATION_001"},
		{http.StatusUnprocessableEntity, "VALIDATION_001"},
		{http.StatusTooManyRequests, "SYSTEM_006"},
		{http.StatusInternalServerError, "SYSTEM_001"},
		{http.StatusServiceUnavailable, "SYSTEM_003"},
		{999, "SYSTEM_005"},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := s.echo.NewContext(req, rec)
			c.Set(TraceIDContextKey, "test-trace-id")

			CustomHTTPErrorHandler(echo.NewHTTPError(tc.status), c)

			s.Equal(tc.status, rec.Code)
			s.Contains(rec.Body.String(), tc.expectedCode)
		})
	}
}
