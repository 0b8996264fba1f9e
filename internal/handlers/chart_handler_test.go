package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-dashboard/internal/dto"
	apierrors "finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/pagination"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ChartHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	echo             *echo.Echo
	mockChartService *service_mocks.MockChartServiceInterface
	handler          *ChartHandler
}

func TestChartHandlerSuite(t *testing.T) {
	suite.Run(t, new(ChartHandlerTestSuite))
}

func (s *ChartHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockChartService = service_mocks.NewMockChartServiceInterface(s.ctrl)
	s.handler = NewChartHandler(s.mockChartService)
}

func (s *ChartHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ChartHandlerTestSuite) newContext(chartType, rawQuery string) (echo.Context, *httptest.ResponseRecorder) {
	target := "/api/v1/charts/" + chartType
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetPath("/api/v1/charts/:chartType")
	c.SetParamNames("chartType")
	c.SetParamValues(chartType)
	c.Set(TraceIDContextKey, "trace-123")
	return c, rec
}

func (s *ChartHandlerTestSuite) decodeProblem(rec *httptest.ResponseRecorder) ErrorResponse {
	s.Equal(apierrors.ProblemContentType, rec.Header().Get(echo.HeaderContentType))
	var problem ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &problem))
	return problem
}

func (s *ChartHandlerTestSuite) expectKnownType(chartType models.ChartType) {
	s.mockChartService.EXPECT().Metadata(chartType).Return(dto.ChartMetadata{Name: string(chartType)}, nil)
}

func (s *ChartHandlerTestSuite) expectValidation() {
	s.mockChartService.EXPECT().ValidateRequest(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, req models.ChartRequest) (models.ChartRequest, error) {
			return req, nil
		})
}

func (s *ChartHandlerTestSuite) pieResult() *services.ChartResult {
	label := gofakeit.ProductCategory()
	return &services.ChartResult{
		ETag: `"etag-1"`,
		Response: &dto.PieChartResponse{
			Type:   models.ChartTypePie,
			Slices: []dto.PieSlice{{Label: label, Value: 100, Percentage: 100}},
		},
	}
}

func (s *ChartHandlerTestSuite) TestGetChart_Success() {
	c, rec := s.newContext("pie", "start=2024-01-01&end=2024-01-31&groupBy=category&region=South")
	s.expectKnownType(models.ChartTypePie)
	s.expectValidation()
	s.mockChartService.EXPECT().ETag(gomock.Any()).Return(`"etag-1"`)
	s.mockChartService.EXPECT().CacheControlHeader(models.ChartTypePie).Return("private, max-age=300")
	s.mockChartService.EXPECT().GetChart(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, req models.ChartRequest) (*services.ChartResult, error) {
			s.Equal(models.ChartTypePie, req.ChartType)
			s.Equal("category", req.GroupBy)
			s.Equal("South", req.Filters.Region)
			s.Equal("2024-01-31", req.End.Format(models.DateLayout))
			return s.pieResult(), nil
		})

	err := s.handler.GetChart(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(`"etag-1"`, rec.Header().Get("ETag"))
	s.Equal("private, max-age=300", rec.Header().Get("Cache-Control"))

	var response map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	s.Equal("pie", data["type"])
}

func (s *ChartHandlerTestSuite) TestGetChart_NotModified() {
	c, rec := s.newContext("pie", "start=2024-01-01&end=2024-01-31")
	c.Request().Header.Set("If-None-Match", `"etag-1"`)
	s.expectKnownType(models.ChartTypePie)
	s.expectValidation()
	s.mockChartService.EXPECT().ETag(gomock.Any()).Return(`"etag-1"`)
	s.mockChartService.EXPECT().CacheControlHeader(models.ChartTypePie).Return("private, max-age=300")
	s.mockChartService.EXPECT().GetChart(gomock.Any(), gomock.Any()).Times(0)

	err := s.handler.GetChart(c)

	s.NoError(err)
	s.Equal(http.StatusNotModified, rec.Code)
	s.Empty(rec.Body.Bytes())
	s.Equal(`"etag-1"`, rec.Header().Get("ETag"))
}

func (s *ChartHandlerTestSuite) TestGetChart_StaleETagRecomputes() {
	c, rec := s.newContext("pie", "start=2024-01-01&end=2024-01-31")
	c.Request().Header.Set("If-None-Match", `"old"`)
	s.expectKnownType(models.ChartTypePie)
	s.expectValidation()
	s.mockChartService.EXPECT().ETag(gomock.Any()).Return(`"etag-1"`)
	s.mockChartService.EXPECT().CacheControlHeader(models.ChartTypePie).Return("private, max-age=300")
	s.mockChartService.EXPECT().GetChart(gomock.Any(), gomock.Any()).Return(s.pieResult(), nil)

	s.NoError(s.handler.GetChart(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ChartHandlerTestSuite) TestGetChart_UnknownChartType() {
	c, rec := s.newContext("radar", "start=2024-01-01&end=2024-01-31")
	s.mockChartService.EXPECT().Metadata(models.ChartType("radar")).
		Return(dto.ChartMetadata{}, fmt.Errorf("%w: radar", services.ErrChartTypeNotFound))

	s.NoError(s.handler.GetChart(c))

	s.Equal(http.StatusNotFound, rec.Code)
	problem := s.decodeProblem(rec)
	s.Equal(string(apierrors.ChartTypeNotFound), problem.Code)
	s.Equal("trace-123", problem.TraceID)
	s.Equal("/api/v1/charts/radar", problem.Instance)
}

func (s *ChartHandlerTestSuite) TestGetChart_QueryValidation() {
	testCases := []struct {
		name     string
		query    string
		code     apierrors.ErrorCode
		contains string
	}{
		{"missing start", "end=2024-01-31", apierrors.ValidationRequiredField, "start is required"},
		{"malformed date", "start=2024-13-01&end=2024-01-31", apierrors.ValidationInvalidDate, "start must be a date"},
		{"non numeric topN", "start=2024-01-01&end=2024-01-31&topN=many", apierrors.ValidationInvalidQuery, "could not be parsed"},
		{"bad category id", "start=2024-01-01&end=2024-01-31&categoryId=xyz", apierrors.ValidationInvalidID, "categoryId must be a valid UUID"},
		{"zero limit", "start=2024-01-01&end=2024-01-31&limit=-1", apierrors.ValidationInvalidQuery, "limit must be at least 1"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := s.newContext("line", tc.query)
			s.expectKnownType(models.ChartTypeLine)

			s.NoError(s.handler.GetChart(c))

			s.Equal(http.StatusBadRequest, rec.Code)
			problem := s.decodeProblem(rec)
			s.Equal(string(tc.code), problem.Code)
			s.Require().NotEmpty(problem.Errors)
			s.Contains(problem.Errors[0], tc.contains)
		})
	}
}

func (s *ChartHandlerTestSuite) TestGetChart_ServiceErrorsMapToProblems() {
	testCases := []struct {
		name   string
		err    error
		status int
		code   apierrors.ErrorCode
	}{
		{
			name:   "date range",
			err:    &services.ValidationError{Kind: services.ValidationKindDateRange, Details: []string{"end must not be before start"}},
			status: http.StatusBadRequest,
			code:   apierrors.ValidationInvalidDate,
		},
		{
			name:   "unsupported parameter",
			err:    &services.ValidationError{Kind: services.ValidationKindParameter, Details: []string{"topN must be between 1 and 20 for pie charts"}},
			status: http.StatusBadRequest,
			code:   apierrors.ChartUnsupportedParam,
		},
		{
			name:   "invalid cursor",
			err:    fmt.Errorf("%w: bad encoding", pagination.ErrInvalidCursor),
			status: http.StatusBadRequest,
			code:   apierrors.ChartInvalidCursor,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := s.newContext("pie", "start=2024-01-01&end=2024-01-31")
			s.expectKnownType(models.ChartTypePie)
			s.mockChartService.EXPECT().ValidateRequest(gomock.Any(), gomock.Any()).Return(models.ChartRequest{}, tc.err)

			s.NoError(s.handler.GetChart(c))

			s.Equal(tc.status, rec.Code)
			s.Equal(string(tc.code), s.decodeProblem(rec).Code)
		})
	}
}

func (s *ChartHandlerTestSuite) TestGetChart_StoreUnavailable() {
	c, rec := s.newContext("kpi", "start=2024-01-01&end=2024-01-31")
	s.expectKnownType(models.ChartTypeKPI)
	s.expectValidation()
	s.mockChartService.EXPECT().ETag(gomock.Any()).Return(`"k"`)
	s.mockChartService.EXPECT().CacheControlHeader(models.ChartTypeKPI).Return("private, max-age=60")
	s.mockChartService.EXPECT().GetChart(gomock.Any(), gomock.Any()).Return(nil, services.ErrStoreUnavailable)

	s.NoError(s.handler.GetChart(c))

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal(string(apierrors.SystemServiceUnavailable), s.decodeProblem(rec).Code)
}

func (s *ChartHandlerTestSuite) TestGetChart_UnexpectedErrorIsHidden() {
	c, rec := s.newContext("bar", "start=2024-01-01&end=2024-01-31")
	s.expectKnownType(models.ChartTypeBar)
	s.expectValidation()
	s.mockChartService.EXPECT().ETag(gomock.Any()).Return(`"b"`)
	s.mockChartService.EXPECT().CacheControlHeader(models.ChartTypeBar).Return("private, max-age=300")
	s.mockChartService.EXPECT().GetChart(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("pq: relation \"transactions\" does not exist"))

	s.NoError(s.handler.GetChart(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	problem := s.decodeProblem(rec)
	s.Equal(string(apierrors.SystemInternalError), problem.Code)
	s.NotContains(rec.Body.String(), "relation")
}

func (s *ChartHandlerTestSuite) TestListChartTypes() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/charts/types", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.mockChartService.EXPECT().ListTypes().Return([]dto.ChartMetadata{
		{Name: "line", CacheMaxAge: 300},
		{Name: "kpi", CacheMaxAge: 60},
	})

	s.NoError(s.handler.ListChartTypes(c))

	s.Equal(http.StatusOK, rec.Code)
	var response struct {
		Data dto.ChartTypesResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Data.Types, 2)
	s.Equal(60, response.Data.Types[1].CacheMaxAge)
}

func (s *ChartHandlerTestSuite) TestGetChartMetadata() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/charts/table/metadata", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("chartType")
	c.SetParamValues("table")
	s.mockChartService.EXPECT().Metadata(models.ChartTypeTable).
		Return(dto.ChartMetadata{Name: "table", SupportsPagination: true}, nil)

	s.NoError(s.handler.GetChartMetadata(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"supportsPagination":true`)
}

func (s *ChartHandlerTestSuite) TestGetChartMetadata_UnknownType() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/charts/gauge/metadata", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.SetParamNames("chartType")
	c.SetParamValues("gauge")
	s.mockChartService.EXPECT().Metadata(models.ChartType("gauge")).Return(dto.ChartMetadata{}, services.ErrChartTypeNotFound)

	s.NoError(s.handler.GetChartMetadata(c))

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ChartHandlerTestSuite) TestETagMatches() {
	s.True(etagMatches(`"a"`, `"a"`))
	s.True(etagMatches(`"x", "a"`, `"a"`))
	s.True(etagMatches(`W/"a"`, `"a"`))
	s.True(etagMatches("*", `"a"`))
	s.False(etagMatches("", `"a"`))
	s.False(etagMatches(`"b"`, `"a"`))
}
