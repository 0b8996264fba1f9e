package handlers

import (
	"net/http"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

type ChartHandler struct {
	chartService services.ChartServiceInterface
}

func NewChartHandler(chartService services.ChartServiceInterface) *ChartHandler {
	return &ChartHandler{chartService: chartService}
}

// ListChartTypes lists every chart type with its capabilities
//
// Method: GET /api/v1/charts/types
//
// Success Response: 200 OK
//   - types: Array of chart metadata
func (h *ChartHandler) ListChartTypes(c echo.Context) error {
	return sendData(c, dto.ChartTypesResponse{Types: h.chartService.ListTypes()})
}

// GetChartMetadata describes the parameters one chart type accepts
//
// Method: GET /api/v1/charts/:chartType/metadata
//
// Error Responses:
//   - 404: CHART_001 unknown chart type
func (h *ChartHandler) GetChartMetadata(c echo.Context) error {
	meta, err := h.chartService.Metadata(models.ChartType(c.Param("chartType")))
	if err != nil {
		return handleServiceError(c, err)
	}
	return sendData(c, meta)
}

// GetChart renders one chart
//
// Method: GET /api/v1/charts/:chartType
//
// Query parameters:
//   - start, end: YYYY-MM-DD, inclusive (required)
//   - metric, groupBy, dimension, topN: chart specific
//   - cursor, limit: table pagination
//   - categoryId, productId, customerId, region: filters
//
// Success Response: 200 OK with ETag and Cache-Control; 304 Not Modified when If-None-Match matches
//
// Error Responses:
//   - 400: VALIDATION_00x, CHART_002 unsupported parameter, CHART_003 invalid cursor
//   - 404: CHART_001 unknown chart type
//   - 500: SYSTEM_001
//   - 503: SYSTEM_003 store temporarily unavailable
func (h *ChartHandler) GetChart(c echo.Context) error {
	chartType := models.ChartType(c.Param("chartType"))
	if _, err := h.chartService.Metadata(chartType); err != nil {
		return handleServiceError(c, err)
	}

	var query dto.ChartQuery
	if errResp := bindQuery(c, &query); errResp != nil {
		return sendProblem(c, errResp)
	}

	req, err := query.ToChartRequest(chartType)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	ctx := c.Request().Context()
	req, err = h.chartService.ValidateRequest(ctx, req)
	if err != nil {
		return handleServiceError(c, err)
	}

	etag := h.chartService.ETag(req)
	header := c.Response().Header()
	header.Set(headerETag, etag)
	header.Set(headerCacheControl, h.chartService.CacheControlHeader(chartType))

	if etagMatches(c.Request().Header.Get(headerIfNoneMatch), etag) {
		return c.NoContent(http.StatusNotModified)
	}

	result, err := h.chartService.GetChart(ctx, req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return sendData(c, result.Response)
}
