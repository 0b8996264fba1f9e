package handlers

import (
	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

type OptionsHandler struct {
	optionsService services.OptionsServiceInterface
}

func NewOptionsHandler(optionsService services.OptionsServiceInterface) *OptionsHandler {
	return &OptionsHandler{optionsService: optionsService}
}

// ListOptions pages through the values of one filter dropdown
//
// Method: GET /api/v1/options/:dimension
//
// Query parameters:
//   - search: case-insensitive match anywhere in the name
//   - cursor, limit: keyset pagination (limit defaults to 20, at most 100)
//
// Error Responses:
//   - 400: CHART_003 invalid cursor
//   - 404: OPTIONS_001 unknown dimension
func (h *OptionsHandler) ListOptions(c echo.Context) error {
	var query dto.OptionsQuery
	if errResp := bindQuery(c, &query); errResp != nil {
		return sendProblem(c, errResp)
	}

	page, err := h.optionsService.ListOptions(c.Request().Context(), c.Param("dimension"), query.Search, query.Cursor, query.Limit)
	if err != nil {
		return handleServiceError(c, err)
	}

	return sendData(c, page)
}
