package handlers

import (
	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	summaryService services.DashboardSummaryServiceInterface
}

func NewDashboardHandler(summaryService services.DashboardSummaryServiceInterface) *DashboardHandler {
	return &DashboardHandler{summaryService: summaryService}
}

// GetSummary returns the dashboard summary cards
//
// Method: GET /api/v1/dashboard/summary
//
// Query parameters:
//   - start, end: YYYY-MM-DD, inclusive (required)
//   - categoryId, productId, customerId, region: filters
//
// Success Response: 200 OK
//   - totalRevenue, totalExpense, liquidProfit
//   - overdueAccounts, upcomingAccounts: {receivable, payable, total}
//   - metadata: {period, generatedAt}
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	var query dto.DashboardQuery
	if errResp := bindQuery(c, &query); errResp != nil {
		return sendProblem(c, errResp)
	}

	req, err := query.ToDashboardRequest()
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	summary, err := h.summaryService.GetSummary(c.Request().Context(), req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return sendData(c, summary)
}
