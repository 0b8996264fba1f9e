package services

import (
	"context"
	"fmt"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/pagination"
	"finance-dashboard/internal/repositories"
)

const (
	TableDimensionTransactions = "transactions"

	defaultTableLimit = 20
	maxTableLimit     = 100
)

var tableDimensions = []string{
	TableDimensionTransactions,
	repositories.GroupCategory,
	repositories.GroupProduct,
	repositories.GroupCustomer,
}

var transactionColumns = []dto.TableColumn{
	{Key: "occurredAt", Label: "Date", Type: dto.ColumnTypeDate},
	{Key: "type", Label: "Type", Type: dto.ColumnTypeString},
	{Key: "category", Label: "Category", Type: dto.ColumnTypeString},
	{Key: "product", Label: "Product", Type: dto.ColumnTypeString},
	{Key: "customer", Label: "Customer", Type: dto.ColumnTypeString},
	{Key: "description", Label: "Description", Type: dto.ColumnTypeString},
	{Key: "quantity", Label: "Quantity", Type: dto.ColumnTypeNumber},
	{Key: "amount", Label: "Amount", Type: dto.ColumnTypeCurrency},
	{Key: "paymentStatus", Label: "Status", Type: dto.ColumnTypeString},
}

var summaryColumns = []dto.TableColumn{
	{Key: "name", Label: "Name", Type: dto.ColumnTypeString},
	{Key: "revenue", Label: "Revenue", Type: dto.ColumnTypeCurrency},
	{Key: "expense", Label: "Expense", Type: dto.ColumnTypeCurrency},
	{Key: "profit", Label: "Profit", Type: dto.ColumnTypeCurrency},
	{Key: "transactionCount", Label: "Transactions", Type: dto.ColumnTypeNumber},
	{Key: "revenueShare", Label: "Revenue Share", Type: dto.ColumnTypePercentage},
}

// TableChartStrategy pages through raw transactions or per-dimension summaries using offset cursors
type TableChartStrategy struct {
	repo repositories.ChartRepositoryInterface
}

func NewTableChartStrategy(repo repositories.ChartRepositoryInterface) ChartStrategy {
	return &TableChartStrategy{repo: repo}
}

func (s *TableChartStrategy) Type() models.ChartType {
	return models.ChartTypeTable
}

func (s *TableChartStrategy) CanHandle(req *models.ChartRequest) bool {
	return req.ChartType == models.ChartTypeTable
}

func (s *TableChartStrategy) Validate(req *models.ChartRequest) []string {
	var problems []string
	if req.Dimension != "" && !contains(tableDimensions, req.Dimension) {
		problems = append(problems, unsupportedParam("dimension", req.Dimension, req.ChartType, tableDimensions))
	}
	if req.Limit < 0 || req.Limit > maxTableLimit {
		problems = append(problems, fmt.Sprintf("limit must be between 1 and %d for table charts", maxTableLimit))
	}
	return problems
}

func (s *TableChartStrategy) Metadata() dto.ChartMetadata {
	return dto.ChartMetadata{
		Name:                string(models.ChartTypeTable),
		Description:         "Paginated transactions or per-dimension revenue and expense summaries",
		SupportedMetrics:    []string{},
		SupportedGroupBy:    []string{},
		SupportedDimensions: tableDimensions,
		SupportsPagination:  true,
		MaxLimit:            maxTableLimit,
	}
}

func (s *TableChartStrategy) Execute(ctx context.Context, req *models.ChartRequest) (dto.ChartResponse, error) {
	skip := 0
	if req.Cursor != "" {
		var err error
		if skip, err = pagination.DecodeOffset(req.Cursor); err != nil {
			return nil, err
		}
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultTableLimit
	}

	dimension := orDefault(req.Dimension, TableDimensionTransactions)
	if dimension == TableDimensionTransactions {
		return s.transactions(ctx, req, skip, limit)
	}
	return s.summaries(ctx, req, dimension, skip, limit)
}

func (s *TableChartStrategy) transactions(ctx context.Context, req *models.ChartRequest, skip, limit int) (dto.ChartResponse, error) {
	rows, total, err := s.repo.ListTransactions(ctx, scopeOf(req), skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list table transactions: %w", err)
	}

	out := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		out = append(out, map[string]interface{}{
			"id":            row.ID,
			"occurredAt":    row.OccurredAt.UTC().Format(models.DateLayout),
			"type":          models.TransactionTypeLabel(row.Type),
			"category":      row.CategoryName,
			"product":       stringOrEmpty(row.ProductName),
			"customer":      stringOrEmpty(row.CustomerName),
			"description":   row.Description,
			"quantity":      row.Quantity,
			"amount":        toFloat(row.Amount),
			"paymentStatus": row.PaymentStatus,
		})
	}

	return tablePage(transactionColumns, out, skip, total), nil
}

func (s *TableChartStrategy) summaries(ctx context.Context, req *models.ChartRequest, dimension string, skip, limit int) (dto.ChartResponse, error) {
	page, err := s.repo.SummarizeByDimension(ctx, scopeOf(req), dimension, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize table by %s: %w", dimension, err)
	}

	out := make([]map[string]interface{}, 0, len(page.Rows))
	for _, row := range page.Rows {
		out = append(out, map[string]interface{}{
			"id":               row.ID,
			"name":             row.Name,
			"revenue":          toFloat(row.Revenue),
			"expense":          toFloat(row.Expense),
			"profit":           toFloat(row.Profit()),
			"transactionCount": row.TransactionCount,
			"revenueShare":     percentageOf(row.Revenue, page.RevenueTotal).InexactFloat64(),
		})
	}

	return tablePage(summaryColumns, out, skip, page.GroupCount), nil
}

// tablePage sets hasMore and the next cursor from the page position
func tablePage(columns []dto.TableColumn, rows []map[string]interface{}, skip int, total int64) *dto.TableChartResponse {
	next := skip + len(rows)
	response := &dto.TableChartResponse{
		Type:    models.ChartTypeTable,
		Columns: columns,
		Rows:    rows,
		HasMore: int64(next) < total,
		Total:   total,
	}
	if response.HasMore {
		response.Cursor = pagination.EncodeOffset(next)
	}
	return response
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
