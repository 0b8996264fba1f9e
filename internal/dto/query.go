package dto

import (
	"fmt"
	"time"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
)

// FilterQuery holds the optional dimension filters shared by charts and the dashboard summary
type FilterQuery struct {
	CategoryID string `query:"categoryId" validate:"omitempty,uuid"`
	ProductID  string `query:"productId" validate:"omitempty,uuid"`
	CustomerID string `query:"customerId" validate:"omitempty,uuid"`
	Region     string `query:"region" validate:"omitempty,max=60"`
}

// ChartQuery is the query string of GET /charts/:chartType
type ChartQuery struct {
	Start     string `query:"start" validate:"required,iso_date"`
	End       string `query:"end" validate:"required,iso_date"`
	Metric    string `query:"metric" validate:"omitempty,max=32"`
	GroupBy   string `query:"groupBy" validate:"omitempty,max=32"`
	Dimension string `query:"dimension" validate:"omitempty,max=32"`
	TopN      int    `query:"topN" validate:"omitempty,min=1"`
	Limit     int    `query:"limit" validate:"omitempty,min=1"`
	Cursor    string `query:"cursor" validate:"omitempty,max=512"`
	FilterQuery
}

// DashboardQuery is the query string of GET /dashboard/summary
type DashboardQuery struct {
	Start string `query:"start" validate:"required,iso_date"`
	End   string `query:"end" validate:"required,iso_date"`
	FilterQuery
}

// OptionsQuery is the query string of GET /options/:dimension
type OptionsQuery struct {
	Search string `query:"search" validate:"omitempty,max=100"`
	Cursor string `query:"cursor" validate:"omitempty,max=512"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// ToChartRequest converts a validated query into the request chart strategies consume
func (q *ChartQuery) ToChartRequest(chartType models.ChartType) (models.ChartRequest, error) {
	start, end, err := parseRange(q.Start, q.End)
	if err != nil {
		return models.ChartRequest{}, err
	}

	filters, err := q.FilterQuery.ToFilters()
	if err != nil {
		return models.ChartRequest{}, err
	}

	return models.ChartRequest{
		ChartType: chartType,
		Start:     start,
		End:       end,
		Metric:    q.Metric,
		GroupBy:   q.GroupBy,
		Dimension: q.Dimension,
		TopN:      q.TopN,
		Limit:     q.Limit,
		Cursor:    q.Cursor,
		Filters:   filters,
	}, nil
}

// ToDashboardRequest converts a validated query into the summary aggregator's input
func (q *DashboardQuery) ToDashboardRequest() (models.DashboardRequest, error) {
	start, end, err := parseRange(q.Start, q.End)
	if err != nil {
		return models.DashboardRequest{}, err
	}

	filters, err := q.FilterQuery.ToFilters()
	if err != nil {
		return models.DashboardRequest{}, err
	}

	return models.DashboardRequest{Start: start, End: end, Filters: filters}, nil
}

// ToFilters parses the optional id filters
func (f *FilterQuery) ToFilters() (models.ChartFilters, error) {
	var filters models.ChartFilters
	var err error

	if filters.CategoryID, err = parseOptionalUUID("categoryId", f.CategoryID); err != nil {
		return filters, err
	}
	if filters.ProductID, err = parseOptionalUUID("productId", f.ProductID); err != nil {
		return filters, err
	}
	if filters.CustomerID, err = parseOptionalUUID("customerId", f.CustomerID); err != nil {
		return filters, err
	}
	filters.Region = f.Region

	return filters, nil
}

func parseRange(startValue, endValue string) (time.Time, time.Time, error) {
	start, err := time.Parse(models.DateLayout, startValue)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start must be a date in YYYY-MM-DD format")
	}
	end, err := time.Parse(models.DateLayout, endValue)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end must be a date in YYYY-MM-DD format")
	}
	return start, end, nil
}

func parseOptionalUUID(field, value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("%s must be a valid UUID", field)
	}
	return &id, nil
}
