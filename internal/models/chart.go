package models

import (
	"time"

	"github.com/google/uuid"
)

// ChartType identifies one of the chart strategies
type ChartType string

const (
	ChartTypeLine  ChartType = "line"
	ChartTypeBar   ChartType = "bar"
	ChartTypePie   ChartType = "pie"
	ChartTypeTable ChartType = "table"
	ChartTypeKPI   ChartType = "kpi"
)

// AllChartTypes returns every chart type in display order
func AllChartTypes() []ChartType {
	return []ChartType{ChartTypeLine, ChartTypeBar, ChartTypePie, ChartTypeTable, ChartTypeKPI}
}

func IsValidChartType(chartType string) bool {
	for _, t := range AllChartTypes() {
		if string(t) == chartType {
			return true
		}
	}
	return false
}

// DateLayout is the wire format of start/end query parameters
const DateLayout = "2006-01-02"

// ChartRequest is the common request every chart strategy consumes.
// Start and End are calendar days; RangeStart/RangeEnd expand them to the inclusive instant bounds.
type ChartRequest struct {
	ChartType ChartType
	Start     time.Time
	End       time.Time
	Metric    string
	GroupBy   string
	Dimension string
	TopN      int
	Limit     int
	Cursor    string
	Filters   ChartFilters
}

// RangeStart returns 00:00:00 UTC of the start day
func (r *ChartRequest) RangeStart() time.Time {
	return StartOfDay(r.Start)
}

// RangeEnd returns the last nanosecond of the end day
func (r *ChartRequest) RangeEnd() time.Time {
	return EndOfDay(r.End)
}

// DashboardRequest is the input of the summary aggregator
type DashboardRequest struct {
	Start   time.Time
	End     time.Time
	Filters ChartFilters
}

func (r *DashboardRequest) RangeStart() time.Time {
	return StartOfDay(r.Start)
}

func (r *DashboardRequest) RangeEnd() time.Time {
	return EndOfDay(r.End)
}

func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// OptionItem is one selectable value of a filter dropdown
type OptionItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UUIDPtr is a small helper for optional filters
func UUIDPtr(id uuid.UUID) *uuid.UUID {
	return &id
}
