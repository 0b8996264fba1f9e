package dto

import (
	"fmt"

	"finance-dashboard/internal/models"
)

// ChartResponse is implemented by the five typed chart payloads
type ChartResponse interface {
	GetChartType() models.ChartType
}

// NewChartResponse returns an empty payload of the concrete type for chartType, ready to be unmarshaled into
func NewChartResponse(chartType models.ChartType) (ChartResponse, error) {
	switch chartType {
	case models.ChartTypeLine:
		return &LineChartResponse{}, nil
	case models.ChartTypeBar:
		return &BarChartResponse{}, nil
	case models.ChartTypePie:
		return &PieChartResponse{}, nil
	case models.ChartTypeTable:
		return &TableChartResponse{}, nil
	case models.ChartTypeKPI:
		return &KPIChartResponse{}, nil
	default:
		return nil, fmt.Errorf("unknown chart type %q", chartType)
	}
}

// LinePoint is one bucket of a line series
type LinePoint struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

// LineSeries is one line with its palette color
type LineSeries struct {
	Name  string      `json:"name"`
	Color string      `json:"color"`
	Data  []LinePoint `json:"data"`
}

type LineMetadata struct {
	Metric  string  `json:"metric"`
	GroupBy string  `json:"groupBy"`
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

type LineChartResponse struct {
	Type     models.ChartType `json:"type"`
	Series   []LineSeries     `json:"series"`
	Metadata LineMetadata     `json:"metadata"`
}

func (r *LineChartResponse) GetChartType() models.ChartType { return models.ChartTypeLine }

// BarSeries holds one value per category, aligned with BarChartResponse.Categories
type BarSeries struct {
	Name  string    `json:"name"`
	Color string    `json:"color"`
	Data  []float64 `json:"data"`
}

type BarMetadata struct {
	Metric    string  `json:"metric"`
	GroupBy   string  `json:"groupBy"`
	Dimension string  `json:"dimension"`
	Total     float64 `json:"total"`
	Average   float64 `json:"average"`
}

type BarChartResponse struct {
	Type       models.ChartType `json:"type"`
	Categories []string         `json:"categories"`
	Series     []BarSeries      `json:"series"`
	Metadata   BarMetadata      `json:"metadata"`
}

func (r *BarChartResponse) GetChartType() models.ChartType { return models.ChartTypeBar }

type PieSlice struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

type PieMetadata struct {
	Metric  string  `json:"metric"`
	GroupBy string  `json:"groupBy"`
	Total   float64 `json:"total"`
}

type PieChartResponse struct {
	Type     models.ChartType `json:"type"`
	Slices   []PieSlice       `json:"slices"`
	Metadata PieMetadata      `json:"metadata"`
}

func (r *PieChartResponse) GetChartType() models.ChartType { return models.ChartTypePie }

// ColumnType drives client-side formatting of a table column
type ColumnType string

const (
	ColumnTypeString     ColumnType = "string"
	ColumnTypeNumber     ColumnType = "number"
	ColumnTypeDate       ColumnType = "date"
	ColumnTypeCurrency   ColumnType = "currency"
	ColumnTypePercentage ColumnType = "percentage"
)

type TableColumn struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Type  ColumnType `json:"type"`
}

type TableChartResponse struct {
	Type    models.ChartType         `json:"type"`
	Columns []TableColumn            `json:"columns"`
	Rows    []map[string]interface{} `json:"rows"`
	HasMore bool                     `json:"hasMore"`
	Total   int64                    `json:"total"`
	Cursor  string                   `json:"cursor,omitempty"`
}

func (r *TableChartResponse) GetChartType() models.ChartType { return models.ChartTypeTable }

// Trend values of a KPI metric
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// KPIMetric compares one named figure between the requested and the previous period
type KPIMetric struct {
	Key              string  `json:"key"`
	Label            string  `json:"label"`
	Format           string  `json:"format"`
	Current          float64 `json:"current"`
	Previous         float64 `json:"previous"`
	Change           float64 `json:"change"`
	ChangePercentage float64 `json:"changePercentage"`
	Trend            string  `json:"trend"`
}

// Period is an inclusive calendar-day range
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type KPIPeriods struct {
	Current  Period `json:"current"`
	Previous Period `json:"previous"`
}

type KPIChartResponse struct {
	Type    models.ChartType `json:"type"`
	Metrics []KPIMetric      `json:"metrics"`
	Periods KPIPeriods       `json:"periods"`
}

func (r *KPIChartResponse) GetChartType() models.ChartType { return models.ChartTypeKPI }

// ChartMetadata describes what a chart type accepts
type ChartMetadata struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	SupportedMetrics    []string `json:"supportedMetrics"`
	SupportedGroupBy    []string `json:"supportedGroupBy"`
	SupportedDimensions []string `json:"supportedDimensions,omitempty"`
	SupportsPagination  bool     `json:"supportsPagination"`
	SupportsTopN        bool     `json:"supportsTopN"`
	MaxTopN             int      `json:"maxTopN,omitempty"`
	MaxLimit            int      `json:"maxLimit,omitempty"`
	CacheMaxAge         int      `json:"cacheMaxAge"`
}

// ChartTypesResponse lists every registered chart type
type ChartTypesResponse struct {
	Types []ChartMetadata `json:"types"`
}
