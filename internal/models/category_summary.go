package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AggregateRow is one cell of a grouped aggregation. SeriesKey/SeriesLabel are empty
// for single-axis groupings.
type AggregateRow struct {
	GroupKey    string
	GroupLabel  string
	SeriesKey   string
	SeriesLabel string
	Value       decimal.Decimal
}

// DimensionSummary contains aggregated transaction data for one lookup row (category, product or customer)
type DimensionSummary struct {
	ID               string
	Name             string
	Revenue          decimal.Decimal
	Expense          decimal.Decimal
	TransactionCount int64
}

func (s DimensionSummary) Profit() decimal.Decimal {
	return s.Revenue.Sub(s.Expense)
}

// TransactionRow is a transaction joined with its lookup names, as listed by the table chart
type TransactionRow struct {
	ID            string
	OccurredAt    time.Time
	Type          string
	CategoryName  string
	ProductName   *string
	CustomerName  *string
	Description   string
	Quantity      int
	Amount        decimal.Decimal
	PaymentStatus string
}

// DimensionSummaryPage is one page of per-dimension summaries plus the totals over every group
type DimensionSummaryPage struct {
	Rows         []DimensionSummary
	GroupCount   int64
	RevenueTotal decimal.Decimal
}
