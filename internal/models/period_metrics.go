package models

import (
	"github.com/shopspring/decimal"
)

// PeriodMetrics holds the raw sums the KPI chart compares between two periods
type PeriodMetrics struct {
	Revenue            decimal.Decimal
	Expense            decimal.Decimal
	TransactionCount   int64
	RevenueCount       int64
	DistinctCustomers  int64
	DistinctProducts   int64
	OverdueReceivables decimal.Decimal
	OverduePayables    decimal.Decimal
	PendingReceivables decimal.Decimal
	PendingPayables    decimal.Decimal
}

// DashboardTotals holds the six sums behind the summary cards
type DashboardTotals struct {
	Revenue            decimal.Decimal
	Expense            decimal.Decimal
	OverdueReceivable  decimal.Decimal
	OverduePayable     decimal.Decimal
	UpcomingReceivable decimal.Decimal
	UpcomingPayable    decimal.Decimal
}

// CircuitBreakerState is the state of a circuit breaker guarding the store
type CircuitBreakerState int

func (s CircuitBreakerState) String() string {
	switch s {
	case 0:
		return "closed"
	case 1:
		return "open"
	case 2:
		return "half_open"
	default:
		return "unknown"
	}
}
