package dto

import "time"

// AccountsBucket splits an amount owed between receivables and payables
type AccountsBucket struct {
	Receivable float64 `json:"receivable"`
	Payable    float64 `json:"payable"`
	Total      float64 `json:"total"`
}

type DashboardMetadata struct {
	Period      Period    `json:"period"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// DashboardSummaryResponse feeds the summary cards at the top of the dashboard
type DashboardSummaryResponse struct {
	TotalRevenue     float64           `json:"totalRevenue"`
	TotalExpense     float64           `json:"totalExpense"`
	LiquidProfit     float64           `json:"liquidProfit"`
	OverdueAccounts  AccountsBucket    `json:"overdueAccounts"`
	UpcomingAccounts AccountsBucket    `json:"upcomingAccounts"`
	Metadata         DashboardMetadata `json:"metadata"`
}

// OptionsResponse is one page of filter dropdown values
type OptionsResponse struct {
	Dimension  string        `json:"dimension"`
	Items      []OptionEntry `json:"items"`
	HasMore    bool          `json:"hasMore"`
	NextCursor string        `json:"nextCursor,omitempty"`
}

type OptionEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
