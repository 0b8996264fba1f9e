package models

import (
	"github.com/google/uuid"
)

// ChartFilters contains the optional dimension filters shared by charts and the dashboard summary
type ChartFilters struct {
	CategoryID *uuid.UUID
	ProductID  *uuid.UUID
	CustomerID *uuid.UUID
	Region     string
}

// IsEmpty reports whether no filter is set
func (f ChartFilters) IsEmpty() bool {
	return f.CategoryID == nil && f.ProductID == nil && f.CustomerID == nil && f.Region == ""
}

// Fields returns the defined filters as query-parameter pairs
func (f ChartFilters) Fields() map[string]string {
	fields := make(map[string]string, 4)
	if f.CategoryID != nil {
		fields["categoryId"] = f.CategoryID.String()
	}
	if f.ProductID != nil {
		fields["productId"] = f.ProductID.String()
	}
	if f.CustomerID != nil {
		fields["customerId"] = f.CustomerID.String()
	}
	if f.Region != "" {
		fields["region"] = f.Region
	}
	return fields
}
