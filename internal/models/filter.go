package models

import "github.com/shopspring/decimal"

// FilterOptions configures strict validation filtering. Empty Region and nil
// bounds disable the corresponding filter.
type FilterOptions struct {
	Region    string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// FilterSummary reports how many records each filtering step removed.
type FilterSummary struct {
	TotalInput       int `json:"total_input"`
	Invalid          int `json:"invalid"`
	FilteredByRegion int `json:"filtered_by_region"`
	FilteredByAmount int `json:"filtered_by_amount"`
	FinalCount       int `json:"final_count"`
}

// RunFilters are the operator-supplied filters of a pipeline run, kept as
// raw text so they can be echoed into the audit log unchanged.
type RunFilters struct {
	Region    string
	MinAmount string
	MaxAmount string
}

// IsEmpty reports whether no filter was supplied.
func (f RunFilters) IsEmpty() bool {
	return f.Region == "" && f.MinAmount == "" && f.MaxAmount == ""
}
