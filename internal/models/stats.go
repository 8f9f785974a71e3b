package models

import "github.com/shopspring/decimal"

// RegionStats aggregates sales for one region.
type RegionStats struct {
	Region       string
	Sales        decimal.Decimal
	Transactions int
}

// ProductStats aggregates sales for one product name.
type ProductStats struct {
	ProductName string
	Quantity    int
	Revenue     decimal.Decimal
}

// CustomerStats aggregates spend for one customer.
type CustomerStats struct {
	CustomerID string
	TotalSpent decimal.Decimal
	Orders     int
}

// DailyStats aggregates sales for one date.
type DailyStats struct {
	Date            string
	Revenue         decimal.Decimal
	Transactions    int
	UniqueCustomers int
}

// PeakDay is the date with the highest revenue.
type PeakDay struct {
	Date         string
	Revenue      decimal.Decimal
	Transactions int
}

// RegionAverage is the mean transaction value within a region.
type RegionAverage struct {
	Region       string
	AverageValue decimal.Decimal
}

// CustomerProfile describes one customer's purchasing behaviour.
type CustomerProfile struct {
	CustomerID        string
	TotalSpent        decimal.Decimal
	PurchaseCount     int
	AverageOrderValue decimal.Decimal
	ProductsBought    []string
}

// NamedRevenue is a revenue total keyed by a product name, customer id or region.
type NamedRevenue struct {
	Name    string
	Revenue decimal.Decimal
}

// SalesSummary holds the revenue rankings used by the lightweight report.
type SalesSummary struct {
	Products  []NamedRevenue
	Customers []NamedRevenue
	Regions   []NamedRevenue
}

// Analysis bundles every aggregate computed for one valid transaction set.
type Analysis struct {
	TotalRevenue      decimal.Decimal
	TransactionCount  int
	AverageOrderValue decimal.Decimal
	FirstDate         string
	LastDate          string
	Regions           []RegionStats
	TopProducts       []ProductStats
	TopCustomers      []CustomerStats
	Daily             []DailyStats
	Peak              *PeakDay
	LowPerformers     []ProductStats
	RegionAverages    []RegionAverage
}
