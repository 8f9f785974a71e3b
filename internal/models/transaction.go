// Package models defines the records that flow through the sales pipeline
// and the aggregate views computed from them.
package models

import (
	"github.com/shopspring/decimal"
)

// Transaction is one parsed sales record.
//
// The validate tags express the strict rule set applied by
// validation.Validator; the parser itself accepts any well-formed line.
type Transaction struct {
	TransactionID string          `json:"transaction_id" validate:"required,startswith=T"`
	Date          string          `json:"date" validate:"required"`
	ProductID     string          `json:"product_id" validate:"required,startswith=P"`
	ProductName   string          `json:"product_name" validate:"required"`
	Quantity      int             `json:"quantity" validate:"gt=0"`
	UnitPrice     decimal.Decimal `json:"unit_price" validate:"gt=0"`
	CustomerID    string          `json:"customer_id" validate:"required,startswith=C"`
	Region        string          `json:"region" validate:"required"`
}

// Revenue returns Quantity × UnitPrice.
func (t Transaction) Revenue() decimal.Decimal {
	return t.UnitPrice.Mul(decimal.NewFromInt(int64(t.Quantity)))
}

// CleanedTransaction is a transaction that passed the frame-level cleaning
// pass, with its revenue materialized.
type CleanedTransaction struct {
	Transaction
	Revenue decimal.Decimal `json:"revenue"`
}

// CleaningSummary counts what the cleaning pass kept and dropped.
type CleaningSummary struct {
	TotalParsed int
	Removed     int
	Remaining   int
}
