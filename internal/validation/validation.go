// Package validation implements the three independent validation passes run
// over parsed transactions, plus the operator filters of a pipeline run.
//
//   - ValidateTransactions: structural check used before analysis
//   - Validator.ValidateAndFilter: strict field rules plus region/amount filters
//   - Cleaner.CleanSalesData: frame-level cleaning that also normalizes names
//
// The passes deliberately apply different rule sets and are never merged.
package validation

import (
	"fjacquet/sales-analytics/internal/currencyutils"
	"fjacquet/sales-analytics/internal/models"
)

// ValidateTransactions partitions txs into records with a positive Quantity
// and UnitPrice and everything else. Relative order is kept in both outputs.
func ValidateTransactions(txs []models.Transaction) (valid, invalid []models.Transaction) {
	valid = make([]models.Transaction, 0, len(txs))
	invalid = make([]models.Transaction, 0)
	for _, tx := range txs {
		if tx.Quantity > 0 && currencyutils.IsPositive(tx.UnitPrice) {
			valid = append(valid, tx)
		} else {
			invalid = append(invalid, tx)
		}
	}
	return valid, invalid
}
