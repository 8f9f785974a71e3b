package report

import (
	"fjacquet/sales-analytics/internal/currencyutils"
	"fjacquet/sales-analytics/internal/models"

	"github.com/shopspring/decimal"
)

// EnrichmentStats summarizes catalog matching for a set of enriched
// transactions.
type EnrichmentStats struct {
	Matched int
	Total   int
	// FailedProducts lists distinct unmatched product names in first
	// appearance order.
	FailedProducts []string
}

// SuccessRate returns the matched share as a percentage.
func (s EnrichmentStats) SuccessRate() decimal.Decimal {
	return currencyutils.Percentage(decimal.NewFromInt(int64(s.Matched)), decimal.NewFromInt(int64(s.Total)))
}

// SummarizeEnrichment counts matches and collects unmatched product names.
func SummarizeEnrichment(enriched []models.EnrichedTransaction) EnrichmentStats {
	stats := EnrichmentStats{Total: len(enriched), FailedProducts: []string{}}
	seen := make(map[string]bool)
	for _, e := range enriched {
		if e.APIMatch() {
			stats.Matched++
			continue
		}
		if !seen[e.ProductName] {
			seen[e.ProductName] = true
			stats.FailedProducts = append(stats.FailedProducts, e.ProductName)
		}
	}
	return stats
}
