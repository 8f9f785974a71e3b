package validation

import (
	"sort"
	"strings"

	"fjacquet/sales-analytics/internal/currencyutils"
	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"

	"github.com/shopspring/decimal"
)

// FilterOptionsInfo describes the values an operator can filter on.
type FilterOptionsInfo struct {
	Regions      []string
	MinUnitPrice decimal.Decimal
	MaxUnitPrice decimal.Decimal
}

// AvailableFilterOptions lists the distinct regions (sorted) and the
// UnitPrice range present in txs.
func AvailableFilterOptions(txs []models.Transaction) FilterOptionsInfo {
	info := FilterOptionsInfo{Regions: []string{}}
	if len(txs) == 0 {
		return info
	}

	seen := make(map[string]struct{})
	info.MinUnitPrice, info.MaxUnitPrice = txs[0].UnitPrice, txs[0].UnitPrice
	for _, tx := range txs {
		if _, ok := seen[tx.Region]; !ok {
			seen[tx.Region] = struct{}{}
			info.Regions = append(info.Regions, tx.Region)
		}
		if tx.UnitPrice.LessThan(info.MinUnitPrice) {
			info.MinUnitPrice = tx.UnitPrice
		}
		if tx.UnitPrice.GreaterThan(info.MaxUnitPrice) {
			info.MaxUnitPrice = tx.UnitPrice
		}
	}
	sort.Strings(info.Regions)
	return info
}

// ApplyRunFilters applies the operator filters of a pipeline run: a
// case-insensitive region match, then UnitPrice >= min and UnitPrice <= max.
// A bound that does not parse as a number is logged and ignored.
func ApplyRunFilters(txs []models.Transaction, filters models.RunFilters, logger logging.Logger) []models.Transaction {
	logger = logging.OrDefault(logger)
	filtered := txs

	if filters.Region != "" {
		out := make([]models.Transaction, 0, len(filtered))
		for _, tx := range filtered {
			if strings.EqualFold(tx.Region, filters.Region) {
				out = append(out, tx)
			}
		}
		filtered = out
	}

	if bound, ok := parseBound(filters.MinAmount, "min_amount", logger); ok {
		out := make([]models.Transaction, 0, len(filtered))
		for _, tx := range filtered {
			if tx.UnitPrice.GreaterThanOrEqual(bound) {
				out = append(out, tx)
			}
		}
		filtered = out
	}

	if bound, ok := parseBound(filters.MaxAmount, "max_amount", logger); ok {
		out := make([]models.Transaction, 0, len(filtered))
		for _, tx := range filtered {
			if tx.UnitPrice.LessThanOrEqual(bound) {
				out = append(out, tx)
			}
		}
		filtered = out
	}

	logger.Info("Applied run filters",
		logging.F(logging.FieldRegion, filters.Region),
		logging.F("min_amount", filters.MinAmount),
		logging.F("max_amount", filters.MaxAmount),
		logging.F(logging.FieldCount, len(filtered)))
	return filtered
}

func parseBound(raw, name string, logger logging.Logger) (decimal.Decimal, bool) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, false
	}
	bound, err := currencyutils.ParseAmount(raw)
	if err != nil {
		logger.WithError(err).Warn("Ignoring unparsable amount filter", logging.F("filter", name))
		return decimal.Zero, false
	}
	return bound, true
}
