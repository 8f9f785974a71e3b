package validation

import (
	"fmt"
	"strings"

	"fjacquet/sales-analytics/internal/currencyutils"
	"fjacquet/sales-analytics/internal/fileutils"
	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"
)

// Cleaner runs the frame-level cleaning pass and records its outcome in a
// validation summary file.
type Cleaner struct {
	summaryPath string
	logger      logging.Logger
}

// NewCleaner creates a Cleaner writing its summary to summaryPath. An empty
// path disables the summary file.
func NewCleaner(summaryPath string, logger logging.Logger) *Cleaner {
	return &Cleaner{
		summaryPath: summaryPath,
		logger:      logging.OrDefault(logger),
	}
}

// CleanSalesData drops rows with a missing ProductID, CustomerID or Region, a
// TransactionID not starting with "T", or a non-positive UnitPrice or
// Quantity. Surviving product names are lowercased with commas removed, and
// revenue is materialized on each row.
func (c *Cleaner) CleanSalesData(txs []models.Transaction) ([]models.CleanedTransaction, models.CleaningSummary, error) {
	cleaned := make([]models.CleanedTransaction, 0, len(txs))
	for _, tx := range txs {
		if reason := rejectReason(tx); reason != "" {
			c.logger.Debug("Removed record during cleaning",
				logging.F(logging.FieldTransactionID, tx.TransactionID),
				logging.F(logging.FieldReason, reason))
			continue
		}

		tx.ProductName = normalizeProductName(tx.ProductName)
		cleaned = append(cleaned, models.CleanedTransaction{
			Transaction: tx,
			Revenue:     tx.Revenue(),
		})
	}

	summary := models.CleaningSummary{
		TotalParsed: len(txs),
		Removed:     len(txs) - len(cleaned),
		Remaining:   len(cleaned),
	}
	c.logger.Info("Cleaned sales data",
		logging.F("total_parsed", summary.TotalParsed),
		logging.F("removed", summary.Removed),
		logging.F("remaining", summary.Remaining))

	if c.summaryPath != "" {
		if err := WriteValidationSummary(c.summaryPath, summary); err != nil {
			return cleaned, summary, err
		}
		c.logger.Debug("Wrote validation summary", logging.F(logging.FieldOutputFile, c.summaryPath))
	}
	return cleaned, summary, nil
}

func rejectReason(tx models.Transaction) string {
	switch {
	case strings.TrimSpace(tx.ProductID) == "":
		return "missing ProductID"
	case strings.TrimSpace(tx.CustomerID) == "":
		return "missing CustomerID"
	case strings.TrimSpace(tx.Region) == "":
		return "missing Region"
	case !strings.HasPrefix(tx.TransactionID, "T"):
		return "TransactionID must start with T"
	case !currencyutils.IsPositive(tx.UnitPrice):
		return "UnitPrice must be positive"
	case tx.Quantity <= 0:
		return "Quantity must be positive"
	}
	return ""
}

func normalizeProductName(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(name, ",", "")))
}

// FormatValidationSummary renders the three-line validation summary.
func FormatValidationSummary(summary models.CleaningSummary) string {
	return fmt.Sprintf("Total records parsed: %d\nInvalid records removed: %d\nValid records after cleaning: %d\n",
		summary.TotalParsed, summary.Removed, summary.Remaining)
}

// WriteValidationSummary overwrites path with the validation summary.
func WriteValidationSummary(path string, summary models.CleaningSummary) error {
	if err := fileutils.WriteFile(path, []byte(FormatValidationSummary(summary)), 0600); err != nil {
		return fmt.Errorf("failed to write validation summary %s: %w", path, err)
	}
	return nil
}
