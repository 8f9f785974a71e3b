package validation

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleaner_CleanSalesData(t *testing.T) {
	summaryPath := filepath.Join(t.TempDir(), "output", "validation_summary.txt")
	cleaner := NewCleaner(summaryPath, logging.NewMockLogger())

	input := []models.Transaction{
		tx("T001", "P101", "Laptop", 2, "45000", "C001", "North"),
		tx("X002", "P102", "Mouse", 1, "500", "C002", "South"),
		tx("T003", "P103", "Cable", 0, "150", "C003", "East"),
	}

	cleaned, summary, err := cleaner.CleanSalesData(input)
	require.NoError(t, err)

	require.Len(t, cleaned, 1)
	assert.Equal(t, "laptop", cleaned[0].ProductName)
	assert.True(t, decimal.NewFromInt(90000).Equal(cleaned[0].Revenue))
	assert.Equal(t, models.CleaningSummary{TotalParsed: 3, Removed: 2, Remaining: 1}, summary)

	data, err := os.ReadFile(summaryPath)
	require.NoError(t, err)
	assert.Equal(t, "Total records parsed: 3\nInvalid records removed: 2\nValid records after cleaning: 1\n", string(data))
}

func TestCleaner_RejectRules(t *testing.T) {
	tests := []struct {
		name   string
		record models.Transaction
		reason string
	}{
		{name: "missing product", record: tx("T001", "", "Laptop", 1, "10", "C001", "North"), reason: "missing ProductID"},
		{name: "blank customer", record: tx("T001", "P101", "Laptop", 1, "10", "  ", "North"), reason: "missing CustomerID"},
		{name: "missing region", record: tx("T001", "P101", "Laptop", 1, "10", "C001", ""), reason: "missing Region"},
		{name: "bad transaction prefix", record: tx("X001", "P101", "Laptop", 1, "10", "C001", "North"), reason: "TransactionID must start with T"},
		{name: "zero price", record: tx("T001", "P101", "Laptop", 1, "0", "C001", "North"), reason: "UnitPrice must be positive"},
		{name: "negative quantity", record: tx("T001", "P101", "Laptop", -1, "10", "C001", "North"), reason: "Quantity must be positive"},
		{name: "accepted", record: tx("T001", "Q101", "Laptop", 1, "10", "D001", "North"), reason: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.reason, rejectReason(tt.record))
		})
	}
}

func TestCleaner_NormalizesNames(t *testing.T) {
	cleaner := NewCleaner("", logging.NewMockLogger())

	cleaned, _, err := cleaner.CleanSalesData([]models.Transaction{
		tx("T001", "P101", " Wireless, Mouse ", 1, "500", "C001", "North"),
	})
	require.NoError(t, err)
	require.Len(t, cleaned, 1)
	assert.Equal(t, "wireless mouse", cleaned[0].ProductName)
}

func TestCleaner_EmptyInput(t *testing.T) {
	summaryPath := filepath.Join(t.TempDir(), "validation_summary.txt")
	cleaned, summary, err := NewCleaner(summaryPath, logging.NewMockLogger()).CleanSalesData(nil)

	require.NoError(t, err)
	assert.Empty(t, cleaned)
	assert.Equal(t, models.CleaningSummary{}, summary)

	data, err := os.ReadFile(summaryPath)
	require.NoError(t, err)
	assert.Equal(t, "Total records parsed: 0\nInvalid records removed: 0\nValid records after cleaning: 0\n", string(data))
}

func TestCleaner_SummaryWriteFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0600))

	cleaner := NewCleaner(filepath.Join(blocker, "summary.txt"), logging.NewMockLogger())
	_, _, err := cleaner.CleanSalesData([]models.Transaction{tx("T001", "P101", "Laptop", 1, "10", "C001", "North")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write validation summary")
}
