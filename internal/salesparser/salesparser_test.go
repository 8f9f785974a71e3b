package salesparser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region"

func TestParseLine_Valid(t *testing.T) {
	tx, err := ParseLine("T001|2024-12-01|P101|Laptop|2|45,000|C001|North")
	require.NoError(t, err)

	assert.Equal(t, "T001", tx.TransactionID)
	assert.Equal(t, "2024-12-01", tx.Date)
	assert.Equal(t, "P101", tx.ProductID)
	assert.Equal(t, "Laptop", tx.ProductName)
	assert.Equal(t, 2, tx.Quantity)
	assert.True(t, decimal.NewFromInt(45000).Equal(tx.UnitPrice))
	assert.Equal(t, "C001", tx.CustomerID)
	assert.Equal(t, "North", tx.Region)
}

func TestParseLine_CleansProductName(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{name: "embedded comma", line: "T002|2024-12-01|P102|Mouse,Wireless|1|500|C002|South", expected: "MouseWireless"},
		{name: "padding", line: "T003|2024-12-01|P103|  USB Cable |1|150|C003|East", expected: "USB Cable"},
		{name: "comma and padding", line: "T004|2024-12-01|P104| Desk, Lamp |1|900|C004|West", expected: "Desk Lamp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := ParseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tx.ProductName)
		})
	}
}

func TestParseLine_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		field string
	}{
		{name: "empty line", line: "", field: "fields"},
		{name: "seven fields", line: "T001|2024-12-01|P101|Laptop|2|45000|C001", field: "fields"},
		{name: "nine fields", line: "T001|2024-12-01|P101|Laptop|2|45000|C001|North|extra", field: "fields"},
		{name: "non numeric quantity", line: "T001|2024-12-01|P101|Laptop|two|45000|C001|North", field: "Quantity"},
		{name: "fractional quantity", line: "T001|2024-12-01|P101|Laptop|1.5|45000|C001|North", field: "Quantity"},
		{name: "non numeric price", line: "T001|2024-12-01|P101|Laptop|2|abc|C001|North", field: "UnitPrice"},
		{name: "empty price", line: "T001|2024-12-01|P101|Laptop|2||C001|North", field: "UnitPrice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.line)
			require.Error(t, err)

			var parseErr *parsererror.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.field, parseErr.Field)
			assert.Equal(t, "sales", parseErr.Parser)
		})
	}
}

func TestParseLine_FieldCountSentinel(t *testing.T) {
	_, err := ParseLine("a|b|c")
	assert.ErrorIs(t, err, ErrFieldCount)
}

func TestParseLine_KeepsNonPositiveValues(t *testing.T) {
	tx, err := ParseLine("X002|2024-12-02|P102|Mouse|0|-5|C002|South")
	require.NoError(t, err, "range checks belong to validation")
	assert.Equal(t, 0, tx.Quantity)
	assert.True(t, decimal.NewFromInt(-5).Equal(tx.UnitPrice))
}

func TestParseTransactions(t *testing.T) {
	lines := []string{
		"T001|2024-12-01|P101|Laptop|2|45,000|C001|North",
		"",
		"T001|2024-12-01|P101|Laptop|2|45000|C001",
		"T001|2024-12-01|P101|Laptop|two|45000|C001|North",
		"T001|2024-12-01|P101|Laptop|2|abc|C001|North",
		"T005|2024-12-03|P105|Monitor|1|12,500|C005|West",
	}
	mockLog := logging.NewMockLogger()

	txs := ParseTransactions(lines, mockLog)

	require.Len(t, txs, 2)
	assert.Equal(t, "T001", txs[0].TransactionID)
	assert.Equal(t, "T005", txs[1].TransactionID)
	assert.Len(t, mockLog.GetEntriesByLevel("DEBUG"), 4)
	assert.True(t, mockLog.HasEntry("INFO", "Parsed sales records"))
}

func TestParseTransactions_AllInvalid(t *testing.T) {
	lines := []string{"", "T001|2024-12-01|P101|Laptop|2|45000|C001", "T001|x|P101|Laptop|two|45000|C001|North"}
	txs := ParseTransactions(lines, logging.NewMockLogger())
	assert.NotNil(t, txs)
	assert.Empty(t, txs)
}

func TestSplitRecords(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "header dropped and blanks removed",
			content:  header + "\nT001|a\n\n   \nT002|b\n",
			expected: []string{"T001|a", "T002|b"},
		},
		{
			name:     "windows line endings",
			content:  header + "\r\nT001|a\r\nT002|b\r\n",
			expected: []string{"T001|a", "T002|b"},
		},
		{
			name:     "lines are trimmed",
			content:  header + "\n  T001|a  \n\tT002|b",
			expected: []string{"T001|a", "T002|b"},
		},
		{name: "header only", content: header + "\n", expected: []string{}},
		{name: "empty content", content: "", expected: []string{}},
		{
			name:     "blank first line is still the header",
			content:  "\nT001|a",
			expected: []string{"T001|a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitRecords(tt.content))
		})
	}
}

func TestReadSalesData(t *testing.T) {
	t.Run("utf-8 file", func(t *testing.T) {
		path := writeFile(t, []byte(header+"\nT001|2024-12-01|P101|Laptop|2|45,000|C001|North\n\n"))

		lines, err := ReadSalesData(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"T001|2024-12-01|P101|Laptop|2|45,000|C001|North"}, lines)
	})

	t.Run("utf-8 with byte order mark", func(t *testing.T) {
		path := writeFile(t, append([]byte{0xEF, 0xBB, 0xBF}, []byte(header+"\nT001|x\n")...))

		lines, err := ReadSalesData(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"T001|x"}, lines)
	})

	t.Run("latin-1 fallback", func(t *testing.T) {
		content := []byte(header + "\nT001|2024-12-01|P101|Caf")
		content = append(content, 0xE9)
		content = append(content, []byte(" Mug|1|250|C001|North\n")...)
		path := writeFile(t, content)

		lines, err := ReadSalesData(path)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], "Café Mug")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadSalesData(filepath.Join(t.TempDir(), "absent.txt"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestAdapter_Parse(t *testing.T) {
	input := header + "\nT001|2024-12-01|P101|Laptop|2|45,000|C001|North\nbroken line\n"
	adapter := NewAdapter(logging.NewMockLogger())

	txs, err := adapter.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Laptop", txs[0].ProductName)
}

func TestAdapter_ParseFile(t *testing.T) {
	path := writeFile(t, []byte(header+"\nT001|2024-12-01|P101|Laptop|2|45,000|C001|North\nT002|2024-12-01|P102|Mouse|1|500|C002|South\n"))
	mockLog := logging.NewMockLogger()
	adapter := NewAdapter(mockLog)

	txs, err := adapter.ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, txs, 2)

	entries := mockLog.GetEntriesByLevel("INFO")
	require.NotEmpty(t, entries)
	encoding, ok := entries[0].FieldValue(logging.FieldEncoding)
	require.True(t, ok)
	assert.Equal(t, "utf-8", encoding)
}

func TestAdapter_ParseFile_Missing(t *testing.T) {
	_, err := NewAdapter(logging.NewMockLogger()).ParseFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func writeFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales_data.txt")
	require.NoError(t, os.WriteFile(path, content, 0600))
	return path
}
