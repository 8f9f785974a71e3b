// Package salesparser reads pipe-delimited sales files and turns their lines
// into transactions.
//
// A file starts with one header line followed by records of exactly eight
// fields:
//
//	TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region
//
// Lines that do not parse are skipped; they never abort a run.
package salesparser

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"fjacquet/sales-analytics/internal/currencyutils"
	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"
	"fjacquet/sales-analytics/internal/parsererror"

	"golang.org/x/net/html/charset"
)

const (
	parserName = "sales"
	fieldCount = 8
	delimiter  = "|"
)

// ErrFieldCount is wrapped by the ParseError returned for lines that do not
// have exactly eight fields.
var ErrFieldCount = errors.New("expected 8 pipe-separated fields")

// fallbackEncodings are tried in order when the input is not valid UTF-8.
var fallbackEncodings = []string{"iso-8859-1", "windows-1252"}

// ReadSalesData loads path and returns its record lines: the header line is
// dropped, every other line is trimmed and blank lines are removed.
func ReadSalesData(path string) ([]string, error) {
	lines, _, err := readSalesFile(path)
	return lines, err
}

func readSalesFile(path string) ([]string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read sales data %s: %w", path, err)
	}
	return decodeLines(data, path)
}

// decodeLines decodes raw file content and splits it into record lines.
// It also reports the encoding that was used.
func decodeLines(data []byte, source string) ([]string, string, error) {
	content, encoding, err := decodeContent(data, source)
	if err != nil {
		return nil, "", err
	}
	return SplitRecords(content), encoding, nil
}

func decodeContent(data []byte, source string) (string, string, error) {
	if utf8.Valid(data) {
		return strings.TrimPrefix(string(data), "\ufeff"), "utf-8", nil
	}

	for _, label := range fallbackEncodings {
		enc, name := charset.Lookup(label)
		if enc == nil {
			continue
		}
		decoded, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		return string(decoded), name, nil
	}

	return "", "", &parsererror.InvalidFormatError{
		FilePath:       source,
		ExpectedFormat: "utf-8, iso-8859-1 or windows-1252 text",
		Msg:            "content could not be decoded",
	}
}

// SplitRecords splits decoded content into lines, drops the first (header)
// line, trims the rest and removes blank ones.
func SplitRecords(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	raw := strings.Split(content, "\n")
	if len(raw) <= 1 {
		return []string{}
	}

	lines := make([]string, 0, len(raw)-1)
	for _, line := range raw[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// ParseLine converts one record line into a Transaction.
//
// ProductName has its commas removed and is trimmed. Quantity must be an
// integer. UnitPrice may use commas as thousands separators. Other fields are
// kept verbatim. Failures are returned as *parsererror.ParseError.
func ParseLine(line string) (models.Transaction, error) {
	parts := strings.Split(line, delimiter)
	if len(parts) != fieldCount {
		return models.Transaction{}, &parsererror.ParseError{
			Parser: parserName,
			Field:  "fields",
			Value:  line,
			Err:    ErrFieldCount,
		}
	}

	quantityStr := strings.TrimSpace(parts[4])
	quantity, err := strconv.Atoi(quantityStr)
	if err != nil {
		return models.Transaction{}, &parsererror.ParseError{
			Parser: parserName,
			Field:  "Quantity",
			Value:  parts[4],
			Err:    err,
		}
	}

	unitPrice, err := currencyutils.ParseAmount(parts[5])
	if err != nil {
		return models.Transaction{}, &parsererror.ParseError{
			Parser: parserName,
			Field:  "UnitPrice",
			Value:  parts[5],
			Err:    err,
		}
	}

	return models.Transaction{
		TransactionID: parts[0],
		Date:          parts[1],
		ProductID:     parts[2],
		ProductName:   strings.TrimSpace(strings.ReplaceAll(parts[3], ",", "")),
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    parts[6],
		Region:        parts[7],
	}, nil
}

// ParseTransactions parses every line, skipping the ones ParseLine rejects.
// Output order follows input order.
func ParseTransactions(lines []string, logger logging.Logger) []models.Transaction {
	logger = logging.OrDefault(logger)

	transactions := make([]models.Transaction, 0, len(lines))
	skipped := 0
	for i, line := range lines {
		tx, err := ParseLine(line)
		if err != nil {
			skipped++
			logger.WithError(err).Debug("Skipping malformed sales record",
				logging.F(logging.FieldLine, i+1))
			continue
		}
		transactions = append(transactions, tx)
	}

	logger.Info("Parsed sales records",
		logging.F(logging.FieldCount, len(transactions)),
		logging.F("skipped", skipped))
	return transactions
}
