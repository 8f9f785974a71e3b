package salesparser

import (
	"fmt"
	"io"

	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"
	"fjacquet/sales-analytics/internal/parser"
)

// Adapter implements parser.FileParser for pipe-delimited sales files.
type Adapter struct {
	parser.BaseParser
}

// NewAdapter creates a sales file parser.
func NewAdapter(logger logging.Logger) *Adapter {
	return &Adapter{BaseParser: parser.NewBaseParser(logger)}
}

// Parse implements parser.Parser.
func (a *Adapter) Parse(r io.Reader) ([]models.Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read sales data: %w", err)
	}

	lines, encoding, err := decodeLines(data, "<stream>")
	if err != nil {
		return nil, err
	}
	a.GetLogger().Debug("Decoded sales data", logging.F(logging.FieldEncoding, encoding))

	return ParseTransactions(lines, a.GetLogger()), nil
}

// ParseFile implements parser.FileParser.
func (a *Adapter) ParseFile(path string) ([]models.Transaction, error) {
	logger := a.GetLogger().WithField(logging.FieldFile, path)

	lines, encoding, err := readSalesFile(path)
	if err != nil {
		return nil, err
	}
	logger.Info("Read sales data",
		logging.F(logging.FieldEncoding, encoding),
		logging.F(logging.FieldCount, len(lines)))

	return ParseTransactions(lines, logger), nil
}

var _ parser.FileParser = (*Adapter)(nil)
