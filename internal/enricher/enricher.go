// Package enricher annotates transactions with product catalog attributes
// and writes the enriched snapshot.
package enricher

import (
	"strconv"
	"strings"

	"fjacquet/sales-analytics/internal/common"
	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"
)

// Delimiter separates fields in the enriched snapshot.
const Delimiter = '|'

// ExtractProductID returns the numeric catalog id encoded in a product id
// such as "P101". Ids without the P prefix, with a non-integer remainder or
// with a remainder of zero or less have no catalog id.
func ExtractProductID(productID string) (int, bool) {
	rest, found := strings.CutPrefix(productID, "P")
	if !found {
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Enrich annotates every transaction with its catalog entry. The output has
// one element per input transaction, in input order.
func Enrich(txs []models.Transaction, mapping models.ProductMapping) []models.EnrichedTransaction {
	enriched := make([]models.EnrichedTransaction, 0, len(txs))
	for _, tx := range txs {
		id, ok := ExtractProductID(tx.ProductID)
		if !ok {
			enriched = append(enriched, models.NewUnmatched(tx))
			continue
		}
		info, found := mapping[id]
		if !found {
			enriched = append(enriched, models.NewUnmatched(tx))
			continue
		}
		enriched = append(enriched, models.NewMatched(tx, info))
	}
	return enriched
}

// EnrichedRow is one line of the enriched snapshot.
type EnrichedRow struct {
	TransactionID string `csv:"TransactionID"`
	Date          string `csv:"Date"`
	ProductID     string `csv:"ProductID"`
	ProductName   string `csv:"ProductName"`
	Quantity      int    `csv:"Quantity"`
	UnitPrice     string `csv:"UnitPrice"`
	CustomerID    string `csv:"CustomerID"`
	Region        string `csv:"Region"`
	APICategory   string `csv:"API_Category"`
	APIBrand      string `csv:"API_Brand"`
	APIRating     string `csv:"API_Rating"`
	APIMatch      bool   `csv:"API_Match"`
}

// NewEnrichedRow flattens an enriched transaction. Missing catalog
// attributes become empty strings.
func NewEnrichedRow(e models.EnrichedTransaction) EnrichedRow {
	row := EnrichedRow{
		TransactionID: e.TransactionID,
		Date:          e.Date,
		ProductID:     e.ProductID,
		ProductName:   e.ProductName,
		Quantity:      e.Quantity,
		UnitPrice:     e.UnitPrice.String(),
		CustomerID:    e.CustomerID,
		Region:        e.Region,
		APIMatch:      e.APIMatch(),
	}
	if category, ok := e.APICategory(); ok {
		row.APICategory = category
	}
	if brand, ok := e.APIBrand(); ok {
		row.APIBrand = brand
	}
	if rating, ok := e.APIRating(); ok {
		row.APIRating = strconv.FormatFloat(rating, 'f', -1, 64)
	}
	return row
}

// SaveEnrichedData writes the enriched snapshot to path, replacing any
// previous content.
func SaveEnrichedData(path string, enriched []models.EnrichedTransaction, logger logging.Logger) error {
	rows := make([]EnrichedRow, 0, len(enriched))
	for _, e := range enriched {
		rows = append(rows, NewEnrichedRow(e))
	}
	return common.WriteDelimitedFile(path, rows, Delimiter, logger)
}

// Enricher joins transactions against a product mapping and persists the
// result.
type Enricher struct {
	outputPath string
	logger     logging.Logger
}

// NewEnricher creates an enricher writing its snapshot to outputPath.
func NewEnricher(outputPath string, logger logging.Logger) *Enricher {
	return &Enricher{
		outputPath: outputPath,
		logger:     logging.OrDefault(logger),
	}
}

// OutputPath returns the snapshot location.
func (e *Enricher) OutputPath() string { return e.outputPath }

// EnrichAndSave enriches txs and writes the snapshot. A write failure is
// returned together with the enriched records.
func (e *Enricher) EnrichAndSave(txs []models.Transaction, mapping models.ProductMapping) ([]models.EnrichedTransaction, error) {
	enriched := Enrich(txs, mapping)

	matched := 0
	for _, tx := range enriched {
		if tx.APIMatch() {
			matched++
		}
	}

	if err := SaveEnrichedData(e.outputPath, enriched, e.logger); err != nil {
		return enriched, err
	}

	e.logger.Info("Saved enriched data",
		logging.F(logging.FieldOutputFile, e.outputPath),
		logging.F(logging.FieldCount, len(enriched)),
		logging.F("matched", matched))
	return enriched, nil
}
