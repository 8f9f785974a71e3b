// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/sales-analytics/internal/catalog"
	"fjacquet/sales-analytics/internal/currencyutils"
	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"
	"fjacquet/sales-analytics/internal/parser"
	"fjacquet/sales-analytics/internal/pipeline"
	"fjacquet/sales-analytics/internal/store"
	"fjacquet/sales-analytics/internal/validation"

	"github.com/shopspring/decimal"
)

// ErrEmptyCatalog is returned when a catalog refresh yields no products.
var ErrEmptyCatalog = errors.New("catalog returned no products")

// RunAnalysis runs the pipeline and prints a short summary to w.
func RunAnalysis(ctx context.Context, p *pipeline.Pipeline, opts pipeline.Options, w io.Writer) error {
	result, err := p.Run(ctx, opts)
	if err != nil {
		return err
	}

	if result.NoData {
		_, _ = fmt.Fprintln(w, "No transactions match the filter criteria.")
		return nil
	}

	_, _ = fmt.Fprintf(w, "Run %s complete\n", result.RunID)
	_, _ = fmt.Fprintf(w, "Parsed: %d | Valid: %d | Invalid: %d\n", result.Parsed, result.Valid, result.Invalid)
	_, _ = fmt.Fprintf(w, "Enriched: %d/%d\n", result.Matched, result.Enriched)
	if result.Analysis != nil {
		_, _ = fmt.Fprintf(w, "Total Revenue: %s\n",
			currencyutils.FormatAmount(result.Analysis.TotalRevenue, currencyutils.DefaultSymbol, 2))
	}
	return nil
}

// ParseFilterOptions converts command line filter values into the strict
// validation options. Unlike the analysis run, a malformed amount is an error.
func ParseFilterOptions(region, minAmount, maxAmount string) (models.FilterOptions, error) {
	opts := models.FilterOptions{Region: strings.TrimSpace(region)}

	parse := func(raw, name string) (*decimal.Decimal, error) {
		if strings.TrimSpace(raw) == "" {
			return nil, nil
		}
		amount, err := currencyutils.ParseAmount(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", name, err)
		}
		return &amount, nil
	}

	var err error
	if opts.MinAmount, err = parse(minAmount, "min-amount"); err != nil {
		return opts, err
	}
	if opts.MaxAmount, err = parse(maxAmount, "max-amount"); err != nil {
		return opts, err
	}
	if opts.MinAmount != nil && opts.MaxAmount != nil && opts.MinAmount.GreaterThan(*opts.MaxAmount) {
		return opts, fmt.Errorf("min-amount %s is greater than max-amount %s", opts.MinAmount, opts.MaxAmount)
	}
	return opts, nil
}

// ValidateFile parses inputFile, applies the strict rules and filters, and
// prints the filter summary to w.
func ValidateFile(p parser.FileParser, v *validation.Validator, inputFile string, opts models.FilterOptions, w io.Writer) (models.FilterSummary, error) {
	txs, err := p.ParseFile(inputFile)
	if err != nil {
		return models.FilterSummary{}, fmt.Errorf("error parsing file: %w", err)
	}

	_, _, summary := v.ValidateAndFilter(txs, opts)

	_, _ = fmt.Fprintf(w, "Total input: %d\n", summary.TotalInput)
	_, _ = fmt.Fprintf(w, "Invalid: %d\n", summary.Invalid)
	_, _ = fmt.Fprintf(w, "Filtered by region: %d\n", summary.FilteredByRegion)
	_, _ = fmt.Fprintf(w, "Filtered by amount: %d\n", summary.FilteredByAmount)
	_, _ = fmt.Fprintf(w, "Final count: %d\n", summary.FinalCount)
	return summary, nil
}

// CleanFile parses inputFile, runs the cleaning pass and prints the
// validation summary to w.
func CleanFile(p parser.FileParser, c *validation.Cleaner, inputFile string, w io.Writer) (models.CleaningSummary, error) {
	txs, err := p.ParseFile(inputFile)
	if err != nil {
		return models.CleaningSummary{}, fmt.Errorf("error parsing file: %w", err)
	}

	_, summary, err := c.CleanSalesData(txs)
	if err != nil {
		return summary, err
	}

	_, _ = fmt.Fprint(w, validation.FormatValidationSummary(summary))
	return summary, nil
}

// RefreshCatalog fetches the catalog and stores it in s. An empty fetch
// leaves the existing cache untouched.
func RefreshCatalog(ctx context.Context, src catalog.Catalog, s *store.CatalogStore, source string, log logging.Logger) (int, error) {
	products := src.FetchAllProducts(ctx)
	if len(products) == 0 {
		return 0, ErrEmptyCatalog
	}

	if err := s.SaveProducts(products, source); err != nil {
		return 0, err
	}

	logging.OrDefault(log).Info("Catalog cache refreshed",
		logging.F(logging.FieldFile, s.CatalogFile),
		logging.F(logging.FieldCount, len(products)))
	return len(products), nil
}
