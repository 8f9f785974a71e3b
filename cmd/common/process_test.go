package common

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/sales-analytics/internal/analytics"
	"fjacquet/sales-analytics/internal/auditlog"
	"fjacquet/sales-analytics/internal/catalog"
	"fjacquet/sales-analytics/internal/enricher"
	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"
	"fjacquet/sales-analytics/internal/pipeline"
	"fjacquet/sales-analytics/internal/report"
	"fjacquet/sales-analytics/internal/salesparser"
	"fjacquet/sales-analytics/internal/store"
	"fjacquet/sales-analytics/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const salesData = `TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region
T001|2024-12-01|P101|Laptop|2|45,000|C001|North
T002|2024-12-01|P102|Mouse|5|500|C002|South
X003|2024-12-02|P101|Laptop|1|45000|C002|North
T004|2024-12-02|P103|Cable|0|150|C003|South
`

func writeInput(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "sales_data.txt")
	require.NoError(t, os.WriteFile(path, []byte(salesData), 0600))
	return path
}

func TestParseFilterOptions(t *testing.T) {
	tests := []struct {
		name      string
		region    string
		min, max  string
		wantMin   string
		wantMax   string
		expectErr bool
	}{
		{name: "no filters"},
		{name: "region only", region: " North "},
		{name: "bounds with separators", min: "1,000", max: "50,000", wantMin: "1000", wantMax: "50000"},
		{name: "bad min", min: "abc", expectErr: true},
		{name: "bad max", max: "1.2.3", expectErr: true},
		{name: "inverted range", min: "500", max: "100", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseFilterOptions(tt.region, tt.min, tt.max)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.region != "" {
				assert.Equal(t, "North", opts.Region)
			}
			if tt.wantMin == "" {
				assert.Nil(t, opts.MinAmount)
			} else {
				require.NotNil(t, opts.MinAmount)
				assert.Equal(t, tt.wantMin, opts.MinAmount.String())
			}
			if tt.wantMax == "" {
				assert.Nil(t, opts.MaxAmount)
			} else {
				require.NotNil(t, opts.MaxAmount)
				assert.Equal(t, tt.wantMax, opts.MaxAmount.String())
			}
		})
	}
}

func TestValidateFile(t *testing.T) {
	logger := logging.NewMockLogger()
	var out bytes.Buffer

	summary, err := ValidateFile(salesparser.NewAdapter(logger), validation.NewValidator(logger),
		writeInput(t), models.FilterOptions{Region: "North"}, &out)

	require.NoError(t, err)
	assert.Equal(t, models.FilterSummary{TotalInput: 4, Invalid: 2, FilteredByRegion: 1, FinalCount: 1}, summary)
	assert.Contains(t, out.String(), "Final count: 1\n")
}

func TestValidateFile_MissingInput(t *testing.T) {
	logger := logging.NewMockLogger()
	_, err := ValidateFile(salesparser.NewAdapter(logger), validation.NewValidator(logger),
		filepath.Join(t.TempDir(), "missing.txt"), models.FilterOptions{}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestCleanFile(t *testing.T) {
	logger := logging.NewMockLogger()
	summaryPath := filepath.Join(t.TempDir(), "validation_summary.txt")
	var out bytes.Buffer

	summary, err := CleanFile(salesparser.NewAdapter(logger), validation.NewCleaner(summaryPath, logger), writeInput(t), &out)

	require.NoError(t, err)
	assert.Equal(t, models.CleaningSummary{TotalParsed: 4, Removed: 2, Remaining: 2}, summary)
	expected := "Total records parsed: 4\nInvalid records removed: 2\nValid records after cleaning: 2\n"
	assert.Equal(t, expected, out.String())

	data, err := os.ReadFile(summaryPath)
	require.NoError(t, err)
	assert.Equal(t, expected, string(data))
}

func TestRefreshCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	s := store.NewCatalogStore(path, logging.NewMockLogger())
	src := new(catalog.MockCatalog)
	src.On("FetchAllProducts", mock.Anything).Return([]models.Product{{ID: 1, Title: "Mascara"}, {ID: 2, Title: "Lipstick"}})

	count, err := RefreshCatalog(context.Background(), src, s, "test", logging.NewMockLogger())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	products, err := s.LoadProducts()
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestRefreshCatalog_EmptyKeepsCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	s := store.NewCatalogStore(path, logging.NewMockLogger())
	require.NoError(t, s.SaveProducts([]models.Product{{ID: 9, Title: "Old"}}, "seed"))

	src := new(catalog.MockCatalog)
	src.On("FetchAllProducts", mock.Anything).Return([]models.Product{})

	_, err := RefreshCatalog(context.Background(), src, s, "test", nil)

	assert.ErrorIs(t, err, ErrEmptyCatalog)
	products, err := s.LoadProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Old", products[0].Title)
}

func TestRunAnalysis(t *testing.T) {
	dir := t.TempDir()
	logger := logging.NewMockLogger()
	src := new(catalog.MockCatalog)
	src.On("FetchAllProducts", mock.Anything).Return([]models.Product{{ID: 101, Category: "laptops"}})

	p, err := pipeline.New(pipeline.Dependencies{
		Cleaner:    validation.NewCleaner(filepath.Join(dir, "validation_summary.txt"), logger),
		Aggregator: analytics.NewAggregator(5, 10, logger),
		Catalog:    src,
		Enricher:   enricher.NewEnricher(filepath.Join(dir, "enriched.txt"), logger),
		Reporter:   report.NewReportGenerator("", 5, 10, logger),
		RunLog:     auditlog.NewRunLogger(filepath.Join(dir, "run_log.csv"), logger),
		Logger:     logger,
	}, pipeline.Settings{
		ReportFile:        filepath.Join(dir, "sales_report.txt"),
		SummaryReportFile: filepath.Join(dir, "report.txt"),
	})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, RunAnalysis(context.Background(), p, pipeline.Options{InputFile: writeInput(t)}, &out))

	assert.Contains(t, out.String(), "Parsed: 4 | Valid: 3 | Invalid: 1\n")
	assert.Contains(t, out.String(), "Enriched: 2/3\n")
	assert.Contains(t, out.String(), "Total Revenue: ₹137,500.00\n")

	out.Reset()
	require.NoError(t, RunAnalysis(context.Background(), p,
		pipeline.Options{InputFile: writeInput(t), Filters: models.RunFilters{Region: "Atlantis"}}, &out))
	assert.Equal(t, "No transactions match the filter criteria.\n", out.String())
}
