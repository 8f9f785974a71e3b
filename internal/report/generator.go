// Package report renders the sales analytics text reports.
package report

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/sales-analytics/internal/analytics"
	"fjacquet/sales-analytics/internal/currencyutils"
	"fjacquet/sales-analytics/internal/dateutils"
	"fjacquet/sales-analytics/internal/fileutils"
	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"

	"github.com/shopspring/decimal"
)

const (
	banner    = "============================================"
	separator = "--------------------------------------------"

	summaryLimit = 5
)

// ReportGenerator writes the full sales report and the lightweight summary
// report.
type ReportGenerator struct {
	symbol    string
	topN      int
	threshold int
	now       func() time.Time
	logger    logging.Logger
}

// NewReportGenerator creates a generator. An empty symbol falls back to
// currencyutils.DefaultSymbol.
func NewReportGenerator(symbol string, topN, threshold int, logger logging.Logger) *ReportGenerator {
	if symbol == "" {
		symbol = currencyutils.DefaultSymbol
	}
	return &ReportGenerator{
		symbol:    symbol,
		topN:      topN,
		threshold: threshold,
		now:       time.Now,
		logger:    logging.OrDefault(logger),
	}
}

// SetClock replaces the clock used for the report timestamp.
func (g *ReportGenerator) SetClock(now func() time.Time) {
	if now != nil {
		g.now = now
	}
}

// GenerateSalesReport computes the analysis for txs and writes the full
// report to path.
func (g *ReportGenerator) GenerateSalesReport(txs []models.Transaction, enriched []models.EnrichedTransaction, path string) error {
	return g.WriteSalesReport(analytics.Analyze(txs, g.topN, g.threshold), enriched, path)
}

// WriteSalesReport writes the full report for an analysis that was already
// computed.
func (g *ReportGenerator) WriteSalesReport(analysis models.Analysis, enriched []models.EnrichedTransaction, path string) error {
	content := g.BuildSalesReport(analysis, enriched)
	if err := fileutils.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write sales report: %w", err)
	}

	g.logger.Info("Sales report generated", logging.F(logging.FieldOutputFile, path))
	return nil
}

func (g *ReportGenerator) money(amount decimal.Decimal) string {
	return currencyutils.FormatAmount(amount, g.symbol, 2)
}

func (g *ReportGenerator) wholeMoney(amount decimal.Decimal) string {
	return currencyutils.FormatAmount(amount, g.symbol, 0)
}

func section(b *strings.Builder, title string) {
	b.WriteString(title + "\n")
	b.WriteString(separator + "\n")
}

// BuildSalesReport renders the full report.
func (g *ReportGenerator) BuildSalesReport(analysis models.Analysis, enriched []models.EnrichedTransaction) string {
	var b strings.Builder

	b.WriteString(banner + "\n")
	b.WriteString("           SALES ANALYTICS REPORT\n")
	fmt.Fprintf(&b, "         Generated: %s\n", dateutils.FormatTimestamp(g.now()))
	fmt.Fprintf(&b, "         Records Processed: %d\n", analysis.TransactionCount)
	b.WriteString(banner + "\n\n")

	section(&b, "OVERALL SUMMARY")
	fmt.Fprintf(&b, "Total Revenue:        %s\n", g.money(analysis.TotalRevenue))
	fmt.Fprintf(&b, "Total Transactions:   %d\n", analysis.TransactionCount)
	fmt.Fprintf(&b, "Average Order Value:  %s\n", g.money(analysis.AverageOrderValue))
	fmt.Fprintf(&b, "Date Range:           %s to %s\n\n", analysis.FirstDate, analysis.LastDate)

	section(&b, "REGION-WISE PERFORMANCE")
	b.WriteString("Region    Sales         % of Total  Transactions\n")
	for _, r := range analysis.Regions {
		pct := currencyutils.Percentage(r.Sales, analysis.TotalRevenue)
		fmt.Fprintf(&b, "%-8s %s   %s      %d\n",
			r.Region, g.wholeMoney(r.Sales), currencyutils.FormatPercent(pct, 2), r.Transactions)
	}
	b.WriteString("\n")

	section(&b, fmt.Sprintf("TOP %d PRODUCTS", g.topN))
	b.WriteString("Rank  Product Name        Quantity   Revenue\n")
	for i, p := range analysis.TopProducts {
		fmt.Fprintf(&b, "%-5d%-18s%-10d%s\n", i+1, p.ProductName, p.Quantity, g.wholeMoney(p.Revenue))
	}
	b.WriteString("\n")

	section(&b, fmt.Sprintf("TOP %d CUSTOMERS", g.topN))
	b.WriteString("Rank  Customer ID   Total Spent   Orders\n")
	for i, c := range analysis.TopCustomers {
		fmt.Fprintf(&b, "%-5d%-13s%s   %d\n", i+1, c.CustomerID, g.wholeMoney(c.TotalSpent), c.Orders)
	}
	b.WriteString("\n")

	section(&b, "DAILY SALES TREND")
	b.WriteString("Date         Revenue       Transactions   Unique Customers\n")
	for _, d := range analysis.Daily {
		fmt.Fprintf(&b, "%s   %s   %d   %d\n", d.Date, g.wholeMoney(d.Revenue), d.Transactions, d.UniqueCustomers)
	}
	b.WriteString("\n")

	section(&b, "PRODUCT PERFORMANCE ANALYSIS")
	if analysis.Peak != nil {
		fmt.Fprintf(&b, "Best Selling Day: %s (%s, %d transactions)\n",
			analysis.Peak.Date, g.wholeMoney(analysis.Peak.Revenue), analysis.Peak.Transactions)
	} else {
		b.WriteString("Best Selling Day: N/A\n")
	}
	b.WriteString("Low Performing Products:\n")
	for _, p := range analysis.LowPerformers {
		fmt.Fprintf(&b, "  %s - Qty=%d, Revenue=%s\n", p.ProductName, p.Quantity, g.wholeMoney(p.Revenue))
	}
	b.WriteString("Average Transaction Value per Region:\n")
	for _, r := range analysis.RegionAverages {
		fmt.Fprintf(&b, "  %s: %s\n", r.Region, g.money(r.AverageValue))
	}
	b.WriteString("\n")

	stats := SummarizeEnrichment(enriched)
	section(&b, "API ENRICHMENT SUMMARY")
	fmt.Fprintf(&b, "Total Products Enriched: %d/%d\n", stats.Matched, stats.Total)
	fmt.Fprintf(&b, "Success Rate: %s\n", currencyutils.FormatPercent(stats.SuccessRate(), 2))
	b.WriteString("Failed Products:\n")
	for _, name := range stats.FailedProducts {
		fmt.Fprintf(&b, "  %s\n", name)
	}
	b.WriteString("\n")

	return b.String()
}

// GenerateReport writes the lightweight summary report to path.
func (g *ReportGenerator) GenerateReport(summary models.SalesSummary, path string) error {
	if err := fileutils.WriteFile(path, []byte(g.BuildReport(summary)), 0600); err != nil {
		return fmt.Errorf("failed to write summary report: %w", err)
	}

	g.logger.Info("Summary report generated", logging.F(logging.FieldOutputFile, path))
	return nil
}

// BuildReport renders the lightweight summary report.
func (g *ReportGenerator) BuildReport(summary models.SalesSummary) string {
	var b strings.Builder

	b.WriteString("Sales Summary Report\n")
	b.WriteString("====================\n\n")

	b.WriteString("Top Products:\n")
	g.writeNamed(&b, limit(summary.Products, summaryLimit))
	b.WriteString("\n")

	b.WriteString("Top Customers:\n")
	g.writeNamed(&b, limit(summary.Customers, summaryLimit))
	b.WriteString("\n")

	b.WriteString("Regional Sales:\n")
	g.writeNamed(&b, summary.Regions)

	return b.String()
}

func (g *ReportGenerator) writeNamed(b *strings.Builder, rows []models.NamedRevenue) {
	for _, row := range rows {
		fmt.Fprintf(b, "- %s: %s\n", row.Name, g.money(row.Revenue))
	}
}

func limit(rows []models.NamedRevenue, n int) []models.NamedRevenue {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}
