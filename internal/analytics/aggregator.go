package analytics

import (
	"time"

	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"
)

// Aggregator computes the full Analysis for a valid transaction set.
type Aggregator struct {
	topN      int
	threshold int
	logger    logging.Logger
}

// NewAggregator creates an Aggregator ranking topN entries and flagging
// products sold fewer than threshold units.
func NewAggregator(topN, threshold int, logger logging.Logger) *Aggregator {
	return &Aggregator{
		topN:      topN,
		threshold: threshold,
		logger:    logging.OrDefault(logger),
	}
}

// TopN returns the ranking size used by the aggregator.
func (a *Aggregator) TopN() int { return a.topN }

// Threshold returns the low-performer quantity threshold.
func (a *Aggregator) Threshold() int { return a.threshold }

// Analyze computes every statistic for txs, ranking topN entries and
// flagging products sold fewer than threshold units.
func Analyze(txs []models.Transaction, topN, threshold int) models.Analysis {
	first, last := DateRange(txs)
	analysis := models.Analysis{
		TotalRevenue:      CalculateTotalRevenue(txs),
		TransactionCount:  len(txs),
		AverageOrderValue: AverageOrderValue(txs),
		FirstDate:         first,
		LastDate:          last,
		Regions:           RegionPerformance(txs),
		TopProducts:       TopProducts(txs, topN),
		TopCustomers:      TopCustomers(txs, topN),
		Daily:             DailySalesStats(txs),
		LowPerformers:     LowPerformingProducts(txs, threshold),
		RegionAverages:    AverageTransactionValueByRegion(txs),
	}
	if peak, ok := FindPeakSalesDay(txs); ok {
		analysis.Peak = &peak
	}
	return analysis
}

// Analyze computes every statistic for txs with the aggregator's limits and
// logs a summary.
func (a *Aggregator) Analyze(txs []models.Transaction) models.Analysis {
	start := time.Now()
	analysis := Analyze(txs, a.topN, a.threshold)

	a.logger.Info("Computed sales analysis",
		logging.F(logging.FieldCount, analysis.TransactionCount),
		logging.F("total_revenue", analysis.TotalRevenue.StringFixed(2)),
		logging.F("regions", len(analysis.Regions)),
		logging.F("days", len(analysis.Daily)),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))
	return analysis
}
