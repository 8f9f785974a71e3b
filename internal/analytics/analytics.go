// Package analytics computes the aggregate statistics reported for a set of
// valid transactions.
//
// Groups are collected in first-appearance order and ranked with stable
// sorts, so equal values keep input order and repeated runs over the same
// data produce identical output. Empty input yields zero values and empty
// slices, never an error.
package analytics

import (
	"sort"

	"fjacquet/sales-analytics/internal/models"

	"github.com/shopspring/decimal"
)

// CalculateTotalRevenue sums Quantity × UnitPrice over txs.
func CalculateTotalRevenue(txs []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Revenue())
	}
	return total
}

// AverageOrderValue is total revenue divided by the number of transactions,
// or zero for an empty set.
func AverageOrderValue(txs []models.Transaction) decimal.Decimal {
	if len(txs) == 0 {
		return decimal.Zero
	}
	return CalculateTotalRevenue(txs).Div(decimal.NewFromInt(int64(len(txs))))
}

// DateRange returns the lexically smallest and largest Date in txs.
func DateRange(txs []models.Transaction) (first, last string) {
	for i, tx := range txs {
		if i == 0 || tx.Date < first {
			first = tx.Date
		}
		if i == 0 || tx.Date > last {
			last = tx.Date
		}
	}
	return first, last
}

// RegionPerformance returns one row per region, ordered by sales descending.
func RegionPerformance(txs []models.Transaction) []models.RegionStats {
	index := make(map[string]int)
	stats := make([]models.RegionStats, 0)
	for _, tx := range txs {
		i, ok := index[tx.Region]
		if !ok {
			i = len(stats)
			index[tx.Region] = i
			stats = append(stats, models.RegionStats{Region: tx.Region, Sales: decimal.Zero})
		}
		stats[i].Sales = stats[i].Sales.Add(tx.Revenue())
		stats[i].Transactions++
	}

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].Sales.GreaterThan(stats[b].Sales)
	})
	return stats
}

// productTotals groups by ProductName in first-appearance order.
func productTotals(txs []models.Transaction) []models.ProductStats {
	index := make(map[string]int)
	stats := make([]models.ProductStats, 0)
	for _, tx := range txs {
		i, ok := index[tx.ProductName]
		if !ok {
			i = len(stats)
			index[tx.ProductName] = i
			stats = append(stats, models.ProductStats{ProductName: tx.ProductName, Revenue: decimal.Zero})
		}
		stats[i].Quantity += tx.Quantity
		stats[i].Revenue = stats[i].Revenue.Add(tx.Revenue())
	}
	return stats
}

// TopProducts returns the n products with the highest revenue.
func TopProducts(txs []models.Transaction, n int) []models.ProductStats {
	stats := productTotals(txs)
	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].Revenue.GreaterThan(stats[b].Revenue)
	})
	return head(stats, n)
}

// customerTotals groups by CustomerID in first-appearance order.
func customerTotals(txs []models.Transaction) []models.CustomerStats {
	index := make(map[string]int)
	stats := make([]models.CustomerStats, 0)
	for _, tx := range txs {
		i, ok := index[tx.CustomerID]
		if !ok {
			i = len(stats)
			index[tx.CustomerID] = i
			stats = append(stats, models.CustomerStats{CustomerID: tx.CustomerID, TotalSpent: decimal.Zero})
		}
		stats[i].TotalSpent = stats[i].TotalSpent.Add(tx.Revenue())
		stats[i].Orders++
	}
	return stats
}

// TopCustomers returns the n customers who spent the most.
func TopCustomers(txs []models.Transaction, n int) []models.CustomerStats {
	stats := customerTotals(txs)
	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].TotalSpent.GreaterThan(stats[b].TotalSpent)
	})
	return head(stats, n)
}

// DailySalesStats returns one row per date in ascending date order.
func DailySalesStats(txs []models.Transaction) []models.DailyStats {
	index := make(map[string]int)
	customers := make([]map[string]struct{}, 0)
	stats := make([]models.DailyStats, 0)
	for _, tx := range txs {
		i, ok := index[tx.Date]
		if !ok {
			i = len(stats)
			index[tx.Date] = i
			stats = append(stats, models.DailyStats{Date: tx.Date, Revenue: decimal.Zero})
			customers = append(customers, make(map[string]struct{}))
		}
		stats[i].Revenue = stats[i].Revenue.Add(tx.Revenue())
		stats[i].Transactions++
		customers[i][tx.CustomerID] = struct{}{}
	}
	for i := range stats {
		stats[i].UniqueCustomers = len(customers[i])
	}

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].Date < stats[b].Date
	})
	return stats
}

// FindPeakSalesDay returns the date with the highest revenue. When several
// dates tie, the earliest one wins. ok is false for an empty set.
func FindPeakSalesDay(txs []models.Transaction) (peak models.PeakDay, ok bool) {
	for i, day := range DailySalesStats(txs) {
		if i == 0 || day.Revenue.GreaterThan(peak.Revenue) {
			peak = models.PeakDay{Date: day.Date, Revenue: day.Revenue, Transactions: day.Transactions}
			ok = true
		}
	}
	return peak, ok
}

// LowPerformingProducts returns products whose total quantity is strictly
// below threshold, ordered by quantity ascending.
func LowPerformingProducts(txs []models.Transaction, threshold int) []models.ProductStats {
	low := make([]models.ProductStats, 0)
	for _, p := range productTotals(txs) {
		if p.Quantity < threshold {
			low = append(low, p)
		}
	}
	sort.SliceStable(low, func(a, b int) bool {
		return low[a].Quantity < low[b].Quantity
	})
	return low
}

// AverageTransactionValueByRegion returns the mean revenue per transaction
// for every region, ordered by region name.
func AverageTransactionValueByRegion(txs []models.Transaction) []models.RegionAverage {
	regions := RegionPerformance(txs)
	averages := make([]models.RegionAverage, 0, len(regions))
	for _, r := range regions {
		averages = append(averages, models.RegionAverage{
			Region:       r.Region,
			AverageValue: r.Sales.Div(decimal.NewFromInt(int64(r.Transactions))),
		})
	}
	sort.SliceStable(averages, func(a, b int) bool {
		return averages[a].Region < averages[b].Region
	})
	return averages
}

func head[T any](items []T, n int) []T {
	if n <= 0 {
		return items[:0]
	}
	if n < len(items) {
		return items[:n]
	}
	return items
}
