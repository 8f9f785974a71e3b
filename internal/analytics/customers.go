package analytics

import (
	"sort"

	"fjacquet/sales-analytics/internal/models"

	"github.com/shopspring/decimal"
)

// CustomerAnalysis profiles every customer: total spend, purchase count,
// average order value rounded to two places and the sorted set of products
// bought. Profiles are ordered by total spend descending.
func CustomerAnalysis(txs []models.Transaction) []models.CustomerProfile {
	index := make(map[string]int)
	products := make([]map[string]struct{}, 0)
	profiles := make([]models.CustomerProfile, 0)
	for _, tx := range txs {
		i, ok := index[tx.CustomerID]
		if !ok {
			i = len(profiles)
			index[tx.CustomerID] = i
			profiles = append(profiles, models.CustomerProfile{CustomerID: tx.CustomerID, TotalSpent: decimal.Zero})
			products = append(products, make(map[string]struct{}))
		}
		profiles[i].TotalSpent = profiles[i].TotalSpent.Add(tx.Revenue())
		profiles[i].PurchaseCount++
		products[i][tx.ProductName] = struct{}{}
	}

	for i := range profiles {
		profiles[i].AverageOrderValue = profiles[i].TotalSpent.
			Div(decimal.NewFromInt(int64(profiles[i].PurchaseCount))).
			Round(2)

		names := make([]string, 0, len(products[i]))
		for name := range products[i] {
			names = append(names, name)
		}
		sort.Strings(names)
		profiles[i].ProductsBought = names
	}

	sort.SliceStable(profiles, func(a, b int) bool {
		return profiles[a].TotalSpent.GreaterThan(profiles[b].TotalSpent)
	})
	return profiles
}

// AnalyzeSales ranks products, customers and regions by revenue for the
// lightweight summary report.
func AnalyzeSales(txs []models.Transaction) models.SalesSummary {
	products := TopProducts(txs, len(txs))
	customers := TopCustomers(txs, len(txs))
	regions := RegionPerformance(txs)

	summary := models.SalesSummary{
		Products:  make([]models.NamedRevenue, 0, len(products)),
		Customers: make([]models.NamedRevenue, 0, len(customers)),
		Regions:   make([]models.NamedRevenue, 0, len(regions)),
	}
	for _, p := range products {
		summary.Products = append(summary.Products, models.NamedRevenue{Name: p.ProductName, Revenue: p.Revenue})
	}
	for _, c := range customers {
		summary.Customers = append(summary.Customers, models.NamedRevenue{Name: c.CustomerID, Revenue: c.TotalSpent})
	}
	for _, r := range regions {
		summary.Regions = append(summary.Regions, models.NamedRevenue{Name: r.Region, Revenue: r.Sales})
	}
	return summary
}
