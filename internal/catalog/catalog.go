// Package catalog provides the external product catalog used to enrich
// transactions, and the id-keyed mapping built from it.
package catalog

import (
	"context"

	"fjacquet/sales-analytics/internal/models"
)

// Catalog supplies product records. Implementations fail open: any failure
// is logged and reported as an empty list, never as an error.
type Catalog interface {
	FetchAllProducts(ctx context.Context) []models.Product
}

// CreateProductMapping indexes products by id. Later duplicates overwrite
// earlier ones.
func CreateProductMapping(products []models.Product) models.ProductMapping {
	mapping := make(models.ProductMapping, len(products))
	for _, p := range products {
		mapping[p.ID] = models.ProductInfo{
			Title:    p.Title,
			Category: p.Category,
			Brand:    p.Brand,
			Rating:   p.Rating,
		}
	}
	return mapping
}
