package catalog

import (
	"context"

	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"
	"fjacquet/sales-analytics/internal/store"
)

// FileCatalog serves products from the YAML cache written by the catalog
// command, for offline runs.
type FileCatalog struct {
	store  *store.CatalogStore
	logger logging.Logger
}

// NewFileCatalog creates a catalog backed by s.
func NewFileCatalog(s *store.CatalogStore, logger logging.Logger) *FileCatalog {
	return &FileCatalog{store: s, logger: logging.OrDefault(logger)}
}

// FetchAllProducts implements Catalog.
func (c *FileCatalog) FetchAllProducts(ctx context.Context) []models.Product {
	if err := ctx.Err(); err != nil {
		c.logger.WithError(err).Warn("Catalog lookup cancelled")
		return []models.Product{}
	}

	products, err := c.store.LoadProducts()
	if err != nil {
		c.logger.WithError(err).Warn("Catalog cache unreadable, continuing without enrichment",
			logging.F(logging.FieldFile, c.store.CatalogFile))
		return []models.Product{}
	}
	return products
}
