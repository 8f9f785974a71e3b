package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"
)

// DefaultURL is the public catalog endpoint.
const DefaultURL = "https://dummyjson.com/products?limit=100"

// HTTPCatalog fetches products from a JSON endpoint shaped like
// {"products": [{"id": 1, "title": ..., "category": ..., ...}]}.
type HTTPCatalog struct {
	url    string
	client *http.Client
	logger logging.Logger
}

// NewHTTPCatalog creates a catalog client. Each fetch is a single attempt
// bounded by the client timeout.
func NewHTTPCatalog(url string, timeout time.Duration, logger logging.Logger) *HTTPCatalog {
	if url == "" {
		url = DefaultURL
	}
	return &HTTPCatalog{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logging.OrDefault(logger),
	}
}

// URL returns the endpoint the catalog reads from.
func (c *HTTPCatalog) URL() string { return c.url }

type productsResponse struct {
	Products []models.Product `json:"products"`
}

// FetchAllProducts implements Catalog.
func (c *HTTPCatalog) FetchAllProducts(ctx context.Context) []models.Product {
	products, err := c.fetch(ctx)
	if err != nil {
		c.logger.WithError(err).Warn("Product catalog unavailable, continuing without enrichment",
			logging.F(logging.FieldURL, c.url))
		return []models.Product{}
	}

	c.logger.Info("Fetched product catalog",
		logging.F(logging.FieldURL, c.url),
		logging.F(logging.FieldCount, len(products)))
	return products
}

func (c *HTTPCatalog) fetch(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.WithError(err).Warn("Failed to close catalog response body")
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var payload productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}
	if payload.Products == nil {
		return []models.Product{}, nil
	}
	return payload.Products, nil
}
