package catalog

import (
	"context"

	"fjacquet/sales-analytics/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockCatalog is a testify mock implementing Catalog.
type MockCatalog struct {
	mock.Mock
}

// FetchAllProducts returns the products configured with On("FetchAllProducts", ...).
func (m *MockCatalog) FetchAllProducts(ctx context.Context) []models.Product {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]models.Product)
	if products == nil {
		return []models.Product{}
	}
	return products
}
