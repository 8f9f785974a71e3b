// Package store persists the product catalog cache as YAML.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/sales-analytics/internal/fileutils"
	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"

	"gopkg.in/yaml.v3"
)

// DefaultCatalogFile is used when no cache file is configured.
const DefaultCatalogFile = "catalog.yaml"

// catalogDocument is the on-disk layout of the cache.
type catalogDocument struct {
	Source   string           `yaml:"source,omitempty"`
	Products []models.Product `yaml:"products"`
}

// CatalogStore loads and saves catalog products.
type CatalogStore struct {
	CatalogFile string
	logger      logging.Logger
}

// NewCatalogStore creates a store backed by catalogFile.
func NewCatalogStore(catalogFile string, logger logging.Logger) *CatalogStore {
	return &CatalogStore{
		CatalogFile: catalogFile,
		logger:      logging.OrDefault(logger),
	}
}

func (s *CatalogStore) filename() string {
	if s.CatalogFile == "" {
		return DefaultCatalogFile
	}
	return s.CatalogFile
}

// FindCatalogFile looks for filename in the working directory, ./config,
// ./data and ~/.config/sales-analytics, in that order.
func (s *CatalogStore) FindCatalogFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if fileutils.FileExists(filename) {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join("data", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "sales-analytics", filename))
	}

	for _, location := range locations {
		if fileutils.FileExists(location) {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// LoadProducts reads the cached catalog. A missing cache yields an empty
// slice rather than an error.
func (s *CatalogStore) LoadProducts() ([]models.Product, error) {
	filePath, err := s.FindCatalogFile(s.filename())
	if err != nil {
		s.logger.Warn("Catalog cache not found", logging.F(logging.FieldFile, s.filename()))
		return []models.Product{}, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}

	products, err := decodeProducts(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing catalog file %s: %w", filePath, err)
	}
	s.logger.Debug("Loaded catalog cache",
		logging.F(logging.FieldFile, filePath),
		logging.F(logging.FieldCount, len(products)))
	return products, nil
}

// decodeProducts accepts either a document with a top-level products key or
// a plain list of products.
func decodeProducts(data []byte) ([]models.Product, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	products := []models.Product{}
	if len(root.Content) == 0 {
		return products, nil
	}

	node := root.Content[0]
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&products); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		var doc catalogDocument
		if err := node.Decode(&doc); err != nil {
			return nil, err
		}
		if doc.Products != nil {
			products = doc.Products
		}
	default:
		return nil, fmt.Errorf("unexpected catalog layout")
	}
	return products, nil
}

// SaveProducts writes products to the cache file, recording source as the
// origin of the data.
func (s *CatalogStore) SaveProducts(products []models.Product, source string) error {
	if products == nil {
		products = []models.Product{}
	}

	data, err := yaml.Marshal(catalogDocument{Source: source, Products: products})
	if err != nil {
		return fmt.Errorf("error marshaling catalog: %w", err)
	}

	if err := fileutils.WriteFile(s.filename(), data, 0600); err != nil {
		return fmt.Errorf("error writing catalog file: %w", err)
	}

	s.logger.Info("Saved catalog cache",
		logging.F(logging.FieldFile, s.filename()),
		logging.F(logging.FieldCount, len(products)))
	return nil
}
