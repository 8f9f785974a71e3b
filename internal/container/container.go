// Package container provides dependency injection for the sales-analytics
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"
	"time"

	"fjacquet/sales-analytics/internal/analytics"
	"fjacquet/sales-analytics/internal/auditlog"
	"fjacquet/sales-analytics/internal/catalog"
	"fjacquet/sales-analytics/internal/config"
	"fjacquet/sales-analytics/internal/enricher"
	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/metrics"
	"fjacquet/sales-analytics/internal/parser"
	"fjacquet/sales-analytics/internal/pipeline"
	"fjacquet/sales-analytics/internal/report"
	"fjacquet/sales-analytics/internal/salesparser"
	"fjacquet/sales-analytics/internal/store"
	"fjacquet/sales-analytics/internal/validation"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger logging.Logger
	config *config.Config

	parser     parser.FileParser
	validator  *validation.Validator
	cleaner    *validation.Cleaner
	aggregator *analytics.Aggregator

	store       *store.CatalogStore
	httpCatalog *catalog.HTTPCatalog
	catalog     catalog.Catalog

	enricher *enricher.Enricher
	reporter *report.ReportGenerator
	runLog   *auditlog.RunLogger
	metrics  *metrics.RunMetrics
	pipeline *pipeline.Pipeline
}

// NewContainer creates and wires all application dependencies.
// This is the main entry point for dependency injection in the application.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	return NewContainerWithLogger(cfg, logger)
}

// NewContainerWithLogger wires the dependencies around an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	logger = logging.OrDefault(logger)

	timeout := time.Duration(cfg.Catalog.TimeoutSeconds) * time.Second
	catalogStore := store.NewCatalogStore(cfg.Catalog.CacheFile, logger)
	httpCatalog := catalog.NewHTTPCatalog(cfg.Catalog.URL, timeout, logger)

	// An explicit cache file switches enrichment to offline mode.
	var productCatalog catalog.Catalog = httpCatalog
	if cfg.Catalog.CacheFile != "" {
		productCatalog = catalog.NewFileCatalog(catalogStore, logger)
	}

	c := &Container{
		logger:      logger,
		config:      cfg,
		parser:      salesparser.NewAdapter(logger),
		validator:   validation.NewValidator(logger),
		cleaner:     validation.NewCleaner(cfg.Output.ValidationSummaryFile, logger),
		aggregator:  analytics.NewAggregator(cfg.Analysis.TopN, cfg.Analysis.LowPerformerThreshold, logger),
		store:       catalogStore,
		httpCatalog: httpCatalog,
		catalog:     productCatalog,
		enricher:    enricher.NewEnricher(cfg.Output.EnrichedFile, logger),
		reporter: report.NewReportGenerator(cfg.Report.CurrencySymbol,
			cfg.Analysis.TopN, cfg.Analysis.LowPerformerThreshold, logger),
		runLog:  auditlog.NewRunLogger(cfg.Output.RunLogFile, logger),
		metrics: metrics.NewRunMetrics(),
	}

	p, err := pipeline.New(pipeline.Dependencies{
		Cleaner:    c.cleaner,
		Aggregator: c.aggregator,
		Catalog:    c.catalog,
		Enricher:   c.enricher,
		Reporter:   c.reporter,
		RunLog:     c.runLog,
		Metrics:    c.metrics,
		Logger:     logger,
	}, pipeline.Settings{
		ReportFile:        cfg.Output.ReportFile,
		SummaryReportFile: cfg.Output.SummaryReportFile,
		MetricsTextfile:   cfg.Metrics.Textfile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}
	c.pipeline = p

	logger.Debug("Container initialized successfully",
		logging.F("offline_catalog", cfg.Catalog.CacheFile != ""),
		logging.F(logging.FieldInputFile, cfg.Input.File))

	return c, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger { return c.logger }

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config { return c.config }

// GetParser returns the sales file parser.
func (c *Container) GetParser() parser.FileParser { return c.parser }

// GetValidator returns the strict rule validator.
func (c *Container) GetValidator() *validation.Validator { return c.validator }

// GetCleaner returns the frame-level cleaner.
func (c *Container) GetCleaner() *validation.Cleaner { return c.cleaner }

// GetAggregator returns the statistics aggregator.
func (c *Container) GetAggregator() *analytics.Aggregator { return c.aggregator }

// GetStore returns the catalog cache store.
func (c *Container) GetStore() *store.CatalogStore { return c.store }

// GetHTTPCatalog returns the remote catalog client, used to refresh the cache.
func (c *Container) GetHTTPCatalog() *catalog.HTTPCatalog { return c.httpCatalog }

// GetCatalog returns the catalog used for enrichment.
func (c *Container) GetCatalog() catalog.Catalog { return c.catalog }

// GetEnricher returns the enricher.
func (c *Container) GetEnricher() *enricher.Enricher { return c.enricher }

// GetReporter returns the report generator.
func (c *Container) GetReporter() *report.ReportGenerator { return c.reporter }

// GetRunLogger returns the audit log writer.
func (c *Container) GetRunLogger() *auditlog.RunLogger { return c.runLog }

// GetPipeline returns the wired pipeline.
func (c *Container) GetPipeline() *pipeline.Pipeline { return c.pipeline }

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
