// Package pipeline runs the sales analytics stages end to end: read, parse,
// filter, validate, clean, analyze, enrich and report. Every run appends
// exactly one row to the audit log.
package pipeline

import (
	"context"
	"errors"
	"time"

	"fjacquet/sales-analytics/internal/analytics"
	"fjacquet/sales-analytics/internal/auditlog"
	"fjacquet/sales-analytics/internal/catalog"
	"fjacquet/sales-analytics/internal/dateutils"
	"fjacquet/sales-analytics/internal/enricher"
	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/metrics"
	"fjacquet/sales-analytics/internal/models"
	"fjacquet/sales-analytics/internal/parsererror"
	"fjacquet/sales-analytics/internal/report"
	"fjacquet/sales-analytics/internal/salesparser"
	"fjacquet/sales-analytics/internal/validation"

	"github.com/google/uuid"
)

// ErrNoData is the audit log message recorded when the run filters leave
// nothing to process.
const ErrNoData = "No transactions after filter"

// Stage names used in logs and StageError.
const (
	StageRead     = "read"
	StageParse    = "parse"
	StageOptions  = "filter_options"
	StageFilter   = "filter"
	StageValidate = "validate"
	StageClean    = "clean"
	StageAnalyze  = "analyze"
	StageCatalog  = "catalog"
	StageEnrich   = "enrich"
	StageReport   = "report"
)

const stageCount = 10

// Dependencies are the collaborators a Pipeline drives.
type Dependencies struct {
	Cleaner    *validation.Cleaner
	Aggregator *analytics.Aggregator
	Catalog    catalog.Catalog
	Enricher   *enricher.Enricher
	Reporter   *report.ReportGenerator
	RunLog     *auditlog.RunLogger
	Metrics    *metrics.RunMetrics
	Logger     logging.Logger
}

// Settings hold the output locations of a run.
type Settings struct {
	ReportFile        string
	SummaryReportFile string
	MetricsTextfile   string
}

// Options select the input and the operator filters of one run.
type Options struct {
	InputFile string
	Filters   models.RunFilters
}

// Result describes a finished run.
type Result struct {
	RunID    string
	Parsed   int
	Filtered int
	Valid    int
	Invalid  int
	Cleaning models.CleaningSummary
	Analysis *models.Analysis
	Enriched int
	Matched  int
	// NoData is set when the run filters removed every record.
	NoData   bool
	Duration time.Duration
}

// Pipeline orchestrates one analytics run.
type Pipeline struct {
	deps     Dependencies
	settings Settings
	logger   logging.Logger
	newRunID func() string
	now      func() time.Time
}

// New creates a pipeline. Cleaner, Aggregator, Catalog, Enricher, Reporter
// and RunLog are required.
func New(deps Dependencies, settings Settings) (*Pipeline, error) {
	switch {
	case deps.Cleaner == nil:
		return nil, errors.New("pipeline requires a cleaner")
	case deps.Aggregator == nil:
		return nil, errors.New("pipeline requires an aggregator")
	case deps.Catalog == nil:
		return nil, errors.New("pipeline requires a catalog")
	case deps.Enricher == nil:
		return nil, errors.New("pipeline requires an enricher")
	case deps.Reporter == nil:
		return nil, errors.New("pipeline requires a reporter")
	case deps.RunLog == nil:
		return nil, errors.New("pipeline requires a run logger")
	}

	return &Pipeline{
		deps:     deps,
		settings: settings,
		logger:   logging.OrDefault(deps.Logger),
		newRunID: uuid.NewString,
		now:      time.Now,
	}, nil
}

// run carries the per-run state shared by the stages.
type run struct {
	logger  logging.Logger
	filters models.RunFilters
	result  *Result
	started time.Time
}

func (r *run) stage(n int, name string) logging.Logger {
	return r.logger.WithFields(
		logging.F(logging.FieldStage, name),
		logging.F("step", n),
		logging.F("steps", stageCount))
}

// Run executes every stage for opts. Stage failures are recorded in the audit
// log and returned as *parsererror.StageError. A run whose filters leave no
// records returns a Result with NoData set and a nil error.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Result, error) {
	r := &run{
		filters: opts.Filters,
		result:  &Result{RunID: p.newRunID()},
		started: p.now(),
	}
	r.logger = p.logger.WithFields(
		logging.F(logging.FieldRunID, r.result.RunID),
		logging.F(logging.FieldInputFile, opts.InputFile))

	r.logger.Info("Starting sales analytics run")

	noData, err := p.execute(ctx, r, opts)
	r.result.Duration = p.now().Sub(r.started)

	switch {
	case err != nil:
		if logErr := p.deps.RunLog.LogRun(r.filters, r.result.Valid, r.result.Invalid, err.Error()); logErr != nil {
			r.logger.WithError(logErr).Error("Failed to record run in audit log")
		}
		r.logger.WithError(err).Error("Sales analytics run failed")
		p.writeMetrics(r, false)
		return r.result, err

	case noData:
		r.result.NoData = true
		if logErr := p.deps.RunLog.LogRun(r.filters, 0, 0, ErrNoData); logErr != nil {
			p.writeMetrics(r, false)
			return r.result, logErr
		}
		r.logger.Warn("No transactions match the filter criteria")
		p.writeMetrics(r, true)
		return r.result, nil
	}

	if err := p.deps.RunLog.LogRun(r.filters, r.result.Valid, r.result.Invalid, ""); err != nil {
		p.writeMetrics(r, false)
		return r.result, err
	}
	p.writeMetrics(r, true)

	r.logger.Info("Sales analytics run complete",
		logging.F(logging.FieldValidCount, r.result.Valid),
		logging.F(logging.FieldInvalidCount, r.result.Invalid),
		logging.F(logging.FieldDuration, r.result.Duration.Milliseconds()))
	return r.result, nil
}

func stageErr(stage string, err error) error {
	return &parsererror.StageError{Stage: stage, Err: err}
}

func (p *Pipeline) execute(ctx context.Context, r *run, opts Options) (noData bool, err error) {
	// 1. read
	lines, err := salesparser.ReadSalesData(opts.InputFile)
	if err != nil {
		return false, stageErr(StageRead, err)
	}
	r.stage(1, StageRead).Info("Read sales data", logging.F(logging.FieldCount, len(lines)))

	// 2. parse
	parsed := salesparser.ParseTransactions(lines, r.logger)
	r.result.Parsed = len(parsed)
	r.stage(2, StageParse).Info("Parsed transactions", logging.F(logging.FieldCount, len(parsed)))
	if n := countNonISODates(parsed); n > 0 {
		r.stage(2, StageParse).Warn("Dates outside YYYY-MM-DD sort lexically, daily trend order may be off",
			logging.F(logging.FieldCount, n))
	}

	// 3. filter options
	options := validation.AvailableFilterOptions(parsed)
	r.stage(3, StageOptions).Info("Filter options available",
		logging.F("regions", options.Regions),
		logging.F("min_unit_price", options.MinUnitPrice.StringFixed(2)),
		logging.F("max_unit_price", options.MaxUnitPrice.StringFixed(2)))

	// 4. run filters
	filtered := parsed
	if !r.filters.IsEmpty() {
		filtered = validation.ApplyRunFilters(parsed, r.filters, r.logger)
		if len(filtered) == 0 {
			r.stage(4, StageFilter).Warn("Filter removed every transaction")
			return true, nil
		}
	}
	r.result.Filtered = len(filtered)
	r.stage(4, StageFilter).Info("Applied run filters", logging.F(logging.FieldCount, len(filtered)))

	// 5. validate
	valid, invalid := validation.ValidateTransactions(filtered)
	r.result.Valid, r.result.Invalid = len(valid), len(invalid)
	r.stage(5, StageValidate).Info("Validated transactions",
		logging.F(logging.FieldValidCount, len(valid)),
		logging.F(logging.FieldInvalidCount, len(invalid)))

	// 6. clean
	_, cleaning, err := p.deps.Cleaner.CleanSalesData(filtered)
	if err != nil {
		return false, stageErr(StageClean, err)
	}
	r.result.Cleaning = cleaning
	r.stage(6, StageClean).Info("Cleaned transactions", logging.F("remaining", cleaning.Remaining))

	// 7. analyze
	if len(valid) > 0 {
		analysis := p.deps.Aggregator.Analyze(valid)
		r.result.Analysis = &analysis
		r.stage(7, StageAnalyze).Info("Analysis complete",
			logging.F("total_revenue", analysis.TotalRevenue.StringFixed(2)))
	} else {
		r.stage(7, StageAnalyze).Warn("No valid transactions to analyze")
	}

	// 8. catalog
	if err := ctx.Err(); err != nil {
		return false, stageErr(StageCatalog, err)
	}
	products := p.deps.Catalog.FetchAllProducts(ctx)
	mapping := catalog.CreateProductMapping(products)
	r.stage(8, StageCatalog).Info("Fetched products", logging.F(logging.FieldCount, len(products)))

	// 9. enrich
	enriched, err := p.deps.Enricher.EnrichAndSave(valid, mapping)
	if err != nil {
		return false, stageErr(StageEnrich, err)
	}
	r.result.Enriched = len(enriched)
	r.result.Matched = report.SummarizeEnrichment(enriched).Matched
	r.stage(9, StageEnrich).Info("Enriched transactions",
		logging.F(logging.FieldCount, r.result.Enriched),
		logging.F("matched", r.result.Matched))

	// 10. report
	if r.result.Analysis == nil {
		r.stage(10, StageReport).Warn("No valid transactions, skipping report generation")
		return false, nil
	}
	if err := p.deps.Reporter.WriteSalesReport(*r.result.Analysis, enriched, p.settings.ReportFile); err != nil {
		return false, stageErr(StageReport, err)
	}
	if p.settings.SummaryReportFile != "" {
		if err := p.deps.Reporter.GenerateReport(analytics.AnalyzeSales(valid), p.settings.SummaryReportFile); err != nil {
			return false, stageErr(StageReport, err)
		}
	}
	r.stage(10, StageReport).Info("Reports written",
		logging.F(logging.FieldOutputFile, p.settings.ReportFile))

	return false, nil
}

func (p *Pipeline) writeMetrics(r *run, success bool) {
	if p.deps.Metrics == nil || p.settings.MetricsTextfile == "" {
		return
	}

	stats := metrics.RunStats{
		Parsed:     r.result.Parsed,
		Valid:      r.result.Valid,
		Invalid:    r.result.Invalid,
		Enriched:   r.result.Enriched,
		Matched:    r.result.Matched,
		Duration:   r.result.Duration,
		Success:    success,
		FinishedAt: p.now(),
	}
	if r.result.Analysis != nil {
		stats.TotalRevenue = r.result.Analysis.TotalRevenue.InexactFloat64()
	}
	p.deps.Metrics.Record(stats)

	if err := p.deps.Metrics.WriteTextfile(p.settings.MetricsTextfile); err != nil {
		r.logger.WithError(err).Warn("Failed to write metrics textfile",
			logging.F(logging.FieldFile, p.settings.MetricsTextfile))
	}
}

func countNonISODates(txs []models.Transaction) int {
	dates := make([]string, 0, len(txs))
	for _, tx := range txs {
		dates = append(dates, tx.Date)
	}
	return dateutils.CountNonISODates(dates)
}
