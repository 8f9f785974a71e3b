// Package auditlog records one CSV row per pipeline run.
package auditlog

import (
	"fmt"
	"strconv"
	"time"

	"fjacquet/sales-analytics/internal/common"
	"fjacquet/sales-analytics/internal/dateutils"
	"fjacquet/sales-analytics/internal/logging"
	"fjacquet/sales-analytics/internal/models"
)

// RunRecord is one row of the run log.
type RunRecord struct {
	Timestamp    string `csv:"timestamp"`
	Region       string `csv:"region"`
	MinAmount    string `csv:"min_amount"`
	MaxAmount    string `csv:"max_amount"`
	ValidCount   string `csv:"valid_count"`
	InvalidCount string `csv:"invalid_count"`
	Error        string `csv:"error"`
}

// RunLogger appends run records to a CSV file.
type RunLogger struct {
	path   string
	now    func() time.Time
	logger logging.Logger
}

// NewRunLogger creates a run logger writing to path.
func NewRunLogger(path string, logger logging.Logger) *RunLogger {
	return &RunLogger{
		path:   path,
		now:    time.Now,
		logger: logging.OrDefault(logger),
	}
}

// SetClock replaces the clock used for the timestamp column.
func (r *RunLogger) SetClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

// Path returns the run log location.
func (r *RunLogger) Path() string { return r.path }

// LogRun appends one record. An empty errMsg leaves the error column blank.
func (r *RunLogger) LogRun(filters models.RunFilters, validCount, invalidCount int, errMsg string) error {
	record := RunRecord{
		Timestamp:    dateutils.FormatTimestamp(r.now()),
		Region:       filters.Region,
		MinAmount:    filters.MinAmount,
		MaxAmount:    filters.MaxAmount,
		ValidCount:   strconv.Itoa(validCount),
		InvalidCount: strconv.Itoa(invalidCount),
		Error:        errMsg,
	}

	if err := common.AppendCSVFile(r.path, []RunRecord{record}, ',', r.logger); err != nil {
		return fmt.Errorf("failed to write run log: %w", err)
	}

	r.logger.Debug("Recorded pipeline run",
		logging.F(logging.FieldFile, r.path),
		logging.F(logging.FieldValidCount, validCount),
		logging.F(logging.FieldInvalidCount, invalidCount))
	return nil
}
