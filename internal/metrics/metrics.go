// Package metrics exposes per-run pipeline gauges in the Prometheus text
// format, for node_exporter textfile collection.
package metrics

import (
	"fmt"
	"path/filepath"
	"time"

	"fjacquet/sales-analytics/internal/fileutils"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "sales_pipeline"

// RunStats are the figures recorded for one pipeline run.
type RunStats struct {
	Parsed       int
	Valid        int
	Invalid      int
	Enriched     int
	Matched      int
	TotalRevenue float64
	Duration     time.Duration
	Success      bool
	FinishedAt   time.Time
}

// RunMetrics owns a private registry so repeated runs in one process never
// collide with the global one.
type RunMetrics struct {
	registry *prometheus.Registry

	records  *prometheus.GaugeVec
	revenue  prometheus.Gauge
	duration prometheus.Gauge
	success  prometheus.Gauge
	lastRun  prometheus.Gauge
}

// NewRunMetrics creates and registers the run gauges.
func NewRunMetrics() *RunMetrics {
	m := &RunMetrics{
		registry: prometheus.NewRegistry(),
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records",
			Help:      "Records seen by the last run, by pipeline outcome.",
		}, []string{"outcome"}),
		revenue: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "total_revenue",
			Help:      "Total revenue of the valid records of the last run.",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_duration_seconds",
			Help:      "Wall time of the last run.",
		}),
		success: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_success",
			Help:      "1 if the last run completed without error.",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time at which the last run finished.",
		}),
	}
	m.registry.MustRegister(m.records, m.revenue, m.duration, m.success, m.lastRun)
	return m
}

// Registry returns the registry holding the run gauges.
func (m *RunMetrics) Registry() *prometheus.Registry { return m.registry }

// Record sets every gauge from stats.
func (m *RunMetrics) Record(stats RunStats) {
	m.records.WithLabelValues("parsed").Set(float64(stats.Parsed))
	m.records.WithLabelValues("valid").Set(float64(stats.Valid))
	m.records.WithLabelValues("invalid").Set(float64(stats.Invalid))
	m.records.WithLabelValues("enriched").Set(float64(stats.Enriched))
	m.records.WithLabelValues("matched").Set(float64(stats.Matched))
	m.revenue.Set(stats.TotalRevenue)
	m.duration.Set(stats.Duration.Seconds())
	if stats.Success {
		m.success.Set(1)
	} else {
		m.success.Set(0)
	}
	if !stats.FinishedAt.IsZero() {
		m.lastRun.Set(float64(stats.FinishedAt.Unix()))
	}
}

// WriteTextfile writes the registry to path in the Prometheus text format.
func (m *RunMetrics) WriteTextfile(path string) error {
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(path)); err != nil {
		return err
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
