package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMetrics_Record(t *testing.T) {
	m := NewRunMetrics()
	m.Record(RunStats{
		Parsed:       100,
		Valid:        90,
		Invalid:      10,
		Enriched:     90,
		Matched:      45,
		TotalRevenue: 12345.5,
		Duration:     1500 * time.Millisecond,
		Success:      true,
		FinishedAt:   time.Unix(1735639507, 0),
	})

	assert.Equal(t, 100.0, testutil.ToFloat64(m.records.WithLabelValues("parsed")))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.records.WithLabelValues("invalid")))
	assert.Equal(t, 45.0, testutil.ToFloat64(m.records.WithLabelValues("matched")))
	assert.Equal(t, 12345.5, testutil.ToFloat64(m.revenue))
	assert.Equal(t, 1.5, testutil.ToFloat64(m.duration))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.success))
	assert.Equal(t, 1735639507.0, testutil.ToFloat64(m.lastRun))
}

func TestRunMetrics_RecordFailure(t *testing.T) {
	m := NewRunMetrics()
	m.Record(RunStats{Success: true})
	m.Record(RunStats{Success: false})
	assert.Equal(t, 0.0, testutil.ToFloat64(m.success))
}

func TestRunMetrics_WriteTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics", "sales.prom")
	m := NewRunMetrics()
	m.Record(RunStats{Parsed: 3, Valid: 2, Invalid: 1, Success: true})

	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `sales_pipeline_records{outcome="valid"} 2`)
	assert.Contains(t, string(data), "sales_pipeline_last_run_success 1")
}
