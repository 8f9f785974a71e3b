package container

import (
	"testing"

	"fjacquet/sales-analytics/internal/catalog"
	"fjacquet/sales-analytics/internal/config"
	"fjacquet/sales-analytics/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		config      func() *config.Config
		expectError bool
		errorMsg    string
		offline     bool
	}{
		{
			name:        "nil config",
			config:      func() *config.Config { return nil },
			expectError: true,
			errorMsg:    "configuration cannot be nil",
		},
		{
			name:   "default config uses the HTTP catalog",
			config: config.Default,
		},
		{
			name: "cache file switches to the file catalog",
			config: func() *config.Config {
				cfg := config.Default()
				cfg.Catalog.CacheFile = "catalog.yaml"
				return cfg
			},
			offline: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer(tt.config())

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, c)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, c)

			assert.NotNil(t, c.GetLogger())
			assert.NotNil(t, c.GetConfig())
			assert.NotNil(t, c.GetParser())
			assert.NotNil(t, c.GetValidator())
			assert.NotNil(t, c.GetCleaner())
			assert.NotNil(t, c.GetAggregator())
			assert.NotNil(t, c.GetStore())
			assert.NotNil(t, c.GetHTTPCatalog())
			assert.NotNil(t, c.GetEnricher())
			assert.NotNil(t, c.GetReporter())
			assert.NotNil(t, c.GetRunLogger())
			assert.NotNil(t, c.GetPipeline())

			_, isFile := c.GetCatalog().(*catalog.FileCatalog)
			assert.Equal(t, tt.offline, isFile)

			assert.NoError(t, c.Close())
		})
	}
}

func TestNewContainer_WiresConfiguredPaths(t *testing.T) {
	cfg := config.Default()
	cfg.Output.EnrichedFile = "custom/enriched.txt"
	cfg.Output.RunLogFile = "custom/run_log.csv"
	cfg.Analysis.TopN = 3
	cfg.Analysis.LowPerformerThreshold = 7

	c, err := NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)

	assert.Equal(t, "custom/enriched.txt", c.GetEnricher().OutputPath())
	assert.Equal(t, "custom/run_log.csv", c.GetRunLogger().Path())
	assert.Equal(t, 3, c.GetAggregator().TopN())
	assert.Equal(t, 7, c.GetAggregator().Threshold())
	assert.Equal(t, cfg.Catalog.URL, c.GetHTTPCatalog().URL())
}

func TestNewContainerWithLogger_NilConfig(t *testing.T) {
	_, err := NewContainerWithLogger(nil, logging.NewMockLogger())
	assert.Error(t, err)
}
