// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SALES_LOG_LEVEL.
const EnvPrefix = "SALES"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Input struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"input" yaml:"input"`

	Output struct {
		Directory             string `mapstructure:"directory" yaml:"directory"`
		ReportFile            string `mapstructure:"report_file" yaml:"report_file"`
		SummaryReportFile     string `mapstructure:"summary_report_file" yaml:"summary_report_file"`
		ValidationSummaryFile string `mapstructure:"validation_summary_file" yaml:"validation_summary_file"`
		EnrichedFile          string `mapstructure:"enriched_file" yaml:"enriched_file"`
		RunLogFile            string `mapstructure:"run_log_file" yaml:"run_log_file"`
	} `mapstructure:"output" yaml:"output"`

	Catalog struct {
		URL            string `mapstructure:"url" yaml:"url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		CacheFile      string `mapstructure:"cache_file" yaml:"cache_file"`
	} `mapstructure:"catalog" yaml:"catalog"`

	Analysis struct {
		TopN                  int `mapstructure:"top_n" yaml:"top_n"`
		LowPerformerThreshold int `mapstructure:"low_performer_threshold" yaml:"low_performer_threshold"`
	} `mapstructure:"analysis" yaml:"analysis"`

	Report struct {
		CurrencySymbol string `mapstructure:"currency_symbol" yaml:"currency_symbol"`
	} `mapstructure:"report" yaml:"report"`

	Metrics struct {
		Textfile string `mapstructure:"textfile" yaml:"textfile"`
	} `mapstructure:"metrics" yaml:"metrics"`
}

// InitializeConfig loads configuration from the default search paths,
// environment variables and built-in defaults.
func InitializeConfig() (*Config, error) {
	return InitializeConfigWithFile("")
}

// InitializeConfigWithFile behaves like InitializeConfig but reads configFile
// instead of searching for config.yaml when configFile is not empty.
func InitializeConfigWithFile(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.sales-analytics")
		v.AddConfigPath(".sales-analytics")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless explicitly given)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the built-in configuration without reading files or the environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	// Defaults always decode cleanly.
	_ = v.Unmarshal(&config)
	return &config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("input.file", "data/sales_data.txt")

	v.SetDefault("output.directory", "output")
	v.SetDefault("output.report_file", "output/sales_report.txt")
	v.SetDefault("output.summary_report_file", "output/report.txt")
	v.SetDefault("output.validation_summary_file", "output/validation_summary.txt")
	v.SetDefault("output.enriched_file", "data/enriched_sales_data.txt")
	v.SetDefault("output.run_log_file", "output/run_log.csv")

	v.SetDefault("catalog.url", "https://dummyjson.com/products?limit=100")
	v.SetDefault("catalog.timeout_seconds", 10)
	v.SetDefault("catalog.cache_file", "")

	v.SetDefault("analysis.top_n", 5)
	v.SetDefault("analysis.low_performer_threshold", 10)

	v.SetDefault("report.currency_symbol", "₹")

	v.SetDefault("metrics.textfile", "")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Input.File == "" {
		return fmt.Errorf("input.file must not be empty")
	}

	if config.Catalog.CacheFile == "" && config.Catalog.URL == "" {
		return fmt.Errorf("either catalog.url or catalog.cache_file must be set")
	}

	if config.Catalog.TimeoutSeconds < 1 || config.Catalog.TimeoutSeconds > 300 {
		return fmt.Errorf("catalog.timeout_seconds must be between 1 and 300, got: %d", config.Catalog.TimeoutSeconds)
	}

	if config.Analysis.TopN < 1 {
		return fmt.Errorf("analysis.top_n must be at least 1, got: %d", config.Analysis.TopN)
	}

	if config.Analysis.LowPerformerThreshold < 0 {
		return fmt.Errorf("analysis.low_performer_threshold must not be negative, got: %d", config.Analysis.LowPerformerThreshold)
	}

	if config.Report.CurrencySymbol == "" {
		return fmt.Errorf("report.currency_symbol must not be empty")
	}

	return nil
}
