// Package root contains the root command for the application
package root

import (
	"fmt"
	"sync"

	"fjacquet/sales-analytics/internal/config"
	"fjacquet/sales-analytics/internal/container"
	"fjacquet/sales-analytics/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input      string
	ConfigFile string
	LogLevel   string
	LogFormat  string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "sales-analytics",
		Short: "A CLI tool to clean, analyze and enrich sales transaction files.",
		Long: `sales-analytics reads a pipe-delimited sales transaction file, cleans and
validates it, enriches it with product catalog data and writes text reports.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: setup,
	}

	// SharedFlags holds the persistent flag values
	SharedFlags = CommonFlags{}

	appContainer *container.Container
	initOnce     sync.Once
)

// Init initializes the root command and all flags
func Init() {
	initOnce.Do(func() {
		Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input sales file (overrides input.file)")
		Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default searches ./config.yaml and ~/.sales-analytics)")
		Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
		Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format: text or json")
	})
}

func setup(cmd *cobra.Command, args []string) error {
	config.LoadEnv()

	cfg, err := LoadConfig(SharedFlags)
	if err != nil {
		return err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	appContainer = c
	Log = c.GetLogger()
	return nil
}

// LoadConfig loads the configuration and applies the command line overrides.
func LoadConfig(flags CommonFlags) (*config.Config, error) {
	cfg, err := config.InitializeConfigWithFile(flags.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if flags.Input != "" {
		cfg.Input.File = flags.Input
	}
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.LogFormat != "" {
		if flags.LogFormat != "text" && flags.LogFormat != "json" {
			return nil, fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", flags.LogFormat)
		}
		cfg.Log.Format = flags.LogFormat
	}
	return cfg, nil
}

// GetContainer returns the container built by the root command setup. It is
// nil until a command has started.
func GetContainer() *container.Container {
	return appContainer
}

// SetContainer replaces the application container, for tests.
func SetContainer(c *container.Container) {
	appContainer = c
	if c != nil {
		Log = c.GetLogger()
	}
}
