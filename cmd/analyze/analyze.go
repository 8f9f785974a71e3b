// Package analyze runs the full sales analytics pipeline.
package analyze

import (
	"fmt"

	"fjacquet/sales-analytics/cmd/common"
	"fjacquet/sales-analytics/cmd/root"
	"fjacquet/sales-analytics/internal/models"
	"fjacquet/sales-analytics/internal/pipeline"

	"github.com/spf13/cobra"
)

// Flags holds the run filters of the analyze command.
var Flags models.RunFilters

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full pipeline and write the sales reports",
	Long: `Read, clean, validate and analyze the sales file, enrich it with the
product catalog, and write the enriched data, reports and run log.

Filters narrow the run before validation: --region matches case-insensitively,
--min-amount and --max-amount bound the unit price. An amount that is not a
number is ignored with a warning.`,
	RunE: analyzeFunc,
}

func init() {
	Cmd.Flags().StringVar(&Flags.Region, "region", "", "Only keep transactions from this region")
	Cmd.Flags().StringVar(&Flags.MinAmount, "min-amount", "", "Minimum unit price")
	Cmd.Flags().StringVar(&Flags.MaxAmount, "max-amount", "", "Maximum unit price")
}

func analyzeFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("application container is not initialized")
	}

	opts := pipeline.Options{
		InputFile: c.GetConfig().Input.File,
		Filters:   Flags,
	}
	return common.RunAnalysis(cmd.Context(), c.GetPipeline(), opts, cmd.OutOrStdout())
}
