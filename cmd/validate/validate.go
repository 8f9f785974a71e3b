// Package validate applies the strict validation rules and filters to a
// sales file.
package validate

import (
	"fmt"

	"fjacquet/sales-analytics/cmd/common"
	"fjacquet/sales-analytics/cmd/root"

	"github.com/spf13/cobra"
)

var (
	region    string
	minAmount string
	maxAmount string
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a sales file against the strict rules",
	Long: `Check every record of the sales file against the strict rules (all fields
present, T/P/C id prefixes, positive quantity and price), then filter by exact
region and by Quantity x UnitPrice, and print how many records each step removed.`,
	RunE: validateFunc,
}

func init() {
	Cmd.Flags().StringVar(&region, "region", "", "Keep only this region (exact match)")
	Cmd.Flags().StringVar(&minAmount, "min-amount", "", "Minimum transaction amount (inclusive)")
	Cmd.Flags().StringVar(&maxAmount, "max-amount", "", "Maximum transaction amount (inclusive)")
}

func validateFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("application container is not initialized")
	}

	opts, err := common.ParseFilterOptions(region, minAmount, maxAmount)
	if err != nil {
		return err
	}

	_, err = common.ValidateFile(c.GetParser(), c.GetValidator(), c.GetConfig().Input.File, opts, cmd.OutOrStdout())
	return err
}
