// Package clean runs the cleaning pass over a sales file.
package clean

import (
	"fmt"

	"fjacquet/sales-analytics/cmd/common"
	"fjacquet/sales-analytics/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the clean command
var Cmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean a sales file and write the validation summary",
	Long: `Drop records with missing ids or region, a transaction id not starting
with T, or a non-positive quantity or price, then write the validation summary.`,
	RunE: cleanFunc,
}

func cleanFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("application container is not initialized")
	}

	_, err := common.CleanFile(c.GetParser(), c.GetCleaner(), c.GetConfig().Input.File, cmd.OutOrStdout())
	return err
}
