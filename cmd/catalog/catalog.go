// Package catalog refreshes the local product catalog cache.
package catalog

import (
	"fmt"

	"fjacquet/sales-analytics/cmd/common"
	"fjacquet/sales-analytics/cmd/root"
	"fjacquet/sales-analytics/internal/store"

	"github.com/spf13/cobra"
)

var output string

// Cmd represents the catalog command
var Cmd = &cobra.Command{
	Use:   "catalog",
	Short: "Download the product catalog into a local YAML cache",
	Long: `Fetch the product catalog from catalog.url and save it as YAML. Point
catalog.cache_file at the result to enrich offline.`,
	RunE: catalogFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Cache file to write (default catalog.cache_file or catalog.yaml)")
}

func catalogFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("application container is not initialized")
	}

	cacheStore := c.GetStore()
	if output != "" {
		cacheStore = store.NewCatalogStore(output, c.GetLogger())
	} else if cacheStore.CatalogFile == "" {
		cacheStore = store.NewCatalogStore(store.DefaultCatalogFile, c.GetLogger())
	}

	src := c.GetHTTPCatalog()
	count, err := common.RefreshCatalog(cmd.Context(), src, cacheStore, src.URL(), c.GetLogger())
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %d products to %s\n", count, cacheStore.CatalogFile)
	return nil
}
