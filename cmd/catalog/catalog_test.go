package catalog_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/sales-analytics/cmd/catalog"
	"fjacquet/sales-analytics/cmd/root"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCommand_Metadata(t *testing.T) {
	assert.Equal(t, "catalog", catalog.Cmd.Use)
	flag := catalog.Cmd.Flags().Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, "o", flag.Shorthand)
}

func TestCatalogCommand_Run(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products":[{"id":1,"title":"Essence Mascara","category":"beauty","brand":"Essence","price":9.99,"rating":4.94}]}`))
	}))
	defer server.Close()

	root.Init()
	root.Cmd.AddCommand(catalog.Cmd)

	dir := t.TempDir()
	config := filepath.Join(dir, "config.yaml")
	output := filepath.Join(dir, "cache", "catalog.yaml")
	require.NoError(t, os.WriteFile(config, []byte(fmt.Sprintf("log:\n  level: error\ncatalog:\n  url: %s\n", server.URL)), 0600))

	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetArgs([]string{"catalog", "--config", config, "-o", output})
	require.NoError(t, root.Cmd.Execute())

	assert.Contains(t, out.String(), "Saved 1 products to "+output)
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: Essence Mascara")
}
