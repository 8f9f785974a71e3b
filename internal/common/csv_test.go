package common

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/sales-analytics/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	ID     string `csv:"ID"`
	Name   string `csv:"Name"`
	Amount string `csv:"Amount"`
}

func TestWriteDelimitedFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteDelimitedFile(path, []testRow{{ID: "A"}, {ID: "B"}}, 0, nil))
	require.NoError(t, WriteDelimitedFile(path, []testRow{{ID: "C"}}, 0, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ID,Name,Amount\nC,,\n", string(data))
}

func TestAppendCSVFile_HeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.csv")

	require.NoError(t, AppendCSVFile(path, []testRow{{ID: "1", Name: "first", Amount: "10"}}, ',', nil))
	require.NoError(t, AppendCSVFile(path, []testRow{{ID: "2", Name: "second", Amount: "20"}}, ',', nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ID,Name,Amount\n1,first,10\n2,second,20\n", string(data))
}

func TestWriteDelimitedFile_NoQuoting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.txt")
	rows := []testRow{
		{ID: "T001", Name: `27" Monitor`, Amount: " 1200"},
		{ID: "T002", Name: "Cable, USB", Amount: "150"},
	}

	require.NoError(t, WriteDelimitedFile(path, rows, '|', logging.NewMockLogger()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ID|Name|Amount\nT001|27\" Monitor| 1200\nT002|Cable, USB|150\n", string(data))
}

func TestWriteDelimitedFile_EmptyRowsWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteDelimitedFile[testRow](path, nil, 0, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ID,Name,Amount\n", string(data))
}
