package writer

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ICSLogPump/models"
)

func readBack(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteCSVHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(path, nil))

	rows := readBack(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, models.Header, rows[0])
	assert.Len(t, rows[0], models.NumColumns)
}

func TestWriteCSVPadsShortRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(path, [][]string{
		{"2020-09-13 12:26:40", "01", "host"},
	}))

	rows := readBack(t, path)
	require.Len(t, rows, 2)
	assert.Len(t, rows[1], models.NumColumns)
	assert.Equal(t, "host", rows[1][2])
	assert.Equal(t, "", rows[1][models.NumColumns-1])
}

func TestWriteCSVKeepsWideRows(t *testing.T) {
	wide := make([]string, models.NumColumns+2)
	for i := range wide {
		wide[i] = "x"
	}
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(path, [][]string{wide}))

	rows := readBack(t, path)
	require.Len(t, rows, 2)
	assert.Len(t, rows[1], models.NumColumns+2)
}
