package writer

import (
	"encoding/csv"
	"fmt"
	"os"

	"ICSLogPump/models"
)

// WriteCSV writes the fixed header plus all rows to path. Rows narrower
// than models.NumColumns are right-padded with empty fields; wider rows
// are written in full so no device data is lost.
func WriteCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(models.Header); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(pad(row)); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

func pad(row []string) []string {
	if len(row) >= models.NumColumns {
		return row
	}
	padded := make([]string, models.NumColumns)
	copy(padded, row)
	return padded
}
