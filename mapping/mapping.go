package mapping

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Entry is the classification attached to a message code.
type Entry struct {
	Type        string
	Description string
}

// Map is the message code lookup table. Built once at startup, read-only
// afterwards, so it is safe to share across concurrent file conversions.
type Map map[string]Entry

// Lookup returns the type and description for a message code.
func (m Map) Lookup(code string) (msgType, description string, ok bool) {
	e, ok := m[code]
	if !ok {
		return "", "", false
	}
	return e.Type, e.Description, true
}

// Load reads a comma-delimited table of MessageCode,MessageType,Description
// rows. Rows with any other field count are skipped, all fields are
// trimmed, rows with an empty code are skipped, and the last occurrence of
// a duplicate code wins.
//
// A file that cannot be opened or read is an operator problem, not a
// parser problem: the error is logged and an empty map is returned so the
// run continues with unenriched records.
func Load(path string, lg *zap.Logger) Map {
	m := make(Map)

	f, err := os.Open(path)
	if err != nil {
		lg.Error("cannot open message map, codes will not be enriched",
			zap.String("path", path), zap.Error(err))
		return m
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			lg.Error("cannot read message map, continuing with partial map",
				zap.String("path", path), zap.Error(err))
			break
		}
		if len(row) != 3 {
			continue
		}
		code := strings.TrimSpace(row[0])
		if code == "" {
			continue
		}
		m[code] = Entry{
			Type:        strings.TrimSpace(row[1]),
			Description: strings.TrimSpace(row[2]),
		}
	}
	return m
}
