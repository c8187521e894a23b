package parser

import (
	"strconv"
	"strings"
	"time"
)

// Lookup resolves a message code into its type and description.
// mapping.Map satisfies it; tests inject fakes.
type Lookup interface {
	Lookup(code string) (msgType, description string, ok bool)
}

// minSublineLen is the shortest fragment that can still hold a record.
const minSublineLen = 3

// maxEpoch is 9999-12-31T23:59:59Z; larger values cannot be rendered in
// the four digit year format and fall back to the raw hex string.
const maxEpoch = 253402300799

// ProcessSubline parses one cleaned sub-line into output columns.
//
// The first column must be <hexTimestamp>.<hexLineID> and the message
// code column (index 3) must exist; otherwise the fragment is rejected
// with ok=false. Rejects are expected noise in real captures and are
// deliberately not surfaced as errors.
//
// On success the formatted timestamp replaces column 0, the line ID is
// inserted as column 1, and the mapped type/description are written into
// columns 4 and 5 after padding the row to at least 6 columns.
func ProcessSubline(sub string, m Lookup) ([]string, bool) {
	sub = strings.ReplaceAll(sub, "\t", ",")
	cols := strings.Split(sub, ",")

	// A single trailing character is a stray delimiter artifact.
	if len(cols[len(cols)-1]) == 1 {
		cols[len(cols)-1] = ""
	}

	dot := strings.Index(cols[0], ".")
	if dot < 0 {
		return nil, false
	}
	rawTimestamp := cols[0][:dot]
	lineID := cols[0][dot+1:]

	if len(cols) < 4 {
		return nil, false
	}
	code := strings.TrimSpace(cols[3])

	cols[0] = FormatHexEpoch(rawTimestamp)
	cols = insertAt(cols, 1, lineID)

	msgType, msgDesc := "", ""
	if m != nil {
		if t, d, ok := m.Lookup(code); ok {
			msgType, msgDesc = t, d
		}
	}

	for len(cols) < 6 {
		cols = append(cols, "")
	}
	cols[4] = msgType
	cols[5] = msgDesc

	return cols, true
}

// FormatHexEpoch renders a hexadecimal Unix epoch second count as a UTC
// "YYYY-MM-DD HH:MM:SS" string. Non-hex or out-of-range input returns the
// raw string verbatim: a wrong-looking timestamp in the output is worth
// more to an investigator than a dropped record.
func FormatHexEpoch(raw string) string {
	n, err := strconv.ParseInt(raw, 16, 64)
	if err != nil || n < 0 || n > maxEpoch {
		return raw
	}
	return time.Unix(n, 0).UTC().Format("2006-01-02 15:04:05")
}

func insertAt(cols []string, i int, v string) []string {
	cols = append(cols, "")
	copy(cols[i+1:], cols[i:])
	cols[i] = v
	return cols
}
