package models

import "time"

// NumColumns is the fixed width of one output row:
// 9 named columns plus 21 generic message data slots.
const NumColumns = 30

// Header is the ordered CSV column list. Labels are kept exactly as the
// device vendor names them: slot 4 ("Msg Description") carries the mapped
// message type and slot 5 ("Msg Category") the mapped description.
// Downstream analyst tooling keys on these labels, so they stay as-is.
var Header = []string{
	"Timestamp",
	"Line ID",
	"Device Hostname",
	"Msg Code",
	"Msg Description",
	"Msg Category",
	"Log Source Type",
	"Device Network",
	"Source IP",
	"Msg Data 10",
	"Msg Data 11",
	"Msg Data 12",
	"Msg Data 13",
	"Msg Data 14",
	"Msg Data 15",
	"Msg Data 16",
	"Msg Data 17",
	"Msg Data 18",
	"Msg Data 19",
	"Msg Data 20",
	"Msg Data 21",
	"Msg Data 22",
	"Msg Data 23",
	"Msg Data 24",
	"Msg Data 25",
	"Msg Data 26",
	"Msg Data 27",
	"Msg Data 28",
	"Msg Data 29",
	"Msg Data 30",
}

// Record is one extracted log record on its way to a sink. Columns
// follows the Header order but may be narrower than NumColumns (the CSV
// writer pads) or wider (trailing device data is kept verbatim).
type Record struct {
	Columns    []string
	SourceFile string
}

// Col returns the column at index i, or "" when the record is narrower.
func (r Record) Col(i int) string {
	if i < 0 || i >= len(r.Columns) {
		return ""
	}
	return r.Columns[i]
}

// EventRow is the typed shape of a Record for ClickHouse insertion.
// EventTime is zero when the source carried an unparseable timestamp;
// RawTimestamp always holds the string form written to CSV.
type EventRow struct {
	EventTime      time.Time
	RawTimestamp   string
	LineID         string
	Hostname       string
	MsgCode        string
	MsgType        string
	MsgDescription string
	SourceType     string
	Network        string
	SourceIP       string
	MsgData        []string
	SourceFile     string
	InsertedAt     time.Time
}
