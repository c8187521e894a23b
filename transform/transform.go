package transform

import (
	"time"

	"ICSLogPump/models"
)

// eventTimeLayout matches the timestamp format the extractor writes.
const eventTimeLayout = "2006-01-02 15:04:05"

// ToEventRow converts a 30-column record into the typed ClickHouse row.
// When the timestamp column holds the raw hex fallback instead of a
// formatted time, EventTime stays zero and RawTimestamp still carries the
// original string, so no information is lost on the degraded path.
func ToEventRow(rec models.Record) models.EventRow {
	row := models.EventRow{
		RawTimestamp:   rec.Col(0),
		LineID:         rec.Col(1),
		Hostname:       rec.Col(2),
		MsgCode:        rec.Col(3),
		MsgType:        rec.Col(4),
		MsgDescription: rec.Col(5),
		SourceType:     rec.Col(6),
		Network:        rec.Col(7),
		SourceIP:       rec.Col(8),
		SourceFile:     rec.SourceFile,
		InsertedAt:     time.Now(),
	}

	if t, err := time.Parse(eventTimeLayout, row.RawTimestamp); err == nil {
		row.EventTime = t.UTC()
	}

	data := make([]string, 0, models.NumColumns-9)
	for i := 9; i < models.NumColumns || i < len(rec.Columns); i++ {
		data = append(data, rec.Col(i))
	}
	row.MsgData = data

	return row
}
