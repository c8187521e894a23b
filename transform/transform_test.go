package transform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ICSLogPump/models"
)

func TestToEventRowTypedFields(t *testing.T) {
	rec := models.Record{
		Columns: []string{
			"2020-09-13 12:26:40", "1F", "plc-03", "ADM23247",
			"AdminChange", "addServer", "eventlog", "net-A", "10.0.0.5",
			"d10", "d11",
		},
		SourceFile: "device01.vc0",
	}

	row := ToEventRow(rec)

	require.Equal(t, time.Date(2020, 9, 13, 12, 26, 40, 0, time.UTC), row.EventTime)
	assert.Equal(t, "2020-09-13 12:26:40", row.RawTimestamp)
	assert.Equal(t, "1F", row.LineID)
	assert.Equal(t, "plc-03", row.Hostname)
	assert.Equal(t, "ADM23247", row.MsgCode)
	assert.Equal(t, "AdminChange", row.MsgType)
	assert.Equal(t, "addServer", row.MsgDescription)
	assert.Equal(t, "eventlog", row.SourceType)
	assert.Equal(t, "net-A", row.Network)
	assert.Equal(t, "10.0.0.5", row.SourceIP)
	assert.Equal(t, "device01.vc0", row.SourceFile)
	assert.False(t, row.InsertedAt.IsZero())

	require.Len(t, row.MsgData, models.NumColumns-9)
	assert.Equal(t, "d10", row.MsgData[0])
	assert.Equal(t, "d11", row.MsgData[1])
	assert.Equal(t, "", row.MsgData[2])
}

func TestToEventRowRawTimestampFallback(t *testing.T) {
	rec := models.Record{Columns: []string{"ZZZZ", "01", "", "CODE1", "", ""}}

	row := ToEventRow(rec)
	assert.True(t, row.EventTime.IsZero())
	assert.Equal(t, "ZZZZ", row.RawTimestamp)
}

func TestToEventRowNarrowRecord(t *testing.T) {
	rec := models.Record{Columns: []string{"ZZZZ", "01"}}
	row := ToEventRow(rec)
	assert.Equal(t, "", row.Hostname)
	assert.Len(t, row.MsgData, models.NumColumns-9)
}

func TestToEventRowWideRecordKeepsExtraData(t *testing.T) {
	cols := make([]string, models.NumColumns+3)
	for i := range cols {
		cols[i] = "v"
	}
	row := ToEventRow(models.Record{Columns: cols})
	assert.Len(t, row.MsgData, models.NumColumns-9+3)
}
