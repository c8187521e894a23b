package parser

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// HeaderOffset is the fixed size of the opaque .vc0 container preamble.
// The preamble is skipped without interpretation; a file of exactly this
// size holds no records at all.
const HeaderOffset = 8192

// Extract reads newline-delimited payload bytes (the caller has already
// seeked past HeaderOffset) and returns all recovered records in
// encounter order.
//
// Decode problems are reported and the line is recovered best-effort;
// structurally invalid fragments are dropped silently. One bad line never
// aborts the rest of the stream.
func Extract(r io.Reader, m Lookup, lg *zap.Logger) [][]string {
	var rows [][]string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)

	for sc.Scan() {
		line := sc.Text()
		if !utf8.ValidString(line) {
			lg.Warn("invalid UTF-8 in payload line, replacing bad sequences")
			line = strings.ToValidUTF8(line, string(utf8.RuneError))
		}

		line = CleanLine(strings.TrimSpace(line))

		for _, sub := range strings.Split(line, "\n") {
			sub = strings.TrimSpace(sub)
			if len(sub) < minSublineLen {
				continue
			}
			if cols, ok := ProcessSubline(sub, m); ok {
				rows = append(rows, cols)
			}
		}
	}
	if err := sc.Err(); err != nil {
		lg.Error("payload read aborted", zap.Error(err))
	}
	return rows
}
