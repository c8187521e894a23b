package converter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"ICSLogPump/parser"
	"ICSLogPump/writer"
)

// lockPrefix marks in-use transient artifacts of the producing device,
// never actual logs.
const lockPrefix = "lck."

// Eligible reports whether a file name is a processable .vc0 log.
func Eligible(name string) bool {
	return strings.HasSuffix(name, ".vc0") && !strings.HasPrefix(name, lockPrefix)
}

// Run converts every eligible .vc0 file in inputDir into a CSV file in
// outputDir. One run timestamp is embedded in all output names so a batch
// is recognizable later.
//
// A missing input directory fails the run; everything below that is
// contained per file so one broken capture never sinks the batch.
func Run(inputDir, outputDir string, m parser.Lookup, lg *zap.Logger) error {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return fmt.Errorf("read input directory %s: %w", inputDir, err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", outputDir, err)
	}

	runStamp := time.Now().Format("20060102_150405")

	found := 0
	for _, e := range entries {
		if e.IsDir() || !Eligible(e.Name()) {
			continue
		}
		found++

		inPath := filepath.Join(inputDir, e.Name())
		outPath := filepath.Join(outputDir, runStamp+"_"+e.Name()+".csv")

		n, skipped, err := ConvertFile(inPath, outPath, m, lg)
		if err != nil {
			lg.Error("file conversion failed, continuing batch",
				zap.String("file", inPath), zap.Error(err))
			continue
		}
		if !skipped {
			lg.Info("wrote csv", zap.String("file", outPath), zap.Int("records", n))
		}
	}
	if found == 0 {
		lg.Warn("no .vc0 files found", zap.String("dir", inputDir))
	}
	return nil
}

// ConvertFile extracts one .vc0 file into one CSV file and returns the
// number of records written. A container of exactly HeaderOffset bytes is
// empty: it is reported as skipped and produces no output file.
func ConvertFile(inPath, outPath string, m parser.Lookup, lg *zap.Logger) (n int, skipped bool, err error) {
	info, err := os.Stat(inPath)
	if err != nil {
		return 0, false, fmt.Errorf("stat: %w", err)
	}
	if info.Size() == parser.HeaderOffset {
		lg.Info("skipping empty container", zap.String("file", inPath))
		return 0, true, nil
	}

	f, err := os.Open(inPath)
	if err != nil {
		return 0, false, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	if _, err := f.Seek(parser.HeaderOffset, 0); err != nil {
		return 0, false, fmt.Errorf("seek past header: %w", err)
	}

	rows := parser.Extract(f, m, lg.With(zap.String("file", inPath)))

	if err := writer.WriteCSV(outPath, rows); err != nil {
		return 0, false, fmt.Errorf("write csv: %w", err)
	}
	return len(rows), false, nil
}
