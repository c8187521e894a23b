package watcher

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"ICSLogPump/converter"
)

// scanInitialFiles tails every eligible file already present in the
// input directory, oldest first so the sink receives records in roughly
// chronological order.
func (w *Watcher) scanInitialFiles() {
	pattern, err := globToRegexp(w.cfg.Cfg.FilePattern)
	if err != nil {
		w.cfg.Logger.Error("invalid FilePattern",
			zap.String("pattern", w.cfg.Cfg.FilePattern), zap.Error(err))
		return
	}

	type fileWithTime struct {
		Path string
		Mod  time.Time
	}
	var found []fileWithTime

	filepath.Walk(w.cfg.Cfg.InputDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		name := filepath.Base(path)
		if pattern.MatchString(name) && converter.Eligible(name) {
			found = append(found, fileWithTime{Path: path, Mod: info.ModTime()})
		}
		return nil
	})

	sort.Slice(found, func(i, j int) bool {
		return found[i].Mod.Before(found[j].Mod)
	})

	for _, f := range found {
		w.cfg.Logger.Info("tailing existing file", zap.String("file", f.Path))
		w.startTail(f.Path)
	}
}

// globToRegexp compiles a shell glob like "*.vc0" into an anchored regexp.
func globToRegexp(glob string) (*regexp.Regexp, error) {
	s := glob
	s = strings.ReplaceAll(s, ".", `\.`)
	s = strings.ReplaceAll(s, "*", ".*")
	s = strings.ReplaceAll(s, "?", ".")
	return regexp.Compile("^" + s + "$")
}
