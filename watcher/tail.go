package watcher

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/hpcloud/tail"
	"go.uber.org/zap"

	"ICSLogPump/models"
	"ICSLogPump/parser"
)

// startTail begins following a .vc0 file. The tail never starts inside
// the opaque container header: the resume offset is the saved position or
// HeaderOffset, whichever is larger.
func (w *Watcher) startTail(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, exists := w.files[path]; exists {
		return
	}

	offset := int64(parser.HeaderOffset)
	if saved, ok := w.processed[path]; ok && saved > offset {
		offset = saved
	}

	t, err := tail.TailFile(path, tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: false,
		Poll:      true,
		Location:  &tail.SeekInfo{Offset: offset, Whence: io.SeekStart},
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		w.cfg.Logger.Error("cannot tail file", zap.String("file", path), zap.Error(err))
		return
	}
	w.files[path] = t
	w.cfg.Logger.Info("tail started", zap.String("file", path), zap.Int64("offset", offset))
	go w.readTail(path, t)
}

// stopTail stops following a file and persists the offsets.
func (w *Watcher) stopTail(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.files[path]; ok {
		t.Stop()
		delete(w.files, path)
		if err := w.cfg.Store.Save(w.processed); err != nil {
			w.cfg.Logger.Error("cannot save processed offsets", zap.Error(err))
		}
	}
}

// readTail pushes every record recovered from a tailed line into the
// batch channel. Unlike the CSV batch path there is no multi-line
// buffering: each physical line is complete once the device writes it.
func (w *Watcher) readTail(path string, t *tail.Tail) {
	defer func() {
		if r := recover(); r != nil {
			w.cfg.Logger.Error("panic in readTail recovered", zap.Any("error", r))
		}
	}()

	base := filepath.Base(path)
	for {
		select {
		case <-w.ctx.Done():
			return
		case line, ok := <-t.Lines:
			if !ok {
				return
			}
			if line.Err != nil {
				w.cfg.Logger.Warn("tail read error", zap.String("file", path), zap.Error(line.Err))
				continue
			}

			clean := parser.CleanLine(strings.TrimSpace(line.Text))
			for _, sub := range strings.Split(clean, "\n") {
				sub = strings.TrimSpace(sub)
				if len(sub) < 3 {
					continue
				}
				cols, ok := parser.ProcessSubline(sub, w.cfg.Lookup)
				if !ok {
					continue
				}
				select {
				case w.batchCh <- models.Record{Columns: cols, SourceFile: base}:
				case <-w.ctx.Done():
					return
				}
			}

			if off, err := t.Tell(); err == nil {
				w.mu.Lock()
				w.processed[path] = off
				w.mu.Unlock()
			}
		}
	}
}
