package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/hpcloud/tail"
	"go.uber.org/zap"

	"ICSLogPump/config"
	"ICSLogPump/converter"
	"ICSLogPump/models"
	"ICSLogPump/parser"
	"ICSLogPump/storage"
)

// Config carries the watcher dependencies.
type Config struct {
	Cfg    *config.Config
	Logger *zap.Logger
	Store  storage.ProcessedStore
	Lookup parser.Lookup
}

// Watcher follows the input directory, tails every eligible .vc0 file
// past the container header, and feeds extracted records to the batch
// channel. Offsets survive restarts through the processed store.
type Watcher struct {
	cfg       Config
	batchCh   chan<- models.Record
	files     map[string]*tail.Tail
	processed map[string]int64
	mu        sync.Mutex
	ctx       context.Context
}

func New(cfg Config, batchCh chan<- models.Record) *Watcher {
	w := &Watcher{
		cfg:       cfg,
		batchCh:   batchCh,
		files:     make(map[string]*tail.Tail),
		processed: make(map[string]int64),
	}
	processed, err := cfg.Store.Load()
	if err != nil {
		cfg.Logger.Error("cannot load processed offsets, starting from scratch", zap.Error(err))
	} else {
		w.processed = processed
	}
	return w
}

// Start blocks until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	w.ctx = ctx
	w.scanInitialFiles()
	go w.watchInputDir()
	<-ctx.Done()

	w.mu.Lock()
	for _, t := range w.files {
		t.Stop()
	}
	if err := w.cfg.Store.Save(w.processed); err != nil {
		w.cfg.Logger.Error("cannot save processed offsets", zap.Error(err))
	}
	w.mu.Unlock()
	w.cfg.Logger.Info("watcher stopped")
}

// watchInputDir reacts to files appearing, growing or vanishing in the
// input directory.
func (w *Watcher) watchInputDir() {
	dw, err := fsnotify.NewWatcher()
	if err != nil {
		w.cfg.Logger.Error("cannot create directory watcher", zap.Error(err))
		return
	}
	defer dw.Close()

	dir := w.cfg.Cfg.InputDir
	if err := dw.Add(dir); err != nil {
		w.cfg.Logger.Error("cannot watch input directory", zap.String("dir", dir), zap.Error(err))
		return
	}
	w.cfg.Logger.Info("watching input directory", zap.String("dir", dir))

	for {
		select {
		case <-w.ctx.Done():
			return
		case ev := <-dw.Events:
			if !converter.Eligible(filepath.Base(ev.Name)) {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Rename) != 0 {
				w.startTail(ev.Name)
			}
			if ev.Op&fsnotify.Write != 0 {
				info, err := os.Stat(ev.Name)
				if err == nil {
					w.mu.Lock()
					offset, known := w.processed[ev.Name]
					w.mu.Unlock()
					if !known || info.Size() > offset {
						w.startTail(ev.Name)
					}
				}
			}
			if ev.Op&fsnotify.Remove != 0 {
				w.stopTail(ev.Name)
			}
		case err := <-dw.Errors:
			w.cfg.Logger.Error("directory watcher error", zap.Error(err))
		}
	}
}
