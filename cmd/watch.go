package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ICSLogPump/batch"
	"ICSLogPump/clickhouseclient"
	"ICSLogPump/config"
	"ICSLogPump/logger"
	"ICSLogPump/mapping"
	"ICSLogPump/models"
	"ICSLogPump/storage"
	"ICSLogPump/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Tail .vc0 files and pump records into ClickHouse",
	Long: `Watch runs as a service: it tails every eligible .vc0 file in the
input directory past the container header, extracts records as the device
appends them, and flushes them in batches to ClickHouse. File offsets are
persisted so a restart resumes where it left off.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if cfgFile == "" {
		return fmt.Errorf("watch mode requires --config")
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if !cfg.ClickHouse.Enabled {
		return fmt.Errorf("watch mode requires ClickHouse.Enabled in %s", cfgFile)
	}

	rootLogger, err := logger.InitZap(&cfg.Logging)
	if err != nil {
		return err
	}
	lg := rootLogger.Named("watch")
	defer lg.Sync()
	lg.Info("ICSLogPump watch mode starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	m := mapping.Map{}
	if cfg.MapFile != "" {
		m = mapping.Load(cfg.MapFile, lg.Named("mapping"))
		lg.Info("message map loaded", zap.Int("codes", len(m)))
	}

	var store storage.ProcessedStore
	switch cfg.ProcessedStorage {
	case "redis":
		store, err = storage.NewRedisStore(&cfg.Redis, "icslogpump:processed")
		if err != nil {
			lg.Fatal("redis store init failed", zap.Error(err))
		}
	default:
		store = storage.NewFileStore("processed_files.json")
	}

	chClient, err := clickhouseclient.New(cfg.ClickHouse, lg.Named("clickhouse"))
	if err != nil {
		lg.Fatal("clickhouse connection failed", zap.Error(err))
	}
	defer chClient.Close()

	batchCh := make(chan models.Record, cfg.BatchSize*2)

	w := watcher.New(watcher.Config{
		Cfg:    cfg,
		Logger: lg.Named("watcher"),
		Store:  store,
		Lookup: m,
	}, batchCh)

	batcher := batch.NewBatcher(cfg.BatchSize, cfg.Interval(), lg.Named("batcher"), chClient)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() { defer wg.Done(); w.Start(ctx) }()
	wg.Add(1)
	go func() { defer wg.Done(); batcher.Run(ctx, batchCh) }()

	<-stop
	lg.Info("shutdown signal received")
	cancel()
	wg.Wait()
	lg.Info("service stopped")
	return nil
}
