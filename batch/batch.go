package batch

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ICSLogPump/models"
)

// Sink receives flushed batches. clickhouseclient.Client satisfies it.
type Sink interface {
	InsertBatch(ctx context.Context, records []models.Record) error
}

// Batcher accumulates extracted records and flushes them to the sink when
// the batch is full, the interval elapses, or the service shuts down.
type Batcher struct {
	batchSize     int
	batchInterval time.Duration
	logger        *zap.Logger
	sink          Sink
}

func NewBatcher(batchSize int, batchInterval time.Duration, logger *zap.Logger, sink Sink) *Batcher {
	return &Batcher{
		batchSize:     batchSize,
		batchInterval: batchInterval,
		logger:        logger,
		sink:          sink,
	}
}

// Run consumes records from in until ctx is cancelled. A failed flush is
// logged and the batch is dropped; the pipeline keeps going.
func (b *Batcher) Run(ctx context.Context, in <-chan models.Record) {
	buf := make([]models.Record, 0, b.batchSize)
	timer := time.NewTimer(b.batchInterval)
	defer timer.Stop()

	flush := func(reason string) {
		if len(buf) == 0 {
			return
		}
		b.logger.Info("flushing batch", zap.Int("count", len(buf)), zap.String("reason", reason))
		if err := b.sink.InsertBatch(ctx, buf); err != nil {
			b.logger.Error("batch insert failed", zap.Error(err), zap.Int("count", len(buf)))
		}
		buf = buf[:0]
	}

	for {
		select {
		case <-ctx.Done():
			flush("graceful shutdown")
			return
		case rec, ok := <-in:
			if !ok {
				flush("input closed")
				return
			}
			buf = append(buf, rec)
			if len(buf) >= b.batchSize {
				flush("batch size reached")
				timer.Reset(b.batchInterval)
			}
		case <-timer.C:
			flush("interval")
			timer.Reset(b.batchInterval)
		}
	}
}
