// Package journal records the lifecycle of every mint in ClickHouse.
package journal

import (
	"context"
	"time"

	"github.com/goodnatureofminers/cryptocator-backend/internal/model"
	"github.com/goodnatureofminers/cryptocator-backend/pkg/batcher"
	"go.uber.org/zap"
)

// Config controls how events are batched before they are written.
type Config struct {
	FlushSize     int
	FlushInterval time.Duration
	RPS           int
}

// Journal queues mint events and writes them in batches.
type Journal struct {
	batcher *batcher.Batcher[model.MintEvent]
}

func New(writer Writer, cfg Config, logger *zap.Logger) *Journal {
	return &Journal{
		batcher: batcher.New(logger.Named("journal"), writer.InsertMintEvents, batcher.Config{
			FlushSize:     cfg.FlushSize,
			FlushInterval: cfg.FlushInterval,
			RPS:           cfg.RPS,
		}),
	}
}

func (j *Journal) Start(ctx context.Context) {
	j.batcher.Start(ctx)
}

// Stop writes the queued events and returns once they are flushed.
func (j *Journal) Stop() {
	j.batcher.Stop()
}

// Record queues an event.
func (j *Journal) Record(ctx context.Context, event model.MintEvent) error {
	return j.batcher.Add(ctx, event)
}

// Nop discards events. It is used when no ClickHouse DSN is configured.
type Nop struct{}

func (Nop) Record(context.Context, model.MintEvent) error { return nil }
