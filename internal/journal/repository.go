package journal

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/cryptocator-backend/internal/model"
	"github.com/goodnatureofminers/cryptocator-backend/pkg/safe"
	"github.com/google/uuid"
)

// Repository writes mint events to ClickHouse.
type Repository struct {
	conn    Conn
	metrics Metrics
}

func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: clickhouseConn{conn: conn}, metrics: metrics}, nil
}

// InsertMintEvents stores event rows in a single batch.
func (r *Repository) InsertMintEvents(ctx context.Context, events []model.MintEvent) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_mint_events", len(events), err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	const query = `
INSERT INTO mint_events (
	id,
	collection,
	kind,
	account,
	tx_hash,
	amount,
	value_wei,
	status,
	block_number,
	message,
	recorded_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare mint events batch: %w", err)
	}

	for _, e := range events {
		row, rowErr := eventRow(e)
		if rowErr == nil {
			rowErr = batch.Append(row...)
		}
		if rowErr != nil {
			_ = batch.Abort()
			err = fmt.Errorf("append mint event %s: %w", e.ID, rowErr)
			return err
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert mint events: %w", err)
	}
	return nil
}

func (r *Repository) Close() error {
	return r.conn.Close()
}

func eventRow(e model.MintEvent) ([]any, error) {
	id, err := uuid.Parse(e.ID)
	if err != nil {
		return nil, fmt.Errorf("parse event id: %w", err)
	}
	amount, err := safe.Uint32(e.Amount)
	if err != nil {
		return nil, err
	}
	value := e.Value
	if value == nil {
		value = new(big.Int)
	}
	return []any{
		id,
		string(e.Action.Collection),
		string(e.Action.Kind),
		e.Account.Hex(),
		txHashText(e),
		amount,
		value,
		string(e.Status),
		e.BlockNumber,
		e.Message,
		e.RecordedAt.UTC(),
	}, nil
}

// txHashText leaves the hash empty for mints that never reached the chain.
func txHashText(e model.MintEvent) string {
	if e.TxHash == (common.Hash{}) {
		return ""
	}
	return e.TxHash.Hex()
}

// clickhouseConn narrows clickhouse.Conn to Conn.
type clickhouseConn struct {
	conn clickhouse.Conn
}

func (c clickhouseConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	return c.conn.PrepareBatch(ctx, query)
}

func (c clickhouseConn) Close() error {
	return c.conn.Close()
}
