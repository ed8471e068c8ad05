// Package stats loads the on-chain counters and flags of a collection.
package stats

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/cryptocator-backend/internal/contracts"
	"github.com/goodnatureofminers/cryptocator-backend/internal/model"
	"github.com/goodnatureofminers/cryptocator-backend/pkg/workerpool"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const defaultWorkers = 4

var errEmptyResult = errors.New("empty call result")

// Loader reads every field of a collection independently.
type Loader struct {
	reader     Reader
	deployment *contracts.Deployment
	metrics    Metrics
	limiter    ratelimit.Limiter
	workers    int
	logger     *zap.Logger
}

// NewLoader constructs a Loader that issues at most rps reads per second.
func NewLoader(reader Reader, deployment *contracts.Deployment, metrics Metrics, logger *zap.Logger, rps int) *Loader {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &Loader{
		reader:     reader,
		deployment: deployment,
		metrics:    metrics,
		limiter:    limiter,
		workers:    defaultWorkers,
		logger:     logger.Named("stats_loader"),
	}
}

// fieldRead is one view call whose result lands in a single stats field.
type fieldRead struct {
	field    string
	contract contracts.Contract
	call     contracts.Call
	decode   func(out []any, err error) error
}

// Load reads the stats of a collection. account may be nil, in which case the
// per-account fields stay loading. A failed read only fails its own field.
// Whales stats also carry the account's Falcons balance, read from the Falcons contract.
func (l *Loader) Load(ctx context.Context, collection model.Collection, account *common.Address, amount uint64) (model.CollectionStats, error) {
	contract, err := l.deployment.Contract(collection)
	if err != nil {
		return model.CollectionStats{}, err
	}

	started := time.Now()
	defer l.metrics.ObserveLoad(collection, started)

	out := model.CollectionStats{Collection: collection}
	switch collection {
	case model.Falcons:
		s := &model.FalconsStats{}
		if err := l.run(ctx, contract, falconsReads(s, account)); err != nil {
			return model.CollectionStats{}, err
		}
		if total, ok := model.ReadyUint(s.TotalSupply); ok && amount >= 1 {
			cost := fieldRead{
				field:  contracts.FnGetTotalCost,
				call:   contracts.Call{Method: contracts.FnGetTotalCost, Args: []any{total, new(big.Int).SetUint64(amount)}},
				decode: uintInto(&s.TotalCost),
			}
			if err := l.run(ctx, contract, []fieldRead{cost}); err != nil {
				return model.CollectionStats{}, err
			}
		}
		out.Falcons = s
	case model.Whales:
		s := &model.WhalesStats{}
		reads := whalesReads(s, account)
		if account != nil {
			reads = append(reads, fieldRead{
				field:    "falcons_" + contracts.FnBalanceOf,
				contract: l.deployment.Falcons,
				call:     contracts.Call{Method: contracts.FnBalanceOf, Args: []any{*account}},
				decode:   uintInto(&s.FalconsBalance),
			})
		}
		if err := l.run(ctx, contract, reads); err != nil {
			return model.CollectionStats{}, err
		}
		out.Whales = s
	}
	return out, nil
}

func (l *Loader) run(ctx context.Context, contract contracts.Contract, reads []fieldRead) error {
	err := workerpool.Each(ctx, l.workers, reads, func(ctx context.Context, r fieldRead) {
		target := contract
		if r.contract.Collection != "" {
			target = r.contract
		}
		l.limiter.Take()
		state := model.FieldReady
		if err := r.decode(l.reader.Read(ctx, target, r.call)); err != nil {
			state = model.FieldFailed
			l.logFailure(contract.Collection, r.field, err)
		}
		l.metrics.ObserveField(contract.Collection, r.field, state)
	})
	if err != nil {
		return fmt.Errorf("load %s stats: %w", contract.Collection, err)
	}
	return nil
}

func (l *Loader) logFailure(collection model.Collection, field string, err error) {
	l.logger.Warn("field read failed",
		zap.String("collection", string(collection)),
		zap.String("field", field),
		zap.Error(err),
	)
}

func falconsReads(s *model.FalconsStats, account *common.Address) []fieldRead {
	reads := []fieldRead{
		{field: contracts.FnTotalSupply, call: contracts.Call{Method: contracts.FnTotalSupply}, decode: uintInto(&s.TotalSupply)},
		{field: contracts.FnMaxSupply, call: contracts.Call{Method: contracts.FnMaxSupply}, decode: uintInto(&s.MaxSupply)},
		{field: contracts.FnPresaleActive, call: contracts.Call{Method: contracts.FnPresaleActive}, decode: flagInto(&s.PresaleActive)},
		{field: contracts.FnWhitelistActive, call: contracts.Call{Method: contracts.FnWhitelistActive}, decode: flagInto(&s.WhitelistActive)},
	}
	if account != nil {
		reads = append(reads,
			fieldRead{field: contracts.FnBalanceOf, call: contracts.Call{Method: contracts.FnBalanceOf, Args: []any{*account}}, decode: uintInto(&s.UserBalance)},
			fieldRead{field: contracts.FnWhitelist, call: contracts.Call{Method: contracts.FnWhitelist, Args: []any{*account}}, decode: uintInto(&s.WhitelistAllowance)},
		)
	}
	return reads
}

func whalesReads(s *model.WhalesStats, account *common.Address) []fieldRead {
	reads := []fieldRead{
		{field: contracts.FnTotalSupply, call: contracts.Call{Method: contracts.FnTotalSupply}, decode: uintInto(&s.TotalSupply)},
		{field: contracts.FnMaxSupply, call: contracts.Call{Method: contracts.FnMaxSupply}, decode: uintInto(&s.MaxSupply)},
		{field: contracts.FnMintPrice, call: contracts.Call{Method: contracts.FnMintPrice}, decode: uintInto(&s.MintPrice)},
		{field: contracts.FnPresaleActive, call: contracts.Call{Method: contracts.FnPresaleActive}, decode: flagInto(&s.PresaleActive)},
	}
	if account != nil {
		reads = append(reads,
			fieldRead{field: contracts.FnBalanceOf, call: contracts.Call{Method: contracts.FnBalanceOf, Args: []any{*account}}, decode: uintInto(&s.UserBalance)},
			fieldRead{field: contracts.FnBoughtAmount, call: contracts.Call{Method: contracts.FnBoughtAmount, Args: []any{*account}}, decode: uintInto(&s.ClaimedAmount)},
		)
	}
	return reads
}

func uintInto(dst *model.Uint) func([]any, error) error {
	return func(out []any, err error) error {
		*dst = decodeUint(out, err)
		return dst.Err
	}
}

func flagInto(dst *model.Flag) func([]any, error) error {
	return func(out []any, err error) error {
		*dst = decodeFlag(out, err)
		return dst.Err
	}
}

func decodeUint(out []any, err error) model.Uint {
	if err != nil {
		return model.Failed[*big.Int](err)
	}
	if len(out) == 0 {
		return model.Failed[*big.Int](errEmptyResult)
	}
	v, ok := out[0].(*big.Int)
	if !ok || v == nil {
		return model.Failed[*big.Int](fmt.Errorf("unexpected result type %T", out[0]))
	}
	return model.Ready(v)
}

func decodeFlag(out []any, err error) model.Flag {
	if err != nil {
		return model.Failed[bool](err)
	}
	if len(out) == 0 {
		return model.Failed[bool](errEmptyResult)
	}
	v, ok := out[0].(bool)
	if !ok {
		return model.Failed[bool](fmt.Errorf("unexpected result type %T", out[0]))
	}
	return model.Ready(v)
}
