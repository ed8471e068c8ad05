// Package mint submits mint transactions and follows them until they are confirmed.
package mint

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/cryptocator-backend/internal/contracts"
	"github.com/goodnatureofminers/cryptocator-backend/internal/model"
	"github.com/goodnatureofminers/cryptocator-backend/internal/viewmodel"
	"github.com/goodnatureofminers/cryptocator-backend/internal/wallet"
	"github.com/goodnatureofminers/cryptocator-backend/pkg/safe"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxAmount is the largest batch a single presale or whitelist mint accepts.
const MaxAmount = 10

var (
	ErrMintInProgress   = errors.New("a mint is already in progress for this collection")
	ErrInvalidAmount    = fmt.Errorf("amount must be between 1 and %d", MaxAmount)
	ErrValueUnavailable = errors.New("mint price is not available yet")
	ErrNotEligible      = errors.New("mint option is not available")
	ErrCardNotOpen      = errors.New("collection is not open")
	ErrReverted         = errors.New("transaction reverted")
)

// Options tune the orchestrator.
type Options struct {
	// FalconsFreePresale sends Falcons presale mints without payment.
	FalconsFreePresale bool
}

// Orchestrator runs the four mint actions. It allows one mint per card at a time.
type Orchestrator struct {
	chain      Chain
	stats      Stats
	wallet     Wallet
	state      State
	journal    Journal
	metrics    Metrics
	deployment *contracts.Deployment
	opts       Options
	logger     *zap.Logger
	now        func() time.Time

	ctx   context.Context
	stop  context.CancelFunc
	mu    sync.Mutex
	waits map[common.Hash]waiting
	wg    sync.WaitGroup
}

type waiting struct {
	collection model.Collection
	cancel     context.CancelFunc
}

// NewOrchestrator wires the collaborators of the mint flow.
func NewOrchestrator(
	chain Chain,
	stats Stats,
	wallet Wallet,
	state State,
	journal Journal,
	metrics Metrics,
	deployment *contracts.Deployment,
	opts Options,
	logger *zap.Logger,
) *Orchestrator {
	ctx, stop := context.WithCancel(context.Background())
	return &Orchestrator{
		chain:      chain,
		stats:      stats,
		wallet:     wallet,
		state:      state,
		journal:    journal,
		metrics:    metrics,
		deployment: deployment,
		opts:       opts,
		logger:     logger.Named("mint"),
		now:        time.Now,
		ctx:        ctx,
		stop:       stop,
		waits:      make(map[common.Hash]waiting),
	}
}

// Mint submits the action and returns once the transaction hash is known.
// Confirmation continues in the background; the card stays minting until it ends.
func (o *Orchestrator) Mint(ctx context.Context, action model.Action, amount uint64) (model.PendingTransaction, error) {
	if action.Kind == model.HolderClaim {
		amount = 1
	}
	pending := model.PendingTransaction{Action: action, Amount: amount, SubmittedAt: o.now()}
	if !o.state.ReservePending(pending) {
		o.fail(ErrMintInProgress)
		return model.PendingTransaction{}, ErrMintInProgress
	}

	tx, account, err := o.submit(ctx, pending)
	o.metrics.ObserveSubmit(action, err, pending.SubmittedAt)
	if err != nil {
		o.state.RemovePending(action.Collection)
		o.fail(err)
		o.record(ctx, tx, account, model.MintFailed, 0, err.Error())
		return model.PendingTransaction{}, err
	}

	o.record(ctx, tx, account, model.MintSubmitted, 0, "")
	if !o.state.UpdatePending(tx) {
		o.logger.Info("card left before submission finished, not following transaction",
			zap.Stringer("action", action), zap.Stringer("tx", tx.Handle))
		return tx, nil
	}
	o.follow(tx, account)
	return tx, nil
}

func (o *Orchestrator) submit(ctx context.Context, tx model.PendingTransaction) (model.PendingTransaction, common.Address, error) {
	account, connected := o.wallet.Snapshot().Account()
	if !connected {
		return tx, account, wallet.ErrNotConnected
	}
	if o.state.Selected() != tx.Action.Collection {
		return tx, account, ErrCardNotOpen
	}
	if tx.Action.Kind != model.HolderClaim && (tx.Amount < 1 || tx.Amount > MaxAmount) {
		return tx, account, ErrInvalidAmount
	}
	contract, err := o.deployment.Contract(tx.Action.Collection)
	if err != nil {
		return tx, account, err
	}
	call, value, err := o.prepare(ctx, tx.Action, account, tx.Amount)
	if err != nil {
		return tx, account, err
	}
	tx.Value = value

	o.state.ClearError()
	o.state.SetLoading(true)
	o.logger.Info("submitting mint",
		zap.Stringer("action", tx.Action),
		zap.String("method", call.Method),
		zap.Uint64("amount", tx.Amount),
		zap.String("value_wei", weiString(value)),
	)
	hash, err := o.chain.Submit(ctx, contract, call, value)
	o.state.SetLoading(false)
	if err != nil {
		return tx, account, fmt.Errorf("submit %s: %w", tx.Action, err)
	}

	tx.Handle = hash
	tx.Confirming = true
	return tx, account, nil
}

// prepare checks the action against fresh contract values, then picks the contract
// function, its arguments and the payment.
func (o *Orchestrator) prepare(ctx context.Context, action model.Action, account common.Address, amount uint64) (contracts.Call, *big.Int, error) {
	stats, err := o.stats.Load(ctx, action.Collection, &account, amount)
	if err != nil {
		return contracts.Call{}, nil, err
	}
	if (action.Collection == model.Falcons && stats.Falcons == nil) || (action.Collection == model.Whales && stats.Whales == nil) {
		return contracts.Call{}, nil, fmt.Errorf("no %s values loaded: %w", action.Collection, ErrValueUnavailable)
	}
	if !viewmodel.Eligibility(stats, amount).Allows(action.Kind) {
		return contracts.Call{}, nil, fmt.Errorf("%s: %w", action, ErrNotEligible)
	}

	n := new(big.Int).SetUint64(amount)
	switch action {
	case model.FalconsPresale:
		call := contracts.Call{Method: contracts.FnPresaleMint, Args: []any{n}}
		if o.opts.FalconsFreePresale {
			return call, nil, nil
		}
		cost, ok := model.ReadyUint(stats.Falcons.TotalCost)
		if !ok {
			return contracts.Call{}, nil, ErrValueUnavailable
		}
		return call, cost, nil
	case model.FalconsWhitelist:
		return contracts.Call{Method: contracts.FnWhitelistMint, Args: []any{n}}, nil, nil
	case model.WhalesPresale:
		value, ok := viewmodel.WhalesPresaleValue(*stats.Whales, amount)
		if !ok {
			return contracts.Call{}, nil, ErrValueUnavailable
		}
		return contracts.Call{Method: contracts.FnPresaleMint, Args: []any{n}}, value, nil
	case model.WhalesHolderClaim:
		return contracts.Call{Method: contracts.FnFalconsMint}, nil, nil
	default:
		return contracts.Call{}, nil, fmt.Errorf("unsupported mint action %s", action)
	}
}

func (o *Orchestrator) follow(tx model.PendingTransaction, account common.Address) {
	ctx, cancel := context.WithCancel(o.ctx)
	o.mu.Lock()
	o.waits[tx.Handle] = waiting{collection: tx.Action.Collection, cancel: cancel}
	o.mu.Unlock()

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		defer func() {
			o.mu.Lock()
			delete(o.waits, tx.Handle)
			o.mu.Unlock()
			cancel()
		}()
		o.await(ctx, tx, account)
	}()
}

func (o *Orchestrator) await(ctx context.Context, tx model.PendingTransaction, account common.Address) {
	logger := o.logger.With(zap.Stringer("action", tx.Action), zap.Stringer("tx", tx.Handle))
	journalCtx := context.WithoutCancel(ctx)

	receipt, err := o.chain.AwaitReceipt(ctx, tx.Handle)
	switch {
	case err != nil && ctx.Err() != nil:
		logger.Info("confirmation abandoned")
		o.metrics.ObserveConfirmation(tx.Action, model.MintAbandoned, tx.SubmittedAt)
		o.record(journalCtx, tx, account, model.MintAbandoned, 0, ctx.Err().Error())
		return
	case err != nil:
		logger.Error("confirmation failed", zap.Error(err))
		o.finish(journalCtx, tx, account, model.MintFailed, 0, err)
		return
	}

	block := blockNumber(receipt, logger)
	if receipt.Status == types.ReceiptStatusFailed {
		logger.Warn("mint reverted", zap.Uint64("block", block))
		o.finish(journalCtx, tx, account, model.MintReverted, block, ErrReverted)
		return
	}
	logger.Info("mint confirmed", zap.Uint64("block", block))
	o.finish(journalCtx, tx, account, model.MintConfirmed, block, nil)
}

// finish releases the card and reports the outcome, unless the card was abandoned meanwhile.
func (o *Orchestrator) finish(ctx context.Context, tx model.PendingTransaction, account common.Address, status model.MintStatus, block uint64, err error) {
	o.metrics.ObserveConfirmation(tx.Action, status, tx.SubmittedAt)
	message := ""
	if err != nil {
		message = err.Error()
	}
	o.record(ctx, tx, account, status, block, message)
	if !o.state.ResolvePending(tx.Action.Collection, tx.Handle) {
		return
	}
	if err != nil {
		o.fail(err)
	}
}

// Abandon stops following every transaction of the card and releases it.
func (o *Orchestrator) Abandon(c model.Collection) {
	o.mu.Lock()
	for _, w := range o.waits {
		if w.collection == c {
			w.cancel()
		}
	}
	o.mu.Unlock()
	o.state.RemovePending(c)
}

// AbandonAll releases every card.
func (o *Orchestrator) AbandonAll() {
	for _, c := range model.Collections {
		o.Abandon(c)
	}
}

// Shutdown cancels every confirmation wait and blocks until they return.
func (o *Orchestrator) Shutdown() {
	o.stop()
	o.wg.Wait()
}

func (o *Orchestrator) fail(err error) {
	o.state.SetError(model.UIError{Message: err.Error(), Origin: model.OriginWrite})
}

func (o *Orchestrator) record(ctx context.Context, tx model.PendingTransaction, account common.Address, status model.MintStatus, block uint64, message string) {
	event := model.MintEvent{
		ID:          uuid.NewString(),
		Action:      tx.Action,
		Account:     account,
		TxHash:      tx.Handle,
		Amount:      tx.Amount,
		Value:       tx.Value,
		Status:      status,
		BlockNumber: block,
		Message:     message,
		RecordedAt:  o.now(),
	}
	if err := o.journal.Record(ctx, event); err != nil {
		o.logger.Warn("mint event not journaled", zap.String("status", string(status)), zap.Error(err))
	}
}

func blockNumber(receipt *types.Receipt, logger *zap.Logger) uint64 {
	block, err := safe.BigUint64(receipt.BlockNumber)
	if err != nil {
		logger.Warn("receipt without usable block number", zap.Error(err))
		return 0
	}
	return block
}

func weiString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
