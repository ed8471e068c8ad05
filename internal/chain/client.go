// Package chain implements the contract read, submit and confirmation collaborators on go-ethereum.
package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/goodnatureofminers/cryptocator-backend/internal/clock"
	"github.com/goodnatureofminers/cryptocator-backend/internal/contracts"
	"github.com/goodnatureofminers/cryptocator-backend/internal/model"
)

const defaultReceiptPollInterval = 2 * time.Second

// Client wraps contract bindings with metrics instrumentation.
type Client struct {
	node         Node
	bound        map[model.Collection]BoundContract
	signer       Signer
	rpcMetrics   RPCMetrics
	sleep        func(context.Context, time.Duration) error
	pollInterval time.Duration
}

// NewClient binds both contracts of the deployment to an ethclient connection.
func NewClient(eth *ethclient.Client, deployment *contracts.Deployment, signer Signer, rpcMetrics RPCMetrics, pollInterval time.Duration) *Client {
	bound := make(map[model.Collection]BoundContract, 2)
	for _, c := range []contracts.Contract{deployment.Falcons, deployment.Whales} {
		bound[c.Collection] = bind.NewBoundContract(c.Address, c.ABI, eth, eth, eth)
	}
	if pollInterval <= 0 {
		pollInterval = defaultReceiptPollInterval
	}
	return &Client{
		node:         eth,
		bound:        bound,
		signer:       signer,
		rpcMetrics:   rpcMetrics,
		sleep:        clock.Sleep,
		pollInterval: pollInterval,
	}
}

// VerifyChain fails when the node serves a different network than expected.
func (c *Client) VerifyChain(ctx context.Context, want uint64) (err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("chain_id", "", err, started)
	}()

	id, err := c.node.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("get chain id: %w", err)
	}
	if !id.IsUint64() || id.Uint64() != want {
		return fmt.Errorf("node serves chain %s, want %d", id, want)
	}
	return nil
}

// Read calls a view function and returns its decoded outputs.
func (c *Client) Read(ctx context.Context, contract contracts.Contract, call contracts.Call) (out []any, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("read", call.Method, err, started)
	}()

	bound, err := c.boundFor(contract)
	if err != nil {
		return nil, err
	}
	if err = bound.Call(&bind.CallOpts{Context: ctx}, &out, call.Method, call.Args...); err != nil {
		return nil, fmt.Errorf("call %s.%s: %w", contract.Collection, call.Method, err)
	}
	return out, nil
}

// Submit signs and broadcasts a transaction and returns its hash.
func (c *Client) Submit(ctx context.Context, contract contracts.Contract, call contracts.Call, value *big.Int) (hash common.Hash, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("submit", call.Method, err, started)
	}()

	bound, err := c.boundFor(contract)
	if err != nil {
		return common.Hash{}, err
	}
	opts, err := c.signer.TransactOpts(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	opts.Context = ctx
	opts.Value = value

	tx, err := bound.Transact(opts, call.Method, call.Args...)
	if err != nil {
		return common.Hash{}, fmt.Errorf("transact %s.%s: %w", contract.Collection, call.Method, err)
	}
	return tx.Hash(), nil
}

// AwaitReceipt polls the node until the transaction is mined or ctx ends.
func (c *Client) AwaitReceipt(ctx context.Context, hash common.Hash) (receipt *types.Receipt, err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe("await_receipt", "", err, started)
	}()

	for {
		receipt, err = c.node.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("get receipt %s: %w", hash, err)
		}
		if err = c.sleep(ctx, c.pollInterval); err != nil {
			return nil, err
		}
	}
}

func (c *Client) boundFor(contract contracts.Contract) (BoundContract, error) {
	bound, ok := c.bound[contract.Collection]
	if !ok {
		return nil, fmt.Errorf("contract %s is not bound", contract.Collection)
	}
	return bound, nil
}
