package chain

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCMetrics records metrics for node calls.
	RPCMetrics interface {
		Observe(operation, method string, err error, started time.Time)
	}
	// Signer hands out transaction options for the connected account.
	Signer interface {
		TransactOpts(ctx context.Context) (*bind.TransactOpts, error)
	}
	// BoundContract is the subset of bind.BoundContract the client uses.
	BoundContract interface {
		Call(opts *bind.CallOpts, results *[]interface{}, method string, params ...interface{}) error
		Transact(opts *bind.TransactOpts, method string, params ...interface{}) (*types.Transaction, error)
	}
	// Node is the subset of ethclient.Client used outside of contract calls.
	Node interface {
		ChainID(ctx context.Context) (*big.Int, error)
		TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	}
)
