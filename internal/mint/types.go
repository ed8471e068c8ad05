package mint

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goodnatureofminers/cryptocator-backend/internal/contracts"
	"github.com/goodnatureofminers/cryptocator-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Chain submits mint transactions and waits for their receipts.
	Chain interface {
		Submit(ctx context.Context, contract contracts.Contract, call contracts.Call, value *big.Int) (common.Hash, error)
		AwaitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
	}
	// Stats loads the contract values a payable mint is priced from.
	Stats interface {
		Load(ctx context.Context, collection model.Collection, account *common.Address, amount uint64) (model.CollectionStats, error)
	}
	// Wallet exposes the connected account.
	Wallet interface {
		Snapshot() model.WalletSnapshot
	}
	// State is the part of the UI store the orchestrator drives.
	State interface {
		Selected() model.Collection
		ReservePending(tx model.PendingTransaction) bool
		UpdatePending(tx model.PendingTransaction) bool
		ResolvePending(c model.Collection, handle common.Hash) bool
		RemovePending(c model.Collection)
		SetLoading(loading bool)
		SetError(e model.UIError)
		ClearError()
	}
	// Journal records mint lifecycle events.
	Journal interface {
		Record(ctx context.Context, event model.MintEvent) error
	}
	// Metrics records submit and confirmation outcomes.
	Metrics interface {
		ObserveSubmit(action model.Action, err error, started time.Time)
		ObserveConfirmation(action model.Action, outcome model.MintStatus, started time.Time)
	}
)
