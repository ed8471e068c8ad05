package model

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type PendingTransaction struct {
	Handle      common.Hash
	Action      Action
	Amount      uint64
	Value       *big.Int
	Confirming  bool
	SubmittedAt time.Time
}

type ErrorOrigin string

var (
	OriginWallet ErrorOrigin = "wallet"
	OriginRead   ErrorOrigin = "read"
	OriginWrite  ErrorOrigin = "write"
)

// UIError is the single error currently shown to the user.
type UIError struct {
	Message string
	Origin  ErrorOrigin
}

type MintStatus string

var (
	MintSubmitted MintStatus = "submitted"
	MintConfirmed MintStatus = "confirmed"
	MintReverted  MintStatus = "reverted"
	MintFailed    MintStatus = "failed"
	MintAbandoned MintStatus = "abandoned"
)

// MintEvent is one step of a mint's lifecycle as written to the journal.
type MintEvent struct {
	ID          string
	Action      Action
	Account     common.Address
	TxHash      common.Hash
	Amount      uint64
	Value       *big.Int
	Status      MintStatus
	BlockNumber uint64
	Message     string
	RecordedAt  time.Time
}
