package page

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/cryptocator-backend/internal/model"
	"github.com/goodnatureofminers/cryptocator-backend/internal/store"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Wallet is the wallet session the page drives.
	Wallet interface {
		Connectors() []model.ConnectorInfo
		Connect(ctx context.Context, connectorID string) error
		Disconnect()
	}
	// State is the UI store as seen by the page.
	State interface {
		Snapshot() store.State
		SetSelectedCollection(c model.Collection)
	}
	// Stats loads the values of a collection card.
	Stats interface {
		Load(ctx context.Context, collection model.Collection, account *common.Address, amount uint64) (model.CollectionStats, error)
	}
	// Minter releases cards whose confirmations are no longer watched.
	Minter interface {
		Abandon(c model.Collection)
		AbandonAll()
	}
)
