package transport

import (
	"context"

	"github.com/goodnatureofminers/cryptocator-backend/internal/model"
	"github.com/goodnatureofminers/cryptocator-backend/internal/page"
	"github.com/goodnatureofminers/cryptocator-backend/internal/store"
	"github.com/goodnatureofminers/cryptocator-backend/internal/viewmodel"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Console is the page navigation surface.
	Console interface {
		Connectors() []model.ConnectorInfo
		Connect(ctx context.Context, connectorID string) error
		Disconnect()
		Select(c model.Collection) error
		Back()
		Render(ctx context.Context, amount uint64) (page.Page, error)
		Card(ctx context.Context, c model.Collection, amount uint64) (viewmodel.Card, error)
	}
	// Minter submits mint actions.
	Minter interface {
		Mint(ctx context.Context, action model.Action, amount uint64) (model.PendingTransaction, error)
	}
	// State is the store as seen by the handlers.
	State interface {
		ClearError()
		Subscribe() (<-chan store.State, func())
	}
)
