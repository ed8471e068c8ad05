package wallet

import (
	"context"
	"crypto/ecdsa"

	"github.com/goodnatureofminers/cryptocator-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Connector produces the signing key of one wallet kind.
	Connector interface {
		Info() model.ConnectorInfo
		Load(ctx context.Context) (*ecdsa.PrivateKey, error)
	}
	// Listener receives every session change.
	Listener interface {
		SetWalletConnection(w model.WalletSnapshot)
		SetError(e model.UIError)
		ClearError()
	}
)
