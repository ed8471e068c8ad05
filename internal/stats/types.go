package stats

import (
	"context"
	"time"

	"github.com/goodnatureofminers/cryptocator-backend/internal/contracts"
	"github.com/goodnatureofminers/cryptocator-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Reader calls view functions of a deployed contract.
	Reader interface {
		Read(ctx context.Context, contract contracts.Contract, call contracts.Call) ([]any, error)
	}
	// Metrics records per-field read outcomes.
	Metrics interface {
		ObserveField(collection model.Collection, field string, state model.FieldState)
		ObserveLoad(collection model.Collection, started time.Time)
	}
)
