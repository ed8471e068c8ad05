// Package viewmodel derives mint eligibility and card views from raw contract values.
package viewmodel

import (
	"math/big"

	"github.com/goodnatureofminers/cryptocator-backend/internal/model"
)

// FalconsEligibility derives the Falcons mint options for the requested amount.
func FalconsEligibility(stats model.FalconsStats, amount uint64) model.MintEligibility {
	e := model.MintEligibility{
		PresaleOpen:        model.IsTrue(stats.PresaleActive) && stats.BelowMax(),
		WhitelistRemaining: stats.WhitelistAllowance,
	}
	if allowance, ok := model.ReadyUint(stats.WhitelistAllowance); ok && model.IsTrue(stats.WhitelistActive) {
		e.WhitelistOpen = allowance.Cmp(new(big.Int).SetUint64(amount)) >= 0
	}
	return e
}

// WhalesEligibility derives the Whales mint options.
func WhalesEligibility(stats model.WhalesStats) model.MintEligibility {
	e := model.MintEligibility{
		PresaleOpen: model.IsTrue(stats.PresaleActive) && stats.BelowMax(),
	}
	balance, ok := model.ReadyUint(stats.FalconsBalance)
	if !ok || balance.Sign() <= 0 {
		return e
	}
	if claimed, ok := model.ReadyUint(stats.ClaimedAmount); ok {
		e.HolderClaimAvailable = claimed.Cmp(balance) < 0
	}
	return e
}

// Eligibility dispatches on whichever collection the stats belong to.
func Eligibility(stats model.CollectionStats, amount uint64) model.MintEligibility {
	switch {
	case stats.Falcons != nil:
		return FalconsEligibility(*stats.Falcons, amount)
	case stats.Whales != nil:
		return WhalesEligibility(*stats.Whales)
	default:
		return model.MintEligibility{}
	}
}

// WhalesPresaleValue is the payment for a Whales presale mint: price × amount.
func WhalesPresaleValue(stats model.WhalesStats, amount uint64) (*big.Int, bool) {
	price, ok := model.ReadyUint(stats.MintPrice)
	if !ok {
		return nil, false
	}
	return new(big.Int).Mul(price, new(big.Int).SetUint64(amount)), true
}
