package model

import "math/big"

// SupplyStats are the counters every collection exposes.
type SupplyStats struct {
	TotalSupply Uint
	MaxSupply   Uint
	UserBalance Uint
}

// Remaining is maxSupply - totalSupply once both counters are read.
func (s SupplyStats) Remaining() Uint {
	total, ok := ReadyUint(s.TotalSupply)
	if !ok {
		return Uint{}
	}
	maxSupply, ok := ReadyUint(s.MaxSupply)
	if !ok {
		return Uint{}
	}
	return Ready(new(big.Int).Sub(maxSupply, total))
}

// BelowMax reports whether both counters are read and total is still under max.
func (s SupplyStats) BelowMax() bool {
	total, ok := ReadyUint(s.TotalSupply)
	if !ok {
		return false
	}
	maxSupply, ok := ReadyUint(s.MaxSupply)
	if !ok {
		return false
	}
	return total.Cmp(maxSupply) < 0
}

type FalconsStats struct {
	SupplyStats
	PresaleActive      Flag
	WhitelistActive    Flag
	WhitelistAllowance Uint
	// TotalCost is getTotalCost(totalSupply, amount) for the requested amount.
	TotalCost Uint
}

type WhalesStats struct {
	SupplyStats
	PresaleActive  Flag
	MintPrice      Uint
	ClaimedAmount  Uint
	FalconsBalance Uint
}

// CollectionStats carries the stats of exactly one collection.
type CollectionStats struct {
	Collection Collection
	Falcons    *FalconsStats
	Whales     *WhalesStats
}

// Supply returns the shared counters of whichever collection is set.
func (s CollectionStats) Supply() SupplyStats {
	switch {
	case s.Falcons != nil:
		return s.Falcons.SupplyStats
	case s.Whales != nil:
		return s.Whales.SupplyStats
	default:
		return SupplyStats{}
	}
}
