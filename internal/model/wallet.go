package model

import "github.com/ethereum/go-ethereum/common"

// WalletSnapshot is the live state of the wallet session.
type WalletSnapshot struct {
	Connected bool
	Address   *common.Address
	ChainID   *uint64
}

// Account returns the connected address.
func (w WalletSnapshot) Account() (common.Address, bool) {
	if !w.Connected || w.Address == nil {
		return common.Address{}, false
	}
	return *w.Address, true
}

// ConnectorInfo describes a wallet connector offered on the connect screen.
type ConnectorInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
