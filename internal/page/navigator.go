// Package page composes the three console pages and moves between them.
package page

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/cryptocator-backend/internal/contracts"
	"github.com/goodnatureofminers/cryptocator-backend/internal/model"
	"github.com/goodnatureofminers/cryptocator-backend/internal/store"
	"github.com/goodnatureofminers/cryptocator-backend/internal/viewmodel"
	"github.com/goodnatureofminers/cryptocator-backend/internal/wallet"
	"go.uber.org/zap"
)

type Stage string

var (
	StageDisconnected     Stage = "disconnected"
	StageCollectionList   Stage = "collectionList"
	StageCollectionDetail Stage = "collectionDetail"
)

func networkName(chainID uint64) string {
	if chainID == contracts.SepoliaChainID {
		return "Sepolia"
	}
	return fmt.Sprintf("Chain %d", chainID)
}

// StageOf derives the page from the store. A disconnected wallet always wins over the selection.
func StageOf(st store.State) Stage {
	if _, ok := st.Wallet.Account(); !ok {
		return StageDisconnected
	}
	if st.Selected == "" {
		return StageCollectionList
	}
	return StageCollectionDetail
}

type WalletCard struct {
	Address      string `json:"address"`
	ShortAddress string `json:"shortAddress"`
	Network      string `json:"network"`
	ChainID      uint64 `json:"chainId,omitempty"`
}

type ErrorView struct {
	Message string            `json:"message"`
	Origin  model.ErrorOrigin `json:"origin"`
}

// Page is everything the current stage shows.
type Page struct {
	Stage       Stage                      `json:"stage"`
	Loading     bool                       `json:"loading"`
	Connectors  []model.ConnectorInfo      `json:"connectors,omitempty"`
	Wallet      *WalletCard                `json:"wallet,omitempty"`
	Collections []viewmodel.CollectionInfo `json:"collections,omitempty"`
	Detail      *viewmodel.Card            `json:"detail,omitempty"`
	Error       *ErrorView                 `json:"error,omitempty"`
}

// Navigator owns page transitions.
type Navigator struct {
	wallet Wallet
	state  State
	stats  Stats
	minter Minter
	logger *zap.Logger
}

func NewNavigator(wallet Wallet, state State, stats Stats, minter Minter, logger *zap.Logger) *Navigator {
	return &Navigator{
		wallet: wallet,
		state:  state,
		stats:  stats,
		minter: minter,
		logger: logger.Named("page"),
	}
}

func (n *Navigator) Connectors() []model.ConnectorInfo {
	return n.wallet.Connectors()
}

func (n *Navigator) Connect(ctx context.Context, connectorID string) error {
	return n.wallet.Connect(ctx, connectorID)
}

// Disconnect drops the wallet, forgets the selection and stops watching every pending mint.
func (n *Navigator) Disconnect() {
	n.wallet.Disconnect()
	n.state.SetSelectedCollection("")
	n.minter.AbandonAll()
	n.logger.Info("wallet disconnected")
}

// Select opens the detail page of a collection. Switching from another card abandons it.
// The selection moves before the old card is abandoned, so a mint racing the switch
// is either refused as off-card or dropped by the abandon.
func (n *Navigator) Select(c model.Collection) error {
	if _, err := model.ParseCollection(string(c)); err != nil {
		return err
	}
	st := n.state.Snapshot()
	if StageOf(st) == StageDisconnected {
		return wallet.ErrNotConnected
	}
	n.state.SetSelectedCollection(c)
	if st.Selected != "" && st.Selected != c {
		n.minter.Abandon(st.Selected)
	}
	return nil
}

// Back returns to the collection list and abandons the card that was open.
func (n *Navigator) Back() {
	st := n.state.Snapshot()
	if st.Selected == "" {
		return
	}
	n.state.SetSelectedCollection("")
	n.minter.Abandon(st.Selected)
}

// Render builds the page of the current stage.
func (n *Navigator) Render(ctx context.Context, amount uint64) (Page, error) {
	st := n.state.Snapshot()
	p := Page{Stage: StageOf(st), Loading: st.Loading}
	if st.Error != nil {
		p.Error = &ErrorView{Message: st.Error.Message, Origin: st.Error.Origin}
	}

	switch p.Stage {
	case StageDisconnected:
		p.Connectors = n.wallet.Connectors()
	case StageCollectionList:
		p.Wallet = walletCard(st.Wallet)
		p.Collections = viewmodel.CatalogList()
	case StageCollectionDetail:
		p.Wallet = walletCard(st.Wallet)
		card, err := n.card(ctx, st, st.Selected, amount)
		if err != nil {
			return Page{}, err
		}
		p.Detail = &card
	}
	return p, nil
}

// Card renders one collection card without changing the page.
func (n *Navigator) Card(ctx context.Context, c model.Collection, amount uint64) (viewmodel.Card, error) {
	if _, err := model.ParseCollection(string(c)); err != nil {
		return viewmodel.Card{}, err
	}
	return n.card(ctx, n.state.Snapshot(), c, amount)
}

func (n *Navigator) card(ctx context.Context, st store.State, c model.Collection, amount uint64) (viewmodel.Card, error) {
	account := st.Wallet.Address
	if !st.Wallet.Connected {
		account = nil
	}
	stats, err := n.stats.Load(ctx, c, account, amount)
	if err != nil {
		return viewmodel.Card{}, fmt.Errorf("load %s card: %w", c, err)
	}
	return viewmodel.BuildCard(stats, st.Wallet, amount, st.Minting(c)), nil
}

func walletCard(w model.WalletSnapshot) *WalletCard {
	addr, ok := w.Account()
	if !ok {
		return nil
	}
	card := &WalletCard{
		Address:      addr.Hex(),
		ShortAddress: viewmodel.ShortAddress(addr),
	}
	if w.ChainID != nil {
		card.ChainID = *w.ChainID
		card.Network = networkName(*w.ChainID)
	}
	return card
}
