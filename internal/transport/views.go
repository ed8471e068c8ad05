package transport

import (
	"github.com/goodnatureofminers/cryptocator-backend/internal/model"
	"github.com/goodnatureofminers/cryptocator-backend/internal/page"
	"github.com/goodnatureofminers/cryptocator-backend/internal/store"
)

type connectRequest struct {
	Connector string `json:"connector"`
}

type mintRequest struct {
	Amount int64 `json:"amount"`
}

type pendingView struct {
	TxHash     string           `json:"txHash"`
	Collection model.Collection `json:"collection"`
	Kind       model.MintKind   `json:"kind"`
	Amount     uint64           `json:"amount"`
	ValueWei   string           `json:"valueWei"`
	Confirming bool             `json:"confirming"`
}

func newPendingView(tx model.PendingTransaction) pendingView {
	v := pendingView{
		Collection: tx.Action.Collection,
		Kind:       tx.Action.Kind,
		Amount:     tx.Amount,
		ValueWei:   "0",
		Confirming: tx.Confirming,
	}
	if tx.Confirming {
		v.TxHash = tx.Handle.Hex()
	}
	if tx.Value != nil {
		v.ValueWei = tx.Value.String()
	}
	return v
}

// stateView is one server-sent event.
type stateView struct {
	Stage    page.Stage       `json:"stage"`
	Selected model.Collection `json:"selected,omitempty"`
	Loading  bool             `json:"loading"`
	Error    *page.ErrorView  `json:"error,omitempty"`
	Pending  []pendingView    `json:"pending"`
	Account  string           `json:"account,omitempty"`
	Minting  map[string]bool  `json:"minting"`
}

func newStateView(st store.State) stateView {
	v := stateView{
		Stage:    page.StageOf(st),
		Selected: st.Selected,
		Loading:  st.Loading,
		Pending:  make([]pendingView, 0, len(st.Pending)),
		Minting:  make(map[string]bool, len(model.Collections)),
	}
	if st.Error != nil {
		v.Error = &page.ErrorView{Message: st.Error.Message, Origin: st.Error.Origin}
	}
	if addr, ok := st.Wallet.Account(); ok {
		v.Account = addr.Hex()
	}
	for _, c := range model.Collections {
		v.Minting[string(c)] = st.Minting(c)
		if tx, ok := st.Pending[c]; ok {
			v.Pending = append(v.Pending, newPendingView(tx))
		}
	}
	return v
}
