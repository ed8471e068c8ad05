// Package store provides the injectable UI state container of the mint console.
package store

import (
	"maps"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/cryptocator-backend/internal/model"
)

// State is a copy of the store contents. Mutating it does not affect the store.
type State struct {
	Wallet   model.WalletSnapshot
	Selected model.Collection
	Loading  bool
	Error    *model.UIError
	// Pending is keyed by collection: one confirming mint per card.
	Pending map[model.Collection]model.PendingTransaction
}

// Minting reports whether the card has a transaction that is submitting or confirming.
func (s State) Minting(c model.Collection) bool {
	_, ok := s.Pending[c]
	return ok
}

// Store holds wallet snapshot, selection, loading flag, current error and pending mints.
// All setters publish the new state to subscribers.
type Store struct {
	mu      sync.RWMutex
	state   State
	subs    map[int]chan State
	nextSub int
}

func New() *Store {
	return &Store{
		state: State{Pending: make(map[model.Collection]model.PendingTransaction)},
		subs:  make(map[int]chan State),
	}
}

func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

func (s *Store) SetWalletConnection(w model.WalletSnapshot) {
	s.update(func(st *State) {
		st.Wallet = w
	})
}

// Selected returns the card open in the detail view, or the empty collection.
func (s *Store) Selected() model.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Selected
}

// SetSelectedCollection selects a card; the empty collection clears the selection.
func (s *Store) SetSelectedCollection(c model.Collection) {
	s.update(func(st *State) {
		st.Selected = c
	})
}

func (s *Store) SetLoading(loading bool) {
	s.update(func(st *State) {
		st.Loading = loading
	})
}

// SetError replaces the current error and clears the loading flag.
func (s *Store) SetError(e model.UIError) {
	s.update(func(st *State) {
		st.Error = &e
		st.Loading = false
	})
}

func (s *Store) ClearError() {
	s.update(func(st *State) {
		st.Error = nil
	})
}

// ReservePending claims the card for a new mint. It returns false when the card
// already has a transaction in flight.
func (s *Store) ReservePending(tx model.PendingTransaction) bool {
	reserved := false
	s.update(func(st *State) {
		if _, busy := st.Pending[tx.Action.Collection]; busy {
			return
		}
		st.Pending[tx.Action.Collection] = tx
		reserved = true
	})
	return reserved
}

// UpdatePending replaces the pending entry reserved by the same submission.
// It returns false when that entry is gone, e.g. because the card was abandoned.
func (s *Store) UpdatePending(tx model.PendingTransaction) bool {
	updated := false
	s.update(func(st *State) {
		cur, ok := st.Pending[tx.Action.Collection]
		if !ok || cur.Action != tx.Action || !cur.SubmittedAt.Equal(tx.SubmittedAt) {
			return
		}
		st.Pending[tx.Action.Collection] = tx
		updated = true
	})
	return updated
}

// ResolvePending removes the card's pending entry if it still tracks handle.
func (s *Store) ResolvePending(c model.Collection, handle common.Hash) bool {
	resolved := false
	s.update(func(st *State) {
		if cur, ok := st.Pending[c]; ok && cur.Handle == handle {
			delete(st.Pending, c)
			resolved = true
		}
	})
	return resolved
}

func (s *Store) RemovePending(c model.Collection) {
	s.update(func(st *State) {
		delete(st.Pending, c)
	})
}

// Subscribe returns a feed of states. The feed keeps only the latest state,
// so slow readers skip intermediate ones. Call cancel to stop receiving.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan State, 1)
	ch <- s.copyLocked()
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (s *Store) update(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.state)
	snapshot := s.copyLocked()
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- snapshot
	}
}

func (s *Store) copyLocked() State {
	out := s.state
	out.Pending = maps.Clone(s.state.Pending)
	if out.Pending == nil {
		out.Pending = make(map[model.Collection]model.PendingTransaction)
	}
	if s.state.Error != nil {
		e := *s.state.Error
		out.Error = &e
	}
	return out
}
