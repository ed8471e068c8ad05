// Package wallet implements the wallet-session collaborator: connectors, connect and disconnect.
package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/goodnatureofminers/cryptocator-backend/internal/model"
	"go.uber.org/zap"
)

var (
	ErrConnectorUnavailable = errors.New("connector unavailable")
	ErrNotConnected         = errors.New("wallet not connected")
)

// Session is the live wallet connection. Every change is pushed to the listener.
type Session struct {
	mu         sync.RWMutex
	connectors []Connector
	chainID    uint64
	key        *ecdsa.PrivateKey
	address    common.Address
	listener   Listener
	logger     *zap.Logger
}

func NewSession(chainID uint64, listener Listener, logger *zap.Logger, connectors ...Connector) *Session {
	s := &Session{
		connectors: connectors,
		chainID:    chainID,
		listener:   listener,
		logger:     logger.Named("wallet"),
	}
	listener.SetWalletConnection(model.WalletSnapshot{})
	return s
}

// Connectors lists the configured connectors in display order.
func (s *Session) Connectors() []model.ConnectorInfo {
	out := make([]model.ConnectorInfo, 0, len(s.connectors))
	for _, c := range s.connectors {
		out = append(out, c.Info())
	}
	return out
}

// Connect loads the key of the given connector and makes it the session account.
func (s *Session) Connect(ctx context.Context, connectorID string) error {
	connector := s.find(connectorID)
	if connector == nil {
		err := fmt.Errorf("%w: %s", ErrConnectorUnavailable, connectorID)
		s.listener.SetError(model.UIError{Message: err.Error(), Origin: model.OriginWallet})
		return err
	}

	key, err := connector.Load(ctx)
	if err != nil {
		s.logger.Warn("connect failed", zap.String("connector", connectorID), zap.Error(err))
		s.listener.SetError(model.UIError{Message: err.Error(), Origin: model.OriginWallet})
		return err
	}

	s.mu.Lock()
	s.key = key
	s.address = crypto.PubkeyToAddress(key.PublicKey)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Info("wallet connected", zap.String("connector", connectorID), zap.String("address", snapshot.Address.Hex()))
	s.listener.SetWalletConnection(snapshot)
	s.listener.ClearError()
	return nil
}

func (s *Session) Disconnect() {
	s.mu.Lock()
	s.key = nil
	s.address = common.Address{}
	s.mu.Unlock()

	s.logger.Info("wallet disconnected")
	s.listener.SetWalletConnection(model.WalletSnapshot{})
}

func (s *Session) Snapshot() model.WalletSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// TransactOpts returns signing options for the connected account.
func (s *Session) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	s.mu.RLock()
	key := s.key
	s.mu.RUnlock()

	if key == nil {
		return nil, ErrNotConnected
	}
	opts, err := bind.NewKeyedTransactorWithChainID(key, new(big.Int).SetUint64(s.chainID))
	if err != nil {
		return nil, fmt.Errorf("build transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

func (s *Session) find(id string) Connector {
	for _, c := range s.connectors {
		if c.Info().ID == id {
			return c
		}
	}
	return nil
}

func (s *Session) snapshotLocked() model.WalletSnapshot {
	if s.key == nil {
		return model.WalletSnapshot{}
	}
	address := s.address
	chainID := s.chainID
	return model.WalletSnapshot{Connected: true, Address: &address, ChainID: &chainID}
}
