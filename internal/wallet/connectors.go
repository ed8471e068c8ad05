package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/goodnatureofminers/cryptocator-backend/internal/model"
)

const (
	PrivateKeyConnectorID = "privatekey"
	KeystoreConnectorID   = "keystore"
)

type privateKeyConnector struct {
	hexKey string
}

// NewPrivateKeyConnector loads a raw hex-encoded secp256k1 key.
func NewPrivateKeyConnector(hexKey string) Connector {
	return &privateKeyConnector{hexKey: hexKey}
}

func (c *privateKeyConnector) Info() model.ConnectorInfo {
	return model.ConnectorInfo{ID: PrivateKeyConnectorID, Name: "Private Key"}
}

func (c *privateKeyConnector) Load(_ context.Context) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(c.hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return key, nil
}

type keystoreConnector struct {
	path       string
	passphrase string
	readFile   func(string) ([]byte, error)
}

// NewKeystoreConnector decrypts a go-ethereum v3 keystore file.
func NewKeystoreConnector(path, passphrase string) Connector {
	return &keystoreConnector{path: path, passphrase: passphrase, readFile: os.ReadFile}
}

func (c *keystoreConnector) Info() model.ConnectorInfo {
	return model.ConnectorInfo{ID: KeystoreConnectorID, Name: "Keystore File"}
}

func (c *keystoreConnector) Load(ctx context.Context) (*ecdsa.PrivateKey, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := c.readFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read keystore %s: %w", c.path, err)
	}
	key, err := keystore.DecryptKey(data, c.passphrase)
	if err != nil {
		if errors.Is(err, keystore.ErrDecrypt) {
			return nil, errors.New("keystore passphrase rejected")
		}
		return nil, fmt.Errorf("decrypt keystore: %w", err)
	}
	return key.PrivateKey, nil
}
