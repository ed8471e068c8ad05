// Package contracts carries the ABIs and deployment of the Falcons and Whales contracts.
package contracts

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/cryptocator-backend/internal/model"
)

// SepoliaChainID is the only network the console talks to.
const SepoliaChainID uint64 = 11155111

// Contract function names.
const (
	FnTotalSupply     = "totalSupply"
	FnMaxSupply       = "MAX_SUPPLY"
	FnMintPrice       = "MINT_PRICE"
	FnPresaleActive   = "IS_PRESALE_ACTIVE"
	FnWhitelistActive = "IS_WHITELIST_ACTIVE"
	FnWhitelist       = "whitelist"
	FnBalanceOf       = "balanceOf"
	FnBoughtAmount    = "boughtAmount"
	FnGetTotalCost    = "getTotalCost"
	FnPresaleMint     = "presaleMint"
	FnWhitelistMint   = "whitelistMint"
	FnFalconsMint     = "falconsMint"
)

var (
	//go:embed abi/falcons.json
	falconsABIJSON string
	//go:embed abi/whales.json
	whalesABIJSON string
)

// Contract is a deployed contract with its parsed ABI.
type Contract struct {
	Collection model.Collection
	Address    common.Address
	ABI        abi.ABI
}

// Call is a method invocation on a contract.
type Call struct {
	Method string
	Args   []any
}

func (c Call) String() string {
	return c.Method
}

// Deployment is the pair of contracts on one chain.
type Deployment struct {
	ChainID uint64
	Falcons Contract
	Whales  Contract
}

// NewDeployment parses the embedded ABIs and binds them to the given addresses.
func NewDeployment(chainID uint64, falcons, whales string) (*Deployment, error) {
	if !common.IsHexAddress(falcons) {
		return nil, fmt.Errorf("invalid falcons contract address %q", falcons)
	}
	if !common.IsHexAddress(whales) {
		return nil, fmt.Errorf("invalid whales contract address %q", whales)
	}
	if chainID == 0 {
		return nil, errors.New("chain id is required")
	}

	falconsABI, err := abi.JSON(strings.NewReader(falconsABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse falcons abi: %w", err)
	}
	whalesABI, err := abi.JSON(strings.NewReader(whalesABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse whales abi: %w", err)
	}

	return &Deployment{
		ChainID: chainID,
		Falcons: Contract{Collection: model.Falcons, Address: common.HexToAddress(falcons), ABI: falconsABI},
		Whales:  Contract{Collection: model.Whales, Address: common.HexToAddress(whales), ABI: whalesABI},
	}, nil
}

// Contract returns the contract backing a collection.
func (d *Deployment) Contract(c model.Collection) (Contract, error) {
	switch c {
	case model.Falcons:
		return d.Falcons, nil
	case model.Whales:
		return d.Whales, nil
	default:
		return Contract{}, fmt.Errorf("no contract for collection %q", c)
	}
}
