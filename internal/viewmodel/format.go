package viewmodel

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/cryptocator-backend/internal/model"
	"github.com/shopspring/decimal"
)

const weiDecimals = 18

// FormatEther renders a wei amount as ETH without trailing zeros.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -weiDecimals).String()
}

// ShortAddress renders 0x1234...abcd.
func ShortAddress(addr common.Address) string {
	hex := addr.Hex()
	return hex[:6] + "..." + hex[len(hex)-4:]
}

// uintText renders a field, falling back to "0" while it is not ready.
func uintText(f model.Uint) string {
	if v, ok := model.ReadyUint(f); ok {
		return v.String()
	}
	return "0"
}

func plural(n uint64, noun string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss", n, noun)
	}
	return fmt.Sprintf("%d %s", n, noun)
}
