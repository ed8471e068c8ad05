// Package safe provides helpers for safe numeric conversions with overflow checks.
package safe

import (
	"fmt"
	"math"
	"math/big"
)

// Uint64 converts a signed integer to uint64, rejecting negatives.
func Uint64[T ~int | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// BigUint64 converts a non-negative big integer that fits in 64 bits.
func BigUint64(v *big.Int) (uint64, error) {
	if v == nil {
		return 0, fmt.Errorf("nil value")
	}
	if v.Sign() < 0 || !v.IsUint64() {
		return 0, fmt.Errorf("value %s out of uint64 range", v)
	}
	return v.Uint64(), nil
}

// Uint32 narrows a uint64 with range validation.
func Uint32(v uint64) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}
