package model

import "math/big"

type FieldState uint8

const (
	FieldLoading FieldState = iota
	FieldReady
	FieldFailed
)

func (s FieldState) String() string {
	switch s {
	case FieldReady:
		return "ready"
	case FieldFailed:
		return "failed"
	default:
		return "loading"
	}
}

// Field is an on-chain value that is either still loading, resolved, or failed to load.
// The zero value is loading.
type Field[T any] struct {
	State FieldState
	Value T
	Err   error
}

func Ready[T any](v T) Field[T] {
	return Field[T]{State: FieldReady, Value: v}
}

func Failed[T any](err error) Field[T] {
	return Field[T]{State: FieldFailed, Err: err}
}

// Get returns the value and whether it is ready.
func (f Field[T]) Get() (T, bool) {
	return f.Value, f.State == FieldReady
}

func (f Field[T]) IsReady() bool {
	return f.State == FieldReady
}

// Uint is a ready-or-not unsigned integer read from a contract.
type Uint = Field[*big.Int]

// Flag is a ready-or-not boolean read from a contract.
type Flag = Field[bool]

// ReadyUint reports the value only when it is ready and non-nil.
func ReadyUint(f Uint) (*big.Int, bool) {
	v, ok := f.Get()
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// IsTrue treats anything but a resolved true as false.
func IsTrue(f Flag) bool {
	v, ok := f.Get()
	return ok && v
}
