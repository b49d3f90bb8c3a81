package primitives

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// ErrOverflow is returned when slot or epoch arithmetic leaves the uint64 range.
var ErrOverflow = errors.New("integer overflow")

// ErrUnderflow is returned when subtracting below zero.
var ErrUnderflow = errors.New("integer underflow")

// Slot represents a single slot.
type Slot uint64

// SafeAdd adds x to the slot, returning an error on overflow.
func (s Slot) SafeAdd(x uint64) (Slot, error) {
	if uint64(s) > math.MaxUint64-x {
		return 0, errors.Wrapf(ErrOverflow, "slot %d + %d", s, x)
	}
	return s + Slot(x), nil
}

// SafeSub subtracts x from the slot, returning an error on underflow.
func (s Slot) SafeSub(x uint64) (Slot, error) {
	if uint64(s) < x {
		return 0, errors.Wrapf(ErrUnderflow, "slot %d - %d", s, x)
	}
	return s - Slot(x), nil
}

// SafeDivSlot divides by another slot value, returning an error for a zero divisor.
func (s Slot) SafeDivSlot(x Slot) (Slot, error) {
	if x == 0 {
		return 0, fmt.Errorf("divide by zero slot %d / %d", s, x)
	}
	return s / x, nil
}

// Epoch represents a single epoch.
type Epoch uint64

// SafeAdd adds x to the epoch, returning an error on overflow.
func (e Epoch) SafeAdd(x uint64) (Epoch, error) {
	if uint64(e) > math.MaxUint64-x {
		return 0, errors.Wrapf(ErrOverflow, "epoch %d + %d", e, x)
	}
	return e + Epoch(x), nil
}

// SafeDiv divides the epoch by x, returning an error for a zero divisor.
func (e Epoch) SafeDiv(x uint64) (Epoch, error) {
	if x == 0 {
		return 0, fmt.Errorf("divide by zero epoch %d / %d", e, x)
	}
	return e / Epoch(x), nil
}

// ValidatorIndex in the beacon chain registry.
type ValidatorIndex uint64
