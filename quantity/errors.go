// SPDX-License-Identifier: MIT
// Package quantity: sentinel error set.
// All operations return (wrapped) sentinels from this file; callers match them
// with errors.Is. User-triggered conditions never panic; only the Must*
// constructors panic, and only on invalid fixtures (programmer error).

package quantity

import (
	"github.com/cockroachdb/errors"
)

// NOTE ON WRAPPING
// ----------------
// Sentinels are never returned bare from public functions: every call site
// wraps with the operation tag and the offending operand pair via
// quantityErrorf, so messages read "Div: divisor value is zero: 1 +/- 3 / 0".
// errors.Is keeps matching the sentinel through the wrap.

var (
	// ErrConstruction is returned when a value/error pair cannot form a
	// Quantity: array length mismatch, empty arrays, mixed scalar/array
	// shapes, unsupported Go types, or setters that would break the shape.
	ErrConstruction = errors.New("quantity: invalid value/error pair")

	// ErrDomain is returned when an operation is mathematically undefined for
	// its inputs: zero divisors, non-positive power bases with fractional or
	// uncertain exponents, zero-error inputs to Combine, zero combined error
	// in statistics, or statistics over mixed scalar/array operands.
	ErrDomain = errors.New("quantity: domain error")

	// ErrUnsupportedOperation is returned for operand combinations that have
	// no propagation rule: a constant base raised to a Quantity exponent, or
	// a binary operation where neither side is a Quantity.
	ErrUnsupportedOperation = errors.New("quantity: unsupported operation")

	// ErrNilQuantity is returned when a nil *Quantity is used as an operand.
	// It wraps ErrConstruction, so both match.
	ErrNilQuantity = errors.Wrap(ErrConstruction, "quantity: nil quantity")
)

// quantityErrorf wraps a sentinel with the operation tag and a formatted detail.
func quantityErrorf(op string, sentinel error, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, op+": "+format, args...)
}
