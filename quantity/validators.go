// SPDX-License-Identifier: MIT
// Package: quantity
//
// Purpose:
//  - Provide a single source of truth for shape checks shared by
//    constructors, setters, arithmetic kernels and statistics.
//  - Return wrapped sentinels tagged with the caller's operation name.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on the success path.

package quantity

// validatePair ensures values/errs can form an array-valued Quantity.
// Complexity: O(1).
func validatePair(op string, values, errs []float64) error {
	if len(values) == 0 {
		return quantityErrorf(op, ErrConstruction, "empty value array (value=%v, error=%v)", values, errs)
	}
	if len(values) != len(errs) {
		return quantityErrorf(op, ErrConstruction,
			"length mismatch: len(value)=%d, len(error)=%d (value=%v, error=%v)",
			len(values), len(errs), values, errs)
	}

	return nil
}

// validateBroadcast returns the result length of a binary elementwise
// operation and whether the result is array-valued. Scalars broadcast
// against arrays; two arrays must agree in length.
// Complexity: O(1).
func validateBroadcast(op string, a, b operand) (n int, array bool, err error) {
	switch {
	case a.array && b.array:
		if a.len() != b.len() {
			return 0, false, quantityErrorf(op, ErrConstruction,
				"array length mismatch: %d vs %d", a.len(), b.len())
		}
		return a.len(), true, nil
	case a.array:
		return a.len(), true, nil
	case b.array:
		return b.len(), true, nil
	default:
		return 1, false, nil
	}
}

// validateSameMode ensures both quantities are scalar or both array-valued.
// Used by the statistics functions, where mixing modes is a domain error.
// Complexity: O(1).
func validateSameMode(op string, a, b *Quantity) error {
	if a == nil || b == nil {
		return quantityErrorf(op, ErrNilQuantity, "operands %v, %v", a, b)
	}
	if a.array != b.array {
		return quantityErrorf(op, ErrDomain, "mixed scalar/array operands: %v, %v", a, b)
	}

	return nil
}

// validateUsable rejects nil and zero-value quantities. Only New, NewArray
// and From build a Quantity with at least one element.
// Complexity: O(1).
func validateUsable(op string, q *Quantity) error {
	if q == nil {
		return quantityErrorf(op, ErrNilQuantity, "operand is nil")
	}
	if len(q.values) == 0 {
		return quantityErrorf(op, ErrConstruction, "zero-value Quantity; build it with New or NewArray")
	}

	return nil
}
