// SPDX-License-Identifier: MIT
// Package: quantity
//
// Purpose:
//   - Provide small, *private* element-wise and broadcast kernels (ew*) so every
//     operator and statistic shares one loop, one shape check and one domain
//     guard instead of duplicating them per operator.
//   - Keep scalar and array-valued quantities on the same code path: a scalar
//     is a length-1 payload that broadcasts against arrays.
//
// Design:
//   - All ew* are unexported; the public operators in arithmetic.go,
//     combine.go and statistics.go are thin dispatchers over them.
//   - Kernels (ewFunc) are pure functions of one element pair and report a
//     domain violation as a reason string; ewBinary owns the error wrapping.
//   - A NaN produced from non-NaN inputs is a domain error, so kernels only
//     need explicit checks where they want a precise reason.
//
// Determinism & Performance:
//   - Fixed loop order 0..n-1.
//   - Exactly one allocation pair (values, errors) per result; O(n) time.
//   - The first failing index aborts the loop; no partial result escapes.
//
// AI-Hints:
//   - Add a new operator as an ewFunc plus a dispatcher; do not write a loop.
//   - Return a reason from the kernel when the failure mode has a name
//     (zero divisor, negative base); leave the NaN guard for the rest.

package quantity

import (
	"fmt"
	"math"
)

// ewFunc computes one result element from one element of each operand.
// A non-empty reason marks the element as outside the operation's domain.
type ewFunc func(av, ae, bv, be float64) (v, e float64, reason string)

// ewBinary applies f elementwise over a and b with scalar broadcast.
// Time: O(n). Space: O(n).
//
// Errors:
//   - ErrConstruction on array length mismatch.
//   - ErrDomain if f reports a reason, or produces NaN from non-NaN inputs.
func ewBinary(op string, a, b operand, f ewFunc) (*Quantity, error) {
	// Resolve the result length and mode (scalar broadcasts to arrays).
	n, array, err := validateBroadcast(op, a, b)
	if err != nil {
		return nil, err
	}

	// Allocate the result pair once (O(n)).
	values := make([]float64, n)
	errs := make([]float64, n)
	for i := 0; i < n; i++ {
		av, ae := a.at(i) // scalar operands repeat element 0
		bv, be := b.at(i)
		v, e, reason := f(av, ae, bv, be)
		// NaN out of non-NaN inputs (Inf-Inf, Inf*0, ...) is undefined.
		if reason == "" && (math.IsNaN(v) || math.IsNaN(e)) && !anyNaN(av, ae, bv, be) {
			reason = reasonUndefined
		}
		if reason != "" {
			// Arrays name the failing element; scalars have only one.
			if array {
				return nil, quantityErrorf(op, ErrDomain, "%s at index %d (%v, %v)", reason, i, a, b)
			}
			return nil, quantityErrorf(op, ErrDomain, "%s (%v, %v)", reason, a, b)
		}
		values[i], errs[i] = v, e // one write per slice
	}

	return &Quantity{values: values, errs: errs, array: array}, nil
}

// ewUnary applies f to every (value, error) element of q.
// Time: O(n). Space: O(n).
func ewUnary(q *Quantity, f func(v, e float64) (float64, float64)) *Quantity {
	// Same shape and mode as q; never aliases q's storage.
	out := &Quantity{
		values: make([]float64, len(q.values)),
		errs:   make([]float64, len(q.errs)),
		array:  q.array,
	}
	for i := range q.values {
		out.values[i], out.errs[i] = f(q.values[i], q.errs[i]) // one read, one write
	}

	return out
}

// ewAllClose checks |x-y| ≤ atol + rtol*|y| elementwise on two slices of
// equal length. Tolerances are normalized to their absolute values.
// Time: O(n). Space: O(1).
func ewAllClose(x, y []float64, rtol, atol float64) bool {
	if len(x) != len(y) {
		return false
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for i := range x {
		// Exact match short-circuits; covers equal infinities.
		if x[i] == y[i] {
			continue
		}
		// Opposite infinities give NaN and fail the check.
		if math.Abs(x[i]-y[i]) > atol+rtol*math.Abs(y[i]) || math.IsNaN(x[i]-y[i]) {
			return false
		}
	}

	return true
}

func anyNaN(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) {
			return true
		}
	}

	return false
}

// String renders the operand for error messages: quantities use the
// Quantity form, constants print their bare values.
func (o operand) String() string {
	if o.quantity {
		return (&Quantity{values: o.values, errs: o.errs, array: o.array}).String()
	}
	if o.array {
		return fmt.Sprint(o.values)
	}
	if len(o.values) == 0 {
		return "<nil>"
	}

	return fmt.Sprint(o.values[0])
}
