// SPDX-License-Identifier: MIT
// Package: quantity
//
// Purpose:
//   - Compare two measurements through the propagation kernels:
//     StdDevDifference -> |(a-b).value / (a-b).error| per element
//     ChiSquared       -> Σ (1 - (a/b).value)² / (a/b).error²
//     ChiSquaredDOF    -> ChiSquared / dof, dof = Len(a) for arrays, 1 for scalars
//
// Both operands must share the scalar/array mode; mixing them is ErrDomain.

package quantity

import "math"

// Operation name constants for unified error wrapping.
const (
	opStdDevDifference = "StdDevDifference"
	opChiSquared       = "ChiSquared"
	opChiSquaredDOF    = "ChiSquaredDOF"
)

// StdDevDifference returns, per element, the distance between a and b in
// units of their combined standard deviation. Scalars yield a one-element
// slice; read it as d[0].
//
// Errors:
//   - ErrDomain on mixed scalar/array operands or a zero combined error.
//   - ErrConstruction on nil operands or array length mismatch.
func StdDevDifference(a, b *Quantity) ([]float64, error) {
	if err := validateSameMode(opStdDevDifference, a, b); err != nil {
		return nil, err
	}
	d, err := Sub(a, b)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(d.values))
	for i, v := range d.values {
		e := d.errs[i]
		if e == 0 {
			return nil, quantityErrorf(opStdDevDifference, ErrDomain,
				"zero combined error at index %d (%v, %v)", i, a, b)
		}
		out[i] = math.Abs(v / e)
	}

	return out, nil
}

// ChiSquared returns Σ (1 - r.value)² / r.error² with r = a/b, summed over all
// elements.
//
// Errors:
//   - ErrDomain on mixed scalar/array operands, a zero value in b, or a zero
//     ratio error.
//   - ErrConstruction on nil operands or array length mismatch.
func ChiSquared(a, b *Quantity) (float64, error) {
	return chiSquared(opChiSquared, a, b)
}

// ChiSquaredDOF returns ChiSquared(a, b) divided by the degrees of freedom:
// Len(a) for array-valued operands, 1 for scalars.
func ChiSquaredDOF(a, b *Quantity) (float64, error) {
	chi2, err := chiSquared(opChiSquaredDOF, a, b)
	if err != nil {
		return 0, err
	}
	dof := 1
	if a.array {
		dof = len(a.values)
	}

	return chi2 / float64(dof), nil
}

func chiSquared(op string, a, b *Quantity) (float64, error) {
	if err := validateSameMode(op, a, b); err != nil {
		return 0, err
	}
	r, err := div(op, a, b)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i, v := range r.values {
		e := r.errs[i]
		if e == 0 {
			return 0, quantityErrorf(op, ErrDomain, "zero ratio error at index %d (%v, %v)", i, a, b)
		}
		d := 1 - v
		sum += d * d / (e * e)
	}

	return sum, nil
}
