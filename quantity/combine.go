// SPDX-License-Identifier: MIT

package quantity

import (
	"math"

	"github.com/cockroachdb/errors"
)

const opCombine = "Combine"

// Equal reports whether a and b have identical shape mode, values and errors.
// The comparison is exact (no tolerance) and never fails: nil operands or
// mismatched shapes compare unequal, except that two nils are equal.
//
// Elements compare with ==, so a NaN value or error is unequal to everything,
// itself included: q.Equal(q) is false when q holds a NaN. Use math.IsNaN on
// Values and Uncertainties to detect that case.
func Equal(a, b *Quantity) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.array != b.array || len(a.values) != len(b.values) {
		return false
	}
	for i := range a.values {
		if a.values[i] != b.values[i] || a.errs[i] != b.errs[i] {
			return false
		}
	}

	return true
}

// Equal reports whether q and o are exactly equal. See Equal.
func (q *Quantity) Equal(o *Quantity) bool { return Equal(q, o) }

// ApproxEqual reports whether a and b share a shape and every value and error
// satisfies |x-y| ≤ atol + rtol*|y|. Negative tolerances are treated as |tol|.
func ApproxEqual(a, b *Quantity, rtol, atol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.array != b.array {
		return false
	}

	return ewAllClose(a.values, b.values, rtol, atol) && ewAllClose(a.errs, b.errs, rtol, atol)
}

// Combine returns the inverse-variance weighted mean of two independent
// measurements of the same quantity:
//
//	w = 1/e²,  value = (wa·a + wb·b)/(wa + wb),  error = sqrt(1/(wa + wb))
//
// Arrays combine elementwise; a scalar broadcasts against an array.
//
// Errors:
//   - ErrDomain if any input error is zero (infinite weight).
//   - ErrConstruction on nil operands or array length mismatch.
func Combine(a, b *Quantity) (*Quantity, error) {
	x, y, err := resolvePair(opCombine, a, b)
	if err != nil {
		return nil, err
	}

	out, err := ewBinary(opCombine, x, y, combineQQ)
	if err != nil && errors.Is(err, ErrDomain) {
		return nil, errors.WithHint(err, "inputs to Combine must have strictly positive error")
	}

	return out, err
}

// Combine returns the weighted mean of q and o. See Combine.
func (q *Quantity) Combine(o *Quantity) (*Quantity, error) { return Combine(q, o) }

func combineQQ(av, ae, bv, be float64) (float64, float64, string) {
	if ae == 0 || be == 0 {
		return 0, 0, "zero error (infinite weight)"
	}
	wa, wb := 1/(ae*ae), 1/(be*be)
	sum := wa + wb

	return (wa*av + wb*bv) / sum, math.Sqrt(1 / sum), ""
}
