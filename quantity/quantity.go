// SPDX-License-Identifier: MIT

package quantity

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opNewArray     = "NewArray"
	opFrom         = "From"
	opSetValue     = "SetValue"
	opSetError     = "SetError"
	opSetValues    = "SetValues"
	opSetErrors    = "SetErrors"
	opUpdate       = "Update"
	opPercentError = "PercentError"
)

// New returns a scalar Quantity value ± err.
func New(value, err float64) *Quantity {
	return &Quantity{values: []float64{value}, errs: []float64{err}}
}

// NewArray returns an array-valued Quantity. values and errs are copied.
//
// Errors:
//   - ErrConstruction if either slice is empty or their lengths differ.
func NewArray(values, errs []float64) (*Quantity, error) {
	if err := validatePair(opNewArray, values, errs); err != nil {
		return nil, err
	}

	return &Quantity{values: clone(values), errs: clone(errs), array: true}, nil
}

// MustNewArray is NewArray that panics on error. Intended for fixtures.
func MustNewArray(values, errs []float64) *Quantity {
	q, err := NewArray(values, errs)
	if err != nil {
		panic(fmt.Sprintf("quantity: MustNewArray: %v", err))
	}

	return q
}

// From builds a Quantity from dynamically typed inputs. Accepted shapes:
//   - scalar: any Go integer or float kind, or Scalar, for both value and err;
//   - array:  []float64, []int or Vector for both value and err.
//
// Any other combination, including a scalar value with an array error,
// returns ErrConstruction naming the rejected pair.
func From(value, err interface{}) (*Quantity, error) {
	if v, ok := toFloat(value); ok {
		e, ok := toFloat(err)
		if !ok {
			return nil, quantityErrorf(opFrom, ErrConstruction,
				"scalar value requires scalar error (value=%v, error=%v)", value, err)
		}
		return New(v, e), nil
	}
	if vs, ok := toFloats(value); ok {
		es, ok := toFloats(err)
		if !ok {
			return nil, quantityErrorf(opFrom, ErrConstruction,
				"array value requires array error (value=%v, error=%v)", value, err)
		}
		return NewArray(vs, es)
	}

	return nil, quantityErrorf(opFrom, ErrConstruction,
		"unsupported types %T, %T (value=%v, error=%v)", value, err, value, err)
}

func toFloat(x interface{}) (float64, bool) {
	switch v := x.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case Scalar:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

func toFloats(x interface{}) ([]float64, bool) {
	switch v := x.(type) {
	case []float64:
		return v, true
	case Vector:
		return []float64(v), true
	case []int:
		out := make([]float64, len(v))
		for i, n := range v {
			out[i] = float64(n)
		}
		return out, true
	default:
		return nil, false
	}
}

// IsArray reports whether q is array-valued.
func (q *Quantity) IsArray() bool { return q.array }

// Len returns the number of elements: 1 for scalars.
func (q *Quantity) Len() int { return len(q.values) }

// Value returns the scalar value. For array-valued quantities it returns NaN;
// use Values.
func (q *Quantity) Value() float64 {
	if q.array || len(q.values) == 0 {
		return math.NaN()
	}

	return q.values[0]
}

// Uncertainty returns the scalar error. For array-valued quantities it
// returns NaN; use Uncertainties.
func (q *Quantity) Uncertainty() float64 {
	if q.array || len(q.errs) == 0 {
		return math.NaN()
	}

	return q.errs[0]
}

// Values returns a copy of the values (one element for scalars).
func (q *Quantity) Values() []float64 { return clone(q.values) }

// Uncertainties returns a copy of the errors (one element for scalars).
func (q *Quantity) Uncertainties() []float64 { return clone(q.errs) }

// PercentError returns error/value*100 for a scalar quantity.
// It is derived from the current pair on every call.
//
// Errors:
//   - ErrDomain if the value is zero.
//   - ErrConstruction if q is array-valued (use PercentErrors).
func (q *Quantity) PercentError() (float64, error) {
	if err := validateUsable(opPercentError, q); err != nil {
		return 0, err
	}
	if q.array {
		return 0, quantityErrorf(opPercentError, ErrConstruction, "array-valued quantity %v", q)
	}
	pc, err := q.PercentErrors()
	if err != nil {
		return 0, err
	}

	return pc[0], nil
}

// PercentErrors returns error/value*100 elementwise.
//
// Errors:
//   - ErrDomain if any value is zero.
func (q *Quantity) PercentErrors() ([]float64, error) {
	out := make([]float64, len(q.values))
	for i, v := range q.values {
		if v == 0 {
			return nil, quantityErrorf(opPercentError, ErrDomain, "zero value at index %d in %v", i, q)
		}
		out[i] = q.errs[i] / v * 100
	}

	return out, nil
}

// SetValue replaces the value of a scalar quantity.
func (q *Quantity) SetValue(v float64) error {
	if err := validateUsable(opSetValue, q); err != nil {
		return err
	}
	if q.array {
		return quantityErrorf(opSetValue, ErrConstruction, "scalar value %v for array-valued %v", v, q)
	}
	q.values[0] = v

	return nil
}

// SetError replaces the error of a scalar quantity.
func (q *Quantity) SetError(e float64) error {
	if err := validateUsable(opSetError, q); err != nil {
		return err
	}
	if q.array {
		return quantityErrorf(opSetError, ErrConstruction, "scalar error %v for array-valued %v", e, q)
	}
	q.errs[0] = e

	return nil
}

// SetValues replaces the values of an array-valued quantity. The new length
// must match the current error length; on failure q is unchanged.
func (q *Quantity) SetValues(values []float64) error {
	if !q.array {
		return quantityErrorf(opSetValues, ErrConstruction, "array value %v for scalar %v", values, q)
	}
	if err := validatePair(opSetValues, values, q.errs); err != nil {
		return err
	}
	q.values = clone(values)

	return nil
}

// SetErrors replaces the errors of an array-valued quantity. The new length
// must match the current value length; on failure q is unchanged.
func (q *Quantity) SetErrors(errs []float64) error {
	if !q.array {
		return quantityErrorf(opSetErrors, ErrConstruction, "array error %v for scalar %v", errs, q)
	}
	if err := validatePair(opSetErrors, q.values, errs); err != nil {
		return err
	}
	q.errs = clone(errs)

	return nil
}

// Update atomically replaces both fields of an array-valued quantity,
// allowing the length to change. On failure q is unchanged.
func (q *Quantity) Update(values, errs []float64) error {
	if !q.array {
		return quantityErrorf(opUpdate, ErrConstruction, "array pair for scalar %v", q)
	}
	if err := validatePair(opUpdate, values, errs); err != nil {
		return err
	}
	q.values, q.errs = clone(values), clone(errs)

	return nil
}

// Clone returns an independent deep copy of q.
func (q *Quantity) Clone() *Quantity {
	return &Quantity{values: clone(q.values), errs: clone(q.errs), array: q.array}
}

func clone(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)

	return out
}
