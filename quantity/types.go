// SPDX-License-Identifier: MIT

package quantity

// Quantity is a measured value paired with its uncertainty (one standard
// deviation). It is either scalar or array-valued; the mode is fixed at
// construction. Array-valued quantities hold equal-length value and error
// sequences and every operation applies elementwise.
//
// Arithmetic never mutates its operands. The setters (SetValue, SetErrors,
// Update, ...) are the only mutation surface and re-validate the shape
// invariant before writing. A Quantity has no internal locking; share it
// across goroutines only with external synchronization.
//
// The zero value holds no elements and is not usable: operations on it
// return ErrConstruction and the scalar accessors return NaN. Build
// quantities with New, NewArray or From.
type Quantity struct {
	values []float64 // len ≥ 1; exactly 1 when !array
	errs   []float64 // len(errs) == len(values) at all times
	array  bool      // shape mode, fixed at construction
}

// Operand is the right- or left-hand side of a binary operation.
// The set is closed: *Quantity, Scalar and Vector. Constants behave as
// quantities with zero error.
type Operand interface {
	// resolve returns the operand payload in kernel form.
	resolve(op string) (operand, error)
}

// Scalar is a plain numeric constant operand (error == 0).
type Scalar float64

// Vector is an array-valued constant operand (all errors == 0).
type Vector []float64

// operand is the kernel view of any Operand: a tagged union over
// {Quantity, Constant} with the array mode carried alongside.
type operand struct {
	values   []float64
	errs     []float64 // nil for constants
	array    bool
	quantity bool
}

// at returns element i, broadcasting scalars.
func (o operand) at(i int) (v, e float64) {
	if !o.array {
		i = 0
	}
	v = o.values[i]
	if o.quantity {
		e = o.errs[i]
	}

	return v, e
}

func (o operand) len() int { return len(o.values) }

func (q *Quantity) resolve(op string) (operand, error) {
	if err := validateUsable(op, q); err != nil {
		return operand{}, err
	}

	return operand{values: q.values, errs: q.errs, array: q.array, quantity: true}, nil
}

func (c Scalar) resolve(string) (operand, error) {
	return operand{values: []float64{float64(c)}}, nil
}

func (c Vector) resolve(op string) (operand, error) {
	if len(c) == 0 {
		return operand{}, quantityErrorf(op, ErrConstruction, "empty constant vector")
	}

	return operand{values: c, array: true}, nil
}
