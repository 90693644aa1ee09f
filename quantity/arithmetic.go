// SPDX-License-Identifier: MIT
// Package: quantity
//
// Purpose:
//   - First-order error propagation for + - * / ** and the unary operators,
//     assuming independent operands.
//   - Resolve operand kind {Quantity, Constant} once per call with a total
//     type switch, then run a single elementwise kernel.
//
// Propagation rules (elementwise, a/b quantities, c constant):
//
//	a + b, a - b   value a±b     error sqrt(ea² + eb²)
//	a ± c, c ± a   value a±c     error ea
//	a * b          value a·b     error sqrt((b·ea)² + (a·eb)²)       = |ab|·sqrt((ea/a)² + (eb/b)²)
//	a * c          value a·c     error ea·c
//	a / b          value a/b     error sqrt((ea/b)² + (a·eb/b²)²)    = |a/b|·sqrt((ea/a)² + (eb/b)²)
//	a / c          value a/c     error ea/c
//	c / a          value c/a     error c·ea/a²
//	a ** b         value a^b     error sqrt((b·a^(b-1)·ea)² + (a^b·ln(a)·eb)²)
//	a ** c         value a^c     error c·a^(c-1)·ea                   = a^c·ea·c/a
//
// Design:
//   - Quantity-Quantity rules combine in quadrature and are never negative.
//   - Constant-operand rules scale the error linearly and keep the sign of
//     the scale factor, so a*(-4) carries a negative error.
//   - The absolute forms of the product and quotient rules are algebraically
//     identical to the relative-error forms and stay defined when a value is 0.
//
// Domain policy: undefined elements return ErrDomain; no NaN is ever returned
// for finite inputs. c ** a and constant-only expressions return
// ErrUnsupportedOperation.

package quantity

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Operation name constants for unified error wrapping.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opDiv      = "Div"
	opFloorDiv = "FloorDiv"
	opPow      = "Pow"
)

// Domain reasons reported by kernels.
const (
	reasonZeroDivisor      = "divisor value is zero"
	reasonNonPositiveBase  = "non-positive base with uncertain exponent"
	reasonNegativeBaseFrac = "negative base with fractional exponent"
	reasonZeroBaseExponent = "zero base with exponent below 1"
	reasonUndefined        = "undefined result"
)

// resolvePair converts both operands into kernel form.
func resolvePair(op string, a, b Operand) (x, y operand, err error) {
	if a == nil || b == nil {
		return operand{}, operand{}, quantityErrorf(op, ErrNilQuantity, "operands %v, %v", a, b)
	}
	if x, err = a.resolve(op); err != nil {
		return operand{}, operand{}, err
	}
	if y, err = b.resolve(op); err != nil {
		return operand{}, operand{}, err
	}

	return x, y, nil
}

func unsupported(op string, x, y operand) error {
	return errors.WithHint(
		quantityErrorf(op, ErrUnsupportedOperation, "no propagation rule for constant operands (%v, %v)", x, y),
		"give the constant an explicit zero error with New(c, 0)",
	)
}

// Add returns a + b. Either side may be a constant; the sum commutes.
func Add(a, b Operand) (*Quantity, error) {
	x, y, err := resolvePair(opAdd, a, b)
	if err != nil {
		return nil, err
	}

	switch {
	case x.quantity && y.quantity:
		return ewBinary(opAdd, x, y, addQQ)
	case x.quantity:
		return ewBinary(opAdd, x, y, addQC)
	case y.quantity:
		return ewBinary(opAdd, y, x, addQC)
	default:
		return nil, unsupported(opAdd, x, y)
	}
}

// Sub returns a - b. Either side may be a constant.
func Sub(a, b Operand) (*Quantity, error) {
	x, y, err := resolvePair(opSub, a, b)
	if err != nil {
		return nil, err
	}

	switch {
	case x.quantity && y.quantity:
		return ewBinary(opSub, x, y, subQQ)
	case x.quantity:
		return ewBinary(opSub, x, y, subQC)
	case y.quantity:
		return ewBinary(opSub, x, y, subCQ)
	default:
		return nil, unsupported(opSub, x, y)
	}
}

// Mul returns a * b. Either side may be a constant; the product commutes.
func Mul(a, b Operand) (*Quantity, error) {
	x, y, err := resolvePair(opMul, a, b)
	if err != nil {
		return nil, err
	}

	switch {
	case x.quantity && y.quantity:
		return ewBinary(opMul, x, y, mulQQ)
	case x.quantity:
		return ewBinary(opMul, x, y, mulQC)
	case y.quantity:
		return ewBinary(opMul, y, x, mulQC)
	default:
		return nil, unsupported(opMul, x, y)
	}
}

// Div returns a / b. Either side may be a constant.
//
// Errors:
//   - ErrDomain if any divisor value is zero.
func Div(a, b Operand) (*Quantity, error) {
	return div(opDiv, a, b)
}

// FloorDiv is an alias of Div: floor division follows the true-division rule.
func FloorDiv(a, b Operand) (*Quantity, error) {
	return div(opFloorDiv, a, b)
}

func div(op string, a, b Operand) (*Quantity, error) {
	x, y, err := resolvePair(op, a, b)
	if err != nil {
		return nil, err
	}

	switch {
	case x.quantity && y.quantity:
		return ewBinary(op, x, y, divQQ)
	case x.quantity:
		return ewBinary(op, x, y, divQC)
	case y.quantity:
		return ewBinary(op, x, y, divCQ)
	default:
		return nil, unsupported(op, x, y)
	}
}

// Pow returns a ** b. The base must be a *Quantity; the exponent may be a
// *Quantity or a constant.
//
// Errors:
//   - ErrUnsupportedOperation if the base is a constant.
//   - ErrDomain for a non-positive base with a *Quantity exponent, a negative
//     base with a fractional constant exponent, or a zero base with a
//     constant exponent in (-inf, 1) other than 0.
func Pow(a, b Operand) (*Quantity, error) {
	x, y, err := resolvePair(opPow, a, b)
	if err != nil {
		return nil, err
	}

	switch {
	case x.quantity && y.quantity:
		return ewBinary(opPow, x, y, powQQ)
	case x.quantity:
		return ewBinary(opPow, x, y, powQC)
	default:
		return nil, unsupported(opPow, x, y)
	}
}

// ---------- kernels (av, ae) ∘ (bv, be) ----------

func addQQ(av, ae, bv, be float64) (float64, float64, string) {
	// Independent errors add in quadrature.
	return av + bv, math.Sqrt(ae*ae + be*be), ""
}

func addQC(av, ae, c, _ float64) (float64, float64, string) {
	return av + c, ae, ""
}

func subQQ(av, ae, bv, be float64) (float64, float64, string) {
	return av - bv, math.Sqrt(ae*ae + be*be), ""
}

func subQC(av, ae, c, _ float64) (float64, float64, string) {
	return av - c, ae, ""
}

func subCQ(c, _, bv, be float64) (float64, float64, string) {
	return c - bv, be, ""
}

func mulQQ(av, ae, bv, be float64) (float64, float64, string) {
	x, y := bv*ae, av*be // partial contributions ∂(ab)/∂a·ea and ∂(ab)/∂b·eb

	return av * bv, math.Sqrt(x*x + y*y), ""
}

func mulQC(av, ae, c, _ float64) (float64, float64, string) {
	// Linear scale; the error keeps the sign of c.
	return av * c, ae * c, ""
}

func divQQ(av, ae, bv, be float64) (float64, float64, string) {
	if bv == 0 {
		return 0, 0, reasonZeroDivisor
	}
	x, y := ae/bv, av*be/(bv*bv) // absolute form, defined for av == 0

	return av / bv, math.Sqrt(x*x + y*y), ""
}

func divQC(av, ae, c, _ float64) (float64, float64, string) {
	if c == 0 {
		return 0, 0, reasonZeroDivisor
	}

	// Linear scale by 1/c; the error keeps the sign of c.
	return av / c, ae / c, ""
}

func divCQ(c, _, bv, be float64) (float64, float64, string) {
	if bv == 0 {
		return 0, 0, reasonZeroDivisor
	}

	// Scale by c of the 1/b rule; the error keeps the sign of c.
	return c / bv, c * be / (bv * bv), ""
}

func powQQ(av, ae, bv, be float64) (float64, float64, string) {
	if av <= 0 {
		return 0, 0, reasonNonPositiveBase
	}
	v := math.Pow(av, bv)
	x := bv * math.Pow(av, bv-1) * ae // base term
	y := v * math.Log(av) * be        // exponent term, needs av > 0

	return v, math.Sqrt(x*x + y*y), ""
}

func powQC(av, ae, c, _ float64) (float64, float64, string) {
	switch {
	case c == 0:
		return 1, 0, "" // x^0 is exactly 1, even for x == 0
	case av < 0 && c != math.Trunc(c):
		return 0, 0, reasonNegativeBaseFrac
	case av == 0 && c < 1:
		return 0, 0, reasonZeroBaseExponent
	}

	// c·a^(c-1)·ea equals a^c·ea·c/a and stays defined at a == 0 for c ≥ 1.
	return math.Pow(av, c), c * math.Pow(av, c-1) * ae, ""
}

// ---------- unary ----------

// Neg returns -q with the error unchanged.
func (q *Quantity) Neg() *Quantity {
	return ewUnary(q, func(v, e float64) (float64, float64) { return -v, e })
}

// Pos returns a copy of q.
func (q *Quantity) Pos() *Quantity {
	return ewUnary(q, func(v, e float64) (float64, float64) { return v, e })
}

// Abs returns |q| with the error unchanged.
func (q *Quantity) Abs() *Quantity {
	return ewUnary(q, func(v, e float64) (float64, float64) { return math.Abs(v), e })
}

// ---------- method forms (receiver is the left-hand side) ----------

// Add returns q + o.
func (q *Quantity) Add(o Operand) (*Quantity, error) { return Add(q, o) }

// Sub returns q - o.
func (q *Quantity) Sub(o Operand) (*Quantity, error) { return Sub(q, o) }

// Mul returns q * o.
func (q *Quantity) Mul(o Operand) (*Quantity, error) { return Mul(q, o) }

// Div returns q / o.
func (q *Quantity) Div(o Operand) (*Quantity, error) { return Div(q, o) }

// FloorDiv returns q / o (alias of Div).
func (q *Quantity) FloorDiv(o Operand) (*Quantity, error) { return FloorDiv(q, o) }

// Pow returns q ** o.
func (q *Quantity) Pow(o Operand) (*Quantity, error) { return Pow(q, o) }
