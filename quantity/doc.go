// Package quantity propagates measurement uncertainty through arithmetic.
//
// 🚀 What is a Quantity?
//
//	A value paired with its uncertainty (one standard deviation), e.g. 1 ± 3.
//	Every operation returns a new Quantity whose error follows the standard
//	first-order propagation formulas for independent operands:
//	  • a ± b  → sqrt(ea² + eb²)
//	  • a · b, a / b → relative errors added in quadrature
//	  • a ** b → partial derivatives in both base and exponent
//
// ✨ Key features:
//   - scalar and array-valued quantities on one code path (elementwise, with
//     scalar broadcast)
//   - constants (Scalar, Vector) as zero-error operands on either side of + - * /
//   - Combine: inverse-variance weighted mean of two measurements
//   - StdDevDifference, ChiSquared, ChiSquaredDOF for comparing measurements
//   - undefined operations fail with ErrDomain instead of returning NaN
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/uncertain/quantity"
//
//	x := quantity.New(1, 3)
//	y := quantity.New(2, 4)
//
//	sum, _ := x.Add(y)                 // 3 +/- 5
//	scaled, _ := quantity.Mul(quantity.Scalar(2), x) // 2 +/- 6
//	mean, _ := x.Combine(y)            // 1.36 +/- 2.4
//
// Errors:
//   - ErrConstruction         — invalid value/error pair or shape mismatch.
//   - ErrDomain               — zero divisors, undefined logarithms, zero-error Combine.
//   - ErrUnsupportedOperation — constant ** Quantity, constant-only expressions.
//
// Concurrency:
//
//	Arithmetic is pure. A *Quantity mutated through its setters must not be
//	shared across goroutines without external synchronization.
package quantity
