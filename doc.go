// Package uncertain is a small, dependency-light toolkit for carrying
// measurement uncertainty ("error") through numeric code.
//
// 🚀 What is uncertain?
//
//	A pure-Go library that pairs every value with its standard deviation and
//	propagates it through arithmetic using first-order (independent-operand)
//	formulas:
//		• Quantities: scalar or array-valued (value, error) pairs
//		• Operators: + - * / ** and negation, identity, absolute value
//		• Combination: inverse-variance weighted mean of two measurements
//		• Statistics: std-dev difference, chi-squared, chi-squared per dof
//
// ✨ Why choose uncertain?
//
//   - One type for scalars and arrays – elementwise with scalar broadcast
//   - Explicit operands – constants are typed (Scalar, Vector), never guessed
//   - Fail fast – undefined math returns ErrDomain, not NaN
//   - No hidden state – every operation returns a fresh Quantity
//
// Everything lives in one subpackage:
//
//	quantity/ — the Quantity type, propagation operators, Combine and statistics
//
// Quick example:
//
//	x := quantity.New(1, 3)
//	y := quantity.New(2, 4)
//	p, _ := x.Mul(y) // 2 +/- 7.211102550927978
//
//	go get github.com/katalvlaran/uncertain/quantity
package uncertain
