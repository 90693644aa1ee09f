// SPDX-License-Identifier: MIT

package quantity_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/uncertain/quantity"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleQuantity
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two measurements x = 1 ± 3 and y = 2 ± 4 combined with constants and
//	with each other.
//
// Use case:
//
//	Interactive error propagation for lab data.
func ExampleQuantity() {
	x := quantity.New(1, 3)
	y := quantity.New(2, 4)

	scaled, _ := quantity.Mul(quantity.Scalar(2), x)
	squared, _ := x.Pow(quantity.Scalar(2))
	sum, _ := x.Add(y)
	diff, _ := x.Sub(y)
	shifted, _ := x.Add(quantity.Scalar(4))
	product, _ := x.Mul(y)
	ratio, _ := x.Div(y)

	fmt.Println("2*x  =", scaled)
	fmt.Println("x**2 =", squared)
	fmt.Println("x+y  =", sum)
	fmt.Println("x-y  =", diff)
	fmt.Println("x+4  =", shifted)
	fmt.Printf("x*y  = %.4f\n", product)
	fmt.Printf("x/y  = %.4f\n", ratio)
	// Output:
	// 2*x  = 2 +/- 6
	// x**2 = 1 +/- 6
	// x+y  = 3 +/- 5
	// x-y  = -1 +/- 5
	// x+4  = 5 +/- 3
	// x*y  = 2.0000 +/- 7.2111
	// x/y  = 0.5000 +/- 1.8028
}

// ExampleCombine fuses two measurements of the same quantity.
func ExampleCombine() {
	x := quantity.New(1, 3)
	y := quantity.New(2, 4)

	mean, err := quantity.Combine(x, y)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.2f\n", mean)
	// Output:
	// 1.36 +/- 2.40
}

// ExampleNewArray propagates errors elementwise with a scalar constant.
func ExampleNewArray() {
	x, err := quantity.NewArray([]float64{1, 2}, []float64{3, 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	doubled, _ := x.Mul(quantity.Scalar(2))
	fmt.Println(doubled)
	// Output:
	// [2 4] +/- [6 4]
}

// ExampleChiSquaredDOF compares a measured series against a reference.
func ExampleChiSquaredDOF() {
	measured := quantity.MustNewArray([]float64{2, 3}, []float64{0.2, 0.3})
	reference := quantity.MustNewArray([]float64{1, 3}, []float64{0.1, 0.3})

	chi2, _ := quantity.ChiSquared(measured, reference)
	perDOF, _ := quantity.ChiSquaredDOF(measured, reference)
	fmt.Printf("chi2=%.2f chi2/dof=%.3f\n", chi2, perDOF)
	// Output:
	// chi2=12.50 chi2/dof=6.250
}

// ExampleStdDevDifference compares two scalar measurements. The result has
// one entry per element, so a scalar pair yields a single-element slice.
func ExampleStdDevDifference() {
	x := quantity.New(1, 3)
	y := quantity.New(2, 4)

	d, err := quantity.StdDevDifference(x, y)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%d %.1f sigma\n", len(d), d[0])
	// Output:
	// 1 0.2 sigma
}

// ExampleDiv shows the domain policy: zero divisors fail instead of
// producing Inf or NaN.
func ExampleDiv() {
	_, err := quantity.Div(quantity.New(1, 3), quantity.Scalar(0))
	fmt.Println(errors.Is(err, quantity.ErrDomain))
	// Output:
	// true
}
