// SPDX-License-Identifier: MIT
// Package quantity_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures shared across the test files.
//   - Keep tolerances in one place.

package quantity_test

import (
	"testing"

	"github.com/katalvlaran/uncertain/quantity"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance used for non-exact float comparisons.
const tol = 1e-9

// fixtures x = 1 ± 3, y = 2 ± 4, z = 1 ± 3 (same as x, distinct instance).
func fixtures() (x, y, z *quantity.Quantity) {
	return quantity.New(1, 3), quantity.New(2, 4), quantity.New(1, 3)
}

// requireQuantity asserts a scalar result within tol.
func requireQuantity(t *testing.T, got *quantity.Quantity, value, err float64) {
	t.Helper()
	require.NotNil(t, got)
	require.False(t, got.IsArray(), "expected scalar quantity, got %v", got)
	require.InDelta(t, value, got.Value(), tol, "value of %v", got)
	require.InDelta(t, err, got.Uncertainty(), tol, "error of %v", got)
}

// requireArray asserts an array-valued result within tol.
func requireArray(t *testing.T, got *quantity.Quantity, values, errs []float64) {
	t.Helper()
	require.NotNil(t, got)
	require.True(t, got.IsArray(), "expected array quantity, got %v", got)
	require.InDeltaSlice(t, values, got.Values(), tol, "values of %v", got)
	require.InDeltaSlice(t, errs, got.Uncertainties(), tol, "errors of %v", got)
}
