package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireClose fails the test unless got is within tol of want, with tol
// scaled by |want| when |want| exceeds 1. Quadrature-backed matrix elements
// carry relative rather than absolute error, so large values get a
// proportionally wider window.
func RequireClose(t *testing.T, want, got, tol float64) {
	t.Helper()
	scale := math.Abs(want)
	if scale < 1 {
		scale = 1
	}
	require.InDelta(t, want, got, tol*scale)
}
