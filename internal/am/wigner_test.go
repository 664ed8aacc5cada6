package am

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func TestWigner3J_KnownValues(t *testing.T) {
	tests := []struct {
		name                   string
		j1, j2, j3, m1, m2, m3 float64
		want                   float64
	}{
		{"zero coupled pair", 1, 1, 0, 0, 0, 0, -1 / math.Sqrt(3)},
		{"stretched rank two", 1, 1, 2, 0, 0, 0, math.Sqrt(2.0 / 15.0)},
		{"half integer", 0.5, 0.5, 1, 0.5, 0.5, -1, -1 / math.Sqrt(3)},
		{"odd parity zero", 1, 1, 1, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wigner3J(tt.j1, tt.j2, tt.j3, tt.m1, tt.m2, tt.m3)
			assert.InDelta(t, tt.want, got, tol)
		})
	}
}

func TestWigner3J_LargeAngularMomenta(t *testing.T) {
	// (j j 0; m -m 0) = (-1)^(j-m)/Hat(j), here at a perimeter of 80.
	assert.InDelta(t, -1.0/9.0, Wigner3J(40, 40, 0, 5, -5, 0), tol)
	// Unitarity over j3 stresses the alternating Racah sums at high j.
	sum := 0.0
	for j3 := 2.0; j3 <= 40; j3++ {
		w := Wigner3J(20, 20, j3, 5, -3, -2)
		sum += (2*j3 + 1) * w * w
	}
	assert.InDelta(t, 1.0, sum, 1e-10)
}

func TestWigner3J_SelectionRules(t *testing.T) {
	// Projection sum not zero.
	assert.Zero(t, Wigner3J(1, 1, 1, 1, 0, 0))
	// Triangle violated.
	assert.Zero(t, Wigner3J(1, 1, 3, 0, 0, 0))
	// Projection out of range.
	assert.Zero(t, Wigner3J(1, 1, 2, 2, 0, -2))
}

func TestWigner3J_EvenPermutationInvariance(t *testing.T) {
	a := Wigner3J(1, 2, 3, 1, -1, 0)
	b := Wigner3J(2, 3, 1, -1, 0, 1)
	c := Wigner3J(3, 1, 2, 0, 1, -1)
	assert.InDelta(t, a, b, tol)
	assert.InDelta(t, a, c, tol)
}

func TestClebschGordan_KnownValues(t *testing.T) {
	tests := []struct {
		name                 string
		j1, m1, j2, m2, j, m float64
		want                 float64
	}{
		{"spin half triplet", 0.5, 0.5, 0.5, -0.5, 1, 0, 1 / math.Sqrt(2)},
		{"spin half singlet", 0.5, 0.5, 0.5, -0.5, 0, 0, 1 / math.Sqrt(2)},
		{"stretched", 0.5, 0.5, 0.5, 0.5, 1, 1, 1},
		{"vector coupling", 1, 1, 1, 0, 2, 1, 1 / math.Sqrt(2)},
		{"vector coupling antisymmetric", 1, 1, 1, 0, 1, 1, 1 / math.Sqrt(2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClebschGordan(tt.j1, tt.m1, tt.j2, tt.m2, tt.j, tt.m)
			assert.InDelta(t, tt.want, got, tol)
		})
	}
}

func TestClebschGordan_Orthogonality(t *testing.T) {
	// Fixed projections, summed over the coupled angular momentum.
	sum := 0.0
	for j := 0.0; j <= 2; j++ {
		cg := ClebschGordan(1, 1, 1, 0, j, 1)
		sum += cg * cg
	}
	require.InDelta(t, 1.0, sum, tol)
}

func TestWigner6J_KnownValues(t *testing.T) {
	tests := []struct {
		name                   string
		j1, j2, j3, j4, j5, j6 float64
		want                   float64
	}{
		{"one zero argument", 1, 1, 0, 1, 1, 1, -1.0 / 3.0},
		{"all spin half and one", 0.5, 0.5, 1, 0.5, 0.5, 1, 1.0 / 6.0},
		{"triangle violated", 1, 1, 3, 1, 1, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wigner6J(tt.j1, tt.j2, tt.j3, tt.j4, tt.j5, tt.j6)
			assert.InDelta(t, tt.want, got, tol)
		})
	}
}

func TestWigner6J_LargeAngularMomenta(t *testing.T) {
	// {a b c; 0 c b} = (-1)^(a+b+c)/(Hat(b)Hat(c)) with triad sums of 90.
	assert.InDelta(t, 1.0/61.0, Wigner6J(30, 30, 30, 0, 30, 30), tol)
}

func TestWigner6J_ColumnPermutationInvariance(t *testing.T) {
	a := Wigner6J(1, 2, 3, 2, 1, 2)
	b := Wigner6J(2, 1, 3, 1, 2, 2)
	c := Wigner6J(3, 2, 1, 2, 1, 2)
	assert.InDelta(t, a, b, tol)
	assert.InDelta(t, a, c, tol)
}

func TestWigner9J_ReducesToKnownValue(t *testing.T) {
	// First row all zero forces the remaining rows into matched pairs.
	got := Wigner9J(0, 0, 0, 1, 1, 1, 1, 1, 1)
	assert.InDelta(t, 1/(3*math.Sqrt(3)), got, tol)
}

func TestWigner9J_TranspositionInvariance(t *testing.T) {
	a := Wigner9J(1, 2, 1, 1, 1, 2, 2, 1, 1)
	transposed := Wigner9J(1, 1, 2, 2, 1, 1, 1, 2, 1)
	assert.InDelta(t, a, transposed, tol)
}

func TestHat(t *testing.T) {
	assert.InDelta(t, 1.0, Hat(0), tol)
	assert.InDelta(t, math.Sqrt(3), Hat(1), tol)
	assert.InDelta(t, math.Sqrt(2), Hat(0.5), tol)
}
