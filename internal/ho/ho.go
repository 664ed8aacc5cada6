// Package ho provides the harmonic-oscillator ingredients shared by the
// radial integrals: oscillator length scales, coordinate-space norms, and
// generalized Laguerre polynomials.
//
// Radial wavefunctions are handled in dimensionless coordinates x = r/b.
// The unnormalized radial function is
//
//	g_{nl}(x) = x^l L_n^{l+1/2}(x^2) exp(-x^2/2)
//
// and CoordinateSpaceNorm supplies the normalization so that
// integral x^2 [N g]^2 dx = 1 at b = 1.
package ho

import (
	"math"

	"github.com/chiraleft/chime/internal/constants"
)

// Length holds the relative and center-of-mass oscillator length scales of a
// two-nucleon basis. Both derive from a single oscillator energy hw; the CM
// length is half the relative one because the CM motion carries the total
// mass while the relative motion carries the reduced mass.
type Length struct {
	relative float64
	cm       float64
}

// NewLength constructs the oscillator lengths for oscillator energy hw (MeV).
func NewLength(hw float64) Length {
	rel := constants.HBarC / math.Sqrt(constants.ReducedNucleonMassMeV*hw)
	cm := constants.HBarC / math.Sqrt(2*constants.NucleonMassMeV*hw)
	return Length{relative: rel, cm: cm}
}

// Relative returns the relative-motion oscillator length in fm.
func (b Length) Relative() float64 { return b.relative }

// CM returns the center-of-mass oscillator length in fm.
func (b Length) CM() float64 { return b.cm }

// CoordinateSpaceNorm returns the normalization constant of the radial
// oscillator function with quantum numbers (n, l) and length scale b:
//
//	N_{nl} = sqrt(2 n! / (b^3 Gamma(n+l+3/2)))
func CoordinateSpaceNorm(n, l int, b float64) float64 {
	num := 2 * factorial(n)
	den := b * b * b * math.Gamma(float64(n)+float64(l)+1.5)
	return math.Sqrt(num / den)
}

// LaguerreGeneralized evaluates the generalized Laguerre polynomial
// L_n^a(x) by upward recurrence. Stable for the small n used here.
func LaguerreGeneralized(n int, a, x float64) float64 {
	if n == 0 {
		return 1
	}
	prev := 1.0
	cur := 1 + a - x
	for k := 1; k < n; k++ {
		fk := float64(k)
		next := ((2*fk+1+a-x)*cur - (fk+a)*prev) / (fk + 1)
		prev, cur = cur, next
	}
	return cur
}

// RadialUnnormalized evaluates the unnormalized radial oscillator function
// g_{nl}(x) at dimensionless radius x.
func RadialUnnormalized(n, l int, x float64) float64 {
	return math.Pow(x, float64(l)) *
		LaguerreGeneralized(n, float64(l)+0.5, x*x) *
		math.Exp(-x*x/2)
}

// Radial evaluates the normalized radial oscillator function at b = 1.
func Radial(n, l int, x float64) float64 {
	return CoordinateSpaceNorm(n, l, 1) * RadialUnnormalized(n, l, x)
}

func factorial(n int) float64 {
	f := 1.0
	for k := 2; k <= n; k++ {
		f *= float64(k)
	}
	return f
}
