// Package quadrature evaluates the regularized radial integrals of
// pion-exchange kernels over harmonic-oscillator wavefunctions.
//
// All integrals are taken in dimensionless oscillator coordinates x = r/b.
// Callers scale the regulator (divide by b) and the pion mass (multiply
// by b) before building Params2N, and multiply the result by the
// coordinate-space norm product where the integrand uses unnormalized
// wavefunctions (matching the norm-outside convention of the evaluators).
//
// Every function is pure: nodes and weights are computed deterministically
// by Newton iteration on Legendre polynomials, cached once per process.
// There is no error path; pathological parameters (a vanishing regulator in
// the smeared delta) surface as NaN, which the operator evaluators sanitize.
package quadrature

import (
	"math"
	"sync"

	"github.com/chiraleft/chime/internal/ho"
)

// Params2N bundles the quantum numbers and scaled physical parameters of a
// two-wavefunction radial integral.
type Params2N struct {
	BraN, BraL int
	KetN, KetL int

	// Regularize toggles the local coordinate-space regulator.
	Regularize bool

	// Regulator is the regulator length in oscillator units (R/b).
	Regulator float64

	// PionMass is the pion mass in oscillator units (m_pi * b).
	PionMass float64
}

const (
	gaussPoints = 250
	xMax        = 15.0
)

var (
	nodesOnce sync.Once
	glX       []float64
	glW       []float64
)

// legendreNodes computes the Gauss-Legendre nodes and weights on [0, xMax].
func legendreNodes() ([]float64, []float64) {
	nodesOnce.Do(func() {
		n := gaussPoints
		glX = make([]float64, n)
		glW = make([]float64, n)
		m := (n + 1) / 2
		for i := 0; i < m; i++ {
			// Chebyshev estimate refined by Newton iteration.
			z := math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))
			var pp float64
			for {
				p1, p2 := 1.0, 0.0
				for j := 0; j < n; j++ {
					p3 := p2
					p2 = p1
					p1 = ((2*float64(j)+1)*z*p2 - float64(j)*p3) / (float64(j) + 1)
				}
				pp = float64(n) * (z*p1 - p2) / (z*z - 1)
				z1 := z
				z = z1 - p1/pp
				if math.Abs(z-z1) < 1e-15 {
					break
				}
			}
			// Map [-1,1] to [0,xMax].
			half := xMax / 2
			glX[i] = half * (1 - z)
			glX[n-1-i] = half * (1 + z)
			w := xMax / ((1 - z*z) * pp * pp)
			glW[i] = w
			glW[n-1-i] = w
		}
	})
	return glX, glW
}

// integrate applies the cached rule to f on [0, xMax].
func integrate(f func(x float64) float64) float64 {
	xs, ws := legendreNodes()
	sum := 0.0
	for i, x := range xs {
		sum += ws[i] * f(x)
	}
	return sum
}

// regulatorFactor is the local coordinate-space regulator
// (1 - exp(-(x/R)^2))^6, or 1 when regularization is off.
func regulatorFactor(p Params2N, x float64) float64 {
	if !p.Regularize {
		return 1
	}
	u := x / p.Regulator
	f := 1 - math.Exp(-u*u)
	return f * f * f * f * f * f
}

// Pion-exchange radial profiles, as functions of m*x.
func yPi(mx float64) float64 { return math.Exp(-mx) / mx }
func zPi(mx float64) float64 { return 1 + 1/mx }
func tPi(mx float64) float64 { return 1 + 3/mx + 3/(mx*mx) }
func wPi(mx float64) float64 { return 1 + 2/mx + 2/(mx*mx) }

// kernelIntegral integrates x^2 g'(x) K(m x) g(x) with unnormalized radial
// wavefunctions and the regulator applied.
func kernelIntegral(p Params2N, kernel func(mx float64) float64) float64 {
	return integrate(func(x float64) float64 {
		return x * x *
			ho.RadialUnnormalized(p.BraN, p.BraL, x) *
			ho.RadialUnnormalized(p.KetN, p.KetL, x) *
			kernel(p.PionMass*x) *
			regulatorFactor(p, x)
	})
}

// IntegralYPiR integrates the Yukawa profile Y(m x).
func IntegralYPiR(p Params2N) float64 {
	return kernelIntegral(p, yPi)
}

// IntegralZPiYPiR integrates the short-range profile Z(m x) Y(m x).
func IntegralZPiYPiR(p Params2N) float64 {
	return kernelIntegral(p, func(mx float64) float64 { return zPi(mx) * yPi(mx) })
}

// IntegralTPiYPiR integrates the tensor profile T(m x) Y(m x).
func IntegralTPiYPiR(p Params2N) float64 {
	return kernelIntegral(p, func(mx float64) float64 { return tPi(mx) * yPi(mx) })
}

// IntegralWPiRYPiR integrates the profile W(m x) Y(m x).
func IntegralWPiRYPiR(p Params2N) float64 {
	return kernelIntegral(p, func(mx float64) float64 { return wPi(mx) * yPi(mx) })
}

// IntegralMPiRWPiRYPiR integrates the profile (m x) W(m x) Y(m x).
func IntegralMPiRWPiRYPiR(p Params2N) float64 {
	return kernelIntegral(p, func(mx float64) float64 { return mx * wPi(mx) * yPi(mx) })
}

// IntegralMPiR is the radial matrix element <n' l'|x|n l> between normalized
// oscillator states. The caller multiplies by the pion mass and the
// oscillator length; no regulator is applied.
func IntegralMPiR(np, n, lp, l int) float64 {
	return integrate(func(x float64) float64 {
		return x * x * ho.Radial(np, lp, x) * ho.Radial(n, l, x) * x
	})
}

// IntegralRegularizedDelta integrates a Gaussian-smeared contact term
// exp(-x^2/R^2) / (pi^(3/2) R^3) between normalized oscillator states.
// A vanishing regulator makes this 0/0 = NaN by construction; the operator
// evaluators sanitize that to 0.
func IntegralRegularizedDelta(p Params2N) float64 {
	r := p.Regulator
	norm := math.Pow(math.Pi, 1.5) * r * r * r
	return integrate(func(x float64) float64 {
		return x * x *
			ho.Radial(p.BraN, p.BraL, x) *
			ho.Radial(p.KetN, p.KetL, x) *
			math.Exp(-x*x/(r*r)) / norm
	})
}
