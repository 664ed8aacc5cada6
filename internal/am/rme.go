package am

import "math"

// pauliSigmaRME is the Wigner-convention RME of the single-nucleon Pauli
// operator, <1/2||sigma||1/2> = sqrt(6).
var pauliSigmaRME = math.Sqrt(6)

// project converts a Wigner-convention RME into the projection normalization
// quoted by this package (see the package comment).
func project(w float64, jp, k, j int) float64 {
	m0 := float64(min(j, jp))
	return ClebschGordan(float64(j), m0, float64(k), 0, float64(jp), m0) * w /
		Hat(float64(jp))
}

// cRME is the Wigner-convention RME of the unit spherical harmonic C^k
// between orbital states, <l'||C^k||l>.
func cRME(lp, k, l int) float64 {
	return phase(lp) * Hat(float64(lp)) * Hat(float64(l)) *
		Wigner3J(float64(lp), float64(k), float64(l), 0, 0, 0)
}

// spinSymmetricWigner is the Wigner-convention RME of the symmetric
// combination (sigma1+sigma2)/2, i.e. the total spin vector, at spin rank b.
// Rank 0 is the identity; ranks above 1 are outside the couplings used by
// the implemented currents and yield 0.
func spinSymmetricWigner(sp, s, b int) float64 {
	if sp != s {
		return 0
	}
	switch b {
	case 0:
		return Hat(float64(s))
	case 1:
		fs := float64(s)
		return math.Sqrt(fs * (fs + 1) * (2*fs + 1))
	default:
		return 0
	}
}

// spinAntisymmetricWigner is the Wigner-convention RME of the antisymmetric
// combination (sigma1-sigma2)/2, which connects spin 0 and spin 1 only.
func spinAntisymmetricWigner(sp, s int) float64 {
	switch {
	case sp == 1 && s == 0:
		return math.Sqrt(3)
	case sp == 0 && s == 1:
		return -math.Sqrt(3)
	default:
		return 0
	}
}

// pauliProductWigner is the Wigner-convention RME of [sigma1 x sigma2]^b
// between coupled spin (or isospin) doublet states.
func pauliProductWigner(sp, s, b int) float64 {
	return Hat(float64(sp)) * Hat(float64(b)) * Hat(float64(s)) *
		Wigner9J(0.5, 0.5, 1, 0.5, 0.5, 1, float64(sp), float64(s), float64(b)) *
		pauliSigmaRME * pauliSigmaRME
}

// coupledRME assembles the two-factor coupled RME
// <(l' s')j'||[A^a (x) B^b]^k||(l s)j> in the Wigner convention from the
// Wigner-convention factor RMEs.
func coupledRME(lp, l, a int, sp, s, b int, jp, j, k int, spaceRME, spinRME float64) float64 {
	return Hat(float64(jp)) * Hat(float64(k)) * Hat(float64(j)) *
		Wigner9J(float64(lp), float64(l), float64(a),
			float64(sp), float64(s), float64(b),
			float64(jp), float64(j), float64(k)) *
		spaceRME * spinRME
}

// spaceOnlyRME assembles <(l' s)j'||A^k||(l s)j> for an operator acting on
// the spatial part alone, in the Wigner convention.
func spaceOnlyRME(lp, l, sp, s, jp, j, k int, spaceRME float64) float64 {
	if sp != s {
		return 0
	}
	return phase(lp+s+j+k) * Hat(float64(jp)) * Hat(float64(j)) *
		Wigner6J(float64(lp), float64(jp), float64(s),
			float64(j), float64(l), float64(k)) *
		spaceRME
}

// SpinSymmetricRME is the RME of the symmetric Pauli combination
// (tau1+tau2)/2 between coupled isospin states; diagonal, equal to T.
func SpinSymmetricRME(tp, t int) float64 {
	if tp != t {
		return 0
	}
	ft := float64(t)
	return project(math.Sqrt(ft*(ft+1)*(2*ft+1)), tp, 1, t)
}

// SpinAntisymmetricRME is the RME of the antisymmetric Pauli combination
// (tau1-tau2)/2, which connects T=0 and T=1 only.
func SpinAntisymmetricRME(tp, t int) float64 {
	return project(spinAntisymmetricWigner(tp, t), tp, 1, t)
}

// PauliProductRME is the RME of [tau1 x tau2]^c between coupled isospin
// states.
func PauliProductRME(tp, t, c int) float64 {
	return project(pauliProductWigner(tp, t, c), tp, c, t)
}

// RelativeSpinSymmetricRME is the RME of [C^a(rhat) (x) Sigma^b]^1 between
// relative LSJ-coupled states, where Sigma is the symmetric spin combination
// (sigma1+sigma2)/2 and the total rank is fixed at 1 (the M1 tensor rank).
func RelativeSpinSymmetricRME(lp, l, sp, s, jp, j, a, b int) float64 {
	w := coupledRME(lp, l, a, sp, s, b, jp, j, 1,
		cRME(lp, a, l), spinSymmetricWigner(sp, s, b))
	return project(w, jp, 1, j)
}

// RelativeSpinAntisymmetricRME is the antisymmetric-spin counterpart of
// RelativeSpinSymmetricRME.
func RelativeSpinAntisymmetricRME(lp, l, sp, s, jp, j, a, b int) float64 {
	if b != 1 {
		return 0
	}
	w := coupledRME(lp, l, a, sp, s, 1, jp, j, 1,
		cRME(lp, a, l), spinAntisymmetricWigner(sp, s))
	return project(w, jp, 1, j)
}

// RelativePauliProductRME is the RME of [C^a(rhat) (x) [sigma1 x sigma2]^b]^c
// between relative LSJ-coupled states.
func RelativePauliProductRME(lp, l, sp, s, jp, j, a, b, c int) float64 {
	w := coupledRME(lp, l, a, sp, s, b, jp, j, c,
		cRME(lp, a, l), pauliProductWigner(sp, s, b))
	return project(w, jp, c, j)
}

// RelativeLrelRME is the RME of the relative orbital angular momentum,
// diagonal in L and S.
func RelativeLrelRME(lp, l, sp, s, jp, j int) float64 {
	if lp != l {
		return 0
	}
	fl := float64(l)
	w := spaceOnlyRME(lp, l, sp, s, jp, j, 1, math.Sqrt(fl*(fl+1)*(2*fl+1)))
	return project(w, jp, 1, j)
}

// cmSpaceRME assembles the Wigner-convention RME of the coupled spatial
// operator [C^cr(rhat) (x) C^cc(Rhat)]^cL between relative-CM orbital states.
func cmSpaceRME(lrp, lr, lcp, lc, bigLp, bigL, cc, cr, cL int) float64 {
	return Hat(float64(bigLp)) * Hat(float64(cL)) * Hat(float64(bigL)) *
		Wigner9J(float64(lrp), float64(lr), float64(cr),
			float64(lcp), float64(lc), float64(cc),
			float64(bigLp), float64(bigL), float64(cL)) *
		cRME(lrp, cr, lr) * cRME(lcp, cc, lc)
}

// RelativeCMSpinSymmetricRME is the relative-CM counterpart of
// RelativeSpinSymmetricRME. The spatial operator carries rank cc on the CM
// coordinate, cr on the relative coordinate, total spatial rank cL, coupled
// with spin rank b to total rank 1.
func RelativeCMSpinSymmetricRME(lrp, lr, lcp, lc, bigLp, bigL, sp, s, jp, j, cc, cr, cL, b int) float64 {
	w := coupledRME(bigLp, bigL, cL, sp, s, b, jp, j, 1,
		cmSpaceRME(lrp, lr, lcp, lc, bigLp, bigL, cc, cr, cL),
		spinSymmetricWigner(sp, s, b))
	return project(w, jp, 1, j)
}

// RelativeCMSpinAntisymmetricRME is the antisymmetric-spin counterpart of
// RelativeCMSpinSymmetricRME.
func RelativeCMSpinAntisymmetricRME(lrp, lr, lcp, lc, bigLp, bigL, sp, s, jp, j, cc, cr, cL, b int) float64 {
	if b != 1 {
		return 0
	}
	w := coupledRME(bigLp, bigL, cL, sp, s, 1, jp, j, 1,
		cmSpaceRME(lrp, lr, lcp, lc, bigLp, bigL, cc, cr, cL),
		spinAntisymmetricWigner(sp, s))
	return project(w, jp, 1, j)
}

// RelativeCMPauliProductRME is the RME of
// [[C^cr(rhat) (x) C^cc(Rhat)]^cL (x) [sigma1 x sigma2]^b]^c between
// relative-CM coupled states.
func RelativeCMPauliProductRME(lrp, lr, lcp, lc, bigLp, bigL, sp, s, jp, j, cc, cr, cL, b, c int) float64 {
	w := coupledRME(bigLp, bigL, cL, sp, s, b, jp, j, c,
		cmSpaceRME(lrp, lr, lcp, lc, bigLp, bigL, cc, cr, cL),
		pauliProductWigner(sp, s, b))
	return project(w, jp, c, j)
}

// RelativeCMLsumRME is the RME of the total orbital angular momentum
// l_r + l_c, diagonal in both orbital quantum numbers, in L, and in S.
func RelativeCMLsumRME(lrp, lr, lcp, lc, bigLp, bigL, sp, s, jp, j int) float64 {
	if lrp != lr || lcp != lc || bigLp != bigL {
		return 0
	}
	fL := float64(bigL)
	w := spaceOnlyRME(bigLp, bigL, sp, s, jp, j, 1, math.Sqrt(fL*(fL+1)*(2*fL+1)))
	return project(w, jp, 1, j)
}

// RadiusME is the radial matrix element <n' l'|x|n l> of the dimensionless
// radius between normalized oscillator radial states. Selection rules
// l' = l +- 1 with the standard ladder structure.
func RadiusME(np, n, lp, l int) float64 {
	fn, fl := float64(n), float64(l)
	switch {
	case lp == l+1 && np == n:
		return math.Sqrt(fn + fl + 1.5)
	case lp == l+1 && np == n-1:
		return -math.Sqrt(fn)
	case lp == l-1 && np == n:
		return math.Sqrt(fn + fl + 0.5)
	case lp == l-1 && np == n+1:
		return -math.Sqrt(fn + 1)
	default:
		return 0
	}
}

// GradientME is the radial matrix element of the dimensionless gradient
// operator between normalized oscillator radial states. The magnitudes
// coincide with RadiusME (r and the gradient are conjugate ladder
// combinations); the n-changing terms flip sign.
func GradientME(np, n, lp, l int) float64 {
	fn, fl := float64(n), float64(l)
	switch {
	case lp == l+1 && np == n:
		return math.Sqrt(fn + fl + 1.5)
	case lp == l+1 && np == n-1:
		return math.Sqrt(fn)
	case lp == l-1 && np == n:
		return -math.Sqrt(fn + fl + 0.5)
	case lp == l-1 && np == n+1:
		return -math.Sqrt(fn + 1)
	default:
		return 0
	}
}
