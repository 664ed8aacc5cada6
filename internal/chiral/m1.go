package chiral

import (
	"math"

	"github.com/chiraleft/chime/internal/am"
	"github.com/chiraleft/chime/internal/basis"
	"github.com/chiraleft/chime/internal/constants"
	"github.com/chiraleft/chime/internal/ho"
	"github.com/chiraleft/chime/internal/quadrature"
)

// M1Operator is the magnetic dipole operator in chiral power counting.
//
// Under the adopted counting there is no LO contribution and no chiral
// correction at N2LO; NLO carries the impulse one-body term and the
// leading isovector two-body exchange current; N3LO carries the isoscalar
// two-body current (the isovector N3LO current has no published matrix
// elements and is not implemented); nothing is available at N4LO.
type M1Operator struct{}

func (M1Operator) Name() string { return "M1" }

// J0 is 1 (dipole), G0 is 0 (even parity), T0 runs over scalar, vector and
// tensor isospin components. The isotensor components vanish identically
// for every implemented term; they are iterated for block bookkeeping only.
func (M1Operator) J0() int    { return 1 }
func (M1Operator) G0() int    { return 0 }
func (M1Operator) T0Max() int { return 2 }

// No M1 contribution at leading order.
func (M1Operator) LORME(bra, ket basis.RelativeStateLSJT, b ho.Length, p EvalParams) float64 {
	return 0
}

func (M1Operator) LORMECM(bra, ket basis.RelativeCMStateLSJT, b ho.Length, p EvalParams) float64 {
	return 0
}

func (M1Operator) NLORME(bra, ket basis.RelativeStateLSJT, b ho.Length, p EvalParams) float64 {
	switch p.Abody {
	case 1:
		return nloOneBody(bra, ket, p.T0)
	case 2:
		return nloOneBody(bra, ket, p.T0) + nloTwoBody(bra, ket, b, p)
	default:
		return 0
	}
}

func (M1Operator) NLORMECM(bra, ket basis.RelativeCMStateLSJT, b ho.Length, p EvalParams) float64 {
	switch p.Abody {
	case 1:
		return nloOneBodyCM(bra, ket, p.T0)
	case 2:
		return nloOneBodyCM(bra, ket, p.T0) + nloTwoBodyCM(bra, ket, b, p)
	default:
		return 0
	}
}

// No chiral correction at N2LO.
func (M1Operator) N2LORME(bra, ket basis.RelativeStateLSJT, b ho.Length, p EvalParams) float64 {
	return 0
}

func (M1Operator) N2LORMECM(bra, ket basis.RelativeCMStateLSJT, b ho.Length, p EvalParams) float64 {
	return 0
}

func (M1Operator) N3LORME(bra, ket basis.RelativeStateLSJT, b ho.Length, p EvalParams) float64 {
	if p.Abody != 2 {
		return 0
	}
	return n3loTwoBodyIsoscalar(bra, ket, b, p)
}

// The N3LO relative-CM isoscalar evaluator has not been derived; this is an
// acknowledged gap (tracked in DESIGN.md), not a selection-rule zero.
func (M1Operator) N3LORMECM(bra, ket basis.RelativeCMStateLSJT, b ho.Length, p EvalParams) float64 {
	return 0
}

// No results available at N4LO.
func (M1Operator) N4LORME(bra, ket basis.RelativeStateLSJT, b ho.Length, p EvalParams) float64 {
	return 0
}

func (M1Operator) N4LORMECM(bra, ket basis.RelativeCMStateLSJT, b ho.Length, p EvalParams) float64 {
	return 0
}

// nloOneBody is the impulse-approximation one-body term in the relative
// basis. The operator does not excite radial or orbital degrees of freedom,
// so it is diagonal in (n, L). Nonzero for T0 = 0 and 1 only.
func nloOneBody(bra, ket basis.RelativeStateLSJT, t0 int) float64 {
	if bra.N() != ket.N() || bra.L() != ket.L() {
		return 0
	}

	symmSpin := am.RelativeSpinSymmetricRME(bra.L(), ket.L(), bra.S(), ket.S(), bra.J(), ket.J(), 0, 1)
	symmIso := am.SpinSymmetricRME(bra.T(), ket.T())
	asymmSpin := am.RelativeSpinAntisymmetricRME(bra.L(), ket.L(), bra.S(), ket.S(), bra.J(), ket.J(), 0, 1)
	asymmIso := am.SpinAntisymmetricRME(bra.T(), ket.T())
	deltaT := 0.0
	if bra.T() == ket.T() {
		deltaT = 1
	}
	oam := am.RelativeLrelRME(bra.L(), ket.L(), bra.S(), ket.S(), bra.J(), ket.J())

	switch t0 {
	case 0:
		spinTerm := constants.IsoscalarNucleonMagneticMoment * symmSpin * deltaT
		oamTerm := 0.5 * oam * deltaT
		return spinTerm + oamTerm
	case 1:
		spinSymmTerm := constants.IsovectorNucleonMagneticMoment * symmSpin * symmIso
		spinAsymmTerm := constants.IsovectorNucleonMagneticMoment * asymmSpin * asymmIso
		oamTerm := 0.5 * oam * symmIso
		return spinSymmTerm + spinAsymmTerm + oamTerm
	default:
		return 0
	}
}

// nloTwoBody is the leading two-body exchange current in the relative
// basis. Purely isovector: zero unless T0 = 1.
func nloTwoBody(bra, ket basis.RelativeStateLSJT, b ho.Length, p EvalParams) float64 {
	if p.T0 != 1 {
		return 0
	}

	brel := b.Relative()
	prel := quadrature.Params2N{
		BraN: bra.N(), BraL: bra.L(),
		KetN: ket.N(), KetL: ket.L(),
		Regularize: p.Regularize,
		Regulator:  p.Regulator / brel,
		PionMass:   constants.PionMassFm * brel,
	}

	normProduct := ho.CoordinateSpaceNorm(ket.N(), ket.L(), 1) *
		ho.CoordinateSpaceNorm(bra.N(), bra.L(), 1)
	zpiIntegral := normProduct * quadrature.IntegralZPiYPiR(prel)
	tpiIntegral := normProduct * quadrature.IntegralTPiYPiR(prel)

	a6s1 := math.Sqrt(10) * am.RelativePauliProductRME(bra.L(), ket.L(), bra.S(), ket.S(), bra.J(), ket.J(), 2, 1, 1)
	s1 := am.RelativePauliProductRME(bra.L(), ket.L(), bra.S(), ket.S(), bra.J(), ket.J(), 0, 1, 1)

	t1 := am.PauliProductRME(bra.T(), ket.T(), 1)

	result := a6s1*zpiIntegral + s1*tpiIntegral
	result *= nloLECPrefactor() * t1
	return sanitize(result)
}

// nloLECPrefactor is g_A m_pi^3 d18 / (12 pi mu_N F_pi^2).
func nloLECPrefactor() float64 {
	mpi := constants.PionMassFm
	num := constants.GA * constants.D18Fm * mpi * mpi * mpi
	den := 12 * constants.Pi * constants.NuclearMagnetonFm *
		constants.PionDecayConstantFm * constants.PionDecayConstantFm
	return num / den
}

// nloOneBodyCM is the impulse one-body term in the relative-CM basis. The
// orbital term splits into a diagonal total-L piece and cross terms coupling
// the gradient on one coordinate with the radius on the other; the mass
// ratio square root is fixed at 1/2 for equal nucleon masses.
func nloOneBodyCM(bra, ket basis.RelativeCMStateLSJT, t0 int) float64 {
	symmSpin := am.RelativeCMSpinSymmetricRME(
		bra.Lr(), ket.Lr(), bra.Lc(), ket.Lc(), bra.L(), ket.L(),
		bra.S(), ket.S(), bra.J(), ket.J(), 0, 0, 0, 1)
	symmIso := am.SpinSymmetricRME(bra.T(), ket.T())
	asymmSpin := am.RelativeCMSpinAntisymmetricRME(
		bra.Lr(), ket.Lr(), bra.Lc(), ket.Lc(), bra.L(), ket.L(),
		bra.S(), ket.S(), bra.J(), ket.J(), 0, 0, 0, 1)
	asymmIso := am.SpinAntisymmetricRME(bra.T(), ket.T())
	deltaT := 0.0
	if bra.T() == ket.T() {
		deltaT = 1
	}

	lsum := am.RelativeCMLsumRME(
		bra.Lr(), ket.Lr(), bra.Lc(), ket.Lc(), bra.L(), ket.L(),
		bra.S(), ket.S(), bra.J(), ket.J())
	if bra.Nr() != ket.Nr() || bra.Nc() != ket.Nc() {
		lsum = 0
	}

	const massRatioSqrt = 0.5
	rcmPrel := massRatioSqrt *
		am.GradientME(bra.Nr(), ket.Nr(), bra.Lr(), ket.Lr()) *
		am.RadiusME(bra.Nc(), ket.Nc(), bra.Lc(), ket.Lc())
	rrelPcm := am.RadiusME(bra.Nr(), ket.Nr(), bra.Lr(), ket.Lr()) *
		am.GradientME(bra.Nc(), ket.Nc(), bra.Lc(), ket.Lc()) / massRatioSqrt

	var result float64
	switch t0 {
	case 0:
		spinTerm := constants.IsoscalarNucleonMagneticMoment * symmSpin * deltaT
		oamTerm := 0.5 * am.RelativeLrelRME(bra.L(), ket.L(), bra.S(), ket.S(), bra.J(), ket.J()) * deltaT
		result = spinTerm + oamTerm
	case 1:
		spinSymmTerm := constants.IsovectorNucleonMagneticMoment * symmSpin * symmIso
		spinAsymmTerm := constants.IsovectorNucleonMagneticMoment * asymmSpin * asymmIso
		oamDiagonalTerm := 0.5 * lsum * symmIso
		oamCrossTerm := 0.5 * (2*rcmPrel + 0.5*rrelPcm) * asymmIso
		result = spinSymmTerm + spinAsymmTerm + oamDiagonalTerm + oamCrossTerm
	default:
		result = 0
	}
	return sanitize(result)
}

// nloTwoBodyCM is the leading two-body exchange current in the relative-CM
// basis: a CM-frame exchange integral combined across five angular-coupling
// channels, plus the relative-frame contribution restricted to CM-diagonal
// quantum numbers. Zero unless T0 = 1.
func nloTwoBodyCM(bra, ket basis.RelativeCMStateLSJT, b ho.Length, p EvalParams) float64 {
	if p.T0 != 1 {
		return 0
	}

	bcm := b.CM()
	brel := b.Relative()
	prel := quadrature.Params2N{
		BraN: bra.Nr(), BraL: bra.Lr(),
		KetN: ket.Nr(), KetL: ket.Lr(),
		Regularize: p.Regularize,
		Regulator:  p.Regulator / brel,
		PionMass:   constants.PionMassFm * brel,
	}

	// CM integral (no regularization, CM oscillator scale).
	mpirIntegral := constants.PionMassFm * bcm *
		quadrature.IntegralMPiR(bra.Nc(), ket.Nc(), bra.Lc(), ket.Lc())

	normProduct := ho.CoordinateSpaceNorm(ket.Nr(), ket.Lr(), 1) *
		ho.CoordinateSpaceNorm(bra.Nr(), bra.Lr(), 1)
	mpirWpiIntegral := normProduct * quadrature.IntegralMPiRWPiRYPiR(prel)

	ppRME := func(cc, cr, cL, bs, c int) float64 {
		return am.RelativeCMPauliProductRME(
			bra.Lr(), ket.Lr(), bra.Lc(), ket.Lc(), bra.L(), ket.L(),
			bra.S(), ket.S(), bra.J(), ket.J(), cc, cr, cL, bs, c)
	}

	a1 := -math.Sqrt(3) * ppRME(1, 1, 1, 0, 1)
	a2 := math.Sqrt(3.0/5.0) * ppRME(1, 1, 1, 2, 1)
	a3 := math.Sqrt(9.0/5.0) * ppRME(1, 1, 2, 2, 1)
	a4 := math.Sqrt(14.0/5.0) * ppRME(3, 1, 2, 2, 1)
	a5 := math.Sqrt(28.0/5.0) * ppRME(3, 1, 3, 2, 1)
	a6s1 := math.Sqrt(10) * ppRME(0, 2, 2, 1, 1)
	s1 := ppRME(0, 0, 0, 1, 1)

	t1 := am.PauliProductRME(bra.T(), ket.T(), 1)

	apiR := a1 + mpirWpiIntegral*(a2+a3+a4+a5)
	relativeCM := mpirIntegral * apiR

	relative := 0.0
	if bra.Nc() == ket.Nc() && bra.Lc() == ket.Lc() {
		zpiIntegral := normProduct * quadrature.IntegralZPiYPiR(prel)
		tpiIntegral := normProduct * quadrature.IntegralTPiYPiR(prel)
		relative = zpiIntegral*a6s1 + tpiIntegral*s1
	}

	result := nloLECPrefactor() * t1 * (relativeCM + relative)
	return sanitize(result)
}

// n3loTwoBodyIsoscalar is the isoscalar two-body current at N3LO in the
// relative basis: a d9 pion-range term plus an L2 contact term active only
// in the S-wave, isospin-diagonal channel. Scaled overall by twice the
// nucleon mass. The isovector N3LO current is not implemented (acknowledged
// gap, tracked in DESIGN.md).
func n3loTwoBodyIsoscalar(bra, ket basis.RelativeStateLSJT, b ho.Length, p EvalParams) float64 {
	if p.T0 != 0 {
		return 0
	}

	sRME := am.RelativeSpinSymmetricRME(bra.L(), ket.L(), bra.S(), ket.S(), bra.J(), ket.J(), 0, 1)

	brel := b.Relative()
	prel := quadrature.Params2N{
		BraN: bra.N(), BraL: bra.L(),
		KetN: ket.N(), KetL: ket.L(),
		Regularize: p.Regularize,
		Regulator:  p.Regulator / brel,
		PionMass:   constants.PionMassFm * brel,
	}

	// d9 term.
	t0RME := am.PauliProductRME(bra.T(), ket.T(), 0)
	normProduct := ho.CoordinateSpaceNorm(ket.N(), ket.L(), 1) *
		ho.CoordinateSpaceNorm(bra.N(), bra.L(), 1)
	ypiIntegral := normProduct * quadrature.IntegralYPiR(prel)
	wpiIntegral := normProduct * quadrature.IntegralWPiRYPiR(prel)
	a6s := math.Sqrt(10) * am.RelativeSpinSymmetricRME(bra.L(), ket.L(), bra.S(), ket.S(), bra.J(), ket.J(), 2, 1)

	mpi := constants.PionMassFm
	d9Prefactor := constants.GA * constants.D9Fm * mpi * mpi * mpi /
		(math.Sqrt(3) * constants.Pi *
			constants.PionDecayConstantFm * constants.PionDecayConstantFm)
	d9Term := d9Prefactor * t0RME * (wpiIntegral*a6s - ypiIntegral*sRME)

	// L2 contact term, S-wave and isospin-diagonal only.
	l2Term := 0.0
	if bra.L() == 0 && ket.L() == 0 && bra.T() == ket.T() {
		deltaIntegral := quadrature.IntegralRegularizedDelta(prel) / (brel * brel * brel)
		l2Term = 2 * constants.L2Fm * sRME * deltaIntegral
	}

	result := (d9Term + l2Term) * 2 * constants.NucleonMassFm
	return sanitize(result)
}
