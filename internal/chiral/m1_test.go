package chiral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiraleft/chime/internal/basis"
	"github.com/chiraleft/chime/internal/constants"
	"github.com/chiraleft/chime/internal/ho"
	"github.com/chiraleft/chime/internal/testutil"
)

func evalParams(t0 int) EvalParams {
	return EvalParams{Regularize: true, Regulator: 0.9, T0: t0, Abody: 2}
}

// The 3S1 ground state: n=0, L=0, S=1, J=1, T=0.
func deuteronState() basis.RelativeStateLSJT {
	return basis.NewRelativeStateLSJT(0, 0, 1, 1, 0)
}

func TestM1Operator_TensorCharacter(t *testing.T) {
	var op M1Operator
	assert.Equal(t, "M1", op.Name())
	assert.Equal(t, 1, op.J0())
	assert.Equal(t, 0, op.G0())
	assert.Equal(t, 2, op.T0Max())
}

func TestM1Operator_VanishingOrders(t *testing.T) {
	var op M1Operator
	b := ho.NewLength(20)
	st := deuteronState()
	cst := basis.NewRelativeCMStateLSJT(0, 0, 0, 0, 0, 1, 1, 0)
	for t0 := 0; t0 <= 2; t0++ {
		p := evalParams(t0)
		assert.Zero(t, op.LORME(st, st, b, p))
		assert.Zero(t, op.N2LORME(st, st, b, p))
		assert.Zero(t, op.N4LORME(st, st, b, p))
		assert.Zero(t, op.LORMECM(cst, cst, b, p))
		assert.Zero(t, op.N2LORMECM(cst, cst, b, p))
		assert.Zero(t, op.N4LORMECM(cst, cst, b, p))
	}
}

func TestM1Operator_NLO_DeuteronIsoscalarMoment(t *testing.T) {
	// The isoscalar impulse term on the 3S1 ground state is the isoscalar
	// nucleon moment exactly; the exchange current is isovector and does
	// not contribute at T0 = 0.
	var op M1Operator
	b := ho.NewLength(20)
	st := deuteronState()

	got := op.NLORME(st, st, b, evalParams(0))
	testutil.RequireClose(t, constants.IsoscalarNucleonMagneticMoment, got, 1e-12)

	// Same value with the one-body term alone.
	p := evalParams(0)
	p.Abody = 1
	assert.InDelta(t, constants.IsoscalarNucleonMagneticMoment,
		op.NLORME(st, st, b, p), 1e-12)

	// Independent of the oscillator parameter and the regulator.
	assert.InDelta(t, constants.IsoscalarNucleonMagneticMoment,
		op.NLORME(st, st, ho.NewLength(50), EvalParams{T0: 0, Abody: 2}), 1e-12)
}

func TestM1Operator_NLO_DeuteronDiagonalIsovectorVanishes(t *testing.T) {
	// On a T = 0 diagonal element every isovector structure needs an
	// isospin flip, so the T0 = 1 component vanishes identically.
	var op M1Operator
	b := ho.NewLength(20)
	st := deuteronState()
	assert.Zero(t, op.NLORME(st, st, b, evalParams(1)))
}

func TestM1Operator_NLO_OneBodyRadialDiagonal(t *testing.T) {
	// The impulse term cannot change the radial quantum number.
	var op M1Operator
	b := ho.NewLength(20)
	bra := basis.NewRelativeStateLSJT(1, 0, 1, 1, 0)
	ket := deuteronState()
	p := evalParams(0)
	p.Abody = 1
	assert.Zero(t, op.NLORME(bra, ket, b, p))
}

func TestM1Operator_NLO_ExchangeCouples1S0To3S1(t *testing.T) {
	// The leading exchange current connects the 1S0 and 3S1 channels at
	// T0 = 1.
	var op M1Operator
	b := ho.NewLength(20)
	bra := basis.NewRelativeStateLSJT(0, 0, 0, 0, 1)
	ket := deuteronState()

	got := op.NLORME(bra, ket, b, evalParams(1))
	require.False(t, math.IsNaN(got))
	assert.NotZero(t, got)

	// The exchange current shifts the result away from the impulse value.
	p := evalParams(1)
	p.Abody = 1
	exchange := got - op.NLORME(bra, ket, b, p)
	assert.NotZero(t, exchange)
}

func TestM1Operator_IsotensorVanishes(t *testing.T) {
	var op M1Operator
	b := ho.NewLength(20)
	st := deuteronState()
	p := evalParams(2)
	for _, order := range []Order{LO, NLO, N2LO, N3LO, N4LO, Full} {
		assert.Zero(t, ReducedMatrixElement(&op, order, st, st, b, p), "order %v", order)
	}
}

func TestM1Operator_N3LO_IsovectorComponentZero(t *testing.T) {
	var op M1Operator
	b := ho.NewLength(20)
	st := deuteronState()
	assert.Zero(t, op.N3LORME(st, st, b, evalParams(1)))
}

func TestM1Operator_N3LO_OneBodyZero(t *testing.T) {
	var op M1Operator
	b := ho.NewLength(20)
	st := deuteronState()
	p := evalParams(0)
	p.Abody = 1
	assert.Zero(t, op.N3LORME(st, st, b, p))
}

func TestM1Operator_N3LO_DeuteronFinite(t *testing.T) {
	var op M1Operator
	b := ho.NewLength(20)
	st := deuteronState()
	got := op.N3LORME(st, st, b, evalParams(0))
	require.False(t, math.IsNaN(got))
	assert.NotZero(t, got)
}

func TestM1Operator_N3LO_ContactNaNSanitized(t *testing.T) {
	// A vanishing regulator drives the smeared contact term to 0/0; the
	// whole S-wave term sanitizes to 0 rather than propagating NaN.
	var op M1Operator
	b := ho.NewLength(20)
	st := deuteronState()
	p := EvalParams{Regularize: false, Regulator: 0, T0: 0, Abody: 2}
	assert.Zero(t, op.N3LORME(st, st, b, p))
}

func TestM1Operator_N3LO_PWaveNoContact(t *testing.T) {
	// In a P wave the contact term is gated off, so a vanishing regulator
	// leaves the pion-range term intact.
	var op M1Operator
	b := ho.NewLength(20)
	st := basis.NewRelativeStateLSJT(0, 1, 1, 1, 1)
	p := EvalParams{Regularize: false, Regulator: 0, T0: 0, Abody: 2}
	got := op.N3LORME(st, st, b, p)
	require.False(t, math.IsNaN(got))
	assert.NotZero(t, got)
}

func TestM1Operator_N3LO_ContactNeedsDiagonalIsospin(t *testing.T) {
	// S-wave but isospin-changing: the contact term is gated off, so the
	// vanishing regulator cannot poison the pion-range term.
	var op M1Operator
	b := ho.NewLength(20)
	bra := basis.NewRelativeStateLSJT(0, 0, 0, 0, 1)
	ket := deuteronState()
	p := EvalParams{Regularize: false, Regulator: 0, T0: 0, Abody: 2}
	got := op.N3LORME(bra, ket, b, p)
	assert.False(t, math.IsNaN(got))
}

func TestM1Operator_NLOCM_DeuteronIsoscalarMoment(t *testing.T) {
	var op M1Operator
	b := ho.NewLength(20)
	st := basis.NewRelativeCMStateLSJT(0, 0, 0, 0, 0, 1, 1, 0)
	p := evalParams(0)
	p.Abody = 1
	got := op.NLORMECM(st, st, b, p)
	assert.InDelta(t, constants.IsoscalarNucleonMagneticMoment, got, 1e-12)
}

func TestM1Operator_N3LOCM_NotImplemented(t *testing.T) {
	var op M1Operator
	b := ho.NewLength(20)
	st := basis.NewRelativeCMStateLSJT(0, 0, 0, 0, 0, 1, 1, 0)
	assert.Zero(t, op.N3LORMECM(st, st, b, evalParams(0)))
}

func TestReducedMatrixElement_FullSumsOrders(t *testing.T) {
	var op M1Operator
	b := ho.NewLength(20)
	st := deuteronState()
	p := evalParams(0)

	sum := 0.0
	for _, on := range Orders() {
		sum += ReducedMatrixElement(&op, on.Order, st, st, b, p)
	}
	assert.InDelta(t, sum, ReducedMatrixElement(&op, Full, st, st, b, p), 1e-12)
}

func TestReducedMatrixElement_Deterministic(t *testing.T) {
	var op M1Operator
	b := ho.NewLength(20)
	bra := basis.NewRelativeStateLSJT(0, 0, 0, 0, 1)
	ket := deuteronState()
	p := evalParams(1)
	first := ReducedMatrixElement(&op, NLO, bra, ket, b, p)
	second := ReducedMatrixElement(&op, NLO, bra, ket, b, p)
	assert.Equal(t, first, second)
}
