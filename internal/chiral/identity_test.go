package chiral

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chiraleft/chime/internal/basis"
	"github.com/chiraleft/chime/internal/ho"
)

func TestIdentityOperator_DiagonalUnit(t *testing.T) {
	var op IdentityOperator
	b := ho.NewLength(20)
	st := basis.NewRelativeStateLSJT(2, 1, 1, 2, 1)
	other := basis.NewRelativeStateLSJT(1, 1, 1, 2, 1)

	p := EvalParams{T0: 0, Abody: 2}
	assert.Equal(t, 1.0, op.LORME(st, st, b, p))
	assert.Zero(t, op.LORME(st, other, b, p))
}

func TestIdentityOperator_ScalarIsoscalarOnly(t *testing.T) {
	var op IdentityOperator
	b := ho.NewLength(20)
	st := basis.NewRelativeStateLSJT(0, 0, 0, 0, 1)

	assert.Equal(t, 0, op.J0())
	assert.Equal(t, 0, op.G0())
	assert.Equal(t, 0, op.T0Max())
	assert.Zero(t, op.LORME(st, st, b, EvalParams{T0: 1, Abody: 2}))
}

func TestIdentityOperator_HigherOrdersVanish(t *testing.T) {
	var op IdentityOperator
	b := ho.NewLength(20)
	st := basis.NewRelativeStateLSJT(0, 0, 0, 0, 1)
	p := EvalParams{T0: 0, Abody: 2}

	assert.Zero(t, op.NLORME(st, st, b, p))
	assert.Zero(t, op.N2LORME(st, st, b, p))
	assert.Zero(t, op.N3LORME(st, st, b, p))
	assert.Zero(t, op.N4LORME(st, st, b, p))

	// Full therefore equals LO.
	assert.Equal(t, 1.0, ReducedMatrixElement(op, Full, st, st, b, p))
}
