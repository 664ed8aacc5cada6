package chiral

import (
	"github.com/chiraleft/chime/internal/basis"
	"github.com/chiraleft/chime/internal/ho"
)

// IdentityOperator is the unit operator, useful as a basis diagnostic: its
// matrix is the identity on every diagonal sector. It is purely isoscalar
// and carries its full strength at leading order, with no corrections at
// any higher order.
type IdentityOperator struct{}

func (IdentityOperator) Name() string { return "identity" }

func (IdentityOperator) J0() int    { return 0 }
func (IdentityOperator) G0() int    { return 0 }
func (IdentityOperator) T0Max() int { return 0 }

func (IdentityOperator) LORME(bra, ket basis.RelativeStateLSJT, b ho.Length, p EvalParams) float64 {
	if p.T0 != 0 {
		return 0
	}
	if bra != ket {
		return 0
	}
	return 1
}

func (IdentityOperator) LORMECM(bra, ket basis.RelativeCMStateLSJT, b ho.Length, p EvalParams) float64 {
	if p.T0 != 0 {
		return 0
	}
	if bra != ket {
		return 0
	}
	return 1
}

func (IdentityOperator) NLORME(bra, ket basis.RelativeStateLSJT, b ho.Length, p EvalParams) float64 {
	return 0
}

func (IdentityOperator) N2LORME(bra, ket basis.RelativeStateLSJT, b ho.Length, p EvalParams) float64 {
	return 0
}

func (IdentityOperator) N3LORME(bra, ket basis.RelativeStateLSJT, b ho.Length, p EvalParams) float64 {
	return 0
}

func (IdentityOperator) N4LORME(bra, ket basis.RelativeStateLSJT, b ho.Length, p EvalParams) float64 {
	return 0
}

func (IdentityOperator) NLORMECM(bra, ket basis.RelativeCMStateLSJT, b ho.Length, p EvalParams) float64 {
	return 0
}

func (IdentityOperator) N2LORMECM(bra, ket basis.RelativeCMStateLSJT, b ho.Length, p EvalParams) float64 {
	return 0
}

func (IdentityOperator) N3LORMECM(bra, ket basis.RelativeCMStateLSJT, b ho.Length, p EvalParams) float64 {
	return 0
}

func (IdentityOperator) N4LORMECM(bra, ket basis.RelativeCMStateLSJT, b ho.Length, p EvalParams) float64 {
	return 0
}
