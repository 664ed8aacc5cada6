package chiral

import (
	"math"

	"github.com/chiraleft/chime/internal/basis"
	"github.com/chiraleft/chime/internal/ho"
)

// EvalParams is the per-call configuration threaded through every term
// evaluator: the regularization toggle and regulator length (fm), the
// isospin transfer rank of the operator component being evaluated, and the
// body count (1 = impulse, 2 = exchange current).
type EvalParams struct {
	Regularize bool
	Regulator  float64
	T0         int
	Abody      int
}

// Operator is the per-order evaluation contract of a chiral operator. Each
// method is a pure function of its arguments: no caching, no shared state,
// safe for concurrent use. Unsupported order/T0/body combinations return 0
// (an analytically vanishing contribution, not an error).
type Operator interface {
	Name() string

	// J0 is the angular tensor rank, G0 the parity grade.
	J0() int
	G0() int

	// T0Max is the largest isospin transfer rank with any nonvanishing
	// component; the driver iterates T0 from 0 to T0Max.
	T0Max() int

	LORME(bra, ket basis.RelativeStateLSJT, b ho.Length, p EvalParams) float64
	NLORME(bra, ket basis.RelativeStateLSJT, b ho.Length, p EvalParams) float64
	N2LORME(bra, ket basis.RelativeStateLSJT, b ho.Length, p EvalParams) float64
	N3LORME(bra, ket basis.RelativeStateLSJT, b ho.Length, p EvalParams) float64
	N4LORME(bra, ket basis.RelativeStateLSJT, b ho.Length, p EvalParams) float64

	LORMECM(bra, ket basis.RelativeCMStateLSJT, b ho.Length, p EvalParams) float64
	NLORMECM(bra, ket basis.RelativeCMStateLSJT, b ho.Length, p EvalParams) float64
	N2LORMECM(bra, ket basis.RelativeCMStateLSJT, b ho.Length, p EvalParams) float64
	N3LORMECM(bra, ket basis.RelativeCMStateLSJT, b ho.Length, p EvalParams) float64
	N4LORMECM(bra, ket basis.RelativeCMStateLSJT, b ho.Length, p EvalParams) float64
}

type relativeFn func(Operator, basis.RelativeStateLSJT, basis.RelativeStateLSJT, ho.Length, EvalParams) float64

type relativeCMFn func(Operator, basis.RelativeCMStateLSJT, basis.RelativeCMStateLSJT, ho.Length, EvalParams) float64

// Dispatch tables keyed by order. A table, not an if/else chain, so adding
// an order is a one-line change.
var (
	relativeDispatch = map[Order]relativeFn{
		LO:   Operator.LORME,
		NLO:  Operator.NLORME,
		N2LO: Operator.N2LORME,
		N3LO: Operator.N3LORME,
		N4LO: Operator.N4LORME,
	}
	relativeCMDispatch = map[Order]relativeCMFn{
		LO:   Operator.LORMECM,
		NLO:  Operator.NLORMECM,
		N2LO: Operator.N2LORMECM,
		N3LO: Operator.N3LORMECM,
		N4LO: Operator.N4LORMECM,
	}
)

// ReducedMatrixElement dispatches a relative-basis evaluation by order.
// Full sums every implemented order; unsupported orders return 0.
func ReducedMatrixElement(op Operator, order Order, bra, ket basis.RelativeStateLSJT, b ho.Length, p EvalParams) float64 {
	if order == Full {
		sum := 0.0
		for _, on := range orderSequence {
			sum += relativeDispatch[on.Order](op, bra, ket, b, p)
		}
		return sum
	}
	fn, ok := relativeDispatch[order]
	if !ok {
		return 0
	}
	return fn(op, bra, ket, b, p)
}

// ReducedMatrixElementCM dispatches a relative-CM evaluation by order.
func ReducedMatrixElementCM(op Operator, order Order, bra, ket basis.RelativeCMStateLSJT, b ho.Length, p EvalParams) float64 {
	if order == Full {
		sum := 0.0
		for _, on := range orderSequence {
			sum += relativeCMDispatch[on.Order](op, bra, ket, b, p)
		}
		return sum
	}
	fn, ok := relativeCMDispatch[order]
	if !ok {
		return 0
	}
	return fn(op, bra, ket, b, p)
}

// sanitize replaces NaN by 0. Near-singular radial integrals at particular
// quantum-number combinations can poison a term; each term evaluator applies
// this to its own accumulated result before returning.
func sanitize(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return x
}
