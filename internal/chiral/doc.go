// Package chiral implements the per-order matrix-element evaluators of
// nuclear electroweak operators in chiral-EFT power counting.
//
// ARCHITECTURE:
//
// Pure evaluation core:
// Every matrix-element call is a pure function of (order, bra, ket,
// oscillator length, EvalParams). There is no caching and no shared mutable
// state, so calls are independently reproducible and trivially
// parallelizable by the driver.
//
// Dispatch:
// ReducedMatrixElement routes an (operator, order) pair through a static
// dispatch table to the order-specific method; each order method splits by
// body count into term evaluators. Missing combinations are analytic zeros
// of the power counting, returned as 0 rather than signaled as errors.
//
// Selection-rule zeros vs gaps:
// A 0 from an unsupported (order, T0, body) combination is physics; a 0
// from an unimplemented sector (N3LO isovector, N3LO relative-CM isoscalar)
// is an acknowledged gap, marked by a comment at the evaluator site and
// tracked in DESIGN.md.
//
// Numerical policy:
// Radial integrals can go NaN at pathological parameter combinations (a
// vanishing regulator in the smeared-delta contact term). Each term
// evaluator sanitizes its own accumulated result to 0 before returning;
// sanitization is local to the term, never applied post hoc to a sum of
// terms from different evaluators.
package chiral
