// Package am implements the angular-momentum recoupling algebra consumed by
// the chiral operator evaluators: Wigner 3-j/6-j/9-j symbols and reduced
// matrix elements (RMEs) of spin, isospin, orbital and Pauli-product
// operators between LS-coupled two-nucleon states.
//
// CONVENTIONS:
//
// Internally, coupled RMEs are built in the Wigner (Edmonds) convention,
//
//	<j'm'|T^k_q|jm> = (-1)^(j'-m') 3j(j' k j; -m' q m) <j'||T^k||j>,
//
// via the standard 9-j decoupling of space (x) spin products. Published
// values are then quoted in the projection normalization
//
//	RME(j', k, j) = CG(j m0; k 0 | j' m0) <j'||T^k||j> / sqrt(2j'+1)
//
// with m0 = min(j, j'). For a diagonal rank-1 operator this is the
// stretched-state expectation value <j m=j|T_0|j m=j>; in particular the
// symmetric spin RME in the S-wave deuteron channel is exactly 1, so the
// isoscalar one-body M1 matrix element reduces to the isoscalar nucleon
// magnetic moment with no convention factor.
//
// All functions are pure and deterministic. Violated triangle or projection
// selection rules yield 0, not an error.
package am
