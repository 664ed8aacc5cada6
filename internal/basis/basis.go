// Package basis implements the relative (and relative-CM) LSJT
// harmonic-oscillator basis: immutable quantum-number tuples, subspace
// enumeration under an (Nmax, Jmax) truncation, and upper-triangular sector
// iteration for an operator of given tensor character (J0, G0, T0).
//
// Quantum numbers are non-negative integers satisfying the standard
// triangle rules; construction through this package guarantees them, and the
// evaluators assume them.
package basis

// RelativeStateLSJT is an immutable relative-motion two-nucleon state:
// radial n, orbital L, spin S, total angular momentum J, isospin T.
type RelativeStateLSJT struct {
	n, l, s, j, t int
}

// NewRelativeStateLSJT constructs a relative state tuple.
func NewRelativeStateLSJT(n, l, s, j, t int) RelativeStateLSJT {
	return RelativeStateLSJT{n: n, l: l, s: s, j: j, t: t}
}

func (st RelativeStateLSJT) N() int { return st.n }
func (st RelativeStateLSJT) L() int { return st.l }
func (st RelativeStateLSJT) S() int { return st.s }
func (st RelativeStateLSJT) J() int { return st.j }
func (st RelativeStateLSJT) T() int { return st.t }

// RelativeCMStateLSJT is an immutable relative plus center-of-mass state:
// relative (Nr, Lr) and CM (Nc, Lc) oscillator quanta coupled to total
// orbital L, with spin S, total J, isospin T.
type RelativeCMStateLSJT struct {
	nr, lr, nc, lc, l, s, j, t int
}

// NewRelativeCMStateLSJT constructs a relative-CM state tuple.
func NewRelativeCMStateLSJT(nr, lr, nc, lc, l, s, j, t int) RelativeCMStateLSJT {
	return RelativeCMStateLSJT{nr: nr, lr: lr, nc: nc, lc: lc, l: l, s: s, j: j, t: t}
}

func (st RelativeCMStateLSJT) Nr() int { return st.nr }
func (st RelativeCMStateLSJT) Lr() int { return st.lr }
func (st RelativeCMStateLSJT) Nc() int { return st.nc }
func (st RelativeCMStateLSJT) Lc() int { return st.lc }
func (st RelativeCMStateLSJT) L() int  { return st.l }
func (st RelativeCMStateLSJT) S() int  { return st.s }
func (st RelativeCMStateLSJT) J() int  { return st.j }
func (st RelativeCMStateLSJT) T() int  { return st.t }

// RelativeSubspaceLSJT is the set of radial excitations sharing the labels
// (L, S, J, T). The parity grade g is L mod 2; the radial quantum number
// runs 0..NMax with NMax fixed by the oscillator truncation.
type RelativeSubspaceLSJT struct {
	l, s, j, t int
	nmax       int
}

func (sp RelativeSubspaceLSJT) L() int    { return sp.l }
func (sp RelativeSubspaceLSJT) S() int    { return sp.s }
func (sp RelativeSubspaceLSJT) J() int    { return sp.j }
func (sp RelativeSubspaceLSJT) T() int    { return sp.t }
func (sp RelativeSubspaceLSJT) G() int    { return sp.l % 2 }
func (sp RelativeSubspaceLSJT) NMax() int { return sp.nmax }

// Size returns the number of radial states in the subspace.
func (sp RelativeSubspaceLSJT) Size() int { return sp.nmax + 1 }

// State returns the state with radial quantum number n = index.
func (sp RelativeSubspaceLSJT) State(index int) RelativeStateLSJT {
	return NewRelativeStateLSJT(index, sp.l, sp.s, sp.j, sp.t)
}

// RelativeSpaceLSJT enumerates all antisymmetry-allowed subspaces under an
// oscillator truncation 2n + L <= Nmax and a total angular momentum cap
// J <= Jmax. Enumeration order is lexicographic in (L, S, J, T) and
// deterministic.
type RelativeSpaceLSJT struct {
	nmax, jmax int
	subspaces  []RelativeSubspaceLSJT
}

// NewRelativeSpaceLSJT builds the truncated relative space.
func NewRelativeSpaceLSJT(nmax, jmax int) RelativeSpaceLSJT {
	space := RelativeSpaceLSJT{nmax: nmax, jmax: jmax}
	for l := 0; l <= nmax; l++ {
		for s := 0; s <= 1; s++ {
			jlo := l - s
			if jlo < 0 {
				jlo = -jlo
			}
			jhi := l + s
			if jhi > jmax {
				jhi = jmax
			}
			for j := jlo; j <= jhi; j++ {
				for t := 0; t <= 1; t++ {
					// Two-nucleon antisymmetry: L+S+T must be odd.
					if (l+s+t)%2 != 1 {
						continue
					}
					space.subspaces = append(space.subspaces, RelativeSubspaceLSJT{
						l: l, s: s, j: j, t: t,
						nmax: (nmax - l) / 2,
					})
				}
			}
		}
	}
	return space
}

func (sp RelativeSpaceLSJT) NMax() int { return sp.nmax }
func (sp RelativeSpaceLSJT) JMax() int { return sp.jmax }

// Size returns the number of subspaces.
func (sp RelativeSpaceLSJT) Size() int { return len(sp.subspaces) }

// Subspace returns the subspace at the given enumeration index.
func (sp RelativeSpaceLSJT) Subspace(index int) RelativeSubspaceLSJT {
	return sp.subspaces[index]
}

// Dimension returns the total number of states in the space.
func (sp RelativeSpaceLSJT) Dimension() int {
	dim := 0
	for _, sub := range sp.subspaces {
		dim += sub.Size()
	}
	return dim
}
