package basis

// RelativeSectorLSJT is one (bra subspace, ket subspace) block of an
// operator of fixed tensor character.
type RelativeSectorLSJT struct {
	braIndex, ketIndex int
	bra, ket           RelativeSubspaceLSJT
}

func (sec RelativeSectorLSJT) BraIndex() int                     { return sec.braIndex }
func (sec RelativeSectorLSJT) KetIndex() int                     { return sec.ketIndex }
func (sec RelativeSectorLSJT) BraSubspace() RelativeSubspaceLSJT { return sec.bra }
func (sec RelativeSectorLSJT) KetSubspace() RelativeSubspaceLSJT { return sec.ket }

// IsDiagonal reports whether bra and ket are the same subspace.
func (sec RelativeSectorLSJT) IsDiagonal() bool { return sec.braIndex == sec.ketIndex }

// RelativeSectorsLSJT is the upper-triangular sector enumeration of an
// operator with angular rank J0, parity grade G0 and isospin transfer rank
// T0 over a relative space.
type RelativeSectorsLSJT struct {
	sectors []RelativeSectorLSJT
}

// NewRelativeSectorsLSJT enumerates all allowed sectors: subspace pairs with
// braIndex <= ketIndex satisfying the J triangle rule with J0, parity
// conservation modulo G0, and the isospin constraint
// |T - T'| <= T0 <= T + T'.
func NewRelativeSectorsLSJT(space RelativeSpaceLSJT, j0, g0, t0 int) RelativeSectorsLSJT {
	var sectors RelativeSectorsLSJT
	for bi := 0; bi < space.Size(); bi++ {
		bra := space.Subspace(bi)
		for ki := bi; ki < space.Size(); ki++ {
			ket := space.Subspace(ki)
			if !triangle(bra.J(), j0, ket.J()) {
				continue
			}
			if (bra.G()+ket.G()+g0)%2 != 0 {
				continue
			}
			dt := bra.T() - ket.T()
			if dt < 0 {
				dt = -dt
			}
			if t0 < dt || t0 > bra.T()+ket.T() {
				continue
			}
			sectors.sectors = append(sectors.sectors, RelativeSectorLSJT{
				braIndex: bi, ketIndex: ki, bra: bra, ket: ket,
			})
		}
	}
	return sectors
}

// Size returns the number of sectors.
func (s RelativeSectorsLSJT) Size() int { return len(s.sectors) }

// Sector returns the sector at the given index.
func (s RelativeSectorsLSJT) Sector(index int) RelativeSectorLSJT { return s.sectors[index] }

// UpperTriangularEntries counts the independent matrix elements across all
// sectors: the upper triangle (diagonal included) of diagonal sectors plus
// every entry of off-diagonal sectors.
func UpperTriangularEntries(s RelativeSectorsLSJT) int {
	entries := 0
	for _, sec := range s.sectors {
		if sec.IsDiagonal() {
			n := sec.bra.Size()
			entries += n * (n + 1) / 2
		} else {
			entries += sec.bra.Size() * sec.ket.Size()
		}
	}
	return entries
}

func triangle(a, b, c int) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return c >= d && c <= a+b
}
