package basis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRelativeSpaceLSJT_SmallestSpace(t *testing.T) {
	// Nmax = 0, Jmax = 1: the 1S0 channel (T = 1) and the 3S1 channel
	// (T = 0), one radial state each.
	space := NewRelativeSpaceLSJT(0, 1)
	require.Equal(t, 2, space.Size())
	assert.Equal(t, 2, space.Dimension())

	seen := map[[4]int]int{}
	for i := 0; i < space.Size(); i++ {
		sub := space.Subspace(i)
		seen[[4]int{sub.L(), sub.S(), sub.J(), sub.T()}] = sub.Size()
	}
	assert.Equal(t, map[[4]int]int{
		{0, 0, 0, 1}: 1,
		{0, 1, 1, 0}: 1,
	}, seen)
}

func TestNewRelativeSpaceLSJT_CountsNmax2(t *testing.T) {
	space := NewRelativeSpaceLSJT(2, 2)
	assert.Equal(t, 9, space.Size())
	assert.Equal(t, 11, space.Dimension())
}

func TestRelativeSubspaceLSJT_AntisymmetryConstraint(t *testing.T) {
	// Every subspace satisfies L + S + T odd.
	space := NewRelativeSpaceLSJT(4, 3)
	for i := 0; i < space.Size(); i++ {
		sub := space.Subspace(i)
		assert.Equal(t, 1, (sub.L()+sub.S()+sub.T())%2,
			"L=%d S=%d T=%d", sub.L(), sub.S(), sub.T())
	}
}

func TestRelativeSubspaceLSJT_States(t *testing.T) {
	space := NewRelativeSpaceLSJT(4, 1)
	for i := 0; i < space.Size(); i++ {
		sub := space.Subspace(i)
		require.Equal(t, sub.NMax()+1, sub.Size())
		for k := 0; k < sub.Size(); k++ {
			st := sub.State(k)
			assert.Equal(t, k, st.N())
			assert.Equal(t, sub.L(), st.L())
			assert.Equal(t, sub.S(), st.S())
			assert.Equal(t, sub.J(), st.J())
			assert.Equal(t, sub.T(), st.T())
			// 2n + l stays inside the truncation.
			assert.LessOrEqual(t, 2*st.N()+st.L(), space.NMax())
		}
	}
}

func TestNewRelativeSectorsLSJT_ScalarDiagonal(t *testing.T) {
	// A scalar isoscalar operator on the smallest space couples each
	// subspace only to itself.
	space := NewRelativeSpaceLSJT(0, 1)
	sectors := NewRelativeSectorsLSJT(space, 0, 0, 0)
	require.Equal(t, 2, sectors.Size())
	for i := 0; i < sectors.Size(); i++ {
		assert.True(t, sectors.Sector(i).IsDiagonal())
	}
	assert.Equal(t, 2, UpperTriangularEntries(sectors))
}

func TestNewRelativeSectorsLSJT_DipoleIsovector(t *testing.T) {
	// A (J0 = 1, T0 = 1) operator on the smallest space has exactly one
	// sector, 1S0 to 3S1.
	space := NewRelativeSpaceLSJT(0, 1)
	sectors := NewRelativeSectorsLSJT(space, 1, 0, 1)
	require.Equal(t, 1, sectors.Size())
	sec := sectors.Sector(0)
	assert.False(t, sec.IsDiagonal())
	assert.Equal(t, 1, UpperTriangularEntries(sectors))
}

func TestNewRelativeSectorsLSJT_UpperTriangular(t *testing.T) {
	space := NewRelativeSpaceLSJT(4, 3)
	sectors := NewRelativeSectorsLSJT(space, 1, 0, 1)
	for i := 0; i < sectors.Size(); i++ {
		sec := sectors.Sector(i)
		assert.LessOrEqual(t, sec.BraIndex(), sec.KetIndex())
	}
}
