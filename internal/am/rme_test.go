package am

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpinSymmetricRME_EqualsIsospin(t *testing.T) {
	// In the projection normalization the symmetric Pauli RME is the
	// stretched-state expectation value, i.e. T itself.
	assert.InDelta(t, 0.0, SpinSymmetricRME(0, 0), tol)
	assert.InDelta(t, 1.0, SpinSymmetricRME(1, 1), tol)
	assert.Zero(t, SpinSymmetricRME(0, 1))
	assert.Zero(t, SpinSymmetricRME(1, 0))
}

func TestSpinAntisymmetricRME_ConnectsSingletTriplet(t *testing.T) {
	assert.InDelta(t, 1.0, SpinAntisymmetricRME(1, 0), tol)
	assert.InDelta(t, 1.0, SpinAntisymmetricRME(0, 1), tol)
	assert.Zero(t, SpinAntisymmetricRME(0, 0))
	assert.Zero(t, SpinAntisymmetricRME(1, 1))
}

func TestPauliProductRME_Rank0_IsDotProduct(t *testing.T) {
	// [tau1 x tau2]^0 = -tau1.tau2/sqrt(3), with tau1.tau2 = 2T(T+1)-3.
	assert.InDelta(t, math.Sqrt(3), PauliProductRME(0, 0, 0), tol)
	assert.InDelta(t, -1/math.Sqrt(3), PauliProductRME(1, 1, 0), tol)
}

func TestRelativeSpinSymmetricRME_DeuteronSWave(t *testing.T) {
	// Triplet S wave: the total spin RME in the projection normalization is
	// the stretched expectation value of S_z, exactly 1.
	got := RelativeSpinSymmetricRME(0, 0, 1, 1, 1, 1, 0, 1)
	assert.InDelta(t, 1.0, got, tol)
}

func TestRelativeSpinSymmetricRME_SpinFlipZero(t *testing.T) {
	assert.Zero(t, RelativeSpinSymmetricRME(0, 0, 0, 1, 1, 1, 0, 1))
	assert.Zero(t, RelativeSpinSymmetricRME(0, 0, 1, 0, 1, 1, 0, 1))
}

func TestRelativeLrelRME_StretchedExpectation(t *testing.T) {
	// With s = 0 and j = l the stretched state has L_z = l.
	assert.InDelta(t, 1.0, RelativeLrelRME(1, 1, 0, 0, 1, 1), tol)
	assert.InDelta(t, 2.0, RelativeLrelRME(2, 2, 0, 0, 2, 2), tol)
	// S wave carries no orbital angular momentum.
	assert.Zero(t, RelativeLrelRME(0, 0, 1, 1, 1, 1))
	// Off-diagonal in l vanishes.
	assert.Zero(t, RelativeLrelRME(2, 0, 1, 1, 1, 1))
	// High partial waves keep the ladder value, l = 30 here.
	assert.InDelta(t, 30.0, RelativeLrelRME(30, 30, 1, 1, 31, 31), 1e-9)
}

func TestRelativeCMSpinSymmetricRME_ReducesToRelative(t *testing.T) {
	// A CM-scalar operator over an s-wave CM component must reproduce the
	// pure relative RME.
	rel := RelativeSpinSymmetricRME(0, 0, 1, 1, 1, 1, 0, 1)
	cm := RelativeCMSpinSymmetricRME(0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 1)
	assert.InDelta(t, rel, cm, tol)
}

func TestRelativeCMLsumRME_Diagonal(t *testing.T) {
	// Stretched expectation of L_z for L = 1, s = 0, j = 1.
	assert.InDelta(t, 1.0, RelativeCMLsumRME(1, 1, 0, 0, 1, 1, 0, 0, 1, 1), tol)
	// Vanishes off-diagonal in the orbital labels.
	assert.Zero(t, RelativeCMLsumRME(1, 0, 0, 1, 1, 1, 0, 0, 1, 1))
}

func TestRadiusME_LadderStructure(t *testing.T) {
	assert.InDelta(t, math.Sqrt(1.5), RadiusME(0, 0, 1, 0), tol)
	assert.InDelta(t, math.Sqrt(1.5), RadiusME(0, 0, 0, 1), tol)
	assert.InDelta(t, -1.0, RadiusME(0, 1, 2, 1), tol)
	assert.Zero(t, RadiusME(0, 0, 0, 0))
	assert.Zero(t, RadiusME(0, 0, 2, 0))
}

func TestGradientME_SignsFlipOnNChange(t *testing.T) {
	// Same magnitudes as the radius ladder, with flipped down-ladder signs.
	assert.InDelta(t, RadiusME(0, 0, 1, 0), GradientME(0, 0, 1, 0), tol)
	assert.InDelta(t, -RadiusME(0, 0, 0, 1), GradientME(0, 0, 0, 1), tol)
	assert.InDelta(t, -RadiusME(0, 1, 2, 1), GradientME(0, 1, 2, 1), tol)
}
