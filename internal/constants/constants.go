// Package constants collects the physical constants and low-energy constants
// used by the chiral operator evaluators.
//
// Conventions:
//   - Dimensionful constants carry their unit in the name. Quantities with the
//     Fm suffix are expressed in femtometer units (masses as inverse lengths,
//     via hbar*c), which is what the coordinate-space evaluators consume.
//   - Magnetic moments are quoted in nuclear magnetons.
//
// Low-energy constants (d9, d18, L2) are fit parameters of the chiral
// Lagrangian, not measured quantities. The values here are the fit used for
// the published M1 matrix elements; changing the fit means changing these
// numbers and nothing else.
package constants

import "math"

// Fundamental scales.
const (
	// HBarC is hbar*c in MeV fm.
	HBarC = 197.3269804

	Pi = math.Pi
)

// Nucleon and pion masses.
const (
	// NucleonMassMeV is the isospin-averaged nucleon mass.
	NucleonMassMeV = 938.9187

	// ReducedNucleonMassMeV is the reduced mass of the two-nucleon system.
	ReducedNucleonMassMeV = NucleonMassMeV / 2

	// PionMassMeV is the isospin-averaged pion mass.
	PionMassMeV = 138.0390

	// PionDecayConstantMeV is F_pi.
	PionDecayConstantMeV = 92.4
)

// The same scales as inverse lengths (1/fm) or lengths (fm).
const (
	NucleonMassFm        = NucleonMassMeV / HBarC
	ReducedNucleonMassFm = ReducedNucleonMassMeV / HBarC
	PionMassFm           = PionMassMeV / HBarC
	PionDecayConstantFm  = PionDecayConstantMeV / HBarC
	NuclearMagnetonFm    = HBarC / (2 * 938.2720813) // hbar/(2 m_p c), fm
)

// Couplings and magnetic moments.
const (
	// GA is the axial coupling constant.
	GA = 1.29

	// ProtonMagneticMoment and NeutronMagneticMoment in nuclear magnetons.
	ProtonMagneticMoment  = 2.7928473446
	NeutronMagneticMoment = -1.9130427345

	// IsoscalarNucleonMagneticMoment is mu_p + mu_n, the coefficient of the
	// isoscalar one-body spin term.
	IsoscalarNucleonMagneticMoment = ProtonMagneticMoment + NeutronMagneticMoment

	// IsovectorNucleonMagneticMoment is mu_p - mu_n.
	IsovectorNucleonMagneticMoment = ProtonMagneticMoment - NeutronMagneticMoment
)

// Low-energy constants entering the two-body currents, in fm powers.
const (
	// D9Fm is the d9 LEC of the N3LO isoscalar two-body current (fm^3).
	D9Fm = -0.0019

	// D18Fm is the d-bar-18 LEC of the NLO two-body current (fm^3).
	D18Fm = -0.0514

	// L2Fm is the isoscalar contact LEC of the N3LO L2 term (fm).
	L2Fm = 0.1490
)
