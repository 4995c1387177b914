// Package kspace synthesizes analytic frequency-domain (k-space)
// measurements of ellipse-superposition phantoms at arbitrary, non-gridded
// sample coordinates, optionally weighted by simulated receiver-coil
// sensitivity profiles.
//
// The continuous Fourier transform of a rotated, shifted ellipse is known in
// closed form (a first-order Bessel kernel with a removable singularity at
// the origin), so no grid or fast transform is involved: every sample is
// evaluated exactly, and a phantom's spectrum is the sum of its ellipses'
// spectra.
//
// Coordinate convention: the phantom occupies the [-1, 1] square, and
// sample coordinates are interpreted in the matching normalized frequency
// units. Trajectory generators that follow the BART convention (such as
// package trajectory) produce coordinates that the caller must divide by 2
// before synthesis; the scaling is deliberately left to the call site.
package kspace

import (
	"math"
	"math/cmplx"

	"phantomgen/pkg/phantom"
)

// originTolerance bounds the frequency magnitude below which a sample is
// treated as the DC point and evaluated through the closed-form limit
// instead of the general Bessel ratio.
const originTolerance = 1e-12

// EllipseSpectrum evaluates the continuous 2D Fourier transform of a single
// uniform-density ellipse at the frequency coordinate (kx, ky).
//
// For k away from the origin this is
//
//	F(k) = rho*A*B * exp(-i*2*pi*kappa*t*cos(gamma-theta)) * J1(2*pi*a(theta)*kappa) / (a(theta)*kappa)
//
// where theta and kappa are the angle and magnitude of k, t and gamma are
// the magnitude and angle of the ellipse center, and a(theta) is the
// direction-dependent effective radius of the rotated ellipse. The ratio
// J1(x)/x has a removable singularity at the origin, so samples at (or
// within floating-point tolerance of) k = 0 take the closed-form limit
// rho*A*B*2*pi rather than dividing.
func EllipseSpectrum(kx, ky float64, e phantom.Ellipse) complex128 {
	kappa := math.Hypot(kx, ky)
	if kappa <= originTolerance {
		return complex(e.Density*e.SemiAxisA*e.SemiAxisB*2*math.Pi, 0)
	}

	theta := math.Atan2(ky, kx)
	t := math.Hypot(e.CenterX, e.CenterY)
	gamma := math.Atan2(e.CenterY, e.CenterX)

	ak := effectiveRadius(e.SemiAxisA, e.SemiAxisB, theta, e.Rotation) * kappa
	mag := e.Density * e.SemiAxisA * e.SemiAxisB * math.J1(2*math.Pi*ak) / ak
	phase := -2 * math.Pi * kappa * t * math.Cos(gamma-theta)

	return complex(mag, 0) * cmplx.Exp(complex(0, phase))
}

// effectiveRadius returns the radius of the rotated ellipse as seen from
// direction theta: sqrt(A^2 cos^2(theta-alpha) + B^2 sin^2(theta-alpha))
func effectiveRadius(a, b, theta, alpha float64) float64 {
	ct := math.Cos(theta - alpha)
	st := math.Sin(theta - alpha)
	return math.Sqrt(a*a*ct*ct + b*b*st*st)
}
