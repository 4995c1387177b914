package kspace

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"phantomgen/pkg/phantom"
)

// kernelTolerance is the argument magnitude below which the modulus Bessel
// kernel switches to its second-order Taylor expansion. Dividing J1(m) by m
// near zero loses accuracy to cancellation long before it overflows, so the
// branch point is well above the underflow regime.
const kernelTolerance = 1e-10

// weightedEllipse holds the per-ellipse constants of the sensitivity-weighted
// spectrum: the combined scale+rotation transform D*R^T that maps a shifted
// frequency to the argument of the modulus Bessel kernel, and the overall
// amplitude 2*pi*det(D)*rho.
//
// Multiplying the object by a sensitivity field in the image domain is a
// convolution in the frequency domain; with the sinusoidal sensitivity basis
// that convolution collapses to a finite sum over basis frequencies, each
// shifting the sample coordinate before evaluation.
type weightedEllipse struct {
	xc, yc float64
	scale  float64

	// entries of D*R^T, D = diag(A/2, B/2)
	m00, m01, m10, m11 float64
}

func newWeightedEllipse(e phantom.Ellipse) weightedEllipse {
	ct := math.Cos(e.Rotation)
	st := math.Sin(e.Rotation)
	rmat := mat.NewDense(2, 2, []float64{ct, -st, st, ct})
	dmat := mat.NewDiagDense(2, []float64{e.SemiAxisA / 2, e.SemiAxisB / 2})

	var dr mat.Dense
	dr.Mul(dmat, rmat.T())

	return weightedEllipse{
		xc:    e.CenterX,
		yc:    e.CenterY,
		scale: e.Density * 2 * math.Pi * mat.Det(dmat),
		m00:   dr.At(0, 0),
		m01:   dr.At(0, 1),
		m10:   dr.At(1, 0),
		m11:   dr.At(1, 1),
	}
}

// accumulate adds this ellipse's per-coil k-space contribution at sample
// (kx, ky) into out, one entry per coil. coeffs holds one coefficient vector
// per coil and freqs the shared basis frequencies.
func (w weightedEllipse) accumulate(kx, ky float64, coeffs [][]complex128, freqs [][2]float64, out []complex128) {
	for n, f := range freqs {
		sx := f[0] + kx
		sy := f[1] + ky

		wx := -2 * math.Pi * (w.m00*sx + w.m01*sy)
		wy := -2 * math.Pi * (w.m10*sx + w.m11*sy)
		g := besselRatio(math.Hypot(wx, wy))

		basis := complex(g, 0) * cmplx.Exp(complex(0, 2*math.Pi*(w.xc*sx+w.yc*sy)))
		basis *= complex(w.scale, 0)
		for c := range out {
			out[c] += coeffs[c][n] * basis
		}
	}
}

// besselRatio evaluates J1(m)/m with a Taylor fallback for small arguments.
// The two branches agree to better than 1e-6 relative error at the
// crossover, so the kernel is continuous to working precision.
func besselRatio(m float64) float64 {
	if m >= kernelTolerance {
		return math.J1(m) / m
	}
	half := m / 2
	return 0.5 * (1 - half*half/2)
}
