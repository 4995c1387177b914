// Package trajectory generates non-Cartesian k-space sample coordinates for
// use with the analytic synthesizer. Coordinates follow the BART traj
// convention (spokes spanning ±sx/2); callers of package kspace divide them
// by 2 to land in the synthesizer's normalized units.
package trajectory

import "math"

// goldenAngle is pi*(3 - sqrt(5)), the golden-angle increment in radians
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// Radial returns coordinates for a radial trajectory with sx samples along
// each of spokes uniformly rotated spokes. Spoke ii is rotated by
// ii/spokes*pi, so the set covers the half circle.
func Radial(sx, spokes int) (kx, ky []float64) {
	return radial(sx, spokes, func(ii int) float64 {
		return float64(ii) / float64(spokes) * math.Pi
	})
}

// RadialGolden is Radial with golden-angle spoke ordering, which keeps the
// angular coverage near-uniform for any prefix of the spoke sequence.
func RadialGolden(sx, spokes int) (kx, ky []float64) {
	return radial(sx, spokes, func(ii int) float64 {
		return goldenAngle * float64(ii)
	})
}

func radial(sx, spokes int, angle func(int) float64) (kx, ky []float64) {
	kx = make([]float64, sx*spokes)
	ky = make([]float64, sx*spokes)

	// Samples along one unrotated spoke, spanning [-sx/2, sx/2]
	x := make([]float64, sx)
	for i := range x {
		x[i] = (-1 + 2*float64(i)/float64(sx-1)) * float64(sx) / 2
	}

	for ii := 0; ii < spokes; ii++ {
		theta := angle(ii)
		ct := math.Cos(theta)
		st := math.Sin(theta)
		for i, xi := range x {
			kx[ii*sx+i] = xi * ct
			ky[ii*sx+i] = xi * st
		}
	}
	return kx, ky
}
