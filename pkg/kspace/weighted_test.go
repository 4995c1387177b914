package kspace

import (
	"math"
	"testing"

	"phantomgen/pkg/phantom"
)

// TestBesselRatioBranchAgreement verifies the direct Bessel ratio and its
// Taylor fallback agree near the branch point, so the kernel has no
// discontinuity at the crossover
func TestBesselRatioBranchAgreement(t *testing.T) {
	for _, m := range []float64{1e-12, 1e-11, 1e-10, 1e-9, 1e-8} {
		direct := math.J1(m) / m
		taylor := 0.5 * (1 - (m/2)*(m/2)/2)

		rel := math.Abs(direct-taylor) / taylor
		if rel > 1e-6 {
			t.Errorf("m=%g: branches disagree, direct=%v taylor=%v rel=%g", m, direct, taylor, rel)
		}
	}
}

// TestBesselRatioSmallArgument checks the fallback branch directly: it must
// return finite values approaching 1/2 as m goes to zero
func TestBesselRatioSmallArgument(t *testing.T) {
	if got := besselRatio(0); got != 0.5 {
		t.Errorf("besselRatio(0) = %v, want 0.5", got)
	}
	for _, m := range []float64{1e-300, 1e-30, 1e-11} {
		got := besselRatio(m)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("besselRatio(%g) = %v", m, got)
		}
		if math.Abs(got-0.5) > 1e-9 {
			t.Errorf("besselRatio(%g) = %v, want ~0.5", m, got)
		}
	}
}

// TestBesselRatioContinuityAtCrossover samples both sides of the branch
// point and requires them to be equal to working precision
func TestBesselRatioContinuityAtCrossover(t *testing.T) {
	below := besselRatio(kernelTolerance * (1 - 1e-9))
	above := besselRatio(kernelTolerance * (1 + 1e-9))

	rel := math.Abs(below-above) / above
	if rel > 1e-6 {
		t.Errorf("kernel discontinuous at crossover: below=%v above=%v rel=%g", below, above, rel)
	}
}

// TestWeightedEllipseScale verifies the 2*pi*det(D)*rho amplitude of the
// sensitivity-weighted kernel
func TestWeightedEllipseScale(t *testing.T) {
	e := phantom.Ellipse{Density: 2, SemiAxisA: 0.6, SemiAxisB: 0.4, Rotation: 0.3}
	w := newWeightedEllipse(e)

	// det(diag(A/2, B/2)) = A*B/4
	want := 2 * 2 * math.Pi * 0.6 * 0.4 / 4
	if math.Abs(w.scale-want) > 1e-12 {
		t.Errorf("scale = %v, want %v", w.scale, want)
	}
}

// TestWeightedEllipseTransformIsometry checks that the D*R^T entries embed
// the rotation as an isometry: row norms equal the halved semi-axes for any
// rotation angle
func TestWeightedEllipseTransformIsometry(t *testing.T) {
	e := phantom.Ellipse{Density: 1, SemiAxisA: 0.8, SemiAxisB: 0.2, Rotation: 1.1}
	w := newWeightedEllipse(e)

	row0 := math.Hypot(w.m00, w.m01)
	row1 := math.Hypot(w.m10, w.m11)
	if math.Abs(row0-e.SemiAxisA/2) > 1e-12 {
		t.Errorf("first row norm = %v, want %v", row0, e.SemiAxisA/2)
	}
	if math.Abs(row1-e.SemiAxisB/2) > 1e-12 {
		t.Errorf("second row norm = %v, want %v", row1, e.SemiAxisB/2)
	}
}

// TestAccumulateFiniteNearOrigin exercises the weighted kernel at samples
// where shifted frequencies pass through zero; the Taylor branch must keep
// everything finite
func TestAccumulateFiniteNearOrigin(t *testing.T) {
	e := phantom.Ellipse{Density: 1, SemiAxisA: 0.5, SemiAxisB: 0.5}
	w := newWeightedEllipse(e)

	coeffs, err := SensitivityCoefficients(0)
	if err != nil {
		t.Fatal(err)
	}
	freqs := basisFrequencies()

	// Sample at the negation of each basis frequency so one shifted
	// frequency lands exactly on the origin every time.
	for _, f := range freqs {
		out := make([]complex128, 1)
		w.accumulate(-f[0], -f[1], [][]complex128{coeffs}, freqs, out)
		if math.IsNaN(real(out[0])) || math.IsNaN(imag(out[0])) {
			t.Fatalf("sample at %v produced NaN", f)
		}
	}
}
