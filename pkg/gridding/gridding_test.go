package gridding

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"phantomgen/pkg/kspace"
	"phantomgen/pkg/phantom"
	"phantomgen/pkg/raster"
)

// TestCartesianGrid verifies the raster layout and centering of the
// coordinate generator
func TestCartesianGrid(t *testing.T) {
	const n = 8
	kx, ky := CartesianGrid(n)

	if len(kx) != n*n || len(ky) != n*n {
		t.Fatalf("got %d/%d coordinates, want %d", len(kx), len(ky), n*n)
	}

	// Top-left corner and exact DC location
	if kx[0] != -4 || ky[0] != -4 {
		t.Errorf("corner = (%v, %v), want (-4, -4)", kx[0], ky[0])
	}
	center := (n/2)*n + n/2
	if kx[center] != 0 || ky[center] != 0 {
		t.Errorf("center = (%v, %v), want (0, 0)", kx[center], ky[center])
	}
}

// TestInvertImpulse checks that a unit impulse at DC inverts to a constant
// image
func TestInvertImpulse(t *testing.T) {
	const n = 8
	samples := make([]complex128, n*n)
	samples[(n/2)*n+n/2] = 1

	image, err := NewGridder(n).Invert(samples)
	if err != nil {
		t.Fatal(err)
	}

	want := 1 / float64(n*n)
	for i, c := range image {
		if math.Abs(real(c)-want) > 1e-12 || math.Abs(imag(c)) > 1e-12 {
			t.Fatalf("pixel %d = %v, want %v", i, c, want)
		}
	}
}

// TestInvertShapeError verifies sample-count validation
func TestInvertShapeError(t *testing.T) {
	_, err := NewGridder(8).Invert(make([]complex128, 63))
	var shapeErr *phantom.ShapeError
	if !errors.As(err, &shapeErr) {
		t.Errorf("got %v, want ShapeError", err)
	}
}

// TestInvertLinearity verifies the transform is linear, which the phantom
// superposition property depends on
func TestInvertLinearity(t *testing.T) {
	const n = 8
	a := make([]complex128, n*n)
	b := make([]complex128, n*n)
	sum := make([]complex128, n*n)
	for i := range a {
		a[i] = complex(float64(i%5), float64(i%3))
		b[i] = complex(float64(i%7), -float64(i%2))
		sum[i] = a[i] + b[i]
	}

	g := NewGridder(n)
	ia, err := g.Invert(a)
	if err != nil {
		t.Fatal(err)
	}
	ib, err := g.Invert(b)
	if err != nil {
		t.Fatal(err)
	}
	isum, err := g.Invert(sum)
	if err != nil {
		t.Fatal(err)
	}

	for i := range isum {
		if cmplx.Abs(isum[i]-(ia[i]+ib[i])) > 1e-9 {
			t.Fatalf("pixel %d: invert not linear", i)
		}
	}
}

// TestGriddedPhantomMatchesRaster is the end-to-end validation: analytic
// k-space sampled on a Cartesian grid, inverted, must resemble the
// rasterized phantom
func TestGriddedPhantomMatchesRaster(t *testing.T) {
	const n = 32
	table, err := phantom.NewTable([]phantom.Ellipse{
		{Density: 1, SemiAxisA: 0.5, SemiAxisB: 0.5},
	})
	if err != nil {
		t.Fatal(err)
	}

	kx, ky := CartesianGrid(n)
	for i := range kx {
		kx[i] /= 2
		ky[i] /= 2
	}
	samples, err := kspace.Synthesize(kx, ky, table)
	if err != nil {
		t.Fatal(err)
	}

	image, err := NewGridder(n).Invert(samples)
	if err != nil {
		t.Fatal(err)
	}

	reference := raster.Render2D(table, n, n)
	metrics, err := Compare(Magnitude(image), reference.Data)
	if err != nil {
		t.Fatal(err)
	}

	if metrics.Correlation < 0.7 {
		t.Errorf("gridded image correlation %v too low", metrics.Correlation)
	}
	if metrics.RMSE > 0.5 {
		t.Errorf("gridded image RMSE %v too high", metrics.RMSE)
	}
}

// TestCompare verifies the metric computations and shape validation
func TestCompare(t *testing.T) {
	a := []float64{0, 1, 2, 3}
	m, err := Compare(a, a)
	if err != nil {
		t.Fatal(err)
	}
	if m.RMSE != 0 {
		t.Errorf("self-comparison RMSE = %v, want 0", m.RMSE)
	}
	if math.Abs(m.Correlation-1) > 1e-12 {
		t.Errorf("self-comparison correlation = %v, want 1", m.Correlation)
	}

	// Scaling either image must not change the metrics (unit-peak norm)
	scaled := []float64{0, 10, 20, 30}
	m2, err := Compare(a, scaled)
	if err != nil {
		t.Fatal(err)
	}
	if m2.RMSE > 1e-12 {
		t.Errorf("scaled comparison RMSE = %v, want 0", m2.RMSE)
	}

	if _, err := Compare(a, a[:3]); err == nil {
		t.Error("length mismatch accepted")
	}
}
