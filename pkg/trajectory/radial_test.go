package trajectory

import (
	"math"
	"testing"
)

// TestRadialShape verifies sample counts and the BART-style spoke extent
func TestRadialShape(t *testing.T) {
	const sx, spokes = 128, 16
	kx, ky := Radial(sx, spokes)

	if len(kx) != sx*spokes || len(ky) != sx*spokes {
		t.Fatalf("got %d/%d coordinates, want %d", len(kx), len(ky), sx*spokes)
	}

	// First spoke lies along the x axis, spanning [-sx/2, sx/2]
	if math.Abs(kx[0]+float64(sx)/2) > 1e-12 {
		t.Errorf("first spoke start kx = %v, want %v", kx[0], -float64(sx)/2)
	}
	if math.Abs(kx[sx-1]-float64(sx)/2) > 1e-12 {
		t.Errorf("first spoke end kx = %v, want %v", kx[sx-1], float64(sx)/2)
	}
	for i := 0; i < sx; i++ {
		if math.Abs(ky[i]) > 1e-12 {
			t.Fatalf("first spoke sample %d has ky = %v, want 0", i, ky[i])
		}
	}
}

// TestRadialSpokeAngles verifies uniform angular spacing over the half circle
func TestRadialSpokeAngles(t *testing.T) {
	const sx, spokes = 64, 8
	kx, ky := Radial(sx, spokes)

	for ii := 0; ii < spokes; ii++ {
		// Use the spoke's last sample (positive radius) to read the angle
		last := ii*sx + sx - 1
		got := math.Atan2(ky[last], kx[last])
		want := float64(ii) / spokes * math.Pi
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("spoke %d angle = %v, want %v", ii, got, want)
		}
	}
}

// TestRadialSampleMagnitudes verifies each sample's radius is preserved
// under spoke rotation
func TestRadialSampleMagnitudes(t *testing.T) {
	const sx, spokes = 32, 5
	kx, ky := Radial(sx, spokes)

	for ii := 1; ii < spokes; ii++ {
		for i := 0; i < sx; i++ {
			r0 := math.Hypot(kx[i], ky[i])
			r := math.Hypot(kx[ii*sx+i], ky[ii*sx+i])
			if math.Abs(r-r0) > 1e-12 {
				t.Fatalf("spoke %d sample %d radius %v, want %v", ii, i, r, r0)
			}
		}
	}
}

// TestRadialGolden verifies golden-angle ordering differs from uniform and
// uses the golden-angle increment
func TestRadialGolden(t *testing.T) {
	const sx, spokes = 32, 8
	kx, ky := RadialGolden(sx, spokes)

	if len(kx) != sx*spokes {
		t.Fatalf("got %d coordinates, want %d", len(kx), sx*spokes)
	}

	// Second spoke angle must be the golden angle
	last := sx + sx - 1
	got := math.Atan2(ky[last], kx[last])
	want := math.Mod(math.Pi*(3-math.Sqrt(5)), 2*math.Pi)
	if want > math.Pi {
		want -= 2 * math.Pi
	}
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("golden spoke 1 angle = %v, want %v", got, want)
	}
}
