package phantom

import "math"

// Variant selects between the two built-in grayscale conventions for the
// Shepp-Logan phantom: the original values from the 1974 paper, or the
// modified values most implementations use for better contrast.
type Variant int

const (
	// Original uses the grayscale values as tabulated by Shepp and Logan
	Original Variant = iota

	// Modified uses the adjusted grayscale values (Toft's Table B.1)
	Modified
)

// sheppLoganDensities2D holds the per-ellipse density column for each variant
var sheppLoganDensities2D = map[Variant][10]float64{
	Original: {2, -.98, -.02, -.02, .01, .01, .01, .01, .01, .01},
	Modified: {1, -.8, -.2, -.2, .1, .1, .1, .1, .1, .1},
}

// SheppLogan2D returns the canonical 10-ellipse 2D Shepp-Logan head phantom.
// Geometry is identical between variants; only the densities differ.
func SheppLogan2D(variant Variant) *Table {
	densities := sheppLoganDensities2D[variant]

	// [A, B, xc, yc, theta(deg)] per ellipse, from the Shepp-Logan paper
	geom := [10][5]float64{
		{.69, .92, 0, 0, 0},
		{.6624, .874, 0, -.0184, 0},
		{.11, .31, .22, 0, -18},
		{.16, .41, -.22, 0, 18},
		{.21, .25, 0, .35, 0},
		{.046, .046, 0, .1, 0},
		{.046, .046, 0, -.1, 0},
		{.046, .023, -.08, -.605, 0},
		{.023, .023, 0, -.605, 0},
		{.023, .046, .06, -.605, 0},
	}

	ellipses := make([]Ellipse, len(geom))
	for i, g := range geom {
		ellipses[i] = Ellipse{
			Density:   densities[i],
			SemiAxisA: g[0],
			SemiAxisB: g[1],
			CenterX:   g[2],
			CenterY:   g[3],
			Rotation:  g[4] * math.Pi / 180,
		}
	}
	return &Table{ellipses: ellipses}
}

// SheppLogan3D returns the 10-ellipsoid 3D Shepp-Logan phantom following the
// values tabulated by Koay, Sarlls and Özarslan. Ellipsoids rotate in the XY
// plane only.
func SheppLogan3D(variant Variant) *Table3D {
	densities := sheppLoganDensities2D[variant]

	// [A, B, C, xc, yc, zc, theta(rad)] per ellipsoid
	geom := [10][7]float64{
		{.69, .92, .9, 0, 0, 0, 0},
		{.6624, .874, .88, 0, 0, 0, 0},
		{.41, .16, .21, -.22, 0, -.25, 3 * math.Pi / 5},
		{.31, .11, .22, .22, 0, -.25, 2 * math.Pi / 5},
		{.21, .25, .5, 0, .35, -.25, 0},
		{.046, .046, .046, 0, .1, -.25, 0},
		{.046, .023, .02, -.08, -.65, -.25, 0},
		{.046, .023, .02, .06, -.65, -.25, math.Pi / 2},
		{.056, .04, .1, .06, -.105, .625, math.Pi / 2},
		{.056, .056, .1, 0, .1, .625, 0},
	}

	// The 3D original densities differ from 2D only in magnitude pattern;
	// the Koay table uses the same signed sequence as the 2D paper values.
	var d [10]float64
	if variant == Original {
		d = [10]float64{2, -.8, -.2, -.2, .2, .2, .1, .1, .2, -.2}
	} else {
		d = densities
	}

	ellipsoids := make([]Ellipsoid, len(geom))
	for i, g := range geom {
		ellipsoids[i] = Ellipsoid{
			Density:   d[i],
			SemiAxisA: g[0],
			SemiAxisB: g[1],
			SemiAxisC: g[2],
			CenterX:   g[3],
			CenterY:   g[4],
			CenterZ:   g[5],
			Rotation:  g[6],
		}
	}
	return &Table3D{ellipsoids: ellipsoids}
}
