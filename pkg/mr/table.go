package mr

import (
	"math"

	"phantomgen/pkg/phantom"
)

// Region is one ellipsoid of the MR phantom: geometry plus spin density
// (carried in the Ellipsoid's Density field, negative for subtraction
// regions) and the tissue whose relaxation parameters apply.
type Region struct {
	Geometry phantom.Ellipsoid
	Tissue   Tissue
}

// baseRegion is a row of the paper's Table 2 before subtraction bookkeeping
type baseRegion struct {
	xc, yc, zc float64
	a, b, c    float64
	thetaDeg   float64
	m0         float64
	tissue     Tissue
}

var baseRegions = []baseRegion{
	{0, 0, 0, .72, .95, .93, 0, .8, Scalp},
	{0, 0, 0, .69, .92, .9, 0, .12, Marrow},
	{0, -.0184, 0, .6624, .874, .88, 0, .98, CSF},
	{0, -.0184, 0, .6524, .864, .87, 0, .745, GrayMatter},
	{-.22, 0, -.25, .41, .16, .21, -72, .98, CSF},
	{.22, 0, -.25, .31, .11, .22, 72, .98, CSF},
	{0, .35, -.25, .21, .25, .35, 0, .617, WhiteMatter},
	{0, .1, -.25, .046, .046, .046, 0, .95, Tumor},
	{-.08, -.605, -.25, .046, .023, .02, 0, .95, Tumor},
	{.06, -.605, -.25, .046, .023, .02, -90, .95, Tumor},
	{0, -.1, -.25, .046, .046, .046, 0, .95, Tumor},
	{0, -.605, -.25, .023, .023, .023, 0, .95, Tumor},
	{.06, -.105, .0625, .056, .04, .1, -90, .93, Tumor},
	{0, .1, .625, .056, .056, .1, 0, .98, CSF},
	{.56, -.4, -.25, .2, .03, .1, 70, .85, BloodClot},
}

// Regions returns the full MR Shepp-Logan ellipsoid table: the additive
// regions of the paper's table followed by the subtraction regions that
// carve each nested compartment out of its enclosing one.
//
// A subtraction region copies the geometry of an inner compartment and the
// tissue of the compartment that encloses it, with negated spin density.
// For the first three nested compartments the enclosing tissue is simply the
// previous row; everything deeper sits inside gray matter. As in the paper,
// the outermost region needs no subtraction and the final blood-clot row is
// left out entirely.
func Regions() []Region {
	base := baseRegions[:len(baseRegions)-1]

	regions := make([]Region, 0, 2*len(base)-1)
	for _, r := range base {
		regions = append(regions, r.region(1))
	}
	for i := 1; i < len(base); i++ {
		enclosing := i - 1
		if i > 3 {
			enclosing = 3
		}
		neg := baseRegions[i]
		neg.m0 = baseRegions[enclosing].m0
		neg.tissue = baseRegions[enclosing].tissue
		regions = append(regions, neg.region(-1))
	}
	return regions
}

func (r baseRegion) region(sign float64) Region {
	return Region{
		Geometry: phantom.Ellipsoid{
			Density:   sign * r.m0,
			SemiAxisA: r.a,
			SemiAxisB: r.b,
			SemiAxisC: r.c,
			CenterX:   r.xc,
			CenterY:   r.yc,
			CenterZ:   r.zc,
			Rotation:  r.thetaDeg * math.Pi / 180,
		},
		Tissue: r.tissue,
	}
}
