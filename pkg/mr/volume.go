package mr

import (
	"fmt"
	"math"
	"sync"

	"phantomgen/internal/models"
	"phantomgen/pkg/raster"
)

// gyromagneticRatio is the hydrogen gyromagnetic ratio, 267.52219e6 rad/s/T,
// kept in the 1e6 scale the susceptibility values pair with
const gyromagneticRatio = 267.52219

// VolumeParams configures MR phantom volume synthesis
type VolumeParams struct {
	// Width, Height, Depth are the output grid dimensions
	Width  int
	Height int
	Depth  int

	// ZMin and ZMax bound the rendered z extent; zero values mean the
	// full [-1, 1] range.
	ZMin float64
	ZMax float64

	// B0 is the main field strength in Tesla; zero means 3T
	B0 float64

	// T2Star, when set, folds susceptibility-induced dephasing into the
	// transverse relaxation map, returning T2* instead of T2
	T2Star bool

	// Regions overrides the built-in region table when non-nil
	Regions []Region
}

// Volumes holds the tissue-parameter maps of a synthesized MR phantom
type Volumes struct {
	// M0 is the spin (proton) density
	M0 *models.Volume

	// T1 is the longitudinal relaxation time in seconds
	T1 *models.Volume

	// T2 is the transverse relaxation time in seconds (T2* if requested)
	T2 *models.Volume
}

// SheppLogan synthesizes the MR Shepp-Logan phantom's M0, T1 and T2 volumes.
// Each region contributes additively inside its ellipsoid; subtraction
// regions (negative spin density) remove the enclosing compartment's
// contribution so nested tissues end up with their own parameters.
func SheppLogan(params *VolumeParams) (*Volumes, error) {
	if params.Width < 1 || params.Height < 1 || params.Depth < 1 {
		return nil, fmt.Errorf("volume dimensions must be positive, got %dx%dx%d",
			params.Width, params.Height, params.Depth)
	}
	zmin, zmax := params.ZMin, params.ZMax
	if zmin == 0 && zmax == 0 {
		zmin, zmax = -1, 1
	}
	if zmin > zmax {
		return nil, fmt.Errorf("z bounds out of order: %g > %g", zmin, zmax)
	}
	b0 := params.B0
	if b0 == 0 {
		b0 = 3
	}

	regions := params.Regions
	if regions == nil {
		regions = Regions()
	}

	// Resolve relaxation parameters once per region
	type resolved struct {
		Region
		sign float64
		t1   float64
		t2   float64
	}
	rs := make([]resolved, len(regions))
	for i, r := range regions {
		relax, err := RelaxationFor(r.Tissue)
		if err != nil {
			return nil, err
		}
		sign := 1.0
		if r.Geometry.Density < 0 {
			sign = -1
		}
		t2 := relax.T2
		if params.T2Star {
			t2 = 1 / (1/relax.T2 + gyromagneticRatio*math.Abs(b0*relax.Chi))
		}
		rs[i] = resolved{Region: r, sign: sign, t1: relax.T1.Value(b0), t2: t2}
	}

	m0 := models.NewVolume(params.Width, params.Height, params.Depth)
	t1 := models.NewVolume(params.Width, params.Height, params.Depth)
	t2 := models.NewVolume(params.Width, params.Height, params.Depth)

	var wg sync.WaitGroup
	for pz := 0; pz < params.Depth; pz++ {
		wg.Add(1)
		go func(pz int) {
			defer wg.Done()
			z := zmin
			if params.Depth > 1 {
				z = zmin + (zmax-zmin)*float64(pz)/float64(params.Depth-1)
			}
			for py := 0; py < params.Height; py++ {
				y := axisCoord(py, params.Height)
				for px := 0; px < params.Width; px++ {
					x := axisCoord(px, params.Width)
					for _, r := range rs {
						if raster.InsideEllipsoid(x, y, z, r.Geometry) {
							m0.Add(px, py, pz, r.Geometry.Density)
							t1.Add(px, py, pz, r.sign*r.t1)
							t2.Add(px, py, pz, r.sign*r.t2)
						}
					}
				}
			}
		}(pz)
	}
	wg.Wait()

	return &Volumes{M0: m0, T1: t1, T2: t2}, nil
}

// axisCoord maps sample index i of n onto [-1, 1]
func axisCoord(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return -1 + 2*float64(i)/float64(n-1)
}
