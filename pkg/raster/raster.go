// Package raster renders phantoms in the spatial (image) domain by pointwise
// ellipse membership testing over a regular grid. The phantom occupies the
// [-1, 1] square (or cube); overlapping regions accumulate additively, so
// negative-density records carve compartments out of enclosing ones.
package raster

import (
	"fmt"
	"math"
	"sync"

	"phantomgen/internal/models"
	"phantomgen/pkg/phantom"
)

// Render2D rasterizes a 2D ellipse table onto a width x height grid. Pixel
// (x, y) maps to (-1 + 2x/(width-1), -1 + 2y/(height-1)) in phantom
// coordinates, y increasing upward.
func Render2D(table *phantom.Table, width, height int) *models.Grid {
	grid := models.NewGrid(width, height)
	ellipses := table.Ellipses()

	for py := 0; py < height; py++ {
		y := gridCoord(py, height)
		for px := 0; px < width; px++ {
			x := gridCoord(px, width)
			var val float64
			for _, e := range ellipses {
				if insideEllipse(x, y, e) {
					val += e.Density
				}
			}
			grid.Data[py*width+px] = val
		}
	}
	return grid
}

// Render3D rasterizes an ellipsoid table onto a width x height x depth
// volume. The z extent is restricted to [zmin, zmax], which is how callers
// render only the middle portion of a phantom (e.g. zmin, zmax = -0.5, 0.5).
// Slices along z are rendered in parallel; they are independent.
func Render3D(table *phantom.Table3D, width, height, depth int, zmin, zmax float64) (*models.Volume, error) {
	if zmin > zmax {
		return nil, fmt.Errorf("z bounds out of order: %g > %g", zmin, zmax)
	}

	vol := models.NewVolume(width, height, depth)
	ellipsoids := table.Ellipsoids()

	var wg sync.WaitGroup
	for pz := 0; pz < depth; pz++ {
		wg.Add(1)
		go func(pz int) {
			defer wg.Done()
			z := zmin
			if depth > 1 {
				z = zmin + (zmax-zmin)*float64(pz)/float64(depth-1)
			}
			base := pz * width * height
			for py := 0; py < height; py++ {
				y := gridCoord(py, height)
				for px := 0; px < width; px++ {
					x := gridCoord(px, width)
					var val float64
					for _, e := range ellipsoids {
						if InsideEllipsoid(x, y, z, e) {
							val += e.Density
						}
					}
					vol.Data[base+py*width+px] = val
				}
			}
		}(pz)
	}
	wg.Wait()
	return vol, nil
}

// gridCoord maps sample index i of n onto [-1, 1]
func gridCoord(i, n int) float64 {
	if n <= 1 {
		return -1
	}
	return -1 + 2*float64(i)/float64(n-1)
}

// insideEllipse is the membership predicate for a rotated 2D ellipse
func insideEllipse(x, y float64, e phantom.Ellipse) bool {
	ct := math.Cos(e.Rotation)
	st := math.Sin(e.Rotation)
	dx := x - e.CenterX
	dy := y - e.CenterY
	u := dx*ct + dy*st
	v := dx*st - dy*ct
	return u*u/(e.SemiAxisA*e.SemiAxisA)+v*v/(e.SemiAxisB*e.SemiAxisB) <= 1
}

// InsideEllipsoid reports whether phantom-space point (x, y, z) lies inside
// the ellipsoid. Rotation is applied in the XY plane only.
func InsideEllipsoid(x, y, z float64, e phantom.Ellipsoid) bool {
	ct := math.Cos(e.Rotation)
	st := math.Sin(e.Rotation)
	dx := x - e.CenterX
	dy := y - e.CenterY
	dz := z - e.CenterZ
	u := dx*ct + dy*st
	v := dx*st - dy*ct
	return u*u/(e.SemiAxisA*e.SemiAxisA)+
		v*v/(e.SemiAxisB*e.SemiAxisB)+
		dz*dz/(e.SemiAxisC*e.SemiAxisC) <= 1
}
