package raster

import (
	"math"

	"phantomgen/internal/models"
)

// Dynamic renders a simple time-varying phantom of concentric rings on an
// n x n grid over nt time frames, returned as a volume with time along the
// depth axis. The two outer rings are static; the inner ring's radius
// oscillates over the frame sequence, which makes the phantom useful for
// exercising dynamic acquisition models.
func Dynamic(n, nt int) *models.Volume {
	vol := models.NewVolume(n, n, nt)

	// Static outer rings, shared by every frame
	const outerThickness = 0.25
	for py := 0; py < n; py++ {
		y := gridCoord(py, n)
		for px := 0; px < n; px++ {
			x := gridCoord(px, n)
			r2 := x*x + y*y

			var val float64
			switch {
			case r2 <= 1 && r2 >= (1-outerThickness)*(1-outerThickness):
				val = 1
			case r2 <= (1-outerThickness)*(1-outerThickness) &&
				r2 >= (1-2*outerThickness)*(1-2*outerThickness):
				val = 0.2
			}
			if val != 0 {
				for t := 0; t < nt; t++ {
					vol.Set(px, py, t, val)
				}
			}
		}
	}

	// Inner ring with oscillating radius, normalized to a 0.4 maximum
	const innerThickness = 0.15
	radii := make([]float64, nt)
	maxR := 0.0
	for t := range radii {
		radii[t] = math.Cos(float64(t)*2*math.Pi/float64(nt)) + 2
		if radii[t] > maxR {
			maxR = radii[t]
		}
	}
	for t := range radii {
		radii[t] = radii[t] / maxR * 0.4
	}

	for t := 0; t < nt; t++ {
		r := radii[t]
		inner := r - innerThickness
		for py := 0; py < n; py++ {
			y := gridCoord(py, n)
			for px := 0; px < n; px++ {
				x := gridCoord(px, n)
				r2 := x*x + y*y
				if r2 <= r*r && r2 >= inner*inner {
					vol.Set(px, py, t, 0.8)
				}
			}
		}
	}
	return vol
}
