package models

// Volume represents a scalar 3D volume sampled on a regular grid
type Volume struct {
	// Data is the 3D volume data as a 1D array in row-major order
	// (z-major: index = z*Width*Height + y*Width + x)
	Data []float64

	// Width is the number of samples along x
	Width int

	// Height is the number of samples along y
	Height int

	// Depth is the number of samples along z
	Depth int
}

// NewVolume allocates a zeroed volume with the given dimensions
func NewVolume(width, height, depth int) *Volume {
	return &Volume{
		Data:   make([]float64, width*height*depth),
		Width:  width,
		Height: height,
		Depth:  depth,
	}
}

// At returns the value at voxel (x, y, z)
func (v *Volume) At(x, y, z int) float64 {
	return v.Data[z*v.Width*v.Height+y*v.Width+x]
}

// Set assigns the value at voxel (x, y, z)
func (v *Volume) Set(x, y, z int, val float64) {
	v.Data[z*v.Width*v.Height+y*v.Width+x] = val
}

// Add accumulates val into voxel (x, y, z)
func (v *Volume) Add(x, y, z int, val float64) {
	v.Data[z*v.Width*v.Height+y*v.Width+x] += val
}

// Grid represents a scalar 2D image sampled on a regular grid
type Grid struct {
	// Data is the image data as a 1D array in row-major order
	Data []float64

	// Width and Height are the grid dimensions in samples
	Width  int
	Height int
}

// NewGrid allocates a zeroed 2D grid with the given dimensions
func NewGrid(width, height int) *Grid {
	return &Grid{
		Data:   make([]float64, width*height),
		Width:  width,
		Height: height,
	}
}

// At returns the value at pixel (x, y)
func (g *Grid) At(x, y int) float64 {
	return g.Data[y*g.Width+x]
}

// Add accumulates val into pixel (x, y)
func (g *Grid) Add(x, y int, val float64) {
	g.Data[y*g.Width+x] += val
}
