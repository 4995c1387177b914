// Package gridding inverse-transforms Cartesian-sampled k-space back to the
// image domain. It exists as validation tooling: synthesize analytic k-space
// on a regular grid, invert it, and compare against the rasterized phantom.
package gridding

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"phantomgen/pkg/phantom"
)

// CartesianGrid returns the kx, ky coordinates of an n x n Cartesian raster
// in row-major order, covering integer frequencies [-n/2, n/2). These are
// BART-style units; divide by 2 before handing them to the synthesizer.
func CartesianGrid(n int) (kx, ky []float64) {
	kx = make([]float64, n*n)
	ky = make([]float64, n*n)
	for row := 0; row < n; row++ {
		fy := float64(row - n/2)
		for col := 0; col < n; col++ {
			kx[row*n+col] = float64(col - n/2)
			ky[row*n+col] = fy
		}
	}
	return kx, ky
}

// Gridder holds FFT state for inverting size x size Cartesian k-space
type Gridder struct {
	size int
	fft  *fourier.CmplxFFT
}

// NewGridder creates a gridder for size x size sample grids
func NewGridder(size int) *Gridder {
	return &Gridder{
		size: size,
		fft:  fourier.NewCmplxFFT(size),
	}
}

// Invert applies a centered 2D inverse FFT to k-space samples laid out in
// row-major order with DC at the grid center, returning the complex image.
// A sample count other than size*size is a phantom.ShapeError.
func (g *Gridder) Invert(samples []complex128) ([]complex128, error) {
	n := g.size
	if n%2 != 0 {
		// quadrant swapping is only an involution for even grids
		return nil, &phantom.ShapeError{What: "grid size", Want: n + 1, Got: n}
	}
	if len(samples) != n*n {
		return nil, &phantom.ShapeError{What: "kspace samples", Want: n * n, Got: len(samples)}
	}

	// Move DC from the grid center to index 0 for the transform
	work := make([]complex128, n*n)
	copy(work, samples)
	shift2D(work, n)

	// Row-wise inverse transform
	row := make([]complex128, n)
	for i := 0; i < n; i++ {
		copy(row, work[i*n:(i+1)*n])
		g.fft.Sequence(work[i*n:(i+1)*n], row)
	}

	// Column-wise inverse transform
	col := make([]complex128, n)
	out := make([]complex128, n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			col[i] = work[i*n+j]
		}
		g.fft.Sequence(out, col)
		for i := 0; i < n; i++ {
			work[i*n+j] = out[i]
		}
	}

	// Undo the shift so the image is centered, and normalize: Sequence is
	// unnormalized in each dimension.
	shift2D(work, n)
	norm := complex(float64(n*n), 0)
	for i := range work {
		work[i] /= norm
	}
	return work, nil
}

// Magnitude returns the elementwise modulus of a complex field
func Magnitude(field []complex128) []float64 {
	out := make([]float64, len(field))
	for i, c := range field {
		out[i] = cmplx.Abs(c)
	}
	return out
}

// shift2D swaps grid quadrants so the center sample moves to index (0, 0).
// For even n the operation is its own inverse.
func shift2D(data []complex128, n int) {
	h := n / 2
	for i := 0; i < h; i++ {
		for j := 0; j < n; j++ {
			jj := (j + h) % n
			src := i*n + j
			dst := (i+h)*n + jj
			data[src], data[dst] = data[dst], data[src]
		}
	}
}
