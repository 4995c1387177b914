package kspace

import (
	"runtime"
	"sync"

	"phantomgen/pkg/phantom"
)

// Params holds the synthesizer configuration
type Params struct {
	// Table is the ellipse table to synthesize. If nil, the modified
	// 2D Shepp-Logan preset is used.
	Table *phantom.Table

	// NumWorkers bounds the number of goroutines used to evaluate
	// samples in parallel. Zero or negative means all available cores.
	NumWorkers int
}

// Synthesizer is the public entry point of the analytic k-space engine. It
// iterates the ellipse table, evaluates the closed-form spectrum (plain or
// sensitivity-weighted) at each sample coordinate, and accumulates the
// result over all ellipses.
//
// A Synthesizer is pure and stateless between calls: it never mutates the
// caller's coordinate arrays and holds no shared mutable state, so a single
// instance may be used from multiple goroutines.
type Synthesizer struct {
	ellipses   []phantom.Ellipse
	numWorkers int
}

// NewSynthesizer creates a synthesizer for the configured ellipse table
func NewSynthesizer(params *Params) *Synthesizer {
	table := params.Table
	if table == nil {
		table = phantom.SheppLogan2D(phantom.Modified)
	}
	workers := params.NumWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Synthesizer{
		ellipses:   table.Ellipses(),
		numWorkers: workers,
	}
}

// Synthesize returns one complex k-space value per sample: the sum over all
// ellipses of the analytic ellipse spectrum at (kx[i], ky[i]).
//
// The two coordinate arrays must have equal length; a mismatch is reported
// as a phantom.ShapeError before any computation begins.
func (s *Synthesizer) Synthesize(kx, ky []float64) ([]complex128, error) {
	if len(kx) != len(ky) {
		return nil, &phantom.ShapeError{What: "ky", Want: len(kx), Got: len(ky)}
	}

	out := make([]complex128, len(kx))
	s.parallelSamples(len(kx), func(start, end int) {
		for i := start; i < end; i++ {
			var acc complex128
			for _, e := range s.ellipses {
				acc += EllipseSpectrum(kx[i], ky[i], e)
			}
			out[i] = acc
		}
	})
	return out, nil
}

// SynthesizeComplex is Synthesize for samples given as a single complex
// array, real part kx and imaginary part ky.
func (s *Synthesizer) SynthesizeComplex(samples []complex128) ([]complex128, error) {
	kx := make([]float64, len(samples))
	ky := make([]float64, len(samples))
	for i, c := range samples {
		kx[i] = real(c)
		ky[i] = imag(c)
	}
	return s.Synthesize(kx, ky)
}

// SynthesizeCoils returns the sensitivity-weighted k-space measurements for
// ncoil simulated receiver coils, indexed [sample][coil]. Coil sensitivity
// fields are deterministic, so repeated calls with identical inputs yield
// identical output.
//
// Requesting more than MaxCoils coils fails with a CapacityError before any
// computation begins.
func (s *Synthesizer) SynthesizeCoils(kx, ky []float64, ncoil int) ([][]complex128, error) {
	if len(kx) != len(ky) {
		return nil, &phantom.ShapeError{What: "ky", Want: len(kx), Got: len(ky)}
	}
	if ncoil < 1 {
		return nil, &phantom.ShapeError{What: "coil count", Want: 1, Got: ncoil}
	}
	if ncoil > MaxCoils {
		return nil, &CapacityError{Requested: ncoil, Max: MaxCoils}
	}

	coeffs := make([][]complex128, ncoil)
	for c := 0; c < ncoil; c++ {
		cc, err := SensitivityCoefficients(c)
		if err != nil {
			return nil, err
		}
		coeffs[c] = cc
	}

	weighted := make([]weightedEllipse, len(s.ellipses))
	for i, e := range s.ellipses {
		weighted[i] = newWeightedEllipse(e)
	}
	freqs := basisFrequencies()

	out := make([][]complex128, len(kx))
	s.parallelSamples(len(kx), func(start, end int) {
		for i := start; i < end; i++ {
			row := make([]complex128, ncoil)
			for _, w := range weighted {
				w.accumulate(kx[i], ky[i], coeffs, freqs, row)
			}
			out[i] = row
		}
	})
	return out, nil
}

// parallelSamples splits [0, n) into contiguous chunks and runs fn on each
// from its own goroutine. Chunks are disjoint, so workers need no
// coordination beyond the final WaitGroup join; the per-sample ellipse sum
// is associative and commutative, which is what licenses the split.
func (s *Synthesizer) parallelSamples(n int, fn func(start, end int)) {
	workers := s.numWorkers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}

// Synthesize is a convenience wrapper that synthesizes k-space for the given
// table (nil selects the modified Shepp-Logan preset) using all cores.
func Synthesize(kx, ky []float64, table *phantom.Table) ([]complex128, error) {
	return NewSynthesizer(&Params{Table: table}).Synthesize(kx, ky)
}

// SynthesizeCoils is a convenience wrapper around
// Synthesizer.SynthesizeCoils using all cores.
func SynthesizeCoils(kx, ky []float64, table *phantom.Table, ncoil int) ([][]complex128, error) {
	return NewSynthesizer(&Params{Table: table}).SynthesizeCoils(kx, ky, ncoil)
}
