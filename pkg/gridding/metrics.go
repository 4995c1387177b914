package gridding

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"phantomgen/pkg/phantom"
)

// Metrics summarizes how well a gridded reconstruction matches a reference
// image. Both images are normalized to unit peak before comparison so the
// FFT scaling convention does not dominate the numbers.
type Metrics struct {
	// RMSE is the root mean square error between the normalized images
	RMSE float64

	// Correlation is the Pearson correlation of the two images
	Correlation float64
}

// Compare computes quality metrics between a reconstruction and a reference
// of equal length
func Compare(recon, reference []float64) (Metrics, error) {
	if len(recon) != len(reference) {
		return Metrics{}, &phantom.ShapeError{What: "reference", Want: len(recon), Got: len(reference)}
	}

	a := normalize(recon)
	b := normalize(reference)

	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return Metrics{
		RMSE:        math.Sqrt(sum / float64(len(a))),
		Correlation: stat.Correlation(a, b, nil),
	}, nil
}

// normalize scales data to unit peak magnitude; all-zero input is returned
// as a copy unchanged
func normalize(data []float64) []float64 {
	peak := 0.0
	for _, v := range data {
		if m := math.Abs(v); m > peak {
			peak = m
		}
	}
	out := make([]float64, len(data))
	if peak == 0 {
		copy(out, data)
		return out
	}
	for i, v := range data {
		out[i] = v / peak
	}
	return out
}
