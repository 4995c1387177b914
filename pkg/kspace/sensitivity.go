package kspace

import (
	"fmt"
	"math"
	"math/rand"
)

// Receiver-coil sensitivity is modeled as a smooth complex field over the
// phantom, expanded on a small square basis of 2D sinusoids:
//
//	S(x, y) = sum_n coeff_n * exp(i*2*pi*(u_n*x + v_n*y))
//
// with basis frequencies (u_n, v_n) drawn from the centered integer grid
// [-floor(L/2), floor((L-1)/2)]^2. The coefficient budget fixes L and the
// number of coils that can be simulated.
const (
	// MaxCoils is the number of distinct coils supported
	MaxCoils = 8

	// NumCoefficients is the per-coil coefficient budget; the basis side
	// length is floor(sqrt(NumCoefficients)).
	NumCoefficients = 16
)

// sensSeed anchors the per-coil coefficient streams so that fields are
// reproducible across runs and machines.
const sensSeed int64 = 0x70AD5

// CapacityError reports a request for more coils than the sensitivity basis
// can simulate.
type CapacityError struct {
	Requested int
	Max       int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("requested %d coils, only %d supported", e.Requested, e.Max)
}

// SensitivityCoefficients returns the complex basis coefficients for the
// given coil index. Generation is deterministic: the same index always
// yields the same coefficients, and distinct indices yield distinct,
// non-degenerate sensitivity fields. Coefficients are tapered by a Gaussian
// in basis-frequency magnitude so the modeled field varies smoothly.
func SensitivityCoefficients(coil int) ([]complex128, error) {
	if coil < 0 || coil >= MaxCoils {
		return nil, &CapacityError{Requested: coil + 1, Max: MaxCoils}
	}

	// Large prime stride keeps the per-coil streams well separated
	rng := rand.New(rand.NewSource(sensSeed + int64(coil)*7919))

	freqs := basisFrequencies()
	coeffs := make([]complex128, len(freqs))
	for n, f := range freqs {
		taper := math.Exp(-(f[0]*f[0] + f[1]*f[1]) / 4)
		coeffs[n] = complex(rng.NormFloat64()*taper, rng.NormFloat64()*taper)
		if f[0] == 0 && f[1] == 0 {
			// Bias the DC term so no coil field is close to zero everywhere
			coeffs[n] += complex(1, 0)
		}
	}
	return coeffs, nil
}

// basisFrequencies returns the (u, v) pairs of the centered integer basis
// grid in row-major order. The ordering is fixed: coefficient n always
// pairs with the same basis frequency.
func basisFrequencies() [][2]float64 {
	l := int(math.Floor(math.Sqrt(NumCoefficients)))
	lo := -int(math.Floor(float64(l) / 2))

	freqs := make([][2]float64, 0, l*l)
	for i := 0; i < l; i++ {
		for j := 0; j < l; j++ {
			freqs = append(freqs, [2]float64{float64(lo + i), float64(lo + j)})
		}
	}
	return freqs
}
