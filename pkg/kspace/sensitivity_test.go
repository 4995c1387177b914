package kspace

import (
	"errors"
	"testing"
)

// TestCoefficientsDeterministic verifies that the same coil index always
// yields the same coefficient vector
func TestCoefficientsDeterministic(t *testing.T) {
	for coil := 0; coil < MaxCoils; coil++ {
		a, err := SensitivityCoefficients(coil)
		if err != nil {
			t.Fatalf("coil %d: %v", coil, err)
		}
		b, err := SensitivityCoefficients(coil)
		if err != nil {
			t.Fatalf("coil %d: %v", coil, err)
		}

		if len(a) != NumCoefficients {
			t.Fatalf("coil %d: got %d coefficients, want %d", coil, len(a), NumCoefficients)
		}
		for n := range a {
			if a[n] != b[n] {
				t.Errorf("coil %d coefficient %d differs between calls: %v vs %v", coil, n, a[n], b[n])
			}
		}
	}
}

// TestCoefficientsDistinctPerCoil verifies that different coils produce
// different sensitivity fields
func TestCoefficientsDistinctPerCoil(t *testing.T) {
	seen := make(map[complex128]int)
	for coil := 0; coil < MaxCoils; coil++ {
		coeffs, err := SensitivityCoefficients(coil)
		if err != nil {
			t.Fatalf("coil %d: %v", coil, err)
		}
		if prev, ok := seen[coeffs[0]]; ok {
			t.Errorf("coils %d and %d share their first coefficient", prev, coil)
		}
		seen[coeffs[0]] = coil

		// A degenerate field would have all-zero coefficients
		var nonzero bool
		for _, c := range coeffs {
			if c != 0 {
				nonzero = true
				break
			}
		}
		if !nonzero {
			t.Errorf("coil %d has an all-zero coefficient vector", coil)
		}
	}
}

// TestCoefficientsCapacity verifies the capacity check on the coil index
func TestCoefficientsCapacity(t *testing.T) {
	for _, coil := range []int{-1, MaxCoils, MaxCoils + 3} {
		_, err := SensitivityCoefficients(coil)
		var capErr *CapacityError
		if !errors.As(err, &capErr) {
			t.Errorf("coil %d: got %v, want CapacityError", coil, err)
		}
	}
}

// TestBasisFrequencies checks the centered integer grid layout
func TestBasisFrequencies(t *testing.T) {
	freqs := basisFrequencies()
	if len(freqs) != NumCoefficients {
		t.Fatalf("got %d basis frequencies, want %d", len(freqs), NumCoefficients)
	}

	// L = 4, so frequencies span [-2, 1] in each dimension
	for _, f := range freqs {
		for _, u := range f {
			if u < -2 || u > 1 {
				t.Errorf("basis frequency %v outside [-2, 1] grid", f)
			}
		}
	}

	// All grid points must be distinct
	seen := make(map[[2]float64]bool)
	for _, f := range freqs {
		if seen[f] {
			t.Errorf("duplicate basis frequency %v", f)
		}
		seen[f] = true
	}
}
