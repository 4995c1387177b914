// Package mr extends the geometric Shepp-Logan phantom with MR tissue
// parameters, producing spin density (M0), T1 and T2 (or T2*) volumes after
// the 2D/3D MRI phantom standards of Gach, Tanase and Boada.
package mr

import (
	"fmt"
	"math"
)

// Tissue enumerates the tissue kinds appearing in the MR Shepp-Logan
// phantom. The set is closed: relaxation parameters exist exactly for these.
type Tissue int

const (
	Scalp Tissue = iota
	Marrow
	CSF
	BloodClot
	GrayMatter
	WhiteMatter
	Tumor
)

var tissueNames = map[Tissue]string{
	Scalp:       "scalp",
	Marrow:      "marrow",
	CSF:         "csf",
	BloodClot:   "blood-clot",
	GrayMatter:  "gray-matter",
	WhiteMatter: "white-matter",
	Tumor:       "tumor",
}

func (t Tissue) String() string {
	if name, ok := tissueNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tissue(%d)", int(t))
}

// T1Spec specifies how a tissue's T1 value is determined: either as an
// explicit value in seconds, or derived from the field-strength model
// T1 = A*B0^C. The variant is explicit in the type; there is no sentinel
// value encoding the choice.
type T1Spec struct {
	explicit bool
	seconds  float64
	a, c     float64
}

// ExplicitT1 returns a T1Spec carrying a fixed value in seconds
func ExplicitT1(seconds float64) T1Spec {
	return T1Spec{explicit: true, seconds: seconds}
}

// ModelT1 returns a T1Spec deriving T1 from field strength as A*B0^C
func ModelT1(a, c float64) T1Spec {
	return T1Spec{a: a, c: c}
}

// Explicit reports whether the value is fixed rather than field-dependent
func (s T1Spec) Explicit() bool { return s.explicit }

// Value returns the T1 in seconds at field strength b0 (in Tesla)
func (s T1Spec) Value(b0 float64) float64 {
	if s.explicit {
		return s.seconds
	}
	return s.a * math.Pow(b0, s.c)
}

// Relaxation holds the relaxation parameters of one tissue kind
type Relaxation struct {
	// T1 determines the longitudinal relaxation time
	T1 T1Spec

	// T2 is the transverse relaxation time in seconds
	T2 float64

	// Chi is the change in magnetic susceptibility, used to derive T2*
	Chi float64
}

// relaxationTable is the fixed mapping from tissue kind to relaxation
// parameters. Values follow Gach et al., Table 1.
var relaxationTable = map[Tissue]Relaxation{
	Scalp:       {T1: ModelT1(.324, .137), T2: .07, Chi: -7.5e-6},
	Marrow:      {T1: ModelT1(.533, .088), T2: .05, Chi: -8.85e-6},
	CSF:         {T1: ExplicitT1(4.2), T2: 1.99, Chi: -9e-6},
	BloodClot:   {T1: ModelT1(1.35, .34), T2: .2, Chi: -9e-6},
	GrayMatter:  {T1: ModelT1(.857, .376), T2: .1, Chi: -9e-6},
	WhiteMatter: {T1: ModelT1(.583, .382), T2: .08, Chi: -9e-6},
	Tumor:       {T1: ModelT1(.926, .217), T2: .1, Chi: -9e-6},
}

// RelaxationFor returns the relaxation parameters for the given tissue kind.
// Unknown kinds are a programming error and are rejected.
func RelaxationFor(t Tissue) (Relaxation, error) {
	r, ok := relaxationTable[t]
	if !ok {
		return Relaxation{}, fmt.Errorf("no relaxation parameters for %v", t)
	}
	return r, nil
}
