// Package phantom defines the ellipse and ellipsoid parameter tables that
// describe analytic test phantoms. A phantom is a superposition of weighted
// ellipses: each record adds (or, for negative density, subtracts) a uniform
// region, and overlapping regions accumulate. The canonical Shepp-Logan head
// phantom is provided as a built-in preset in both its original and
// modified-contrast grayscale variants.
package phantom

import "strconv"

// Ellipse describes one additive region of a 2D phantom
type Ellipse struct {
	// Density is the additive intensity of the region. Negative values
	// subtract, which is how nested tissue compartments are carved out
	// of enclosing ones.
	Density float64

	// SemiAxisA and SemiAxisB are the horizontal and vertical semi-axis
	// lengths before rotation. Both must be strictly positive.
	SemiAxisA float64
	SemiAxisB float64

	// CenterX and CenterY locate the ellipse center in the [-1, 1] square
	CenterX float64
	CenterY float64

	// Rotation is the angle between the A semi-axis and the x-axis, in radians
	Rotation float64
}

// Ellipsoid describes one additive region of a 3D phantom. Rotation is
// restricted to the XY plane: ellipsoids are never tilted out of plane.
type Ellipsoid struct {
	Density   float64
	SemiAxisA float64
	SemiAxisB float64
	SemiAxisC float64
	CenterX   float64
	CenterY   float64
	CenterZ   float64
	Rotation  float64
}

// Columns2D and Columns3D are the required row widths for caller-supplied
// parameter tables: [density, A, B, xc, yc, theta] in 2D and
// [density, A, B, C, xc, yc, zc, theta] in 3D.
const (
	Columns2D = 6
	Columns3D = 8
)

// Table is an immutable ordered collection of 2D ellipse records
type Table struct {
	ellipses []Ellipse
}

// Table3D is an immutable ordered collection of ellipsoid records
type Table3D struct {
	ellipsoids []Ellipsoid
}

// NewTable validates the given records and wraps them in a Table.
// It returns a DomainError if any record has a non-positive semi-axis.
func NewTable(ellipses []Ellipse) (*Table, error) {
	for i, e := range ellipses {
		if err := checkAxes(i, e.SemiAxisA, e.SemiAxisB, 1); err != nil {
			return nil, err
		}
	}
	t := &Table{ellipses: make([]Ellipse, len(ellipses))}
	copy(t.ellipses, ellipses)
	return t, nil
}

// NewTable3D validates the given records and wraps them in a Table3D
func NewTable3D(ellipsoids []Ellipsoid) (*Table3D, error) {
	for i, e := range ellipsoids {
		if err := checkAxes(i, e.SemiAxisA, e.SemiAxisB, e.SemiAxisC); err != nil {
			return nil, err
		}
	}
	t := &Table3D{ellipsoids: make([]Ellipsoid, len(ellipsoids))}
	copy(t.ellipsoids, ellipsoids)
	return t, nil
}

// TableFromRows builds a Table from raw parameter rows with columns
// [density, A, B, xc, yc, theta]. It returns a ShapeError for rows of the
// wrong width and a DomainError for degenerate semi-axes.
func TableFromRows(rows [][]float64) (*Table, error) {
	ellipses := make([]Ellipse, len(rows))
	for i, row := range rows {
		if len(row) != Columns2D {
			return nil, &ShapeError{What: rowName(i), Want: Columns2D, Got: len(row)}
		}
		ellipses[i] = Ellipse{
			Density:   row[0],
			SemiAxisA: row[1],
			SemiAxisB: row[2],
			CenterX:   row[3],
			CenterY:   row[4],
			Rotation:  row[5],
		}
	}
	return NewTable(ellipses)
}

// Table3DFromRows builds a Table3D from raw parameter rows with columns
// [density, A, B, C, xc, yc, zc, theta]
func Table3DFromRows(rows [][]float64) (*Table3D, error) {
	ellipsoids := make([]Ellipsoid, len(rows))
	for i, row := range rows {
		if len(row) != Columns3D {
			return nil, &ShapeError{What: rowName(i), Want: Columns3D, Got: len(row)}
		}
		ellipsoids[i] = Ellipsoid{
			Density:   row[0],
			SemiAxisA: row[1],
			SemiAxisB: row[2],
			SemiAxisC: row[3],
			CenterX:   row[4],
			CenterY:   row[5],
			CenterZ:   row[6],
			Rotation:  row[7],
		}
	}
	return NewTable3D(ellipsoids)
}

// ValidateDim returns a ShapeError unless dim is 2 or 3
func ValidateDim(dim int) error {
	if dim != 2 && dim != 3 {
		return &ShapeError{What: "dimensionality", Want: 2, Got: dim}
	}
	return nil
}

// Len returns the number of records in the table
func (t *Table) Len() int { return len(t.ellipses) }

// At returns the record at index i
func (t *Table) At(i int) Ellipse { return t.ellipses[i] }

// Ellipses returns a copy of the records in table order
func (t *Table) Ellipses() []Ellipse {
	out := make([]Ellipse, len(t.ellipses))
	copy(out, t.ellipses)
	return out
}

// Concat returns a new table holding the records of t followed by those of u.
// Because accumulation is additive, synthesizing the concatenation equals
// summing the two tables' syntheses.
func (t *Table) Concat(u *Table) *Table {
	merged := make([]Ellipse, 0, len(t.ellipses)+len(u.ellipses))
	merged = append(merged, t.ellipses...)
	merged = append(merged, u.ellipses...)
	return &Table{ellipses: merged}
}

// Len returns the number of records in the table
func (t *Table3D) Len() int { return len(t.ellipsoids) }

// At returns the record at index i
func (t *Table3D) At(i int) Ellipsoid { return t.ellipsoids[i] }

// Ellipsoids returns a copy of the records in table order
func (t *Table3D) Ellipsoids() []Ellipsoid {
	out := make([]Ellipsoid, len(t.ellipsoids))
	copy(out, t.ellipsoids)
	return out
}

func checkAxes(i int, a, b, c float64) error {
	switch {
	case a <= 0:
		return &DomainError{Index: i, Axis: "A", Value: a}
	case b <= 0:
		return &DomainError{Index: i, Axis: "B", Value: b}
	case c <= 0:
		return &DomainError{Index: i, Axis: "C", Value: c}
	}
	return nil
}

func rowName(i int) string {
	return "ellipse row " + strconv.Itoa(i)
}
