package phantom

import "fmt"

// ShapeError reports an input whose shape does not match what the declared
// dimensionality requires: a parameter row with the wrong number of columns,
// mismatched coordinate arrays, or a dimensionality other than 2 or 3.
// It is always raised before any numeric work begins.
type ShapeError struct {
	// What names the offending input, e.g. "ellipse row 3" or "ky".
	What string

	// Want and Got are the expected and actual sizes.
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("shape mismatch in %s: expected %d, got %d", e.What, e.Want, e.Got)
}

// DomainError reports degenerate geometry: a semi-axis that is zero or
// negative. Density is allowed to be negative (subtraction regions), but a
// non-positive semi-axis describes no ellipse at all.
type DomainError struct {
	// Index is the position of the offending record in its table.
	Index int

	// Axis names the degenerate semi-axis ("A", "B" or "C").
	Axis string

	// Value is the rejected semi-axis length.
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("ellipse %d: semi-axis %s must be positive, got %g", e.Index, e.Axis, e.Value)
}
