package text

import "fmt"

// Point represents a position in a buffer measured as a 0-indexed row and
// a column counted in UTF-16 code units from the start of that row.
//
// A Point also doubles as an extent: a row/column-shaped size describing a
// span's height (additional rows) and trailing column width.
type Point struct {
	Row    uint32
	Column uint32
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Column)
}

// Traverse composes a relative extent onto an absolute position. A
// single-row extent advances the column; a multi-row extent lands at the
// extent's own column on a later row. This is the composition law used to
// locate the end of a region from its start and its extent.
func (p Point) Traverse(extent Point) Point {
	if extent.Row == 0 {
		return Point{Row: p.Row, Column: p.Column + extent.Column}
	}
	return Point{Row: p.Row + extent.Row, Column: extent.Column}
}

// Traversal returns the extent from start to p, the inverse of Traverse:
// start.Traverse(p.Traversal(start)) == p for any start <= p.
func (p Point) Traversal(start Point) Point {
	if p.Row == start.Row {
		return Point{Row: 0, Column: p.Column - start.Column}
	}
	return Point{Row: p.Row - start.Row, Column: p.Column}
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Row < other.Row {
		return -1
	}
	if p.Row > other.Row {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Point) After(other Point) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the zero point (0:0).
func (p Point) IsZero() bool {
	return p.Row == 0 && p.Column == 0
}
