package text

// Slice is a non-owning, read-only view of a contiguous region of a Text,
// addressed by start and end positions. It borrows the parent buffer: a
// Slice is invalid once its Text is mutated or discarded, and must not be
// read concurrently with a mutation of its source. Use FromSlice to
// materialize an owned copy.
type Slice struct {
	text  *Text
	start Point
	end   Point
}

// AsSlice returns a view over the whole buffer.
func (t *Text) AsSlice() Slice {
	return Slice{text: t, end: t.Extent()}
}

// Slice returns a view over [start, end).
// Preconditions: start <= end and both lie within the buffer's extent.
func (t *Text) Slice(start, end Point) Slice {
	return Slice{text: t, start: start, end: end}
}

// StartPosition returns the slice's start point in its parent buffer.
func (s Slice) StartPosition() Point {
	return s.start
}

// EndPosition returns the slice's end point in its parent buffer.
func (s Slice) EndPosition() Point {
	return s.end
}

// StartOffset returns the absolute offset of the slice's start in the
// parent buffer, derived through the parent's own addressing rules.
func (s Slice) StartOffset() Offset {
	return s.text.OffsetForPosition(s.start)
}

// EndOffset returns the absolute offset of the slice's end in the parent
// buffer.
func (s Slice) EndOffset() Offset {
	return s.text.OffsetForPosition(s.end)
}

// Len returns the slice's length in code units.
func (s Slice) Len() Offset {
	return s.EndOffset() - s.StartOffset()
}

// IsEmpty returns true if the slice views no code units.
func (s Slice) IsEmpty() bool {
	return s.Len() == 0
}

// Extent returns the slice's size as a row/column extent.
func (s Slice) Extent() Point {
	return s.end.Traversal(s.start)
}

// Units returns the viewed code units [StartOffset, EndOffset) without
// copying. The returned slice aliases the parent buffer's storage: treat
// it as read-only, and do not hold it across a mutation of the parent.
func (s Slice) Units() []uint16 {
	return s.text.content[s.StartOffset():s.EndOffset()]
}

// Text materializes the slice into an owned buffer.
func (s Slice) Text() *Text {
	return FromSlice(s)
}
