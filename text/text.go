package text

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/dshills/textcore/internal/vec"
)

// Offset is a position in a buffer counted in UTF-16 code units.
type Offset = uint32

// Text is a flat UTF-16 text buffer with a derived line-offset index.
//
// content holds the full character data with logical newlines stored as
// '\n' (0x0A). lineOffsets[0] is always 0; entry i > 0 is the offset of
// the first code unit after the i-th '\n', i.e. the start of row i. The
// index is strictly increasing and has exactly one entry per row.
//
// Both fields are private and updated together by every mutator, so a
// Text observed between operations is always internally consistent:
//
//	t.Extent() == Point{len(lineOffsets)-1, t.Len() - lineOffsets[last]}
//
// Text is single-writer and not safe for concurrent mutation.
type Text struct {
	content     []uint16
	lineOffsets []uint32
}

// New returns the canonical empty buffer: no content and a single empty
// row. This is also the sentinel returned when decode setup fails.
func New() *Text {
	return &Text{lineOffsets: []uint32{0}}
}

// FromCodeUnits builds a Text from raw UTF-16 code units, scanning once
// to derive the line-offset index. The slice is taken over by the Text
// and must not be modified afterwards.
func FromCodeUnits(units []uint16) *Text {
	t := &Text{content: units, lineOffsets: []uint32{0}}
	for offset, unit := range units {
		if unit == '\n' {
			t.lineOffsets = append(t.lineOffsets, uint32(offset+1))
		}
	}
	return t
}

// FromString builds a Text from a UTF-8 string, encoding it to UTF-16
// code units first.
func FromString(s string) *Text {
	return FromCodeUnits(utf16.Encode([]rune(s)))
}

// FromSlice builds a new Text holding a copy of the region a slice views.
// The parent's interior line offsets are copied and rebased so they are
// relative to the new buffer's start.
func FromSlice(s Slice) *Text {
	start := s.StartOffset()
	end := s.EndOffset()

	content := make([]uint16, end-start)
	copy(content, s.text.content[start:end])

	lineOffsets := make([]uint32, 0, s.end.Row-s.start.Row+1)
	lineOffsets = append(lineOffsets, start)
	lineOffsets = append(lineOffsets, s.text.lineOffsets[s.start.Row+1:s.end.Row+1]...)
	for i := range lineOffsets {
		lineOffsets[i] -= start
	}

	return &Text{content: content, lineOffsets: lineOffsets}
}

// Concat builds a new Text by appending each slice in order, assembling a
// buffer from disjoint pieces without an intermediate full re-index.
func Concat(parts ...Slice) *Text {
	result := New()
	for _, p := range parts {
		result.Append(p)
	}
	return result
}

// Len returns the buffer length in UTF-16 code units.
func (t *Text) Len() Offset {
	return Offset(len(t.content))
}

// IsEmpty returns true if the buffer holds no code units.
func (t *Text) IsEmpty() bool {
	return len(t.content) == 0
}

// LineCount returns the number of rows, which is always at least 1.
func (t *Text) LineCount() uint32 {
	return uint32(len(t.lineOffsets))
}

// At returns the code unit at the given offset.
// Precondition: offset < Len().
func (t *Text) At(offset Offset) uint16 {
	return t.content[offset]
}

// Extent returns the buffer's total size as a row/column extent.
func (t *Text) Extent() Point {
	return Point{
		Row:    uint32(len(t.lineOffsets) - 1),
		Column: uint32(len(t.content)) - t.lineOffsets[len(t.lineOffsets)-1],
	}
}

// lineBounds returns the content offsets delimiting row's characters:
// start of row through its '\n' exclusive, with a trailing '\r' before
// the '\n' also excluded. The '\r' stays in content and is counted by the
// line-offset index; it is trimmed at read time only.
// Precondition: row < LineCount().
func (t *Text) lineBounds(row uint32) (start, end Offset) {
	start = t.lineOffsets[row]
	if int(row) < len(t.lineOffsets)-1 {
		end = t.lineOffsets[row+1] - 1
		if end > start && t.content[end-1] == '\r' {
			end--
		}
	} else {
		end = Offset(len(t.content))
	}
	return start, end
}

// OffsetForPosition converts a Point to an absolute code-unit offset. A
// column past the end of its row is clamped to the end of that row.
// Precondition: position.Row < LineCount(); a row beyond the buffer's
// extent is not range-checked.
func (t *Text) OffsetForPosition(position Point) Offset {
	start, end := t.lineBounds(position.Row)
	offset := start + position.Column
	if offset > end {
		offset = end
	}
	return offset
}

// LineLengthForRow returns the number of code units in a row, excluding
// its line ending.
// Precondition: row < LineCount().
func (t *Text) LineLengthForRow(row uint32) uint32 {
	start, end := t.lineBounds(row)
	return end - start
}

// LineText returns a row's characters as a string, excluding the line
// ending.
// Precondition: row < LineCount().
func (t *Text) LineText(row uint32) string {
	start, end := t.lineBounds(row)
	return string(utf16.Decode(t.content[start:end]))
}

// CodeUnits returns a copy of the buffer's content. The copy keeps
// callers from mutating content behind the line-offset index's back.
func (t *Text) CodeUnits() []uint16 {
	return slices.Clone(t.content)
}

// Append grows the buffer by the contents of a slice: pure growth, no
// deletion, O(slice length). The slice's interior line offsets are copied
// and rebased onto the appending position.
//
// The slice must not view the receiver; appending a buffer to itself is
// not supported (a mutation invalidates all slices over the target).
func (t *Text) Append(s Slice) {
	delta := int64(len(t.content)) - int64(s.StartOffset())

	t.content = append(t.content, s.Units()...)

	originalRows := len(t.lineOffsets)
	t.lineOffsets = append(t.lineOffsets, s.text.lineOffsets[s.start.Row+1:s.end.Row+1]...)
	for i := originalRows; i < len(t.lineOffsets); i++ {
		t.lineOffsets[i] = uint32(int64(t.lineOffsets[i]) + delta)
	}
}

// Splice replaces the region [start, start.Traverse(deletionExtent)) with
// the contents of inserted, keeping the line-offset index consistent in
// the same operation. Cost is proportional to the affected region plus
// the shifted tail, never a full re-index.
//
// Preconditions: start and the deletion end lie within the buffer's
// extent, and inserted does not view the receiver.
func (t *Text) Splice(start Point, deletionExtent Point, inserted Slice) {
	spliceStart := t.OffsetForPosition(start)
	spliceEnd := t.OffsetForPosition(start.Traverse(deletionExtent))
	originalSize := uint32(len(t.content))

	t.content = vec.Splice(t.content, spliceStart, spliceEnd-spliceStart, inserted.Units())

	t.lineOffsets = vec.Splice(
		t.lineOffsets,
		start.Row+1,
		deletionExtent.Row,
		inserted.text.lineOffsets[inserted.start.Row+1:inserted.end.Row+1],
	)

	// Rebase the inserted entries from slice-parent offsets to offsets
	// within this buffer.
	insertedRowsStart := start.Row + 1
	insertedRowsEnd := start.Row + inserted.Extent().Row + 1
	insertedDelta := int64(spliceStart) - int64(inserted.StartOffset())
	for i := insertedRowsStart; i < insertedRowsEnd; i++ {
		t.lineOffsets[i] = uint32(int64(t.lineOffsets[i]) + insertedDelta)
	}

	// Shift everything past the edit by the net size change.
	trailingDelta := int64(len(t.content)) - int64(originalSize)
	for i := insertedRowsEnd; i < uint32(len(t.lineOffsets)); i++ {
		t.lineOffsets[i] = uint32(int64(t.lineOffsets[i]) + trailingDelta)
	}
}

// Equal reports whether two buffers hold the same content and the same
// line-offset index. Comparing both is a correctness safeguard: equal
// content with diverging indices is an illegal state, never a tolerated
// one.
func (t *Text) Equal(other *Text) bool {
	return slices.Equal(t.content, other.content) &&
		slices.Equal(t.lineOffsets, other.lineOffsets)
}

// String renders the buffer for debugging: code units below 255 as their
// Latin-1 byte, everything else as an escaped decimal. Not a
// round-trippable serialization.
func (t *Text) String() string {
	var sb strings.Builder
	for _, unit := range t.content {
		if unit < 255 {
			sb.WriteByte(byte(unit))
		} else {
			sb.WriteString(`\u`)
			sb.WriteString(strconv.Itoa(int(unit)))
		}
	}
	return sb.String()
}
