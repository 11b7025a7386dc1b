// Package text implements a flat UTF-16 text buffer with a derived
// line-offset index, the storage core of an editor buffer.
//
// A Text stores its characters as UTF-16 code units alongside an index of
// row start offsets. Every mutation updates both structures in the same
// operation, so addressing by (row, column) stays O(1) and the index is
// never stale. Edits cost O(affected region), not O(buffer).
//
// The package provides:
//
//   - Point arithmetic for (row, column) coordinates, including the
//     Traverse composition law for locating a region's end
//   - Construction from code units, strings, sub-slices of other buffers,
//     a serialized form, or a streaming byte decode (Build)
//   - Region replacement (Splice) and pure growth (Append, Concat)
//   - Non-owning read-only views (Slice)
//   - A flat binary serialization that recomputes the index on load
//
// Basic usage:
//
//	t := text.FromString("foo\nbar")
//	t.Splice(text.Point{Row: 1, Column: 0}, text.Point{}, patch.AsSlice())
//	end := t.Extent()
//
// Streaming decode tolerates malformed input: invalid byte sequences are
// replaced with U+FFFD one byte at a time and decoding continues, so a
// corrupt file still loads.
//
// Addressing is by UTF-16 code unit, not codepoint or grapheme cluster.
// A Text is single-writer: no internal locking, and Slice views must not
// be used concurrently with a mutation of their source or outlive it.
package text
