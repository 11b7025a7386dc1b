// Package vec provides in-place slice surgery primitives shared by the
// text engine's content array and its line-offset index.
package vec

// Splice replaces deletionSize elements of v starting at start with the
// elements of inserted, preserving the relative order of everything else.
// It returns the resulting slice, which may share backing storage with v.
//
// The backing array grows before the tail is relocated and shrinks after,
// so no surviving element is ever overwritten before it has been moved.
// Preconditions (caller-enforced, not runtime-checked beyond Go's own
// bounds checks): start+deletionSize <= len(v).
func Splice[T any](v []T, start, deletionSize uint32, inserted []T) []T {
	originalSize := uint32(len(v))
	insertionSize := uint32(len(inserted))
	insertionEnd := start + insertionSize
	deletionEnd := start + deletionSize
	sizeDelta := int64(insertionSize) - int64(deletionSize)

	if sizeDelta > 0 {
		v = append(v, make([]T, sizeDelta)...)
	}

	// copy is memmove: the tail shift is overlap-safe whether the
	// destination lands before or after the source range.
	copy(v[insertionEnd:], v[deletionEnd:originalSize])
	copy(v[start:insertionEnd], inserted)

	if sizeDelta < 0 {
		v = v[:int64(originalSize)+sizeDelta]
	}
	return v
}
