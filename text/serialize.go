package text

import (
	"encoding/binary"
	"fmt"
	"io"
)

// The serialized form is a flat record: a uint32 code-unit count followed
// by that many uint16 code units, little-endian on both sides. The line
// index is never stored; deserialization recomputes it from the content,
// verifying the derived structure instead of trusting stored data.

// Serialize writes the buffer's content to w.
func (t *Text) Serialize(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(t.content))); err != nil {
		return fmt.Errorf("writing text length: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, t.content); err != nil {
		return fmt.Errorf("writing text content: %w", err)
	}
	return nil
}

// Deserialize reads a buffer previously written by Serialize, rebuilding
// the line-offset index exactly as FromCodeUnits does.
func Deserialize(r io.Reader) (*Text, error) {
	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return nil, fmt.Errorf("reading text length: %w", err)
	}
	units := make([]uint16, size)
	if err := binary.Read(r, binary.LittleEndian, units); err != nil {
		return nil, fmt.Errorf("reading text content: %w", err)
	}
	return FromCodeUnits(units), nil
}
