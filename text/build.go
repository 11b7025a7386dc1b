package text

import (
	"io"

	"github.com/dshills/textcore/internal/charenc"
)

// DefaultChunkSize is the read granularity Build falls back to when given
// a non-positive chunk size.
const DefaultChunkSize = 64 * 1024

const replacementChar = 0xFFFD

// IsEncodingSupported reports whether Build can decode the named encoding.
// Build signals an unresolvable name by returning the canonical empty
// buffer rather than an error, so callers that must tell that sentinel
// apart from a legitimately empty source should check the name first.
func IsEncodingSupported(name string) bool {
	return charenc.IsSupported(name)
}

// Build decodes a byte stream into a Text, populating the line-offset
// index incrementally as characters arrive.
//
// expectedSize is a pre-allocation hint for the output (in practice the
// stream's byte length), not a limit. chunkSize sets the read granularity.
// progress, if non-nil, receives the cumulative byte count once per
// successful chunk read, synchronously on the calling goroutine.
//
// Malformed input never aborts the decode: an invalid byte sequence is
// skipped one byte at a time, each substituted with one U+FFFD, so the
// decoder always makes forward progress. An incomplete multi-byte
// sequence at a chunk boundary waits for the next chunk; at end of stream
// it is dropped (consumed with loss). Read errors end the stream the same
// way a short read does — a caller wanting to abort mid-decode closes the
// underlying stream.
//
// An unsupported encoding name yields the canonical empty buffer.
func Build(r io.Reader, expectedSize int64, encodingName string, chunkSize int, progress func(bytesRead int64)) *Text {
	decoder, err := charenc.NewDecoder(encodingName)
	if err != nil {
		return New()
	}

	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	capacity := expectedSize
	if capacity <= 0 {
		capacity = int64(chunkSize)
	}

	input := make([]byte, chunkSize)
	output := make([]uint16, capacity)
	lineOffsets := []uint32{0}

	var (
		totalRead int64
		written   int // units written to output
		indexed   int // units already scanned for newlines
		pending   int // staged bytes not yet consumed
		eof       bool
	)

	for {
		if !eof {
			n, rerr := io.ReadFull(r, input[pending:])
			if n > 0 {
				pending += n
				totalRead += int64(n)
				if progress != nil {
					progress(totalRead)
				}
			}
			if rerr != nil {
				// Short read (or failure): end of stream.
				eof = true
			}
		}
		if pending == 0 {
			break
		}

		consumed := 0
	decode:
		for consumed < pending {
			// atEOF stays false so a trailing partial sequence surfaces
			// as StatusIncomplete instead of being substituted; at true
			// end of stream it is dropped below.
			nDst, nSrc, status := decoder.Decode(output[written:], input[consumed:pending], false)
			written += nDst
			consumed += nSrc

			switch status {
			case charenc.StatusOK:
				// All staged bytes consumed; read the next chunk.
			case charenc.StatusIncomplete:
				if eof {
					// Truncated trailing sequence at true end of
					// stream: consumed with loss.
					consumed = pending
				}
				break decode
			case charenc.StatusInvalid:
				// Skip exactly one byte, substitute one replacement
				// character, resume from the following byte.
				if written == len(output) {
					output = grow(output)
				}
				output[written] = replacementChar
				written++
				consumed++
			case charenc.StatusOutputFull:
				output = grow(output)
			}
		}

		// Keep any unconsumed remainder at the front of the staging
		// buffer so the next read appends after it.
		if consumed < pending {
			copy(input, input[consumed:pending])
		}
		pending -= consumed

		// A chunk size smaller than one multi-byte sequence would wedge
		// the staging buffer; give the next read room to complete it.
		if !eof && pending == len(input) {
			input = append(input, make([]byte, len(input))...)
		}

		// Index only the newly written units; earlier output is never
		// re-scanned.
		for ; indexed < written; indexed++ {
			if output[indexed] == '\n' {
				lineOffsets = append(lineOffsets, uint32(indexed+1))
			}
		}
	}

	return &Text{content: output[:written:written], lineOffsets: lineOffsets}
}

// grow doubles the output buffer, preserving written units. The geometric
// factor keeps total decode cost linear in the input size.
func grow(output []uint16) []uint16 {
	newSize := len(output) * 2
	if newSize == 0 {
		newSize = 64
	}
	next := make([]uint16, newSize)
	copy(next, output)
	return next
}
