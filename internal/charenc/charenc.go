// Package charenc resolves textual encoding names and adapts the
// golang.org/x/text conversion machinery to the streaming contract the
// text engine decodes against: feed bytes, get back UTF-16 code units,
// bytes consumed, and a status describing why conversion stopped.
package charenc

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	gdaenc "github.com/gdamore/encoding"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUnsupported is returned by Lookup for encoding names that cannot be
// resolved by any known index.
var ErrUnsupported = errors.New("unsupported encoding")

// builtin maps normalized names to encodings resolved ahead of the IANA
// index. The gdamore charmaps give a strict US-ASCII (bytes >= 0x80 decode
// to U+FFFD), which the x/text indexes do not provide.
var builtin = map[string]encoding.Encoding{
	"utf-8":      unicode.UTF8,
	"utf8":       unicode.UTF8,
	"ascii":      gdaenc.ASCII,
	"us-ascii":   gdaenc.ASCII,
	"iso-8859-1": gdaenc.ISO8859_1,
	"iso8859-1":  gdaenc.ISO8859_1,
	"latin-1":    gdaenc.ISO8859_1,
	"latin1":     gdaenc.ISO8859_1,
	"iso-8859-9": gdaenc.ISO8859_9,
	"latin-5":    gdaenc.ISO8859_9,
	"ebcdic":     gdaenc.EBCDIC,
	"utf-16le":   unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be":   unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf-16":     unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
}

// Lookup resolves an encoding name. Resolution order: the builtin table,
// the IANA index, then the WHATWG html index for label aliases.
func Lookup(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if enc, ok := builtin[key]; ok {
		return enc, nil
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(key); err == nil {
		return enc, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupported, name)
}

// IsSupported reports whether Lookup can resolve the given name.
func IsSupported(name string) bool {
	_, err := Lookup(name)
	return err == nil
}

// Status describes why a Decode call stopped consuming input.
type Status uint8

const (
	// StatusOK means all input supplied was consumed.
	StatusOK Status = iota

	// StatusIncomplete means the input ends in a partial multi-byte
	// sequence; more bytes are needed before it can be converted.
	StatusIncomplete

	// StatusInvalid means the input begins an invalid byte sequence
	// the converter refuses to consume.
	StatusInvalid

	// StatusOutputFull means the destination has no room for the next
	// converted unit.
	StatusOutputFull
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusIncomplete:
		return "incomplete"
	case StatusInvalid:
		return "invalid"
	case StatusOutputFull:
		return "output-full"
	default:
		return "unknown"
	}
}

// Decoder converts a byte stream in a named source encoding into UTF-16
// code units. It is stateful: partial sequences may be carried across
// Decode calls. Not safe for concurrent use.
type Decoder struct {
	name    string
	tr      transform.Transformer
	scratch []byte // staging area for the transformer's UTF-8 output
	pending []byte // partial UTF-8 rune carried to the next call
}

// NewDecoder resolves name and returns a streaming decoder for it.
func NewDecoder(name string) (*Decoder, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return NewDecoderForEncoding(name, enc), nil
}

// NewDecoderForEncoding wraps an already-resolved encoding.
func NewDecoderForEncoding(name string, enc encoding.Encoding) *Decoder {
	return &Decoder{name: name, tr: enc.NewDecoder()}
}

// Name returns the encoding name the decoder was created with.
func (d *Decoder) Name() string {
	return d.name
}

// Reset discards all conversion state.
func (d *Decoder) Reset() {
	d.tr.Reset()
	d.pending = d.pending[:0]
}

// Decode converts bytes from src into UTF-16 code units in dst. It returns
// the number of units written, the number of src bytes consumed, and the
// status that ended the call. atEOF marks src as the final bytes of the
// stream; a trailing partial sequence is then converted to U+FFFD instead
// of being held for a later call.
//
// A StatusOK result means all of src was consumed. The other statuses
// leave src[nSrc:] unconsumed for the caller's recovery policy.
func (d *Decoder) Decode(dst []uint16, src []byte, atEOF bool) (nDst, nSrc int, status Status) {
	// One UTF-8 byte never produces more than one UTF-16 unit, so capping
	// the staging area at the free dst space (less any carried partial
	// rune) guarantees every staged byte has a slot.
	budget := len(dst) - len(d.pending)
	if budget <= 0 {
		return 0, 0, StatusOutputFull
	}
	if cap(d.scratch) < budget {
		d.scratch = make([]byte, budget)
	}

	nOut, nSrc, terr := d.tr.Transform(d.scratch[:budget], src, atEOF)

	buf := d.scratch[:nOut]
	if len(d.pending) > 0 {
		buf = append(d.pending, buf...)
		d.pending = nil
	}

	for len(buf) > 0 {
		if !atEOF && !utf8.FullRune(buf) {
			d.pending = append(d.pending[:0], buf...)
			break
		}
		r, size := utf8.DecodeRune(buf)
		buf = buf[size:]
		if r > 0xFFFF {
			hi, lo := utf16.EncodeRune(r)
			dst[nDst] = uint16(hi)
			dst[nDst+1] = uint16(lo)
			nDst += 2
		} else {
			dst[nDst] = uint16(r)
			nDst++
		}
	}

	switch terr {
	case nil:
		status = StatusOK
	case transform.ErrShortSrc:
		status = StatusIncomplete
	case transform.ErrShortDst:
		status = StatusOutputFull
	default:
		status = StatusInvalid
	}
	return nDst, nSrc, status
}
