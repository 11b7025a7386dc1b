package main

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/sjson"

	"github.com/dshills/textcore/text"
)

// report summarizes one decoded file.
type report struct {
	ID          string
	Path        string
	GeneratedAt time.Time

	SizeBytes   int64
	CodeUnits   uint32
	Lines       uint32
	Extent      text.Point
	LongestRow  uint32
	LongestLen  uint32
	EmptyLines  uint32
	LastNewline bool
}

func newReport(path string, sizeBytes int64, tx *text.Text) report {
	rep := report{
		ID:          uuid.NewString(),
		Path:        path,
		GeneratedAt: time.Now().UTC(),
		SizeBytes:   sizeBytes,
		CodeUnits:   tx.Len(),
		Lines:       tx.LineCount(),
		Extent:      tx.Extent(),
	}

	for row := uint32(0); row < tx.LineCount(); row++ {
		n := tx.LineLengthForRow(row)
		if n > rep.LongestLen {
			rep.LongestRow, rep.LongestLen = row, n
		}
		if n == 0 {
			rep.EmptyLines++
		}
	}
	// A trailing newline produces a final empty line; the extent lands at
	// column zero of that line.
	rep.LastNewline = tx.Len() > 0 && rep.Extent.Column == 0 && rep.Extent.Row > 0

	return rep
}

// JSON renders the report as a JSON document.
func (r report) JSON() (string, error) {
	js := "{}"
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		js, err = sjson.Set(js, path, value)
	}

	set("id", r.ID)
	set("path", r.Path)
	set("generated_at", r.GeneratedAt.Format(time.RFC3339))
	set("size_bytes", r.SizeBytes)
	set("code_units", r.CodeUnits)
	set("lines", r.Lines)
	set("extent.row", r.Extent.Row)
	set("extent.column", r.Extent.Column)
	set("longest_line.row", r.LongestRow)
	set("longest_line.length", r.LongestLen)
	set("empty_lines", r.EmptyLines)
	set("trailing_newline", r.LastNewline)

	return js, err
}

// WriteText renders the report in the default human-readable form.
func (r report) WriteText(w io.Writer) {
	fmt.Fprintf(w, "%s\n", r.Path)
	fmt.Fprintf(w, "  size:             %d bytes\n", r.SizeBytes)
	fmt.Fprintf(w, "  code units:       %d\n", r.CodeUnits)
	fmt.Fprintf(w, "  lines:            %d\n", r.Lines)
	fmt.Fprintf(w, "  extent:           %v\n", r.Extent)
	fmt.Fprintf(w, "  longest line:     row %d (%d units)\n", r.LongestRow, r.LongestLen)
	fmt.Fprintf(w, "  empty lines:      %d\n", r.EmptyLines)
	fmt.Fprintf(w, "  trailing newline: %t\n", r.LastNewline)
}
