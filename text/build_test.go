package text

import (
	"bytes"
	"slices"
	"testing"
)

func TestBuildASCII(t *testing.T) {
	tx := Build(bytes.NewReader([]byte("foo\nbar\n")), 8, "UTF-8", 4, nil)

	want := FromString("foo\nbar\n")
	if !tx.Equal(want) {
		t.Errorf("Build = %q offsets %v, want %q offsets %v",
			tx.String(), tx.lineOffsets, want.String(), want.lineOffsets)
	}
	if ext := tx.Extent(); ext != (Point{Row: 2, Column: 0}) {
		t.Errorf("Extent() = %v, want (2:0)", ext)
	}
	checkIndex(t, tx)
}

func TestBuildInvalidByte(t *testing.T) {
	// One invalid byte among valid ASCII: decode must substitute exactly
	// one U+FFFD and keep every following byte.
	tx := Build(bytes.NewReader([]byte("ab\xFFcd")), 5, "ASCII", DefaultChunkSize, nil)

	if tx.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", tx.Len())
	}
	want := []uint16{'a', 'b', 0xFFFD, 'c', 'd'}
	if !slices.Equal(tx.CodeUnits(), want) {
		t.Errorf("CodeUnits() = %v, want %v", tx.CodeUnits(), want)
	}
	checkIndex(t, tx)
}

func TestBuildUnsupportedEncoding(t *testing.T) {
	tx := Build(bytes.NewReader([]byte("data")), 4, "no-such-encoding", DefaultChunkSize, nil)

	// The canonical empty buffer is the setup-failure sentinel; callers
	// distinguish it from a legitimately empty source by prechecking.
	if !tx.Equal(New()) {
		t.Errorf("expected canonical empty text, got %q", tx.String())
	}
	if IsEncodingSupported("no-such-encoding") {
		t.Error("IsEncodingSupported should be false")
	}
	if !IsEncodingSupported("UTF-8") {
		t.Error("IsEncodingSupported(UTF-8) should be true")
	}
}

func TestBuildEmptyStream(t *testing.T) {
	tx := Build(bytes.NewReader(nil), 0, "UTF-8", DefaultChunkSize, nil)

	if !tx.Equal(New()) {
		t.Errorf("expected canonical empty text, got %q with offsets %v",
			tx.String(), tx.lineOffsets)
	}
}

func TestBuildProgress(t *testing.T) {
	var reports []int64
	progress := func(n int64) { reports = append(reports, n) }

	Build(bytes.NewReader([]byte("abcdefgh")), 8, "UTF-8", 3, progress)

	// Cumulative totals, one per successful chunk read: 3, 3, then the
	// short final 2.
	want := []int64{3, 6, 8}
	if !slices.Equal(reports, want) {
		t.Errorf("progress reports = %v, want %v", reports, want)
	}
}

func TestBuildMultiByteAcrossChunks(t *testing.T) {
	// "é" (0xC3 0xA9) straddles the 2-byte chunk boundary; the partial
	// sequence must wait for the next chunk, not become U+FFFD.
	tx := Build(bytes.NewReader([]byte("aé b")), 4, "UTF-8", 2, nil)

	want := []uint16{'a', 0xE9, ' ', 'b'}
	if !slices.Equal(tx.CodeUnits(), want) {
		t.Errorf("CodeUnits() = %v, want %v", tx.CodeUnits(), want)
	}
}

func TestBuildSurrogatePairAcrossChunks(t *testing.T) {
	// A 4-byte scalar split across 3-byte chunks decodes to one
	// surrogate pair.
	tx := Build(bytes.NewReader([]byte("🎉!")), 5, "UTF-8", 3, nil)

	want := []uint16{0xD83C, 0xDF89, '!'}
	if !slices.Equal(tx.CodeUnits(), want) {
		t.Errorf("CodeUnits() = %v, want %v", tx.CodeUnits(), want)
	}
}

func TestBuildTruncatedTrailingSequence(t *testing.T) {
	// The stream ends mid-sequence: the dangling byte is consumed with
	// loss, not stalled on and not substituted.
	tx := Build(bytes.NewReader([]byte{'o', 'k', 0xC3}), 3, "UTF-8", DefaultChunkSize, nil)

	want := []uint16{'o', 'k'}
	if !slices.Equal(tx.CodeUnits(), want) {
		t.Errorf("CodeUnits() = %v, want %v", tx.CodeUnits(), want)
	}
	checkIndex(t, tx)
}

func TestBuildGrowsOutput(t *testing.T) {
	// An expected size far below the real character count forces the
	// output buffer through several geometric growths.
	input := bytes.Repeat([]byte("line of text\n"), 100)
	tx := Build(bytes.NewReader(input), 1, "UTF-8", 64, nil)

	if int(tx.Len()) != len(input) {
		t.Fatalf("Len() = %d, want %d", tx.Len(), len(input))
	}
	if tx.LineCount() != 101 {
		t.Errorf("LineCount() = %d, want 101", tx.LineCount())
	}
	checkIndex(t, tx)
}

func TestBuildLatin1(t *testing.T) {
	// 0xE9 is 'é' in ISO-8859-1.
	tx := Build(bytes.NewReader([]byte{'c', 'a', 'f', 0xE9}), 4, "ISO-8859-1", DefaultChunkSize, nil)

	want := []uint16{'c', 'a', 'f', 0xE9}
	if !slices.Equal(tx.CodeUnits(), want) {
		t.Errorf("CodeUnits() = %v, want %v", tx.CodeUnits(), want)
	}
}

func TestBuildUTF16LE(t *testing.T) {
	input := []byte{'h', 0, 'i', 0, '\n', 0, 0x03, 0x26} // "hi\n☃"
	tx := Build(bytes.NewReader(input), int64(len(input)), "UTF-16LE", DefaultChunkSize, nil)

	want := []uint16{'h', 'i', '\n', 0x2603}
	if !slices.Equal(tx.CodeUnits(), want) {
		t.Errorf("CodeUnits() = %v, want %v", tx.CodeUnits(), want)
	}
	if tx.LineCount() != 2 {
		t.Errorf("LineCount() = %d, want 2", tx.LineCount())
	}
}

func TestBuildTinyChunkSize(t *testing.T) {
	// A chunk size smaller than one encoded character must still make
	// progress.
	tx := Build(bytes.NewReader([]byte("héllo")), 6, "UTF-8", 1, nil)

	want := []uint16{'h', 0xE9, 'l', 'l', 'o'}
	if !slices.Equal(tx.CodeUnits(), want) {
		t.Errorf("CodeUnits() = %v, want %v", tx.CodeUnits(), want)
	}
}

func TestBuildIncrementalIndexMatchesRescan(t *testing.T) {
	input := []byte("alpha\nbeta\r\ngamma\n\ndelta")
	tx := Build(bytes.NewReader(input), int64(len(input)), "UTF-8", 7, nil)

	rescan := FromCodeUnits(tx.CodeUnits())
	if !tx.Equal(rescan) {
		t.Errorf("incremental index %v differs from rescan %v",
			tx.lineOffsets, rescan.lineOffsets)
	}
}
