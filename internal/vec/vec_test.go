package vec

import (
	"slices"
	"testing"
)

// naiveSplice is the obviously-correct reference implementation.
func naiveSplice(v []int, start, deletionSize uint32, inserted []int) []int {
	out := make([]int, 0, len(v))
	out = append(out, v[:start]...)
	out = append(out, inserted...)
	out = append(out, v[start+deletionSize:]...)
	return out
}

func TestSplice(t *testing.T) {
	tests := []struct {
		name         string
		v            []int
		start        uint32
		deletionSize uint32
		inserted     []int
		want         []int
	}{
		{"insert into empty", nil, 0, 0, []int{1, 2}, []int{1, 2}},
		{"insert at start", []int{3, 4}, 0, 0, []int{1, 2}, []int{1, 2, 3, 4}},
		{"insert at end", []int{1, 2}, 2, 0, []int{3, 4}, []int{1, 2, 3, 4}},
		{"insert in middle", []int{1, 4}, 1, 0, []int{2, 3}, []int{1, 2, 3, 4}},
		{"delete from start", []int{1, 2, 3}, 0, 2, nil, []int{3}},
		{"delete from middle", []int{1, 2, 3}, 1, 1, nil, []int{1, 3}},
		{"delete from end", []int{1, 2, 3}, 2, 1, nil, []int{1, 2}},
		{"delete everything", []int{1, 2, 3}, 0, 3, nil, []int{}},
		{"replace same size", []int{1, 9, 3}, 1, 1, []int{2}, []int{1, 2, 3}},
		{"replace growing", []int{1, 9, 5}, 1, 1, []int{2, 3, 4}, []int{1, 2, 3, 4, 5}},
		{"replace shrinking", []int{1, 8, 9, 9, 5}, 1, 3, []int{2}, []int{1, 2, 5}},
		{"replace whole", []int{9, 9}, 0, 2, []int{1, 2, 3}, []int{1, 2, 3}},
		{"empty insertion empty deletion", []int{1, 2}, 1, 0, nil, []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := slices.Clone(tt.v)
			got := Splice(in, tt.start, tt.deletionSize, tt.inserted)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Splice(%v, %d, %d, %v) = %v, want %v",
					tt.v, tt.start, tt.deletionSize, tt.inserted, got, tt.want)
			}
		})
	}
}

// TestSpliceOverlap exercises tail moves in both directions: an insertion
// larger than the deletion shifts the tail right over its own source, and
// a smaller one shifts it left.
func TestSpliceOverlap(t *testing.T) {
	base := make([]int, 64)
	for i := range base {
		base[i] = i
	}

	for delSize := uint32(0); delSize <= 8; delSize++ {
		for insSize := 0; insSize <= 8; insSize++ {
			inserted := make([]int, insSize)
			for i := range inserted {
				inserted[i] = 1000 + i
			}

			got := Splice(slices.Clone(base), 4, delSize, inserted)
			want := naiveSplice(base, 4, delSize, inserted)
			if !slices.Equal(got, want) {
				t.Fatalf("Splice(base, 4, %d, %d elems) = %v, want %v",
					delSize, insSize, got, want)
			}
		}
	}
}

func TestSpliceUint32(t *testing.T) {
	// The line-offset index uses uint32 elements; make sure the generic
	// instantiation behaves the same.
	v := []uint32{0, 4, 8}
	got := Splice(v, 1, 1, []uint32{2, 6})
	want := []uint32{0, 2, 6, 8}
	if !slices.Equal(got, want) {
		t.Errorf("Splice = %v, want %v", got, want)
	}
}
