package text

import "testing"

func TestPointTraverse(t *testing.T) {
	tests := []struct {
		name   string
		base   Point
		extent Point
		want   Point
	}{
		{"zero extent", Point{2, 5}, Point{0, 0}, Point{2, 5}},
		{"same-row extent advances column", Point{2, 5}, Point{0, 3}, Point{2, 8}},
		{"multi-row extent lands at absolute column", Point{2, 5}, Point{3, 1}, Point{5, 1}},
		{"multi-row extent zero column", Point{0, 7}, Point{1, 0}, Point{1, 0}},
		{"from origin", Point{0, 0}, Point{4, 2}, Point{4, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.base.Traverse(tt.extent); got != tt.want {
				t.Errorf("%v.Traverse(%v) = %v, want %v", tt.base, tt.extent, got, tt.want)
			}
		})
	}
}

func TestPointTraversal(t *testing.T) {
	tests := []struct {
		name  string
		end   Point
		start Point
		want  Point
	}{
		{"same row", Point{2, 8}, Point{2, 5}, Point{0, 3}},
		{"later row", Point{5, 1}, Point{2, 5}, Point{3, 1}},
		{"identical points", Point{4, 4}, Point{4, 4}, Point{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.end.Traversal(tt.start)
			if got != tt.want {
				t.Errorf("%v.Traversal(%v) = %v, want %v", tt.end, tt.start, got, tt.want)
			}

			// Traversal inverts Traverse.
			if back := tt.start.Traverse(got); back != tt.end {
				t.Errorf("%v.Traverse(%v) = %v, want %v", tt.start, got, back, tt.end)
			}
		})
	}
}

func TestPointCompare(t *testing.T) {
	tests := []struct {
		a, b Point
		want int
	}{
		{Point{0, 0}, Point{0, 0}, 0},
		{Point{0, 1}, Point{0, 2}, -1},
		{Point{0, 2}, Point{0, 1}, 1},
		{Point{1, 0}, Point{0, 99}, 1},
		{Point{0, 99}, Point{1, 0}, -1},
	}

	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}

	if !(Point{0, 1}).Before(Point{1, 0}) {
		t.Error("expected (0:1) before (1:0)")
	}
	if !(Point{1, 0}).After(Point{0, 1}) {
		t.Error("expected (1:0) after (0:1)")
	}
	if !(Point{}).IsZero() {
		t.Error("expected zero point IsZero")
	}
}

func TestPointString(t *testing.T) {
	if got := (Point{3, 14}).String(); got != "(3:14)" {
		t.Errorf("String() = %q, want %q", got, "(3:14)")
	}
}
