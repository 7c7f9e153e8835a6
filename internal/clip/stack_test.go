package clip

import "testing"

func TestPushIntersects(t *testing.T) {
	tests := []struct {
		name   string
		bounds Rect
		r1, r2 Rect
		want   Rect
	}{
		{
			name:   "nested rects",
			bounds: Rect{0, 0, 100, 100},
			r1:     Rect{10, 10, 50, 50},
			r2:     Rect{20, 20, 10, 10},
			want:   Rect{20, 20, 10, 10},
		},
		{
			name:   "partial overlap",
			bounds: Rect{0, 0, 100, 100},
			r1:     Rect{0, 0, 50, 50},
			r2:     Rect{25, 25, 50, 50},
			want:   Rect{25, 25, 25, 25},
		},
		{
			name:   "disjoint becomes empty",
			bounds: Rect{0, 0, 100, 100},
			r1:     Rect{0, 0, 10, 10},
			r2:     Rect{50, 50, 10, 10},
			want:   Rect{50, 50, 0, 0},
		},
		{
			name:   "larger than bounds is clamped",
			bounds: Rect{0, 0, 100, 100},
			r1:     Rect{-50, -50, 400, 400},
			r2:     Rect{-10, -10, 500, 500},
			want:   Rect{0, 0, 100, 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStack(tt.bounds)
			s.Push(tt.r1)
			s.Push(tt.r2)
			got := s.Bounds()
			if got != tt.want {
				t.Errorf("bounds after two pushes = %+v, want %+v", got, tt.want)
			}

			// The effective clip is contained in both pushed rects and
			// the base bounds.
			for _, r := range []Rect{tt.bounds, tt.r1, tt.r2} {
				if got.Intersect(r) != got {
					t.Errorf("effective clip %+v not contained in %+v", got, r)
				}
			}
		})
	}
}

func TestPopRestores(t *testing.T) {
	base := Rect{0, 0, 64, 64}
	s := NewStack(base)

	s.Push(Rect{8, 8, 32, 32})
	s.Push(Rect{16, 16, 8, 8})
	if s.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", s.Depth())
	}

	s.Pop()
	if got := s.Bounds(); got != (Rect{8, 8, 32, 32}) {
		t.Errorf("bounds after pop = %+v, want {8 8 32 32}", got)
	}

	s.Pop()
	if got := s.Bounds(); got != base {
		t.Errorf("bounds after full unwind = %+v, want %+v", got, base)
	}
	if s.Depth() != 0 {
		t.Errorf("Depth after full unwind = %d, want 0", s.Depth())
	}
}

func TestPopUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Pop on empty stack did not panic")
		}
	}()
	NewStack(Rect{0, 0, 10, 10}).Pop()
}

func TestContains(t *testing.T) {
	r := Rect{2, 3, 4, 5}
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left corner", 2, 3, true},
		{"interior", 4, 5, true},
		{"right edge exclusive", 6, 3, false},
		{"bottom edge exclusive", 2, 8, false},
		{"outside left", 1, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
