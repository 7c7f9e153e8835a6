package softras

import "testing"

// renderLines rasterizes line segments onto a fresh surface.
func renderLines(w, h int, pos []Point, cols []RGBA) *MemorySurface {
	rc := NewContext()
	sf := NewMemorySurface(w, h)
	rc.Begin(sf)
	rc.DrawLines(pos, cols)
	rc.End()
	return sf
}

func TestHorizontalLine(t *testing.T) {
	sf := renderLines(10, 10,
		[]Point{Pt(2, 5.5), Pt(8, 5.5)},
		[]RGBA{White, White})

	for x := 0; x < 10; x++ {
		covered := sf.GetPixel(x, 5).A != 0
		want := x >= 2 && x < 8
		if covered != want {
			t.Errorf("pixel (%d, 5) covered = %v, want %v", x, covered, want)
		}
	}
	for y := 0; y < 10; y++ {
		if y != 5 && sf.GetPixel(4, y) != Transparent {
			t.Errorf("pixel (4, %d) written off the line", y)
		}
	}
}

// TestDiagonalLineNoGaps verifies dominant-axis stepping writes exactly
// one pixel per column for an x-dominant line.
func TestDiagonalLineNoGaps(t *testing.T) {
	sf := renderLines(16, 16,
		[]Point{Pt(0, 0), Pt(16, 10)},
		[]RGBA{White, White})

	for x := 0; x < 16; x++ {
		count := 0
		for y := 0; y < 16; y++ {
			if sf.GetPixel(x, y).A != 0 {
				count++
			}
		}
		if count != 1 {
			t.Errorf("column %d has %d covered pixels, want 1", x, count)
		}
	}
}

func TestSteepLineNoGaps(t *testing.T) {
	sf := renderLines(16, 16,
		[]Point{Pt(2, 16), Pt(9, 0)},
		[]RGBA{White, White})

	for y := 0; y < 16; y++ {
		count := 0
		for x := 0; x < 16; x++ {
			if sf.GetPixel(x, y).A != 0 {
				count++
			}
		}
		if count != 1 {
			t.Errorf("row %d has %d covered pixels, want 1", y, count)
		}
	}
}

// TestLineClipRejection verifies a line fully outside the clip rect
// writes nothing.
func TestLineClipRejection(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
	}{
		{"right of clip", Pt(20, 0), Pt(30, 10)},
		{"left of clip", Pt(-20, 0), Pt(-5, 10)},
		{"below clip", Pt(0, 20), Pt(10, 30)},
		{"zero length", Pt(5, 5), Pt(5, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf := renderLines(10, 10, []Point{tt.a, tt.b}, []RGBA{White, White})
			for i, p := range sf.Pixels() {
				if p != Transparent {
					t.Fatalf("rejected line wrote pixel %d: %v", i, p)
				}
			}
		})
	}
}

// TestLinePartialClip verifies a line crossing the clip rect only
// writes the inside run.
func TestLinePartialClip(t *testing.T) {
	rc := NewContext()
	sf := NewMemorySurface(10, 10)

	rc.Begin(sf)
	rc.PushClip(NewRect(3, 0, 4, 10))
	rc.DrawLines([]Point{Pt(0, 4.5), Pt(10, 4.5)}, solid(White, 2))
	rc.PopClip()
	rc.End()

	for x := 0; x < 10; x++ {
		covered := sf.GetPixel(x, 4).A != 0
		want := x >= 3 && x < 7
		if covered != want {
			t.Errorf("pixel (%d, 4) covered = %v, want %v", x, covered, want)
		}
	}
}

// TestLineFirstVertexColor documents that a segment uses only its first
// vertex's color; the second color is accepted but ignored.
func TestLineFirstVertexColor(t *testing.T) {
	sf := renderLines(10, 10,
		[]Point{Pt(0, 5.5), Pt(10, 5.5)},
		[]RGBA{Red, Blue})

	for x := 0; x < 10; x++ {
		if got := sf.GetPixel(x, 5); got != Red {
			t.Errorf("pixel (%d, 5) = %v, want first-vertex red", x, got)
		}
	}
}
