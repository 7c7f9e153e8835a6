package softras

import "testing"

// noUVs returns zeroed texture coordinates for n vertices.
func noUVs(n int) []Point {
	return make([]Point, n)
}

// solid returns n copies of a color.
func solid(c RGBA, n int) []RGBA {
	cols := make([]RGBA, n)
	for i := range cols {
		cols[i] = c
	}
	return cols
}

// renderTriangle rasterizes one triangle onto a fresh surface.
func renderTriangle(w, h int, pos [3]Point, cols [3]RGBA) *MemorySurface {
	rc := NewContext()
	sf := NewMemorySurface(w, h)
	rc.Begin(sf)
	rc.DrawTriangles(NoTexture, pos[:], noUVs(3), cols[:])
	rc.End()
	return sf
}

// TestTriangleCoverageGolden rasterizes an axis-aligned right triangle
// and checks the exact covered pixel set. Pixels are covered when their
// center falls inside the triangle's scanline spans, so for vertices
// (0,0), (10,0), (0,10) the covered set is exactly {(x, y) : x+y <= 8}.
func TestTriangleCoverageGolden(t *testing.T) {
	pos := [3]Point{Pt(0, 0), Pt(10, 0), Pt(0, 10)}
	cols := [3]RGBA{White, White, White}

	sf := renderTriangle(10, 10, pos, cols)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			covered := sf.GetPixel(x, y).A != 0
			want := x+y <= 8
			if covered != want {
				t.Errorf("pixel (%d, %d) covered = %v, want %v", x, y, covered, want)
			}
		}
	}
}

// TestTriangleCoverageDeterministic verifies re-rasterizing produces a
// bit-identical buffer.
func TestTriangleCoverageDeterministic(t *testing.T) {
	pos := [3]Point{Pt(0.3, 0.7), Pt(9.1, 2.2), Pt(4.5, 9.8)}
	cols := [3]RGBA{Red, Green, Blue}

	a := renderTriangle(10, 10, pos, cols)
	b := renderTriangle(10, 10, pos, cols)
	for i := range a.Pixels() {
		if a.Pixels()[i] != b.Pixels()[i] {
			t.Fatalf("pixel %d differs between identical rasterizations: %v vs %v",
				i, a.Pixels()[i], b.Pixels()[i])
		}
	}
}

// TestTriangleVertexOrderIndependence verifies winding order does not
// change coverage.
func TestTriangleVertexOrderIndependence(t *testing.T) {
	a := renderTriangle(10, 10,
		[3]Point{Pt(0, 0), Pt(10, 0), Pt(0, 10)},
		[3]RGBA{White, White, White})
	b := renderTriangle(10, 10,
		[3]Point{Pt(0, 10), Pt(10, 0), Pt(0, 0)},
		[3]RGBA{White, White, White})

	for i := range a.Pixels() {
		if (a.Pixels()[i].A != 0) != (b.Pixels()[i].A != 0) {
			t.Fatalf("coverage differs at pixel %d between windings", i)
		}
	}
}

func TestDegenerateTriangles(t *testing.T) {
	tests := []struct {
		name string
		pos  [3]Point
	}{
		{"all coincident", [3]Point{Pt(5, 5), Pt(5, 5), Pt(5, 5)}},
		{"collinear horizontal", [3]Point{Pt(1, 5), Pt(5, 5), Pt(9, 5)}},
		{"collinear diagonal", [3]Point{Pt(0, 0), Pt(5, 5), Pt(9, 9)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf := renderTriangle(10, 10, tt.pos, [3]RGBA{White, White, White})
			for i, p := range sf.Pixels() {
				if p != Transparent {
					t.Fatalf("degenerate triangle wrote pixel %d: %v", i, p)
				}
			}
		})
	}
}

// TestTriangleClip verifies no pixel outside the pushed clip rect is
// written.
func TestTriangleClip(t *testing.T) {
	rc := NewContext()
	sf := NewMemorySurface(16, 16)

	rc.Begin(sf)
	rc.PushClip(NewRect(4, 4, 8, 8))
	rc.DrawTriangles(NoTexture,
		[]Point{Pt(-10, -10), Pt(40, -10), Pt(-10, 40)},
		noUVs(3), solid(White, 3))
	rc.PopClip()
	rc.End()

	clip := NewRect(4, 4, 8, 8)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			p := sf.GetPixel(x, y)
			if clip.Contains(x, y) {
				if p != White {
					t.Errorf("pixel (%d, %d) inside clip = %v, want white", x, y, p)
				}
			} else if p != Transparent {
				t.Errorf("pixel (%d, %d) outside clip = %v, want transparent", x, y, p)
			}
		}
	}
}

// TestTriangleColorInterpolation checks barycentric interpolation at a
// known interior pixel.
func TestTriangleColorInterpolation(t *testing.T) {
	pos := [3]Point{Pt(0, 0), Pt(21, 0), Pt(0, 21)}
	cols := [3]RGBA{Red, Green, Blue}

	sf := renderTriangle(32, 32, pos, cols)
	got := sf.GetPixel(9, 10)

	// Barycentric weights at the pixel center (9.5, 10.5):
	// vertex 1 weight is x/21, vertex 2 weight is y/21.
	q := float32(9.5 / 21)
	r := float32(10.5 / 21)
	p := 1 - q - r
	want := RGBA{R: p, G: q, B: r, A: 1}
	if !colorNear(got, want, 1e-3) {
		t.Errorf("interpolated color = %v, want %v", got, want)
	}
}

// TestTriangleTextureModulation verifies the interpolated color is
// multiplied by the sampled texel.
func TestTriangleTextureModulation(t *testing.T) {
	rc := NewContext()
	sf := NewMemorySurface(8, 8)

	// Uniform half-intensity green texture.
	data := make([]byte, 2*2*4)
	for i := 0; i < len(data); i += 4 {
		data[i], data[i+1], data[i+2], data[i+3] = 0, 128, 0, 255
	}
	tex := rc.NewTexture(2, 2, data)

	rc.Begin(sf)
	rc.DrawTriangles(tex,
		[]Point{Pt(0, 0), Pt(8, 0), Pt(0, 8)},
		[]Point{Pt(0.5, 0.5), Pt(0.5, 0.5), Pt(0.5, 0.5)},
		solid(White, 3))
	rc.End()

	got := sf.GetPixel(1, 1)
	want := FromBytes(0, 128, 0, 255)
	if !colorNear(got, want, 1e-5) {
		t.Errorf("textured pixel = %v, want %v", got, want)
	}
}

// TestTriangleTransform verifies positions pass through the top matrix.
func TestTriangleTransform(t *testing.T) {
	rc := NewContext()
	sf := NewMemorySurface(16, 16)

	rc.Begin(sf)
	rc.PushMatrixMult(Translate(8, 8))
	rc.DrawTriangles(NoTexture,
		[]Point{Pt(0, 0), Pt(4, 0), Pt(0, 4)},
		noUVs(3), solid(White, 3))
	rc.PopMatrix()
	rc.End()

	if got := sf.GetPixel(8, 8); got != White {
		t.Errorf("translated triangle missing at (8, 8): %v", got)
	}
	if got := sf.GetPixel(0, 0); got != Transparent {
		t.Errorf("untranslated origin written: %v", got)
	}
}
