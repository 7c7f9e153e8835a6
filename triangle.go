package softras

import (
	"fmt"

	"github.com/chewxy/math32"
)

// vertex carries the attributes interpolated across a triangle.
type vertex struct {
	pos Point
	uv  Point
	col RGBA
}

// DrawTriangles rasterizes len(pos)/3 triangles into the active render
// target. Positions are transformed by the top matrix; uvs and cols
// supply one texture coordinate and one color per vertex, interpolated
// across each triangle. tex selects the texture modulating the
// interpolated color, or NoTexture for solid-color rendering.
//
// len(pos) must be a multiple of 3, with uvs and cols the same length.
// Degenerate (zero-area) triangles produce no output.
func (c *Context) DrawTriangles(tex Handle, pos, uvs []Point, cols []RGBA) {
	f := c.mustFrame()
	if len(pos)%3 != 0 {
		panic(fmt.Sprintf("softras: triangle vertex count %d is not a multiple of 3", len(pos)))
	}
	if len(uvs) != len(pos) || len(cols) != len(pos) {
		panic("softras: uv and color counts must match vertex count")
	}

	var t *texture
	if tex != NoTexture {
		t = c.store.get(tex)
	}

	m := c.TopMatrix()
	k := c.kernel()
	for i := 0; i+2 < len(pos); i += 3 {
		tri := [3]vertex{
			{pos: m.TransformPoint(pos[i]), uv: uvs[i], col: cols[i]},
			{pos: m.TransformPoint(pos[i+1]), uv: uvs[i+1], col: cols[i+1]},
			{pos: m.TransformPoint(pos[i+2]), uv: uvs[i+2], col: cols[i+2]},
		}
		f.fillTriangle(tri, t, k)
	}
}

// fillTriangle rasterizes one triangle with scanline filling and
// barycentric attribute interpolation.
//
// Vertices are sorted by ascending y and the triangle is split at the
// middle vertex into flat-bottom and flat-top halves. Scanlines run at
// pixel centers (y+0.5); each scanline's bounds come from linear
// interpolation along the two bounding edges, clamped to the clip
// rectangle, and pixels are covered when their center lies in
// [left, right). Edges shared between adjacent triangles are not
// deduplicated; abutting triangles may double-blend along the shared
// edge.
func (f *frame) fillTriangle(v [3]vertex, t *texture, k blendKernel) {
	// Sort by ascending y (v[0] topmost).
	if v[1].pos.Y < v[0].pos.Y {
		v[0], v[1] = v[1], v[0]
	}
	if v[2].pos.Y < v[1].pos.Y {
		v[1], v[2] = v[2], v[1]
	}
	if v[1].pos.Y < v[0].pos.Y {
		v[0], v[1] = v[1], v[0]
	}

	p0, p1, p2 := v[0].pos, v[1].pos, v[2].pos

	// Barycentric coefficients: one division per triangle, not per
	// pixel. denom is twice the signed area; a degenerate triangle
	// produces no output.
	denom := p0.Sub(p2).Cross(p1.Sub(p2))
	if math32.Abs(denom) < 1e-9 {
		return
	}
	inv := 1 / denom
	pa := (p1.Y - p2.Y) * inv
	pb := (p2.X - p1.X) * inv
	qa := (p2.Y - p0.Y) * inv
	qb := (p0.X - p2.X) * inv

	bounds := f.clip.Bounds()
	if bounds.Empty() {
		return
	}

	// Inverse slopes for the long edge (top to bottom) and the two
	// short edges.
	dLong := invSlope(p0, p2)

	// Upper half: flat-bottom sub-triangle between p0 and p1, bounded
	// by the top-mid and top-bottom edges.
	if p1.Y > p0.Y {
		d := invSlope(p0, p1)
		f.fillSpans(v, t, k, p0.Y, p1.Y, p0.X, d, p0.X, dLong, p0.Y, pa, pb, qa, qb)
	}

	// Lower half: flat-top sub-triangle between p1 and p2, bounded by
	// the mid-bottom and top-bottom edges.
	if p2.Y > p1.Y {
		d := invSlope(p1, p2)
		f.fillSpans(v, t, k, p1.Y, p2.Y, p1.X, d, p0.X, dLong, p0.Y, pa, pb, qa, qb)
	}
}

// invSlope returns dx/dy for the edge from a to b.
func invSlope(a, b Point) float32 {
	return (b.X - a.X) / (b.Y - a.Y)
}

// fillSpans rasterizes the scanlines of one sub-triangle. The two
// bounding edges are given as a start x plus inverse slope; edge A
// starts at y0 (the sub-triangle's top) while edge B is the triangle's
// long edge anchored at yLong.
func (f *frame) fillSpans(v [3]vertex, t *texture, k blendKernel,
	y0, y1, xa float32, da float32, xb, db, yLong float32,
	pa, pb, qa, qb float32,
) {
	bounds := f.clip.Bounds()

	// First row whose center y+0.5 is >= y0, clamped to the clip rect.
	yStart := int(math32.Ceil(y0 - 0.5))
	if yStart < bounds.Y {
		yStart = bounds.Y
	}
	yEnd := int(math32.Ceil(y1 - 0.5)) // first row with center >= y1
	if yEnd > bounds.Y+bounds.H {
		yEnd = bounds.Y + bounds.H
	}

	p2 := v[2].pos
	for y := yStart; y < yEnd; y++ {
		yc := float32(y) + 0.5
		left := xa + (yc-y0)*da
		right := xb + (yc-yLong)*db
		if right < left {
			left, right = right, left
		}

		xStart := int(math32.Ceil(left - 0.5))
		if xStart < bounds.X {
			xStart = bounds.X
		}
		xEnd := int(math32.Ceil(right - 0.5))
		if xEnd > bounds.X+bounds.W {
			xEnd = bounds.X + bounds.W
		}

		row := f.pixels[y*f.width:]
		for x := xStart; x < xEnd; x++ {
			xc := float32(x) + 0.5
			p := pa*(xc-p2.X) + pb*(yc-p2.Y)
			q := qa*(xc-p2.X) + qb*(yc-p2.Y)
			r := 1 - p - q

			src := RGBA{
				R: v[0].col.R*p + v[1].col.R*q + v[2].col.R*r,
				G: v[0].col.G*p + v[1].col.G*q + v[2].col.G*r,
				B: v[0].col.B*p + v[1].col.B*q + v[2].col.B*r,
				A: v[0].col.A*p + v[1].col.A*q + v[2].col.A*r,
			}
			if t != nil {
				u := v[0].uv.X*p + v[1].uv.X*q + v[2].uv.X*r
				w := v[0].uv.Y*p + v[1].uv.Y*q + v[2].uv.Y*r
				src = src.Mul(t.sample(u, w))
			}

			row[x] = k(src, row[x])
		}
	}
}
