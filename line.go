package softras

import (
	"fmt"

	"github.com/chewxy/math32"
)

// DrawLines rasterizes len(pos)/2 one-pixel-wide line segments into the
// active render target. Positions are transformed by the top matrix.
//
// Each segment is drawn using only the color of its first vertex. The
// second vertex's color is accepted but ignored; this mirrors the
// longstanding behavior of the engine this renderer descends from and
// is kept deliberately rather than silently changed.
//
// len(pos) must be a multiple of 2, with cols the same length.
func (c *Context) DrawLines(pos []Point, cols []RGBA) {
	f := c.mustFrame()
	if len(pos)%2 != 0 {
		panic(fmt.Sprintf("softras: line vertex count %d is not a multiple of 2", len(pos)))
	}
	if len(cols) != len(pos) {
		panic("softras: color count must match vertex count")
	}

	m := c.TopMatrix()
	k := c.kernel()
	for i := 0; i+1 < len(pos); i += 2 {
		a := m.TransformPoint(pos[i])
		b := m.TransformPoint(pos[i+1])
		f.drawLine(a, b, cols[i], k)
	}
}

// drawLine rasterizes one segment by stepping pixel-by-pixel along the
// dominant axis (the one with the larger |delta|, so no gaps appear)
// and computing the perpendicular coordinate from the slope. The run is
// clipped parametrically against the clip rectangle on the dominant
// axis; a segment fully outside is rejected without touching pixels.
func (f *frame) drawLine(a, b Point, col RGBA, k blendKernel) {
	bounds := f.clip.Bounds()
	if bounds.Empty() {
		return
	}

	dx := b.X - a.X
	dy := b.Y - a.Y
	if dx == 0 && dy == 0 {
		return
	}

	if math32.Abs(dx) >= math32.Abs(dy) {
		// X-dominant. Normalize left to right.
		if b.X < a.X {
			a, b = b, a
			dx, dy = -dx, -dy
		}
		slope := dy / dx

		xStart := int(math32.Ceil(a.X - 0.5))
		xEnd := int(math32.Ceil(b.X - 0.5))
		if xStart < bounds.X {
			xStart = bounds.X
		}
		if xEnd > bounds.X+bounds.W {
			xEnd = bounds.X + bounds.W
		}
		if xStart >= xEnd {
			return
		}

		for x := xStart; x < xEnd; x++ {
			xc := float32(x) + 0.5
			y := int(math32.Floor(a.Y + (xc-a.X)*slope))
			if y >= bounds.Y && y < bounds.Y+bounds.H {
				i := y*f.width + x
				f.pixels[i] = k(col, f.pixels[i])
			}
		}
	} else {
		// Y-dominant. Normalize top to bottom.
		if b.Y < a.Y {
			a, b = b, a
			dx, dy = -dx, -dy
		}
		slope := dx / dy

		yStart := int(math32.Ceil(a.Y - 0.5))
		yEnd := int(math32.Ceil(b.Y - 0.5))
		if yStart < bounds.Y {
			yStart = bounds.Y
		}
		if yEnd > bounds.Y+bounds.H {
			yEnd = bounds.Y + bounds.H
		}
		if yStart >= yEnd {
			return
		}

		for y := yStart; y < yEnd; y++ {
			yc := float32(y) + 0.5
			x := int(math32.Floor(a.X + (yc-a.Y)*slope))
			if x >= bounds.X && x < bounds.X+bounds.W {
				i := y*f.width + x
				f.pixels[i] = k(col, f.pixels[i])
			}
		}
	}
}
