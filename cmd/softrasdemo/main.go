// Command softrasdemo demonstrates the softras software rasterizer.
package main

import (
	"flag"
	"log"

	"github.com/gogpu/softras"
)

func main() {
	var (
		width  = flag.Int("width", 512, "image width")
		height = flag.Int("height", 512, "image height")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	rc := softras.NewContext()
	sf := softras.NewMemorySurface(*width, *height)
	sf.Clear(softras.RGB(0.12, 0.12, 0.16))

	rc.Begin(sf)
	drawBackdrop(rc, *width, *height)
	drawTexturedQuad(rc, *width, *height)
	drawWireStar(rc, *width, *height)
	rc.End()

	if err := sf.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// drawBackdrop fills the target with a vertex-shaded quad.
func drawBackdrop(rc *softras.Context, w, h int) {
	fw, fh := float32(w), float32(h)
	pos := []softras.Point{
		softras.Pt(0, 0), softras.Pt(fw, 0), softras.Pt(0, fh),
		softras.Pt(fw, 0), softras.Pt(fw, fh), softras.Pt(0, fh),
	}
	cols := []softras.RGBA{
		softras.RGB(0.1, 0.2, 0.4), softras.RGB(0.3, 0.1, 0.4), softras.RGB(0.1, 0.4, 0.3),
		softras.RGB(0.3, 0.1, 0.4), softras.RGB(0.5, 0.3, 0.2), softras.RGB(0.1, 0.4, 0.3),
	}
	rc.DrawTriangles(softras.NoTexture, pos, make([]softras.Point, len(pos)), cols)
}

// drawTexturedQuad renders a rotated checkerboard-textured quad.
func drawTexturedQuad(rc *softras.Context, w, h int) {
	tex := rc.NewTexture(8, 8, checkerboard(8, 8))
	defer rc.DeleteTexture(tex)

	// PushMatrixMult composes m*top, so the rotation pushed first is
	// applied to points first, then the translation to center.
	rc.PushMatrixMult(softras.Rotate(0.4))
	rc.PushMatrixMult(softras.Translate(float32(w)/2, float32(h)/2))
	defer rc.PopMatrix()
	defer rc.PopMatrix()

	s := float32(min(w, h)) / 3
	pos := []softras.Point{
		softras.Pt(-s, -s), softras.Pt(s, -s), softras.Pt(-s, s),
		softras.Pt(s, -s), softras.Pt(s, s), softras.Pt(-s, s),
	}
	uvs := []softras.Point{
		softras.Pt(0, 0), softras.Pt(2, 0), softras.Pt(0, 2),
		softras.Pt(2, 0), softras.Pt(2, 2), softras.Pt(0, 2),
	}
	cols := make([]softras.RGBA, len(pos))
	for i := range cols {
		cols[i] = softras.RGBA2(1, 1, 1, 0.9)
	}
	rc.DrawTriangles(tex, pos, uvs, cols)
}

// drawWireStar draws radial lines from the center.
func drawWireStar(rc *softras.Context, w, h int) {
	center := softras.Pt(float32(w)/2, float32(h)/2)
	r := float32(min(w, h)) / 2.2

	var pos []softras.Point
	var cols []softras.RGBA
	const spokes = 24
	for i := 0; i < spokes; i++ {
		m := softras.Rotate(float32(i) * 2 * 3.14159265 / spokes)
		dir := m.TransformPoint(softras.Pt(1, 0))
		pos = append(pos, center, center.Add(dir.Mul(r)))
		c := softras.RGBA2(1, 1, 0.6, 0.7)
		cols = append(cols, c, c)
	}
	rc.DrawLines(pos, cols)
}

// checkerboard builds an 8-bit RGBA checker pattern.
func checkerboard(w, h int) []byte {
	data := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			if (x+y)%2 == 0 {
				data[i], data[i+1], data[i+2], data[i+3] = 235, 235, 235, 255
			} else {
				data[i], data[i+1], data[i+2], data[i+3] = 40, 40, 40, 255
			}
		}
	}
	return data
}
