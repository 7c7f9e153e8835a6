package softras

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// MemorySurface is an in-memory render target implementing Surface.
// It stands in for a window's back buffer in tests, offscreen
// rendering, and the demo; Present records that the frame finished but
// otherwise does nothing.
type MemorySurface struct {
	width     int
	height    int
	pixels    []RGBA
	presented int
}

// NewMemorySurface creates a surface with the given dimensions, cleared
// to transparent.
func NewMemorySurface(width, height int) *MemorySurface {
	return &MemorySurface{
		width:  width,
		height: height,
		pixels: make([]RGBA, width*height),
	}
}

// Size returns the surface dimensions.
func (s *MemorySurface) Size() (width, height int) {
	return s.width, s.height
}

// Pixels returns the backing buffer.
func (s *MemorySurface) Pixels() []RGBA {
	return s.pixels
}

// Present implements Surface. It counts invocations so tests can assert
// the end-of-frame hook ran.
func (s *MemorySurface) Present() {
	s.presented++
}

// Presented returns how many times Present has been called.
func (s *MemorySurface) Presented() int {
	return s.presented
}

// Clear fills the entire surface with a color.
func (s *MemorySurface) Clear(c RGBA) {
	for i := range s.pixels {
		s.pixels[i] = c
	}
}

// GetPixel returns the color of a single pixel.
// Out-of-range coordinates return Transparent.
func (s *MemorySurface) GetPixel(x, y int) RGBA {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	return s.pixels[y*s.width+x]
}

// ToImage converts the surface to an image.NRGBA.
func (s *MemorySurface) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	for i, p := range s.pixels {
		r, g, b, a := p.Bytes()
		img.Pix[i*4+0] = r
		img.Pix[i*4+1] = g
		img.Pix[i*4+2] = b
		img.Pix[i*4+3] = a
	}
	return img
}

// SavePNG saves the surface to a PNG file.
func (s *MemorySurface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, s.ToImage())
}

// At implements the image.Image interface.
func (s *MemorySurface) At(x, y int) color.Color {
	return s.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (s *MemorySurface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *MemorySurface) ColorModel() color.Model {
	return color.NRGBAModel
}
