package softras

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"
	xdraw "golang.org/x/image/draw"
)

// Handle identifies a texture owned by a Store. Handles are opaque
// integers reused via a free list after deletion; callers must not
// retain a handle across the Free call that releases it.
type Handle int32

// NoTexture is the reserved empty placeholder at handle 0. Passing it
// to DrawTriangles selects solid-color rendering.
const NoTexture Handle = 0

// texture is a single owned pixel buffer. pixels is nil while the slot
// sits on the free list.
type texture struct {
	width  int
	height int
	pixels []RGBA
}

// Store owns the raw pixel memory for every allocated texture and
// render target. It is the exclusive owner: render-target frames borrow
// a texture's pixels only for the duration of one begin/end pair.
type Store struct {
	textures []texture
	free     []Handle
}

// NewStore creates an empty texture store.
// Slot 0 is reserved as the empty placeholder backing NoTexture.
func NewStore() *Store {
	return &Store{textures: make([]texture, 1)}
}

// Alloc allocates a w x h texture and returns its handle. rgba8 is the
// initial contents as 8-bit RGBA rows (4 bytes per pixel); nil leaves
// the texture transparent. A previously freed handle may be reused.
func (s *Store) Alloc(w, h int, rgba8 []byte) Handle {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("softras: invalid texture size %dx%d", w, h))
	}
	if rgba8 != nil && len(rgba8) != w*h*4 {
		panic(fmt.Sprintf("softras: texture data is %d bytes, want %d", len(rgba8), w*h*4))
	}

	h2 := s.reserve()
	t := &s.textures[h2]
	t.width = w
	t.height = h
	t.pixels = make([]RGBA, w*h)
	if rgba8 != nil {
		for i := range t.pixels {
			t.pixels[i] = FromBytes(rgba8[i*4], rgba8[i*4+1], rgba8[i*4+2], rgba8[i*4+3])
		}
	}
	Logger().Debug("texture allocated", "handle", int(h2), "width", w, "height", h)
	return h2
}

// AllocImage allocates a w x h texture from any image.Image, resampling
// with bilinear filtering when the requested size differs from the
// image bounds.
func (s *Store) AllocImage(img image.Image, w, h int) Handle {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	} else {
		xdraw.BiLinear.Scale(rgba, rgba.Bounds(), img, b, xdraw.Src, nil)
	}
	return s.Alloc(w, h, rgba.Pix)
}

// Free releases a texture's pixel memory and returns its handle to the
// free list for reuse. Freeing NoTexture or an already freed handle is
// a usage error.
func (s *Store) Free(h Handle) {
	if h == NoTexture {
		panic("softras: free of reserved handle 0")
	}
	t := s.get(h)
	t.width = 0
	t.height = 0
	t.pixels = nil
	s.free = append(s.free, h)
}

// Resize reallocates a texture's pixel buffer, discarding its contents.
// Used for framebuffers when the render target changes size.
func (s *Store) Resize(h Handle, w, ht int) {
	if w < 0 || ht < 0 {
		panic(fmt.Sprintf("softras: invalid texture size %dx%d", w, ht))
	}
	t := s.get(h)
	t.width = w
	t.height = ht
	t.pixels = make([]RGBA, w*ht)
}

// Size returns a texture's dimensions.
func (s *Store) Size(h Handle) (w, ht int) {
	t := s.get(h)
	return t.width, t.height
}

// Fetch returns the texel at integer coordinates (x, y).
// Out-of-range coordinates return Transparent.
func (s *Store) Fetch(h Handle, x, y int) RGBA {
	t := s.get(h)
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return Transparent
	}
	return t.pixels[y*t.width+x]
}

// Sample returns the bilinearly filtered color at texture coordinates
// (u, v), where [0, 1] spans the texture. Coordinates outside [0, 1]
// wrap around rather than clamp, so Sample(h, 1, v) == Sample(h, 0, v).
func (s *Store) Sample(h Handle, u, v float32) RGBA {
	return s.get(h).sample(u, v)
}

func (t *texture) sample(u, v float32) RGBA {
	if t.width == 0 || t.height == 0 {
		return Transparent
	}

	// Sample at texel centers: texel i covers [i, i+1) with its center
	// at i+0.5.
	fx := u*float32(t.width) - 0.5
	fy := v*float32(t.height) - 0.5
	x0 := int(math32.Floor(fx))
	y0 := int(math32.Floor(fy))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	c00 := t.texel(x0, y0)
	c10 := t.texel(x0+1, y0)
	c01 := t.texel(x0, y0+1)
	c11 := t.texel(x0+1, y0+1)

	top := c00.Lerp(c10, tx)
	bot := c01.Lerp(c11, tx)
	return top.Lerp(bot, ty)
}

// texel fetches with wraparound addressing on both axes.
func (t *texture) texel(x, y int) RGBA {
	x %= t.width
	if x < 0 {
		x += t.width
	}
	y %= t.height
	if y < 0 {
		y += t.height
	}
	return t.pixels[y*t.width+x]
}

// reserve returns a free slot, reusing the free list before growing.
func (s *Store) reserve() Handle {
	if n := len(s.free); n > 0 {
		h := s.free[n-1]
		s.free = s.free[:n-1]
		return h
	}
	s.textures = append(s.textures, texture{})
	return Handle(len(s.textures) - 1)
}

// get resolves a handle to its texture record. An out-of-range or freed
// handle is a programming error; this store never receives untrusted
// handles.
func (s *Store) get(h Handle) *texture {
	if h <= 0 || int(h) >= len(s.textures) {
		panic(fmt.Sprintf("softras: invalid texture handle %d", h))
	}
	t := &s.textures[h]
	if t.pixels == nil {
		panic(fmt.Sprintf("softras: use of freed texture handle %d", h))
	}
	return t
}
