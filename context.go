package softras

import (
	"fmt"
	"image"

	"github.com/gogpu/softras/internal/clip"
)

// Surface is the boundary to the windowing layer: any pixel buffer that
// can be presented to the user. The renderer draws into Pixels and calls
// Present when the surface's frame ends; window creation and event
// pumping live entirely outside this module.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// Pixels returns the backing buffer, width*height pixels in row-major
	// order. The renderer writes into it between Begin and End.
	Pixels() []RGBA

	// Present is called when the surface's frame ends, e.g. to blit a
	// window's back buffer to screen.
	Present()
}

// FramebufferID identifies an offscreen render target created by
// NewFramebuffer. Like texture handles, IDs are reused after deletion.
type FramebufferID int32

// framebuffer maps an ID to the texture receiving rendered pixels.
// texture is NoTexture while the slot sits on the free list.
type framebuffer struct {
	texture Handle
}

// frame is one entry of the render target stack. It borrows its pixel
// buffer from the store (or a Surface) for the duration of one
// begin/end pair and owns the private matrix/clip/blend stacks that
// every draw call consults.
type frame struct {
	width  int
	height int
	pixels []RGBA
	finish func() // optional, runs on End

	matrices []Matrix    // index 0 is the frame's base identity entry
	clip     *clip.Stack // base bounds are the full target rect
	blend    []BlendFunc // empty means DefaultBlendFunc
}

// Context is a software renderer: a strictly single-threaded, affine-only
// CPU rasterizer drawing into in-memory pixel buffers. It owns a texture
// store and a stack of render-target frames; all drawing happens between
// Begin and End against the top frame.
//
// Context is not safe for concurrent use and not reentrant: calling a
// drawing operation from within a Surface.Present callback is undefined.
type Context struct {
	store        *Store
	framebuffers []framebuffer
	fbFree       []FramebufferID
	frames       []frame
	genericBlend bool
	closed       bool
}

// NewContext creates a new renderer context. Optional ContextOption
// arguments customize the context:
//
//	// Default context with its own texture store
//	rc := softras.NewContext()
//
//	// Share one texture store between contexts
//	rc := softras.NewContext(softras.WithStore(store))
func NewContext(opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	store := options.store
	if store == nil {
		store = NewStore()
	}

	return &Context{
		store:        store,
		framebuffers: make([]framebuffer, 1), // slot 0 reserved, like handle 0
		genericBlend: options.genericBlend,
	}
}

// Store returns the texture store owned by (or shared with) the context.
func (c *Context) Store() *Store {
	return c.store
}

// Close releases the context. All frames must have ended.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	if len(c.frames) != 0 {
		panic("softras: close with active render target frame")
	}
	c.closed = true
	return nil
}

// Begin pushes a render-target frame drawing into the given surface.
// The surface's buffer is not cleared; callers decide whether to clear.
// The new frame starts with an identity matrix, an unrestricted clip
// covering the full target, and the default blend function.
func (c *Context) Begin(s Surface) {
	w, h := s.Size()
	c.beginFrame(w, h, s.Pixels(), s.Present)
}

// BeginFramebuffer pushes a render-target frame drawing into an
// offscreen framebuffer. Nesting is allowed: a framebuffer frame may be
// begun while a surface frame is active, and unwinds in LIFO order.
func (c *Context) BeginFramebuffer(id FramebufferID) {
	t := c.store.get(c.fbTexture(id))
	c.beginFrame(t.width, t.height, t.pixels, nil)
}

func (c *Context) beginFrame(w, h int, pixels []RGBA, finish func()) {
	if len(pixels) < w*h {
		panic(fmt.Sprintf("softras: target buffer holds %d pixels, want %d", len(pixels), w*h))
	}
	full := clip.Rect{X: 0, Y: 0, W: w, H: h}
	c.frames = append(c.frames, frame{
		width:    w,
		height:   h,
		pixels:   pixels,
		finish:   finish,
		matrices: []Matrix{Identity()},
		clip:     clip.NewStack(full),
	})
	Logger().Debug("frame begin", "width", w, "height", h, "depth", len(c.frames))
}

// End pops the current render-target frame and invokes its finish hook
// (Surface.Present for surface frames). The caller must have unwound
// its matrix, clip, and blend pushes first; a mismatch panics.
func (c *Context) End() {
	f := c.mustFrame()
	if len(f.matrices) != 1 {
		panic("softras: end with unbalanced matrix stack")
	}
	if f.clip.Depth() != 0 {
		panic("softras: end with unbalanced clip stack")
	}
	if len(f.blend) != 0 {
		panic("softras: end with unbalanced blend stack")
	}
	finish := f.finish
	c.frames = c.frames[:len(c.frames)-1]
	Logger().Debug("frame end", "depth", len(c.frames))
	if finish != nil {
		finish()
	}
}

// frame returns the active render-target frame. Drawing or stack
// operations outside a Begin/End bracket are usage errors.
func (c *Context) frame() *frame {
	if len(c.frames) == 0 {
		return nil
	}
	return &c.frames[len(c.frames)-1]
}

func (c *Context) mustFrame() *frame {
	f := c.frame()
	if f == nil {
		panic("softras: operation outside Begin/End")
	}
	return f
}

// NewTexture allocates a texture from 8-bit RGBA rows (4 bytes per
// pixel, len w*h*4). Textures are write-once: they are never mutated
// after upload, except framebuffer textures which rendering overwrites.
func (c *Context) NewTexture(w, h int, rgba8 []byte) Handle {
	return c.store.Alloc(w, h, rgba8)
}

// NewTextureImage allocates a w x h texture from any image.Image,
// resampling if the sizes differ.
func (c *Context) NewTextureImage(img image.Image, w, h int) Handle {
	return c.store.AllocImage(img, w, h)
}

// DeleteTexture frees a texture. The handle must not be retained; it
// may be reused by a later allocation. Freeing a texture whose
// framebuffer frame is still active is a use-after-free and is the
// caller's responsibility to avoid.
func (c *Context) DeleteTexture(h Handle) {
	c.store.Free(h)
}

// NewFramebuffer allocates an offscreen render target and returns its
// ID together with the texture handle that receives rendered pixels.
// The texture may be sampled by later draw calls once the framebuffer's
// frame has ended.
func (c *Context) NewFramebuffer(w, h int) (FramebufferID, Handle) {
	tex := c.store.Alloc(w, h, nil)

	var id FramebufferID
	if n := len(c.fbFree); n > 0 {
		id = c.fbFree[n-1]
		c.fbFree = c.fbFree[:n-1]
	} else {
		c.framebuffers = append(c.framebuffers, framebuffer{})
		id = FramebufferID(len(c.framebuffers) - 1)
	}
	c.framebuffers[id].texture = tex
	return id, tex
}

// DeleteFramebuffer frees a framebuffer and its backing texture,
// returning the ID to a free list for reuse.
func (c *Context) DeleteFramebuffer(id FramebufferID) {
	tex := c.fbTexture(id)
	c.framebuffers[id].texture = NoTexture
	c.fbFree = append(c.fbFree, id)
	c.store.Free(tex)
}

// ResizeFramebuffer reallocates a framebuffer's texture, discarding its
// contents. The framebuffer must not be the target of an active frame.
func (c *Context) ResizeFramebuffer(id FramebufferID, w, h int) {
	c.store.Resize(c.fbTexture(id), w, h)
}

func (c *Context) fbTexture(id FramebufferID) Handle {
	if id <= 0 || int(id) >= len(c.framebuffers) {
		panic(fmt.Sprintf("softras: invalid framebuffer %d", id))
	}
	tex := c.framebuffers[id].texture
	if tex == NoTexture {
		panic(fmt.Sprintf("softras: use of freed framebuffer %d", id))
	}
	return tex
}

// PushMatrix pushes m as the new top of the frame's transform stack,
// replacing the previous top for subsequent draw calls.
func (c *Context) PushMatrix(m Matrix) {
	f := c.mustFrame()
	f.matrices = append(f.matrices, m)
}

// PushMatrixMult pushes m multiplied by the current top, composing the
// transform.
func (c *Context) PushMatrixMult(m Matrix) {
	f := c.mustFrame()
	f.matrices = append(f.matrices, m.Multiply(f.matrices[len(f.matrices)-1]))
}

// PopMatrix removes the top transform. The stack must never be emptied
// below the frame's initial identity entry.
func (c *Context) PopMatrix() {
	f := c.mustFrame()
	if len(f.matrices) <= 1 {
		panic("softras: pop below base matrix")
	}
	f.matrices = f.matrices[:len(f.matrices)-1]
}

// TopMatrix returns the active transform.
func (c *Context) TopMatrix() Matrix {
	f := c.mustFrame()
	return f.matrices[len(f.matrices)-1]
}

// PushClip pushes a clip rectangle, intersected with the current clip.
// The effective clip only ever shrinks and never exceeds the render
// target's bounds.
func (c *Context) PushClip(r Rect) {
	f := c.mustFrame()
	f.clip.Push(clip.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H})
}

// PopClip removes the top clip rectangle, reverting to the previous one.
func (c *Context) PopClip() {
	c.mustFrame().clip.Pop()
}

// ClipBounds returns the current effective clip rectangle.
func (c *Context) ClipBounds() Rect {
	b := c.mustFrame().clip.Bounds()
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// PushBlendFunc pushes a blend function; the new value shadows the old
// with no intersection semantics.
func (c *Context) PushBlendFunc(f BlendFunc) {
	fr := c.mustFrame()
	fr.blend = append(fr.blend, f)
}

// PopBlendFunc removes the top blend function.
func (c *Context) PopBlendFunc() {
	f := c.mustFrame()
	if len(f.blend) == 0 {
		panic("softras: pop on empty blend stack")
	}
	f.blend = f.blend[:len(f.blend)-1]
}

// TopBlendFunc returns the active blend function. An empty stack implies
// the default (source alpha, one minus source alpha).
func (c *Context) TopBlendFunc() BlendFunc {
	f := c.mustFrame()
	if len(f.blend) == 0 {
		return DefaultBlendFunc()
	}
	return f.blend[len(f.blend)-1]
}

// kernel resolves the active blend function to a kernel, once per draw
// call.
func (c *Context) kernel() blendKernel {
	f := c.TopBlendFunc()
	if c.genericBlend {
		return genericKernel(f)
	}
	return kernelFor(f)
}
