package softras

// Renderer is the operation set consumed by UI layers. Context is the
// software implementation; GPU-accelerated backends implement the same
// contract on top of a hardware surface.
type Renderer interface {
	// Begin pushes a render-target frame for a surface.
	Begin(s Surface)
	// BeginFramebuffer pushes a render-target frame for an offscreen
	// framebuffer.
	BeginFramebuffer(id FramebufferID)
	// End pops the current frame and invokes its finish hook.
	End()

	// NewTexture allocates a texture from 8-bit RGBA data.
	NewTexture(w, h int, rgba8 []byte) Handle
	// DeleteTexture frees a texture.
	DeleteTexture(h Handle)
	// NewFramebuffer allocates an offscreen render target, returning its
	// ID and the texture that receives rendered pixels.
	NewFramebuffer(w, h int) (FramebufferID, Handle)
	// DeleteFramebuffer frees a framebuffer and its texture.
	DeleteFramebuffer(id FramebufferID)

	// DrawTriangles rasterizes triangles; count must be a multiple of 3.
	DrawTriangles(tex Handle, pos, uvs []Point, cols []RGBA)
	// DrawLines rasterizes line segments; count must be a multiple of 2.
	DrawLines(pos []Point, cols []RGBA)

	// PushMatrix pushes an absolute transform.
	PushMatrix(m Matrix)
	// PushMatrixMult pushes a transform composed with the current top.
	PushMatrixMult(m Matrix)
	// PopMatrix removes the top transform.
	PopMatrix()
	// TopMatrix returns the active transform.
	TopMatrix() Matrix

	// PushClip pushes a clip rectangle, intersected with the current one.
	PushClip(r Rect)
	// PopClip removes the top clip rectangle.
	PopClip()

	// PushBlendFunc pushes a blend function.
	PushBlendFunc(f BlendFunc)
	// PopBlendFunc removes the top blend function.
	PopBlendFunc()
	// TopBlendFunc returns the active blend function.
	TopBlendFunc() BlendFunc

	// Close releases the renderer.
	Close() error
}

// Context conforms to the Renderer operation set.
var _ Renderer = (*Context)(nil)
