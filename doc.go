// Package softras provides a software 2D rasterizer for Go.
//
// # Overview
//
// softras rasterizes triangles and lines directly into in-memory pixel
// buffers, independent of any GPU or platform toolkit. It implements a
// scanline triangle filler with barycentric attribute interpolation,
// bilinear texture sampling with wraparound addressing, a configurable
// blend-factor compositing pipeline, a stack-based transform/clip/blend
// execution model, and a texture/render-target store with handle reuse.
//
// # Quick Start
//
//	import "github.com/gogpu/softras"
//
//	rc := softras.NewContext()
//	sf := softras.NewMemorySurface(256, 256)
//
//	rc.Begin(sf)
//	rc.DrawTriangles(softras.NoTexture,
//	    []softras.Point{softras.Pt(0, 0), softras.Pt(256, 0), softras.Pt(0, 256)},
//	    make([]softras.Point, 3),
//	    []softras.RGBA{softras.Red, softras.Green, softras.Blue},
//	)
//	rc.End()
//
//	sf.SavePNG("output.png")
//
// # Execution model
//
// All drawing happens between Begin and End against the top of a
// render-target stack. Each frame carries private transform, clip, and
// blend-function stacks which every draw call consults; frames nest in
// LIFO order, so a framebuffer can be rendered from within a window's
// frame. Push/pop calls must balance before End.
//
// The renderer is strictly single-threaded and affine-only, with no
// anti-aliasing of primitive edges. GPU-accelerated implementations of
// the same operation set plug in through the backend package.
//
// # Errors
//
// Violated preconditions (unbalanced stacks, freed handles, drawing
// outside Begin/End) are programmer errors and panic. Degenerate
// geometry is silently skipped and is never an error.
package softras
