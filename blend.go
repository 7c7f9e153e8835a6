package softras

// BlendFactor selects the per-channel multiplier applied to a color
// before summation during compositing.
type BlendFactor uint8

const (
	// BlendZero multiplies by 0.
	BlendZero BlendFactor = iota
	// BlendOne multiplies by 1.
	BlendOne
	// BlendSrcAlpha multiplies by the source alpha.
	BlendSrcAlpha
	// BlendOneMinusSrcAlpha multiplies by 1 - source alpha.
	BlendOneMinusSrcAlpha
	// BlendDstAlpha multiplies by the destination alpha.
	BlendDstAlpha
	// BlendOneMinusDstAlpha multiplies by 1 - destination alpha.
	BlendOneMinusDstAlpha
	// BlendSrcColor multiplies by the source color, per channel.
	BlendSrcColor
	// BlendOneMinusSrcColor multiplies by 1 - source color, per channel.
	BlendOneMinusSrcColor
	// BlendDstColor multiplies by the destination color, per channel.
	BlendDstColor
	// BlendOneMinusDstColor multiplies by 1 - destination color, per channel.
	BlendOneMinusDstColor
)

// BlendFunc is a pair of blend factors for the source and destination
// terms of the compositing sum.
type BlendFunc struct {
	Src, Dst BlendFactor
}

// DefaultBlendFunc returns the standard alpha compositing function,
// (source alpha, one minus source alpha).
func DefaultBlendFunc() BlendFunc {
	return BlendFunc{Src: BlendSrcAlpha, Dst: BlendOneMinusSrcAlpha}
}

// factorColor evaluates a blend factor against the source and destination
// colors, returning the per-channel multiplier.
func factorColor(f BlendFactor, src, dst RGBA) RGBA {
	switch f {
	case BlendZero:
		return RGBA{}
	case BlendOne:
		return RGBA{R: 1, G: 1, B: 1, A: 1}
	case BlendSrcAlpha:
		return RGBA{R: src.A, G: src.A, B: src.A, A: src.A}
	case BlendOneMinusSrcAlpha:
		a := 1 - src.A
		return RGBA{R: a, G: a, B: a, A: a}
	case BlendDstAlpha:
		return RGBA{R: dst.A, G: dst.A, B: dst.A, A: dst.A}
	case BlendOneMinusDstAlpha:
		a := 1 - dst.A
		return RGBA{R: a, G: a, B: a, A: a}
	case BlendSrcColor:
		return src
	case BlendOneMinusSrcColor:
		return RGBA{R: 1 - src.R, G: 1 - src.G, B: 1 - src.B, A: 1 - src.A}
	case BlendDstColor:
		return dst
	case BlendOneMinusDstColor:
		return RGBA{R: 1 - dst.R, G: 1 - dst.G, B: 1 - dst.B, A: 1 - dst.A}
	default:
		return RGBA{}
	}
}

// Blend composites src into dst using the given blend function:
//
//	out = src*F(f.Src) + dst*F(f.Dst)
//
// evaluated per channel with the result clamped to [0, 1]. For the
// default (source alpha, one minus source alpha) pair the alpha
// channel instead follows the Porter-Duff over formula,
// srcA + dstA*(1-srcA), so compositing a translucent source onto an
// opaque destination yields an opaque result. This is a pure function
// with no hidden state.
func Blend(src, dst RGBA, f BlendFunc) RGBA {
	sf := factorColor(f.Src, src, dst)
	df := factorColor(f.Dst, src, dst)
	out := RGBA{
		R: clamp01(src.R*sf.R + dst.R*df.R),
		G: clamp01(src.G*sf.G + dst.G*df.G),
		B: clamp01(src.B*sf.B + dst.B*df.B),
		A: clamp01(src.A*sf.A + dst.A*df.A),
	}
	if f == DefaultBlendFunc() {
		out.A = clamp01(src.A + dst.A*(1-src.A))
	}
	return out
}

// blendKernel blends one source fragment into a destination pixel.
// Kernels are resolved once per draw call, not per pixel.
type blendKernel func(src, dst RGBA) RGBA

// kernelFor returns the blend kernel for the given function.
// Common factor pairs get specialized kernels with the factor dispatch
// folded away; everything else falls back to the generic kernel. The
// specialized and generic kernels compute identical results.
func kernelFor(f BlendFunc) blendKernel {
	switch f {
	case BlendFunc{Src: BlendOne, Dst: BlendZero}:
		return blendCopy
	case BlendFunc{Src: BlendSrcAlpha, Dst: BlendOneMinusSrcAlpha}:
		return blendAlphaOver
	default:
		return genericKernel(f)
	}
}

// genericKernel returns a kernel that evaluates the factors through
// Blend on every pixel. Used as the fallback for uncommon factor pairs
// and, via WithGenericBlend, to cross-check the specialized kernels.
func genericKernel(f BlendFunc) blendKernel {
	return func(src, dst RGBA) RGBA {
		return Blend(src, dst, f)
	}
}

// blendCopy implements (one, zero): the source replaces the destination.
func blendCopy(src, _ RGBA) RGBA {
	return RGBA{
		R: clamp01(src.R),
		G: clamp01(src.G),
		B: clamp01(src.B),
		A: clamp01(src.A),
	}
}

// blendAlphaOver implements (source alpha, one minus source alpha),
// the default compositing function. Alpha uses the Porter-Duff over
// formula rather than the factor product, matching Blend.
func blendAlphaOver(src, dst RGBA) RGBA {
	sa := src.A
	inv := 1 - sa
	return RGBA{
		R: clamp01(src.R*sa + dst.R*inv),
		G: clamp01(src.G*sa + dst.G*inv),
		B: clamp01(src.B*sa + dst.B*inv),
		A: clamp01(src.A + dst.A*inv),
	}
}

// clamp01 restricts a value to [0, 1] range.
func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
