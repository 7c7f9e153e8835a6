package softras

// ContextOption configures a Context during creation.
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	store        *Store
	genericBlend bool
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		store: nil, // Will be created if nil
	}
}

// WithStore sets a shared texture store for the Context.
// Contexts sharing a store can sample each other's textures; the caller
// owns the store's lifetime.
func WithStore(s *Store) ContextOption {
	return func(o *contextOptions) {
		o.store = s
	}
}

// WithGenericBlend disables the specialized blend kernels, forcing the
// generic factor-evaluating kernel for every draw call. The specialized
// and generic kernels produce identical output; this option exists to
// verify that, and to isolate blending bugs.
func WithGenericBlend() ContextOption {
	return func(o *contextOptions) {
		o.genericBlend = true
	}
}
