package backend

import (
	"github.com/gogpu/softras"
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU-based software backend.
	BackendSoftware = "software"
	// BackendOpenGL is the name used by hardware OpenGL backends.
	// Such backends live in their own modules and register on import.
	BackendOpenGL = "opengl"
)

// SoftwareBackend is the CPU-based rendering backend. All of its
// contexts share one texture store so framebuffers rendered by one
// context can be sampled by another.
type SoftwareBackend struct {
	initialized bool
	store       *softras.Store
}

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() RenderBackend {
		return &SoftwareBackend{}
	})
}

// NewSoftwareBackend creates a new software rendering backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// Init initializes the backend.
func (b *SoftwareBackend) Init() error {
	b.store = softras.NewStore()
	b.initialized = true
	softras.Logger().Info("backend initialized", "name", BackendSoftware)
	return nil
}

// Close releases all backend resources.
func (b *SoftwareBackend) Close() {
	b.store = nil
	b.initialized = false
}

// NewContext creates a software renderer context backed by the shared
// texture store.
func (b *SoftwareBackend) NewContext(opts ...softras.ContextOption) (softras.Renderer, error) {
	if !b.initialized {
		return nil, ErrNotInitialized
	}
	merged := append([]softras.ContextOption{softras.WithStore(b.store)}, opts...)
	return softras.NewContext(merged...), nil
}
