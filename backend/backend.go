// Package backend abstracts the rendering implementation behind the
// softras operation set, allowing GPU-accelerated renderers to stand in
// for the CPU rasterizer. Backends register themselves via Register and
// are selected via Get or Default.
package backend

import (
	"errors"

	"github.com/gogpu/softras"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// RenderBackend is the interface for rendering backends.
//
// The software backend in this package draws on the CPU; hardware
// backends (OpenGL, Direct2D, and similar) implement the same contract
// on top of a GPU and live in their own modules, registering themselves
// on import.
type RenderBackend interface {
	// Name returns the backend identifier (e.g., "software").
	Name() string

	// Init initializes the backend.
	// This should be called before any rendering operations.
	Init() error

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()

	// NewContext creates a renderer for this backend.
	NewContext(opts ...softras.ContextOption) (softras.Renderer, error)
}
