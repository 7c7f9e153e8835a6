package clip

// Stack manages hierarchical rectangular clip regions with push/pop
// operations. Each push intersects the new rectangle with the current
// bounds, so the effective clip only ever shrinks.
type Stack struct {
	entries []Rect // previous bounds, one per push
	bounds  Rect
}

// NewStack creates a new clip stack with the given bounds.
// The bounds represent the maximum clipping area (the render target size).
func NewStack(bounds Rect) *Stack {
	return &Stack{
		entries: make([]Rect, 0, 8),
		bounds:  bounds,
	}
}

// Push pushes a clip rectangle onto the stack.
// The new clip bounds are the intersection of the current bounds and r.
func (s *Stack) Push(r Rect) {
	s.entries = append(s.entries, s.bounds)
	s.bounds = s.bounds.Intersect(r)
}

// Pop removes the most recent clip rectangle, restoring the previous
// bounds. Popping an empty stack is a push/pop mismatch and panics.
func (s *Stack) Pop() {
	if len(s.entries) == 0 {
		panic("clip: pop on empty clip stack")
	}
	last := len(s.entries) - 1
	s.bounds = s.entries[last]
	s.entries = s.entries[:last]
}

// Bounds returns the current effective clip bounds.
// This is the intersection of all pushed clip rectangles.
func (s *Stack) Bounds() Rect {
	return s.bounds
}

// Depth returns the current depth of the clip stack.
func (s *Stack) Depth() int {
	return len(s.entries)
}
