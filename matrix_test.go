package softras

import (
	"math"
	"testing"
)

func TestIdentityTransform(t *testing.T) {
	m := Identity()
	p := Pt(3.5, -2.25)
	if got := m.TransformPoint(p); got != p {
		t.Errorf("Identity().TransformPoint(%v) = %v, want %v", p, got, p)
	}
	if !m.IsIdentity() {
		t.Error("Identity().IsIdentity() = false, want true")
	}
}

func TestTranslateScale(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"translate", Translate(10, 20), Pt(1, 2), Pt(11, 22)},
		{"scale", Scale(2, 3), Pt(1, 2), Pt(2, 6)},
		{"scale then translate", Translate(10, 20).Multiply(Scale(2, 3)), Pt(1, 2), Pt(12, 26)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if !pointNear(got, tt.want, 1e-5) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRotate(t *testing.T) {
	m := Rotate(math.Pi / 2)
	got := m.TransformPoint(Pt(1, 0))
	want := Pt(0, 1)
	if !pointNear(got, want, 1e-6) {
		t.Errorf("Rotate(pi/2).TransformPoint(1, 0) = %v, want %v", got, want)
	}
}

func TestInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"translate", Translate(5, -3)},
		{"scale", Scale(2, 0.5)},
		{"rotate", Rotate(0.7)},
		{"composite", Translate(3, 4).Multiply(Rotate(1.2)).Multiply(Scale(2, 2))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pt(7, -11)
			back := tt.m.Invert().TransformPoint(tt.m.TransformPoint(p))
			if !pointNear(back, p, 1e-3) {
				t.Errorf("Invert round trip = %v, want %v", back, p)
			}
		})
	}
}

func TestInvertSingular(t *testing.T) {
	if got := Scale(0, 0).Invert(); !got.IsIdentity() {
		t.Errorf("Invert of singular matrix = %+v, want identity", got)
	}
}

// pointNear reports whether two points match within eps per axis.
func pointNear(a, b Point, eps float32) bool {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx <= eps && dy <= eps
}
