package gesture

import (
	"math"

	"video-transform-preview/internal/transform"
)

// Affine maps a layer's local pixel space (origin at its top-left corner)
// to viewport space. Rotation and skew pivot on the local origin:
//
//	x' = A*x + C*y + TX
//	y' = B*x + D*y + TY
type Affine struct {
	A, B, C, D float64
	TX, TY     float64
}

// NewAffine builds the layer matrix for a rendered transform. Width and
// height are not part of the matrix; they size the local rectangle.
func NewAffine(r transform.Rendered) Affine {
	rot := r.Rotation * math.Pi / 180
	return Affine{
		A:  math.Cos(rot + r.Skew.Y),
		B:  math.Sin(rot + r.Skew.Y),
		C:  -math.Sin(rot - r.Skew.X),
		D:  math.Cos(rot - r.Skew.X),
		TX: r.Position.X,
		TY: r.Position.Y,
	}
}

func (m Affine) Apply(p transform.Vec2) transform.Vec2 {
	return transform.Vec2{
		X: m.A*p.X + m.C*p.Y + m.TX,
		Y: m.B*p.X + m.D*p.Y + m.TY,
	}
}

// Invert maps a viewport point back to local space. ok is false when the
// matrix is degenerate.
func (m Affine) Invert(p transform.Vec2) (local transform.Vec2, ok bool) {
	det := m.A*m.D - m.B*m.C
	if math.Abs(det) < 1e-12 {
		return transform.Vec2{}, false
	}
	x := p.X - m.TX
	y := p.Y - m.TY
	return transform.Vec2{
		X: (m.D*x - m.C*y) / det,
		Y: (-m.B*x + m.A*y) / det,
	}, true
}

// Quad returns the viewport corners of the local rectangle grown by pad on
// every side, in top-left, bottom-left, bottom-right, top-right order. The
// padding follows the sign of each extent so it always lies outside the
// rectangle, mirrored or not.
func (m Affine) Quad(width, height, pad float64) [4]transform.Vec2 {
	x0, x1 := outset(width, pad)
	y0, y1 := outset(height, pad)
	return [4]transform.Vec2{
		m.Apply(transform.Vec2{X: x0, Y: y0}),
		m.Apply(transform.Vec2{X: x0, Y: y1}),
		m.Apply(transform.Vec2{X: x1, Y: y1}),
		m.Apply(transform.Vec2{X: x1, Y: y0}),
	}
}

// outset widens [0, extent] by pad away from the rectangle.
func outset(extent, pad float64) (lo, hi float64) {
	if extent < 0 {
		pad = -pad
	}
	return -pad, extent + pad
}
