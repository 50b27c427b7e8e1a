package gfx

import "github.com/chewxy/math32"

// Transform is a 2D affine matrix stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// Points transform as x' = a*x + c*y + tx, y' = b*x + d*y + ty.
type Transform [6]float32

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{1, 0, 0, 1, 0, 0}
}

// Translation returns a transform that moves points by d.
func Translation(d Point) Transform {
	return Transform{1, 0, 0, 1, d.X, d.Y}
}

// Scaling returns a uniform scale about the origin.
func Scaling(s float32) Transform {
	return Transform{s, 0, 0, s, 0, 0}
}

// Rotate returns a rotation by angle radians about the origin.
func Rotate(angle float32) Transform {
	sin, cos := math32.Sincos(angle)
	return Transform{cos, sin, -sin, cos, 0, 0}
}

// Mul composes two transforms: the argument applies first, then t.
// That is, t.Mul(u).Apply(p) == t.Apply(u.Apply(p)).
func (t Transform) Mul(u Transform) Transform {
	return Transform{
		t[0]*u[0] + t[2]*u[1],
		t[1]*u[0] + t[3]*u[1],
		t[0]*u[2] + t[2]*u[3],
		t[1]*u[2] + t[3]*u[3],
		t[0]*u[4] + t[2]*u[5] + t[4],
		t[1]*u[4] + t[3]*u[5] + t[5],
	}
}

// Invert returns the inverse transform. A singular matrix (determinant
// near zero) inverts to the identity rather than producing NaNs.
func (t Transform) Invert() Transform {
	det := t[0]*t[3] - t[2]*t[1]
	if det > -1e-12 && det < 1e-12 {
		return Identity()
	}
	invDet := 1 / det
	a := t[3] * invDet
	b := -t[1] * invDet
	c := -t[2] * invDet
	d := t[0] * invDet
	return Transform{
		a, b, c, d,
		-(a*t[4] + c*t[5]),
		-(b*t[4] + d*t[5]),
	}
}

// Apply transforms the point p.
func (t Transform) Apply(p Point) Point {
	return Point{
		t[0]*p.X + t[2]*p.Y + t[4],
		t[1]*p.X + t[3]*p.Y + t[5],
	}
}

// Unapply transforms p by the inverse of t.
func (t Transform) Unapply(p Point) Point {
	return t.Invert().Apply(p)
}

// ApplySize transforms a size, ignoring translation.
func (t Transform) ApplySize(s Size) Size {
	return Size{
		t[0]*s.W + t[2]*s.H,
		t[1]*s.W + t[3]*s.H,
	}
}

// IsIdentity reports whether t is exactly the identity transform.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}
