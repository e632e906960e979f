package geometry

import "math"

// Affine is a 2D affine transform:
//
//	| A  B  TX |
//	| C  D  TY |
//	| 0  0  1  |
type Affine struct {
	A, B, TX float64
	C, D, TY float64
}

// Translation returns a transform moving points by (tx, ty).
func Translation(tx, ty float64) Affine {
	return Affine{A: 1, D: 1, TX: tx, TY: ty}
}

// Rotation returns a transform rotating points about the origin.
func Rotation(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{A: cos, B: -sin, C: sin, D: cos}
}

// Scaling returns a uniform scale about the origin.
func Scaling(s float64) Affine {
	return Affine{A: s, D: s}
}

// Apply transforms p.
func (t Affine) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.TX,
		Y: t.C*p.X + t.D*p.Y + t.TY,
	}
}

// Then returns the transform that applies t first and then o.
func (t Affine) Then(o Affine) Affine {
	return Affine{
		A:  o.A*t.A + o.B*t.C,
		B:  o.A*t.B + o.B*t.D,
		TX: o.A*t.TX + o.B*t.TY + o.TX,
		C:  o.C*t.A + o.D*t.C,
		D:  o.C*t.B + o.D*t.D,
		TY: o.C*t.TX + o.D*t.TY + o.TY,
	}
}

// Inverse returns the inverse transform. ok is false for singular transforms.
func (t Affine) Inverse() (inv Affine, ok bool) {
	det := t.A*t.D - t.B*t.C
	if math.Abs(det) < 1e-12 {
		return Affine{}, false
	}
	inv = Affine{
		A: t.D / det,
		B: -t.B / det,
		C: -t.C / det,
		D: t.A / det,
	}
	inv.TX = -(inv.A*t.TX + inv.B*t.TY)
	inv.TY = -(inv.C*t.TX + inv.D*t.TY)
	return inv, true
}

// Local returns the local-to-world transform of an object placed at center,
// rotated by angle and uniformly scaled.
func Local(center Point, angle, scale float64) Affine {
	return Scaling(scale).Then(Rotation(angle)).Then(Translation(center.X, center.Y))
}
