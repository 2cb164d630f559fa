package vec

import "math"

// V3 is a 3-component vector. Values, not pointers; all methods return copies.
type V3 struct {
	X, Y, Z float64
}

func (v V3) Add(o V3) V3 {
	return V3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v V3) Sub(o V3) V3 {
	return V3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v V3) Scale(f float64) V3 {
	return V3{v.X * f, v.Y * f, v.Z * f}
}

func (v V3) Dot(o V3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v V3) Cross(o V3) V3 {
	return V3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v V3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v V3) NormSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// RotateX rotates v about the x axis by angle radians. Used to tilt
// orbital planes out of the reference plane.
func (v V3) RotateX(angle float64) V3 {
	s, c := math.Sincos(angle)
	return V3{
		v.X,
		v.Y*c - v.Z*s,
		v.Y*s + v.Z*c,
	}
}

func (v V3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
