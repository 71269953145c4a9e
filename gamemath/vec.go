package gamemath

import "math"

// Vec2 is a 2D vector, used for raw movement input axes.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Vec3 is a 3D vector. Y is up; XZ is the horizontal plane.
type Vec3 struct {
	X, Y, Z float64
}

var Up = Vec3{Y: 1}

// HalfPi is a quarter turn in radians.
const HalfPi = math.Pi / 2

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) SqrLen() float64 {
	return v.Dot(v)
}

// Normalized returns the unit vector in v's direction, or the zero vector
// when v has no length.
func (v Vec3) Normalized() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Horizontal returns v with its vertical component zeroed.
func (v Vec3) Horizontal() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Yaw returns the heading angle of v on the XZ plane in radians,
// measured from +Z toward +X.
func (v Vec3) Yaw() float64 {
	return math.Atan2(v.X, v.Z)
}

// FromYaw returns the unit horizontal vector pointing along the given
// heading angle.
func FromYaw(yaw float64) Vec3 {
	return Vec3{X: math.Sin(yaw), Z: math.Cos(yaw)}
}
