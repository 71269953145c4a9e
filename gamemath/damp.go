package gamemath

import "math"

// DecayExp exponentially decays v toward zero with the given time constant.
// A larger drag keeps the value around longer.
func DecayExp(v Vec3, drag, dt float64) Vec3 {
	if drag <= 0 {
		return Vec3{}
	}
	return v.Scale(math.Exp(-dt / drag))
}

// MoveToward shifts current toward target by at most maxDelta.
func MoveToward(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// WrapAngle normalizes an angle into (-pi, pi].
func WrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// RotateToward interpolates a yaw angle toward target along the shortest arc
// with exponential damping. rate is the damping rate in 1/seconds; higher
// rates converge faster.
func RotateToward(current, target, rate, dt float64) float64 {
	diff := WrapAngle(target - current)
	t := 1 - math.Exp(-rate*dt)
	return WrapAngle(current + diff*t)
}

// Clamp limits v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
