package common

import (
	"cmp"
	"math"
)

const MaxFloat32 = float32(math.MaxFloat32)

// / Returns the square of the value.
func Sqr[T IT](a T) T {
	return a * a
}

// / Returns the absolute value.
func Abs[T IT](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// / Clamps the value to the specified range.
// / @param[in]		value			The value to clamp.
// / @param[in]		minInclusive	The minimum permitted return value.
// / @param[in]		maxInclusive	The maximum permitted return value.
func Clamp[T cmp.Ordered](value, minInclusive, maxInclusive T) T {
	if value < minInclusive {
		return minInclusive
	}
	if value > maxInclusive {
		return maxInclusive
	}
	return value
}

// / Returns the distance between two points.
func Vdist(v1, v2 Vec3) float32 {
	return float32(math.Sqrt(float64(VdistSqr(v1, v2))))
}

// / Returns the square of the distance between two points.
func VdistSqr(v1, v2 Vec3) float32 {
	dx := v2[0] - v1[0]
	dy := v2[1] - v1[1]
	dz := v2[2] - v1[2]
	return dx*dx + dy*dy + dz*dz
}

// / Normalizes the vector. The zero vector is returned unchanged.
func Vnormalize(v Vec3) Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// / Performs a linear interpolation between two vectors. (@p v1 toward @p v2)
func Vlerp(v1, v2 Vec3, t float32) Vec3 {
	return Vec3{
		v1[0] + (v2[0]-v1[0])*t,
		v1[1] + (v2[1]-v1[1])*t,
		v1[2] + (v2[2]-v1[2])*t,
	}
}

// Segment is a directed line segment between two points.
type Segment struct {
	From, To Vec3
}

func NewSegment(from, to Vec3) Segment {
	return Segment{From: from, To: to}
}

func (s Segment) Delta() Vec3 {
	return s.To.Sub(s.From)
}

// ClosestPointParameter returns the parameter t of the point on the
// segment's supporting line closest to p. With clamp set t is limited to [0, 1].
func (s Segment) ClosestPointParameter(p Vec3, clamp bool) float32 {
	d := s.Delta()
	lenSqr := d.Dot(d)
	if lenSqr == 0 {
		return 0
	}
	t := p.Sub(s.From).Dot(d) / lenSqr
	if clamp {
		t = Clamp(t, 0, 1)
	}
	return t
}

// At returns From + (To-From)*t.
func (s Segment) At(t float32) Vec3 {
	return Vlerp(s.From, s.To, t)
}

// ClosestPoint returns the point on the segment closest to p.
func (s Segment) ClosestPoint(p Vec3) Vec3 {
	return s.At(s.ClosestPointParameter(p, true))
}

// DistanceSqr returns the squared distance from p to the segment.
func (s Segment) DistanceSqr(p Vec3) float32 {
	return VdistSqr(s.ClosestPoint(p), p)
}
