package geometry

import "math"

// Vector4D is a plain 4-component vector (x, y, z, s). Unlike a quaternion
// it carries no unit-norm invariant; transforms rotate the (x, y, z) part
// and leave s untouched.
type Vector4D struct {
	X, Y, Z, S float64
}

// SetToZero zeroes all four components.
func (v *Vector4D) SetToZero() {
	*v = Vector4D{}
}

// SetToNaN sets all four components to NaN.
func (v *Vector4D) SetToNaN() {
	v.X, v.Y, v.Z, v.S = nan, nan, nan, nan
}

// ContainsNaN reports whether any component is NaN.
func (v *Vector4D) ContainsNaN() bool {
	return containsNaN4(v.X, v.Y, v.Z, v.S)
}

// EpsilonEquals reports component-wise equality within eps.
func (v *Vector4D) EpsilonEquals(other Vector4D, eps float64) bool {
	return math.Abs(v.X-other.X) <= eps && math.Abs(v.Y-other.Y) <= eps &&
		math.Abs(v.Z-other.Z) <= eps && math.Abs(v.S-other.S) <= eps
}
