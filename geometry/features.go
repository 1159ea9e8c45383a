package geometry

import "math"

// Predicate helpers shared by every converter and validator. These operate on
// raw components so the float32 types can reuse them after widening.

func containsNaN3(x, y, z float64) bool {
	return math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(z)
}

func containsNaN4(x, y, z, s float64) bool {
	return math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(z) || math.IsNaN(s)
}

func containsNaN9(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) bool {
	return math.IsNaN(m00) || math.IsNaN(m01) || math.IsNaN(m02) ||
		math.IsNaN(m10) || math.IsNaN(m11) || math.IsNaN(m12) ||
		math.IsNaN(m20) || math.IsNaN(m21) || math.IsNaN(m22)
}

func determinant9(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) float64 {
	return m00*(m11*m22-m12*m21) - m01*(m10*m22-m12*m20) + m02*(m10*m21-m11*m20)
}

// isZeroRotation reports whether the matrix is the identity within eps.
func isZeroRotation(m00, m01, m02, m10, m11, m12, m20, m21, m22, eps float64) bool {
	return math.Abs(m00-1) <= eps && math.Abs(m11-1) <= eps && math.Abs(m22-1) <= eps &&
		math.Abs(m01) <= eps && math.Abs(m02) <= eps &&
		math.Abs(m10) <= eps && math.Abs(m12) <= eps &&
		math.Abs(m20) <= eps && math.Abs(m21) <= eps
}

// isRotationProper reports whether the matrix is orthonormal with
// determinant +1 within eps. A negated-determinant matrix always fails.
func isRotationProper(m00, m01, m02, m10, m11, m12, m20, m21, m22, eps float64) bool {
	// Row norms.
	if math.Abs(m00*m00+m01*m01+m02*m02-1) > eps {
		return false
	}
	if math.Abs(m10*m10+m11*m11+m12*m12-1) > eps {
		return false
	}
	if math.Abs(m20*m20+m21*m21+m22*m22-1) > eps {
		return false
	}
	// Row orthogonality.
	if math.Abs(m00*m10+m01*m11+m02*m12) > eps {
		return false
	}
	if math.Abs(m00*m20+m01*m21+m02*m22) > eps {
		return false
	}
	if math.Abs(m10*m20+m11*m21+m12*m22) > eps {
		return false
	}
	return math.Abs(determinant9(m00, m01, m02, m10, m11, m12, m20, m21, m22)-1) <= eps
}

// isMatrix2D reports whether the rotation leaves the XY plane invariant.
func isMatrix2D(m02, m12, m20, m21, m22, eps float64) bool {
	return math.Abs(m02) <= eps && math.Abs(m12) <= eps &&
		math.Abs(m20) <= eps && math.Abs(m21) <= eps && math.Abs(m22-1) <= eps
}

// isQuaternionZOnly reports whether the quaternion represents a rotation
// about the Z axis only.
func isQuaternionZOnly(qx, qy, eps float64) bool {
	return math.Abs(qx) <= eps && math.Abs(qy) <= eps
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
