package geometry

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Quaternion algebra shared by the double- and single-precision quaternion
// types. All functions buffer their scalar products before writing so the
// destination may alias either operand.

func multiplyQuaternionsRaw(x1, y1, z1, s1, x2, y2, z2, s2 float64, conjugate1, conjugate2 bool, dst *Quaternion) {
	if conjugate1 {
		x1, y1, z1 = -x1, -y1, -z1
	}
	if conjugate2 {
		x2, y2, z2 = -x2, -y2, -z2
	}
	x := s1*x2 + s2*x1 + y1*z2 - z1*y2
	y := s1*y2 + s2*y1 + z1*x2 - x1*z2
	z := s1*z2 + s2*z1 + x1*y2 - y1*x2
	s := s1*s2 - x1*x2 - y1*y2 - z1*z2
	dst.setDirect(x, y, z, s)
}

// MultiplyQuaternions stores the Hamilton product q1*q2 in dst.
// dst may be q1 or q2.
func MultiplyQuaternions(q1, q2, dst *Quaternion) {
	multiplyQuaternionsRaw(q1.x, q1.y, q1.z, q1.s, q2.x, q2.y, q2.z, q2.s, false, false, dst)
}

// MultiplyConjugateLeft stores conjugate(q1)*q2 in dst, the relative rotation
// from q1 to q2, without building a separate conjugate.
func MultiplyConjugateLeft(q1, q2, dst *Quaternion) {
	multiplyQuaternionsRaw(q1.x, q1.y, q1.z, q1.s, q2.x, q2.y, q2.z, q2.s, true, false, dst)
}

// MultiplyConjugateRight stores q1*conjugate(q2) in dst.
func MultiplyConjugateRight(q1, q2, dst *Quaternion) {
	multiplyQuaternionsRaw(q1.x, q1.y, q1.z, q1.s, q2.x, q2.y, q2.z, q2.s, false, true, dst)
}

// InterpolateQuaternions stores the spherical linear interpolation from q0
// (alpha = 0) to qf (alpha = 1) in dst. The shorter arc is always taken: when
// the dot product of the operands is negative, qf is negated before
// interpolating. Nearly collinear operands fall back to a normalized linear
// interpolation.
func InterpolateQuaternions(q0, qf *Quaternion, alpha float64, dst *Quaternion) {
	dot := q0.x*qf.x + q0.y*qf.y + q0.z*qf.z + q0.s*qf.s
	sign := 1.0
	if dot < 0 {
		sign = -1.0
		dot = -dot
	}

	var k0, kf float64
	if dot > 1.0-epsSlerp {
		k0 = 1.0 - alpha
		kf = sign * alpha
	} else {
		theta := math.Acos(clampUnit(dot))
		sinTheta := math.Sin(theta)
		k0 = math.Sin((1.0-alpha)*theta) / sinTheta
		kf = sign * math.Sin(alpha*theta) / sinTheta
	}

	x := k0*q0.x + kf*qf.x
	y := k0*q0.y + kf*qf.y
	z := k0*q0.z + kf*qf.z
	s := k0*q0.s + kf*qf.s
	norm := math.Sqrt(x*x + y*y + z*z + s*s)
	dst.setDirect(x/norm, y/norm, z/norm, s/norm)
}

// transformTupleRaw applies the vector-only sandwich product
// t' = t + 2s(u x t) + 2(u x (u x t)), the closed form of q*t*q^-1 restricted
// to a pure-vector operand. Conjugating negates u, which is all the inverse
// transform needs.
func transformTupleRaw(qx, qy, qz, qs float64, t r3.Vector, conjugate bool) r3.Vector {
	if conjugate {
		qx, qy, qz = -qx, -qy, -qz
	}
	// u x t
	c1x := qy*t.Z - qz*t.Y
	c1y := qz*t.X - qx*t.Z
	c1z := qx*t.Y - qy*t.X
	// u x (u x t)
	c2x := qy*c1z - qz*c1y
	c2y := qz*c1x - qx*c1z
	c2z := qx*c1y - qy*c1x

	return r3.Vector{
		X: t.X + 2.0*(qs*c1x+c2x),
		Y: t.Y + 2.0*(qs*c1y+c2y),
		Z: t.Z + 2.0*(qs*c1z+c2z),
	}
}

// TransformTupleByQuaternion returns t rotated by q.
func TransformTupleByQuaternion(q *Quaternion, t r3.Vector) r3.Vector {
	return transformTupleRaw(q.x, q.y, q.z, q.s, t, false)
}

// InverseTransformTupleByQuaternion returns t rotated by the inverse of q.
func InverseTransformTupleByQuaternion(q *Quaternion, t r3.Vector) r3.Vector {
	return transformTupleRaw(q.x, q.y, q.z, q.s, t, true)
}

func transformTuple2DRaw(qz, qs float64, t r2.Point, conjugate bool) r2.Point {
	if conjugate {
		qz = -qz
	}
	cos := 1.0 - 2.0*qz*qz
	sin := 2.0 * qz * qs
	return r2.Point{X: cos*t.X - sin*t.Y, Y: sin*t.X + cos*t.Y}
}

// TransformTuple2DByQuaternion rotates the 2D tuple t by q. When
// checkIfTransformInXYPlane is set and q is not a rotation about the Z axis
// alone, ErrNotPlanarTransform is returned and t comes back unchanged.
func TransformTuple2DByQuaternion(q *Quaternion, t r2.Point, checkIfTransformInXYPlane bool) (r2.Point, error) {
	if checkIfTransformInXYPlane && !isQuaternionZOnly(q.x, q.y, epsPlane) {
		return t, ErrNotPlanarTransform
	}
	return transformTuple2DRaw(q.z, q.s, t, false), nil
}

// InverseTransformTuple2DByQuaternion rotates the 2D tuple t by the inverse
// of q, with the same optional XY-plane check as the forward transform.
func InverseTransformTuple2DByQuaternion(q *Quaternion, t r2.Point, checkIfTransformInXYPlane bool) (r2.Point, error) {
	if checkIfTransformInXYPlane && !isQuaternionZOnly(q.x, q.y, epsPlane) {
		return t, ErrNotPlanarTransform
	}
	return transformTuple2DRaw(q.z, q.s, t, true), nil
}

// TransformVector4DByQuaternion rotates the (x, y, z) part of v by q and
// carries the scalar part through unchanged.
func TransformVector4DByQuaternion(q *Quaternion, v Vector4D) Vector4D {
	t := transformTupleRaw(q.x, q.y, q.z, q.s, r3.Vector{X: v.X, Y: v.Y, Z: v.Z}, false)
	return Vector4D{X: t.X, Y: t.Y, Z: t.Z, S: v.S}
}

// InverseTransformVector4DByQuaternion rotates the (x, y, z) part of v by the
// inverse of q and carries the scalar part through unchanged.
func InverseTransformVector4DByQuaternion(q *Quaternion, v Vector4D) Vector4D {
	t := transformTupleRaw(q.x, q.y, q.z, q.s, r3.Vector{X: v.X, Y: v.Y, Z: v.Z}, true)
	return Vector4D{X: t.X, Y: t.Y, Z: t.Z, S: v.S}
}

// TransformQuaternionByQuaternion prepends q to src and stores the result in
// dst; dst may be src.
func TransformQuaternionByQuaternion(q, src, dst *Quaternion) {
	MultiplyQuaternions(q, src, dst)
}

// InverseTransformQuaternionByQuaternion prepends the inverse of q to src and
// stores the result in dst; dst may be src.
func InverseTransformQuaternionByQuaternion(q, src, dst *Quaternion) {
	MultiplyConjugateLeft(q, src, dst)
}

// TransformRotationMatrixByQuaternion prepends q to the rotation src and
// stores the result in dst; dst may be src.
func TransformRotationMatrixByQuaternion(q *Quaternion, src, dst *RotationMatrix) {
	var r RotationMatrix
	QuaternionToRotationMatrix(q, &r)
	MultiplyMatrices(&r, src, dst)
}

// InverseTransformRotationMatrixByQuaternion prepends the inverse of q to the
// rotation src and stores the result in dst; dst may be src.
func InverseTransformRotationMatrixByQuaternion(q *Quaternion, src, dst *RotationMatrix) {
	var r RotationMatrix
	QuaternionToRotationMatrix(q, &r)
	MultiplyTransposeLeft(&r, src, dst)
}
