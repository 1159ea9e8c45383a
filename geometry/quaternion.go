package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// Quaternion represents a 3D orientation as a unit quaternion (x, y, z, s)
// with vector part (x, y, z) and scalar part s. Every mutator that is not
// explicitly unsafe renormalizes after assignment, so the unit-norm invariant
// holds except transiently between SetUnsafe and the next Normalize, and
// except when any component is NaN.
//
// A quaternion and its negation represent the same orientation; use
// GeometricallyEquals for sign-insensitive comparison.
type Quaternion struct {
	x, y, z, s float64
}

// NewQuaternion returns a quaternion set to the identity rotation (0, 0, 0, 1).
func NewQuaternion() *Quaternion {
	return &Quaternion{s: 1}
}

// NewQuaternionValues returns a quaternion with the given components,
// normalized.
func NewQuaternionValues(x, y, z, s float64) *Quaternion {
	q := new(Quaternion)
	q.Set(x, y, z, s)
	return q
}

// NewQuaternionFromAxisAngle returns the quaternion equivalent to aa.
func NewQuaternionFromAxisAngle(aa *AxisAngle) *Quaternion {
	q := new(Quaternion)
	AxisAngleToQuaternion(aa, q)
	return q
}

// NewQuaternionFromRotationMatrix returns the quaternion equivalent to m.
func NewQuaternionFromRotationMatrix(m *RotationMatrix) *Quaternion {
	q := new(Quaternion)
	RotationMatrixToQuaternion(m, q)
	return q
}

// NewQuaternionFromRotationVector returns the quaternion equivalent to the
// rotation vector v.
func NewQuaternionFromRotationVector(v r3.Vector) *Quaternion {
	q := new(Quaternion)
	RotationVectorToQuaternion(v, q)
	return q
}

// NewQuaternionFromYawPitchRoll returns the quaternion equivalent to the
// intrinsic Z-Y-X rotation by yaw, pitch, roll.
func NewQuaternionFromYawPitchRoll(yaw, pitch, roll float64) *Quaternion {
	q := new(Quaternion)
	YawPitchRollToQuaternion(yaw, pitch, roll, q)
	return q
}

func (q *Quaternion) setDirect(x, y, z, s float64) {
	q.x, q.y, q.z, q.s = x, y, z, s
}

// X returns the x-component of the vector part.
func (q *Quaternion) X() float64 { return q.x }

// Y returns the y-component of the vector part.
func (q *Quaternion) Y() float64 { return q.y }

// Z returns the z-component of the vector part.
func (q *Quaternion) Z() float64 { return q.z }

// S returns the scalar part.
func (q *Quaternion) S() float64 { return q.s }

// Component returns the component at index in (x, y, z, s) order.
// It panics if index is outside [0, 3].
func (q *Quaternion) Component(index int) float64 {
	switch index {
	case 0:
		return q.x
	case 1:
		return q.y
	case 2:
		return q.z
	case 3:
		return q.s
	default:
		panic(fmt.Sprintf("geometry: quaternion index out of range [%d] with length 4", index))
	}
}

// SetToZero sets this quaternion to the identity rotation.
func (q *Quaternion) SetToZero() {
	q.setDirect(0, 0, 0, 1)
}

// SetToNaN sets every component to NaN.
func (q *Quaternion) SetToNaN() {
	q.setDirect(nan, nan, nan, nan)
}

// ContainsNaN reports whether any component is NaN.
func (q *Quaternion) ContainsNaN() bool {
	return containsNaN4(q.x, q.y, q.z, q.s)
}

// Set overwrites all four components and renormalizes.
func (q *Quaternion) Set(x, y, z, s float64) {
	q.setDirect(x, y, z, s)
	q.Normalize()
}

// SetUnsafe overwrites all four components without restoring the unit-norm
// invariant. The caller is responsible for calling Normalize before relying
// on it.
func (q *Quaternion) SetUnsafe(x, y, z, s float64) {
	q.setDirect(x, y, z, s)
}

// SetQuaternion copies other into this quaternion verbatim. No
// renormalization: a copy never perturbs the source's components.
func (q *Quaternion) SetQuaternion(other *Quaternion) {
	q.setDirect(other.x, other.y, other.z, other.s)
}

// SetAndConjugate sets this quaternion to the conjugate of other.
func (q *Quaternion) SetAndConjugate(other *Quaternion) {
	q.SetQuaternion(other)
	q.Conjugate()
}

// SetAndNegate sets this quaternion to the negation of other, the same
// orientation on the opposite cover.
func (q *Quaternion) SetAndNegate(other *Quaternion) {
	q.SetQuaternion(other)
	q.Negate()
}

// SetAndInverse sets this quaternion to the inverse of other.
func (q *Quaternion) SetAndInverse(other *Quaternion) {
	q.SetQuaternion(other)
	q.Inverse()
}

// SetAxisAngle sets this quaternion to the orientation of aa.
func (q *Quaternion) SetAxisAngle(aa *AxisAngle) {
	AxisAngleToQuaternion(aa, q)
}

// SetRotationMatrix sets this quaternion to the orientation of m.
func (q *Quaternion) SetRotationMatrix(m *RotationMatrix) {
	RotationMatrixToQuaternion(m, q)
}

// SetRotationVector sets this quaternion to the orientation of the rotation
// vector v.
func (q *Quaternion) SetRotationVector(v r3.Vector) {
	RotationVectorToQuaternion(v, q)
}

// SetYawPitchRoll sets this quaternion to the intrinsic Z-Y-X rotation by
// yaw, pitch, roll.
func (q *Quaternion) SetYawPitchRoll(yaw, pitch, roll float64) {
	YawPitchRollToQuaternion(yaw, pitch, roll, q)
}

// SetArray reads (x, y, z, s) from buf starting at startIndex and
// renormalizes. The quaternion is unchanged when buf is too short.
func (q *Quaternion) SetArray(buf []float64, startIndex int) error {
	if len(buf) < startIndex+4 {
		return errBufferTooShort(startIndex+4, len(buf))
	}
	q.Set(buf[startIndex], buf[startIndex+1], buf[startIndex+2], buf[startIndex+3])
	return nil
}

// Pack writes (x, y, z, s) into buf starting at startIndex.
func (q *Quaternion) Pack(buf []float64, startIndex int) error {
	if len(buf) < startIndex+4 {
		return errBufferTooShort(startIndex+4, len(buf))
	}
	buf[startIndex] = q.x
	buf[startIndex+1] = q.y
	buf[startIndex+2] = q.z
	buf[startIndex+3] = q.s
	return nil
}

// SetDense reads (x, y, z, s) down the startCol column of m beginning at
// startRow and renormalizes.
func (q *Quaternion) SetDense(m mat.Matrix, startRow, startCol int) {
	q.Set(
		m.At(startRow, startCol),
		m.At(startRow+1, startCol),
		m.At(startRow+2, startCol),
		m.At(startRow+3, startCol))
}

// PackDense writes (x, y, z, s) down the startCol column of dst beginning at
// startRow.
func (q *Quaternion) PackDense(dst mat.Mutable, startRow, startCol int) {
	dst.Set(startRow, startCol, q.x)
	dst.Set(startRow+1, startCol, q.y)
	dst.Set(startRow+2, startCol, q.z)
	dst.Set(startRow+3, startCol, q.s)
}

// Number returns this quaternion as a gonum quat.Number (w, i, j, k order).
func (q *Quaternion) Number() quat.Number {
	return quat.Number{Real: q.s, Imag: q.x, Jmag: q.y, Kmag: q.z}
}

// SetNumber sets this quaternion from a gonum quat.Number and renormalizes.
func (q *Quaternion) SetNumber(n quat.Number) {
	q.Set(n.Imag, n.Jmag, n.Kmag, n.Real)
}

// PackAxisAngle converts this quaternion into dst.
func (q *Quaternion) PackAxisAngle(dst *AxisAngle) {
	QuaternionToAxisAngle(q, dst)
}

// PackRotationMatrix converts this quaternion into dst.
func (q *Quaternion) PackRotationMatrix(dst *RotationMatrix) {
	QuaternionToRotationMatrix(q, dst)
}

// PackRotationVector converts this quaternion into the rotation vector dst.
func (q *Quaternion) PackRotationVector(dst *r3.Vector) {
	QuaternionToRotationVector(q, dst)
}

// PackYawPitchRoll converts this quaternion into dst.
func (q *Quaternion) PackYawPitchRoll(dst *YawPitchRoll) {
	QuaternionToYawPitchRoll(q, dst)
}

// Conjugate negates the vector part, producing the inverse orientation for a
// unit quaternion.
func (q *Quaternion) Conjugate() {
	q.x, q.y, q.z = -q.x, -q.y, -q.z
}

// Negate flips all four components, keeping the same orientation on the
// opposite cover.
func (q *Quaternion) Negate() {
	q.setDirect(-q.x, -q.y, -q.z, -q.s)
}

// Inverse sets this quaternion to its inverse.
func (q *Quaternion) Inverse() {
	q.Conjugate()
	q.Normalize()
}

// Normalize rescales to unit norm. NaN components are kept as is; a zero
// quaternion resolves to the identity.
func (q *Quaternion) Normalize() {
	if q.ContainsNaN() {
		return
	}
	normSq := q.x*q.x + q.y*q.y + q.z*q.z + q.s*q.s
	if normSq < epsSingular {
		q.SetToZero()
		return
	}
	inv := 1.0 / math.Sqrt(normSq)
	q.setDirect(q.x*inv, q.y*inv, q.z*inv, q.s*inv)
}

// NormalizeAndLimitToPiMinusPi normalizes and, when the scalar part is
// negative, flips to the opposite cover. Afterwards the equivalent axis-angle
// rotation angle lies in (-pi, pi].
func (q *Quaternion) NormalizeAndLimitToPiMinusPi() {
	q.Normalize()
	if q.s < 0 {
		q.Negate()
	}
}

// IsNormalized reports whether the norm is within eps of one. A NaN
// quaternion is never normalized.
func (q *Quaternion) IsNormalized(eps float64) bool {
	normSq := q.x*q.x + q.y*q.y + q.z*q.z + q.s*q.s
	return !math.IsNaN(normSq) && math.Abs(normSq-1) < eps
}

// IsZOnly reports whether this quaternion represents a rotation about the Z
// axis alone, within eps on the out-of-plane components.
func (q *Quaternion) IsZOnly(eps float64) bool {
	return isQuaternionZOnly(q.x, q.y, eps)
}

// Norm returns the quaternion norm.
func (q *Quaternion) Norm() float64 {
	return math.Sqrt(q.x*q.x + q.y*q.y + q.z*q.z + q.s*q.s)
}

// NormSquared returns the squared norm.
func (q *Quaternion) NormSquared() float64 {
	return q.x*q.x + q.y*q.y + q.z*q.z + q.s*q.s
}

// Dot returns the 4D dot product with other.
func (q *Quaternion) Dot(other *Quaternion) float64 {
	return q.x*other.x + q.y*other.y + q.z*other.z + q.s*other.s
}

// Angle returns the rotation angle, 2*atan2(|u|, s).
func (q *Quaternion) Angle() float64 {
	return 2.0 * math.Atan2(math.Sqrt(q.x*q.x+q.y*q.y+q.z*q.z), q.s)
}

// Yaw returns the yaw angle of the equivalent Z-Y-X decomposition.
func (q *Quaternion) Yaw() float64 {
	var ypr YawPitchRoll
	QuaternionToYawPitchRoll(q, &ypr)
	return ypr.Yaw
}

// Pitch returns the pitch angle of the equivalent Z-Y-X decomposition.
func (q *Quaternion) Pitch() float64 {
	var ypr YawPitchRoll
	QuaternionToYawPitchRoll(q, &ypr)
	return ypr.Pitch
}

// Roll returns the roll angle of the equivalent Z-Y-X decomposition.
func (q *Quaternion) Roll() float64 {
	var ypr YawPitchRoll
	QuaternionToYawPitchRoll(q, &ypr)
	return ypr.Roll
}

// Multiply sets this quaternion to this*other.
func (q *Quaternion) Multiply(other *Quaternion) {
	MultiplyQuaternions(q, other, q)
}

// PreMultiply sets this quaternion to other*this.
func (q *Quaternion) PreMultiply(other *Quaternion) {
	MultiplyQuaternions(other, q, q)
}

// MultiplyConjugateOther sets this quaternion to this*conjugate(other).
func (q *Quaternion) MultiplyConjugateOther(other *Quaternion) {
	MultiplyConjugateRight(q, other, q)
}

// MultiplyConjugateThis sets this quaternion to conjugate(this)*other.
func (q *Quaternion) MultiplyConjugateThis(other *Quaternion) {
	MultiplyConjugateLeft(q, other, q)
}

// PreMultiplyConjugateOther sets this quaternion to conjugate(other)*this.
func (q *Quaternion) PreMultiplyConjugateOther(other *Quaternion) {
	MultiplyConjugateLeft(other, q, q)
}

// PreMultiplyConjugateThis sets this quaternion to other*conjugate(this).
func (q *Quaternion) PreMultiplyConjugateThis(other *Quaternion) {
	MultiplyConjugateRight(other, q, q)
}

// Difference sets this quaternion to conjugate(q1)*q2, the rotation from q1
// to q2.
func (q *Quaternion) Difference(q1, q2 *Quaternion) {
	MultiplyConjugateLeft(q1, q2, q)
}

// Interpolate sets this quaternion to the shorter-arc spherical linear
// interpolation from q1 (alpha = 0) to q2 (alpha = 1).
func (q *Quaternion) Interpolate(q1, q2 *Quaternion, alpha float64) {
	InterpolateQuaternions(q1, q2, alpha, q)
}

// TransformTuple returns t rotated by this quaternion.
func (q *Quaternion) TransformTuple(t r3.Vector) r3.Vector {
	return TransformTupleByQuaternion(q, t)
}

// InverseTransformTuple returns t rotated by the inverse of this quaternion.
func (q *Quaternion) InverseTransformTuple(t r3.Vector) r3.Vector {
	return InverseTransformTupleByQuaternion(q, t)
}

// TransformTuple2D rotates the 2D tuple t. With checkIfTransformInXYPlane
// set, ErrNotPlanarTransform is returned unless this quaternion is a rotation
// about Z alone.
func (q *Quaternion) TransformTuple2D(t r2.Point, checkIfTransformInXYPlane bool) (r2.Point, error) {
	return TransformTuple2DByQuaternion(q, t, checkIfTransformInXYPlane)
}

// InverseTransformTuple2D rotates the 2D tuple t by the inverse rotation,
// with the same optional XY-plane check as TransformTuple2D.
func (q *Quaternion) InverseTransformTuple2D(t r2.Point, checkIfTransformInXYPlane bool) (r2.Point, error) {
	return InverseTransformTuple2DByQuaternion(q, t, checkIfTransformInXYPlane)
}

// TransformVector4D rotates the vector part of v and keeps its scalar part.
func (q *Quaternion) TransformVector4D(v Vector4D) Vector4D {
	return TransformVector4DByQuaternion(q, v)
}

// InverseTransformVector4D applies the inverse rotation to the vector part of
// v and keeps its scalar part.
func (q *Quaternion) InverseTransformVector4D(v Vector4D) Vector4D {
	return InverseTransformVector4DByQuaternion(q, v)
}

// TransformQuaternion stores this*src in dst; dst may be src.
func (q *Quaternion) TransformQuaternion(src, dst *Quaternion) {
	TransformQuaternionByQuaternion(q, src, dst)
}

// InverseTransformQuaternion stores conjugate(this)*src in dst; dst may be
// src.
func (q *Quaternion) InverseTransformQuaternion(src, dst *Quaternion) {
	InverseTransformQuaternionByQuaternion(q, src, dst)
}

// TransformRotationMatrix prepends this rotation to src and stores it in dst;
// dst may be src.
func (q *Quaternion) TransformRotationMatrix(src, dst *RotationMatrix) {
	TransformRotationMatrixByQuaternion(q, src, dst)
}

// InverseTransformRotationMatrix prepends the inverse of this rotation to src
// and stores it in dst; dst may be src.
func (q *Quaternion) InverseTransformRotationMatrix(src, dst *RotationMatrix) {
	InverseTransformRotationMatrixByQuaternion(q, src, dst)
}

// TransformDense stores the similarity transform R*src*transpose(R) of the
// 3x3 matrix src in dst, with R this rotation; dst may be src.
func (q *Quaternion) TransformDense(src mat.Matrix, dst mat.Mutable) error {
	return TransformDenseByQuaternion(q, src, dst)
}

// InverseTransformDense stores transpose(R)*src*R in dst; dst may be src.
func (q *Quaternion) InverseTransformDense(src mat.Matrix, dst mat.Mutable) error {
	return InverseTransformDenseByQuaternion(q, src, dst)
}

// Equals reports exact component equality.
func (q *Quaternion) Equals(other *Quaternion) bool {
	return q.x == other.x && q.y == other.y && q.z == other.z && q.s == other.s
}

// EpsilonEquals reports component-wise equality within eps. The double cover
// is not identified: q and -q are epsilon-equal only if their components
// coincide.
func (q *Quaternion) EpsilonEquals(other *Quaternion, eps float64) bool {
	return math.Abs(q.x-other.x) <= eps && math.Abs(q.y-other.y) <= eps &&
		math.Abs(q.z-other.z) <= eps && math.Abs(q.s-other.s) <= eps
}

// GeometricallyEquals reports whether both quaternions represent the same
// orientation within the angular tolerance eps. q and -q always compare
// equal.
func (q *Quaternion) GeometricallyEquals(other *Quaternion, eps float64) bool {
	if q.ContainsNaN() || other.ContainsNaN() {
		return false
	}
	return q.Distance(other) <= eps
}

// Distance returns the rotation angle between this quaternion and other,
// identified over the double cover. The angle comes from the difference
// quaternion via atan2, which stays accurate near zero where acos of the dot
// product cannot resolve below ~1e-8.
func (q *Quaternion) Distance(other *Quaternion) float64 {
	var diff Quaternion
	MultiplyConjugateLeft(q, other, &diff)
	u := math.Sqrt(diff.x*diff.x + diff.y*diff.y + diff.z*diff.z)
	return 2.0 * math.Atan2(u, math.Abs(diff.s))
}

// String formats the quaternion as (x, y, z, s).
func (q *Quaternion) String() string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f, %.6f)", q.x, q.y, q.z, q.s)
}
