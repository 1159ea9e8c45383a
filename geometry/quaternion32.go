package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/golang/geo/r3"
)

// Quaternion32 is the single-precision quaternion. It stores float32
// components but runs every algorithm through the shared double-precision
// tools and narrows on write, so the two precisions cannot drift apart in the
// epsilon-guarded conversion branches.
type Quaternion32 struct {
	x, y, z, s float32
}

// NewQuaternion32 returns a quaternion set to the identity rotation.
func NewQuaternion32() *Quaternion32 {
	return &Quaternion32{s: 1}
}

// NewQuaternion32Values returns a quaternion with the given components,
// normalized.
func NewQuaternion32Values(x, y, z, s float32) *Quaternion32 {
	q := new(Quaternion32)
	q.Set(x, y, z, s)
	return q
}

// NewQuaternion32FromQuaternion returns the single-precision narrowing of q.
func NewQuaternion32FromQuaternion(q *Quaternion) *Quaternion32 {
	q32 := new(Quaternion32)
	q32.SetQuaternion(q)
	return q32
}

// NewQuaternion32FromAxisAngle returns the quaternion equivalent to aa.
func NewQuaternion32FromAxisAngle(aa *AxisAngle) *Quaternion32 {
	q32 := new(Quaternion32)
	q32.SetAxisAngle(aa)
	return q32
}

// widen copies the components into the double-precision scratch value w.
func (q *Quaternion32) widen(w *Quaternion) {
	w.setDirect(float64(q.x), float64(q.y), float64(q.z), float64(q.s))
}

// narrow stores the double-precision value w into the float32 components.
func (q *Quaternion32) narrow(w *Quaternion) {
	q.x, q.y, q.z, q.s = float32(w.x), float32(w.y), float32(w.z), float32(w.s)
}

// X32 returns the x-component of the vector part.
func (q *Quaternion32) X32() float32 { return q.x }

// Y32 returns the y-component of the vector part.
func (q *Quaternion32) Y32() float32 { return q.y }

// Z32 returns the z-component of the vector part.
func (q *Quaternion32) Z32() float32 { return q.z }

// S32 returns the scalar part.
func (q *Quaternion32) S32() float32 { return q.s }

// Component returns the component at index in (x, y, z, s) order.
// It panics if index is outside [0, 3].
func (q *Quaternion32) Component(index int) float32 {
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
func (q *Quaternion32) SetToZero() {
	q.x, q.y, q.z, q.s = 0, 0, 0, 1
}

// SetToNaN sets every component to NaN.
func (q *Quaternion32) SetToNaN() {
	n := math32.NaN()
	q.x, q.y, q.z, q.s = n, n, n, n
}

// ContainsNaN reports whether any component is NaN.
func (q *Quaternion32) ContainsNaN() bool {
	return math32.IsNaN(q.x) || math32.IsNaN(q.y) || math32.IsNaN(q.z) || math32.IsNaN(q.s)
}

// Set overwrites all four components and renormalizes.
func (q *Quaternion32) Set(x, y, z, s float32) {
	q.SetUnsafe(x, y, z, s)
	q.Normalize()
}

// SetUnsafe overwrites all four components without restoring the unit-norm
// invariant.
func (q *Quaternion32) SetUnsafe(x, y, z, s float32) {
	q.x, q.y, q.z, q.s = x, y, z, s
}

// SetQuaternion narrows the double-precision quaternion into this one. The
// cast is verbatim; the result stays unit within float32 rounding.
func (q *Quaternion32) SetQuaternion(other *Quaternion) {
	q.x, q.y, q.z, q.s = float32(other.x), float32(other.y), float32(other.z), float32(other.s)
}

// SetQuaternion32 copies other into this quaternion verbatim.
func (q *Quaternion32) SetQuaternion32(other *Quaternion32) {
	*q = *other
}

// SetAxisAngle sets this quaternion to the orientation of aa.
func (q *Quaternion32) SetAxisAngle(aa *AxisAngle) {
	var w Quaternion
	AxisAngleToQuaternion(aa, &w)
	q.narrow(&w)
}

// SetRotationMatrix sets this quaternion to the orientation of m.
func (q *Quaternion32) SetRotationMatrix(m *RotationMatrix) {
	var w Quaternion
	RotationMatrixToQuaternion(m, &w)
	q.narrow(&w)
}

// SetRotationVector sets this quaternion to the orientation of the rotation
// vector v.
func (q *Quaternion32) SetRotationVector(v r3.Vector) {
	var w Quaternion
	RotationVectorToQuaternion(v, &w)
	q.narrow(&w)
}

// SetYawPitchRoll sets this quaternion to the intrinsic Z-Y-X rotation by
// yaw, pitch, roll.
func (q *Quaternion32) SetYawPitchRoll(yaw, pitch, roll float64) {
	var w Quaternion
	YawPitchRollToQuaternion(yaw, pitch, roll, &w)
	q.narrow(&w)
}

// SetArray reads (x, y, z, s) from buf starting at startIndex and
// renormalizes. The quaternion is unchanged when buf is too short.
func (q *Quaternion32) SetArray(buf []float32, startIndex int) error {
	if len(buf) < startIndex+4 {
		return errBufferTooShort(startIndex+4, len(buf))
	}
	q.Set(buf[startIndex], buf[startIndex+1], buf[startIndex+2], buf[startIndex+3])
	return nil
}

// Pack writes (x, y, z, s) into buf starting at startIndex.
func (q *Quaternion32) Pack(buf []float32, startIndex int) error {
	if len(buf) < startIndex+4 {
		return errBufferTooShort(startIndex+4, len(buf))
	}
	buf[startIndex] = q.x
	buf[startIndex+1] = q.y
	buf[startIndex+2] = q.z
	buf[startIndex+3] = q.s
	return nil
}

// PackQuaternion widens this quaternion into dst.
func (q *Quaternion32) PackQuaternion(dst *Quaternion) {
	q.widen(dst)
}

// PackAxisAngle converts this quaternion into dst.
func (q *Quaternion32) PackAxisAngle(dst *AxisAngle) {
	convertQuaternionToAxisAngleRaw(float64(q.x), float64(q.y), float64(q.z), float64(q.s), dst)
}

// PackRotationMatrix converts this quaternion into dst.
func (q *Quaternion32) PackRotationMatrix(dst *RotationMatrix) {
	convertQuaternionToMatrixRaw(float64(q.x), float64(q.y), float64(q.z), float64(q.s), dst)
}

// PackRotationVector converts this quaternion into the rotation vector dst.
func (q *Quaternion32) PackRotationVector(dst *r3.Vector) {
	convertQuaternionToRotationVectorRaw(float64(q.x), float64(q.y), float64(q.z), float64(q.s), dst)
}

// PackYawPitchRoll converts this quaternion into dst.
func (q *Quaternion32) PackYawPitchRoll(dst *YawPitchRoll) {
	convertQuaternionToYawPitchRollRaw(float64(q.x), float64(q.y), float64(q.z), float64(q.s), dst)
}

// Conjugate negates the vector part.
func (q *Quaternion32) Conjugate() {
	q.x, q.y, q.z = -q.x, -q.y, -q.z
}

// Negate flips all four components, keeping the same orientation on the
// opposite cover.
func (q *Quaternion32) Negate() {
	q.x, q.y, q.z, q.s = -q.x, -q.y, -q.z, -q.s
}

// Inverse sets this quaternion to its inverse.
func (q *Quaternion32) Inverse() {
	q.Conjugate()
	q.Normalize()
}

// Normalize rescales to unit norm in double precision and narrows back.
func (q *Quaternion32) Normalize() {
	var w Quaternion
	q.widen(&w)
	w.Normalize()
	q.narrow(&w)
}

// NormalizeAndLimitToPiMinusPi normalizes and, when the scalar part is
// negative, flips to the opposite cover. Afterwards the equivalent axis-angle
// rotation angle lies in (-pi, pi].
func (q *Quaternion32) NormalizeAndLimitToPiMinusPi() {
	q.Normalize()
	if q.s < 0 {
		q.Negate()
	}
}

// IsNormalized reports whether the norm is within eps of one. A NaN
// quaternion is never normalized.
func (q *Quaternion32) IsNormalized(eps float32) bool {
	normSq := q.x*q.x + q.y*q.y + q.z*q.z + q.s*q.s
	return !math32.IsNaN(normSq) && math32.Abs(normSq-1) < eps
}

// Norm returns the quaternion norm.
func (q *Quaternion32) Norm() float32 {
	return math32.Sqrt(q.x*q.x + q.y*q.y + q.z*q.z + q.s*q.s)
}

// Dot returns the 4D dot product with other.
func (q *Quaternion32) Dot(other *Quaternion32) float32 {
	return q.x*other.x + q.y*other.y + q.z*other.z + q.s*other.s
}

// Angle returns the rotation angle, 2*atan2(|u|, s).
func (q *Quaternion32) Angle() float32 {
	return 2 * math32.Atan2(math32.Sqrt(q.x*q.x+q.y*q.y+q.z*q.z), q.s)
}

// Multiply sets this quaternion to this*other.
func (q *Quaternion32) Multiply(other *Quaternion32) {
	var w Quaternion
	multiplyQuaternionsRaw(
		float64(q.x), float64(q.y), float64(q.z), float64(q.s),
		float64(other.x), float64(other.y), float64(other.z), float64(other.s),
		false, false, &w)
	q.narrow(&w)
}

// PreMultiply sets this quaternion to other*this.
func (q *Quaternion32) PreMultiply(other *Quaternion32) {
	var w Quaternion
	multiplyQuaternionsRaw(
		float64(other.x), float64(other.y), float64(other.z), float64(other.s),
		float64(q.x), float64(q.y), float64(q.z), float64(q.s),
		false, false, &w)
	q.narrow(&w)
}

// Difference sets this quaternion to conjugate(q1)*q2, the rotation from q1
// to q2.
func (q *Quaternion32) Difference(q1, q2 *Quaternion32) {
	var w Quaternion
	multiplyQuaternionsRaw(
		float64(q1.x), float64(q1.y), float64(q1.z), float64(q1.s),
		float64(q2.x), float64(q2.y), float64(q2.z), float64(q2.s),
		true, false, &w)
	q.narrow(&w)
}

// Interpolate sets this quaternion to the shorter-arc spherical linear
// interpolation from q1 (alpha = 0) to q2 (alpha = 1).
func (q *Quaternion32) Interpolate(q1, q2 *Quaternion32, alpha float64) {
	var w1, w2 Quaternion
	q1.widen(&w1)
	q2.widen(&w2)
	InterpolateQuaternions(&w1, &w2, alpha, &w1)
	q.narrow(&w1)
}

// TransformTuple returns t rotated by this quaternion.
func (q *Quaternion32) TransformTuple(t r3.Vector) r3.Vector {
	return transformTupleRaw(float64(q.x), float64(q.y), float64(q.z), float64(q.s), t, false)
}

// InverseTransformTuple returns t rotated by the inverse of this quaternion.
func (q *Quaternion32) InverseTransformTuple(t r3.Vector) r3.Vector {
	return transformTupleRaw(float64(q.x), float64(q.y), float64(q.z), float64(q.s), t, true)
}

// Equals reports exact component equality.
func (q *Quaternion32) Equals(other *Quaternion32) bool {
	return q.x == other.x && q.y == other.y && q.z == other.z && q.s == other.s
}

// EpsilonEquals reports component-wise equality within eps.
func (q *Quaternion32) EpsilonEquals(other *Quaternion32, eps float32) bool {
	return math32.Abs(q.x-other.x) <= eps && math32.Abs(q.y-other.y) <= eps &&
		math32.Abs(q.z-other.z) <= eps && math32.Abs(q.s-other.s) <= eps
}

// GeometricallyEquals reports whether both quaternions represent the same
// orientation within the angular tolerance eps. q and -q always compare
// equal.
func (q *Quaternion32) GeometricallyEquals(other *Quaternion32, eps float64) bool {
	var w1, w2 Quaternion
	q.widen(&w1)
	other.widen(&w2)
	return w1.GeometricallyEquals(&w2, eps)
}

// String formats the quaternion as (x, y, z, s).
func (q *Quaternion32) String() string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f, %.6f)", q.x, q.y, q.z, q.s)
}
