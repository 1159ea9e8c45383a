package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// AxisAngle represents a 3D orientation as a unit rotation axis and an angle
// in radians. The identity rotation is canonically stored with a zero axis
// and a zero angle.
type AxisAngle struct {
	x, y, z, angle float64
}

// NewAxisAngle returns an axis-angle set to the identity rotation.
func NewAxisAngle() *AxisAngle {
	return &AxisAngle{}
}

// NewAxisAngleValues returns an axis-angle with the given axis and angle.
// The axis is stored as given; call Normalize to restore a unit axis.
func NewAxisAngleValues(x, y, z, angle float64) *AxisAngle {
	return &AxisAngle{x: x, y: y, z: z, angle: angle}
}

// NewAxisAngleFromQuaternion returns the axis-angle equivalent to q.
func NewAxisAngleFromQuaternion(q *Quaternion) *AxisAngle {
	aa := new(AxisAngle)
	QuaternionToAxisAngle(q, aa)
	return aa
}

// NewAxisAngleFromRotationMatrix returns the axis-angle equivalent to m.
func NewAxisAngleFromRotationMatrix(m *RotationMatrix) *AxisAngle {
	aa := new(AxisAngle)
	RotationMatrixToAxisAngle(m, aa)
	return aa
}

// NewAxisAngleFromRotationVector returns the axis-angle equivalent to the
// rotation vector v.
func NewAxisAngleFromRotationVector(v r3.Vector) *AxisAngle {
	aa := new(AxisAngle)
	RotationVectorToAxisAngle(v, aa)
	return aa
}

// NewAxisAngleFromYawPitchRoll returns the axis-angle equivalent to the
// intrinsic Z-Y-X rotation by yaw, pitch, roll.
func NewAxisAngleFromYawPitchRoll(yaw, pitch, roll float64) *AxisAngle {
	aa := new(AxisAngle)
	YawPitchRollToAxisAngle(yaw, pitch, roll, aa)
	return aa
}

func (aa *AxisAngle) setDirect(x, y, z, angle float64) {
	aa.x, aa.y, aa.z, aa.angle = x, y, z, angle
}

// X returns the x-component of the axis.
func (aa *AxisAngle) X() float64 { return aa.x }

// Y returns the y-component of the axis.
func (aa *AxisAngle) Y() float64 { return aa.y }

// Z returns the z-component of the axis.
func (aa *AxisAngle) Z() float64 { return aa.z }

// Angle returns the rotation angle in radians.
func (aa *AxisAngle) Angle() float64 { return aa.angle }

// Axis returns the rotation axis.
func (aa *AxisAngle) Axis() r3.Vector {
	return r3.Vector{X: aa.x, Y: aa.y, Z: aa.z}
}

// Component returns the component at index in (x, y, z, angle) order.
// It panics if index is outside [0, 3].
func (aa *AxisAngle) Component(index int) float64 {
	switch index {
	case 0:
		return aa.x
	case 1:
		return aa.y
	case 2:
		return aa.z
	case 3:
		return aa.angle
	default:
		panic(fmt.Sprintf("geometry: axis-angle index out of range [%d] with length 4", index))
	}
}

// SetToZero sets this axis-angle to the identity rotation.
func (aa *AxisAngle) SetToZero() {
	aa.setDirect(0, 0, 0, 0)
}

// SetToNaN sets every component to NaN.
func (aa *AxisAngle) SetToNaN() {
	aa.setDirect(nan, nan, nan, nan)
}

// ContainsNaN reports whether any component is NaN.
func (aa *AxisAngle) ContainsNaN() bool {
	return containsNaN4(aa.x, aa.y, aa.z, aa.angle)
}

// Set overwrites all four components.
func (aa *AxisAngle) Set(x, y, z, angle float64) {
	aa.setDirect(x, y, z, angle)
}

// SetAxisAngle copies other into this axis-angle.
func (aa *AxisAngle) SetAxisAngle(other *AxisAngle) {
	*aa = *other
}

// SetQuaternion sets this axis-angle to the orientation of q.
func (aa *AxisAngle) SetQuaternion(q *Quaternion) {
	QuaternionToAxisAngle(q, aa)
}

// SetRotationMatrix sets this axis-angle to the orientation of m.
func (aa *AxisAngle) SetRotationMatrix(m *RotationMatrix) {
	RotationMatrixToAxisAngle(m, aa)
}

// SetRotationVector sets this axis-angle to the orientation of the rotation
// vector v.
func (aa *AxisAngle) SetRotationVector(v r3.Vector) {
	RotationVectorToAxisAngle(v, aa)
}

// SetYawPitchRoll sets this axis-angle to the intrinsic Z-Y-X rotation by
// yaw, pitch, roll.
func (aa *AxisAngle) SetYawPitchRoll(yaw, pitch, roll float64) {
	YawPitchRollToAxisAngle(yaw, pitch, roll, aa)
}

// SetArray reads (x, y, z, angle) from buf starting at startIndex.
// The axis-angle is unchanged when buf is too short.
func (aa *AxisAngle) SetArray(buf []float64, startIndex int) error {
	if len(buf) < startIndex+4 {
		return errBufferTooShort(startIndex+4, len(buf))
	}
	aa.setDirect(buf[startIndex], buf[startIndex+1], buf[startIndex+2], buf[startIndex+3])
	return nil
}

// Pack writes (x, y, z, angle) into buf starting at startIndex.
func (aa *AxisAngle) Pack(buf []float64, startIndex int) error {
	if len(buf) < startIndex+4 {
		return errBufferTooShort(startIndex+4, len(buf))
	}
	buf[startIndex] = aa.x
	buf[startIndex+1] = aa.y
	buf[startIndex+2] = aa.z
	buf[startIndex+3] = aa.angle
	return nil
}

// SetDense reads (x, y, z, angle) down the startCol column of m beginning at
// startRow.
func (aa *AxisAngle) SetDense(m mat.Matrix, startRow, startCol int) {
	aa.setDirect(
		m.At(startRow, startCol),
		m.At(startRow+1, startCol),
		m.At(startRow+2, startCol),
		m.At(startRow+3, startCol))
}

// PackDense writes (x, y, z, angle) down the startCol column of dst beginning
// at startRow.
func (aa *AxisAngle) PackDense(dst mat.Mutable, startRow, startCol int) {
	dst.Set(startRow, startCol, aa.x)
	dst.Set(startRow+1, startCol, aa.y)
	dst.Set(startRow+2, startCol, aa.z)
	dst.Set(startRow+3, startCol, aa.angle)
}

// PackQuaternion converts this axis-angle into dst.
func (aa *AxisAngle) PackQuaternion(dst *Quaternion) {
	AxisAngleToQuaternion(aa, dst)
}

// PackRotationMatrix converts this axis-angle into dst.
func (aa *AxisAngle) PackRotationMatrix(dst *RotationMatrix) {
	AxisAngleToRotationMatrix(aa, dst)
}

// PackRotationVector converts this axis-angle into the rotation vector dst.
func (aa *AxisAngle) PackRotationVector(dst *r3.Vector) {
	AxisAngleToRotationVector(aa, dst)
}

// PackYawPitchRoll converts this axis-angle into dst.
func (aa *AxisAngle) PackYawPitchRoll(dst *YawPitchRoll) {
	AxisAngleToYawPitchRoll(aa, dst)
}

// Normalize rescales the axis to unit length. A zero or NaN axis is left as
// is; the identity convention keeps its zero axis.
func (aa *AxisAngle) Normalize() {
	if aa.ContainsNaN() {
		return
	}
	norm := math.Sqrt(aa.x*aa.x + aa.y*aa.y + aa.z*aa.z)
	if norm > epsSingular {
		inv := 1.0 / norm
		aa.x *= inv
		aa.y *= inv
		aa.z *= inv
	}
}

// Negate flips the axis and the angle, preserving the orientation.
func (aa *AxisAngle) Negate() {
	aa.setDirect(-aa.x, -aa.y, -aa.z, -aa.angle)
}

// TransformTuple returns t rotated by this axis-angle.
func (aa *AxisAngle) TransformTuple(t r3.Vector) r3.Vector {
	var q Quaternion
	AxisAngleToQuaternion(aa, &q)
	return TransformTupleByQuaternion(&q, t)
}

// InverseTransformTuple returns t rotated by the inverse of this axis-angle.
func (aa *AxisAngle) InverseTransformTuple(t r3.Vector) r3.Vector {
	var q Quaternion
	AxisAngleToQuaternion(aa, &q)
	return InverseTransformTupleByQuaternion(&q, t)
}

// Equals reports exact component equality.
func (aa *AxisAngle) Equals(other *AxisAngle) bool {
	return aa.x == other.x && aa.y == other.y && aa.z == other.z && aa.angle == other.angle
}

// EpsilonEquals reports component-wise equality within eps.
func (aa *AxisAngle) EpsilonEquals(other *AxisAngle, eps float64) bool {
	return math.Abs(aa.x-other.x) <= eps && math.Abs(aa.y-other.y) <= eps &&
		math.Abs(aa.z-other.z) <= eps && math.Abs(aa.angle-other.angle) <= eps
}

// GeometricallyEquals reports whether both axis-angles represent the same
// orientation within the angular tolerance eps, independent of axis sign and
// angle wrapping.
func (aa *AxisAngle) GeometricallyEquals(other *AxisAngle, eps float64) bool {
	var q1, q2 Quaternion
	AxisAngleToQuaternion(aa, &q1)
	AxisAngleToQuaternion(other, &q2)
	return q1.GeometricallyEquals(&q2, eps)
}

// String formats the axis-angle as (x, y, z, angle).
func (aa *AxisAngle) String() string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f, %.6f)", aa.x, aa.y, aa.z, aa.angle)
}
