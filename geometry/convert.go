package geometry

import (
	"math"

	"github.com/golang/geo/r3"
)

var nan = math.NaN()

// Conversion engine. One pure function per ordered pair of representations;
// pairs without a stable closed form go through the quaternion hub. Every
// function checks NaN before any trigonometry, resolves near-identity inputs
// to the canonical identity of the destination, and never mutates its source.
//
// The raw-component variants exist so the float32 types and the matrix types
// can share a single double-precision implementation.

// QuaternionToAxisAngle converts q into an axis-angle.
// The angle is 2*atan2(|u|, s) with u the vector part; below the singularity
// tolerance the destination snaps to the identity.
func QuaternionToAxisAngle(q *Quaternion, dst *AxisAngle) {
	convertQuaternionToAxisAngleRaw(q.x, q.y, q.z, q.s, dst)
}

func convertQuaternionToAxisAngleRaw(qx, qy, qz, qs float64, dst *AxisAngle) {
	if containsNaN4(qx, qy, qz, qs) {
		dst.SetToNaN()
		return
	}
	uNorm := math.Sqrt(qx*qx + qy*qy + qz*qz)
	if uNorm > epsSingular {
		angle := 2.0 * math.Atan2(uNorm, qs)
		inv := 1.0 / uNorm
		dst.setDirect(qx*inv, qy*inv, qz*inv, angle)
	} else {
		dst.SetToZero()
	}
}

// QuaternionToRotationMatrix converts q into a rotation matrix.
// A degenerate all-zero quaternion resolves to the identity matrix.
func QuaternionToRotationMatrix(q *Quaternion, dst *RotationMatrix) {
	convertQuaternionToMatrixRaw(q.x, q.y, q.z, q.s, dst)
}

func convertQuaternionToMatrixRaw(qx, qy, qz, qs float64, dst *RotationMatrix) {
	if containsNaN4(qx, qy, qz, qs) {
		dst.SetToNaN()
		return
	}
	normSq := qx*qx + qy*qy + qz*qz + qs*qs
	if normSq < epsSingular {
		dst.SetIdentity()
		return
	}
	inv := 1.0 / math.Sqrt(normSq)
	x, y, z, s := qx*inv, qy*inv, qz*inv, qs*inv

	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	sx, sy, sz := s*x, s*y, s*z

	dst.setDirect(
		1-2*(yy+zz), 2*(xy-sz), 2*(xz+sy),
		2*(xy+sz), 1-2*(xx+zz), 2*(yz-sx),
		2*(xz-sy), 2*(yz+sx), 1-2*(xx+yy))
}

// QuaternionToRotationVector converts q into a rotation vector, the rotation
// axis scaled by the rotation angle.
func QuaternionToRotationVector(q *Quaternion, dst *r3.Vector) {
	convertQuaternionToRotationVectorRaw(q.x, q.y, q.z, q.s, dst)
}

func convertQuaternionToRotationVectorRaw(qx, qy, qz, qs float64, dst *r3.Vector) {
	if containsNaN4(qx, qy, qz, qs) {
		*dst = r3.Vector{X: nan, Y: nan, Z: nan}
		return
	}
	uNorm := math.Sqrt(qx*qx + qy*qy + qz*qz)
	if uNorm > epsSingular {
		k := 2.0 * math.Atan2(uNorm, qs) / uNorm
		*dst = r3.Vector{X: qx * k, Y: qy * k, Z: qz * k}
	} else {
		*dst = r3.Vector{}
	}
}

// QuaternionToYawPitchRoll converts q into yaw-pitch-roll angles, the
// successive intrinsic rotations Z(yaw), Y(pitch), X(roll).
// At the gimbal singularity (|pitch| = pi/2) roll is set to zero and yaw
// absorbs the remaining in-plane rotation.
func QuaternionToYawPitchRoll(q *Quaternion, dst *YawPitchRoll) {
	convertQuaternionToYawPitchRollRaw(q.x, q.y, q.z, q.s, dst)
}

func convertQuaternionToYawPitchRollRaw(qx, qy, qz, qs float64, dst *YawPitchRoll) {
	if containsNaN4(qx, qy, qz, qs) {
		dst.SetToNaN()
		return
	}
	sinPitch := 2.0 * (qs*qy - qx*qz)
	switch {
	case sinPitch >= 1.0-epsSingular:
		dst.Pitch = 0.5 * math.Pi
		dst.Roll = 0
		dst.Yaw = 2.0 * math.Atan2(qz, qs)
	case sinPitch <= -(1.0 - epsSingular):
		dst.Pitch = -0.5 * math.Pi
		dst.Roll = 0
		dst.Yaw = 2.0 * math.Atan2(qz, qs)
	default:
		dst.Pitch = math.Asin(sinPitch)
		dst.Yaw = math.Atan2(2.0*(qx*qy+qz*qs), 1.0-2.0*(qy*qy+qz*qz))
		dst.Roll = math.Atan2(2.0*(qy*qz+qx*qs), 1.0-2.0*(qx*qx+qy*qy))
	}
}

// AxisAngleToQuaternion converts aa into a unit quaternion. A zero or
// near-zero axis resolves to the identity quaternion.
func AxisAngleToQuaternion(aa *AxisAngle, dst *Quaternion) {
	convertAxisAngleToQuaternionRaw(aa.x, aa.y, aa.z, aa.angle, dst)
}

func convertAxisAngleToQuaternionRaw(ux, uy, uz, angle float64, dst *Quaternion) {
	if containsNaN4(ux, uy, uz, angle) {
		dst.SetToNaN()
		return
	}
	uNorm := math.Sqrt(ux*ux + uy*uy + uz*uz)
	if uNorm > epsSingular {
		halfAngle := 0.5 * angle
		k := math.Sin(halfAngle) / uNorm
		dst.setDirect(ux*k, uy*k, uz*k, math.Cos(halfAngle))
	} else {
		dst.SetToZero()
	}
}

// AxisAngleToRotationMatrix converts aa into a rotation matrix using the
// Rodrigues formula. A zero axis resolves to the identity matrix.
func AxisAngleToRotationMatrix(aa *AxisAngle, dst *RotationMatrix) {
	convertAxisAngleToMatrixRaw(aa.x, aa.y, aa.z, aa.angle, dst)
}

func convertAxisAngleToMatrixRaw(ux, uy, uz, angle float64, dst *RotationMatrix) {
	if containsNaN4(ux, uy, uz, angle) {
		dst.SetToNaN()
		return
	}
	uNorm := math.Sqrt(ux*ux + uy*uy + uz*uz)
	if uNorm <= epsSingular {
		dst.SetIdentity()
		return
	}
	inv := 1.0 / uNorm
	x, y, z := ux*inv, uy*inv, uz*inv
	sin, cos := math.Sincos(angle)
	t := 1.0 - cos

	dst.setDirect(
		t*x*x+cos, t*x*y-sin*z, t*x*z+sin*y,
		t*x*y+sin*z, t*y*y+cos, t*y*z-sin*x,
		t*x*z-sin*y, t*y*z+sin*x, t*z*z+cos)
}

// AxisAngleToRotationVector converts aa into a rotation vector.
// The axis is normalized before scaling so a drifted axis length does not
// leak into the vector magnitude.
func AxisAngleToRotationVector(aa *AxisAngle, dst *r3.Vector) {
	if aa.ContainsNaN() {
		*dst = r3.Vector{X: nan, Y: nan, Z: nan}
		return
	}
	uNorm := math.Sqrt(aa.x*aa.x + aa.y*aa.y + aa.z*aa.z)
	if uNorm > epsSingular {
		k := aa.angle / uNorm
		*dst = r3.Vector{X: aa.x * k, Y: aa.y * k, Z: aa.z * k}
	} else {
		*dst = r3.Vector{}
	}
}

// AxisAngleToYawPitchRoll converts aa into yaw-pitch-roll angles through the
// quaternion hub.
func AxisAngleToYawPitchRoll(aa *AxisAngle, dst *YawPitchRoll) {
	var q Quaternion
	AxisAngleToQuaternion(aa, &q)
	QuaternionToYawPitchRoll(&q, dst)
}

// RotationMatrixToAxisAngle converts m into an axis-angle.
//
// The standard off-diagonal-difference extraction degenerates when its norm
// falls below the singularity tolerance. That covers two distinct cases: the
// identity rotation, resolved to the canonical zero axis-angle, and the
// 180-degree rotation, where the axis is recovered from the largest diagonal
// term (checked in x, y, z order; alternate orderings yield different but
// equally valid axes).
func RotationMatrixToAxisAngle(m *RotationMatrix, dst *AxisAngle) {
	convertMatrixToAxisAngleRaw(m.m00, m.m01, m.m02, m.m10, m.m11, m.m12, m.m20, m.m21, m.m22, dst)
}

func convertMatrixToAxisAngleRaw(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64, dst *AxisAngle) {
	if containsNaN9(m00, m01, m02, m10, m11, m12, m20, m21, m22) {
		dst.SetToNaN()
		return
	}

	x := m21 - m12
	y := m02 - m20
	z := m10 - m01

	s := math.Sqrt(x*x + y*y + z*z)

	if s > epsSingular {
		sin := 0.5 * s
		cos := 0.5 * (m00 + m11 + m22 - 1.0)
		angle := math.Atan2(sin, cos)
		inv := 1.0 / s
		dst.setDirect(x*inv, y*inv, z*inv, angle)
		return
	}

	if isZeroRotation(m00, m01, m02, m10, m11, m12, m20, m21, m22, epsSingular) {
		dst.SetToZero()
		return
	}

	// Remaining singularity is a 180-degree rotation.
	xx := 0.50 * (m00 + 1.0)
	yy := 0.50 * (m11 + 1.0)
	zz := 0.50 * (m22 + 1.0)
	xy := 0.25 * (m01 + m10)
	xz := 0.25 * (m02 + m20)
	yz := 0.25 * (m12 + m21)

	if xx > yy && xx > zz {
		x = math.Sqrt(xx)
		y = xy / x
		z = xz / x
	} else if yy > zz {
		y = math.Sqrt(yy)
		x = xy / y
		z = yz / y
	} else {
		z = math.Sqrt(zz)
		x = xz / z
		y = yz / z
	}
	dst.setDirect(x, y, z, math.Pi)
}

// RotationMatrixToQuaternion converts m into a unit quaternion using the
// largest-of-trace-and-diagonals branch scheme, then renormalizes to absorb
// rounding from the division.
func RotationMatrixToQuaternion(m *RotationMatrix, dst *Quaternion) {
	convertMatrixToQuaternionRaw(m.m00, m.m01, m.m02, m.m10, m.m11, m.m12, m.m20, m.m21, m.m22, dst)
}

func convertMatrixToQuaternionRaw(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64, dst *Quaternion) {
	if containsNaN9(m00, m01, m02, m10, m11, m12, m20, m21, m22) {
		dst.SetToNaN()
		return
	}

	var x, y, z, s float64
	if tr := m00 + m11 + m22; tr > 0 {
		k := 0.5 / math.Sqrt(tr+1.0)
		s = 0.25 / k
		x = (m21 - m12) * k
		y = (m02 - m20) * k
		z = (m10 - m01) * k
	} else if m00 > m11 && m00 > m22 {
		k := 2.0 * math.Sqrt(1.0+m00-m11-m22)
		x = 0.25 * k
		y = (m01 + m10) / k
		z = (m02 + m20) / k
		s = (m21 - m12) / k
	} else if m11 > m22 {
		k := 2.0 * math.Sqrt(1.0+m11-m00-m22)
		x = (m01 + m10) / k
		y = 0.25 * k
		z = (m12 + m21) / k
		s = (m02 - m20) / k
	} else {
		k := 2.0 * math.Sqrt(1.0+m22-m00-m11)
		x = (m02 + m20) / k
		y = (m12 + m21) / k
		z = 0.25 * k
		s = (m10 - m01) / k
	}

	inv := 1.0 / math.Sqrt(x*x+y*y+z*z+s*s)
	dst.setDirect(x*inv, y*inv, z*inv, s*inv)
}

// RotationMatrixToRotationVector converts m into a rotation vector through
// the axis-angle extraction.
func RotationMatrixToRotationVector(m *RotationMatrix, dst *r3.Vector) {
	var aa AxisAngle
	RotationMatrixToAxisAngle(m, &aa)
	AxisAngleToRotationVector(&aa, dst)
}

// RotationMatrixToYawPitchRoll converts m into yaw-pitch-roll angles.
// At the gimbal singularity (|m20| = 1) roll is set to zero and yaw absorbs
// the remaining in-plane rotation.
func RotationMatrixToYawPitchRoll(m *RotationMatrix, dst *YawPitchRoll) {
	convertMatrixToYawPitchRollRaw(m.m00, m.m01, m.m02, m.m10, m.m11, m.m12, m.m20, m.m21, m.m22, dst)
}

func convertMatrixToYawPitchRollRaw(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64, dst *YawPitchRoll) {
	if containsNaN9(m00, m01, m02, m10, m11, m12, m20, m21, m22) {
		dst.SetToNaN()
		return
	}
	switch {
	case m20 <= -(1.0 - epsSingular):
		dst.Pitch = 0.5 * math.Pi
		dst.Roll = 0
		dst.Yaw = math.Atan2(-m01, m11)
	case m20 >= 1.0-epsSingular:
		dst.Pitch = -0.5 * math.Pi
		dst.Roll = 0
		dst.Yaw = math.Atan2(-m01, m11)
	default:
		dst.Pitch = math.Asin(-m20)
		dst.Yaw = math.Atan2(m10, m00)
		dst.Roll = math.Atan2(m21, m22)
	}
}

// RotationVectorToAxisAngle converts the rotation vector v into an axis-angle.
// The magnitude is checked against the singularity tolerance before any
// normalization so numerical noise near zero is not amplified.
func RotationVectorToAxisAngle(v r3.Vector, dst *AxisAngle) {
	if containsNaN3(v.X, v.Y, v.Z) {
		dst.SetToNaN()
		return
	}
	norm := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if norm > epsSingular {
		inv := 1.0 / norm
		dst.setDirect(v.X*inv, v.Y*inv, v.Z*inv, norm)
	} else {
		dst.SetToZero()
	}
}

// RotationVectorToQuaternion converts the rotation vector v into a unit
// quaternion.
func RotationVectorToQuaternion(v r3.Vector, dst *Quaternion) {
	if containsNaN3(v.X, v.Y, v.Z) {
		dst.SetToNaN()
		return
	}
	norm := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if norm > epsSingular {
		halfAngle := 0.5 * norm
		k := math.Sin(halfAngle) / norm
		dst.setDirect(v.X*k, v.Y*k, v.Z*k, math.Cos(halfAngle))
	} else {
		dst.SetToZero()
	}
}

// RotationVectorToRotationMatrix converts the rotation vector v into a
// rotation matrix.
func RotationVectorToRotationMatrix(v r3.Vector, dst *RotationMatrix) {
	convertAxisAngleToMatrixRaw(v.X, v.Y, v.Z, math.Sqrt(v.X*v.X+v.Y*v.Y+v.Z*v.Z), dst)
}

// RotationVectorToYawPitchRoll converts the rotation vector v into
// yaw-pitch-roll angles through the quaternion hub.
func RotationVectorToYawPitchRoll(v r3.Vector, dst *YawPitchRoll) {
	var q Quaternion
	RotationVectorToQuaternion(v, &q)
	QuaternionToYawPitchRoll(&q, dst)
}

// YawPitchRollToQuaternion converts the intrinsic Z(yaw), Y(pitch), X(roll)
// rotation into a unit quaternion via the closed-form half-angle products.
// The rotation order is load-bearing: swapping yaw and roll produces a
// different orientation that no norm check will catch.
func YawPitchRollToQuaternion(yaw, pitch, roll float64, dst *Quaternion) {
	if containsNaN3(yaw, pitch, roll) {
		dst.SetToNaN()
		return
	}
	sYaw, cYaw := math.Sincos(0.5 * yaw)
	sPitch, cPitch := math.Sincos(0.5 * pitch)
	sRoll, cRoll := math.Sincos(0.5 * roll)

	qs := cYaw*cPitch*cRoll + sYaw*sPitch*sRoll
	qx := cYaw*cPitch*sRoll - sYaw*sPitch*cRoll
	qy := sYaw*cPitch*sRoll + cYaw*sPitch*cRoll
	qz := sYaw*cPitch*cRoll - cYaw*sPitch*sRoll
	dst.setDirect(qx, qy, qz, qs)
}

// YawPitchRollToAxisAngle converts yaw-pitch-roll angles into an axis-angle
// through the quaternion hub.
func YawPitchRollToAxisAngle(yaw, pitch, roll float64, dst *AxisAngle) {
	var q Quaternion
	YawPitchRollToQuaternion(yaw, pitch, roll, &q)
	QuaternionToAxisAngle(&q, dst)
}

// YawPitchRollToRotationMatrix converts yaw-pitch-roll angles into the
// rotation matrix Rz(yaw)*Ry(pitch)*Rx(roll).
func YawPitchRollToRotationMatrix(yaw, pitch, roll float64, dst *RotationMatrix) {
	if containsNaN3(yaw, pitch, roll) {
		dst.SetToNaN()
		return
	}
	sYaw, cYaw := math.Sincos(yaw)
	sPitch, cPitch := math.Sincos(pitch)
	sRoll, cRoll := math.Sincos(roll)

	dst.setDirect(
		cYaw*cPitch, cYaw*sPitch*sRoll-sYaw*cRoll, cYaw*sPitch*cRoll+sYaw*sRoll,
		sYaw*cPitch, sYaw*sPitch*sRoll+cYaw*cRoll, sYaw*sPitch*cRoll-cYaw*sRoll,
		-sPitch, cPitch*sRoll, cPitch*cRoll)
}

// YawPitchRollToRotationVector converts yaw-pitch-roll angles into a rotation
// vector through the quaternion hub.
func YawPitchRollToRotationVector(yaw, pitch, roll float64, dst *r3.Vector) {
	var q Quaternion
	YawPitchRollToQuaternion(yaw, pitch, roll, &q)
	QuaternionToRotationVector(&q, dst)
}
