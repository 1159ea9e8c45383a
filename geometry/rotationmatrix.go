package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// RotationMatrix is a 3x3 orthonormal matrix with determinant +1, stored
// row-major. Validating setters reject improper input with
// ErrNotRotationMatrix and leave the matrix unchanged; SetUnsafe stores
// anything, and Normalize restores orthonormality after drift.
type RotationMatrix struct {
	m00, m01, m02 float64
	m10, m11, m12 float64
	m20, m21, m22 float64
}

// NewRotationMatrix returns a rotation matrix set to the identity.
func NewRotationMatrix() *RotationMatrix {
	m := new(RotationMatrix)
	m.SetIdentity()
	return m
}

// NewRotationMatrixValues returns a rotation matrix with the given row-major
// coefficients, or ErrNotRotationMatrix when they do not form a proper
// rotation.
func NewRotationMatrixValues(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) (*RotationMatrix, error) {
	m := new(RotationMatrix)
	if err := m.Set(m00, m01, m02, m10, m11, m12, m20, m21, m22); err != nil {
		return nil, err
	}
	return m, nil
}

// NewRotationMatrixFromQuaternion returns the rotation matrix equivalent to q.
func NewRotationMatrixFromQuaternion(q *Quaternion) *RotationMatrix {
	m := new(RotationMatrix)
	QuaternionToRotationMatrix(q, m)
	return m
}

// NewRotationMatrixFromAxisAngle returns the rotation matrix equivalent to aa.
func NewRotationMatrixFromAxisAngle(aa *AxisAngle) *RotationMatrix {
	m := new(RotationMatrix)
	AxisAngleToRotationMatrix(aa, m)
	return m
}

// NewRotationMatrixFromRotationVector returns the rotation matrix equivalent
// to the rotation vector v.
func NewRotationMatrixFromRotationVector(v r3.Vector) *RotationMatrix {
	m := new(RotationMatrix)
	RotationVectorToRotationMatrix(v, m)
	return m
}

// NewRotationMatrixFromYawPitchRoll returns Rz(yaw)*Ry(pitch)*Rx(roll).
func NewRotationMatrixFromYawPitchRoll(yaw, pitch, roll float64) *RotationMatrix {
	m := new(RotationMatrix)
	YawPitchRollToRotationMatrix(yaw, pitch, roll, m)
	return m
}

func (m *RotationMatrix) setDirect(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) {
	m.m00, m.m01, m.m02 = m00, m01, m02
	m.m10, m.m11, m.m12 = m10, m11, m12
	m.m20, m.m21, m.m22 = m20, m21, m22
}

// SetIdentity sets this matrix to the identity rotation.
func (m *RotationMatrix) SetIdentity() {
	m.setDirect(1, 0, 0, 0, 1, 0, 0, 0, 1)
}

// SetToNaN sets every coefficient to NaN.
func (m *RotationMatrix) SetToNaN() {
	m.setDirect(nan, nan, nan, nan, nan, nan, nan, nan, nan)
}

// ContainsNaN reports whether any coefficient is NaN.
func (m *RotationMatrix) ContainsNaN() bool {
	return containsNaN9(m.m00, m.m01, m.m02, m.m10, m.m11, m.m12, m.m20, m.m21, m.m22)
}

// IsIdentity reports whether this matrix is the identity within eps.
func (m *RotationMatrix) IsIdentity(eps float64) bool {
	return isZeroRotation(m.m00, m.m01, m.m02, m.m10, m.m11, m.m12, m.m20, m.m21, m.m22, eps)
}

// IsRotationMatrix reports whether the coefficients form a proper rotation
// within eps.
func (m *RotationMatrix) IsRotationMatrix(eps float64) bool {
	return isRotationProper(m.m00, m.m01, m.m02, m.m10, m.m11, m.m12, m.m20, m.m21, m.m22, eps)
}

// Set overwrites the coefficients after validating that they form a proper
// rotation. On error the matrix is unchanged.
func (m *RotationMatrix) Set(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) error {
	if !isRotationProper(m00, m01, m02, m10, m11, m12, m20, m21, m22, epsRotation) {
		return errNotRotation(m00, m01, m02, m10, m11, m12, m20, m21, m22)
	}
	m.setDirect(m00, m01, m02, m10, m11, m12, m20, m21, m22)
	return nil
}

// SetUnsafe overwrites the coefficients without validation. The caller is
// responsible for calling Normalize before relying on the rotation
// invariant.
func (m *RotationMatrix) SetUnsafe(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) {
	m.setDirect(m00, m01, m02, m10, m11, m12, m20, m21, m22)
}

// SetRotationMatrix copies other into this matrix.
func (m *RotationMatrix) SetRotationMatrix(other *RotationMatrix) {
	*m = *other
}

// SetQuaternion sets this matrix to the orientation of q.
func (m *RotationMatrix) SetQuaternion(q *Quaternion) {
	QuaternionToRotationMatrix(q, m)
}

// SetAxisAngle sets this matrix to the orientation of aa.
func (m *RotationMatrix) SetAxisAngle(aa *AxisAngle) {
	AxisAngleToRotationMatrix(aa, m)
}

// SetRotationVector sets this matrix to the orientation of the rotation
// vector v.
func (m *RotationMatrix) SetRotationVector(v r3.Vector) {
	RotationVectorToRotationMatrix(v, m)
}

// SetYawPitchRoll sets this matrix to Rz(yaw)*Ry(pitch)*Rx(roll).
func (m *RotationMatrix) SetYawPitchRoll(yaw, pitch, roll float64) {
	YawPitchRollToRotationMatrix(yaw, pitch, roll, m)
}

// SetToYawMatrix sets this matrix to a counter-clockwise rotation about Z.
func (m *RotationMatrix) SetToYawMatrix(yaw float64) {
	sin, cos := math.Sincos(yaw)
	m.setDirect(cos, -sin, 0, sin, cos, 0, 0, 0, 1)
}

// SetToPitchMatrix sets this matrix to a counter-clockwise rotation about Y.
func (m *RotationMatrix) SetToPitchMatrix(pitch float64) {
	sin, cos := math.Sincos(pitch)
	m.setDirect(cos, 0, sin, 0, 1, 0, -sin, 0, cos)
}

// SetToRollMatrix sets this matrix to a counter-clockwise rotation about X.
func (m *RotationMatrix) SetToRollMatrix(roll float64) {
	sin, cos := math.Sincos(roll)
	m.setDirect(1, 0, 0, 0, cos, -sin, 0, sin, cos)
}

// SetArray reads nine row-major coefficients from buf starting at startIndex
// and validates them. On error the matrix is unchanged.
func (m *RotationMatrix) SetArray(buf []float64, startIndex int) error {
	if len(buf) < startIndex+9 {
		return errBufferTooShort(startIndex+9, len(buf))
	}
	b := buf[startIndex:]
	return m.Set(b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7], b[8])
}

// SetDense reads the 3x3 block of src at (startRow, startCol) and validates
// it. On error the matrix is unchanged.
func (m *RotationMatrix) SetDense(src mat.Matrix, startRow, startCol int) error {
	return m.Set(
		src.At(startRow, startCol), src.At(startRow, startCol+1), src.At(startRow, startCol+2),
		src.At(startRow+1, startCol), src.At(startRow+1, startCol+1), src.At(startRow+1, startCol+2),
		src.At(startRow+2, startCol), src.At(startRow+2, startCol+1), src.At(startRow+2, startCol+2))
}

// Element returns the coefficient at (row, col). It panics when either index
// is outside [0, 2].
func (m *RotationMatrix) Element(row, col int) float64 {
	switch 3*row + col {
	case 0:
		return m.m00
	case 1:
		return m.m01
	case 2:
		return m.m02
	case 3:
		return m.m10
	case 4:
		return m.m11
	case 5:
		return m.m12
	case 6:
		return m.m20
	case 7:
		return m.m21
	case 8:
		return m.m22
	}
	panic(fmt.Sprintf("geometry: matrix index out of range [%d, %d]", row, col))
}

// Row returns row i as a vector. It panics when i is outside [0, 2].
func (m *RotationMatrix) Row(i int) r3.Vector {
	switch i {
	case 0:
		return r3.Vector{X: m.m00, Y: m.m01, Z: m.m02}
	case 1:
		return r3.Vector{X: m.m10, Y: m.m11, Z: m.m12}
	case 2:
		return r3.Vector{X: m.m20, Y: m.m21, Z: m.m22}
	}
	panic(fmt.Sprintf("geometry: matrix row index out of range [%d] with length 3", i))
}

// Column returns column i as a vector. It panics when i is outside [0, 2].
func (m *RotationMatrix) Column(i int) r3.Vector {
	switch i {
	case 0:
		return r3.Vector{X: m.m00, Y: m.m10, Z: m.m20}
	case 1:
		return r3.Vector{X: m.m01, Y: m.m11, Z: m.m21}
	case 2:
		return r3.Vector{X: m.m02, Y: m.m12, Z: m.m22}
	}
	panic(fmt.Sprintf("geometry: matrix column index out of range [%d] with length 3", i))
}

// Pack writes the nine coefficients row-major into buf starting at
// startIndex.
func (m *RotationMatrix) Pack(buf []float64, startIndex int) error {
	if len(buf) < startIndex+9 {
		return errBufferTooShort(startIndex+9, len(buf))
	}
	b := buf[startIndex:]
	b[0], b[1], b[2] = m.m00, m.m01, m.m02
	b[3], b[4], b[5] = m.m10, m.m11, m.m12
	b[6], b[7], b[8] = m.m20, m.m21, m.m22
	return nil
}

// PackDense writes the 3x3 block into dst at (startRow, startCol).
func (m *RotationMatrix) PackDense(dst mat.Mutable, startRow, startCol int) {
	dst.Set(startRow, startCol, m.m00)
	dst.Set(startRow, startCol+1, m.m01)
	dst.Set(startRow, startCol+2, m.m02)
	dst.Set(startRow+1, startCol, m.m10)
	dst.Set(startRow+1, startCol+1, m.m11)
	dst.Set(startRow+1, startCol+2, m.m12)
	dst.Set(startRow+2, startCol, m.m20)
	dst.Set(startRow+2, startCol+1, m.m21)
	dst.Set(startRow+2, startCol+2, m.m22)
}

// PackQuaternion converts this rotation into dst.
func (m *RotationMatrix) PackQuaternion(dst *Quaternion) {
	RotationMatrixToQuaternion(m, dst)
}

// PackAxisAngle converts this rotation into dst.
func (m *RotationMatrix) PackAxisAngle(dst *AxisAngle) {
	RotationMatrixToAxisAngle(m, dst)
}

// PackRotationVector converts this rotation into the rotation vector dst.
func (m *RotationMatrix) PackRotationVector(dst *r3.Vector) {
	RotationMatrixToRotationVector(m, dst)
}

// PackYawPitchRoll converts this rotation into dst.
func (m *RotationMatrix) PackYawPitchRoll(dst *YawPitchRoll) {
	RotationMatrixToYawPitchRoll(m, dst)
}

// Normalize restores orthonormality after drift; it is idempotent on an
// already-proper matrix.
func (m *RotationMatrix) Normalize() {
	NormalizeRotation(m)
}

// Transpose transposes this matrix in place.
func (m *RotationMatrix) Transpose() {
	m.m01, m.m10 = m.m10, m.m01
	m.m02, m.m20 = m.m20, m.m02
	m.m12, m.m21 = m.m21, m.m12
}

// Invert inverts this matrix in place. For a proper rotation the inverse is
// the transpose; the full 3x3 inversion is never needed.
func (m *RotationMatrix) Invert() {
	m.Transpose()
}

// Determinant returns the determinant.
func (m *RotationMatrix) Determinant() float64 {
	return determinant9(m.m00, m.m01, m.m02, m.m10, m.m11, m.m12, m.m20, m.m21, m.m22)
}

// Multiply sets this matrix to this*other.
func (m *RotationMatrix) Multiply(other *RotationMatrix) {
	MultiplyMatrices(m, other, m)
}

// PreMultiply sets this matrix to other*this.
func (m *RotationMatrix) PreMultiply(other *RotationMatrix) {
	MultiplyMatrices(other, m, m)
}

// MultiplyTransposeThis sets this matrix to transpose(this)*other.
func (m *RotationMatrix) MultiplyTransposeThis(other *RotationMatrix) {
	MultiplyTransposeLeft(m, other, m)
}

// MultiplyTransposeOther sets this matrix to this*transpose(other).
func (m *RotationMatrix) MultiplyTransposeOther(other *RotationMatrix) {
	MultiplyTransposeRight(m, other, m)
}

// TransformTuple returns this*t.
func (m *RotationMatrix) TransformTuple(t r3.Vector) r3.Vector {
	return TransformTupleByRotationMatrix(m, t)
}

// InverseTransformTuple returns transpose(this)*t.
func (m *RotationMatrix) InverseTransformTuple(t r3.Vector) r3.Vector {
	return InverseTransformTupleByRotationMatrix(m, t)
}

// TransformTuple2D rotates the 2D tuple t. With checkIfTransformInXYPlane
// set, ErrNotPlanarTransform is returned unless this rotation leaves the XY
// plane invariant.
func (m *RotationMatrix) TransformTuple2D(t r2.Point, checkIfTransformInXYPlane bool) (r2.Point, error) {
	return TransformTuple2DByRotationMatrix(m, t, checkIfTransformInXYPlane)
}

// InverseTransformTuple2D rotates the 2D tuple t by the inverse rotation,
// with the same optional XY-plane check.
func (m *RotationMatrix) InverseTransformTuple2D(t r2.Point, checkIfTransformInXYPlane bool) (r2.Point, error) {
	return InverseTransformTuple2DByRotationMatrix(m, t, checkIfTransformInXYPlane)
}

// TransformVector4D rotates the vector part of v and keeps its scalar part.
func (m *RotationMatrix) TransformVector4D(v Vector4D) Vector4D {
	return TransformVector4DByRotationMatrix(m, v)
}

// InverseTransformVector4D applies the inverse rotation to the vector part of
// v and keeps its scalar part.
func (m *RotationMatrix) InverseTransformVector4D(v Vector4D) Vector4D {
	return InverseTransformVector4DByRotationMatrix(m, v)
}

// TransformQuaternion prepends this rotation to src and stores it in dst;
// dst may be src.
func (m *RotationMatrix) TransformQuaternion(src, dst *Quaternion) {
	var q Quaternion
	RotationMatrixToQuaternion(m, &q)
	MultiplyQuaternions(&q, src, dst)
}

// InverseTransformQuaternion prepends the inverse of this rotation to src and
// stores it in dst; dst may be src.
func (m *RotationMatrix) InverseTransformQuaternion(src, dst *Quaternion) {
	var q Quaternion
	RotationMatrixToQuaternion(m, &q)
	MultiplyConjugateLeft(&q, src, dst)
}

// TransformRotationMatrix stores this*src in dst; dst may be src.
func (m *RotationMatrix) TransformRotationMatrix(src, dst *RotationMatrix) {
	MultiplyMatrices(m, src, dst)
}

// InverseTransformRotationMatrix stores transpose(this)*src in dst; dst may
// be src.
func (m *RotationMatrix) InverseTransformRotationMatrix(src, dst *RotationMatrix) {
	MultiplyTransposeLeft(m, src, dst)
}

// TransformDense stores the similarity transform this*src*transpose(this) of
// the 3x3 matrix src in dst; dst may be src.
func (m *RotationMatrix) TransformDense(src mat.Matrix, dst mat.Mutable) error {
	return TransformDenseByRotationMatrix(m, src, dst)
}

// InverseTransformDense stores transpose(this)*src*this in dst; dst may be
// src.
func (m *RotationMatrix) InverseTransformDense(src mat.Matrix, dst mat.Mutable) error {
	return InverseTransformDenseByRotationMatrix(m, src, dst)
}

// Equals reports exact coefficient equality.
func (m *RotationMatrix) Equals(other *RotationMatrix) bool {
	return *m == *other
}

// EpsilonEquals reports coefficient-wise equality within eps.
func (m *RotationMatrix) EpsilonEquals(other *RotationMatrix, eps float64) bool {
	return math.Abs(m.m00-other.m00) <= eps && math.Abs(m.m01-other.m01) <= eps && math.Abs(m.m02-other.m02) <= eps &&
		math.Abs(m.m10-other.m10) <= eps && math.Abs(m.m11-other.m11) <= eps && math.Abs(m.m12-other.m12) <= eps &&
		math.Abs(m.m20-other.m20) <= eps && math.Abs(m.m21-other.m21) <= eps && math.Abs(m.m22-other.m22) <= eps
}

// GeometricallyEquals reports whether both matrices represent the same
// orientation within the angular tolerance eps.
func (m *RotationMatrix) GeometricallyEquals(other *RotationMatrix, eps float64) bool {
	if m.ContainsNaN() || other.ContainsNaN() {
		return false
	}
	var diff RotationMatrix
	MultiplyTransposeLeft(m, other, &diff)
	// atan2 of the off-diagonal sine and the trace cosine resolves angles
	// far below the ~1e-8 floor of acos on the trace alone.
	sx := diff.m21 - diff.m12
	sy := diff.m02 - diff.m20
	sz := diff.m10 - diff.m01
	sin := 0.5 * math.Sqrt(sx*sx+sy*sy+sz*sz)
	cos := 0.5 * (diff.m00 + diff.m11 + diff.m22 - 1)
	return math.Atan2(sin, cos) <= eps
}

// String formats the matrix row by row.
func (m *RotationMatrix) String() string {
	return fmt.Sprintf("[%.6f, %.6f, %.6f; %.6f, %.6f, %.6f; %.6f, %.6f, %.6f]",
		m.m00, m.m01, m.m02, m.m10, m.m11, m.m12, m.m20, m.m21, m.m22)
}
