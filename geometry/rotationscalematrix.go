package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// RotationScaleMatrix is a 3x3 matrix factored as M = R*S with R a proper
// rotation and S = diag(sx, sy, sz). It exclusively owns its rotation part
// and its scale tuple: callers only ever receive copies, and every write path
// validates before storing. Scale components may be negative, flipping
// handedness along an axis, but never zero.
type RotationScaleMatrix struct {
	rotation RotationMatrix
	scale    r3.Vector
}

// NewRotationScaleMatrix returns an identity rotation with unit scale.
func NewRotationScaleMatrix() *RotationScaleMatrix {
	m := new(RotationScaleMatrix)
	m.SetIdentity()
	return m
}

// NewRotationScaleMatrixFrom returns rotation*diag(sx, sy, sz), or
// ErrNotRotationScaleMatrix when rotation is improper or a scale component is
// zero.
func NewRotationScaleMatrixFrom(rotation *RotationMatrix, sx, sy, sz float64) (*RotationScaleMatrix, error) {
	m := NewRotationScaleMatrix()
	if err := m.Set(rotation, sx, sy, sz); err != nil {
		return nil, err
	}
	return m, nil
}

// SetIdentity resets to the identity rotation with unit scale.
func (m *RotationScaleMatrix) SetIdentity() {
	m.rotation.SetIdentity()
	m.scale = r3.Vector{X: 1, Y: 1, Z: 1}
}

// SetToNaN sets the rotation part and the scale to NaN.
func (m *RotationScaleMatrix) SetToNaN() {
	m.rotation.SetToNaN()
	m.scale = r3.Vector{X: nan, Y: nan, Z: nan}
}

// ContainsNaN reports whether the rotation part or the scale holds a NaN.
func (m *RotationScaleMatrix) ContainsNaN() bool {
	return m.rotation.ContainsNaN() || containsNaN3(m.scale.X, m.scale.Y, m.scale.Z)
}

func validScales(sx, sy, sz float64) bool {
	return math.Abs(sx) > epsZeroScale && math.Abs(sy) > epsZeroScale && math.Abs(sz) > epsZeroScale
}

// Set overwrites this matrix with rotation*diag(sx, sy, sz). The write is
// transactional: on error nothing changes.
func (m *RotationScaleMatrix) Set(rotation *RotationMatrix, sx, sy, sz float64) error {
	if !rotation.IsRotationMatrix(epsRotation) {
		return errNotRotationScale("rotation part is not a proper rotation")
	}
	if !validScales(sx, sy, sz) {
		return errNotRotationScale(fmt.Sprintf("degenerate scale (%g, %g, %g)", sx, sy, sz))
	}
	m.rotation = *rotation
	m.scale = r3.Vector{X: sx, Y: sy, Z: sz}
	return nil
}

// SetRotationScaleMatrix copies other into this matrix.
func (m *RotationScaleMatrix) SetRotationScaleMatrix(other *RotationScaleMatrix) {
	*m = *other
}

// SetDenseWithScales factors the 3x3 matrix src as R*diag(sx, sy, sz) by
// dividing each column by its scale, then validates that the remainder is a
// proper rotation. A negated determinant or a near-zero scale is rejected
// with the matrix unchanged.
func (m *RotationScaleMatrix) SetDenseWithScales(src mat.Matrix, sx, sy, sz float64) error {
	if err := denseDims3x3(src); err != nil {
		return err
	}
	if !validScales(sx, sy, sz) {
		return errNotRotationScale(fmt.Sprintf("degenerate scale (%g, %g, %g)", sx, sy, sz))
	}
	ix, iy, iz := 1.0/sx, 1.0/sy, 1.0/sz
	m00, m01, m02 := src.At(0, 0)*ix, src.At(0, 1)*iy, src.At(0, 2)*iz
	m10, m11, m12 := src.At(1, 0)*ix, src.At(1, 1)*iy, src.At(1, 2)*iz
	m20, m21, m22 := src.At(2, 0)*ix, src.At(2, 1)*iy, src.At(2, 2)*iz
	if !isRotationProper(m00, m01, m02, m10, m11, m12, m20, m21, m22, epsRotation) {
		return errNotRotationScale("matrix does not factor into rotation and scale")
	}
	m.rotation.setDirect(m00, m01, m02, m10, m11, m12, m20, m21, m22)
	m.scale = r3.Vector{X: sx, Y: sy, Z: sz}
	return nil
}

// SetScale overwrites the diagonal scale. Any zero component is rejected as
// non-invertible and leaves the prior scale unchanged; negative components
// are accepted and flip handedness along their axis.
func (m *RotationScaleMatrix) SetScale(sx, sy, sz float64) error {
	if !validScales(sx, sy, sz) {
		return errNotRotationScale(fmt.Sprintf("zero scale component in (%g, %g, %g)", sx, sy, sz))
	}
	m.scale = r3.Vector{X: sx, Y: sy, Z: sz}
	return nil
}

// SetRotation overwrites the rotation part after validating it; the scale is
// unchanged. On error nothing changes.
func (m *RotationScaleMatrix) SetRotation(rotation *RotationMatrix) error {
	if !rotation.IsRotationMatrix(epsRotation) {
		return errNotRotationScale("rotation part is not a proper rotation")
	}
	m.rotation = *rotation
	return nil
}

// SetRotationQuaternion overwrites the rotation part with the orientation of
// q; the scale is unchanged.
func (m *RotationScaleMatrix) SetRotationQuaternion(q *Quaternion) {
	QuaternionToRotationMatrix(q, &m.rotation)
}

// SetRotationAxisAngle overwrites the rotation part with the orientation of
// aa; the scale is unchanged.
func (m *RotationScaleMatrix) SetRotationAxisAngle(aa *AxisAngle) {
	AxisAngleToRotationMatrix(aa, &m.rotation)
}

// SetRotationYawPitchRoll overwrites the rotation part with
// Rz(yaw)*Ry(pitch)*Rx(roll); the scale is unchanged.
func (m *RotationScaleMatrix) SetRotationYawPitchRoll(yaw, pitch, roll float64) {
	YawPitchRollToRotationMatrix(yaw, pitch, roll, &m.rotation)
}

// Rotation returns a copy of the rotation part.
func (m *RotationScaleMatrix) Rotation() RotationMatrix {
	return m.rotation
}

// PackRotation copies the rotation part into dst.
func (m *RotationScaleMatrix) PackRotation(dst *RotationMatrix) {
	*dst = m.rotation
}

// Scale returns the diagonal scale.
func (m *RotationScaleMatrix) Scale() r3.Vector {
	return m.scale
}

// ScaleX returns the x scale component.
func (m *RotationScaleMatrix) ScaleX() float64 { return m.scale.X }

// ScaleY returns the y scale component.
func (m *RotationScaleMatrix) ScaleY() float64 { return m.scale.Y }

// ScaleZ returns the z scale component.
func (m *RotationScaleMatrix) ScaleZ() float64 { return m.scale.Z }

// Element returns the (row, col) coefficient of the composed matrix R*S.
// It panics when either index is outside [0, 2].
func (m *RotationScaleMatrix) Element(row, col int) float64 {
	e := m.rotation.Element(row, col)
	switch col {
	case 0:
		return e * m.scale.X
	case 1:
		return e * m.scale.Y
	default:
		return e * m.scale.Z
	}
}

// Pack writes the composed matrix R*S row-major into buf starting at
// startIndex.
func (m *RotationScaleMatrix) Pack(buf []float64, startIndex int) error {
	if len(buf) < startIndex+9 {
		return errBufferTooShort(startIndex+9, len(buf))
	}
	r, s := &m.rotation, m.scale
	b := buf[startIndex:]
	b[0], b[1], b[2] = r.m00*s.X, r.m01*s.Y, r.m02*s.Z
	b[3], b[4], b[5] = r.m10*s.X, r.m11*s.Y, r.m12*s.Z
	b[6], b[7], b[8] = r.m20*s.X, r.m21*s.Y, r.m22*s.Z
	return nil
}

// PackDense writes the composed matrix R*S into the 3x3 block of dst at
// (startRow, startCol).
func (m *RotationScaleMatrix) PackDense(dst mat.Mutable, startRow, startCol int) {
	r, s := &m.rotation, m.scale
	dst.Set(startRow, startCol, r.m00*s.X)
	dst.Set(startRow, startCol+1, r.m01*s.Y)
	dst.Set(startRow, startCol+2, r.m02*s.Z)
	dst.Set(startRow+1, startCol, r.m10*s.X)
	dst.Set(startRow+1, startCol+1, r.m11*s.Y)
	dst.Set(startRow+1, startCol+2, r.m12*s.Z)
	dst.Set(startRow+2, startCol, r.m20*s.X)
	dst.Set(startRow+2, startCol+1, r.m21*s.Y)
	dst.Set(startRow+2, startCol+2, r.m22*s.Z)
}

// PackQuaternion converts the rotation part into dst.
func (m *RotationScaleMatrix) PackQuaternion(dst *Quaternion) {
	RotationMatrixToQuaternion(&m.rotation, dst)
}

// PackAxisAngle converts the rotation part into dst.
func (m *RotationScaleMatrix) PackAxisAngle(dst *AxisAngle) {
	RotationMatrixToAxisAngle(&m.rotation, dst)
}

// NormalizeRotationMatrix re-orthonormalizes the rotation part after drift.
func (m *RotationScaleMatrix) NormalizeRotationMatrix() {
	NormalizeRotation(&m.rotation)
}

// Multiply composes the rotation part on the right: R = R*rotation. The
// scale is unchanged.
func (m *RotationScaleMatrix) Multiply(rotation *RotationMatrix) {
	MultiplyMatrices(&m.rotation, rotation, &m.rotation)
}

// PreMultiply composes the rotation part on the left: R = rotation*R. The
// scale is unchanged.
func (m *RotationScaleMatrix) PreMultiply(rotation *RotationMatrix) {
	MultiplyMatrices(rotation, &m.rotation, &m.rotation)
}

// TransformTuple returns R*S*t.
func (m *RotationScaleMatrix) TransformTuple(t r3.Vector) r3.Vector {
	scaled := r3.Vector{X: t.X * m.scale.X, Y: t.Y * m.scale.Y, Z: t.Z * m.scale.Z}
	return TransformTupleByRotationMatrix(&m.rotation, scaled)
}

// InverseTransformTuple returns (R*S)^-1 * t, applying the transposed
// rotation first and then dividing out the scale. The full 3x3 inverse is
// never formed.
func (m *RotationScaleMatrix) InverseTransformTuple(t r3.Vector) r3.Vector {
	rotated := InverseTransformTupleByRotationMatrix(&m.rotation, t)
	return r3.Vector{X: rotated.X / m.scale.X, Y: rotated.Y / m.scale.Y, Z: rotated.Z / m.scale.Z}
}

// TransformTuple2D scales and rotates the 2D tuple t. With
// checkIfTransformInXYPlane set, ErrNotPlanarTransform is returned unless the
// rotation part leaves the XY plane invariant.
func (m *RotationScaleMatrix) TransformTuple2D(t r2.Point, checkIfTransformInXYPlane bool) (r2.Point, error) {
	scaled := r2.Point{X: t.X * m.scale.X, Y: t.Y * m.scale.Y}
	return TransformTuple2DByRotationMatrix(&m.rotation, scaled, checkIfTransformInXYPlane)
}

// InverseTransformTuple2D applies the inverse of the in-plane transform,
// with the same optional XY-plane check.
func (m *RotationScaleMatrix) InverseTransformTuple2D(t r2.Point, checkIfTransformInXYPlane bool) (r2.Point, error) {
	rotated, err := InverseTransformTuple2DByRotationMatrix(&m.rotation, t, checkIfTransformInXYPlane)
	if err != nil {
		return t, err
	}
	return r2.Point{X: rotated.X / m.scale.X, Y: rotated.Y / m.scale.Y}, nil
}

// TransformVector4D applies R*S to the vector part of v and keeps its scalar
// part.
func (m *RotationScaleMatrix) TransformVector4D(v Vector4D) Vector4D {
	t := m.TransformTuple(r3.Vector{X: v.X, Y: v.Y, Z: v.Z})
	return Vector4D{X: t.X, Y: t.Y, Z: t.Z, S: v.S}
}

// InverseTransformVector4D applies (R*S)^-1 to the vector part of v and keeps
// its scalar part.
func (m *RotationScaleMatrix) InverseTransformVector4D(v Vector4D) Vector4D {
	t := m.InverseTransformTuple(r3.Vector{X: v.X, Y: v.Y, Z: v.Z})
	return Vector4D{X: t.X, Y: t.Y, Z: t.Z, S: v.S}
}

// TransformQuaternion prepends the rotation part to src and stores it in
// dst; the scale does not affect orientations. dst may be src.
func (m *RotationScaleMatrix) TransformQuaternion(src, dst *Quaternion) {
	m.rotation.TransformQuaternion(src, dst)
}

// InverseTransformQuaternion prepends the inverse of the rotation part to src
// and stores it in dst; dst may be src.
func (m *RotationScaleMatrix) InverseTransformQuaternion(src, dst *Quaternion) {
	m.rotation.InverseTransformQuaternion(src, dst)
}

// Equals reports exact equality of the rotation part and the scale.
func (m *RotationScaleMatrix) Equals(other *RotationScaleMatrix) bool {
	return m.rotation.Equals(&other.rotation) && m.scale == other.scale
}

// EpsilonEquals reports coefficient-wise equality of the rotation parts and
// the scales within eps.
func (m *RotationScaleMatrix) EpsilonEquals(other *RotationScaleMatrix, eps float64) bool {
	return m.rotation.EpsilonEquals(&other.rotation, eps) &&
		math.Abs(m.scale.X-other.scale.X) <= eps &&
		math.Abs(m.scale.Y-other.scale.Y) <= eps &&
		math.Abs(m.scale.Z-other.scale.Z) <= eps
}

// String formats the composed matrix row by row.
func (m *RotationScaleMatrix) String() string {
	return fmt.Sprintf("[%.6f, %.6f, %.6f; %.6f, %.6f, %.6f; %.6f, %.6f, %.6f]",
		m.Element(0, 0), m.Element(0, 1), m.Element(0, 2),
		m.Element(1, 0), m.Element(1, 1), m.Element(1, 2),
		m.Element(2, 0), m.Element(2, 1), m.Element(2, 2))
}
