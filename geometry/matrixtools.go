package geometry

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// 3x3 matrix compute shared by RotationMatrix and RotationScaleMatrix. All
// multiply and transform variants buffer the full product before writing so
// the destination may alias any operand.

func multiplyMatricesRaw(a, b *RotationMatrix, transposeA, transposeB bool, dst *RotationMatrix) {
	a00, a01, a02 := a.m00, a.m01, a.m02
	a10, a11, a12 := a.m10, a.m11, a.m12
	a20, a21, a22 := a.m20, a.m21, a.m22
	if transposeA {
		a01, a10 = a10, a01
		a02, a20 = a20, a02
		a12, a21 = a21, a12
	}
	b00, b01, b02 := b.m00, b.m01, b.m02
	b10, b11, b12 := b.m10, b.m11, b.m12
	b20, b21, b22 := b.m20, b.m21, b.m22
	if transposeB {
		b01, b10 = b10, b01
		b02, b20 = b20, b02
		b12, b21 = b21, b12
	}
	dst.setDirect(
		a00*b00+a01*b10+a02*b20, a00*b01+a01*b11+a02*b21, a00*b02+a01*b12+a02*b22,
		a10*b00+a11*b10+a12*b20, a10*b01+a11*b11+a12*b21, a10*b02+a11*b12+a12*b22,
		a20*b00+a21*b10+a22*b20, a20*b01+a21*b11+a22*b21, a20*b02+a21*b12+a22*b22)
}

// MultiplyMatrices stores a*b in dst; dst may be a or b.
func MultiplyMatrices(a, b, dst *RotationMatrix) {
	multiplyMatricesRaw(a, b, false, false, dst)
}

// MultiplyTransposeLeft stores transpose(a)*b in dst; dst may be a or b.
func MultiplyTransposeLeft(a, b, dst *RotationMatrix) {
	multiplyMatricesRaw(a, b, true, false, dst)
}

// MultiplyTransposeRight stores a*transpose(b) in dst; dst may be a or b.
func MultiplyTransposeRight(a, b, dst *RotationMatrix) {
	multiplyMatricesRaw(a, b, false, true, dst)
}

func transformTupleByMatrixRaw(m *RotationMatrix, t r3.Vector, transpose bool) r3.Vector {
	if transpose {
		return r3.Vector{
			X: m.m00*t.X + m.m10*t.Y + m.m20*t.Z,
			Y: m.m01*t.X + m.m11*t.Y + m.m21*t.Z,
			Z: m.m02*t.X + m.m12*t.Y + m.m22*t.Z,
		}
	}
	return r3.Vector{
		X: m.m00*t.X + m.m01*t.Y + m.m02*t.Z,
		Y: m.m10*t.X + m.m11*t.Y + m.m12*t.Z,
		Z: m.m20*t.X + m.m21*t.Y + m.m22*t.Z,
	}
}

// TransformTupleByRotationMatrix returns m*t.
func TransformTupleByRotationMatrix(m *RotationMatrix, t r3.Vector) r3.Vector {
	return transformTupleByMatrixRaw(m, t, false)
}

// InverseTransformTupleByRotationMatrix returns transpose(m)*t, the inverse
// rotation of t for a proper rotation matrix.
func InverseTransformTupleByRotationMatrix(m *RotationMatrix, t r3.Vector) r3.Vector {
	return transformTupleByMatrixRaw(m, t, true)
}

// TransformTuple2DByRotationMatrix rotates the 2D tuple t by m. When
// checkIfTransformInXYPlane is set and m does not leave the XY plane
// invariant, ErrNotPlanarTransform is returned and t comes back unchanged.
func TransformTuple2DByRotationMatrix(m *RotationMatrix, t r2.Point, checkIfTransformInXYPlane bool) (r2.Point, error) {
	if checkIfTransformInXYPlane && !isMatrix2D(m.m02, m.m12, m.m20, m.m21, m.m22, epsPlane) {
		return t, ErrNotPlanarTransform
	}
	return r2.Point{X: m.m00*t.X + m.m01*t.Y, Y: m.m10*t.X + m.m11*t.Y}, nil
}

// InverseTransformTuple2DByRotationMatrix rotates the 2D tuple t by the
// inverse of m, with the same optional XY-plane check.
func InverseTransformTuple2DByRotationMatrix(m *RotationMatrix, t r2.Point, checkIfTransformInXYPlane bool) (r2.Point, error) {
	if checkIfTransformInXYPlane && !isMatrix2D(m.m02, m.m12, m.m20, m.m21, m.m22, epsPlane) {
		return t, ErrNotPlanarTransform
	}
	return r2.Point{X: m.m00*t.X + m.m10*t.Y, Y: m.m01*t.X + m.m11*t.Y}, nil
}

// TransformVector4DByRotationMatrix rotates the (x, y, z) part of v by m and
// carries the scalar part through unchanged.
func TransformVector4DByRotationMatrix(m *RotationMatrix, v Vector4D) Vector4D {
	t := transformTupleByMatrixRaw(m, r3.Vector{X: v.X, Y: v.Y, Z: v.Z}, false)
	return Vector4D{X: t.X, Y: t.Y, Z: t.Z, S: v.S}
}

// InverseTransformVector4DByRotationMatrix rotates the (x, y, z) part of v by
// the inverse of m and carries the scalar part through unchanged.
func InverseTransformVector4DByRotationMatrix(m *RotationMatrix, v Vector4D) Vector4D {
	t := transformTupleByMatrixRaw(m, r3.Vector{X: v.X, Y: v.Y, Z: v.Z}, true)
	return Vector4D{X: t.X, Y: t.Y, Z: t.Z, S: v.S}
}

func denseDims3x3(m mat.Matrix) error {
	if r, c := m.Dims(); r != 3 || c != 3 {
		return errMatrixSize(r, c)
	}
	return nil
}

func transformDenseRaw(r *RotationMatrix, src mat.Matrix, dst mat.Mutable, inverse bool) error {
	if err := denseDims3x3(src); err != nil {
		return err
	}
	if err := denseDims3x3(dst); err != nil {
		return err
	}
	var m, tmp RotationMatrix
	m.setDirect(
		src.At(0, 0), src.At(0, 1), src.At(0, 2),
		src.At(1, 0), src.At(1, 1), src.At(1, 2),
		src.At(2, 0), src.At(2, 1), src.At(2, 2))
	if inverse {
		// transpose(R) * M * R
		multiplyMatricesRaw(r, &m, true, false, &tmp)
		multiplyMatricesRaw(&tmp, r, false, false, &tmp)
	} else {
		// R * M * transpose(R)
		multiplyMatricesRaw(r, &m, false, false, &tmp)
		multiplyMatricesRaw(&tmp, r, false, true, &tmp)
	}
	dst.Set(0, 0, tmp.m00)
	dst.Set(0, 1, tmp.m01)
	dst.Set(0, 2, tmp.m02)
	dst.Set(1, 0, tmp.m10)
	dst.Set(1, 1, tmp.m11)
	dst.Set(1, 2, tmp.m12)
	dst.Set(2, 0, tmp.m20)
	dst.Set(2, 1, tmp.m21)
	dst.Set(2, 2, tmp.m22)
	return nil
}

// TransformDenseByRotationMatrix stores the similarity transform
// R*src*transpose(R) in dst. Both matrices must be 3x3; dst may be src.
func TransformDenseByRotationMatrix(r *RotationMatrix, src mat.Matrix, dst mat.Mutable) error {
	return transformDenseRaw(r, src, dst, false)
}

// InverseTransformDenseByRotationMatrix stores transpose(R)*src*R in dst.
// Both matrices must be 3x3; dst may be src.
func InverseTransformDenseByRotationMatrix(r *RotationMatrix, src mat.Matrix, dst mat.Mutable) error {
	return transformDenseRaw(r, src, dst, true)
}

// TransformDenseByQuaternion stores the similarity transform of the 3x3
// matrix src by the rotation q in dst; dst may be src.
func TransformDenseByQuaternion(q *Quaternion, src mat.Matrix, dst mat.Mutable) error {
	var r RotationMatrix
	QuaternionToRotationMatrix(q, &r)
	return transformDenseRaw(&r, src, dst, false)
}

// InverseTransformDenseByQuaternion stores the similarity transform of the
// 3x3 matrix src by the inverse of q in dst; dst may be src.
func InverseTransformDenseByQuaternion(q *Quaternion, src mat.Matrix, dst mat.Mutable) error {
	var r RotationMatrix
	QuaternionToRotationMatrix(q, &r)
	return transformDenseRaw(&r, src, dst, true)
}

// NormalizeRotation restores orthonormality on a drifted matrix by
// renormalizing the first row, rebuilding the third from the cross product of
// the first two, and closing the frame with a final cross product. The
// operation is idempotent on an already-proper matrix and propagates NaN.
func NormalizeRotation(m *RotationMatrix) {
	if m.ContainsNaN() {
		m.SetToNaN()
		return
	}

	// Row 0 normalized.
	inv := 1.0 / math.Sqrt(m.m00*m.m00+m.m01*m.m01+m.m02*m.m02)
	r0x, r0y, r0z := m.m00*inv, m.m01*inv, m.m02*inv

	// Row 2 from row0 x row1, normalized.
	r2x := r0y*m.m12 - r0z*m.m11
	r2y := r0z*m.m10 - r0x*m.m12
	r2z := r0x*m.m11 - r0y*m.m10
	inv = 1.0 / math.Sqrt(r2x*r2x+r2y*r2y+r2z*r2z)
	r2x, r2y, r2z = r2x*inv, r2y*inv, r2z*inv

	// Row 1 closes the right-handed frame.
	r1x := r2y*r0z - r2z*r0y
	r1y := r2z*r0x - r2x*r0z
	r1z := r2x*r0y - r2y*r0x

	m.setDirect(r0x, r0y, r0z, r1x, r1y, r1z, r2x, r2y, r2z)
}
