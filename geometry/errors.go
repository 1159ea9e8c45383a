package geometry

import (
	"errors"
	"fmt"
)

// Sentinel errors for invariant violations. Wrapped errors carry the
// offending values; match with errors.Is.
var (
	// ErrNotRotationMatrix reports an attempt to store a 3x3 matrix that is
	// not orthonormal with determinant +1.
	ErrNotRotationMatrix = errors.New("geometry: not a rotation matrix")

	// ErrNotRotationScaleMatrix reports an attempt to store a matrix whose
	// rotation part is improper or whose scale part is degenerate.
	ErrNotRotationScaleMatrix = errors.New("geometry: not a rotation-scale matrix")

	// ErrNotPlanarTransform reports an opted-in 2D transform against a
	// rotation that is not confined to the XY plane.
	ErrNotPlanarTransform = errors.New("geometry: rotation is not a transformation in the XY plane")

	// ErrBufferTooShort reports a flat-buffer read or write that does not
	// fit the representation's component count.
	ErrBufferTooShort = errors.New("geometry: buffer too short")

	// ErrNotMatrix3D reports a dense-matrix operand whose dimensions are
	// not 3x3.
	ErrNotMatrix3D = errors.New("geometry: matrix is not 3x3")
)

func errMatrixSize(rows, cols int) error {
	return fmt.Errorf("%w: got %dx%d", ErrNotMatrix3D, rows, cols)
}

func errNotRotation(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) error {
	return fmt.Errorf("%w: [%g %g %g; %g %g %g; %g %g %g]",
		ErrNotRotationMatrix, m00, m01, m02, m10, m11, m12, m20, m21, m22)
}

func errNotRotationScale(context string) error {
	return fmt.Errorf("%w: %s", ErrNotRotationScaleMatrix, context)
}

func errBufferTooShort(need, have int) error {
	return fmt.Errorf("%w: need %d components, have %d", ErrBufferTooShort, need, have)
}
