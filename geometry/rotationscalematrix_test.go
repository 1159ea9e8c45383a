package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

func TestRotationScaleMatrixIdentity(t *testing.T) {
	m := NewRotationScaleMatrix()
	if m.ScaleX() != 1 || m.ScaleY() != 1 || m.ScaleZ() != 1 {
		t.Errorf("default scale = %v, want (1, 1, 1)", m.Scale())
	}
	rot := m.Rotation()
	if !rot.IsIdentity(0) {
		t.Error("default rotation part is not identity")
	}

	v := r3.Vector{X: 1, Y: 2, Z: 3}
	if got := m.TransformTuple(v); !tupleNear(got, v, 0) {
		t.Errorf("identity transform moved the tuple: %v", got)
	}
}

func TestRotationScaleMatrixSetRejectsZeroScale(t *testing.T) {
	rot := NewRotationMatrixFromYawPitchRoll(0.3, 0.2, 0.1)
	m, err := NewRotationScaleMatrixFrom(rot, 2, 3, 4)
	if err != nil {
		t.Fatalf("valid scales rejected: %v", err)
	}
	prior := *m

	for _, s := range [][3]float64{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1.0e-15}} {
		if err := m.SetScale(s[0], s[1], s[2]); !errors.Is(err, ErrNotRotationScaleMatrix) {
			t.Errorf("SetScale(%v) returned %v, want ErrNotRotationScaleMatrix", s, err)
		}
		if *m != prior {
			t.Fatalf("failed SetScale(%v) modified the matrix", s)
		}
	}

	// Negative scales are legal.
	if err := m.SetScale(-2, 3, 4); err != nil {
		t.Errorf("negative scale rejected: %v", err)
	}
}

func TestRotationScaleMatrixSetRejectsImproperRotation(t *testing.T) {
	m := NewRotationScaleMatrix()
	bad := NewRotationMatrix()
	bad.SetUnsafe(1, 0, 0, 0, 2, 0, 0, 0, 1)

	prior := *m
	if err := m.Set(bad, 2, 2, 2); !errors.Is(err, ErrNotRotationScaleMatrix) {
		t.Errorf("improper rotation accepted, err = %v", err)
	}
	if err := m.SetRotation(bad); !errors.Is(err, ErrNotRotationScaleMatrix) {
		t.Errorf("SetRotation accepted an improper rotation, err = %v", err)
	}
	if *m != prior {
		t.Error("failed Set modified the matrix")
	}
}

func TestRotationScaleMatrixElementIsProduct(t *testing.T) {
	rot := NewRotationMatrixFromYawPitchRoll(0.5, -0.3, 0.2)
	m, err := NewRotationScaleMatrixFrom(rot, 2, 3, 4)
	if err != nil {
		t.Fatal(err)
	}

	scales := []float64{2, 3, 4}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			want := rot.Element(row, col) * scales[col]
			if got := m.Element(row, col); math.Abs(got-want) > 1.0e-15 {
				t.Errorf("Element(%d, %d) = %v, want %v", row, col, got, want)
			}
		}
	}
}

func TestRotationScaleMatrixDenseRoundTrip(t *testing.T) {
	rot := NewRotationMatrixFromYawPitchRoll(0.5, -0.3, 0.2)
	m, err := NewRotationScaleMatrixFrom(rot, 2, 3, 4)
	if err != nil {
		t.Fatal(err)
	}

	dense := mat.NewDense(3, 3, nil)
	m.PackDense(dense, 0, 0)

	// R * diag(2, 3, 4) through gonum.
	var rd mat.Dense
	rd.ReuseAs(3, 3)
	rot.PackDense(&rd, 0, 0)
	var want mat.Dense
	want.Mul(&rd, mat.NewDiagDense(3, []float64{2, 3, 4}))
	if !mat.EqualApprox(dense, &want, 1.0e-10) {
		t.Errorf("packed matrix disagrees with R*S:\n%v\n%v", mat.Formatted(dense), mat.Formatted(&want))
	}

	got := NewRotationScaleMatrix()
	if err := got.SetDenseWithScales(dense, 2, 3, 4); err != nil {
		t.Fatalf("SetDenseWithScales: %v", err)
	}
	if !got.EpsilonEquals(m, 1.0e-12) {
		t.Error("dense round trip drifted")
	}
}

func TestRotationScaleMatrixSetDenseRejections(t *testing.T) {
	rot := NewRotationMatrixFromYawPitchRoll(0.5, -0.3, 0.2)
	m, _ := NewRotationScaleMatrixFrom(rot, 2, 3, 4)

	dense := mat.NewDense(3, 3, nil)
	m.PackDense(dense, 0, 0)

	got := NewRotationScaleMatrix()

	// Zero scale never divides.
	if err := got.SetDenseWithScales(dense, 0, 3, 4); !errors.Is(err, ErrNotRotationScaleMatrix) {
		t.Errorf("zero scale returned %v", err)
	}

	// Mismatched scales leave a non-rotation after the division.
	if err := got.SetDenseWithScales(dense, 5, 5, 5); !errors.Is(err, ErrNotRotationScaleMatrix) {
		t.Errorf("wrong scales returned %v", err)
	}

	// Reflection in the matrix part.
	var refl mat.Dense
	refl.ReuseAs(3, 3)
	refl.Set(0, 0, 2)
	refl.Set(1, 1, 3)
	refl.Set(2, 2, -4)
	if err := got.SetDenseWithScales(&refl, 2, 3, 4); !errors.Is(err, ErrNotRotationScaleMatrix) {
		t.Errorf("reflection returned %v", err)
	}
}

func TestRotationScaleMatrixTransformRoundTrip(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 100; i++ {
		rot := randomRotationMatrix(rng)
		m, err := NewRotationScaleMatrixFrom(rot, 0.5, 2, 3)
		if err != nil {
			t.Fatal(err)
		}

		v := r3.Vector{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}
		out := m.TransformTuple(v)

		// Against the explicit R*(S*v) product.
		scaled := r3.Vector{X: 0.5 * v.X, Y: 2 * v.Y, Z: 3 * v.Z}
		want := rot.TransformTuple(scaled)
		if !tupleNear(out, want, 1.0e-12) {
			t.Fatalf("TransformTuple = %v, want %v", out, want)
		}

		back := m.InverseTransformTuple(out)
		if !tupleNear(back, v, 1.0e-12) {
			t.Fatalf("inverse transform did not undo transform: %v != %v", back, v)
		}
	}
}

func TestRotationScaleMatrixTransformQuaternionIgnoresScale(t *testing.T) {
	rng := newTestRand()
	rot := randomRotationMatrix(rng)
	m, _ := NewRotationScaleMatrixFrom(rot, 2, 3, 4)
	src := randomQuaternion(rng)

	var got, want Quaternion
	m.TransformQuaternion(src, &got)
	rot.TransformQuaternion(src, &want)
	if !got.GeometricallyEquals(&want, 1.0e-12) {
		t.Error("quaternion transform must use only the rotation part")
	}

	var back Quaternion
	m.InverseTransformQuaternion(&got, &back)
	if !back.GeometricallyEquals(src, 1.0e-12) {
		t.Error("inverse quaternion transform did not undo transform")
	}
}

func TestRotationScaleMatrixMultiplyTouchesOnlyRotation(t *testing.T) {
	rot := NewRotationMatrixFromYawPitchRoll(0.3, 0, 0)
	m, _ := NewRotationScaleMatrixFrom(rot, 2, 3, 4)

	var yaw RotationMatrix
	yaw.SetToYawMatrix(0.2)
	m.Multiply(&yaw)

	if m.Scale() != (r3.Vector{X: 2, Y: 3, Z: 4}) {
		t.Errorf("Multiply changed the scales: %v", m.Scale())
	}
	want := NewRotationMatrixFromYawPitchRoll(0.5, 0, 0)
	rotPart := m.Rotation()
	if !rotPart.EpsilonEquals(want, 1.0e-12) {
		t.Errorf("rotation part = %v, want %v", &rotPart, want)
	}
}

func TestRotationScaleMatrixNormalizeRotation(t *testing.T) {
	m := NewRotationScaleMatrix()
	if err := m.SetScale(2, 3, 4); err != nil {
		t.Fatal(err)
	}
	m.SetRotationYawPitchRoll(0.3, 0.2, 0.1)
	m.NormalizeRotationMatrix()

	rot := m.Rotation()
	if !rot.IsRotationMatrix(1.0e-12) {
		t.Error("rotation part not orthonormal after normalization")
	}
	if m.Scale() != (r3.Vector{X: 2, Y: 3, Z: 4}) {
		t.Error("normalization touched the scales")
	}
}

func TestRotationScaleMatrixNaN(t *testing.T) {
	m := NewRotationScaleMatrix()
	m.SetToNaN()
	if !m.ContainsNaN() {
		t.Error("SetToNaN left a finite component")
	}
	out := m.TransformTuple(r3.Vector{X: 1})
	if !allNaN3(out) {
		t.Errorf("transform by a NaN matrix = %v, want all NaN", out)
	}
}
