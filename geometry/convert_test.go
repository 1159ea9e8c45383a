package geometry

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

func TestIdentityFixedPoint(t *testing.T) {
	q := NewQuaternion()

	var aa AxisAngle
	QuaternionToAxisAngle(q, &aa)
	if !aa.Equals(&AxisAngle{}) {
		t.Errorf("identity quaternion -> axis-angle = %v, want zero", &aa)
	}

	var m RotationMatrix
	QuaternionToRotationMatrix(q, &m)
	if !m.IsIdentity(0) {
		t.Errorf("identity quaternion -> matrix = %v, want identity", &m)
	}

	var rv r3.Vector
	QuaternionToRotationVector(q, &rv)
	if rv != (r3.Vector{}) {
		t.Errorf("identity quaternion -> rotation vector = %v, want zero", rv)
	}

	var ypr YawPitchRoll
	QuaternionToYawPitchRoll(q, &ypr)
	if ypr != (YawPitchRoll{}) {
		t.Errorf("identity quaternion -> yaw-pitch-roll = %+v, want zero", ypr)
	}

	var back Quaternion
	RotationMatrixToQuaternion(NewRotationMatrix(), &back)
	if !back.Equals(NewQuaternion()) {
		t.Errorf("identity matrix -> quaternion = %v, want (0, 0, 0, 1)", &back)
	}

	RotationVectorToQuaternion(r3.Vector{}, &back)
	if !back.Equals(NewQuaternion()) {
		t.Errorf("zero rotation vector -> quaternion = %v, want (0, 0, 0, 1)", &back)
	}
}

func TestQuaternionAxisAngleRoundTrip(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 1000; i++ {
		q := randomQuaternion(rng)

		var aa AxisAngle
		var back Quaternion
		QuaternionToAxisAngle(q, &aa)
		AxisAngleToQuaternion(&aa, &back)

		if !q.GeometricallyEquals(&back, testEps) {
			t.Fatalf("round trip drifted: %v -> %v -> %v", q, &aa, &back)
		}
	}
}

func TestQuaternionMatrixRoundTrip(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 1000; i++ {
		q := randomQuaternion(rng)

		var m RotationMatrix
		var back Quaternion
		QuaternionToRotationMatrix(q, &m)
		RotationMatrixToQuaternion(&m, &back)

		if !q.GeometricallyEquals(&back, testEps) {
			t.Fatalf("round trip drifted: %v -> %v -> %v", q, &m, &back)
		}
		if !m.IsRotationMatrix(1.0e-9) {
			t.Fatalf("conversion produced an improper matrix: %v", &m)
		}
	}
}

func TestMatrixAxisAngleRoundTrip(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 1000; i++ {
		m := randomRotationMatrix(rng)

		var aa AxisAngle
		var back RotationMatrix
		RotationMatrixToAxisAngle(m, &aa)
		AxisAngleToRotationMatrix(&aa, &back)

		if !m.GeometricallyEquals(&back, testEps) {
			t.Fatalf("round trip drifted: %v -> %v -> %v", m, &aa, &back)
		}
	}
}

func TestRotationVectorRoundTrip(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 1000; i++ {
		q := randomQuaternion(rng)
		q.NormalizeAndLimitToPiMinusPi()

		var rv r3.Vector
		var back Quaternion
		QuaternionToRotationVector(q, &rv)
		RotationVectorToQuaternion(rv, &back)

		if !q.GeometricallyEquals(&back, testEps) {
			t.Fatalf("round trip drifted: %v -> %v -> %v", q, rv, &back)
		}
	}
}

func TestYawPitchRollRoundTrip(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 1000; i++ {
		yaw, pitch, roll := randomYawPitchRoll(rng)

		var q Quaternion
		var ypr YawPitchRoll
		YawPitchRollToQuaternion(yaw, pitch, roll, &q)
		QuaternionToYawPitchRoll(&q, &ypr)

		if math.Abs(ypr.Yaw-yaw) > testEps || math.Abs(ypr.Pitch-pitch) > testEps || math.Abs(ypr.Roll-roll) > testEps {
			t.Fatalf("round trip drifted: (%v, %v, %v) -> %v -> %+v", yaw, pitch, roll, &q, ypr)
		}

		var m, fromQ RotationMatrix
		YawPitchRollToRotationMatrix(yaw, pitch, roll, &m)
		QuaternionToRotationMatrix(&q, &fromQ)
		if !m.EpsilonEquals(&fromQ, testEps) {
			t.Fatalf("matrix and quaternion paths disagree for (%v, %v, %v)", yaw, pitch, roll)
		}
	}
}

// The yaw-pitch-roll order is Z, then Y, then X. A swapped order produces a
// valid unit quaternion representing the wrong orientation, so the expected
// values here are pinned against the explicit axis-rotation product.
func TestYawPitchRollRotationOrder(t *testing.T) {
	const yaw, pitch, roll = 0.7, -0.3, 1.1

	var rz, ry, rx, want RotationMatrix
	rz.SetToYawMatrix(yaw)
	ry.SetToPitchMatrix(pitch)
	rx.SetToRollMatrix(roll)
	MultiplyMatrices(&rz, &ry, &want)
	MultiplyMatrices(&want, &rx, &want)

	var got RotationMatrix
	YawPitchRollToRotationMatrix(yaw, pitch, roll, &got)
	if !got.EpsilonEquals(&want, testEps) {
		t.Errorf("YawPitchRollToRotationMatrix = %v, want Rz*Ry*Rx = %v", &got, &want)
	}

	var q Quaternion
	YawPitchRollToQuaternion(yaw, pitch, roll, &q)
	var fromQ RotationMatrix
	QuaternionToRotationMatrix(&q, &fromQ)
	if !fromQ.EpsilonEquals(&want, testEps) {
		t.Errorf("YawPitchRollToQuaternion disagrees with Rz*Ry*Rx")
	}
}

func TestMatrixToAxisAnglePiSingularity(t *testing.T) {
	tests := []struct {
		name string
		axis r3.Vector
	}{
		{"x axis", r3.Vector{X: 1}},
		{"y axis", r3.Vector{Y: 1}},
		{"z axis", r3.Vector{Z: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewAxisAngleValues(tt.axis.X, tt.axis.Y, tt.axis.Z, math.Pi)

			var m RotationMatrix
			AxisAngleToRotationMatrix(src, &m)

			var got AxisAngle
			RotationMatrixToAxisAngle(&m, &got)

			if math.Abs(got.Angle()-math.Pi) > testEps {
				t.Fatalf("angle = %v, want pi", got.Angle())
			}
			// The recovered axis is only defined up to sign at exactly pi.
			axis := got.Axis()
			if !tupleNear(axis, tt.axis, testEps) && !tupleNear(axis.Mul(-1), tt.axis, testEps) {
				t.Fatalf("axis = %v, want +/-%v", axis, tt.axis)
			}
		})
	}
}

func TestMatrixToYawPitchRollGimbal(t *testing.T) {
	for _, pitch := range []float64{0.5 * math.Pi, -0.5 * math.Pi} {
		const yaw = 0.3
		var m RotationMatrix
		YawPitchRollToRotationMatrix(yaw, pitch, 0, &m)

		var ypr YawPitchRoll
		RotationMatrixToYawPitchRoll(&m, &ypr)

		if math.Abs(ypr.Pitch-pitch) > testEps {
			t.Errorf("pitch = %v, want %v", ypr.Pitch, pitch)
		}
		if ypr.Roll != 0 {
			t.Errorf("roll = %v, want 0 at the singularity", ypr.Roll)
		}
		if math.Abs(ypr.Yaw-yaw) > testEps {
			t.Errorf("yaw = %v, want %v", ypr.Yaw, yaw)
		}

		var q Quaternion
		YawPitchRollToQuaternion(yaw, pitch, 0, &q)
		QuaternionToYawPitchRoll(&q, &ypr)
		if math.Abs(ypr.Pitch-pitch) > 1.0e-7 || ypr.Roll != 0 || math.Abs(ypr.Yaw-yaw) > 1.0e-7 {
			t.Errorf("quaternion path: got %+v, want (%v, %v, 0)", ypr, yaw, pitch)
		}
	}
}

func TestConversionNaNPropagation(t *testing.T) {
	nanQ := NewQuaternion()
	nanQ.SetUnsafe(nan, 0, 0, 1)

	var aa AxisAngle
	QuaternionToAxisAngle(nanQ, &aa)
	if !(math.IsNaN(aa.X()) && math.IsNaN(aa.Y()) && math.IsNaN(aa.Z()) && math.IsNaN(aa.Angle())) {
		t.Errorf("quaternion NaN did not propagate to every axis-angle component: %v", &aa)
	}

	var m RotationMatrix
	QuaternionToRotationMatrix(nanQ, &m)
	if !m.ContainsNaN() {
		t.Errorf("quaternion NaN did not propagate to the matrix")
	}

	var rv r3.Vector
	QuaternionToRotationVector(nanQ, &rv)
	if !allNaN3(rv) {
		t.Errorf("quaternion NaN did not propagate to the rotation vector: %v", rv)
	}

	var ypr YawPitchRoll
	QuaternionToYawPitchRoll(nanQ, &ypr)
	if !ypr.ContainsNaN() || !math.IsNaN(ypr.Yaw) || !math.IsNaN(ypr.Pitch) || !math.IsNaN(ypr.Roll) {
		t.Errorf("quaternion NaN did not propagate to every angle: %+v", ypr)
	}

	nanM := new(RotationMatrix)
	nanM.SetUnsafe(1, 0, 0, 0, nan, 0, 0, 0, 1)

	var q Quaternion
	RotationMatrixToQuaternion(nanM, &q)
	if !(math.IsNaN(q.X()) && math.IsNaN(q.Y()) && math.IsNaN(q.Z()) && math.IsNaN(q.S())) {
		t.Errorf("matrix NaN did not propagate to every quaternion component: %v", &q)
	}

	RotationMatrixToAxisAngle(nanM, &aa)
	if !aa.ContainsNaN() {
		t.Errorf("matrix NaN did not propagate to the axis-angle")
	}

	RotationVectorToAxisAngle(r3.Vector{X: 0.3, Y: nan, Z: 0.1}, &aa)
	if !(math.IsNaN(aa.X()) && math.IsNaN(aa.Y()) && math.IsNaN(aa.Z()) && math.IsNaN(aa.Angle())) {
		t.Errorf("rotation vector NaN did not propagate: %v", &aa)
	}

	YawPitchRollToQuaternion(0.1, nan, 0.2, &q)
	if !q.ContainsNaN() {
		t.Errorf("yaw-pitch-roll NaN did not propagate to the quaternion")
	}
}

// A rotation vector is an axis scaled by an angle; yaw-pitch-roll is a
// sequence of three rotations. Feeding one where the other belongs must not
// round trip.
func TestRotationVectorIsNotYawPitchRoll(t *testing.T) {
	const a, b, c = 0.4, 0.5, 0.6

	var fromRV, fromYPR Quaternion
	RotationVectorToQuaternion(r3.Vector{X: c, Y: b, Z: a}, &fromRV)
	YawPitchRollToQuaternion(a, b, c, &fromYPR)

	if fromRV.GeometricallyEquals(&fromYPR, 1.0e-3) {
		t.Fatal("rotation vector and yaw-pitch-roll conversions coincide; the representations are being conflated")
	}
}

func TestNearIdentitySnapping(t *testing.T) {
	tiny := NewQuaternion()
	tiny.SetUnsafe(1.0e-13, -1.0e-13, 1.0e-14, 1)

	var aa AxisAngle
	QuaternionToAxisAngle(tiny, &aa)
	if !aa.Equals(&AxisAngle{}) {
		t.Errorf("near-identity quaternion did not snap to the zero axis-angle: %v", &aa)
	}

	var rv r3.Vector
	QuaternionToRotationVector(tiny, &rv)
	if rv != (r3.Vector{}) {
		t.Errorf("near-identity quaternion did not snap to the zero rotation vector: %v", rv)
	}

	RotationVectorToAxisAngle(r3.Vector{X: 1.0e-13, Y: 1.0e-13, Z: -1.0e-13}, &aa)
	if !aa.Equals(&AxisAngle{}) {
		t.Errorf("near-zero rotation vector did not snap to identity: %v", &aa)
	}
}
