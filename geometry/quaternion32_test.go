package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

func TestQuaternion32RoundTripThroughFloat64(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 200; i++ {
		q := randomQuaternion(rng)

		q32 := NewQuaternion32FromQuaternion(q)
		var back Quaternion
		q32.PackQuaternion(&back)
		if !back.GeometricallyEquals(q, testEps32) {
			t.Fatalf("narrow/widen drifted past float32 precision: %v vs %v", &back, q)
		}
	}
}

func TestQuaternion32ConversionRoundTrips(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 200; i++ {
		q := randomQuaternion(rng)
		ref := NewQuaternion32FromQuaternion(q)

		var aa AxisAngle
		ref.PackAxisAngle(&aa)
		fromAA := NewQuaternion32()
		fromAA.SetAxisAngle(&aa)
		if !fromAA.GeometricallyEquals(ref, testEps32) {
			t.Fatal("axis-angle round trip drifted")
		}

		var m RotationMatrix
		ref.PackRotationMatrix(&m)
		fromM := NewQuaternion32()
		fromM.SetRotationMatrix(&m)
		if !fromM.GeometricallyEquals(ref, testEps32) {
			t.Fatal("rotation matrix round trip drifted")
		}

		var rv r3.Vector
		ref.PackRotationVector(&rv)
		fromRV := NewQuaternion32()
		fromRV.SetRotationVector(rv)
		if !fromRV.GeometricallyEquals(ref, testEps32) {
			t.Fatal("rotation vector round trip drifted")
		}
	}
}

func TestQuaternion32YawPitchRollRoundTrip(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 200; i++ {
		yaw, pitch, roll := randomYawPitchRoll(rng)

		q := NewQuaternion32()
		q.SetYawPitchRoll(yaw, pitch, roll)

		var ypr YawPitchRoll
		q.PackYawPitchRoll(&ypr)
		if math.Abs(ypr.Yaw-yaw) > testEps32 || math.Abs(ypr.Pitch-pitch) > testEps32 || math.Abs(ypr.Roll-roll) > testEps32 {
			t.Fatalf("(%v, %v, %v) round-tripped to (%v, %v, %v)", yaw, pitch, roll, ypr.Yaw, ypr.Pitch, ypr.Roll)
		}
	}
}

func TestQuaternion32CopyIsVerbatim(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 1000; i++ {
		src := NewQuaternion32FromQuaternion(randomQuaternion(rng))
		c := NewQuaternion32()
		c.SetQuaternion32(src)
		if !c.Equals(src) {
			t.Fatalf("copy changed the components: %v != %v", c, src)
		}

		// Narrowing is a plain cast of each component.
		q := randomQuaternion(rng)
		n := NewQuaternion32()
		n.SetQuaternion(q)
		if n.X32() != float32(q.X()) || n.Y32() != float32(q.Y()) ||
			n.Z32() != float32(q.Z()) || n.S32() != float32(q.S()) {
			t.Fatalf("narrowing altered a component: %v from %v", n, q)
		}
	}
}

func TestQuaternion32SetNormalizes(t *testing.T) {
	q := NewQuaternion32()
	q.Set(0, 0, 0, 4)
	if q.S32() != 1 {
		t.Errorf("Set(0, 0, 0, 4) stored s = %v, want 1", q.S32())
	}

	q.SetUnsafe(0, 0, 0, 4)
	if q.S32() != 4 {
		t.Errorf("SetUnsafe stored s = %v, want the raw 4", q.S32())
	}
	q.Normalize()
	if !q.IsNormalized(1.0e-6) {
		t.Error("Normalize did not restore the unit norm")
	}
}

func TestQuaternion32NaN(t *testing.T) {
	q := NewQuaternion32()
	q.SetToNaN()
	if !q.ContainsNaN() {
		t.Error("SetToNaN left a finite component")
	}
	q.Normalize()
	if !q.ContainsNaN() {
		t.Error("Normalize erased NaN")
	}
}

func TestQuaternion32MultiplyMatchesFloat64(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 100; i++ {
		q1 := randomQuaternion(rng)
		q2 := randomQuaternion(rng)

		var want Quaternion
		MultiplyQuaternions(q1, q2, &want)

		got := NewQuaternion32FromQuaternion(q1)
		got.Multiply(NewQuaternion32FromQuaternion(q2))

		want32 := NewQuaternion32FromQuaternion(&want)
		if !got.GeometricallyEquals(want32, testEps32) {
			t.Fatalf("float32 product drifted: %v vs %v", got, want32)
		}
	}
}

func TestQuaternion32Difference(t *testing.T) {
	rng := newTestRand()
	q1 := NewQuaternion32FromQuaternion(randomQuaternion(rng))
	q2 := NewQuaternion32FromQuaternion(randomQuaternion(rng))

	diff := NewQuaternion32()
	diff.Difference(q1, q2)

	recomposed := NewQuaternion32()
	recomposed.SetQuaternion32(q1)
	recomposed.Multiply(diff)
	if !recomposed.GeometricallyEquals(q2, 1.0e-5) {
		t.Errorf("q1*difference(q1, q2) = %v, want %v", recomposed, q2)
	}
}

func TestQuaternion32Interpolate(t *testing.T) {
	q0 := NewQuaternion32FromQuaternion(NewQuaternionFromYawPitchRoll(0.2, 0, 0))
	qf := NewQuaternion32FromQuaternion(NewQuaternionFromYawPitchRoll(0.8, 0, 0))

	mid := NewQuaternion32()
	mid.Interpolate(q0, qf, 0.5)

	want := NewQuaternion32FromQuaternion(NewQuaternionFromYawPitchRoll(0.5, 0, 0))
	if !mid.GeometricallyEquals(want, testEps32) {
		t.Errorf("midpoint = %v, want %v", mid, want)
	}

	self := NewQuaternion32()
	self.Interpolate(q0, q0, 0.3)
	if !self.EpsilonEquals(q0, 1.0e-6) {
		t.Errorf("interpolate(q, q, 0.3) = %v, want %v", self, q0)
	}
}

func TestQuaternion32TransformTuple(t *testing.T) {
	rng := newTestRand()
	for i := 0; i < 100; i++ {
		q := randomQuaternion(rng)
		q32 := NewQuaternion32FromQuaternion(q)
		v := r3.Vector{X: rng.NormFloat64(), Y: rng.NormFloat64(), Z: rng.NormFloat64()}

		got := q32.TransformTuple(v)
		want := q.TransformTuple(v)
		if !tupleNear(got, want, 1.0e-5) {
			t.Fatalf("float32 transform drifted: %v vs %v", got, want)
		}

		back := q32.InverseTransformTuple(got)
		if !tupleNear(back, v, 1.0e-5) {
			t.Fatal("inverse transform did not undo transform")
		}
	}
}

func TestQuaternion32ArrayRoundTrip(t *testing.T) {
	q := NewQuaternion32FromQuaternion(NewQuaternionFromYawPitchRoll(0.3, 0.2, 0.1))

	buf := make([]float32, 5)
	if err := q.Pack(buf, 1); err != nil {
		t.Fatalf("Pack: %v", err)
	}
	got := NewQuaternion32()
	if err := got.SetArray(buf, 1); err != nil {
		t.Fatalf("SetArray: %v", err)
	}
	if !got.Equals(q) {
		t.Error("array round trip drifted")
	}

	prior := *got
	if err := got.SetArray(buf, 3); !errors.Is(err, ErrBufferTooShort) {
		t.Errorf("short buffer returned %v", err)
	}
	if *got != prior {
		t.Error("failed SetArray modified the quaternion")
	}
}

func TestQuaternion32ComponentPanics(t *testing.T) {
	q := NewQuaternion32()
	if q.Component(3) != 1 {
		t.Errorf("Component(3) = %v, want 1", q.Component(3))
	}
	mustPanic(t, func() { q.Component(4) })
}

func TestQuaternion32NormalizeAndLimitToPiMinusPi(t *testing.T) {
	q := NewQuaternion32()
	q.SetAxisAngle(NewAxisAngleValues(0, 0, 1, 3*math.Pi/2))
	q.NormalizeAndLimitToPiMinusPi()
	if q.S32() < 0 {
		t.Errorf("scalar part %v still negative", q.S32())
	}
	if a := q.Angle(); a < 0 || float64(a) > math.Pi+1.0e-6 {
		t.Errorf("equivalent angle %v outside [0, pi]", a)
	}
}
