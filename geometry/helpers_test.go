package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
)

const (
	testEps   = 1.0e-10
	testEps32 = 1.0e-6
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(262144))
}

func randomQuaternion(rng *rand.Rand) *Quaternion {
	q := new(Quaternion)
	q.Set(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
	return q
}

func randomRotationMatrix(rng *rand.Rand) *RotationMatrix {
	m := new(RotationMatrix)
	QuaternionToRotationMatrix(randomQuaternion(rng), m)
	return m
}

func randomYawPitchRoll(rng *rand.Rand) (yaw, pitch, roll float64) {
	yaw = (2*rng.Float64() - 1) * math.Pi
	// Stay away from the gimbal singularity.
	pitch = (2*rng.Float64() - 1) * (0.5*math.Pi - 0.05)
	roll = (2*rng.Float64() - 1) * math.Pi
	return
}

func tupleNear(a, b r3.Vector, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

func allNaN3(v r3.Vector) bool {
	return math.IsNaN(v.X) && math.IsNaN(v.Y) && math.IsNaN(v.Z)
}

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	f()
}
