package rotations

import (
	"fmt"
	"math"
	"testing"

	"github.com/westphae/quaternion"
)

const (
	pi        = math.Pi
	Tolerance = 1e-9
)

var (
	phis   = []float64{0, 0.1, 0.2, 0.5, 1, 1.5, 2, 2.5, 3, -3, -2, -1, -0.5, -0.2}
	thetas = []float64{0.1, 0.2, 0.5, 1, 1.5, -1.5, -0.5, -0.2, 0.2, 0.1, -1, -0.5, -0.2, 0}
	psis   = []float64{1, 1.5, 2, 2.5, 3, -2.5, 0.1, 0.2, 0.5, -1.2, -0.7, 3.1, -3, 0}
)

// notSmall checks whether a result is not small compared to Tolerance
func notSmall(x float64) bool {
	return math.Abs(x) > Tolerance
}

func TestRoundTrips(t *testing.T) {
	for i := 0; i < len(phis); i++ {
		e0, e1, e2, e3 := ToQuaternion(phis[i], thetas[i], psis[i])
		phiOut, thetaOut, psiOut := FromQuaternion(e0, e1, e2, e3)
		if notSmall(phis[i]-phiOut) || notSmall(thetas[i]-thetaOut) || notSmall(psis[i]-psiOut) {
			t.Errorf("%+5.3f -> %+5.3f, %+5.3f -> %+5.3f, %+5.3f -> %+5.3f",
				phis[i], phiOut, thetas[i], thetaOut, psis[i], psiOut)
		}
	}
}

func TestQuaternionRoundTrips(t *testing.T) {
	qs := [][4]float64{
		{1, 0, 0, 0},
		{0.5, 0.5, 0.5, 0.5},
		{0.9, -0.1, 0.3, 0.2},
		{0.2, 0.7, -0.1, 0.4},
		{-0.6, 0.2, 0.2, 0.3},
	}
	for _, q := range qs {
		q = Normalize(q)
		phi, theta, psi := FromQuaternion(q[0], q[1], q[2], q[3])
		e0, e1, e2, e3 := ToQuaternion(phi, theta, psi)
		// q and -q are the same rotation
		s := 1.0
		if e0*q[0]+e1*q[1]+e2*q[2]+e3*q[3] < 0 {
			s = -1
		}
		if notSmall(s*e0-q[0]) || notSmall(s*e1-q[1]) || notSmall(s*e2-q[2]) || notSmall(s*e3-q[3]) {
			t.Errorf("%v -> %v", q, [4]float64{e0, e1, e2, e3})
		}
	}
}

func TestToQuaternionIsUnit(t *testing.T) {
	for i := 0; i < len(phis); i++ {
		e0, e1, e2, e3 := ToQuaternion(phis[i], thetas[i], psis[i])
		if notSmall(Norm([4]float64{e0, e1, e2, e3}) - 1) {
			t.Errorf("quaternion for %f,%f,%f not unit", phis[i], thetas[i], psis[i])
		}
	}
}

// Rotation matrices must agree with rotating by e*v*conj(e)
func TestRotationMatchesQuaternion(t *testing.T) {
	vs := [][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0.3, -2, 1.5}}

	for i := 0; i < len(phis); i++ {
		e0, e1, e2, e3 := ToQuaternion(phis[i], thetas[i], psis[i])
		e := quaternion.Quaternion{W: e0, X: e1, Y: e2, Z: e3}
		rEuler := ToRotation(phis[i], thetas[i], psis[i])
		rQuat := QuaternionToRotation(e0, e1, e2, e3)

		for _, v := range vs {
			vv := quaternion.Prod(e, quaternion.Quaternion{X: v[0], Y: v[1], Z: v[2]}, quaternion.Conj(e))
			a := Rotate(rEuler, v)
			b := Rotate(rQuat, v)
			if notSmall(a[0]-vv.X) || notSmall(a[1]-vv.Y) || notSmall(a[2]-vv.Z) {
				fmt.Printf("%d euler: %v -> %v, quaternion %v\n", i, v, a, vv)
				t.Fail()
			}
			if notSmall(b[0]-vv.X) || notSmall(b[1]-vv.Y) || notSmall(b[2]-vv.Z) {
				fmt.Printf("%d dcm: %v -> %v, quaternion %v\n", i, v, b, vv)
				t.Fail()
			}
		}
	}
}

func TestRotationOrthonormal(t *testing.T) {
	for i := 0; i < len(phis); i++ {
		v := [3]float64{1.2, -0.4, 2.2}
		r := ToRotation(phis[i], thetas[i], psis[i])
		w := RotateInverse(r, Rotate(r, v))
		if notSmall(w[0]-v[0]) || notSmall(w[1]-v[1]) || notSmall(w[2]-v[2]) {
			t.Errorf("R^T R v != v: %v -> %v", v, w)
		}
	}
}

func TestSpecificRotations(t *testing.T) {
	tests := []struct {
		name            string
		phi, theta, psi float64
		nose            [3]float64 // body x-axis expressed in NED
	}{
		{"level north", 0, 0, 0, [3]float64{1, 0, 0}},
		{"level east", 0, 0, pi / 2, [3]float64{0, 1, 0}},
		{"level south", 0, 0, pi, [3]float64{-1, 0, 0}},
		{"climb north", 0, pi / 6, 0, [3]float64{math.Sqrt(3) / 2, 0, -0.5}},
		{"banked north", pi / 3, 0, 0, [3]float64{1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e0, e1, e2, e3 := ToQuaternion(tt.phi, tt.theta, tt.psi)
			got := Rotate(QuaternionToRotation(e0, e1, e2, e3), [3]float64{1, 0, 0})
			for j := 0; j < 3; j++ {
				if notSmall(got[j] - tt.nose[j]) {
					t.Errorf("nose = %v, want %v", got, tt.nose)
					break
				}
			}
		})
	}
}

// A positive roll rate about the nose should increase roll
func TestQuaternionRate(t *testing.T) {
	e := [4]float64{1, 0, 0, 0}
	dt := 1e-3
	d := QuaternionRate(e, 0.5, 0, 0)
	for i := 0; i < 4; i++ {
		e[i] += d[i] * dt
	}
	e = Normalize(e)
	phi, theta, psi := FromQuaternion(e[0], e[1], e[2], e[3])
	if math.Abs(phi-0.5*dt) > 1e-8 || notSmall(theta) || notSmall(psi) {
		t.Errorf("roll rate integration gave phi=%g theta=%g psi=%g", phi, theta, psi)
	}
}

func TestNormalize(t *testing.T) {
	e := Normalize([4]float64{2, 0, 0, 0})
	if e != [4]float64{1, 0, 0, 0} {
		t.Errorf("Normalize(2,0,0,0) = %v", e)
	}
	e = Normalize([4]float64{})
	if e != [4]float64{1, 0, 0, 0} {
		t.Errorf("Normalize(0) = %v, want identity", e)
	}
	e = Normalize([4]float64{1, 1, 1, 1})
	if notSmall(Norm(e) - 1) {
		t.Errorf("Normalize(1,1,1,1) has norm %f", Norm(e))
	}
}
