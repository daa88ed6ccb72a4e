// Package rotations converts between the attitude representations used by the
// MAV simulation: Euler angles (roll phi, pitch theta, yaw psi, 3-2-1 order),
// unit quaternions (e0 scalar part) and direction-cosine matrices.
// All frames are right-handed: body is x to the nose, y to the right wing, z down;
// inertial is North-East-Down.
package rotations

import (
	"math"

	"github.com/skelterjohn/go.matrix"
	"github.com/westphae/quaternion"
)

// ToQuaternion calculates the e0,e1,e2,e3 components of the attitude quaternion
// corresponding to the Euler angles phi, theta, psi
func ToQuaternion(phi, theta, psi float64) (float64, float64, float64, float64) {
	sphi, cphi := math.Sincos(phi / 2)
	stheta, ctheta := math.Sincos(theta / 2)
	spsi, cpsi := math.Sincos(psi / 2)

	e0 := cpsi*ctheta*cphi + spsi*stheta*sphi
	e1 := cpsi*ctheta*sphi - spsi*stheta*cphi
	e2 := cpsi*stheta*cphi + spsi*ctheta*sphi
	e3 := spsi*ctheta*cphi - cpsi*stheta*sphi
	return e0, e1, e2, e3
}

// FromQuaternion calculates the Euler angles phi, theta, psi corresponding to
// the quaternion.  Pitch is clipped to ±pi/2 so rounding can't push asin out of range.
func FromQuaternion(e0, e1, e2, e3 float64) (float64, float64, float64) {
	phi := math.Atan2(2*(e0*e1+e2*e3), e0*e0+e3*e3-e1*e1-e2*e2)
	st := 2 * (e0*e2 - e1*e3)
	if st > 1 {
		st = 1
	} else if st < -1 {
		st = -1
	}
	theta := math.Asin(st)
	psi := math.Atan2(2*(e0*e3+e1*e2), e0*e0+e1*e1-e2*e2-e3*e3)
	return phi, theta, psi
}

// ToRotation returns the rotation matrix taking body-frame vectors into the
// inertial frame for the Euler angles phi, theta, psi.
// Its transpose takes inertial vectors into the body frame.
func ToRotation(phi, theta, psi float64) *matrix.DenseMatrix {
	sphi, cphi := math.Sincos(phi)
	stheta, ctheta := math.Sincos(theta)
	spsi, cpsi := math.Sincos(psi)

	return matrix.MakeDenseMatrix([]float64{
		ctheta * cpsi, sphi*stheta*cpsi - cphi*spsi, cphi*stheta*cpsi + sphi*spsi,
		ctheta * spsi, sphi*stheta*spsi + cphi*cpsi, cphi*stheta*spsi - sphi*cpsi,
		-stheta, sphi * ctheta, cphi * ctheta,
	}, 3, 3)
}

// QuaternionToRotation returns the body-to-inertial rotation matrix for the
// quaternion e0,e1,e2,e3.
func QuaternionToRotation(e0, e1, e2, e3 float64) *matrix.DenseMatrix {
	return matrix.MakeDenseMatrix([]float64{
		e1*e1 + e0*e0 - e2*e2 - e3*e3, 2 * (e1*e2 - e3*e0), 2 * (e1*e3 + e2*e0),
		2 * (e1*e2 + e3*e0), e2*e2 + e0*e0 - e1*e1 - e3*e3, 2 * (e2*e3 - e1*e0),
		2 * (e1*e3 - e2*e0), 2 * (e2*e3 + e1*e0), e3*e3 + e0*e0 - e1*e1 - e2*e2,
	}, 3, 3)
}

// Rotate multiplies the 3-vector v by the 3x3 matrix r.
func Rotate(r *matrix.DenseMatrix, v [3]float64) (x [3]float64) {
	xm := matrix.Product(r, matrix.MakeDenseMatrix(v[:], 3, 1))
	x[0], x[1], x[2] = xm.Get(0, 0), xm.Get(1, 0), xm.Get(2, 0)
	return
}

// RotateInverse multiplies the 3-vector v by the transpose of the rotation matrix r,
// i.e. it undoes Rotate.
func RotateInverse(r *matrix.DenseMatrix, v [3]float64) [3]float64 {
	return Rotate(r.Transpose(), v)
}

// QuaternionRate returns the time derivative of the attitude quaternion e
// for body rates p, q, r: de/dt = 1/2 e*(0,p,q,r).
func QuaternionRate(e [4]float64, p, q, r float64) [4]float64 {
	d := quaternion.Prod(
		quaternion.Quaternion{W: e[0], X: e[1], Y: e[2], Z: e[3]},
		quaternion.Quaternion{X: p, Y: q, Z: r},
	)
	return [4]float64{d.W / 2, d.X / 2, d.Y / 2, d.Z / 2}
}

// Normalize scales the quaternion e to unit magnitude.
// A zero quaternion is replaced by the identity rotation.
func Normalize(e [4]float64) [4]float64 {
	if e[0] == 0 && e[1] == 0 && e[2] == 0 && e[3] == 0 {
		return [4]float64{1, 0, 0, 0}
	}
	u := quaternion.Unit(quaternion.Quaternion{W: e[0], X: e[1], Y: e[2], Z: e[3]})
	return [4]float64{u.W, u.X, u.Y, u.Z}
}

// Norm returns the magnitude of the quaternion e.
func Norm(e [4]float64) float64 {
	return math.Sqrt(e[0]*e[0] + e[1]*e[1] + e[2]*e[2] + e[3]*e[3])
}
