package dynamics

import (
	"github.com/westphae/mavsim/params"
	"github.com/westphae/mavsim/rotations"
)

// derivatives returns dx/dt for the rigid-body equations of motion under the
// body-frame forces and moments fm.
func derivatives(x State, fm ForcesMoments, ac *params.Aircraft, g *[9]float64) (dx State) {
	u, v, w := x[U], x[V], x[W]
	p, q, r := x[P], x[Q], x[R]

	// Position kinematics
	pdot := rotations.Rotate(rotations.QuaternionToRotation(x[E0], x[E1], x[E2], x[E3]), [3]float64{u, v, w})
	dx[North], dx[East], dx[Down] = pdot[0], pdot[1], pdot[2]

	// Position dynamics
	dx[U] = r*v - q*w + fm[Fx]/ac.Mass
	dx[V] = p*w - r*u + fm[Fy]/ac.Mass
	dx[W] = q*u - p*v + fm[Fz]/ac.Mass

	// Rotational kinematics
	edot := rotations.QuaternionRate(x.Quaternion(), p, q, r)
	dx[E0], dx[E1], dx[E2], dx[E3] = edot[0], edot[1], edot[2], edot[3]

	// Rotational dynamics
	dx[P] = g[1]*p*q - g[2]*q*r + g[3]*fm[L] + g[4]*fm[N]
	dx[Q] = g[5]*p*r - g[6]*(p*p-r*r) + fm[M]/ac.Jy
	dx[R] = g[7]*p*q - g[1]*q*r + g[4]*fm[L] + g[8]*fm[N]
	return
}

// RK4Step advances the state x by dt with a classical fourth-order Runge-Kutta
// step, holding fm constant over the step.  The returned quaternion is not
// normalized.
func RK4Step(x State, fm ForcesMoments, dt float64, ac *params.Aircraft) State {
	g := ac.Gammas()
	return rk4Step(x, fm, dt, ac, &g)
}

// rk4Step is RK4Step with the inertia gammas of ac precomputed.
func rk4Step(x State, fm ForcesMoments, dt float64, ac *params.Aircraft, g *[9]float64) State {
	k1 := derivatives(x, fm, ac, g)
	k2 := derivatives(axpy(x, dt/2, &k1), fm, ac, g)
	k3 := derivatives(axpy(x, dt/2, &k2), fm, ac, g)
	k4 := derivatives(axpy(x, dt, &k3), fm, ac, g)

	for i := range x {
		x[i] += dt / 6 * (k1[i] + 2*k2[i] + 2*k3[i] + k4[i])
	}
	return x
}

// axpy returns x + a*k
func axpy(x State, a float64, k *State) State {
	for i := range x {
		x[i] += a * k[i]
	}
	return x
}
