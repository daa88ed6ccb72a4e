package dynamics

import (
	"math"

	"github.com/westphae/mavsim/rotations"
)

// updateTrueState refreshes the controller-facing view of the state.
func (m *MAV) updateTrueState() {
	x := &m.state
	phi, theta, psi := rotations.FromQuaternion(x[E0], x[E1], x[E2], x[E3])
	pdot := rotations.Rotate(rotations.QuaternionToRotation(x[E0], x[E1], x[E2], x[E3]), x.Velocity())
	vg := math.Sqrt(pdot[0]*pdot[0] + pdot[1]*pdot[1] + pdot[2]*pdot[2])

	m.truth = TrueState{
		North:    x[North],
		East:     x[East],
		Altitude: -x[Down],
		Va:       m.aero.Va,
		Alpha:    m.aero.Alpha,
		Beta:     m.aero.Beta,
		Phi:      phi,
		Theta:    theta,
		Psi:      psi,
		Vg:       vg,
		Gamma:    math.Asin(-pdot[2] / math.Max(vg, m.ac.MinAirspeed)),
		Chi:      math.Atan2(pdot[1], pdot[0]),
		P:        x[P],
		Q:        x[Q],
		R:        x[R],
		Wn:       m.wind.Steady[0],
		We:       m.wind.Steady[1],
	}
}
