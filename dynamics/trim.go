package dynamics

import (
	"math"

	"github.com/westphae/mavsim/rotations"
)

// InitializeVelocity sets the body velocity for flight at airspeed va, angle
// of attack alpha and sideslip beta in still air, then refreshes the air
// data, forces and true state to match.
func (m *MAV) InitializeVelocity(va, alpha, beta float64) {
	sa, ca := math.Sincos(alpha)
	sb, cb := math.Sincos(beta)
	m.state[U] = va * ca * cb
	m.state[V] = va * sb
	m.state[W] = va * sa * cb

	m.updateVelocityData(Wind{})
	m.forcesMoments(Delta{})
	m.updateTrueState()
}

// TrimCost returns the squared residual Fx^2 + Fz^2 + M^2 with the aircraft
// pitched to alpha at the current airspeed and sideslip, under elevator and
// throttle.  Roll and yaw are held.  The MAV is left in the evaluated
// condition.
func (m *MAV) TrimCost(alpha, elevator, throttle float64) float64 {
	e := m.state.Quaternion()
	phi, _, psi := rotations.FromQuaternion(e[0], e[1], e[2], e[3])
	e0, e1, e2, e3 := rotations.ToQuaternion(phi, alpha, psi)
	m.state.SetQuaternion([4]float64{e0, e1, e2, e3})

	m.InitializeVelocity(m.aero.Va, alpha, m.aero.Beta)
	fm := m.forcesMoments(Delta{Elevator: elevator, Throttle: throttle})
	return fm[Fx]*fm[Fx] + fm[Fz]*fm[Fz] + fm[M]*fm[M]
}

// TrimCostVec is TrimCost taking (alpha, elevator, throttle) as a vector, the
// form most optimizers expect.
func (m *MAV) TrimCostVec(x [3]float64) float64 {
	return m.TrimCost(x[0], x[1], x[2])
}
