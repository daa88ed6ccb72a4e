package dynamics

import (
	"math"

	"github.com/westphae/mavsim/params"
	"github.com/westphae/mavsim/rotations"
)

// forcesMoments computes the body-frame forces and moments on the aircraft
// for controls delta, caches them for Sensors and returns them.
func (m *MAV) forcesMoments(delta Delta) ForcesMoments {
	ac := &m.ac
	phi, theta, psi := rotations.FromQuaternion(m.state[E0], m.state[E1], m.state[E2], m.state[E3])
	p, q, r := m.state[P], m.state[Q], m.state[R]
	alpha, beta := m.aero.Alpha, m.aero.Beta

	// Gravity in body axes
	fg := rotations.RotateInverse(rotations.ToRotation(phi, theta, psi), [3]float64{0, 0, ac.Mass * ac.Gravity})

	cl, cd := liftDrag(ac, alpha)

	qbar := 0.5 * ac.Rho * m.aero.Va * m.aero.Va
	qS := qbar * ac.SWing
	// Rate normalizations; the airspeed floor keeps these finite at rest
	va := math.Max(m.aero.Va, ac.MinAirspeed)
	qn := ac.C / (2 * va) * q
	pn := ac.B / (2 * va) * p
	rn := ac.B / (2 * va) * r

	thrust, torque := m.prop.ThrustTorque(ac, m.aero.Va, delta.Throttle)

	sa, ca := math.Sincos(alpha)

	// Longitudinal forces
	cx := -cd*ca + cl*sa
	cxq := -ac.CDQ*ca + ac.CLQ*sa
	cxDeltaE := -ac.CDDeltaE*ca + ac.CLDeltaE*sa
	cz := -cd*sa - cl*ca
	czq := -ac.CDQ*sa - ac.CLQ*ca
	czDeltaE := -ac.CDDeltaE*sa - ac.CLDeltaE*ca

	var fm ForcesMoments
	fm[Fx] = fg[0] + qS*(cx+cxq*qn) + qS*cxDeltaE*delta.Elevator + thrust
	fm[Fz] = fg[2] + qS*(cz+czq*qn+czDeltaE*delta.Elevator)

	// Lateral force
	fm[Fy] = fg[1] + qS*(ac.CY0+ac.CYBeta*beta+ac.CYP*pn+ac.CYR*rn) +
		qS*(ac.CYDeltaA*delta.Aileron+ac.CYDeltaR*delta.Rudder)

	// Moments
	fm[L] = qS*ac.B*(ac.Cell0+ac.CellBeta*beta+ac.CellP*pn+ac.CellR*rn) +
		qS*ac.B*(ac.CellDeltaA*delta.Aileron+ac.CellDeltaR*delta.Rudder) + torque
	fm[M] = qS*ac.C*(ac.Cm0+ac.CmAlpha*alpha+ac.CmQ*qn) +
		qS*ac.C*ac.CmDeltaE*delta.Elevator
	fm[N] = qS*ac.B*(ac.Cn0+ac.CnBeta*beta+ac.CnP*pn+ac.CnR*rn) +
		qS*ac.B*(ac.CnDeltaA*delta.Aileron+ac.CnDeltaR*delta.Rudder)

	m.fm = fm
	return fm
}

// liftDrag returns the lift and drag coefficients at angle of attack alpha.
// Lift blends the linear model into a flat-plate model through the stall with
// a sigmoid of rate ac.M centered on ac.Alpha0; drag is a parabolic polar on
// the linear lift plus parasitic drag.
func liftDrag(ac *params.Aircraft, alpha float64) (cl, cd float64) {
	sigma := blend(ac.M, ac.Alpha0, alpha)
	clLinear := ac.CL0 + ac.CLAlpha*alpha
	sa, ca := math.Sincos(alpha)
	clPlate := 2 * sign(alpha) * sa * sa * ca

	cl = (1-sigma)*clLinear + sigma*clPlate
	cd = ac.CDP + clLinear*clLinear/(math.Pi*ac.E*ac.AR())
	return
}

// blend is the stall sigmoid
//
//	(1 + e^(-M(alpha-alpha0)) + e^(M(alpha+alpha0))) / ((1 + e^(-M(alpha-alpha0))) (1 + e^(M(alpha+alpha0))))
//
// near 0 for |alpha| well below alpha0 and near 1 well above.  It is evaluated
// as a sum of partial fractions so the exponentials may overflow to +Inf.
func blend(rate, alpha0, alpha float64) float64 {
	a := 1 + math.Exp(-rate*(alpha-alpha0))
	b := 1 + math.Exp(rate*(alpha+alpha0))
	return 1/a + 1/b - 1/(a*b)
}

// sign returns -1, 0 or 1 following the sign of x.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
