package dynamics

import (
	"math"

	"github.com/westphae/mavsim/params"
)

// Propeller maps airspeed and throttle to propeller thrust, N, and the
// torque it exerts on the airframe about the body x-axis, N m.
type Propeller interface {
	ThrustTorque(ac *params.Aircraft, va, throttle float64) (thrust, torque float64)
}

// LinearPropeller treats throttle as commanding a prop-exit velocity
// KMotor*throttle and produces no torque.
type LinearPropeller struct{}

// ThrustTorque implements Propeller.
func (LinearPropeller) ThrustTorque(ac *params.Aircraft, va, throttle float64) (thrust, torque float64) {
	k := ac.KMotor * throttle
	thrust = 0.5 * ac.Rho * ac.SProp * (k*k - va*va)
	return thrust, 0
}

// PropellerMap solves for the propeller speed at which motor torque balances
// propeller drag torque, then looks up thrust and torque from quadratic
// coefficient fits in the advance ratio.
type PropellerMap struct{}

// ThrustTorque implements Propeller.
func (PropellerMap) ThrustTorque(ac *params.Aircraft, va, throttle float64) (thrust, torque float64) {
	vIn := ac.VMax * throttle
	kq := ac.KQ()
	d := ac.DProp

	a := ac.CQ0 * ac.Rho * math.Pow(d, 5) / ((2 * math.Pi) * (2 * math.Pi))
	b := ac.CQ1*ac.Rho*math.Pow(d, 4)/(2*math.Pi)*va + kq*kq/ac.RMotor
	c := ac.CQ2*ac.Rho*math.Pow(d, 3)*va*va - (kq/ac.RMotor)*vIn + kq*ac.I0

	disc := b*b - 4*a*c
	if disc < 0 || a == 0 {
		return 0, 0
	}
	omega := (-b + math.Sqrt(disc)) / (2 * a)
	if omega <= 0 {
		return 0, 0
	}

	j := 2 * math.Pi * va / (omega * d)
	ct := ac.CT2*j*j + ac.CT1*j + ac.CT0
	cq := ac.CQ2*j*j + ac.CQ1*j + ac.CQ0

	n := omega / (2 * math.Pi)
	thrust = ac.Rho * n * n * math.Pow(d, 4) * ct
	torque = -ac.Rho * n * n * math.Pow(d, 5) * cq
	return thrust, torque
}
