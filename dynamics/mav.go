// Package dynamics simulates the six-degree-of-freedom flight of a fixed-wing
// MAV and synthesizes the readings of its onboard sensors.
//
// A MAV advances its true state one fixed timestep per Update call:
// forces and moments are computed from the current state and controls, the
// rigid-body equations are integrated, and the air data and true-state view
// are refreshed.  Sensors samples the sensors from the result.
// A MAV is not safe for concurrent use; simulate several vehicles with
// several MAVs.
package dynamics

import (
	"github.com/westphae/mavsim/noise"
	"github.com/westphae/mavsim/params"
	"github.com/westphae/mavsim/rotations"
)

// MAV holds the complete simulated aircraft.
type MAV struct {
	ts float64
	ac params.Aircraft
	sn params.Sensor
	g  [9]float64 // Inertia gammas

	state State
	aero  AeroState
	wind  Wind          // Wind as of the last velocity update
	fm    ForcesMoments // Forces from the last force computation, read by Sensors
	truth TrueState

	prop          Propeller
	bodyFrameWind bool

	// Sensor state
	src              *noise.Source
	sensors          Sensors
	gpsN, gpsE, gpsH noise.GaussMarkov
	tGPS             float64
	magInertial      [3]float64
}

// Option customizes a MAV at construction.
type Option func(*MAV)

// WithPropeller selects the thrust model; LinearPropeller is the default.
func WithPropeller(p Propeller) Option {
	return func(m *MAV) { m.prop = p }
}

// WithSource injects the noise source instead of seeding one from the sensor table.
func WithSource(src *noise.Source) Option {
	return func(m *MAV) { m.src = src }
}

// WithBodyFrameWind adds the gust to the steady wind and rotates the sum into
// body axes when resolving the air-relative velocity.  By default the steady wind is
// subtracted from the body velocity as-is and the gust is ignored.
func WithBodyFrameWind() Option {
	return func(m *MAV) { m.bodyFrameWind = true }
}

// New returns a MAV at the initial conditions in cfg.Aircraft, with its
// derived quantities consistent with the initial velocity.
func New(cfg *params.Config, opts ...Option) (*MAV, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &MAV{
		ts:   cfg.Ts,
		ac:   *cfg.Aircraft,
		sn:   *cfg.Sensor,
		prop: LinearPropeller{},
	}
	m.g = m.ac.Gammas()
	for _, opt := range opts {
		opt(m)
	}
	if m.src == nil {
		m.src = noise.NewSource(m.sn.Seed)
	}

	ac := &m.ac
	m.state = State{
		North: ac.North0, East: ac.East0, Down: ac.Down0,
		U: ac.U0, V: ac.V0, W: ac.W0,
		P: ac.P0, Q: ac.Q0, R: ac.R0,
	}
	e0, e1, e2, e3 := rotations.ToQuaternion(ac.Phi0, ac.Theta0, ac.Psi0)
	m.state.SetQuaternion([4]float64{e0, e1, e2, e3})

	m.initSensors()
	m.InitializeVelocity(ac.U0, 0, 0)
	return m, nil
}

// Update advances the true state by one timestep under controls delta and wind.
func (m *MAV) Update(delta Delta, wind Wind) {
	fm := m.forcesMoments(delta)
	m.state = rk4Step(m.state, fm, m.ts, &m.ac, &m.g)
	m.state.SetQuaternion(rotations.Normalize(m.state.Quaternion()))
	m.updateVelocityData(wind)
	m.updateTrueState()
}

// TrueState returns the true state as of the last update.
func (m *MAV) TrueState() TrueState {
	return m.truth
}

// State returns the raw rigid-body state.
func (m *MAV) State() State {
	return m.state
}

// SetState overwrites the rigid-body state and refreshes the derived
// quantities, leaving wind and forces as they were.
func (m *MAV) SetState(x State) {
	m.state = x
	m.state.SetQuaternion(rotations.Normalize(m.state.Quaternion()))
	m.updateVelocityData(m.wind)
	m.updateTrueState()
}

// Forces returns the forces and moments from the last force computation.
func (m *MAV) Forces() ForcesMoments {
	return m.fm
}

// Aero returns the airspeed, angle of attack and sideslip as of the last update.
func (m *MAV) Aero() AeroState {
	return m.aero
}

// Ts returns the simulation timestep.
func (m *MAV) Ts() float64 {
	return m.ts
}
