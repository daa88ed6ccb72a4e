// Package params holds the physical and aerodynamic parameter tables for the
// simulated aircraft and its sensors.  Tables are plain values: a simulation
// takes its own copy at construction and never mutates it.
package params

import (
	"fmt"
	"math"
)

// Aircraft holds the mass properties, geometry, aerodynamic derivatives and
// propulsion constants of a fixed-wing MAV.  Units are SI; angles are radians.
type Aircraft struct {
	// Initial conditions
	North0, East0, Down0 float64 // Initial position, NED, m
	U0, V0, W0           float64 // Initial body-frame velocity, m/s
	Phi0, Theta0, Psi0   float64 // Initial attitude, rad
	P0, Q0, R0           float64 // Initial body rates, rad/s

	// Physical parameters
	Mass    float64 // kg
	Jx      float64 // kg m^2
	Jy      float64
	Jz      float64
	Jxz     float64
	SWing   float64 // Wing area, m^2
	B       float64 // Wing span, m
	C       float64 // Mean chord, m
	SProp   float64 // Propeller disc area, m^2
	Rho     float64 // Air density, kg/m^3
	E       float64 // Oswald efficiency
	Gravity float64 // m/s^2

	// Longitudinal coefficients
	CL0, CD0, Cm0      float64
	CLAlpha, CDAlpha   float64
	CmAlpha            float64
	CLQ, CDQ, CmQ      float64
	CLDeltaE, CDDeltaE float64
	CmDeltaE           float64
	M                  float64 // Stall transition rate of the lift sigmoid blend
	Alpha0             float64 // Stall angle of attack, rad
	Epsilon            float64
	CDP                float64 // Parasitic drag

	// Lateral coefficients
	CY0, Cell0, Cn0                float64
	CYBeta, CellBeta, CnBeta       float64
	CYP, CellP, CnP                float64
	CYR, CellR, CnR                float64
	CYDeltaA, CellDeltaA, CnDeltaA float64
	CYDeltaR, CellDeltaR, CnDeltaR float64

	// Propulsion
	KMotor float64 // Throttle to prop-exit velocity gain, m/s

	// Motor/propeller map, used only by the propeller-map thrust model
	DProp         float64 // Prop diameter, m
	KV            float64 // Motor speed constant, RPM/V
	RMotor        float64 // Motor resistance, Ohm
	I0            float64 // No-load current, A
	NCells        float64 // Battery cells
	VMax          float64 // Max motor voltage, V
	CQ2, CQ1, CQ0 float64 // Torque coefficient polynomial in advance ratio
	CT2, CT1, CT0 float64 // Thrust coefficient polynomial in advance ratio

	// Floor applied to airspeed and groundspeed wherever they appear as a divisor
	MinAirspeed float64
}

// DefaultAerosonde returns the parameters of the Aerosonde UAV
// from Beard & McLain, "Small Unmanned Aircraft", 2012.
func DefaultAerosonde() *Aircraft {
	ac := &Aircraft{
		Down0: -100,
		U0:    25,

		Mass:    11.0,
		Jx:      0.824,
		Jy:      1.135,
		Jz:      1.759,
		Jxz:     0.120,
		SWing:   0.55,
		B:       2.8956,
		C:       0.18994,
		SProp:   0.2027,
		Rho:     1.2682,
		E:       0.9,
		Gravity: 9.81,

		CL0:      0.23,
		CD0:      0.043,
		Cm0:      0.0135,
		CLAlpha:  5.61,
		CDAlpha:  0.030,
		CmAlpha:  -2.74,
		CLQ:      7.95,
		CDQ:      0.0,
		CmQ:      -38.21,
		CLDeltaE: 0.13,
		CDDeltaE: 0.0135,
		CmDeltaE: -0.99,
		M:        50.0,
		Alpha0:   0.47,
		Epsilon:  0.16,
		CDP:      0.0,

		CY0:        0.0,
		Cell0:      0.0,
		Cn0:        0.0,
		CYBeta:     -0.98,
		CellBeta:   -0.13,
		CnBeta:     0.073,
		CYP:        0.0,
		CellP:      -0.51,
		CnP:        0.069,
		CYR:        0.0,
		CellR:      0.25,
		CnR:        -0.095,
		CYDeltaA:   0.075,
		CellDeltaA: 0.17,
		CnDeltaA:   -0.011,
		CYDeltaR:   0.19,
		CellDeltaR: 0.0024,
		CnDeltaR:   -0.069,

		KMotor: 80,

		DProp:  20 * 0.0254,
		KV:     145,
		RMotor: 0.042,
		I0:     1.5,
		NCells: 12,
		CQ2:    -0.01664,
		CQ1:    0.004970,
		CQ0:    0.005230,
		CT2:    -0.1079,
		CT1:    -0.06044,
		CT0:    0.09357,

		MinAirspeed: 0.1,
	}
	ac.VMax = 3.7 * ac.NCells
	return ac
}

// AR returns the wing aspect ratio b^2/S.
func (ac *Aircraft) AR() float64 {
	return ac.B * ac.B / ac.SWing
}

// KQ returns the motor torque constant, N m/A, derived from KV.
func (ac *Aircraft) KQ() float64 {
	return 60 / (2 * math.Pi * ac.KV)
}

// Gammas returns the inertia-matrix combinations Gamma, Gamma1..Gamma8 used in
// the rotational equations of motion.
func (ac *Aircraft) Gammas() (g [9]float64) {
	g[0] = ac.Jx*ac.Jz - ac.Jxz*ac.Jxz
	g[1] = ac.Jxz * (ac.Jx - ac.Jy + ac.Jz) / g[0]
	g[2] = (ac.Jz*(ac.Jz-ac.Jy) + ac.Jxz*ac.Jxz) / g[0]
	g[3] = ac.Jz / g[0]
	g[4] = ac.Jxz / g[0]
	g[5] = (ac.Jz - ac.Jx) / ac.Jy
	g[6] = ac.Jxz / ac.Jy
	g[7] = ((ac.Jx-ac.Jy)*ac.Jx + ac.Jxz*ac.Jxz) / g[0]
	g[8] = ac.Jx / g[0]
	return
}

// Validate reports the first non-physical value found in the table.
func (ac *Aircraft) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"mass", ac.Mass},
		{"Jx", ac.Jx},
		{"Jy", ac.Jy},
		{"Jz", ac.Jz},
		{"wing area", ac.SWing},
		{"wing span", ac.B},
		{"chord", ac.C},
		{"air density", ac.Rho},
		{"Oswald efficiency", ac.E},
		{"gravity", ac.Gravity},
		{"minimum airspeed", ac.MinAirspeed},
	}
	for _, p := range positive {
		if !(p.v > 0) {
			return fmt.Errorf("aircraft %s must be positive, got %v", p.name, p.v)
		}
	}
	if ac.SProp < 0 {
		return fmt.Errorf("aircraft prop area must not be negative, got %v", ac.SProp)
	}
	if ac.Jx*ac.Jz-ac.Jxz*ac.Jxz <= 0 {
		return fmt.Errorf("aircraft inertia matrix is singular: Jx*Jz-Jxz^2 = %v", ac.Jx*ac.Jz-ac.Jxz*ac.Jxz)
	}
	return nil
}
