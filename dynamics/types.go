package dynamics

// State is the 13-element rigid-body state of the aircraft:
// NED position, body-frame velocity, attitude quaternion and body rates.
type State [13]float64

// Indices into State
const (
	North = iota // m
	East         // m
	Down         // m
	U            // Body-frame velocity, nose, m/s
	V            // Body-frame velocity, right wing, m/s
	W            // Body-frame velocity, down, m/s
	E0           // Attitude quaternion, scalar part
	E1
	E2
	E3
	P // Roll rate, rad/s
	Q // Pitch rate, rad/s
	R // Yaw rate, rad/s
)

// Quaternion returns the attitude quaternion part of the state.
func (x *State) Quaternion() [4]float64 {
	return [4]float64{x[E0], x[E1], x[E2], x[E3]}
}

// SetQuaternion overwrites the attitude quaternion part of the state.
func (x *State) SetQuaternion(e [4]float64) {
	x[E0], x[E1], x[E2], x[E3] = e[0], e[1], e[2], e[3]
}

// Velocity returns the body-frame velocity part of the state.
func (x *State) Velocity() [3]float64 {
	return [3]float64{x[U], x[V], x[W]}
}

// Delta holds the control surface deflections, rad, and throttle, 0..1.
type Delta struct {
	Aileron  float64
	Elevator float64
	Rudder   float64
	Throttle float64
}

// Wind holds the steady wind and gust, both NED, m/s.
type Wind struct {
	Steady [3]float64
	Gust   [3]float64
}

// WindFromVector builds a Wind from the 6-vector (steady N,E,D, gust N,E,D).
func WindFromVector(w [6]float64) Wind {
	return Wind{
		Steady: [3]float64{w[0], w[1], w[2]},
		Gust:   [3]float64{w[3], w[4], w[5]},
	}
}

// AeroState holds the air-relative quantities derived from the state and wind.
type AeroState struct {
	Va    float64 // Airspeed, m/s
	Alpha float64 // Angle of attack, rad
	Beta  float64 // Sideslip, rad
}

// ForcesMoments holds the net body-frame forces, N, and moments, N m.
type ForcesMoments [6]float64

// Indices into ForcesMoments
const (
	Fx = iota
	Fy
	Fz
	L // Rolling moment
	M // Pitching moment
	N // Yawing moment
)

// TrueState is the controller-facing view of the true aircraft state.
type TrueState struct {
	North, East, Altitude float64 // m
	Va, Alpha, Beta       float64 // Airspeed m/s, angle of attack and sideslip rad
	Phi, Theta, Psi       float64 // Roll, pitch, yaw, rad
	Vg                    float64 // Groundspeed, m/s
	Gamma                 float64 // Flight path angle, rad
	Chi                   float64 // Course angle, rad
	P, Q, R               float64 // Body rates, rad/s
	Wn, We                float64 // Wind, m/s
	Bx, By, Bz            float64 // Gyro biases, rad/s (always zero)
	CameraAz, CameraEl    float64 // Gimbal angles, rad (always zero)
}

// Sensors holds one sample of every simulated sensor.
// GPS values change only every GPS sample interval.
type Sensors struct {
	GyroX, GyroY, GyroZ    float64 // rad/s
	AccelX, AccelY, AccelZ float64 // m/s^2
	MagX, MagY, MagZ       float64
	AbsPressure            float64 // Pa
	DiffPressure           float64 // Pa
	GPSN, GPSE, GPSH       float64 // m
	GPSVg                  float64 // m/s
	GPSCourse              float64 // rad
}
