package dynamics

import (
	"math"

	"github.com/westphae/mavsim/noise"
	"github.com/westphae/mavsim/params"
	"github.com/westphae/mavsim/rotations"
)

// Standard atmosphere constants for the barometric formula
const (
	seaLevelPressure    = 101325.0  // Pa
	seaLevelTemperature = 288.15    // K
	lapseRate           = -0.0065   // K/m
	molarMassAir        = 0.0289644 // kg/mol
	gasConstant         = 8.31432   // J/(mol K)
)

// gpsTolerance absorbs the rounding in the accumulated GPS timer
const gpsTolerance = 1e-9

// initSensors sets up the GPS bias processes and timer and the earth's
// magnetic field vector.
func (m *MAV) initSensors() {
	sn := &m.sn
	m.gpsN = noise.GaussMarkov{K: sn.GPSK, Sigma: sn.GPSNSigma, Ts: sn.TsGPS}
	m.gpsE = noise.GaussMarkov{K: sn.GPSK, Sigma: sn.GPSESigma, Ts: sn.TsGPS}
	m.gpsH = noise.GaussMarkov{K: sn.GPSK, Sigma: sn.GPSHSigma, Ts: sn.TsGPS}
	m.tGPS = sn.TsGPS // GPS is due on the first call

	// Unit vector along the earth's field: north rotated down by the
	// inclination and east by the declination, so the down component is
	// sin(inclination), positive in the northern hemisphere
	m.magInertial = rotations.Rotate(rotations.ToRotation(0, -sn.MagInclination, sn.MagDeclination), [3]float64{1, 0, 0})
}

// Sensors returns a noisy sample of every sensor at the current true state.
// The GPS fields are refreshed only once per GPS sample interval; between
// samples they repeat the previous values.  Each call advances the GPS timer
// by one simulation timestep, and time past a sample carries into the next
// interval.  A timestep longer than the GPS interval samples on every call.
func (m *MAV) Sensors() Sensors {
	sn, ac, ts, src := &m.sn, &m.ac, &m.truth, m.src
	s := &m.sensors

	// Rate gyros
	s.GyroX = ts.P + src.Normal(sn.GyroSigma)
	s.GyroY = ts.Q + src.Normal(sn.GyroSigma)
	s.GyroZ = ts.R + src.Normal(sn.GyroSigma)

	// Accelerometers measure specific force: total force less gravity
	sphi, cphi := math.Sincos(ts.Phi)
	stheta, ctheta := math.Sincos(ts.Theta)
	s.AccelX = m.fm[Fx]/ac.Mass + ac.Gravity*stheta + src.Normal(sn.AccelSigma)
	s.AccelY = m.fm[Fy]/ac.Mass - ac.Gravity*ctheta*sphi + src.Normal(sn.AccelSigma)
	s.AccelZ = m.fm[Fz]/ac.Mass - ac.Gravity*ctheta*cphi + src.Normal(sn.AccelSigma)

	// Magnetometer
	mb := rotations.RotateInverse(rotations.ToRotation(ts.Phi, ts.Theta, ts.Psi), m.magInertial)
	if sn.MagNoise == params.MagNoiseAdditive {
		s.MagX = mb[0] + src.Normal(sn.MagSigma)
		s.MagY = mb[1] + src.Normal(sn.MagSigma)
		s.MagZ = mb[2] + src.Normal(sn.MagSigma)
	} else {
		s.MagX = mb[0] * src.Normal(sn.MagSigma)
		s.MagY = mb[1] * src.Normal(sn.MagSigma)
		s.MagZ = mb[2] * src.Normal(sn.MagSigma)
	}

	// Pressure sensors
	s.AbsPressure = absolutePressure(ts.Altitude, ac.Gravity) + src.Normal(sn.AbsPresSigma)
	s.DiffPressure = ac.Rho*ts.Va*ts.Va/2 + src.Normal(sn.DiffPresSigma)

	// GPS
	if m.tGPS >= sn.TsGPS-gpsTolerance {
		etaN := m.gpsN.Step(src)
		etaE := m.gpsE.Step(src)
		etaH := m.gpsH.Step(src)
		etaVg := src.Normal(sn.GPSVgSigma)
		etaChi := src.Normal(sn.GPSCourseSigma)

		s.GPSN = ts.North + etaN
		s.GPSE = ts.East + etaE
		s.GPSH = ts.Altitude + etaH

		spsi, cpsi := math.Sincos(ts.Psi)
		vn := ts.Va*cpsi + ts.Wn
		ve := ts.Va*spsi + ts.We
		s.GPSVg = math.Sqrt(vn*vn+ve*ve) + etaVg
		s.GPSCourse = math.Atan2(ve, vn) + etaChi

		m.tGPS -= sn.TsGPS
		if m.tGPS >= sn.TsGPS {
			m.tGPS = math.Mod(m.tGPS, sn.TsGPS)
		}
	}
	m.tGPS += m.ts

	return *s
}

// absolutePressure returns the static pressure at altitude h, m, above sea level.
func absolutePressure(h, gravity float64) float64 {
	return seaLevelPressure * math.Pow(1-(lapseRate*h)/seaLevelTemperature,
		(gravity*molarMassAir)/(gasConstant*lapseRate))
}

// PressureAltitude inverts the barometric formula, returning the altitude, m,
// at which the static pressure is p, Pa.
func PressureAltitude(p, gravity float64) float64 {
	x := (gravity * molarMassAir) / (gasConstant * lapseRate)
	return seaLevelTemperature / lapseRate * (1 - math.Pow(p/seaLevelPressure, 1/x))
}
