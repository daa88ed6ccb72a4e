package params

import (
	"fmt"
	"math"
)

// Magnetometer noise models
const (
	MagNoiseMultiplicative = "multiplicative" // field component times N(0, MagSigma)
	MagNoiseAdditive       = "additive"       // field component plus N(0, MagSigma)
)

// Sensor holds the noise and timing characteristics of the simulated sensors.
type Sensor struct {
	GyroSigma  float64 // Rate gyro noise, rad/s
	AccelSigma float64 // Accelerometer noise, m/s^2

	MagSigma       float64 // Magnetometer noise
	MagNoise       string  // MagNoiseMultiplicative or MagNoiseAdditive
	MagInclination float64 // Inclination of the earth's field below horizontal, rad
	MagDeclination float64 // Declination of the earth's field east of north, rad

	AbsPresSigma  float64 // Static pressure noise, Pa
	DiffPresSigma float64 // Pitot differential pressure noise, Pa

	TsGPS          float64 // GPS sample interval, s
	GPSK           float64 // Inverse time constant of the GPS position bias, 1/s
	GPSNSigma      float64 // m
	GPSESigma      float64 // m
	GPSHSigma      float64 // m
	GPSVgSigma     float64 // m/s
	GPSCourseSigma float64 // rad

	Seed int64 // Seed for the noise source
}

// DefaultSensor returns sensor characteristics typical of a small autopilot,
// with the earth's field as measured in Provo, UT.
func DefaultSensor() *Sensor {
	s := &Sensor{
		GyroSigma:  0.5 * math.Pi / 180,
		AccelSigma: 0.0025 * 9.81,

		MagSigma:       0.03 * math.Pi / 180,
		MagNoise:       MagNoiseMultiplicative,
		MagInclination: 66 * math.Pi / 180,
		MagDeclination: 2.13 * math.Pi / 180,

		AbsPresSigma:  0.01 * 1000,
		DiffPresSigma: 0.002 * 1000,

		TsGPS:      1.0,
		GPSK:       1. / 1100,
		GPSNSigma:  0.21,
		GPSESigma:  0.21,
		GPSHSigma:  0.40,
		GPSVgSigma: 0.05,

		Seed: 1,
	}
	s.GPSCourseSigma = s.GPSVgSigma / 10
	return s
}

// Validate reports the first unusable value found in the table.
func (s *Sensor) Validate() error {
	sigmas := []struct {
		name string
		v    float64
	}{
		{"gyro", s.GyroSigma},
		{"accel", s.AccelSigma},
		{"mag", s.MagSigma},
		{"absolute pressure", s.AbsPresSigma},
		{"differential pressure", s.DiffPresSigma},
		{"gps north", s.GPSNSigma},
		{"gps east", s.GPSESigma},
		{"gps height", s.GPSHSigma},
		{"gps groundspeed", s.GPSVgSigma},
		{"gps course", s.GPSCourseSigma},
	}
	for _, p := range sigmas {
		if p.v < 0 || math.IsNaN(p.v) {
			return fmt.Errorf("%s noise sigma must not be negative, got %v", p.name, p.v)
		}
	}
	if !(s.TsGPS > 0) {
		return fmt.Errorf("gps sample interval must be positive, got %v", s.TsGPS)
	}
	if s.GPSK < 0 {
		return fmt.Errorf("gps bias decay constant must not be negative, got %v", s.GPSK)
	}
	switch s.MagNoise {
	case MagNoiseMultiplicative, MagNoiseAdditive:
	default:
		return fmt.Errorf("unknown magnetometer noise model %q", s.MagNoise)
	}
	return nil
}
