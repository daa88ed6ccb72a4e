package simlog

import (
	"math"

	"github.com/westphae/mavsim/dynamics"
)

const deg = math.Pi / 180

// Sample is everything recorded about one timestep.
type Sample struct {
	T       float64
	Delta   dynamics.Delta
	Truth   dynamics.TrueState
	Sensors dynamics.Sensors
}

var sampleLogMap = map[string]func(s *Sample) float64{
	"T":        func(s *Sample) float64 { return s.T },
	"Aileron":  func(s *Sample) float64 { return s.Delta.Aileron / deg },
	"Elevator": func(s *Sample) float64 { return s.Delta.Elevator / deg },
	"Rudder":   func(s *Sample) float64 { return s.Delta.Rudder / deg },
	"Throttle": func(s *Sample) float64 { return s.Delta.Throttle },

	"North":    func(s *Sample) float64 { return s.Truth.North },
	"East":     func(s *Sample) float64 { return s.Truth.East },
	"Altitude": func(s *Sample) float64 { return s.Truth.Altitude },
	"Va":       func(s *Sample) float64 { return s.Truth.Va },
	"Alpha":    func(s *Sample) float64 { return s.Truth.Alpha / deg },
	"Beta":     func(s *Sample) float64 { return s.Truth.Beta / deg },
	"Roll":     func(s *Sample) float64 { return s.Truth.Phi / deg },
	"Pitch":    func(s *Sample) float64 { return s.Truth.Theta / deg },
	"Heading":  func(s *Sample) float64 { return s.Truth.Psi / deg },
	"Vg":       func(s *Sample) float64 { return s.Truth.Vg },
	"Gamma":    func(s *Sample) float64 { return s.Truth.Gamma / deg },
	"Course":   func(s *Sample) float64 { return s.Truth.Chi / deg },
	"P":        func(s *Sample) float64 { return s.Truth.P / deg },
	"Q":        func(s *Sample) float64 { return s.Truth.Q / deg },
	"R":        func(s *Sample) float64 { return s.Truth.R / deg },
	"Wn":       func(s *Sample) float64 { return s.Truth.Wn },
	"We":       func(s *Sample) float64 { return s.Truth.We },

	"GyroX":        func(s *Sample) float64 { return s.Sensors.GyroX / deg },
	"GyroY":        func(s *Sample) float64 { return s.Sensors.GyroY / deg },
	"GyroZ":        func(s *Sample) float64 { return s.Sensors.GyroZ / deg },
	"AccelX":       func(s *Sample) float64 { return s.Sensors.AccelX },
	"AccelY":       func(s *Sample) float64 { return s.Sensors.AccelY },
	"AccelZ":       func(s *Sample) float64 { return s.Sensors.AccelZ },
	"MagX":         func(s *Sample) float64 { return s.Sensors.MagX },
	"MagY":         func(s *Sample) float64 { return s.Sensors.MagY },
	"MagZ":         func(s *Sample) float64 { return s.Sensors.MagZ },
	"AbsPressure":  func(s *Sample) float64 { return s.Sensors.AbsPressure },
	"DiffPressure": func(s *Sample) float64 { return s.Sensors.DiffPressure },
	"GPSN":         func(s *Sample) float64 { return s.Sensors.GPSN },
	"GPSE":         func(s *Sample) float64 { return s.Sensors.GPSE },
	"GPSH":         func(s *Sample) float64 { return s.Sensors.GPSH },
	"GPSVg":        func(s *Sample) float64 { return s.Sensors.GPSVg },
	"GPSCourse":    func(s *Sample) float64 { return s.Sensors.GPSCourse / deg },
}

// NewLogMap returns a log map with a column for every field of a Sample.
// Angles are logged in degrees.
func NewLogMap() map[string]interface{} {
	p := make(map[string]interface{}, len(sampleLogMap))
	for k := range sampleLogMap {
		p[k] = 0.0
	}
	return p
}

// UpdateLogMap stores the values of s into the log map p.
func UpdateLogMap(s *Sample, p map[string]interface{}) {
	for k, f := range sampleLogMap {
		p[k] = f(s)
	}
}
