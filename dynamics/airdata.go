package dynamics

import (
	"math"

	"github.com/westphae/mavsim/rotations"
)

// updateVelocityData recomputes airspeed, angle of attack and sideslip from
// the body velocity and the wind.
func (m *MAV) updateVelocityData(wind Wind) {
	m.wind = wind

	var vw [3]float64
	if m.bodyFrameWind {
		e := m.state.Quaternion()
		total := [3]float64{
			wind.Steady[0] + wind.Gust[0],
			wind.Steady[1] + wind.Gust[1],
			wind.Steady[2] + wind.Gust[2],
		}
		vw = rotations.RotateInverse(rotations.QuaternionToRotation(e[0], e[1], e[2], e[3]), total)
	} else {
		vw = wind.Steady
	}

	ur := m.state[U] - vw[0]
	vr := m.state[V] - vw[1]
	wr := m.state[W] - vw[2]
	m.aero = airData(ur, vr, wr, m.ac.MinAirspeed)
}

// airData resolves an air-relative body velocity into airspeed, angle of
// attack and sideslip.  Sideslip divides by max(Va, minVa).
func airData(ur, vr, wr, minVa float64) (a AeroState) {
	a.Va = math.Sqrt(ur*ur + vr*vr + wr*wr)
	a.Alpha = math.Atan2(wr, ur)
	a.Beta = math.Asin(vr / math.Max(a.Va, minVa))
	return
}
