package noise

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Tracker follows a drifting signal with an exponentially weighted mean and
// variance.  Each observation's weight decays by Decay per later observation.
type Tracker struct {
	Decay float64
	n     float64 // Effective number of observations
	mean  float64
	v     float64
}

// NewTracker returns a Tracker seeded with the observation init.
func NewTracker(init, decay float64) *Tracker {
	return &Tracker{Decay: decay, n: 1, mean: init}
}

// Add folds obs into the running estimates.
func (t *Tracker) Add(obs float64) {
	d := obs - t.mean
	dm := (1 - t.Decay) * d
	t.n = 1 + t.Decay*t.n
	t.mean += dm
	t.v = t.Decay * (t.v + dm*d)
}

// N returns the effective number of observations, which tends to 1/(1-Decay).
func (t *Tracker) N() float64 { return t.n }

// Mean returns the weighted mean.
func (t *Tracker) Mean() float64 { return t.mean }

// StdDev returns the weighted standard deviation.
func (t *Tracker) StdDev() float64 { return math.Sqrt(t.v) }

// Summary describes a batch of samples of one sensor channel.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
}

// Summarize computes the sample mean and standard deviation of x.
func Summarize(x []float64) Summary {
	switch len(x) {
	case 0:
		return Summary{}
	case 1:
		return Summary{N: 1, Mean: x[0]}
	}
	mean, std := stat.MeanStdDev(x, nil)
	return Summary{N: len(x), Mean: mean, StdDev: std}
}
