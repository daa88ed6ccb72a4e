// Package noise provides the random processes used to corrupt simulated
// sensor readings.  Every simulation owns its own Source, so runs are
// reproducible from a seed and vehicles never share generator state.
package noise

import (
	"math"
	"math/rand"
)

// Source is a seedable generator of Gaussian noise.  It is not safe for
// concurrent use.
type Source struct {
	r *rand.Rand
}

// NewSource returns a Source seeded with seed.
func NewSource(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// FromRand wraps an existing generator.
func FromRand(r *rand.Rand) *Source {
	return &Source{r: r}
}

// Normal returns a sample of N(0, sigma^2).
func (s *Source) Normal(sigma float64) float64 {
	return sigma * s.r.NormFloat64()
}

// GaussMarkov is a first-order exponentially correlated random walk,
//
//	eta[k+1] = exp(-K*Ts)*eta[k] + Ts*N(0, Sigma^2)
//
// sampled at a fixed interval Ts.
type GaussMarkov struct {
	K     float64 // Inverse correlation time, 1/s
	Sigma float64 // Driving noise standard deviation
	Ts    float64 // Sample interval, s
	Eta   float64 // Current value
}

// Step advances the process by one sample interval and returns the new value.
func (g *GaussMarkov) Step(src *Source) float64 {
	g.Eta = math.Exp(-g.K*g.Ts)*g.Eta + src.Normal(g.Sigma)*g.Ts
	return g.Eta
}

// Reset returns the process to zero.
func (g *GaussMarkov) Reset() {
	g.Eta = 0
}
