package noise

import (
	"math"
	"math/rand"
	"testing"
)

func TestSourceReproducible(t *testing.T) {
	a, b := NewSource(42), NewSource(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Normal(1), b.Normal(1); x != y {
			t.Fatalf("sample %d differs: %f != %f", i, x, y)
		}
	}
	c := FromRand(rand.New(rand.NewSource(43)))
	if NewSource(42).Normal(1) == c.Normal(1) {
		t.Error("different seeds gave the same first sample")
	}
}

func TestNormalStatistics(t *testing.T) {
	src := NewSource(7)
	x := make([]float64, 20000)
	for i := range x {
		x[i] = src.Normal(2)
	}
	s := Summarize(x)
	if s.N != len(x) {
		t.Errorf("N = %d", s.N)
	}
	// Standard error of the mean is 2/sqrt(20000) ~ 0.014
	if math.Abs(s.Mean) > 0.1 {
		t.Errorf("mean = %f, want ~0", s.Mean)
	}
	if math.Abs(s.StdDev-2) > 0.1 {
		t.Errorf("stddev = %f, want ~2", s.StdDev)
	}
}

func TestNormalZeroSigma(t *testing.T) {
	src := NewSource(1)
	for i := 0; i < 10; i++ {
		if x := src.Normal(0); x != 0 {
			t.Fatalf("Normal(0) = %f", x)
		}
	}
}

func TestGaussMarkovDecay(t *testing.T) {
	g := GaussMarkov{K: 0.5, Sigma: 0, Ts: 0.1, Eta: 3}
	src := NewSource(1)
	for i := 0; i < 20; i++ {
		g.Step(src)
	}
	want := 3 * math.Exp(-0.5*0.1*20)
	if math.Abs(g.Eta-want) > 1e-12 {
		t.Errorf("eta = %g, want %g", g.Eta, want)
	}
	g.Reset()
	if g.Eta != 0 {
		t.Errorf("eta after reset = %g", g.Eta)
	}
}

func TestGaussMarkovStationaryVariance(t *testing.T) {
	// Stationary variance is (Sigma*Ts)^2 / (1 - exp(-2*K*Ts))
	g := GaussMarkov{K: 0.2, Sigma: 1, Ts: 1}
	src := NewSource(3)
	for i := 0; i < 1000; i++ {
		g.Step(src)
	}
	x := make([]float64, 50000)
	for i := range x {
		x[i] = g.Step(src)
	}
	want := math.Sqrt(1 / (1 - math.Exp(-0.4)))
	s := Summarize(x)
	if math.Abs(s.StdDev-want)/want > 0.1 {
		t.Errorf("stddev = %f, want ~%f", s.StdDev, want)
	}
}

func TestTracker(t *testing.T) {
	tr := NewTracker(0, 0.9)
	for i := 0; i < 500; i++ {
		tr.Add(5)
	}
	if math.Abs(tr.N()-10) > 1e-6 {
		t.Errorf("effective n = %f, want 10", tr.N())
	}
	if math.Abs(tr.Mean()-5) > 1e-6 {
		t.Errorf("mean = %f, want 5", tr.Mean())
	}
	if tr.StdDev() > 1e-3 {
		t.Errorf("std dev = %f, want ~0", tr.StdDev())
	}

	// Noisy input: the weighted spread follows the noise
	src := NewSource(3)
	tr = NewTracker(0, 0.999)
	for i := 0; i < 20000; i++ {
		tr.Add(2 + src.Normal(0.5))
	}
	if math.Abs(tr.Mean()-2) > 0.1 {
		t.Errorf("mean = %f, want 2", tr.Mean())
	}
	if math.Abs(tr.StdDev()-0.5) > 0.1 {
		t.Errorf("std dev = %f, want 0.5", tr.StdDev())
	}
}

func TestSummarizeEdgeCases(t *testing.T) {
	if s := Summarize(nil); s.N != 0 {
		t.Errorf("empty summary = %+v", s)
	}
	if s := Summarize([]float64{4}); s.N != 1 || s.Mean != 4 || s.StdDev != 0 {
		t.Errorf("single summary = %+v", s)
	}
}
