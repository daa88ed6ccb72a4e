// Package metrics exposes Prometheus metrics for a running simulation.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/westphae/mavsim/dynamics"
)

var (
	stepsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mavsim_steps_total",
			Help: "Total number of dynamics timesteps simulated.",
		},
	)

	stepDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mavsim_step_duration_seconds",
			Help:    "Wall time to simulate one timestep, including sensor synthesis.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		},
	)

	truth = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mavsim_true_state",
			Help: "Selected true-state quantities of the simulated aircraft, SI units.",
		},
		[]string{"quantity"},
	)

	framesDroppedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mavsim_frames_dropped_total",
			Help: "Telemetry frames not delivered to a slow websocket client.",
		},
	)
)

func init() {
	prometheus.MustRegister(stepsTotal)
	prometheus.MustRegister(stepDurationSeconds)
	prometheus.MustRegister(truth)
	prometheus.MustRegister(framesDroppedTotal)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveStep records one simulated timestep that took d and ended in state ts.
func ObserveStep(d time.Duration, ts dynamics.TrueState) {
	stepsTotal.Inc()
	stepDurationSeconds.Observe(d.Seconds())
	truth.WithLabelValues("airspeed").Set(ts.Va)
	truth.WithLabelValues("groundspeed").Set(ts.Vg)
	truth.WithLabelValues("altitude").Set(ts.Altitude)
	truth.WithLabelValues("alpha").Set(ts.Alpha)
	truth.WithLabelValues("roll").Set(ts.Phi)
	truth.WithLabelValues("pitch").Set(ts.Theta)
	truth.WithLabelValues("heading").Set(ts.Psi)
}

// FrameDropped counts a telemetry frame dropped for a slow client.
func FrameDropped() {
	framesDroppedTotal.Inc()
}
