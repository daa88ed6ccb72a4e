/*
Fly the simulated MAV with fixed controls and wind, synthesizing its sensor readings.
Optionally log every step to CSV and publish telemetry and metrics over HTTP.
*/

package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/westphae/mavsim/dynamics"
	"github.com/westphae/mavsim/metrics"
	"github.com/westphae/mavsim/noise"
	"github.com/westphae/mavsim/params"
	"github.com/westphae/mavsim/simlog"
	"github.com/westphae/mavsim/simweb"
)

const deg = math.Pi / 180

func parseFloatArrayString(str string, a []float64) (err error) {
	parts := strings.Split(str, ",")
	if len(parts) != len(a) {
		return fmt.Errorf("want %d comma-separated values, got %d", len(a), len(parts))
	}
	for i, s := range parts {
		a[i], err = strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			break
		}
	}
	return
}

func main() {
	// Handle some shell arguments
	var (
		configFile, saveConfig    string
		duration                  float64
		aileron, elevator, rudder float64
		throttle, alpha           float64
		trim                      bool
		windStr, gustStr          string
		seed                      int64
		logFile                   string
		addr                      string
		propModel                 string
		bodyWind                  bool
		vehicle                   string
		wind, gust                = make([]float64, 3), make([]float64, 3)
		cfg                       *params.Config
		err                       error
	)

	const (
		defaultConfigFile = ""
		configFileUsage   = "JSON file of aircraft and sensor parameters; defaults to the Aerosonde"
		defaultSaveConfig = ""
		saveConfigUsage   = "Write the parameters in use to this JSON file"
		defaultDuration   = 10.0
		durationUsage     = "Simulated time, seconds"
		defaultAileron    = 0.0
		aileronUsage      = "Aileron deflection, °"
		defaultElevator   = -7.162
		elevatorUsage     = "Elevator deflection, °"
		defaultRudder     = 0.0
		rudderUsage       = "Rudder deflection, °"
		defaultThrottle   = 0.3144
		throttleUsage     = "Throttle setting, 0-1"
		defaultAlpha      = 2.87
		alphaUsage        = "Angle of attack at which to start with -trim, °"
		defaultTrim       = true
		trimUsage         = "Start pitched to alpha and report the trim cost of the controls; the default controls trim the Aerosonde at the default alpha. -trim=false starts level"
		defaultWind       = "0,0,0"
		windUsage         = "Steady wind, \"n,e,d\" m/s"
		defaultGust       = "0,0,0"
		gustUsage         = "Gust, \"n,e,d\" m/s"
		defaultSeed       = -1
		seedUsage         = "Sensor noise seed; negative keeps the configured seed"
		defaultLogFile    = ""
		logFileUsage      = "Write every step to this CSV file"
		defaultAddr       = ""
		addrUsage         = "Serve telemetry on /telemetry and metrics on /metrics at this address, pacing the simulation in real time"
		defaultPropModel  = "linear"
		propModelUsage    = "Propeller model: linear (default) or map"
		defaultBodyWind   = false
		bodyWindUsage     = "Rotate steady wind plus gust into body axes"
		defaultVehicle    = ""
		vehicleUsage      = "Vehicle UUID for telemetry frames; random if empty"
	)

	flag.StringVar(&configFile, "config", defaultConfigFile, configFileUsage)
	flag.StringVar(&configFile, "c", defaultConfigFile, configFileUsage)
	flag.StringVar(&saveConfig, "save-config", defaultSaveConfig, saveConfigUsage)
	flag.Float64Var(&duration, "duration", defaultDuration, durationUsage)
	flag.Float64Var(&duration, "d", defaultDuration, durationUsage)
	flag.Float64Var(&aileron, "aileron", defaultAileron, aileronUsage)
	flag.Float64Var(&aileron, "a", defaultAileron, aileronUsage)
	flag.Float64Var(&elevator, "elevator", defaultElevator, elevatorUsage)
	flag.Float64Var(&elevator, "e", defaultElevator, elevatorUsage)
	flag.Float64Var(&rudder, "rudder", defaultRudder, rudderUsage)
	flag.Float64Var(&rudder, "r", defaultRudder, rudderUsage)
	flag.Float64Var(&throttle, "throttle", defaultThrottle, throttleUsage)
	flag.Float64Var(&throttle, "t", defaultThrottle, throttleUsage)
	flag.Float64Var(&alpha, "alpha", defaultAlpha, alphaUsage)
	flag.BoolVar(&trim, "trim", defaultTrim, trimUsage)
	flag.StringVar(&windStr, "wind", defaultWind, windUsage)
	flag.StringVar(&windStr, "w", defaultWind, windUsage)
	flag.StringVar(&gustStr, "gust", defaultGust, gustUsage)
	flag.Int64Var(&seed, "seed", defaultSeed, seedUsage)
	flag.StringVar(&logFile, "log", defaultLogFile, logFileUsage)
	flag.StringVar(&logFile, "l", defaultLogFile, logFileUsage)
	flag.StringVar(&addr, "addr", defaultAddr, addrUsage)
	flag.StringVar(&propModel, "prop", defaultPropModel, propModelUsage)
	flag.BoolVar(&bodyWind, "body-wind", defaultBodyWind, bodyWindUsage)
	flag.StringVar(&vehicle, "vehicle", defaultVehicle, vehicleUsage)
	flag.Parse()

	if configFile == "" {
		cfg = params.DefaultConfig()
	} else {
		log.Printf("Loading parameters from %s\n", configFile)
		if cfg, err = params.Load(configFile); err != nil {
			log.Fatalln(err)
		}
	}
	if seed >= 0 {
		cfg.Sensor.Seed = seed
	}
	if saveConfig != "" {
		if err = cfg.Save(saveConfig); err != nil {
			log.Println(err)
		}
	}

	if err = parseFloatArrayString(windStr, wind); err != nil {
		log.Fatalf("Error %v parsing wind %s\n", err, windStr)
	}
	if err = parseFloatArrayString(gustStr, gust); err != nil {
		log.Fatalf("Error %v parsing gust %s\n", err, gustStr)
	}
	w := dynamics.WindFromVector([6]float64{wind[0], wind[1], wind[2], gust[0], gust[1], gust[2]})

	var opts []dynamics.Option
	switch strings.ToLower(propModel) {
	case "linear":
	case "map":
		opts = append(opts, dynamics.WithPropeller(dynamics.PropellerMap{}))
	default:
		log.Fatalf("No such propeller model: %s\n", propModel)
	}
	if bodyWind {
		opts = append(opts, dynamics.WithBodyFrameWind())
	}

	m, err := dynamics.New(cfg, opts...)
	if err != nil {
		log.Fatalln(err)
	}

	delta := dynamics.Delta{
		Aileron:  aileron * deg,
		Elevator: elevator * deg,
		Rudder:   rudder * deg,
		Throttle: throttle,
	}

	fmt.Println("Simulation parameters:")
	fmt.Printf("\tTimestep: %g s for %g s\n", m.Ts(), duration)
	fmt.Printf("\tControls: aileron %.2f°, elevator %.2f°, rudder %.2f°, throttle %.3f\n",
		aileron, elevator, rudder, throttle)
	fmt.Printf("\tWind: %v, gust %v m/s\n", wind, gust)
	fmt.Printf("\tPropeller: %s\n", propModel)

	if trim {
		c := m.TrimCost(alpha*deg, delta.Elevator, delta.Throttle)
		fmt.Printf("\tTrim cost at alpha %.2f°: %g\n", alpha, c)
	}

	var (
		lg     *simlog.Logger
		logMap map[string]interface{}
	)
	if logFile != "" {
		logMap = simlog.NewLogMap()
		if lg, err = simlog.Create(logFile, logMap); err != nil {
			log.Fatalln(err)
		}
		defer lg.Close()
	}

	var (
		pub  *simweb.Publisher
		tick <-chan time.Time
	)
	if addr != "" {
		id := uuid.Nil
		if vehicle != "" {
			if id, err = uuid.Parse(vehicle); err != nil {
				log.Fatalf("Bad vehicle ID %s: %v\n", vehicle, err)
			}
		}
		r := simweb.NewRoom()
		go r.Run()
		defer r.Stop()
		pub = simweb.NewPublisher(r, id)

		http.Handle("/telemetry", r)
		http.Handle("/metrics", metrics.Handler())
		go func() {
			log.Println("Starting web server on", addr)
			if err := http.ListenAndServe(addr, nil); err != nil {
				log.Fatal("ListenAndServe:", err)
			}
		}()
		log.Printf("Publishing vehicle %s\n", pub.VehicleID())

		ticker := time.NewTicker(time.Duration(m.Ts() * float64(time.Second)))
		defer ticker.Stop()
		tick = ticker.C
	}

	channels := map[string][]float64{}
	record := func(s dynamics.Sensors) {
		for k, v := range map[string]float64{
			"gyro x, rad/s": s.GyroX, "gyro y, rad/s": s.GyroY, "gyro z, rad/s": s.GyroZ,
			"accel x, m/s²": s.AccelX, "accel y, m/s²": s.AccelY, "accel z, m/s²": s.AccelZ,
			"static pressure, Pa": s.AbsPressure, "differential pressure, Pa": s.DiffPressure,
		} {
			channels[k] = append(channels[k], v)
		}
	}

	// Recent airspeed and altitude, over about the last second
	decay := math.Max(0, 1-m.Ts())
	vaTrack := noise.NewTracker(m.TrueState().Va, decay)
	altTrack := noise.NewTracker(m.TrueState().Altitude, decay)

	// This is where it all happens
	fmt.Println("Running Simulation")
	n := int(math.Round(duration / m.Ts()))
	for i := 1; i <= n; i++ {
		if tick != nil {
			<-tick
		}
		start := time.Now()
		m.Update(delta, w)
		s := m.Sensors()
		ts := m.TrueState()
		metrics.ObserveStep(time.Since(start), ts)
		record(s)
		vaTrack.Add(ts.Va)
		altTrack.Add(ts.Altitude)

		t := float64(i) * m.Ts()
		if lg != nil {
			simlog.UpdateLogMap(&simlog.Sample{T: t, Delta: delta, Truth: ts, Sensors: s}, logMap)
			if err = lg.Log(); err != nil {
				log.Fatalln(err)
			}
		}
		if pub != nil {
			if err = pub.Publish(t, delta, ts, s); err != nil {
				log.Println(err)
			}
		}
		if math.IsNaN(ts.Va) || math.IsNaN(ts.Altitude) {
			log.Printf("Simulation diverged at time %.2f\n", t)
			break
		}
		if i%int(math.Max(1, math.Round(1/m.Ts()))) == 0 {
			log.Printf("Time: %.2f, airspeed %.2f±%.2f m/s, altitude %.1f±%.1f m\n",
				t, vaTrack.Mean(), vaTrack.StdDev(), altTrack.Mean(), altTrack.StdDev())
		}
	}

	ts := m.TrueState()
	fmt.Println("Final state:")
	fmt.Printf("\tPosition: %.1f N, %.1f E, %.1f m altitude\n", ts.North, ts.East, ts.Altitude)
	fmt.Printf("\tAirspeed: %.2f m/s, alpha %.2f°, beta %.2f°\n", ts.Va, ts.Alpha/deg, ts.Beta/deg)
	fmt.Printf("\tAttitude: roll %.1f°, pitch %.1f°, heading %.1f°\n", ts.Phi/deg, ts.Theta/deg, ts.Psi/deg)
	fmt.Println("Sensor statistics:")
	for _, k := range []string{
		"gyro x, rad/s", "gyro y, rad/s", "gyro z, rad/s",
		"accel x, m/s²", "accel y, m/s²", "accel z, m/s²",
		"static pressure, Pa", "differential pressure, Pa",
	} {
		s := noise.Summarize(channels[k])
		fmt.Printf("\t%-26s mean %12.4f, std dev %10.4f over %d samples\n", k, s.Mean, s.StdDev, s.N)
	}
}
