package params

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config bundles everything a simulation needs to be constructed.
type Config struct {
	Ts       float64 // Simulation timestep, s
	Aircraft *Aircraft
	Sensor   *Sensor
}

// DefaultConfig returns the Aerosonde with default sensors at 100 Hz.
func DefaultConfig() *Config {
	return &Config{
		Ts:       0.01,
		Aircraft: DefaultAerosonde(),
		Sensor:   DefaultSensor(),
	}
}

// Validate checks the timestep and both parameter tables.
func (c *Config) Validate() error {
	if !(c.Ts > 0) {
		return fmt.Errorf("simulation timestep must be positive, got %v", c.Ts)
	}
	if c.Aircraft == nil || c.Sensor == nil {
		return fmt.Errorf("config is missing aircraft or sensor parameters")
	}
	if err := c.Aircraft.Validate(); err != nil {
		return err
	}
	return c.Sensor.Validate()
}

// Load reads a JSON config from filename.  Values absent from the file keep
// their defaults, so a file need only list what it changes.
func Load(filename string) (c *Config, err error) {
	errstr := "error reading config from %s: %w"
	c = DefaultConfig()

	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf(errstr, filename, err)
	}
	if err = json.Unmarshal(buf, c); err != nil {
		return nil, fmt.Errorf(errstr, filename, err)
	}
	if err = c.Validate(); err != nil {
		return nil, fmt.Errorf(errstr, filename, err)
	}
	return c, nil
}

// Save writes the config as indented JSON to filename.
func (c *Config) Save(filename string) error {
	buf, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}
	if err = os.WriteFile(filename, buf, 0644); err != nil {
		return fmt.Errorf("error saving config to %s: %w", filename, err)
	}
	return nil
}
