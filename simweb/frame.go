package simweb

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/westphae/mavsim/dynamics"
)

// Port is the default port for telemetry publication.
const Port = 8000

// Frame is the telemetry message sent for one timestep of one vehicle.
type Frame struct {
	VehicleID uuid.UUID
	T         float64
	Delta     dynamics.Delta
	Truth     dynamics.TrueState
	Sensors   dynamics.Sensors
}

// Publisher turns a vehicle's state into frames and broadcasts them.
type Publisher struct {
	room *Room
	id   uuid.UUID
}

// NewPublisher returns a Publisher for the vehicle id.  A nil id is replaced
// by a fresh random one.
func NewPublisher(r *Room, id uuid.UUID) *Publisher {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Publisher{room: r, id: id}
}

// VehicleID returns the vehicle ID stamped on every frame.
func (p *Publisher) VehicleID() uuid.UUID {
	return p.id
}

// Publish broadcasts a frame for time t.
func (p *Publisher) Publish(t float64, delta dynamics.Delta, truth dynamics.TrueState, sensors dynamics.Sensors) error {
	msg, err := json.Marshal(Frame{VehicleID: p.id, T: t, Delta: delta, Truth: truth, Sensors: sensors})
	if err != nil {
		return fmt.Errorf("error marshalling frame: %w", err)
	}
	if !p.room.Broadcast(msg) {
		return fmt.Errorf("room for vehicle %s is closed", p.id)
	}
	return nil
}
