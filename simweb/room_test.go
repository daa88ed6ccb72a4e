package simweb

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/westphae/mavsim/dynamics"
	"github.com/westphae/mavsim/params"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	u := "ws" + strings.TrimPrefix(srv.URL, "http")
	c, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", u, err)
	}
	return c
}

// publishUntil publishes frames from m every few milliseconds until stop is closed.
func publishUntil(p *Publisher, m *dynamics.MAV, stop <-chan struct{}) {
	var t float64
	for {
		select {
		case <-stop:
			return
		case <-time.After(5 * time.Millisecond):
		}
		m.Update(dynamics.Delta{Throttle: 0.5}, dynamics.Wind{})
		t += m.Ts()
		if err := p.Publish(t, dynamics.Delta{Throttle: 0.5}, m.TrueState(), m.Sensors()); err != nil {
			return
		}
	}
}

func TestRoomBroadcast(t *testing.T) {
	r := NewRoom()
	go r.Run()
	defer r.Stop()
	srv := httptest.NewServer(r)
	defer srv.Close()

	m, err := dynamics.New(params.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	id := uuid.New()
	p := NewPublisher(r, id)

	c1 := dial(t, srv)
	defer c1.Close()
	c2 := dial(t, srv)
	defer c2.Close()

	stop := make(chan struct{})
	go publishUntil(p, m, stop)
	defer close(stop)

	for i, c := range []*websocket.Conn{c1, c2} {
		c.SetReadDeadline(time.Now().Add(5 * time.Second))
		_, msg, err := c.ReadMessage()
		if err != nil {
			t.Fatalf("client %d: %v", i, err)
		}
		var f Frame
		if err = json.Unmarshal(msg, &f); err != nil {
			t.Fatalf("client %d: bad frame %s: %v", i, msg, err)
		}
		if f.VehicleID != id {
			t.Errorf("client %d: vehicle %s, want %s", i, f.VehicleID, id)
		}
		if f.T <= 0 || f.Truth.Va < 20 || f.Delta.Throttle != 0.5 {
			t.Errorf("client %d: implausible frame %+v", i, f)
		}
	}
}

func TestPublisherID(t *testing.T) {
	r := NewRoom()
	p := NewPublisher(r, uuid.Nil)
	if p.VehicleID() == uuid.Nil {
		t.Error("nil vehicle ID not replaced")
	}
	if q := NewPublisher(r, uuid.Nil); q.VehicleID() == p.VehicleID() {
		t.Error("two publishers share a generated vehicle ID")
	}
}

func TestPublishAfterStop(t *testing.T) {
	r := NewRoom()
	r.Stop()

	p := NewPublisher(r, uuid.Nil)
	if err := p.Publish(0, dynamics.Delta{}, dynamics.TrueState{}, dynamics.Sensors{}); err == nil {
		t.Error("Publish succeeded on a stopped room")
	}
}
