package simlog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/westphae/mavsim/dynamics"
	"github.com/westphae/mavsim/params"
)

func TestLoggerRows(t *testing.T) {
	var buf bytes.Buffer
	p := map[string]interface{}{"b": 2.0, "a": 1.0, "c": 3.0}
	l, err := New(&buf, p)
	if err != nil {
		t.Fatal(err)
	}
	if err = l.Log(); err != nil {
		t.Fatal(err)
	}
	p["a"] = 1.5
	if err = l.Log(); err != nil {
		t.Fatal(err)
	}
	if err = l.Close(); err != nil {
		t.Errorf("Close on a writer: %v", err)
	}

	want := "a,b,c\n1.000000,2.000000,3.000000\n1.500000,2.000000,3.000000\n"
	if got := buf.String(); got != want {
		t.Errorf("log output\n%s\nwant\n%s", got, want)
	}
}

func TestLogSimulation(t *testing.T) {
	m, err := dynamics.New(params.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	fn := filepath.Join(t.TempDir(), "run.csv")
	p := NewLogMap()
	l, err := Create(fn, p)
	if err != nil {
		t.Fatal(err)
	}

	delta := dynamics.Delta{Elevator: -0.125, Throttle: 0.3144}
	for i := 0; i < 10; i++ {
		m.Update(delta, dynamics.Wind{})
		s := Sample{T: float64(i+1) * m.Ts(), Delta: delta, Truth: m.TrueState(), Sensors: m.Sensors()}
		UpdateLogMap(&s, p)
		if err = l.Log(); err != nil {
			t.Fatal(err)
		}
	}
	if err = l.Close(); err != nil {
		t.Fatal(err)
	}

	buf, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(buf)), "\n")
	if len(lines) != 11 {
		t.Fatalf("%d lines in log, want 11", len(lines))
	}
	header := strings.Split(lines[0], ",")
	if len(header) != len(p) {
		t.Errorf("%d columns, want %d", len(header), len(p))
	}
	for i, line := range lines[1:] {
		if n := len(strings.Split(line, ",")); n != len(header) {
			t.Errorf("row %d has %d fields, want %d", i, n, len(header))
		}
		if strings.Contains(line, "NaN") {
			t.Errorf("row %d has NaN: %s", i, line)
		}
	}

	col := -1
	for i, k := range header {
		if k == "T" {
			col = i
		}
	}
	if col < 0 {
		t.Fatal("no time column")
	}
	if last := strings.Split(lines[10], ",")[col]; last != "0.100000" {
		t.Errorf("last time %s, want 0.100000", last)
	}
}

func TestCreateBadPath(t *testing.T) {
	if _, err := Create(filepath.Join(t.TempDir(), "missing", "run.csv"), NewLogMap()); err == nil {
		t.Error("Create succeeded in a missing directory")
	}
}
