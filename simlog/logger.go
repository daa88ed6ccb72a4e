// Package simlog writes simulation runs to CSV, one row per timestep.
package simlog

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Logger writes the values of a log map as CSV rows.  The columns are the
// sorted keys of the map at creation; each Log call writes the current values.
type Logger struct {
	w      io.Writer
	c      io.Closer
	logMap map[string]interface{}
	Header []string
	fmt    string
	vals   []interface{}
}

// New returns a Logger writing to w and writes the header row.
func New(w io.Writer, logMap map[string]interface{}) (l *Logger, err error) {
	l = &Logger{w: w, logMap: logMap}

	l.Header = make([]string, 0, len(logMap))
	for k := range l.logMap {
		l.Header = append(l.Header, k)
	}
	sort.Strings(l.Header)

	if _, err = fmt.Fprint(l.w, strings.Join(l.Header, ","), "\n"); err != nil {
		return nil, fmt.Errorf("error writing log header: %w", err)
	}
	s := strings.Repeat("%f,", len(l.Header))
	l.fmt = strings.Join([]string{strings.TrimSuffix(s, ","), "\n"}, "")
	l.vals = make([]interface{}, len(l.Header))
	return l, nil
}

// Create returns a Logger writing to a new file filename.
func Create(filename string, logMap map[string]interface{}) (*Logger, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("error creating log %s: %w", filename, err)
	}
	l, err := New(f, logMap)
	if err != nil {
		f.Close()
		return nil, err
	}
	l.c = f
	return l, nil
}

// Log writes one row with the log map's current values.
func (l *Logger) Log() error {
	for i, k := range l.Header {
		l.vals[i] = l.logMap[k]
	}
	_, err := fmt.Fprintf(l.w, l.fmt, l.vals...)
	return err
}

// Close closes the underlying file if the Logger opened it.
func (l *Logger) Close() error {
	if l.c == nil {
		return nil
	}
	return l.c.Close()
}
