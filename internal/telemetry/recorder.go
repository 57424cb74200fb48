// Package telemetry records per-generation statistics of a session.
package telemetry

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"lifeboard/internal/session"
)

// GenerationRecord is one CSV row.
type GenerationRecord struct {
	Generation int    `csv:"generation"`
	Tick       uint64 `csv:"tick"`
	Population int    `csv:"population"`
	Births     int    `csv:"births"`
	Deaths     int    `csv:"deaths"`
	Mode       string `csv:"mode"`
}

// Recorder observes generations, optionally streaming them as CSV, and
// accumulates the run summary.
type Recorder struct {
	out           io.Writer
	closer        io.Closer
	headerWritten bool
	err           error

	populations []float64
	births      int
	deaths      int
	last        GenerationRecord
}

// NewRecorder streams CSV rows to out. A nil out only accumulates the
// summary.
func NewRecorder(out io.Writer) *Recorder {
	return &Recorder{out: out}
}

// Create opens path for CSV output. An empty path disables CSV output.
func Create(path string) (*Recorder, error) {
	if path == "" {
		return NewRecorder(nil), nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating stats csv: %w", err)
	}
	r := NewRecorder(f)
	r.closer = f
	return r, nil
}

// Observe records one generation. It has the session.Options.OnGeneration
// signature. The first write error is kept and later rows are skipped.
func (r *Recorder) Observe(g session.Generation) {
	rec := GenerationRecord{
		Generation: g.Number,
		Tick:       g.Tick,
		Population: g.Population,
		Births:     g.Births,
		Deaths:     g.Deaths,
		Mode:       g.Mode.String(),
	}
	r.populations = append(r.populations, float64(g.Population))
	r.births += g.Births
	r.deaths += g.Deaths
	r.last = rec

	if r.out == nil || r.err != nil {
		return
	}
	records := []GenerationRecord{rec}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.out); err != nil {
			r.err = fmt.Errorf("writing stats: %w", err)
			return
		}
		r.headerWritten = true
		return
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.out); err != nil {
		r.err = fmt.Errorf("writing stats: %w", err)
	}
}

// Err returns the first write error.
func (r *Recorder) Err() error { return r.err }

// Summary aggregates everything observed so far.
func (r *Recorder) Summary() Summary {
	return summarize(r.populations, r.births, r.deaths, r.last)
}

// Close closes the file opened by Create and reports any write error.
func (r *Recorder) Close() error {
	var closeErr error
	if r.closer != nil {
		closeErr = r.closer.Close()
		r.closer = nil
	}
	if r.err != nil {
		return r.err
	}
	if closeErr != nil {
		return fmt.Errorf("closing stats csv: %w", closeErr)
	}
	return nil
}
