package runner

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Record is one sink row: a positive-energy hit in one detector during one
// event. Field names and units are the downstream analysis contract.
type Record struct {
	EventID      int64   `json:"eventID"`
	DetectorID   int     `json:"detectorID"`
	DetectorName string  `json:"detectorName"`
	EdepKeV      float64 `json:"energyDeposit_keV"`
	TimeNs       float64 `json:"time_ns"`
}

// SinkCreationError reports a failure to create a worker's output sink. It
// is fatal for that worker: simulation data is never dropped silently.
type SinkCreationError struct {
	Path string
	Err  error
}

// Error ...
func (e SinkCreationError) Error() string {
	return fmt.Sprintf("cannot create output sink %s: %v", e.Path, e.Err)
}

// Unwrap ...
func (e SinkCreationError) Unwrap() error { return e.Err }

// Sink is a durable structured-record file owned by one worker for one run,
// one JSON record per line. Records are complete lines once flushed, so a
// mid-run close leaves every already-written record intact.
type Sink struct {
	path string
	file *os.File
	buf  *bufio.Writer
	enc  *json.Encoder
	rows int64
}

// SinkName returns the sink file name for a run/worker pair.
func SinkName(runID int64, workerID int) string {
	return fmt.Sprintf("run%d_worker%d.jsonl", runID, workerID)
}

// CreateSink creates the sink file for the given run and worker under dir.
func CreateSink(dir string, runID int64, workerID int) (*Sink, error) {
	path := filepath.Join(dir, SinkName(runID, workerID))
	file, err := os.Create(path)
	if err != nil {
		return nil, SinkCreationError{Path: path, Err: err}
	}
	buf := bufio.NewWriter(file)
	return &Sink{
		path: path,
		file: file,
		buf:  buf,
		enc:  json.NewEncoder(buf),
	}, nil
}

// Append writes one record row.
func (s *Sink) Append(record Record) error {
	if err := s.enc.Encode(record); err != nil {
		return fmt.Errorf("sink %s: %w", s.path, err)
	}
	s.rows++
	return nil
}

// Close flushes and closes the sink. A zero-row sink closes into a valid
// empty record file.
func (s *Sink) Close() error {
	flushErr := s.buf.Flush()
	closeErr := s.file.Close()
	if flushErr != nil {
		return fmt.Errorf("sink %s: %w", s.path, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("sink %s: %w", s.path, closeErr)
	}
	return nil
}

// Path returns the sink file path.
func (s *Sink) Path() string { return s.path }

// Rows reports the number of records written so far.
func (s *Sink) Rows() int64 { return s.rows }
