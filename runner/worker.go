// Package runner implement the per-worker run lifecycle and the run-level
// summary merge. Each worker owns its scoring regions and its output sink;
// the only cross-worker synchronization is the summary merge at run close.
package runner

import (
	"fmt"

	"github.com/aogaki/NBox/config"
	"github.com/aogaki/NBox/geometry"
	"github.com/aogaki/NBox/sensitive"
)

var log = config.NamedLogger("runner")

const progressReportInterval = 1000

// State is a worker's lifecycle phase: Idle -> RunOpen -> RunClose, with
// events drained while the run is open.
type State int

// Worker lifecycle states.
const (
	Idle State = iota
	RunOpen
	RunClose
)

// Worker owns the scoring regions and the output sink of one execution
// context. All methods are hook points for the transport kernel and are
// called from that worker's goroutine only.
type Worker struct {
	id     int
	outDir string

	state   State
	regions []*sensitive.Region
	byID    map[int]*sensitive.Region
	sink    *Sink
	runID   int64
	events  int64
	summary Summary
}

// NewWorker constructor. Sinks are created under outDir.
func NewWorker(id int, outDir string) *Worker {
	return &Worker{
		id:     id,
		outDir: outDir,
		byID:   map[int]*sensitive.Region{},
	}
}

// ID ...
func (w *Worker) ID() int { return w.id }

// State returns the worker's lifecycle phase.
func (w *Worker) State() State { return w.state }

// NotifySensitiveRegions binds one scoring region per placed instance.
// Called once per worker before its first run.
func (w *Worker) NotifySensitiveRegions(placed []geometry.PlacedInstance) {
	w.regions = make([]*sensitive.Region, 0, len(placed))
	w.byID = make(map[int]*sensitive.Region, len(placed))
	for _, instance := range placed {
		region := sensitive.NewRegion(instance)
		w.regions = append(w.regions, region)
		w.byID[instance.DetectorID] = region
	}
}

// OnRunStart opens the worker's durable sink for the given run and arms the
// scoring regions. A sink creation failure is fatal for this worker.
func (w *Worker) OnRunStart(runID int64) error {
	sink, err := CreateSink(w.outDir, runID, w.id)
	if err != nil {
		return err
	}
	w.sink = sink
	w.runID = runID
	w.state = RunOpen
	w.events = 0
	w.summary = Summary{}
	for _, region := range w.regions {
		region.BeginEvent()
	}
	log.Debugf("worker %d: run %d open, sink %s", w.id, runID, sink.Path())
	return nil
}

// OnStepDeposit scores one step's energy deposit, in MeV, into the region of
// the given detector.
func (w *Worker) OnStepDeposit(detectorID int, edep float64, position geometry.Point, time float64) {
	if region, ok := w.byID[detectorID]; ok {
		region.AddDeposit(edep, position, time)
	}
}

// OnEventEnd drains every region holding a positive-energy hit into the sink
// and rearms all regions for the next event.
func (w *Worker) OnEventEnd(eventID int64) error {
	if w.state != RunOpen {
		return fmt.Errorf("worker %d: event %d ended outside an open run", w.id, eventID)
	}

	eventHasHit := false
	for _, region := range w.regions {
		hit, ok := region.EndEvent()
		if ok {
			eventHasHit = true
			record := Record{
				EventID:      eventID,
				DetectorID:   hit.DetectorID,
				DetectorName: hit.DetectorName,
				EdepKeV:      hit.Edep * 1e3,
				TimeNs:       hit.Time,
			}
			if err := w.sink.Append(record); err != nil {
				return err
			}
		}
		region.BeginEvent()
	}

	if eventHasHit {
		w.summary.EventsWithHit++
	}
	w.events++
	if w.events%progressReportInterval == 0 {
		log.Infof("worker %d: %d events processed", w.id, w.events)
	}
	return nil
}

// OnRunEnd flushes and closes the sink. The worker's summary stays available
// for the coordinator's merge. OnRunEnd may arrive mid-run; records already
// written stay intact.
func (w *Worker) OnRunEnd(runID int64) error {
	w.state = RunClose
	if w.sink == nil {
		return nil
	}
	err := w.sink.Close()
	log.Debugf("worker %d: run %d closed after %d event(s), %d record(s)",
		w.id, runID, w.events, w.sink.Rows())
	w.sink = nil
	return err
}

// Summary returns the worker's per-run statistics.
func (w *Worker) Summary() Summary { return w.summary }

// Events reports the number of events drained in the current run.
func (w *Worker) Events() int64 { return w.events }
