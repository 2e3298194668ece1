package runner

import (
	"context"
	"sync"

	"github.com/aogaki/NBox/geometry"
)

// EventFunc simulates one event against a worker's hooks, calling
// OnStepDeposit zero or more times. It is supplied by the transport kernel
// collaborator and runs concurrently, one invocation per worker at a time.
type EventFunc func(eventID int64, w *Worker)

// Coordinator runs a fixed pool of workers against a shared read-only
// geometry and merges their summaries at the run-close barrier.
type Coordinator struct {
	outDir  string
	workers int

	mu     sync.Mutex
	merged Summary
}

// NewCoordinator constructor.
func NewCoordinator(outDir string, workers int) *Coordinator {
	return &Coordinator{outDir: outDir, workers: workers}
}

// Run executes one run of nEvents events across the fixed worker pool. Each
// worker opens its own sink, drains events from a shared queue, and closes at
// run end; a canceled ctx stops the drain early without corrupting records
// already written. Summaries merge at the close barrier and the merged
// result is reported once. The first worker error is returned; a sink
// creation failure aborts only the failing worker.
func (c *Coordinator) Run(
	ctx context.Context,
	runID int64,
	nEvents int64,
	placed []geometry.PlacedInstance,
	simulate EventFunc,
) (Summary, error) {
	c.mu.Lock()
	c.merged = Summary{}
	c.mu.Unlock()

	// The event producer blocks on the queue, so it needs an exit path even
	// when every worker aborts before the queue drains.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan int64)
	go func() {
		defer close(events)
		for eventID := int64(0); eventID < nEvents; eventID++ {
			select {
			case events <- eventID:
			case <-ctx.Done():
				return
			}
		}
	}()

	log.Infof("Run %d: %d event(s) across %d worker(s)", runID, nEvents, c.workers)

	var wg sync.WaitGroup
	errs := make(chan error, 2*c.workers)
	var totalEvents int64
	for id := 0; id < c.workers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			worker := NewWorker(id, c.outDir)
			worker.NotifySensitiveRegions(placed)
			if err := worker.OnRunStart(runID); err != nil {
				errs <- err
				return
			}

			for eventID := range events {
				simulate(eventID, worker)
				if err := worker.OnEventEnd(eventID); err != nil {
					errs <- err
					break
				}
			}

			if err := worker.OnRunEnd(runID); err != nil {
				errs <- err
			}

			c.mu.Lock()
			c.merged.Merge(worker.Summary())
			totalEvents += worker.Events()
			c.mu.Unlock()
		}(id)
	}
	wg.Wait()
	close(errs)

	var firstErr error
	for err := range errs {
		if firstErr == nil {
			firstErr = err
		} else {
			log.Errorf("run %d: %v", runID, err)
		}
	}

	c.mu.Lock()
	merged := c.merged
	c.mu.Unlock()

	log.Infof("========== Run Summary ==========")
	log.Infof(" Run ID: %d", runID)
	log.Infof(" Number of events: %d", totalEvents)
	log.Infof(" Events with hits: %d", merged.EventsWithHit)
	log.Infof("=================================")

	return merged, firstErr
}
