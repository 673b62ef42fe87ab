package events

import (
	"context"
	"slices"
	"time"

	"github.com/alitto/pond/v2"

	"github.com/dtroode/cipherledger-server/internal/logger"
	"github.com/dtroode/cipherledger-server/internal/model"
)

// DefaultDeliveryTimeout bounds the delivery of one batch to one sink.
const DefaultDeliveryTimeout = 5 * time.Second

type sinkLane struct {
	sink model.EventSink
	pool pond.Pool
}

// Dispatcher publishes committed events to a set of sinks on a worker pool.
// Each sink is served by a lane with a single worker, so a sink observes
// batches in the order they were published.
type Dispatcher struct {
	pool    pond.Pool
	lanes   []sinkLane
	timeout time.Duration
	logger  *logger.Logger
}

// NewDispatcher creates a Dispatcher backed by a pool of workers with a queue
// of queueSize pending batches.
func NewDispatcher(workers, queueSize int, logger *logger.Logger, sinks ...model.EventSink) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}

	pool := pond.NewPool(workers, pond.WithQueueSize(queueSize))

	lanes := make([]sinkLane, 0, len(sinks))
	for _, sink := range sinks {
		lanes = append(lanes, sinkLane{sink: sink, pool: pool.NewSubpool(1)})
	}

	return &Dispatcher{
		pool:    pool,
		lanes:   lanes,
		timeout: DefaultDeliveryTimeout,
		logger:  logger,
	}
}

// Publish implements model.EventPublisher. It never blocks the caller: when
// the queue is full the batch is dropped for that sink and a warning logged.
func (d *Dispatcher) Publish(_ context.Context, events ...model.Event) {
	if len(events) == 0 {
		return
	}

	batch := slices.Clone(events)
	for _, lane := range d.lanes {
		if _, ok := lane.pool.TrySubmit(func() {
			d.deliver(lane.sink, batch)
		}); !ok {
			d.logger.Warn("Event dispatcher: queue full, batch dropped",
				"sink", lane.sink.Name(), "first_id", batch[0].ID, "count", len(batch))
		}
	}
}

// deliver runs detached from the publishing request, which may already be
// finished by the time the lane picks the batch up.
func (d *Dispatcher) deliver(sink model.EventSink, batch []model.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	for _, event := range batch {
		if err := sink.Deliver(ctx, event); err != nil {
			d.logger.Warn("Event dispatcher: delivery failed",
				"sink", sink.Name(), "event_id", event.ID, "kind", event.Kind, "error", err)
		}
	}
}

// Stop waits for queued batches to be delivered and stops the workers.
func (d *Dispatcher) Stop() {
	for _, lane := range d.lanes {
		lane.pool.StopAndWait()
	}
	d.pool.StopAndWait()
}
