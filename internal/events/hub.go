package events

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/dtroode/cipherledger-server/internal/model"
)

// DefaultSubscriberBuffer is the channel capacity of a hub subscription.
const DefaultSubscriberBuffer = 64

// Hub fans committed events out to in-process subscribers.
//
// Delivery never blocks: an event that does not fit into a subscriber's buffer
// is dropped for that subscriber. Subscribers recover gaps from the persisted
// event log, using the IDs of the events they did receive as cursors.
type Hub struct {
	subscribers *xsync.Map[uint64, chan model.Event]
	lastID      atomic.Uint64
	buffer      int
}

// NewHub creates a Hub whose subscriptions buffer up to buffer events.
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}

	return &Hub{
		subscribers: xsync.NewMap[uint64, chan model.Event](),
		buffer:      buffer,
	}
}

// Name implements model.EventSink.
func (h *Hub) Name() string {
	return "hub"
}

// Subscribe registers a new subscriber. The returned cancel function
// unregisters it and may be called more than once. The channel is never
// closed.
func (h *Hub) Subscribe() (<-chan model.Event, func()) {
	id := h.lastID.Add(1)
	ch := make(chan model.Event, h.buffer)
	h.subscribers.Store(id, ch)

	return ch, sync.OnceFunc(func() {
		h.subscribers.Delete(id)
	})
}

// Deliver implements model.EventSink.
func (h *Hub) Deliver(_ context.Context, event model.Event) error {
	h.subscribers.Range(func(_ uint64, ch chan model.Event) bool {
		select {
		case ch <- event:
		default:
		}
		return true
	})

	return nil
}

// Subscribers reports the number of active subscriptions.
func (h *Hub) Subscribers() int {
	return h.subscribers.Size()
}
