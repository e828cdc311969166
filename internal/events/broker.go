package events

import (
	"context"
	"log/slog"
	"sync"
)

// Handler receives a published event. Handlers run on the publisher's
// goroutine and must not block; any slow follow-up work (a refresh fetch)
// belongs on the handler's own goroutine.
type Handler func(CaseConfigsChanged)

// Broker is a process-wide, single-channel fan-out of CaseConfigsChanged
// events. Publish delivers synchronously, in subscription order, to every
// active subscriber before it returns. There is no replay: a late subscriber
// never sees earlier events. Filtering by case is the subscriber's job —
// every subscriber receives every event.
type Broker struct {
	mu     sync.Mutex
	subs   []*Subscription
	nextID uint64
	closed bool
	log    *slog.Logger
}

// NewBroker creates an empty broker.
func NewBroker(logger *slog.Logger) *Broker {
	return &Broker{
		log: logger.With("component", "events"),
	}
}

// Subscription is the handle returned by Subscribe. Cancel stops delivery to
// the handler; a component must cancel its subscription on teardown or it
// keeps receiving events it no longer cares about.
type Subscription struct {
	id      uint64
	broker  *Broker
	handler Handler
}

// Cancel removes the subscription from the broker. Safe to call more than
// once; events already being delivered are not interrupted.
func (s *Subscription) Cancel() {
	s.broker.unsubscribe(s.id)
}

// Subscribe registers a handler and returns its subscription handle.
// Subscribing on a closed broker returns a handle that never fires.
func (b *Broker) Subscribe(h Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &Subscription{id: b.nextID, broker: b, handler: h}
	if b.closed {
		return sub
	}

	b.subs = append(b.subs, sub)
	return sub
}

// Publish delivers the event to all currently subscribed handlers, in
// subscription order, before returning. The subscriber list is snapshotted
// under the lock so handlers may subscribe or cancel without deadlocking.
func (b *Broker) Publish(ctx context.Context, ev CaseConfigsChanged) {
	b.mu.Lock()
	snapshot := make([]*Subscription, len(b.subs))
	copy(snapshot, b.subs)
	b.mu.Unlock()

	for _, sub := range snapshot {
		sub.handler(ev)
	}

	b.log.DebugContext(ctx, "event published",
		slog.String("case_id", ev.CaseID.String()),
		slog.String("origin", ev.Origin),
		slog.Int("subscribers", len(snapshot)),
	)
}

// Close tears down all subscriptions. Further Publish calls deliver to
// nobody; further Subscribe calls return inert handles.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = nil
	b.closed = true
}

// SubscriberCount returns the number of active subscriptions.
func (b *Broker) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *Broker) unsubscribe(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}
