// Package dispatch provides explicit event-to-handler binding for zone
// controllers. It replaces the declarative wiring a host binding framework
// would do: each binding names an event, a handler, optional static params,
// and whether to suppress the event's default action at invocation time.
package dispatch

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/ayaan-qadri/wagtail/internal/zone"
)

const (
	eventQueueSize     = 100
	publishMaxRetries  = 5
	publishBaseBackoff = 5 * time.Millisecond
)

var errQueueFull = errors.New("event queue full")

// Handler is a controller method bound to a named event.
type Handler func(*zone.Event)

// Binding wires one named event to one handler. Params are static data
// attached to the event for the duration of the handler call, independent
// of the live detail payload. PreventDefault is applied before the handler
// runs, so suppression happens even when the handler defers its state
// change.
type Binding struct {
	Event          string
	Handler        Handler
	Params         map[string]any
	PreventDefault bool
}

// Dispatcher delivers events to bound handlers. Dispatch is synchronous;
// Publish enqueues onto a single worker goroutine so deliveries are
// serialized, with a short exponential-backoff retry when the queue is
// momentarily full.
type Dispatcher struct {
	bindings map[string][]Binding
	log      *slog.Logger

	events chan *zone.Event

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.RWMutex
}

// NewDispatcher creates a dispatcher and starts its delivery worker.
func NewDispatcher() *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())

	d := &Dispatcher{
		bindings: make(map[string][]Binding),
		log:      slog.Default(),
		events:   make(chan *zone.Event, eventQueueSize),
		ctx:      ctx,
		cancel:   cancel,
	}

	d.wg.Add(1)
	go d.processEvents()

	return d
}

// Bind registers a binding. Multiple bindings may share an event name;
// they are invoked in registration order.
func (d *Dispatcher) Bind(b Binding) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bindings[b.Event] = append(d.bindings[b.Event], b)
}

// Dispatch synchronously invokes every binding registered for the event's
// name. An event with no bindings is dropped silently.
func (d *Dispatcher) Dispatch(evt *zone.Event) {
	d.mu.RLock()
	bindings := make([]Binding, len(d.bindings[evt.Name]))
	copy(bindings, d.bindings[evt.Name])
	d.mu.RUnlock()

	for _, b := range bindings {
		if b.PreventDefault {
			evt.PreventDefault()
		}

		// Attach the binding's static params for this call only.
		prev := evt.Params
		if b.Params != nil {
			evt.Params = b.Params
		}
		b.Handler(evt)
		evt.Params = prev
	}
}

// Publish enqueues an event for asynchronous delivery on the worker
// goroutine. A full queue is retried with exponential backoff; if the
// queue stays full the event is dropped with a diagnostic.
func (d *Dispatcher) Publish(evt *zone.Event) {
	enqueue := func() error {
		select {
		case d.events <- evt:
			return nil
		case <-d.ctx.Done():
			return backoff.Permanent(d.ctx.Err())
		default:
			return errQueueFull
		}
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = publishBaseBackoff

	err := backoff.Retry(enqueue, backoff.WithContext(backoff.WithMaxRetries(bo, publishMaxRetries), d.ctx))
	if err != nil {
		d.log.Warn("event queue full, dropping event", "event", evt.Name, "error", err)
	}
}

// Stop stops the delivery worker and waits for in-flight deliveries.
func (d *Dispatcher) Stop() {
	d.cancel()
	close(d.events)
	d.wg.Wait()
}

// processEvents is the delivery goroutine.
func (d *Dispatcher) processEvents() {
	defer d.wg.Done()

	for evt := range d.events {
		d.Dispatch(evt)
	}
}
