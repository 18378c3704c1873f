package audit

import (
	"log"
	"sync"
)

type Event struct {
	StaffID  int64
	Action   string
	Entity   string
	EntityID *int64
	Metadata any
}

// Dispatcher hands events to a background worker so auditing never slows
// down or fails a scheduling call. A nil *Dispatcher drops everything.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
	done   chan struct{}

	// mu guards closed; senders hold the read side so queue is never
	// closed under them.
	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.logger.Log(ev); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		log.Println("audit dispatcher closed, dropping event")
		return
	}

	select {
	case d.queue <- ev:
	default:
		// full queue: drop, never block the caller
		log.Println("audit queue full, dropping event")
	}
}

// Close drains pending events and stops the worker. Events dispatched
// afterwards are dropped.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}

	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}
