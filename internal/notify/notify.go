// Package notify delivers short operator-facing confirmations
// ("appointment created", ...) to whatever surface shows them.
package notify

import (
	"log"
	"sync"
	"time"
)

type Sink interface {
	Notify(message string)
}

// DefaultTTL is how long a toast stays visible.
const DefaultTTL = 3 * time.Second

// Toast keeps the latest message until it expires.
type Toast struct {
	mu      sync.Mutex
	message string
	expires time.Time
	ttl     time.Duration
	now     func() time.Time
}

func NewToast(ttl time.Duration) *Toast {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Toast{ttl: ttl, now: time.Now}
}

func (t *Toast) Notify(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.message = message
	t.expires = t.now().Add(t.ttl)
}

// Current returns the visible message, if any.
func (t *Toast) Current() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.message == "" || !t.now().Before(t.expires) {
		return "", false
	}
	return t.message, true
}

type Log struct{}

func (Log) Notify(message string) {
	log.Printf("notify: %s", message)
}

// Fanout sends every message to all sinks.
type Fanout []Sink

func (f Fanout) Notify(message string) {
	for _, s := range f {
		if s != nil {
			s.Notify(message)
		}
	}
}

// Recorder keeps every message; handy when something needs to assert on
// what the operator was shown.
type Recorder struct {
	mu       sync.Mutex
	Messages []string
}

func (r *Recorder) Notify(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, message)
}

func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[len(r.Messages)-1]
}
