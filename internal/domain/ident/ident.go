package ident

import (
	"sync"
	"time"
)

// Generator hands out creation-time ids (Unix milliseconds) that are
// strictly increasing even when two arrive in the same millisecond.
type Generator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewGenerator(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// Observe makes sure later ids are greater than id.
func (g *Generator) Observe(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if id > g.last {
		g.last = id
	}
}

func (g *Generator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
