// Package jobs runs the periodic reminder and end-of-day digest.
package jobs

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/BruksfildServices01/garage-scheduler/internal/notify"
	"github.com/BruksfildServices01/garage-scheduler/internal/session"
	"github.com/BruksfildServices01/garage-scheduler/internal/usecase/report"
)

const (
	ReminderSpec = "* * * * *"
	DigestSpec   = "55 23 * * *"
)

type Runner struct {
	reporter *report.Reporter
	sink     notify.Sink
	sess     session.Session
	lead     time.Duration

	mu       sync.Mutex
	reminded map[int64]time.Time // id -> start time

	cron *cron.Cron
}

func NewRunner(
	reporter *report.Reporter,
	sink notify.Sink,
	sess session.Session,
	lead time.Duration,
) *Runner {
	if sink == nil {
		sink = notify.Log{}
	}
	return &Runner{
		reporter: reporter,
		sink:     sink,
		sess:     sess,
		lead:     lead,
		reminded: map[int64]time.Time{},
	}
}

// Start schedules both jobs in the session location.
func (r *Runner) Start() error {
	loc := r.sess.Location
	if loc == nil {
		loc = time.Local
	}
	c := cron.New(cron.WithLocation(loc))

	if _, err := c.AddFunc(ReminderSpec, func() { r.Remind(r.sess) }); err != nil {
		return fmt.Errorf("jobs: add reminder: %w", err)
	}
	if _, err := c.AddFunc(DigestSpec, func() { r.Digest(r.sess) }); err != nil {
		return fmt.Errorf("jobs: add digest: %w", err)
	}

	c.Start()
	r.cron = c
	log.Println("jobs: reminder and digest scheduled")
	return nil
}

// Stop waits for running jobs to finish or ctx to end.
func (r *Runner) Stop(ctx context.Context) {
	if r.cron == nil {
		return
	}
	select {
	case <-r.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// Remind notifies once about the next appointment when it starts within
// the lead time. It reports whether a reminder went out.
func (r *Runner) Remind(sess session.Session) bool {
	now := sess.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	// started appointments can never be next again
	for id, start := range r.reminded {
		if !start.After(now) {
			delete(r.reminded, id)
		}
	}

	next, ok := r.reporter.NextUpcoming(sess)
	if !ok {
		return false
	}
	if next.StartTime.Sub(now) > r.lead {
		return false
	}
	if _, done := r.reminded[next.ID]; done {
		return false
	}
	r.reminded[next.ID] = next.StartTime

	msg := fmt.Sprintf("Next up at %s: %s", sess.In(next.StartTime).Format("15:04"), next.ClientName)
	r.sink.Notify(msg)
	log.Printf("jobs: reminder sent for appointment %d", next.ID)
	return true
}

// Digest logs the day's totals.
func (r *Runner) Digest(sess session.Session) report.Summary {
	s := r.reporter.DailySummary(sess)
	log.Printf(
		"jobs: digest %s appointments=%d revenue=%.2f parts=%.2f profit=%.2f",
		s.Date, s.Count, s.Revenue, s.MaterialCost, s.Profit,
	)
	return s
}
