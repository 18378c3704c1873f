package appointment

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/BruksfildServices01/garage-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/garage-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/garage-scheduler/internal/domain/ident"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
	"github.com/BruksfildServices01/garage-scheduler/internal/notify"
	"github.com/BruksfildServices01/garage-scheduler/internal/session"
)

// ======================================================
// SCHEDULER
// ======================================================

// Scheduler is the only writer of the appointment collection. Every
// mutation validates first and touches state last, so a failed call
// leaves the collection as it was.
type Scheduler struct {
	mu   sync.Mutex
	book *domain.Book

	repo    domain.Repository
	catalog domain.Catalog
	notify  notify.Sink
	audit   *audit.Dispatcher
	ids     *ident.Generator
}

func NewScheduler(
	repo domain.Repository,
	catalog domain.Catalog,
	sink notify.Sink,
	dispatcher *audit.Dispatcher,
	ids *ident.Generator,
) *Scheduler {
	if sink == nil {
		sink = notify.Log{}
	}
	if ids == nil {
		ids = ident.NewGenerator(nil)
	}

	return &Scheduler{
		book:    domain.NewBook(nil),
		repo:    repo,
		catalog: catalog,
		notify:  sink,
		audit:   dispatcher,
		ids:     ids,
	}
}

// Load replaces the collection with the persisted one. On failure the
// current collection is kept and the error returned.
func (s *Scheduler) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	appointments, _, err := s.repo.LoadAppointments(ctx)
	if err != nil {
		log.Printf("scheduler: failed to load appointments: %v", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.book = domain.NewBook(appointments)
	for _, ap := range appointments {
		s.ids.Observe(ap.ID)
	}
	return nil
}

// Snapshot returns a copy of every appointment in start order.
func (s *Scheduler) Snapshot() []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.All()
}

func (s *Scheduler) Appointment(id int64) (models.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.Get(id)
}

// Save writes the current collection, e.g. after a migration.
func (s *Scheduler) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.repo == nil {
		return nil
	}
	return s.repo.SaveAppointments(ctx, s.book.All())
}

// ======================================================
// VALIDATION PIPELINE
// ======================================================

// schedule runs the shared create/update checks and returns the derived
// end time. exclude is the id of the appointment being moved, 0 on create.
func (s *Scheduler) schedule(
	sess session.Session,
	exclude int64,
	staffID int64,
	serviceIDs []int64,
	start time.Time,
) (time.Time, error) {

	// --------------------------------------------------
	// 1. Services
	// --------------------------------------------------
	services, err := s.catalog.ResolveServices(serviceIDs)
	if err != nil {
		return time.Time{}, err
	}
	if len(services) == 0 {
		return time.Time{}, domain.ErrNoServicesSelected
	}

	// --------------------------------------------------
	// 2. Not in the past
	// --------------------------------------------------
	if err := domain.CheckStart(start, sess.Now()); err != nil {
		return time.Time{}, err
	}

	// --------------------------------------------------
	// 3. End time from durations
	// --------------------------------------------------
	end := domain.EndTime(start, services)

	// --------------------------------------------------
	// 4. Conflict for the same staff
	// --------------------------------------------------
	if other, found := s.book.Conflict(staffID, start, end, exclude); found {
		s.audit.Dispatch(audit.Event{
			StaffID: staffID,
			Action:  "appointment_conflict",
			Entity:  "appointment",
			Metadata: map[string]any{
				"start":       start,
				"end":         end,
				"conflicting": other.ID,
			},
		})
		return time.Time{}, domain.ErrTimeConflict
	}

	return end, nil
}

// saveTimeout bounds a write once the mutation is already in memory.
const saveTimeout = 10 * time.Second

// persist outlives the caller's cancellation: the in-memory change has
// already been made and reported.
func (s *Scheduler) persist(ctx context.Context) {
	if s.repo == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), saveTimeout)
	defer cancel()

	if err := s.repo.SaveAppointments(ctx, s.book.All()); err != nil {
		log.Printf("scheduler: failed to save appointments: %v", err)
	}
}
