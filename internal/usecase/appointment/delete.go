package appointment

import (
	"context"

	"github.com/BruksfildServices01/garage-scheduler/internal/audit"
	"github.com/BruksfildServices01/garage-scheduler/internal/session"
)

// DeleteAppointment removes the appointment without asking anything;
// confirmation belongs to whoever calls it. It reports whether an
// appointment was removed.
func (s *Scheduler) DeleteAppointment(
	ctx context.Context,
	sess session.Session,
	id int64,
) bool {

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.book.Remove(id) {
		return false
	}
	s.persist(ctx)

	s.notify.Notify("Appointment deleted.")
	s.audit.Dispatch(audit.Event{
		StaffID:  sess.StaffID(),
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	return true
}
