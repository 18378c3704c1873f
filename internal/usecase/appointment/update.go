package appointment

import (
	"context"

	"github.com/BruksfildServices01/garage-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/garage-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
	"github.com/BruksfildServices01/garage-scheduler/internal/session"
)

type UpdateAppointmentInput struct {
	ID int64
	CreateAppointmentInput
}

// UpdateAppointment replaces an appointment after the same checks as
// create. The appointment never conflicts with itself, and its end time
// is recomputed whatever the caller had.
func (s *Scheduler) UpdateAppointment(
	ctx context.Context,
	sess session.Session,
	in UpdateAppointmentInput,
) (models.Appointment, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.book.Get(in.ID)
	if !ok {
		return models.Appointment{}, domain.ErrNotFound
	}

	staffID := in.StaffID
	if staffID == 0 {
		staffID = current.StaffID
	}

	end, err := s.schedule(sess, in.ID, staffID, in.ServiceIDs, in.StartTime)
	if err != nil {
		return models.Appointment{}, err
	}

	ap := in.build(in.ID, staffID, end)
	s.book.Replace(ap)
	s.persist(ctx)

	s.notify.Notify("Appointment updated successfully!")
	s.audit.Dispatch(audit.Event{
		StaffID:  staffID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
