package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/garage-scheduler/internal/audit"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
	"github.com/BruksfildServices01/garage-scheduler/internal/session"
)

// ======================================================
// INPUT
// ======================================================

// CreateAppointmentInput carries everything the operator enters. The id
// and end time are always derived.
type CreateAppointmentInput struct {
	ClientName string
	StaffID    int64 // 0 means the session staff
	ServiceIDs []int64
	StartTime  time.Time

	Price        float64
	MaterialCost float64
	Notes        string

	CarMake  string
	CarModel string
	CarYear  int
}

func (in CreateAppointmentInput) build(id, staffID int64, end time.Time) models.Appointment {
	return models.Appointment{
		ID:           id,
		ClientName:   in.ClientName,
		StaffID:      staffID,
		ServiceIDs:   append([]int64(nil), in.ServiceIDs...),
		StartTime:    in.StartTime,
		EndTime:      end,
		Price:        in.Price,
		MaterialCost: in.MaterialCost,
		Notes:        in.Notes,
		CarMake:      in.CarMake,
		CarModel:     in.CarModel,
		CarYear:      in.CarYear,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (s *Scheduler) CreateAppointment(
	ctx context.Context,
	sess session.Session,
	in CreateAppointmentInput,
) (models.Appointment, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	staffID := in.StaffID
	if staffID == 0 {
		staffID = sess.StaffID()
	}

	end, err := s.schedule(sess, 0, staffID, in.ServiceIDs, in.StartTime)
	if err != nil {
		return models.Appointment{}, err
	}

	ap := in.build(s.ids.Next(), staffID, end)
	s.book.Insert(ap)
	s.persist(ctx)

	s.notify.Notify("Appointment created successfully!")
	s.audit.Dispatch(audit.Event{
		StaffID:  staffID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
