package appointment

import (
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/garage-scheduler/internal/dto"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
	"github.com/BruksfildServices01/garage-scheduler/internal/session"
	"github.com/BruksfildServices01/garage-scheduler/internal/timezone"
)

// ======================================================
// CALENDAR LISTINGS
// ======================================================

// ListAppointmentsByDate lists the session staff's appointments starting
// on the day of date, in the session location.
func (s *Scheduler) ListAppointmentsByDate(
	sess session.Session,
	date time.Time,
) []dto.AppointmentListDTO {

	from := timezone.StartOfDay(sess.In(date))
	return s.between(sess, from, timezone.NextDay(from))
}

// ListAppointmentsByWeek returns seven day buckets for the week holding
// date, starting on Sunday. Empty days are kept.
func (s *Scheduler) ListAppointmentsByWeek(
	sess session.Session,
	date time.Time,
) []dto.DayAppointmentsDTO {

	start := timezone.StartOfWeek(sess.In(date))
	return s.days(sess, start, 7)
}

// ListAppointmentsByMonth returns one bucket per calendar day of the
// month.
func (s *Scheduler) ListAppointmentsByMonth(
	sess session.Session,
	year int,
	month time.Month,
) []dto.DayAppointmentsDTO {

	loc := sess.Now().Location()
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	days := start.AddDate(0, 1, -1).Day()
	return s.days(sess, start, days)
}

func (s *Scheduler) days(sess session.Session, start time.Time, n int) []dto.DayAppointmentsDTO {
	out := make([]dto.DayAppointmentsDTO, 0, n)
	day := start
	for i := 0; i < n; i++ {
		next := timezone.NextDay(day)
		out = append(out, dto.DayAppointmentsDTO{
			Date:         day.Format("2006-01-02"),
			Appointments: s.between(sess, day, next),
		})
		day = next
	}
	return out
}

func (s *Scheduler) between(sess session.Session, from, to time.Time) []dto.AppointmentListDTO {
	s.mu.Lock()
	list := s.book.Between(sess.StaffID(), from, to)
	s.mu.Unlock()

	out := make([]dto.AppointmentListDTO, 0, len(list))
	for _, ap := range list {
		out = append(out, s.view(sess, ap))
	}
	return out
}

// ======================================================
// VIEW
// ======================================================

func (s *Scheduler) view(sess session.Session, ap models.Appointment) dto.AppointmentListDTO {
	names := make([]string, 0, len(ap.ServiceIDs))
	for _, id := range ap.ServiceIDs {
		if svc, ok := s.catalog.Service(id); ok {
			names = append(names, svc.Name)
		}
	}

	return dto.AppointmentListDTO{
		ID:           ap.ID,
		StartTime:    sess.In(ap.StartTime),
		EndTime:      sess.In(ap.EndTime),
		ClientName:   ap.ClientName,
		ServiceIDs:   ap.ServiceIDs,
		ServiceNames: names,
		Price:        ap.Price,
		MaterialCost: ap.MaterialCost,
		Profit:       ap.Profit(),
		Vehicle:      Vehicle(ap),
		Notes:        ap.Notes,
	}
}

// View renders a single appointment the way the listings do.
func (s *Scheduler) View(sess session.Session, ap models.Appointment) dto.AppointmentListDTO {
	return s.view(sess, ap)
}

// Vehicle formats make, model and year, skipping what is missing.
func Vehicle(ap models.Appointment) string {
	parts := make([]string, 0, 3)
	if ap.CarYear > 0 {
		parts = append(parts, strconv.Itoa(ap.CarYear))
	}
	if ap.CarMake != "" {
		parts = append(parts, ap.CarMake)
	}
	if ap.CarModel != "" {
		parts = append(parts, ap.CarModel)
	}
	return strings.Join(parts, " ")
}
