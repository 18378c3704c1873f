// Package session carries the operator context that every scheduling and
// reporting call is scoped to.
package session

import (
	"time"

	"github.com/BruksfildServices01/garage-scheduler/internal/models"
	"github.com/BruksfildServices01/garage-scheduler/internal/timezone"
)

type Session struct {
	Staff    models.Staff
	Location *time.Location
	Clock    func() time.Time
}

func New(staff models.Staff, loc *time.Location) Session {
	return Session{Staff: staff, Location: loc}
}

func (s Session) StaffID() int64 {
	return s.Staff.ID
}

func (s Session) Now() time.Time {
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	if s.Clock != nil {
		return s.Clock().In(loc)
	}
	return time.Now().In(loc)
}

func (s Session) StartOfToday() time.Time {
	return timezone.StartOfDay(s.Now())
}

// In converts t to the session location.
func (s Session) In(t time.Time) time.Time {
	if s.Location == nil {
		return t
	}
	return t.In(s.Location)
}

// At fixes the clock, mostly for jobs and tests.
func (s Session) At(now time.Time) Session {
	s.Clock = func() time.Time { return now }
	return s
}
