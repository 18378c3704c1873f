package handlers

import (
	"time"

	"github.com/BruksfildServices01/garage-scheduler/internal/session"
)

// --------------------------------------------------
// Dates are entered in the session location
// --------------------------------------------------

func sessionLocation(sess session.Session) *time.Location {
	if sess.Location != nil {
		return sess.Location
	}
	return time.Local
}

func parseDateIn(sess session.Session, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, sessionLocation(sess))
}

func parseDateTimeIn(sess session.Session, dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, sessionLocation(sess))
}
