package appointment

import (
	"time"

	"github.com/BruksfildServices01/garage-scheduler/internal/models"
	"github.com/BruksfildServices01/garage-scheduler/internal/timezone"
)

// ===============================
// Scheduling rules
// ===============================

// TotalDuration sums the service durations in minutes.
func TotalDuration(services []models.Service) int {
	total := 0
	for _, s := range services {
		total += s.Duration
	}
	return total
}

func EndTime(start time.Time, services []models.Service) time.Time {
	return start.Add(time.Duration(TotalDuration(services)) * time.Minute)
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// Touching boundaries do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// CheckStart rejects a start before 00:00 of now's day.
func CheckStart(start, now time.Time) error {
	if start.Before(timezone.StartOfDay(now)) {
		return ErrPastDate
	}
	return nil
}
