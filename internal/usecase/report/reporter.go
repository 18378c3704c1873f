package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/garage-scheduler/internal/models"
	"github.com/BruksfildServices01/garage-scheduler/internal/session"
	"github.com/BruksfildServices01/garage-scheduler/internal/timezone"
)

// Source is the read side of the scheduler.
type Source interface {
	Snapshot() []models.Appointment
}

// Reporter derives read-only views over the appointment collection,
// always scoped to the session staff.
type Reporter struct {
	source Source
}

func NewReporter(source Source) *Reporter {
	return &Reporter{source: source}
}

// ======================================================
// RESULTS
// ======================================================

type Summary struct {
	Date         string  `json:"date"`
	Count        int     `json:"count"`
	Revenue      float64 `json:"revenue"`
	MaterialCost float64 `json:"material_cost"`
	Profit       float64 `json:"profit"`
}

type Bucket struct {
	From    time.Time `json:"from"`
	To      time.Time `json:"to"`
	Label   string    `json:"label"`
	Revenue float64   `json:"revenue"`
}

type Dashboard struct {
	Today          Summary             `json:"today"`
	NextUpcoming   *models.Appointment `json:"next_upcoming"`
	WeeklyRevenue  []Bucket            `json:"weekly_revenue"`
	RollingRevenue []Bucket            `json:"rolling_revenue"`
}

// ======================================================
// QUERIES
// ======================================================

// DailySummary covers [00:00 today, 00:00 tomorrow).
func (r *Reporter) DailySummary(sess session.Session) Summary {
	from := sess.StartOfToday()
	to := timezone.NextDay(from)

	var earned, material decimal.Decimal
	count := 0
	for _, ap := range r.mine(sess) {
		if !within(ap, from, to) {
			continue
		}
		count++
		earned = earned.Add(decimal.NewFromFloat(ap.Price))
		material = material.Add(decimal.NewFromFloat(ap.MaterialCost))
	}

	return Summary{
		Date:         from.Format("2006-01-02"),
		Count:        count,
		Revenue:      earned.InexactFloat64(),
		MaterialCost: material.InexactFloat64(),
		Profit:       earned.Sub(material).InexactFloat64(),
	}
}

// NextUpcoming returns the earliest appointment starting after now, on
// any future day.
func (r *Reporter) NextUpcoming(sess session.Session) (models.Appointment, bool) {
	now := sess.Now()

	var next models.Appointment
	found := false
	for _, ap := range r.mine(sess) {
		if !ap.StartTime.After(now) {
			continue
		}
		if !found || ap.StartTime.Before(next.StartTime) {
			next = ap
			found = true
		}
	}
	return next, found
}

// WeeklyRevenue returns one bucket per day for the last 7 days, oldest
// first, today included.
func (r *Reporter) WeeklyRevenue(sess session.Session) []Bucket {
	today := sess.StartOfToday()
	mine := r.mine(sess)

	out := make([]Bucket, 0, 7)
	for i := 6; i >= 0; i-- {
		from := today.AddDate(0, 0, -i)
		to := timezone.NextDay(from)
		out = append(out, Bucket{
			From:    from,
			To:      to,
			Label:   from.Format("Mon"),
			Revenue: revenue(mine, from, to),
		})
	}
	return out
}

// RollingRevenue returns four consecutive 7-day windows, oldest first.
// Window i ends with the day today-7i and starts six days before it.
func (r *Reporter) RollingRevenue(sess session.Session) []Bucket {
	today := sess.StartOfToday()
	mine := r.mine(sess)

	out := make([]Bucket, 0, 4)
	for i := 3; i >= 0; i-- {
		last := today.AddDate(0, 0, -7*i)
		from := last.AddDate(0, 0, -6)
		to := timezone.NextDay(last)
		out = append(out, Bucket{
			From:    from,
			To:      to,
			Label:   from.Format("Jan 2") + " - " + last.Format("Jan 2"),
			Revenue: revenue(mine, from, to),
		})
	}
	return out
}

func (r *Reporter) Dashboard(sess session.Session) Dashboard {
	d := Dashboard{
		Today:          r.DailySummary(sess),
		WeeklyRevenue:  r.WeeklyRevenue(sess),
		RollingRevenue: r.RollingRevenue(sess),
	}
	if next, ok := r.NextUpcoming(sess); ok {
		d.NextUpcoming = &next
	}
	return d
}

// ======================================================
// HELPERS
// ======================================================

func (r *Reporter) mine(sess session.Session) []models.Appointment {
	all := r.source.Snapshot()
	out := make([]models.Appointment, 0, len(all))
	for _, ap := range all {
		if ap.StaffID == sess.StaffID() {
			out = append(out, ap)
		}
	}
	return out
}

func within(ap models.Appointment, from, to time.Time) bool {
	return !ap.StartTime.Before(from) && ap.StartTime.Before(to)
}

func revenue(list []models.Appointment, from, to time.Time) float64 {
	sum := decimal.Zero
	for _, ap := range list {
		if within(ap, from, to) {
			sum = sum.Add(decimal.NewFromFloat(ap.Price))
		}
	}
	return sum.InexactFloat64()
}
