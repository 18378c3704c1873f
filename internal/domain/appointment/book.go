package appointment

import (
	"slices"
	"time"

	"github.com/BruksfildServices01/garage-scheduler/internal/models"
)

// Book is the appointment collection. It is kept sorted by start time
// ascending after every mutation. Not safe for concurrent use.
type Book struct {
	items []models.Appointment
}

func NewBook(items []models.Appointment) *Book {
	b := &Book{items: make([]models.Appointment, 0, len(items))}
	for _, ap := range items {
		b.items = append(b.items, ap.Clone())
	}
	b.sort()
	return b
}

func (b *Book) Len() int {
	return len(b.items)
}

// All returns a copy of the collection in start order.
func (b *Book) All() []models.Appointment {
	out := make([]models.Appointment, 0, len(b.items))
	for _, ap := range b.items {
		out = append(out, ap.Clone())
	}
	return out
}

func (b *Book) Get(id int64) (models.Appointment, bool) {
	if i := b.index(id); i >= 0 {
		return b.items[i].Clone(), true
	}
	return models.Appointment{}, false
}

// Conflict returns the first appointment of staffID overlapping
// [start, end), ignoring the appointment with id exclude.
func (b *Book) Conflict(
	staffID int64,
	start time.Time,
	end time.Time,
	exclude int64,
) (models.Appointment, bool) {

	for _, ap := range b.items {
		if ap.ID == exclude || ap.StaffID != staffID {
			continue
		}
		if Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return ap.Clone(), true
		}
	}
	return models.Appointment{}, false
}

// Between lists staffID's appointments starting in [from, to).
func (b *Book) Between(staffID int64, from, to time.Time) []models.Appointment {
	var out []models.Appointment
	for _, ap := range b.items {
		if ap.StaffID != staffID {
			continue
		}
		if !ap.StartTime.Before(from) && ap.StartTime.Before(to) {
			out = append(out, ap.Clone())
		}
	}
	return out
}

func (b *Book) Insert(ap models.Appointment) {
	b.items = append(b.items, ap.Clone())
	b.sort()
}

func (b *Book) Replace(ap models.Appointment) bool {
	i := b.index(ap.ID)
	if i < 0 {
		return false
	}
	b.items[i] = ap.Clone()
	b.sort()
	return true
}

func (b *Book) Remove(id int64) bool {
	i := b.index(id)
	if i < 0 {
		return false
	}
	b.items = slices.Delete(b.items, i, i+1)
	b.sort()
	return true
}

func (b *Book) index(id int64) int {
	return slices.IndexFunc(b.items, func(ap models.Appointment) bool {
		return ap.ID == id
	})
}

func (b *Book) sort() {
	slices.SortStableFunc(b.items, func(x, y models.Appointment) int {
		return x.StartTime.Compare(y.StartTime)
	})
}
