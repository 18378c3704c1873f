package appointment

import (
	"context"

	"github.com/BruksfildServices01/garage-scheduler/internal/models"
)

// Repository persists the whole appointment collection as one document.
// found is false when nothing has been stored yet.
type Repository interface {
	LoadAppointments(ctx context.Context) (appointments []models.Appointment, found bool, err error)
	SaveAppointments(ctx context.Context, appointments []models.Appointment) error
}

// Catalog is the read-only view of the service catalog the scheduler
// needs.
type Catalog interface {
	ResolveServices(ids []int64) ([]models.Service, error)
	Service(id int64) (models.Service, bool)
}
