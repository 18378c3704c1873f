package catalog

import (
	"context"

	"github.com/BruksfildServices01/garage-scheduler/internal/httperr"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
)

const (
	CodeServiceNotFound = "service_not_found"
	CodeUnknownService  = "unknown_service"
)

var (
	ErrServiceNotFound = httperr.ErrBusiness(CodeServiceNotFound)
	ErrUnknownService  = httperr.ErrBusiness(CodeUnknownService)
)

// ServiceDraft holds the editable fields of a service.
type ServiceDraft struct {
	CategoryID    *int64
	Name          string
	Description   string
	Duration      int
	Price         float64
	RequiresParts bool
}

// ServiceChange is either a NewService or an ExistingService.
type ServiceChange interface {
	serviceChange()
}

type NewService struct {
	ServiceDraft
}

type ExistingService struct {
	ID int64
	ServiceDraft
}

func (NewService) serviceChange()      {}
func (ExistingService) serviceChange() {}

func (d ServiceDraft) Build(id int64) models.Service {
	return models.Service{
		ID:            id,
		CategoryID:    d.CategoryID,
		Name:          d.Name,
		Description:   d.Description,
		Duration:      d.Duration,
		Price:         d.Price,
		RequiresParts: d.RequiresParts,
	}
}

// Repository persists the service list as one document. found is false
// when nothing has been stored yet.
type Repository interface {
	LoadServices(ctx context.Context) (services []models.Service, found bool, err error)
	SaveServices(ctx context.Context, services []models.Service) error
}
