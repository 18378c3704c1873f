package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/garage-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/garage-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
)

// ServiceStore persists the service catalog in the "services" slot.
type ServiceStore struct {
	slot storage.Slot
}

var _ catalog.Repository = (*ServiceStore)(nil)

func NewServiceStore(slot storage.Slot) *ServiceStore {
	return &ServiceStore{slot: slot}
}

func (s *ServiceStore) LoadServices(ctx context.Context) ([]models.Service, bool, error) {
	b, err := s.slot.Get(ctx, storage.KeyServices)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var services []models.Service
	if err := json.Unmarshal(b, &services); err != nil {
		return nil, true, fmt.Errorf("decode services: %w", err)
	}
	if services == nil {
		services = []models.Service{}
	}
	return services, true, nil
}

func (s *ServiceStore) SaveServices(ctx context.Context, services []models.Service) error {
	if services == nil {
		services = []models.Service{}
	}
	b, err := json.Marshal(services)
	if err != nil {
		return fmt.Errorf("encode services: %w", err)
	}
	return s.slot.Set(ctx, storage.KeyServices, b)
}
