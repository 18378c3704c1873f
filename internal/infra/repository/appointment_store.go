package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	domain "github.com/BruksfildServices01/garage-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/garage-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
)

// AppointmentStore persists the appointment collection as one JSON array
// in the "appointments" slot.
type AppointmentStore struct {
	slot storage.Slot
}

var _ domain.Repository = (*AppointmentStore)(nil)

func NewAppointmentStore(slot storage.Slot) *AppointmentStore {
	return &AppointmentStore{slot: slot}
}

// appointmentRecord is the stored shape. Old records carry a single
// serviceId instead of serviceIds.
type appointmentRecord struct {
	models.Appointment
	LegacyServiceID *int64 `json:"serviceId,omitempty"`
}

func (r appointmentRecord) normalize() models.Appointment {
	ap := r.Appointment
	if len(ap.ServiceIDs) == 0 && r.LegacyServiceID != nil {
		ap.ServiceIDs = []int64{*r.LegacyServiceID}
	}
	if ap.ServiceIDs == nil {
		ap.ServiceIDs = []int64{}
	}
	return ap
}

func (s *AppointmentStore) LoadAppointments(ctx context.Context) ([]models.Appointment, bool, error) {
	b, err := s.slot.Get(ctx, storage.KeyAppointments)
	if errors.Is(err, storage.ErrNotFound) {
		return []models.Appointment{}, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	appointments, err := DecodeAppointments(b)
	if err != nil {
		return nil, true, err
	}
	return appointments, true, nil
}

func (s *AppointmentStore) SaveAppointments(ctx context.Context, appointments []models.Appointment) error {
	b, err := EncodeAppointments(appointments)
	if err != nil {
		return err
	}
	return s.slot.Set(ctx, storage.KeyAppointments, b)
}

// DecodeAppointments parses the stored array, migrating legacy records.
func DecodeAppointments(b []byte) ([]models.Appointment, error) {
	var records []appointmentRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}

	out := make([]models.Appointment, 0, len(records))
	for _, r := range records {
		out = append(out, r.normalize())
	}
	return out, nil
}

func EncodeAppointments(appointments []models.Appointment) ([]byte, error) {
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	b, err := json.Marshal(appointments)
	if err != nil {
		return nil, fmt.Errorf("encode appointments: %w", err)
	}
	return b, nil
}
