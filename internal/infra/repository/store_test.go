package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/garage-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
)

func newSlot(t *testing.T) storage.Slot {
	t.Helper()
	slot, err := storage.NewFileSlot(t.TempDir())
	require.NoError(t, err)
	return slot
}

func TestAppointmentStore_NothingStored(t *testing.T) {
	store := NewAppointmentStore(newSlot(t))

	got, found, err := store.LoadAppointments(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, got)
}

func TestAppointmentStore_MigratesLegacyServiceID(t *testing.T) {
	slot := newSlot(t)
	require.NoError(t, slot.Set(context.Background(), storage.KeyAppointments, []byte(`[
		{"id": 1, "clientName": "Elif", "staffId": 1, "serviceId": 7,
		 "startTime": "2026-03-10T09:00:00.000Z", "endTime": "2026-03-10T09:45:00.000Z", "price": 250},
		{"id": 2, "clientName": "Can", "staffId": 1, "serviceIds": [1, 2],
		 "startTime": "2026-03-11T09:00:00.000Z", "endTime": "2026-03-11T10:15:00.000Z", "price": 400,
		 "materialCost": 120, "notes": "bring keys"}
	]`)))

	got, found, err := NewAppointmentStore(slot).LoadAppointments(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got, 2)

	assert.Equal(t, []int64{7}, got[0].ServiceIDs)
	assert.True(t, got[0].StartTime.Equal(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, []int64{1, 2}, got[1].ServiceIDs)
	assert.Equal(t, 120.0, got[1].MaterialCost)
	assert.Equal(t, "bring keys", got[1].Notes)
}

func TestAppointmentStore_RoundTripDropsLegacyField(t *testing.T) {
	slot := newSlot(t)
	store := NewAppointmentStore(slot)
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveAppointments(context.Background(), []models.Appointment{{
		ID: 1, ClientName: "Elif", StaffID: 1, ServiceIDs: []int64{3},
		StartTime: start, EndTime: start.Add(time.Hour), Price: 100,
	}}))

	raw, err := slot.Get(context.Background(), storage.KeyAppointments)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "serviceId\"")
	assert.Contains(t, string(raw), `"serviceIds":[3]`)

	got, _, err := store.LoadAppointments(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].EndTime.Equal(start.Add(time.Hour)))
}

func TestAppointmentStore_CorruptData(t *testing.T) {
	slot := newSlot(t)
	require.NoError(t, slot.Set(context.Background(), storage.KeyAppointments, []byte(`{not json`)))

	_, _, err := NewAppointmentStore(slot).LoadAppointments(context.Background())
	assert.Error(t, err)
}

func TestServiceStore(t *testing.T) {
	store := NewServiceStore(newSlot(t))
	ctx := context.Background()

	_, found, err := store.LoadServices(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	cat := int64(2)
	require.NoError(t, store.SaveServices(ctx, []models.Service{
		{ID: 1, CategoryID: &cat, Name: "Oil change", Duration: 45, Price: 250, RequiresParts: true},
	}))

	got, found, err := store.LoadServices(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, got, 1)
	assert.Equal(t, "Oil change", got[0].Name)
	require.NotNil(t, got[0].CategoryID)
	assert.Equal(t, int64(2), *got[0].CategoryID)

	require.NoError(t, store.SaveServices(ctx, nil))
	got, found, err = store.LoadServices(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, got)
}
