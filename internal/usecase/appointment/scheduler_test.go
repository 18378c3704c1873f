package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/BruksfildServices01/garage-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/garage-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/garage-scheduler/internal/domain/ident"
	"github.com/BruksfildServices01/garage-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/garage-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
	"github.com/BruksfildServices01/garage-scheduler/internal/notify"
	"github.com/BruksfildServices01/garage-scheduler/internal/session"
)

// ======================================================
// FAKES
// ======================================================

type fakeCatalog map[int64]models.Service

func (c fakeCatalog) ResolveServices(ids []int64) ([]models.Service, error) {
	out := []models.Service{}
	seen := map[int64]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		svc, ok := c[id]
		if !ok {
			return nil, catalog.ErrUnknownService
		}
		out = append(out, svc)
	}
	return out, nil
}

func (c fakeCatalog) Service(id int64) (models.Service, bool) {
	svc, ok := c[id]
	return svc, ok
}

type memRepo struct {
	stored  []models.Appointment
	saves   int
	saveErr error
}

func (r *memRepo) LoadAppointments(context.Context) ([]models.Appointment, bool, error) {
	return r.stored, r.stored != nil, nil
}

func (r *memRepo) SaveAppointments(ctx context.Context, appointments []models.Appointment) error {
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r.stored = appointments
	return nil
}

// Tuesday 2026-03-10 10:00 UTC.
var now = time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)

func at(day, hour, minute int) time.Time {
	return time.Date(2026, time.March, day, hour, minute, 0, 0, time.UTC)
}

func testSession() session.Session {
	return session.New(models.Staff{ID: 1, Name: "Ahmet"}, time.UTC).At(now)
}

func newTestScheduler(repo *memRepo) (*Scheduler, *notify.Recorder) {
	rec := &notify.Recorder{}
	cat := fakeCatalog{
		10: {ID: 10, Name: "Oil change", Duration: 45},
		11: {ID: 11, Name: "Brake pads", Duration: 30},
		12: {ID: 12, Name: "Diagnostics", Duration: 60},
	}
	ids := ident.NewGenerator(func() time.Time { return now })
	return NewScheduler(repo, cat, rec, nil, ids), rec
}

func create(t *testing.T, s *Scheduler, start time.Time, serviceIDs ...int64) models.Appointment {
	t.Helper()
	ap, err := s.CreateAppointment(context.Background(), testSession(), CreateAppointmentInput{
		ClientName: "Elif",
		ServiceIDs: serviceIDs,
		StartTime:  start,
		Price:      400,
	})
	require.NoError(t, err)
	return ap
}

// ======================================================
// CREATE
// ======================================================

func TestCreateAppointment_DerivesEndTimeAndPersists(t *testing.T) {
	repo := &memRepo{}
	s, rec := newTestScheduler(repo)

	ap := create(t, s, at(10, 14, 0), 10, 11)

	assert.Equal(t, at(10, 15, 15), ap.EndTime)
	assert.Equal(t, int64(1), ap.StaffID)
	assert.Equal(t, now.UnixMilli(), ap.ID)
	assert.Equal(t, 1, repo.saves)
	assert.Len(t, repo.stored, 1)
	assert.Equal(t, "Appointment created successfully!", rec.Last())
}

func TestCreateAppointment_EarlierToday(t *testing.T) {
	s, _ := newTestScheduler(&memRepo{})

	ap := create(t, s, at(10, 8, 0), 12)
	assert.Equal(t, at(10, 9, 0), ap.EndTime)
}

func TestCreateAppointment_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, s *Scheduler)
		start    time.Time
		services []int64
		want     error
	}{
		{
			name:     "no services",
			start:    at(11, 9, 0),
			services: nil,
			want:     domain.ErrNoServicesSelected,
		},
		{
			name:     "unknown service",
			start:    at(11, 9, 0),
			services: []int64{10, 99},
			want:     catalog.ErrUnknownService,
		},
		{
			name:     "yesterday",
			start:    at(9, 23, 59),
			services: []int64{10},
			want:     domain.ErrPastDate,
		},
		{
			name: "overlap",
			setup: func(t *testing.T, s *Scheduler) {
				create(t, s, at(11, 10, 0), 12)
			},
			start:    at(11, 10, 30),
			services: []int64{11},
			want:     domain.ErrTimeConflict,
		},
		{
			name: "enclosing",
			setup: func(t *testing.T, s *Scheduler) {
				create(t, s, at(11, 10, 0), 11)
			},
			start:    at(11, 9, 30),
			services: []int64{12, 11},
			want:     domain.ErrTimeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memRepo{}
			s, rec := newTestScheduler(repo)
			if tt.setup != nil {
				tt.setup(t, s)
			}
			before := s.Snapshot()
			saves := repo.saves
			notes := len(rec.Messages)

			_, err := s.CreateAppointment(context.Background(), testSession(), CreateAppointmentInput{
				ClientName: "Mehmet",
				ServiceIDs: tt.services,
				StartTime:  tt.start,
			})

			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, s.Snapshot())
			assert.Equal(t, saves, repo.saves)
			assert.Len(t, rec.Messages, notes)
		})
	}
}

func TestCreateAppointment_TouchingIsNotConflict(t *testing.T) {
	s, _ := newTestScheduler(&memRepo{})

	create(t, s, at(11, 10, 0), 12)
	create(t, s, at(11, 11, 0), 11)
	create(t, s, at(11, 9, 30), 11)

	assert.Len(t, s.Snapshot(), 3)
}

func TestCreateAppointment_OtherStaffDoesNotConflict(t *testing.T) {
	s, _ := newTestScheduler(&memRepo{})
	create(t, s, at(11, 10, 0), 12)

	ap, err := s.CreateAppointment(context.Background(), testSession(), CreateAppointmentInput{
		StaffID:    2,
		ServiceIDs: []int64{12},
		StartTime:  at(11, 10, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), ap.StaffID)
}

func TestCreateAppointment_KeepsStartOrder(t *testing.T) {
	s, _ := newTestScheduler(&memRepo{})

	create(t, s, at(12, 9, 0), 10)
	create(t, s, at(10, 16, 0), 10)
	create(t, s, at(11, 9, 0), 10)

	got := s.Snapshot()
	require.Len(t, got, 3)
	assert.Equal(t, at(10, 16, 0), got[0].StartTime)
	assert.Equal(t, at(11, 9, 0), got[1].StartTime)
	assert.Equal(t, at(12, 9, 0), got[2].StartTime)
}

func TestCreateAppointment_SaveFailureIsSwallowed(t *testing.T) {
	repo := &memRepo{saveErr: errors.New("disk full")}
	s, rec := newTestScheduler(repo)

	create(t, s, at(11, 9, 0), 10)

	assert.Len(t, s.Snapshot(), 1)
	assert.Equal(t, "Appointment created successfully!", rec.Last())
}

func TestCreateAppointment_PersistsAfterCallerCancels(t *testing.T) {
	repo := &memRepo{}
	s, _ := newTestScheduler(repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ap, err := s.CreateAppointment(ctx, testSession(), CreateAppointmentInput{
		ClientName: "Elif",
		ServiceIDs: []int64{10},
		StartTime:  at(11, 9, 0),
	})
	require.NoError(t, err)

	require.Len(t, repo.stored, 1)
	assert.Equal(t, ap.ID, repo.stored[0].ID)

	require.True(t, s.DeleteAppointment(ctx, testSession(), ap.ID))
	assert.Empty(t, repo.stored)
}

func TestCreateAppointment_SQLStoreSurvivesCancel(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.StorageSlot{}))

	store := repository.NewAppointmentStore(storage.NewSQLSlot(db))
	cat := fakeCatalog{10: {ID: 10, Name: "Oil change", Duration: 45}}
	s := NewScheduler(store, cat, &notify.Recorder{}, nil, ident.NewGenerator(func() time.Time { return now }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.CreateAppointment(ctx, testSession(), CreateAppointmentInput{
		ClientName: "Elif",
		ServiceIDs: []int64{10},
		StartTime:  at(11, 9, 0),
	})
	require.NoError(t, err)

	stored, found, err := store.LoadAppointments(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, stored, 1)
}

// ======================================================
// UPDATE
// ======================================================

func TestUpdateAppointment_ExcludesItselfAndRecomputesEnd(t *testing.T) {
	s, rec := newTestScheduler(&memRepo{})
	ap := create(t, s, at(11, 10, 0), 11)

	updated, err := s.UpdateAppointment(context.Background(), testSession(), UpdateAppointmentInput{
		ID: ap.ID,
		CreateAppointmentInput: CreateAppointmentInput{
			ClientName: "Elif",
			ServiceIDs: []int64{11, 12},
			StartTime:  at(11, 10, 15),
			Price:      900,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, ap.ID, updated.ID)
	assert.Equal(t, at(11, 11, 45), updated.EndTime)
	assert.Equal(t, "Appointment updated successfully!", rec.Last())

	got, ok := s.Appointment(ap.ID)
	require.True(t, ok)
	assert.Equal(t, 900.0, got.Price)
}

func TestUpdateAppointment_ConflictLeavesOriginal(t *testing.T) {
	s, _ := newTestScheduler(&memRepo{})
	first := create(t, s, at(11, 10, 0), 12)
	second := create(t, s, at(11, 12, 0), 12)

	_, err := s.UpdateAppointment(context.Background(), testSession(), UpdateAppointmentInput{
		ID: second.ID,
		CreateAppointmentInput: CreateAppointmentInput{
			ServiceIDs: []int64{12},
			StartTime:  at(11, 10, 30),
		},
	})
	require.ErrorIs(t, err, domain.ErrTimeConflict)

	got, _ := s.Appointment(second.ID)
	assert.Equal(t, at(11, 12, 0), got.StartTime)
	got, _ = s.Appointment(first.ID)
	assert.Equal(t, at(11, 10, 0), got.StartTime)
}

func TestUpdateAppointment_RejectionsLeaveOriginal(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		services []int64
		want     error
	}{
		{"moved into the past", at(9, 9, 0), []int64{10}, domain.ErrPastDate},
		{"unknown service", at(11, 15, 0), []int64{10, 99}, catalog.ErrUnknownService},
		{"no services", at(11, 15, 0), nil, domain.ErrNoServicesSelected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memRepo{}
			s, rec := newTestScheduler(repo)
			ap := create(t, s, at(11, 10, 0), 11)
			before := s.Snapshot()
			saves := repo.saves
			notified := len(rec.Messages)

			_, err := s.UpdateAppointment(context.Background(), testSession(), UpdateAppointmentInput{
				ID: ap.ID,
				CreateAppointmentInput: CreateAppointmentInput{
					ClientName: "Can",
					ServiceIDs: tt.services,
					StartTime:  tt.start,
					Price:      900,
				},
			})
			require.ErrorIs(t, err, tt.want)

			assert.Equal(t, before, s.Snapshot())
			assert.Equal(t, saves, repo.saves)
			assert.Len(t, rec.Messages, notified)

			got, ok := s.Appointment(ap.ID)
			require.True(t, ok)
			assert.Equal(t, "Elif", got.ClientName)
			assert.Equal(t, []int64{11}, got.ServiceIDs)
			assert.Equal(t, at(11, 10, 30), got.EndTime)
		})
	}
}

func TestUpdateAppointment_NotFound(t *testing.T) {
	s, _ := newTestScheduler(&memRepo{})

	_, err := s.UpdateAppointment(context.Background(), testSession(), UpdateAppointmentInput{
		ID: 42,
		CreateAppointmentInput: CreateAppointmentInput{
			ServiceIDs: []int64{10},
			StartTime:  at(11, 9, 0),
		},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateAppointment_KeepsStaffWhenUnset(t *testing.T) {
	s, _ := newTestScheduler(&memRepo{})
	ap, err := s.CreateAppointment(context.Background(), testSession(), CreateAppointmentInput{
		StaffID:    7,
		ServiceIDs: []int64{10},
		StartTime:  at(11, 9, 0),
	})
	require.NoError(t, err)

	updated, err := s.UpdateAppointment(context.Background(), testSession(), UpdateAppointmentInput{
		ID: ap.ID,
		CreateAppointmentInput: CreateAppointmentInput{
			ServiceIDs: []int64{10},
			StartTime:  at(11, 13, 0),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.StaffID)
}

// ======================================================
// DELETE
// ======================================================

func TestDeleteAppointment(t *testing.T) {
	repo := &memRepo{}
	s, rec := newTestScheduler(repo)
	ap := create(t, s, at(11, 9, 0), 10)
	saves := repo.saves

	assert.True(t, s.DeleteAppointment(context.Background(), testSession(), ap.ID))
	assert.Empty(t, s.Snapshot())
	assert.Equal(t, saves+1, repo.saves)
	assert.Equal(t, "Appointment deleted.", rec.Last())

	notes := len(rec.Messages)
	assert.False(t, s.DeleteAppointment(context.Background(), testSession(), ap.ID))
	assert.Equal(t, saves+1, repo.saves)
	assert.Len(t, rec.Messages, notes)
}

// ======================================================
// LOAD / LISTINGS
// ======================================================

func TestLoad_SortsAndAdvancesIDs(t *testing.T) {
	stored := now.UnixMilli() + 5000
	repo := &memRepo{stored: []models.Appointment{
		{ID: stored, StaffID: 1, ServiceIDs: []int64{10}, StartTime: at(12, 9, 0), EndTime: at(12, 9, 45)},
		{ID: 1, StaffID: 1, ServiceIDs: []int64{10}, StartTime: at(11, 9, 0), EndTime: at(11, 9, 45)},
	}}
	s, _ := newTestScheduler(repo)
	require.NoError(t, s.Load(context.Background()))

	got := s.Snapshot()
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)

	ap := create(t, s, at(13, 9, 0), 10)
	assert.Greater(t, ap.ID, stored)
}

func TestListAppointmentsByDate(t *testing.T) {
	s, _ := newTestScheduler(&memRepo{})
	create(t, s, at(11, 9, 0), 10, 11)
	create(t, s, at(12, 9, 0), 10)

	list := s.ListAppointmentsByDate(testSession(), at(11, 0, 0))
	require.Len(t, list, 1)
	assert.Equal(t, []string{"Oil change", "Brake pads"}, list[0].ServiceNames)
	assert.Equal(t, 400.0, list[0].Profit)
}

func TestListAppointmentsByWeek_StartsSunday(t *testing.T) {
	s, _ := newTestScheduler(&memRepo{})
	create(t, s, at(14, 9, 0), 10) // Saturday
	create(t, s, at(15, 9, 0), 10) // next Sunday

	week := s.ListAppointmentsByWeek(testSession(), at(11, 12, 0))
	require.Len(t, week, 7)
	assert.Equal(t, "2026-03-08", week[0].Date)
	assert.Equal(t, "2026-03-14", week[6].Date)
	assert.Len(t, week[6].Appointments, 1)
	assert.Empty(t, week[0].Appointments)
}

func TestListAppointmentsByMonth(t *testing.T) {
	s, _ := newTestScheduler(&memRepo{})
	create(t, s, at(31, 9, 0), 10)

	month := s.ListAppointmentsByMonth(testSession(), 2026, time.March)
	require.Len(t, month, 31)
	assert.Len(t, month[30].Appointments, 1)
}

func TestVehicle(t *testing.T) {
	assert.Equal(t, "2018 Toyota Corolla", Vehicle(models.Appointment{CarMake: "Toyota", CarModel: "Corolla", CarYear: 2018}))
	assert.Equal(t, "Fiat", Vehicle(models.Appointment{CarMake: "Fiat"}))
	assert.Equal(t, "", Vehicle(models.Appointment{}))
}
