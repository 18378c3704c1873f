package audit

import (
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/garage-scheduler/internal/models"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.AuditLog{}))
	return db
}

func TestDispatcherWritesEvents(t *testing.T) {
	db := openDB(t)
	d := NewDispatcher(New(db))

	id := int64(42)
	d.Dispatch(Event{
		StaffID:  1,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &id,
		Metadata: map[string]any{"client": "Elif"},
	})
	d.Close()

	var logs []models.AuditLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "appointment_created", logs[0].Action)
	assert.Equal(t, int64(42), *logs[0].EntityID)
	assert.JSONEq(t, `{"client":"Elif"}`, logs[0].Metadata)
}

func TestDispatchAfterCloseIsDropped(t *testing.T) {
	db := openDB(t)
	d := NewDispatcher(New(db))
	d.Close()

	assert.NotPanics(t, func() {
		d.Dispatch(Event{StaffID: 1, Action: "appointment_deleted", Entity: "appointment"})
	})
	d.Close()

	var count int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestConcurrentDispatchAndClose(t *testing.T) {
	d := NewDispatcher(New(nil))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				d.Dispatch(Event{Action: "appointment_created"})
			}
		}()
	}
	d.Close()
	wg.Wait()
}

func TestNilDispatcherIsSafe(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "noop"})
	d.Close()
}

func TestLoggerWithoutDB(t *testing.T) {
	assert.NoError(t, New(nil).Log(Event{Action: "appointment_deleted"}))
}
