package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/garage-scheduler/internal/config"
	"github.com/BruksfildServices01/garage-scheduler/internal/models"
)

func exerciseSlot(t *testing.T, slot Slot) {
	t.Helper()
	ctx := context.Background()

	_, err := slot.Get(ctx, KeyAppointments)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, slot.Set(ctx, KeyAppointments, []byte(`[]`)))
	require.NoError(t, slot.Set(ctx, KeyAppointments, []byte(`[{"id":1}]`)))
	require.NoError(t, slot.Set(ctx, KeyServices, []byte(`[{"id":2}]`)))

	got, err := slot.Get(ctx, KeyAppointments)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(got))

	got, err = slot.Get(ctx, KeyServices)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":2}]`, string(got))
}

func TestFileSlot(t *testing.T) {
	slot, err := NewFileSlot(t.TempDir())
	require.NoError(t, err)
	exerciseSlot(t, slot)
}

func TestFileSlot_RejectsPathKeys(t *testing.T) {
	slot, err := NewFileSlot(t.TempDir())
	require.NoError(t, err)

	err = slot.Set(context.Background(), "../escape", []byte(`{}`))
	assert.Error(t, err)
}

func TestSQLSlot(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.StorageSlot{}))

	exerciseSlot(t, NewSQLSlot(db))

	var count int64
	require.NoError(t, db.Model(&models.StorageSlot{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestRedisSlot(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	exerciseSlot(t, NewRedisSlot(client, "garage:"))
	assert.True(t, mr.Exists("garage:appointments"))
}

func TestOpen(t *testing.T) {
	mr := miniredis.RunT(t)

	slot, err := Open(context.Background(), &config.Config{
		StorageBackend: config.StorageRedis,
		RedisAddr:      mr.Addr(),
	}, nil)
	require.NoError(t, err)
	assert.IsType(t, &RedisSlot{}, slot)

	slot, err = Open(context.Background(), &config.Config{
		StorageBackend: config.StorageFile,
		DataDir:        t.TempDir(),
	}, nil)
	require.NoError(t, err)
	assert.IsType(t, &FileSlot{}, slot)

	_, err = Open(context.Background(), &config.Config{StorageBackend: config.StorageSQL}, nil)
	assert.Error(t, err)

	slot, err = Open(context.Background(), &config.Config{
		StorageBackend: config.StorageS3,
		S3Bucket:       "garage",
		S3Region:       "us-east-1",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "garage/services.json", *slot.(*S3Slot).objectKey(KeyServices))
}
