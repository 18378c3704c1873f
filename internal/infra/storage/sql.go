package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/garage-scheduler/internal/models"
)

// SQLSlot keeps slots as rows of the storage_slots table.
type SQLSlot struct {
	db *gorm.DB
}

var _ Slot = (*SQLSlot)(nil)

func NewSQLSlot(db *gorm.DB) *SQLSlot {
	return &SQLSlot{db: db}
}

func (s *SQLSlot) Get(ctx context.Context, key string) ([]byte, error) {
	var row models.StorageSlot
	err := s.db.WithContext(ctx).
		Where("name = ?", key).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", key, err)
	}
	return row.Value, nil
}

func (s *SQLSlot) Set(ctx context.Context, key string, value []byte) error {
	row := models.StorageSlot{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("storage: write %s: %w", key, err)
	}
	return nil
}
