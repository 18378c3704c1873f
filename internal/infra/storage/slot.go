// Package storage keeps named JSON documents ("slots"), one per
// persisted collection, on one of several backends.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when nothing was ever stored under key.
var ErrNotFound = errors.New("storage: slot not found")

type Slot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Well-known slot keys.
const (
	KeyAppointments = "appointments"
	KeyServices     = "services"
)
