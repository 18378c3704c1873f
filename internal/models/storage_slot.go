package models

import "time"

// StorageSlot is one named JSON document, the SQL rendition of a local
// storage key.
type StorageSlot struct {
	Key       string    `gorm:"column:name;primaryKey;size:100" json:"key"`
	Value     []byte    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
