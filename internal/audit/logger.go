package audit

import (
	"encoding/json"
	"log"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/garage-scheduler/internal/models"
)

type Logger struct {
	db *gorm.DB
}

// New returns a Logger writing to the audit_logs table, or to the
// process log when db is nil.
func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	if l == nil || l.db == nil {
		log.Printf("audit: staff=%d action=%s entity=%s meta=%s", ev.StaffID, ev.Action, ev.Entity, metaJSON)
		return nil
	}

	row := models.AuditLog{
		StaffID:  ev.StaffID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&row).Error
}
