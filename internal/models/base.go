package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/PoseidonKRL/ControlFin/internal/id"
)

// Base contains common columns for all tables. IDs are time-ordered UUIDs
// assigned once at creation and never reused.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns an ID when the record does not carry one yet.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = id.New()
	}
	return nil
}
