package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackableType names the kind of entity a usage log entry belongs to
type TrackableType string

const (
	TrackableTypeBicycle   TrackableType = "bicycle"
	TrackableTypeComponent TrackableType = "component"
)

// Trackable is any entity whose cumulative distance is tracked through the
// usage ledger. Implemented by *Bicycle and *Component.
type Trackable interface {
	TrackableRef() (TrackableType, uuid.UUID)
	CurrentDistance() float64
	SetDistance(v float64)
}

// UsageLogEntry is one append-only record of a kilometre change on a
// trackable. Entries are never updated or deleted except when their owner
// is destroyed.
type UsageLogEntry struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TrackableType TrackableType  `json:"trackable_type" gorm:"type:varchar(20);not null;index:idx_usage_trackable,priority:1"`
	TrackableID   uuid.UUID      `json:"trackable_id" gorm:"type:uuid;not null;index:idx_usage_trackable,priority:2"`
	EventType     UsageEventType `json:"event_type" gorm:"type:varchar(20);not null"`
	PreviousValue float64        `json:"previous_value" gorm:"not null"`
	NewValue      float64        `json:"new_value" gorm:"not null"`
	Notes         string         `json:"notes" gorm:"type:text"`
	CreatedAt     time.Time      `json:"created_at"`
}

// TableName returns the table name for UsageLogEntry
func (UsageLogEntry) TableName() string {
	return "usage_log_entries"
}

// BeforeCreate sets the UUID if not already set
func (e *UsageLogEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Delta is the distance covered by this entry
func (e *UsageLogEntry) Delta() float64 {
	return e.NewValue - e.PreviousValue
}
